package game

// InputFrame is the per-frame input snapshot the presentation layer hands to
// Session.Step. Held keys report their current state; the action keys are
// edge-triggered (true only on the frame the key went down). The session
// ignores whatever is irrelevant to its current state.
type InputFrame struct {
	// Held keys
	TurnLeft  bool
	TurnRight bool
	Thrust    bool

	// Edge-triggered keys
	Fire    bool // space: fire while playing, confirm on the start screen
	Pause   bool // escape: pause toggle
	Restart bool // R: restart from game over
	Quit    bool // Q: quit from game over
}
