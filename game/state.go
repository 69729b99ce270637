package game

// State is the game-flow state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// validTransitions enumerates every legal game-flow edge. Quitting and
// window close are process exits, not transitions.
var validTransitions = map[State][]State{
	StateStart:    {StatePlaying},
	StatePlaying:  {StatePaused, StateGameOver},
	StatePaused:   {StatePlaying},
	StateGameOver: {StatePlaying},
}

// CanTransition checks if a game-flow transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
