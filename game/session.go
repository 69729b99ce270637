package game

import (
	"math"
	"math/rand"
	"time"
)

// Session owns one run of the game: the flow state, the live entities, the
// score, and game time. Everything mutable hangs off this struct and is
// driven by the frame loop through Step; there is no package-level game
// state. Not safe for concurrent use.
type Session struct {
	cfg   Config
	clock *PausableClock
	rng   *rand.Rand

	state       State
	ship        *Ship
	asteroids   []*Asteroid
	projectiles []*Projectile

	score int
	quit  bool
}

// NewSession builds a session in the Start state with the initial asteroid
// field already seeded, so play begins the moment the player confirms. The
// base clock becomes game time behind a pause-aware wrapper; tests pass a
// ManualClock for deterministic cooldowns and lifetimes.
func NewSession(cfg Config, base Clock, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		clock: NewPausableClock(base),
		rng:   rand.New(rand.NewSource(seed)),
		state: StateStart,
	}
	s.Reset()
	return s
}

// Reset rebuilds the playfield wholesale: a fresh ship centered on screen
// with zero velocity, zero score, no projectiles, and a new field of large
// asteroids all outside the safe radius.
func (s *Session) Reset() {
	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)

	s.ship = NewShip(w/2, h/2, s.cfg.Ship)
	s.projectiles = s.projectiles[:0]
	s.asteroids = make([]*Asteroid, 0, s.cfg.Asteroids.InitialCount)
	s.score = 0

	for i := 0; i < s.cfg.Asteroids.InitialCount; i++ {
		x, y := s.randomSafePosition()
		s.asteroids = append(s.asteroids, NewAsteroid(x, y, SizeLarge, s.rng, s.cfg.Asteroids))
	}
}

// randomSafePosition rejection-samples a spawn point farther than the safe
// radius from the ship. Validate guarantees such a point exists.
func (s *Session) randomSafePosition() (float64, float64) {
	for {
		x := s.rng.Float64() * float64(s.cfg.ScreenWidth)
		y := s.rng.Float64() * float64(s.cfg.ScreenHeight)
		if math.Hypot(x-s.ship.X, y-s.ship.Y) > s.cfg.Asteroids.SafeRadius {
			return x, y
		}
	}
}

// Step advances the session by one frame. The frame loop supplies the input
// snapshot and the elapsed seconds. Dispatch depends entirely on the
// current state; input that means nothing in that state is ignored.
func (s *Session) Step(in InputFrame, dt float64) {
	switch s.state {
	case StateStart:
		if in.Fire {
			s.transition(StatePlaying)
		}

	case StatePlaying:
		if in.Pause {
			s.clock.Pause()
			s.transition(StatePaused)
			return
		}
		s.advanceWorld(in, dt)

	case StatePaused:
		if in.Pause {
			s.clock.Resume()
			s.transition(StatePlaying)
		}

	case StateGameOver:
		switch {
		case in.Restart:
			s.Reset()
			s.transition(StatePlaying)
		case in.Quit:
			s.quit = true
		}
	}
}

// advanceWorld runs one Playing tick: steer, fire, move everything, expire
// old projectiles, resolve collisions. A projectile fired this tick moves
// and can hit this tick, like everything else.
func (s *Session) advanceWorld(in InputFrame, dt float64) {
	now := s.clock.Now()

	s.ship.Steer(in, dt)
	if in.Fire && s.ship.CanFire(now) {
		s.projectiles = append(s.projectiles, s.ship.Fire(now, s.cfg.Projectile))
	}

	w := float64(s.cfg.ScreenWidth)
	h := float64(s.cfg.ScreenHeight)
	s.ship.Update(w, h)
	for _, a := range s.asteroids {
		a.Update(w, h)
	}
	for _, p := range s.projectiles {
		p.Update(w, h)
	}

	s.expireProjectiles(now)
	s.resolveCollisions()
}

// expireProjectiles drops projectiles whose lifetime has run out,
// independent of collisions.
func (s *Session) expireProjectiles(now time.Time) {
	lifetime := s.cfg.Projectile.Lifetime()
	alive := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.Expired(now, lifetime) {
			alive = append(alive, p)
		}
	}
	s.projectiles = alive
}

// transition moves to the target state if the transition table allows it.
func (s *Session) transition(to State) {
	if !CanTransition(s.state, to) {
		return
	}
	s.state = to
}

// State returns the current game-flow state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Ship returns the player's ship.
func (s *Session) Ship() *Ship {
	return s.ship
}

// Asteroids returns the live asteroid set.
func (s *Session) Asteroids() []*Asteroid {
	return s.asteroids
}

// Projectiles returns the live projectile set.
func (s *Session) Projectiles() []*Projectile {
	return s.projectiles
}

// QuitRequested reports whether the player asked to quit from game over.
func (s *Session) QuitRequested() bool {
	return s.quit
}
