package game

import "time"

// Clock is the time source for gameplay timestamps (fire cooldown,
// projectile lifetime). The session wraps its Clock in a PausableClock so
// those timers freeze while the game is paused.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a settable Clock for deterministic tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Set moves the clock to the given time.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by the given duration.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// PausableClock turns a base Clock into game time. While paused, Now is
// frozen at the pause point; on resume the paused duration is subtracted so
// game time continues where it stopped. Not safe for concurrent use; the
// game runs on a single goroutine.
type PausableClock struct {
	base        Clock
	paused      bool
	pausedAt    time.Time     // base time when the current pause began
	pausedTotal time.Duration // cumulative paused duration
}

// NewPausableClock creates a running pausable clock over the base Clock.
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns the current game time.
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.pausedTotal)
	}
	return c.base.Now().Add(-c.pausedTotal)
}

// Pause freezes game time. Pausing an already paused clock does nothing.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.base.Now()
}

// Resume continues game time from the pause point. Resuming a running clock
// does nothing.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.base.Now().Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether game time is currently frozen.
func (c *PausableClock) Paused() bool {
	return c.paused
}
