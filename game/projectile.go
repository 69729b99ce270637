package game

import "time"

// Projectile is a fired shot. It wraps around the screen like everything
// else and dies when its lifetime runs out or it hits an asteroid.
type Projectile struct {
	Entity

	// SpawnedAt is the game time the shot was fired
	SpawnedAt time.Time
}

// Expired reports whether the projectile's lifetime has run out at the
// given game time.
func (p *Projectile) Expired(now time.Time, lifetime time.Duration) bool {
	return now.Sub(p.SpawnedAt) > lifetime
}
