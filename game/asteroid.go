package game

import "math/rand"

// Asteroid size tiers. The numeric value is also the score multiplier and
// the remaining fragmentation depth.
const (
	SizeSmall  = 1
	SizeMedium = 2
	SizeLarge  = 3
)

// Asteroid is a drifting, slowly tumbling rock. Its velocity direction is
// rolled at creation and never changes; Rotation is purely cosmetic spin.
type Asteroid struct {
	Entity

	// Size tier: 3 large, 2 medium, 1 small
	Size int
}

// tierScale returns the visual scale for a size tier
func tierScale(size int) float64 {
	switch size {
	case SizeLarge:
		return 1.0
	case SizeMedium:
		return 0.6
	default:
		return 0.35
	}
}

// TierRadius returns the collision radius for a size tier.
func TierRadius(size int, cfg AsteroidConfig) float64 {
	return cfg.BaseSize * tierScale(size) / 2
}

// NewAsteroid creates an asteroid of the given size tier at a position.
// Drift heading is uniform over [0, 360); drift speed is uniform over the
// configured range divided by the size, so smaller tiers move faster; spin
// is uniform over ±MaxSpin.
func NewAsteroid(x, y float64, size int, rng *rand.Rand, cfg AsteroidConfig) *Asteroid {
	heading := rng.Float64() * 360
	speed := (cfg.MinDriftSpeed + rng.Float64()*(cfg.MaxDriftSpeed-cfg.MinDriftSpeed)) / float64(size)
	dx, dy := Direction(heading)

	return &Asteroid{
		Entity: Entity{
			X:      x,
			Y:      y,
			VX:     dx * speed,
			VY:     dy * speed,
			Spin:   (rng.Float64()*2 - 1) * cfg.MaxSpin,
			Radius: TierRadius(size, cfg),
		},
		Size: size,
	}
}

// BreakApart returns the fragments left behind when the asteroid is
// destroyed: exactly two asteroids one tier smaller at the parent's
// position, each independently randomized. The smallest tier leaves
// nothing.
func (a *Asteroid) BreakApart(rng *rand.Rand, cfg AsteroidConfig) []*Asteroid {
	if a.Size <= SizeSmall {
		return nil
	}
	return []*Asteroid{
		NewAsteroid(a.X, a.Y, a.Size-1, rng, cfg),
		NewAsteroid(a.X, a.Y, a.Size-1, rng, cfg),
	}
}
