package game

import "time"

// Ship is the player's vessel. Handling constants are baked in at creation
// from ShipConfig; LastFired gates the weapon through the session clock.
type Ship struct {
	Entity

	// Handling, from ShipConfig
	Thrust   float64 // acceleration per tick while thrusting
	MaxSpeed float64 // velocity magnitude cap in pixels per tick
	TurnRate float64 // degrees per second
	Damping  float64 // velocity multiplier applied every tick

	Cooldown  time.Duration // minimum time between shots
	LastFired time.Time     // zero value allows an immediate first shot
}

// NewShip creates a ship at the given position with zero velocity, facing
// heading 0.
func NewShip(x, y float64, cfg ShipConfig) *Ship {
	return &Ship{
		Entity: Entity{
			X:      x,
			Y:      y,
			Radius: cfg.Radius,
		},
		Thrust:   cfg.Thrust,
		MaxSpeed: cfg.MaxSpeed,
		TurnRate: cfg.TurnRate,
		Damping:  cfg.Damping,
		Cooldown: cfg.FireCooldown(),
	}
}

// Steer applies one tick of steering input. Rotation scales with elapsed
// time; thrust and damping are per tick. Damping runs every tick whether or
// not any key is held, which produces the floaty drift.
func (s *Ship) Steer(in InputFrame, dt float64) {
	if in.TurnLeft {
		s.Rotation = NormalizeDegrees(s.Rotation + s.TurnRate*dt)
	}
	if in.TurnRight {
		s.Rotation = NormalizeDegrees(s.Rotation - s.TurnRate*dt)
	}

	if in.Thrust {
		dx, dy := Direction(s.Rotation)
		s.VX += dx * s.Thrust
		s.VY += dy * s.Thrust

		// Clamp speed, preserving direction. A zero-length velocity never
		// exceeds the cap, so the scale below cannot divide by zero.
		if speed := s.Entity.Speed(); speed > s.MaxSpeed {
			scale := s.MaxSpeed / speed
			s.VX *= scale
			s.VY *= scale
		}
	}

	s.VX *= s.Damping
	s.VY *= s.Damping
}

// CanFire reports whether the cooldown has elapsed at the given game time.
func (s *Ship) CanFire(now time.Time) bool {
	return now.Sub(s.LastFired) >= s.Cooldown
}

// Fire records the shot time and spawns a projectile at the ship's nose,
// inheriting the ship's velocity on top of the muzzle speed.
func (s *Ship) Fire(now time.Time, cfg ProjectileConfig) *Projectile {
	s.LastFired = now

	dx, dy := Direction(s.Rotation)
	return &Projectile{
		Entity: Entity{
			X:        s.X + dx*s.Radius,
			Y:        s.Y + dy*s.Radius,
			VX:       dx*cfg.Speed + s.VX,
			VY:       dy*cfg.Speed + s.VY,
			Rotation: s.Rotation,
			Radius:   cfg.Radius,
		},
		SpawnedAt: now,
	}
}
