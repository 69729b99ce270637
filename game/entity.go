package game

import "math"

// Entity holds the kinematic state shared by the ship, asteroids, and
// projectiles. Velocities are in pixels per tick; angles in degrees.
type Entity struct {
	// Position in screen coordinates
	X, Y float64

	// Velocity in pixels per tick
	VX, VY float64

	// Rotation is the drawn orientation in degrees, kept in [0, 360)
	Rotation float64

	// Spin in degrees per tick (asteroids tumble, the ship steers instead)
	Spin float64

	// Collision radius in pixels
	Radius float64
}

// Update advances the entity by one tick: apply spin, apply velocity, wrap
// the position into the toroidal screen rectangle. Mutates only the
// receiver; entities never read each other during motion.
func (e *Entity) Update(width, height float64) {
	if e.Spin != 0 {
		e.Rotation = NormalizeDegrees(e.Rotation + e.Spin)
	}
	e.X += e.VX
	e.Y += e.VY
	e.X, e.Y = WrapPosition(e.X, e.Y, width, height)
}

// DistanceTo calculates the distance to another entity
func (e *Entity) DistanceTo(other *Entity) float64 {
	dx := e.X - other.X
	dy := e.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlaps checks whether the collision circles of two entities intersect
func (e *Entity) Overlaps(other *Entity) bool {
	return e.DistanceTo(other) < e.Radius+other.Radius
}

// Speed returns the velocity magnitude in pixels per tick.
func (e *Entity) Speed() float64 {
	return math.Sqrt(e.VX*e.VX + e.VY*e.VY)
}
