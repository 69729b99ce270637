package game

import "math"

// WrapPosition wraps a position into the toroidal screen rectangle.
// Each axis is reduced with ((v mod dim) + dim) mod dim so the result is
// non-negative and inside [0, dim) even for negative coordinates.
func WrapPosition(x, y, width, height float64) (float64, float64) {
	return wrapAxis(x, width), wrapAxis(y, height)
}

func wrapAxis(v, dim float64) float64 {
	return math.Mod(math.Mod(v, dim)+dim, dim)
}

// Direction converts a heading in degrees to a unit vector in screen
// coordinates. The y component is negated so increasing angles rotate
// counter-clockwise on screen.
func Direction(angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return math.Cos(rad), -math.Sin(rad)
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(angleDeg float64) float64 {
	return math.Mod(math.Mod(angleDeg, 360)+360, 360)
}
