package game

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// TestWrapPosition_InsideUnchanged tests that in-bounds positions pass through
func TestWrapPosition_InsideUnchanged(t *testing.T) {
	x, y := WrapPosition(100, 200, 800, 600)

	if x != 100 || y != 200 {
		t.Errorf("Expected (100, 200) to pass through, got (%f, %f)", x, y)
	}
}

// TestWrapPosition_NegativeWrapsToFarSide tests that negative coordinates wrap positive
func TestWrapPosition_NegativeWrapsToFarSide(t *testing.T) {
	x, y := WrapPosition(-10, -20, 800, 600)

	if math.Abs(x-790) > epsilon {
		t.Errorf("Expected x=-10 to wrap to 790, got %f", x)
	}
	if math.Abs(y-580) > epsilon {
		t.Errorf("Expected y=-20 to wrap to 580, got %f", y)
	}
}

// TestWrapPosition_BeyondEdgeWraps tests that overshooting coordinates wrap around
func TestWrapPosition_BeyondEdgeWraps(t *testing.T) {
	x, y := WrapPosition(810, 605, 800, 600)

	if math.Abs(x-10) > epsilon {
		t.Errorf("Expected x=810 to wrap to 10, got %f", x)
	}
	if math.Abs(y-5) > epsilon {
		t.Errorf("Expected y=605 to wrap to 5, got %f", y)
	}
}

// TestWrapPosition_ExactDimensionWrapsToZero tests the boundary itself wraps to 0
func TestWrapPosition_ExactDimensionWrapsToZero(t *testing.T) {
	x, y := WrapPosition(800, 600, 800, 600)

	if x != 0 || y != 0 {
		t.Errorf("Expected (800, 600) to wrap to (0, 0), got (%f, %f)", x, y)
	}
}

// TestWrapPosition_ResultAlwaysInRange tests the wrap range holds for wild inputs
func TestWrapPosition_ResultAlwaysInRange(t *testing.T) {
	inputs := []float64{-12345.678, -800, -0.001, 0, 399.5, 799.999, 800, 2400.25, 1e6}

	for _, vx := range inputs {
		for _, vy := range inputs {
			x, y := WrapPosition(vx, vy, 800, 600)
			if x < 0 || x >= 800 {
				t.Errorf("WrapPosition(%f, %f): x=%f out of [0, 800)", vx, vy, x)
			}
			if y < 0 || y >= 600 {
				t.Errorf("WrapPosition(%f, %f): y=%f out of [0, 600)", vx, vy, y)
			}
		}
	}
}

// TestWrapPosition_Idempotent tests that wrapping a wrapped position is a no-op
func TestWrapPosition_Idempotent(t *testing.T) {
	inputs := []float64{-12345.678, -0.5, 0, 250, 799.999, 1600.25}

	for _, vx := range inputs {
		for _, vy := range inputs {
			x1, y1 := WrapPosition(vx, vy, 800, 600)
			x2, y2 := WrapPosition(x1, y1, 800, 600)
			if math.Abs(x1-x2) > epsilon || math.Abs(y1-y2) > epsilon {
				t.Errorf("Wrap not idempotent for (%f, %f): (%f, %f) then (%f, %f)",
					vx, vy, x1, y1, x2, y2)
			}
		}
	}
}

// TestDirection_CardinalAngles tests the screen-space heading convention:
// 0 points right, 90 points up (negative y), and so on counter-clockwise.
func TestDirection_CardinalAngles(t *testing.T) {
	testCases := []struct {
		name   string
		angle  float64
		dx, dy float64
	}{
		{"Right", 0, 1, 0},
		{"Up", 90, 0, -1},
		{"Left", 180, -1, 0},
		{"Down", 270, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := Direction(tc.angle)
			if math.Abs(dx-tc.dx) > epsilon || math.Abs(dy-tc.dy) > epsilon {
				t.Errorf("Direction(%f) = (%f, %f), expected (%f, %f)",
					tc.angle, dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

// TestDirection_UnitLength tests that every heading maps to a unit vector
func TestDirection_UnitLength(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 30 {
		dx, dy := Direction(angle)
		if length := math.Hypot(dx, dy); math.Abs(length-1) > epsilon {
			t.Errorf("Direction(%f) has length %f, expected 1", angle, length)
		}
	}
}

// TestNormalizeDegrees tests angle wrapping into [0, 360)
func TestNormalizeDegrees(t *testing.T) {
	testCases := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-90, 270},
		{-360, 0},
		{450, 90},
		{720, 0},
	}

	for _, tc := range testCases {
		if got := NormalizeDegrees(tc.in); math.Abs(got-tc.expected) > epsilon {
			t.Errorf("NormalizeDegrees(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}
