package game

import (
	"math"
	"testing"
)

// TestEntityUpdate_AppliesVelocityAndWraps tests one tick of motion across the edge
func TestEntityUpdate_AppliesVelocityAndWraps(t *testing.T) {
	e := Entity{X: 795, Y: 5, VX: 10, VY: -10}

	e.Update(800, 600)

	if math.Abs(e.X-5) > epsilon {
		t.Errorf("Expected X to wrap to 5, got %f", e.X)
	}
	if math.Abs(e.Y-595) > epsilon {
		t.Errorf("Expected Y to wrap to 595, got %f", e.Y)
	}
}

// TestEntityUpdate_SpinAccumulatesAndWraps tests tumble angle wrapping at 360
func TestEntityUpdate_SpinAccumulatesAndWraps(t *testing.T) {
	e := Entity{Rotation: 350, Spin: 15}

	e.Update(800, 600)

	if math.Abs(e.Rotation-5) > epsilon {
		t.Errorf("Expected tumble angle to wrap to 5, got %f", e.Rotation)
	}
}

// TestEntityUpdate_ZeroSpinHoldsRotation tests that non-spinning entities keep their angle
func TestEntityUpdate_ZeroSpinHoldsRotation(t *testing.T) {
	e := Entity{Rotation: 123.25}

	e.Update(800, 600)

	if e.Rotation != 123.25 {
		t.Errorf("Expected rotation to stay 123.25, got %f", e.Rotation)
	}
}

// TestDistanceTo tests straight-line distance between entity centers
func TestDistanceTo(t *testing.T) {
	a := Entity{X: 0, Y: 0}
	b := Entity{X: 3, Y: 4}

	if d := a.DistanceTo(&b); math.Abs(d-5) > epsilon {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

// TestOverlaps_StrictBoundary tests that circles merely touching do not collide
func TestOverlaps_StrictBoundary(t *testing.T) {
	a := Entity{X: 0, Y: 0, Radius: 10}
	b := Entity{X: 15, Y: 0, Radius: 5}

	if a.Overlaps(&b) {
		t.Error("Expected no overlap when circles exactly touch")
	}

	b.X = 14.9
	if !a.Overlaps(&b) {
		t.Error("Expected overlap when circles intersect")
	}
}

// TestSpeed tests the velocity magnitude
func TestSpeed(t *testing.T) {
	e := Entity{VX: 3, VY: 4}

	if s := e.Speed(); math.Abs(s-5) > epsilon {
		t.Errorf("Expected speed 5, got %f", s)
	}
}
