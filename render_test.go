package main

import (
	"math"
	"testing"

	"asteroids/game"
)

const testEpsilon = 1e-9

// TestRotatePoint_QuarterTurn tests the basic rotation math
func TestRotatePoint_QuarterTurn(t *testing.T) {
	p := rotatePoint(vec2{x: 1}, math.Pi/2)

	if math.Abs(p.x) > testEpsilon || math.Abs(p.y-1) > testEpsilon {
		t.Errorf("Expected (0, 1) after a quarter turn, got (%f, %f)", p.x, p.y)
	}
}

// TestRotatePoint_MatchesHeadingConvention tests that rotating the model nose
// by the negated heading lands it on the heading's direction vector, so ships
// are drawn pointing the way they fly.
func TestRotatePoint_MatchesHeadingConvention(t *testing.T) {
	for _, heading := range []float64{0, 45, 90, 210, 315} {
		dx, dy := game.Direction(heading)
		p := rotatePoint(vec2{x: 1}, -heading*math.Pi/180)

		if math.Abs(p.x-dx) > testEpsilon || math.Abs(p.y-dy) > testEpsilon {
			t.Errorf("Heading %f: rotated nose (%f, %f), direction (%f, %f)",
				heading, p.x, p.y, dx, dy)
		}
	}
}

// TestNewStarfield_DeterministicForSeed tests that a seed reproduces the backdrop
func TestNewStarfield_DeterministicForSeed(t *testing.T) {
	cfg := game.DefaultConfig()

	s1 := newStarfield(cfg, 42)
	s2 := newStarfield(cfg, 42)

	if len(s1) != starCount || len(s2) != starCount {
		t.Fatalf("Expected %d stars, got %d and %d", starCount, len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Errorf("Star %d differs between identical seeds: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}

// TestNewStarfield_StaysOnScreen tests star placement and size bounds
func TestNewStarfield_StaysOnScreen(t *testing.T) {
	cfg := game.DefaultConfig()

	for i, s := range newStarfield(cfg, 7) {
		if s.pos.x < 0 || s.pos.x >= float64(cfg.ScreenWidth) {
			t.Errorf("Star %d x=%f outside [0, %d)", i, s.pos.x, cfg.ScreenWidth)
		}
		if s.pos.y < 0 || s.pos.y >= float64(cfg.ScreenHeight) {
			t.Errorf("Star %d y=%f outside [0, %d)", i, s.pos.y, cfg.ScreenHeight)
		}
		if s.radius < starMinRadius || s.radius > starMaxRadius {
			t.Errorf("Star %d radius %f outside [%f, %f]", i, s.radius, starMinRadius, starMaxRadius)
		}
	}
}
