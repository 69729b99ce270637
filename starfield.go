package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids/game"
)

// newStarfield scatters a fixed set of dim background stars across the
// screen. The field derives from the session seed, so a given seed
// reproduces the backdrop along with the asteroid field.
func newStarfield(cfg game.Config, seed int64) []star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			pos: vec2{
				x: rng.Float64() * float64(cfg.ScreenWidth),
				y: rng.Float64() * float64(cfg.ScreenHeight),
			},
			radius: starMinRadius + rng.Float64()*(starMaxRadius-starMinRadius),
		}
	}
	return stars
}

// drawStarfield draws the background stars.
func (a *App) drawStarfield(screen *ebiten.Image) {
	for _, s := range a.stars {
		vector.DrawFilledCircle(screen, float32(s.pos.x), float32(s.pos.y), float32(s.radius), colorStar, true)
	}
}
