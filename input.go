package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"asteroids/game"
)

// readInput snapshots the keyboard for one frame. Steering keys report
// their held state; the action keys trigger only on the frame the key goes
// down, so holding space does not autofire past the cooldown gate.
func readInput() game.InputFrame {
	return game.InputFrame{
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Thrust:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Fire:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
