package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawCenteredText draws s horizontally centered on cx with its
// baseline at y. Face7x13 is fixed width with a 7px advance, so the
// centering math stays exact.
func drawCenteredText(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	x := cx - len(s)*7/2
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// blinkOn reports whether a blinking prompt is in its visible phase.
// Blink timing uses the wall clock, not the session clock, so prompts
// keep flashing on screens where the session clock is frozen.
func blinkOn() bool {
	return time.Now().UnixMilli()/blinkPeriodMS%2 == 0
}

// drawStartScreen draws the title screen shown before the first game.
func (a *App) drawStartScreen(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.drawStarfield(screen)

	cx := a.cfg.ScreenWidth / 2
	cy := a.cfg.ScreenHeight / 2

	drawCenteredText(screen, "ASTEROIDS", cx, cy-60, colorTitle)
	drawCenteredText(screen, "Arrow Keys to Move | Space to Shoot", cx, cy-10, colorDimText)
	drawCenteredText(screen, "ESC to Pause", cx, cy+10, colorDimText)
	if blinkOn() {
		drawCenteredText(screen, "Press SPACE to Start", cx, cy+60, colorText)
	}
}

// drawHUD draws the in-game score and pause hint.
func (a *App) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", a.session.Score()), hudMarginX, hudMarginY)
	ebitenutil.DebugPrintAt(screen, "ESC to Pause", a.cfg.ScreenWidth-pauseHintMargin, hudMarginY)
}

// drawPauseOverlay dims the frozen scene and shows the resume hint.
// The caller draws the world first, so everything stays visible under
// the overlay.
func (a *App) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.cfg.ScreenWidth), float32(a.cfg.ScreenHeight), colorOverlay, false)

	cx := a.cfg.ScreenWidth / 2
	cy := a.cfg.ScreenHeight / 2

	drawCenteredText(screen, "PAUSED", cx, cy-10, colorText)
	drawCenteredText(screen, "Press ESC to Resume", cx, cy+20, colorDimText)
}

// drawGameOverScreen draws the end screen with the final score.
func (a *App) drawGameOverScreen(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.drawStarfield(screen)

	cx := a.cfg.ScreenWidth / 2
	cy := a.cfg.ScreenHeight / 2

	drawCenteredText(screen, "GAME OVER", cx, cy-60, colorGameOver)
	drawCenteredText(screen, fmt.Sprintf("Final Score: %d", a.session.Score()), cx, cy-10, colorText)
	drawCenteredText(screen, "Press R to Restart", cx, cy+40, colorRestart)
	drawCenteredText(screen, "Press Q to Quit", cx, cy+60, colorQuit)
}
