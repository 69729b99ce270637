package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"asteroids/game"
)

// App adapts the simulation to ebiten's loop: it measures frame time,
// snapshots the keyboard, advances the session, and draws whichever screen
// the session's state calls for.
type App struct {
	cfg     game.Config
	session *game.Session
	stars   []star

	// Last update time for delta time calculation
	lastUpdate time.Time
}

func newApp(cfg game.Config, seed int64) *App {
	return &App{
		cfg:        cfg,
		session:    game.NewSession(cfg, game.SystemClock{}, seed),
		stars:      newStarfield(cfg, seed),
		lastUpdate: time.Now(),
	}
}

// Update advances the simulation by one frame.
func (a *App) Update() error {
	// Calculate delta time
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	// Clamp delta time to prevent large jumps
	if dt > 0.1 {
		dt = 0.1
	}

	a.session.Step(readInput(), dt)

	if a.session.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the screen for the current game-flow state. The paused
// screen draws the world exactly as it froze, under a translucent overlay.
func (a *App) Draw(screen *ebiten.Image) {
	switch a.session.State() {
	case game.StateStart:
		a.drawStartScreen(screen)
	case game.StatePlaying:
		a.drawWorld(screen)
		a.drawHUD(screen)
	case game.StatePaused:
		a.drawWorld(screen)
		a.drawHUD(screen)
		a.drawPauseOverlay(screen)
	case game.StateGameOver:
		a.drawGameOverScreen(screen)
	}
}

// Layout reports the fixed logical resolution; the window scales it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}
