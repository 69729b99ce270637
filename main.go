// asteroids is a windowed clone of the classic rock-blasting arcade game:
// steer an inertial ship across a wrapping screen, shoot drifting asteroids
// that split into smaller, faster fragments, and stay out of their way.
//
// Flags:
//
//	--config <path>  - Load gameplay tuning from a YAML file
//	--seed <value>   - Set RNG seed for a reproducible asteroid field
//	--fps <rate>     - Override the simulation tick rate
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"asteroids/game"
)

var (
	flagConfig string
	flagSeed   int64
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Classic asteroid-blasting arcade game",
	Long: `Asteroids is a small real-time arcade game: rotate and thrust an
inertial ship around a wrapping screen, shoot the drifting asteroids, and
dodge the fragments they split into.

Controls:
  Arrow keys  - rotate and thrust
  Space       - fire (and start the game)
  Escape      - pause toggle
  R / Q       - restart / quit from the game-over screen`,
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a gameplay tuning YAML file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation tick rate (0 = config value)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})

	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		logger.Warn("using default configuration", "error", err)
	}
	if flagFPS > 0 {
		cfg.TargetTPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		"resolution", fmt.Sprintf("%dx%d", cfg.ScreenWidth, cfg.ScreenHeight),
		"tps", cfg.TargetTPS,
		"seed", seed)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TargetTPS)

	app := newApp(cfg, seed)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("session over", "score", app.session.Score())
	return nil
}
