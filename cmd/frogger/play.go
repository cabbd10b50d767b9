package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Frogger.

Controls:
  Arrows/WASD  - Hop
  P/Esc        - Pause
  R            - Restart (after the game ends)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  frogger play
  frogger play --seed 42
  frogger play --config ./my-frogger.yaml --log-file frogger.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	frogger.SetConfigPath(flagConfig)
	game := frogger.New()
	game.SetLogger(logger)

	logger.Info("starting", "fps", cfg.TickRate, "width", width, "height", height, "config", flagConfig)

	if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
