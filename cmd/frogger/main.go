// frogger is a terminal Frogger game.
//
// Usage:
//
//	frogger play             - Play the game
//	frogger board            - Print the rolled board parameters for a seed
//	frogger config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for a reproducible board
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write game events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - Hop across the road and river in your terminal",
	Long: `Frogger is a terminal take on the arcade classic. Guide frogs across
a busy road and a river of drifting logs and turtles into the five slots
on the far bridge.

Available commands:
  play     - Play the game
  board    - Show the board a seed produces
  config   - Print the default configuration

Examples:
  frogger play
  frogger play --seed 42 --log-file frogger.log
  frogger board --seed 42
  frogger config > my-frogger.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the --log-file logger. Without a log file events are
// discarded, since the terminal belongs to the game.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
