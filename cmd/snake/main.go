// snake is a terminal Snake game: eat food, grow, wrap around the edges and
// start over when you run into yourself.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run a headless simulation and print the board
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Load configuration from a YAML file
//	--fps <rate>    - Override tick rate (0 = use config)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game for the terminal.

The snake moves on a fixed grid and wraps around the edges. Eat the red
food to grow. Running into your own body starts the game over.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  snake
  snake --fps 10 --seed 42
  snake serve --ssh :2222
  snake sim --ticks 50 --script RRDDLL`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default: no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration file and applies command-line overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// loadRuntime builds the runtime config for a game with the given screen size.
func loadRuntime(width, height int) (core.RuntimeConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	rc := cfg.Runtime()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = flagSeed
	return rc, nil
}

// newLogger opens the --log file. Without one, log output is discarded
// since the game owns the terminal.
func newLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
