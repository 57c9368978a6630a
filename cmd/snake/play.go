package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Change direction
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake play
  snake play --fps 10
  snake play --seed 42 --log snake.log
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := loadRuntime(width, height)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake")
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(snake.New(), cfg, logger)
}
