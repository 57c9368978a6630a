// Package config provides YAML-based configuration loading for the snake
// game. Values are read once at startup and do not change while playing.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    BoardConfig   `yaml:"board"`
	TickRate int           `yaml:"tick_rate"`
	Palette  PaletteConfig `yaml:"palette"`
}

// BoardConfig defines the playing surface.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// PaletteConfig defines the board colors as "#RRGGBB" strings.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// Validate checks that the board splits into whole cells, the tick rate is
// positive and every color is a hex triplet.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, b.CellSize)
	}
	if b.Width < b.CellSize || b.Width%b.CellSize != 0 {
		return fmt.Errorf("%w: width %d is not a positive multiple of cell_size %d", ErrInvalidConfig, b.Width, b.CellSize)
	}
	if b.Height < b.CellSize || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: height %d is not a positive multiple of cell_size %d", ErrInvalidConfig, b.Height, b.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}

	colors := []struct {
		name  string
		value string
	}{
		{"background", c.Palette.Background},
		{"border", c.Palette.Border},
		{"food", c.Palette.Food},
		{"snake", c.Palette.Snake},
	}
	for _, col := range colors {
		if col.value == "" || !core.Color(col.value).Valid() {
			return fmt.Errorf("%w: palette.%s %q is not a #RRGGBB color", ErrInvalidConfig, col.name, col.value)
		}
	}
	return nil
}

// Runtime converts the configuration into the runtime form games consume.
// Screen size and seed are left for the platform to fill in.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.TickRate,
		Board: core.Board{
			Width:    c.Board.Width,
			Height:   c.Board.Height,
			CellSize: c.Board.CellSize,
		},
		Palette: core.Palette{
			Background: core.Color(c.Palette.Background),
			Border:     core.Color(c.Palette.Border),
			Food:       core.Color(c.Palette.Food),
			Snake:      core.Color(c.Palette.Snake),
		},
	}
}
