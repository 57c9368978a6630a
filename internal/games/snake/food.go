package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single item the snake eats to grow.
type Food struct {
	grid     Grid
	rng      *rand.Rand
	color    core.Color
	position Cell
}

// NewFood creates food at the grid center. Call Relocate before use so the
// position respects the occupied cells.
func NewFood(grid Grid, rng *rand.Rand, color core.Color) *Food {
	return &Food{
		grid:     grid,
		rng:      rng,
		color:    color,
		position: grid.Center(),
	}
}

// Relocate moves the food to a random cell outside occupied and returns it.
// It keeps sampling until a free cell comes up, so occupied must leave at
// least one cell of the grid free.
func (f *Food) Relocate(occupied CellSet) Cell {
	for {
		c := f.grid.RandomCell(f.rng)
		if !occupied.Contains(c) {
			f.position = c
			return c
		}
	}
}

// Position returns the current food cell.
func (f *Food) Position() Cell {
	return f.position
}

// Cells implements Renderable.
func (f *Food) Cells() []Cell {
	return []Cell{f.position}
}

// Color implements Renderable.
func (f *Food) Color() core.Color {
	return f.color
}
