package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is one grid-aligned square identified by its top-left corner.
// Both coordinates are multiples of the cell size.
type Cell struct {
	X, Y int
}

// CellSet is a set of cells. A nil or empty set excludes nothing.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts a cell.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether c is in the set. Safe on a nil set.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Grid is the wraparound playing surface.
type Grid struct {
	width    int
	height   int
	cellSize int
}

// NewGrid creates a grid for the given board dimensions.
func NewGrid(b core.Board) Grid {
	return Grid{
		width:    b.Width,
		height:   b.Height,
		cellSize: b.CellSize,
	}
}

// Width returns the surface width.
func (g Grid) Width() int { return g.width }

// Height returns the surface height.
func (g Grid) Height() int { return g.height }

// CellSize returns the side length of one cell.
func (g Grid) CellSize() int { return g.cellSize }

// Cols returns the number of cells per row.
func (g Grid) Cols() int { return g.width / g.cellSize }

// Rows returns the number of cells per column.
func (g Grid) Rows() int { return g.height / g.cellSize }

// Center returns the cell containing the middle of the surface.
func (g Grid) Center() Cell {
	return Cell{
		X: (g.width / 2) / g.cellSize * g.cellSize,
		Y: (g.height / 2) / g.cellSize * g.cellSize,
	}
}

// Step returns the cell one move away from c in direction h.
// Leaving an edge re-enters from the opposite one.
func (g Grid) Step(c Cell, h Heading) Cell {
	dx, dy := h.Vector()
	return Cell{
		X: core.Mod(c.X+dx*g.cellSize, g.width),
		Y: core.Mod(c.Y+dy*g.cellSize, g.height),
	}
}

// Contains reports whether c is an aligned cell inside the surface.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height &&
		c.X%g.cellSize == 0 && c.Y%g.cellSize == 0
}

// RandomCell picks a uniformly random aligned cell.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Cols()) * g.cellSize,
		Y: rng.Intn(g.Rows()) * g.cellSize,
	}
}

// Position converts a cell to its column and row.
func (g Grid) Position(c Cell) (col, row int) {
	return c.X / g.cellSize, c.Y / g.cellSize
}
