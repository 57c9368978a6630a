package snake

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is how many terminal columns one grid cell takes.
// Terminal characters are about twice as tall as wide, so two columns
// make a roughly square cell.
const cellWidth = 2

// Renderable is anything drawn as a set of cells in one color.
type Renderable interface {
	Cells() []Cell
	Color() core.Color
}

// Sprite is a frozen copy of a Renderable.
type Sprite struct {
	cells []Cell
	color core.Color
}

// SpriteOf copies the current cells and color of r.
func SpriteOf(r Renderable) Sprite {
	return Sprite{cells: slices.Clone(r.Cells()), color: r.Color()}
}

// Cells implements Renderable.
func (s Sprite) Cells() []Cell { return s.cells }

// Color implements Renderable.
func (s Sprite) Color() core.Color { return s.color }

// Frame is what one tick hands to the renderer.
type Frame struct {
	Snake   Sprite
	Food    Sprite
	Tail    Cell // Cell vacated by the tail this tick
	HasTail bool
	Cleared bool // The snake was reset; wipe the board first
}

// Renderer draws frames onto a screen buffer incrementally: it erases the
// trimmed tail and paints the current body and food over what is already
// there. The board is wiped only on the first draw, after a resize, after
// Invalidate, or when a frame is marked Cleared.
type Renderer struct {
	board   core.Board
	grid    Grid
	palette core.Palette

	width, height int // Screen size at the last draw
	origin        core.Rect
	dirty         bool
}

// NewRenderer creates a renderer for the given configuration.
func NewRenderer(cfg core.RuntimeConfig) *Renderer {
	return &Renderer{
		board:   cfg.Board,
		grid:    NewGrid(cfg.Board),
		palette: cfg.Palette,
		dirty:   true,
	}
}

// Invalidate forces the next Draw to wipe and repaint the whole board.
func (r *Renderer) Invalidate() {
	r.dirty = true
}

// Size returns the screen area the board needs, in characters.
func (r *Renderer) Size() (w, h int) {
	return r.board.Cols() * cellWidth, r.board.Rows()
}

// Draw paints frame f onto dst.
func (r *Renderer) Draw(dst *core.Screen, f Frame) {
	if dst.Width() != r.width || dst.Height() != r.height {
		r.width, r.height = dst.Width(), dst.Height()
		r.dirty = true
	}

	w, h := r.Size()
	if !dst.Bounds().Fits(w, h) {
		r.drawTooSmall(dst, w, h)
		r.dirty = true
		return
	}

	if r.dirty || f.Cleared {
		r.origin = dst.Bounds().CenterIn(w, h)
		dst.Clear()
		dst.DrawRect(r.origin, r.background())
		r.dirty = false
	} else if f.HasTail {
		r.drawCell(dst, f.Tail, r.background(), r.background())
	}

	r.drawSprite(dst, f.Snake)
	r.drawSprite(dst, f.Food)
}

// drawSprite paints every cell of e as a bordered square.
func (r *Renderer) drawSprite(dst *core.Screen, e Renderable) {
	left := core.Glyph{Rune: '[', Fg: r.palette.Border, Bg: e.Color()}
	right := core.Glyph{Rune: ']', Fg: r.palette.Border, Bg: e.Color()}
	for _, c := range e.Cells() {
		r.drawCell(dst, c, left, right)
	}
}

func (r *Renderer) drawCell(dst *core.Screen, c Cell, left, right core.Glyph) {
	col, row := r.grid.Position(c)
	x := r.origin.X + col*cellWidth
	y := r.origin.Y + row
	dst.SetGlyph(x, y, left)
	dst.SetGlyph(x+1, y, right)
}

func (r *Renderer) background() core.Glyph {
	return core.Glyph{Rune: ' ', Bg: r.palette.Background}
}

func (r *Renderer) drawTooSmall(dst *core.Screen, w, h int) {
	dst.Clear()
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
}
