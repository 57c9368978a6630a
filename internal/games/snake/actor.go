package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Actor is the player-controlled snake.
type Actor struct {
	grid  Grid
	rng   *rand.Rand
	color core.Color

	body       []Cell // Head at index 0
	length     int    // Target length; body is trimmed to it on every move
	heading    Heading
	pending    Heading // Buffered heading, applied by CommitHeading
	hasPending bool
}

// NewActor creates a snake of length 1 at the center of the grid, heading right.
func NewActor(grid Grid, rng *rand.Rand, color core.Color) *Actor {
	return &Actor{
		grid:    grid,
		rng:     rng,
		color:   color,
		body:    []Cell{grid.Center()},
		length:  1,
		heading: HeadingRight,
	}
}

// SetPendingHeading buffers h for the next CommitHeading.
// A heading that reverses the current one is rejected and false is returned.
func (a *Actor) SetPendingHeading(h Heading) bool {
	if h == a.heading.Opposite() {
		return false
	}
	a.pending = h
	a.hasPending = true
	return true
}

// CommitHeading applies the buffered heading, if any.
func (a *Actor) CommitHeading() {
	if !a.hasPending {
		return
	}
	a.heading = a.pending
	a.hasPending = false
}

// Advance moves the head one cell along the current heading.
// When the body grows past the target length the tail is removed and
// returned with trimmed set, so the renderer can erase it.
func (a *Actor) Advance() (tail Cell, trimmed bool) {
	head := a.grid.Step(a.Head(), a.heading)
	a.body = slices.Insert(a.body, 0, head)

	if len(a.body) > a.length {
		tail = a.body[len(a.body)-1]
		a.body = a.body[:len(a.body)-1]
		return tail, true
	}
	return Cell{}, false
}

// Grow extends the target length by one. The extra segment appears on the
// next Advance, which skips trimming once.
func (a *Actor) Grow() {
	a.length++
}

// Head returns the head cell.
func (a *Actor) Head() Cell {
	return a.body[0]
}

// SelfCollision reports whether the head overlaps the body.
// Index 1 is the neck and is always adjacent to the head, so comparison
// starts at index 2.
func (a *Actor) SelfCollision() bool {
	if len(a.body) < 3 {
		return false
	}
	return slices.Contains(a.body[2:], a.body[0])
}

// Reset shrinks the snake back to one segment at the center with a random heading.
func (a *Actor) Reset() {
	a.length = 1
	a.body = []Cell{a.grid.Center()}
	a.heading = Headings[a.rng.Intn(len(Headings))]
	a.hasPending = false
}

// Body returns a copy of the body, head first.
func (a *Actor) Body() []Cell {
	return slices.Clone(a.body)
}

// Len returns the target length.
func (a *Actor) Len() int {
	return a.length
}

// Heading returns the current heading.
func (a *Actor) Heading() Heading {
	return a.heading
}

// Cells implements Renderable.
func (a *Actor) Cells() []Cell {
	return a.Body()
}

// Color implements Renderable.
func (a *Actor) Color() core.Color {
	return a.color
}
