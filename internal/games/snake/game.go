// Package snake implements the classic wraparound Snake: the snake moves
// one cell per tick, grows by eating food and starts over from the center
// when it runs into itself.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Events reported in core.StepResult.
const (
	EventFoodEaten     core.Event = "food_eaten"
	EventSelfCollision core.Event = "self_collision"
)

// Game implements the Snake game loop.
type Game struct {
	cfg      core.RuntimeConfig
	rng      *rand.Rand
	grid     Grid
	actor    *Actor
	food     *Food
	renderer *Renderer

	tick   uint64
	resets int

	frame        Frame
	unrendered   int // Steps since the last Render
	lastCollided int // Length the snake had before its last reset
}

// New creates a new Snake game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
// A zero or inconsistent board falls back to the classic 640x480 layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if !cfg.Board.Valid() {
		cfg.Board = def.Board
	}
	if cfg.Palette == (core.Palette{}) {
		cfg.Palette = def.Palette
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = NewGrid(cfg.Board)
	g.actor = NewActor(g.grid, g.rng, cfg.Palette.Snake)
	g.food = NewFood(g.grid, g.rng, cfg.Palette.Food)
	g.food.Relocate(NewCellSet(g.actor.Body()...))
	g.renderer = NewRenderer(cfg)
	g.tick = 0
	g.resets = 0
	g.lastCollided = 0

	g.frame = g.newFrame(Cell{}, false, true)
	g.unrendered = 0
}

// Step advances the game by one tick.
// Quit is handled by the platform before the game sees the frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range input.Events() {
		if h, ok := headingFor(a); ok {
			g.actor.SetPendingHeading(h)
		}
	}
	g.actor.CommitHeading()

	tail, trimmed := g.actor.Advance()

	var events []core.Event
	cleared := false
	switch {
	case g.actor.Head() == g.food.Position():
		g.actor.Grow()
		g.food.Relocate(NewCellSet(g.actor.Body()...))
		events = append(events, EventFoodEaten)
	case g.actor.SelfCollision():
		g.lastCollided = g.actor.Len()
		cleared = true
		g.actor.Reset()
		g.resets++
		events = append(events, EventSelfCollision)
	}

	g.frame = g.newFrame(tail, trimmed, cleared)
	g.unrendered++

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) newFrame(tail Cell, trimmed, cleared bool) Frame {
	return Frame{
		Snake:   SpriteOf(g.actor),
		Food:    SpriteOf(g.food),
		Tail:    tail,
		HasTail: trimmed,
		Cleared: cleared,
	}
}

// Frame returns what the last tick produced for the renderer.
func (g *Game) Frame() Frame {
	return g.frame
}

// Render draws the latest frame onto dst. dst should be the same buffer
// across calls; it is drawn incrementally.
func (g *Game) Render(dst *core.Screen) {
	if g.unrendered > 1 {
		// Tails trimmed by skipped frames were never erased.
		g.renderer.Invalidate()
	}
	g.renderer.Draw(dst, g.frame)
	g.unrendered = 0
}

// BoardSize returns the screen area the board needs, in characters.
func (g *Game) BoardSize() (w, h int) {
	return g.renderer.Size()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.tick,
		Length: g.actor.Len(),
		Resets: g.resets,
	}
}

// LastCollisionLength returns the snake length right before the latest reset.
func (g *Game) LastCollisionLength() int {
	return g.lastCollided
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.actor.Head()
	food := g.food.Position()
	fmt.Fprintf(&b, "Tick: %d, Length: %d, Resets: %d\n", g.tick, g.actor.Len(), g.resets)
	fmt.Fprintf(&b, "Head: (%d, %d), Heading: %s\n", head.X, head.Y, g.actor.Heading())
	fmt.Fprintf(&b, "Food: (%d, %d)\n", food.X, food.Y)
	return b.String()
}
