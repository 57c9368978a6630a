package core

// Board describes the playing surface in surface units (pixels in the
// classic layout). Cells are CellSize squares addressed by their top-left
// corner, so every coordinate is a multiple of CellSize.
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// Valid reports whether the board holds at least one cell and both sides
// are whole multiples of the cell size.
func (b Board) Valid() bool {
	return b.CellSize > 0 && b.Width >= b.CellSize && b.Height >= b.CellSize &&
		b.Width%b.CellSize == 0 && b.Height%b.CellSize == 0
}

// Cols returns the number of cells per row.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cells per column.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// RuntimeConfig contains configuration passed to games at initialization.
// It is built once at startup and handed by value to the game loop and the
// renderer; nothing in it changes while a game is running.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
	Board    Board
	Palette  Palette
}

// DefaultConfig returns a RuntimeConfig matching the classic 640x480 game.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		Board: Board{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		Palette: Palette{
			Background: "#000000",
			Border:     "#5DD8E4",
			Food:       "#FF0000",
			Snake:      "#00FF00",
		},
	}
}

// Event names something notable that happened during a tick.
type Event string

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick   uint64 // Ticks simulated so far
	Length int    // Current snake length
	Resets int    // Number of self-collision resets
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
