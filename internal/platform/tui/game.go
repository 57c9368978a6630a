package tui

import "github.com/vovakirdan/tui-snake/internal/core"

// Game is what the platform drives: pure simulation that knows nothing of
// Bubble Tea. The model handles input polling, frame pacing and output.
type Game interface {
	// ID names the game in log fields and screenshot files.
	ID() string

	// Title is shown as the terminal window title.
	Title() string

	// Reset initializes the game state from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. Input holds the actions
	// polled since the previous tick, in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the latest tick into dst. The same buffer is passed
	// every time, so games may draw incrementally.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
