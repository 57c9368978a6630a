package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// collisionReporter is implemented by games that remember the length lost
// on their latest reset.
type collisionReporter interface {
	LastCollisionLength() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	painter    *Painter
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output; a nil renderer targets the local terminal.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Same fallback the game applies on Reset.
	if !cfg.Board.Valid() {
		cfg.Board = core.DefaultConfig().Board
	}

	m := Model{
		game:       game,
		painter:    NewPainter(renderer),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}
	w, h := m.screenSize()
	m.screen = core.NewScreen(w, h)
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Render(m.screen)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues direction input for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit", "game", m.game.ID(), "tick", m.gameState.Tick, "length", m.gameState.Length)
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Push(action)
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps running; the
// renderer notices the new size and redraws in full.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	w, h := m.screenSize()
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.game.Render(m.screen)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	m.game.Render(m.screen)

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	for _, ev := range result.Events {
		switch ev {
		case snake.EventFoodEaten:
			m.logger.Debug("food eaten", "tick", result.State.Tick, "length", result.State.Length)
		case snake.EventSelfCollision:
			lost := 0
			if r, ok := m.game.(collisionReporter); ok {
				lost = r.LastCollisionLength()
			}
			m.logger.Info("self collision", "tick", result.State.Tick, "length", lost, "resets", result.State.Resets)
		default:
			m.logger.Debug("event", "name", ev, "tick", result.State.Tick)
		}
	}
}

// screenSize returns the buffer size, leaving one line for the help footer
// when the terminal is taller than the board.
func (m Model) screenSize() (w, h int) {
	w, h = m.config.ScreenW, m.config.ScreenH
	if m.showHelp() {
		h--
	}
	return w, h
}

func (m Model) showHelp() bool {
	return m.config.ScreenH > m.config.Board.Rows()
}

// saveScreenshot saves the current screen as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshots directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.painter.Render(m.screen)
	if m.showHelp() {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Run starts the Bubble Tea program for the game in the local terminal.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger, nil)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
