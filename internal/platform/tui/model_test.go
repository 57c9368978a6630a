package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(screenH int, buf *bytes.Buffer) Model {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 80
	cfg.ScreenH = screenH
	cfg.Seed = 42

	logger := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	m := NewModel(snake.New(), cfg, logger, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesGame(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(25, &buf)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick returned nil cmd, expected next tick")
	}
	if m.gameState.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.gameState.Tick)
	}
	if m.gameState.Length != 1 {
		t.Errorf("Length = %d, expected 1", m.gameState.Length)
	}
}

func TestModelQueuesDirectionUntilTick(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(25, &buf)
	g := m.game.(*snake.Game)
	start := g.Snapshot()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if len(m.inputFrame.Events()) != 1 {
		t.Fatalf("queued events = %d, expected 1", len(m.inputFrame.Events()))
	}
	m, _ = update(t, m, TickMsg{})

	if len(m.inputFrame.Events()) != 0 {
		t.Errorf("queued events after tick = %d, expected 0", len(m.inputFrame.Events()))
	}
	snap := g.Snapshot()
	if snap.HeadX != start.HeadX || snap.HeadY != start.HeadY+20 {
		t.Errorf("head = (%d, %d), expected (%d, %d)", snap.HeadX, snap.HeadY, start.HeadX, start.HeadY+20)
	}
}

func TestModelQuit(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(25, &buf)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit cmd produced %T, expected tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Errorf("View after quit = %q, expected empty", m.View())
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("log = %q, expected quit entry", buf.String())
	}
}

func TestModelHelpFooter(t *testing.T) {
	tests := []struct {
		name     string
		screenH  int
		wantH    int
		wantHelp bool
	}{
		{"room for footer", 30, 29, true},
		{"exact board height", 24, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := newTestModel(tt.screenH, &buf)

			if m.screen.Height() != tt.wantH {
				t.Errorf("screen height = %d, expected %d", m.screen.Height(), tt.wantH)
			}
			view := m.View()
			if got := strings.Contains(view, "quit"); got != tt.wantHelp {
				t.Errorf("help shown = %v, expected %v", got, tt.wantHelp)
			}
		})
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(25, &buf)
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
	if got := m.game.State().Tick; got != 3 {
		t.Errorf("Tick after resize = %d, expected 3", got)
	}
}

func TestModelLogsFoodEaten(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(25, &buf)

	m.logEvents(core.StepResult{
		State:  core.GameState{Tick: 7, Length: 2},
		Events: []core.Event{snake.EventFoodEaten},
	})
	if !strings.Contains(buf.String(), "food eaten") {
		t.Errorf("log = %q, expected food eaten entry", buf.String())
	}
}
