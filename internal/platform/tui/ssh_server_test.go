package tui

import (
	"testing"

	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestSessionConfig(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"fixed seed kept", 42},
		{"zero seed left for the model", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSSHServerConfig()
			cfg.Runtime.Seed = tt.seed
			cfg.Runtime.TickRate = 12
			s := &SSHServer{config: cfg}

			rc := s.sessionConfig(ssh.Window{Width: 100, Height: 30})
			if rc.ScreenW != 100 || rc.ScreenH != 30 {
				t.Errorf("screen = %dx%d, expected 100x30", rc.ScreenW, rc.ScreenH)
			}
			if rc.Seed != tt.seed {
				t.Errorf("Seed = %d, expected %d", rc.Seed, tt.seed)
			}
			if rc.TickRate != 12 {
				t.Errorf("TickRate = %d, expected 12", rc.TickRate)
			}
		})
	}
}

func TestSessionsWithSameSeedMatch(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Runtime.Seed = 7
	s := &SSHServer{config: cfg}
	win := ssh.Window{Width: 80, Height: 25}

	a := NewModel(snake.New(), s.sessionConfig(win), nil, nil)
	b := NewModel(snake.New(), s.sessionConfig(win), nil, nil)
	a.Init()
	b.Init()
	for range 40 {
		a.handleTick()
		b.handleTick()
	}

	sa := a.game.(*snake.Game).Snapshot()
	sb := b.game.(*snake.Game).Snapshot()
	if sa != sb {
		t.Errorf("sessions diverged: %+v vs %+v", sa, sb)
	}
}

func TestNewSSHServerNeedsGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = t.TempDir() + "/host_key"
	if _, err := NewSSHServer(cfg, nil); err == nil {
		t.Error("NewSSHServer without a game factory should fail")
	}
}

func TestNewModelZeroBoard(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 20, Seed: 1}

	m := NewModel(snake.New(), cfg, nil, nil)
	m.Init()

	if m.config.Board != core.DefaultConfig().Board {
		t.Errorf("Board = %+v, expected classic fallback", m.config.Board)
	}
	if !m.showHelp() || m.screen.Height() != 29 {
		t.Errorf("screen height = %d, expected 29 with footer", m.screen.Height())
	}
}
