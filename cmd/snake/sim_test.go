package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []core.Action
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"all actions", "UDLR.", []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionNone}, false},
		{"lowercase and spaces", "u d", []core.Action{core.ActionUp, core.ActionDown}, false},
		{"invalid", "UX", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScript(tt.script)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScript(%q) error = %v, wantErr %v", tt.script, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseScript(%q) = %v, expected %v", tt.script, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("action %d = %v, expected %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunSimDeterministic(t *testing.T) {
	rc := core.DefaultConfig()
	rc.Seed = 99

	var a, b bytes.Buffer
	if err := runSim(&a, rc, 60, "DDDDLLLLUUUU", false); err != nil {
		t.Fatalf("runSim error: %v", err)
	}
	if err := runSim(&b, rc, 60, "DDDDLLLLUUUU", false); err != nil {
		t.Fatalf("runSim error: %v", err)
	}
	if a.String() != b.String() {
		t.Error("same seed and script produced different output")
	}
	if !strings.Contains(a.String(), "Tick: 60") {
		t.Errorf("output missing final tick:\n%s", a.String())
	}
}

func TestRunSimScriptExtendsTicks(t *testing.T) {
	var out bytes.Buffer
	if err := runSim(&out, core.DefaultConfig(), 2, "RRRRR", false); err != nil {
		t.Fatalf("runSim error: %v", err)
	}
	if !strings.Contains(out.String(), "Tick: 5") {
		t.Errorf("output = %q, expected 5 ticks", out.String())
	}
}

func TestRunSimBoardSize(t *testing.T) {
	var out bytes.Buffer
	if err := runSim(&out, core.DefaultConfig(), 1, "", false); err != nil {
		t.Fatalf("runSim error: %v", err)
	}
	board, _, _ := strings.Cut(out.String(), "\n\n")
	lines := strings.Split(board, "\n")
	if len(lines) != 24 {
		t.Errorf("board has %d lines, expected 24", len(lines))
	}
	if len(lines[0]) != 64 {
		t.Errorf("board row width = %d, expected 64", len(lines[0]))
	}
}

func TestRunSimErrors(t *testing.T) {
	var out bytes.Buffer
	if err := runSim(&out, core.DefaultConfig(), 1, "Z", false); err == nil {
		t.Error("runSim with bad script returned nil error")
	}
}
