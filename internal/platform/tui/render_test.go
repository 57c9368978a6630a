package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func plainPainter() *Painter {
	return NewPainter(lipgloss.NewRenderer(io.Discard))
}

func colorPainter() *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return NewPainter(r)
}

func TestPainterPlainMatchesScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetGlyph(2, 1, core.Glyph{Rune: '[', Fg: "#5DD8E4", Bg: "#00FF00"})
	s.SetGlyph(3, 1, core.Glyph{Rune: ']', Fg: "#5DD8E4", Bg: "#00FF00"})

	got := plainPainter().Render(s)
	if got != s.String() {
		t.Errorf("Render = %q, expected %q", got, s.String())
	}
}

func TestPainterColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	cell := core.Glyph{Rune: '[', Fg: "#5DD8E4", Bg: "#FF0000"}
	s.SetGlyph(0, 0, cell)
	cell.Rune = ']'
	s.SetGlyph(1, 0, cell)

	got := colorPainter().Render(s)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("Render = %q, expected ANSI escapes", got)
	}
	// Same colors form a single run.
	if !strings.Contains(got, "[]") {
		t.Errorf("Render = %q, expected \"[]\" in one styled run", got)
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("Render = %q, expected uncolored trailing spaces", got)
	}
}

func TestPainterCachesStyles(t *testing.T) {
	p := colorPainter()
	s := core.NewScreen(4, 2)
	g := core.Glyph{Rune: '[', Fg: "#5DD8E4", Bg: "#00FF00"}
	s.SetGlyph(0, 0, g)
	s.SetGlyph(0, 1, g)
	s.SetGlyph(2, 1, core.Glyph{Rune: '[', Fg: "#5DD8E4", Bg: "#FF0000"})

	p.Render(s)
	if got := len(p.styles); got != 2 {
		t.Errorf("cached styles = %d, expected 2", got)
	}
}

func TestPainterLineCount(t *testing.T) {
	s := core.NewScreen(10, 5)
	got := plainPainter().Render(s)
	if lines := strings.Count(got, "\n") + 1; lines != 5 {
		t.Errorf("Render produced %d lines, expected 5", lines)
	}
}
