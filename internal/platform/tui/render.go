package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorPair is the style cache key.
type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings.
// Each session owns its painter, so the style cache needs no locking.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for the given renderer.
// A nil renderer uses the Lip Gloss default (the local terminal).
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (p *Painter) style(c colorPair) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if c.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(c.fg)))
	}
	if c.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(string(c.bg)))
	}
	p.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			g := s.GetGlyph(x, y)
			colors := colorPair{fg: g.Fg, bg: g.Bg}

			var run strings.Builder
			for x < s.Width() {
				g = s.GetGlyph(x, y)
				if g.Fg != colors.fg || g.Bg != colors.bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			if colors == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}
