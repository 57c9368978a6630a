package core

import "regexp"

// Color is a terminal color in "#RRGGBB" form.
// The empty string means the terminal's default color.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Valid reports whether c is the default color or a "#RRGGBB" hex value.
func (c Color) Valid() bool {
	return c == ColorDefault || hexColor.MatchString(string(c))
}

// Palette holds the four colors the board is drawn with.
type Palette struct {
	Background Color // Empty board cells
	Border     Color // Outline of every occupied cell
	Food       Color
	Snake      Color
}
