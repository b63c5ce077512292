package document

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Surface is what a FocusManager draws into
type Surface interface {
	Size() (width, height int)
	WriteString(x, y int, s string)
}

// Canvas is a line-based Surface. Writing at column x replaces everything
// from x to the end of the line.
type Canvas struct {
	width int
	lines []string
}

// NewCanvas returns a blank canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, lines: make([]string, max(height, 0))}
}

func (c *Canvas) Size() (int, int) {
	return c.width, len(c.lines)
}

func (c *Canvas) WriteString(x, y int, s string) {
	if y < 0 || y >= len(c.lines) || x >= c.width {
		return
	}
	x = max(x, 0)
	prefix := fit(ansi.Truncate(c.lines[y], x, ""), x)
	c.lines[y] = prefix + clip(s, c.width-x)
}

// Line returns row y
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= len(c.lines) {
		return ""
	}
	return c.lines[y]
}

// Lines returns every row
func (c *Canvas) Lines() []string {
	return c.lines
}

// String joins the rows with newlines
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}
