package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value in a report header
type Param struct {
	Key   string
	Value string
}

// Header is the banner printed above a CLI report
type Header struct {
	Title   string  // e.g., "STANDINGS"
	Command string  // e.g., "sportsdash standings --view wildcard"
	Params  []Param // e.g., {"Source", "https://stats.example.com/v1"}
	Width   int     // Terminal width for responsive rendering
	Plain   bool    // Render without borders or color
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the header as a string
func (h *Header) Render() string {
	if h.Plain {
		return h.renderPlain()
	}

	width := max(h.Width, MinTerminalWidth)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		divider := RenderHorizontalDivider(max(width-6, 10), "─")
		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, h.paramLines(true))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

func (h *Header) renderPlain() string {
	lines := []string{strings.ToUpper(h.Title)}
	if len(h.Params) > 0 {
		lines = append(lines, h.paramLines(false))
	}
	return strings.Join(lines, "\n")
}

// paramLines aligns the values after the longest key
func (h *Header) paramLines(styled bool) string {
	keyWidth := 0
	for _, p := range h.Params {
		keyWidth = max(keyWidth, len(p.Key)+1)
	}

	lines := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		key := p.Key + ":" + strings.Repeat(" ", keyWidth-len(p.Key)-1)
		if !styled {
			lines = append(lines, key+" "+p.Value)
			continue
		}
		lines = append(lines, HeaderParamKeyStyle.Render(key)+" "+HeaderParamValueStyle.Render(p.Value))
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
