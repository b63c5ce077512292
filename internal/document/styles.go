package document

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles elements render with
type Styles struct {
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Heading      lipgloss.Style
	SectionTitle lipgloss.Style
	Link         lipgloss.Style
	FocusedLink  lipgloss.Style
	Separator    lipgloss.Style
	TableHeader  lipgloss.Style
	FocusedRow   lipgloss.Style
	FocusedCell  lipgloss.Style
	Error        lipgloss.Style

	// FocusMarker prefixes the focused link or button
	FocusMarker string
}

var (
	accentColor = lipgloss.Color("#7D56F4")
	linkColor   = lipgloss.Color("#43BF6D")
	mutedColor  = lipgloss.Color("#626262")
	errorColor  = lipgloss.Color("#FF5555")
	rowColor    = lipgloss.Color("#2A2540")
)

// DefaultStyles returns the colored styles used by the TUI
func DefaultStyles() *Styles {
	return &Styles{
		Text:         lipgloss.NewStyle(),
		Muted:        lipgloss.NewStyle().Foreground(mutedColor),
		Heading:      lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		SectionTitle: lipgloss.NewStyle().Bold(true),
		Link:         lipgloss.NewStyle().Foreground(linkColor),
		FocusedLink:  lipgloss.NewStyle().Foreground(linkColor).Bold(true).Underline(true),
		Separator:    lipgloss.NewStyle().Foreground(mutedColor),
		TableHeader:  lipgloss.NewStyle().Foreground(mutedColor).Bold(true),
		FocusedRow:   lipgloss.NewStyle().Background(rowColor),
		FocusedCell:  lipgloss.NewStyle().Background(rowColor).Foreground(linkColor).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(errorColor),
		FocusMarker:  "▸",
	}
}

// PlainStyles renders without any escape sequences, for piped output and
// tests
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Text:         plain,
		Muted:        plain,
		Heading:      plain,
		SectionTitle: plain,
		Link:         plain,
		FocusedLink:  plain,
		Separator:    plain,
		TableHeader:  plain,
		FocusedRow:   plain,
		FocusedCell:  plain,
		Error:        plain,
		FocusMarker:  ">",
	}
}
