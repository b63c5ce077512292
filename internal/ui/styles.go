package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/muurk/sportsdash/internal/document"
)

// Color palette shared by the dashboard and the CLI reports
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - active tab, headings, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - links, live indicator
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, stale data
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	RowColor     = lipgloss.Color("#2A2540") // Dark purple - focused rows
)

// Layout constants
const (
	MinTerminalWidth  = 60  // Minimum supported terminal width
	MaxContentWidth   = 120 // Maximum report width before capping
	MinTerminalHeight = 12  // Smallest height the dashboard lays out for
	DefaultPadding    = 2   // Default padding inside boxes
)

// Dashboard chrome styles
var (
	// TabStyle is an unselected tab bar label
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// ActiveTabStyle is the selected tab while keys drive the content
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// FocusedTabStyle is the selected tab while keys drive the tab bar
	FocusedTabStyle = ActiveTabStyle.
			Underline(true)

	// TabBarStyle frames the tab bar row
	TabBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(MutedColor)

	// BreadcrumbStyle is the panel path under the tab bar
	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// StatusStyle is the status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// StatusErrorStyle is the status line when it reports a failure
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				PaddingLeft(1)

	// LiveStyle is the live feed indicator while connected
	LiveStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// OfflineStyle is the live feed indicator while disconnected
	OfflineStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// PromptStyle is the search prompt label
	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// Report styles for the CLI subcommands
var (
	// HeaderTitleStyle is for the report title (e.g., "STANDINGS")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "sportsdash standings")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Date:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// ErrorTitleStyle is for the failure box title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for the warning box title
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Markers
const (
	FailureMarker = "✗"
	WarningMarker = "⚠"
	LiveMarker    = "●"
)

// DocumentStyles returns the document styles in the dashboard palette
func DocumentStyles() *document.Styles {
	return &document.Styles{
		Text:         lipgloss.NewStyle().Foreground(TextColor),
		Muted:        lipgloss.NewStyle().Foreground(MutedColor),
		Heading:      lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true),
		SectionTitle: lipgloss.NewStyle().Foreground(TextColor).Bold(true),
		Link:         lipgloss.NewStyle().Foreground(SuccessColor),
		FocusedLink:  lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Underline(true),
		Separator:    lipgloss.NewStyle().Foreground(MutedColor),
		TableHeader:  lipgloss.NewStyle().Foreground(MutedColor).Bold(true),
		FocusedRow:   lipgloss.NewStyle().Background(RowColor),
		FocusedCell:  lipgloss.NewStyle().Background(RowColor).Foreground(SuccessColor).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(ErrorColor),
		FocusMarker:  "▸",
	}
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height, uncapped,
// for sizing the dashboard before the first resize event
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return max(width, MinTerminalWidth), max(height, MinTerminalHeight)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, max(width, 0)))
}
