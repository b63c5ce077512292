package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/sportsdash/internal/sportsapi"
)

// ResultType indicates failure or warning
type ResultType int

const (
	ResultFailure ResultType = iota
	ResultWarning
)

// Result is a boxed message printed when a report cannot be produced
type Result struct {
	Type            ResultType // Failure or warning
	Title           string     // e.g., "Could not load standings"
	Error           error      // Error (for failure results)
	Detail          string     // Extra line (for warnings)
	Troubleshooting []string   // Troubleshooting tips
	Width           int        // Terminal width
	Plain           bool       // Render without borders or color
}

// NewFailureResult creates a failure result box. Tips default to those
// matching err's category.
func NewFailureResult(title string, err error, troubleshooting ...string) *Result {
	if len(troubleshooting) == 0 {
		troubleshooting = Troubleshoot(err)
	}
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title, detail string) *Result {
	return &Result{
		Type:   ResultWarning,
		Title:  title,
		Detail: detail,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Troubleshoot returns hints for a data service error
func Troubleshoot(err error) []string {
	switch {
	case err == nil:
		return nil
	case sportsapi.IsNotFound(err):
		return []string{"Check the team abbreviation, game or player id"}
	case sportsapi.IsNetworkError(err):
		return []string{
			"Check your network connection",
			"Verify the service URL with --api or api.base_url in the config file",
			"Increase api.timeout if the service is slow",
		}
	}
	var apiErr *sportsapi.APIError
	if errors.As(err, &apiErr) && apiErr.Type == sportsapi.ErrTypeHTTP {
		return []string{fmt.Sprintf("The service answered HTTP %d; try again later", apiErr.StatusCode)}
	}
	return nil
}

// Render returns the result box as a string
func (r *Result) Render() string {
	if r.Plain {
		return r.renderPlain()
	}
	if r.Type == ResultWarning {
		return r.renderWarning()
	}
	return r.renderFailure()
}

func (r *Result) renderFailure() string {
	width := max(r.Width, MinTerminalWidth)

	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}
	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}
	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderWarning() string {
	width := max(r.Width, MinTerminalWidth)

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  %s", WarningMarker, r.Title)),
		"",
	}
	if r.Detail != "" {
		lines = append(lines, TroubleshootingItemStyle.Render("   "+r.Detail), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderPlain() string {
	var lines []string
	if r.Type == ResultWarning {
		lines = append(lines, "warning: "+r.Title)
		if r.Detail != "" {
			lines = append(lines, "  "+r.Detail)
		}
	} else {
		lines = append(lines, "error: "+r.Title)
		if r.Error != nil {
			lines = append(lines, "  "+r.Error.Error())
		}
	}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, "  - "+tip)
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
