package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/ui"
)

const breadcrumbSeparator = " › "

func tabZone(t app.Tab) string {
	return "tab:" + t.String()
}

// renderTabBar draws the tabs with their jump keys. The active tab is
// underlined while the tab bar has keyboard focus.
func (m Model) renderTabBar(s app.State) string {
	tabs := make([]string, 0, len(app.Tabs))
	for i, t := range app.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		style := ui.TabStyle
		if t == s.Nav.Tab {
			style = ui.ActiveTabStyle
			if s.Nav.Focus == app.TabBarFocused {
				style = ui.FocusedTabStyle
			}
		}
		tabs = append(tabs, m.zones.Mark(tabZone(t), style.Render(label)))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return ui.TabBarStyle.Width(s.System.Width).Render(bar)
}

// renderSubheader is the search prompt on the search screen and the panel
// breadcrumb elsewhere
func (m Model) renderSubheader(s app.State) string {
	if s.Nav.Tab == app.TabSearch && len(s.Nav.Panels) == 0 {
		input := m.input
		input.SetValue(s.UI.Search.Query)
		input.CursorEnd()
		if typingSearch(s) {
			input.Focus()
		} else {
			input.Blur()
		}
		return " " + input.View()
	}
	if len(s.Nav.Panels) == 0 {
		return ""
	}
	crumb := strings.Join(s.Breadcrumb(), breadcrumbSeparator)
	return ui.BreadcrumbStyle.Render(truncate(crumb, s.System.Width-1))
}

// renderStatus shows activity on the left and the live feed on the right
func (m Model) renderStatus(s app.State) string {
	var left string
	switch {
	case s.System.Status != "":
		left = ui.StatusStyle.Render(s.System.Status)
	case len(s.Data.Loading) > 0:
		left = ui.StatusStyle.Render(m.spinner.View() + " Loading…")
	case len(s.Data.Errors) > 0:
		left = ui.StatusErrorStyle.Render(failedSummary(len(s.Data.Errors)))
	case !s.Data.LastRefresh.IsZero():
		left = ui.StatusStyle.Render("Updated " + formatClock(s))
	}

	right := ""
	if m.Live {
		if s.System.LiveConnected {
			right = ui.LiveStyle.Render(ui.LiveMarker + " LIVE")
		} else {
			right = ui.OfflineStyle.Render("○ offline")
		}
		right += " "
	}

	gap := s.System.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(left, s.System.Width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func failedSummary(n int) string {
	if n == 1 {
		return "1 request failed · r to retry"
	}
	return fmt.Sprintf("%d requests failed · r to retry", n)
}

func formatClock(s app.State) string {
	t := s.Data.LastRefresh.Local()
	if s.System.Prefs.Clock24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

func (m Model) renderHelp(s app.State) string {
	h := m.help
	h.Width = s.System.Width
	return " " + h.ShortHelpView(m.keys.HelpFor(s))
}

// joinLines stacks the chrome sections. Each section is one or more whole
// lines; empty sections still take a line.
func joinLines(sections ...string) string {
	return strings.Join(sections, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
