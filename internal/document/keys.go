package document

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigationMessage is a focus or scroll movement shared by every document
// screen
type NavigationMessage uint8

const (
	NavNone NavigationMessage = iota
	NavFocusNext
	NavFocusPrev
	NavFocusLeft
	NavFocusRight
	NavScrollUp
	NavScrollDown
	NavPageUp
	NavPageDown
	NavScrollToTop
	NavScrollToBottom
)

var navNames = [...]string{
	NavNone:           "none",
	NavFocusNext:      "focus_next",
	NavFocusPrev:      "focus_prev",
	NavFocusLeft:      "focus_left",
	NavFocusRight:     "focus_right",
	NavScrollUp:       "scroll_up",
	NavScrollDown:     "scroll_down",
	NavPageUp:         "page_up",
	NavPageDown:       "page_down",
	NavScrollToTop:    "scroll_to_top",
	NavScrollToBottom: "scroll_to_bottom",
}

func (n NavigationMessage) String() string {
	if int(n) < len(navNames) {
		return navNames[n]
	}
	return "unknown"
}

// NavigationKeyMap binds keys to navigation messages
type NavigationKeyMap struct {
	Down       key.Binding
	Up         key.Binding
	Left       key.Binding
	Right      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
}

// DefaultNavigationKeys returns the vim-style defaults
func DefaultNavigationKeys() NavigationKeyMap {
	return NavigationKeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k NavigationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Left, k.Right}
}

// FullHelp returns keybindings for the expanded help view
func (k NavigationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Left, k.Right},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
	}
}

// Lookup maps a key press to a navigation message
func (k NavigationKeyMap) Lookup(msg tea.KeyMsg) (NavigationMessage, bool) {
	switch {
	case key.Matches(msg, k.Down):
		return NavFocusNext, true
	case key.Matches(msg, k.Up):
		return NavFocusPrev, true
	case key.Matches(msg, k.Left):
		return NavFocusLeft, true
	case key.Matches(msg, k.Right):
		return NavFocusRight, true
	case key.Matches(msg, k.ScrollUp):
		return NavScrollUp, true
	case key.Matches(msg, k.ScrollDown):
		return NavScrollDown, true
	case key.Matches(msg, k.PageUp):
		return NavPageUp, true
	case key.Matches(msg, k.PageDown):
		return NavPageDown, true
	case key.Matches(msg, k.Top):
		return NavScrollToTop, true
	case key.Matches(msg, k.Bottom):
		return NavScrollToBottom, true
	}
	return NavNone, false
}

var defaultNavigationKeys = DefaultNavigationKeys()

// KeyToNavigation maps a key press with the default bindings
func KeyToNavigation(msg tea.KeyMsg) (NavigationMessage, bool) {
	return defaultNavigationKeys.Lookup(msg)
}
