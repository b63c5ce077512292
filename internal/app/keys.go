package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sportsdash/internal/document"
)

// KeyMap holds the application key bindings. Focus and scroll movement
// inside documents uses the shared document.NavigationKeyMap.
type KeyMap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	TabLeft     key.Binding
	TabRight    key.Binding
	Enter       key.Binding
	Select      key.Binding
	Back        key.Binding
	Refresh     key.Binding
	CycleView   key.Binding
	PrevDay     key.Binding
	NextDay     key.Binding
	JumpScores  key.Binding
	JumpTable   key.Binding
	JumpSearch  key.Binding
	JumpConfig  key.Binding
	Backspace   key.Binding
	ClearSearch key.Binding
	Quit        key.Binding

	Nav document.NavigationKeyMap
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		TabLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		TabRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "down", "j"),
			key.WithHelp("enter", "open"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("←/[", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("→/]", "next day"),
		),
		JumpScores: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "scores")),
		JumpTable:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "standings")),
		JumpSearch: key.NewBinding(key.WithKeys("3", "/"), key.WithHelp("3", "search")),
		JumpConfig: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "settings")),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Nav: document.DefaultNavigationKeys(),
	}
}

// HelpFor returns the bindings worth showing in the footer for s
func (k KeyMap) HelpFor(s State) []key.Binding {
	if s.Nav.Focus == TabBarFocused {
		return []key.Binding{k.TabLeft, k.TabRight, k.Enter, k.Refresh, k.Quit}
	}
	if len(s.Nav.Panels) > 0 {
		return []key.Binding{k.Nav.Down, k.Nav.Up, k.Select, k.Back, k.Refresh}
	}
	switch s.Nav.Tab {
	case TabScores:
		if s.UI.Scores.BoxSelection {
			return []key.Binding{k.Nav.Down, k.Nav.Right, k.Select, k.Back}
		}
		return []key.Binding{k.PrevDay, k.NextDay, k.Select, k.Back, k.Refresh}
	case TabStandings:
		if s.UI.Standings.BrowseMode {
			return []key.Binding{k.Nav.Down, k.Nav.Right, k.Select, k.Back}
		}
		return []key.Binding{k.CycleView, k.Nav.ScrollDown, k.Select, k.Back, k.Refresh}
	case TabSearch:
		return []key.Binding{k.Nav.Down, k.Select, k.ClearSearch, k.Back}
	default:
		return []key.Binding{k.Nav.Down, k.Nav.Up, k.Select, k.Back}
	}
}

var defaultKeys = DefaultKeyMap()

// KeyToAction maps a key press to an action using the default bindings
func KeyToAction(s State, msg tea.KeyMsg) (Action, bool) {
	return defaultKeys.Action(s, msg)
}

// Action maps a key press to an action for state s. It never changes s;
// keys with no meaning in the current state report false.
func (k KeyMap) Action(s State, msg tea.KeyMsg) (Action, bool) {
	if s.Nav.Focus == TabBarFocused {
		return k.tabBarAction(s, msg)
	}

	switch {
	case key.Matches(msg, k.Back):
		if len(s.Nav.Panels) > 0 {
			return PopPanel{}, true
		}
		return ExitContent{}, true
	case key.Matches(msg, k.NextTab):
		return NextTab{}, true
	case key.Matches(msg, k.PrevTab):
		return PrevTab{}, true
	}

	if len(s.Nav.Panels) > 0 {
		return k.documentAction(msg)
	}

	switch s.Nav.Tab {
	case TabScores:
		return k.scoresAction(s, msg)
	case TabStandings:
		return k.standingsAction(s, msg)
	case TabSearch:
		return k.searchAction(s, msg)
	default:
		return k.documentAction(msg)
	}
}

func (k KeyMap) tabBarAction(s State, msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.TabLeft, k.PrevTab):
		return PrevTab{}, true
	case key.Matches(msg, k.TabRight, k.NextTab):
		return NextTab{}, true
	case key.Matches(msg, k.Enter):
		return EnterContent{}, true
	case key.Matches(msg, k.Refresh):
		return Refresh{}, true
	case key.Matches(msg, k.JumpScores):
		return SwitchTab{Tab: TabScores}, true
	case key.Matches(msg, k.JumpTable):
		return SwitchTab{Tab: TabStandings}, true
	case key.Matches(msg, k.JumpSearch):
		return SwitchTab{Tab: TabSearch}, true
	case key.Matches(msg, k.JumpConfig):
		return SwitchTab{Tab: TabSettings}, true
	}
	return nil, false
}

// documentAction is the common mapping for screens and panels whose
// focusables are always selectable
func (k KeyMap) documentAction(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.Select):
		return Activate{}, true
	case key.Matches(msg, k.Refresh):
		return Refresh{}, true
	}
	if nav, ok := k.Nav.Lookup(msg); ok {
		return Navigate{Msg: nav}, true
	}
	return nil, false
}

func (k KeyMap) scoresAction(s State, msg tea.KeyMsg) (Action, bool) {
	if s.UI.Scores.BoxSelection {
		return k.documentAction(msg)
	}
	switch {
	case key.Matches(msg, k.Select):
		return ToggleBoxSelection{}, true
	case key.Matches(msg, k.PrevDay):
		return ChangeDate{Days: -1}, true
	case key.Matches(msg, k.NextDay):
		return ChangeDate{Days: 1}, true
	case key.Matches(msg, k.Refresh):
		return Refresh{}, true
	}
	return k.scrollAction(msg)
}

func (k KeyMap) standingsAction(s State, msg tea.KeyMsg) (Action, bool) {
	if key.Matches(msg, k.CycleView) {
		return CycleStandingsView{}, true
	}
	if s.UI.Standings.BrowseMode {
		return k.documentAction(msg)
	}
	switch {
	case key.Matches(msg, k.Select):
		return ToggleBrowseMode{}, true
	case key.Matches(msg, k.Refresh):
		return Refresh{}, true
	}
	return k.scrollAction(msg)
}

// scrollAction treats focus movement as scrolling for screens outside a
// selection mode
func (k KeyMap) scrollAction(msg tea.KeyMsg) (Action, bool) {
	nav, ok := k.Nav.Lookup(msg)
	if !ok {
		return nil, false
	}
	switch nav {
	case document.NavFocusNext:
		nav = document.NavScrollDown
	case document.NavFocusPrev:
		nav = document.NavScrollUp
	case document.NavFocusLeft, document.NavFocusRight:
		return nil, false
	}
	return Navigate{Msg: nav}, true
}

// searchAction edits the query with printable keys. Only non-printable
// keys navigate the hits.
func (k KeyMap) searchAction(s State, msg tea.KeyMsg) (Action, bool) {
	q := s.UI.Search.Query
	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		return SetSearchQuery{Query: q + string(msg.Runes)}, true
	case key.Matches(msg, k.Backspace):
		if q == "" {
			return nil, false
		}
		r := []rune(q)
		return SetSearchQuery{Query: string(r[:len(r)-1])}, true
	case key.Matches(msg, k.ClearSearch):
		return SetSearchQuery{}, true
	case key.Matches(msg, k.Select):
		return Activate{}, true
	}
	if nav, ok := k.Nav.Lookup(msg); ok {
		return Navigate{Msg: nav}, true
	}
	return nil, false
}
