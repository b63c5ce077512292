package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/sportsdash/internal/document"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyToAction(t *testing.T) {
	tabBar := loadedState()

	content := loadedState()
	content.Nav.Focus = ContentFocused

	boxes := content
	boxes.UI.Scores.BoxSelection = true

	standings := content
	standings.Nav.Tab = TabStandings

	browsing := standings
	browsing.UI.Standings.BrowseMode = true

	search := content
	search.Nav.Tab = TabSearch
	search.UI.Search.Query = "tor"

	panel := content
	panel.Nav.Panels = []PanelEntry{{Panel: Panel{Kind: PanelGame, ID: 1}}}

	settings := content
	settings.Nav.Tab = TabSettings

	tests := []struct {
		name  string
		state State
		key   tea.KeyMsg
		want  Action
	}{
		{"tab bar right", tabBar, tea.KeyMsg{Type: tea.KeyRight}, NextTab{}},
		{"tab bar h", tabBar, runes("h"), PrevTab{}},
		{"tab bar enter", tabBar, tea.KeyMsg{Type: tea.KeyEnter}, EnterContent{}},
		{"tab bar down", tabBar, tea.KeyMsg{Type: tea.KeyDown}, EnterContent{}},
		{"tab bar jump", tabBar, runes("3"), SwitchTab{Tab: TabSearch}},
		{"tab bar refresh", tabBar, runes("r"), Refresh{}},
		{"tab bar esc", tabBar, tea.KeyMsg{Type: tea.KeyEsc}, nil},

		{"esc exits content", content, tea.KeyMsg{Type: tea.KeyEsc}, ExitContent{}},
		{"tab cycles from content", content, tea.KeyMsg{Type: tea.KeyTab}, NextTab{}},
		{"scores down scrolls", content, tea.KeyMsg{Type: tea.KeyDown}, Navigate{Msg: document.NavScrollDown}},
		{"scores left changes date", content, tea.KeyMsg{Type: tea.KeyLeft}, ChangeDate{Days: -1}},
		{"scores ] changes date", content, runes("]"), ChangeDate{Days: 1}},
		{"scores enter selects", content, tea.KeyMsg{Type: tea.KeyEnter}, ToggleBoxSelection{}},
		{"scores page down", content, tea.KeyMsg{Type: tea.KeyPgDown}, Navigate{Msg: document.NavPageDown}},

		{"boxes down focuses", boxes, tea.KeyMsg{Type: tea.KeyDown}, Navigate{Msg: document.NavFocusNext}},
		{"boxes right focuses", boxes, tea.KeyMsg{Type: tea.KeyRight}, Navigate{Msg: document.NavFocusRight}},
		{"boxes enter activates", boxes, tea.KeyMsg{Type: tea.KeyEnter}, Activate{}},

		{"standings v cycles", standings, runes("v"), CycleStandingsView{}},
		{"standings enter browses", standings, tea.KeyMsg{Type: tea.KeyEnter}, ToggleBrowseMode{}},
		{"standings right ignored", standings, tea.KeyMsg{Type: tea.KeyRight}, nil},
		{"browsing right focuses", browsing, tea.KeyMsg{Type: tea.KeyRight}, Navigate{Msg: document.NavFocusRight}},
		{"browsing v cycles", browsing, runes("v"), CycleStandingsView{}},

		{"search types", search, runes("o"), SetSearchQuery{Query: "toro"}},
		{"search types j", search, runes("j"), SetSearchQuery{Query: "torj"}},
		{"search space", search, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, SetSearchQuery{Query: "tor "}},
		{"search backspace", search, tea.KeyMsg{Type: tea.KeyBackspace}, SetSearchQuery{Query: "to"}},
		{"search clear", search, tea.KeyMsg{Type: tea.KeyCtrlU}, SetSearchQuery{}},
		{"search down", search, tea.KeyMsg{Type: tea.KeyDown}, Navigate{Msg: document.NavFocusNext}},
		{"search enter", search, tea.KeyMsg{Type: tea.KeyEnter}, Activate{}},

		{"panel esc pops", panel, tea.KeyMsg{Type: tea.KeyEsc}, PopPanel{}},
		{"panel j focuses", panel, runes("j"), Navigate{Msg: document.NavFocusNext}},
		{"panel G bottom", panel, runes("G"), Navigate{Msg: document.NavScrollToBottom}},
		{"panel enter", panel, tea.KeyMsg{Type: tea.KeyEnter}, Activate{}},

		{"settings down", settings, tea.KeyMsg{Type: tea.KeyDown}, Navigate{Msg: document.NavFocusNext}},
		{"settings unbound", settings, runes("z"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyToAction(tt.state, tt.key)
			if ok != (tt.want != nil) {
				t.Fatalf("KeyToAction(%s) ok = %v, want %v", tt.key, ok, tt.want != nil)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("KeyToAction(%s) (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestKeyToAction_BackspaceOnEmptyQuery(t *testing.T) {
	s := loadedState()
	s.Nav.Tab = TabSearch
	s.Nav.Focus = ContentFocused
	if a, ok := KeyToAction(s, tea.KeyMsg{Type: tea.KeyBackspace}); ok {
		t.Errorf("KeyToAction = %#v, want no action", a)
	}
}

func TestHelpFor_ChangesWithMode(t *testing.T) {
	k := DefaultKeyMap()
	s := loadedState()
	tabBar := k.HelpFor(s)

	s.Nav.Focus = ContentFocused
	scores := k.HelpFor(s)

	if len(tabBar) == 0 || len(scores) == 0 {
		t.Fatal("empty help")
	}
	if tabBar[0].Help().Desc == scores[0].Help().Desc {
		t.Errorf("tab bar and content help both start with %q", tabBar[0].Help().Desc)
	}
}
