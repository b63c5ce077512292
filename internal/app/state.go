package app

import (
	"fmt"
	"maps"
	"time"

	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

// ChromeHeight is the number of terminal lines used by the tab bar, status
// line and help footer around the content area
const ChromeHeight = 5

// Tab is a top-level screen
type Tab int

const (
	TabScores Tab = iota
	TabStandings
	TabSearch
	TabSettings
)

// Tabs lists the tabs in tab bar order
var Tabs = []Tab{TabScores, TabStandings, TabSearch, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabScores:
		return "scores"
	case TabStandings:
		return "standings"
	case TabSearch:
		return "search"
	case TabSettings:
		return "settings"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Title is the tab bar label
func (t Tab) Title() string {
	switch t {
	case TabScores:
		return "Scores"
	case TabStandings:
		return "Standings"
	case TabSearch:
		return "Search"
	case TabSettings:
		return "Settings"
	default:
		return t.String()
	}
}

// ParseTab converts a config or flag value to a Tab
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if t.String() == s {
			return t, true
		}
	}
	return TabScores, false
}

// FocusLevel says whether keys drive the tab bar or the content area
type FocusLevel int

const (
	TabBarFocused FocusLevel = iota
	ContentFocused
)

func (f FocusLevel) String() string {
	if f == ContentFocused {
		return "content"
	}
	return "tab_bar"
}

// PanelKind is the kind of detail panel
type PanelKind int

const (
	PanelGame PanelKind = iota
	PanelTeam
	PanelPlayer
)

// Panel describes a detail view pushed on top of a screen
type Panel struct {
	Kind   PanelKind
	ID     int
	Abbrev string
}

// Key is the loading and error key of the panel's data
func (p Panel) Key() string {
	switch p.Kind {
	case PanelGame:
		return GameKey(p.ID)
	case PanelTeam:
		return TeamKey(p.Abbrev)
	default:
		return PlayerKey(p.ID)
	}
}

// PanelEntry is one level of the panel stack. Each entry keeps its own
// viewport so popping back restores the parent exactly.
type PanelEntry struct {
	Panel    Panel
	Viewport document.Viewport
}

// NavState is the navigation region of State
type NavState struct {
	Tab    Tab
	Focus  FocusLevel
	Panels []PanelEntry
}

// TopPanel returns the innermost open panel
func (n NavState) TopPanel() (PanelEntry, bool) {
	if len(n.Panels) == 0 {
		return PanelEntry{}, false
	}
	return n.Panels[len(n.Panels)-1], true
}

// Loading and error keys
const KeyStandings = "standings"

func ScheduleKey(date string) string { return "schedule:" + date }
func GameKey(id int) string          { return fmt.Sprintf("game:%d", id) }
func TeamKey(abbrev string) string   { return "team:" + abbrev }
func PlayerKey(id int) string        { return fmt.Sprintf("player:%d", id) }

// DataState is everything fetched from the data service. Maps are never
// modified in place; reducers replace them.
type DataState struct {
	Standings []sportsapi.Standing
	Schedules map[string]sportsapi.Schedule
	Games     map[int]sportsapi.GameDetail
	Teams     map[string]sportsapi.Team
	Players   map[int]sportsapi.Player

	Loading map[string]bool
	Errors  map[string]string

	LastRefresh time.Time

	// Revision goes up each time fetched entities are replaced. Loading
	// and error bookkeeping leaves it alone.
	Revision uint64
}

// IsLoading reports whether a fetch for key is in flight
func (d DataState) IsLoading(key string) bool {
	return d.Loading[key]
}

// SameEntities reports whether d and o hold the same fetched entities
func (d DataState) SameEntities(o DataState) bool {
	return d.Revision == o.Revision
}

// SearchHit is one search result
type SearchHit struct {
	Kind   string
	ID     int
	Abbrev string
	Label  string
	Detail string
}

// ScoresState is the UI state of the scores screen
type ScoresState struct {
	Date         string
	Viewport     document.Viewport
	BoxSelection bool
}

// StandingsState is the UI state of the standings screen
type StandingsState struct {
	View       string
	Viewport   document.Viewport
	BrowseMode bool
}

// SearchState is the UI state of the search screen
type SearchState struct {
	Query    string
	Hits     []SearchHit
	Viewport document.Viewport
}

// SettingsState is the UI state of the settings screen
type SettingsState struct {
	Viewport document.Viewport
}

// UIState holds one slot per screen
type UIState struct {
	Scores    ScoresState
	Standings StandingsState
	Search    SearchState
	Settings  SettingsState
}

// SystemState holds preferences and terminal facts
type SystemState struct {
	Prefs         config.Preferences
	Width         int
	Height        int
	Status        string
	Now           time.Time
	LiveConnected bool
}

// State is the whole application state. It is owned by the runtime and
// passed to reducers by value.
type State struct {
	Nav    NavState
	Data   DataState
	UI     UIState
	System SystemState
}

// NewState returns the startup state for prefs at time now
func NewState(prefs config.Preferences, now time.Time, width, height int) State {
	tab, _ := ParseTab(prefs.DefaultTab)
	s := State{
		Nav: NavState{Tab: tab, Focus: TabBarFocused},
		Data: DataState{
			Schedules: map[string]sportsapi.Schedule{},
			Games:     map[int]sportsapi.GameDetail{},
			Teams:     map[string]sportsapi.Team{},
			Players:   map[int]sportsapi.Player{},
			Loading:   map[string]bool{},
			Errors:    map[string]string{},
		},
		System: SystemState{
			Prefs:  prefs.Clone(),
			Width:  width,
			Height: height,
			Now:    now,
		},
	}
	vh := s.ContentHeight()
	s.UI = UIState{
		Scores:    ScoresState{Date: now.Format(sportsapi.DateLayout), Viewport: document.NewViewport(vh)},
		Standings: StandingsState{View: prefs.StandingsView, Viewport: document.NewViewport(vh)},
		Search:    SearchState{Viewport: document.NewViewport(vh)},
		Settings:  SettingsState{Viewport: document.NewViewport(vh)},
	}
	return s
}

// ContentHeight is the number of lines available to documents
func (s State) ContentHeight() int {
	return max(s.System.Height-ChromeHeight, 1)
}

// with returns a copy of m with k set to v
func with[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	out := make(map[K]V, len(m)+1)
	maps.Copy(out, m)
	out[k] = v
	return out
}

// without returns m, or a copy of it without k
func without[K comparable, V any](m map[K]V, k K) map[K]V {
	if _, ok := m[k]; !ok {
		return m
	}
	out := maps.Clone(m)
	delete(out, k)
	return out
}
