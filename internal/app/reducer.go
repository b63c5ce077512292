package app

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
	"github.com/muurk/sportsdash/internal/store"
)

// Effect is the effect type produced by the application reducer
type Effect = store.Effect[Action]

var none = store.None[Action]()

// Fetcher is the data collaborator. *sportsapi.Client implements it.
type Fetcher interface {
	Standings(ctx context.Context) ([]sportsapi.Standing, error)
	Schedule(ctx context.Context, date string) (sportsapi.Schedule, error)
	Game(ctx context.Context, id int) (sportsapi.GameDetail, error)
	Team(ctx context.Context, abbrev string) (sportsapi.Team, error)
	Player(ctx context.Context, id int) (sportsapi.Player, error)
	InvalidateCache()
}

// Reducer holds the collaborators the reducer's effects call. The reducer
// itself never calls them; it only returns tasks that do.
type Reducer struct {
	API Fetcher

	// Search looks up teams and players; it runs off the dispatch loop
	Search func(query string) []SearchHit

	// Save persists preferences after a settings change
	Save func(config.Preferences) error
}

// Reduce composes the screen reducers
func (r *Reducer) Reduce() store.Reducer[State, Action] {
	return store.Chain[State, Action](
		r.reduceNavigation,
		r.reduceData,
		r.reduceScreens,
		r.reduceSystem,
	)
}

// Activation target kinds
const (
	TargetGame     = "game"
	TargetTeam     = "team"
	TargetPlayer   = "player"
	TargetSetting  = "setting"
	TargetFavorite = "favorite"
)

func (r *Reducer) reduceNavigation(s State, a Action) (State, Effect, bool) {
	switch a := a.(type) {
	case SwitchTab:
		s.Nav.Tab = a.Tab
		s.Nav.Focus = TabBarFocused
		s.Nav.Panels = nil
		return s, tabEntryEffect(s), true

	case NextTab:
		return s, store.Dispatch[Action](SwitchTab{Tab: cycleTab(s.Nav.Tab, 1)}), true

	case PrevTab:
		return s, store.Dispatch[Action](SwitchTab{Tab: cycleTab(s.Nav.Tab, -1)}), true

	case EnterContent:
		s.Nav.Focus = ContentFocused
		return s, none, true

	case ExitContent:
		s.Nav.Focus = TabBarFocused
		s.Nav.Panels = nil
		s.UI.Scores.BoxSelection = false
		s.UI.Scores.Viewport.Focus = document.NoFocus
		s.UI.Standings.BrowseMode = false
		s.UI.Standings.Viewport.Focus = document.NoFocus
		return s, none, true

	case Navigate:
		if s.Nav.Focus != ContentFocused {
			return s, none, true
		}
		fm := s.Layout()
		fm.Handle(a.Msg)
		return s.withActiveViewport(fm.Viewport()), none, true

	case Activate:
		return r.activate(s)

	case PopPanel:
		n := len(s.Nav.Panels)
		if n == 0 {
			return s, none, true
		}
		s.Nav.Panels = slices.Clone(s.Nav.Panels[:n-1])
		return s, none, true
	}
	return s, none, false
}

func cycleTab(t Tab, delta int) Tab {
	n := len(Tabs)
	return Tabs[((int(t)+delta)%n+n)%n]
}

// tabEntryEffect fetches whatever the newly shown tab is missing
func tabEntryEffect(s State) Effect {
	switch s.Nav.Tab {
	case TabScores:
		if _, ok := s.Data.Schedules[s.UI.Scores.Date]; !ok {
			return store.Dispatch[Action](FetchSchedule{Date: s.UI.Scores.Date})
		}
	case TabStandings:
		if len(s.Data.Standings) == 0 {
			return store.Dispatch[Action](FetchStandings{})
		}
	}
	return none
}

func (r *Reducer) activate(s State) (State, Effect, bool) {
	if s.Nav.Focus != ContentFocused {
		return s, none, true
	}
	fm := s.Layout()
	f, ok := fm.Focused()
	if !ok || f.Target == nil {
		return s, none, true
	}

	t := f.Target
	switch t.Kind {
	case TargetGame:
		return pushPanel(s, Panel{Kind: PanelGame, ID: t.ID})
	case TargetTeam:
		return pushPanel(s, Panel{Kind: PanelTeam, Abbrev: t.Key})
	case TargetPlayer:
		return pushPanel(s, Panel{Kind: PanelPlayer, ID: t.ID})
	case TargetSetting:
		return s, store.Dispatch[Action](ToggleSetting{Setting: t.Key}), true
	case TargetFavorite:
		return s, store.Dispatch[Action](ToggleFavorite{Abbrev: t.Key}), true
	}
	return s, none, true
}

func pushPanel(s State, p Panel) (State, Effect, bool) {
	entry := PanelEntry{Panel: p, Viewport: document.NewViewport(s.ContentHeight())}
	s.Nav.Panels = append(slices.Clone(s.Nav.Panels), entry)
	if panelCached(s, p) {
		return s, none, true
	}
	return s, store.Dispatch(fetchPanel(p)), true
}

func panelCached(s State, p Panel) bool {
	var ok bool
	switch p.Kind {
	case PanelGame:
		_, ok = s.Data.Games[p.ID]
	case PanelTeam:
		_, ok = s.Data.Teams[p.Abbrev]
	case PanelPlayer:
		_, ok = s.Data.Players[p.ID]
	}
	return ok
}

func fetchPanel(p Panel) Action {
	switch p.Kind {
	case PanelGame:
		return FetchGame{ID: p.ID}
	case PanelTeam:
		return FetchTeam{Abbrev: p.Abbrev}
	default:
		return FetchPlayer{ID: p.ID}
	}
}

func (r *Reducer) reduceData(s State, a Action) (State, Effect, bool) {
	switch a := a.(type) {
	case Refresh:
		s.Data.LastRefresh = s.System.Now
		effects := []Effect{
			store.Dispatch[Action](FetchStandings{Force: true}),
			store.Dispatch[Action](FetchSchedule{Date: s.UI.Scores.Date}),
		}
		if top, ok := s.Nav.TopPanel(); ok {
			effects = append(effects, store.Dispatch(fetchPanel(top.Panel)))
		}
		return s, store.Batch(effects...), true

	case Tick:
		s.System.Now = a.Now
		interval := s.System.Prefs.RefreshInterval
		if interval > 0 && !s.Data.LastRefresh.IsZero() && a.Now.Sub(s.Data.LastRefresh) >= interval {
			return s, store.Dispatch[Action](Refresh{}), true
		}
		return s, none, true

	case FetchStandings:
		return r.startFetch(s, KeyStandings, func(ctx context.Context, api Fetcher) Action {
			if a.Force {
				api.InvalidateCache()
			}
			standings, err := api.Standings(ctx)
			if err != nil {
				return fetchFailed(KeyStandings, err)
			}
			return StandingsLoaded{Standings: standings}
		})

	case FetchSchedule:
		key := ScheduleKey(a.Date)
		return r.startFetch(s, key, func(ctx context.Context, api Fetcher) Action {
			schedule, err := api.Schedule(ctx, a.Date)
			if err != nil {
				return fetchFailed(key, err)
			}
			return ScheduleLoaded{Date: a.Date, Schedule: schedule}
		})

	case FetchGame:
		key := GameKey(a.ID)
		return r.startFetch(s, key, func(ctx context.Context, api Fetcher) Action {
			detail, err := api.Game(ctx, a.ID)
			if err != nil {
				return fetchFailed(key, err)
			}
			return GameLoaded{ID: a.ID, Detail: detail}
		})

	case FetchTeam:
		key := TeamKey(a.Abbrev)
		return r.startFetch(s, key, func(ctx context.Context, api Fetcher) Action {
			team, err := api.Team(ctx, a.Abbrev)
			if err != nil {
				return fetchFailed(key, err)
			}
			return TeamLoaded{Abbrev: a.Abbrev, Team: team}
		})

	case FetchPlayer:
		key := PlayerKey(a.ID)
		return r.startFetch(s, key, func(ctx context.Context, api Fetcher) Action {
			player, err := api.Player(ctx, a.ID)
			if err != nil {
				return fetchFailed(key, err)
			}
			return PlayerLoaded{ID: a.ID, Player: player}
		})

	case StandingsLoaded:
		s.Data.Standings = a.Standings
		s.Data.Revision++
		return firstLoad(finishFetch(s, KeyStandings)), none, true

	case ScheduleLoaded:
		key := ScheduleKey(a.Date)
		// A date that is no longer selected and no longer awaited is stale
		if a.Date != s.UI.Scores.Date && !s.Data.IsLoading(key) {
			return s, none, true
		}
		s.Data.Schedules = with(s.Data.Schedules, a.Date, a.Schedule)
		s.Data.Revision++
		return firstLoad(finishFetch(s, key)), none, true

	case GameLoaded:
		s.Data.Games = with(s.Data.Games, a.ID, a.Detail)
		s.Data.Revision++
		return finishFetch(s, GameKey(a.ID)), none, true

	case TeamLoaded:
		s.Data.Teams = with(s.Data.Teams, a.Abbrev, a.Team)
		s.Data.Revision++
		return finishFetch(s, TeamKey(a.Abbrev)), none, true

	case PlayerLoaded:
		s.Data.Players = with(s.Data.Players, a.ID, a.Player)
		s.Data.Revision++
		return finishFetch(s, PlayerKey(a.ID)), none, true

	case FetchFailed:
		s.Data.Errors = with(s.Data.Errors, a.Key, a.Message)
		s.Data.Loading = without(s.Data.Loading, a.Key)
		return s, none, true

	case LiveScore:
		s = applyLiveScore(s, a.Update)
		s.Data.Revision++
		return s, none, true

	case LiveStatus:
		s.System.LiveConnected = a.Connected
		return s, none, true
	}
	return s, none, false
}

// startFetch marks key as loading and runs fetch on the task pool. A key
// that is already loading is not fetched twice.
func (r *Reducer) startFetch(s State, key string, fetch func(context.Context, Fetcher) Action) (State, Effect, bool) {
	if s.Data.IsLoading(key) || r.API == nil {
		return s, none, true
	}
	s.Data.Loading = with(s.Data.Loading, key, true)
	api := r.API
	return s, store.RunAsync(func(ctx context.Context) Action {
		return fetch(ctx, api)
	}), true
}

func finishFetch(s State, key string) State {
	s.Data.Loading = without(s.Data.Loading, key)
	s.Data.Errors = without(s.Data.Errors, key)
	return s
}

// firstLoad starts the auto refresh clock when the first screen data lands
func firstLoad(s State) State {
	if s.Data.LastRefresh.IsZero() {
		s.Data.LastRefresh = s.System.Now
	}
	return s
}

func fetchFailed(key string, err error) Action {
	return FetchFailed{Key: key, Message: sportsapi.ShortMessage(err)}
}

func applyLiveScore(s State, u sportsapi.ScoreUpdate) State {
	for date, schedule := range s.Data.Schedules {
		if u.Date != "" && date != u.Date {
			continue
		}
		i := slices.IndexFunc(schedule.Games, func(g sportsapi.Game) bool { return g.ID == u.GameID })
		if i < 0 {
			continue
		}
		games := slices.Clone(schedule.Games)
		games[i] = u.Apply(games[i])
		schedule.Games = games
		s.Data.Schedules = with(s.Data.Schedules, date, schedule)
		break
	}
	if detail, ok := s.Data.Games[u.GameID]; ok {
		detail.Game = u.Apply(detail.Game)
		s.Data.Games = with(s.Data.Games, u.GameID, detail)
	}
	return s
}

func (r *Reducer) reduceScreens(s State, a Action) (State, Effect, bool) {
	switch a := a.(type) {
	case ChangeDate:
		old := s.UI.Scores.Date
		day, err := time.Parse(sportsapi.DateLayout, old)
		if err != nil {
			day = s.System.Now
		}
		date := day.AddDate(0, 0, a.Days).Format(sportsapi.DateLayout)

		s.Data.Loading = without(s.Data.Loading, ScheduleKey(old))
		s.UI.Scores.Date = date
		s.UI.Scores.Viewport = document.NewViewport(s.ContentHeight())
		if _, ok := s.Data.Schedules[date]; ok {
			return s, none, true
		}
		return s, store.Dispatch[Action](FetchSchedule{Date: date}), true

	case ToggleBoxSelection:
		s.UI.Scores.BoxSelection = !s.UI.Scores.BoxSelection
		s.UI.Scores.Viewport = selectionViewport(s, TabScores, s.UI.Scores.BoxSelection)
		return s, none, true

	case ToggleBrowseMode:
		s.UI.Standings.BrowseMode = !s.UI.Standings.BrowseMode
		s.UI.Standings.Viewport = selectionViewport(s, TabStandings, s.UI.Standings.BrowseMode)
		return s, none, true

	case CycleStandingsView:
		s.UI.Standings.View = config.NextOption(config.StandingsViews, s.UI.Standings.View)
		s.UI.Standings.Viewport = document.NewViewport(s.ContentHeight())
		if s.UI.Standings.BrowseMode {
			s.UI.Standings.Viewport = selectionViewport(s, TabStandings, true)
		}
		return s, none, true

	case SetSearchQuery:
		s.UI.Search.Query = a.Query
		s.UI.Search.Viewport = document.NewViewport(s.ContentHeight())
		if strings.TrimSpace(a.Query) == "" {
			s.UI.Search.Hits = nil
			return s, none, true
		}
		return s, r.search(a.Query), true

	case SearchResults:
		if a.Query != s.UI.Search.Query {
			return s, none, true
		}
		s.UI.Search.Hits = a.Hits
		return s, none, true
	}
	return s, none, false
}

// selectionViewport focuses the first element of a screen when a selection
// mode turns on and drops focus when it turns off
func selectionViewport(s State, tab Tab, on bool) document.Viewport {
	fm := document.Layout(ScreenDocument(s, tab), s.screenViewport(tab).WithHeight(s.ContentHeight()))
	if on {
		if !fm.Viewport().HasFocus() {
			fm.FocusNext()
		}
	} else {
		fm.ClearFocus()
	}
	return fm.Viewport()
}

func (r *Reducer) search(query string) Effect {
	if r.Search == nil {
		return none
	}
	find := r.Search
	return store.RunAsync(func(ctx context.Context) Action {
		return SearchResults{Query: query, Hits: find(query)}
	})
}

func (r *Reducer) reduceSystem(s State, a Action) (State, Effect, bool) {
	switch a := a.(type) {
	case ToggleSetting:
		prefs, ok := ToggleSettingValue(s.System.Prefs, a.Setting)
		if !ok {
			return s, none, true
		}
		s.System.Prefs = prefs
		if a.Setting == SettingStandingsView {
			s.UI.Standings.View = prefs.StandingsView
		}
		return s, r.save(prefs), true

	case ToggleFavorite:
		s.System.Prefs = s.System.Prefs.ToggleFavorite(a.Abbrev)
		return s, r.save(s.System.Prefs), true

	case ConfigSaved:
		if a.Err != "" {
			s.System.Status = "Could not save settings: " + a.Err
		} else {
			s.System.Status = "Settings saved"
		}
		return s, none, true

	case SetStatus:
		s.System.Status = a.Message
		return s, none, true

	case Resize:
		s.System.Width = a.Width
		s.System.Height = a.Height
		return s, none, true
	}
	return s, none, false
}

func (r *Reducer) save(prefs config.Preferences) Effect {
	if r.Save == nil {
		return none
	}
	save := r.Save
	prefs = prefs.Clone()
	return store.RunAsync(func(ctx context.Context) Action {
		if err := save(prefs); err != nil {
			return ConfigSaved{Err: err.Error()}
		}
		return ConfigSaved{}
	})
}

// Settings that can be cycled on the settings screen
const (
	SettingDefaultTab      = "default_tab"
	SettingStandingsView   = "standings_view"
	SettingDisplayOrder    = "display_order"
	SettingRefreshInterval = "refresh_interval"
	SettingClock24h        = "clock_24h"
)

// Settings lists the settings in screen order
var Settings = []string{
	SettingDefaultTab,
	SettingStandingsView,
	SettingDisplayOrder,
	SettingRefreshInterval,
	SettingClock24h,
}

// ToggleSettingValue advances one setting to its next value. Unknown
// settings are reported with ok=false.
func ToggleSettingValue(p config.Preferences, setting string) (config.Preferences, bool) {
	p = p.Clone()
	switch setting {
	case SettingDefaultTab:
		p.DefaultTab = config.NextOption(config.Tabs, p.DefaultTab)
	case SettingStandingsView:
		p.StandingsView = config.NextOption(config.StandingsViews, p.StandingsView)
	case SettingDisplayOrder:
		p.DisplayOrder = config.NextOption(config.DisplayOrders, p.DisplayOrder)
	case SettingRefreshInterval:
		p.RefreshInterval = config.NextOption(config.RefreshIntervals, p.RefreshInterval)
	case SettingClock24h:
		p.Clock24h = !p.Clock24h
	default:
		return p, false
	}
	return p, true
}
