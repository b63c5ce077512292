package app

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

// statusElements explains why a region has no data yet
func statusElements(s State, key, what string) []document.Element {
	if msg, ok := s.Data.Errors[key]; ok {
		return []document.Element{
			document.Spacer{Lines: 1},
			document.Text{Content: "Could not load " + what + ": " + msg},
			document.Text{Content: "Press r to retry.", Muted: true},
		}
	}
	return []document.Element{
		document.Spacer{Lines: 1},
		document.Text{Content: "Loading " + what + "…", Muted: true},
	}
}

func displayDate(date string) string {
	day, err := time.Parse(sportsapi.DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format("Mon Jan 2, 2006")
}

func formatStart(t time.Time, clock24h bool) string {
	if t.IsZero() {
		return "TBD"
	}
	if clock24h {
		return t.Local().Format("15:04")
	}
	return t.Local().Format("3:04 PM")
}

func gameStatus(g sportsapi.Game, clock24h bool) string {
	switch g.State {
	case sportsapi.StateFinal:
		if g.Period > 3 {
			return "Final/OT"
		}
		return "Final"
	case sportsapi.StateLive:
		if g.Clock != "" {
			return fmt.Sprintf("P%d %s", g.Period, g.Clock)
		}
		return fmt.Sprintf("P%d", g.Period)
	case sportsapi.StatePostponed:
		return "Postponed"
	default:
		return formatStart(g.StartTime, clock24h)
	}
}

func gameStarted(g sportsapi.Game) bool {
	return g.State == sportsapi.StateLive || g.State == sportsapi.StateFinal
}

func scoreLine(g sportsapi.Game) string {
	if !gameStarted(g) {
		return g.Away.Abbrev + " @ " + g.Home.Abbrev
	}
	return fmt.Sprintf("%s %d @ %s %d", g.Away.Abbrev, g.Away.Score, g.Home.Abbrev, g.Home.Score)
}

// gameBox is the focusable score box of one game
func gameBox(g sportsapi.Game, prefs config.Preferences) document.Element {
	side := func(t sportsapi.TeamScore) string {
		name := t.Abbrev
		if prefs.IsFavorite(t.Abbrev) {
			name = "★" + name
		}
		if !gameStarted(g) {
			return fmt.Sprintf("%-5s", name)
		}
		return fmt.Sprintf("%-5s %2d", name, t.Score)
	}
	return document.Button{
		ID: document.EntityID(TargetGame, g.ID),
		Lines: []string{
			side(g.Away) + "   " + gameStatus(g, prefs.Clock24h),
			side(g.Home),
		},
		Target: &document.Target{Kind: TargetGame, ID: g.ID},
	}
}

// orderGames puts games involving favorites first when the display order
// asks for it, otherwise keeps start time order
func orderGames(games []sportsapi.Game, prefs config.Preferences) []sportsapi.Game {
	out := slices.Clone(games)
	slices.SortStableFunc(out, func(a, b sportsapi.Game) int {
		return a.StartTime.Compare(b.StartTime)
	})
	if prefs.DisplayOrder != "favorites" || len(prefs.Favorites) == 0 {
		return out
	}
	favorite := func(g sportsapi.Game) bool {
		return prefs.IsFavorite(g.Away.Abbrev) || prefs.IsFavorite(g.Home.Abbrev)
	}
	slices.SortStableFunc(out, func(a, b sportsapi.Game) int {
		switch {
		case favorite(a) && !favorite(b):
			return -1
		case favorite(b) && !favorite(a):
			return 1
		}
		return 0
	})
	return out
}

// GamesPerRow is the number of score boxes side by side
const GamesPerRow = 2

func scoresDocument(s State) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		date := s.UI.Scores.Date
		elems := []document.Element{
			document.Heading{Level: 1, Content: "Scores · " + displayDate(date)},
		}

		schedule, ok := s.Data.Schedules[date]
		if !ok {
			return append(elems, statusElements(s, ScheduleKey(date), "schedule")...)
		}
		if len(schedule.Games) == 0 {
			return append(elems,
				document.Spacer{Lines: 1},
				document.Text{Content: "No games scheduled.", Muted: true},
			)
		}

		games := orderGames(schedule.Games, s.System.Prefs)
		for i := 0; i < len(games); i += GamesPerRow {
			var boxes []document.Element
			for _, g := range games[i:min(i+GamesPerRow, len(games))] {
				boxes = append(boxes, gameBox(g, s.System.Prefs))
			}
			elems = append(elems, document.Spacer{Lines: 1}, document.Row{Children: boxes, Gap: 4, Width: s.System.Width})
		}

		if msg, failed := s.Data.Errors[ScheduleKey(date)]; failed {
			elems = append(elems, document.Spacer{Lines: 1}, document.Text{Content: "Refresh failed: " + msg, Muted: true})
		}
		return elems
	})
}

func standingsDocument(s State) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		view := s.UI.Standings.View
		elems := []document.Element{
			document.Heading{Level: 1, Content: "Standings · " + strings.ToUpper(view[:min(1, len(view))]) + view[min(1, len(view)):]},
		}
		if len(s.Data.Standings) == 0 {
			return append(elems, statusElements(s, KeyStandings, "standings")...)
		}
		return append(elems, standingsElements(view, s.Data.Standings, s.System.Prefs, s.System.Width)...)
	})
}

func searchHitID(h SearchHit) document.FocusableID {
	if h.Kind == TargetTeam {
		return document.LinkID(TeamKey(h.Abbrev))
	}
	return document.EntityID(h.Kind, h.ID)
}

func searchDocument(s State) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		q := s.UI.Search.Query
		elems := []document.Element{
			document.Heading{Level: 1, Content: "Search"},
		}
		switch {
		case strings.TrimSpace(q) == "":
			return append(elems, document.Text{Content: "Type a team or player name.", Muted: true})
		case len(s.UI.Search.Hits) == 0:
			return append(elems, document.Text{Content: "No matches.", Muted: true})
		}
		for _, h := range s.UI.Search.Hits {
			label := h.Label
			if h.Detail != "" {
				label += "  (" + h.Detail + ")"
			}
			elems = append(elems, document.Link{
				ID:     searchHitID(h),
				Label:  label,
				Target: &document.Target{Kind: h.Kind, ID: h.ID, Key: h.Abbrev},
			})
		}
		return elems
	})
}

func formatInterval(d time.Duration) string {
	switch {
	case d <= 0:
		return "off"
	case d%time.Minute == 0:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	default:
		return d.String()
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// SettingLabel and SettingValue describe one settings row
func SettingLabel(setting string) string {
	switch setting {
	case SettingDefaultTab:
		return "Default tab"
	case SettingStandingsView:
		return "Standings view"
	case SettingDisplayOrder:
		return "Display order"
	case SettingRefreshInterval:
		return "Auto refresh"
	case SettingClock24h:
		return "24-hour clock"
	default:
		return setting
	}
}

func SettingValue(p config.Preferences, setting string) string {
	switch setting {
	case SettingDefaultTab:
		return p.DefaultTab
	case SettingStandingsView:
		return p.StandingsView
	case SettingDisplayOrder:
		return p.DisplayOrder
	case SettingRefreshInterval:
		return formatInterval(p.RefreshInterval)
	case SettingClock24h:
		return onOff(p.Clock24h)
	default:
		return ""
	}
}

func settingsDocument(s State) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		prefs := s.System.Prefs
		elems := []document.Element{
			document.Heading{Level: 1, Content: "Settings"},
			document.Text{Content: "Enter cycles the focused setting. Changes are saved immediately.", Muted: true},
			document.Spacer{Lines: 1},
		}
		for _, setting := range Settings {
			elems = append(elems, document.Link{
				ID:     document.LinkID(setting),
				Label:  fmt.Sprintf("%-16s %s", SettingLabel(setting), SettingValue(prefs, setting)),
				Target: &document.Target{Kind: TargetSetting, Key: setting},
			})
		}

		elems = append(elems, document.SectionTitle{Content: "Favorite teams", Underline: true})
		if len(prefs.Favorites) == 0 {
			elems = append(elems, document.Text{Content: "None yet. Open a team and select ☆ to add it.", Muted: true})
		}
		for _, abbrev := range prefs.Favorites {
			label := abbrev
			if team, ok := s.Data.Teams[abbrev]; ok {
				label = team.Name
			}
			elems = append(elems, document.Link{
				ID:     document.LinkID(TeamKey(abbrev)),
				Label:  "★ " + label,
				Target: &document.Target{Kind: TargetTeam, Key: abbrev},
			})
		}

		live := "disconnected"
		if s.System.LiveConnected {
			live = "connected"
		}
		elems = append(elems,
			document.SectionTitle{Content: "Live scores", Underline: true},
			document.Text{Content: "Feed " + live, Muted: !s.System.LiveConnected},
		)
		return elems
	})
}
