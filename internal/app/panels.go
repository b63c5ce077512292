package app

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

// panelTitle is the breadcrumb label of a panel. It falls back to the ids
// while the panel's data is loading.
func panelTitle(s State, p Panel) string {
	switch p.Kind {
	case PanelGame:
		if d, ok := s.Data.Games[p.ID]; ok {
			return scoreLine(d.Game)
		}
		if g, ok := findGame(s, p.ID); ok {
			return scoreLine(g)
		}
		return fmt.Sprintf("Game %d", p.ID)
	case PanelTeam:
		if t, ok := s.Data.Teams[p.Abbrev]; ok && t.Name != "" {
			return t.Name
		}
		return p.Abbrev
	default:
		if pl, ok := s.Data.Players[p.ID]; ok {
			return pl.Name
		}
		return fmt.Sprintf("Player %d", p.ID)
	}
}

// findGame looks a game up in the cached schedules
func findGame(s State, id int) (sportsapi.Game, bool) {
	for _, schedule := range s.Data.Schedules {
		for _, g := range schedule.Games {
			if g.ID == id {
				return g, true
			}
		}
	}
	return sportsapi.Game{}, false
}

func teamLink(abbrev, label string) document.Link {
	return document.Link{
		ID:     document.LinkID(TeamKey(abbrev)),
		Label:  label,
		Target: &document.Target{Kind: TargetTeam, Key: abbrev},
	}
}

func playerTarget(id int) *document.Target {
	return &document.Target{Kind: TargetPlayer, ID: id}
}

var boxScoreColumns = []document.Column{
	{Title: "Player"},
	{Title: "Pos"},
	{Title: "G", Align: document.AlignRight},
	{Title: "A", Align: document.AlignRight},
	{Title: "P", Align: document.AlignRight},
	{Title: "SOG", Align: document.AlignRight},
	{Title: "TOI", Align: document.AlignRight},
}

func boxScoreTable(name string, lines []sportsapi.PlayerLine) document.Element {
	lines = slices.Clone(lines)
	slices.SortStableFunc(lines, func(a, b sportsapi.PlayerLine) int {
		if c := cmp.Compare(b.Points(), a.Points()); c != 0 {
			return c
		}
		return cmp.Compare(b.Goals, a.Goals)
	})
	rows := make([][]document.Cell, len(lines))
	for i, l := range lines {
		rows[i] = []document.Cell{
			document.LinkCell(l.Name, *playerTarget(l.PlayerID)),
			document.TextCell(l.Position),
			document.TextCell(strconv.Itoa(l.Goals)),
			document.TextCell(strconv.Itoa(l.Assists)),
			document.TextCell(strconv.Itoa(l.Points())),
			document.TextCell(strconv.Itoa(l.Shots)),
			document.TextCell(l.TOI),
		}
	}
	return document.Table{Grid: document.Grid{Name: name, Columns: boxScoreColumns, Rows: rows}}
}

func gameDocument(s State, id int) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		detail, ok := s.Data.Games[id]
		if !ok {
			elems := []document.Element{document.Heading{Level: 1, Content: panelTitle(s, Panel{Kind: PanelGame, ID: id})}}
			return append(elems, statusElements(s, GameKey(id), "game")...)
		}

		g := detail.Game
		clock := s.System.Prefs.Clock24h
		elems := []document.Element{
			document.Heading{Level: 1, Content: scoreLine(g)},
			document.Text{Content: gameStatus(g, clock) + venueSuffix(g.Venue), Muted: true},
			document.Spacer{Lines: 1},
			document.Row{Gap: 4, Width: s.System.Width, Children: []document.Element{
				teamLink(g.Away.Abbrev, teamSide(g.Away, "Away")),
				teamLink(g.Home.Abbrev, teamSide(g.Home, "Home")),
			}},
		}

		elems = append(elems, document.SectionTitle{Content: "Scoring", Underline: true})
		if len(detail.Goals) == 0 {
			elems = append(elems, document.Text{Content: "No goals.", Muted: true})
		}
		period := 0
		for i, goal := range detail.Goals {
			if goal.Period != period {
				period = goal.Period
				elems = append(elems, document.Text{Content: periodName(period), Muted: true})
			}
			label := fmt.Sprintf("%5s  %-4s %s", goal.Time, goal.Team, goal.Scorer)
			if len(goal.Assists) > 0 {
				label += " (" + strings.Join(goal.Assists, ", ") + ")"
			}
			if goal.PlayerID == 0 {
				elems = append(elems, document.Text{Content: "  " + label})
				continue
			}
			elems = append(elems, document.Link{
				ID:     document.FocusableID{Kind: document.KindEntity, Name: "goal", Entity: i},
				Label:  label,
				Target: playerTarget(goal.PlayerID),
			})
		}

		for _, side := range []sportsapi.TeamScore{g.Away, g.Home} {
			var lines []sportsapi.PlayerLine
			for _, l := range detail.Players {
				if l.Team == side.Abbrev {
					lines = append(lines, l)
				}
			}
			if len(lines) == 0 {
				continue
			}
			elems = append(elems,
				document.SectionTitle{Content: side.Name + " skaters", Underline: true},
				boxScoreTable("boxscore:"+side.Abbrev, lines),
			)
		}
		return elems
	})
}

func teamSide(t sportsapi.TeamScore, where string) string {
	name := t.Name
	if name == "" {
		name = t.Abbrev
	}
	return fmt.Sprintf("%s: %s (%d shots)", where, name, t.Shots)
}

func venueSuffix(venue string) string {
	if venue == "" {
		return ""
	}
	return " · " + venue
}

func periodName(p int) string {
	switch {
	case p <= 3:
		return []string{"", "1st period", "2nd period", "3rd period"}[max(p, 0)]
	case p == 4:
		return "Overtime"
	default:
		return fmt.Sprintf("Period %d", p)
	}
}

var rosterColumns = []document.Column{
	{Title: "#", Align: document.AlignRight},
	{Title: "Player"},
	{Title: "Pos"},
}

func teamDocument(s State, abbrev string) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		prefs := s.System.Prefs
		favorite := "☆ Add to favorites"
		if prefs.IsFavorite(abbrev) {
			favorite = "★ Remove from favorites"
		}
		toggle := document.Link{
			ID:     document.LinkID("favorite:" + abbrev),
			Label:  favorite,
			Target: &document.Target{Kind: TargetFavorite, Key: abbrev},
		}

		team, ok := s.Data.Teams[abbrev]
		if !ok {
			elems := []document.Element{document.Heading{Level: 1, Content: abbrev}, toggle}
			return append(elems, statusElements(s, TeamKey(abbrev), "team")...)
		}

		elems := []document.Element{
			document.Heading{Level: 1, Content: team.Name},
			document.Text{Content: strings.Join(nonEmpty(team.Conference, team.Division, team.Venue), " · "), Muted: true},
			toggle,
		}

		if i := slices.IndexFunc(s.Data.Standings, func(st sportsapi.Standing) bool { return st.TeamAbbrev == abbrev }); i >= 0 {
			st := s.Data.Standings[i]
			elems = append(elems,
				document.SectionTitle{Content: "Season", Underline: true},
				document.Text{Content: fmt.Sprintf("%s · %d pts in %d games · %+d goal differential", st.Record(), st.Points, st.GamesPlayed, st.GoalDifferential())},
			)
			if st.Streak != "" {
				elems = append(elems, document.Text{Content: "Streak " + st.Streak, Muted: true})
			}
		}

		if games := teamGames(s, abbrev); len(games) > 0 {
			elems = append(elems, document.SectionTitle{Content: "Games", Underline: true})
			for _, g := range games {
				elems = append(elems, document.Link{
					ID:     document.EntityID(TargetGame, g.ID),
					Label:  scoreLine(g) + "  " + gameStatus(g, prefs.Clock24h),
					Target: &document.Target{Kind: TargetGame, ID: g.ID},
				})
			}
		}

		rows := make([][]document.Cell, len(team.Roster))
		for i, r := range team.Roster {
			rows[i] = []document.Cell{
				document.TextCell(strconv.Itoa(r.Number)),
				document.LinkCell(r.Name, *playerTarget(r.PlayerID)),
				document.TextCell(r.Position),
			}
		}
		elems = append(elems, document.SectionTitle{Content: "Roster", Underline: true})
		if len(rows) == 0 {
			return append(elems, document.Text{Content: "No roster available.", Muted: true})
		}
		return append(elems, document.Table{Grid: document.Grid{Name: "roster:" + abbrev, Columns: rosterColumns, Rows: rows}})
	})
}

// teamGames returns the team's games from every cached schedule, by start
func teamGames(s State, abbrev string) []sportsapi.Game {
	var games []sportsapi.Game
	for _, schedule := range s.Data.Schedules {
		for _, g := range schedule.Games {
			if g.Involves(abbrev) {
				games = append(games, g)
			}
		}
	}
	slices.SortFunc(games, func(a, b sportsapi.Game) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return games
}

func nonEmpty(values ...string) []string {
	return slices.DeleteFunc(values, func(v string) bool { return v == "" })
}

var seasonColumns = []document.Column{
	{Title: "Season"},
	{Title: "GP", Align: document.AlignRight},
	{Title: "G", Align: document.AlignRight},
	{Title: "A", Align: document.AlignRight},
	{Title: "P", Align: document.AlignRight},
	{Title: "+/-", Align: document.AlignRight},
	{Title: "PIM", Align: document.AlignRight},
}

func playerDocument(s State, id int) document.Document {
	return document.DocumentFunc(func(fc document.FocusContext) []document.Element {
		p, ok := s.Data.Players[id]
		if !ok {
			elems := []document.Element{document.Heading{Level: 1, Content: panelTitle(s, Panel{Kind: PanelPlayer, ID: id})}}
			return append(elems, statusElements(s, PlayerKey(id), "player")...)
		}

		bio := []string{p.Position}
		if p.Number > 0 {
			bio = append(bio, "#"+strconv.Itoa(p.Number))
		}
		if p.BirthDate != "" {
			bio = append(bio, "born "+p.BirthDate)
		}
		elems := []document.Element{
			document.Heading{Level: 1, Content: p.Name},
			document.Text{Content: strings.Join(nonEmpty(bio...), " · "), Muted: true},
		}
		if p.Team != "" {
			elems = append(elems, teamLink(p.Team, "Team: "+p.Team))
		}

		if cur, ok := p.Current(); ok {
			elems = append(elems,
				document.SectionTitle{Content: "This season", Underline: true},
				document.Text{Content: fmt.Sprintf("%d GP · %d G · %d A · %d P · %+d", cur.GamesPlayed, cur.Goals, cur.Assists, cur.Points(), cur.PlusMinus)},
			)
		}

		if len(p.Seasons) > 0 {
			rows := make([][]document.Cell, len(p.Seasons))
			for i, season := range p.Seasons {
				rows[i] = []document.Cell{
					document.TextCell(season.Season),
					document.TextCell(strconv.Itoa(season.GamesPlayed)),
					document.TextCell(strconv.Itoa(season.Goals)),
					document.TextCell(strconv.Itoa(season.Assists)),
					document.TextCell(strconv.Itoa(season.Points())),
					document.TextCell(fmt.Sprintf("%+d", season.PlusMinus)),
					document.TextCell(strconv.Itoa(season.PIM)),
				}
			}
			elems = append(elems,
				document.SectionTitle{Content: "Career", Underline: true},
				document.Table{Grid: document.Grid{Name: "career", Columns: seasonColumns, Rows: rows}},
			)
		}
		return elems
	})
}
