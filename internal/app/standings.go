package app

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

// Playoff format used by the wildcard view
const (
	DivisionLeaders = 3
	WildcardSpots   = 2
)

// StandingsGroup is a named subset of the standings, e.g. a division
type StandingsGroup struct {
	Name  string
	Teams []sportsapi.Standing
}

func byPoints(a, b sportsapi.Standing) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifferential(), a.GoalDifferential()); c != 0 {
		return c
	}
	return strings.Compare(a.TeamAbbrev, b.TeamAbbrev)
}

// SortStandings orders teams by a display order preference. The input is
// not modified.
func SortStandings(teams []sportsapi.Standing, order string, favorites []string) []sportsapi.Standing {
	out := slices.Clone(teams)
	switch order {
	case "alphabetical":
		slices.SortStableFunc(out, func(a, b sportsapi.Standing) int {
			return strings.Compare(a.TeamName, b.TeamName)
		})
	case "favorites":
		rank := func(s sportsapi.Standing) int {
			if slices.Contains(favorites, s.TeamAbbrev) {
				return 0
			}
			return 1
		}
		slices.SortStableFunc(out, func(a, b sportsapi.Standing) int {
			if c := cmp.Compare(rank(a), rank(b)); c != 0 {
				return c
			}
			return byPoints(a, b)
		})
	default:
		slices.SortStableFunc(out, byPoints)
	}
	return out
}

// GroupStandings splits teams by key. Groups are ordered by name and keep
// the input order of their teams. Teams with an empty key are grouped
// under "Other".
func GroupStandings(teams []sportsapi.Standing, key func(sportsapi.Standing) string) []StandingsGroup {
	index := map[string]int{}
	var groups []StandingsGroup
	for _, t := range teams {
		name := key(t)
		if name == "" {
			name = "Other"
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, StandingsGroup{Name: name})
		}
		groups[i].Teams = append(groups[i].Teams, t)
	}
	slices.SortStableFunc(groups, func(a, b StandingsGroup) int {
		return strings.Compare(a.Name, b.Name)
	})
	return groups
}

func conferenceOf(s sportsapi.Standing) string { return s.Conference }
func divisionOf(s sportsapi.Standing) string   { return s.Division }

// Wildcard splits one conference into its division leaders (the top
// leaders of every division by points) and the remaining wildcard race,
// ranked by points. Any number of divisions is supported.
func Wildcard(conference []sportsapi.Standing, leaders int) ([]StandingsGroup, []sportsapi.Standing) {
	ranked := slices.Clone(conference)
	slices.SortStableFunc(ranked, byPoints)

	var divisions []StandingsGroup
	var race []sportsapi.Standing
	for _, div := range GroupStandings(ranked, divisionOf) {
		n := min(leaders, len(div.Teams))
		divisions = append(divisions, StandingsGroup{Name: div.Name, Teams: div.Teams[:n:n]})
		race = append(race, div.Teams[n:]...)
	}
	slices.SortStableFunc(race, byPoints)
	return divisions, race
}

var standingsColumns = []document.Column{
	{Title: "Team"},
	{Title: "GP", Align: document.AlignRight},
	{Title: "W", Align: document.AlignRight},
	{Title: "L", Align: document.AlignRight},
	{Title: "OT", Align: document.AlignRight},
	{Title: "PTS", Align: document.AlignRight},
	{Title: "GF", Align: document.AlignRight},
	{Title: "GA", Align: document.AlignRight},
	{Title: "DIFF", Align: document.AlignRight},
}

func standingsGrid(name string, teams []sportsapi.Standing, prefs config.Preferences) document.Grid {
	rows := make([][]document.Cell, len(teams))
	for i, t := range teams {
		label := t.TeamAbbrev
		if prefs.IsFavorite(t.TeamAbbrev) {
			label = "★ " + label
		}
		rows[i] = []document.Cell{
			document.LinkCell(label, document.Target{Kind: TargetTeam, Key: t.TeamAbbrev}),
			document.TextCell(strconv.Itoa(t.GamesPlayed)),
			document.TextCell(strconv.Itoa(t.Wins)),
			document.TextCell(strconv.Itoa(t.Losses)),
			document.TextCell(strconv.Itoa(t.OTLosses)),
			document.TextCell(strconv.Itoa(t.Points)),
			document.TextCell(strconv.Itoa(t.GoalsFor)),
			document.TextCell(strconv.Itoa(t.GoalsAgainst)),
			document.TextCell(fmt.Sprintf("%+d", t.GoalDifferential())),
		}
	}
	return document.Grid{Name: name, Columns: standingsColumns, Rows: rows}
}

func standingsTable(name string, teams []sportsapi.Standing, prefs config.Preferences) document.Element {
	return document.Table{Grid: standingsGrid(name, teams, prefs)}
}

// standingsElements lays out one standings view. Conferences are columns of
// a Row so left and right move between them.
func standingsElements(view string, teams []sportsapi.Standing, prefs config.Preferences, width int) []document.Element {
	sorted := func(ts []sportsapi.Standing) []sportsapi.Standing {
		return SortStandings(ts, prefs.DisplayOrder, prefs.Favorites)
	}
	conferences := GroupStandings(teams, conferenceOf)

	switch view {
	case "league":
		return []document.Element{
			document.Spacer{Lines: 1},
			standingsTable("league", sorted(teams), prefs),
		}

	case "conference":
		columns := make([]document.Element, len(conferences))
		for i, conf := range conferences {
			columns[i] = document.Group{Children: []document.Element{
				document.SectionTitle{Content: conf.Name, Underline: true},
				standingsTable("conference:"+conf.Name, sorted(conf.Teams), prefs),
			}}
		}
		return []document.Element{document.Row{Children: columns, Gap: 4, Width: width}}

	case "wildcard":
		columns := make([]document.Element, len(conferences))
		for i, conf := range conferences {
			leaders, race := Wildcard(conf.Teams, DivisionLeaders)
			var children []document.Element
			for _, div := range leaders {
				children = append(children,
					document.SectionTitle{Content: div.Name},
					standingsTable("wildcard:"+conf.Name+":"+div.Name, div.Teams, prefs),
				)
			}
			spots := min(WildcardSpots, len(race))
			children = append(children,
				document.SectionTitle{Content: conf.Name + " Wild Card"},
				standingsTable("wildcard:"+conf.Name, race[:spots], prefs),
			)
			if spots < len(race) {
				children = append(children,
					document.Separator{},
					standingsTable("wildcard-out:"+conf.Name, race[spots:], prefs),
				)
			}
			columns[i] = document.Group{Children: children}
		}
		return []document.Element{document.Row{Children: columns, Gap: 4, Width: width}}

	default:
		columns := make([]document.Element, len(conferences))
		for i, conf := range conferences {
			var children []document.Element
			for _, div := range GroupStandings(conf.Teams, divisionOf) {
				children = append(children,
					document.SectionTitle{Content: div.Name},
					standingsTable("division:"+div.Name, sorted(div.Teams), prefs),
				)
			}
			columns[i] = document.Group{Children: children}
		}
		return []document.Element{document.Row{Children: columns, Gap: 4, Width: width}}
	}
}
