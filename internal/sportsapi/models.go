package sportsapi

import (
	"strconv"
	"time"
)

// Game states reported by the data service
const (
	StateScheduled = "scheduled"
	StateLive      = "live"
	StateFinal     = "final"
	StatePostponed = "postponed"
)

// DateLayout is the format of schedule dates in URLs and payloads
const DateLayout = "2006-01-02"

// Standing is one team's row in the league table.
type Standing struct {
	TeamAbbrev   string `json:"teamAbbrev"`
	TeamName     string `json:"teamName"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	GamesPlayed  int    `json:"gamesPlayed"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTLosses     int    `json:"otLosses"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Streak       string `json:"streak,omitempty"`
}

// GoalDifferential returns goals for minus goals against
func (s Standing) GoalDifferential() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Record formats the W-L-OTL record
func (s Standing) Record() string {
	return strconv.Itoa(s.Wins) + "-" + strconv.Itoa(s.Losses) + "-" + strconv.Itoa(s.OTLosses)
}

// TeamScore is one side of a game.
type TeamScore struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Shots  int    `json:"shots,omitempty"`
}

// Game is a schedule entry.
type Game struct {
	ID        int       `json:"id"`
	StartTime time.Time `json:"startTime"`
	State     string    `json:"state"`
	Period    int       `json:"period,omitempty"`
	Clock     string    `json:"clock,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	Away      TeamScore `json:"away"`
	Home      TeamScore `json:"home"`
}

// Involves reports whether the team plays in this game
func (g Game) Involves(abbrev string) bool {
	return g.Away.Abbrev == abbrev || g.Home.Abbrev == abbrev
}

// Schedule is every game on one date.
type Schedule struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// PlayerLine is one skater's box score entry.
type PlayerLine struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Shots    int    `json:"shots"`
	TOI      string `json:"toi,omitempty"`
}

// Points returns goals plus assists
func (p PlayerLine) Points() int {
	return p.Goals + p.Assists
}

// Goal is a scoring summary entry.
type Goal struct {
	Period   int      `json:"period"`
	Time     string   `json:"time"`
	Team     string   `json:"team"`
	Scorer   string   `json:"scorer"`
	PlayerID int      `json:"playerId"`
	Assists  []string `json:"assists,omitempty"`
}

// GameDetail is the full box score of one game.
type GameDetail struct {
	Game    Game         `json:"game"`
	Goals   []Goal       `json:"goals"`
	Players []PlayerLine `json:"players"`
}

// RosterEntry is a player listed on a team roster.
type RosterEntry struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// Team is a team profile with its roster.
type Team struct {
	Abbrev     string        `json:"abbrev"`
	Name       string        `json:"name"`
	Conference string        `json:"conference"`
	Division   string        `json:"division"`
	Venue      string        `json:"venue,omitempty"`
	Roster     []RosterEntry `json:"roster"`
}

// SeasonStats are a player's season totals.
type SeasonStats struct {
	Season      string `json:"season"`
	GamesPlayed int    `json:"gamesPlayed"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	PlusMinus   int    `json:"plusMinus"`
	PIM         int    `json:"pim"`
}

// Points returns goals plus assists
func (s SeasonStats) Points() int {
	return s.Goals + s.Assists
}

// Player is a player profile.
type Player struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Team      string        `json:"team"`
	Number    int           `json:"number"`
	Position  string        `json:"position"`
	BirthDate string        `json:"birthDate,omitempty"`
	Seasons   []SeasonStats `json:"seasons"`
}

// Current returns the most recent season, if any
func (p Player) Current() (SeasonStats, bool) {
	if len(p.Seasons) == 0 {
		return SeasonStats{}, false
	}
	return p.Seasons[len(p.Seasons)-1], true
}

// ScoreUpdate is a live feed message for a game in progress.
type ScoreUpdate struct {
	GameID    int    `json:"gameId"`
	Date      string `json:"date"`
	State     string `json:"state"`
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	AwayScore int    `json:"awayScore"`
	HomeScore int    `json:"homeScore"`
}

// Apply returns g with the update's score and clock
func (u ScoreUpdate) Apply(g Game) Game {
	if u.State != "" {
		g.State = u.State
	}
	g.Period = u.Period
	g.Clock = u.Clock
	g.Away.Score = u.AwayScore
	g.Home.Score = u.HomeScore
	return g
}
