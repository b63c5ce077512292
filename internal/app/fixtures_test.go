package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/sportsapi"
	"github.com/muurk/sportsdash/internal/store"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

const (
	day1 = "2026-10-19"
	day2 = "2026-10-20"
)

// fakeAPI serves canned data. Schedule requests for a date with a gate
// block until the gate is closed.
type fakeAPI struct {
	mu          sync.Mutex
	standings   []sportsapi.Standing
	schedules   map[string]sportsapi.Schedule
	games       map[int]sportsapi.GameDetail
	teams       map[string]sportsapi.Team
	players     map[int]sportsapi.Player
	gates       map[string]chan struct{}
	err         error
	calls       []string
	invalidated int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		standings: sampleStandings(),
		schedules: map[string]sportsapi.Schedule{
			day1: sampleSchedule(day1),
			day2: {Date: day2, Games: []sportsapi.Game{game(20, "BOS", "NYR", sportsapi.StateScheduled)}},
		},
		games: map[int]sportsapi.GameDetail{
			1: {Game: game(1, "TOR", "MTL", sportsapi.StateLive)},
		},
		teams: map[string]sportsapi.Team{
			"TOR": {Abbrev: "TOR", Name: "Toronto", Roster: []sportsapi.RosterEntry{{PlayerID: 34, Name: "A. Matthews", Number: 34, Position: "C"}}},
		},
		players: map[int]sportsapi.Player{
			34: {ID: 34, Name: "A. Matthews", Team: "TOR"},
		},
		gates: map[string]chan struct{}{},
	}
}

func (f *fakeAPI) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Standings(ctx context.Context) ([]sportsapi.Standing, error) {
	if err := f.record(KeyStandings); err != nil {
		return nil, err
	}
	return f.standings, nil
}

func (f *fakeAPI) Schedule(ctx context.Context, date string) (sportsapi.Schedule, error) {
	if gate := f.gates[date]; gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return sportsapi.Schedule{}, ctx.Err()
		}
	}
	if err := f.record(ScheduleKey(date)); err != nil {
		return sportsapi.Schedule{}, err
	}
	return f.schedules[date], nil
}

func (f *fakeAPI) Game(ctx context.Context, id int) (sportsapi.GameDetail, error) {
	if err := f.record(GameKey(id)); err != nil {
		return sportsapi.GameDetail{}, err
	}
	d, ok := f.games[id]
	if !ok {
		return d, sportsapi.NewNotFoundError("no such game")
	}
	return d, nil
}

func (f *fakeAPI) Team(ctx context.Context, abbrev string) (sportsapi.Team, error) {
	if err := f.record(TeamKey(abbrev)); err != nil {
		return sportsapi.Team{}, err
	}
	t, ok := f.teams[abbrev]
	if !ok {
		return t, sportsapi.NewNotFoundError("no such team")
	}
	return t, nil
}

func (f *fakeAPI) Player(ctx context.Context, id int) (sportsapi.Player, error) {
	if err := f.record(PlayerKey(id)); err != nil {
		return sportsapi.Player{}, err
	}
	p, ok := f.players[id]
	if !ok {
		return p, sportsapi.NewNotFoundError("no such player")
	}
	return p, nil
}

func (f *fakeAPI) InvalidateCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
}

func game(id int, away, home, state string) sportsapi.Game {
	return sportsapi.Game{
		ID:        id,
		StartTime: testNow.Add(time.Duration(id) * time.Hour),
		State:     state,
		Away:      sportsapi.TeamScore{Abbrev: away, Name: away},
		Home:      sportsapi.TeamScore{Abbrev: home, Name: home},
	}
}

func sampleSchedule(date string) sportsapi.Schedule {
	return sportsapi.Schedule{Date: date, Games: []sportsapi.Game{
		game(1, "TOR", "MTL", sportsapi.StateLive),
		game(2, "BOS", "NYR", sportsapi.StateFinal),
		game(3, "EDM", "CGY", sportsapi.StateScheduled),
	}}
}

func standing(abbrev, conf, div string, pts, wins int) sportsapi.Standing {
	return sportsapi.Standing{
		TeamAbbrev: abbrev, TeamName: abbrev, Conference: conf, Division: div,
		GamesPlayed: 10, Wins: wins, Points: pts,
	}
}

// sampleStandings has two conferences of two divisions with four teams each
func sampleStandings() []sportsapi.Standing {
	return []sportsapi.Standing{
		standing("TOR", "Eastern", "Atlantic", 15, 7),
		standing("MTL", "Eastern", "Atlantic", 9, 4),
		standing("BOS", "Eastern", "Atlantic", 14, 7),
		standing("OTT", "Eastern", "Atlantic", 8, 3),
		standing("NYR", "Eastern", "Metropolitan", 16, 8),
		standing("NJD", "Eastern", "Metropolitan", 13, 6),
		standing("PIT", "Eastern", "Metropolitan", 12, 5),
		standing("PHI", "Eastern", "Metropolitan", 11, 5),
		standing("EDM", "Western", "Pacific", 12, 6),
		standing("CGY", "Western", "Pacific", 10, 5),
		standing("VAN", "Western", "Pacific", 14, 7),
		standing("SEA", "Western", "Pacific", 7, 3),
		standing("DAL", "Western", "Central", 17, 8),
		standing("COL", "Western", "Central", 13, 6),
		standing("WPG", "Western", "Central", 15, 7),
		standing("MIN", "Western", "Central", 6, 2),
	}
}

func testState() State {
	return NewState(config.DefaultPreferences(), testNow, 100, 30)
}

// loadedState has the first day's schedule and the standings cached
func loadedState() State {
	s := testState()
	s.Data.Schedules = with(s.Data.Schedules, day1, sampleSchedule(day1))
	s.Data.Standings = sampleStandings()
	return s
}

func newRuntime(t *testing.T, r *Reducer, s State) *store.Runtime[State, Action] {
	t.Helper()
	rt := store.New(s, r.Reduce(), store.Options{MaxConcurrent: 4})
	t.Cleanup(rt.Close)
	return rt
}

// step applies one completed async action
func step(t *testing.T, rt *store.Runtime[State, Action]) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if !rt.Step(ctx) {
		t.Fatal("timed out waiting for an async action")
	}
}

// settle applies async actions until nothing is pending
func settle(t *testing.T, rt *store.Runtime[State, Action]) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if rt.Pending() == 0 && len(rt.Inbox()) == 0 {
			return
		}
		if len(rt.Inbox()) > 0 {
			step(t, rt)
			continue
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("async actions did not settle")
}
