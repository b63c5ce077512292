package tui

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type stubAPI struct {
	mu    sync.Mutex
	calls []string
}

func (a *stubAPI) record(call string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, call)
}

func (a *stubAPI) Standings(ctx context.Context) ([]sportsapi.Standing, error) {
	a.record(app.KeyStandings)
	return []sportsapi.Standing{
		{TeamAbbrev: "TOR", TeamName: "Toronto", Conference: "Eastern", Division: "Atlantic", Points: 10},
	}, nil
}

func (a *stubAPI) Schedule(ctx context.Context, date string) (sportsapi.Schedule, error) {
	a.record(app.ScheduleKey(date))
	return sportsapi.Schedule{Date: date, Games: []sportsapi.Game{{
		ID:        1,
		StartTime: testNow,
		State:     sportsapi.StateFinal,
		Away:      sportsapi.TeamScore{Abbrev: "TOR", Name: "Toronto", Score: 3},
		Home:      sportsapi.TeamScore{Abbrev: "MTL", Name: "Montreal", Score: 2},
	}}}, nil
}

func (a *stubAPI) Game(ctx context.Context, id int) (sportsapi.GameDetail, error) {
	return sportsapi.GameDetail{}, sportsapi.NewNotFoundError("no game")
}

func (a *stubAPI) Team(ctx context.Context, abbrev string) (sportsapi.Team, error) {
	return sportsapi.Team{}, sportsapi.NewNotFoundError("no team")
}

func (a *stubAPI) Player(ctx context.Context, id int) (sportsapi.Player, error) {
	return sportsapi.Player{}, sportsapi.NewNotFoundError("no player")
}

func (a *stubAPI) InvalidateCache() {}

func newModel(t *testing.T) Model {
	t.Helper()
	rt, err := NewRuntime(Options{
		Config:     config.Default(),
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		API:        &stubAPI{},
	}, testNow, 100, 30)
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}
	t.Cleanup(rt.Close)

	m := New(rt)
	m.Clock = func() time.Time { return testNow.Add(time.Minute) }
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

// view renders m without escape sequences
func view(m Model) string {
	return ansi.Strip(m.View())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle feeds completed async actions back through Update until nothing
// is pending
func settle(t *testing.T, m Model) Model {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case a := <-m.rt.Inbox():
			m, _ = update(t, m, actionMsg{action: a})
			continue
		default:
		}
		if m.rt.Pending() == 0 && len(m.rt.Inbox()) == 0 {
			return m
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("async actions did not settle")
	return m
}

func TestStart_LoadsInitialTab(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, startMsg{})
	m = settle(t, m)

	s := m.State()
	if _, ok := s.Data.Schedules["2026-10-19"]; !ok {
		t.Fatalf("schedule not loaded; errors = %v", s.Data.Errors)
	}
	got := view(m)
	if !strings.Contains(got, "TOR") {
		t.Errorf("view does not show the loaded game:\n%s", got)
	}
	if !strings.Contains(got, "Updated ") {
		t.Errorf("status line has no last refresh time:\n%s", got)
	}
}

func TestKeys_DispatchActions(t *testing.T) {
	m := newModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Nav.Tab; got != app.TabStandings {
		t.Errorf("tab after right = %v, want standings", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.State().Nav.Focus; got != app.ContentFocused {
		t.Errorf("focus after enter = %v, want content", got)
	}
}

func TestQuit(t *testing.T) {
	isQuit := func(cmd tea.Cmd) bool {
		if cmd == nil {
			return false
		}
		_, ok := cmd().(tea.QuitMsg)
		return ok
	}

	m := newModel(t)
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c did not quit")
	}
	if _, cmd := update(t, m, runes("q")); !isQuit(cmd) {
		t.Error("q on the tab bar did not quit")
	}

	m = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, runes("q"))
	if isQuit(cmd) {
		t.Fatal("q quit while typing a search")
	}
	if got := m.State().UI.Search.Query; got != "q" {
		t.Errorf("query = %q, want %q", got, "q")
	}
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c did not quit while typing a search")
	}
}

func TestWindowSize_Resizes(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	s := m.State()
	if s.System.Width != 120 || s.System.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", s.System.Width, s.System.Height)
	}
	if got := len(strings.Split(view(m), "\n")); got != 40 {
		t.Errorf("view lines = %d, want 40", got)
	}
}

func TestTick_AdvancesClock(t *testing.T) {
	m := newModel(t)
	m, cmd := update(t, m, tickMsg(testNow))
	if cmd == nil {
		t.Error("tick was not re-armed")
	}
	if got := m.State().System.Now; !got.Equal(testNow.Add(time.Minute)) {
		t.Errorf("Now = %v", got)
	}
}

func TestView_Chrome(t *testing.T) {
	m := newModel(t)
	got := view(m)

	if n := len(strings.Split(got, "\n")); n != 30 {
		t.Errorf("view lines = %d, want the terminal height 30", n)
	}
	for _, want := range []string{"1 Scores", "2 Standings", "3 Search", "4 Settings", "quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(got, "LIVE") || strings.Contains(got, "offline") {
		t.Error("live indicator shown without a feed")
	}
}

func TestView_LiveIndicator(t *testing.T) {
	m := newModel(t)
	m.Live = true
	if !strings.Contains(view(m), "offline") {
		t.Error("disconnected feed not shown")
	}

	m, cmd := update(t, m, actionMsg{action: app.LiveStatus{Connected: true}})
	if cmd == nil {
		t.Error("inbox wait was not re-armed")
	}
	if !strings.Contains(view(m), "LIVE") {
		t.Error("connected feed not shown")
	}
}

func TestView_SearchPromptAndBreadcrumb(t *testing.T) {
	m := newModel(t)
	m = press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter}, runes("t"), runes("o"), runes("r"))
	m = settle(t, m)
	if got := view(m); !strings.Contains(got, "Find: tor") {
		t.Errorf("search prompt missing:\n%s", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("1"))
	m, _ = update(t, m, startMsg{})
	m = settle(t, m)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter}, // content
		tea.KeyMsg{Type: tea.KeyEnter}, // box selection
		tea.KeyMsg{Type: tea.KeyDown},  // focus first game
		tea.KeyMsg{Type: tea.KeyEnter}, // open it
	)
	m = settle(t, m)
	if got := view(m); !strings.Contains(got, "Scores › ") {
		t.Errorf("breadcrumb missing:\n%s", got)
	}
}

func TestMouse_ClickSwitchesTab(t *testing.T) {
	m := newModel(t)

	clicked := false
	deadline := time.Now().Add(2 * time.Second)
	for !clicked && time.Now().Before(deadline) {
		m.View()
		info := m.zones.Get(tabZone(app.TabSettings))
		if !info.IsZero() {
			clicked = true
			m, _ = update(t, m, tea.MouseMsg{
				X: info.StartX, Y: info.StartY,
				Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
			})
			continue
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !clicked {
		t.Fatal("tab zones were never registered")
	}
	if got := m.State().Nav.Tab; got != app.TabSettings {
		t.Errorf("tab after click = %v, want settings", got)
	}
}

func TestNewRuntime_RejectsBadDate(t *testing.T) {
	_, err := NewRuntime(Options{Config: config.Default(), API: &stubAPI{}, Date: "10/19/2026"}, testNow, 80, 24)
	if err == nil {
		t.Fatal("NewRuntime() accepted a malformed date")
	}
}
