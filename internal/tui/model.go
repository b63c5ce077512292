package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/store"
	"github.com/muurk/sportsdash/internal/ui"
)

// DefaultTickInterval is how often the clock is advanced. Auto refresh is
// checked on every tick.
const DefaultTickInterval = 5 * time.Second

// Runtime is the state runtime the model drives
type Runtime = store.Runtime[app.State, app.Action]

// Messages delivered to Update
type (
	// actionMsg carries an action completed off the dispatch loop
	actionMsg struct{ action app.Action }

	// tickMsg advances the clock
	tickMsg time.Time

	// startMsg loads the data for the initial tab
	startMsg struct{}
)

// Model adapts a Runtime to Bubble Tea. Update is the runtime's dispatch
// loop: every action, including completed async work, is applied there.
type Model struct {
	rt   *Runtime
	keys app.KeyMap

	// Live reports whether a live score feed was started
	Live bool

	// TickInterval overrides DefaultTickInterval; zero keeps the default
	TickInterval time.Duration

	// Clock supplies tick times; tests replace it
	Clock func() time.Time

	zones   *zone.Manager
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
	styles  *document.Styles
}

// New creates a model over rt
func New(rt *Runtime) Model {
	h := help.New()
	h.ShortSeparator = "  "

	input := textinput.New()
	input.Prompt = ui.PromptStyle.Render("Find: ")
	input.Placeholder = "team or player"
	input.Cursor.SetMode(cursor.CursorStatic)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.StatusStyle.UnsetPaddingLeft()

	return Model{
		rt:      rt,
		keys:    app.DefaultKeyMap(),
		Clock:   time.Now,
		zones:   zone.New(),
		help:    h,
		input:   input,
		spinner: s,
		styles:  ui.DocumentStyles(),
	}
}

// State returns the current application state
func (m Model) State() app.State {
	return m.rt.State()
}

// Init starts the inbox pump, the clock and the spinner, and loads the
// initial tab
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		waitForAction(m.rt),
		m.tick(),
		m.spinner.Tick,
	)
}

// waitForAction blocks on the runtime inbox. Exactly one is outstanding at
// a time; Update re-arms it after each delivery.
func waitForAction(rt *Runtime) tea.Cmd {
	return func() tea.Msg {
		select {
		case a := <-rt.Inbox():
			return actionMsg{action: a}
		case <-rt.Context().Done():
			return nil
		}
	}
}

func (m Model) tick() tea.Cmd {
	every := m.TickInterval
	if every <= 0 {
		every = DefaultTickInterval
	}
	return tea.Tick(every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		s := m.rt.State()
		m.rt.Dispatch(app.SwitchTab{Tab: s.Nav.Tab})
		return m, nil

	case actionMsg:
		m.rt.Dispatch(msg.action)
		return m, waitForAction(m.rt)

	case tickMsg:
		m.rt.Dispatch(app.Tick{Now: m.Clock()})
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 10
		m.rt.Dispatch(app.Resize{Width: msg.Width, Height: msg.Height})
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.rt.State()
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) && !typingSearch(s) {
		return m, tea.Quit
	}
	if a, ok := m.keys.Action(s, msg); ok {
		m.rt.Dispatch(a)
	}
	return m, nil
}

// typingSearch reports whether printable keys edit the search query
func typingSearch(s app.State) bool {
	return s.Nav.Tab == app.TabSearch && s.Nav.Focus == app.ContentFocused && len(s.Nav.Panels) == 0
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.rt.Dispatch(app.Navigate{Msg: document.NavScrollUp})
		return m, nil
	case tea.MouseButtonWheelDown:
		m.rt.Dispatch(app.Navigate{Msg: document.NavScrollDown})
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for _, t := range app.Tabs {
		if m.zones.Get(tabZone(t)).InBounds(msg) {
			m.rt.Dispatch(app.SwitchTab{Tab: t})
			break
		}
	}
	return m, nil
}

// View renders the chrome around the active document
func (m Model) View() string {
	s := m.rt.State()
	content := s.Layout().View(s.System.Width, m.styles)

	view := joinLines(
		m.renderTabBar(s),
		m.renderSubheader(s),
		content,
		m.renderStatus(s),
		m.renderHelp(s),
	)
	return m.zones.Scan(view)
}

// Close releases the mouse zone tracker
func (m Model) Close() {
	m.zones.Close()
}
