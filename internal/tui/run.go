package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/livefeed"
	"github.com/muurk/sportsdash/internal/logging"
	"github.com/muurk/sportsdash/internal/search"
	"github.com/muurk/sportsdash/internal/sportsapi"
	"github.com/muurk/sportsdash/internal/store"
	"github.com/muurk/sportsdash/internal/ui"
)

// Options configures a dashboard session
type Options struct {
	Config     *config.Config
	ConfigPath string // Empty saves to the default location
	API        app.Fetcher

	// Date is the scores date shown first (YYYY-MM-DD); empty means today
	Date string

	// Feed streams live scores; nil runs without one
	Feed *livefeed.Feed

	// ProgramOptions are appended to the defaults (alt screen, mouse)
	ProgramOptions []tea.ProgramOption
}

// NewRuntime builds the runtime for a session: initial state, reducer,
// search index and the snapshot that feeds it
func NewRuntime(opts Options, now time.Time, width, height int) (*Runtime, error) {
	prefs := opts.Config.Preferences
	state := app.NewState(prefs, now, width, height)
	if opts.Date != "" {
		if _, err := time.Parse(sportsapi.DateLayout, opts.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", opts.Date)
		}
		state.UI.Scores.Date = opts.Date
	}

	snap := store.NewSnapshot(state.Data)
	index := search.New(snap)

	reducer := &app.Reducer{
		API:    opts.API,
		Search: index.Find,
		Save:   opts.Config.Saver(opts.ConfigPath),
	}
	rt := store.New(state, reducer.Reduce(), store.Options{
		MaxConcurrent: int64(prefs.MaxConcurrentFetches),
	})
	rt.Observe(store.PublishChanged(snap, func(s app.State) app.DataState { return s.Data }, app.DataState.SameEntities))
	return rt, nil
}

// Run shows the dashboard until the user quits or ctx ends
func Run(ctx context.Context, opts Options) error {
	width, height := ui.GetTerminalSize()
	rt, err := NewRuntime(opts, time.Now(), width, height)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := New(rt)
	model.Live = opts.Feed != nil
	defer model.Close()

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	program := tea.NewProgram(model, programOpts...)

	g, gctx := errgroup.WithContext(ctx)
	if opts.Feed != nil {
		g.Go(func() error {
			err := opts.Feed.Run(gctx, livefeed.Handler{
				Update: func(u sportsapi.ScoreUpdate) { rt.Send(app.LiveScore{Update: u}) },
				Status: func(connected bool) { rt.Send(app.LiveStatus{Connected: connected}) },
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.Error("live feed stopped", zap.Error(err))
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	err = g.Wait()
	rt.Close()
	if werr := rt.Wait(); werr != nil {
		logging.Warn("async tasks ended with error", zap.Error(werr))
	}
	logging.Info("dashboard closed", zap.Uint64("actions", rt.Dispatched()))
	return err
}
