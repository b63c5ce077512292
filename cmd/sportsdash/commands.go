package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/sportsdash/internal/app"
	"github.com/muurk/sportsdash/internal/config"
	"github.com/muurk/sportsdash/internal/document"
	"github.com/muurk/sportsdash/internal/livefeed"
	"github.com/muurk/sportsdash/internal/logging"
	"github.com/muurk/sportsdash/internal/sportsapi"
	"github.com/muurk/sportsdash/internal/tui"
	"github.com/muurk/sportsdash/internal/ui"
)

// Common flags (persistent on root)
var (
	configPath   string
	apiURL       string
	logLevel     string
	outputFormat string
)

// Dashboard and report flags
var (
	startTab      string
	scoresDate    string
	noLive        bool
	standingsView string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config directory)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Data service URL (overrides api.base_url)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to the log file")

	rootCmd.Flags().StringVar(&startTab, "tab", "", "Tab shown on startup (scores, standings, search, settings)")
	rootCmd.Flags().StringVar(&scoresDate, "date", "", "Scores date to open (YYYY-MM-DD)")
	rootCmd.Flags().BoolVar(&noLive, "no-live", false, "Do not connect to the live score feed")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(scheduleCmd)
}

// standingsCmd prints the standings table
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print league standings",
	Long: `Print the current standings grouped by league, conference, division or
wildcard race, using the same layout as the dashboard.`,
	Example: `  # Standings in the configured view
  sportsdash standings

  # Wildcard race
  sportsdash standings --view wildcard

  # JSON output for scripting
  sportsdash standings --format json`,
	Args: cobra.NoArgs,
	RunE: runStandings,
}

// scheduleCmd prints a day's games
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the games of one day",
	Example: `  # Today's games
  sportsdash schedule

  # Another day
  sportsdash schedule --date 2026-10-20`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	for _, cmd := range []*cobra.Command{standingsCmd, scheduleCmd} {
		cmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
	}
	standingsCmd.Flags().StringVar(&standingsView, "view", "", "Grouping (league, conference, division, wildcard)")
	scheduleCmd.Flags().StringVar(&scoresDate, "date", "", "Date (YYYY-MM-DD, default today)")
}

// setup loads the config, applies flag overrides and starts logging
func setup() (*config.Config, *sportsapi.Client, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	logPath := os.Getenv(logging.LogFileEnvVar)
	if logPath == "" && (logLevel != "" || os.Getenv(logging.LogLevelEnvVar) != "") {
		if logPath, err = config.GetLogPath(); err != nil {
			return nil, nil, err
		}
	}
	if err := logging.Initialize(logLevel, logPath); err != nil {
		return nil, nil, err
	}

	client := sportsapi.NewClient(cfg.API.BaseURL)
	if cfg.API.Timeout > 0 {
		client.SetTimeout(cfg.API.Timeout)
	}
	client.SetRetry(cfg.API.MaxRetries, sportsapi.DefaultRetryDelay)
	return cfg, client, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	if startTab != "" {
		if _, ok := app.ParseTab(startTab); !ok {
			return fmt.Errorf("invalid --tab %q (expected one of %v)", startTab, config.Tabs)
		}
		cfg.Preferences.DefaultTab = startTab
	}

	opts := tui.Options{
		Config:     cfg,
		ConfigPath: configPath,
		API:        client,
		Date:       scoresDate,
	}
	if cfg.LiveFeed.Enabled && !noLive {
		opts.Feed = livefeed.New(cfg.LiveFeed.URL)
	}

	logging.Info("starting dashboard",
		zap.String("api", cfg.API.BaseURL),
		zap.Bool("live", opts.Feed != nil),
	)
	return tui.Run(cmd.Context(), opts)
}

func runStandings(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	prefs := cfg.Preferences
	if standingsView != "" {
		if !slices.Contains(config.StandingsViews, standingsView) {
			return fmt.Errorf("invalid --view %q (expected one of %v)", standingsView, config.StandingsViews)
		}
		prefs.StandingsView = standingsView
	}

	p := ui.NewPrinter(os.Stdout)
	standings, err := client.Standings(cmd.Context())
	if err != nil {
		p.PrintError("Could not load standings", err)
		return fmt.Errorf("standings: %s", sportsapi.ShortMessage(err))
	}
	if outputFormat == "json" {
		return printJSON(standings)
	}

	s := app.NewState(prefs, time.Now(), p.Width(), 0)
	s.Data.Standings = standings
	s.UI.Standings.View = prefs.StandingsView

	p.PrintHeader("Standings", "sportsdash standings",
		ui.Param{Key: "View", Value: prefs.StandingsView},
		ui.Param{Key: "Source", Value: cfg.API.BaseURL},
	)
	p.PrintDocument(report(s, app.TabStandings))
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	date := scoresDate
	if date == "" {
		date = time.Now().Format(sportsapi.DateLayout)
	}
	if _, err := time.Parse(sportsapi.DateLayout, date); err != nil {
		return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}

	p := ui.NewPrinter(os.Stdout)
	schedule, err := client.Schedule(cmd.Context(), date)
	if err != nil {
		p.PrintError("Could not load schedule", err)
		return fmt.Errorf("schedule: %s", sportsapi.ShortMessage(err))
	}
	if outputFormat == "json" {
		return printJSON(schedule)
	}

	s := app.NewState(cfg.Preferences, time.Now(), p.Width(), 0)
	s.UI.Scores.Date = date
	s.Data.Schedules[date] = schedule

	p.PrintHeader("Schedule", "sportsdash schedule",
		ui.Param{Key: "Date", Value: date},
		ui.Param{Key: "Source", Value: cfg.API.BaseURL},
	)
	if len(schedule.Games) == 0 {
		p.PrintWarning("No games scheduled", "Try another day with --date")
		return nil
	}
	p.PrintDocument(report(s, app.TabScores))
	return nil
}

// report builds a screen's document with nothing focused
func report(s app.State, tab app.Tab) []document.Element {
	return app.ScreenDocument(s, tab).Build(document.FocusContext{})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
