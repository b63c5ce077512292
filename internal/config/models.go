package config

import (
	"fmt"
	"slices"
	"time"
)

// CurrentVersion is the config file schema version written by Save.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version     int            `yaml:"version"`
	Preferences Preferences    `yaml:"preferences"`
	API         APIConfig      `yaml:"api"`
	LiveFeed    LiveFeedConfig `yaml:"live_feed"`
}

// Preferences holds display settings the dashboard reads while running and
// writes back when the user changes them on the settings screen.
type Preferences struct {
	DefaultTab           string        `yaml:"default_tab"`            // Tab shown on startup
	StandingsView        string        `yaml:"standings_view"`         // league, conference, division or wildcard
	DisplayOrder         string        `yaml:"display_order"`          // points, alphabetical or favorites
	Favorites            []string      `yaml:"favorites,omitempty"`    // Team abbreviations listed first
	RefreshInterval      time.Duration `yaml:"refresh_interval"`       // 0 disables auto refresh
	MaxConcurrentFetches int           `yaml:"max_concurrent_fetches"` // Size of the fetch task pool
	Clock24h             bool          `yaml:"clock_24h"`              // Render start times as 15:04
}

// APIConfig points the data client at the sports data service.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// LiveFeedConfig configures the websocket live score stream.
type LiveFeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url,omitempty"`
}

// Option lists used when cycling a preference on the settings screen.
var (
	Tabs             = []string{"scores", "standings", "search", "settings"}
	StandingsViews   = []string{"league", "conference", "division", "wildcard"}
	DisplayOrders    = []string{"points", "alphabetical", "favorites"}
	RefreshIntervals = []time.Duration{0, 30 * time.Second, time.Minute, 5 * time.Minute}
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
		API: APIConfig{
			BaseURL:    "http://localhost:8080/v1",
			Timeout:    10 * time.Second,
			MaxRetries: 2,
		},
	}
}

// DefaultPreferences returns the preferences used when none are configured.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultTab:           "scores",
		StandingsView:        "division",
		DisplayOrder:         "points",
		RefreshInterval:      time.Minute,
		MaxConcurrentFetches: 4,
	}
}

// Clone returns a deep copy so reducers can modify preferences safely.
func (p Preferences) Clone() Preferences {
	p.Favorites = slices.Clone(p.Favorites)
	return p
}

// IsFavorite reports whether the team abbreviation is a favorite.
func (p Preferences) IsFavorite(abbrev string) bool {
	return slices.Contains(p.Favorites, abbrev)
}

// ToggleFavorite adds or removes a team from the favorites list.
// The receiver is left untouched; the updated copy is returned.
func (p Preferences) ToggleFavorite(abbrev string) Preferences {
	p = p.Clone()
	if i := slices.Index(p.Favorites, abbrev); i >= 0 {
		p.Favorites = slices.Delete(p.Favorites, i, i+1)
	} else {
		p.Favorites = append(p.Favorites, abbrev)
	}
	return p
}

// NextOption returns the entry after current in options, wrapping around.
// Unknown values restart at the first option.
func NextOption[T comparable](options []T, current T) T {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

// Validate checks the configuration for values the dashboard cannot use.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	p := c.Preferences
	if !slices.Contains(Tabs, p.DefaultTab) {
		return fmt.Errorf("invalid default_tab %q (expected one of %v)", p.DefaultTab, Tabs)
	}
	if !slices.Contains(StandingsViews, p.StandingsView) {
		return fmt.Errorf("invalid standings_view %q (expected one of %v)", p.StandingsView, StandingsViews)
	}
	if !slices.Contains(DisplayOrders, p.DisplayOrder) {
		return fmt.Errorf("invalid display_order %q (expected one of %v)", p.DisplayOrder, DisplayOrders)
	}
	if p.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative")
	}
	if p.MaxConcurrentFetches < 1 {
		return fmt.Errorf("max_concurrent_fetches must be at least 1")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.LiveFeed.Enabled && c.LiveFeed.URL == "" {
		return fmt.Errorf("live_feed.url is required when the live feed is enabled")
	}
	return nil
}
