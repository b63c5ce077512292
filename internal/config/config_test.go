package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "sportsdash") {
		t.Errorf("GetConfigDir() = %v, should contain 'sportsdash'", configDir)
	}

	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "sportsdash") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Preferences.DefaultTab != "scores" {
		t.Errorf("DefaultTab = %v, want scores", cfg.Preferences.DefaultTab)
	}
	if cfg.Preferences.MaxConcurrentFetches != 4 {
		t.Errorf("MaxConcurrentFetches = %v, want 4", cfg.Preferences.MaxConcurrentFetches)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `version: 1
preferences:
  standings_view: wildcard
  favorites: [TOR, MTL]
  refresh_interval: 30s
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Preferences.StandingsView != "wildcard" {
		t.Errorf("StandingsView = %v, want wildcard", cfg.Preferences.StandingsView)
	}
	if cfg.Preferences.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", cfg.Preferences.RefreshInterval)
	}
	if cfg.Preferences.DefaultTab != "scores" {
		t.Errorf("DefaultTab = %v, want default scores", cfg.Preferences.DefaultTab)
	}
	if diff := cmp.Diff([]string{"TOR", "MTL"}, cfg.Preferences.Favorites); diff != "" {
		t.Errorf("Favorites mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "version: [1"},
		{"bad version", "version: 7"},
		{"bad view", "version: 1\npreferences:\n  standings_view: galaxy\n"},
		{"feed without url", "version: 1\nlive_feed:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() should fail")
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Preferences.Favorites = []string{"EDM"}
	cfg.Preferences.Clock24h = true
	cfg.LiveFeed = LiveFeedConfig{Enabled: true, URL: "ws://localhost:8080/live"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("config permissions = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	save := cfg.Saver(path)

	prefs := cfg.Preferences
	prefs.DisplayOrder = "favorites"
	if err := save(prefs); err != nil {
		t.Fatalf("save() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Preferences.DisplayOrder != "favorites" {
		t.Errorf("DisplayOrder = %v, want favorites", loaded.Preferences.DisplayOrder)
	}
	if cfg.Preferences.DisplayOrder != "points" {
		t.Error("Saver() must not modify the original config")
	}
}

func TestToggleFavorite(t *testing.T) {
	base := Preferences{Favorites: []string{"TOR"}}

	added := base.ToggleFavorite("BOS")
	if !added.IsFavorite("BOS") || !added.IsFavorite("TOR") {
		t.Errorf("ToggleFavorite(BOS) = %v", added.Favorites)
	}
	if base.IsFavorite("BOS") {
		t.Error("ToggleFavorite() modified the receiver")
	}

	removed := added.ToggleFavorite("TOR")
	if removed.IsFavorite("TOR") {
		t.Errorf("ToggleFavorite(TOR) should remove, got %v", removed.Favorites)
	}
}

func TestNextOption(t *testing.T) {
	if got := NextOption(StandingsViews, "league"); got != "conference" {
		t.Errorf("NextOption(league) = %v, want conference", got)
	}
	if got := NextOption(StandingsViews, "wildcard"); got != "league" {
		t.Errorf("NextOption(wildcard) = %v, want league", got)
	}
	if got := NextOption(StandingsViews, "unknown"); got != "league" {
		t.Errorf("NextOption(unknown) = %v, want league", got)
	}
	if got := NextOption(RefreshIntervals, time.Minute); got != 5*time.Minute {
		t.Errorf("NextOption(1m) = %v, want 5m", got)
	}
}
