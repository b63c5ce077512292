// Package config provides user configuration management for sportsdash.
//
// This package manages a YAML configuration file holding display preferences,
// the data API location and the live feed settings. The file follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/sportsdash/config.yaml or $HOME/.config/sportsdash/config.yaml
//   - macOS: $HOME/.config/sportsdash/config.yaml
//   - Windows: %LOCALAPPDATA%\sportsdash\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Hand the dashboard a persistence callback for the settings screen
//	save := cfg.Saver("")
//	prefs := cfg.Preferences.ToggleFavorite("TOR")
//	if err := save(prefs); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Writes are protected by a mutex and performed atomically through a
// temporary file and rename.
package config
