// Package logging provides structured logging for sportsdash.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the dashboard. It provides both general logging
// functions and specialized functions for the dispatch loop and data fetches.
//
// # Log Levels
//
//   - Debug: Every dispatched action, executed effect and completed fetch
//   - Info: Live feed connection changes, configuration saves
//   - Warn: Fetch failures, feed reconnects
//   - Error: Startup failures
//
// # Output
//
// The dashboard draws on stdout, so logs are written to the file named by
// SPORTSDASH_LOG_FILE (or stderr when unset). Without SPORTSDASH_LOG_LEVEL the
// logger is a no-op:
//
//	SPORTSDASH_LOG_LEVEL=debug SPORTSDASH_LOG_FILE=/tmp/sportsdash.log sportsdash
//
// # Specialized Logging
//
//	logging.LogAction(action)
//	logging.LogEffect("batch", 3)
//	logging.LogFetch("schedule:2024-10-19", elapsed, err)
//	logging.LogFeedEvent(url, "connected")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
