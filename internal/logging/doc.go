// Package logging provides structured logging for greenscreen.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is given, because the terminal session owns the
// screen and stray output would corrupt the 80x24 display.
//
// # Log Levels
//
//   - Debug: Navigation, PF key dispatch, field updates
//   - Info: Session start and end, catalog loading
//   - Warn: Absorbed errors (unknown screen ids, bad definitions)
//   - Error: Startup failures
//
// # Configuration
//
// Initialize logging before the terminal starts:
//
//	if err := logging.Initialize("debug", "/tmp/greenscreen.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The level can also come from the GREENSCREEN_LOG_LEVEL environment variable.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
