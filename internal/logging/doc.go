// Package logging provides structured logging for argsbar.
//
// This package wraps a global zap logger with convenience functions for the
// common logging patterns used by the widget core and the CLI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Keystroke detail (rejected characters, focus transitions)
//   - Info: Normal operations (submission, parameter loading)
//   - Warn: Non-fatal issues (an encoding reached an unexpected state)
//   - Error: Startup failures
//
// # Silent by Default
//
// The widget draws directly to the terminal, so stray log lines would corrupt
// the display. Unless ARGSBAR_LOG_LEVEL is set (or a level is passed to
// Initialize) the logger is a zap.NewNop() and every call is free.
//
// # Configuration
//
//	if err := logging.InitializeToFile("debug", "/tmp/argsbar.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Domain Helpers
//
//	logging.LogRejectedChar("integer", "12", 'x', "`x` is not a digit")
//	logging.LogFocusChange("none", "0")
//	logging.LogSubmit(values, missing)
package logging
