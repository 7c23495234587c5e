// Package logging provides structured logging for the numpad widget.
//
// This package wraps a global zap logger with convenience functions used by the
// core packages (pad, numfmt) and the terminal rendering layer (padtui).
//
// # Silent By Default
//
// The widget draws to the terminal, so any log line written to stdout or
// stderr would corrupt the screen. Until Initialize is called with a level
// (or NUMPAD_LOG_LEVEL is set), the logger is a zap.NewNop() and every call is
// free. Point the output at a file when debugging a running program:
//
//	if err := logging.Initialize("debug", "/tmp/numpad.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Log Levels
//
//   - Debug: focus transitions, dispatched keys, visibility transitions
//   - Info: widget lifecycle (program start/stop, config load)
//   - Warn: degraded behaviour (missing glyph collaborator, dropped keys)
//   - Error: unrecoverable CLI failures
//
// # Domain Helpers
//
//	logging.LogFocus(fieldID, "focus")
//	logging.LogKey(fieldID, "5", "12.5")
//	logging.LogVisibility("keypad", "visible", seq)
package logging
