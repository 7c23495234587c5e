// Package ui renders the one-shot terminal output of the numpad-demo CLI.
//
// The interactive form lives in padtui. This package covers the commands
// that print something and exit:
//
//   - Header: command banner with the command path and its parameters
//   - Result: success, failure or warning box with ordered details
//   - ConfirmOverwrite: y/N prompt before replacing an existing file
//
// Output is plain lipgloss rendering written to stdout; no Bubble Tea
// program is started.
//
// # Logging Integration
//
// Logging is controlled via the NUMPAD_LOG_LEVEL environment variable. When
// unset, zap logging is silent so the curated output stays clean.
package ui
