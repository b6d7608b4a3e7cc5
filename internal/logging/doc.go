// Package logging assembles the structured slog loggers used across yearsort.
//
// It owns the console and JSON handlers, centralizes level plumbing, and keeps
// all diagnostics on a caller-chosen writer (stderr by default) so the plan
// and summary on stdout stay machine-consumable. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
