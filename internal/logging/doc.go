// Package logging assembles the structured slog loggers used across the
// scrobbler helper layer.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags every line with a short file:line source reference so
// log output stays greppable the same way the Kodi addon log is. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
