// Package logging builds the application's slog loggers and provides the
// attribute helpers used across packages. Two output formats are supported:
// a human-oriented console format and JSON for machine consumption.
package logging
