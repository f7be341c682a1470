// Package logging assembles the structured slog loggers used across Folio.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a severity tracker so the CLI can report whether a
// run logged warnings or errors. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
