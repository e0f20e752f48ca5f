// Package logging assembles structured slog loggers used across cococonv.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes a no-op logger for tests plus helpers that tag log
// lines with the converter component and run identifier.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits records with the same shape.
package logging
