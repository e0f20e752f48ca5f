package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the structured logging key naming the emitting converter or command.
	FieldComponent = "component"
	// FieldRunID is the structured logging key carrying the per-invocation identifier.
	FieldRunID = "run_id"
	// FieldSplit is the structured logging key for dataset split names.
	FieldSplit = "split"
	// FieldSequence is the structured logging key for sequence names.
	FieldSequence = "sequence"
	// FieldPath is the structured logging key for file system paths.
	FieldPath = "path"
)

// Error returns a standard "error" attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WithRunID tags every record emitted through logger with runID.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID == "" {
		return logger
	}
	return logger.With(slog.String(FieldRunID, runID))
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
