// Package logging provides structured logging configuration using log/slog.
//
// A report run is treated like a request: NewRunContext stamps a run ID into
// the context under chi's request ID key, so every logger built with
// FromContext carries the same run_id attribute.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
// Output goes to stdout so load diagnostics interleave with the report.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	slog.SetDefault(New(os.Stdout, level, format))
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewRunContext returns a context carrying a fresh run ID.
func NewRunContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, middleware.RequestIDKey, uuid.NewString())
}

// RunID returns the run ID stored in ctx, or "" if none.
func RunID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// FromContext returns the default logger enriched with the run ID, if any.
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := RunID(ctx); id != "" {
		logger = logger.With("run_id", id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	log := logging.WithFields(ctx, "file", cfg.Sales.File)
//	log.Info("loading sales data")
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
