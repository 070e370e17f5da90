// Package observability provides structured logging, metrics, and
// tracing helpers for eventdesk.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogStoreLoaded logs a successful collection load at startup.
// The source is "snapshot" or "seed".
func LogStoreLoaded(logger *slog.Logger, count int, source string) {
	if logger == nil {
		return
	}
	logger.Info("event store loaded",
		slog.Int("events", count),
		slog.String("source", source),
	)
}

// LogSeedFallback logs that a stored snapshot was unreadable and the
// store fell back to the seed collection.
func LogSeedFallback(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Warn("stored snapshot unreadable, falling back to seed",
		slog.String("error", err.Error()),
	)
}

// LogMutation logs a store mutation.
func LogMutation(logger *slog.Logger, op string, eventID int64) {
	if logger == nil {
		return
	}
	logger.Debug("store mutation",
		slog.String("op", op),
		slog.Int64("event_id", eventID),
	)
}

// LogPersistError logs a failed snapshot write (non-fatal).
func LogPersistError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("snapshot write failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

// LogViewDerived logs a derivation pipeline run.
func LogViewDerived(logger *slog.Logger, total, kept int, sortField, filter string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("view derived",
		slog.Int("total", total),
		slog.Int("kept", kept),
		slog.String("sort_field", sortField),
		slog.String("filter", filter),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
