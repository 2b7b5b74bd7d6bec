// Package observability provides structured logging, metrics, and
// tracing for prime searches.
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

// LogSearchStart logs the start of a search run.
func LogSearchStart(logger *slog.Logger, runID string, target int, budget time.Duration, workers int) {
	if logger == nil {
		return
	}
	logger.Info("search starting",
		slog.String("run_id", runID),
		slog.Int("target_count", target),
		slog.Duration("time_budget", budget),
		slog.Int("workers", workers),
	)
}

// LogResume logs a run picking up from a checkpoint.
func LogResume(logger *slog.Logger, count int, elapsedSeconds float64) {
	if logger == nil {
		return
	}
	logger.Info("resuming from checkpoint",
		slog.Int("count", count),
		slog.Float64("elapsed_seconds", elapsedSeconds),
	)
}

// LogBatchComplete logs one finished search batch.
func LogBatchComplete(logger *slog.Logger, count int, elapsedSeconds float64, largest int64) {
	if logger == nil {
		return
	}
	logger.Debug("batch completed",
		slog.Int("count", count),
		slog.Float64("elapsed_seconds", elapsedSeconds),
		slog.Int64("largest_prime", largest),
	)
}

// LogCheckpoint logs a successful checkpoint save.
func LogCheckpoint(logger *slog.Logger, count int) {
	if logger == nil {
		return
	}
	logger.Debug("checkpoint saved",
		slog.Int("count", count),
	)
}

// LogCheckpointError logs a checkpoint failure (non-fatal by default).
func LogCheckpointError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("checkpoint failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogCheckpointCleared logs checkpoint removal after a natural
// time-bounded completion.
func LogCheckpointCleared(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("checkpoint cleared")
}

// LogScanRetry logs a discarded batch being retried after a worker
// failure.
func LogScanRetry(logger *slog.Logger, attempt int, err error) {
	if logger == nil {
		return
	}
	logger.Warn("scan retry",
		slog.Int("attempt", attempt),
		slog.String("error", err.Error()),
	)
}

// LogSearchComplete logs successful run completion.
func LogSearchComplete(logger *slog.Logger, runID string, count int, largest int64, elapsedSeconds float64, reason string) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.String("run_id", runID),
		slog.Int("count", count),
		slog.Int64("largest_prime", largest),
		slog.Float64("elapsed_seconds", elapsedSeconds),
		slog.String("stop_reason", reason),
	)
}

// LogSearchError logs run failure.
func LogSearchError(logger *slog.Logger, runID string, err error, elapsedSeconds float64) {
	if logger == nil {
		return
	}
	logger.Error("search failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("elapsed_seconds", elapsedSeconds),
	)
}
