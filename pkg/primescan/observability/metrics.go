package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordBatch records a completed batch with the primes it found
	// and its duration.
	RecordBatch(ctx context.Context, primesFound int, duration time.Duration)

	// RecordRun records a search run completion.
	RecordRun(ctx context.Context, success bool, duration time.Duration)

	// RecordCheckpoint records a checkpoint save with the persisted
	// count.
	RecordCheckpoint(ctx context.Context, count int)

	// RecordScanRetry records a discarded batch being retried.
	RecordScanRetry(ctx context.Context)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	batches         metric.Int64Counter
	batchLatency    metric.Float64Histogram
	primesFound     metric.Int64Counter
	runs            metric.Int64Counter
	runLatency      metric.Float64Histogram
	checkpointCount metric.Int64Histogram
	scanRetries     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("primescan")

	batches, err := meter.Int64Counter("primescan.batches",
		metric.WithDescription("Number of completed search batches"),
	)
	if err != nil {
		return nil, err
	}

	batchLatency, err := meter.Float64Histogram("primescan.batch.latency_ms",
		metric.WithDescription("Batch duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	primesFound, err := meter.Int64Counter("primescan.primes_found",
		metric.WithDescription("Number of primes found"),
	)
	if err != nil {
		return nil, err
	}

	runs, err := meter.Int64Counter("primescan.runs",
		metric.WithDescription("Number of search runs"),
	)
	if err != nil {
		return nil, err
	}

	runLatency, err := meter.Float64Histogram("primescan.run.latency_ms",
		metric.WithDescription("Run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	checkpointCount, err := meter.Int64Histogram("primescan.checkpoint.count",
		metric.WithDescription("Prime count persisted per checkpoint"),
	)
	if err != nil {
		return nil, err
	}

	scanRetries, err := meter.Int64Counter("primescan.scan_retries",
		metric.WithDescription("Number of discarded batches retried after worker failure"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		batches:         batches,
		batchLatency:    batchLatency,
		primesFound:     primesFound,
		runs:            runs,
		runLatency:      runLatency,
		checkpointCount: checkpointCount,
		scanRetries:     scanRetries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordBatch records a completed batch.
func (m *otelMetrics) RecordBatch(ctx context.Context, primesFound int, duration time.Duration) {
	m.batches.Add(ctx, 1)
	m.batchLatency.Record(ctx, float64(duration.Milliseconds()))
	m.primesFound.Add(ctx, int64(primesFound))
}

// RecordRun records a search run.
func (m *otelMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.runLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordCheckpoint records a checkpoint save.
func (m *otelMetrics) RecordCheckpoint(ctx context.Context, count int) {
	m.checkpointCount.Record(ctx, int64(count))
}

// RecordScanRetry records a batch retry.
func (m *otelMetrics) RecordScanRetry(ctx context.Context) {
	m.scanRetries.Add(ctx, 1)
}
