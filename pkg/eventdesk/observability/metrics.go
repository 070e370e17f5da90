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

// MetricsRecorder records eventdesk metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordMutation records a store mutation (add, edit, delete, toggle).
	RecordMutation(ctx context.Context, op string)

	// RecordDerive records a derivation pipeline run with its duration
	// and the number of events kept after filtering.
	RecordDerive(ctx context.Context, duration time.Duration, kept int)

	// RecordSnapshot records a successful snapshot write.
	RecordSnapshot(ctx context.Context, sizeBytes int64)

	// RecordPersistError records a failed snapshot write.
	RecordPersistError(ctx context.Context, op string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	mutations     metric.Int64Counter
	deriveLatency metric.Float64Histogram
	snapshotSize  metric.Int64Histogram
	persistErrors metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventdesk")

	mutations, err := meter.Int64Counter("eventdesk.store.mutations",
		metric.WithDescription("Number of store mutations"),
	)
	if err != nil {
		return nil, err
	}

	deriveLatency, err := meter.Float64Histogram("eventdesk.view.derive_ms",
		metric.WithDescription("Derivation pipeline latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("eventdesk.snapshot.size_bytes",
		metric.WithDescription("Snapshot size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	persistErrors, err := meter.Int64Counter("eventdesk.store.persist_errors",
		metric.WithDescription("Number of failed snapshot writes"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		mutations:     mutations,
		deriveLatency: deriveLatency,
		snapshotSize:  snapshotSize,
		persistErrors: persistErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
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

// RecordMutation records a store mutation.
func (m *otelMetrics) RecordMutation(ctx context.Context, op string) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
	))
}

// RecordDerive records a derivation pipeline run.
func (m *otelMetrics) RecordDerive(ctx context.Context, duration time.Duration, kept int) {
	m.deriveLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(
		attribute.Int("kept", kept),
	))
}

// RecordSnapshot records a successful snapshot write.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, sizeBytes int64) {
	m.snapshotSize.Record(ctx, sizeBytes)
}

// RecordPersistError records a failed snapshot write.
func (m *otelMetrics) RecordPersistError(ctx context.Context, op string) {
	m.persistErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
	))
}
