package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that discards all measurements.
// Used when metrics are disabled.
type NoopMetrics struct{}

// RecordMutation implements MetricsRecorder.
func (NoopMetrics) RecordMutation(ctx context.Context, op string) {}

// RecordDerive implements MetricsRecorder.
func (NoopMetrics) RecordDerive(ctx context.Context, duration time.Duration, kept int) {}

// RecordSnapshot implements MetricsRecorder.
func (NoopMetrics) RecordSnapshot(ctx context.Context, sizeBytes int64) {}

// RecordPersistError implements MetricsRecorder.
func (NoopMetrics) RecordPersistError(ctx context.Context, op string) {}
