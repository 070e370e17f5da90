package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the eventdesk tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("eventdesk")

// StartMutationSpan starts a span for a store mutation.
func StartMutationSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventdesk.store."+op,
		trace.WithAttributes(
			attribute.String("op", op),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartSubmitSpan starts a span for a form submission.
func StartSubmitSpan(ctx context.Context, editing bool) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventdesk.form.submit",
		trace.WithAttributes(
			attribute.Bool("editing", editing),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
