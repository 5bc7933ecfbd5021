package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Operation tracks a single client call across tracing and metrics.
type Operation struct {
	Name      string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics
}

// NewOperation creates an operation record. If metrics is nil, metric
// recording is silently skipped.
func NewOperation(name, requestID string, metrics *Metrics) *Operation {
	return &Operation{
		Name:      name,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// StartSpan starts a traced span for the operation and records the
// request start metric.
func (op *Operation) StartSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrOperation, op.Name),
		attribute.String(AttrRequestID, op.RequestID),
	)

	if op.Metrics != nil {
		op.Metrics.RecordRequestStart(ctx)
	}
	return ctx, span
}

// End closes the span and records the request-end metrics.
func (op *Operation) End(ctx context.Context, span trace.Span, method, category, status string, err error) {
	duration := time.Since(op.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if op.Metrics != nil {
		op.Metrics.RecordRequestEnd(ctx, method, category, status, duration)
	}
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}
