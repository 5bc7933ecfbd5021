// Package observability provides OpenTelemetry tracing and metrics for the
// vCloud client.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanAPIRequest)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-app"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-app"))
//	metrics.RecordRequest(ctx, "GET", "cloudapi", "200", duration)
//
// Both initializers install globals; the client package picks them up
// automatically and stays on no-op providers when they were never installed.
package observability
