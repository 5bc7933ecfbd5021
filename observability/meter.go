package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/vcd/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the consuming application.
	ServiceName string
	// ServiceVersion is the version of the consuming application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded by the client and the
// task monitor.
type Metrics struct {
	requestTotal     metric.Int64Counter
	requestDuration  metric.Float64Histogram
	requestActive    metric.Int64UpDownCounter
	taskPollTotal    metric.Int64Counter
	taskWaitDuration metric.Float64Histogram
	errorTotal       metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("vcd.client.requests",
		metric.WithDescription("Total number of API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.client.requests counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("vcd.client.request.duration",
		metric.WithDescription("Duration of API requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.client.request.duration histogram: %w", err)
	}

	requestActive, err := meter.Int64UpDownCounter("vcd.client.requests.active",
		metric.WithDescription("Number of in-flight API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.client.requests.active gauge: %w", err)
	}

	taskPollTotal, err := meter.Int64Counter("vcd.task.polls",
		metric.WithDescription("Total number of task status polls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.task.polls counter: %w", err)
	}

	taskWaitDuration, err := meter.Float64Histogram("vcd.task.wait.duration",
		metric.WithDescription("Time spent waiting for task completion in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.task.wait.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("vcd.client.errors",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating vcd.client.errors counter: %w", err)
	}

	return &Metrics{
		requestTotal:     requestTotal,
		requestDuration:  requestDuration,
		requestActive:    requestActive,
		taskPollTotal:    taskPollTotal,
		taskWaitDuration: taskWaitDuration,
		errorTotal:       errorTotal,
	}, nil
}

// RecordRequestStart increments the active request count.
func (m *Metrics) RecordRequestStart(ctx context.Context) {
	m.requestActive.Add(ctx, 1)
}

// RecordRequestEnd decrements active requests and records the completed request.
func (m *Metrics) RecordRequestEnd(ctx context.Context, method, category, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("category", category),
		attribute.String("status", status),
	)
	m.requestActive.Add(ctx, -1)
	m.requestTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("category", category),
	))
}

// RecordTaskPoll records a single task status poll.
func (m *Metrics) RecordTaskPoll(ctx context.Context, status string) {
	m.taskPollTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("task_status", status),
	))
}

// RecordTaskWait records a completed wait for a task.
func (m *Metrics) RecordTaskWait(ctx context.Context, outcome string, duration time.Duration) {
	m.taskWaitDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
