package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records operation counts and latencies for the identity,
// intent and audit domains.
type BusinessMetrics interface {
	// RecordOperation increments the operation counter for the given domain,
	// operation and status ("success" or "error").
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the operation latency in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// NewBusinessMetrics creates business metrics instruments on the given meter
// provider. Metric names are prefixed with the namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter("business")

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHistogram, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Business operation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHistogram: durationHistogram,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

func (b *businessMetrics) RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string) {
	b.durationHistogram.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// noOpBusinessMetrics discards all measurements. Used when metrics are
// disabled by configuration.
type noOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &noOpBusinessMetrics{}
}

func (n *noOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
}

func (n *noOpBusinessMetrics) RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string) {
}
