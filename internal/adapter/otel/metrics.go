package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "buildhook"

// Metrics holds all buildhook metric instruments.
type Metrics struct {
	Delivered        metric.Int64Counter
	Failed           metric.Int64Counter
	DeliveryDuration metric.Float64Histogram
}

// NewMetrics creates all metric instruments. With no meter provider
// installed the instruments are no-ops, so callers can use them
// unconditionally.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Delivered, err = meter.Int64Counter("buildhook.notifications.delivered",
		metric.WithDescription("Number of notifications delivered"))
	if err != nil {
		return nil, err
	}

	m.Failed, err = meter.Int64Counter("buildhook.notifications.failed",
		metric.WithDescription("Number of notification deliveries that failed"))
	if err != nil {
		return nil, err
	}

	m.DeliveryDuration, err = meter.Float64Histogram("buildhook.delivery.duration_seconds",
		metric.WithDescription("Webhook delivery duration in seconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
