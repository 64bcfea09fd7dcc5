package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "buildhook"

// StartDeliverySpan starts a span for one webhook delivery.
func StartDeliverySpan(ctx context.Context, deliveryID, provider string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "delivery",
		trace.WithAttributes(
			attribute.String("delivery.id", deliveryID),
			attribute.String("delivery.provider", provider),
		),
	)
}
