// Package service contains application services.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	telemetry "github.com/buildhook/buildhook/internal/adapter/otel"
	"github.com/buildhook/buildhook/internal/buildctx"
	"github.com/buildhook/buildhook/internal/port/notifier"
)

// Delivery is the outcome of one notification delivery.
type Delivery struct {
	ID     string `json:"delivery_id"`
	Status int    `json:"status"`
}

// NotificationService wraps a notifier.Sender with delivery IDs, logging,
// tracing and metrics. Each Deliver call is independent; failures are
// reported to the caller and never retried.
type NotificationService struct {
	sender  notifier.Sender
	metrics *telemetry.Metrics
}

// NewNotificationService creates a NotificationService. metrics may be nil,
// in which case no instruments are recorded.
func NewNotificationService(sender notifier.Sender, metrics *telemetry.Metrics) *NotificationService {
	return &NotificationService{
		sender:  sender,
		metrics: metrics,
	}
}

// Deliver sends one notification and returns the delivery ID and upstream
// status code.
func (s *NotificationService) Deliver(ctx context.Context, req notifier.Request, build buildctx.Context) (Delivery, error) {
	id := uuid.NewString()

	ctx, span := telemetry.StartDeliverySpan(ctx, id, s.sender.Name())
	defer span.End()

	start := time.Now()
	status, err := s.sender.Send(ctx, req, build)

	if s.metrics != nil {
		s.metrics.DeliveryDuration.Record(ctx, time.Since(start).Seconds())
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.Failed.Add(ctx, 1)
		}
		slog.Warn("notification send failed",
			"provider", s.sender.Name(),
			"delivery_id", id,
			"error", err,
		)
		return Delivery{ID: id}, err
	}

	if s.metrics != nil {
		s.metrics.Delivered.Add(ctx, 1)
	}
	slog.Info("notification delivered",
		"provider", s.sender.Name(),
		"delivery_id", id,
		"status", status,
	)
	return Delivery{ID: id, Status: status}, nil
}
