package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buildhook/buildhook/internal/buildctx"
	"github.com/buildhook/buildhook/internal/port/notifier"
)

type stubSender struct {
	status  int
	err     error
	lastReq notifier.Request
	calls   int
}

func (s *stubSender) Name() string { return "stub" }

func (s *stubSender) Send(_ context.Context, req notifier.Request, _ buildctx.Context) (int, error) {
	s.calls++
	s.lastReq = req
	return s.status, s.err
}

func TestDeliverSuccess(t *testing.T) {
	sender := &stubSender{status: 204}
	svc := NewNotificationService(sender, nil)

	d, err := svc.Deliver(context.Background(), notifier.Request{Text: "hi"}, buildctx.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != 204 {
		t.Fatalf("expected status 204, got %d", d.Status)
	}
	if d.ID == "" {
		t.Fatal("expected a delivery ID")
	}
	if sender.calls != 1 {
		t.Fatalf("expected 1 send, got %d", sender.calls)
	}
}

func TestDeliverFailurePropagates(t *testing.T) {
	wantErr := &notifier.DeliveryError{StatusCode: 500, Body: "boom"}
	sender := &stubSender{err: wantErr}
	svc := NewNotificationService(sender, nil)

	_, err := svc.Deliver(context.Background(), notifier.Request{Text: "hi"}, buildctx.Context{})

	var dErr *notifier.DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if sender.calls != 1 {
		t.Fatalf("expected exactly 1 send (no retry), got %d", sender.calls)
	}
}

func TestDeliverPassesRequestThrough(t *testing.T) {
	sender := &stubSender{status: 200}
	svc := NewNotificationService(sender, nil)

	color := 255
	req := notifier.Request{Text: "oops", Color: &color}
	if _, err := svc.Deliver(context.Background(), req, buildctx.Context{Result: buildctx.ResultFailure}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.lastReq.Text != "oops" || sender.lastReq.Color == nil || *sender.lastReq.Color != 255 {
		t.Fatalf("request not passed through: %+v", sender.lastReq)
	}
}

func TestDeliverIDsAreUnique(t *testing.T) {
	sender := &stubSender{status: 204}
	svc := NewNotificationService(sender, nil)

	a, _ := svc.Deliver(context.Background(), notifier.Request{Text: "one"}, buildctx.Context{})
	b, _ := svc.Deliver(context.Background(), notifier.Request{Text: "two"}, buildctx.Context{})
	if a.ID == b.ID {
		t.Fatalf("expected distinct delivery IDs, both %q", a.ID)
	}
}
