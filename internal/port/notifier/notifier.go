// Package notifier defines the notification port: the request shape, the
// delivery errors, and the secret lookup collaborator.
package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildhook/buildhook/internal/buildctx"
)

// ErrConfiguration is the sentinel for failures detected before any network
// I/O: missing message text, no resolvable destination, out-of-range color.
var ErrConfiguration = errors.New("notifier: configuration error")

// DeliveryError reports a failed webhook POST: either a non-2xx response
// (StatusCode and Body are set) or a transport failure (Err is set).
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("webhook delivery: %v", e.Err)
	}
	return fmt.Sprintf("webhook delivery: status %d: %s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Request describes a single outbound notification. Text is the only
// required field; every other field overrides a computed default.
// Color is a pointer so an explicit 0 (black) is distinguishable from unset.
type Request struct {
	URL      string `json:"url,omitempty"`
	Text     string `json:"text"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
	Color    *int   `json:"color,omitempty"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Footer   string `json:"footer,omitempty"`
}

// SecretLookup resolves a named secret. ok is false when the secret is not
// present at all, which callers may want to report differently from a secret
// that is present but empty.
type SecretLookup func(name string) (value string, ok bool)

// Sender is the port interface for delivering one notification.
type Sender interface {
	// Name returns the unique identifier for this sender (e.g. "discord").
	Name() string

	// Send delivers the notification and returns the upstream HTTP status
	// code on success. build supplies read-only CI context for defaults.
	Send(ctx context.Context, req Request, build buildctx.Context) (int, error)
}
