package http

import (
	"errors"
	"net/http"

	"github.com/buildhook/buildhook/internal/buildctx"
	"github.com/buildhook/buildhook/internal/port/notifier"
	"github.com/buildhook/buildhook/internal/service"
)

const maxBodyBytes = 64 << 10

// Handlers bundles the services the HTTP surface dispatches to.
type Handlers struct {
	Notifications *service.NotificationService
}

// createNotificationRequest is the relay request body: the notification
// fields plus an optional build context. When build is absent the relay has
// no CI context and the sender falls back to its literal defaults.
type createNotificationRequest struct {
	notifier.Request
	Build *buildctx.Context `json:"build,omitempty"`
}

// CreateNotification accepts one notification request and performs a single
// synchronous delivery. Configuration errors map to 400, upstream delivery
// failures to 502.
func (h *Handlers) CreateNotification(w http.ResponseWriter, r *http.Request) {
	body, ok := readJSON[createNotificationRequest](w, r, maxBodyBytes)
	if !ok {
		return
	}

	build := buildctx.Context{}
	if body.Build != nil {
		build = *body.Build
	}

	d, err := h.Notifications.Deliver(r.Context(), body.Request, build)
	if err != nil {
		var dErr *notifier.DeliveryError
		switch {
		case errors.Is(err, notifier.ErrConfiguration):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &dErr):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, d)
}
