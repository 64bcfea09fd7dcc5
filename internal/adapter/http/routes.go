package http

import "github.com/go-chi/chi/v5"

// MountRoutes attaches the versioned API routes to the router.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/notifications", h.CreateNotification)
	})
}
