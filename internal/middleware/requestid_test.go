package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildhook/buildhook/internal/logger"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var ctxID string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = logger.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ctxID == "" {
		t.Fatal("expected generated request ID in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != ctxID {
		t.Fatalf("response header %q does not match context ID %q", got, ctxID)
	}
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var ctxID string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = logger.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if ctxID != "upstream-id" {
		t.Fatalf("expected 'upstream-id', got %q", ctxID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Fatalf("expected echoed header, got %q", got)
	}
}
