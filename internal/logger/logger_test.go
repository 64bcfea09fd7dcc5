package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/buildhook/buildhook/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	l := New(config.Logging{Level: "debug", Service: "buildhook"})
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level enabled")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Fatalf("expected empty request ID, got %q", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("expected 'req-123', got %q", got)
	}
}
