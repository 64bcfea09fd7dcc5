package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	bhhttp "github.com/buildhook/buildhook/internal/adapter/http"
	telemetry "github.com/buildhook/buildhook/internal/adapter/otel"
	"github.com/buildhook/buildhook/internal/config"
	"github.com/buildhook/buildhook/internal/logger"
	"github.com/buildhook/buildhook/internal/middleware"
	"github.com/buildhook/buildhook/internal/service"
)

// runServe starts the HTTP relay: each POST /v1/notifications is one
// independent webhook delivery.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigFile, "path to YAML config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.SetDefault(logger.New(cfg.Logging))

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"secret_name", cfg.Discord.SecretName,
	)

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Logging.Service, cfg.Telemetry.Endpoint)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				slog.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	sender, vault, err := buildSender(cfg)
	if err != nil {
		return err
	}
	slog.Info("webhook secret loaded",
		"name", cfg.Discord.SecretName,
		"value", vault.Redacted(cfg.Discord.SecretName),
	)

	handlers := &bhhttp.Handlers{
		Notifications: service.NewNotificationService(sender, metrics),
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(bhhttp.Logger)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if cfg.Telemetry.Enabled {
		r.Use(telemetry.HTTPMiddleware(cfg.Logging.Service))
	}

	r.Get("/health", healthHandler(cfg))

	bhhttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// healthHandler returns an http.HandlerFunc that reports service health.
func healthHandler(cfg *config.Config) http.HandlerFunc {
	type healthStatus struct {
		Status     string `json:"status"`
		Provider   string `json:"provider"`
		SecretName string `json:"secret_name"`
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		status := healthStatus{
			Status:     "ok",
			Provider:   "discord",
			SecretName: cfg.Discord.SecretName,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	}
}
