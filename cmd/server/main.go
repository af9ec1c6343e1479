package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	appservices "tryon-api/internal/application/services"
	"tryon-api/internal/application/usecases"
	"tryon-api/internal/config"
	domainrepos "tryon-api/internal/domain/repositories"
	domainservices "tryon-api/internal/domain/services"
	"tryon-api/internal/infrastructure/api"
	"tryon-api/internal/infrastructure/external"
	infraservices "tryon-api/internal/infrastructure/services"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.GenAI.Backend == config.BackendGemini && cfg.GenAI.APIKey == "" {
		// /health は動かすが /api/generate は 500 を返す
		logger.Warn("GEMINI_API_KEY is not set; /api/generate will fail")
	}

	// Initialize infrastructure layer
	clientPool := infraservices.NewGenAIClientPool(&domainrepos.AIClientConfig{
		Backend:   cfg.GenAI.Backend,
		APIKey:    cfg.GenAI.APIKey,
		ProjectID: cfg.GenAI.Project,
		Location:  cfg.GenAI.Location,
	})
	defer clientPool.Close()

	tryOnAIService := external.NewGeminiTryOnService(clientPool, cfg.GenAI.Model)
	mailer := external.NewLogMailer(logger)

	// Initialize domain layer
	tryOnDomainService := domainservices.NewTryOnDomainService(tryOnAIService)

	// Initialize application layer
	tryOnUseCase := usecases.NewTryOnUseCase(tryOnDomainService)
	notificationUseCase := usecases.NewNotificationUseCase(mailer)
	parameterService := appservices.NewParameterService()

	// Initialize API layer
	tryOnHandler := api.NewTryOnHandler(tryOnUseCase, parameterService, cfg.Server.MaxBodySize)
	notificationHandler := api.NewNotificationHandler(notificationUseCase, parameterService, cfg.Server.MaxBodySize)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.NewRouter(tryOnHandler, notificationHandler, logger),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			"port", cfg.Server.Port,
			"backend", cfg.GenAI.Backend,
			"model", cfg.GenAI.Model)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}

	case <-shutdown:
		logger.Info("Starting graceful shutdown...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
			return
		}

		logger.Info("Server stopped cleanly")
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
