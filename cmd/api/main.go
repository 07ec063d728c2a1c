// Package main is the entry point for the tour guide gateway.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/tourguide-gateway/internal/apiclient"
	"github.com/pkordes/tourguide-gateway/internal/config"
	"github.com/pkordes/tourguide-gateway/internal/handler"
	"github.com/pkordes/tourguide-gateway/internal/middleware"
	"github.com/pkordes/tourguide-gateway/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Backend ----------------------------------------------------------
	client := apiclient.New(cfg.BackendBaseURL,
		apiclient.WithTimeout(cfg.BackendTimeout),
		apiclient.WithRateLimit(cfg.BackendRPS, cfg.BackendBurst),
		apiclient.WithLogger(logger),
	)
	slog.Info("backend configured", "base_url", cfg.BackendBaseURL, "timeout", cfg.BackendTimeout.String())

	// --- Services ---------------------------------------------------------
	strategy, err := service.ParseStrategy(cfg.ResolverStrategy)
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	sessions := service.NewSessionStore(service.WithIdleTimeout(cfg.SessionIdleTimeout))
	resolver := service.NewResolver(client, service.ResolverOptions{
		Strategy:    strategy,
		Concurrency: cfg.ResolverConcurrency,
		Logger:      logger,
	})
	authSvc := service.NewAuthService(client, sessions)
	catalogSvc := service.NewCatalogService(client)
	bookingSvc := service.NewBookingService(resolver, client)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS → body cap → deadline.
	// CORS runs before the body cap so preflights never hit the size check.
	// The deadline cancels r.Context(), which aborts the resolver scan and any
	// booking submission that has not started yet.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	srvHandler := handler.NewServer(authSvc, catalogSvc, bookingSvc, sessions, logger)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout outlives the request deadline so the 504 still reaches the client.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
