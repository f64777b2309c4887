// Package main is the entry point for the Travel Planner API server.
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

	"github.com/hmnguyen/travel-planner/backend/internal/clock"
	"github.com/hmnguyen/travel-planner/backend/internal/config"
	"github.com/hmnguyen/travel-planner/backend/internal/handler"
	"github.com/hmnguyen/travel-planner/backend/internal/middleware"
	"github.com/hmnguyen/travel-planner/backend/internal/planner"
	"github.com/hmnguyen/travel-planner/backend/internal/repo"
	"github.com/hmnguyen/travel-planner/backend/internal/service"
	"github.com/hmnguyen/travel-planner/backend/spec"
)

// maxRequestBodyBytes bounds incoming request bodies. The largest legitimate
// payload is a destination with a description, well under this.
const maxRequestBodyBytes = 1 << 20 // 1 MiB

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// A single SQLite file holds the whole planner state as JSON documents
	// in a key-value table. Migrations run on open.
	kv, err := repo.OpenSQLiteKV(cfg.DataPath)
	if err != nil {
		slog.Error("failed to open data store", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	slog.Info("data store ready", "path", cfg.DataPath)

	trips := repo.NewTripRepo(kv, logger)
	destinations := repo.NewDestinationRepo(kv)

	// Seed the catalog on first start so a fresh install has something to browse.
	if err := destinations.SeedIfEmpty(context.Background(), repo.SeedCatalog()); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	clk := clock.NewSystem()
	tripService := service.NewTripService(trips, destinations, clk, planner.NewPairHashEstimator())
	destinationService := service.NewDestinationService(destinations, clk)
	statsService := service.NewStatsService(trips, destinations, clk)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBodyBytes))

	// Serve the embedded OpenAPI document alongside the API itself.
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI)
	})

	server := handler.NewServer(tripService, destinationService, statsService)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
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
