// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

// Command api is the entry point for the Casavia HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize the object storage client.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/nvarela/casavia/internal/api"
	landingconfig "github.com/nvarela/casavia/internal/landing/config"
	"github.com/nvarela/casavia/internal/landing/feedback"
	"github.com/nvarela/casavia/internal/landing/hero"
	"github.com/nvarela/casavia/internal/platform/bucket"
	"github.com/nvarela/casavia/internal/platform/config"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/migration"
	pgstore "github.com/nvarela/casavia/internal/platform/postgres"
	redisstore "github.com/nvarela/casavia/internal/platform/redis"
	"github.com/nvarela/casavia/internal/property"
	"github.com/nvarela/casavia/internal/session"
	"github.com/nvarela/casavia/internal/social"
	"github.com/nvarela/casavia/internal/stats"
	"github.com/nvarela/casavia/internal/tenant"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "casavia"))
	slog.SetDefault(log)

	log.Info("[Casavia] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "casavia"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object Storage ─────────────────────────────────────────────────
	store, err := bucket.NewClient(startupCtx, bucket.Options{
		Bucket:   cfg.S3Bucket,
		Region:   cfg.S3Region,
		Endpoint: cfg.S3Endpoint,
	}, log)
	must(log, err, "initialize object storage")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	sessions := session.NewService(session.NewPostgresRepository(pool))

	tenants := tenant.NewService(tenant.NewPostgresRepository(pool), log)
	tenantHandler := tenant.NewHandler(tenants)

	properties := property.NewService(property.NewPostgresRepository(pool), store, log)
	propertyHandler := property.NewHandler(properties, tenants)

	heroes := hero.NewService(hero.NewPostgresRepository(pool), store, log)
	heroHandler := hero.NewHandler(heroes, tenants)

	landingConfigs := landingconfig.NewService(landingconfig.NewPostgresRepository(pool), store, log)
	landingConfigHandler := landingconfig.NewHandler(landingConfigs, tenants)

	feedbacks := feedback.NewService(feedback.NewPostgresRepository(pool), store, log)
	feedbackHandler := feedback.NewHandler(feedbacks, tenants)

	socials := social.NewService(social.NewPostgresRepository(pool), log)
	socialHandler := social.NewHandler(socials, tenants)

	traffic := stats.NewService(stats.NewPostgresRepository(pool), stats.NewRedisDeduper(rdb), log)
	statsHandler := stats.NewHandler(traffic, tenants)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Tenant:        tenantHandler,
		Property:      propertyHandler,
		Hero:          heroHandler,
		LandingConfig: landingConfigHandler,
		Feedback:      feedbackHandler,
		Social:        socialHandler,
		Stats:         statsHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, sessions, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
