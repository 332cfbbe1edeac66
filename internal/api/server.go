// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	landingconfig "github.com/nvarela/casavia/internal/landing/config"
	"github.com/nvarela/casavia/internal/landing/feedback"
	"github.com/nvarela/casavia/internal/landing/hero"
	"github.com/nvarela/casavia/internal/platform/config"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/middleware"
	"github.com/nvarela/casavia/internal/property"
	"github.com/nvarela/casavia/internal/social"
	"github.com/nvarela/casavia/internal/stats"
	"github.com/nvarela/casavia/internal/tenant"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Tenant serves the authenticated agency profile.
	Tenant *tenant.Handler

	// Property handles the listing aggregate and its uploads.
	Property *property.Handler

	// Hero handles the landing hero section.
	Hero *hero.Handler

	// LandingConfig handles the landing branding row.
	LandingConfig *landingconfig.Handler

	// Feedback handles customer testimonials.
	Feedback *feedback.Handler

	// Social handles the social profile links.
	Social *social.Handler

	// Stats handles visit ingestion and the dashboards.
	Stats *stats.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Public reads stay outside the session gate; each module router wraps its
// own mutating routes in [middleware.RequireSession].
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, gate middleware.SessionGate, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(gate))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix. Each
	// module router gates its own mutating routes behind RequireSession.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/tenant", h.Tenant.Routes())
		api.Mount("/properties", h.Property.Routes())
		api.Mount("/landing/hero", h.Hero.Routes())
		api.Mount("/landing/config", h.LandingConfig.Routes())
		api.Mount("/landing/feedback", h.Feedback.Routes())
		api.Mount("/social", h.Social.Routes())
		api.Mount("/stats", h.Stats.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
