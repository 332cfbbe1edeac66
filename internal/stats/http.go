// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
)

// # Handler Implementation

// Handler implements the HTTP layer for traffic statistics.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new stats [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the stats router. Ingestion is public (visitors are
// anonymous); the dashboards sit behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/events", handler.recordEvent)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Get("/properties", handler.propertyDashboard)
		protected.Get("/landing", handler.landingDashboard)
	})

	return router
}

/*
POST /api/v1/stats/events.

Description: Records a visit event from the public site. Repeats from the
same client inside the de-dup window are silently dropped; the endpoint
always answers 204 on valid input.

Request (Body):
  - EventInput JSON object

Response:
  - 204: Accepted (stored or de-duplicated)
  - 400: Unknown event type or missing fields
*/
func (handler *Handler) recordEvent(writer http.ResponseWriter, request *http.Request) {
	var input EventInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clientIP := middleware.RealIP(request)

	if err := handler.service.RecordEvent(request.Context(), input, clientIP, request.UserAgent()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/v1/stats/properties.

Description: Per-listing traffic dashboard for the session's tenant.

Response:
  - 200: PropertyDashboard
*/
func (handler *Handler) propertyDashboard(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dashboard, err := handler.service.PropertyDashboard(request.Context(), actingTenant.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}

/*
GET /api/v1/stats/landing.

Description: Landing-page traffic dashboard for the session's tenant.

Response:
  - 200: LandingDashboard
*/
func (handler *Handler) landingDashboard(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dashboard, err := handler.service.LandingDashboard(request.Context(), actingTenant.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}

// resolveTenant maps the session user to its tenant.
func (handler *Handler) resolveTenant(request *http.Request) (*tenant.Tenant, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return nil, err
	}
	return handler.tenants.Resolve(request.Context(), userID)
}
