// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
)

// # Handler Implementation

// Handler implements the HTTP layer for social links.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new social [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the social-links router. The read is public; the edit
// endpoint sits behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{tenantID}", handler.getLinks)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Put("/", handler.editLinks)
	})

	return router
}

/*
PUT /api/v1/social.

Description: Upserts the social links for the session's tenant.

Response:
  - 200: Links: The saved row
  - 400: Validation failure (malformed URL)
*/
func (handler *Handler) editLinks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actingTenant, err := handler.tenants.Resolve(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input EditInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Edit(request.Context(), actingTenant.ID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
GET /api/v1/social/{tenantID}.

Description: Public read of a tenant's social links.

Response:
  - 200: Links
  - 404: The tenant has no links yet
*/
func (handler *Handler) getLinks(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := requestutil.IntParam(request, "tenantID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), tenantID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}
