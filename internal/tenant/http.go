// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package tenant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for tenant operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tenant [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with tenant endpoints.
//
// Every route requires an authenticated session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireSession)

	router.Get("/me", handler.getMe)

	return router
}

/*
GET /api/v1/tenant/me.

Description: Returns the tenant profile for the authenticated session.

Response:
  - 200: Tenant: The caller's tenant
  - 401: Missing or invalid session
  - 404: The user has no tenant record
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Resolve(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}
