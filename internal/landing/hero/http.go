// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package hero

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
)

// # Handler Implementation

// Handler implements the HTTP layer for hero-section operations.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new hero [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the hero router. The read is public; the edit and upload
// endpoints sit behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{tenantID}", handler.getHero)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Put("/", handler.editHero)
		protected.Post("/uploads", handler.issueUpload)
	})

	return router
}

/*
PUT /api/v1/landing/hero.

Description: Upserts the hero section for the session's tenant.

Response:
  - 200: Hero: The saved row
  - 400: Validation failure
  - 401: Missing or invalid session
*/
func (handler *Handler) editHero(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/landing/hero/{tenantID}.

Description: Public read of a tenant's hero section.

Response:
  - 200: Hero
  - 404: The tenant has no hero yet
*/
func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
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

// uploadResponse carries a single presigned URL.
type uploadResponse struct {
	URL string `json:"url"`
}

/*
POST /api/v1/landing/hero/uploads.

Description: Issues one presigned PUT URL for the hero banner.

Response:
  - 200: uploadResponse
*/
func (handler *Handler) issueUpload(writer http.ResponseWriter, request *http.Request) {
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

	uploadURL, err := handler.service.IssueUploadURL(request.Context(), actingTenant.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, uploadResponse{URL: uploadURL})
}
