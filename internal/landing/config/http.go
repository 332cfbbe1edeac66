// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package config

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
)

// # Handler Implementation

// Handler implements the HTTP layer for landing branding.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new config [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the branding router. The read is public; the edit and
// upload endpoints sit behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{tenantID}", handler.getConfig)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Put("/", handler.editConfig)
		protected.Post("/uploads", handler.issueUpload)
	})

	return router
}

/*
PUT /api/v1/landing/config.

Description: Upserts the branding row for the session's tenant.

Response:
  - 200: Config: The saved row
  - 400: Validation failure (malformed hex color)
*/
func (handler *Handler) editConfig(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/landing/config/{tenantID}.

Description: Public read of a tenant's branding.

Response:
  - 200: Config
  - 404: The tenant has no branding yet
*/
func (handler *Handler) getConfig(writer http.ResponseWriter, request *http.Request) {
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
POST /api/v1/landing/config/uploads.

Description: Issues one presigned PUT URL for the site logo.

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
