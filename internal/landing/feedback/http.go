// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
	"github.com/nvarela/casavia/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for testimonials.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new feedback [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the testimonial router. The listing read is public; every
// mutation and the upload endpoint sit behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/tenant/{tenantID}", handler.listByTenant)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Post("/", handler.createFeedback)
		protected.Patch("/{id}", handler.updateFeedback)
		protected.Delete("/{id}", handler.deleteFeedback)
		protected.Post("/uploads", handler.issueUploads)
	})

	return router
}

/*
POST /api/v1/landing/feedback.

Description: Creates a testimonial for the session's tenant.

Response:
  - 201: Feedback: Created row
  - 400: Validation failure
*/
func (handler *Handler) createFeedback(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input EditInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), actingTenant.ID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
PATCH /api/v1/landing/feedback/{id}.

Description: Rewrites a testimonial owned by the session's tenant.

Response:
  - 200: Feedback: Updated row
  - 404: Row missing or owned by another tenant
*/
func (handler *Handler) updateFeedback(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input EditInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), actingTenant.ID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
DELETE /api/v1/landing/feedback/{id}.

Description: Deletes a testimonial and best-effort removes its two photos
from the bucket. Returns the pre-delete snapshot.

Response:
  - 200: Feedback: The row as it was before deletion
  - 404: Row missing or owned by another tenant
*/
func (handler *Handler) deleteFeedback(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	snapshot, err := handler.service.Delete(request.Context(), actingTenant.ID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, snapshot)
}

/*
GET /api/v1/landing/feedback/tenant/{tenantID}.

Description: Public, paginated testimonials of one tenant.

Request:
  - page, per_page: int (required)

Response:
  - 200: pagination.Record[Feedback]
  - 400: Missing or invalid pagination parameters
*/
func (handler *Handler) listByTenant(writer http.ResponseWriter, request *http.Request) {
	tenantID, err := requestutil.IntParam(request, "tenantID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListByTenant(request.Context(), tenantID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

/*
POST /api/v1/landing/feedback/uploads.

Description: Issues the two presigned PUT URLs a testimonial needs.

Response:
  - 200: UploadURLs
*/
func (handler *Handler) issueUploads(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	urls, err := handler.service.IssueUploadURLs(request.Context(), actingTenant.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, urls)
}

// resolveTenant maps the session user to its tenant.
func (handler *Handler) resolveTenant(request *http.Request) (*tenant.Tenant, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return nil, err
	}
	return handler.tenants.Resolve(request.Context(), userID)
}
