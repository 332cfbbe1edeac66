// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package property HTTP layer.

# Routing Strategy

  - Public: Listing detail and per-tenant catalog (GET).
  - Authenticated: Create, update, delete, and presigned uploads.

The handler resolves the acting tenant from the session before any mutation
and never trusts tenant ids arriving in payloads.
*/
package property

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/middleware"
	requestutil "github.com/nvarela/casavia/internal/platform/request"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/tenant"
	"github.com/nvarela/casavia/pkg/convert"
	"github.com/nvarela/casavia/pkg/pagination"
	"github.com/nvarela/casavia/pkg/pointer"
	"github.com/nvarela/casavia/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for listing operations.
type Handler struct {
	service *Service
	tenants *tenant.Service
}

// NewHandler constructs a new listing [Handler].
func NewHandler(service *Service, tenants *tenant.Service) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// Routes returns the listing router. Reads are public; every mutation and
// the upload endpoint sit behind the session gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getProperty)
	router.Get("/tenant/{tenantID}", handler.listByTenant)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Post("/", handler.createProperty)
		protected.Patch("/{id}", handler.updateProperty)
		protected.Delete("/{id}", handler.deleteProperty)
		protected.Post("/uploads", handler.issueUploads)
	})

	return router
}

// # Listing Endpoints

/*
POST /api/v1/properties.

Description: Creates a listing (with images) for the session's tenant.

Request (Body):
  - CreateInput JSON object; images_urls become the image set in order,
    first URL primary.

Response:
  - 201: WithImages: Created aggregate
  - 400: Invalid JSON or validation failure
  - 401: Missing or invalid session
*/
func (handler *Handler) createProperty(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), actingTenant.ID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/properties/{id}.

Description: Full-payload update of a listing; when images_urls is present
the image set is replaced atomically.

Response:
  - 200: WithImages: Updated aggregate
  - 404: Listing missing or owned by another tenant
*/
func (handler *Handler) updateProperty(writer http.ResponseWriter, request *http.Request) {
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

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), actingTenant.ID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/properties/{id}.

Description: Deletes a listing and best-effort cleans its bucket objects.
Returns the pre-delete snapshot so clients can render an undo-style summary.

Response:
  - 200: WithImages: The listing as it was before deletion
  - 404: Listing missing or owned by another tenant
*/
func (handler *Handler) deleteProperty(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/properties/{id}.

Description: Public detail view of a single listing with its images.

Response:
  - 200: WithImages
  - 404: Listing not found
*/
func (handler *Handler) getProperty(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
GET /api/v1/properties/tenant/{tenantID}.

Description: Public, paginated catalog of one tenant's listings.

Request:
  - page, per_page: int (required)
  - status: string (comma-separated statuses)
  - type: string (single property type)
  - city: string (substring match)
  - min_price, max_price: float
  - bedrooms: int (minimum)

Response:
  - 200: pagination.Record[WithImages]
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

	queryParams := request.URL.Query()
	listFilter := ListFilter{
		Statuses:     query.StringSlice(queryParams.Get("status")),
		PropertyType: queryParams.Get("type"),
		City:         queryParams.Get("city"),
	}

	if raw := queryParams.Get("min_price"); raw != "" {
		listFilter.MinPrice = pointer.To(convert.ToFloat64(raw))
	}

	if raw := queryParams.Get("max_price"); raw != "" {
		listFilter.MaxPrice = pointer.To(convert.ToFloat64(raw))
	}

	if raw := queryParams.Get("bedrooms"); raw != "" {
		listFilter.Bedrooms = pointer.To(convert.ToInt(raw))
	}

	page, err := handler.service.ListByTenant(request.Context(), tenantID, listFilter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

// # Upload Endpoints

// uploadRequest is the body of a presign batch request.
type uploadRequest struct {
	Count int `json:"count"`
}

// uploadResponse carries the presigned URLs, index-aligned with the batch.
type uploadResponse struct {
	URLs []string `json:"urls"`
}

/*
POST /api/v1/properties/uploads.

Description: Issues presigned PUT URLs for direct browser uploads into the
tenant's image folder.

Request (Body):
  - count: int (number of URLs, 1..n; fan-out is bounded server-side)

Response:
  - 200: uploadResponse
  - 400: Non-positive count
*/
func (handler *Handler) issueUploads(writer http.ResponseWriter, request *http.Request) {
	actingTenant, err := handler.resolveTenant(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input uploadRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	urls, err := handler.service.IssueUploadURLs(request.Context(), actingTenant.ID, input.Count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, uploadResponse{URLs: urls})
}

// resolveTenant maps the session user to its tenant.
func (handler *Handler) resolveTenant(request *http.Request) (*tenant.Tenant, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return nil, err
	}
	return handler.tenants.Resolve(request.Context(), userID)
}
