// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/nvarela/casavia/internal/platform/bucket"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/validate"
	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

// # Service Layer

// Service orchestrates testimonial lifecycle and media cleanup.
type Service struct {
	repo    Repository
	storage Bucket
	logger  *slog.Logger
}

// NewService constructs a new feedback [Service].
func NewService(repo Repository, storage Bucket, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// EditInput carries the testimonial payload for create and update.
type EditInput struct {
	PropertyImage  *string `json:"property_image"`
	CustomerImage  *string `json:"customer_image"`
	CustomerName   string  `json:"customer_name"`
	CustomerReview string  `json:"customer_review"`
	Description    *string `json:"description"`
}

/*
Create validates and persists a testimonial for the tenant.

Parameters:
  - context: context.Context
  - tenantID: int
  - input: EditInput

Returns:
  - *Feedback: The created row
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, tenantID int, input EditInput) (*Feedback, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}

	record := &Feedback{
		TenantID:       tenantID,
		PropertyImage:  input.PropertyImage,
		CustomerImage:  input.CustomerImage,
		CustomerName:   input.CustomerName,
		CustomerReview: input.CustomerReview,
		Description:    input.Description,
	}

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("feedback_created",
		slog.Int("feedback_id", record.ID),
		slog.Int("tenant_id", tenantID),
	)

	return record, nil
}

/*
Update rewrites a testimonial scoped to its owning tenant.

Parameters:
  - context: context.Context
  - tenantID: int
  - id: int
  - input: EditInput

Returns:
  - *Feedback: The updated row
  - error: NOT_FOUND for foreign or missing rows
*/
func (service *Service) Update(context context.Context, tenantID int, id int, input EditInput) (*Feedback, error) {
	if err := validateTestimonial(input); err != nil {
		return nil, err
	}

	record := &Feedback{
		ID:             id,
		TenantID:       tenantID,
		PropertyImage:  input.PropertyImage,
		CustomerImage:  input.CustomerImage,
		CustomerName:   input.CustomerName,
		CustomerReview: input.CustomerReview,
		Description:    input.Description,
	}

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	return record, nil
}

/*
Delete removes a testimonial and best-effort cleans its two bucket objects.

The row is deleted first; a cleanup failure is logged and never surfaces.

Parameters:
  - context: context.Context
  - tenantID: int
  - id: int

Returns:
  - *Feedback: Snapshot of the row as it was before deletion
  - error: NOT_FOUND for foreign or missing rows
*/
func (service *Service) Delete(context context.Context, tenantID int, id int) (*Feedback, error) {
	conditions := filter.New().
		Add(schema.Feedback.ID, filter.Eq(filter.Int(id))).
		Add(schema.Feedback.TenantID, filter.Eq(filter.Int(tenantID)))

	snapshot, err := service.repo.Find(context, conditions)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Delete(context, id, tenantID); err != nil {
		return nil, err
	}

	var keys []string
	for _, imageURL := range []*string{snapshot.PropertyImage, snapshot.CustomerImage} {
		if imageURL == nil {
			continue
		}
		if key := objectKeyFromURL(*imageURL); key != "" {
			keys = append(keys, key)
		}
	}

	if len(keys) > 0 {
		if _, err := service.storage.DeleteObjects(context, keys); err != nil {
			service.logger.Error("feedback_image_cleanup_failed",
				slog.Int("feedback_id", id),
				slog.Int("tenant_id", tenantID),
				slog.Any("error", err),
			)
		}
	}

	return snapshot, nil
}

/*
ListByTenant returns a page of a tenant's testimonials, publicly readable.

Parameters:
  - context: context.Context
  - tenantID: int
  - params: pagination.Params

Returns:
  - pagination.Record[Feedback]: The page
  - error: Retrieval failures
*/
func (service *Service) ListByTenant(context context.Context, tenantID int, params pagination.Params) (pagination.Record[Feedback], error) {
	conditions := filter.New().Add(schema.Feedback.TenantID, filter.Eq(filter.Int(tenantID)))
	return service.repo.FindMany(context, conditions, params)
}

// UploadURLs pairs the two presigned URLs a testimonial needs.
type UploadURLs struct {
	PropertyImageURL string `json:"property_image_url"`
	CustomerImageURL string `json:"customer_image_url"`
}

/*
IssueUploadURLs presigns the property-photo and customer-photo uploads.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - UploadURLs: Both presigned PUT URLs
  - error: Presign failures
*/
func (service *Service) IssueUploadURLs(context context.Context, tenantID int) (UploadURLs, error) {
	var urls UploadURLs

	propertyURL, err := service.storage.IssueUploadURL(context, bucket.NewKey(tenantID, constants.KeyCategoryFeedback))
	if err != nil {
		return urls, err
	}

	customerURL, err := service.storage.IssueUploadURL(context, bucket.NewKey(tenantID, constants.KeyCategoryFeedback))
	if err != nil {
		return urls, err
	}

	urls.PropertyImageURL = propertyURL
	urls.CustomerImageURL = customerURL
	return urls, nil
}

// # Helpers

// validateTestimonial applies the field rules shared by create and update.
func validateTestimonial(input EditInput) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldCustomerName, input.CustomerName).
		MaxLen(FieldCustomerName, input.CustomerName, 120).
		Required(FieldCustomerReview, input.CustomerReview).
		MaxLen(FieldCustomerReview, input.CustomerReview, 2000)

	return validator.Err()
}

// objectKeyFromURL recovers the bucket key from a stored public object URL.
func objectKeyFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Path, "/")
}
