// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package property

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/bucket"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/validate"
	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
	"github.com/nvarela/casavia/pkg/slice"
	"github.com/nvarela/casavia/pkg/slug"
)

// # Service Layer

// Service orchestrates business rules for property listings.
type Service struct {
	repo    Repository
	storage Bucket
	logger  *slog.Logger
}

// NewService constructs a new listing [Service].
func NewService(repo Repository, storage Bucket, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// # Inputs

// CreateInput carries the payload for a new listing.
type CreateInput struct {
	Title         string   `json:"title"`
	Description   *string  `json:"description"`
	PropertyType  Type     `json:"property_type"`
	Status        Status   `json:"status"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	ParkingSpaces *int     `json:"parking_spaces"`
	TotalArea     *float64 `json:"total_area"`
	BuiltArea     *float64 `json:"built_area"`
	YearBuilt     *int     `json:"year_built"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Country       *string  `json:"country"`
	GoogleMapsURL *string  `json:"google_maps_url"`
	ImagesURLs    []string `json:"images_urls"`
}

// # Listing Lifecycle

/*
Create validates and persists a new listing for the tenant.

The first image URL is marked primary. The aggregate (listing + image rows)
is written atomically by the store.

Parameters:
  - context: context.Context
  - tenantID: int (resolved from the session, never from the payload)
  - input: CreateInput

Returns:
  - *WithImages: The created aggregate
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, tenantID int, input CreateInput) (*WithImages, error) {
	if err := validateListing(input); err != nil {
		return nil, err
	}

	record := &Property{
		TenantID:      tenantID,
		Title:         input.Title,
		Slug:          slug.From(input.Title),
		Description:   input.Description,
		PropertyType:  input.PropertyType,
		Status:        input.Status,
		Price:         input.Price,
		Currency:      input.Currency,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		ParkingSpaces: input.ParkingSpaces,
		TotalArea:     input.TotalArea,
		BuiltArea:     input.BuiltArea,
		YearBuilt:     input.YearBuilt,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		GoogleMapsURL: input.GoogleMapsURL,
	}

	images := imagesFromURLs(input.ImagesURLs)

	if err := service.repo.Create(context, record, images); err != nil {
		return nil, err
	}

	service.logger.Info("property_created",
		slog.Int("property_id", record.ID),
		slog.Int("tenant_id", tenantID),
		slog.Int("image_count", len(images)),
	)

	return service.Get(context, record.ID)
}

/*
Update rewrites an existing listing and, when image URLs are present in the
payload, replaces its full image set.

Parameters:
  - context: context.Context
  - tenantID: int
  - id: int
  - input: CreateInput (full-payload update; same shape as create)

Returns:
  - *WithImages: The updated aggregate
  - error: NOT_FOUND for foreign or missing listings
*/
func (service *Service) Update(context context.Context, tenantID int, id int, input CreateInput) (*WithImages, error) {
	if err := validateListing(input); err != nil {
		return nil, err
	}

	record := &Property{
		ID:            id,
		TenantID:      tenantID,
		Title:         input.Title,
		Slug:          slug.From(input.Title),
		Description:   input.Description,
		PropertyType:  input.PropertyType,
		Status:        input.Status,
		Price:         input.Price,
		Currency:      input.Currency,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		ParkingSpaces: input.ParkingSpaces,
		TotalArea:     input.TotalArea,
		BuiltArea:     input.BuiltArea,
		YearBuilt:     input.YearBuilt,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		GoogleMapsURL: input.GoogleMapsURL,
	}

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	if input.ImagesURLs != nil {
		if err := service.repo.ReplaceImages(context, id, imagesFromURLs(input.ImagesURLs)); err != nil {
			return nil, err
		}
	}

	service.logger.Info("property_updated",
		slog.Int("property_id", id),
		slog.Int("tenant_id", tenantID),
	)

	return service.Get(context, id)
}

/*
Delete removes a listing and best-effort cleans its bucket objects.

The database row is the source of truth: it is deleted first, and only then
are the image objects removed from storage. A cleanup failure is logged and
never surfaces — the listing is already gone.

Parameters:
  - context: context.Context
  - tenantID: int
  - id: int

Returns:
  - *WithImages: Snapshot of the listing as it was before deletion
  - error: NOT_FOUND for foreign or missing listings
*/
func (service *Service) Delete(context context.Context, tenantID int, id int) (*WithImages, error) {
	conditions := filter.New().
		Add(schema.Property.ID, filter.Eq(filter.Int(id))).
		Add(schema.Property.TenantID, filter.Eq(filter.Int(tenantID)))

	snapshot, err := service.repo.Find(context, conditions)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Delete(context, id, tenantID); err != nil {
		return nil, err
	}

	keys := slice.Map(snapshot.Images, func(image Image) string {
		return objectKeyFromURL(image.URL)
	})
	keys = slice.Filter(keys, func(key string) bool { return key != "" })

	if _, err := service.storage.DeleteObjects(context, keys); err != nil {
		service.logger.Error("property_image_cleanup_failed",
			slog.Int("property_id", id),
			slog.Int("tenant_id", tenantID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("property_deleted",
		slog.Int("property_id", id),
		slog.Int("tenant_id", tenantID),
	)

	return snapshot, nil
}

// # Listing Retrieval

/*
Get retrieves a single listing by id. Public: no tenant scoping.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *WithImages: Hydrated aggregate
  - error: NOT_FOUND if missing
*/
func (service *Service) Get(context context.Context, id int) (*WithImages, error) {
	conditions := filter.New().Add(schema.Property.ID, filter.Eq(filter.Int(id)))
	return service.repo.Find(context, conditions)
}

/*
ListByTenant returns a page of a tenant's listings, publicly readable.

Parameters:
  - context: context.Context
  - tenantID: int (from the URL, this is a public catalog endpoint)
  - listFilter: ListFilter (optional narrowing)
  - params: pagination.Params

Returns:
  - pagination.Record[WithImages]: The page
  - error: Retrieval failures
*/
func (service *Service) ListByTenant(context context.Context, tenantID int, listFilter ListFilter, params pagination.Params) (pagination.Record[WithImages], error) {
	conditions := filter.New().Add(schema.Property.TenantID, filter.Eq(filter.Int(tenantID)))

	if len(listFilter.Statuses) > 0 {
		values := slice.Map(listFilter.Statuses, func(status string) filter.Value {
			return filter.String(status)
		})
		conditions.Add(schema.Property.Status, filter.In(values...))
	}

	if listFilter.PropertyType != "" {
		conditions.Add(schema.Property.PropertyType, filter.Eq(filter.String(listFilter.PropertyType)))
	}

	if listFilter.City != "" {
		conditions.Add(schema.Property.City, filter.Like("%"+listFilter.City+"%"))
	}

	switch {
	case listFilter.MinPrice != nil && listFilter.MaxPrice != nil:
		conditions.Add(schema.Property.Price, filter.Between(
			filter.Float(*listFilter.MinPrice), filter.Float(*listFilter.MaxPrice),
		))
	case listFilter.MinPrice != nil:
		conditions.Add(schema.Property.Price, filter.Gte(filter.Float(*listFilter.MinPrice)))
	case listFilter.MaxPrice != nil:
		conditions.Add(schema.Property.Price, filter.Lte(filter.Float(*listFilter.MaxPrice)))
	}

	if listFilter.Bedrooms != nil {
		conditions.Add(schema.Property.Bedrooms, filter.Gte(filter.Int(*listFilter.Bedrooms)))
	}

	return service.repo.FindMany(context, conditions, params)
}

// # Media Uploads

/*
IssueUploadURLs presigns count upload URLs for the tenant's image folder.

Description: URLs are generated concurrently with a fan-out bound of
[constants.UploadFanOutLimit]; the result is all count URLs in order or the
first error. URLs that were already presigned when an error occurs are not
retracted — presigning is side-effect free on the bucket.

Parameters:
  - context: context.Context
  - tenantID: int
  - count: int

Returns:
  - []string: Presigned PUT URLs, index-aligned with the request
  - error: Validation or presign failures
*/
func (service *Service) IssueUploadURLs(context context.Context, tenantID int, count int) ([]string, error) {
	if count < 1 {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: FieldCount, Message: "Must be a positive number",
		})
	}

	urls := make([]string, count)

	group, groupCtx := errgroup.WithContext(context)
	group.SetLimit(constants.UploadFanOutLimit)

	for i := 0; i < count; i++ {
		index := i
		group.Go(func() error {
			key := bucket.NewKey(tenantID, constants.KeyCategoryPropertyImage)
			uploadURL, err := service.storage.IssueUploadURL(groupCtx, key)
			if err != nil {
				return err
			}
			urls[index] = uploadURL
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

// # Helpers

// validateListing applies the field rules shared by create and update.
func validateListing(input CreateInput) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldCurrency, input.Currency).
		OneOf(FieldPropertyType, string(input.PropertyType),
			string(TypeHouse), string(TypeApartment), string(TypeLand),
			string(TypeCommercial), string(TypeOffice)).
		OneOf(FieldStatus, string(input.Status),
			string(StatusForSale), string(StatusForRent),
			string(StatusSold), string(StatusRented)).
		Custom(FieldPrice, input.Price < 0, "Must not be negative")

	return validator.Err()
}

// imagesFromURLs maps payload URLs to image rows; the first one is primary.
func imagesFromURLs(urls []string) []Image {
	images := make([]Image, 0, len(urls))
	for i, imageURL := range urls {
		images = append(images, Image{
			URL:       imageURL,
			IsPrimary: i == 0,
		})
	}
	return images
}

// objectKeyFromURL recovers the bucket key from a stored public object URL.
// Returns "" when the URL does not parse or has no path.
func objectKeyFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Path, "/")
}
