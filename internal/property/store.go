// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package property

import (
	"context"

	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

// # Property Data Access

// Repository defines the data access contract for the listing aggregate.
type Repository interface {

	/*
		Create persists a listing and its image rows in one transaction.

		A failed image insert rolls back the parent row; the aggregate is
		never half-written.

		Parameters:
		  - context: context.Context
		  - property: *Property (ID and timestamps populated on return)
		  - images: []Image (URL + IsPrimary per row)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, property *Property, images []Image) error

	/*
		ReplaceImages atomically swaps the full image set of a listing.

		The previous rows are deleted and the new ones inserted inside one
		transaction: readers never observe a partial set.

		Parameters:
		  - context: context.Context
		  - propertyID: int
		  - images: []Image

		Returns:
		  - error: Persistence failures
	*/
	ReplaceImages(context context.Context, propertyID int, images []Image) error

	/*
		Update rewrites the mutable columns of a listing row.

		Parameters:
		  - context: context.Context
		  - property: *Property

		Returns:
		  - error: NOT_FOUND if no row matched, persistence failures otherwise
	*/
	Update(context context.Context, property *Property) error

	/*
		Find returns the single listing (with images) matching the conditions.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter

		Returns:
		  - *WithImages: Hydrated aggregate
		  - error: NOT_FOUND on zero rows
	*/
	Find(context context.Context, conditions *filter.Filter) (*WithImages, error)

	/*
		FindMany returns a page of listings (with images) plus totals.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter
		  - params: pagination.Params

		Returns:
		  - pagination.Record[WithImages]: The page and its count metadata
		  - error: Retrieval failures
	*/
	FindMany(context context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[WithImages], error)

	/*
		Delete removes a listing owned by the given tenant.

		The tenant id participates in the WHERE clause, so a foreign
		tenant's listing yields NOT_FOUND — ownership is never disclosed.
		Image rows go with the parent via ON DELETE CASCADE.

		Parameters:
		  - context: context.Context
		  - id: int
		  - tenantID: int

		Returns:
		  - error: NOT_FOUND when zero rows were affected
	*/
	Delete(context context.Context, id int, tenantID int) error
}

// # Object Storage Access

// Bucket is the narrow media-storage port the listing service consumes.
type Bucket interface {
	// IssueUploadURL returns a short-lived presigned PUT URL for key.
	IssueUploadURL(ctx context.Context, key string) (string, error)

	// DeleteObjects removes keys best-effort and returns the deleted subset.
	DeleteObjects(ctx context.Context, keys []string) ([]string, error)
}
