// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package feedback

import (
	"context"

	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

// # Feedback Data Access

// Repository defines the data access contract for testimonials.
type Repository interface {

	/*
		Create persists a new testimonial.

		Parameters:
		  - context: context.Context
		  - record: *Feedback (ID and timestamps populated on return)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, record *Feedback) error

	/*
		Update rewrites a testimonial scoped to its owning tenant.

		Parameters:
		  - context: context.Context
		  - record: *Feedback

		Returns:
		  - error: NOT_FOUND for foreign or missing rows
	*/
	Update(context context.Context, record *Feedback) error

	/*
		Find returns the single testimonial matching the conditions.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter

		Returns:
		  - *Feedback: Hydrated entity
		  - error: NOT_FOUND on zero rows
	*/
	Find(context context.Context, conditions *filter.Filter) (*Feedback, error)

	/*
		FindMany returns a page of testimonials plus count metadata.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter
		  - params: pagination.Params

		Returns:
		  - pagination.Record[Feedback]: The page
		  - error: Retrieval failures
	*/
	FindMany(context context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[Feedback], error)

	/*
		Delete removes a testimonial owned by the given tenant.

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

// Bucket is the narrow media-storage port the feedback service consumes.
type Bucket interface {
	IssueUploadURL(ctx context.Context, key string) (string, error)
	DeleteObjects(ctx context.Context, keys []string) ([]string, error)
}
