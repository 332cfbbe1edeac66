// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package hero

import (
	"context"

	"github.com/nvarela/casavia/pkg/filter"
)

// # Hero Data Access

// Repository defines the data access contract for hero sections.
type Repository interface {

	/*
		Save upserts the tenant's hero row.

		Parameters:
		  - context: context.Context
		  - record: *Hero (ID and timestamps populated on return)

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, record *Hero) error

	/*
		Find returns the single hero matching the conditions.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter

		Returns:
		  - *Hero: Hydrated entity
		  - error: NOT_FOUND on zero rows
	*/
	Find(context context.Context, conditions *filter.Filter) (*Hero, error)
}

// # Object Storage Access

// Bucket is the narrow media-storage port the hero service consumes.
type Bucket interface {
	IssueUploadURL(ctx context.Context, key string) (string, error)
}
