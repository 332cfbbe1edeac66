// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package config

import (
	"context"

	"github.com/nvarela/casavia/pkg/filter"
)

// # Config Data Access

// Repository defines the data access contract for landing branding.
type Repository interface {

	/*
		Save upserts the tenant's branding row.

		Parameters:
		  - context: context.Context
		  - record: *Config (ID and timestamps populated on return)

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, record *Config) error

	/*
		Find returns the single branding row matching the conditions.

		Parameters:
		  - context: context.Context
		  - conditions: *filter.Filter

		Returns:
		  - *Config: Hydrated entity
		  - error: NOT_FOUND on zero rows
	*/
	Find(context context.Context, conditions *filter.Filter) (*Config, error)
}

// # Object Storage Access

// Bucket is the narrow media-storage port the config service consumes.
type Bucket interface {
	IssueUploadURL(ctx context.Context, key string) (string, error)
}
