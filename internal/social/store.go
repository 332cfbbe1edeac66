// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package social

import "context"

// # Social Data Access

// Repository defines the data access contract for social links.
type Repository interface {

	/*
		Upsert saves the tenant's links, creating the row on first write.

		Parameters:
		  - context: context.Context
		  - record: *Links (ID and timestamps populated on return)

		Returns:
		  - error: Persistence failures
	*/
	Upsert(context context.Context, record *Links) error

	/*
		Find returns the tenant's links row.

		Parameters:
		  - context: context.Context
		  - tenantID: int

		Returns:
		  - *Links: Hydrated entity
		  - error: NOT_FOUND if the tenant never saved links
	*/
	Find(context context.Context, tenantID int) (*Links, error)
}
