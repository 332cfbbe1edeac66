// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package tenant

import "context"

// # Tenant Data Access

// Repository defines the data access contract for tenant resolution.
type Repository interface {

	/*
		FindByUserID retrieves the tenant owned by the given user.

		Parameters:
		  - context: context.Context
		  - userID: string (session user id)

		Returns:
		  - *Tenant: Hydrated entity
		  - error: NOT_FOUND if the user has no tenant
	*/
	FindByUserID(context context.Context, userID string) (*Tenant, error)

	/*
		FindByID retrieves a tenant by its primary key.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Tenant: Hydrated entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id int) (*Tenant, error)
}
