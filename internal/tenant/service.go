// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package tenant

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service resolves tenants for authenticated requests.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new tenant [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Resolve maps a session's user id to its tenant.

This is the scoping primitive every authenticated service call goes through:
the resulting tenant id is the only id trusted for writes.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Tenant: The user's tenant
  - error: NOT_FOUND if the user has no tenant record
*/
func (service *Service) Resolve(context context.Context, userID string) (*Tenant, error) {
	return service.repo.FindByUserID(context, userID)
}

/*
Get retrieves a tenant by its primary key.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Tenant: Hydrated entity
  - error: NOT_FOUND if missing
*/
func (service *Service) Get(context context.Context, id int) (*Tenant, error) {
	return service.repo.FindByID(context, id)
}
