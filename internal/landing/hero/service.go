// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package hero

import (
	"context"
	"log/slog"

	"github.com/nvarela/casavia/internal/platform/bucket"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/validate"
	"github.com/nvarela/casavia/pkg/filter"
)

// # Service Layer

// Service orchestrates hero-section edits and reads.
type Service struct {
	repo    Repository
	storage Bucket
	logger  *slog.Logger
}

// NewService constructs a new hero [Service].
func NewService(repo Repository, storage Bucket, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// EditInput carries the hero payload.
type EditInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

/*
Edit upserts the tenant's hero section.

Parameters:
  - context: context.Context
  - tenantID: int (resolved from the session)
  - input: EditInput

Returns:
  - *Hero: The saved row
  - error: Validation or persistence failures
*/
func (service *Service) Edit(context context.Context, tenantID int, input EditInput) (*Hero, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Hero{
		TenantID:    tenantID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	}

	if err := service.repo.Save(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("hero_saved", slog.Int("tenant_id", tenantID))

	return record, nil
}

/*
Get returns a tenant's hero section. Public read.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *Hero: Hydrated entity
  - error: NOT_FOUND if the tenant never saved one
*/
func (service *Service) Get(context context.Context, tenantID int) (*Hero, error) {
	conditions := filter.New().Add(schema.Hero.TenantID, filter.Eq(filter.Int(tenantID)))
	return service.repo.Find(context, conditions)
}

/*
IssueUploadURL presigns a single banner upload for the tenant.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - string: Presigned PUT URL
  - error: Presign failures
*/
func (service *Service) IssueUploadURL(context context.Context, tenantID int) (string, error) {
	key := bucket.NewKey(tenantID, constants.KeyCategoryHero)
	return service.storage.IssueUploadURL(context, key)
}
