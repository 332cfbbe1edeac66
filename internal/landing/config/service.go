// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package config

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/nvarela/casavia/internal/platform/bucket"
	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/validate"
	"github.com/nvarela/casavia/pkg/filter"
)

// hexColorRegex matches #RGB and #RRGGBB accent colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// # Service Layer

// Service orchestrates branding edits and reads.
type Service struct {
	repo    Repository
	storage Bucket
	logger  *slog.Logger
}

// NewService constructs a new config [Service].
func NewService(repo Repository, storage Bucket, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// EditInput carries the branding payload.
type EditInput struct {
	Logo  *string `json:"logo"`
	Color *string `json:"color"`
}

/*
Edit upserts the tenant's branding row.

Parameters:
  - context: context.Context
  - tenantID: int
  - input: EditInput

Returns:
  - *Config: The saved row
  - error: Validation or persistence failures
*/
func (service *Service) Edit(context context.Context, tenantID int, input EditInput) (*Config, error) {
	validator := &validate.Validator{}
	if input.Color != nil && *input.Color != "" {
		validator.Custom(FieldColor, !hexColorRegex.MatchString(*input.Color), "Must be a hex color like #1a2b3c")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Config{
		TenantID: tenantID,
		Logo:     input.Logo,
		Color:    input.Color,
	}

	if err := service.repo.Save(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("landing_config_saved", slog.Int("tenant_id", tenantID))

	return record, nil
}

/*
Get returns a tenant's branding row. Public read.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *Config: Hydrated entity
  - error: NOT_FOUND if the tenant never saved one
*/
func (service *Service) Get(context context.Context, tenantID int) (*Config, error) {
	conditions := filter.New().Add(schema.LandingConfig.TenantID, filter.Eq(filter.Int(tenantID)))
	return service.repo.Find(context, conditions)
}

/*
IssueUploadURL presigns a single logo upload for the tenant.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - string: Presigned PUT URL
  - error: Presign failures
*/
func (service *Service) IssueUploadURL(context context.Context, tenantID int) (string, error) {
	key := bucket.NewKey(tenantID, constants.KeyCategoryLogo)
	return service.storage.IssueUploadURL(context, key)
}
