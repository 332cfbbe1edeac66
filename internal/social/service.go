// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package social

import (
	"context"
	"log/slog"

	"github.com/nvarela/casavia/internal/platform/validate"
)

// # Service Layer

// Service orchestrates social-link edits and reads.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new social [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// EditInput carries the links payload.
type EditInput struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	TikTok    *string `json:"tiktok"`
	LinkedIn  *string `json:"linkedin"`
}

/*
Edit upserts the tenant's social links. Every present link must be an
absolute http(s) URL.

Parameters:
  - context: context.Context
  - tenantID: int
  - input: EditInput

Returns:
  - *Links: The saved row
  - error: Validation or persistence failures
*/
func (service *Service) Edit(context context.Context, tenantID int, input EditInput) (*Links, error) {
	validator := &validate.Validator{}
	for field, link := range map[string]*string{
		FieldFacebook:  input.Facebook,
		FieldInstagram: input.Instagram,
		FieldTikTok:    input.TikTok,
		FieldLinkedIn:  input.LinkedIn,
	} {
		if link != nil && *link != "" {
			validator.URL(field, *link)
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Links{
		TenantID:  tenantID,
		Facebook:  input.Facebook,
		Instagram: input.Instagram,
		TikTok:    input.TikTok,
		LinkedIn:  input.LinkedIn,
	}

	if err := service.repo.Upsert(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("social_links_saved", slog.Int("tenant_id", tenantID))

	return record, nil
}

/*
Get returns a tenant's social links. Public read.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *Links: Hydrated entity
  - error: NOT_FOUND if the tenant never saved links
*/
func (service *Service) Get(context context.Context, tenantID int) (*Links, error) {
	return service.repo.Find(context, tenantID)
}
