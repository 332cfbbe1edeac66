// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nvarela/casavia/internal/platform/constants"
	"github.com/nvarela/casavia/internal/platform/validate"
)

// # Service Layer

// Service orchestrates visit ingestion and dashboard assembly.
type Service struct {
	repo    Repository
	deduper Deduper
	logger  *slog.Logger
}

// NewService constructs a new stats [Service].
func NewService(repo Repository, deduper Deduper, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		deduper: deduper,
		logger:  logger,
	}
}

// EventInput is the public payload of a visit event.
type EventInput struct {
	TenantID   int       `json:"tenant_id"`
	EventType  EventType `json:"event_type"`
	PropertyID *int      `json:"property_id"`
	Referrer   *string   `json:"referrer"`
	Device     *string   `json:"device"`
}

// # Event Ingestion

/*
RecordEvent validates, de-duplicates, and stores a visit event.

Description: The client identity for de-duplication is the (tenant, event,
property, ip) tuple; repeats inside [constants.VisitDedupWindow] are dropped
silently — the endpoint still answers success so clients cannot probe the
window. If the de-dup backend is unavailable the event is stored anyway:
over-counting beats losing traffic data.

Parameters:
  - context: context.Context
  - input: EventInput
  - clientIP: string (from the connection, never the payload)
  - userAgent: string

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) RecordEvent(context context.Context, input EventInput, clientIP, userAgent string) error {
	validator := &validate.Validator{}
	validator.
		OneOf(FieldEventType, string(input.EventType),
			string(EventPropertyVisited), string(EventLandingVisited)).
		Positive(FieldTenantID, int64(input.TenantID)).
		Custom(FieldPropertyID,
			input.EventType == EventPropertyVisited && input.PropertyID == nil,
			"This field is required for property visits")
	if err := validator.Err(); err != nil {
		return err
	}

	propertyPart := 0
	if input.PropertyID != nil {
		propertyPart = *input.PropertyID
	}
	dedupKey := fmt.Sprintf("%s%s:%d:%d:%s",
		constants.RedisPrefixVisitDedup, input.EventType, input.TenantID, propertyPart, clientIP,
	)

	first, err := service.deduper.FirstSeen(context, dedupKey, constants.VisitDedupWindow)
	if err != nil {
		service.logger.Warn("visit_dedup_unavailable", slog.Any("error", err))
		first = true
	}
	if !first {
		return nil
	}

	visit := &Visit{
		TenantID:   input.TenantID,
		EventType:  input.EventType,
		PropertyID: input.PropertyID,
		Referrer:   input.Referrer,
		Device:     input.Device,
	}
	if clientIP != "" {
		visit.IPAddress = &clientIP
	}
	if userAgent != "" {
		visit.UserAgent = &userAgent
	}

	return service.repo.Create(context, visit)
}

// # Dashboards

/*
PropertyDashboard assembles per-listing traffic for the tenant.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *PropertyDashboard: Totals, per-listing counts, referrer breakdown
  - error: Retrieval failures
*/
func (service *Service) PropertyDashboard(context context.Context, tenantID int) (*PropertyDashboard, error) {
	perProperty, err := service.repo.PropertyVisits(context, tenantID)
	if err != nil {
		return nil, err
	}

	referrers, err := service.repo.Referrers(context, tenantID, EventPropertyVisited)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, count := range perProperty {
		total += count.Visits
	}

	return &PropertyDashboard{
		TotalVisits: total,
		Properties:  perProperty,
		Referrers:   referrers,
	}, nil
}

/*
LandingDashboard assembles landing-page traffic for the tenant.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *LandingDashboard: Totals and referrer breakdown
  - error: Retrieval failures
*/
func (service *Service) LandingDashboard(context context.Context, tenantID int) (*LandingDashboard, error) {
	total, err := service.repo.LandingVisits(context, tenantID)
	if err != nil {
		return nil, err
	}

	referrers, err := service.repo.Referrers(context, tenantID, EventLandingVisited)
	if err != nil {
		return nil, err
	}

	return &LandingDashboard{
		TotalVisits: total,
		Referrers:   referrers,
	}, nil
}
