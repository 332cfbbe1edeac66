// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats

import (
	"context"
	"time"
)

// # Stats Data Access

// Repository defines the data access contract for visit events.
type Repository interface {

	/*
		Create persists a visit event.

		Parameters:
		  - context: context.Context
		  - visit: *Visit (ID and CreatedAt populated on return)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, visit *Visit) error

	/*
		PropertyVisits aggregates per-listing visit counts for a tenant.

		Parameters:
		  - context: context.Context
		  - tenantID: int

		Returns:
		  - []PropertyCount: Listings ordered by visits, descending
		  - error: Retrieval failures
	*/
	PropertyVisits(context context.Context, tenantID int) ([]PropertyCount, error)

	/*
		LandingVisits counts a tenant's landing-page visits.

		Parameters:
		  - context: context.Context
		  - tenantID: int

		Returns:
		  - int64: Total landing visits
		  - error: Retrieval failures
	*/
	LandingVisits(context context.Context, tenantID int) (int64, error)

	/*
		Referrers aggregates visit counts by referrer for one event type.

		Parameters:
		  - context: context.Context
		  - tenantID: int
		  - eventType: EventType

		Returns:
		  - []ReferrerCount: Referrers ordered by visits, descending
		  - error: Retrieval failures
	*/
	Referrers(context context.Context, tenantID int, eventType EventType) ([]ReferrerCount, error)
}

// # Visit De-duplication

// Deduper decides whether a visit is the first from its client in a window.
type Deduper interface {
	// FirstSeen returns true exactly once per key per ttl window.
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
