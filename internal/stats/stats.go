// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package stats records landing-page traffic and serves the tenant dashboards.

The public site posts visit events (a landing view or a property view) with
lightweight client metadata. Repeat visits from the same client inside a
30-minute window are dropped through a Redis de-duplication key, so the
dashboards count visits rather than page loads.

# Core Responsibility

  - Ingest: Validates and stores [Visit] events.
  - De-dup: One visit per client per window, enforced via SETNX.
  - Dashboards: Aggregated counts and referrer breakdowns per tenant.
*/
package stats

import "time"

// # Event Enums

// EventType discriminates what was visited.
type EventType string

const (
	EventPropertyVisited EventType = "property_visited"
	EventLandingVisited  EventType = "landing_visited"
)

// # Core Entities

// Visit is one recorded traffic event on a tenant site.
type Visit struct {
	ID         int       `json:"id"`
	TenantID   int       `json:"tenant_id"`
	EventType  EventType `json:"event_type"`
	PropertyID *int      `json:"property_id,omitempty"`
	Referrer   *string   `json:"referrer,omitempty"`
	Device     *string   `json:"device,omitempty"`
	IPAddress  *string   `json:"-"`
	UserAgent  *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// # Dashboard Read Models

// PropertyCount is the visit total of one listing.
type PropertyCount struct {
	PropertyID int   `json:"property_id"`
	Visits     int64 `json:"visits"`
}

// ReferrerCount is the visit total attributed to one referrer.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Visits   int64  `json:"visits"`
}

// PropertyDashboard aggregates property traffic for a tenant.
type PropertyDashboard struct {
	TotalVisits int64           `json:"total_visits"`
	Properties  []PropertyCount `json:"properties"`
	Referrers   []ReferrerCount `json:"referrers"`
}

// LandingDashboard aggregates landing-page traffic for a tenant.
type LandingDashboard struct {
	TotalVisits int64           `json:"total_visits"`
	Referrers   []ReferrerCount `json:"referrers"`
}

// # Field Identifiers

const (
	FieldEventType  = "event_type"
	FieldTenantID   = "tenant_id"
	FieldPropertyID = "property_id"
)
