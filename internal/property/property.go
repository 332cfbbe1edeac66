// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package property manages the property-listing aggregate.

A listing is a parent row plus an ordered set of image rows, always created
and replaced together. All writes are scoped to the owning tenant; public
reads are keyed by listing id or tenant id.

# Core Responsibility

  - Catalog: Defines the [Property] entity, its [Image] children, and enums.
  - Ownership: Every mutation is bound to the tenant resolved from the session.
  - Media: Hands out presigned upload URLs and cleans the bucket on delete.
*/
package property

import "time"

// # Property Enums

// Type classifies what kind of real estate a listing is.
type Type string

const (
	TypeHouse      Type = "house"
	TypeApartment  Type = "apartment"
	TypeLand       Type = "land"
	TypeCommercial Type = "commercial"
	TypeOffice     Type = "office"
)

// Status tracks the commercial state of a listing.
type Status string

const (
	StatusForSale Status = "for_sale"
	StatusForRent Status = "for_rent"
	StatusSold    Status = "sold"
	StatusRented  Status = "rented"
)

// # Core Entities

// Property represents a single real-estate listing owned by a tenant.
type Property struct {
	ID            int       `json:"id"`
	TenantID      int       `json:"tenant_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description,omitempty"`
	PropertyType  Type      `json:"property_type"`
	Status        Status    `json:"status"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Bedrooms      *int      `json:"bedrooms,omitempty"`
	Bathrooms     *int      `json:"bathrooms,omitempty"`
	ParkingSpaces *int      `json:"parking_spaces,omitempty"`
	TotalArea     *float64  `json:"total_area,omitempty"`
	BuiltArea     *float64  `json:"built_area,omitempty"`
	YearBuilt     *int      `json:"year_built,omitempty"`
	Address       *string   `json:"address,omitempty"`
	City          *string   `json:"city,omitempty"`
	State         *string   `json:"state,omitempty"`
	Country       *string   `json:"country,omitempty"`
	GoogleMapsURL *string   `json:"google_maps_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Image is one media row attached to a listing.
type Image struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	URL        string    `json:"url"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

// WithImages is the read model for a listing together with its media.
type WithImages struct {
	Property
	Images []Image `json:"images"`
}

// # Search & Filtering

// ListFilter holds the optional narrowing parameters of a public listing query.
type ListFilter struct {
	Statuses     []string
	PropertyType string
	City         string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
}

// # Field Identifiers

const (
	FieldTitle        = "title"
	FieldPropertyType = "property_type"
	FieldStatus       = "status"
	FieldPrice        = "price"
	FieldCurrency     = "currency"
	FieldImagesURLs   = "images_urls"
	FieldCount        = "count"
)
