// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// PropertyTable represents the 'property' table
type PropertyTable struct {
	Table         string
	ID            string
	TenantID      string
	Title         string
	Slug          string
	Description   string
	PropertyType  string
	Status        string
	Price         string
	Currency      string
	Bedrooms      string
	Bathrooms     string
	ParkingSpaces string
	TotalArea     string
	BuiltArea     string
	YearBuilt     string
	Address       string
	City          string
	State         string
	Country       string
	GoogleMapsURL string
	CreatedAt     string
	UpdatedAt     string
}

// Property is the schema definition for property
var Property = PropertyTable{
	Table:         "property",
	ID:            "id",
	TenantID:      "tenant_id",
	Title:         "title",
	Slug:          "slug",
	Description:   "description",
	PropertyType:  "property_type",
	Status:        "status",
	Price:         "price",
	Currency:      "currency",
	Bedrooms:      "bedrooms",
	Bathrooms:     "bathrooms",
	ParkingSpaces: "parking_spaces",
	TotalArea:     "total_area",
	BuiltArea:     "built_area",
	YearBuilt:     "year_built",
	Address:       "address",
	City:          "city",
	State:         "state",
	Country:       "country",
	GoogleMapsURL: "google_maps_url",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns all standard column names
func (t PropertyTable) Columns() []string {
	return []string{
		t.ID, t.TenantID, t.Title, t.Slug, t.Description, t.PropertyType, t.Status,
		t.Price, t.Currency, t.Bedrooms, t.Bathrooms, t.ParkingSpaces, t.TotalArea,
		t.BuiltArea, t.YearBuilt, t.Address, t.City, t.State, t.Country,
		t.GoogleMapsURL, t.CreatedAt, t.UpdatedAt,
	}
}
