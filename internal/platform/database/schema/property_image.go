// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// PropertyImageTable represents the 'property_image' table
type PropertyImageTable struct {
	Table      string
	ID         string
	PropertyID string
	URL        string
	IsPrimary  string
	CreatedAt  string
}

// PropertyImage is the schema definition for property_image
var PropertyImage = PropertyImageTable{
	Table:      "property_image",
	ID:         "id",
	PropertyID: "property_id",
	URL:        "url",
	IsPrimary:  "is_primary",
	CreatedAt:  "created_at",
}

// Columns returns all standard column names
func (t PropertyImageTable) Columns() []string {
	return []string{t.ID, t.PropertyID, t.URL, t.IsPrimary, t.CreatedAt}
}
