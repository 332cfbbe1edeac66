// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// HeroTable represents the 'hero' table
type HeroTable struct {
	Table       string
	ID          string
	TenantID    string
	Title       string
	Description string
	Image       string
	CreatedAt   string
	UpdatedAt   string
}

// Hero is the schema definition for hero
var Hero = HeroTable{
	Table:       "hero",
	ID:          "id",
	TenantID:    "tenant_id",
	Title:       "title",
	Description: "description",
	Image:       "image",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns all standard column names
func (t HeroTable) Columns() []string {
	return []string{t.ID, t.TenantID, t.Title, t.Description, t.Image, t.CreatedAt, t.UpdatedAt}
}
