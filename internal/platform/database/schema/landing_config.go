// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// LandingConfigTable represents the 'landing_config' table
type LandingConfigTable struct {
	Table     string
	ID        string
	TenantID  string
	Logo      string
	Color     string
	CreatedAt string
	UpdatedAt string
}

// LandingConfig is the schema definition for landing_config
var LandingConfig = LandingConfigTable{
	Table:     "landing_config",
	ID:        "id",
	TenantID:  "tenant_id",
	Logo:      "logo",
	Color:     "color",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns all standard column names
func (t LandingConfigTable) Columns() []string {
	return []string{t.ID, t.TenantID, t.Logo, t.Color, t.CreatedAt, t.UpdatedAt}
}
