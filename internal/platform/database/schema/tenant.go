// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// TenantTable represents the 'tenant' table
type TenantTable struct {
	Table       string
	ID          string
	UserID      string
	CompanyName string
	FirstName   string
	LastName    string
	Phone       string
	CreatedAt   string
	UpdatedAt   string
}

// Tenant is the schema definition for tenant
var Tenant = TenantTable{
	Table:       "tenant",
	ID:          "id",
	UserID:      "user_id",
	CompanyName: "company_name",
	FirstName:   "first_name",
	LastName:    "last_name",
	Phone:       "phone",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns all standard column names
func (t TenantTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.CompanyName, t.FirstName, t.LastName, t.Phone, t.CreatedAt, t.UpdatedAt,
	}
}
