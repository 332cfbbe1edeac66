// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// VisitTable represents the 'visit' table
type VisitTable struct {
	Table      string
	ID         string
	TenantID   string
	EventType  string
	PropertyID string
	Referrer   string
	Device     string
	IPAddress  string
	UserAgent  string
	CreatedAt  string
}

// Visit is the schema definition for visit
var Visit = VisitTable{
	Table:      "visit",
	ID:         "id",
	TenantID:   "tenant_id",
	EventType:  "event_type",
	PropertyID: "property_id",
	Referrer:   "referrer",
	Device:     "device",
	IPAddress:  "ip_address",
	UserAgent:  "user_agent",
	CreatedAt:  "created_at",
}

// Columns returns all standard column names
func (t VisitTable) Columns() []string {
	return []string{
		t.ID, t.TenantID, t.EventType, t.PropertyID, t.Referrer, t.Device,
		t.IPAddress, t.UserAgent, t.CreatedAt,
	}
}
