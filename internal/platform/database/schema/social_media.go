// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// SocialMediaTable represents the 'social_media' table
type SocialMediaTable struct {
	Table     string
	ID        string
	TenantID  string
	Facebook  string
	Instagram string
	TikTok    string
	LinkedIn  string
	CreatedAt string
	UpdatedAt string
}

// SocialMedia is the schema definition for social_media
var SocialMedia = SocialMediaTable{
	Table:     "social_media",
	ID:        "id",
	TenantID:  "tenant_id",
	Facebook:  "facebook",
	Instagram: "instagram",
	TikTok:    "tiktok",
	LinkedIn:  "linkedin",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Columns returns all standard column names
func (t SocialMediaTable) Columns() []string {
	return []string{
		t.ID, t.TenantID, t.Facebook, t.Instagram, t.TikTok, t.LinkedIn, t.CreatedAt, t.UpdatedAt,
	}
}
