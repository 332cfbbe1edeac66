// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package social manages the social-network links shown on a tenant site.

One row per tenant holds the four supported profile URLs. Saving is an
upsert; absent links stay null and are omitted from responses.
*/
package social

import "time"

// Links is a tenant's set of social profile URLs.
type Links struct {
	ID        int       `json:"id"`
	TenantID  int       `json:"tenant_id"`
	Facebook  *string   `json:"facebook,omitempty"`
	Instagram *string   `json:"instagram,omitempty"`
	TikTok    *string   `json:"tiktok,omitempty"`
	LinkedIn  *string   `json:"linkedin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldFacebook  = "facebook"
	FieldInstagram = "instagram"
	FieldTikTok    = "tiktok"
	FieldLinkedIn  = "linkedin"
)
