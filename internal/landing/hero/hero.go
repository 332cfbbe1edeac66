// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package hero manages the landing-page hero section of a tenant site.

Each tenant has at most one hero row (headline, description, banner image).
Edits are upsert-style: saving creates the row on first write and rewrites
it afterwards.
*/
package hero

import "time"

// Hero is the banner section at the top of a tenant's landing page.
type Hero struct {
	ID          int       `json:"id"`
	TenantID    int       `json:"tenant_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTitle = "title"
	FieldImage = "image"
)
