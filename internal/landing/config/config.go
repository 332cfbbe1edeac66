// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package config manages the landing-page branding of a tenant site.

One row per tenant holds the site logo and the accent color. Edits are
upsert-style, mirroring the hero section.
*/
package config

import "time"

// Config is the branding row of a tenant's landing page.
type Config struct {
	ID        int       `json:"id"`
	TenantID  int       `json:"tenant_id"`
	Logo      *string   `json:"logo,omitempty"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldColor = "color"
)
