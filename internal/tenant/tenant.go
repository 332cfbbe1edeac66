// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package tenant resolves the real-estate agency behind an authenticated user.

Every authenticated request maps its session's user to exactly one tenant,
and every aggregate in the system (properties, landing content, statistics)
hangs off that tenant id.

# Core Responsibility

  - Identity: Defines the [Tenant] entity and its contact metadata.
  - Resolution: Maps session user IDs to tenant records for scoping.

The tenant record itself is provisioned by the external onboarding flow;
this backend reads it.
*/
package tenant

import "time"

// Tenant represents a real-estate agency account.
type Tenant struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       *string   `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
