// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package feedback manages customer testimonials shown on a tenant's landing page.

A testimonial pairs a customer photo with a property photo and a short review.
Tenants manage the full lifecycle; the public site reads them paginated.
*/
package feedback

import "time"

// Feedback is one customer testimonial owned by a tenant.
type Feedback struct {
	ID             int       `json:"id"`
	TenantID       int       `json:"tenant_id"`
	PropertyImage  *string   `json:"property_image,omitempty"`
	CustomerImage  *string   `json:"customer_image,omitempty"`
	CustomerName   string    `json:"customer_name"`
	CustomerReview string    `json:"customer_review"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldCustomerName   = "customer_name"
	FieldCustomerReview = "customer_review"
)
