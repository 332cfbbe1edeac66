// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// FeedbackTable represents the 'feedback' table
type FeedbackTable struct {
	Table          string
	ID             string
	TenantID       string
	PropertyImage  string
	CustomerImage  string
	CustomerName   string
	CustomerReview string
	Description    string
	CreatedAt      string
	UpdatedAt      string
}

// Feedback is the schema definition for feedback
var Feedback = FeedbackTable{
	Table:          "feedback",
	ID:             "id",
	TenantID:       "tenant_id",
	PropertyImage:  "property_image",
	CustomerImage:  "customer_image",
	CustomerName:   "customer_name",
	CustomerReview: "customer_review",
	Description:    "description",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

// Columns returns all standard column names
func (t FeedbackTable) Columns() []string {
	return []string{
		t.ID, t.TenantID, t.PropertyImage, t.CustomerImage, t.CustomerName,
		t.CustomerReview, t.Description, t.CreatedAt, t.UpdatedAt,
	}
}
