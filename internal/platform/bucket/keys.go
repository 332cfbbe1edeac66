// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package bucket

import (
	"fmt"

	"github.com/nvarela/casavia/pkg/uuid"
)

// NewKey builds a collision-free object key for a tenant upload.
//
// # Format
//
//	tenant_{tenantID}/{category}/{uuidv7}
//
// The random component makes concurrent key generation safe without
// coordination; the tenant prefix keeps per-tenant objects enumerable.
func NewKey(tenantID int, category string) string {
	return fmt.Sprintf("tenant_%d/%s/%s", tenantID, category, uuid.New())
}
