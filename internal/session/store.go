// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package session

import "context"

// Repository defines the read-only data access contract for login sessions.
//
// # Implementations
//
// The canonical implementation is PostgreSQL, reading the table the external
// authentication collaborator writes.
type Repository interface {
	// Get returns the session with the given opaque token.
	//
	// Returns [apperr.NotFound] if no session row matches the token, and
	// [apperr.SessionExpired] if the row exists but has lapsed at fetch
	// time. Adapters must evaluate expiry against the wall clock when the
	// row is read, never against a cached timestamp.
	Get(ctx context.Context, token string) (*Session, error)
}
