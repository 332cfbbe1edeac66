// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package session

import "time"

// Session is an opaque-token login session row.
//
// # Lifecycle
//
// Sessions are created and persisted by the external authentication
// collaborator that owns the login flow. This backend only ever reads them:
// it never mutates or deletes a session row, expired or not (cleanup belongs
// to the collaborator that created them).
type Session struct {
	// ID is the opaque token presented by the client in the
	// Authorization header.
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session lapsed, evaluated against the wall
// clock at call time. Expiry is never cached: a session that expires
// mid-request is treated consistently by every check that runs after it.
func (s *Session) IsExpired() bool {
	return s.ExpiresAt.Before(time.Now())
}
