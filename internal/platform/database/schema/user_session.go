// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package schema

// UserSessionTable represents the 'user_session' table.
//
// The table is written by the external authentication collaborator; this
// backend only reads it.
type UserSessionTable struct {
	Table     string
	ID        string
	UserID    string
	ExpiresAt string
}

// UserSession is the schema definition for user_session
var UserSession = UserSessionTable{
	Table:     "user_session",
	ID:        "id",
	UserID:    "user_id",
	ExpiresAt: "expires_at",
}

// Columns returns all standard column names
func (t UserSessionTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ExpiresAt}
}
