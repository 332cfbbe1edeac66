// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package session

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/dberr"
)

// PostgresRepository reads the session table owned by the external
// authentication collaborator.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres-backed session reader.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get fetches a session row by its opaque token.
//
// A missing row maps to NotFound; an existing but lapsed row maps to
// SESSION_EXPIRED right here at the fetch boundary, so even callers that
// skip the service-level re-check never see an expired session as valid.
func (repository *PostgresRepository) Get(ctx context.Context, token string) (*Session, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.ExpiresAt,
		schema.UserSession.Table, schema.UserSession.ID,
	)

	userSession := &Session{}
	err := repository.db.QueryRow(ctx, query, token).Scan(
		&userSession.ID, &userSession.UserID, &userSession.ExpiresAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_session")
	}

	if userSession.IsExpired() {
		return nil, apperr.SessionExpired()
	}

	return userSession, nil
}
