// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package social

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/dberr"
	"github.com/nvarela/casavia/pkg/filter"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed social store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Upsert saves the tenant's links, creating the row on first write.

Parameters:
  - context: context.Context
  - record: *Links

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Upsert(context context.Context, record *Links) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.SocialMedia.Table,
		schema.SocialMedia.TenantID, schema.SocialMedia.Facebook, schema.SocialMedia.Instagram,
		schema.SocialMedia.TikTok, schema.SocialMedia.LinkedIn,
		schema.SocialMedia.TenantID,
		schema.SocialMedia.Facebook, schema.SocialMedia.Facebook,
		schema.SocialMedia.Instagram, schema.SocialMedia.Instagram,
		schema.SocialMedia.TikTok, schema.SocialMedia.TikTok,
		schema.SocialMedia.LinkedIn, schema.SocialMedia.LinkedIn,
		schema.SocialMedia.UpdatedAt,
		schema.SocialMedia.ID, schema.SocialMedia.CreatedAt, schema.SocialMedia.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		record.TenantID, record.Facebook, record.Instagram, record.TikTok, record.LinkedIn,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "upsert_social_links")
}

/*
Find returns the tenant's links row.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - *Links: Hydrated entity
  - error: NOT_FOUND if the tenant never saved links
*/
func (repository *PostgresRepository) Find(context context.Context, tenantID int) (*Links, error) {
	conditions := filter.New().Add(schema.SocialMedia.TenantID, filter.Eq(filter.Int(tenantID)))
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.SocialMedia.ID, schema.SocialMedia.TenantID,
		schema.SocialMedia.Facebook, schema.SocialMedia.Instagram,
		schema.SocialMedia.TikTok, schema.SocialMedia.LinkedIn,
		schema.SocialMedia.CreatedAt, schema.SocialMedia.UpdatedAt,
		schema.SocialMedia.Table, clause,
	)

	record := &Links{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&record.ID, &record.TenantID,
		&record.Facebook, &record.Instagram, &record.TikTok, &record.LinkedIn,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_social_links")
	}

	return record, nil
}
