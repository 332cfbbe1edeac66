// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package hero

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

// NewPostgresRepository constructs a PostgreSQL backed hero store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Save upserts the tenant's hero row.

Description: ON CONFLICT on the tenant id keeps one hero per tenant; repeat
saves rewrite the content and bump updated_at.

Parameters:
  - context: context.Context
  - record: *Hero

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Save(context context.Context, record *Hero) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.Hero.Table,
		schema.Hero.TenantID, schema.Hero.Title, schema.Hero.Description, schema.Hero.Image,
		schema.Hero.TenantID,
		schema.Hero.Title, schema.Hero.Title,
		schema.Hero.Description, schema.Hero.Description,
		schema.Hero.Image, schema.Hero.Image,
		schema.Hero.UpdatedAt,
		schema.Hero.ID, schema.Hero.CreatedAt, schema.Hero.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		record.TenantID, record.Title, record.Description, record.Image,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "save_hero")
}

/*
Find returns the single hero matching the conditions.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter

Returns:
  - *Hero: Hydrated entity
  - error: NOT_FOUND on zero rows
*/
func (repository *PostgresRepository) Find(context context.Context, conditions *filter.Filter) (*Hero, error) {
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.Hero.ID, schema.Hero.TenantID, schema.Hero.Title,
		schema.Hero.Description, schema.Hero.Image,
		schema.Hero.CreatedAt, schema.Hero.UpdatedAt,
		schema.Hero.Table, clause,
	)

	record := &Hero{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&record.ID, &record.TenantID, &record.Title,
		&record.Description, &record.Image,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero")
	}

	return record, nil
}
