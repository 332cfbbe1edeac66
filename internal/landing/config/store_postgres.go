// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package config

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

// NewPostgresRepository constructs a PostgreSQL backed config store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Save upserts the tenant's branding row.

Parameters:
  - context: context.Context
  - record: *Config

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Save(context context.Context, record *Config) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.LandingConfig.Table,
		schema.LandingConfig.TenantID, schema.LandingConfig.Logo, schema.LandingConfig.Color,
		schema.LandingConfig.TenantID,
		schema.LandingConfig.Logo, schema.LandingConfig.Logo,
		schema.LandingConfig.Color, schema.LandingConfig.Color,
		schema.LandingConfig.UpdatedAt,
		schema.LandingConfig.ID, schema.LandingConfig.CreatedAt, schema.LandingConfig.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		record.TenantID, record.Logo, record.Color,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "save_landing_config")
}

/*
Find returns the single branding row matching the conditions.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter

Returns:
  - *Config: Hydrated entity
  - error: NOT_FOUND on zero rows
*/
func (repository *PostgresRepository) Find(context context.Context, conditions *filter.Filter) (*Config, error) {
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.LandingConfig.ID, schema.LandingConfig.TenantID,
		schema.LandingConfig.Logo, schema.LandingConfig.Color,
		schema.LandingConfig.CreatedAt, schema.LandingConfig.UpdatedAt,
		schema.LandingConfig.Table, clause,
	)

	record := &Config{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&record.ID, &record.TenantID,
		&record.Logo, &record.Color,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_landing_config")
	}

	return record, nil
}
