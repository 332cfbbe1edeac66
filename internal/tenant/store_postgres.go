// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package tenant

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

// NewPostgresRepository constructs a PostgreSQL backed tenant store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
FindByUserID retrieves the tenant owned by the given user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Tenant: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindByUserID(context context.Context, userID string) (*Tenant, error) {
	conditions := filter.New().Add(schema.Tenant.UserID, filter.Eq(filter.String(userID)))
	return repository.findOne(context, conditions, "get_tenant_by_user")
}

/*
FindByID retrieves a tenant by its primary key.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Tenant: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Tenant, error) {
	conditions := filter.New().Add(schema.Tenant.ID, filter.Eq(filter.Int(id)))
	return repository.findOne(context, conditions, "get_tenant_by_id")
}

// findOne executes a single-row lookup for any compiled condition set.
func (repository *PostgresRepository) findOne(context context.Context, conditions *filter.Filter, action string) (*Tenant, error) {
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.Tenant.ID, schema.Tenant.UserID, schema.Tenant.CompanyName,
		schema.Tenant.FirstName, schema.Tenant.LastName, schema.Tenant.Phone,
		schema.Tenant.CreatedAt, schema.Tenant.UpdatedAt,
		schema.Tenant.Table, clause,
	)

	record := &Tenant{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&record.ID, &record.UserID, &record.CompanyName,
		&record.FirstName, &record.LastName, &record.Phone,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return record, nil
}
