// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/database/schema"
	"github.com/nvarela/casavia/internal/platform/dberr"
	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed feedback store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create persists a new testimonial.

Parameters:
  - context: context.Context
  - record: *Feedback

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, record *Feedback) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s, %s
	`,
		schema.Feedback.Table,
		schema.Feedback.TenantID, schema.Feedback.PropertyImage, schema.Feedback.CustomerImage,
		schema.Feedback.CustomerName, schema.Feedback.CustomerReview, schema.Feedback.Description,
		schema.Feedback.ID, schema.Feedback.CreatedAt, schema.Feedback.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		record.TenantID, record.PropertyImage, record.CustomerImage,
		record.CustomerName, record.CustomerReview, record.Description,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_feedback")
}

/*
Update rewrites a testimonial scoped to its owning tenant.

Parameters:
  - context: context.Context
  - record: *Feedback

Returns:
  - error: NOT_FOUND for foreign or missing rows
*/
func (repository *PostgresRepository) Update(context context.Context, record *Feedback) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5,
			%s = NOW()
		WHERE %s = $6 AND %s = $7
		RETURNING %s, %s
	`,
		schema.Feedback.Table,
		schema.Feedback.PropertyImage, schema.Feedback.CustomerImage,
		schema.Feedback.CustomerName, schema.Feedback.CustomerReview, schema.Feedback.Description,
		schema.Feedback.UpdatedAt,
		schema.Feedback.ID, schema.Feedback.TenantID,
		schema.Feedback.CreatedAt, schema.Feedback.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		record.PropertyImage, record.CustomerImage,
		record.CustomerName, record.CustomerReview, record.Description,
		record.ID, record.TenantID,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "update_feedback")
}

/*
Find returns the single testimonial matching the conditions.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter

Returns:
  - *Feedback: Hydrated entity
  - error: NOT_FOUND on zero rows
*/
func (repository *PostgresRepository) Find(context context.Context, conditions *filter.Filter) (*Feedback, error) {
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
	`,
		schema.Feedback.ID, schema.Feedback.TenantID,
		schema.Feedback.PropertyImage, schema.Feedback.CustomerImage,
		schema.Feedback.CustomerName, schema.Feedback.CustomerReview, schema.Feedback.Description,
		schema.Feedback.CreatedAt, schema.Feedback.UpdatedAt,
		schema.Feedback.Table, clause,
	)

	record := &Feedback{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&record.ID, &record.TenantID,
		&record.PropertyImage, &record.CustomerImage,
		&record.CustomerName, &record.CustomerReview, &record.Description,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_feedback")
	}

	return record, nil
}

/*
FindMany returns a page of testimonials plus count metadata.

Description: Totals come from a separate COUNT scoped by the same filter;
the limit/offset bind args never reach the count query.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter
  - params: pagination.Params

Returns:
  - pagination.Record[Feedback]: The page
  - error: Retrieval failures
*/
func (repository *PostgresRepository) FindMany(context context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[Feedback], error) {
	var empty pagination.Record[Feedback]

	clause, filterArgs := conditions.Compile()

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, schema.Feedback.Table, clause)

	var totalItems int64
	if err := repository.db.QueryRow(context, countQuery, filterArgs...).Scan(&totalItems); err != nil {
		return empty, dberr.Wrap(err, "count_feedback")
	}

	pageArgs := append(append([]any{}, filterArgs...), params.PerPage, params.Offset())

	pageQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC, %s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.Feedback.ID, schema.Feedback.TenantID,
		schema.Feedback.PropertyImage, schema.Feedback.CustomerImage,
		schema.Feedback.CustomerName, schema.Feedback.CustomerReview, schema.Feedback.Description,
		schema.Feedback.CreatedAt, schema.Feedback.UpdatedAt,
		schema.Feedback.Table, clause,
		schema.Feedback.CreatedAt, schema.Feedback.ID,
		len(filterArgs)+1, len(filterArgs)+2,
	)

	rows, err := repository.db.Query(context, pageQuery, pageArgs...)
	if err != nil {
		return empty, dberr.Wrap(err, "list_feedback")
	}
	defer rows.Close()

	var items []Feedback
	for rows.Next() {
		record := Feedback{}
		err := rows.Scan(
			&record.ID, &record.TenantID,
			&record.PropertyImage, &record.CustomerImage,
			&record.CustomerName, &record.CustomerReview, &record.Description,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return empty, dberr.Wrap(err, "scan_feedback")
		}
		items = append(items, record)
	}

	if err := rows.Err(); err != nil {
		return empty, dberr.Wrap(err, "iterate_feedback")
	}

	return pagination.NewRecord(items, totalItems, params), nil
}

/*
Delete removes a testimonial owned by the given tenant.

Parameters:
  - context: context.Context
  - id: int
  - tenantID: int

Returns:
  - error: NOT_FOUND when zero rows were affected
*/
func (repository *PostgresRepository) Delete(context context.Context, id int, tenantID int) error {
	conditions := filter.New().
		Add(schema.Feedback.ID, filter.Eq(filter.Int(id))).
		Add(schema.Feedback.TenantID, filter.Eq(filter.Int(tenantID)))
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s`, schema.Feedback.Table, clause)

	tag, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_feedback")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Feedback")
	}

	return nil
}
