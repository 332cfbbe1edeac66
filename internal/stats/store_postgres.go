// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats

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

// NewPostgresRepository constructs a PostgreSQL backed stats store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create persists a visit event.

Parameters:
  - context: context.Context
  - visit: *Visit

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, visit *Visit) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`,
		schema.Visit.Table,
		schema.Visit.TenantID, schema.Visit.EventType, schema.Visit.PropertyID,
		schema.Visit.Referrer, schema.Visit.Device, schema.Visit.IPAddress, schema.Visit.UserAgent,
		schema.Visit.ID, schema.Visit.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		visit.TenantID, visit.EventType, visit.PropertyID,
		visit.Referrer, visit.Device, visit.IPAddress, visit.UserAgent,
	).Scan(&visit.ID, &visit.CreatedAt)

	return dberr.Wrap(err, "create_visit")
}

/*
PropertyVisits aggregates per-listing visit counts for a tenant.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - []PropertyCount: Listings ordered by visits, descending
  - error: Retrieval failures
*/
func (repository *PostgresRepository) PropertyVisits(context context.Context, tenantID int) ([]PropertyCount, error) {
	conditions := filter.New().
		Add(schema.Visit.TenantID, filter.Eq(filter.Int(tenantID))).
		Add(schema.Visit.EventType, filter.Eq(filter.String(string(EventPropertyVisited))))
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS visits
		FROM %s
		WHERE %s AND %s IS NOT NULL
		GROUP BY %s
		ORDER BY visits DESC
	`,
		schema.Visit.PropertyID, schema.Visit.Table, clause,
		schema.Visit.PropertyID, schema.Visit.PropertyID,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "property_visits")
	}
	defer rows.Close()

	var counts []PropertyCount
	for rows.Next() {
		count := PropertyCount{}
		if err := rows.Scan(&count.PropertyID, &count.Visits); err != nil {
			return nil, dberr.Wrap(err, "scan_property_visits")
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_property_visits")
	}

	return counts, nil
}

/*
LandingVisits counts a tenant's landing-page visits.

Parameters:
  - context: context.Context
  - tenantID: int

Returns:
  - int64: Total landing visits
  - error: Retrieval failures
*/
func (repository *PostgresRepository) LandingVisits(context context.Context, tenantID int) (int64, error) {
	conditions := filter.New().
		Add(schema.Visit.TenantID, filter.Eq(filter.Int(tenantID))).
		Add(schema.Visit.EventType, filter.Eq(filter.String(string(EventLandingVisited))))
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, schema.Visit.Table, clause)

	var total int64
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "landing_visits")
	}

	return total, nil
}

/*
Referrers aggregates visit counts by referrer for one event type.

Parameters:
  - context: context.Context
  - tenantID: int
  - eventType: EventType

Returns:
  - []ReferrerCount: Referrers ordered by visits, descending
  - error: Retrieval failures
*/
func (repository *PostgresRepository) Referrers(context context.Context, tenantID int, eventType EventType) ([]ReferrerCount, error) {
	conditions := filter.New().
		Add(schema.Visit.TenantID, filter.Eq(filter.Int(tenantID))).
		Add(schema.Visit.EventType, filter.Eq(filter.String(string(eventType))))
	clause, args := conditions.Compile()

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS visits
		FROM %s
		WHERE %s AND %s IS NOT NULL
		GROUP BY %s
		ORDER BY visits DESC
		LIMIT 50
	`,
		schema.Visit.Referrer, schema.Visit.Table, clause,
		schema.Visit.Referrer, schema.Visit.Referrer,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "visit_referrers")
	}
	defer rows.Close()

	var counts []ReferrerCount
	for rows.Next() {
		count := ReferrerCount{}
		if err := rows.Scan(&count.Referrer, &count.Visits); err != nil {
			return nil, dberr.Wrap(err, "scan_visit_referrers")
		}
		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_visit_referrers")
	}

	return counts, nil
}
