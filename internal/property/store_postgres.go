// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
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

// NewPostgresRepository constructs a PostgreSQL backed listing store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Aggregate Mutation

// The two statement-heavy writes are rendered once at init so tests can
// assert the generated SQL without a database.
var insertPropertyQuery = fmt.Sprintf(`
	INSERT INTO %s (
		%s, %s, %s, %s, %s, %s, %s, %s,
		%s, %s, %s, %s, %s, %s,
		%s, %s, %s, %s, %s
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19
	)
	RETURNING %s, %s, %s
`,
	schema.Property.Table,
	schema.Property.TenantID, schema.Property.Title, schema.Property.Slug,
	schema.Property.Description, schema.Property.PropertyType, schema.Property.Status,
	schema.Property.Price, schema.Property.Currency,
	schema.Property.Bedrooms, schema.Property.Bathrooms, schema.Property.ParkingSpaces,
	schema.Property.TotalArea, schema.Property.BuiltArea, schema.Property.YearBuilt,
	schema.Property.Address, schema.Property.City, schema.Property.State,
	schema.Property.Country, schema.Property.GoogleMapsURL,
	schema.Property.ID, schema.Property.CreatedAt, schema.Property.UpdatedAt,
)

var updatePropertyQuery = fmt.Sprintf(`
	UPDATE %s SET
		%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		%s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = $13,
		%s = $14, %s = $15, %s = $16, %s = $17, %s = $18,
		%s = NOW()
	WHERE %s = $19 AND %s = $20
	RETURNING %s
`,
	schema.Property.Table,
	schema.Property.Title, schema.Property.Slug, schema.Property.Description,
	schema.Property.PropertyType, schema.Property.Status, schema.Property.Price,
	schema.Property.Currency,
	schema.Property.Bedrooms, schema.Property.Bathrooms, schema.Property.ParkingSpaces,
	schema.Property.TotalArea, schema.Property.BuiltArea, schema.Property.YearBuilt,
	schema.Property.Address, schema.Property.City, schema.Property.State,
	schema.Property.Country, schema.Property.GoogleMapsURL,
	schema.Property.UpdatedAt,
	schema.Property.ID, schema.Property.TenantID,
	schema.Property.UpdatedAt,
)

/*
Create persists a listing and its image rows in one transaction.

Parameters:
  - context: context.Context
  - property: *Property
  - images: []Image

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, property *Property, images []Image) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_property_begin")
	}
	defer tx.Rollback(context)

	err = tx.QueryRow(context, insertPropertyQuery,
		property.TenantID, property.Title, property.Slug,
		property.Description, property.PropertyType, property.Status,
		property.Price, property.Currency,
		property.Bedrooms, property.Bathrooms, property.ParkingSpaces,
		property.TotalArea, property.BuiltArea, property.YearBuilt,
		property.Address, property.City, property.State,
		property.Country, property.GoogleMapsURL,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_property")
	}

	// Any failed image insert aborts the whole aggregate via the deferred
	// rollback.
	if err := insertImages(context, tx, property.ID, images); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "create_property_commit")
	}

	return nil
}

/*
ReplaceImages atomically swaps the full image set of a listing.

Parameters:
  - context: context.Context
  - propertyID: int
  - images: []Image

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) ReplaceImages(context context.Context, propertyID int, images []Image) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "replace_images_begin")
	}
	defer tx.Rollback(context)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PropertyImage.Table, schema.PropertyImage.PropertyID,
	)
	if _, err := tx.Exec(context, deleteQuery, propertyID); err != nil {
		return dberr.Wrap(err, "replace_images_delete")
	}

	if err := insertImages(context, tx, propertyID, images); err != nil {
		return err
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "replace_images_commit")
	}

	return nil
}

// insertImages appends image rows for a listing inside the caller's transaction.
func insertImages(context context.Context, tx pgx.Tx, propertyID int, images []Image) error {
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.PropertyImage.Table,
		schema.PropertyImage.PropertyID, schema.PropertyImage.URL, schema.PropertyImage.IsPrimary,
	)

	for _, image := range images {
		if _, err := tx.Exec(context, insertQuery, propertyID, image.URL, image.IsPrimary); err != nil {
			return dberr.Wrap(err, "insert_property_image")
		}
	}

	return nil
}

/*
Update rewrites the mutable columns of a listing row.

Parameters:
  - context: context.Context
  - property: *Property

Returns:
  - error: NOT_FOUND if no row matched
*/
func (repository *PostgresRepository) Update(context context.Context, property *Property) error {
	err := repository.db.QueryRow(context, updatePropertyQuery,
		property.Title, property.Slug, property.Description,
		property.PropertyType, property.Status, property.Price,
		property.Currency,
		property.Bedrooms, property.Bathrooms, property.ParkingSpaces,
		property.TotalArea, property.BuiltArea, property.YearBuilt,
		property.Address, property.City, property.State,
		property.Country, property.GoogleMapsURL,
		property.ID, property.TenantID,
	).Scan(&property.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_property")
	}

	return nil
}

/*
Delete removes a listing scoped to its owning tenant.

Parameters:
  - context: context.Context
  - id: int
  - tenantID: int

Returns:
  - error: NOT_FOUND when zero rows were affected
*/
func (repository *PostgresRepository) Delete(context context.Context, id int, tenantID int) error {
	conditions := filter.New().
		Add(schema.Property.ID, filter.Eq(filter.Int(id))).
		Add(schema.Property.TenantID, filter.Eq(filter.Int(tenantID)))
	clause, args := conditions.Compile()

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s`, schema.Property.Table, clause)

	tag, err := repository.db.Exec(context, deleteQuery, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_property")
	}

	// Zero affected rows means the listing does not exist for this tenant —
	// the same NOT_FOUND a foreign tenant gets.
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Property")
	}

	return nil
}

// # Aggregate Retrieval

/*
Find returns the single listing (with images) matching the conditions.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter

Returns:
  - *WithImages: Hydrated aggregate
  - error: NOT_FOUND on zero rows
*/
func (repository *PostgresRepository) Find(context context.Context, conditions *filter.Filter) (*WithImages, error) {
	clause, args := conditions.Compile()

	// The filter compiles against bare column names, so it is applied in a
	// subquery on the parent table alone — no aliasing ambiguity with the
	// joined image columns.
	query := fmt.Sprintf(`
		SELECT %s,
			i.%s, i.%s, i.%s, i.%s
		FROM (
			SELECT * FROM %s WHERE %s
		) p
		LEFT JOIN %s i ON i.%s = p.%s
		ORDER BY i.%s ASC
	`,
		prefixedPropertyColumns("p"),
		schema.PropertyImage.ID, schema.PropertyImage.URL,
		schema.PropertyImage.IsPrimary, schema.PropertyImage.CreatedAt,
		schema.Property.Table, clause,
		schema.PropertyImage.Table, schema.PropertyImage.PropertyID, schema.Property.ID,
		schema.PropertyImage.ID,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "get_property")
	}
	defer rows.Close()

	listings, err := groupRows(rows)
	if err != nil {
		return nil, err
	}

	if len(listings) == 0 {
		return nil, apperr.NotFound("Property")
	}

	return &listings[0], nil
}

/*
FindMany returns a page of listings (with images) plus count metadata.

Description: The page is selected on the parent table first, then joined to
its images, so LIMIT applies to listings, never to joined rows. Totals come
from a separate COUNT(DISTINCT id) scoped by the same conditions; the
limit/offset bind args never reach the count query.

Parameters:
  - context: context.Context
  - conditions: *filter.Filter
  - params: pagination.Params

Returns:
  - pagination.Record[WithImages]: The page and its totals
  - error: Retrieval failures
*/
func (repository *PostgresRepository) FindMany(context context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[WithImages], error) {
	var empty pagination.Record[WithImages]

	clause, filterArgs := conditions.Compile()

	// ── 1. Count ──────────────────────────────────────────────────────────
	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s WHERE %s`,
		schema.Property.ID, schema.Property.Table, clause,
	)

	var totalItems int64
	if err := repository.db.QueryRow(context, countQuery, filterArgs...).Scan(&totalItems); err != nil {
		return empty, dberr.Wrap(err, "count_properties")
	}

	// ── 2. Page ───────────────────────────────────────────────────────────
	pageArgs := append(append([]any{}, filterArgs...), params.PerPage, params.Offset())
	limitPlaceholder := len(filterArgs) + 1
	offsetPlaceholder := len(filterArgs) + 2

	pageQuery := fmt.Sprintf(`
		SELECT %s,
			i.%s, i.%s, i.%s, i.%s
		FROM (
			SELECT * FROM %s
			WHERE %s
			ORDER BY %s DESC, %s DESC
			LIMIT $%d OFFSET $%d
		) p
		LEFT JOIN %s i ON i.%s = p.%s
		ORDER BY p.%s DESC, p.%s DESC, i.%s ASC
	`,
		prefixedPropertyColumns("p"),
		schema.PropertyImage.ID, schema.PropertyImage.URL,
		schema.PropertyImage.IsPrimary, schema.PropertyImage.CreatedAt,
		schema.Property.Table,
		clause,
		schema.Property.CreatedAt, schema.Property.ID,
		limitPlaceholder, offsetPlaceholder,
		schema.PropertyImage.Table, schema.PropertyImage.PropertyID, schema.Property.ID,
		schema.Property.CreatedAt, schema.Property.ID, schema.PropertyImage.ID,
	)

	rows, err := repository.db.Query(context, pageQuery, pageArgs...)
	if err != nil {
		return empty, dberr.Wrap(err, "list_properties")
	}
	defer rows.Close()

	listings, err := groupRows(rows)
	if err != nil {
		return empty, err
	}

	return pagination.NewRecord(listings, totalItems, params), nil
}

// # Row Mapping

// propertyRows is the subset of pgx.Rows the grouping logic needs.
type propertyRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// groupRows folds the LEFT JOIN result into parent listings with ordered
// image children. Row order is preserved; a NULL image id means the listing
// has no images.
func groupRows(rows propertyRows) ([]WithImages, error) {
	var listings []WithImages
	indexByID := make(map[int]int)

	for rows.Next() {
		var record Property
		var imageID *int
		var imageURL *string
		var imageIsPrimary *bool
		var imageCreatedAt *time.Time

		err := rows.Scan(
			&record.ID, &record.TenantID, &record.Title, &record.Slug,
			&record.Description, &record.PropertyType, &record.Status,
			&record.Price, &record.Currency,
			&record.Bedrooms, &record.Bathrooms, &record.ParkingSpaces,
			&record.TotalArea, &record.BuiltArea, &record.YearBuilt,
			&record.Address, &record.City, &record.State, &record.Country,
			&record.GoogleMapsURL, &record.CreatedAt, &record.UpdatedAt,
			&imageID, &imageURL, &imageIsPrimary, &imageCreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_property_row")
		}

		position, seen := indexByID[record.ID]
		if !seen {
			listings = append(listings, WithImages{Property: record, Images: []Image{}})
			position = len(listings) - 1
			indexByID[record.ID] = position
		}

		if imageID != nil {
			listings[position].Images = append(listings[position].Images, Image{
				ID:         *imageID,
				PropertyID: record.ID,
				URL:        *imageURL,
				IsPrimary:  *imageIsPrimary,
				CreatedAt:  *imageCreatedAt,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_property_rows")
	}

	return listings, nil
}

// # Query Helpers

// prefixedPropertyColumns renders every listing column qualified with alias.
func prefixedPropertyColumns(alias string) string {
	columns := schema.Property.Columns()
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
