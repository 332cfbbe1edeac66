// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package property

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestInsertPropertyQuery_Renders verifies the INSERT statement targets the
listing table and leaves no format verb unfilled — a shifted argument list
would render "INSERT INTO tenant_id (...)" and a trailing %!s(MISSING).
*/
func TestInsertPropertyQuery_Renders(t *testing.T) {
	assert.Contains(t, insertPropertyQuery, "INSERT INTO property (")
	assert.Contains(t, insertPropertyQuery, "tenant_id, title, slug,")
	assert.Contains(t, insertPropertyQuery, "RETURNING id, created_at, updated_at")
	assert.NotContains(t, insertPropertyQuery, "%!s")
	assert.NotContains(t, insertPropertyQuery, "%s")
}

/*
TestUpdatePropertyQuery_Renders verifies the UPDATE statement targets the
listing table, scopes on id and tenant_id, and leaves no verb unfilled.
*/
func TestUpdatePropertyQuery_Renders(t *testing.T) {
	assert.Contains(t, updatePropertyQuery, "UPDATE property SET")
	assert.Contains(t, updatePropertyQuery, "title = $1, slug = $2,")
	assert.Contains(t, updatePropertyQuery, "WHERE id = $19 AND tenant_id = $20")
	assert.Contains(t, updatePropertyQuery, "RETURNING updated_at")
	assert.NotContains(t, updatePropertyQuery, "%!s")
	assert.NotContains(t, updatePropertyQuery, "%s")
}

// joinedRow is one canned LEFT JOIN result row: a listing plus at most one
// image, nil image fields standing in for SQL NULLs.
type joinedRow struct {
	listing        Property
	imageID        *int
	imageURL       *string
	imageIsPrimary *bool
	imageCreatedAt *time.Time
}

type fakeJoinRows struct {
	rows  []joinedRow
	index int
}

func (f *fakeJoinRows) Next() bool {
	f.index++
	return f.index <= len(f.rows)
}

func (f *fakeJoinRows) Err() error { return nil }

func (f *fakeJoinRows) Scan(dest ...any) error {
	row := f.rows[f.index-1]
	listing := row.listing

	*dest[0].(*int) = listing.ID
	*dest[1].(*int) = listing.TenantID
	*dest[2].(*string) = listing.Title
	*dest[3].(*string) = listing.Slug
	*dest[4].(**string) = listing.Description
	*dest[5].(*Type) = listing.PropertyType
	*dest[6].(*Status) = listing.Status
	*dest[7].(*float64) = listing.Price
	*dest[8].(*string) = listing.Currency
	*dest[9].(**int) = listing.Bedrooms
	*dest[10].(**int) = listing.Bathrooms
	*dest[11].(**int) = listing.ParkingSpaces
	*dest[12].(**float64) = listing.TotalArea
	*dest[13].(**float64) = listing.BuiltArea
	*dest[14].(**int) = listing.YearBuilt
	*dest[15].(**string) = listing.Address
	*dest[16].(**string) = listing.City
	*dest[17].(**string) = listing.State
	*dest[18].(**string) = listing.Country
	*dest[19].(**string) = listing.GoogleMapsURL
	*dest[20].(*time.Time) = listing.CreatedAt
	*dest[21].(*time.Time) = listing.UpdatedAt
	*dest[22].(**int) = row.imageID
	*dest[23].(**string) = row.imageURL
	*dest[24].(**bool) = row.imageIsPrimary
	*dest[25].(**time.Time) = row.imageCreatedAt
	return nil
}

func listingRow(id int, title string) Property {
	return Property{
		ID:       id,
		TenantID: 3,
		Title:    title,
		Slug:     strings.ToLower(title),
		Status:   StatusForSale,
		Currency: "USD",
	}
}

func imageRow(id int, url string, primary bool) (*int, *string, *bool, *time.Time) {
	createdAt := time.Now()
	return &id, &url, &primary, &createdAt
}

/*
TestGroupRows_FoldsJoinedImages verifies join rows collapse into one parent
per listing with its images in row order, and that a NULL image id yields a
listing with an empty (never nil) image slice.
*/
func TestGroupRows_FoldsJoinedImages(t *testing.T) {
	firstID, firstURL, firstPrimary, firstCreated := imageRow(10, "https://cdn.casavia.app/a.jpg", true)
	secondID, secondURL, secondPrimary, secondCreated := imageRow(11, "https://cdn.casavia.app/b.jpg", false)

	rows := &fakeJoinRows{rows: []joinedRow{
		{listing: listingRow(1, "Villa"), imageID: firstID, imageURL: firstURL, imageIsPrimary: firstPrimary, imageCreatedAt: firstCreated},
		{listing: listingRow(1, "Villa"), imageID: secondID, imageURL: secondURL, imageIsPrimary: secondPrimary, imageCreatedAt: secondCreated},
		{listing: listingRow(2, "Loft")},
	}}

	listings, err := groupRows(rows)

	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, 1, listings[0].ID)
	require.Len(t, listings[0].Images, 2)
	assert.Equal(t, 10, listings[0].Images[0].ID)
	assert.True(t, listings[0].Images[0].IsPrimary)
	assert.Equal(t, 11, listings[0].Images[1].ID)
	assert.Equal(t, 1, listings[0].Images[0].PropertyID)

	assert.Equal(t, 2, listings[1].ID)
	assert.NotNil(t, listings[1].Images)
	assert.Empty(t, listings[1].Images)
}

/*
TestGroupRows_PreservesRowOrder verifies parents come back in first-seen row
order rather than map iteration order.
*/
func TestGroupRows_PreservesRowOrder(t *testing.T) {
	rows := &fakeJoinRows{rows: []joinedRow{
		{listing: listingRow(7, "Casa Norte")},
		{listing: listingRow(2, "Casa Sur")},
		{listing: listingRow(5, "Casa Este")},
	}}

	listings, err := groupRows(rows)

	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, []int{7, 2, 5}, []int{listings[0].ID, listings[1].ID, listings[2].ID})
}
