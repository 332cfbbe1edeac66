// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package property_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/property"
	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

// fakeRepository implements property.Repository with canned behavior.
type fakeRepository struct {
	listing     *property.WithImages
	findErr     error
	deleteErr   error
	createErr   error
	lastCreated *property.Property
	lastImages  []property.Image
	deleted     bool
}

func (f *fakeRepository) Create(ctx context.Context, record *property.Property, images []property.Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	record.ID = 42
	f.lastCreated = record
	f.lastImages = images
	return nil
}

func (f *fakeRepository) ReplaceImages(ctx context.Context, propertyID int, images []property.Image) error {
	f.lastImages = images
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, record *property.Property) error {
	if f.findErr != nil {
		return f.findErr
	}
	return nil
}

func (f *fakeRepository) Find(ctx context.Context, conditions *filter.Filter) (*property.WithImages, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.listing, nil
}

func (f *fakeRepository) FindMany(ctx context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[property.WithImages], error) {
	var items []property.WithImages
	if f.listing != nil {
		items = append(items, *f.listing)
	}
	return pagination.NewRecord(items, int64(len(items)), params), nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int, tenantID int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

// fakeBucket implements property.Bucket.
type fakeBucket struct {
	presignErr   error
	presignCalls atomic.Int64
	deleteErr    error
	deletedKeys  []string
}

func (f *fakeBucket) IssueUploadURL(ctx context.Context, key string) (string, error) {
	f.presignCalls.Add(1)
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://bucket.example.com/" + key, nil
}

func (f *fakeBucket) DeleteObjects(ctx context.Context, keys []string) ([]string, error) {
	f.deletedKeys = keys
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return keys, nil
}

func newTestService(repo *fakeRepository, storage *fakeBucket) *property.Service {
	return property.NewService(repo, storage, slog.Default())
}

func sampleListing() *property.WithImages {
	return &property.WithImages{
		Property: property.Property{
			ID:       7,
			TenantID: 3,
			Title:    "Villa Mar Azul",
			Status:   property.StatusForSale,
		},
		Images: []property.Image{
			{ID: 1, PropertyID: 7, URL: "https://bucket.example.com/tenant_3/images/a", IsPrimary: true},
			{ID: 2, PropertyID: 7, URL: "https://bucket.example.com/tenant_3/images/b"},
		},
	}
}

func validInput() property.CreateInput {
	return property.CreateInput{
		Title:        "Villa Mar Azul",
		PropertyType: property.TypeHouse,
		Status:       property.StatusForSale,
		Price:        250000,
		Currency:     "EUR",
		ImagesURLs:   []string{"https://bucket.example.com/tenant_3/images/a", "https://bucket.example.com/tenant_3/images/b"},
	}
}

/*
TestCreate_FirstImagePrimary verifies the image set is built in payload order
with the first URL flagged primary.
*/
func TestCreate_FirstImagePrimary(t *testing.T) {
	repo := &fakeRepository{listing: sampleListing()}
	service := newTestService(repo, &fakeBucket{})

	_, err := service.Create(context.Background(), 3, validInput())

	require.NoError(t, err)
	require.Len(t, repo.lastImages, 2)
	assert.True(t, repo.lastImages[0].IsPrimary)
	assert.False(t, repo.lastImages[1].IsPrimary)
	assert.Equal(t, 3, repo.lastCreated.TenantID)
	assert.Equal(t, "villa-mar-azul", repo.lastCreated.Slug)
}

/*
TestCreate_ValidationRejected verifies invalid enums never reach the store.
*/
func TestCreate_ValidationRejected(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo, &fakeBucket{})

	input := validInput()
	input.Status = "available" // not a valid status

	_, err := service.Create(context.Background(), 3, input)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Nil(t, repo.lastCreated)
}

/*
TestCreate_StoreFailurePassesThrough verifies an aborted aggregate write
surfaces unchanged; nothing else runs.
*/
func TestCreate_StoreFailurePassesThrough(t *testing.T) {
	repo := &fakeRepository{createErr: apperr.DatabaseError(errors.New("tx aborted"))}
	service := newTestService(repo, &fakeBucket{})

	_, err := service.Create(context.Background(), 3, validInput())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DATABASE_ERROR", ae.Code)
}

/*
TestDelete_ReturnsSnapshotWhenCleanupFails verifies that a bucket cleanup
failure after a successful row delete is swallowed: the caller still gets
the pre-delete snapshot.
*/
func TestDelete_ReturnsSnapshotWhenCleanupFails(t *testing.T) {
	repo := &fakeRepository{listing: sampleListing()}
	storage := &fakeBucket{deleteErr: errors.New("bucket unreachable")}
	service := newTestService(repo, storage)

	snapshot, err := service.Delete(context.Background(), 3, 7)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 7, snapshot.ID)
	assert.True(t, repo.deleted)
	// Keys were derived from the stored URLs and handed to the bucket.
	assert.Equal(t, []string{"tenant_3/images/a", "tenant_3/images/b"}, storage.deletedKeys)
}

/*
TestDelete_ForeignTenantIsNotFound verifies a listing owned by another
tenant resolves to NOT_FOUND, never FORBIDDEN.
*/
func TestDelete_ForeignTenantIsNotFound(t *testing.T) {
	repo := &fakeRepository{findErr: apperr.NotFound("Property")}
	storage := &fakeBucket{}
	service := newTestService(repo, storage)

	_, err := service.Delete(context.Background(), 99, 7)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.False(t, repo.deleted)
	assert.Nil(t, storage.deletedKeys)
}

/*
TestIssueUploadURLs_AllInOrder verifies the batch presign returns one URL per
requested slot, index-aligned.
*/
func TestIssueUploadURLs_AllInOrder(t *testing.T) {
	storage := &fakeBucket{}
	service := newTestService(&fakeRepository{}, storage)

	urls, err := service.IssueUploadURLs(context.Background(), 3, 25)

	require.NoError(t, err)
	require.Len(t, urls, 25)
	for _, uploadURL := range urls {
		assert.Contains(t, uploadURL, "tenant_3/images/")
	}
	assert.Equal(t, int64(25), storage.presignCalls.Load())
}

/*
TestIssueUploadURLs_FirstErrorWins verifies a presign failure fails the whole
batch.
*/
func TestIssueUploadURLs_FirstErrorWins(t *testing.T) {
	storage := &fakeBucket{presignErr: errors.New("credentials expired")}
	service := newTestService(&fakeRepository{}, storage)

	urls, err := service.IssueUploadURLs(context.Background(), 3, 5)

	require.Error(t, err)
	assert.Nil(t, urls)
}

/*
TestIssueUploadURLs_RejectsNonPositiveCount.
*/
func TestIssueUploadURLs_RejectsNonPositiveCount(t *testing.T) {
	service := newTestService(&fakeRepository{}, &fakeBucket{})

	_, err := service.IssueUploadURLs(context.Background(), 3, 0)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
