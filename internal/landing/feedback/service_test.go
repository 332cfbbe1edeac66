// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package feedback_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/landing/feedback"
	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/pkg/filter"
	"github.com/nvarela/casavia/pkg/pagination"
)

type fakeRepository struct {
	record  *feedback.Feedback
	findErr error
	deleted bool
}

func (f *fakeRepository) Create(ctx context.Context, record *feedback.Feedback) error {
	record.ID = 11
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, record *feedback.Feedback) error {
	return f.findErr
}

func (f *fakeRepository) Find(ctx context.Context, conditions *filter.Filter) (*feedback.Feedback, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.record, nil
}

func (f *fakeRepository) FindMany(ctx context.Context, conditions *filter.Filter, params pagination.Params) (pagination.Record[feedback.Feedback], error) {
	return pagination.NewRecord([]feedback.Feedback{*f.record}, 1, params), nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int, tenantID int) error {
	f.deleted = true
	return nil
}

type fakeBucket struct {
	deleteErr   error
	deletedKeys []string
}

func (f *fakeBucket) IssueUploadURL(ctx context.Context, key string) (string, error) {
	return "https://bucket.example.com/" + key, nil
}

func (f *fakeBucket) DeleteObjects(ctx context.Context, keys []string) ([]string, error) {
	f.deletedKeys = keys
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return keys, nil
}

func stringPtr(value string) *string { return &value }

/*
TestDelete_CleansBothImages verifies both photo keys are derived from the
stored URLs and handed to the bucket after the row delete.
*/
func TestDelete_CleansBothImages(t *testing.T) {
	repo := &fakeRepository{record: &feedback.Feedback{
		ID:            5,
		TenantID:      2,
		PropertyImage: stringPtr("https://bucket.example.com/tenant_2/feedback/p"),
		CustomerImage: stringPtr("https://bucket.example.com/tenant_2/feedback/c"),
		CustomerName:  "Ana",
	}}
	storage := &fakeBucket{}
	service := feedback.NewService(repo, storage, slog.Default())

	snapshot, err := service.Delete(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, snapshot.ID)
	assert.True(t, repo.deleted)
	assert.Equal(t, []string{"tenant_2/feedback/p", "tenant_2/feedback/c"}, storage.deletedKeys)
}

/*
TestDelete_CleanupFailureIsSwallowed verifies a bucket failure after the row
delete still returns the snapshot.
*/
func TestDelete_CleanupFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepository{record: &feedback.Feedback{
		ID:            5,
		TenantID:      2,
		CustomerImage: stringPtr("https://bucket.example.com/tenant_2/feedback/c"),
		CustomerName:  "Ana",
	}}
	storage := &fakeBucket{deleteErr: errors.New("bucket unreachable")}
	service := feedback.NewService(repo, storage, slog.Default())

	snapshot, err := service.Delete(context.Background(), 2, 5)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
}

/*
TestCreate_RequiresNameAndReview.
*/
func TestCreate_RequiresNameAndReview(t *testing.T) {
	service := feedback.NewService(&fakeRepository{}, &fakeBucket{}, slog.Default())

	_, err := service.Create(context.Background(), 2, feedback.EditInput{})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
