// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package stats_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/stats"
)

type fakeRepository struct {
	created    []*stats.Visit
	perListing []stats.PropertyCount
	landing    int64
	referrers  []stats.ReferrerCount
}

func (f *fakeRepository) Create(ctx context.Context, visit *stats.Visit) error {
	f.created = append(f.created, visit)
	return nil
}

func (f *fakeRepository) PropertyVisits(ctx context.Context, tenantID int) ([]stats.PropertyCount, error) {
	return f.perListing, nil
}

func (f *fakeRepository) LandingVisits(ctx context.Context, tenantID int) (int64, error) {
	return f.landing, nil
}

func (f *fakeRepository) Referrers(ctx context.Context, tenantID int, eventType stats.EventType) ([]stats.ReferrerCount, error) {
	return f.referrers, nil
}

type fakeDeduper struct {
	seen map[string]bool
	err  error
}

func (f *fakeDeduper) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func intPtr(value int) *int { return &value }

func validEvent() stats.EventInput {
	return stats.EventInput{
		TenantID:   3,
		EventType:  stats.EventPropertyVisited,
		PropertyID: intPtr(7),
	}
}

/*
TestRecordEvent_DuplicateDropped verifies a repeat visit from the same client
inside the window is not stored, while the first one is.
*/
func TestRecordEvent_DuplicateDropped(t *testing.T) {
	repo := &fakeRepository{}
	service := stats.NewService(repo, &fakeDeduper{}, slog.Default())

	require.NoError(t, service.RecordEvent(context.Background(), validEvent(), "203.0.113.9", "Mozilla/5.0"))
	require.NoError(t, service.RecordEvent(context.Background(), validEvent(), "203.0.113.9", "Mozilla/5.0"))

	assert.Len(t, repo.created, 1)
}

/*
TestRecordEvent_DistinctClientsBothStored verifies the de-dup key includes
the client IP.
*/
func TestRecordEvent_DistinctClientsBothStored(t *testing.T) {
	repo := &fakeRepository{}
	service := stats.NewService(repo, &fakeDeduper{}, slog.Default())

	require.NoError(t, service.RecordEvent(context.Background(), validEvent(), "203.0.113.9", ""))
	require.NoError(t, service.RecordEvent(context.Background(), validEvent(), "203.0.113.10", ""))

	assert.Len(t, repo.created, 2)
}

/*
TestRecordEvent_DedupOutageStoresAnyway verifies an unavailable de-dup
backend degrades to storing the event rather than dropping it.
*/
func TestRecordEvent_DedupOutageStoresAnyway(t *testing.T) {
	repo := &fakeRepository{}
	service := stats.NewService(repo, &fakeDeduper{err: errors.New("redis down")}, slog.Default())

	require.NoError(t, service.RecordEvent(context.Background(), validEvent(), "203.0.113.9", ""))

	assert.Len(t, repo.created, 1)
}

/*
TestRecordEvent_RejectsUnknownType.
*/
func TestRecordEvent_RejectsUnknownType(t *testing.T) {
	repo := &fakeRepository{}
	service := stats.NewService(repo, &fakeDeduper{}, slog.Default())

	input := validEvent()
	input.EventType = "page_scrolled"

	err := service.RecordEvent(context.Background(), input, "203.0.113.9", "")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Empty(t, repo.created)
}

/*
TestRecordEvent_PropertyVisitNeedsListing verifies property events without a
listing id are rejected.
*/
func TestRecordEvent_PropertyVisitNeedsListing(t *testing.T) {
	service := stats.NewService(&fakeRepository{}, &fakeDeduper{}, slog.Default())

	input := validEvent()
	input.PropertyID = nil

	err := service.RecordEvent(context.Background(), input, "203.0.113.9", "")

	require.Error(t, err)
}

/*
TestPropertyDashboard_SumsListingCounts.
*/
func TestPropertyDashboard_SumsListingCounts(t *testing.T) {
	repo := &fakeRepository{
		perListing: []stats.PropertyCount{
			{PropertyID: 1, Visits: 12},
			{PropertyID: 2, Visits: 3},
		},
		referrers: []stats.ReferrerCount{{Referrer: "google.com", Visits: 9}},
	}
	service := stats.NewService(repo, &fakeDeduper{}, slog.Default())

	dashboard, err := service.PropertyDashboard(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(15), dashboard.TotalVisits)
	assert.Len(t, dashboard.Properties, 2)
	assert.Len(t, dashboard.Referrers, 1)
}
