// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/session"
)

// fakeRepository returns a canned session or error.
type fakeRepository struct {
	session *session.Session
	err     error
}

func (f *fakeRepository) Get(ctx context.Context, token string) (*session.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

/*
TestValidate_MissingToken verifies an empty token never reaches the store.
*/
func TestValidate_MissingToken(t *testing.T) {
	gate := session.NewService(&fakeRepository{})

	_, err := gate.Validate(context.Background(), "")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeUnauthorized, ae.Code)
}

/*
TestValidate_UnknownToken verifies the store's NotFound is surfaced to the
caller as Unauthorized, hiding whether the token ever existed.
*/
func TestValidate_UnknownToken(t *testing.T) {
	gate := session.NewService(&fakeRepository{err: apperr.NotFound("Session")})

	_, err := gate.Validate(context.Background(), "no-such-token")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeUnauthorized, ae.Code)
}

/*
TestValidate_ExpiredSession verifies that a session row the lookup DID
return still resolves to SESSION_EXPIRED when expires_at is in the past.
This exercises the service-level re-check, independent of the adapter's.
*/
func TestValidate_ExpiredSession(t *testing.T) {
	gate := session.NewService(&fakeRepository{
		session: &session.Session{
			ID:        "tok-1",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(-1 * time.Minute),
		},
	})

	_, err := gate.Validate(context.Background(), "tok-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeSessionExpired, ae.Code)
	assert.Equal(t, 401, ae.HTTPStatus)
}

/*
TestValidate_ActiveSession verifies the happy path returns the session.
*/
func TestValidate_ActiveSession(t *testing.T) {
	want := &session.Session{
		ID:        "tok-2",
		UserID:    "user-9",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	gate := session.NewService(&fakeRepository{session: want})

	got, err := gate.Validate(context.Background(), "tok-2")

	require.NoError(t, err)
	assert.Equal(t, "user-9", got.UserID)
	assert.False(t, got.IsExpired())
}

/*
TestValidate_StoreFailure verifies connectivity errors pass through without
being rewritten into an auth failure.
*/
func TestValidate_StoreFailure(t *testing.T) {
	gate := session.NewService(&fakeRepository{err: apperr.DatabaseError(assert.AnError)})

	_, err := gate.Validate(context.Background(), "tok-3")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeDatabaseError, ae.Code)
}

/*
TestValidate_AdapterExpiredPassesThrough verifies a SESSION_EXPIRED raised by
the store adapter itself (its fetch-time expiry check) is surfaced unchanged
rather than being masked into a generic Unauthorized.
*/
func TestValidate_AdapterExpiredPassesThrough(t *testing.T) {
	gate := session.NewService(&fakeRepository{err: apperr.SessionExpired()})

	_, err := gate.Validate(context.Background(), "tok-4")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeSessionExpired, ae.Code)
}
