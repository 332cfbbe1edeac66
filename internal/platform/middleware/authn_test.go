// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/ctxutil"
	"github.com/nvarela/casavia/internal/platform/middleware"
	"github.com/nvarela/casavia/internal/session"
)

// fakeGate resolves a single known token; everything else is unauthorized.
type fakeGate struct {
	token   string
	session *session.Session
	err     error
}

func (g *fakeGate) Validate(ctx context.Context, token string) (*session.Session, error) {
	if g.err != nil {
		return nil, g.err
	}
	if token != g.token {
		return nil, apperr.Unauthorized("Invalid session")
	}
	return g.session, nil
}

func liveSession() *session.Session {
	return &session.Session{
		ID:        "tok-abc",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// capture records whether the next handler ran and what session it saw.
func capture(ran *bool, seen **session.Session) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*ran = true
		*seen = ctxutil.GetSession(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, body *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body.Body.Bytes(), &envelope))
	return envelope.Code
}

func TestAuthenticate_TokenStates(t *testing.T) {
	gate := &fakeGate{token: "tok-abc", session: liveSession()}

	tests := []struct {
		name       string
		header     string
		gateErr    error
		wantStatus int
		wantCode   string
		wantNext   bool
		wantUserID string
	}{
		{
			name:       "no header passes through anonymous",
			header:     "",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "bare token accepted",
			header:     "tok-abc",
			wantStatus: http.StatusOK,
			wantNext:   true,
			wantUserID: "user-1",
		},
		{
			name:       "bearer prefix stripped case-insensitively",
			header:     "BEARER tok-abc",
			wantStatus: http.StatusOK,
			wantNext:   true,
			wantUserID: "user-1",
		},
		{
			name:       "unknown token rejected",
			header:     "Bearer tok-wrong",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "expired session surfaces SESSION_EXPIRED",
			header:     "Bearer tok-abc",
			gateErr:    apperr.SessionExpired(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "SESSION_EXPIRED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gate.err = tc.gateErr

			ran := false
			var seen *session.Session
			handler := middleware.Authenticate(gate)(capture(&ran, &seen))

			request := httptest.NewRequest(http.MethodGet, "/api/v1/tenant/me", nil)
			if tc.header != "" {
				request.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantNext, ran)
			if tc.wantCode != "" {
				assert.Equal(t, tc.wantCode, errorCode(t, recorder))
			}
			if tc.wantUserID != "" {
				require.NotNil(t, seen)
				assert.Equal(t, tc.wantUserID, seen.UserID)
			}
		})
	}
}

func TestRequireSession_BlocksAnonymous(t *testing.T) {
	ran := false
	var seen *session.Session
	handler := middleware.RequireSession(capture(&ran, &seen))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/properties", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, recorder))
	assert.False(t, ran)
}

func TestRequireSession_PassesAuthenticated(t *testing.T) {
	ran := false
	var seen *session.Session
	handler := middleware.RequireSession(capture(&ran, &seen))

	request := httptest.NewRequest(http.MethodPost, "/api/v1/properties", nil)
	request = request.WithContext(ctxutil.WithSession(request.Context(), liveSession()))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, ran)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.UserID)
}
