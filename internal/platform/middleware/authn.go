// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/ctxutil"
	"github.com/nvarela/casavia/internal/platform/respond"
	"github.com/nvarela/casavia/internal/session"
)

// SessionGate defines the interface needed to resolve tokens in middleware.
//
// # Why an interface?
//
// Defining SessionGate here decouples the middleware from the `session`
// service implementation, allowing us to easily inject fakes during unit
// testing.
type SessionGate interface {
	Validate(ctx context.Context, token string) (*session.Session, error)
}

// Authenticate resolves the opaque session token from the Authorization header.
//
// # Flow
//  1. Check for the 'Authorization' header; a 'Bearer ' prefix is tolerated
//     but not required, clients may send the bare token.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve the token through the session gate. Unknown tokens
//     abort with 401 UNAUTHORIZED; lapsed ones with 401 SESSION_EXPIRED.
//  4. Inject the [*session.Session] into the request context for downstream use.
func Authenticate(gate SessionGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Extraction ───────────────────────────────────────────
			token := authHeader
			if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
				token = strings.TrimSpace(authHeader[7:])
			}

			// ── 3. Session Resolution ─────────────────────────────────────────
			userSession, err := gate.Validate(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSession(request.Context(), userSession)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that did not present a valid session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a [*session.Session] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		userSession := ctxutil.GetSession(request.Context())
		if userSession == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
