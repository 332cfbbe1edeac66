// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

// Package session implements the request-time session gate.
//
// # Architecture
//
// Every authenticated route resolves its caller through this package before
// any business logic runs: the opaque token from the Authorization header is
// looked up in the session store and its expiry enforced. The gate is purely
// a reader — session creation, rotation, and cleanup belong to the external
// authentication collaborator.
package session

import (
	"context"

	"github.com/nvarela/casavia/internal/platform/apperr"
)

// Service validates inbound opaque session tokens.
type Service struct {
	repo Repository
}

// NewService constructs the session gate with its storage dependency.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Validate resolves an opaque token to an unexpired session.
//
// # States
//
//   - empty token            → UNAUTHORIZED
//   - no session row found   → UNAUTHORIZED (adapter NotFound is masked so
//     the caller cannot distinguish a foreign token from a missing one)
//   - row found but expired  → SESSION_EXPIRED (401)
//   - row found, not expired → the session
//
// Expiry is checked twice on purpose: once inside the adapter when the row
// is fetched and once more here after the fetch returns. Both checks use
// [Session.IsExpired] with the wall clock at call time, so a session that
// lapses between the two reads still resolves to SESSION_EXPIRED rather
// than flapping between outcomes.
func (service *Service) Validate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Missing session token")
	}

	userSession, err := service.repo.Get(ctx, token)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeSessionExpired) {
			return nil, err
		}
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Invalid session token")
		}
		return nil, err
	}

	if userSession.IsExpired() {
		return nil, apperr.SessionExpired()
	}

	return userSession, nil
}
