// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/internal/platform/ctxutil"
	"github.com/nvarela/casavia/internal/platform/validate"
	"github.com/nvarela/casavia/internal/session"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a base-10 integer.

Returns:
  - int: The parsed value
  - error: apperr.ParseError if the parameter is missing or not numeric
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ParseError("Invalid " + name + " parameter")
	}
	return value, nil
}

/*
Session extracts the authenticated session from the request context.

Returns nil if the request is not authenticated.
*/
func Session(request *http.Request) *session.Session {
	return ctxutil.GetSession(request.Context())
}

/*
RequiredSession ensures the request is authenticated and returns the session.

Returns:
  - *session.Session: The authenticated session
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredSession(request *http.Request) (*session.Session, error) {

	// Get the resolved session
	userSession := ctxutil.GetSession(request.Context())

	// If the request is not authenticated, return an error
	if userSession == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return userSession, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - string: User ID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the resolved session
	userSession, err := RequiredSession(request)

	// If the request is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return userSession.UserID, nil
}
