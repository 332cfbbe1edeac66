// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting page metadata is delivered in the API response
// envelope. Page numbers are 1-indexed.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/nvarela/casavia/internal/platform/apperr"
)

// MaxPerPage is the upper bound for items per page to prevent system abuse.
const MaxPerPage = 100

// Params holds the parsed page and per_page from a request's query string.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Validate rejects out-of-range parameters.
//
// PerPage below 1 is rejected here, before any offset arithmetic or store
// call can divide by it.
func (p Params) Validate() error {
	if p.Page < 1 {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "page", Message: "Must be a positive integer",
		})
	}
	if p.PerPage < 1 {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "per_page", Message: "Must be a positive integer",
		})
	}
	if p.PerPage > MaxPerPage {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: "per_page", Message: "Must not exceed " + strconv.Itoa(MaxPerPage),
		})
	}
	return nil
}

// Offset returns the SQL OFFSET value derived from Page and PerPage.
// Page 1 maps to offset 0.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// FromRequest parses "page" and "per_page" query parameters.
//
// Absent or non-numeric values are a BadRequest-class failure: list
// endpoints require explicit pagination rather than silently clamping to a
// default window.
func FromRequest(request *http.Request) (Params, error) {
	page, err := intParam(request, "page")
	if err != nil {
		return Params{}, err
	}

	perPage, err := intParam(request, "per_page")
	if err != nil {
		return Params{}, err
	}

	params := Params{Page: page, PerPage: perPage}
	if err := params.Validate(); err != nil {
		return Params{}, err
	}

	return params, nil
}

// Record is the result envelope for a paginated query.
type Record[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"total_items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewRecord derives the full result envelope from a page of items and the
// total matching-row count.
//
// TotalPages is ceil(totalItems / perPage); zero matching rows yield zero
// pages. perPage must already have been validated positive.
func NewRecord[T any](items []T, totalItems int64, params Params) Record[T] {
	totalPages := int((totalItems + int64(params.PerPage) - 1) / int64(params.PerPage))

	return Record[T]{
		Items:      items,
		TotalItems: totalItems,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}
}

// intParam parses a single required integer query parameter.
func intParam(request *http.Request, key string) (int, error) {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: key, Message: "This query parameter is required",
		})
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field: key, Message: "Must be an integer",
		})
	}

	return n, nil
}
