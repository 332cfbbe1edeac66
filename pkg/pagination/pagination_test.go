// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/internal/platform/apperr"
	"github.com/nvarela/casavia/pkg/pagination"
)

/*
TestParams_Offset checks the page-to-offset arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantOffset int
	}{
		{"first_page", 1, 20, 0},
		{"third_page_of_ten", 3, 10, 20},
		{"second_page_of_ten", 2, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, PerPage: tt.perPage}
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

/*
TestParams_Validate ensures per_page = 0 is rejected before any offset
computation can use it.
*/
func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  pagination.Params
		wantErr bool
	}{
		{"valid", pagination.Params{Page: 1, PerPage: 20}, false},
		{"zero_per_page", pagination.Params{Page: 1, PerPage: 0}, true},
		{"zero_page", pagination.Params{Page: 0, PerPage: 20}, true},
		{"negative_page", pagination.Params{Page: -1, PerPage: 20}, true},
		{"excessive_per_page", pagination.Params{Page: 1, PerPage: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestNewRecord verifies the ceiling division for total_pages.
*/
func TestNewRecord(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		perPage    int
		wantPages  int
	}{
		{"exact_division", 100, 20, 5},
		{"remainder_rounds_up", 95, 20, 5},
		{"single_partial_page", 3, 20, 1},
		{"no_items_no_pages", 0, 20, 0},
		{"twenty_five_by_ten", 25, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := pagination.NewRecord([]string{}, tt.totalItems, pagination.Params{Page: 1, PerPage: tt.perPage})

			assert.Equal(t, tt.wantPages, record.TotalPages)
			assert.Equal(t, tt.totalItems, record.TotalItems)
		})
	}
}

/*
TestFromRequest covers required-parameter parsing from the query string.
*/
func TestFromRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?page=2&per_page=10", nil)

		params, err := pagination.FromRequest(request)
		require.NoError(t, err)
		assert.Equal(t, pagination.Params{Page: 2, PerPage: 10}, params)
	})

	t.Run("missing_page", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?per_page=10", nil)

		_, err := pagination.FromRequest(request)
		require.Error(t, err)
	})

	t.Run("non_numeric_per_page", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?page=1&per_page=lots", nil)

		_, err := pagination.FromRequest(request)
		require.Error(t, err)
	})

	t.Run("zero_per_page", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/?page=1&per_page=0", nil)

		_, err := pagination.FromRequest(request)
		require.Error(t, err)
	})
}
