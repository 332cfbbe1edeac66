// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarela/casavia/pkg/filter"
)

/*
TestFilter_Empty verifies that a filter with zero conditions compiles to a
universally-true predicate with no arguments.
*/
func TestFilter_Empty(t *testing.T) {
	clause, args := filter.New().Compile()

	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)
}

/*
TestFilter_Operators checks the SQL fragment and bind list for each operator.
*/
func TestFilter_Operators(t *testing.T) {
	tests := []struct {
		name       string
		condition  filter.Condition
		wantClause string
		wantArgs   []any
	}{
		{"eq", filter.Eq(filter.Int(7)), "tenant_id = $1", []any{int64(7)}},
		{"ne", filter.Ne(filter.String("sold")), "tenant_id != $1", []any{"sold"}},
		{"gt", filter.Gt(filter.Float(150000)), "tenant_id > $1", []any{150000.0}},
		{"lt", filter.Lt(filter.Int(3)), "tenant_id < $1", []any{int64(3)}},
		{"gte", filter.Gte(filter.Int(2)), "tenant_id >= $1", []any{int64(2)}},
		{"lte", filter.Lte(filter.Bool(true)), "tenant_id <= $1", []any{true}},
		{"like", filter.Like("%beach%"), "tenant_id LIKE $1", []any{"%beach%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := filter.New().Add("tenant_id", tt.condition).Compile()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

/*
TestFilter_Between verifies that both operands bind in the order given,
even when the caller supplies a reversed range. Operand ordering is the
caller's responsibility, not an invariant the compiler enforces.
*/
func TestFilter_Between(t *testing.T) {
	clause, args := filter.New().
		Add("price", filter.Between(filter.Float(100), filter.Float(500))).
		Compile()

	assert.Equal(t, "price BETWEEN $1 AND $2", clause)
	assert.Equal(t, []any{100.0, 500.0}, args)

	// Reversed bounds compile verbatim.
	clause, args = filter.New().
		Add("price", filter.Between(filter.Float(500), filter.Float(100))).
		Compile()

	assert.Equal(t, "price BETWEEN $1 AND $2", clause)
	assert.Equal(t, []any{500.0, 100.0}, args)
}

/*
TestFilter_In covers both the populated and the empty membership list.
*/
func TestFilter_In(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		clause, args := filter.New().
			Add("status", filter.In(filter.String("active"), filter.String("reserved"))).
			Compile()

		assert.Equal(t, "status IN ($1, $2)", clause)
		assert.Equal(t, []any{"active", "reserved"}, args)
	})

	t.Run("empty_is_always_false", func(t *testing.T) {
		clause, args := filter.New().Add("status", filter.In()).Compile()

		assert.Equal(t, "FALSE", clause)
		assert.Empty(t, args)
	})
}

/*
TestFilter_InsertionOrder asserts deterministic placeholder numbering across
multiple conditions, including the multi-operand ones.
*/
func TestFilter_InsertionOrder(t *testing.T) {
	clause, args := filter.New().
		Add("tenant_id", filter.Eq(filter.Int(7))).
		Add("price", filter.Between(filter.Float(100000), filter.Float(250000))).
		Add("status", filter.In(filter.String("active"), filter.String("reserved"))).
		Add("city", filter.Like("San%")).
		Compile()

	assert.Equal(t,
		"tenant_id = $1 AND price BETWEEN $2 AND $3 AND status IN ($4, $5) AND city LIKE $6",
		clause,
	)
	require.Len(t, args, 6)
	assert.Equal(t, []any{int64(7), 100000.0, 250000.0, "active", "reserved", "San%"}, args)
}

/*
TestFilter_LastWriteWins verifies that re-adding a field replaces its
condition while keeping the field's original position.
*/
func TestFilter_LastWriteWins(t *testing.T) {
	f := filter.New().
		Add("tenant_id", filter.Eq(filter.Int(1))).
		Add("status", filter.Eq(filter.String("draft"))).
		Add("tenant_id", filter.Eq(filter.Int(9)))

	assert.Equal(t, 2, f.Len())

	clause, args := f.Compile()
	assert.Equal(t, "tenant_id = $1 AND status = $2", clause)
	assert.Equal(t, []any{int64(9), "draft"}, args)
}

/*
TestFilter_CompileFrom verifies placeholder numbering when the query already
carries leading binds of its own.
*/
func TestFilter_CompileFrom(t *testing.T) {
	clause, args := filter.New().
		Add("tenant_id", filter.Eq(filter.Int(7))).
		Add("bedrooms", filter.Gte(filter.Int(2))).
		CompileFrom(2)

	assert.Equal(t, "tenant_id = $3 AND bedrooms >= $4", clause)
	assert.Equal(t, []any{int64(7), int64(2)}, args)
}

/*
TestFilter_IntWidening checks that narrower integer kinds widen to int64.
*/
func TestFilter_IntWidening(t *testing.T) {
	_, args := filter.New().Add("n", filter.Eq(filter.Int(int16(12)))).Compile()
	assert.Equal(t, []any{int64(12)}, args)

	_, args = filter.New().Add("n", filter.Eq(filter.Int(uint32(42)))).Compile()
	assert.Equal(t, []any{int64(42)}, args)
}
