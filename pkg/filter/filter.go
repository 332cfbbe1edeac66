// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package filter

import (
	"fmt"
	"strings"
)

// Filter maps field names to predicate conditions.
//
// # Determinism
//
// Conditions compile in insertion order, so generated placeholder numbering
// is reproducible across runs and directly assertable in tests. Re-adding a
// field replaces its condition (last write wins) but keeps the field's
// original position.
//
// # Concurrency
//
// A Filter is not safe for concurrent mutation. Build it, then hand it to a
// repository.
type Filter struct {
	order      []string
	conditions map[string]Condition
}

// New returns an empty Filter.
func New() *Filter {
	return &Filter{conditions: make(map[string]Condition)}
}

// Add sets the condition for a field and returns the filter for chaining.
func (f *Filter) Add(field string, condition Condition) *Filter {
	if _, exists := f.conditions[field]; !exists {
		f.order = append(f.order, field)
	}
	f.conditions[field] = condition
	return f
}

// Len reports the number of field conditions currently held.
func (f *Filter) Len() int {
	return len(f.order)
}

// Compile renders the filter into a WHERE-clause body and its ordered
// argument list.
//
// Placeholders are numbered $1..$n starting at startIndex+1; args holds the
// bound values in the exact order the placeholders were emitted. Fragments
// are joined with AND. An empty filter compiles to the literal predicate
// TRUE so callers can always interpolate the result into "WHERE %s".
func (f *Filter) Compile() (clause string, args []any) {
	return f.CompileFrom(0)
}

// CompileFrom behaves like [Filter.Compile] but starts placeholder numbering
// after startIndex already-bound parameters. Adapters use this when the
// query carries leading binds of its own.
func (f *Filter) CompileFrom(startIndex int) (clause string, args []any) {
	if len(f.order) == 0 {
		return "TRUE", nil
	}

	fragments := make([]string, 0, len(f.order))
	next := func() int { return startIndex + len(args) + 1 }

	for _, field := range f.order {
		condition := f.conditions[field]

		switch condition.op {
		case opEq:
			fragments = append(fragments, fmt.Sprintf("%s = $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opNe:
			fragments = append(fragments, fmt.Sprintf("%s != $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opGt:
			fragments = append(fragments, fmt.Sprintf("%s > $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opLt:
			fragments = append(fragments, fmt.Sprintf("%s < $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opGte:
			fragments = append(fragments, fmt.Sprintf("%s >= $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opLte:
			fragments = append(fragments, fmt.Sprintf("%s <= $%d", field, next()))
			args = append(args, condition.values[0].arg())
		case opBetween:
			fragments = append(fragments, fmt.Sprintf("%s BETWEEN $%d AND $%d", field, next(), next()+1))
			args = append(args, condition.values[0].arg(), condition.values[1].arg())
		case opIn:
			// An empty IN list can never match; emit a literal FALSE
			// instead of invalid "IN ()" syntax.
			if len(condition.values) == 0 {
				fragments = append(fragments, "FALSE")
				continue
			}
			placeholders := make([]string, len(condition.values))
			for i, v := range condition.values {
				placeholders[i] = fmt.Sprintf("$%d", next())
				args = append(args, v.arg())
			}
			fragments = append(fragments, fmt.Sprintf("%s IN (%s)", field, strings.Join(placeholders, ", ")))
		case opLike:
			fragments = append(fragments, fmt.Sprintf("%s LIKE $%d", field, next()))
			args = append(args, condition.pattern)
		}
	}

	return strings.Join(fragments, " AND "), args
}
