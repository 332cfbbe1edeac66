// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

package filter

// operator enumerates the predicate kinds a [Condition] can express.
type operator uint8

const (
	opEq operator = iota
	opNe
	opGt
	opLt
	opGte
	opLte
	opBetween
	opIn
	opLike
)

// Condition is a single predicate applied to one field.
//
// Every condition carries exactly the operands its operator requires.
// Conditions are built via the constructor functions below and are immutable
// afterwards.
type Condition struct {
	op     operator
	values []Value
	// pattern is only set for LIKE; it is bound as a parameter at compile
	// time, never concatenated into the query text.
	pattern string
}

// Eq matches rows where the field equals value.
func Eq(value Value) Condition { return Condition{op: opEq, values: []Value{value}} }

// Ne matches rows where the field does not equal value.
func Ne(value Value) Condition { return Condition{op: opNe, values: []Value{value}} }

// Gt matches rows where the field is strictly greater than value.
func Gt(value Value) Condition { return Condition{op: opGt, values: []Value{value}} }

// Lt matches rows where the field is strictly less than value.
func Lt(value Value) Condition { return Condition{op: opLt, values: []Value{value}} }

// Gte matches rows where the field is greater than or equal to value.
func Gte(value Value) Condition { return Condition{op: opGte, values: []Value{value}} }

// Lte matches rows where the field is less than or equal to value.
func Lte(value Value) Condition { return Condition{op: opLte, values: []Value{value}} }

// Between matches rows where the field lies in [low, high].
//
// The operand order is preserved verbatim: callers are responsible for
// low <= high. A reversed range compiles fine and simply matches nothing,
// which mirrors SQL BETWEEN semantics.
func Between(low, high Value) Condition {
	return Condition{op: opBetween, values: []Value{low, high}}
}

// In matches rows where the field equals any of the given values.
//
// With zero values it compiles to an always-false predicate: a field can
// never equal a member of the empty set.
func In(values ...Value) Condition { return Condition{op: opIn, values: values} }

// Like matches rows where the field matches the raw SQL LIKE pattern.
// The pattern is bound as a query parameter.
func Like(pattern string) Condition { return Condition{op: opLike, pattern: pattern} }
