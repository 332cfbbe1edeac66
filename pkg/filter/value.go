// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package filter provides the dynamic query-predicate builder shared by every
Casavia repository adapter.

It lets services describe WHERE clauses as data (field → condition) and
compiles them into a parameterized SQL fragment plus an ordered argument
list. Field names always come from the code-controlled column definitions in
internal/platform/database/schema; values are always bound as positional
parameters and never interpolated into the query text.
*/
package filter

// kind discriminates the scalar variants a [Value] can hold.
type kind uint8

const (
	kindInt kind = iota
	kindFloat
	kindString
	kindBool
)

// Value is a scalar operand usable in a predicate.
//
// It is a closed tagged union over the four kinds a column filter can bind:
// 64-bit signed integers, 64-bit floats, strings, and booleans. Narrower
// integer types widen to int64 at construction. A Value is immutable once
// constructed.
type Value struct {
	kind kind

	i int64
	f float64
	s string
	b bool
}

// Int builds an integer Value. Any signed or unsigned integer type narrower
// than 64 bits widens losslessly.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32](v T) Value {
	return Value{kind: kindInt, i: int64(v)}
}

// Float builds a 64-bit float Value.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// String builds a string Value.
func String(v string) Value {
	return Value{kind: kindString, s: v}
}

// Bool builds a boolean Value.
func Bool(v bool) Value {
	return Value{kind: kindBool, b: v}
}

// arg returns the native Go value to hand to the database driver.
func (v Value) arg() any {
	switch v.kind {
	case kindInt:
		return v.i
	case kindFloat:
		return v.f
	case kindString:
		return v.s
	default:
		return v.b
	}
}
