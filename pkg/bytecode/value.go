/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "fmt"

// A ValueKind identifies which of the closed set of shapes a Value holds.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueBool
	ValueNumber
	ValueObject
)

// An ObjString is an interned string object. Two ObjStrings with equal
// contents may or may not be the same pointer -- see StringInterner -- but
// values holding the same *ObjString are trivially identity-equal.
type ObjString struct {
	Chars string
}

// Value is a Romualdo language value: Nil, Bool, Number, or Object (for now
// always an *ObjString). It's a manually tagged union rather than an
// interface{}, so constructing the scalar kinds never allocates.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	obj  *ObjString
}

// NewValueNil returns the Nil value.
func NewValueNil() Value {
	return Value{kind: ValueNil}
}

// NewValueBool returns a Bool value wrapping v.
func NewValueBool(v bool) Value {
	return Value{kind: ValueBool, b: v}
}

// NewValueNumber returns a Number value wrapping v.
func NewValueNumber(v float64) Value {
	return Value{kind: ValueNumber, num: v}
}

// NewValueString returns an Object value wrapping a fresh *ObjString for s.
// s is not interned by this call; see StringInterner.
func NewValueString(s string) Value {
	return Value{kind: ValueObject, obj: &ObjString{Chars: s}}
}

// NewValueObjString wraps an already-constructed *ObjString (typically one
// returned by StringInterner.Intern) as a Value.
func NewValueObjString(s *ObjString) Value {
	return Value{kind: ValueObject, obj: s}
}

// Kind returns which shape this value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNil() bool    { return v.kind == ValueNil }
func (v Value) IsBool() bool   { return v.kind == ValueBool }
func (v Value) IsNumber() bool { return v.kind == ValueNumber }
func (v Value) IsObject() bool { return v.kind == ValueObject }

// AsBool returns the wrapped bool. Only meaningful when IsBool().
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the wrapped float64. Only meaningful when IsNumber().
func (v Value) AsNumber() float64 { return v.num }

// AsObjString returns the wrapped *ObjString. Only meaningful when
// IsObject().
func (v Value) AsObjString() *ObjString { return v.obj }

// Equal implements the constant-pool notion of value equality: Nil equals
// Nil, Bools and Numbers compare by value, and Objects (strings) compare by
// content -- the pool is free to deduplicate equal strings but callers must
// not rely on it having done so.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ValueNil:
		return true
	case ValueBool:
		return a.b == b.b
	case ValueNumber:
		return a.num == b.num
	case ValueObject:
		return a.obj.Chars == b.obj.Chars
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case ValueNil:
		return "nil"
	case ValueBool:
		return fmt.Sprintf("%t", v.b)
	case ValueNumber:
		return fmt.Sprintf("%g", v.num)
	case ValueObject:
		return fmt.Sprintf("%q", v.obj.Chars)
	default:
		return "<invalid value>"
	}
}
