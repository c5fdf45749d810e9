// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Kind is the type tag of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	InvalidKind Kind = iota // zero value, never produced by the parser
	NullKind                // the constant null
	BoolKind                // true or false
	NumberKind              // a 64-bit floating-point number
	StringKind              // a quoted string, stored without its quotes
	ArrayKind               // an ordered sequence of values
	ObjectKind              // an ordered sequence of named values
)

var kindStr = [...]string{
	InvalidKind: "invalid",
	NullKind:    "null",
	BoolKind:    "bool",
	NumberKind:  "number",
	StringKind:  "string",
	ArrayKind:   "array",
	ObjectKind:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

// A Value is a single node of a JSON document tree. The kind of a value
// determines which of its accessors are valid; calling an accessor for a
// different kind panics.
//
// Arrays and objects own their children, which are kept in insertion order.
// The children of an object carry a name (their member key). The children of
// an array, and the root of a document, do not.
type Value struct {
	kind  Kind
	name  string
	named bool
	fixed bool // shared constant, never mutated

	bval bool
	nval float64
	text string
	elts []*Value

	pos, end int
}

// Shared constants for the JSON literals. The parser returns these for every
// null, true, and false that is not an object member.
var (
	Null  = &Value{kind: NullKind, fixed: true}
	True  = &Value{kind: BoolKind, bval: true, fixed: true}
	False = &Value{kind: BoolKind, bval: false, fixed: true}
)

// New constructs a new value of the given kind, with a zero payload.
func New(kind Kind) *Value {
	if kind == InvalidKind || int(kind) >= len(kindStr) {
		panic(fmt.Sprintf("invalid value kind %d", kind))
	}
	return &Value{kind: kind}
}

// Bool returns the shared constant for b.
func Bool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// Number constructs a number value.
func Number(f float64) *Value { return &Value{kind: NumberKind, nval: f} }

// String constructs a string value from raw, which is stored and later
// rendered exactly as given. The caller is responsible for any escaping.
func String(raw string) *Value { return &Value{kind: StringKind, text: raw} }

// StringOf constructs a string value whose decoded content is s. Characters
// that cannot appear literally in a JSON string are escaped.
func StringOf(s string) *Value {
	q := Quote(s)
	return String(q[1 : len(q)-1])
}

// Array constructs an array value with the given elements.
func Array(vs ...*Value) *Value {
	a := New(ArrayKind)
	for _, v := range vs {
		a.Append(v)
	}
	return a
}

// Object constructs an object value with the given members. Each member
// should have been given a name, for example by Field.
func Object(ms ...*Value) *Value {
	o := New(ObjectKind)
	for _, m := range ms {
		o.Append(m)
	}
	return o
}

// Field returns v named as an object member with the given key.  If v is a
// shared constant or already has a name, a shallow copy is named instead.
func Field(name string, v *Value) *Value {
	if v.fixed || v.named {
		v = v.clone()
	}
	v.SetName(name)
	return v
}

func (v *Value) clone() *Value {
	cp := *v
	cp.fixed = false
	cp.named = false
	cp.name = ""
	cp.elts = slices.Clone(v.elts)
	return &cp
}

// SetName attaches a member name to v.
func (v *Value) SetName(name string) {
	if v.fixed {
		panic("cannot name a shared constant")
	}
	v.name, v.named = name, true
}

// Append adds child to the end of the children of v, which must be an array
// or an object.
func (v *Value) Append(child *Value) {
	if v.kind != ArrayKind && v.kind != ObjectKind {
		panic(fmt.Sprintf("cannot append to %v", v.kind))
	} else if child == nil {
		panic("cannot append a nil value")
	}
	v.elts = append(v.elts, child)
}

// Kind reports the kind of v.
func (v *Value) Kind() Kind { return v.kind }

// Name reports the member name of v, and whether it has one.
func (v *Value) Name() (string, bool) { return v.name, v.named }

// Span reports the location of v in its source text. The span is zero for
// values not constructed by the parser, including the shared constants.
func (v *Value) Span() Span { return Span{Pos: v.pos, End: v.end} }

// Bool reports the truth value of a bool.
func (v *Value) Bool() bool {
	v.mustBe(BoolKind)
	return v.bval
}

// Float64 reports the value of a number.
func (v *Value) Float64() float64 {
	v.mustBe(NumberKind)
	return v.nval
}

// IsInt reports whether a number has no fractional part.
func (v *Value) IsInt() bool {
	v.mustBe(NumberKind)
	return v.nval == math.Trunc(v.nval) && !math.IsInf(v.nval, 0)
}

// Text reports the raw text of a string, without its quotation marks.
func (v *Value) Text() string {
	v.mustBe(StringKind)
	return v.text
}

// Unquote decodes the escape sequences in the text of a string.  The parser
// stores strings verbatim, so this is the only place decoding occurs.
func (v *Value) Unquote() (string, error) {
	v.mustBe(StringKind)
	return Unquote(`"` + v.text + `"`)
}

// Len reports the number of children of v. It is zero for values that are not
// arrays or objects.
func (v *Value) Len() int { return len(v.elts) }

// Children returns an iterator over the children of v in order.
func (v *Value) Children() iter.Seq[*Value] { return slices.Values(v.elts) }

// Index returns the child of v at offset i. It panics if i is out of range.
func (v *Value) Index(i int) *Value { return v.elts[i] }

// Find returns the first member of an object with the given name, or nil.
func (v *Value) Find(name string) *Value {
	v.mustBe(ObjectKind)
	for _, m := range v.elts {
		if m.name == name {
			return m
		}
	}
	return nil
}

func (v *Value) mustBe(kind Kind) {
	if v.kind != kind {
		panic(fmt.Sprintf("value is %v, not %v", v.kind, kind))
	}
}

// Equal reports whether a and b are structurally equal: they have the same
// kind, names, and payloads, and their children are pairwise equal in order.
// Source locations are not compared.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	} else if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.named != b.named || a.name != b.name {
		return false
	}
	switch a.kind {
	case BoolKind:
		return a.bval == b.bval
	case NumberKind:
		return a.nval == b.nval
	case StringKind:
		return a.text == b.text
	case ArrayKind, ObjectKind:
		return slices.EqualFunc(a.elts, b.elts, Equal)
	}
	return true
}
