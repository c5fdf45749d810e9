// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text written once per level of nesting.
	// If empty, a single tab is used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "\t"
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v *Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString renders a pretty-printed representation of v as a string
// with default settings.
func FormatToString(v *Value) string {
	var sb strings.Builder
	Format(&sb, v) // a strings.Builder does not fail
	return sb.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f.
//
// Each element of a non-empty array or object is written on its own line,
// indented one level deeper than its container, and the closing bracket is
// indented to the level of the container. Empty arrays and objects are
// written as [] and {}.
func (f Formatter) Format(w io.Writer, v *Value) error {
	if v == nil {
		return errors.New("format: nil value")
	}
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, 0)
	return bw.Flush()
}

func (f Formatter) formatValue(w *bufio.Writer, v *Value, depth int) {
	switch v.kind {
	case NullKind:
		w.WriteString("null")
	case BoolKind:
		w.WriteString(strconv.FormatBool(v.bval))
	case NumberKind:
		w.WriteString(formatNumber(v.nval))
	case StringKind:
		w.WriteByte('"')
		w.WriteString(v.text)
		w.WriteByte('"')
	case ArrayKind:
		f.formatElements(w, v, depth, '[', ']')
	case ObjectKind:
		f.formatElements(w, v, depth, '{', '}')
	default:
		panic(fmt.Sprintf("unknown value kind %v", v.kind))
	}
}

// formatElements writes the children of an array or object between the given
// brackets.
func (f Formatter) formatElements(w *bufio.Writer, v *Value, depth int, left, right byte) {
	w.WriteByte(left)
	if len(v.elts) == 0 {
		w.WriteByte(right)
		return
	}
	for i, elt := range v.elts {
		w.WriteByte('\n')
		f.writeIndent(w, depth+1)
		if v.kind == ObjectKind {
			w.WriteByte('"')
			w.WriteString(elt.name)
			w.WriteString(`": `)
		}
		f.formatValue(w, elt, depth+1)
		if i+1 < len(v.elts) {
			w.WriteByte(',')
		}
	}
	w.WriteByte('\n')
	f.writeIndent(w, depth)
	w.WriteByte(right)
}

func (f Formatter) writeIndent(w *bufio.Writer, n int) {
	for range n {
		w.WriteString(f.indent())
	}
}

// formatNumber renders an integral value without a decimal point, and any
// other value as a fixed decimal with six fractional digits. Infinities have
// no JSON spelling, so they are clamped to the largest finite magnitude.
func formatNumber(v float64) string {
	if math.IsInf(v, 0) {
		v = math.Copysign(math.MaxFloat64, v)
	}
	if v == math.Trunc(v) {
		if v == 0 {
			return "0" // including negative zero
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
