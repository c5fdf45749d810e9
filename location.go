// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// IsZero reports whether s is the zero span, as carried by values that were
// not produced by the parser.
func (s Span) IsZero() bool { return s.Pos == 0 && s.End == 0 }

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
