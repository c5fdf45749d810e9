// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is wrapped by a SyntaxError reported because the input ended
// before a required token was found.
var ErrEndOfInput = errors.New("unexpected end of input")

// A cursor reads bytes from a fixed input text. The offset advances
// monotonically; there is no backtracking, and one byte of lookahead (peek) is
// sufficient for every grammar decision.
type cursor struct {
	text []byte
	pos  int

	// Apparent line and column offsets (0-based)
	line, col int
}

func (c *cursor) atEOF() bool { return c.pos >= len(c.text) }

// peek returns the byte at the cursor without consuming it.
// It fails with ErrEndOfInput if no input remains.
func (c *cursor) peek() byte {
	if c.atEOF() {
		c.fail(ErrEndOfInput, "")
	}
	return c.text[c.pos]
}

// peekIs reports whether the byte at the cursor satisfies f. Unlike peek, it
// reports false rather than failing when no input remains.
func (c *cursor) peekIs(f func(byte) bool) bool {
	return !c.atEOF() && f(c.text[c.pos])
}

// advance consumes and returns the byte at the cursor.
// It fails with ErrEndOfInput if no input remains.
func (c *cursor) advance() byte {
	ch := c.peek()
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return ch
}

// skipWhitespace consumes a maximal run of whitespace.
func (c *cursor) skipWhitespace() {
	for c.peekIs(isSpace) {
		c.advance()
	}
}

// expectChar consumes the next byte, which must be want.
func (c *cursor) expectChar(want byte) {
	if c.atEOF() {
		c.fail(ErrEndOfInput, fmt.Sprintf("expected %q", want))
	} else if ch := c.peek(); ch != want {
		c.failf("expected %q", want)
	}
	c.advance()
}

// readWhile consumes bytes matching f until EOF or a non-matching byte, and
// returns the number of bytes consumed.
func (c *cursor) readWhile(f func(byte) bool) int {
	var nr int
	for c.peekIs(f) {
		c.advance()
		nr++
	}
	return nr
}

func (c *cursor) location() LineCol { return LineCol{Line: c.line + 1, Column: c.col} }

// fail aborts the parse with a syntax error at the current offset.
func (c *cursor) fail(err error, msg string) {
	serr := &SyntaxError{
		Offset:   c.pos,
		Location: c.location(),
		Message:  msg,
		err:      err,
	}
	if !c.atEOF() {
		serr.Char = c.text[c.pos]
	}
	panic(serr)
}

func (c *cursor) failf(msg string, args ...any) { c.fail(nil, fmt.Sprintf(msg, args...)) }

// isSpace reports whether ch is whitespace: space, tab, newline, vertical tab,
// form feed, or carriage return.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

func isDigit(ch byte) bool   { return '0' <= ch && ch <= '9' }
func isAlpha(ch byte) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isExpMark(ch byte) bool { return ch == 'e' || ch == 'E' }
func isExpSign(ch byte) bool { return ch == '+' || ch == '-' }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input, 0-based
	Location LineCol // line and column of the offending input
	Char     byte    // the offending byte, or 0 at end of input
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	var msg string
	if s.Char != 0 {
		msg = fmt.Sprintf("invalid char %q", s.Char)
	}
	for _, part := range []string{s.Message, s.errText()} {
		if part == "" {
			continue
		} else if msg != "" {
			msg += ": "
		}
		msg += part
	}
	return fmt.Sprintf("at %s: %s", s.Location, msg)
}

func (s *SyntaxError) errText() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
