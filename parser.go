// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit for arrays and objects used when
// ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = 10000

// maxLiteral is the longest bare word the parser will read before giving up.
const maxLiteral = 15

var (
	nullWord  = mem.S("null")
	trueWord  = mem.S("true")
	falseWord = mem.S("false")
)

// ParseOptions are settings for the parser. A zero value is ready for use and
// accepts the default grammar: no exponents in numbers, and no escaped quotes
// inside strings.
type ParseOptions struct {
	// AllowExponent permits an exponent ([eE][+-]?digits) after a number.
	AllowExponent bool

	// AllowEscapes makes a backslash in a string or member name take the byte
	// following it literally, so that \" does not end the string. The text is
	// still stored undecoded; see Value.Unquote.
	AllowEscapes bool

	// MaxDepth bounds the nesting of arrays and objects. If zero,
	// DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses text as a JSON document using the default options.
func Parse(text []byte) (*Value, error) { return ParseOptions{}.Parse(text) }

// ParseString parses s as a JSON document using the default options.
func ParseString(s string) (*Value, error) { return ParseOptions{}.Parse([]byte(s)) }

// ParseFile reads the complete contents of the named file and parses them as
// a JSON document using the default options.
func ParseFile(path string) (*Value, error) { return ParseOptions{}.ParseFile(path) }

// ParseFile reads the complete contents of the named file and parses them as
// a JSON document using the settings from o.
func (o ParseOptions) ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := o.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Parse parses text as a JSON document using the settings from o. The root of
// the document must be an object or an array. Any input following the root
// value is ignored.
//
// In case of error, Parse returns a nil value and an error of concrete type
// [*SyntaxError].
func (o ParseOptions) Parse(text []byte) (_ *Value, err error) {
	p := &parser{
		cursor: cursor{text: text},
		opts:   o,
	}
	if p.opts.MaxDepth <= 0 {
		p.opts.MaxDepth = DefaultMaxDepth
	}
	defer func() {
		if x := recover(); x != nil {
			serr, ok := x.(*SyntaxError)
			if !ok {
				panic(x)
			}
			err = serr
		}
	}()
	return p.parseDocument(), nil
}

// A parser is a recursive-descent parser for the JSON grammar.  Each parse
// method consumes one production; a syntax error panics with a *SyntaxError,
// which Parse recovers.
type parser struct {
	cursor
	opts  ParseOptions
	depth int
}

func (p *parser) parseDocument() *Value {
	p.skipWhitespace()
	switch p.peek() {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	default:
		p.failf("document must be an object or array")
		panic("unreachable")
	}
}

// parseValue consumes a single value of any kind.
func (p *parser) parseValue() *Value {
	switch ch := p.peek(); {
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		return p.parseString()
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	case ch == 'n' || ch == 't' || ch == 'f':
		return p.parseLiteralWord()
	default:
		p.failf("expected a value")
		panic("unreachable")
	}
}

// parseLiteralWord consumes one of the words null, true, or false and returns
// the corresponding shared constant.
func (p *parser) parseLiteralWord() *Value {
	start, loc := p.pos, p.location()
	for p.peekIs(isAlpha) {
		if p.pos-start == maxLiteral {
			p.failf("literal too long")
		}
		p.advance()
	}
	word := mem.B(p.text[start:p.pos])
	switch {
	case word.Equal(nullWord):
		return Null
	case word.Equal(trueWord):
		return True
	case word.Equal(falseWord):
		return False
	}
	msg := fmt.Sprintf("unknown literal %q", word.StringCopy())
	if p.atEOF() {
		p.fail(ErrEndOfInput, msg)
	}
	panic(&SyntaxError{
		Offset:   start,
		Location: loc,
		Char:     p.text[start],
		Message:  msg,
	})
}

// parseNumber consumes an optional sign, an integer part, and an optional
// fraction. If exponents are enabled, an exponent may follow.
func (p *parser) parseNumber() *Value {
	start, loc := p.pos, p.location()
	if p.peek() == '-' {
		p.advance()
	}
	p.readWhile(isDigit)
	if p.peekIs(func(ch byte) bool { return ch == '.' }) {
		p.advance()
		p.readWhile(isDigit)
	}
	if p.opts.AllowExponent && p.peekIs(isExpMark) {
		p.advance()
		if p.peekIs(isExpSign) {
			p.advance()
		}
		if p.readWhile(isDigit) == 0 {
			if p.atEOF() {
				p.fail(ErrEndOfInput, "missing exponent digits")
			}
			p.failf("missing exponent digits")
		}
	}

	lexeme := string(p.text[start:p.pos])
	// A well-formed lexeme out of range yields ±Inf (or 0), as atof would.
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		msg := fmt.Sprintf("invalid number %q", lexeme)
		if p.atEOF() {
			p.fail(ErrEndOfInput, msg)
		}
		panic(&SyntaxError{
			Offset:   start,
			Location: loc,
			Char:     p.text[start],
			Message:  msg,
		})
	}
	return &Value{kind: NumberKind, nval: f, pos: start, end: p.pos}
}

// parseString consumes a quoted string. The text between the quotes is kept
// verbatim.
func (p *parser) parseString() *Value {
	start := p.pos
	text := p.scanQuoted()
	return &Value{kind: StringKind, text: text, pos: start, end: p.pos}
}

// parseMemberName consumes the quoted name of an object member.
func (p *parser) parseMemberName() string {
	if p.peek() != '"' {
		p.failf("expected member name")
	}
	return p.scanQuoted()
}

// scanQuoted consumes a double-quoted string and returns its contents.
func (p *parser) scanQuoted() string {
	p.expectChar('"')
	start := p.pos
	for {
		if p.atEOF() {
			p.fail(ErrEndOfInput, "unterminated string")
		}
		ch := p.advance()
		if ch == '"' {
			return string(p.text[start : p.pos-1])
		} else if ch == '\\' && p.opts.AllowEscapes {
			if p.atEOF() {
				p.fail(ErrEndOfInput, "unterminated string")
			}
			p.advance()
		}
	}
}

// parseArray consumes "[" and zero or more comma-separated values, then "]".
func (p *parser) parseArray() *Value {
	arr := &Value{kind: ArrayKind, pos: p.pos}
	p.enter()
	p.expectChar('[')
	p.skipWhitespace()
	if p.peek() != ']' {
		for {
			p.skipWhitespace()
			arr.elts = append(arr.elts, p.parseValue())
			p.skipWhitespace()
			if p.peek() != ',' {
				break
			}
			p.advance()
		}
	}
	p.expectChar(']')
	p.leave()
	arr.end = p.pos
	return arr
}

// parseObject consumes "{" and zero or more comma-separated "name": value
// members, then "}".
func (p *parser) parseObject() *Value {
	obj := &Value{kind: ObjectKind, pos: p.pos}
	p.enter()
	p.expectChar('{')
	p.skipWhitespace()
	if p.peek() != '}' {
		for {
			p.skipWhitespace()
			name := p.parseMemberName()
			p.skipWhitespace()
			p.expectChar(':')
			p.skipWhitespace()
			pos := p.pos
			v := p.parseValue()
			if v.fixed {
				v = &Value{kind: v.kind, bval: v.bval, pos: pos, end: p.pos}
			}
			v.name, v.named = name, true
			obj.elts = append(obj.elts, v)

			p.skipWhitespace()
			if p.peek() != ',' {
				break
			}
			p.advance()
		}
	}
	p.expectChar('}')
	p.leave()
	obj.end = p.pos
	return obj
}

func (p *parser) enter() {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.failf("nesting exceeds %d levels", p.opts.MaxDepth)
	}
}

func (p *parser) leave() { p.depth-- }
