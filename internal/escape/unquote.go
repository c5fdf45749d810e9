// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string contents.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote for an escape sequence cut off by the
// end of its input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unquote decodes the contents of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}

		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, fmt.Errorf("unicode escape: %w", ErrIncomplete)
			}
			if v, ok := parseHex4(src.SliceTo(4)); ok {
				dec = utf8.AppendRune(dec, rune(v))
			} else {
				dec = utf8.AppendRune(dec, utf8.RuneError)
			}
			src = src.SliceFrom(4)
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

func parseHex4(data mem.RO) (int32, bool) {
	var v int32
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int32(b - '0')
		case 'a' <= b && b <= 'f':
			v += int32(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int32(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
