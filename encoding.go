// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson

import (
	"errors"
	"strings"

	"github.com/creachadair/toyjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = append(buf, escape.Quote(mem.S(src))...)
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value. The enclosing quotation marks are
// required and removed, and escape sequences are decoded.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) (string, error) {
	body, ok := strings.CutPrefix(src, `"`)
	if ok {
		body, ok = strings.CutSuffix(body, `"`)
	}
	if !ok {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(body))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
