// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/toyjson"
	"github.com/google/go-cmp/cmp"
)

// ValueEqual is a cmp option comparing *toyjson.Value trees structurally,
// ignoring source locations.
var ValueEqual = cmp.Comparer(toyjson.Equal)

// MustParse parses input with the default options, and fails t if that does
// not succeed.
func MustParse(t testing.TB, input string) *toyjson.Value {
	t.Helper()
	v, err := toyjson.ParseString(input)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}
