// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package toyjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/toyjson"
	"github.com/creachadair/toyjson/internal/testutil"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v := testutil.MustParse(t, testJSON)

	tests := []struct {
		name string
		path []any
		want *toyjson.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{3.5}, v, true},

		{"ArrayPos", []any{"list", 1}, v.Find("list").Index(1), false},
		{"ArrayNeg", []any{"list", -1}, v.Find("list").Index(1), false},
		{"ArrayRange", []any{"o", 25}, v, true},
		{"ObjPath", []any{"xyz", "d"}, v.Find("xyz").Find("d"), false},
		{"Deep", []any{"list", 0, "x"}, v.Find("list").Index(0).Find("x"), false},
		{"KeyOnArray", []any{"o", "hi"}, v, true},

		{"FuncArray", []any{"o", testPathFunc}, toyjson.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, toyjson.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toyjson.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatal("Path: got nil, want error")
			}
			if !toyjson.Equal(got, tc.want) {
				t.Errorf("Path: got %s, want %s", toyjson.FormatToString(got), toyjson.FormatToString(tc.want))
			}
		})
	}
}

func testPathFunc(v *toyjson.Value) (*toyjson.Value, error) {
	if k := v.Kind(); k == toyjson.ArrayKind || k == toyjson.ObjectKind {
		return toyjson.Number(float64(v.Len())), nil
	}
	return nil, errors.New("not a thing with length")
}
