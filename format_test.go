// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package toyjson_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/creachadair/toyjson"
	"github.com/creachadair/toyjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`[ ]`, `[]`},
		{`{ }`, `{}`},

		{`[1.0]`, "[\n\t1\n]"},
		{`[1.5]`, "[\n\t1.500000\n]"},
		{`[-0.0, -7, 0.1, -2.25, 123456789012]`,
			"[\n\t0,\n\t-7,\n\t0.100000,\n\t-2.250000,\n\t123456789012\n]"},
		{`[0.0000001]`, "[\n\t0.000000\n]"},
		{`[null,true,false,"x y",""]`,
			"[\n\tnull,\n\ttrue,\n\tfalse,\n\t\"x y\",\n\t\"\"\n]"},
		{`["a\nb"]`, "[\n\t\"a\\nb\"\n]"},

		{`{"b":1,"a":2}`, "{\n\t\"b\": 1,\n\t\"a\": 2\n}"},
		{`{"a":[1,2]}`, "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t]\n}"},
		{`[[],{}]`, "[\n\t[],\n\t{}\n]"},
		{`[[1]]`, "[\n\t[\n\t\t1\n\t]\n]"},
		{`{"x": {"y": {"z": null}}, "w": []}`,
			"{\n\t\"x\": {\n\t\t\"y\": {\n\t\t\t\"z\": null\n\t\t}\n\t},\n\t\"w\": []\n}"},
	}
	for _, tc := range tests {
		got := toyjson.FormatToString(testutil.MustParse(t, tc.input))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Format %#q (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func TestFormatIndent(t *testing.T) {
	v := testutil.MustParse(t, `{"a":[1,{"b":false}]}`)
	var sb strings.Builder
	f := toyjson.Formatter{Indent: "  "}
	if err := f.Format(&sb, v); err != nil {
		t.Fatalf("Format: unexpected error: %v", err)
	}
	const want = `{
  "a": [
    1,
    {
      "b": false
    }
  ]
}`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Format (-want, +got):\n%s", diff)
	}
}

func TestFormatConstructed(t *testing.T) {
	v := toyjson.Object(
		toyjson.Field("name", toyjson.StringOf(`Dennis "the Menace"`)),
		toyjson.Field("age", toyjson.Number(37)),
		toyjson.Field("isOld", toyjson.Bool(false)),
		toyjson.Field("tags", toyjson.Array(toyjson.String("x"), toyjson.Null)),
	)
	const want = "{\n" +
		"\t\"name\": \"Dennis \\\"the Menace\\\"\",\n" +
		"\t\"age\": 37,\n" +
		"\t\"isOld\": false,\n" +
		"\t\"tags\": [\n\t\t\"x\",\n\t\tnull\n\t]\n" +
		"}"
	if diff := cmp.Diff(want, toyjson.FormatToString(v)); diff != "" {
		t.Errorf("Format (-want, +got):\n%s", diff)
	}
}

func TestFormatErrors(t *testing.T) {
	if err := toyjson.Format(new(strings.Builder), nil); err == nil {
		t.Error("Format(nil): got nil, want error")
	}

	errWrite := errors.New("write failed")
	err := toyjson.Format(failWriter{errWrite}, toyjson.Array(toyjson.Number(1)))
	if !errors.Is(err, errWrite) {
		t.Errorf("Format: got %v, want %v", err, errWrite)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

// Formatting a parsed value and parsing the result again must yield a value
// with the same structure.
func TestRoundTrip(t *testing.T) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	inputs := []string{
		string(input),
		`{}`,
		`[]`,
		`[[[]]]`,
		`{"b":1,"a":2,"b":3}`,
		`[null, true, false, -0.5, 12, "text with spaces", {"k": [{}]}]`,
		`{"a b": {"c": [1, 2.25, -3.125], "d": ""}}`,
	}
	for _, in := range inputs {
		first := testutil.MustParse(t, in)
		text := toyjson.FormatToString(first)
		second := testutil.MustParse(t, text)
		if diff := cmp.Diff(first, second, testutil.ValueEqual); diff != "" {
			t.Errorf("Round trip %#q (-first, +second):\n%s", in, diff)
		}
		if again := toyjson.FormatToString(second); again != text {
			t.Errorf("Round trip %#q: formatting is not stable:\n%s\n%s", in, text, again)
		}
	}
}
