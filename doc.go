// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package toyjson implements a small JSON parser and pretty-printer.
//
// # Parsing
//
// Parse and ParseString read a complete JSON document held in memory and
// return the root of a tree of *Value nodes. The root must be an object or an
// array. In case of error, parsing stops and an error of concrete type
// *toyjson.SyntaxError is returned; no partial tree is produced.
//
//	root, err := toyjson.ParseString(`{"a": [1, 2]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The default grammar is deliberately small: strings are stored verbatim
// between their quotation marks (escape sequences are not decoded, and \" is
// not recognized), and numbers have no exponent. ParseOptions enables
// exponents and escaped quotes for callers that need them.
//
// # Values
//
// A Value is one node of the tree, tagged with a Kind:
//
//	Kind        | Payload             | Accessors
//	----------- | ------------------- | ------------------------------
//	NullKind    | none                | --
//	BoolKind    | bool                | Bool
//	NumberKind  | float64             | Float64, IsInt
//	StringKind  | raw text            | Text, Unquote
//	ArrayKind   | ordered children    | Len, Children, Index
//	ObjectKind  | ordered members     | Len, Children, Index, Find
//
// The members of an object are values that carry a name (see Value.Name).
// Member order is the order in which names appeared in the source.
//
// # Formatting
//
// Format renders a tree as indented text, with one tab per level of nesting:
//
//	{
//		"a": [
//			1,
//			2
//		]
//	}
package toyjson
