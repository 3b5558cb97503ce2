/*
File    : exprscript/std/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - strings.go
// String standard functions, generalizing the teacher's std/strings.go
// (upper/lower/trim/split/join/replace/substring/...) from GoMixObject to
// value.Value.
package std

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func strUnary(name, doc string, f func(string) string) state.FuncEntry {
	return state.FuncEntry{
		Name: name, Category: "String", Doc: doc,
		Params:     []state.Param{{Name: "s", Type: value.TString}},
		ReturnType: value.TString,
		Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.String(f(args[0].AsString())), nil },
	}
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func stringFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		strUnary("upper", "upper(s) returns s in uppercase.", strings.ToUpper),
		strUnary("lower", "lower(s) returns s in lowercase.", strings.ToLower),
		strUnary("trim", "trim(s) removes leading and trailing whitespace.", strings.TrimSpace),
		strUnary("ltrim", "ltrim(s) removes leading whitespace.", func(s string) string { return strings.TrimLeft(s, " \t\r\n") }),
		strUnary("rtrim", "rtrim(s) removes trailing whitespace.", func(s string) string { return strings.TrimRight(s, " \t\r\n") }),
		strUnary("reverse", "reverse(s) returns s with its runes in reverse order.", reverseString),
		strUnary("capitalize", "capitalize(s) uppercases s's first rune.", capitalize),
		{
			Name: "split", Category: "String",
			Doc:        "split(s, sep) splits s on every occurrence of sep into an array of strings.",
			Params:     []state.Param{{Name: "s", Type: value.TString}, {Name: "sep", Type: value.TString}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				parts := strings.Split(args[0].AsString(), args[1].AsString())
				out := make([]value.Value, len(parts))
				for i, p := range parts {
					out[i] = value.String(p)
				}
				return value.Array(out), nil
			},
		},
		{
			Name: "join", Category: "String",
			Doc:        "join(arr, sep) joins an array of strings with sep between elements.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}, {Name: "sep", Type: value.TString}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				parts := make([]string, len(elems))
				for i, e := range elems {
					s, err := value.ToDisplayString(e)
					if err != nil {
						return value.Value{}, langerr.Wrap(langerr.TypeMismatch, "join element", nil, err)
					}
					parts[i] = s
				}
				return value.String(strings.Join(parts, args[1].AsString())), nil
			},
		},
		{
			Name: "replace", Category: "String",
			Doc:        "replace(s, old, new) replaces every occurrence of old in s with new.",
			Params:     []state.Param{{Name: "s", Type: value.TString}, {Name: "old", Type: value.TString}, {Name: "new", Type: value.TString}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.String(strings.ReplaceAll(args[0].AsString(), args[1].AsString(), args[2].AsString())), nil
			},
		},
		{
			Name: "substring", Category: "String",
			Doc:        "substring(s, start, end) returns the rune range [start, end) of s.",
			Params:     []state.Param{{Name: "s", Type: value.TString}, {Name: "start", Type: value.TInt64}, {Name: "end", Type: value.TInt64}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				r := []rune(args[0].AsString())
				start, end := args[1].AsInt64(), args[2].AsInt64()
				if start < 0 || end > int64(len(r)) || start > end {
					msg := fmt.Sprintf("substring range [%d,%d) out of bounds for length %d", start, end, len(r))
					return value.Value{}, langerr.New(langerr.Index, msg)
				}
				return value.String(string(r[start:end])), nil
			},
		},
		{
			Name: "count", Category: "String",
			Doc:        "count(s, sub) counts non-overlapping occurrences of sub in s.",
			Params:     []state.Param{{Name: "s", Type: value.TString}, {Name: "sub", Type: value.TString}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Int64(int64(strings.Count(args[0].AsString(), args[1].AsString()))), nil
			},
		},
		{
			Name: "index_of", Category: "String",
			Doc:        "index_of(s, sub) returns the rune index of sub's first occurrence in s, or -1.",
			Params:     []state.Param{{Name: "s", Type: value.TString}, {Name: "sub", Type: value.TString}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				byteIdx := strings.Index(args[0].AsString(), args[1].AsString())
				if byteIdx < 0 {
					return value.Int64(-1), nil
				}
				return value.Int64(int64(len([]rune(args[0].AsString()[:byteIdx])))), nil
			},
		},
		{
			Name: "strcmp", Category: "String",
			Doc:        "strcmp(a, b) returns -1, 0, or 1 by lexicographic comparison.",
			Params:     []state.Param{{Name: "a", Type: value.TString}, {Name: "b", Type: value.TString}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Int64(int64(strings.Compare(args[0].AsString(), args[1].AsString()))), nil
			},
		},
		{
			Name: "ord", Category: "String",
			Doc:        "ord(s) returns the Unicode code point of s's first rune.",
			Params:     []state.Param{{Name: "s", Type: value.TString}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				r := []rune(args[0].AsString())
				if len(r) == 0 {
					return value.Value{}, langerr.New(langerr.ValueFormat, "ord requires a non-empty string")
				}
				return value.Int64(int64(r[0])), nil
			},
		},
		{
			Name: "chr", Category: "String",
			Doc:        "chr(n) returns the single-rune string for Unicode code point n.",
			Params:     []state.Param{{Name: "n", Type: value.TInt64}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.String(string(rune(args[0].AsInt64()))), nil
			},
		},
		{
			Name: "is_digit", Category: "String",
			Doc:        "is_digit(s) reports whether every rune in s is an ASCII digit.",
			Params:     []state.Param{{Name: "s", Type: value.TString}},
			ReturnType: value.TBool,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				s := args[0].AsString()
				if s == "" {
					return value.Bool(false), nil
				}
				for _, r := range s {
					if r < '0' || r > '9' {
						return value.Bool(false), nil
					}
				}
				return value.Bool(true), nil
			},
		},
		{
			Name: "is_alpha", Category: "String",
			Doc:        "is_alpha(s) reports whether every rune in s is an ASCII letter.",
			Params:     []state.Param{{Name: "s", Type: value.TString}},
			ReturnType: value.TBool,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				s := args[0].AsString()
				if s == "" {
					return value.Bool(false), nil
				}
				for _, r := range s {
					if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
						return value.Bool(false), nil
					}
				}
				return value.Bool(true), nil
			},
		},
	}
}
