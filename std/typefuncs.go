/*
File    : exprscript/std/typefuncs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - typefuncs.go
// Type-introspection and conversion standard functions, generalizing the
// teacher's typeofFunc (std/common.go) to value.Type's string tag and
// routing every conversion through value.Coerce per §9's "call coerce
// uniformly" decision.
package std

import (
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func typeFuncs() []state.FuncEntry {
	coerceTo := func(name, doc string, target value.Type) state.FuncEntry {
		return state.FuncEntry{
			Name: name, Category: "Type", Doc: doc,
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: target,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Coerce(args[0], target, nil) },
		}
	}

	return []state.FuncEntry{
		{
			Name: "typeof", Category: "Type",
			Doc:        "typeof(x) returns x's value.Type tag as a string (\"nil\" for an uninitialized value).",
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				t := string(args[0].Type)
				if t == "" {
					t = "nil"
				}
				return value.String(t), nil
			},
		},
		{
			Name: "is_nil", Category: "Type",
			Doc:        "is_nil(x) reports whether x is the uninitialized nil value.",
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: value.TBool,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Bool(args[0].Type == ""), nil },
		},
		coerceTo("to_string", "to_string(x) converts x to its display string.", value.TString),
		coerceTo("to_int", "to_int(x) converts x to a signed 64-bit integer.", value.TInt64),
		coerceTo("to_float", "to_float(x) converts x to a float.", value.TFloat),
		coerceTo("to_bool", "to_bool(x) converts x to a boolean using its truthiness rule.", value.TBool),
		coerceTo("to_fixed", "to_fixed(x) converts x to a fixed-point decimal.", value.TFixed),
	}
}
