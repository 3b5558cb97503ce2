/*
File    : exprscript/std/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - io.go
// Console output standard functions (calling-convention only, per the
// Non-goals on a full filesystem/network surface — §4.6's ioFuncs()):
// print/println write a value's display string to stdout, printf applies
// a fmt-style format string to an array of arguments.
package std

import (
	"fmt"
	"os"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func ioFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		{
			Name: "print", Category: "IO",
			Doc:        "print(x) writes x's display string to standard output, with no trailing newline.",
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: value.TAny,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				s, err := value.ToDisplayString(args[0])
				if err != nil {
					return value.Value{}, langerr.Wrap(langerr.TypeMismatch, "print", nil, err)
				}
				fmt.Fprint(os.Stdout, s)
				return args[0], nil
			},
		},
		{
			Name: "println", Category: "IO",
			Doc:        "println(x) writes x's display string to standard output, followed by a newline.",
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: value.TAny,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				s, err := value.ToDisplayString(args[0])
				if err != nil {
					return value.Value{}, langerr.Wrap(langerr.TypeMismatch, "println", nil, err)
				}
				fmt.Fprintln(os.Stdout, s)
				return args[0], nil
			},
		},
		{
			Name: "printf", Category: "IO",
			Doc:        "printf(format, args) applies a Go fmt verb string to an array of arguments and writes the result to standard output.",
			Params:     []state.Param{{Name: "format", Type: value.TString}, {Name: "args", Type: value.TArray}},
			ReturnType: value.TString,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[1].AsArray()
				converted := make([]interface{}, len(elems))
				for i, e := range elems {
					s, err := value.ToDisplayString(e)
					if err != nil {
						return value.Value{}, langerr.Wrap(langerr.TypeMismatch, "printf argument", nil, err)
					}
					converted[i] = s
				}
				out := fmt.Sprintf(args[0].AsString(), converted...)
				fmt.Fprint(os.Stdout, out)
				return value.String(out), nil
			},
		},
	}
}
