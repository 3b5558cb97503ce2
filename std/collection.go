/*
File    : exprscript/std/collection.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - collection.go
// Array/object standard functions, generalizing the teacher's
// std/arrays.go and std/map.go to value.Value's immutable-array-by-value
// convention: every function here returns a new array rather than
// mutating its argument in place. (Index assignment `arr[i] = x` in the
// evaluator is different: it writes into the existing array in place.)
package std

import (
	"sort"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func collectionFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		{
			Name: "len", Category: "Collection",
			Doc:        "len(x) returns the number of elements of an array, entries of an object, or runes of a string.",
			Params:     []state.Param{{Name: "x", Type: value.TAny}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				switch v := args[0]; v.Type {
				case value.TArray:
					return value.Int64(int64(len(v.AsArray()))), nil
				case value.TObject:
					return value.Int64(int64(v.AsObject().Len())), nil
				case value.TString:
					return value.Int64(int64(len([]rune(v.AsString())))), nil
				default:
					return value.Value{}, langerr.New(langerr.TypeMismatch, "len requires an array, object, or string")
				}
			},
		},
		{
			Name: "keys", Category: "Collection",
			Doc:        "keys(obj) returns an object's keys as an array, in insertion order.",
			Params:     []state.Param{{Name: "obj", Type: value.TObject}},
			ReturnType: value.TArray,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Array(args[0].AsObject().Keys()), nil },
		},
		{
			Name: "values", Category: "Collection",
			Doc:        "values(obj) returns an object's values as an array, in insertion order.",
			Params:     []state.Param{{Name: "obj", Type: value.TObject}},
			ReturnType: value.TArray,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Array(args[0].AsObject().Values()), nil },
		},
		{
			Name: "push", Category: "Collection",
			Doc:        "push(arr, x) returns a new array with x appended.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}, {Name: "x", Type: value.TAny}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				out := make([]value.Value, len(elems)+1)
				copy(out, elems)
				out[len(elems)] = args[1]
				return value.Array(out), nil
			},
		},
		{
			Name: "pop", Category: "Collection",
			Doc:        "pop(arr) returns a new array with its last element removed; fails with ArrayEmpty on an empty array.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				if len(elems) == 0 {
					return value.Value{}, langerr.New(langerr.ArrayEmpty, "pop on an empty array")
				}
				out := make([]value.Value, len(elems)-1)
				copy(out, elems[:len(elems)-1])
				return value.Array(out), nil
			},
		},
		{
			Name: "slice", Category: "Collection",
			Doc:        "slice(arr, start, end) returns the half-open element range [start, end) of arr as a new array.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}, {Name: "start", Type: value.TInt64}, {Name: "end", Type: value.TInt64}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				start, end := args[1].AsInt64(), args[2].AsInt64()
				if start < 0 || end > int64(len(elems)) || start > end {
					return value.Value{}, langerr.New(langerr.Index, "slice range out of bounds")
				}
				out := make([]value.Value, end-start)
				copy(out, elems[start:end])
				return value.Array(out), nil
			},
		},
		{
			Name: "reverse_array", Category: "Collection",
			Doc:        "reverse_array(arr) returns a new array with arr's elements in reverse order.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				out := make([]value.Value, len(elems))
				for i, e := range elems {
					out[len(elems)-1-i] = e
				}
				return value.Array(out), nil
			},
		},
		{
			Name: "sort", Category: "Collection",
			Doc:        "sort(arr) returns a new array sorted ascending by value.Compare.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}},
			ReturnType: value.TArray,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := append([]value.Value(nil), args[0].AsArray()...)
				var sortErr error
				sort.SliceStable(elems, func(i, j int) bool {
					cmp, err := value.Compare(elems[i], elems[j], nil)
					if err != nil {
						sortErr = err
						return false
					}
					return cmp < 0
				})
				if sortErr != nil {
					return value.Value{}, sortErr
				}
				return value.Array(elems), nil
			},
		},
	}
}
