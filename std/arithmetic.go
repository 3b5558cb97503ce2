/*
File    : exprscript/std/arithmetic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - arithmetic.go
// Named arithmetic standard functions that round out the operator set
// (abs, min, max, rounding, sqrt) rather than duplicate it, generalizing
// the teacher's std/math.go to the float-coerced value.Value domain.
package std

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func arithmeticFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		{
			Name: "abs", Category: "Arithmetic",
			Doc:        "abs(n) returns the absolute value of n as a float.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Float(math.Abs(args[0].AsFloat())), nil },
		},
		{
			Name: "sign", Category: "Arithmetic",
			Doc:        "sign(n) returns -1, 0, or 1 according to n's sign.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				n := args[0].AsFloat()
				switch {
				case n > 0:
					return value.Int64(1), nil
				case n < 0:
					return value.Int64(-1), nil
				default:
					return value.Int64(0), nil
				}
			},
		},
		{
			Name: "min", Category: "Arithmetic",
			Doc:        "min(a, b) returns the smaller of two numbers.",
			Params:     []state.Param{{Name: "a", Type: value.TFloat}, {Name: "b", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Float(math.Min(args[0].AsFloat(), args[1].AsFloat())), nil
			},
		},
		{
			Name: "max", Category: "Arithmetic",
			Doc:        "max(a, b) returns the larger of two numbers.",
			Params:     []state.Param{{Name: "a", Type: value.TFloat}, {Name: "b", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Float(math.Max(args[0].AsFloat(), args[1].AsFloat())), nil
			},
		},
		{
			Name: "floor", Category: "Arithmetic",
			Doc:        "floor(n) rounds n down to the nearest integer.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TInt64,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Int64(int64(math.Floor(args[0].AsFloat()))), nil },
		},
		{
			Name: "ceil", Category: "Arithmetic",
			Doc:        "ceil(n) rounds n up to the nearest integer.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TInt64,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Int64(int64(math.Ceil(args[0].AsFloat()))), nil },
		},
		{
			Name: "round", Category: "Arithmetic",
			Doc:        "round(n) rounds n to the nearest integer, half away from zero.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TInt64,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Int64(int64(math.Round(args[0].AsFloat()))), nil },
		},
		{
			Name: "sqrt", Category: "Arithmetic",
			Doc:        "sqrt(n) returns the square root of n; negative n fails with ValueFormat.",
			Params:     []state.Param{{Name: "n", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				n := args[0].AsFloat()
				if n < 0 {
					return value.Value{}, langerr.New(langerr.ValueFormat, fmt.Sprintf("sqrt of negative number %v", n))
				}
				return value.Float(math.Sqrt(n)), nil
			},
		},
		{
			Name: "pow", Category: "Arithmetic",
			Doc:        "pow(base, exp) raises base to exp as a float; the ** operator covers the integer case.",
			Params:     []state.Param{{Name: "base", Type: value.TFloat}, {Name: "exp", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Float(math.Pow(args[0].AsFloat(), args[1].AsFloat())), nil
			},
		},
		{
			Name: "rand", Category: "Arithmetic",
			Doc:        "rand() returns a random float in [0.0, 1.0).",
			Params:     nil,
			ReturnType: value.TFloat,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Float(rand.Float64()), nil },
		},
		{
			Name: "rand_int", Category: "Arithmetic",
			Doc:        "rand_int(min, max) returns a random integer in [min, max], inclusive.",
			Params:     []state.Param{{Name: "min", Type: value.TInt64}, {Name: "max", Type: value.TInt64}},
			ReturnType: value.TInt64,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				lo, hi := args[0].AsInt64(), args[1].AsInt64()
				if lo > hi {
					return value.Value{}, langerr.New(langerr.ValueFormat, fmt.Sprintf("rand_int: min %d greater than max %d", lo, hi))
				}
				return value.Int64(lo + rand.Int63n(hi-lo+1)), nil
			},
		},
		{
			Name: "rand_bool", Category: "Arithmetic",
			Doc:        "rand_bool() returns a random boolean with equal probability.",
			Params:     nil,
			ReturnType: value.TBool,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Bool(rand.Intn(2) == 0), nil },
		},
		{
			Name: "choose", Category: "Arithmetic",
			Doc:        "choose(arr) returns a uniformly random element of arr; an empty array fails with ArrayEmpty.",
			Params:     []state.Param{{Name: "arr", Type: value.TArray}},
			ReturnType: value.TAny,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				elems := args[0].AsArray()
				if len(elems) == 0 {
					return value.Value{}, langerr.New(langerr.ArrayEmpty, "choose: empty array")
				}
				return elems[rand.Intn(len(elems))], nil
			},
		},
	}
}
