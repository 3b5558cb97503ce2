/*
File    : exprscript/std/trig.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - trig.go
// Trigonometric standard functions, grounded on original_source's
// src/functions/stdlib/trig.rs macro-generated family (sin/cos/tan and
// their inverse/hyperbolic forms, all over radians) and the teacher's
// std/math.go trig wrappers.
package std

import (
	"math"

	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func trigUnary(name, doc string, f func(float64) float64) state.FuncEntry {
	return state.FuncEntry{
		Name: name, Category: "Trigonometry", Doc: doc,
		Params:     []state.Param{{Name: "n", Type: value.TFloat}},
		ReturnType: value.TFloat,
		Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.Float(f(args[0].AsFloat())), nil },
	}
}

func trigFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		trigUnary("sin", "sin(n) returns the sine of n radians.", math.Sin),
		trigUnary("cos", "cos(n) returns the cosine of n radians.", math.Cos),
		trigUnary("tan", "tan(n) returns the tangent of n radians.", math.Tan),
		trigUnary("asin", "asin(n) returns the arcsine of n, in radians.", math.Asin),
		trigUnary("acos", "acos(n) returns the arccosine of n, in radians.", math.Acos),
		trigUnary("atan", "atan(n) returns the arctangent of n, in radians.", math.Atan),
		trigUnary("sinh", "sinh(n) returns the hyperbolic sine of n.", math.Sinh),
		trigUnary("cosh", "cosh(n) returns the hyperbolic cosine of n.", math.Cosh),
		trigUnary("tanh", "tanh(n) returns the hyperbolic tangent of n.", math.Tanh),
		trigUnary("log", "log(n) returns the natural logarithm of n.", math.Log),
		trigUnary("log10", "log10(n) returns the base-10 logarithm of n.", math.Log10),
		trigUnary("exp", "exp(n) returns e raised to the power n.", math.Exp),
		trigUnary("to_degrees", "to_degrees(n) converts n radians to degrees.", func(n float64) float64 { return n * 180 / math.Pi }),
		trigUnary("to_radians", "to_radians(n) converts n degrees to radians.", func(n float64) float64 { return n * math.Pi / 180 }),
		{
			Name: "atan2", Category: "Trigonometry",
			Doc:        "atan2(y, x) returns the arctangent of y/x, using the sign of both to pick the correct quadrant.",
			Params:     []state.Param{{Name: "y", Type: value.TFloat}, {Name: "x", Type: value.TFloat}},
			ReturnType: value.TFloat,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Float(math.Atan2(args[0].AsFloat(), args[1].AsFloat())), nil
			},
		},
	}
}
