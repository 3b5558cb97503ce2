/*
File    : exprscript/std/decorators_numeric.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - decorators_numeric.go
// Numeric decorators (`@hex @oct @bin @roman @ordinal @percent`), grounded
// on original_source/src/functions/stdlib/decorators_numeric.rs. Every
// decorator is a single-argument function returning string (§4.6);
// IsDecorator flags it for the decorator operator's array/object leaf
// recursion, matching how the `@` postfix dispatches through call_function
// uniformly with an ordinary call.
package std

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func decorator(name, doc string, f func(int64, float64) (string, error)) state.FuncEntry {
	return state.FuncEntry{
		Name: name, Category: "Decorator", Doc: doc, IsDecorator: true,
		Params:     []state.Param{{Name: "input", Type: value.TFloat}},
		ReturnType: value.TString,
		Handler: func(st *state.State, args []value.Value) (value.Value, error) {
			f64 := args[0].AsFloat()
			s, err := f(int64(f64), f64)
			if err != nil {
				return value.Value{}, err
			}
			return value.String(s), nil
		},
	}
}

// toRoman converts n (1..3999) to its roman-numeral spelling, per
// original_source's table-driven greedy subtraction approach.
func toRoman(n int64) (string, error) {
	if n <= 0 || n > 3999 {
		return "", langerr.New(langerr.Overflow, fmt.Sprintf("%d is out of roman numeral range (1..3999)", n))
	}
	numerals := []struct {
		value int64
		sym   string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var sb strings.Builder
	for _, num := range numerals {
		for n >= num.value {
			sb.WriteString(num.sym)
			n -= num.value
		}
	}
	return sb.String(), nil
}

func toOrdinal(n int64) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func numericDecorators() []state.FuncEntry {
	return []state.FuncEntry{
		decorator("hex", "@hex interprets an integer as a lowercase hexadecimal literal.",
			func(i int64, _ float64) (string, error) { return "0x" + strconv.FormatInt(i, 16), nil }),
		decorator("oct", "@oct interprets an integer as an octal literal.",
			func(i int64, _ float64) (string, error) { return "0o" + strconv.FormatInt(i, 8), nil }),
		decorator("bin", "@bin interprets an integer as a binary literal.",
			func(i int64, _ float64) (string, error) { return "0b" + strconv.FormatInt(i, 2), nil }),
		decorator("roman", "@roman interprets an integer (1..3999) as a roman numeral.",
			func(i int64, _ float64) (string, error) { return toRoman(i) }),
		decorator("ordinal", "@ordinal interprets an integer as an ordinal number (1st, 2nd, 3rd, ...).",
			func(i int64, _ float64) (string, error) { return toOrdinal(i), nil }),
		decorator("percent", "@percent interprets a number as a fraction and formats it as a percentage.",
			func(_ int64, f float64) (string, error) {
				s := strconv.FormatFloat(f*100, 'f', -1, 64)
				return s + "%", nil
			}),
	}
}
