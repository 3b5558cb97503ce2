/*
File    : exprscript/value/compare.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
)

// Compare implements the three-way ordering used by <, <=, >, >= (relative
// precedence RELATIONAL in the Pratt table). Numeric Values compare by
// mathematical value regardless of width/float/fixed; strings compare
// lexicographically; anything else is a TypeMismatch, since ordering an
// array or object has no obvious meaning the spec commits to.
func Compare(a, b Value, tok *langerr.Token) (int, error) {
	if IsNumericType(a.Type) && IsNumericType(b.Type) {
		return a.AsFixed().Cmp(b.AsFixed()), nil
	}
	if a.Type == TString && b.Type == TString {
		switch {
		case a.s < b.s:
			return -1, nil
		case a.s > b.s:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot order %s against %s", a.Type, b.Type), tok)
}
