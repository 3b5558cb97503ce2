/*
File    : exprscript/value/format.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"
	"strings"
)

// ToDisplayString renders v the way a script author would see it printed —
// analogous to the teacher's ToString() convention, generalized across the
// wider Value family. Errors are only possible in principle (an Object or
// Array with a malformed element), which is why the signature returns one;
// in practice every branch below is infallible.
func ToDisplayString(v Value) (string, error) {
	switch v.Type {
	case TBool:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case TString:
		return v.s, nil
	case TFloat:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v.f), "0"), "."), nil
	case TFixed:
		return v.fx.String(), nil
	case TCurrency:
		return fmt.Sprintf("%s%s", v.cur.Symbol, v.cur.Amount.StringFixed(v.cur.MinorUnits)), nil
	case TRange:
		return fmt.Sprintf("%d..%d", v.rng.Start, v.rng.End), nil
	case TFuncRef:
		return fmt.Sprintf("<function %s>", v.s), nil
	case TArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			s, err := ToDisplayString(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case TObject:
		parts := make([]string, 0, v.obj.Len())
		for i, k := range v.obj.Keys() {
			ks, _ := ToDisplayString(k)
			vs, err := ToDisplayString(v.obj.vals[i])
			if err != nil {
				return "", err
			}
			parts = append(parts, ks+": "+vs)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	if IsIntegerType(v.Type) {
		if IsSignedInt(v.Type) {
			return fmt.Sprintf("%d", v.i), nil
		}
		return fmt.Sprintf("%d", v.u), nil
	}
	return "", fmt.Errorf("value: cannot display Value of type %s", v.Type)
}

// ToObjectString renders v with its type tag, e.g. "<int64(42)>", matching
// the teacher's ToObject() debug-inspection convention.
func ToObjectString(v Value) string {
	s, err := ToDisplayString(v)
	if err != nil {
		s = "?"
	}
	return fmt.Sprintf("<%s(%s)>", v.Type, s)
}

// String implements fmt.Stringer for convenient use in tests and logging.
func (v Value) String() string {
	return ToObjectString(v)
}
