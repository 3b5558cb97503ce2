/*
File    : exprscript/value/coerce.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"
	"math"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/shopspring/decimal"
)

// Coerce is the single function the spec's design notes (§9) ask for:
// every argument-binding, declared-type assignment, and arithmetic
// operand-preparation site calls this uniformly rather than each
// reimplementing its own conversion rules.
//
// Coerce(v, TAny) always succeeds and returns v unchanged — Any is a
// declarative placeholder meaning "accept whatever is here".
//
// Coercing a Value that is already target is idempotent (returns v
// unchanged), satisfying the testable property "coercion is idempotent when
// v is already T".
func Coerce(v Value, target Type, tok *langerr.Token) (Value, error) {
	if target == TAny || v.Type == target {
		return v, nil
	}

	switch {
	case IsIntegerType(target):
		return coerceToInt(v, target, tok)
	case target == TFloat:
		return coerceToFloat(v, tok)
	case target == TFixed:
		return coerceToFixed(v, tok)
	case target == TString:
		return coerceToString(v, tok)
	case target == TBool:
		return Bool(v.Truthy()), nil
	}

	return Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot coerce %s to %s", v.Type, target), tok)
}

func coerceToInt(v Value, target Type, tok *langerr.Token) (Value, error) {
	var asInt64 int64
	switch {
	case IsIntegerType(v.Type):
		asInt64 = v.AsInt64()
	case v.Type == TFloat:
		if math.Trunc(v.f) != v.f {
			return Value{}, langerr.NewAt(langerr.TypeMismatch,
				fmt.Sprintf("cannot coerce non-integral float %v to %s without loss of precision", v.f, target), tok)
		}
		asInt64 = int64(v.f)
	case v.Type == TFixed:
		if !v.fx.Truncate(0).Equal(v.fx) {
			return Value{}, langerr.NewAt(langerr.TypeMismatch,
				fmt.Sprintf("cannot coerce non-integral fixed value %s to %s without loss of precision", v.fx.String(), target), tok)
		}
		asInt64 = v.fx.IntPart()
	default:
		return Value{}, langerr.NewAt(langerr.TypeMismatch,
			fmt.Sprintf("cannot coerce %s to %s", v.Type, target), tok)
	}

	if !fitsWidth(asInt64, target) {
		return Value{}, langerr.NewAt(langerr.Overflow,
			fmt.Sprintf("value %d overflows %s", asInt64, target), tok)
	}

	switch target {
	case TInt8:
		return Int8(int8(asInt64)), nil
	case TInt16:
		return Int16(int16(asInt64)), nil
	case TInt32:
		return Int32(int32(asInt64)), nil
	case TInt64:
		return Int64(asInt64), nil
	case TUint8:
		return Uint8(uint8(asInt64)), nil
	case TUint16:
		return Uint16(uint16(asInt64)), nil
	case TUint32:
		return Uint32(uint32(asInt64)), nil
	case TUint64:
		return Uint64(uint64(asInt64)), nil
	}
	panic("unreachable")
}

func fitsWidth(v int64, target Type) bool {
	switch target {
	case TInt8:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case TInt16:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case TInt32:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case TInt64:
		return true
	case TUint8:
		return v >= 0 && v <= math.MaxUint8
	case TUint16:
		return v >= 0 && v <= math.MaxUint16
	case TUint32:
		return v >= 0 && v <= math.MaxUint32
	case TUint64:
		return v >= 0
	}
	return false
}

func coerceToFloat(v Value, tok *langerr.Token) (Value, error) {
	if !IsNumericType(v.Type) {
		return Value{}, langerr.NewAt(langerr.TypeMismatch,
			fmt.Sprintf("cannot coerce %s to float", v.Type), tok)
	}
	return Float(v.AsFloat()), nil
}

func coerceToFixed(v Value, tok *langerr.Token) (Value, error) {
	switch {
	case IsIntegerType(v.Type):
		return Fixed(decimal.NewFromInt(v.AsInt64())), nil
	case v.Type == TFloat:
		return Fixed(decimal.NewFromFloat(v.f)), nil
	case v.Type == TFixed:
		return v, nil
	case v.Type == TCurrency:
		return Fixed(v.cur.Amount), nil
	}
	return Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot coerce %s to fixed", v.Type), tok)
}

func coerceToString(v Value, tok *langerr.Token) (Value, error) {
	s, err := ToDisplayString(v)
	if err != nil {
		return Value{}, langerr.Wrap(langerr.TypeMismatch, "cannot coerce to string", tok, err)
	}
	return String(s), nil
}
