/*
File    : exprscript/value/arithmetic.go
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

// classify picks the common numeric family two operands should be evaluated
// in (wideIntType then picks the integer width): if either side is Fixed the whole operation happens in Fixed (no
// float round-trip, preserving precision); else if either side is Float the
// whole operation happens in Float (matching the teacher's "float-widening
// rule" in syntax.Value.Add); else both sides are some integer width and
// the operation happens in int64, re-coerced to the wider of the two
// widths afterward.
type numericClass int

const (
	classInt numericClass = iota
	classFloat
	classFixed
)

func classify(a, b Value) numericClass {
	if a.Type == TFixed || b.Type == TFixed {
		return classFixed
	}
	if a.Type == TFloat || b.Type == TFloat {
		return classFloat
	}
	return classInt
}

func wideIntType(a, b Value) Type {
	wa, wb := IntWidth(a.Type), IntWidth(b.Type)
	signed := IsSignedInt(a.Type) || IsSignedInt(b.Type)
	width := wa
	if wb > wa {
		width = wb
	}
	switch {
	case signed && width <= 8:
		return TInt8
	case signed && width <= 16:
		return TInt16
	case signed && width <= 32:
		return TInt32
	case signed:
		return TInt64
	case width <= 8:
		return TUint8
	case width <= 16:
		return TUint16
	case width <= 32:
		return TUint32
	default:
		return TUint64
	}
}

func mismatch(op string, a, b Value, tok *langerr.Token) error {
	return langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot apply %s to %s and %s", op, a.Type, b.Type), tok)
}

// Add implements `+`. String + anything concatenates (using the other
// operand's display form, so `"x=" + 1` works without an explicit cast, the
// same convenience the teacher's syntax.Value.Add gives tunascript
// authors). Two arrays concatenate. Otherwise both sides must be numeric.
func Add(a, b Value, tok *langerr.Token) (Value, error) {
	if a.Type == TString || b.Type == TString {
		as, err := ToDisplayString(a)
		if err != nil {
			return Value{}, err
		}
		bs, err := ToDisplayString(b)
		if err != nil {
			return Value{}, err
		}
		return String(as + bs), nil
	}
	if a.Type == TArray && b.Type == TArray {
		out := make([]Value, 0, len(a.arr)+len(b.arr))
		out = append(out, a.arr...)
		out = append(out, b.arr...)
		return Array(out), nil
	}
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("+", a, b, tok)
	}
	return numericOp(a, b, tok, func(x, y int64) (int64, error) { return x + y, nil },
		func(x, y float64) float64 { return x + y },
		func(x, y decimal.Decimal) decimal.Decimal { return x.Add(y) })
}

func Sub(a, b Value, tok *langerr.Token) (Value, error) {
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("-", a, b, tok)
	}
	return numericOp(a, b, tok, func(x, y int64) (int64, error) { return x - y, nil },
		func(x, y float64) float64 { return x - y },
		func(x, y decimal.Decimal) decimal.Decimal { return x.Sub(y) })
}

// Mul implements `*`. String * Int repeats the string, matching the
// teacher's Multiply behavior for that pairing.
func Mul(a, b Value, tok *langerr.Token) (Value, error) {
	if a.Type == TString && IsIntegerType(b.Type) {
		return String(repeatString(a.s, b.AsInt64())), nil
	}
	if b.Type == TString && IsIntegerType(a.Type) {
		return String(repeatString(b.s, a.AsInt64())), nil
	}
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("*", a, b, tok)
	}
	return numericOp(a, b, tok, func(x, y int64) (int64, error) { return x * y, nil },
		func(x, y float64) float64 { return x * y },
		func(x, y decimal.Decimal) decimal.Decimal { return x.Mul(y) })
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// Div implements `/`. Integer division that does not divide evenly
// promotes to Float rather than truncating silently: the data model's "no
// silent loss of precision for widening" invariant reads naturally onto
// division too, not just explicit coercion.
func Div(a, b Value, tok *langerr.Token) (Value, error) {
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("/", a, b, tok)
	}
	switch classify(a, b) {
	case classFixed:
		bf := b.AsFixed()
		if bf.IsZero() {
			return Value{}, langerr.NewAt(langerr.RangeErr, "division by zero", tok)
		}
		return Fixed(a.AsFixed().Div(bf)), nil
	case classFloat:
		bf := b.AsFloat()
		if bf == 0 {
			return Value{}, langerr.NewAt(langerr.RangeErr, "division by zero", tok)
		}
		return Float(a.AsFloat() / bf), nil
	default:
		bi := b.AsInt64()
		if bi == 0 {
			return Value{}, langerr.NewAt(langerr.RangeErr, "division by zero", tok)
		}
		ai := a.AsInt64()
		if ai%bi == 0 {
			return Coerce(Int64(ai/bi), wideIntType(a, b), tok)
		}
		return Float(float64(ai) / float64(bi)), nil
	}
}

func Mod(a, b Value, tok *langerr.Token) (Value, error) {
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("%", a, b, tok)
	}
	switch classify(a, b) {
	case classFixed:
		bf := b.AsFixed()
		if bf.IsZero() {
			return Value{}, langerr.NewAt(langerr.RangeErr, "modulo by zero", tok)
		}
		return Fixed(a.AsFixed().Mod(bf)), nil
	case classFloat:
		bf := b.AsFloat()
		if bf == 0 {
			return Value{}, langerr.NewAt(langerr.RangeErr, "modulo by zero", tok)
		}
		return Float(math.Mod(a.AsFloat(), bf)), nil
	default:
		bi := b.AsInt64()
		if bi == 0 {
			return Value{}, langerr.NewAt(langerr.RangeErr, "modulo by zero", tok)
		}
		return Coerce(Int64(a.AsInt64()%bi), wideIntType(a, b), tok)
	}
}

// Pow implements `**`, right-associative at the Pratt layer (this function
// itself is just the binary operation).
func Pow(a, b Value, tok *langerr.Token) (Value, error) {
	if !IsNumericType(a.Type) || !IsNumericType(b.Type) {
		return Value{}, mismatch("**", a, b, tok)
	}
	if classify(a, b) == classInt && b.AsInt64() >= 0 {
		result := int64(1)
		base := a.AsInt64()
		for range make([]struct{}, b.AsInt64()) {
			result *= base
		}
		return Coerce(Int64(result), wideIntType(a, b), tok)
	}
	return Float(math.Pow(a.AsFloat(), b.AsFloat())), nil
}

func numericOp(a, b Value, tok *langerr.Token,
	intOp func(x, y int64) (int64, error),
	floatOp func(x, y float64) float64,
	fixedOp func(x, y decimal.Decimal) decimal.Decimal) (Value, error) {

	switch classify(a, b) {
	case classFixed:
		return Fixed(fixedOp(a.AsFixed(), b.AsFixed())), nil
	case classFloat:
		return Float(floatOp(a.AsFloat(), b.AsFloat())), nil
	default:
		r, err := intOp(a.AsInt64(), b.AsInt64())
		if err != nil {
			return Value{}, err
		}
		return Coerce(Int64(r), wideIntType(a, b), tok)
	}
}

// Negate implements unary `-`.
func Negate(v Value, tok *langerr.Token) (Value, error) {
	switch {
	case IsIntegerType(v.Type):
		return Coerce(Int64(-v.AsInt64()), v.Type, tok)
	case v.Type == TFloat:
		return Float(-v.f), nil
	case v.Type == TFixed:
		return Fixed(v.fx.Neg()), nil
	}
	return Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot negate %s", v.Type), tok)
}

// Not implements logical `not`/`!`.
func Not(v Value) Value { return Bool(!v.Truthy()) }

// BitNot, BitAnd, BitOr, BitXor, Shl, Shr implement the bitwise family; all
// require integer operands (bitwise operations on a float or fixed value
// have no defined meaning in this language).
func BitNot(v Value, tok *langerr.Token) (Value, error) {
	if !IsIntegerType(v.Type) {
		return Value{}, langerr.NewAt(langerr.TypeMismatch,
			fmt.Sprintf("cannot apply ~ to %s", v.Type), tok)
	}
	return Coerce(Int64(^v.AsInt64()), v.Type, tok)
}

func bitwiseBinary(op string, a, b Value, tok *langerr.Token, f func(x, y int64) int64) (Value, error) {
	if !IsIntegerType(a.Type) || !IsIntegerType(b.Type) {
		return Value{}, mismatch(op, a, b, tok)
	}
	return Coerce(Int64(f(a.AsInt64(), b.AsInt64())), wideIntType(a, b), tok)
}

func BitAnd(a, b Value, tok *langerr.Token) (Value, error) {
	return bitwiseBinary("&", a, b, tok, func(x, y int64) int64 { return x & y })
}
func BitOr(a, b Value, tok *langerr.Token) (Value, error) {
	return bitwiseBinary("|", a, b, tok, func(x, y int64) int64 { return x | y })
}
func BitXor(a, b Value, tok *langerr.Token) (Value, error) {
	return bitwiseBinary("^", a, b, tok, func(x, y int64) int64 { return x ^ y })
}
func Shl(a, b Value, tok *langerr.Token) (Value, error) {
	return bitwiseBinary("<<", a, b, tok, func(x, y int64) int64 { return x << uint(y) })
}
func Shr(a, b Value, tok *langerr.Token) (Value, error) {
	return bitwiseBinary(">>", a, b, tok, func(x, y int64) int64 { return x >> uint(y) })
}
