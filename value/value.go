/*
File    : exprscript/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value implements the tagged-union Value domain described by the
// engine's data model: signed/unsigned integers at four widths, a 64-bit
// float, an arbitrary-precision fixed-point decimal, a currency amount,
// booleans, strings, and the three compound shapes (array, object, range).
//
// Unlike the teacher's objects.GoMixObject (an interface implemented by one
// struct per type), Value is a single struct with a Type tag and a payload
// field per family, mirroring the "Value is a tagged variant" wording of the
// data model directly: one Go type, switched on Type, rather than one
// interface with many implementers. This makes the coercion lattice (§9,
// "coerce is a single function") a single switch instead of N*N interface
// type assertions.
package value

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/shopspring/decimal"
)

// Type tags a Value with its concrete shape. "Any" never appears on a
// constructed Value — it is a declarative placeholder used only in
// function-signature parameter/return types to mean "skip coercion".
type Type string

const (
	TInt8   Type = "int8"
	TInt16  Type = "int16"
	TInt32  Type = "int32"
	TInt64  Type = "int64"
	TUint8  Type = "uint8"
	TUint16 Type = "uint16"
	TUint32 Type = "uint32"
	TUint64 Type = "uint64"
	TFloat  Type = "float"

	TFixed    Type = "fixed"
	TCurrency Type = "currency"

	TBool   Type = "bool"
	TString Type = "string"
	TArray  Type = "array"
	TObject Type = "object"
	TRange  Type = "range"

	TAny Type = "any"

	// TFuncRef is a value holding the name of a callable (standard or user
	// function) rather than its result — what a bare identifier naming a
	// function evaluates to when used as a value instead of being called
	// outright, e.g. `g = f; g(1)`. It participates in none of the
	// Numeric/Compound coercion families; only call-position code unwraps it.
	TFuncRef Type = "funcref"
)

// IsIntegerType reports whether t is one of the eight fixed-width integer
// tags (signed or unsigned).
func IsIntegerType(t Type) bool {
	switch t {
	case TInt8, TInt16, TInt32, TInt64, TUint8, TUint16, TUint32, TUint64:
		return true
	}
	return false
}

// IsNumericType reports whether t participates in the Numeric coercion
// family: all integer widths, Float, and Fixed. Currency is deliberately
// excluded — a Currency amount must be unwrapped explicitly (via its
// decorator or an accessor function) before arithmetic, since silently
// mixing a currency's minor-unit scale into plain arithmetic is exactly the
// kind of silent precision loss the data model forbids.
func IsNumericType(t Type) bool {
	return IsIntegerType(t) || t == TFloat || t == TFixed
}

// IsCompoundType reports whether t participates in the Compound coercion
// family: array, object, range, and string (a string is "compound" in the
// sense that it is indexable/iterable rune-wise, matching §4.5's "for v in e
// ... strings (grapheme-wise)").
func IsCompoundType(t Type) bool {
	switch t {
	case TArray, TObject, TRange, TString:
		return true
	}
	return false
}

// Currency is a fixed-point amount paired with a presentation symbol and a
// minor-unit count (e.g. 2 for cents). It is a distinct Value family from
// Fixed because a currency additionally carries display metadata that plain
// arithmetic has no use for.
type Currency struct {
	Amount     decimal.Decimal
	Symbol     string
	MinorUnits int32
}

// Range is an inclusive, low-to-high integer interval. End < Start is
// rejected, never silently reversed: NewRange returns a plain error and
// CheckRangeOrder a RangeErr.
type Range struct {
	Start int64
	End   int64
}

// Value is the engine's single dynamically-typed value. Exactly one payload
// field is meaningful at a time, selected by Type; which field that is is
// documented next to each constructor below.
type Value struct {
	Type Type

	i   int64   // TInt8/16/32/64 widened to int64
	u   uint64  // TUint8/16/32/64 widened to uint64
	f   float64 // TFloat
	fx  decimal.Decimal
	cur Currency
	b   bool
	s   string
	arr []Value
	obj *Object
	rng Range
}

func Int64(v int64) Value  { return Value{Type: TInt64, i: v} }
func Int32(v int32) Value  { return Value{Type: TInt32, i: int64(v)} }
func Int16(v int16) Value  { return Value{Type: TInt16, i: int64(v)} }
func Int8(v int8) Value    { return Value{Type: TInt8, i: int64(v)} }
func Uint64(v uint64) Value { return Value{Type: TUint64, u: v} }
func Uint32(v uint32) Value { return Value{Type: TUint32, u: uint64(v)} }
func Uint16(v uint16) Value { return Value{Type: TUint16, u: uint64(v)} }
func Uint8(v uint8) Value   { return Value{Type: TUint8, u: uint64(v)} }
func Float(v float64) Value { return Value{Type: TFloat, f: v} }
func Bool(v bool) Value     { return Value{Type: TBool, b: v} }
func String(v string) Value { return Value{Type: TString, s: v} }
func Fixed(v decimal.Decimal) Value { return Value{Type: TFixed, fx: v} }

func CurrencyOf(amount decimal.Decimal, symbol string, minorUnits int32) Value {
	return Value{Type: TCurrency, cur: Currency{Amount: amount, Symbol: symbol, MinorUnits: minorUnits}}
}

func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Type: TArray, arr: elems}
}

func ObjectOf(o *Object) Value { return Value{Type: TObject, obj: o} }

// FuncRef wraps the name of a callable under its value form (§4.5's "a
// variable may hold a function reference").
func FuncRef(name string) Value { return Value{Type: TFuncRef, s: name} }

// NewRange builds an inclusive range, failing if end < start per the
// "ranges are non-empty at construction and ordered low-to-high" invariant.
// Callers that need a langerr.Error (e.g. the evaluator) should use
// value.CheckRangeOrder instead and construct the error themselves with a
// token; this constructor is for internal/test use where a plain Go error
// is enough.
func NewRange(start, end int64) (Value, error) {
	if end < start {
		return Value{}, fmt.Errorf("range end %d is before start %d", end, start)
	}
	return Value{Type: TRange, rng: Range{Start: start, End: end}}, nil
}

// RangeUnchecked builds a Range Value without validating ordering. Used
// internally once a caller has already validated order (e.g. the evaluator,
// which needs to raise a langerr.RangeErr with a token rather than a plain
// error).
func RangeUnchecked(start, end int64) Value {
	return Value{Type: TRange, rng: Range{Start: start, End: end}}
}

// CheckRangeOrder reports a RangeErr if end < start, the evaluator-facing
// counterpart to NewRange's plain-error form: callers that already have a
// source token (the `a..b` AST node) use this to build a properly
// positioned langerr.Error before calling RangeUnchecked.
func CheckRangeOrder(start, end int64, tok *langerr.Token) error {
	if end < start {
		return langerr.NewAt(langerr.RangeErr,
			fmt.Sprintf("range end %d is before start %d", end, start), tok)
	}
	return nil
}

// IntWidth returns the bit width of an integer-tagged Value's Type (8/16/32/64).
func IntWidth(t Type) int {
	switch t {
	case TInt8, TUint8:
		return 8
	case TInt16, TUint16:
		return 16
	case TInt32, TUint32:
		return 32
	case TInt64, TUint64:
		return 64
	}
	return 0
}

// IsSignedInt reports whether an integer-tagged Type is signed.
func IsSignedInt(t Type) bool {
	switch t {
	case TInt8, TInt16, TInt32, TInt64:
		return true
	}
	return false
}

// AsInt64 returns the integer payload of any integer-tagged Value, widened
// to int64. Panics if v is not integer-tagged; callers must check Type (or
// IsNumericType) first, same discipline the teacher's objects package uses
// for its As*Node() downcasts.
func (v Value) AsInt64() int64 {
	if IsSignedInt(v.Type) {
		return v.i
	}
	if v.Type == TUint8 || v.Type == TUint16 || v.Type == TUint32 || v.Type == TUint64 {
		return int64(v.u)
	}
	panic(fmt.Sprintf("value: AsInt64 called on non-integer Value of type %s", v.Type))
}

func (v Value) AsUint64() uint64 {
	switch v.Type {
	case TUint8, TUint16, TUint32, TUint64:
		return v.u
	case TInt8, TInt16, TInt32, TInt64:
		return uint64(v.i)
	}
	panic(fmt.Sprintf("value: AsUint64 called on non-integer Value of type %s", v.Type))
}

func (v Value) AsFloat() float64 {
	switch v.Type {
	case TFloat:
		return v.f
	case TFixed:
		f, _ := v.fx.Float64()
		return f
	}
	if IsIntegerType(v.Type) {
		if IsSignedInt(v.Type) {
			return float64(v.i)
		}
		return float64(v.u)
	}
	panic(fmt.Sprintf("value: AsFloat called on non-numeric Value of type %s", v.Type))
}

func (v Value) AsFixed() decimal.Decimal {
	switch v.Type {
	case TFixed:
		return v.fx
	case TCurrency:
		return v.cur.Amount
	case TFloat:
		return decimal.NewFromFloat(v.f)
	}
	if IsIntegerType(v.Type) {
		return decimal.NewFromInt(v.AsInt64())
	}
	panic(fmt.Sprintf("value: AsFixed called on non-numeric Value of type %s", v.Type))
}

func (v Value) AsBool() bool {
	if v.Type != TBool {
		panic("value: AsBool called on non-bool Value")
	}
	return v.b
}

func (v Value) AsString() string {
	if v.Type != TString {
		panic("value: AsString called on non-string Value")
	}
	return v.s
}

func (v Value) AsArray() []Value {
	if v.Type != TArray {
		panic("value: AsArray called on non-array Value")
	}
	return v.arr
}

func (v Value) AsObject() *Object {
	if v.Type != TObject {
		panic("value: AsObject called on non-object Value")
	}
	return v.obj
}

func (v Value) AsRange() Range {
	if v.Type != TRange {
		panic("value: AsRange called on non-range Value")
	}
	return v.rng
}

// AsFuncRefName returns the callable name a TFuncRef Value wraps.
func (v Value) AsFuncRefName() string {
	if v.Type != TFuncRef {
		panic("value: AsFuncRefName called on non-funcref Value")
	}
	return v.s
}

func (v Value) AsCurrency() Currency {
	if v.Type != TCurrency {
		panic("value: AsCurrency called on non-currency Value")
	}
	return v.cur
}

// Truthy implements the language's falsiness rule used by and/or/if/while:
// zero-valued numbers, "", an empty array, an empty object, and false are
// all falsy; everything else (including any nonzero number and any
// nonempty string) is truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case TBool:
		return v.b
	case TString:
		return v.s != ""
	case TArray:
		return len(v.arr) > 0
	case TObject:
		return v.obj.Len() > 0
	case TRange:
		return true // a constructed Range is always non-empty
	case TFuncRef:
		return true
	case TFloat:
		return v.f != 0
	case TFixed:
		return !v.fx.IsZero()
	case TCurrency:
		return !v.cur.Amount.IsZero()
	}
	if IsIntegerType(v.Type) {
		if IsSignedInt(v.Type) {
			return v.i != 0
		}
		return v.u != 0
	}
	return false
}
