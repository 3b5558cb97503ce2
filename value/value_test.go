/*
File    : exprscript/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerce_Idempotent(t *testing.T) {
	v := Int32(7)
	out, err := Coerce(v, TInt32, nil)
	assert.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestCoerce_AnyPassthrough(t *testing.T) {
	v := String("hello")
	out, err := Coerce(v, TAny, nil)
	assert.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestCoerce_WidensAndOverflows(t *testing.T) {
	_, err := Coerce(Int64(200), TInt8, nil)
	assert.Error(t, err)
	assert.True(t, langerr.Is(err, langerr.Overflow))

	out, err := Coerce(Int64(100), TInt8, nil)
	assert.NoError(t, err)
	assert.Equal(t, int8(100), int8(out.AsInt64()))
}

func TestCoerce_NonIntegralFloatRejected(t *testing.T) {
	_, err := Coerce(Float(3.5), TInt64, nil)
	assert.Error(t, err)
}

func TestEqual_NumericTypeTolerance(t *testing.T) {
	assert.True(t, Int64(1).Equal(Float(1.0)))
	assert.True(t, Int32(2).Equal(Fixed(decimal.NewFromInt(2))))
	assert.False(t, Int64(1).Equal(String("1")))
}

func TestEqual_Compound(t *testing.T) {
	a := Array([]Value{Int64(1), Int64(2)})
	b := Array([]Value{Int64(1), Float(2.0)})
	assert.True(t, a.Equal(b))

	o1 := NewObject()
	o1.Set(String("k"), Int64(1))
	o2 := NewObject()
	o2.Set(String("k"), Float(1.0))
	assert.True(t, ObjectOf(o1).Equal(ObjectOf(o2)))
}

func TestTruthy_FalsinessRule(t *testing.T) {
	assert.False(t, Int64(0).Truthy())
	assert.False(t, String("").Truthy())
	assert.False(t, Array(nil).Truthy())
	assert.False(t, ObjectOf(NewObject()).Truthy())
	assert.False(t, Bool(false).Truthy())

	assert.True(t, Int64(1).Truthy())
	assert.True(t, String("x").Truthy())
	r, _ := NewRange(1, 1)
	assert.True(t, r.Truthy())
}

func TestObject_PreservesInsertionOrderAcrossUpdate(t *testing.T) {
	o := NewObject()
	o.Set(String("a"), Int64(1))
	o.Set(String("b"), Int64(2))
	o.Set(String("a"), Int64(99))

	assert.Equal(t, []string{"a", "b"}, keyStrings(o))
	v, ok := o.Get(String("a"))
	assert.True(t, ok)
	assert.Equal(t, int64(99), v.AsInt64())
}

func keyStrings(o *Object) []string {
	out := make([]string, 0, o.Len())
	for _, k := range o.Keys() {
		out = append(out, k.AsString())
	}
	return out
}

func TestArithmetic_AddStringConcat(t *testing.T) {
	out, err := Add(String("x="), Int64(1), nil)
	assert.NoError(t, err)
	assert.Equal(t, "x=1", out.AsString())
}

func TestArithmetic_DivPromotesToFloatOnRemainder(t *testing.T) {
	out, err := Div(Int64(7), Int64(2), nil)
	assert.NoError(t, err)
	assert.Equal(t, TFloat, out.Type)
	assert.InDelta(t, 3.5, out.AsFloat(), 1e-9)

	out, err = Div(Int64(6), Int64(2), nil)
	assert.NoError(t, err)
	assert.Equal(t, TInt64, out.Type)
	assert.Equal(t, int64(3), out.AsInt64())
}

func TestArithmetic_DivisionByZero(t *testing.T) {
	_, err := Div(Int64(1), Int64(0), nil)
	assert.Error(t, err)
}

func TestArithmetic_BitwiseRejectsFloat(t *testing.T) {
	_, err := BitAnd(Float(1.0), Int64(2), nil)
	assert.Error(t, err)
}

func TestIndex_ArrayNegativeAndOutOfRange(t *testing.T) {
	arr := Array([]Value{Int64(10), Int64(20), Int64(30)})
	v, err := Index(arr, Int64(-1), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), v.AsInt64())

	_, err = Index(arr, Int64(5), nil)
	assert.Error(t, err)
}

func TestIndex_ObjectMissingKey(t *testing.T) {
	o := NewObject()
	o.Set(String("k"), Int64(1))
	_, err := Index(ObjectOf(o), String("missing"), nil)
	assert.Error(t, err)
}

func TestIndex_RangeSlice(t *testing.T) {
	arr := Array([]Value{Int64(1), Int64(2), Int64(3), Int64(4)})
	r, _ := NewRange(1, 2)
	out, err := Index(arr, r, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Value{Int64(2), Int64(3)}, out.AsArray())
}
