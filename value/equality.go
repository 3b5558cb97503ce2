/*
File    : exprscript/value/equality.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// Equal implements the data model's type-tolerant equality relation: two
// Values compare equal if they are both numeric (any width/float/fixed) and
// carry the same mathematical value (1 == 1.0), or if they are the same
// compound/bool/string shape with equal contents. This generalizes the
// teacher's Equal (strict) vs EqualTo (coercive) split in tunascript's
// syntax.Value into a single relation, since the spec names exactly one
// equality relation and does not ask for a strict variant.
func (v Value) Equal(other Value) bool {
	if IsNumericType(v.Type) && IsNumericType(other.Type) {
		return v.AsFixed().Equal(other.AsFixed())
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TBool:
		return v.b == other.b
	case TString:
		return v.s == other.s
	case TCurrency:
		return v.cur.Amount.Equal(other.cur.Amount) && v.cur.Symbol == other.cur.Symbol
	case TFuncRef:
		return v.s == other.s
	case TRange:
		return v.rng == other.rng
	case TArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case TObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		for i, k := range v.obj.keys {
			ov, ok := other.obj.Get(k)
			if !ok || !ov.Equal(v.obj.vals[i]) {
				return false
			}
		}
		return true
	}
	return false
}
