/*
File    : exprscript/value/index.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
)

// Index implements `base[ix]`. A scalar integer ix selects a single element
// from an Array or rune from a String (negative indices count from the end,
// matching the teacher's objects.Array slice-index convention); a Range ix
// selects a sub-sequence; an Object ix is always treated as a key lookup
// regardless of ix's type, since objects are keyed rather than positional.
//
// Out-of-range on a sequence raises Index; a missing Object key raises
// KeyNotFound — these are deliberately distinct Kinds per the data model's
// error taxonomy.
func Index(base, ix Value, tok *langerr.Token) (Value, error) {
	if base.Type == TObject {
		v, ok := base.obj.Get(ix)
		if !ok {
			return Value{}, langerr.NewAt(langerr.KeyNotFound,
				fmt.Sprintf("key %s not found in object", ToObjectString(ix)), tok)
		}
		return v, nil
	}

	if ix.Type == TRange {
		return indexRange(base, ix.rng, tok)
	}

	if !IsIntegerType(ix.Type) {
		return Value{}, langerr.NewAt(langerr.TypeMismatch,
			fmt.Sprintf("cannot index %s with %s", base.Type, ix.Type), tok)
	}
	i := ix.AsInt64()

	switch base.Type {
	case TArray:
		n := int64(len(base.arr))
		real, err := normalizeIndex(i, n, tok)
		if err != nil {
			return Value{}, err
		}
		return base.arr[real], nil
	case TString:
		runes := []rune(base.s)
		n := int64(len(runes))
		real, err := normalizeIndex(i, n, tok)
		if err != nil {
			return Value{}, err
		}
		return String(string(runes[real])), nil
	case TRange:
		n := base.rng.End - base.rng.Start + 1
		real, err := normalizeIndex(i, n, tok)
		if err != nil {
			return Value{}, err
		}
		return Int64(base.rng.Start + real), nil
	}

	return Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot index %s", base.Type), tok)
}

func normalizeIndex(i, n int64, tok *langerr.Token) (int64, error) {
	real := i
	if real < 0 {
		real += n
	}
	if real < 0 || real >= n {
		return 0, langerr.NewAt(langerr.Index,
			fmt.Sprintf("index %d out of range for length %d", i, n), tok)
	}
	return real, nil
}

// indexRange implements base[a..b], a sub-sequence slice.
func indexRange(base Value, r Range, tok *langerr.Token) (Value, error) {
	switch base.Type {
	case TArray:
		n := int64(len(base.arr))
		start, err := normalizeIndex(r.Start, n, tok)
		if err != nil {
			return Value{}, err
		}
		end, err := normalizeIndex(r.End, n, tok)
		if err != nil {
			return Value{}, err
		}
		if end < start {
			return Array(nil), nil
		}
		out := make([]Value, end-start+1)
		copy(out, base.arr[start:end+1])
		return Array(out), nil
	case TString:
		runes := []rune(base.s)
		n := int64(len(runes))
		start, err := normalizeIndex(r.Start, n, tok)
		if err != nil {
			return Value{}, err
		}
		end, err := normalizeIndex(r.End, n, tok)
		if err != nil {
			return Value{}, err
		}
		if end < start {
			return String(""), nil
		}
		return String(string(runes[start : end+1])), nil
	}
	return Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot slice %s with a range", base.Type), tok)
}
