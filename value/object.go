/*
File    : exprscript/value/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strconv"

// Object is a Value→Value mapping that preserves insertion order, the same
// shape as the teacher's objects.Map (a Go map for lookup plus a parallel
// ordered key slice) generalized from string keys to full Value keys, since
// this engine's object keys may be any scalar Value, not just strings.
//
// Keys are compared with the type-tolerant Value equality relation
// (1 == 1.0), so the internal index is keyed by a canonical hash string
// (hashKey) rather than the Go value itself.
type Object struct {
	index map[string]int // hashKey -> position in keys/vals
	keys  []Value
	vals  []Value
}

func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or updates the value bound to key, preserving the original
// insertion position on update (matching ordinary map semantics: updating a
// key does not move it to the end).
func (o *Object) Set(key, val Value) {
	hk := hashKey(key)
	if i, ok := o.index[hk]; ok {
		o.vals[i] = val
		return
	}
	o.index[hk] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

func (o *Object) Get(key Value) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[hashKey(key)]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

func (o *Object) Delete(key Value) bool {
	i, ok := o.index[hashKey(key)]
	if !ok {
		return false
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, hashKey(key))
	for hk, pos := range o.index {
		if pos > i {
			o.index[hk] = pos - 1
		}
	}
	return true
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the object's keys in insertion order. The returned slice must
// not be mutated by callers.
func (o *Object) Keys() []Value {
	if o == nil {
		return nil
	}
	return o.keys
}

func (o *Object) Values() []Value {
	if o == nil {
		return nil
	}
	return o.vals
}

// Copy returns a new Object with the same entries in the same order. It is
// shallow: the entry Values themselves are not copied.
func (o *Object) Copy() *Object {
	cp := NewObject()
	for i, k := range o.keys {
		cp.Set(k, o.vals[i])
	}
	return cp
}

// hashKey produces a canonical string for use as a map key so that Value
// equality for object keys stays type-tolerant: 1 (TInt64) and 1.0 (TFloat)
// hash identically, and distinct string/bool/array representations hash
// distinctly.
func hashKey(v Value) string {
	switch v.Type {
	case TBool:
		if v.b {
			return "b:1"
		}
		return "b:0"
	case TString:
		return "s:" + v.s
	case TRange:
		return "r:" + strconv.FormatInt(v.rng.Start, 10) + ":" + strconv.FormatInt(v.rng.End, 10)
	case TArray:
		s := "a:["
		for _, e := range v.arr {
			s += hashKey(e) + ","
		}
		return s + "]"
	case TObject:
		s := "o:{"
		for i, k := range v.obj.keys {
			s += hashKey(k) + "=" + hashKey(v.obj.vals[i]) + ","
		}
		return s + "}"
	}
	// Every numeric family (integer widths, float, fixed, currency)
	// collapses to a canonical decimal string so 1 == 1.0 == 1.0d hash
	// identically, matching the type-tolerant equality relation.
	return "n:" + v.AsFixed().String()
}
