/*
File    : exprscript/ast/eval_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

// evalIdentifier resolves a bare name: first as a variable in the current
// scope chain, else as a standard/user function name, returned as a
// TFuncRef Value so it can be bound to a variable and called indirectly
// (§4.5 function-call contract step 1: "a variable may hold a function
// reference").
func (n *Node) evalIdentifier(st *state.State) (value.Value, error) {
	if v, ok := st.Lookup(n.Name); ok {
		return v, nil
	}
	if _, ok := st.Registry().Lookup(n.Name); ok {
		return value.FuncRef(n.Name), nil
	}
	return value.Value{}, langerr.NewAt(langerr.FunctionName,
		fmt.Sprintf("undefined name %q", n.Name), n.Tok)
}

func (n *Node) evalArrayLit(st *state.State) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := a.Evaluate(st)
		if err != nil {
			return value.Value{}, attachTok(err, a.Tok)
		}
		elems = append(elems, v)
	}
	return value.Array(elems), nil
}

// evalObjectLit evaluates entries left-to-right, per §5's ordering
// guarantee, so side-effecting key/value expressions run in source order.
func (n *Node) evalObjectLit(st *state.State) (value.Value, error) {
	obj := value.NewObject()
	for _, e := range n.Entries {
		k, err := e.Key.Evaluate(st)
		if err != nil {
			return value.Value{}, attachTok(err, e.Key.Tok)
		}
		v, err := e.Value.Evaluate(st)
		if err != nil {
			return value.Value{}, attachTok(err, e.Value.Tok)
		}
		obj.Set(k, v)
	}
	return value.ObjectOf(obj), nil
}
