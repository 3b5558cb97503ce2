/*
File    : exprscript/ast/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

// assignTo writes v into the location target denotes — a variable, an
// array/object element, or an object field. The parser only ever builds
// KindAssign/KindUnary(inc-dec) nodes over an assignable target
// (isAssignable), so the default case here is unreachable in practice.
func assignTo(target *Node, st *state.State, v value.Value) error {
	switch target.Kind {
	case KindIdentifier:
		st.Assign(target.Name, v)
		return nil

	case KindIndex:
		base, err := target.Left.Evaluate(st)
		if err != nil {
			return attachTok(err, target.Left.Tok)
		}
		ix, err := target.Right.Evaluate(st)
		if err != nil {
			return attachTok(err, target.Right.Tok)
		}
		return assignIndex(base, ix, v, target.Tok)

	case KindMemberAccess:
		base, err := target.Left.Evaluate(st)
		if err != nil {
			return attachTok(err, target.Left.Tok)
		}
		if base.Type != value.TObject {
			return langerr.NewAt(langerr.TypeMismatch,
				fmt.Sprintf("cannot assign a field on %s", base.Type), target.Tok)
		}
		base.AsObject().Set(value.String(target.Name), v)
		return nil
	}
	return langerr.NewAt(langerr.Internal, "assignment target is not assignable", target.Tok)
}

func assignIndex(base, ix, v value.Value, tok *langerr.Token) error {
	switch base.Type {
	case value.TObject:
		base.AsObject().Set(ix, v)
		return nil
	case value.TArray:
		if !value.IsIntegerType(ix.Type) {
			return langerr.NewAt(langerr.TypeMismatch,
				fmt.Sprintf("cannot index array with %s", ix.Type), tok)
		}
		arr := base.AsArray()
		n := int64(len(arr))
		i := ix.AsInt64()
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return langerr.NewAt(langerr.Index,
				fmt.Sprintf("index %d out of range for length %d", ix.AsInt64(), n), tok)
		}
		arr[i] = v
		return nil
	}
	return langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot assign into %s", base.Type), tok)
}

// evalAssign handles `=` and every compound-assign operator: for a compound
// operator, the target's current value is read first and combined with the
// right-hand side using the same arithmetic/bitwise primitives the plain
// binary operators use.
func (n *Node) evalAssign(st *state.State) (value.Value, error) {
	rhs, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}

	newVal := rhs
	if n.Op != lexer.ASSIGN_OP {
		cur, err := n.Left.Evaluate(st)
		if err != nil {
			return value.Value{}, attachTok(err, n.Left.Tok)
		}
		newVal, err = combineCompound(n.Op, cur, rhs, n.Tok)
		if err != nil {
			return value.Value{}, err
		}
	}

	if err := assignTo(n.Left, st, newVal); err != nil {
		return value.Value{}, attachTok(err, n.Tok)
	}
	return newVal, nil
}

func combineCompound(op lexer.TokenType, cur, rhs value.Value, tok *langerr.Token) (value.Value, error) {
	switch op {
	case lexer.PLUS_ASSIGN:
		return value.Add(cur, rhs, tok)
	case lexer.MINUS_ASSIGN:
		return value.Sub(cur, rhs, tok)
	case lexer.MUL_ASSIGN:
		return value.Mul(cur, rhs, tok)
	case lexer.DIV_ASSIGN:
		return value.Div(cur, rhs, tok)
	case lexer.MOD_ASSIGN:
		return value.Mod(cur, rhs, tok)
	case lexer.BIT_AND_ASSIGN:
		return value.BitAnd(cur, rhs, tok)
	case lexer.BIT_OR_ASSIGN:
		return value.BitOr(cur, rhs, tok)
	case lexer.BIT_XOR_ASSIGN:
		return value.BitXor(cur, rhs, tok)
	case lexer.BIT_LEFT_ASSIGN:
		return value.Shl(cur, rhs, tok)
	case lexer.BIT_RIGHT_ASSIGN:
		return value.Shr(cur, rhs, tok)
	}
	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled compound-assign operator", tok)
}

// evalGlobalAssign implements `global name = expr` (§4.5): it always writes
// the global store, regardless of any same-named local already in scope.
func (n *Node) evalGlobalAssign(st *state.State) (value.Value, error) {
	rhs, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}
	st.AssignGlobal(n.Name, rhs)
	return rhs, nil
}

// evalIndex implements `base[ix]`, delegating entirely to value.Index
// (§4.5: compound ix yields a sequence, scalar ix yields one element).
func (n *Node) evalIndex(st *state.State) (value.Value, error) {
	base, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	ix, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}
	v, err := value.Index(base, ix, n.Tok)
	return v, attachTok(err, n.Tok)
}

// evalMemberAccess implements `a.field`, sugar for `a["field"]` (§4.5).
func (n *Node) evalMemberAccess(st *state.State) (value.Value, error) {
	base, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	v, err := value.Index(base, value.String(n.Name), n.Tok)
	return v, attachTok(err, n.Tok)
}
