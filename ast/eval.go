/*
File    : exprscript/ast/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

// Evaluate walks n depth-first, post-order (§4.5): children are evaluated
// before the node's own operation runs. st.CheckTimer is consulted before
// every node so a runaway script is interrupted promptly rather than only
// between top-level statements.
func (n *Node) Evaluate(st *state.State) (value.Value, error) {
	if n == nil {
		return value.Value{}, nil
	}
	if err := st.CheckTimer(); err != nil {
		return value.Value{}, err
	}

	switch n.Kind {
	case KindIntLit, KindFloatLit, KindFixedLit, KindStringLit, KindBoolLit:
		return n.Lit, nil
	case KindNilLit:
		return value.Value{}, nil

	case KindIdentifier:
		return n.evalIdentifier(st)
	case KindArrayLit:
		return n.evalArrayLit(st)
	case KindObjectLit:
		return n.evalObjectLit(st)
	case KindError:
		return value.Value{}, langerr.NewAt(n.ErrKind, string(n.ErrKind), n.Tok)

	case KindUnary:
		return n.evalUnary(st)
	case KindBinary:
		return n.evalBinary(st)
	case KindLogical:
		return n.evalLogical(st)
	case KindMatch:
		return n.evalMatch(st)
	case KindRange:
		return n.evalRange(st)
	case KindDecorator:
		return n.evalDecorator(st)

	case KindAssign:
		return n.evalAssign(st)
	case KindGlobalAssign:
		return n.evalGlobalAssign(st)

	case KindIndex:
		return n.evalIndex(st)
	case KindMemberAccess:
		return n.evalMemberAccess(st)
	case KindCall:
		return n.evalCall(st)

	case KindIf:
		return n.evalIf(st)
	case KindWhile:
		return n.evalWhile(st)
	case KindForIn:
		return n.evalForIn(st)
	case KindBlock:
		return n.evalBlock(st)
	case KindReturn:
		return n.evalReturn(st)
	case KindFuncDecl:
		return n.evalFuncDecl(st)
	}

	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled node kind", n.Tok)
}

// attachTok fills in err's source-position token if it doesn't already have
// one, implementing the "errors accumulate the nearest-enclosing token"
// propagation rule (§4.5) without overwriting a more precise inner token.
func attachTok(err error, tok *langerr.Token) error {
	if le, ok := err.(*langerr.Error); ok {
		le.AttachToken(tok)
	}
	return err
}
