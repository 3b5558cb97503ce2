/*
File    : exprscript/ast/eval_operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func (n *Node) evalUnary(st *state.State) (value.Value, error) {
	switch n.Op {
	case lexer.INC_OP, lexer.DEC_OP:
		return n.evalIncDec(st)
	}

	operand, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	switch n.Op {
	case lexer.MINUS_OP:
		v, err := value.Negate(operand, n.Tok)
		return v, attachTok(err, n.Tok)
	case lexer.NOT_OP, lexer.NOT_KEY:
		return value.Not(operand), nil
	case lexer.BIT_NOT_OP:
		v, err := value.BitNot(operand, n.Tok)
		return v, attachTok(err, n.Tok)
	}
	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled unary operator", n.Tok)
}

// evalIncDec handles both prefix (`++x`) and postfix (`x++`) forms: the
// target is read, adjusted by one, written back, and either the new value
// (prefix) or the value before the adjustment (postfix) is returned. A
// never-bound identifier operand reads as 0 rather than failing (§4.4).
func (n *Node) evalIncDec(st *state.State) (value.Value, error) {
	cur, err := n.incDecOperand(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	one := value.Int64(1)
	var next value.Value
	if n.Op == lexer.INC_OP {
		next, err = value.Add(cur, one, n.Tok)
	} else {
		next, err = value.Sub(cur, one, n.Tok)
	}
	if err != nil {
		return value.Value{}, attachTok(err, n.Tok)
	}
	if err := assignTo(n.Left, st, next); err != nil {
		return value.Value{}, attachTok(err, n.Tok)
	}
	if n.Postfix {
		return cur, nil
	}
	return next, nil
}

// incDecOperand reads ++/--'s operand, treating an identifier that is bound
// nowhere (scope chain or function registry) as 0 instead of the undefined-
// name error evalIdentifier would otherwise raise.
func (n *Node) incDecOperand(st *state.State) (value.Value, error) {
	if n.Left.Kind == KindIdentifier {
		if v, ok := st.Lookup(n.Left.Name); ok {
			return v, nil
		}
		if _, ok := st.Registry().Lookup(n.Left.Name); !ok {
			return value.Int64(0), nil
		}
	}
	return n.Left.Evaluate(st)
}

func (n *Node) evalBinary(st *state.State) (value.Value, error) {
	left, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	right, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}

	switch n.Op {
	case lexer.PLUS_OP:
		return value.Add(left, right, n.Tok)
	case lexer.MINUS_OP:
		return value.Sub(left, right, n.Tok)
	case lexer.MUL_OP:
		return value.Mul(left, right, n.Tok)
	case lexer.DIV_OP:
		return value.Div(left, right, n.Tok)
	case lexer.MOD_OP:
		return value.Mod(left, right, n.Tok)
	case lexer.POW_OP:
		return value.Pow(left, right, n.Tok)
	case lexer.BIT_AND_OP:
		return value.BitAnd(left, right, n.Tok)
	case lexer.BIT_OR_OP:
		return value.BitOr(left, right, n.Tok)
	case lexer.BIT_XOR_OP:
		return value.BitXor(left, right, n.Tok)
	case lexer.BIT_LEFT_OP:
		return value.Shl(left, right, n.Tok)
	case lexer.BIT_RIGHT_OP:
		return value.Shr(left, right, n.Tok)
	case lexer.EQ_OP:
		return value.Bool(left.Equal(right)), nil
	case lexer.NE_OP:
		return value.Bool(!left.Equal(right)), nil
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return n.evalRelational(left, right)
	}
	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled binary operator", n.Tok)
}

func (n *Node) evalRelational(left, right value.Value) (value.Value, error) {
	cmp, err := value.Compare(left, right, n.Tok)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case lexer.GT_OP:
		return value.Bool(cmp > 0), nil
	case lexer.LT_OP:
		return value.Bool(cmp < 0), nil
	case lexer.GE_OP:
		return value.Bool(cmp >= 0), nil
	case lexer.LE_OP:
		return value.Bool(cmp <= 0), nil
	}
	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled relational operator", n.Tok)
}

// evalLogical implements short-circuiting `and`/`or`: the right operand is
// only evaluated when its value could change the result.
func (n *Node) evalLogical(st *state.State) (value.Value, error) {
	left, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	if n.Op == lexer.AND_KEY && !left.Truthy() {
		return value.Bool(false), nil
	}
	if n.Op == lexer.OR_KEY && left.Truthy() {
		return value.Bool(true), nil
	}
	right, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}
	return value.Bool(right.Truthy()), nil
}

// evalMatch implements `is`/`contains`/`matches`/`starts_with`/`ends_with`.
// `is` is special: its right-hand side is a bare type-name identifier, read
// directly rather than evaluated as an expression (§4.4: "the identifier is
// taken as a type name, not evaluated").
func (n *Node) evalMatch(st *state.State) (value.Value, error) {
	if n.Op == lexer.IS_KEY {
		return n.evalIs(st)
	}

	left, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	right, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}

	switch n.Op {
	case lexer.CONTAINS_KEY:
		return n.evalContains(left, right)
	case lexer.MATCHES_KEY:
		if left.Type != value.TString || right.Type != value.TString {
			return value.Value{}, langerr.NewAt(langerr.TypeMismatch, "matches requires two strings", n.Tok)
		}
		re, err := regexp.Compile(right.AsString())
		if err != nil {
			return value.Value{}, langerr.NewAt(langerr.ValueFormat,
				fmt.Sprintf("invalid regular expression: %v", err), n.Tok)
		}
		return value.Bool(re.MatchString(left.AsString())), nil
	case lexer.STARTS_WITH_KEY:
		if left.Type != value.TString || right.Type != value.TString {
			return value.Value{}, langerr.NewAt(langerr.TypeMismatch, "starts_with requires two strings", n.Tok)
		}
		return value.Bool(strings.HasPrefix(left.AsString(), right.AsString())), nil
	case lexer.ENDS_WITH_KEY:
		if left.Type != value.TString || right.Type != value.TString {
			return value.Value{}, langerr.NewAt(langerr.TypeMismatch, "ends_with requires two strings", n.Tok)
		}
		return value.Bool(strings.HasSuffix(left.AsString(), right.AsString())), nil
	}
	return value.Value{}, langerr.NewAt(langerr.Internal, "unhandled match operator", n.Tok)
}

// evalIs assumes n.Right is a bare identifier: parseMatch rejects anything
// else for `is` at compile time, so that shape is never evaluated.
func (n *Node) evalIs(st *state.State) (value.Value, error) {
	left, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	typeName := string(left.Type)
	if typeName == "" {
		typeName = "nil"
	}
	return value.Bool(typeName == n.Right.Name), nil
}

func (n *Node) evalContains(left, right value.Value) (value.Value, error) {
	switch left.Type {
	case value.TString:
		if right.Type != value.TString {
			return value.Value{}, langerr.NewAt(langerr.TypeMismatch, "contains on a string requires a string", n.Tok)
		}
		return value.Bool(strings.Contains(left.AsString(), right.AsString())), nil
	case value.TArray:
		for _, elem := range left.AsArray() {
			if elem.Equal(right) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case value.TObject:
		_, ok := left.AsObject().Get(right)
		return value.Bool(ok), nil
	}
	return value.Value{}, langerr.NewAt(langerr.TypeMismatch,
		fmt.Sprintf("cannot evaluate contains on %s", left.Type), n.Tok)
}

// evalRange implements `a..b`, an inclusive integer range.
func (n *Node) evalRange(st *state.State) (value.Value, error) {
	left, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	right, err := n.Right.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Right.Tok)
	}
	start, err := value.Coerce(left, value.TInt64, n.Tok)
	if err != nil {
		return value.Value{}, err
	}
	end, err := value.Coerce(right, value.TInt64, n.Tok)
	if err != nil {
		return value.Value{}, err
	}
	if err := value.CheckRangeOrder(start.AsInt64(), end.AsInt64(), n.Tok); err != nil {
		return value.Value{}, err
	}
	return value.RangeUnchecked(start.AsInt64(), end.AsInt64()), nil
}

// evalDecorator implements the postfix `expr @name` operator (§4.4): it
// recurses into arrays/objects leaf-wise (§8's decorator-recursion
// example), applying the named decorator to every scalar, and otherwise
// dispatches through the same call_function path as an ordinary call.
func (n *Node) evalDecorator(st *state.State) (value.Value, error) {
	operand, err := n.Left.Evaluate(st)
	if err != nil {
		return value.Value{}, attachTok(err, n.Left.Tok)
	}
	s, err := n.applyDecorator(st, operand)
	if err != nil {
		return value.Value{}, attachTok(err, n.Tok)
	}
	return value.String(s), nil
}

func (n *Node) applyDecorator(st *state.State, v value.Value) (string, error) {
	switch v.Type {
	case value.TArray:
		parts := make([]string, 0, len(v.AsArray()))
		for _, e := range v.AsArray() {
			s, err := n.applyDecorator(st, e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case value.TObject:
		obj := v.AsObject()
		parts := make([]string, 0, obj.Len())
		for i, k := range obj.Keys() {
			s, err := n.applyDecorator(st, obj.Values()[i])
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("%s: %s", value.ToObjectString(k), s))
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}

	entry, ok := st.Registry().Lookup(n.Name)
	if !ok {
		return "", langerr.NewAt(langerr.FunctionName, fmt.Sprintf("undefined decorator %q", n.Name), n.Tok)
	}
	result, err := callEntry(st, entry, []value.Value{v}, n.Tok)
	if err != nil {
		return "", err
	}
	return result.AsString(), nil
}
