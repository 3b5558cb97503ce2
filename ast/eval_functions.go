/*
File    : exprscript/ast/eval_functions.go
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

// callEntry is the uniform call_function path §4.6 asks for: bind args
// positionally, coerce each to its declared type, invoke the handler, then
// coerce the result to the declared return type. Standard functions and
// user-declared functions both run through this same path, since a user
// function is registered as an ordinary FuncEntry whose Handler happens to
// be a closure over a lazily-compiled body (evalFuncDecl).
func callEntry(st *state.State, entry *state.FuncEntry, args []value.Value, tok *langerr.Token) (value.Value, error) {
	if len(args) != len(entry.Params) {
		return value.Value{}, langerr.NewAt(langerr.FunctionArguments,
			fmt.Sprintf("%s expects %d argument(s), got %d", entry.Name, len(entry.Params), len(args)), tok)
	}

	coerced := make([]value.Value, len(args))
	for i, a := range args {
		v, err := value.Coerce(a, entry.Params[i].Type, tok)
		if err != nil {
			return value.Value{}, langerr.Wrap(langerr.FunctionArgumentType,
				fmt.Sprintf("%s argument %d (%s)", entry.Name, i+1, entry.Params[i].Name), tok, err)
		}
		coerced[i] = v
	}

	st.SetCallToken(tok)
	result, err := entry.Handler(st, coerced)
	if err != nil {
		return value.Value{}, err
	}
	return value.Coerce(result, entry.ReturnType, tok)
}

// resolveCallee implements §4.5 function-call-contract step 1: resolve
// against the current scope chain first (a variable may hold a function
// reference), falling back to treating a bare callee name directly as a
// registry lookup.
func (n *Node) resolveCallee(st *state.State) (string, error) {
	callee := n.Left
	if callee.Kind == KindIdentifier {
		if v, ok := st.Lookup(callee.Name); ok {
			if v.Type != value.TFuncRef {
				return "", langerr.NewAt(langerr.TypeMismatch,
					fmt.Sprintf("%s is not callable", callee.Name), callee.Tok)
			}
			return v.AsFuncRefName(), nil
		}
		return callee.Name, nil
	}

	v, err := callee.Evaluate(st)
	if err != nil {
		return "", attachTok(err, callee.Tok)
	}
	if v.Type != value.TFuncRef {
		return "", langerr.NewAt(langerr.TypeMismatch, "value is not callable", callee.Tok)
	}
	return v.AsFuncRefName(), nil
}

// evalCall implements `f(args...)` (§4.5).
func (n *Node) evalCall(st *state.State) (value.Value, error) {
	name, err := n.resolveCallee(st)
	if err != nil {
		return value.Value{}, err
	}

	entry, ok := st.Registry().Lookup(name)
	if !ok {
		return value.Value{}, langerr.NewAt(langerr.FunctionName,
			fmt.Sprintf("undefined function %q", name), n.Tok)
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := a.Evaluate(st)
		if err != nil {
			return value.Value{}, attachTok(err, a.Tok)
		}
		args = append(args, v)
	}

	result, err := callEntry(st, entry, args, n.Tok)
	return result, attachTok(err, n.Tok)
}

// evalFuncDecl implements `name(args) = expr` / `name(args) { stmts }`: it
// registers a FuncEntry whose Handler lazily compiles the body from its
// captured tokens on first call (§4.7) and, from then on, reuses the
// compiled *Node cached by state.State.CompiledBody. Declaring a function
// evaluates to a funcref to its own name. Declarations are recognized only
// at statement position, so a form like `g = count_to(n) = n` does not
// declare anything: it fails to compile with a Syntax error.
func (n *Node) evalFuncDecl(st *state.State) (value.Value, error) {
	params := make([]string, len(n.Params))
	copy(params, n.Params)
	entryParams := make([]state.Param, len(params))
	for i, p := range params {
		entryParams[i] = state.Param{Name: p, Type: value.TAny}
	}

	bodyTokens := n.BodyTokens
	bodyKey := n.BodyKey
	isBlock := n.IsBlockFn

	handler := func(callSt *state.State, args []value.Value) (value.Value, error) {
		compiled, err := callSt.CompiledBody(bodyKey, func(string) (interface{}, error) {
			return compileTokenSlice(bodyTokens, isBlock, callSt)
		})
		if err != nil {
			return value.Value{}, err
		}
		body := compiled.(*Node)

		if err := callSt.EnterCall(); err != nil {
			return value.Value{}, err
		}
		defer callSt.ExitCall()

		callSt.PushScope()
		defer callSt.PopScope()
		for i, pname := range params {
			var v value.Value
			if i < len(args) {
				v = args[i]
			}
			callSt.Bind(pname, v)
		}

		result, err := body.Evaluate(callSt)
		if err != nil {
			if le, ok := err.(*langerr.Error); ok && le.Kind == langerr.Return {
				if rv, ok := le.Value.(value.Value); ok {
					return rv, nil
				}
				return value.Value{}, nil
			}
			return value.Value{}, err
		}
		return result, nil
	}

	st.Registry().Register(state.FuncEntry{
		Name:       n.Name,
		Category:   "user",
		Doc:        fmt.Sprintf("user-declared function %s(%v)", n.Name, params),
		Params:     entryParams,
		ReturnType: value.TAny,
		Handler:    handler,
	})

	return value.FuncRef(n.Name), nil
}
