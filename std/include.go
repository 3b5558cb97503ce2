/*
File    : exprscript/std/include.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - include.go
// include(path) reads a script file, compiles it through the same
// lex/parse pipeline as the top-level engine, and evaluates its statements
// directly against the caller's State (splicing them at the call site per
// spec.md §"include"). Every spliced node's token is shifted by OffsetLine
// so a failure inside the included file reports a line number relative to
// the including file, not the included one.
package std

import (
	"fmt"
	"os"

	"github.com/akashmaji946/exprscript/ast"
	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func includeFuncs() []state.FuncEntry {
	return []state.FuncEntry{
		{
			Name: "include", Category: "IO",
			Doc:        "include(path) reads path, compiles it, and evaluates its statements in place at the call site; its errors' line numbers are offset to read relative to the including file.",
			Params:     []state.Param{{Name: "path", Type: value.TString}},
			ReturnType: value.TAny,
			Handler:    includeHandler,
		},
	}
}

func includeHandler(st *state.State, args []value.Value) (value.Value, error) {
	path := args[0].AsString()

	raw, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, langerr.New(langerr.Custom, fmt.Sprintf("include: cannot read %q: %v", path, err))
	}
	src := string(raw)

	if err := lexer.CheckBalance(src); err != nil {
		return value.Value{}, err
	}

	lex := lexer.NewLexer(src)
	toks := lex.ConsumeTokens()

	baseLine := 0
	if tok := st.CallToken(); tok != nil {
		baseLine = tok.Line - 1
	}

	stmts, err := ast.Compile(toks, st)
	if err != nil {
		if le, ok := err.(*langerr.Error); ok {
			le.OffsetLinecount(baseLine)
		}
		return value.Value{}, err
	}

	for _, stmt := range stmts {
		stmt.OffsetLine(baseLine)
	}

	var result value.Value
	for _, stmt := range stmts {
		v, err := stmt.Evaluate(st)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}
