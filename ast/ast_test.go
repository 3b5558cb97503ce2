/*
File    : exprscript/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
	"github.com/stretchr/testify/assert"
)

// compileErr lexes and compiles source against a fresh State, returning
// Compile's error without evaluating anything (for asserting a failure is
// caught at compile time, not left to surface from Evaluate).
func compileErr(t *testing.T, st *state.State, source string) error {
	t.Helper()
	assert.NoError(t, lexer.CheckBalance(source))
	lex := lexer.NewLexer(source)
	toks := lex.ConsumeTokens()
	_, err := Compile(toks, st)
	return err
}

// evalAll lexes and compiles source against a fresh State (no stdlib, so
// these tests exercise only the grammar/evaluator, not any standard
// function), then evaluates every top-level statement in order.
func evalAll(t *testing.T, st *state.State, source string) []value.Value {
	t.Helper()
	assert.NoError(t, lexer.CheckBalance(source))
	lex := lexer.NewLexer(source)
	toks := lex.ConsumeTokens()

	stmts, err := Compile(toks, st)
	assert.NoError(t, err)

	results := make([]value.Value, 0, len(stmts))
	for _, stmt := range stmts {
		v, err := stmt.Evaluate(st)
		assert.NoError(t, err)
		results = append(results, v)
	}
	return results
}

func newState(t *testing.T) *state.State {
	t.Helper()
	BuildRegistry()
	return state.New(state.NewRegistry(nil), state.Options{})
}

func lastOf(vs []value.Value) value.Value {
	return vs[len(vs)-1]
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "2 + 3 * 4;")
	assert.Equal(t, int64(14), lastOf(vs).AsInt64())
}

func TestEval_ParenthesesOverridePrecedence(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "(2 + 3) * 4;")
	assert.Equal(t, int64(20), lastOf(vs).AsInt64())
}

func TestEval_LogicalShortCircuitAnd(t *testing.T) {
	st := newState(t)
	// mark() is only ever reached if the right side actually evaluates.
	evalAll(t, st, `
		mark() { global g = 1; }
		false and mark();
	`)
	_, ok := st.LookupGlobal("g")
	assert.False(t, ok, "and must not evaluate its right side once the left side is false")
}

func TestEval_LogicalShortCircuitOr(t *testing.T) {
	st := newState(t)
	evalAll(t, st, `
		mark() { global g = 1; }
		true or mark();
	`)
	_, ok := st.LookupGlobal("g")
	assert.False(t, ok, "or must not evaluate its right side once the left side is true")
}

func TestEval_IfThenElseBranching(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "if 1 < 2 then 10 else 20;")
	assert.Equal(t, int64(10), lastOf(vs).AsInt64())

	vs = evalAll(t, st, "if 1 > 2 then 10 else 20;")
	assert.Equal(t, int64(20), lastOf(vs).AsInt64())
}

func TestEval_WhileLoopAccumulates(t *testing.T) {
	st := newState(t)
	evalAll(t, st, `
		global i = 0;
		global sum = 0;
		while i < 5 do {
			global sum = sum + i;
			global i = i + 1;
		}
	`)
	v, ok := st.LookupGlobal("sum")
	assert.True(t, ok)
	assert.Equal(t, int64(10), v.AsInt64())
}

func TestEval_ForInOverRange(t *testing.T) {
	st := newState(t)
	evalAll(t, st, `
		global total = 0;
		for n in 1..4 do { global total = total + n; }
	`)
	v, ok := st.LookupGlobal("total")
	assert.True(t, ok)
	assert.Equal(t, int64(10), v.AsInt64(), "1..4 is inclusive of both ends")
}

func TestEval_AssignReturnsAssignedValue(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "x = 7;")
	assert.Equal(t, int64(7), lastOf(vs).AsInt64())
}

func TestEval_AssignInBlockUpdatesEnclosingBinding(t *testing.T) {
	st := newState(t)
	st.Bind("x", value.Int64(1))
	vs := evalAll(t, st, "{ x = 2; x; }")
	assert.Equal(t, int64(2), lastOf(vs).AsInt64())
	v, _ := st.Lookup("x")
	assert.Equal(t, int64(2), v.AsInt64(), "assignment inside a block updates the enclosing binding that already holds x")
}

func TestEval_GlobalAssignReachesOuterScope(t *testing.T) {
	st := newState(t)
	evalAll(t, st, "{ global g = 9; }")
	v, ok := st.LookupGlobal("g")
	assert.True(t, ok)
	assert.Equal(t, int64(9), v.AsInt64())
}

func TestEval_StringConcatenation(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `"foo" + "bar";`)
	assert.Equal(t, "foobar", lastOf(vs).AsString())
}

func TestEval_ArrayIndexing(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "[10, 20, 30][1];")
	assert.Equal(t, int64(20), lastOf(vs).AsInt64())
}

func TestEval_ArrayIndexAssignment(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `
		global arr = [1, 2, 3];
		arr[1] = 99;
		arr;
	`)
	arr := lastOf(vs).AsArray()
	assert.Equal(t, int64(99), arr[1].AsInt64())
}

func TestEval_ComparisonOperators(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "3 != 4;")
	assert.True(t, lastOf(vs).AsBool())
}

func TestEval_UnaryNegationAndNot(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, "not (5 == 5);")
	assert.False(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, "-7;")
	assert.Equal(t, int64(-7), lastOf(vs).AsInt64())
}

func TestEval_PostfixIncrement(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `
		global n = 5;
		n++;
		n;
	`)
	assert.Equal(t, int64(6), lastOf(vs).AsInt64())
}

func TestEval_UserFunctionExpressionBody(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `
		double(n) = n * 2;
		double(21);
	`)
	assert.Equal(t, int64(42), lastOf(vs).AsInt64())
}

func TestEval_UserFunctionBlockBodyAndRecursion(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `
		fact(n) {
			if n <= 1 then { return 1; } else { return n * fact(n - 1); }
		}
		fact(5);
	`)
	assert.Equal(t, int64(120), lastOf(vs).AsInt64())
}

func TestEval_GlobalAssignFromNestedFunctionScope(t *testing.T) {
	st := newState(t)
	evalAll(t, st, `
		global count = 0;
		bump() { global count = count + 1; }
		bump();
		bump();
	`)
	v, ok := st.LookupGlobal("count")
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.AsInt64())
}

func TestEval_MemberAccessIsIndexSugar(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `
		global o = {"name": "ada"};
		o.name;
	`)
	assert.Equal(t, "ada", lastOf(vs).AsString())
}

func TestEval_IsComparesTypeTagToBareIdentifier(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `5 is int64;`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `"hi" is int64;`)
	assert.False(t, lastOf(vs).AsBool())
}

func TestEval_IsWithNonIdentifierRightSideFailsAtCompileTime(t *testing.T) {
	st := newState(t)
	err := compileErr(t, st, `5 is (1 + 2);`)
	assert.Error(t, err)
	le, ok := err.(*langerr.Error)
	assert.True(t, ok)
	assert.Equal(t, langerr.Syntax, le.Kind)
}

func TestEval_Contains(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `"hello" contains "ell";`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `[1, 2, 3] contains 2;`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `[1, 2, 3] contains 9;`)
	assert.False(t, lastOf(vs).AsBool())
}

func TestEval_MatchesAgainstRegex(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `"hello123" matches "[0-9]+";`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `"hello" matches "[0-9]+";`)
	assert.False(t, lastOf(vs).AsBool())
}

func TestEval_StartsWithAndEndsWith(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `"hello" starts_with "he";`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `"hello" ends_with "lo";`)
	assert.True(t, lastOf(vs).AsBool())

	vs = evalAll(t, st, `"hello" starts_with "lo";`)
	assert.False(t, lastOf(vs).AsBool())
}

func TestEval_IncDecOnNonAssignableFailsAtCompileTime(t *testing.T) {
	st := newState(t)
	err := compileErr(t, st, `5++;`)
	assert.Error(t, err)
	le, ok := err.(*langerr.Error)
	assert.True(t, ok)
	assert.Equal(t, langerr.ConstantValue, le.Kind)

	err = compileErr(t, st, `++5;`)
	assert.Error(t, err)
	le, ok = err.(*langerr.Error)
	assert.True(t, ok)
	assert.Equal(t, langerr.ConstantValue, le.Kind)
}

func TestEval_IncDecOnMissingVariableTreatsItAsZero(t *testing.T) {
	st := newState(t)
	vs := evalAll(t, st, `x++;`)
	assert.Equal(t, int64(0), lastOf(vs).AsInt64(), "postfix ++ yields the pre-value")
	v, ok := st.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.AsInt64(), "the missing variable is bound to 1 after ++")

	st2 := newState(t)
	vs = evalAll(t, st2, `++y;`)
	assert.Equal(t, int64(1), lastOf(vs).AsInt64(), "prefix ++ yields the post-value")
}
