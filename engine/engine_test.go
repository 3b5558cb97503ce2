/*
File    : exprscript/engine/engine_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/stretchr/testify/assert"
)

func TestParse_EvaluatesEveryStatementInOrder(t *testing.T) {
	eng := New(Options{LoadStdlib: true})

	vs, err := eng.Parse("1 + 1; 2 + 2; 3 + 3;")
	assert.NoError(t, err)
	assert.Len(t, vs, 3)
	assert.Equal(t, int64(2), vs[0].AsInt64())
	assert.Equal(t, int64(4), vs[1].AsInt64())
	assert.Equal(t, int64(6), vs[2].AsInt64())
}

func TestParse_UnbalancedBracketsFailsBeforeLexing(t *testing.T) {
	eng := New(Options{})
	_, err := eng.Parse("(1 + 2;")
	assert.Error(t, err)
}

func TestParse_CompileErrorStopsBeforeAnyEvaluation(t *testing.T) {
	eng := New(Options{})
	_, err := eng.Parse("1 +;")
	assert.Error(t, err)
}

func TestParse_RuntimeErrorReturnsResultsSoFar(t *testing.T) {
	eng := New(Options{LoadStdlib: true})
	vs, err := eng.Parse("1 + 1; undefined_name; 3 + 3;")
	assert.Error(t, err)
	assert.Len(t, vs, 1)
	assert.Equal(t, int64(2), vs[0].AsInt64())
}

func TestParse_WithoutStdlibStandardFunctionsAreUnavailable(t *testing.T) {
	eng := New(Options{LoadStdlib: false})
	_, err := eng.Parse("abs(-5);")
	assert.Error(t, err)
}

func TestParse_WithStdlibStandardFunctionsResolve(t *testing.T) {
	eng := New(Options{LoadStdlib: true})
	vs, err := eng.Parse("abs(-5);")
	assert.NoError(t, err)
	assert.Equal(t, float64(5), vs[0].AsFloat())
}

func TestParse_TimeoutExpiresMidLoop(t *testing.T) {
	eng := New(Options{Timeout: 20 * time.Millisecond})
	_, err := eng.Parse(`
		global i = 0;
		while i < 1000000000 do {
			global i = i + 1;
		}
	`)
	assert.Error(t, err)
	le, ok := err.(*langerr.Error)
	assert.True(t, ok)
	assert.Equal(t, langerr.Timeout, le.Kind)
}

func TestParse_ParseCallLimitRejectsDeeplyNestedExpression(t *testing.T) {
	eng := New(Options{ParseCallLimit: 5})
	nested := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)
	_, err := eng.Parse(nested + ";")
	assert.Error(t, err)
}

func TestParse_StackLimitRejectsDeepRecursion(t *testing.T) {
	eng := New(Options{StackLimit: 10})
	_, err := eng.Parse(`
		recurse(n) = recurse(n + 1);
		recurse(0);
	`)
	assert.Error(t, err)
	le, ok := err.(*langerr.Error)
	assert.True(t, ok)
	assert.Equal(t, langerr.StackOverflow, le.Kind)
}

func TestState_StateAndStateMutReturnSameInstance(t *testing.T) {
	eng := New(Options{})
	assert.Same(t, eng.State(), eng.StateMut())
}

func TestState_GlobalsPersistAcrossCalls(t *testing.T) {
	eng := New(Options{})
	_, err := eng.Parse("global counter = 1;")
	assert.NoError(t, err)

	_, err = eng.Parse("global counter = counter + 1;")
	assert.NoError(t, err)

	v, ok := eng.State().LookupGlobal("counter")
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.AsInt64())
}

func TestGenerateDocumentation_ListsLoadedStandardFunctions(t *testing.T) {
	eng := New(Options{LoadStdlib: true})
	doc := eng.GenerateDocumentation()
	assert.Contains(t, doc, "== Arithmetic ==")
	assert.Contains(t, doc, "abs(")
}

func TestGenerateDocumentation_EmptyWithoutStdlib(t *testing.T) {
	eng := New(Options{LoadStdlib: false})
	doc := eng.GenerateDocumentation()
	assert.Empty(t, doc)
}
