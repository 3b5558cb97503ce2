/*
File    : exprscript/std/std_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/exprscript/ast"
	"github.com/akashmaji946/exprscript/lexer"
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
	"github.com/stretchr/testify/assert"
)

// run lexes, compiles, and evaluates source against a fresh State whose
// registry is the full standard function set, returning the last
// statement's value.
func run(t *testing.T, source string) value.Value {
	t.Helper()
	ast.BuildRegistry()
	st := state.New(BuildRegistry(), state.Options{})

	assert.NoError(t, lexer.CheckBalance(source))
	lex := lexer.NewLexer(source)
	toks := lex.ConsumeTokens()

	stmts, err := ast.Compile(toks, st)
	assert.NoError(t, err)

	var last value.Value
	for _, stmt := range stmts {
		v, err := stmt.Evaluate(st)
		assert.NoError(t, err)
		last = v
	}
	return last
}

func TestArithmetic_AbsSignMinMax(t *testing.T) {
	assert.Equal(t, float64(5), run(t, "abs(-5);").AsFloat())
	assert.Equal(t, float64(-1), run(t, "sign(-9);").AsFloat())
	assert.Equal(t, float64(2), run(t, "min(2, 7);").AsFloat())
	assert.Equal(t, float64(7), run(t, "max(2, 7);").AsFloat())
}

func TestArithmetic_FloorCeilRoundSqrtPow(t *testing.T) {
	assert.Equal(t, float64(3), run(t, "floor(3.7);").AsFloat())
	assert.Equal(t, float64(4), run(t, "ceil(3.1);").AsFloat())
	assert.Equal(t, float64(4), run(t, "round(3.5);").AsFloat())
	assert.Equal(t, float64(3), run(t, "sqrt(9);").AsFloat())
	assert.Equal(t, float64(8), run(t, "pow(2, 3);").AsFloat())
}

func TestArithmetic_RandIntRespectsBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := run(t, "rand_int(3, 3);")
		assert.Equal(t, int64(3), v.AsInt64(), "a degenerate [3,3] range must always return 3")
	}
}

func TestArithmetic_RandIntRejectsInvertedRange(t *testing.T) {
	ast.BuildRegistry()
	st := state.New(BuildRegistry(), state.Options{})
	lex := lexer.NewLexer("rand_int(5, 1);")
	toks := lex.ConsumeTokens()
	stmts, err := ast.Compile(toks, st)
	assert.NoError(t, err)
	_, err = stmts[0].Evaluate(st)
	assert.Error(t, err)
}

func TestArithmetic_ChooseRejectsEmptyArray(t *testing.T) {
	ast.BuildRegistry()
	st := state.New(BuildRegistry(), state.Options{})
	lex := lexer.NewLexer("choose([]);")
	toks := lex.ConsumeTokens()
	stmts, err := ast.Compile(toks, st)
	assert.NoError(t, err)
	_, err = stmts[0].Evaluate(st)
	assert.Error(t, err)
}

func TestArithmetic_ChoosePicksAnElementOfTheArray(t *testing.T) {
	v := run(t, "choose([42]);")
	assert.Equal(t, int64(42), v.AsInt64())
}

func TestTrig_SinCosAtOrigin(t *testing.T) {
	assert.Equal(t, float64(0), run(t, "sin(0);").AsFloat())
	assert.Equal(t, float64(1), run(t, "cos(0);").AsFloat())
}

func TestTrig_Atan2(t *testing.T) {
	v := run(t, "atan2(0, 1);")
	assert.Equal(t, float64(0), v.AsFloat())
}

func TestStrings_UpperLowerTrim(t *testing.T) {
	assert.Equal(t, "HELLO", run(t, `upper("hello");`).AsString())
	assert.Equal(t, "hello", run(t, `lower("HELLO");`).AsString())
	assert.Equal(t, "hi", run(t, `trim("  hi  ");`).AsString())
}

func TestStrings_SplitJoin(t *testing.T) {
	arr := run(t, `split("a,b,c", ",");`).AsArray()
	assert.Len(t, arr, 3)
	assert.Equal(t, "b", arr[1].AsString())

	v := run(t, `join(["x", "y", "z"], "-");`)
	assert.Equal(t, "x-y-z", v.AsString())
}

func TestStrings_ReplaceSubstringCount(t *testing.T) {
	assert.Equal(t, "hxllo", run(t, `replace("hello", "e", "x");`).AsString())
	assert.Equal(t, "ell", run(t, `substring("hello", 1, 4);`).AsString())
	assert.Equal(t, int64(2), run(t, `count("banana", "an");`).AsInt64())
}

func TestStrings_OrdChr(t *testing.T) {
	assert.Equal(t, int64(65), run(t, `ord("A");`).AsInt64())
	assert.Equal(t, "A", run(t, `chr(65);`).AsString())
}

func TestCollection_LenKeysValues(t *testing.T) {
	assert.Equal(t, int64(3), run(t, `len([1, 2, 3]);`).AsInt64())
	assert.Equal(t, int64(5), run(t, `len("hello");`).AsInt64())

	keys := run(t, `keys({"a": 1, "b": 2});`).AsArray()
	assert.Len(t, keys, 2)
}

func TestCollection_PushPopSliceReverseSort(t *testing.T) {
	pushed := run(t, `push([1, 2], 3);`).AsArray()
	assert.Len(t, pushed, 3)
	assert.Equal(t, int64(3), pushed[2].AsInt64())

	sliced := run(t, `slice([1, 2, 3, 4], 1, 3);`).AsArray()
	assert.Len(t, sliced, 2)
	assert.Equal(t, int64(2), sliced[0].AsInt64())

	reversed := run(t, `reverse_array([1, 2, 3]);`).AsArray()
	assert.Equal(t, int64(3), reversed[0].AsInt64())

	sorted := run(t, `sort([3, 1, 2]);`).AsArray()
	assert.Equal(t, int64(1), sorted[0].AsInt64())
	assert.Equal(t, int64(3), sorted[2].AsInt64())
}

func TestBitwise_NotAndShifts(t *testing.T) {
	assert.Equal(t, int64(-1), run(t, "bit_not(0);").AsInt64())
	assert.Equal(t, int64(4), run(t, "llshift(1, 2);").AsInt64())
	assert.Equal(t, int64(1), run(t, "lrshift(4, 2);").AsInt64())
}

func TestHashing_KnownDigests(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", run(t, `md5("");`).AsString())
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", run(t, `sha1("");`).AsString())
}

func TestTypeFuncs_TypeofAndConversions(t *testing.T) {
	assert.Equal(t, "string", run(t, `typeof("x");`).AsString())
	assert.True(t, run(t, "is_nil(nil);").AsBool())
	assert.Equal(t, "5", run(t, "to_string(5);").AsString())
	assert.Equal(t, int64(5), run(t, `to_int("5");`).AsInt64())
}

func TestNumericDecorators_HexOctBinRoman(t *testing.T) {
	assert.Equal(t, "0xff", run(t, "255 @hex;").AsString())
	assert.Equal(t, "0o17", run(t, "15 @oct;").AsString())
	assert.Equal(t, "0b101", run(t, "5 @bin;").AsString())
	assert.Equal(t, "XIV", run(t, "14 @roman;").AsString())
	assert.Equal(t, "1st", run(t, "1 @ordinal;").AsString())
}

func TestNumericDecorators_RomanOutOfRangeErrors(t *testing.T) {
	ast.BuildRegistry()
	st := state.New(BuildRegistry(), state.Options{})
	lex := lexer.NewLexer("4000 @roman;")
	toks := lex.ConsumeTokens()
	stmts, err := ast.Compile(toks, st)
	assert.NoError(t, err)
	_, err = stmts[0].Evaluate(st)
	assert.Error(t, err)
}

func TestCurrencyDecorators_UsdFormatting(t *testing.T) {
	assert.Equal(t, "$19.99", run(t, "19.99 @usd;").AsString())
	assert.Equal(t, "¥100", run(t, "100 @jpy;").AsString())
}

func TestDecorator_RecursesThroughArrays(t *testing.T) {
	v := run(t, "[1, 2, 3] @hex;")
	assert.Equal(t, "[0x1, 0x2, 0x3]", v.AsString())
}

func TestInclude_SplicesStatementsAtCallSite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.es")
	assert.NoError(t, os.WriteFile(path, []byte("global imported = 41;\n"), 0o644))

	v := run(t, `include("`+path+`");
		imported + 1;`)
	assert.Equal(t, int64(42), v.AsInt64())
}

func TestInclude_MissingFileReportsError(t *testing.T) {
	ast.BuildRegistry()
	st := state.New(BuildRegistry(), state.Options{})
	lex := lexer.NewLexer(`include("/does/not/exist.es");`)
	toks := lex.ConsumeTokens()
	stmts, err := ast.Compile(toks, st)
	assert.NoError(t, err)
	_, err = stmts[0].Evaluate(st)
	assert.Error(t, err)
}
