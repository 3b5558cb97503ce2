/*
File    : exprscript/docgen/docgen_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package docgen

import (
	"strings"
	"testing"

	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
	"github.com/stretchr/testify/assert"
)

func TestRender_GroupsByCategoryAlphabetically(t *testing.T) {
	reg := state.NewRegistry([]state.FuncEntry{
		{Name: "zeta", Category: "Strings", Doc: "zeta doc.", ReturnType: value.TString},
		{Name: "alpha", Category: "Arithmetic", Doc: "alpha doc.", ReturnType: value.TFloat},
	})

	out := Render(reg)

	arithIdx := strings.Index(out, "== Arithmetic ==")
	stringsIdx := strings.Index(out, "== Strings ==")
	assert.GreaterOrEqual(t, arithIdx, 0)
	assert.GreaterOrEqual(t, stringsIdx, 0)
	assert.Less(t, arithIdx, stringsIdx, "categories must sort alphabetically")
}

func TestRender_SortsFunctionsWithinCategory(t *testing.T) {
	reg := state.NewRegistry([]state.FuncEntry{
		{Name: "zeta", Category: "Strings", Doc: "z.", ReturnType: value.TString},
		{Name: "alpha", Category: "Strings", Doc: "a.", ReturnType: value.TString},
	})

	out := Render(reg)

	assert.Less(t, strings.Index(out, "alpha("), strings.Index(out, "zeta("))
}

func TestRender_SignatureListsParamNamesAndTypes(t *testing.T) {
	reg := state.NewRegistry([]state.FuncEntry{
		{
			Name:       "pow",
			Category:   "Arithmetic",
			Doc:        "pow(base, exp) raises base to exp.",
			Params:     []state.Param{{Name: "base", Type: value.TFloat}, {Name: "exp", Type: value.TFloat}},
			ReturnType: value.TFloat,
		},
	})

	out := Render(reg)

	assert.Contains(t, out, "pow(base: float, exp: float) -> float")
}

func TestRender_DecoratorUsesAtSyntax(t *testing.T) {
	reg := state.NewRegistry([]state.FuncEntry{
		{Name: "hex", Category: "Decorators", Doc: "formats as hex.", ReturnType: value.TString, IsDecorator: true},
	})

	out := Render(reg)

	assert.Contains(t, out, "@hex -> string")
	assert.NotContains(t, out, "hex(")
}

func TestRender_WrapsLongDocStrings(t *testing.T) {
	longDoc := strings.Repeat("word ", 40)
	reg := state.NewRegistry([]state.FuncEntry{
		{Name: "verbose", Category: "Strings", Doc: longDoc, ReturnType: value.TString},
	})

	out := Render(reg)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), wrapWidth+1, "no rendered line should exceed the configured wrap width")
	}
}

func TestRender_OmitsBlankLineForDocless(t *testing.T) {
	reg := state.NewRegistry([]state.FuncEntry{
		{Name: "bare", Category: "Arithmetic", Doc: "", ReturnType: value.TInt64},
	})

	out := Render(reg)

	assert.Contains(t, out, "bare() -> int64")
	assert.NotContains(t, out, "bare() -> int64\n\n\n")
}
