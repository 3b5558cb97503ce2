/*
File    : exprscript/docgen/docgen.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package docgen renders the standard function registry as a plain-text
// document grouped by category, grounded on original_source's
// PlaintextFormatter (src/documentation/plain.rs): one paragraph per
// function, signature first, doc string wrapped to a fixed width, grouped
// and sorted by category so the output is stable across runs.
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/exprscript/state"
	"github.com/dekarrin/rosed"
)

const wrapWidth = 76

// Render produces the full registry documentation: categories sorted
// alphabetically, functions within a category sorted alphabetically, each
// rendered as its signature followed by its wrapped doc string.
func Render(reg *state.Registry) string {
	byCategory := make(map[string][]*state.FuncEntry)
	for _, e := range reg.All() {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		fns := byCategory[cat]
		sort.Slice(fns, func(i, j int) bool { return fns[i].Name < fns[j].Name })

		fmt.Fprintf(&b, "== %s ==\n\n", cat)
		for _, e := range fns {
			b.WriteString(signature(e))
			b.WriteString("\n")
			if e.Doc != "" {
				b.WriteString(rosed.Edit(e.Doc).Wrap(wrapWidth).String())
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// signature renders a function's call shape, e.g.
// "pow(base: float, exp: float) -> float",
// flagging decorators with their "@name" call syntax instead.
func signature(e *state.FuncEntry) string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	if e.IsDecorator {
		return fmt.Sprintf("@%s -> %s", e.Name, e.ReturnType)
	}
	return fmt.Sprintf("%s(%s) -> %s", e.Name, strings.Join(names, ", "), e.ReturnType)
}
