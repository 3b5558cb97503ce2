/*
File    : exprscript/std/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std is the standard function registry (§4.6): a set of
// per-category builder functions, each returning the state.FuncEntry rows
// for its category, merged into one state.Registry by BuildRegistry.
//
// Unlike the teacher's std package (a global Builtins slice grown by each
// file's own func init()), entries here are collected by an explicit call
// from engine.New — the same [DECIDED] stance ast.BuildRegistry takes for
// the grammar tables, so the host controls exactly when the registry comes
// up rather than relying on import-order side effects.
package std

import "github.com/akashmaji946/exprscript/state"

// BuildRegistry merges every category's entries into one state.Registry.
// A duplicate name across categories panics inside state.NewRegistry — a
// fatal init-time programmer error, never a runtime Error (§4.6).
func BuildRegistry() *state.Registry {
	var entries []state.FuncEntry
	entries = append(entries, arithmeticFuncs()...)
	entries = append(entries, trigFuncs()...)
	entries = append(entries, stringFuncs()...)
	entries = append(entries, bitwiseFuncs()...)
	entries = append(entries, hashingFuncs()...)
	entries = append(entries, numericDecorators()...)
	entries = append(entries, currencyDecorators()...)
	entries = append(entries, collectionFuncs()...)
	entries = append(entries, typeFuncs()...)
	entries = append(entries, ioFuncs()...)
	entries = append(entries, includeFuncs()...)
	return state.NewRegistry(entries)
}
