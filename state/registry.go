/*
File    : exprscript/state/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package state

import (
	"sync"

	"github.com/akashmaji946/exprscript/value"
)

// Param describes one positional parameter of a standard function: its name
// (for documentation) and the value.Type it is coerced to before the
// handler runs (§4.6 — call_function applies value.Coerce per declared
// param type).
type Param struct {
	Name string
	Type value.Type
}

// Handler is a standard function's implementation. args have already been
// bound positionally and coerced to each Param's declared type by the time
// the handler runs.
type Handler func(st *State, args []value.Value) (value.Value, error)

// FuncEntry is one row of the standard function registry (§4.6): a name,
// category (used only for documentation grouping), its declared signature,
// the handler, and whether it is a decorator (`@name`) rather than an
// ordinary call — decorators are registered under their bare name with no
// literal "@" stored, since "@" is operator syntax, not part of the key.
type FuncEntry struct {
	Name        string
	Category    string
	Doc         string
	Params      []Param
	ReturnType  value.Type
	Handler     Handler
	IsDecorator bool
}

// Registry is the table of standard AND user-declared functions, keyed by
// name (§3: "function registry (name → entry)... handlers are either
// built-in closures or references to compiled user-function bodies").
// Standard functions are loaded once by std.BuildRegistry() and never
// change again; user function declarations (`name(args) = expr`) add to the
// same table as the script runs, so Register is mutex-guarded even though
// the standard half is read-only in practice.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*FuncEntry
}

// NewRegistry builds a Registry from a flat list of entries, panicking on
// any duplicate name — a registry build-time collision is a programmer
// error at init time, not a runtime Error (§4.6).
func NewRegistry(entries []FuncEntry) *Registry {
	r := &Registry{entries: make(map[string]*FuncEntry, len(entries))}
	for i := range entries {
		e := entries[i]
		if _, dup := r.entries[e.Name]; dup {
			panic("state: duplicate standard function name " + e.Name)
		}
		r.entries[e.Name] = &e
	}
	return r
}

// Lookup returns the entry registered under name, if any.
func (r *Registry) Lookup(name string) (*FuncEntry, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	return e, ok
}

// Register adds or overwrites the entry for a user-declared function.
// Redeclaring a name is allowed (a script may redefine its own functions),
// unlike the std registry's build-time duplicate panic, which only applies
// to the one-time NewRegistry call.
func (r *Registry) Register(e FuncEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = &e
}

// All returns every registered entry, in no particular order. Used by
// docgen to render the full registry grouped by category.
func (r *Registry) All() []*FuncEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*FuncEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}
