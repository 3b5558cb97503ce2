/*
File    : exprscript/state/state.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package state

import (
	"time"

	"github.com/akashmaji946/exprscript/funcs"
	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/value"
)

// APIDefinitionsKey is the well-known global key under which the
// calling-convention-only API registry standard functions (`register_api`,
// `api_call`) store their table, per §6.
const APIDefinitionsKey = "__api_definitions"

// State is the single mutable context threaded through one parse+evaluate
// run (§3): the scope chain, the global store, the function registry
// (standard entries plus any user functions declared during the run), the
// deadline/call-budget/recursion-depth resource
// limits, and the well-known `__api_definitions` global key used by the
// calling-convention-only API registry functions.
//
// One State belongs to one execution thread; nothing here is safe for
// concurrent use by design (§5) — the compile cache (funcs.Cache) is the
// only piece of shared-across-threads state, and it has its own mutex.
type State struct {
	current  *scope
	global   *scope
	registry *Registry
	funcs    *funcs.Cache

	deadline       time.Time
	hasDeadline    bool
	parseBudget    int
	hasParseBudget bool
	recursionDepth int
	maxRecursion   int

	callTok *langerr.Token
}

// Options configures the resource limits a new State enforces. A zero value
// for any field disables the corresponding limit.
type Options struct {
	Timeout        time.Duration
	ParseCallLimit int
	StackLimit     int
}

// processCache is the single compile cache shared by every State in the
// process.
var processCache = funcs.NewCache()

// New builds a State with a single global scope, the given registry, and
// the resource limits in opts.
func New(registry *Registry, opts Options) *State {
	g := newScope(nil)
	st := &State{
		current:      g,
		global:       g,
		registry:     registry,
		funcs:        processCache,
		parseBudget:  opts.ParseCallLimit,
		maxRecursion: opts.StackLimit,
	}
	if opts.Timeout > 0 {
		st.deadline = time.Now().Add(opts.Timeout)
		st.hasDeadline = true
	}
	if opts.ParseCallLimit > 0 {
		st.hasParseBudget = true
	}
	return st
}

// Registry returns the function registry this State was built with. Besides
// the entries std.BuildRegistry() put there, user function declarations
// register their entries into it during evaluation.
func (st *State) Registry() *Registry {
	return st.registry
}

// CompiledBody returns the cached compilation of a user-function body's
// source text, compiling it via compile on first use (§4.7). The ast
// package supplies compile as a closure over its own parser, so this
// package never needs to import ast — see funcs.Cache's doc comment for why
// that matters.
func (st *State) CompiledBody(source string, compile funcs.CompileFunc) (interface{}, error) {
	return st.funcs.GetOrCompile(source, compile)
}

// PushScope opens a new lexical frame whose parent is the current scope and
// makes it current. It returns nothing; the caller (typically an ast
// block/loop/call node) restores the previous frame with PopScope when the
// block exits.
func (st *State) PushScope() {
	st.current = newScope(st.current)
}

// PopScope discards the current frame and restores its parent. It is a
// programmer error to call this without a matching PushScope; it panics
// rather than silently popping past the global scope, since that would
// corrupt every subsequent lookup for the rest of the run.
func (st *State) PopScope() {
	if st.current.parent == nil {
		panic("state: PopScope called with no enclosing scope")
	}
	st.current = st.current.parent
}

// Lookup resolves name by climbing the scope chain from the current frame.
func (st *State) Lookup(name string) (value.Value, bool) {
	return st.current.lookup(name)
}

// Bind creates or overwrites name in the current frame only.
func (st *State) Bind(name string, v value.Value) {
	st.current.bind(name, v)
}

// Assign updates name in the innermost frame already holding it (§4.5:
// "assignment targets the innermost scope already holding the name, else
// the current scope"). If name is bound nowhere in the chain, it is bound
// fresh in the current frame.
func (st *State) Assign(name string, v value.Value) {
	if _, ok := st.current.assign(name, v); ok {
		return
	}
	st.current.bind(name, v)
}

// AssignGlobal writes name into the global scope unconditionally (§4.4's
// `global name = expr` rule), regardless of what the current scope chain
// already holds, and never affects ordinary lexical lookup of name.
func (st *State) AssignGlobal(name string, v value.Value) {
	st.global.bind(name, v)
}

// LookupGlobal reads name directly from the global scope, bypassing the
// current scope chain. Used by standard functions (e.g. the API registry)
// that key state off the well-known global table rather than lexical
// variables.
func (st *State) LookupGlobal(name string) (value.Value, bool) {
	return st.global.lookup(name)
}

// CheckTimer reports a Timeout error if the configured deadline has passed.
// Called before evaluating every AST node (§4.5), so a runaway script is
// interrupted promptly rather than only between top-level statements.
func (st *State) CheckTimer() error {
	if st.hasDeadline && time.Now().After(st.deadline) {
		return langerr.New(langerr.Timeout, "evaluation deadline exceeded")
	}
	return nil
}

// ConsumeParseBudget decrements the Pratt call budget by one and reports a
// ParseDepth error once it is exhausted. A zero ParseCallLimit in Options
// disables the check entirely (unlimited budget).
func (st *State) ConsumeParseBudget() error {
	if !st.hasParseBudget {
		return nil
	}
	if st.parseBudget <= 0 {
		return langerr.New(langerr.ParseDepth, "parser call budget exhausted")
	}
	st.parseBudget--
	return nil
}

// EnterCall increments the user-function recursion depth and reports a
// StackOverflow error if it now exceeds the configured StackLimit. Every
// EnterCall that does not return an error must be matched by ExitCall once
// the call returns, including on the error path out of the call body.
func (st *State) EnterCall() error {
	st.recursionDepth++
	if st.maxRecursion > 0 && st.recursionDepth > st.maxRecursion {
		st.recursionDepth--
		return langerr.New(langerr.StackOverflow, "recursion depth exceeded")
	}
	return nil
}

// ExitCall decrements the recursion depth counter. It is a programmer error
// to call it without a matching successful EnterCall.
func (st *State) ExitCall() {
	if st.recursionDepth > 0 {
		st.recursionDepth--
	}
}

// RecursionDepth reports the current user-function call depth, chiefly for
// tests and diagnostics.
func (st *State) RecursionDepth() int {
	return st.recursionDepth
}

// SetCallToken records the token of the call currently being dispatched, so
// a handler that itself needs the call site's source position (notably
// include(), which must offset an included file's line numbers relative to
// where it was called) can recover it without every Handler signature
// carrying a token it mostly doesn't need. ast.callEntry sets this
// immediately before invoking a FuncEntry's Handler.
func (st *State) SetCallToken(tok *langerr.Token) {
	st.callTok = tok
}

// CallToken returns the token most recently recorded by SetCallToken.
func (st *State) CallToken() *langerr.Token {
	return st.callTok
}
