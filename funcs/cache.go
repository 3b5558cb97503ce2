/*
File    : exprscript/funcs/cache.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package funcs implements the process-wide compile cache for user-function
// bodies (§4.7): a user function is declared with its body kept as source
// text, and that text is compiled into an AST only the first time the
// function is actually called, keyed by the exact source string so two
// functions sharing identical body text share one compiled tree.
//
// The cache is deliberately generic over the compiled representation (it
// stores interface{}, not a concrete AST node type) so that this package
// does not need to import the ast package at all — avoiding the import
// cycle that would otherwise arise from ast depending on state, which would
// need to depend on funcs to expose the cache to a function's Handler.
package funcs

import "sync"

// CompileFunc turns a function body's source text into whatever compiled
// representation the caller uses (in practice, an *ast.Node wrapped as
// interface{}).
type CompileFunc func(source string) (interface{}, error)

// Cache is a process-wide, source-text-keyed compile cache. §5/§9: the
// mutex exists for safety, not because concurrent evaluation is supported —
// single-writer discipline, contention-free in practice since evaluation is
// single-threaded and synchronous.
type Cache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

// NewCache builds an empty compile cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

// GetOrCompile returns the cached compilation of source if present;
// otherwise it calls compile, stores the result, and returns it. There is
// no eviction (§4.7: "No eviction") — the cache grows for the lifetime of
// the process that holds it.
func (c *Cache) GetOrCompile(source string, compile CompileFunc) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[source]; ok {
		return v, nil
	}
	v, err := compile(source)
	if err != nil {
		return nil, err
	}
	c.entries[source] = v
	return v, nil
}

// Len reports how many distinct source bodies have been compiled so far.
// Chiefly useful for tests asserting that two functions with identical body
// text share a single cache entry.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
