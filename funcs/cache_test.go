/*
File    : exprscript/funcs/cache_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package funcs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_CompilesOnceAndReusesResult(t *testing.T) {
	c := NewCache()
	calls := 0
	compile := func(src string) (interface{}, error) {
		calls++
		return "compiled:" + src, nil
	}

	v1, err := c.GetOrCompile("x + 1", compile)
	assert.NoError(t, err)
	v2, err := c.GetOrCompile("x + 1", compile)
	assert.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls, "identical source text must only be compiled once")
	assert.Equal(t, 1, c.Len())
}

func TestCache_DistinctSourceCompilesSeparately(t *testing.T) {
	c := NewCache()
	compile := func(src string) (interface{}, error) { return src, nil }

	_, _ = c.GetOrCompile("a", compile)
	_, _ = c.GetOrCompile("b", compile)

	assert.Equal(t, 2, c.Len())
}

func TestCache_CompileErrorIsNotCached(t *testing.T) {
	c := NewCache()
	calls := 0
	compile := func(src string) (interface{}, error) {
		calls++
		return nil, errors.New("syntax error")
	}

	_, err := c.GetOrCompile("bad", compile)
	assert.Error(t, err)
	_, err = c.GetOrCompile("bad", compile)
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failed compile must be retried, not poisoned into the cache")
	assert.Equal(t, 0, c.Len())
}
