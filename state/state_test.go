/*
File    : exprscript/state/state_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package state

import (
	"testing"
	"time"

	"github.com/akashmaji946/exprscript/langerr"
	"github.com/akashmaji946/exprscript/value"
	"github.com/stretchr/testify/assert"
)

func TestScopeChain_LookupClimbsToParent(t *testing.T) {
	st := New(nil, Options{})
	st.Bind("x", value.Int64(1))
	st.PushScope()
	v, ok := st.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.AsInt64())
	st.PopScope()
}

func TestScopeChain_ShadowingAndAssignTargetsInnermost(t *testing.T) {
	st := New(nil, Options{})
	st.Bind("x", value.Int64(1))
	st.PushScope()
	st.Bind("x", value.Int64(2)) // shadow in inner frame
	st.Assign("x", value.Int64(3))
	v, _ := st.Lookup("x")
	assert.Equal(t, int64(3), v.AsInt64())
	st.PopScope()

	v, _ = st.Lookup("x")
	assert.Equal(t, int64(1), v.AsInt64(), "outer binding must be untouched by the shadowed assignment")
}

func TestScopeChain_AssignWithNoExistingBindingCreatesInCurrentScope(t *testing.T) {
	st := New(nil, Options{})
	st.PushScope()
	st.Assign("y", value.Int64(5))
	v, ok := st.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, int64(5), v.AsInt64())
	st.PopScope()
	_, ok = st.Lookup("y")
	assert.False(t, ok, "fresh assignment in a popped scope must not leak to the parent")
}

func TestAssignGlobal_NeverShadowedByLocal(t *testing.T) {
	st := New(nil, Options{})
	st.PushScope()
	st.Bind("count", value.Int64(1)) // local shadow
	st.AssignGlobal("count", value.Int64(100))

	local, _ := st.Lookup("count")
	assert.Equal(t, int64(1), local.AsInt64(), "global write must not alias the local binding")

	g, ok := st.LookupGlobal("count")
	assert.True(t, ok)
	assert.Equal(t, int64(100), g.AsInt64())
}

func TestCheckTimer_NoDeadlineNeverFails(t *testing.T) {
	st := New(nil, Options{})
	assert.NoError(t, st.CheckTimer())
}

func TestCheckTimer_PastDeadlineReportsTimeout(t *testing.T) {
	st := New(nil, Options{Timeout: time.Nanosecond})
	time.Sleep(time.Millisecond)
	err := st.CheckTimer()
	assert.Error(t, err)
	assert.True(t, langerr.Is(err, langerr.Timeout))
}

func TestEnterExitCall_StackLimitEnforced(t *testing.T) {
	st := New(nil, Options{StackLimit: 2})
	assert.NoError(t, st.EnterCall())
	assert.NoError(t, st.EnterCall())
	err := st.EnterCall()
	assert.Error(t, err)
	assert.True(t, langerr.Is(err, langerr.StackOverflow))
	assert.Equal(t, 2, st.RecursionDepth(), "a failed EnterCall must not leave the depth counter incremented")

	st.ExitCall()
	st.ExitCall()
	assert.Equal(t, 0, st.RecursionDepth())
}

func TestEnterExitCall_UnlimitedWhenStackLimitZero(t *testing.T) {
	st := New(nil, Options{})
	for i := 0; i < 1000; i++ {
		assert.NoError(t, st.EnterCall())
	}
}

func TestConsumeParseBudget_ExhaustionReportsParseDepth(t *testing.T) {
	st := New(nil, Options{ParseCallLimit: 2})
	assert.NoError(t, st.ConsumeParseBudget())
	assert.NoError(t, st.ConsumeParseBudget())
	err := st.ConsumeParseBudget()
	assert.Error(t, err)
	assert.True(t, langerr.Is(err, langerr.ParseDepth))
}

func TestConsumeParseBudget_UnlimitedWhenZero(t *testing.T) {
	st := New(nil, Options{})
	for i := 0; i < 1000; i++ {
		assert.NoError(t, st.ConsumeParseBudget())
	}
}

func TestRegistry_DuplicateNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry([]FuncEntry{
			{Name: "abs"},
			{Name: "abs"},
		})
	})
}

func TestRegistry_LookupAndAll(t *testing.T) {
	reg := NewRegistry([]FuncEntry{
		{Name: "abs", Category: "arithmetic"},
		{Name: "sqrt", Category: "arithmetic"},
	})
	e, ok := reg.Lookup("sqrt")
	assert.True(t, ok)
	assert.Equal(t, "arithmetic", e.Category)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	assert.Len(t, reg.All(), 2)
}
