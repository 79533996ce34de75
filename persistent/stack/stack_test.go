package stack

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/exercises/maybe"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStack(t *testing.T) {
	s := Immutable[string]()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.Equal(t, 0, s.Size())
	assert.False(t, s.Peek().IsJust())
	_, _, err := s.Pop()
	if !errors.Is(err, ErrStackEmpty) {
		t.Errorf("expected pop from empty stack to fail with ErrStackEmpty, is %v", err)
	}
	var zero Stack[int]
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.IsFull())
}

func TestPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	defer teardown()
	//
	s, err := Immutable[string]().Push("a")
	require.NoError(t, err)
	u, err := s.Push("b")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 2, u.Size())
	assert.Equal(t, "b", u.Peek().WithDefault(""))
	//
	top, rest, err := u.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", top)
	assert.Equal(t, s, rest)
	assert.Equal(t, "a", s.Peek().WithDefault(""), "original stack has been modified")
	//
	top, rest, err = rest.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", top)
	assert.True(t, rest.IsEmpty())
}

func TestCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := Immutable[int](Capacity(3))
	var err error
	for i := 0; i < 3; i++ {
		s, err = s.Push(i)
		require.NoError(t, err)
	}
	assert.True(t, s.IsFull())
	full, err := s.Push(99)
	if !errors.Is(err, ErrStackFull) {
		t.Errorf("expected push onto full stack to fail with ErrStackFull, is %v", err)
	}
	assert.Equal(t, s, full)
	//
	assert.Equal(t, 1, Immutable[int](Capacity(-5)).limit())
	assert.Equal(t, MaxCapacity, Immutable[int](Capacity(MaxCapacity+1)).limit())
}

func TestMaxCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	var s Stack[int]
	var err error
	for i := 0; i < MaxCapacity; i++ {
		if s, err = s.Push(i); err != nil {
			t.Fatalf("push #%d failed: %v", i, err)
		}
	}
	assert.True(t, s.IsFull())
	_, err = s.Push(0)
	assert.ErrorIs(t, err, ErrStackFull)
}

func TestProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("pop returns elements in reverse order of pushes", prop.ForAll(
		func(xs []int) bool {
			s := Immutable[int]()
			for _, x := range xs {
				s, _ = s.Push(x)
			}
			for i := len(xs) - 1; i >= 0; i-- {
				var top int
				var err error
				if top, s, err = s.Pop(); err != nil || top != xs[i] {
					return false
				}
			}
			return s.IsEmpty()
		},
		gen.SliceOf(gen.Int()),
	))
	properties.TestingRun(t)
}

func TestPeekUncomparableElements(t *testing.T) {
	s, err := Immutable[[]string]().Push([]string{"a", "b"})
	require.NoError(t, err)
	top, ok := s.Peek().Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, top)
	n := maybe.Map(func(xs []string) int { return len(xs) }, s.Peek())
	assert.Equal(t, 2, n.WithDefault(0))
}
