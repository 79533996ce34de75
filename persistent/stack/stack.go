/*
Package stack implements a persistent, bounded LIFO stack.

Pushing and popping never modify a stack but return a new incarnation,
sharing all of its elements with the original:

	s, _ := stack.Immutable[string]().Push("a")
	t, _ := s.Push("b")
	top, rest, _ := t.Pop()    // top == "b", rest has the same elements as s

Stacks are bounded by a capacity, which defaults to MaxCapacity.
*/
package stack

import (
	"errors"
	"fmt"

	"github.com/npillmayer/exercises/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// MaxCapacity is the default and the largest capacity of a stack.
const MaxCapacity = 32768

// ErrStackFull is returned when pushing onto a stack at its capacity.
var ErrStackFull = errors.New("stack has reached maximum capacity")

// ErrStackEmpty is returned when popping from an empty stack.
var ErrStackEmpty = errors.New("cannot pop from empty stack")

// tracer traces with key 'exercises.stack'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.stack")
}

// Stack is an immutable stack of elements of type T. The zero value is an empty stack
// with capacity MaxCapacity.
type Stack[T any] struct {
	top      *cell[T]
	size     int
	capacity int
}

// cell is a link of a singly linked list. Cells are shared between stacks and
// never modified.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// Option is a type to help initializing stacks at creation time.
type Option func(capacity int) int

// Capacity is an option to limit the number of elements of a stack.
// It is clipped to [1…MaxCapacity].
//
//     s := stack.Immutable[int](stack.Capacity(16))
//
func Capacity(n int) Option {
	return func(int) int {
		if n < 1 {
			return 1
		}
		if n > MaxCapacity {
			return MaxCapacity
		}
		return n
	}
}

// Immutable constructs an empty stack with options, if you need any.
func Immutable[T any](opts ...Option) Stack[T] {
	capacity := MaxCapacity
	for _, option := range opts {
		capacity = option(capacity)
	}
	return Stack[T]{capacity: capacity}
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements on s.
func (s Stack[T]) Size() int {
	return s.size
}

// IsEmpty is true for a stack without elements.
func (s Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// IsFull is true if s has no room for another element.
func (s Stack[T]) IsFull() bool {
	return s.size == s.limit()
}

// Push returns a copy of s with value on top of it. If s is full, s is returned
// together with ErrStackFull.
func (s Stack[T]) Push(value T) (Stack[T], error) {
	if s.IsFull() {
		return s, fmt.Errorf("push onto stack of size %d: %w", s.size, ErrStackFull)
	}
	tracer().Debugf("push: %v on stack of size %d", value, s.size)
	return Stack[T]{
		top:      &cell[T]{value: value, next: s.top},
		size:     s.size + 1,
		capacity: s.capacity,
	}, nil
}

// Pop returns the top element of s and a copy of s without it. Popping from an
// empty stack returns ErrStackEmpty.
func (s Stack[T]) Pop() (T, Stack[T], error) {
	if s.IsEmpty() {
		var none T
		return none, s, ErrStackEmpty
	}
	assertThat(s.top != nil, "non-empty stack without a top cell")
	tracer().Debugf("pop: %v from stack of size %d", s.top.value, s.size)
	return s.top.value, Stack[T]{
		top:      s.top.next,
		size:     s.size - 1,
		capacity: s.capacity,
	}, nil
}

// Peek returns the top element of s, if any.
func (s Stack[T]) Peek() maybe.Maybe[T] {
	if s.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.top.value)
}

func (s Stack[T]) limit() int {
	if s.capacity == 0 { // zero value
		return MaxCapacity
	}
	return s.capacity
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
