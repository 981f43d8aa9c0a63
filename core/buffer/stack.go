// File: core/buffer/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity LIFO stack over caller storage.

package buffer

import "github.com/momentics/hioload-collections/api"

var _ api.Stack[any] = (*Stack[any])(nil)

// Stack is a LIFO container. It never wraps, so its capacity is len(storage)
// with no power-of-two rounding.
type Stack[T any] struct {
	data []T
	sp   int
}

// NewStack binds storage to a new stack.
func NewStack[T any](storage []T) *Stack[T] {
	return &Stack[T]{data: storage}
}

// Push places item on top, Overflow when full.
func (s *Stack[T]) Push(item T) api.Result {
	if !s.HasSpace() {
		return api.Overflow
	}
	s.data[s.sp] = item
	s.sp++
	return api.Success
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (item T, res api.Result) {
	if s.IsEmpty() {
		return item, api.Empty
	}
	s.sp--
	item = s.data[s.sp]
	var zero T
	s.data[s.sp] = zero
	return item, api.Success
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (item T, res api.Result) {
	if s.IsEmpty() {
		return item, api.Empty
	}
	return s.data[s.sp-1], api.Success
}

func (s *Stack[T]) Len() int       { return s.sp }
func (s *Stack[T]) Cap() int       { return len(s.data) }
func (s *Stack[T]) HasSpace() bool { return s.sp < len(s.data) }
func (s *Stack[T]) IsEmpty() bool  { return s.sp == 0 }
