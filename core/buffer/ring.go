// File: core/buffer/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lossy fixed-capacity ring buffer over caller storage.

package buffer

import (
	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/internal/pow2"
)

var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a circular buffer whose Append never fails on a non-zero capacity:
// when full, the oldest element is discarded to make room.
type Ring[T any] struct {
	data  []T
	mask  int
	head  int
	tail  int
	count int
}

// NewRing binds storage. Only the first Floor(len(storage)) elements are used.
func NewRing[T any](storage []T) *Ring[T] {
	size := pow2.Floor(len(storage))
	return &Ring[T]{
		data: storage[:size],
		mask: pow2.Mask(size),
	}
}

// Append writes item at the tail, dropping the oldest element if the ring is full.
// Returns Overflow only for a zero-capacity ring.
func (r *Ring[T]) Append(item T) api.Result {
	if len(r.data) == 0 {
		return api.Overflow
	}
	if !r.HasSpace() {
		r.Discard()
	}
	r.data[r.tail] = item
	r.tail = (r.tail + 1) & r.mask
	r.count++
	return api.Success
}

// Pop removes and returns the oldest element.
func (r *Ring[T]) Pop() (item T, res api.Result) {
	if r.IsEmpty() {
		return item, api.Empty
	}
	item = r.data[r.head]
	r.advance()
	return item, api.Success
}

// Discard drops the oldest element without reading it.
func (r *Ring[T]) Discard() api.Result {
	if r.IsEmpty() {
		return api.Empty
	}
	r.advance()
	return api.Success
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (item T, res api.Result) {
	if r.IsEmpty() {
		return item, api.Empty
	}
	return r.data[r.head], api.Success
}

func (r *Ring[T]) advance() {
	var zero T
	r.data[r.head] = zero
	r.head = (r.head + 1) & r.mask
	r.count--
}

// Len returns number of items in the buffer.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the power-of-two capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }

// HasSpace reports whether an Append would not drop anything.
func (r *Ring[T]) HasSpace() bool { return r.count < len(r.data) }

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }
