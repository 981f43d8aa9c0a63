// File: core/buffer/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO queue over caller storage.

package buffer

import (
	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/internal/pow2"
)

var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a FIFO container with power-of-two capacity. Unlike Ring it
// rejects new elements when full.
type Queue[T any] struct {
	data   []T
	mask   int
	head   int
	tail   int
	amount int
}

// NewQueue binds storage. Only the first Floor(len(storage)) elements are used.
func NewQueue[T any](storage []T) *Queue[T] {
	size := pow2.Floor(len(storage))
	return &Queue[T]{
		data: storage[:size],
		mask: pow2.Mask(size),
	}
}

// Enqueue adds item at the tail, Overflow when full.
func (q *Queue[T]) Enqueue(item T) api.Result {
	if !q.HasSpace() {
		return api.Overflow
	}
	q.data[q.tail] = item
	q.tail = (q.tail + 1) & q.mask
	q.amount++
	return api.Success
}

// Dequeue removes and returns the oldest element.
func (q *Queue[T]) Dequeue() (item T, res api.Result) {
	if q.IsEmpty() {
		return item, api.Empty
	}
	item = q.data[q.head]
	var zero T
	q.data[q.head] = zero
	q.head = (q.head + 1) & q.mask
	q.amount--
	return item, api.Success
}

func (q *Queue[T]) Len() int       { return q.amount }
func (q *Queue[T]) Cap() int       { return len(q.data) }
func (q *Queue[T]) HasSpace() bool { return q.amount < len(q.data) }
func (q *Queue[T]) IsEmpty() bool  { return q.amount == 0 }
