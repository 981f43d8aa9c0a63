// File: core/concurrency/lock_free_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC queue over caller-supplied cells, after Dmitry Vyukov's
// sequence-number design. Several producers (one per interrupt source)
// may feed one or more consumers without locks.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/internal/pow2"
)

var _ api.Channel[any] = (*MPMCQueue[any])(nil)

// Cell is one storage slot of an MPMCQueue. Callers allocate []Cell[T] and
// leave it to the queue to initialise.
type Cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// MPMCQueue is a lock-free bounded queue. Enqueue fails when full.
type MPMCQueue[T any] struct {
	head  atomic.Uint64
	_     cpu.CacheLinePad
	tail  atomic.Uint64
	_     cpu.CacheLinePad
	mask  uint64
	cells []Cell[T]
}

// NewMPMCQueue binds cells, rounded down to a power of two. Fewer than two
// cells cannot distinguish full from empty, so such queues reject every
// Enqueue.
func NewMPMCQueue[T any](cells []Cell[T]) *MPMCQueue[T] {
	size := pow2.Floor(len(cells))
	if size < 2 {
		size = 0
	}
	q := &MPMCQueue[T]{
		mask:  uint64(pow2.Mask(size)),
		cells: cells[:size],
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// Enqueue adds val; returns false if full.
func (q *MPMCQueue[T]) Enqueue(val T) bool {
	if len(q.cells) == 0 {
		return false
	}
	for {
		tail := q.tail.Load()
		c := &q.cells[tail&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		if dif == 0 {
			if q.tail.CompareAndSwap(tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		} else if dif < 0 {
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns an item; ok false if empty.
func (q *MPMCQueue[T]) Dequeue() (item T, ok bool) {
	if len(q.cells) == 0 {
		return item, false
	}
	for {
		head := q.head.Load()
		c := &q.cells[head&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		if dif == 0 {
			if q.head.CompareAndSwap(head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + q.mask + 1)
				return item, true
			}
		} else if dif < 0 {
			return item, false // empty
		}
		// head moved, retry
	}
}

// Len returns an approximate item count.
func (q *MPMCQueue[T]) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns fixed queue capacity.
func (q *MPMCQueue[T]) Cap() int {
	return len(q.cells)
}
