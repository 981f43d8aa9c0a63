// File: core/concurrency/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSCRing is a bounded single-producer/single-consumer ring over caller
// storage. It is the cross-context counterpart of core/buffer.Ring: the
// producer (an interrupt handler, a receive goroutine) only moves tail, the
// consumer (the main loop) only moves head, and each side publishes its index
// with an atomic store after touching the slot.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/internal/pow2"
)

// Ensure compile-time interface compliance.
var _ api.Channel[any] = (*SPSCRing[any])(nil)

// SPSCRing is lossless: Enqueue on a full ring fails instead of dropping the
// oldest element, since the producer must never write a slot the consumer
// may still be reading.
type SPSCRing[T any] struct {
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad
	mask uint64
	data []T
}

// NewSPSCRing binds storage. Only the first Floor(len(storage)) elements are used.
func NewSPSCRing[T any](storage []T) *SPSCRing[T] {
	size := pow2.Floor(len(storage))
	return &SPSCRing[T]{
		mask: uint64(pow2.Mask(size)),
		data: storage[:size],
	}
}

// Enqueue adds val; returns false if full. Producer side only.
func (r *SPSCRing[T]) Enqueue(val T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = val
	r.tail.Store(tail + 1)
	return true
}

// Dequeue removes and returns (item, ok); ok==false if empty. Consumer side only.
func (r *SPSCRing[T]) Dequeue() (res T, ok bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return res, false
	}
	idx := head & r.mask
	res = r.data[idx]
	var zero T
	r.data[idx] = zero
	r.head.Store(head + 1)
	return res, true
}

// Len returns number of items in the buffer. The value is a snapshot when
// called concurrently with either side.
func (r *SPSCRing[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns logical buffer capacity.
func (r *SPSCRing[T]) Cap() int {
	return len(r.data)
}
