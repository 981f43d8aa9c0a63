// File: core/concurrency/eventloop.go
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EventLoop is the main-context consumer of a lock-free ring. It drains up to
// a batch of items per cycle, hands the batch to a handler and, when the ring
// is empty, backs off exponentially from 1ns up to a ceiling before polling
// again. The batch buffer is allocated once at construction.

package concurrency

import (
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-collections/api"
)

// BatchHandler consumes one drained batch. The slice is reused on the next
// cycle and must not be retained.
type BatchHandler[T any] func(batch []T)

// EventLoop polls a single api.Channel.
type EventLoop[T any] struct {
	src        api.Channel[T]
	handler    BatchHandler[T]
	batch      []T
	maxBackoff time.Duration
	quitCh     chan struct{} // closed on Stop()
	doneCh     chan struct{} // closed after Run() exits
	running    atomic.Bool
	delivered  atomic.Uint64
}

// DefaultMaxBackoff caps the idle polling interval.
const DefaultMaxBackoff = time.Millisecond

// NewEventLoop creates a loop over src that dispatches at most batchSize
// items per handler call.
func NewEventLoop[T any](src api.Channel[T], batchSize int, handler BatchHandler[T]) *EventLoop[T] {
	if batchSize < 1 {
		batchSize = 1
	}
	return &EventLoop[T]{
		src:        src,
		handler:    handler,
		batch:      make([]T, 0, batchSize),
		maxBackoff: DefaultMaxBackoff,
		quitCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// SetMaxBackoff changes the idle polling ceiling. Call before Run.
func (el *EventLoop[T]) SetMaxBackoff(d time.Duration) {
	if d > 0 {
		el.maxBackoff = d
	}
}

// Run drains the source until Stop is called. Items still queued at Stop are
// flushed before Run returns.
func (el *EventLoop[T]) Run() error {
	select {
	case <-el.quitCh:
		return ErrLoopStopped
	default:
	}
	if !el.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(el.doneCh)

	backoff := time.Duration(1)
	timer := time.NewTimer(el.maxBackoff)
	timer.Stop()

	for {
		if el.drainOnce() > 0 {
			backoff = 1
			continue
		}

		timer.Reset(backoff)
		select {
		case <-el.quitCh:
			timer.Stop()
			for el.drainOnce() > 0 {
			}
			return nil
		case <-timer.C:
			backoff *= 2
			if backoff > el.maxBackoff {
				backoff = el.maxBackoff
			}
		}
	}
}

// drainOnce dispatches one batch and returns its size.
func (el *EventLoop[T]) drainOnce() int {
	el.batch = el.batch[:0]
	for len(el.batch) < cap(el.batch) {
		item, ok := el.src.Dequeue()
		if !ok {
			break
		}
		el.batch = append(el.batch, item)
	}
	n := len(el.batch)
	if n > 0 {
		el.handler(el.batch)
		el.delivered.Add(uint64(n))
		var zero T
		for i := range el.batch {
			el.batch[i] = zero
		}
	}
	return n
}

// Delivered returns the number of items handed to the handler so far.
func (el *EventLoop[T]) Delivered() uint64 {
	return el.delivered.Load()
}

// Pending returns approximate count of items waiting in the source.
func (el *EventLoop[T]) Pending() int {
	return el.src.Len()
}

// Stop signals the Run loop to exit and waits for completion.
// Calling Stop before Run only marks the loop as stopped.
func (el *EventLoop[T]) Stop() {
	select {
	case <-el.quitCh:
		// already closed
	default:
		close(el.quitCh)
	}
	if el.running.Load() {
		<-el.doneCh
	}
}
