// Package api
// Author: momentics@gmail.com
//
// Contracts for fixed-capacity containers bound to caller storage.

package api

// Sized is anything that reports occupancy against a fixed capacity.
type Sized interface {
	// Len returns the number of stored elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// Ring is a lossy circular buffer: appending to a full ring drops the oldest element.
type Ring[T any] interface {
	Sized
	Append(item T) Result
	Pop() (T, Result)
}

// Stack is a LIFO container that rejects pushes when full.
type Stack[T any] interface {
	Sized
	Push(item T) Result
	Pop() (T, Result)
}

// Queue is a FIFO container that rejects enqueues when full.
type Queue[T any] interface {
	Sized
	Enqueue(item T) Result
	Dequeue() (T, Result)
}

// Channel is a bounded producer/consumer ring safe across execution contexts.
type Channel[T any] interface {
	Sized
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
}
