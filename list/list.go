// File: list/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package list implements a doubly-linked list whose nodes are drawn from a
// fixed pool.NodePool. Head and tail operations are O(1); positional
// operations walk from the head and cost O(index). Positions past the end
// are clamped to the tail rather than rejected.

package list

import (
	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/pool"
)

// Link slots used by the list inside each pool.Slot.
const (
	next = 0
	prev = 1
)

// List is a doubly-linked list over caller storage. Not safe for concurrent use.
type List[T any] struct {
	nodes *pool.NodePool[T]
	head  pool.Ref
	tail  pool.Ref
	count int
}

// New binds storage to an empty list.
func New[T any](storage []pool.Slot[T]) *List[T] {
	return &List[T]{
		nodes: pool.New(storage),
		head:  pool.Nil,
		tail:  pool.Nil,
	}
}

// Append links v after the current tail.
func (l *List[T]) Append(v T) api.Result {
	node, ok := l.nodes.AcquireWith(v)
	if !ok {
		return api.Overflow
	}
	if l.head.IsNil() {
		l.head, l.tail = node, node
	} else {
		l.nodes.SetLink(l.tail, next, node)
		l.nodes.SetLink(node, prev, l.tail)
		l.tail = node
	}
	l.count++
	return api.Success
}

// Insert places v so that it ends up at position index. Index 0 inserts
// before the head; an index past the end appends at the tail.
func (l *List[T]) Insert(index int, v T) api.Result {
	node, ok := l.nodes.AcquireWith(v)
	if !ok {
		return api.Overflow
	}
	l.count++

	if l.head.IsNil() {
		l.head, l.tail = node, node
		return api.Success
	}

	if index <= 0 {
		l.nodes.SetLink(node, next, l.head)
		l.nodes.SetLink(l.head, prev, node)
		l.head = node
		return api.Success
	}

	before := l.walk(index - 1)
	after := l.nodes.Link(before, next)
	if after.IsNil() {
		l.tail = node
	} else {
		l.nodes.SetLink(after, prev, node)
	}
	l.nodes.SetLink(node, next, after)
	l.nodes.SetLink(node, prev, before)
	l.nodes.SetLink(before, next, node)
	return api.Success
}

// Pop removes the tail and returns its value.
func (l *List[T]) Pop() (v T, res api.Result) {
	if l.tail.IsNil() {
		return v, api.Empty
	}
	return l.unlink(l.tail), api.Success
}

// Remove unlinks the node at index, clamped to the tail, and returns its value.
func (l *List[T]) Remove(index int) (v T, res api.Result) {
	if l.head.IsNil() {
		return v, api.Empty
	}
	if index <= 0 {
		return l.unlink(l.head), api.Success
	}
	return l.unlink(l.walk(index)), api.Success
}

// Get returns a pointer to the value at index, or nil when index is outside
// [0, Len()). The pointer is invalidated once that node is removed.
func (l *List[T]) Get(index int) *T {
	if l.head.IsNil() || index < 0 {
		return nil
	}
	node, steps := l.walkCounted(index)
	if steps < index {
		return nil
	}
	return l.nodes.Value(node)
}

// Head returns the first node, Nil when empty.
func (l *List[T]) Head() pool.Ref { return l.head }

// Tail returns the last node, Nil when empty.
func (l *List[T]) Tail() pool.Ref { return l.tail }

// Next returns the successor of node, Nil at the tail.
func (l *List[T]) Next(node pool.Ref) pool.Ref { return l.nodes.Link(node, next) }

// Prev returns the predecessor of node, Nil at the head.
func (l *List[T]) Prev(node pool.Ref) pool.Ref { return l.nodes.Link(node, prev) }

// At returns the value stored in node.
func (l *List[T]) At(node pool.Ref) *T { return l.nodes.Value(node) }

// Len returns the number of linked nodes.
func (l *List[T]) Len() int { return l.count }

// Cap returns the pool capacity.
func (l *List[T]) Cap() int { return l.nodes.Cap() }

// walk follows next up to steps times and stops early at the tail.
func (l *List[T]) walk(steps int) pool.Ref {
	node, _ := l.walkCounted(steps)
	return node
}

func (l *List[T]) walkCounted(steps int) (pool.Ref, int) {
	node, i := l.head, 0
	for i < steps {
		n := l.nodes.Link(node, next)
		if n.IsNil() {
			break
		}
		node = n
		i++
	}
	return node, i
}

// unlink detaches node from its neighbours, fixes head/tail and releases it.
func (l *List[T]) unlink(node pool.Ref) T {
	v := *l.nodes.Value(node)
	before := l.nodes.Link(node, prev)
	after := l.nodes.Link(node, next)

	if before.IsNil() {
		l.head = after
	} else {
		l.nodes.SetLink(before, next, after)
	}
	if after.IsNil() {
		l.tail = before
	} else {
		l.nodes.SetLink(after, prev, before)
	}

	l.nodes.Release(node)
	l.count--
	return v
}
