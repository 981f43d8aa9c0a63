// File: tree/tree.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tree

import (
	"github.com/momentics/hioload-collections/api"
	"github.com/momentics/hioload-collections/pool"
)

// Side selects a child position.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Tree is a binary tree over caller storage. Not safe for concurrent use.
type Tree[T any] struct {
	nodes *pool.NodePool[T]
	// work holds pending nodes during subtree release; a tree can never be
	// taller than the pool, so capacity entries always suffice.
	work  []pool.Ref
}

// New binds storage and frees every slot in it.
func New[T any](storage []pool.Slot[T]) *Tree[T] {
	nodes := pool.New(storage)
	return &Tree[T]{
		nodes: nodes,
		work:  make([]pool.Ref, 0, nodes.Cap()),
	}
}

// Reset frees every node. Existing trees are discarded.
func (t *Tree[T]) Reset() { t.nodes.Reset() }

// RetainNode acquires a detached node, typically used as the root.
// Returns Nil when the pool is exhausted.
func (t *Tree[T]) RetainNode() pool.Ref {
	ref, _ := t.nodes.Acquire()
	return ref
}

// RetainNodeWith acquires a detached node holding v.
func (t *Tree[T]) RetainNodeWith(v T) pool.Ref {
	ref, _ := t.nodes.AcquireWith(v)
	return ref
}

// AppendChild creates a node holding v and links it on side of parent.
// Empty: parent is Nil or not a live node. Overflow: side already occupied,
// or no free slot. On failure nothing is changed and Nil is returned.
func (t *Tree[T]) AppendChild(parent pool.Ref, v T, side Side) (pool.Ref, api.Result) {
	if !t.nodes.InUse(parent) {
		return pool.Nil, api.Empty
	}
	if !t.Child(parent, side).IsNil() {
		return pool.Nil, api.Overflow
	}
	child, ok := t.nodes.AcquireWith(v)
	if !ok {
		return pool.Nil, api.Overflow
	}
	t.nodes.SetLink(parent, int(side), child)
	return child, api.Success
}

// LinkNode attaches an already retained node on side of parent.
// The caller must pass a detached node; linking a node that already has a
// parent breaks the single-parent property.
func (t *Tree[T]) LinkNode(parent, node pool.Ref, side Side) api.Result {
	if !t.nodes.InUse(node) || !t.nodes.InUse(parent) {
		return api.Empty
	}
	if !t.Child(parent, side).IsNil() {
		return api.Overflow
	}
	t.nodes.SetLink(parent, int(side), node)
	return api.Success
}

// RemoveChild prunes target. A leaf is released. An internal node loses both
// child subtrees, which are released in post-order (left before right), and
// is itself kept. Nil or free targets are ignored.
func (t *Tree[T]) RemoveChild(target pool.Ref) {
	if !t.nodes.InUse(target) {
		return
	}
	if t.IsLeaf(target) {
		t.nodes.Release(target)
		return
	}
	for _, side := range [...]Side{Left, Right} {
		child := t.Child(target, side)
		if child.IsNil() {
			continue
		}
		t.releaseSubtree(child)
		t.nodes.SetLink(target, int(side), pool.Nil)
	}
}

// releaseSubtree frees root and all its descendants, children before parents.
func (t *Tree[T]) releaseSubtree(root pool.Ref) {
	stack := t.work[:0]
	last := pool.Nil
	cur := root
	for !cur.IsNil() || len(stack) > 0 {
		if !cur.IsNil() {
			stack = append(stack, cur)
			cur = t.Child(cur, Left)
			continue
		}
		top := stack[len(stack)-1]
		if rhs := t.Child(top, Right); !rhs.IsNil() && rhs != last {
			cur = rhs
			continue
		}
		stack = stack[:len(stack)-1]
		t.nodes.Release(top)
		last = top
	}
	t.work = stack[:0]
}

// Child returns the node on side of ref, Nil if empty.
func (t *Tree[T]) Child(ref pool.Ref, side Side) pool.Ref {
	return t.nodes.Link(ref, int(side))
}

// Value returns the payload of a live node, nil otherwise.
func (t *Tree[T]) Value(ref pool.Ref) *T { return t.nodes.Value(ref) }

// IsLeaf reports whether ref has no children.
func (t *Tree[T]) IsLeaf(ref pool.Ref) bool {
	return t.Child(ref, Left).IsNil() && t.Child(ref, Right).IsNil()
}

// Handle pins ref to its current generation.
func (t *Tree[T]) Handle(ref pool.Ref) pool.Handle { return t.nodes.Handle(ref) }

// Resolve reports whether h still names the same live node.
func (t *Tree[T]) Resolve(h pool.Handle) (pool.Ref, bool) { return t.nodes.Resolve(h) }

// Len returns the number of live nodes across all trees on the pool.
func (t *Tree[T]) Len() int { return t.nodes.Len() }

// Cap returns the pool capacity.
func (t *Tree[T]) Cap() int { return t.nodes.Cap() }
