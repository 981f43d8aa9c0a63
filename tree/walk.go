// File: tree/walk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Level-order inspection helpers. These allocate their frontier and are
// meant for diagnostics, not for the allocation-free hot path.

package tree

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-collections/pool"
)

// Visit is called once per node; depth is 0 for the start node.
// Returning false stops the walk.
type Visit[T any] func(ref pool.Ref, value *T, depth int) bool

type pending struct {
	ref   pool.Ref
	depth int
}

// Walk visits the subtree under root breadth-first, left before right.
func (t *Tree[T]) Walk(root pool.Ref, fn Visit[T]) {
	if !t.nodes.InUse(root) {
		return
	}
	frontier := queue.New()
	frontier.Add(pending{ref: root})
	for frontier.Length() > 0 {
		p := frontier.Remove().(pending)
		if !fn(p.ref, t.nodes.Value(p.ref), p.depth) {
			return
		}
		for _, side := range [...]Side{Left, Right} {
			if child := t.Child(p.ref, side); !child.IsNil() {
				frontier.Add(pending{ref: child, depth: p.depth + 1})
			}
		}
	}
}

// Size returns the number of nodes in the subtree under root.
func (t *Tree[T]) Size(root pool.Ref) int {
	n := 0
	t.Walk(root, func(pool.Ref, *T, int) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of levels under root, 0 for Nil.
func (t *Tree[T]) Height(root pool.Ref) int {
	h := 0
	t.Walk(root, func(_ pool.Ref, _ *T, depth int) bool {
		if depth+1 > h {
			h = depth + 1
		}
		return true
	})
	return h
}
