// File: pool/slot.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Ref addresses a slot by its index in the pool storage.
type Ref int32

// Nil is the empty link.
const Nil Ref = -1

// IsNil reports whether r is the empty link.
func (r Ref) IsNil() bool { return r < 0 }

// Number of index links per slot. A list uses them as next/previous,
// a tree as left/right child.
const linkCount = 2

// Slot is one storage cell of a NodePool. Callers only allocate slices of
// Slot; every field is managed through the pool.
type Slot[T any] struct {
	inUse bool
	gen   uint32
	links [linkCount]Ref
	value T
}

func (s *Slot[T]) reset() {
	s.links[0] = Nil
	s.links[1] = Nil
}

// Handle pins a Ref to the generation it was observed at.
type Handle struct {
	Ref Ref
	Gen uint32
}
