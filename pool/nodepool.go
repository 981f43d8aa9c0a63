// File: pool/nodepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// First-fit slot allocator over caller storage.

package pool

import (
	"math"

	"github.com/momentics/hioload-collections/api"
)

var _ api.SlotPool[Ref] = (*NodePool[any])(nil)

// NodePool hands out and reclaims the slots of a fixed slice.
// Not safe for concurrent use.
type NodePool[T any] struct {
	slots []Slot[T]
	inUse int
}

// New binds storage and marks every slot free. Storage beyond
// math.MaxInt32 slots is ignored since Ref is 32-bit.
func New[T any](storage []Slot[T]) *NodePool[T] {
	if len(storage) > math.MaxInt32 {
		storage = storage[:math.MaxInt32]
	}
	p := &NodePool[T]{slots: storage}
	p.Reset()
	return p
}

// Reset frees every slot. Any structure built on the pool is invalidated.
func (p *NodePool[T]) Reset() {
	var zero T
	for i := range p.slots {
		s := &p.slots[i]
		if s.inUse {
			s.gen++
		}
		s.inUse = false
		s.value = zero
		s.reset()
	}
	p.inUse = 0
}

// Acquire scans for the first free slot in index order, marks it in use and
// clears its links. Returns (Nil, false) when the pool is exhausted.
func (p *NodePool[T]) Acquire() (Ref, bool) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.inUse {
			continue
		}
		s.inUse = true
		s.reset()
		p.inUse++
		return Ref(i), true
	}
	return Nil, false
}

// AcquireWith acquires a slot and stores v in it.
func (p *NodePool[T]) AcquireWith(v T) (Ref, bool) {
	ref, ok := p.Acquire()
	if ok {
		p.slots[ref].value = v
	}
	return ref, ok
}

// Release marks the slot free, clears its links and bumps its generation.
// Releasing Nil, an out-of-range ref or an already free slot is a no-op.
// Ownership is not checked: releasing a slot still linked from a live
// structure corrupts that structure.
func (p *NodePool[T]) Release(ref Ref) {
	s := p.slot(ref)
	if s == nil || !s.inUse {
		return
	}
	var zero T
	s.inUse = false
	s.value = zero
	s.reset()
	s.gen++
	p.inUse--
}

// Len returns the number of slots in use.
func (p *NodePool[T]) Len() int { return p.inUse }

// Cap returns the total slot count.
func (p *NodePool[T]) Cap() int { return len(p.slots) }

// Free returns the number of slots available to Acquire.
func (p *NodePool[T]) Free() int { return len(p.slots) - p.inUse }

// InUse reports whether ref addresses an acquired slot.
func (p *NodePool[T]) InUse(ref Ref) bool {
	s := p.slot(ref)
	return s != nil && s.inUse
}

// Value returns a pointer to the payload of an acquired slot, nil otherwise.
// The pointer is only meaningful until the slot is released.
func (p *NodePool[T]) Value(ref Ref) *T {
	s := p.slot(ref)
	if s == nil || !s.inUse {
		return nil
	}
	return &s.value
}

// Link returns link i (0 or 1) of ref, Nil for invalid refs.
func (p *NodePool[T]) Link(ref Ref, i int) Ref {
	s := p.slot(ref)
	if s == nil {
		return Nil
	}
	return s.links[i]
}

// SetLink points link i of ref at to.
func (p *NodePool[T]) SetLink(ref Ref, i int, to Ref) {
	if s := p.slot(ref); s != nil {
		s.links[i] = to
	}
}

// Generation returns the release count of the slot at ref.
func (p *NodePool[T]) Generation(ref Ref) uint32 {
	if s := p.slot(ref); s != nil {
		return s.gen
	}
	return 0
}

// Handle captures ref together with its current generation.
func (p *NodePool[T]) Handle(ref Ref) Handle {
	return Handle{Ref: ref, Gen: p.Generation(ref)}
}

// Resolve returns the Ref behind h if the slot is still in use and has not
// been released since h was taken.
func (p *NodePool[T]) Resolve(h Handle) (Ref, bool) {
	s := p.slot(h.Ref)
	if s == nil || !s.inUse || s.gen != h.Gen {
		return Nil, false
	}
	return h.Ref, true
}

func (p *NodePool[T]) slot(ref Ref) *Slot[T] {
	if ref < 0 || int(ref) >= len(p.slots) {
		return nil
	}
	return &p.slots[ref]
}
