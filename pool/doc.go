// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed slot arena shared by the pooled linked structures (list, tree).
// A NodePool binds a caller-supplied []Slot[T] and hands slots out in index
// order; links between slots are indices (Ref), never owning pointers, so the
// slice stays the sole owner of node memory. Each slot carries a generation
// counter that is bumped on release, which lets callers holding a Handle
// detect that the slot they referred to has since been recycled.
//
// Acquire is a first-fit linear scan, O(capacity) worst case. This keeps
// reuse deterministic: a freshly released slot with the lowest index is the
// next one handed out.
package pool
