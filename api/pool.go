// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Slot allocator contract shared by the pooled linked structures.

package api

// SlotPool hands out and reclaims fixed slots addressed by index.
type SlotPool[R comparable] interface {
	Sized

	// Acquire returns the first free slot, or false when exhausted.
	Acquire() (R, bool)

	// Release returns a slot to the pool.
	Release(ref R)
}
