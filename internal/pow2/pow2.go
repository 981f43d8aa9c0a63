// File: internal/pow2/pow2.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Power-of-two capacity math shared by the ring-shaped containers.

package pow2

import "math/bits"

// Floor returns the largest power of two not exceeding n (15 -> 8, 34 -> 32).
// Zero and negative inputs yield 0.
func Floor(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Mask returns the index mask for a power-of-two capacity, 0 for capacity 0.
func Mask(capacity int) int {
	if capacity == 0 {
		return 0
	}
	return capacity - 1
}
