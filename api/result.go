// Package api
// Author: momentics@gmail.com
//
// Three-valued operation result shared by every fixed-capacity container.

package api

// Result reports the outcome of a container operation.
// Failures are always local: no container is partially mutated when an
// operation returns anything other than Success.
type Result uint8

const (
	// Success means the operation completed.
	Success Result = iota
	// Overflow means capacity was exhausted, or a tree side was already occupied.
	Overflow
	// Empty means there was nothing to remove, or a required node was missing.
	Empty
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Overflow:
		return "overflow"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// OK reports whether r is Success.
func (r Result) OK() bool { return r == Success }

// Err maps r onto the package sentinel errors; Success maps to nil.
func (r Result) Err() error {
	switch r {
	case Success:
		return nil
	case Overflow:
		return ErrOverflow
	case Empty:
		return ErrEmpty
	}
	return ErrUnknownResult
}
