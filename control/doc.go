// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for fixed-capacity containers.
//
// Provides concurrent-safe state handling primitives including:
//   - Prometheus gauges tracking occupancy of any api.Sized container
//   - Ad hoc metric values with snapshot reads
//   - Debug probe registration and structured state dumps
//
// The containers themselves never depend on this package; callers register
// the instances they want to observe.
package control
