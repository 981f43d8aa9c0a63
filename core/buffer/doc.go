// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Array-backed fixed-capacity containers: a lossy ring buffer, a stack and a
// queue. Each container binds a caller-supplied slice at construction and
// never allocates afterwards. Ring and Queue round their capacity down to a
// power of two so that index advancement is a single mask operation.
//
// None of the types here are safe for concurrent use. A producer running in
// a different execution context (an interrupt handler, another goroutine)
// must go through core/concurrency instead.
package buffer
