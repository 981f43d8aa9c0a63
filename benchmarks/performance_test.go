// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-collections components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-collections/core/buffer"
	"github.com/momentics/hioload-collections/core/concurrency"
	"github.com/momentics/hioload-collections/list"
	"github.com/momentics/hioload-collections/pool"
	"github.com/momentics/hioload-collections/tree"
)

// BenchmarkNodePoolAcquireRelease measures first-fit acquire on a half-full pool.
func BenchmarkNodePoolAcquireRelease(b *testing.B) {
	p := pool.New(make([]pool.Slot[int], 256))
	for i := 0; i < 128; i++ {
		p.Acquire()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _ := p.Acquire()
		p.Release(ref)
	}
}

// BenchmarkListAppendPop measures tail operations, which must stay O(1).
func BenchmarkListAppendPop(b *testing.B) {
	l := list.New(make([]pool.Slot[int], 64))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
		l.Pop()
	}
}

// BenchmarkListGetMiddle measures the O(index) walk.
func BenchmarkListGetMiddle(b *testing.B) {
	const n = 128
	l := list.New(make([]pool.Slot[int], n))
	for i := 0; i < n; i++ {
		l.Append(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Get(n / 2)
	}
}

// BenchmarkTreeBuildAndPrune builds a full tree of depth 5 and prunes it.
func BenchmarkTreeBuildAndPrune(b *testing.B) {
	t := tree.New(make([]pool.Slot[int], 64))
	root := t.RetainNode()

	var grow func(parent pool.Ref, depth int)
	grow = func(parent pool.Ref, depth int) {
		if depth == 0 {
			return
		}
		l, _ := t.AppendChild(parent, depth, tree.Left)
		r, _ := t.AppendChild(parent, depth, tree.Right)
		grow(l, depth-1)
		grow(r, depth-1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grow(root, 5)
		t.RemoveChild(root)
	}
}

// BenchmarkRingAppendLossy measures the overwrite path of a full ring.
func BenchmarkRingAppendLossy(b *testing.B) {
	r := buffer.NewRing(make([]int, 1024))
	for r.HasSpace() {
		r.Append(0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Append(i)
	}
}

// BenchmarkSPSCRingThroughput measures one producer against one consumer.
func BenchmarkSPSCRingThroughput(b *testing.B) {
	ring := concurrency.NewSPSCRing(make([]int, 1024))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 0; n < b.N; {
			if _, ok := ring.Dequeue(); ok {
				n++
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; {
		if ring.Enqueue(i) {
			i++
		}
	}
	<-done
}
