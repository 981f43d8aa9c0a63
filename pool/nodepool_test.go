package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-collections/pool"
)

func TestNodePool_AcquireInIndexOrder(t *testing.T) {
	p := pool.New(make([]pool.Slot[int], 4))
	require.Equal(t, 4, p.Cap())

	for i := 0; i < 4; i++ {
		ref, ok := p.Acquire()
		require.True(t, ok)
		assert.Equal(t, pool.Ref(i), ref)
	}
	ref, ok := p.Acquire()
	assert.False(t, ok)
	assert.Equal(t, pool.Nil, ref)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 0, p.Free())
}

func TestNodePool_ReleaseThenReacquireReusesSlot(t *testing.T) {
	const n = 8
	p := pool.New(make([]pool.Slot[int], n))
	refs := make([]pool.Ref, n)
	for i := range refs {
		var ok bool
		refs[i], ok = p.Acquire()
		require.True(t, ok)
	}

	p.Release(refs[2])
	assert.False(t, p.InUse(refs[2]))
	assert.Equal(t, n-1, p.Len())

	ref, ok := p.Acquire()
	require.True(t, ok)
	assert.Equal(t, refs[2], ref)
}

func TestNodePool_AcquireClearsLinks(t *testing.T) {
	p := pool.New(make([]pool.Slot[string], 2))
	a, _ := p.AcquireWith("a")
	b, _ := p.AcquireWith("b")
	p.SetLink(a, 0, b)
	p.SetLink(a, 1, b)
	require.Equal(t, b, p.Link(a, 0))

	p.Release(a)
	assert.Nil(t, p.Value(a))
	assert.Equal(t, pool.Nil, p.Link(a, 0))

	again, ok := p.Acquire()
	require.True(t, ok)
	require.Equal(t, a, again)
	assert.Equal(t, pool.Nil, p.Link(again, 0))
	assert.Equal(t, pool.Nil, p.Link(again, 1))
	assert.Equal(t, "", *p.Value(again))
	assert.Equal(t, "b", *p.Value(b))
}

func TestNodePool_InvalidRefs(t *testing.T) {
	p := pool.New(make([]pool.Slot[int], 2))
	p.Release(pool.Nil)
	p.Release(pool.Ref(7))
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Value(pool.Nil))
	assert.Nil(t, p.Value(pool.Ref(2)))
	assert.Equal(t, pool.Nil, p.Link(pool.Ref(5), 0))
	assert.False(t, p.InUse(pool.Ref(0)))
	assert.True(t, pool.Nil.IsNil())
	assert.False(t, pool.Ref(0).IsNil())

	// double release does not corrupt accounting
	ref, _ := p.Acquire()
	p.Release(ref)
	p.Release(ref)
	assert.Equal(t, 0, p.Len())
}

func TestNodePool_StaleHandle(t *testing.T) {
	p := pool.New(make([]pool.Slot[int], 1))
	ref, _ := p.AcquireWith(42)
	h := p.Handle(ref)

	got, ok := p.Resolve(h)
	require.True(t, ok)
	assert.Equal(t, ref, got)

	p.Release(ref)
	_, ok = p.Resolve(h)
	assert.False(t, ok)

	// the slot is recycled under a new generation
	again, _ := p.AcquireWith(7)
	require.Equal(t, ref, again)
	_, ok = p.Resolve(h)
	assert.False(t, ok)
	assert.Equal(t, h.Gen+1, p.Generation(again))
}

func TestNodePool_Reset(t *testing.T) {
	p := pool.New(make([]pool.Slot[int], 3))
	p.Acquire()
	p.Acquire()
	p.Reset()
	assert.Equal(t, 0, p.Len())
	ref, ok := p.Acquire()
	require.True(t, ok)
	assert.Equal(t, pool.Ref(0), ref)
}

func TestNodePool_ZeroCapacity(t *testing.T) {
	p := pool.New[int](nil)
	ref, ok := p.Acquire()
	assert.False(t, ok)
	assert.Equal(t, pool.Nil, ref)
	assert.Equal(t, 0, p.Cap())
}
