package wcc_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/wcc"
)

func TestDisjointSetUnionByMin(t *testing.T) {
	dss := wcc.NewDisjointSet[uint64](10)

	assert.Equal(t, uint64(9), dss.Find(9))
	dss.Union(9, 7)
	assert.Equal(t, uint64(7), dss.Find(9))
	dss.Union(7, 4)
	assert.Equal(t, uint64(4), dss.Find(9))
	dss.Union(4, 2)
	assert.Equal(t, uint64(2), dss.Find(9))
	dss.Union(2, 0)
	assert.Equal(t, uint64(0), dss.Find(9))
}

func TestDisjointSetPathHalving(t *testing.T) {
	dss := wcc.NewDisjointSet[uint64](10)

	dss.Union(4, 3)
	dss.Union(3, 2)
	dss.Union(2, 1)
	dss.Union(1, 0)

	dss.Union(9, 8)
	dss.Union(8, 7)
	dss.Union(7, 6)
	dss.Union(6, 5)

	assert.Equal(t, uint64(0), dss.Find(4))
	assert.Equal(t, uint64(5), dss.Find(9))

	dss.Union(5, 4)

	for i := 0; i < dss.Len(); i++ {
		assert.Equal(t, uint64(0), dss.Find(uint64(i)))
	}
}

// Two goroutines union two barrier-separated chains each; afterwards every
// node inside a chain must share one root, and the chains must stay apart.
func TestDisjointSetUnionParallel(t *testing.T) {
	dss := wcc.NewDisjointSet[uint64](1000)

	const goroutines = 2
	barrier := newBarrier(goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			barrier.wait()
			for i := uint64(0); i < 500; i++ {
				dss.Union(i, i+1)
			}
			// Wait again before the second chain to raise the chance of
			// concurrent updates.
			barrier.wait()
			for i := uint64(501); i < 999; i++ {
				dss.Union(i, i+1)
			}
		}()
	}
	wg.Wait()

	for i := uint64(0); i < 500; i++ {
		assert.Equal(t, dss.Find(i), dss.Find(i+1))
	}

	assert.NotEqual(t, dss.Find(500), dss.Find(501))

	for i := uint64(501); i < 999; i++ {
		assert.Equal(t, dss.Find(i), dss.Find(i+1))
	}
}

func TestDisjointSetComponents(t *testing.T) {
	dss := wcc.NewDisjointSet[uint32](6)
	dss.Union(0, 1)
	dss.Union(1, 2)
	dss.Union(4, 5)

	components := dss.Components()
	require.Len(t, components, 6)

	assert.Equal(t, components[0], components[1])
	assert.Equal(t, components[1], components[2])
	assert.Equal(t, components[4], components[5])
	assert.NotEqual(t, components[0], components[3])
	assert.NotEqual(t, components[0], components[4])
}

// barrier is a reusable rendezvous for a fixed number of goroutines.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	size  int
	count int
	round int
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	round := b.round
	b.count++
	if b.count == b.size {
		b.count = 0
		b.round++
		b.cond.Broadcast()
		return
	}
	for round == b.round {
		b.cond.Wait()
	}
}
