// Package sssp shared state: configuration, sentinel errors, the atomic
// float32 distance array, and the per-worker bin structure of Δ-stepping.
package sssp

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/neo4j-labs/graph-sub000/graph"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrBadDelta indicates a non-positive bucket width.
	ErrBadDelta = errors.New("sssp: delta must be positive")

	// ErrStartNodeNotFound indicates a start node outside the node id range.
	ErrStartNodeNotFound = errors.New("sssp: start node out of range")
)

// Infinity is the tentative distance of unreached nodes.
const Infinity = math.MaxFloat32

// Config parameterizes a Δ-stepping run.
type Config[NI graph.ID] struct {
	// StartNode is the node for which to compute distances to all reachable
	// nodes.
	StartNode NI

	// Delta is the bucket width. A bucket maintains nodes with tentative
	// distances inside the same Δ-wide window.
	Delta float32
}

// NewConfig pairs a start node with a bucket width.
func NewConfig[NI graph.ID](startNode NI, delta float32) Config[NI] {
	return Config[NI]{StartNode: startNode, Delta: delta}
}

// atomicF32s is a dense array of atomically accessed float32 cells, stored
// as raw bits so that compare-and-swap is available.
type atomicF32s struct {
	bits []uint32
}

func newAtomicF32s(n int, init float32) *atomicF32s {
	bits := make([]uint32, n)
	pattern := math.Float32bits(init)
	for i := range bits {
		bits[i] = pattern
	}

	return &atomicF32s{bits: bits}
}

func (s *atomicF32s) load(i int) float32 {
	return math.Float32frombits(atomic.LoadUint32(&s.bits[i]))
}

func (s *atomicF32s) store(i int, v float32) {
	atomic.StoreUint32(&s.bits[i], math.Float32bits(v))
}

func (s *atomicF32s) compareAndSwap(i int, old, new float32) bool {
	return atomic.CompareAndSwapUint32(&s.bits[i], math.Float32bits(old), math.Float32bits(new))
}

func (s *atomicF32s) snapshot() []float32 {
	out := make([]float32, len(s.bits))
	for i := range s.bits {
		out[i] = s.load(i)
	}

	return out
}

// localBins is the per-worker bin structure: a growable vector of buckets,
// each a growable vector of node ids, indexed by ⌊distance/Δ⌋.
type localBins[NI graph.ID] struct {
	bins [][]NI
}

func newLocalBins[NI graph.ID]() *localBins[NI] {
	return &localBins[NI]{bins: make([][]NI, 1)}
}

func (b *localBins[NI]) len() int {
	return len(b.bins)
}

func (b *localBins[NI]) contains(bin int) bool {
	return bin < len(b.bins)
}

func (b *localBins[NI]) binLen(bin int) int {
	return len(b.bins[bin])
}

func (b *localBins[NI]) isEmpty(bin int) bool {
	return len(b.bins[bin]) == 0
}

func (b *localBins[NI]) snapshot(bin int) []NI {
	return append([]NI(nil), b.bins[bin]...)
}

func (b *localBins[NI]) clear(bin int) {
	b.bins[bin] = b.bins[bin][:0]
}

func (b *localBins[NI]) slice(bin int) []NI {
	return b.bins[bin]
}

func (b *localBins[NI]) grow(newLen int) {
	for len(b.bins) < newLen {
		b.bins = append(b.bins, nil)
	}
}

func (b *localBins[NI]) push(bin int, v NI) {
	b.bins[bin] = append(b.bins[bin], v)
}
