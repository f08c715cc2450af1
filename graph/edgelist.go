// This file defines the edge source contract and its owned implementation,
// the EdgeList. An edge source feeds the CSR builder: it can be iterated in
// parallel up to twice (once per direction), knows its maximum node id, and
// can histogram degrees for a direction.
package graph

import (
	"sync"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// edgeBatch is the number of edges a worker claims per steal during
// parallel iteration.
const edgeBatch = 4096

// Edge is a single (source, target, value) triple.
type Edge[NI ID, EV any] struct {
	Source NI
	Target NI
	Value  EV
}

// Edges is the edge source contract consumed by the CSR builder.
//
// ForEachEdgePar may be driven concurrently from many goroutines and may be
// consumed up to twice; both passes must yield the same multiset of edges.
// Individual edges must be cheap to materialize.
type Edges[NI ID, EV any] interface {
	// ForEachEdgePar invokes fn for every edge; fn is called concurrently
	// and must be safe for parallel invocation.
	ForEachEdgePar(fn func(source, target NI, value EV))

	// MaxNodeID returns the largest node id over both endpoints of all
	// edges, either cached or computed by a parallel reduction.
	MaxNodeID() NI

	// Degrees histograms the edges into an array of nodeCount counters
	// according to direction. The counters are incremented atomically.
	Degrees(nodeCount NI, direction Direction) []NI
}

// EdgeList is a finite, owned sequence of edges with an optional cached
// maximum node id.
type EdgeList[NI ID, EV any] struct {
	edges     []Edge[NI, EV]
	maxNodeID NI
	hasMax    bool
}

// NewEdgeList wraps the given edges. The maximum node id is computed on
// first use.
func NewEdgeList[NI ID, EV any](edges []Edge[NI, EV]) *EdgeList[NI, EV] {
	return &EdgeList[NI, EV]{edges: edges}
}

// NewEdgeListWithMaxNodeID wraps the given edges with a pre-computed
// maximum node id, making MaxNodeID O(1).
func NewEdgeListWithMaxNodeID[NI ID, EV any](edges []Edge[NI, EV], maxNodeID NI) *EdgeList[NI, EV] {
	return &EdgeList[NI, EV]{edges: edges, maxNodeID: maxNodeID, hasMax: true}
}

// PlainEdges turns (source, target) pairs into unweighted edges.
func PlainEdges[NI ID](pairs [][2]NI) []Edge[NI, Unit] {
	edges := make([]Edge[NI, Unit], len(pairs))
	for i, p := range pairs {
		edges[i] = Edge[NI, Unit]{Source: p[0], Target: p[1]}
	}

	return edges
}

// Len returns the number of edges.
func (el *EdgeList[NI, EV]) Len() int {
	return len(el.edges)
}

// ForEachEdgePar iterates all edges with the default number of workers,
// each stealing contiguous batches.
func (el *EdgeList[NI, EV]) ForEachEdgePar(fn func(source, target NI, value EV)) {
	parallel.ForEachChunk(len(el.edges), edgeBatch, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			e := el.edges[i]
			fn(e.Source, e.Target, e.Value)
		}
	})
}

// MaxNodeID returns the cached maximum node id or reduces the edge list by
// pairwise max over both endpoints.
func (el *EdgeList[NI, EV]) MaxNodeID() NI {
	if el.hasMax {
		return el.maxNodeID
	}

	var mu sync.Mutex
	var max NI
	parallel.ForEachChunk(len(el.edges), edgeBatch, func(lo, hi int) {
		var local NI
		for i := lo; i < hi; i++ {
			e := el.edges[i]
			local = maxID(local, maxID(e.Source, e.Target))
		}
		mu.Lock()
		max = maxID(max, local)
		mu.Unlock()
	})

	return max
}

// Degrees histograms the edge list into nodeCount atomic counters.
func (el *EdgeList[NI, EV]) Degrees(nodeCount NI, direction Direction) []NI {
	return ComputeDegrees[NI, EV](el, nodeCount, direction)
}

// ComputeDegrees builds the per-direction degree histogram of an arbitrary
// edge source. Edge source implementations delegate their Degrees method
// here.
func ComputeDegrees[NI ID, EV any](edges Edges[NI, EV], nodeCount NI, direction Direction) []NI {
	degrees := make([]NI, int(nodeCount))

	if direction == Outgoing || direction == Undirected {
		edges.ForEachEdgePar(func(s, _ NI, _ EV) {
			GetAndIncrementID(&degrees[int(s)])
		})
	}
	if direction == Incoming || direction == Undirected {
		edges.ForEachEdgePar(func(_, t NI, _ EV) {
			GetAndIncrementID(&degrees[int(t)])
		})
	}

	return degrees
}
