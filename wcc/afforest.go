package wcc

import (
	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// Afforest is the union-find variant described in the Afforest paper. Its
// link operation breaks early when the higher root already hangs below the
// lower one or when a single CAS manages to redirect it; otherwise both
// parents are refreshed and the link retries. Find only reads the direct
// parent, so Compress must run before Find results are exact.
type Afforest[NI graph.ID] struct {
	parent []NI
}

// NewAfforest creates a disjoint set of size singleton elements.
func NewAfforest[NI graph.ID](size int) *Afforest[NI] {
	parent := make([]NI, size)
	parallel.ForEachChunk(size, DefaultChunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			parent[i] = NI(i)
		}
	})

	return &Afforest[NI]{parent: parent}
}

func (a *Afforest[NI]) loadParent(i NI) NI {
	return graph.LoadID(&a.parent[int(i)])
}

func (a *Afforest[NI]) updateParent(id, current, next NI) bool {
	return graph.CompareAndSwapID(&a.parent[int(id)], current, next)
}

// Union corresponds to the link operation of the paper.
func (a *Afforest[NI]) Union(u, v NI) {
	p1 := a.Find(u)
	p2 := a.Find(v)

	for p1 != p2 {
		high := p1
		low := p2
		if low > high {
			high, low = low, high
		}
		pHigh := a.Find(high)

		if pHigh == low || (pHigh == high && a.updateParent(a.Find(high), high, low)) {
			break
		}
		p1 = a.loadParent(a.loadParent(high))
		p2 = a.loadParent(low)
	}
}

// Find returns the direct parent of u; exact only after Compress.
func (a *Afforest[NI]) Find(u NI) NI {
	return a.loadParent(u)
}

// Len returns the number of elements in the set.
func (a *Afforest[NI]) Len() int {
	return len(a.parent)
}

// Compress corresponds to the compress operation of the paper: each element
// chases its parent chain until parent and grandparent agree.
func (a *Afforest[NI]) Compress() {
	parallel.ForEachChunk(a.Len(), DefaultChunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			n := NI(i)
			for a.loadParent(n) != a.loadParent(a.loadParent(n)) {
				graph.StoreID(&a.parent[i], a.loadParent(a.loadParent(n)))
			}
		}
	})
}

// Components consumes the set and returns the dense node→root mapping.
func (a *Afforest[NI]) Components() []NI {
	a.Compress()
	components := a.parent
	a.parent = nil

	return components
}
