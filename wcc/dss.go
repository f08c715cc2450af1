package wcc

import (
	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// UnionFind is the contract shared by the two disjoint-set flavors.
type UnionFind[NI graph.ID] interface {
	// Union joins the sets of a and b.
	Union(a, b NI)
	// Find returns the current set representative of id. For Afforest the
	// result is exact only after Compress.
	Find(id NI) NI
	// Len returns the number of elements.
	Len() int
	// Compress rewires every element to point directly at its root.
	Compress()
	// Components consumes the set and returns the dense node→root mapping.
	// The set must not be used afterwards.
	Components() []NI
}

// DisjointSet is a thread-safe disjoint-set structure over a dense id
// domain. Union uses union-by-min (the smaller root id wins) and Find
// applies path halving; every parent update goes through a compare-and-swap
// so the structure can be driven from many goroutines without locks.
type DisjointSet[NI graph.ID] struct {
	parent []NI
}

// NewDisjointSet creates a disjoint set of size singleton elements.
func NewDisjointSet[NI graph.ID](size int) *DisjointSet[NI] {
	parent := make([]NI, size)
	parallel.ForEachChunk(size, DefaultChunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			parent[i] = NI(i)
		}
	})

	return &DisjointSet[NI]{parent: parent}
}

func (s *DisjointSet[NI]) loadParent(i NI) NI {
	return graph.LoadID(&s.parent[int(i)])
}

func (s *DisjointSet[NI]) updateParent(id, current, next NI) bool {
	return graph.CompareAndSwapID(&s.parent[int(id)], current, next)
}

// Union joins the set of a with the set of b.
func (s *DisjointSet[NI]) Union(a, b NI) {
	for {
		a = s.Find(a)
		b = s.Find(b)

		if a == b {
			return
		}

		// Union-by-min: the smaller set id wins. Only the entry of the
		// larger root is rewired, so swap until a holds the larger root and
		// point a's slot at b.
		if a < b {
			a, b = b, a
		}

		if s.updateParent(a, a, b) {
			return
		}
	}
}

// Find returns the set representative of id, halving the path on the way:
// each visited element is redirected to its grandparent. The redirect CAS
// is not retried; if another goroutine raced us, it made equivalent
// progress.
func (s *DisjointSet[NI]) Find(id NI) NI {
	parent := s.loadParent(id)

	for id != parent {
		grandParent := s.loadParent(parent)
		s.updateParent(id, parent, grandParent)
		id = parent
		parent = grandParent
	}

	return id
}

// Len returns the number of elements in the set.
func (s *DisjointSet[NI]) Len() int {
	return len(s.parent)
}

// Compress rewires every element to point directly at its root.
func (s *DisjointSet[NI]) Compress() {
	parallel.ForEachChunk(s.Len(), DefaultChunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			s.Find(NI(i))
		}
	})
}

// Components consumes the set and returns the dense node→root mapping.
// After Compress every parent cell already holds its root id and the parent
// array doubles as the result without a copy.
func (s *DisjointSet[NI]) Components() []NI {
	s.Compress()
	components := s.parent
	s.parent = nil

	return components
}
