package msbfs

import (
	"errors"
	"math/bits"

	"github.com/neo4j-labs/graph-sub000/graph"
)

// ErrTooManySources is returned when the number of source nodes reaches the
// machine word width.
var ErrTooManySources = errors.New("msbfs: number of source nodes exceeds bit field width")

// Visitor observes one BFS discovering its target at the given depth.
type Visitor[NI graph.ID] func(source, target NI, depth int)

// MsBfs runs one BFS per source simultaneously, invoking visit for every
// first discovery. len(sources) must be smaller than the machine word
// width.
func MsBfs[NI graph.ID](g graph.UndirectedView[NI], sources []NI, visit Visitor[NI]) error {
	if len(sources) >= bits.UintSize {
		return ErrTooManySources
	}

	nodeCount := int(g.NodeCount())

	// seen[v] bit i: BFS i has discovered v.
	// visit[v] bit i: BFS i must expand v on this level.
	seen := make([]uint, nodeCount)
	visitNow := make([]uint, nodeCount)
	visitNext := make([]uint, nodeCount)

	for i, source := range sources {
		seen[int(source)] |= 1 << i
		visitNow[int(source)] |= 1 << i
	}

	depth := 1

	for {
		for v := 0; v < nodeCount; v++ {
			if visitNow[v] == 0 {
				continue
			}

			for _, n := range g.Neighbors(NI(v)) {
				ni := int(n)
				// d: all BFSs that reach n for the first time via v.
				d := visitNow[v] &^ seen[ni]
				if d == 0 {
					continue
				}

				visitNext[ni] |= d
				seen[ni] |= d

				for d != 0 {
					bfs := bits.TrailingZeros(d)
					visit(sources[bfs], n, depth)
					d &^= 1 << bfs
				}
			}
		}

		visitNow, visitNext = visitNext, visitNow
		if !anyNonZero(visitNow) {
			return nil
		}
		clear(visitNext)
		depth++
	}
}

// MsBfsAnp is the aggregated-neighbor-processing variant: a first stage ORs
// the visit words of all neighbors without consulting seen, a second stage
// strips already-seen bits and fires the visitor for the survivors.
func MsBfsAnp[NI graph.ID](g graph.UndirectedView[NI], sources []NI, visit Visitor[NI]) error {
	if len(sources) >= bits.UintSize {
		return ErrTooManySources
	}

	nodeCount := int(g.NodeCount())

	seen := make([]uint, nodeCount)
	visitNow := make([]uint, nodeCount)
	visitNext := make([]uint, nodeCount)

	for i, source := range sources {
		seen[int(source)] |= 1 << i
		visitNow[int(source)] |= 1 << i
	}

	depth := 1

	for {
		for v := 0; v < nodeCount; v++ {
			if visitNow[v] == 0 {
				continue
			}
			for _, n := range g.Neighbors(NI(v)) {
				visitNext[int(n)] |= visitNow[v]
			}
		}

		for v := 0; v < nodeCount; v++ {
			if visitNext[v] == 0 {
				continue
			}

			visitNext[v] &^= seen[v]
			seen[v] |= visitNext[v]

			d := visitNext[v]
			for d != 0 {
				bfs := bits.TrailingZeros(d)
				visit(sources[bfs], NI(v), depth)
				d &^= 1 << bfs
			}
		}

		visitNow, visitNext = visitNext, visitNow
		if !anyNonZero(visitNow) {
			return nil
		}
		clear(visitNext)
		depth++
	}
}

func anyNonZero(words []uint) bool {
	for _, w := range words {
		if w != 0 {
			return true
		}
	}

	return false
}
