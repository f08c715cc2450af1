// This file implements the Compressed-Sparse-Row topology and its parallel
// construction pipeline: degree histogram, exclusive prefix sum, atomic
// scatter, offset repair, and the per-layout finalize step.
package graph

import (
	"slices"
	"time"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// nodeChunk is the number of nodes a worker claims per steal during the
// per-node finalize phases.
const nodeChunk = 64

// Csr is a Compressed-Sparse-Row topology.
//
// offsets has node_count+1 entries and is monotonically non-decreasing with
// offsets[0] == 0 and offsets[node_count] == len(targets). The neighbor list
// of node u is targets[offsets[u]:offsets[u+1]].
type Csr[NI ID, EV any] struct {
	offsets []NI
	targets []Target[NI, EV]
}

// NewCsr wraps pre-built offset and target arrays. The caller is
// responsible for the length invariant.
func NewCsr[NI ID, EV any](offsets []NI, targets []Target[NI, EV]) *Csr[NI, EV] {
	return &Csr[NI, EV]{offsets: offsets, targets: targets}
}

// NodeCount returns the number of nodes addressed by the topology.
func (c *Csr[NI, EV]) NodeCount() NI {
	return NI(len(c.offsets) - 1)
}

// EdgeCount returns the number of stored targets.
func (c *Csr[NI, EV]) EdgeCount() NI {
	return NI(len(c.targets))
}

// Degree returns the neighbor list length of node u.
func (c *Csr[NI, EV]) Degree(u NI) NI {
	return c.offsets[int(u)+1] - c.offsets[int(u)]
}

// TargetsWithValues returns the value-carrying neighbor list of node u.
// The slice borrows from the topology.
func (c *Csr[NI, EV]) TargetsWithValues(u NI) []Target[NI, EV] {
	return c.targets[int(c.offsets[int(u)]):int(c.offsets[int(u)+1])]
}

// Targets returns the plain neighbor list of node u without copying.
// It requires a unit edge value; the size assertion guards the cast.
func (c *Csr[NI, EV]) Targets(u NI) []NI {
	assertPlainTarget[NI, EV]()

	return plainTargets(c.TargetsWithValues(u))
}

// BuildCsr constructs a topology for one direction from an edge source
// under the chosen layout.
//
// The build is a data-dependency chain of parallel phases, each separated by
// a full join: degrees → prefix sum → scatter → finalize. During the scatter
// the offset cells double as atomic cursors; the prefix sum guarantees that
// each claimed slot is a distinct target cell, so no two goroutines ever
// write the same cell.
func BuildCsr[NI ID, EV any](edges Edges[NI, EV], nodeCount NI, direction Direction, layout Layout) *Csr[NI, EV] {
	start := time.Now()
	degrees := edges.Degrees(nodeCount, direction)
	logger.Debug().Dur("took", time.Since(start)).Msg("computed degrees")

	start = time.Now()
	offsets := prefixSum(degrees)
	logger.Debug().Dur("took", time.Since(start)).Msg("computed prefix sum")

	start = time.Now()
	total := int(offsets[int(nodeCount)])
	targets := make([]Target[NI, EV], total)

	if direction == Outgoing || direction == Undirected {
		edges.ForEachEdgePar(func(s, t NI, v EV) {
			slot := GetAndIncrementID(&offsets[int(s)])
			targets[int(slot)] = Target[NI, EV]{Target: t, Value: v}
		})
	}
	if direction == Incoming || direction == Undirected {
		edges.ForEachEdgePar(func(s, t NI, v EV) {
			slot := GetAndIncrementID(&offsets[int(t)])
			targets[int(slot)] = Target[NI, EV]{Target: s, Value: v}
		})
	}
	logger.Debug().Dur("took", time.Since(start)).Msg("computed target array")

	// Every scatter write advanced the offset of its node by one, leaving
	// each cell at the end of its slice instead of the start. Rotating right
	// by one and re-anchoring the first cell restores the final offsets.
	start = time.Now()
	for i := len(offsets) - 1; i >= 1; i-- {
		offsets[i] = offsets[i-1]
	}
	offsets[0] = 0
	logger.Debug().Dur("took", time.Since(start)).Msg("finalized offset array")

	switch layout {
	case Unsorted:
	case Sorted:
		start = time.Now()
		sortTargets(offsets, targets)
		logger.Debug().Dur("took", time.Since(start)).Msg("sorted targets")
	case Deduplicated:
		start = time.Now()
		offsets, targets = sortAndDeduplicateTargets(offsets, targets)
		logger.Debug().Dur("took", time.Since(start)).Msg("sorted and deduplicated targets")
	}

	return &Csr[NI, EV]{offsets: offsets, targets: targets}
}

// prefixSum converts a degree histogram of length n into exclusive offsets
// of length n+1. The input slice is consumed.
func prefixSum[NI ID](degrees []NI) []NI {
	offsets := make([]NI, len(degrees)+1)
	var total NI
	for i, d := range degrees {
		offsets[i] = total
		total += d
	}
	offsets[len(degrees)] = total

	return offsets
}

// toMutSlices partitions targets into one mutable sub-slice per node
// according to offsets.
func toMutSlices[NI ID, T any](offsets []NI, targets []T) [][]T {
	nodeCount := len(offsets) - 1
	lists := make([][]T, nodeCount)

	tail := targets
	prev := offsets[0]
	for i, offset := range offsets[1:] {
		n := int(offset - prev)
		lists[i] = tail[:n:n]
		tail = tail[n:]
		prev = offset
	}

	return lists
}

// sortTargets sorts each neighbor list by target id. The sort is unstable;
// duplicates survive.
func sortTargets[NI ID, EV any](offsets []NI, targets []Target[NI, EV]) {
	lists := toMutSlices(offsets, targets)
	parallel.ForEachChunk(len(lists), nodeChunk, func(lo, hi int) {
		for _, list := range lists[lo:hi] {
			sortTargetList(list)
		}
	})
}

func sortTargetList[NI ID, EV any](list []Target[NI, EV]) {
	slices.SortFunc(list, func(a, b Target[NI, EV]) int {
		switch {
		case a.Target < b.Target:
			return -1
		case a.Target > b.Target:
			return 1
		default:
			return 0
		}
	})
}

// sortAndDeduplicateTargets sorts each neighbor list, compacts duplicate
// targets, drops self-loops, and repacks the surviving prefixes into a fresh
// offset/target pair. The input target array stays allocated while the
// repacked one is filled, so peak memory is the input length plus the final
// length: at most twice the input target length, and more than twice the
// final length whenever more than half of the targets are dropped.
func sortAndDeduplicateTargets[NI ID, EV any](offsets []NI, targets []Target[NI, EV]) ([]NI, []Target[NI, EV]) {
	nodeCount := len(offsets) - 1
	lists := toMutSlices(offsets, targets)
	newDegrees := make([]NI, nodeCount)

	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for node := lo; node < hi; node++ {
			list := lists[node]
			sortTargetList(list)

			// Compact consecutive duplicates in place.
			dedup := 0
			for i := range list {
				if i == 0 || list[i].Target != list[i-1].Target {
					list[dedup] = list[i]
					dedup++
				}
			}

			// A self-loop occurs at most once in the compacted prefix.
			// Squeeze it out and shorten the logical length.
			self := NI(node)
			if idx, found := slices.BinarySearchFunc(list[:dedup], self, func(t Target[NI, EV], id NI) int {
				switch {
				case t.Target < id:
					return -1
				case t.Target > id:
					return 1
				default:
					return 0
				}
			}); found {
				copy(list[idx:dedup-1], list[idx+1:dedup])
				dedup--
			}

			newDegrees[node] = NI(dedup)
		}
	})

	newOffsets := prefixSum(newDegrees)
	newTargets := make([]Target[NI, EV], int(newOffsets[nodeCount]))
	newLists := toMutSlices(newOffsets, newTargets)

	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for node := lo; node < hi; node++ {
			copy(newLists[node], lists[node][:len(newLists[node])])
		}
	})

	return newOffsets, newTargets
}
