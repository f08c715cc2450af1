// Degree relabeling: reassigns node ids so that higher-degree nodes receive
// smaller ids, then rebuilds the topology under the new id space. Triangle
// counting relies on this ordering to count each triangle exactly once.
package graph

import (
	"slices"
	"time"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// MakeDegreeOrdered relabels the graph in place using descending
// degree-order: the node with the largest degree becomes id 0, the node
// with the smallest becomes id node_count-1. Ties are broken by original id
// so the result is reproducible for a given input. The rebuilt topology has
// sorted neighbor lists and the same space requirements as the input.
func (g *UndirectedGraph[NI, NV, EV]) MakeDegreeOrdered() {
	start := time.Now()
	pairs := sortByDegreeDesc[NI, NV, EV](g)
	logger.Debug().Dur("took", time.Since(start)).Msg("relabel: sorted degree-node pairs")

	start = time.Now()
	degrees, nodes := unzipDegreesAndNodes(pairs)
	logger.Debug().Dur("took", time.Since(start)).Msg("relabel: built degrees and id map")

	start = time.Now()
	offsets := prefixSum(degrees)
	targets := relabelTargets(g, nodes, offsets)
	logger.Debug().Dur("took", time.Since(start)).Msg("relabel: built and sorted targets")

	g.SwapCsr(NewCsr(offsets, targets))
}

// degreeNodePair carries a node id together with its degree for the
// relabel sort.
type degreeNodePair[NI ID] struct {
	degree NI
	node   NI
}

// sortByDegreeDesc extracts (degree, node) pairs and sorts them by degree
// descending, larger original id first on equal degree.
func sortByDegreeDesc[NI ID, NV, EV any](g *UndirectedGraph[NI, NV, EV]) []degreeNodePair[NI] {
	nodeCount := int(g.NodeCount())
	pairs := make([]degreeNodePair[NI], nodeCount)

	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for node := lo; node < hi; node++ {
			pairs[node] = degreeNodePair[NI]{degree: g.Degree(NI(node)), node: NI(node)}
		}
	})

	slices.SortFunc(pairs, func(a, b degreeNodePair[NI]) int {
		switch {
		case a.degree != b.degree:
			if a.degree > b.degree {
				return -1
			}
			return 1
		case a.node != b.node:
			if a.node > b.node {
				return -1
			}
			return 1
		default:
			return 0
		}
	})

	return pairs
}

// unzipDegreesAndNodes splits the sorted pairs into the new degree array
// (indexed by new id) and the id map (old id → new id).
func unzipDegreesAndNodes[NI ID](pairs []degreeNodePair[NI]) (degrees, nodes []NI) {
	nodeCount := len(pairs)
	degrees = make([]NI, nodeCount)
	nodes = make([]NI, nodeCount)

	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for n := lo; n < hi; n++ {
			p := pairs[n]
			degrees[n] = p.degree
			// Every original id occurs exactly once in pairs, so no two
			// workers write the same cell.
			nodes[int(p.node)] = NI(n)
		}
	})

	return degrees, nodes
}

// relabelTargets maps every neighbor id through the id map into a fresh
// target array laid out by the new offsets, sorting each rebuilt list.
func relabelTargets[NI ID, NV, EV any](g *UndirectedGraph[NI, NV, EV], nodes, offsets []NI) []Target[NI, EV] {
	nodeCount := int(g.NodeCount())
	targets := make([]Target[NI, EV], int(offsets[nodeCount]))
	lists := toMutSlices(offsets, targets)

	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			newU := nodes[u]
			list := lists[int(newU)]
			for i, t := range g.NeighborsWithValues(NI(u)) {
				list[i] = Target[NI, EV]{Target: nodes[int(t.Target)], Value: t.Value}
			}
			sortTargetList(list)
		}
	})

	return targets
}
