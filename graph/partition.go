// Degree-based node partitioning and the parallel per-node visitors built
// on top of it.
package graph

import (
	"math"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// DegreePartition divides the nodes of an undirected graph into at most
// concurrency contiguous ranges of roughly equal total degree. It is greedy:
// it walks the node set once and closes a range whenever the accumulated
// degree reaches the average share.
func DegreePartition[NI ID](g interface {
	Graph[NI]
	UndirectedDegrees[NI]
}, concurrency int) []Range[NI] {
	batch := int(math.Ceil(float64(int(g.EdgeCount())*2) / float64(concurrency)))

	return greedyNodeMapPartition(func(node NI) int {
		return int(g.Degree(node))
	}, g.NodeCount(), batch, concurrency)
}

// OutDegreePartition divides the nodes of a directed graph into at most
// concurrency contiguous ranges of roughly equal total out degree.
func OutDegreePartition[NI ID](g interface {
	Graph[NI]
	DirectedDegrees[NI]
}, concurrency int) []Range[NI] {
	batch := int(math.Ceil(float64(int(g.EdgeCount())) / float64(concurrency)))

	return greedyNodeMapPartition(func(node NI) int {
		return int(g.OutDegree(node))
	}, g.NodeCount(), batch, concurrency)
}

// InDegreePartition divides the nodes of a directed graph into at most
// concurrency contiguous ranges of roughly equal total in degree.
func InDegreePartition[NI ID](g interface {
	Graph[NI]
	DirectedDegrees[NI]
}, concurrency int) []Range[NI] {
	batch := int(math.Ceil(float64(int(g.EdgeCount())) / float64(concurrency)))

	return greedyNodeMapPartition(func(node NI) int {
		return int(g.InDegree(node))
	}, g.NodeCount(), batch, concurrency)
}

// greedyNodeMapPartition partitions [0, nodeCount) into at most maxBatches
// contiguous ranges whose nodeMap sums are roughly batchSize each. Greedy,
// single pass, not optimally balanced.
func greedyNodeMapPartition[NI ID](nodeMap func(NI) int, nodeCount NI, batchSize, maxBatches int) []Range[NI] {
	partitions := make([]Range[NI], 0, maxBatches)

	partitionSize := 0
	var partitionStart NI
	upperBound := nodeCount - 1

	for node := NI(0); node < nodeCount; node++ {
		partitionSize += nodeMap(node)

		if (len(partitions) < maxBatches-1 && partitionSize >= batchSize) || node == upperBound {
			end := node + 1
			partitions = append(partitions, Range[NI]{Start: partitionStart, End: end})
			partitionSize = 0
			partitionStart = end
		}
	}

	return partitions
}

// ForEachNodePar calls nodeFn for every node with its corresponding mutable
// state in parallel. nodeValues must have exactly node_count entries.
func ForEachNodePar[NI ID, T any](g Graph[NI], nodeValues []T, nodeFn func(node NI, state *T)) error {
	if len(nodeValues) != int(g.NodeCount()) {
		return ErrInvalidNodeValues
	}

	parallel.ForEachChunk(len(nodeValues), nodeChunk, func(lo, hi int) {
		for node := lo; node < hi; node++ {
			nodeFn(NI(node), &nodeValues[node])
		}
	})

	return nil
}

// ForEachNodeParByPartition calls nodeFn for every node with its
// corresponding mutable state in parallel, one worker task per partition
// range.
func ForEachNodeParByPartition[NI ID, T any](g Graph[NI], partition []Range[NI], nodeValues []T, nodeFn func(node NI, state *T)) error {
	if len(nodeValues) != int(g.NodeCount()) {
		return ErrInvalidNodeValues
	}

	var covered NI
	for _, r := range partition {
		covered += r.End - r.Start
	}
	if covered != g.NodeCount() {
		return ErrInvalidPartitioning
	}

	var cursor parallel.Cursor
	_ = parallel.Run(parallel.Workers(), func(int) error {
		for {
			lo, hi, ok := cursor.Next(1, len(partition))
			if !ok {
				return nil
			}
			for p := lo; p < hi; p++ {
				r := partition[p]
				for node := r.Start; node < r.End; node++ {
					nodeFn(node, &nodeValues[int(node)])
				}
			}
		}
	})

	return nil
}
