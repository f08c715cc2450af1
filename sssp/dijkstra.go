package sssp

import (
	"container/heap"

	"github.com/neo4j-labs/graph-sub000/graph"
)

// Dijkstra computes tentative distances from cfg.StartNode sequentially,
// processing nodes in increasing distance order. It uses a binary heap with
// a lazy decrease-key strategy: improved distances push duplicate entries
// and stale entries are skipped on pop. Unreachable nodes report Infinity.
//
// Δ-stepping produces bit-identical distances, which makes Dijkstra the
// equality oracle in the tests.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[NI graph.ID](g graph.WeightedDirected[NI, float32], cfg Config[NI]) ([]float32, error) {
	nodeCount := int(g.NodeCount())
	if int(cfg.StartNode) < 0 || int(cfg.StartNode) >= nodeCount {
		return nil, ErrStartNodeNotFound
	}

	distance := make([]float32, nodeCount)
	for i := range distance {
		distance[i] = Infinity
	}
	distance[int(cfg.StartNode)] = 0

	pq := &distanceHeap[NI]{{node: cfg.StartNode, distance: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(heapItem[NI])
		if item.distance > distance[int(item.node)] {
			// Stale entry left behind by lazy decrease-key.
			continue
		}

		for _, t := range g.OutNeighborsWithValues(item.node) {
			next := item.distance + t.Value
			if next < distance[int(t.Target)] {
				distance[int(t.Target)] = next
				heap.Push(pq, heapItem[NI]{node: t.Target, distance: next})
			}
		}
	}

	return distance, nil
}

type heapItem[NI graph.ID] struct {
	node     NI
	distance float32
}

type distanceHeap[NI graph.ID] []heapItem[NI]

func (h distanceHeap[NI]) Len() int           { return len(h) }
func (h distanceHeap[NI]) Less(i, j int) bool { return h[i].distance < h[j].distance }
func (h distanceHeap[NI]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *distanceHeap[NI]) Push(x any) {
	*h = append(*h, x.(heapItem[NI]))
}

func (h *distanceHeap[NI]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
