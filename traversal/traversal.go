package traversal

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/neo4j-labs/graph-sub000/graph"
)

// BfsDirected iterates the nodes reachable from start in breadth-first
// order, following edges according to direction.
func BfsDirected[NI graph.ID](g graph.Directed[NI], start NI, direction graph.Direction) iter.Seq[NI] {
	return func(yield func(NI) bool) {
		visited := bitset.New(uint(g.NodeCount()))
		queue := []NI{start}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			if visited.Test(uint(node)) {
				continue
			}
			visited.Set(uint(node))

			if !yield(node) {
				return
			}

			queue = appendDirected(queue, g, node, direction, visited)
		}
	}
}

// BfsUndirected iterates the nodes reachable from start in breadth-first
// order.
func BfsUndirected[NI graph.ID](g graph.UndirectedView[NI], start NI) iter.Seq[NI] {
	return func(yield func(NI) bool) {
		visited := bitset.New(uint(g.NodeCount()))
		queue := []NI{start}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			if visited.Test(uint(node)) {
				continue
			}
			visited.Set(uint(node))

			if !yield(node) {
				return
			}

			for _, n := range g.Neighbors(node) {
				if !visited.Test(uint(n)) {
					queue = append(queue, n)
				}
			}
		}
	}
}

// DfsDirected iterates the nodes reachable from start in depth-first
// order, following edges according to direction.
func DfsDirected[NI graph.ID](g graph.Directed[NI], start NI, direction graph.Direction) iter.Seq[NI] {
	return func(yield func(NI) bool) {
		visited := bitset.New(uint(g.NodeCount()))
		stack := []NI{start}

		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited.Test(uint(node)) {
				continue
			}
			visited.Set(uint(node))

			if !yield(node) {
				return
			}

			stack = appendDirected(stack, g, node, direction, visited)
		}
	}
}

// DfsUndirected iterates the nodes reachable from start in depth-first
// order.
func DfsUndirected[NI graph.ID](g graph.UndirectedView[NI], start NI) iter.Seq[NI] {
	return func(yield func(NI) bool) {
		visited := bitset.New(uint(g.NodeCount()))
		stack := []NI{start}

		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited.Test(uint(node)) {
				continue
			}
			visited.Set(uint(node))

			if !yield(node) {
				return
			}

			for _, n := range g.Neighbors(node) {
				if !visited.Test(uint(n)) {
					stack = append(stack, n)
				}
			}
		}
	}
}

// appendDirected pushes the unvisited neighbors of node selected by
// direction.
func appendDirected[NI graph.ID](buf []NI, g graph.Directed[NI], node NI, direction graph.Direction, visited *bitset.BitSet) []NI {
	if direction == graph.Outgoing || direction == graph.Undirected {
		for _, n := range g.OutNeighbors(node) {
			if !visited.Test(uint(n)) {
				buf = append(buf, n)
			}
		}
	}
	if direction == graph.Incoming || direction == graph.Undirected {
		for _, n := range g.InNeighbors(node) {
			if !visited.Test(uint(n)) {
				buf = append(buf, n)
			}
		}
	}

	return buf
}
