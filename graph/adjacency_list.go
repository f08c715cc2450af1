// This file implements the adjacency-list container variant: a vector of
// per-node target vectors guarded by per-node mutexes during construction.
// It trades slice-level locality for append throughput while building and
// exposes the same read surface as the CSR containers.
package graph

import (
	"sync"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// adjacencyList is a per-node vector topology. The mutexes exist only
// during construction; reads never lock.
type adjacencyList[NI ID, EV any] struct {
	lists [][]Target[NI, EV]
	edges int
}

// buildAdjacencyList constructs the per-node vectors for one direction from
// an edge source and applies the layout postcondition to each vector.
func buildAdjacencyList[NI ID, EV any](edges Edges[NI, EV], nodeCount NI, direction Direction, layout Layout) *adjacencyList[NI, EV] {
	lists := make([][]Target[NI, EV], int(nodeCount))
	locks := make([]sync.Mutex, int(nodeCount))

	push := func(u, t NI, v EV) {
		i := int(u)
		locks[i].Lock()
		lists[i] = append(lists[i], Target[NI, EV]{Target: t, Value: v})
		locks[i].Unlock()
	}

	if direction == Outgoing || direction == Undirected {
		edges.ForEachEdgePar(func(s, t NI, v EV) { push(s, t, v) })
	}
	if direction == Incoming || direction == Undirected {
		edges.ForEachEdgePar(func(s, t NI, v EV) { push(t, s, v) })
	}

	total := 0
	parallel.ForEachChunk(len(lists), nodeChunk, func(lo, hi int) {
		for node := lo; node < hi; node++ {
			switch layout {
			case Sorted:
				sortTargetList(lists[node])
			case Deduplicated:
				lists[node] = dedupTargetList(NI(node), lists[node])
			}
		}
	})
	for _, list := range lists {
		total += len(list)
	}

	return &adjacencyList[NI, EV]{lists: lists, edges: total}
}

// dedupTargetList sorts a single list, drops duplicate targets and the
// self-loop, and returns the shortened list.
func dedupTargetList[NI ID, EV any](node NI, list []Target[NI, EV]) []Target[NI, EV] {
	sortTargetList(list)

	dedup := 0
	for i := range list {
		if list[i].Target == node {
			continue
		}
		if dedup > 0 && list[i].Target == list[dedup-1].Target {
			continue
		}
		list[dedup] = list[i]
		dedup++
	}

	return list[:dedup:dedup]
}

func (a *adjacencyList[NI, EV]) nodeCount() NI {
	return NI(len(a.lists))
}

func (a *adjacencyList[NI, EV]) edgeCount() NI {
	return NI(a.edges)
}

func (a *adjacencyList[NI, EV]) degree(u NI) NI {
	return NI(len(a.lists[int(u)]))
}

func (a *adjacencyList[NI, EV]) targetsWithValues(u NI) []Target[NI, EV] {
	return a.lists[int(u)]
}

func (a *adjacencyList[NI, EV]) targets(u NI) []NI {
	assertPlainTarget[NI, EV]()

	return plainTargets(a.lists[int(u)])
}

// DirectedAdjList is the adjacency-list counterpart of DirectedGraph.
type DirectedAdjList[NI ID, NV, EV any] struct {
	nodeValues []NV
	out        *adjacencyList[NI, EV]
	in         *adjacencyList[NI, EV]
}

// BuildDirectedAdjList builds a directed adjacency-list container from an
// edge source under the chosen layout.
func BuildDirectedAdjList[NI ID, EV any](edges Edges[NI, EV], layout Layout) *DirectedAdjList[NI, Unit, EV] {
	nodeCount := edges.MaxNodeID() + 1
	out := buildAdjacencyList(edges, nodeCount, Outgoing, layout)
	in := buildAdjacencyList(edges, nodeCount, Incoming, layout)

	return &DirectedAdjList[NI, Unit, EV]{out: out, in: in}
}

// NodeCount returns the number of nodes.
func (g *DirectedAdjList[NI, NV, EV]) NodeCount() NI { return g.out.nodeCount() }

// EdgeCount returns the number of directed edges.
func (g *DirectedAdjList[NI, NV, EV]) EdgeCount() NI { return g.out.edgeCount() }

// OutDegree returns the number of outgoing edges of node u.
func (g *DirectedAdjList[NI, NV, EV]) OutDegree(u NI) NI { return g.out.degree(u) }

// InDegree returns the number of incoming edges of node u.
func (g *DirectedAdjList[NI, NV, EV]) InDegree(u NI) NI { return g.in.degree(u) }

// OutNeighbors returns the outgoing neighbor ids of node u.
func (g *DirectedAdjList[NI, NV, EV]) OutNeighbors(u NI) []NI { return g.out.targets(u) }

// InNeighbors returns the incoming neighbor ids of node u.
func (g *DirectedAdjList[NI, NV, EV]) InNeighbors(u NI) []NI { return g.in.targets(u) }

// OutNeighborsWithValues returns the outgoing neighbor records of node u.
func (g *DirectedAdjList[NI, NV, EV]) OutNeighborsWithValues(u NI) []Target[NI, EV] {
	return g.out.targetsWithValues(u)
}

// InNeighborsWithValues returns the incoming neighbor records of node u.
func (g *DirectedAdjList[NI, NV, EV]) InNeighborsWithValues(u NI) []Target[NI, EV] {
	return g.in.targetsWithValues(u)
}

// UndirectedAdjList is the adjacency-list counterpart of UndirectedGraph.
type UndirectedAdjList[NI ID, NV, EV any] struct {
	nodeValues []NV
	adj        *adjacencyList[NI, EV]
}

// BuildUndirectedAdjList builds an undirected adjacency-list container from
// an edge source under the chosen layout.
func BuildUndirectedAdjList[NI ID, EV any](edges Edges[NI, EV], layout Layout) *UndirectedAdjList[NI, Unit, EV] {
	nodeCount := edges.MaxNodeID() + 1
	adj := buildAdjacencyList(edges, nodeCount, Undirected, layout)

	return &UndirectedAdjList[NI, Unit, EV]{adj: adj}
}

// NodeCount returns the number of nodes.
func (g *UndirectedAdjList[NI, NV, EV]) NodeCount() NI { return g.adj.nodeCount() }

// EdgeCount returns the number of undirected edges.
func (g *UndirectedAdjList[NI, NV, EV]) EdgeCount() NI { return g.adj.edgeCount() / 2 }

// Degree returns the number of incident edge endpoints of node u.
func (g *UndirectedAdjList[NI, NV, EV]) Degree(u NI) NI { return g.adj.degree(u) }

// Neighbors returns the neighbor ids of node u.
func (g *UndirectedAdjList[NI, NV, EV]) Neighbors(u NI) []NI { return g.adj.targets(u) }

// NeighborsWithValues returns the neighbor records of node u.
func (g *UndirectedAdjList[NI, NV, EV]) NeighborsWithValues(u NI) []Target[NI, EV] {
	return g.adj.targetsWithValues(u)
}
