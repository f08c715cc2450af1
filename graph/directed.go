// This file implements the directed container: two CSR topologies built
// from the same edge list, one per direction, plus optional node values.
package graph

import (
	"time"

	"github.com/neo4j-labs/graph-sub000/internal/parallel"
)

// DirectedGraph pairs an outgoing and an incoming topology over the same
// node set. Both topologies are built from the same edge list; sharing the
// node count is an invariant.
type DirectedGraph[NI ID, NV, EV any] struct {
	nodeValues []NV
	out        *Csr[NI, EV]
	in         *Csr[NI, EV]
}

// NewDirectedGraph assembles a directed container from pre-built parts.
func NewDirectedGraph[NI ID, NV, EV any](nodeValues []NV, out, in *Csr[NI, EV]) *DirectedGraph[NI, NV, EV] {
	g := &DirectedGraph[NI, NV, EV]{nodeValues: nodeValues, out: out, in: in}
	logger.Debug().
		Int("node_count", int(g.NodeCount())).
		Int("edge_count", int(g.EdgeCount())).
		Msg("created directed graph")

	return g
}

// BuildDirected builds a directed container from an edge source under the
// chosen layout. Node values default to none; see BuildDirectedWithValues.
func BuildDirected[NI ID, EV any](edges Edges[NI, EV], layout Layout) *DirectedGraph[NI, Unit, EV] {
	nodeCount := edges.MaxNodeID() + 1

	start := time.Now()
	out := BuildCsr(edges, nodeCount, Outgoing, layout)
	logger.Debug().Dur("took", time.Since(start)).Msg("created outgoing csr")

	start = time.Now()
	in := BuildCsr(edges, nodeCount, Incoming, layout)
	logger.Debug().Dur("took", time.Since(start)).Msg("created incoming csr")

	return NewDirectedGraph[NI, Unit, EV](nil, out, in)
}

// BuildDirectedWithValues builds a directed container carrying one node
// value per node. It fails with ErrInvalidNodeValues if the value slice
// does not cover exactly max_node_id+1 nodes.
func BuildDirectedWithValues[NI ID, NV, EV any](nodeValues []NV, edges Edges[NI, EV], layout Layout) (*DirectedGraph[NI, NV, EV], error) {
	nodeCount := edges.MaxNodeID() + 1
	if len(nodeValues) != int(nodeCount) {
		return nil, ErrInvalidNodeValues
	}

	out := BuildCsr(edges, nodeCount, Outgoing, layout)
	in := BuildCsr(edges, nodeCount, Incoming, layout)

	return NewDirectedGraph(nodeValues, out, in), nil
}

// NodeCount returns the number of nodes.
func (g *DirectedGraph[NI, NV, EV]) NodeCount() NI {
	return g.out.NodeCount()
}

// EdgeCount returns the number of directed edges.
func (g *DirectedGraph[NI, NV, EV]) EdgeCount() NI {
	return g.out.EdgeCount()
}

// NodeValue returns the value attached to node u.
func (g *DirectedGraph[NI, NV, EV]) NodeValue(u NI) NV {
	return g.nodeValues[int(u)]
}

// OutDegree returns the number of outgoing edges of node u.
func (g *DirectedGraph[NI, NV, EV]) OutDegree(u NI) NI {
	return g.out.Degree(u)
}

// InDegree returns the number of incoming edges of node u.
func (g *DirectedGraph[NI, NV, EV]) InDegree(u NI) NI {
	return g.in.Degree(u)
}

// OutNeighbors returns the outgoing neighbor ids of node u.
// Requires a unit edge value.
func (g *DirectedGraph[NI, NV, EV]) OutNeighbors(u NI) []NI {
	return g.out.Targets(u)
}

// InNeighbors returns the incoming neighbor ids of node u.
// Requires a unit edge value.
func (g *DirectedGraph[NI, NV, EV]) InNeighbors(u NI) []NI {
	return g.in.Targets(u)
}

// OutNeighborsWithValues returns the outgoing neighbor records of node u.
func (g *DirectedGraph[NI, NV, EV]) OutNeighborsWithValues(u NI) []Target[NI, EV] {
	return g.out.TargetsWithValues(u)
}

// InNeighborsWithValues returns the incoming neighbor records of node u.
func (g *DirectedGraph[NI, NV, EV]) InNeighborsWithValues(u NI) []Target[NI, EV] {
	return g.in.TargetsWithValues(u)
}

// ToUndirected builds a fresh undirected container by treating the outgoing
// view of the directed graph as an undirected edge source.
func (g *DirectedGraph[NI, NV, EV]) ToUndirected(layout Layout) *UndirectedGraph[NI, NV, EV] {
	edges := &csrEdges[NI, NV, EV]{g: g}
	csr := BuildCsr[NI, EV](edges, g.NodeCount(), Undirected, layout)

	values := g.nodeValues
	if values != nil {
		values = append([]NV(nil), values...)
	}

	return NewUndirectedGraph(values, csr)
}

// csrEdges adapts the outgoing topology of a directed graph to the edge
// source contract.
type csrEdges[NI ID, NV, EV any] struct {
	g *DirectedGraph[NI, NV, EV]
}

func (e *csrEdges[NI, NV, EV]) ForEachEdgePar(fn func(source, target NI, value EV)) {
	nodeCount := int(e.g.NodeCount())
	parallel.ForEachChunk(nodeCount, nodeChunk, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			for _, t := range e.g.OutNeighborsWithValues(NI(u)) {
				fn(NI(u), t.Target, t.Value)
			}
		}
	})
}

func (e *csrEdges[NI, NV, EV]) MaxNodeID() NI {
	return e.g.NodeCount() - 1
}

func (e *csrEdges[NI, NV, EV]) Degrees(nodeCount NI, direction Direction) []NI {
	return ComputeDegrees[NI, EV](e, nodeCount, direction)
}
