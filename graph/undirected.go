// This file implements the undirected container: one CSR topology in which
// every input edge contributed both directions.
package graph

// UndirectedGraph owns a single topology where each input edge (s, t)
// appears as s→t and t→s. The edge count is half the stored target count.
type UndirectedGraph[NI ID, NV, EV any] struct {
	nodeValues []NV
	csr        *Csr[NI, EV]
}

// NewUndirectedGraph assembles an undirected container from pre-built parts.
func NewUndirectedGraph[NI ID, NV, EV any](nodeValues []NV, csr *Csr[NI, EV]) *UndirectedGraph[NI, NV, EV] {
	g := &UndirectedGraph[NI, NV, EV]{nodeValues: nodeValues, csr: csr}
	logger.Debug().
		Int("node_count", int(g.NodeCount())).
		Int("edge_count", int(g.EdgeCount())).
		Msg("created undirected graph")

	return g
}

// BuildUndirected builds an undirected container from an edge source under
// the chosen layout.
func BuildUndirected[NI ID, EV any](edges Edges[NI, EV], layout Layout) *UndirectedGraph[NI, Unit, EV] {
	nodeCount := edges.MaxNodeID() + 1
	csr := BuildCsr(edges, nodeCount, Undirected, layout)

	return NewUndirectedGraph[NI, Unit, EV](nil, csr)
}

// BuildUndirectedWithValues builds an undirected container carrying one
// node value per node. It fails with ErrInvalidNodeValues if the value
// slice does not cover exactly max_node_id+1 nodes.
func BuildUndirectedWithValues[NI ID, NV, EV any](nodeValues []NV, edges Edges[NI, EV], layout Layout) (*UndirectedGraph[NI, NV, EV], error) {
	nodeCount := edges.MaxNodeID() + 1
	if len(nodeValues) != int(nodeCount) {
		return nil, ErrInvalidNodeValues
	}
	csr := BuildCsr(edges, nodeCount, Undirected, layout)

	return NewUndirectedGraph(nodeValues, csr), nil
}

// NodeCount returns the number of nodes.
func (g *UndirectedGraph[NI, NV, EV]) NodeCount() NI {
	return g.csr.NodeCount()
}

// EdgeCount returns the number of undirected edges.
func (g *UndirectedGraph[NI, NV, EV]) EdgeCount() NI {
	return g.csr.EdgeCount() / 2
}

// NodeValue returns the value attached to node u.
func (g *UndirectedGraph[NI, NV, EV]) NodeValue(u NI) NV {
	return g.nodeValues[int(u)]
}

// Degree returns the number of incident edge endpoints of node u.
func (g *UndirectedGraph[NI, NV, EV]) Degree(u NI) NI {
	return g.csr.Degree(u)
}

// Neighbors returns the neighbor ids of node u. Requires a unit edge value.
func (g *UndirectedGraph[NI, NV, EV]) Neighbors(u NI) []NI {
	return g.csr.Targets(u)
}

// NeighborsWithValues returns the neighbor records of node u.
func (g *UndirectedGraph[NI, NV, EV]) NeighborsWithValues(u NI) []Target[NI, EV] {
	return g.csr.TargetsWithValues(u)
}

// SwapCsr replaces the owned topology with a supplied one of the same node
// count. Degree relabeling uses this to install its rebuilt topology.
func (g *UndirectedGraph[NI, NV, EV]) SwapCsr(csr *Csr[NI, EV]) *UndirectedGraph[NI, NV, EV] {
	g.csr = csr

	return g
}
