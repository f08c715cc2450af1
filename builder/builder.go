package builder

import (
	"github.com/neo4j-labs/graph-sub000/graph"
)

// Builder accumulates the inputs of a graph construction.
// The zero value is not usable; create one with New, NewWeighted or
// NewValued.
type Builder[NI graph.ID, NV, EV any] struct {
	edges      []graph.Edge[NI, EV]
	nodeValues []NV
	hasValues  bool
	maxNodeID  NI
	hasMax     bool
	layout     graph.Layout
}

// New creates a builder for unweighted graphs without node values.
func New[NI graph.ID]() *Builder[NI, graph.Unit, graph.Unit] {
	return &Builder[NI, graph.Unit, graph.Unit]{}
}

// NewWeighted creates a builder for graphs with edge values.
func NewWeighted[NI graph.ID, EV any]() *Builder[NI, graph.Unit, EV] {
	return &Builder[NI, graph.Unit, EV]{}
}

// NewValued creates a builder for graphs with node and edge values.
func NewValued[NI graph.ID, NV, EV any]() *Builder[NI, NV, EV] {
	return &Builder[NI, NV, EV]{}
}

// Edges sets the edge list. The slice is not copied; the builder borrows it
// until Build is called.
func (b *Builder[NI, NV, EV]) Edges(edges []graph.Edge[NI, EV]) *Builder[NI, NV, EV] {
	b.edges = edges

	return b
}

// NodeValues attaches one value per node. Length must equal
// max_node_id + 1 at build time.
func (b *Builder[NI, NV, EV]) NodeValues(values []NV) *Builder[NI, NV, EV] {
	b.nodeValues = values
	b.hasValues = true

	return b
}

// MaxNodeID caches the maximum node id, making the pre-build scan
// unnecessary.
func (b *Builder[NI, NV, EV]) MaxNodeID(id NI) *Builder[NI, NV, EV] {
	b.maxNodeID = id
	b.hasMax = true

	return b
}

// Layout selects the neighbor-list layout. Defaults to graph.Unsorted.
func (b *Builder[NI, NV, EV]) Layout(layout graph.Layout) *Builder[NI, NV, EV] {
	b.layout = layout

	return b
}

func (b *Builder[NI, NV, EV]) edgeList() *graph.EdgeList[NI, EV] {
	if b.hasMax {
		return graph.NewEdgeListWithMaxNodeID(b.edges, b.maxNodeID)
	}

	return graph.NewEdgeList(b.edges)
}

// BuildDirected produces a directed CSR container.
func (b *Builder[NI, NV, EV]) BuildDirected() (*graph.DirectedGraph[NI, NV, EV], error) {
	el := b.edgeList()
	if b.hasValues {
		return graph.BuildDirectedWithValues(b.nodeValues, el, b.layout)
	}

	nodeCount := el.MaxNodeID() + 1
	out := graph.BuildCsr(el, nodeCount, graph.Outgoing, b.layout)
	in := graph.BuildCsr(el, nodeCount, graph.Incoming, b.layout)

	return graph.NewDirectedGraph[NI, NV, EV](nil, out, in), nil
}

// BuildUndirected produces an undirected CSR container.
func (b *Builder[NI, NV, EV]) BuildUndirected() (*graph.UndirectedGraph[NI, NV, EV], error) {
	el := b.edgeList()
	if b.hasValues {
		return graph.BuildUndirectedWithValues(b.nodeValues, el, b.layout)
	}

	nodeCount := el.MaxNodeID() + 1
	csr := graph.BuildCsr(el, nodeCount, graph.Undirected, b.layout)

	return graph.NewUndirectedGraph[NI, NV, EV](nil, csr), nil
}

// BuildDirectedAdjList produces a directed adjacency-list container.
func (b *Builder[NI, NV, EV]) BuildDirectedAdjList() (*graph.DirectedAdjList[NI, graph.Unit, EV], error) {
	return graph.BuildDirectedAdjList(b.edgeList(), b.layout), nil
}

// BuildUndirectedAdjList produces an undirected adjacency-list container.
func (b *Builder[NI, NV, EV]) BuildUndirectedAdjList() (*graph.UndirectedAdjList[NI, graph.Unit, EV], error) {
	return graph.BuildUndirectedAdjList(b.edgeList(), b.layout), nil
}
