package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neo4j-labs/graph-sub000/graph"
)

func relabelFixture() *graph.UndirectedGraph[uint32, graph.Unit, graph.Unit] {
	edges := graph.PlainEdges([][2]uint32{
		{0, 1}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {2, 3}, {3, 0}, {3, 2},
	})

	return graph.BuildUndirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)
}

func TestMakeDegreeOrdered(t *testing.T) {
	g := relabelFixture()

	assert.Equal(t, uint32(3), g.Degree(0))
	assert.Equal(t, uint32(4), g.Degree(1))
	assert.Equal(t, uint32(5), g.Degree(2))
	assert.Equal(t, uint32(4), g.Degree(3))

	g.MakeDegreeOrdered()

	// old -> new: 0 -> 3, 1 -> 2, 2 -> 0, 3 -> 1
	assert.Equal(t, uint32(5), g.Degree(0))
	assert.Equal(t, uint32(4), g.Degree(1))
	assert.Equal(t, uint32(4), g.Degree(2))
	assert.Equal(t, uint32(3), g.Degree(3))

	assert.Equal(t, []uint32{1, 1, 2, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []uint32{0, 0, 2, 3}, g.Neighbors(1))
	assert.Equal(t, []uint32{0, 0, 1, 3}, g.Neighbors(2))
	assert.Equal(t, []uint32{0, 1, 2}, g.Neighbors(3))
}

func TestMakeDegreeOrderedPreservesCounts(t *testing.T) {
	g := relabelFixture()
	nodes, edges := g.NodeCount(), g.EdgeCount()

	g.MakeDegreeOrdered()

	assert.Equal(t, nodes, g.NodeCount())
	assert.Equal(t, edges, g.EdgeCount())
}

func TestSwapCsr(t *testing.T) {
	g := graph.BuildUndirected[uint32, graph.Unit](
		graph.NewEdgeList(graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})), graph.Sorted)
	assert.Equal(t, []uint32{1}, g.Neighbors(0))

	replacement := graph.BuildCsr[uint32, graph.Unit](
		graph.NewEdgeList(graph.PlainEdges([][2]uint32{{0, 2}, {1, 2}})), 3, graph.Undirected, graph.Sorted)

	g.SwapCsr(replacement)

	assert.Equal(t, []uint32{2}, g.Neighbors(0))
	assert.Equal(t, []uint32{0, 1}, g.Neighbors(2))
}
