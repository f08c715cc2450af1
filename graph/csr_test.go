package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/graph"
)

// directedFixture builds the directed graph of the shared six-edge example.
func directedFixture(t *testing.T, layout graph.Layout) *graph.DirectedGraph[uint32, graph.Unit, graph.Unit] {
	t.Helper()
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 4}, {3, 4}})

	return graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), layout)
}

func TestBuildDirectedSorted(t *testing.T) {
	g := directedFixture(t, graph.Sorted)

	assert.Equal(t, uint32(5), g.NodeCount())
	assert.Equal(t, uint32(6), g.EdgeCount())

	assert.Equal(t, []uint32{2, 3}, g.OutNeighbors(1))
	assert.Equal(t, []uint32{0, 1}, g.InNeighbors(2))
	assert.Equal(t, []uint32{2, 3}, g.InNeighbors(4))

	assert.Equal(t, uint32(2), g.OutDegree(0))
	assert.Equal(t, uint32(0), g.OutDegree(4))
	assert.Equal(t, uint32(0), g.InDegree(0))
	assert.Equal(t, uint32(2), g.InDegree(4))
}

func TestBuildUndirectedDeduplicated(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 7}, {0, 3}, {0, 3}, {0, 1}})
	g := graph.BuildUndirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Deduplicated)

	assert.Equal(t, uint32(8), g.NodeCount())
	assert.Equal(t, []uint32{1, 3, 7}, g.Neighbors(0))
	assert.Equal(t, uint32(3), g.Degree(0))
}

func TestBuildUndirectedDoublesEdges(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})
	g := graph.BuildUndirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Sorted)

	assert.Equal(t, uint32(2), g.EdgeCount())
	assert.Equal(t, []uint32{0, 2}, g.Neighbors(1))

	// Sum of degrees equals twice the edge count.
	total := uint32(0)
	for u := uint32(0); u < g.NodeCount(); u++ {
		total += g.Degree(u)
	}
	assert.Equal(t, 2*g.EdgeCount(), total)
}

func TestBuildEmptyEdgeListAddressesAllNodes(t *testing.T) {
	el := graph.NewEdgeListWithMaxNodeID[uint32, graph.Unit](nil, 3)
	g := graph.BuildDirected[uint32, graph.Unit](el, graph.Unsorted)

	assert.Equal(t, uint32(4), g.NodeCount())
	assert.Equal(t, uint32(0), g.EdgeCount())
	for u := uint32(0); u < 4; u++ {
		assert.Empty(t, g.OutNeighbors(u))
		assert.Empty(t, g.InNeighbors(u))
	}
}

// Offsets must stay monotone regardless of layout; verified indirectly via
// degrees and totals.
func TestDegreeIdentity(t *testing.T) {
	for _, layout := range []graph.Layout{graph.Unsorted, graph.Sorted, graph.Deduplicated} {
		g := directedFixture(t, layout)

		var outTotal, inTotal uint32
		for u := uint32(0); u < g.NodeCount(); u++ {
			require.Equal(t, int(g.OutDegree(u)), len(g.OutNeighborsWithValues(u)))
			require.Equal(t, int(g.InDegree(u)), len(g.InNeighborsWithValues(u)))
			outTotal += g.OutDegree(u)
			inTotal += g.InDegree(u)
		}

		assert.Equal(t, g.EdgeCount(), outTotal)
		assert.Equal(t, outTotal, inTotal)
	}
}

func TestWeightedNeighbors(t *testing.T) {
	edges := []graph.Edge[uint32, float32]{
		{Source: 0, Target: 1, Value: 0.1},
		{Source: 0, Target: 2, Value: 0.2},
		{Source: 1, Target: 2, Value: 0.3},
	}
	g := graph.BuildDirected[uint32, float32](graph.NewEdgeList(edges), graph.Sorted)

	want := []graph.Target[uint32, float32]{
		graph.NewTarget[uint32, float32](1, 0.1),
		graph.NewTarget[uint32, float32](2, 0.2),
	}
	assert.Equal(t, want, g.OutNeighborsWithValues(0))
}

func TestPlainNeighborsPanicOnWeightedGraph(t *testing.T) {
	edges := []graph.Edge[uint32, float32]{{Source: 0, Target: 1, Value: 1}}
	g := graph.BuildDirected[uint32, float32](graph.NewEdgeList(edges), graph.Unsorted)

	assert.Panics(t, func() { g.OutNeighbors(0) })
}

func TestToUndirected(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {3, 0}, {0, 3}, {7, 0}, {0, 42}, {21, 0}})
	g := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)

	ug := g.ToUndirected(graph.Sorted)
	assert.Equal(t, uint32(6), ug.Degree(0))
	assert.Equal(t, []uint32{1, 3, 3, 7, 21, 42}, ug.Neighbors(0))

	ug = g.ToUndirected(graph.Deduplicated)
	assert.Equal(t, uint32(5), ug.Degree(0))
	assert.Equal(t, []uint32{1, 3, 7, 21, 42}, ug.Neighbors(0))
}

func TestBuildWithNodeValues(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})

	g, err := graph.BuildDirectedWithValues([]string{"a", "b", "c"}, graph.NewEdgeList(edges), graph.Unsorted)
	require.NoError(t, err)
	assert.Equal(t, "b", g.NodeValue(1))

	_, err = graph.BuildDirectedWithValues([]string{"a"}, graph.NewEdgeList(edges), graph.Unsorted)
	assert.ErrorIs(t, err, graph.ErrInvalidNodeValues)
}

func TestInt64IDs(t *testing.T) {
	edges := graph.PlainEdges([][2]int64{{0, 1}, {0, 2}, {1, 2}})
	g := graph.BuildDirected[int64, graph.Unit](graph.NewEdgeList(edges), graph.Sorted)

	assert.Equal(t, int64(3), g.NodeCount())
	assert.Equal(t, []int64{1, 2}, g.OutNeighbors(0))
}
