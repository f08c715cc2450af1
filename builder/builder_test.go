package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/builder"
	"github.com/neo4j-labs/graph-sub000/graph"
)

func TestBuildDirected(t *testing.T) {
	g, err := builder.New[uint32]().
		Edges(graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 4}, {3, 4}})).
		Layout(graph.Sorted).
		BuildDirected()
	require.NoError(t, err)

	assert.Equal(t, uint32(5), g.NodeCount())
	assert.Equal(t, uint32(6), g.EdgeCount())
	assert.Equal(t, []uint32{2, 3}, g.OutNeighbors(1))
}

func TestBuildUndirected(t *testing.T) {
	g, err := builder.New[uint32]().
		Edges(graph.PlainEdges([][2]uint32{{0, 7}, {0, 3}, {0, 3}, {0, 1}})).
		Layout(graph.Deduplicated).
		BuildUndirected()
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 3, 7}, g.Neighbors(0))
	assert.Equal(t, uint32(3), g.Degree(0))
}

func TestBuildWeighted(t *testing.T) {
	g, err := builder.NewWeighted[uint32, float32]().
		Edges([]graph.Edge[uint32, float32]{
			{Source: 0, Target: 1, Value: 4},
			{Source: 0, Target: 2, Value: 2},
		}).
		Layout(graph.Sorted).
		BuildDirected()
	require.NoError(t, err)

	want := []graph.Target[uint32, float32]{
		graph.NewTarget[uint32, float32](1, 4),
		graph.NewTarget[uint32, float32](2, 2),
	}
	assert.Equal(t, want, g.OutNeighborsWithValues(0))
}

func TestBuildWithNodeValuesValidatesLength(t *testing.T) {
	_, err := builder.NewValued[uint32, string, graph.Unit]().
		Edges(graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})).
		NodeValues([]string{"a", "b"}).
		BuildDirected()
	assert.ErrorIs(t, err, graph.ErrInvalidNodeValues)

	g, err := builder.NewValued[uint32, string, graph.Unit]().
		Edges(graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})).
		NodeValues([]string{"a", "b", "c"}).
		BuildDirected()
	require.NoError(t, err)
	assert.Equal(t, "c", g.NodeValue(2))
}

func TestBuildWithCachedMaxNodeID(t *testing.T) {
	g, err := builder.New[uint32]().
		Edges(graph.PlainEdges([][2]uint32{{0, 1}})).
		MaxNodeID(5).
		BuildDirected()
	require.NoError(t, err)

	assert.Equal(t, uint32(6), g.NodeCount())
}

func TestBuildAdjList(t *testing.T) {
	g, err := builder.New[uint32]().
		Edges(graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})).
		Layout(graph.Sorted).
		BuildUndirectedAdjList()
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 2}, g.Neighbors(1))
}
