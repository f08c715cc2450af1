package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/graph"
)

func TestSerializeDirectedRoundTrip(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {3, 1}})
	g0 := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Sorted)

	var buf bytes.Buffer
	require.NoError(t, g0.Serialize(&buf))

	g1, err := graph.DeserializeDirected[uint32, graph.Unit, graph.Unit](&buf)
	require.NoError(t, err)

	assert.Equal(t, g0.NodeCount(), g1.NodeCount())
	assert.Equal(t, g0.EdgeCount(), g1.EdgeCount())
	for u := uint32(0); u < g0.NodeCount(); u++ {
		assert.Equal(t, g0.OutNeighbors(u), g1.OutNeighbors(u))
		assert.Equal(t, g0.InNeighbors(u), g1.InNeighbors(u))
	}
}

func TestSerializeUndirectedRoundTrip(t *testing.T) {
	edges := graph.PlainEdges([][2]uint64{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {3, 1}})
	g0 := graph.BuildUndirected[uint64, graph.Unit](graph.NewEdgeList(edges), graph.Deduplicated)

	var buf bytes.Buffer
	require.NoError(t, g0.Serialize(&buf))

	g1, err := graph.DeserializeUndirected[uint64, graph.Unit, graph.Unit](&buf)
	require.NoError(t, err)

	assert.Equal(t, g0.NodeCount(), g1.NodeCount())
	assert.Equal(t, g0.EdgeCount(), g1.EdgeCount())
	for u := uint64(0); u < g0.NodeCount(); u++ {
		assert.Equal(t, g0.Neighbors(u), g1.Neighbors(u))
	}
}

func TestSerializeWeightedRoundTrip(t *testing.T) {
	edges := []graph.Edge[uint32, float32]{
		{Source: 0, Target: 1, Value: 0.25},
		{Source: 1, Target: 2, Value: 0.5},
		{Source: 2, Target: 0, Value: 0.75},
	}
	g0 := graph.BuildDirected[uint32, float32](graph.NewEdgeList(edges), graph.Sorted)

	var buf bytes.Buffer
	require.NoError(t, g0.Serialize(&buf))

	g1, err := graph.DeserializeDirected[uint32, graph.Unit, float32](&buf)
	require.NoError(t, err)

	for u := uint32(0); u < g0.NodeCount(); u++ {
		assert.Equal(t, g0.OutNeighborsWithValues(u), g1.OutNeighborsWithValues(u))
		assert.Equal(t, g0.InNeighborsWithValues(u), g1.InNeighborsWithValues(u))
	}
}

func TestSerializeNodeValuesRoundTrip(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})
	g0, err := graph.BuildUndirectedWithValues([]int64{10, 20, 30}, graph.NewEdgeList(edges), graph.Sorted)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g0.Serialize(&buf))

	g1, err := graph.DeserializeUndirected[uint32, int64, graph.Unit](&buf)
	require.NoError(t, err)

	for u := uint32(0); u < 3; u++ {
		assert.Equal(t, g0.NodeValue(u), g1.NodeValue(u))
	}
}

func TestDeserializeRejectsMismatchedIDType(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {1, 2}})
	g0 := graph.BuildUndirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Sorted)

	var buf bytes.Buffer
	require.NoError(t, g0.Serialize(&buf))

	_, err := graph.DeserializeUndirected[uint64, graph.Unit, graph.Unit](&buf)
	require.Error(t, err)

	var idErr *graph.InvalidIDTypeError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "uint64", idErr.Expected)
	assert.Equal(t, "uint32", idErr.Actual)
}
