package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/graph"
)

func TestDegreePartition(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {0, 3}, {0, 3}})
	g := graph.BuildUndirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)

	partition := graph.DegreePartition[uint32](g, 2)

	require.Len(t, partition, 2)
	assert.Equal(t, graph.Range[uint32]{Start: 0, End: 1}, partition[0])
	assert.Equal(t, graph.Range[uint32]{Start: 1, End: 4}, partition[1])
}

func TestOutDegreePartition(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {2, 1}, {2, 3}})
	g := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)

	partition := graph.OutDegreePartition[uint32](g, 2)

	require.Len(t, partition, 2)
	assert.Equal(t, graph.Range[uint32]{Start: 0, End: 1}, partition[0])
	assert.Equal(t, graph.Range[uint32]{Start: 1, End: 4}, partition[1])
}

func TestInDegreePartition(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{1, 0}, {1, 2}, {2, 0}, {3, 2}})
	g := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)

	partition := graph.InDegreePartition[uint32](g, 2)

	require.Len(t, partition, 2)
	assert.Equal(t, graph.Range[uint32]{Start: 0, End: 1}, partition[0])
	assert.Equal(t, graph.Range[uint32]{Start: 1, End: 4}, partition[1])
}

func TestForEachNodePar(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}})
	g := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)

	values := make([]uint32, 3)
	err := graph.ForEachNodePar[uint32](g, values, func(node uint32, state *uint32) {
		*state = g.OutDegree(node)
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 1, 0}, values)

	err = graph.ForEachNodePar[uint32](g, make([]uint32, 2), func(uint32, *uint32) {})
	assert.ErrorIs(t, err, graph.ErrInvalidNodeValues)
}

func TestForEachNodeParByPartition(t *testing.T) {
	edges := graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}})
	g := graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(edges), graph.Unsorted)
	partition := graph.OutDegreePartition[uint32](g, 2)

	values := make([]uint32, 3)
	err := graph.ForEachNodeParByPartition[uint32](g, partition, values, func(node uint32, state *uint32) {
		*state = g.OutDegree(node)
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 1, 0}, values)

	short := []graph.Range[uint32]{{Start: 0, End: 2}}
	err = graph.ForEachNodeParByPartition[uint32](g, short, values, func(uint32, *uint32) {})
	assert.ErrorIs(t, err, graph.ErrInvalidPartitioning)
}
