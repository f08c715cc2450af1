package wcc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graph-sub000/graph"
	"github.com/neo4j-labs/graph-sub000/wcc"
)

func buildDirected(pairs [][2]uint32) *graph.DirectedGraph[uint32, graph.Unit, graph.Unit] {
	return graph.BuildDirected[uint32, graph.Unit](graph.NewEdgeList(graph.PlainEdges(pairs)), graph.Unsorted)
}

func TestWccTwoComponents(t *testing.T) {
	g := buildDirected([][2]uint32{{0, 1}, {2, 3}})

	components, err := wcc.Wcc[uint32](g)
	require.NoError(t, err)

	assert.Equal(t, components[0], components[1])
	assert.Equal(t, components[2], components[3])
	assert.NotEqual(t, components[1], components[2])
}

func TestWccOptionViolation(t *testing.T) {
	g := buildDirected([][2]uint32{{0, 1}})

	_, err := wcc.Wcc[uint32](g, wcc.WithChunkSize(0))
	assert.ErrorIs(t, err, wcc.ErrOptionViolation)

	_, err = wcc.Wcc[uint32](g, wcc.WithNeighborRounds(-1))
	assert.ErrorIs(t, err, wcc.ErrOptionViolation)

	_, err = wcc.Wcc[uint32](g, wcc.WithSamplingSize(0))
	assert.ErrorIs(t, err, wcc.ErrOptionViolation)
}

// Components must agree with a sequential flood fill: two nodes share a
// component id iff an undirected path connects them.
func TestWccMatchesFloodFill(t *testing.T) {
	pairs := [][2]uint32{
		// component A
		{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4},
		// component B, linked against edge direction
		{6, 5}, {7, 6}, {8, 7}, {5, 8},
		// component C is the isolated node 9
		{9, 9},
	}
	g := buildDirected(pairs)

	components, err := wcc.Wcc[uint32](g, wcc.WithSamplingSize(16))
	require.NoError(t, err)

	expected := floodFill(int(g.NodeCount()), pairs)
	for a := 0; a < len(expected); a++ {
		for b := 0; b < len(expected); b++ {
			assert.Equal(t,
				expected[a] == expected[b],
				components[a] == components[b],
				"nodes %d and %d disagree", a, b)
		}
	}
}

// floodFill labels undirected components with a sequential BFS.
func floodFill(nodeCount int, pairs [][2]uint32) []int {
	adjacency := make([][]int, nodeCount)
	for _, p := range pairs {
		s, t := int(p[0]), int(p[1])
		adjacency[s] = append(adjacency[s], t)
		adjacency[t] = append(adjacency[t], s)
	}

	labels := make([]int, nodeCount)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	for start := range labels {
		if labels[start] != -1 {
			continue
		}
		queue := []int{start}
		labels[start] = next
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adjacency[u] {
				if labels[v] == -1 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return labels
}

func TestWccSingleLargeComponent(t *testing.T) {
	// A chain through all nodes collapses into a single component.
	var pairs [][2]uint32
	for i := uint32(0); i < 999; i++ {
		pairs = append(pairs, [2]uint32{i, i + 1})
	}
	g := buildDirected(pairs)

	components, err := wcc.Wcc[uint32](g)
	require.NoError(t, err)

	for i := 1; i < len(components); i++ {
		assert.Equal(t, components[0], components[i])
	}
}
