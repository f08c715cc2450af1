// Package builder provides a fluent front-end for assembling graph
// containers from in-memory edges.
//
// A Builder collects edges, optional node values, an optional cached
// maximum node id, and the desired neighbor-list layout, then produces a
// directed or undirected container in one call:
//
//	g, err := builder.New[uint32]().
//	    Edges(graph.PlainEdges([][2]uint32{{0, 1}, {0, 2}, {1, 2}})).
//	    Layout(graph.Sorted).
//	    BuildDirected()
//
// Building fails with graph.ErrInvalidNodeValues only when node values were
// supplied and their count does not equal max_node_id + 1.
package builder
