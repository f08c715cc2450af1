// Package graph provides the in-memory building blocks of the library:
// the node identifier abstraction with its atomic counterpart, edge lists,
// the parallel Compressed-Sparse-Row (CSR) construction pipeline, directed
// and undirected graph containers, an adjacency-list container variant,
// degree relabeling, degree-based node partitioning, and binary
// (de)serialization.
//
// A graph is built once from an edge source and is read-only afterwards.
// The only sanctioned mutations are swapping a complete topology into a
// container (SwapCsr) and the in-place degree relabeling built on top of it
// (MakeDegreeOrdered). Neighbor accessors return slices that borrow from the
// container and must not outlive it.
//
// Construction is parallel and data-race-free: a degree histogram is turned
// into a prefix sum whose cells double as atomic write cursors, so that every
// target cell is written exactly once by exactly one goroutine.
package graph
