// Package sssp computes single-source shortest paths on directed graphs
// with float32 edge weights.
//
// DeltaStepping is the parallel workhorse: the frontier is partitioned into
// buckets of width Δ by tentative distance, workers drain a shared bucket in
// batches and spill relaxations into thread-local bins, and the smallest
// non-empty bin across workers becomes the next shared bucket. Distances
// only ever decrease, so the result is deterministic even though the
// schedule is not.
//
// Dijkstra is the sequential reference implementation; it processes nodes
// in increasing distance order from a binary heap with lazy decrease-key.
package sssp
