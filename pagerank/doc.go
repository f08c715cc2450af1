// Package pagerank implements the Page Rank iteration over directed graphs.
//
// Each iteration is executed by a pool of workers stealing contiguous node
// chunks from a shared atomic cursor. A worker recomputes the score of every
// node in its chunk from the pre-divided scores of the node's in-neighbors,
// accumulates the absolute score change locally, and folds it into a shared
// error accumulator when the cursor is exhausted. Iteration stops when the
// accumulated error drops below the tolerance or the iteration cap is
// reached.
//
// Every node is assumed to have at least one outgoing edge; inputs with
// dangling nodes are the caller's responsibility.
package pagerank
