// Package traversal provides single-source breadth-first and depth-first
// node iterators over directed and undirected graphs.
//
// Traversals are lazy: each function returns an iter.Seq that walks the
// graph as it is consumed and stops when the caller breaks out of the
// range loop. Visited tracking uses one bit per node.
//
// The directed forms take a graph.Direction: Outgoing follows out-edges,
// Incoming follows in-edges, Undirected follows both.
package traversal
