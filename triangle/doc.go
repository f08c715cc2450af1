// Package triangle counts triangles in undirected graphs.
//
// GlobalCount expects a deduplicated, degree-ordered graph (see
// UndirectedGraph.MakeDegreeOrdered): with higher-degree nodes mapped to
// smaller ids and neighbor lists sorted ascending, restricting both sides
// of the merge intersection to ids below the shared neighbor orients every
// triangle low-to-high and counts it exactly once.
package triangle
