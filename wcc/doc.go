// Package wcc computes weakly connected components of a directed graph.
//
// The heart of the package is a lock-free concurrent disjoint set (union by
// min with path halving, all updates via compare-and-swap) plus an
// Afforest-style pipeline on top of it: sample a small number of outgoing
// neighbors per node, locate the dominant component by random probing, and
// link only the remaining nodes while skipping edges inside the dominant
// component. On scale-free inputs this avoids revisiting most edges.
//
// Reference: Michael Sutton, Tal Ben-Nun, Amnon Barak: "Optimizing Parallel
// Graph Connectivity Computation via Subgraph Sampling", IPDPS 2018.
package wcc
