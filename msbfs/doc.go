// Package msbfs runs up to word-width-minus-one breadth-first searches
// simultaneously over an undirected graph.
//
// Every node carries one machine word per state array (seen, visit,
// visit-next); bit i of a word belongs to BFS i. A level expands all
// traversals at once with a handful of bitwise operations per
// node-neighbor pair, and a visitor callback observes every first
// discovery as (source, target, depth).
//
// Two variants are provided: MsBfs filters against seen while expanding,
// MsBfsAnp (aggregated neighbor processing) first ORs all neighbor words
// and filters in a second stage.
package msbfs
