// This file declares the shared value types of the package: edge direction,
// neighbor-list layout, the target record, the read-only graph interfaces
// consumed by the algorithm packages, and the sentinel errors.
package graph

import (
	"errors"
	"fmt"
	"unsafe"
)

// Sentinel errors for graph construction and parallel node visitors.
var (
	// ErrInvalidNodeValues indicates that the supplied node-value slice does
	// not cover exactly max_node_id + 1 nodes.
	ErrInvalidNodeValues = errors.New("graph: node value count does not match node count")

	// ErrInvalidPartitioning indicates that a node partition does not cover
	// the node set of the graph it is applied to.
	ErrInvalidPartitioning = errors.New("graph: partition does not cover the node set")
)

// InvalidIDTypeError is returned when a serialized graph was written with a
// node identifier type different from the one it is being read into.
type InvalidIDTypeError struct {
	// Expected is the tag of the node identifier type of the reader.
	Expected string
	// Actual is the tag found in the serialized data.
	Actual string
}

func (e *InvalidIDTypeError) Error() string {
	return fmt.Sprintf("graph: invalid id type: expected %q, actual %q", e.Expected, e.Actual)
}

// Direction selects which endpoint of an edge contributes to a topology.
type Direction int

const (
	// Outgoing stores each edge (s, t) in the neighbor list of s.
	Outgoing Direction = iota
	// Incoming stores each edge (s, t) in the neighbor list of t.
	Incoming
	// Undirected stores each edge (s, t) in both neighbor lists.
	Undirected
)

// Layout is the postcondition on the neighbor lists of a topology.
type Layout int

const (
	// Unsorted leaves neighbor lists in scatter order.
	// This is the default layout.
	Unsorted Layout = iota
	// Sorted orders each neighbor list by target id; duplicates survive.
	Sorted
	// Deduplicated orders each neighbor list by target id, removes duplicate
	// targets, and removes self-loops.
	Deduplicated
)

// Unit is the edge value of unweighted graphs. A Target with a Unit value
// occupies exactly the size and alignment of its node identifier.
type Unit = struct{}

// Target is the target of an edge together with its associated value.
//
// Value is declared before Target on purpose: a zero-size trailing field
// would force the compiler to pad the struct, and the plain-neighbor
// accessors rely on Target[NI, Unit] being byte-compatible with NI.
// Ordering among targets considers the Target field only.
type Target[NI ID, EV any] struct {
	Value  EV
	Target NI
}

// NewTarget pairs a target id with its edge value.
func NewTarget[NI ID, EV any](target NI, value EV) Target[NI, EV] {
	return Target[NI, EV]{Target: target, Value: value}
}

// targetIsPlain reports whether Target[NI, EV] has the exact size and
// alignment of NI, i.e. whether a record slice may be reinterpreted as a
// plain id slice.
func targetIsPlain[NI ID, EV any]() bool {
	var t Target[NI, EV]
	var id NI

	return unsafe.Sizeof(t) == unsafe.Sizeof(id) && unsafe.Alignof(t) == unsafe.Alignof(id)
}

// assertPlainTarget guards every plain-neighbor accessor.
func assertPlainTarget[NI ID, EV any]() {
	if !targetIsPlain[NI, EV]() {
		panic("graph: plain neighbor access requires a unit edge value")
	}
}

// plainTargets reinterprets a record slice as a plain id slice without
// copying. Callers must have passed assertPlainTarget.
func plainTargets[NI ID, EV any](ts []Target[NI, EV]) []NI {
	if len(ts) == 0 {
		return nil
	}

	return unsafe.Slice((*NI)(unsafe.Pointer(&ts[0])), len(ts))
}

// Graph is the minimal read surface shared by all containers.
type Graph[NI ID] interface {
	// NodeCount returns the number of nodes.
	NodeCount() NI
	// EdgeCount returns the number of edges.
	EdgeCount() NI
}

// DirectedDegrees exposes per-direction degrees of a directed container.
type DirectedDegrees[NI ID] interface {
	OutDegree(node NI) NI
	InDegree(node NI) NI
}

// DirectedNeighbors exposes the plain neighbor slices of a directed
// container. Slices borrow from the container and must not be mutated.
type DirectedNeighbors[NI ID] interface {
	OutNeighbors(node NI) []NI
	InNeighbors(node NI) []NI
}

// DirectedNeighborsWithValues exposes the value-carrying neighbor slices of
// a directed container.
type DirectedNeighborsWithValues[NI ID, EV any] interface {
	OutNeighborsWithValues(node NI) []Target[NI, EV]
	InNeighborsWithValues(node NI) []Target[NI, EV]
}

// UndirectedDegrees exposes degrees of an undirected container.
type UndirectedDegrees[NI ID] interface {
	Degree(node NI) NI
}

// UndirectedNeighbors exposes the plain neighbor slice of an undirected
// container.
type UndirectedNeighbors[NI ID] interface {
	Neighbors(node NI) []NI
}

// UndirectedNeighborsWithValues exposes the value-carrying neighbor slice of
// an undirected container.
type UndirectedNeighborsWithValues[NI ID, EV any] interface {
	NeighborsWithValues(node NI) []Target[NI, EV]
}

// Directed is the composed read surface consumed by algorithms over
// unweighted directed graphs.
type Directed[NI ID] interface {
	Graph[NI]
	DirectedDegrees[NI]
	DirectedNeighbors[NI]
}

// WeightedDirected is the composed read surface consumed by algorithms over
// directed graphs with edge values.
type WeightedDirected[NI ID, EV any] interface {
	Graph[NI]
	DirectedDegrees[NI]
	DirectedNeighborsWithValues[NI, EV]
}

// UndirectedView is the composed read surface consumed by algorithms over
// unweighted undirected graphs.
type UndirectedView[NI ID] interface {
	Graph[NI]
	UndirectedDegrees[NI]
	UndirectedNeighbors[NI]
}

// Range is a half-open node id interval [Start, End).
type Range[NI ID] struct {
	Start NI
	End   NI
}
