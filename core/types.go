// Package core defines the neighbor-source contract, the Path entity, and
// the shared vertex-set primitives that all search packages build on.
//
// The vertex type V is opaque: core never constructs or mutates vertices,
// it only compares them and uses them as map keys. Any comparable type
// qualifies.
//
// This file declares NeighborSource, NeighborSourceFunc, WeightFunc,
// VertexSet, and the sentinel errors shared by the search packages.
//
// Errors:
//
//	ErrNilSource    - nil neighbor source passed to a traversal.
//	ErrPathNotFound - no directed path connects start to target.
package core

import "errors"

// Sentinel errors shared by the search packages.
var (
	// ErrNilSource indicates a nil NeighborSource was passed to a traversal.
	ErrNilSource = errors.New("core: neighbor source is nil")

	// ErrPathNotFound indicates that no directed path connects the start
	// vertex to the target vertex. Absent inputs that the searches cannot
	// use (such as a nil weight function) collapse to this error as well.
	ErrPathNotFound = errors.New("core: path not found")
)

// NeighborSource is the single capability a concrete graph must provide.
//
// Neighbors reports every vertex directly reachable from `from` via one
// outgoing edge. For undirected graphs the implementation must report both
// directions symmetrically. The result must be deterministic per call and
// must not include `from` itself unless a true self-loop exists; search
// correctness depends on the adjacency not changing mid-traversal.
//
// No size bound is assumed: the reachable set may be very large (or
// conceptually infinite) as long as the specific search terminates by
// finding its target or exhausting a finite region.
type NeighborSource[V comparable] interface {
	Neighbors(from V) []V
}

// NeighborSourceFunc adapts a plain function to the NeighborSource
// interface, so callers can pass a closure instead of defining a type.
type NeighborSourceFunc[V comparable] func(from V) []V

// Neighbors calls f(from).
func (f NeighborSourceFunc[V]) Neighbors(from V) []V { return f(from) }

// WeightFunc reports the cost of the directed edge from→to.
//
// It is supplied per call to the weighted search and must be defined for
// every edge the search encounters; it need not be defined for
// non-adjacent pairs. Weights must be non-negative — this precondition is
// not enforced, and violating it yields undefined results rather than a
// clean failure.
type WeightFunc[V comparable] func(from, to V) float64

// VertexSet is an unordered set of vertices, used for visited tracking
// and reachability results.
type VertexSet[V comparable] map[V]struct{}

// NewVertexSet returns an empty VertexSet with room for n vertices.
func NewVertexSet[V comparable](n int) VertexSet[V] {
	return make(VertexSet[V], n)
}

// Add inserts v and reports whether it was newly added.
func (s VertexSet[V]) Add(v V) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}

	return true
}

// Contains reports whether v is in the set.
func (s VertexSet[V]) Contains(v V) bool {
	_, ok := s[v]

	return ok
}

// Len returns the number of vertices in the set.
func (s VertexSet[V]) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s VertexSet[V]) Clone() VertexSet[V] {
	out := make(VertexSet[V], len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}
