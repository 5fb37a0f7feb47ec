package core

import (
	"fmt"
	"strings"
)

// displayCut bounds how many head and tail vertices String renders for
// long paths; the middle is elided.
const displayCut = 10

// Path is one discovered route through a graph: an ordered sequence of
// mutually adjacent vertices from start (front) to target (back), the
// accumulated weight of its edges, and the set of vertices the producing
// search inspected.
//
// Representation invariants:
//  1. vertices[i] is a neighbor of vertices[i-1] for every i > 0.
//  2. a one-vertex path has start == target.
//  3. an empty path has neither start nor target.
//
// A Path is created fresh by each search invocation and returned as the
// immutable result of that single call; it is never shared or pooled.
type Path[V comparable] struct {
	vertices    []V
	totalWeight float64
	visited     VertexSet[V]
}

// NewPath assembles a Path from an ordered vertex sequence, its
// accumulated weight, and the visited set of the producing search.
// The Path takes ownership of both vertices and visited.
func NewPath[V comparable](vertices []V, totalWeight float64, visited VertexSet[V]) *Path[V] {
	if visited == nil {
		visited = NewVertexSet[V](len(vertices))
	}

	return &Path[V]{vertices: vertices, totalWeight: totalWeight, visited: visited}
}

// Vertices returns the ordered vertex sequence, front = start,
// back = target. Callers must not mutate the returned slice.
func (p *Path[V]) Vertices() []V { return p.vertices }

// Len returns the number of vertices on the path.
func (p *Path[V]) Len() int { return len(p.vertices) }

// TotalWeight returns the accumulated cost of the path. It is 0 for
// unweighted searches unless recalculated via RecalculateTotalWeight.
func (p *Path[V]) TotalWeight() float64 { return p.totalWeight }

// Visited returns the set of vertices inspected by the search that
// produced this path. It is diagnostic only: always a superset of
// Vertices, usually larger.
func (p *Path[V]) Visited() VertexSet[V] { return p.visited }

// RecalculateTotalWeight re-derives the total weight by summing weight
// over consecutive vertex pairs; the first vertex contributes nothing.
// The recomputed value is stored and returned.
func (p *Path[V]) RecalculateTotalWeight(weight WeightFunc[V]) float64 {
	p.totalWeight = 0
	for i := 1; i < len(p.vertices); i++ {
		p.totalWeight += weight(p.vertices[i-1], p.vertices[i])
	}

	return p.totalWeight
}

// String renders the path as
//
//	Weight=2.00 Length=3 Visited=7 (A, B, C)
//
// eliding the middle of paths longer than twice displayCut.
func (p *Path[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weight=%.2f Length=%d Visited=%d (", p.totalWeight, len(p.vertices), len(p.visited))

	sep := ""
	tailCut := len(p.vertices) - 1 - displayCut
	for i, v := range p.vertices {
		switch {
		case i < displayCut || i > tailCut:
			sb.WriteString(sep)
			fmt.Fprintf(&sb, "%v", v)
			sep = ", "
		case i == displayCut:
			sb.WriteString(sep)
			sb.WriteString("...")
		}
	}
	sb.WriteString(")")

	return sb.String()
}
