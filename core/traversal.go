package core

import (
	"fmt"
	"strings"
)

// AllVertices collects the start vertex plus every vertex transitively
// reachable from it via directed edges (visit order unspecified).
// Each vertex is marked at most once, so cyclic graphs terminate.
// Returns ErrNilSource if src is nil.
// Complexity: O(V + E) time, O(V) memory for the reachable region.
func AllVertices[V comparable](src NeighborSource[V], start V) (VertexSet[V], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	reached := VertexSet[V]{}
	reached.Add(start)
	stack := []V{start}
	var v V
	for len(stack) > 0 {
		v, stack = stack[len(stack)-1], stack[:len(stack)-1]
		for _, nbr := range src.Neighbors(v) {
			// membership check before descending guarantees termination
			if reached.Add(nbr) {
				stack = append(stack, nbr)
			}
		}
	}

	return reached, nil
}

// FormatAdjacencyList renders the subgraph reachable from start as one
// line per first-visited vertex:
//
//	vertex: [neighbor1, neighbor2, ...]
//
// Vertices appear in pre-order over a spanning tree rooted at start,
// descending into neighbors in the order the source reports them.
// Only outgoing edges are followed. Returns ErrNilSource if src is nil.
func FormatAdjacencyList[V comparable](src NeighborSource[V], start V) (string, error) {
	if src == nil {
		return "", ErrNilSource
	}

	var sb strings.Builder
	seen := VertexSet[V]{}

	writeLine := func(v V, nbrs []V) {
		fmt.Fprintf(&sb, "%v: [", v)
		for i, nbr := range nbrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", nbr)
		}
		sb.WriteString("]\n")
	}

	seen.Add(start)
	rootNbrs := src.Neighbors(start)
	writeLine(start, rootNbrs)
	stack := []adjFrame[V]{{nbrs: rootNbrs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		if !seen.Add(nbr) {
			continue
		}
		nbrs := src.Neighbors(nbr)
		writeLine(nbr, nbrs)
		stack = append(stack, adjFrame[V]{nbrs: nbrs})
	}

	return sb.String(), nil
}

// adjFrame is one level of the formatter's pre-order walk: a neighbor
// list and a cursor into it.
type adjFrame[V comparable] struct {
	nbrs []V
	next int
}
