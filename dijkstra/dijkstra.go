// Package dijkstra implements the weighted shortest-path search over a
// core.NeighborSource with a caller-supplied edge-weight function.
//
// The search processes vertices in order of increasing cumulative weight
// from the start using a min-heap frontier, relaxing edges as it goes.
// Instead of mutating heap entries in place when a cheaper route to a
// vertex appears, it marks the old frontier node stale and inserts a
// fresh one — the “lazy decrease-key” strategy: stale nodes are skipped
// when eventually popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is finalized at most once,
//     each relaxation may push one heap entry, heap ops cost O(log N).
//   - Space: O(V + E) — best-node map plus stale entries in the heap.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pathfind/core"
)

// Dijkstra computes a minimum-cumulative-weight path from start to target
// over src, with edge costs supplied by weight. It accepts functional
// options to customize behavior (WithMaxDistance, WithInfEdgeThreshold).
//
// Termination: success on popping the target from the frontier — classic
// shortest-path correctness, which requires weight to never return a
// negative value. That precondition is not checked; violating it yields
// undefined results.
//
// Ties between equal-cost frontier nodes are broken by insertion order
// (the node inserted earlier is popped first), so runs over a
// deterministic NeighborSource are reproducible.
//
// Returns:
//
//   - core.ErrNilSource if src is nil.
//   - core.ErrPathNotFound if weight is nil, or if the frontier empties
//     (or exceeds MaxDistance) without ever popping the target.
//   - Otherwise a core.Path whose total weight is the target's cumulative
//     weight and whose visited set holds every finalized vertex.
func Dijkstra[V comparable](src core.NeighborSource[V], start, target V, weight core.WeightFunc[V], opts ...Option) (*core.Path[V], error) {
	if src == nil {
		return nil, core.ErrNilSource
	}
	// An absent weight function cannot drive the search; like an
	// unreachable target, it collapses to not-found.
	if weight == nil {
		return nil, core.ErrPathNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[V]{
		src:     src,
		weight:  weight,
		options: cfg,
		target:  target,
		best:    make(map[V]*frontierNode[V]),
		visited: core.VertexSet[V]{},
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single search execution.
type runner[V comparable] struct {
	src     core.NeighborSource[V]
	weight  core.WeightFunc[V]
	options Options
	target  V
	best    map[V]*frontierNode[V] // vertex → current best-known frontier node
	visited core.VertexSet[V]      // vertices whose minimal cost is finalized
	pq      frontier[V]
	seq     uint64 // insertion counter for the tie-break
}

// init seeds the frontier with a node for start at cumulative weight 0
// and no parent.
func (r *runner[V]) init(start V) {
	heap.Init(&r.pq)
	root := &frontierNode[V]{vertex: start}
	r.best[start] = root
	r.insert(root)
}

// insert stamps the node's insertion sequence and pushes it.
func (r *runner[V]) insert(n *frontierNode[V]) {
	n.seq = r.seq
	r.seq++
	heap.Push(&r.pq, n)
}

// process repeatedly pops the cheapest frontier node and relaxes its
// outgoing edges until the target is finalized or the frontier empties.
func (r *runner[V]) process() (*core.Path[V], error) {
	for r.pq.Len() > 0 {
		node := heap.Pop(&r.pq).(*frontierNode[V])

		// A cheaper node for the same vertex superseded this one.
		if node.stale {
			continue
		}
		// Everything left in the heap costs at least this much; stop.
		if node.weightSum > r.options.MaxDistance {
			break
		}

		// The minimal cost of node.vertex is now final.
		r.visited.Add(node.vertex)
		if node.vertex == r.target {
			return r.buildPath(node), nil
		}

		r.relax(node)
	}

	return nil, core.ErrPathNotFound
}

// relax computes the tentative cumulative weight to each neighbor of the
// popped node and records strictly cheaper routes, marking superseded
// frontier nodes stale.
func (r *runner[V]) relax(node *frontierNode[V]) {
	var w, tentative float64
	for _, nbr := range r.src.Neighbors(node.vertex) {
		w = r.weight(node.vertex, nbr)

		// Edges at or above the threshold are impassable walls.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		tentative = node.weightSum + w
		if tentative > r.options.MaxDistance {
			continue
		}

		known, ok := r.best[nbr]
		switch {
		case !ok:
			fresh := &frontierNode[V]{vertex: nbr, weightSum: tentative, parent: node}
			r.best[nbr] = fresh
			r.insert(fresh)
		case tentative < known.weightSum:
			// Lazy decrease-key: retire the old node, insert a cheaper one.
			known.stale = true
			fresh := &frontierNode[V]{vertex: nbr, weightSum: tentative, parent: node}
			r.best[nbr] = fresh
			r.insert(fresh)
		}
	}
}

// buildPath reconstructs the route by walking parent links from the
// target's frontier node back to the parentless start node.
func (r *runner[V]) buildPath(node *frontierNode[V]) *core.Path[V] {
	var route []V
	for n := node; n != nil; n = n.parent {
		route = append(route, n.vertex)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return core.NewPath(route, node.weightSum, r.visited)
}

// frontierNode wraps a vertex with its cumulative weight from the start,
// a back-reference to the parent node it was discovered from (parent
// links form a tree, never a cycle), and a staleness flag used to
// invalidate the node once a cheaper route to the same vertex is found.
// Frontier nodes are transient: created and discarded within one call.
type frontierNode[V comparable] struct {
	vertex    V
	weightSum float64
	parent    *frontierNode[V]
	stale     bool
	seq       uint64
}

// frontier is a min-heap of *frontierNode ordered by weightSum ascending,
// with insertion order as the tie-break for equal weights.
type frontier[V comparable] []*frontierNode[V]

// Len returns the number of nodes in the heap.
func (f frontier[V]) Len() int { return len(f) }

// Less prefers the smaller cumulative weight; equal weights fall back to
// the earlier insertion.
func (f frontier[V]) Less(i, j int) bool {
	if f[i].weightSum != f[j].weightSum {
		return f[i].weightSum < f[j].weightSum
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two nodes in the heap.
func (f frontier[V]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierNode.
func (f *frontier[V]) Push(x any) { *f = append(*f, x.(*frontierNode[V])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[V]) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return node
}
