// Package bfs provides breadth-first search over a core.NeighborSource,
// returning a minimum-hop core.Path from a start vertex to a target.
//
// BFS explores vertices in increasing hop distance from the start, with
// optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state for one search call.
type walker[V comparable] struct {
	src        core.NeighborSource[V]
	opts       Options[V]
	target     V
	queue      []queueItem[V]
	discovered core.VertexSet[V] // enqueued at least once
	parent     map[V]V           // discovered vertex → vertex it was discovered from
	visited    core.VertexSet[V] // dequeued vertices; becomes the result's visited set
}

// BFS searches for a path from start to target over src, applying any
// number of functional Options. Among all paths measured by edge count it
// returns one of minimum length, terminating as soon as the target turns
// up as a neighbor of the current frontier.
//
// Returns core.ErrNilSource for a nil source, ErrOptionViolation for bad
// options, core.ErrPathNotFound when the queue empties without reaching
// the target, or any error returned by an OnVisit hook.
//
// The returned path has total weight 0; use Path.RecalculateTotalWeight
// to derive a weighted cost afterwards.
//
// Complexity: O(V + E) time, O(V) memory over the explored region.
func BFS[V comparable](src core.NeighborSource[V], start, target V, opts ...Option[V]) (*core.Path[V], error) {
	if src == nil {
		return nil, core.ErrNilSource
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Trivial route: start is the target
	if start == target {
		visited := core.VertexSet[V]{}
		visited.Add(start)

		return core.NewPath([]V{start}, 0, visited), nil
	}

	w := &walker[V]{
		src:        src,
		opts:       o,
		target:     target,
		discovered: core.VertexSet[V]{},
		parent:     make(map[V]V),
		visited:    core.VertexSet[V]{},
	}

	// Seed queue with the start vertex (no parent)
	w.discovered.Add(start)
	o.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.loop()
}

// loop processes the queue until the target is matched or the frontier
// is exhausted.
func (w *walker[V]) loop() (*core.Path[V], error) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.visited.Add(item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}

		path, found, err := w.expand(item)
		if err != nil {
			return nil, err
		}
		if found {
			return path, nil
		}
	}

	return nil, core.ErrPathNotFound
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// expand checks each neighbor of item against the target and enqueues
// the unseen ones. When a neighbor equals the target the minimum-hop
// path is reconstructed immediately and no further expansion happens.
func (w *walker[V]) expand(item queueItem[V]) (*core.Path[V], bool, error) {
	nextDepth := item.depth + 1
	for _, nbr := range w.src.Neighbors(item.v) {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		if nbr == w.target {
			return w.reconstruct(item.v), true, nil
		}

		// first time seen?
		if w.discovered.Add(nbr) {
			w.parent[nbr] = item.v
			w.opts.OnEnqueue(nbr, nextDepth)
			w.queue = append(w.queue, queueItem[V]{v: nbr, depth: nextDepth})
		}
	}

	return nil, false, nil
}

// reconstruct walks the parent chain from last back to start, prepending
// each vertex, and appends the target to complete the route.
func (w *walker[V]) reconstruct(last V) *core.Path[V] {
	chain := []V{last}
	cur := last
	for {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		chain = append(chain, prev)
		cur = prev
	}
	// reverse into start → last order
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	chain = append(chain, w.target)

	// The target is never dequeued, but it is inspected: record it so the
	// visited set stays a superset of the path vertices.
	w.visited.Add(w.target)

	return core.NewPath(chain, 0, w.visited)
}
