// Package dfs implements depth-first search with backtracking over a
// core.NeighborSource, producing the first path its exploration order
// finds from a start vertex to a target.
//
// The traversal runs on an explicit frame stack rather than call-stack
// recursion, so arbitrarily deep graphs cannot exhaust goroutine stack
// space.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// frame is one level of the backtracking stack: a vertex on the
// path-so-far and a cursor into its neighbor list.
type frame[V comparable] struct {
	v    V
	nbrs []V
	next int
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker[V comparable] struct {
	src     core.NeighborSource[V]
	opts    Options[V]
	target  V
	visited core.VertexSet[V] // every vertex descended into
	path    []V               // path-so-far, mirrors the frame stack
	stack   []frame[V]
}

// DFS searches for a path from start to target over src, exploring
// neighbors depth-first in the order the source reports them and undoing
// the path-so-far on failed branches. The first path found by this
// exploration order is returned; it is not necessarily shortest by any
// metric. The result's visited set holds every vertex explored up to and
// including the moment the target was found.
//
// Returns core.ErrNilSource for a nil source, core.ErrPathNotFound when
// exploration exhausts without matching the target, or any error returned
// by an OnVisit/OnExit hook. Cyclic graphs terminate via visited
// tracking. The returned path has total weight 0.
//
// Complexity: O(V + E) time, O(V) memory for stack and visited set.
func DFS[V comparable](src core.NeighborSource[V], start, target V, opts ...Option[V]) (*core.Path[V], error) {
	if src == nil {
		return nil, core.ErrNilSource
	}

	dopts := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&dopts)
	}

	w := &dfsWalker[V]{
		src:     src,
		opts:    dopts,
		target:  target,
		visited: core.VertexSet[V]{},
	}

	return w.run(start)
}

// run seeds the stack with start and drives the backtracking loop.
func (w *dfsWalker[V]) run(start V) (*core.Path[V], error) {
	found, err := w.push(start, 0)
	if err != nil {
		return nil, err
	}
	if found {
		return w.result(), nil
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			// all neighbors failed: backtrack
			if err = w.pop(); err != nil {
				return nil, err
			}
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		// depth of nbr would be len(w.stack)
		if w.opts.MaxDepth >= 0 && len(w.stack) > w.opts.MaxDepth {
			continue
		}
		// already explored: fail this branch
		if w.visited.Contains(nbr) {
			continue
		}

		if found, err = w.push(nbr, len(w.stack)); err != nil {
			return nil, err
		}
		if found {
			return w.result(), nil
		}
	}

	return nil, core.ErrPathNotFound
}

// push marks v visited, appends it to the path-so-far, fires OnVisit, and
// reports whether v is the target. Non-target vertices get a frame with
// their neighbor list for further descent.
func (w *dfsWalker[V]) push(v V, depth int) (bool, error) {
	w.visited.Add(v)
	w.path = append(w.path, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	if v == w.target {
		return true, nil
	}

	w.stack = append(w.stack, frame[V]{v: v, nbrs: w.src.Neighbors(v)})

	return false, nil
}

// pop removes the exhausted top frame, fires OnExit, and shrinks the
// path-so-far. The vertex stays marked visited.
func (w *dfsWalker[V]) pop() error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(top.v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", top.v, err)
		}
	}

	return nil
}

// result snapshots the path-so-far into an immutable core.Path.
func (w *dfsWalker[V]) result() *core.Path[V] {
	route := make([]V, len(w.path))
	copy(route, w.path)

	return core.NewPath(route, 0, w.visited)
}
