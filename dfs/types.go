// Package dfs defines types and options for depth-first search:
// pre-order and backtrack hooks, depth limiting, and neighbor filtering.
package dfs

// Option configures optional behavior of DFS traversal.
// Use with DFS(src, start, target, opts...).
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V comparable] struct {
	// OnVisit, if non-nil, is invoked when a vertex joins the path-so-far
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v V, depth int) error

	// OnExit, if non-nil, is invoked when a vertex is backtracked away
	// from after all of its neighbors failed to reach the target.
	// Returning an error aborts traversal with that error.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 matches only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is
	// explored. Return true to descend into that neighbor, false to skip it.
	FilterNeighbor func(v V) bool
}

// DefaultOptions returns an Options struct with:
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook,
// called when a vertex is first added to the path-so-far.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a backtrack hook,
// called when a vertex is popped off the path-so-far.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is considered.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, that neighbor is skipped.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}
