// Package bfs provides breadth-first search over any core.NeighborSource,
// returning a minimum-hop core.Path between two vertices.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from the start.
//   - Return a core.Path whose vertex count is minimal over all routes
//     from start to target (standard level-order correctness: the target
//     is recognized as a neighbor of the lowest-distance frontier before
//     any farther vertex is expanded).
//   - Record every dequeued vertex, plus the target, in Path.Visited.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately after dequeuing)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute fewest-hop routes in O(V + E) time.
//   - Level layering, reachability probing, unweighted routing.
//
// Determinism
//
//	BFS enqueues neighbors exactly in the order the NeighborSource
//	reports them, so a deterministic source yields a fully reproducible
//	path and visit sequence.
//
// Edge cases
//
//   - start == target: a one-vertex path (weight 0) is returned without
//     touching the source.
//   - Unreachable target, including a target pruned by MaxDepth or
//     FilterNeighbor: core.ErrPathNotFound.
//   - Cycles and self-loops: handled by first-seen tracking; no special
//     casing, no infinite loops.
//
// Complexity (V = reachable vertices, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, parent map, and visited set
//
// Usage
//
//	path, err := bfs.BFS(maze, entrance, exit)
//	if err != nil {
//	    // core.ErrNilSource, ErrOptionViolation, core.ErrPathNotFound,
//	    // or a wrapped OnVisit hook error
//	}
//	fmt.Println(path.Vertices())
//
// Searches are synchronous and run to completion; there is no suspension
// or cancellation. Concurrent BFS calls are independent as long as the
// NeighborSource is safe for concurrent use.
package bfs
