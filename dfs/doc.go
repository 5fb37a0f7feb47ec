// Package dfs implements depth-first search with backtracking over any
// core.NeighborSource, returning the first start→target path found by its
// exploration order.
//
// What
//
//   - Explore depth-first: at each vertex, descend into the first
//     unvisited neighbor (source order); when every neighbor fails, pop
//     the vertex off the path-so-far and continue from its parent.
//   - Return a core.Path holding the successful path-so-far and, in
//     Path.Visited, every vertex descended into — including vertices
//     backtracked away from before the target turned up.
//   - Hooks: OnVisit (vertex joins the path) and OnExit (vertex is
//     backtracked away); either may abort with an error.
//   - Limits: MaxDepth (-1 = unlimited), FilterNeighbor.
//
// Why
//
//   - Find any connecting route cheaply when path length does not matter.
//   - The visited/backtrack discipline is the building block for
//     reachability and exhaustive exploration.
//
// Explicit stack
//
//	The classic formulation is recursive; this implementation keeps an
//	explicit stack of (vertex, neighbor-cursor) frames instead, so memory
//	use is bounded deterministically and graphs millions of vertices deep
//	cannot overflow the goroutine call stack.
//
// Edge cases
//
//   - start == target: a one-vertex path (weight 0).
//   - Unreachable target: core.ErrPathNotFound after exhausting the
//     reachable region.
//   - Cycles and self-loops: the visited check fails the branch; no
//     infinite loops.
//
// Complexity (V = reachable vertices, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack, path-so-far, and visited set
//
// Usage
//
//	path, err := dfs.DFS(maze, entrance, exit)
//	if err != nil {
//	    // core.ErrNilSource, core.ErrPathNotFound, or a wrapped hook error
//	}
//	fmt.Println(path)
//
// Searches are synchronous and run to completion; there is no suspension
// or cancellation. Concurrent DFS calls are independent as long as the
// NeighborSource is safe for concurrent use.
package dfs
