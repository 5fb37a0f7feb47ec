// Package dijkstra implements weighted shortest-path search over any
// core.NeighborSource, parameterized by a caller-supplied edge-weight
// function.
//
// What
//
//   - Dijkstra(src, start, target, weightFn, opts...): expand the
//     cheapest-known frontier vertex until the target is popped, then
//     reconstruct the route by walking parent links back to the start.
//   - Returns a core.Path whose TotalWeight is the target's cumulative
//     weight and whose Visited set holds every finalized vertex.
//   - Lazy decrease-key: a cheaper route to an already-queued vertex does
//     not mutate the heap — the old frontier node is flagged stale and a
//     new node is inserted; stale nodes are skipped when popped.
//   - Options: WithMaxDistance (cumulative-weight cap), and
//     WithInfEdgeThreshold (edges at or above the threshold are walls).
//
// Why
//
//	Minimum-cost routing over any adjacency the caller can describe:
//	terrain costs, travel times, per-edge tariffs — the weight function
//	is consulted per encountered edge, never precomputed.
//
// Preconditions
//
//	weightFn must be defined for every edge the search encounters and
//	must never return a negative value. Negative weights are an unchecked
//	precondition: they produce undefined results, not an error.
//
// Determinism
//
//	Equal-cost frontier nodes are popped in insertion order (a monotonic
//	sequence number breaks heap ties), so runs over a deterministic
//	NeighborSource are fully reproducible.
//
// Edge cases
//
//   - start == target: a one-vertex path with weight 0.
//   - nil weightFn: collapses to core.ErrPathNotFound, like an
//     unreachable target.
//   - Unreachable target: core.ErrPathNotFound once the frontier empties.
//
// Complexity (V = reachable vertices, E = their edges)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) under lazy decrease-key
//
// Usage
//
//	path, err := dijkstra.Dijkstra(terrain, camp, summit, terrain.StepCost)
//	if err != nil {
//	    // core.ErrNilSource or core.ErrPathNotFound
//	}
//	fmt.Printf("cost %.1f via %v\n", path.TotalWeight(), path.Vertices())
package dijkstra
