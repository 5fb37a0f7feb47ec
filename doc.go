// Package pathfind is a reusable search engine over any vertex type that
// can report its outgoing neighbors — maze cells, map nodes, state-machine
// states, or anything else comparable.
//
// 🚀 What is pathfind?
//
//	A small, generic, zero-dependency library that brings together:
//		• The neighbor contract: core.NeighborSource[V] — one method, Neighbors(from V) []V
//		• Path entities: ordered vertex routes with total weight & visited diagnostics
//		• Reachability: collect every vertex reachable from a start vertex
//		• Traversals: depth-first (backtracking) & breadth-first (fewest hops)
//		• Shortest paths: Dijkstra with caller-supplied edge weights
//
// ✨ Why choose pathfind?
//
//   - Opaque vertices – the engine never constructs or mutates your vertex type
//   - No inheritance – any type with a Neighbors method is a graph; plain
//     functions adapt via core.NeighborSourceFunc
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnVisit, OnEnqueue…) and filters on every traversal
//
// Everything is organized under five subpackages:
//
//	core/     — NeighborSource contract, Path, VertexSet, reachability & formatting
//	bfs/      — breadth-first search: minimum-hop paths
//	dfs/      — depth-first search: first path by exploration order, explicit stack
//	dijkstra/ — weighted shortest path with lazy decrease-key frontier
//	grid/     — a ready-made rectangular cost grid implementing the contract
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square graph; bfs.BFS(src, A, D) returns a 3-vertex minimum-hop path.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
