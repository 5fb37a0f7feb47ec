// Package core defines the contract and entities shared by every search
// package in pathfind.
//
// What
//
//   - NeighborSource[V]: the one capability a concrete graph must provide —
//     Neighbors(from V) []V, reporting the vertices directly reachable from
//     `from` via outgoing edges.
//   - NeighborSourceFunc[V]: adapts a closure to the contract.
//   - WeightFunc[V]: caller-supplied edge cost for the weighted search.
//   - VertexSet[V]: unordered vertex set used for visited tracking.
//   - Path[V]: an ordered route from start to target plus its accumulated
//     weight and the visited set of the search that produced it.
//   - AllVertices: the full reachable set from a start vertex.
//   - FormatAdjacencyList: pre-order `vertex: [n1, n2, ...]` rendering of
//     the reachable subgraph.
//
// Why
//
//	Search correctness only needs adjacency, equality, and hashability.
//	Keeping the contract this small lets maze cells, coordinates, string
//	IDs, or state-machine states act as vertices with zero adaptation —
//	the engine never constructs or mutates a vertex.
//
// Determinism
//
//	Every traversal iterates neighbors exactly in the order the source
//	reports them. A deterministic source therefore yields fully
//	reproducible paths, visit orders, and adjacency listings.
//
// Errors
//
//   - ErrNilSource    if a nil NeighborSource is supplied.
//   - ErrPathNotFound if no directed path connects start to target
//     (shared by bfs, dfs, and dijkstra).
package core
