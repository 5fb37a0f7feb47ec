// Package grid is a ready-made concrete graph for the search packages: a
// rectangular field of cells with per-cell entry costs.
//
// What
//
//   - Cell (Row, Col) is the vertex type itself — no IDs, no conversion.
//   - Grid.Neighbors reports in-bounds adjacent cells in a fixed order
//     (up, right, down, left; Conn8 adds the diagonals), satisfying
//     core.NeighborSource[Cell].
//   - Grid.StepCost charges the cost of the cell being entered, usable
//     directly as a core.WeightFunc for the weighted search.
//   - New validates rectangularity and deep-copies the cost slice;
//     Uniform builds a unit-cost field.
//
// Why
//
//	Terrain routing, maze flooring, and the test/benchmark fixtures of
//	this module all need the same thing: a small deterministic graph
//	that exists without any wiring. The grid is that collaborator.
//
// Usage
//
//	g, _ := grid.Uniform(3, 3, grid.Conn4)
//	p, _ := bfs.BFS[grid.Cell](g, grid.Cell{}, grid.Cell{Row: 2, Col: 2})
//
// Errors
//
//   - ErrEmptyGrid      for a grid with no rows or no columns.
//   - ErrNonRectangular when row lengths differ.
package grid
