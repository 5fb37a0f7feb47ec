// Package grid provides a ready-made rectangular cost grid that satisfies
// the core.NeighborSource contract, so the search packages can be
// exercised without writing a graph type. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - A per-cell entry cost, exposed as a core.WeightFunc via StepCost
//
// Cells are identified by (Row, Col) coordinates; the Cell value itself
// is the vertex.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid is returned when the cost slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrNonRectangular is returned when row lengths differ.
	ErrNonRectangular = errors.New("grid: rows have differing lengths")
)

// Connectivity selects which cells count as neighbors.
type Connectivity int

const (
	// Conn4 connects horizontally and vertically adjacent cells.
	Conn4 Connectivity = iota

	// Conn8 additionally connects diagonally adjacent cells.
	Conn8
)

// conn4Offsets and conn8Offsets are the fixed neighbor orderings
// (up, right, down, left; Conn8 interleaves the diagonals clockwise).
var (
	conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Cell is one grid position, used directly as the vertex type.
type Cell struct {
	Row, Col int
}

// Grid treats a rectangular 2D slice of entry costs as a graph: every
// in-bounds cell is a vertex, and cells adjacent under the chosen
// Connectivity are neighbors. The zero cost is legal; costs must be
// non-negative for use with the weighted search.
type Grid struct {
	rows, cols int
	costs      [][]float64
	offsets    [][2]int
}

// New constructs a Grid from a non-empty, rectangular cost slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows×cols) time and memory.
func New(costs [][]float64, conn Connectivity) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(costs), len(costs[0])
	copied := make([][]float64, rows)
	for r, row := range costs {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		copied[r] = make([]float64, cols)
		copy(copied[r], row)
	}

	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{rows: rows, cols: cols, costs: copied, offsets: offsets}, nil
}

// Uniform constructs a rows×cols Grid where every step costs 1.
// Returns ErrEmptyGrid for non-positive dimensions.
func Uniform(rows, cols int, conn Connectivity) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	costs := make([][]float64, rows)
	for r := range costs {
		costs[r] = make([]float64, cols)
		for c := range costs[r] {
			costs[r][c] = 1
		}
	}

	return New(costs, conn)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Neighbors reports the in-bounds cells adjacent to c, in the fixed
// offset order of the grid's Connectivity. An out-of-bounds c has no
// neighbors. Satisfies core.NeighborSource[Cell].
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	nbrs := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			nbrs = append(nbrs, n)
		}
	}

	return nbrs
}

// StepCost reports the cost of entering `to`, suitable as a
// core.WeightFunc for the weighted search over this grid.
func (g *Grid) StepCost(_, to Cell) float64 {
	return g.costs[to.Row][to.Col]
}
