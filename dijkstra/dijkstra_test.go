// Package dijkstra_test validates the weighted search: optimality on
// competing routes, lazy decrease-key behavior, tie-breaking, threshold
// options, and the not-found collapse for unusable inputs.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// edge identifies a weighted directed edge in test fixtures.
type edge struct{ from, to string }

// weighted builds a NeighborSource and matching WeightFunc from a
// directed edge→weight table, preserving insertion order per vertex.
func weighted(edges []edge, weights []float64) (core.NeighborSource[string], core.WeightFunc[string]) {
	adj := map[string][]string{}
	cost := map[edge]float64{}
	for i, e := range edges {
		adj[e.from] = append(adj[e.from], e.to)
		cost[e] = weights[i]
	}
	src := core.NeighborSourceFunc[string](func(v string) []string { return adj[v] })
	w := func(from, to string) float64 { return cost[edge{from, to}] }

	return src, w
}

func TestDijkstra_NilSource(t *testing.T) {
	if _, err := dijkstra.Dijkstra[string](nil, "A", "B", func(_, _ string) float64 { return 1 }); !errors.Is(err, core.ErrNilSource) {
		t.Errorf("nil source: want ErrNilSource, got %v", err)
	}
}

// TestDijkstra_NilWeightFunc: an absent weight function collapses to
// not-found, not a distinct error.
func TestDijkstra_NilWeightFunc(t *testing.T) {
	src, _ := weighted([]edge{{"A", "B"}}, []float64{1})
	if _, err := dijkstra.Dijkstra(src, "A", "B", nil); !errors.Is(err, core.ErrPathNotFound) {
		t.Errorf("nil weight fn: want ErrPathNotFound, got %v", err)
	}
}

func TestDijkstra_StartEqualsTarget(t *testing.T) {
	src, w := weighted([]edge{{"A", "B"}}, []float64{1})
	p, err := dijkstra.Dijkstra(src, "A", "A", w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(p.Vertices(), want) {
		t.Errorf("Vertices = %v; want %v", p.Vertices(), want)
	}
	if p.TotalWeight() != 0 {
		t.Errorf("TotalWeight = %v; want 0", p.TotalWeight())
	}
}

// TestDijkstra_Diamond: the cheap two-edge route must beat the expensive
// two-edge route.
func TestDijkstra_Diamond(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		[]float64{5, 1, 1, 1},
	)
	p, err := dijkstra.Dijkstra(src, "A", "D", w)
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalWeight() != 2 {
		t.Errorf("TotalWeight = %v; want 2", p.TotalWeight())
	}
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(p.Vertices(), want) {
		t.Errorf("path = %v; want %v", p.Vertices(), want)
	}
}

// TestDijkstra_CycleAndIsolated: unit-weight 4-cycle A→B→C→D→A plus an
// isolated vertex E.
func TestDijkstra_CycleAndIsolated(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		[]float64{1, 1, 1, 1},
	)

	if _, err := dijkstra.Dijkstra(src, "A", "E", w); !errors.Is(err, core.ErrPathNotFound) {
		t.Errorf("isolated target: want ErrPathNotFound, got %v", err)
	}

	p, err := dijkstra.Dijkstra(src, "A", "C", w)
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalWeight() != 2 {
		t.Errorf("TotalWeight = %v; want 2", p.TotalWeight())
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(p.Vertices(), want) {
		t.Errorf("path = %v; want %v", p.Vertices(), want)
	}
}

// TestDijkstra_DecreaseKey: C is first discovered at cost 10, then
// improved to 2 through B; the stale node must be skipped and the final
// route must use the improvement.
func TestDijkstra_DecreaseKey(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"C", "T"}},
		[]float64{1, 10, 1, 1},
	)
	p, err := dijkstra.Dijkstra(src, "A", "T", w)
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalWeight() != 3 {
		t.Errorf("TotalWeight = %v; want 3", p.TotalWeight())
	}
	if want := []string{"A", "B", "C", "T"}; !reflect.DeepEqual(p.Vertices(), want) {
		t.Errorf("path = %v; want %v", p.Vertices(), want)
	}
}

// TestDijkstra_TieBreak: two equal-cost routes; the documented tie-break
// (insertion order) makes the route through B win deterministically.
func TestDijkstra_TieBreak(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "T"}, {"C", "T"}},
		[]float64{1, 1, 1, 1},
	)
	for i := 0; i < 10; i++ {
		p, err := dijkstra.Dijkstra(src, "A", "T", w)
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"A", "B", "T"}; !reflect.DeepEqual(p.Vertices(), want) {
			t.Fatalf("run %d: path = %v; want %v", i, p.Vertices(), want)
		}
	}
}

// TestDijkstra_OptimalAgainstEnumeration cross-checks the result weight
// against brute-force enumeration of every simple path.
func TestDijkstra_OptimalAgainstEnumeration(t *testing.T) {
	src, w := weighted(
		[]edge{
			{"A", "B"}, {"A", "C"}, {"B", "C"}, {"B", "D"},
			{"C", "D"}, {"C", "E"}, {"D", "T"}, {"E", "T"},
		},
		[]float64{2, 4, 1, 7, 3, 3, 1, 2},
	)
	p, err := dijkstra.Dijkstra(src, "A", "T", w)
	if err != nil {
		t.Fatal(err)
	}

	best := cheapestByEnumeration(src, w, "A", "T")
	if p.TotalWeight() != best {
		t.Errorf("TotalWeight = %v; exhaustive minimum = %v", p.TotalWeight(), best)
	}
}

// TestDijkstra_RecalculateRoundTrip: re-deriving the weight with the same
// function reproduces the search's own total.
func TestDijkstra_RecalculateRoundTrip(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		[]float64{5, 1, 1, 1},
	)
	p, err := dijkstra.Dijkstra(src, "A", "D", w)
	if err != nil {
		t.Fatal(err)
	}
	searched := p.TotalWeight()
	if got := p.RecalculateTotalWeight(w); got != searched {
		t.Errorf("recalculated = %v; searched = %v", got, searched)
	}
}

// TestDijkstra_VisitedSupersetOfPath: every route vertex was finalized.
func TestDijkstra_VisitedSupersetOfPath(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		[]float64{5, 1, 1, 1},
	)
	p, err := dijkstra.Dijkstra(src, "A", "D", w)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range p.Vertices() {
		if !p.Visited().Contains(v) {
			t.Errorf("Visited is not a superset of Vertices: missing %q", v)
		}
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"B", "C"}},
		[]float64{2, 2},
	)
	if _, err := dijkstra.Dijkstra(src, "A", "C", w, dijkstra.WithMaxDistance(3)); !errors.Is(err, core.ErrPathNotFound) {
		t.Errorf("capped: want ErrPathNotFound, got %v", err)
	}
	if p, err := dijkstra.Dijkstra(src, "A", "C", w, dijkstra.WithMaxDistance(4)); err != nil || p.TotalWeight() != 4 {
		t.Errorf("uncapped: got (%v, %v); want weight-4 path", p, err)
	}
}

// TestDijkstra_InfEdgeThreshold: edges at or above the threshold are
// impassable walls.
func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	src, w := weighted(
		[]edge{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		[]float64{5, 1, 1, 1},
	)
	// wall off the expensive branch only; the cheap route survives
	p, err := dijkstra.Dijkstra(src, "A", "D", w, dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalWeight() != 2 {
		t.Errorf("TotalWeight = %v; want 2", p.TotalWeight())
	}

	// wall off everything
	if _, err = dijkstra.Dijkstra(src, "A", "D", w, dijkstra.WithInfEdgeThreshold(1)); !errors.Is(err, core.ErrPathNotFound) {
		t.Errorf("all walls: want ErrPathNotFound, got %v", err)
	}
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithMaxDistance(-1) must panic")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}

func TestDijkstra_BadThresholdPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithInfEdgeThreshold(0) must panic")
		}
	}()
	dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
}

// cheapestByEnumeration brute-forces every simple path start→target and
// returns the minimum cumulative weight.
func cheapestByEnumeration(src core.NeighborSource[string], w core.WeightFunc[string], start, target string) float64 {
	const unseen = -1.0
	best := unseen
	onPath := map[string]bool{}
	var walk func(v string, sum float64)
	walk = func(v string, sum float64) {
		if v == target {
			if best == unseen || sum < best {
				best = sum
			}
			return
		}
		onPath[v] = true
		for _, nbr := range src.Neighbors(v) {
			if !onPath[nbr] {
				walk(nbr, sum+w(v, nbr))
			}
		}
		delete(onPath, v)
	}
	walk(start, 0)

	return best
}
