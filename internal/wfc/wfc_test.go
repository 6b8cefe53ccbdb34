package wfc

import (
	"testing"

	"punyworld/internal/catalog"
)

func ptr(s string) *string { return &s }

// S6: a 2x1 grid with T = {A, B} where A.east = "x" and B.west = "x". B.east
// and A.west are both "other", so they match too and the inputs are
// symmetric: [A, B] and [B, A] are both valid solutions and both accepted.
func TestS6TwoByOneGrid(t *testing.T) {
	tiles := map[string]*catalog.Tile{
		"A": {Name: "A", ID: 0, East: ptr("x"), West: ptr("other"), North: ptr("other"), South: ptr("other")},
		"B": {Name: "B", ID: 1, West: ptr("x"), East: ptr("other"), North: ptr("other"), South: ptr("other")},
	}
	cat := &catalog.Catalog{TilesByName: tiles}
	weights := map[string]float64{"A": 1, "B": 1}

	for seed := int64(0); seed < 20; seed++ {
		s := New(cat, []string{"A", "B"}, weights, 2, 1, false, seed)
		cells, _, err := s.Solve(1000)
		if err != nil {
			t.Fatalf("seed %d: Solve failed: %v", seed, err)
		}
		left, right := cells[0], cells[1]
		if len(left.Options) != 1 || len(right.Options) != 1 {
			t.Fatalf("seed %d: not fully collapsed: %+v %+v", seed, left, right)
		}
		validOrder := (left.Options[0] == "A" && right.Options[0] == "B") ||
			(left.Options[0] == "B" && right.Options[0] == "A")
		if !validOrder {
			t.Fatalf("seed %d: got (%s, %s), want a compatible east/west pair", seed, left.Options[0], right.Options[0])
		}
		// Whichever order was chosen, the edge constraint must actually
		// hold: the east tile's own west-edge compatibility is implied by
		// construction here, so just confirm the expected pairing when
		// A lands on the left.
		if left.Options[0] == "A" && right.Options[0] != "B" {
			t.Fatalf("seed %d: A on the left must pair with B on the right", seed)
		}
	}
}

// Property 9: WFC constraint satisfaction on a larger synthetic tileset.
func TestConstraintSatisfaction(t *testing.T) {
	// Three tiles forming a simple horizontal chain: A-B compatible via
	// "ab", B-C compatible via "bc"; vertical edges left permissive so
	// only horizontal propagation is exercised.
	tiles := map[string]*catalog.Tile{
		"A": {Name: "A", ID: 0, East: ptr("ab"), West: ptr("none"), North: ptr("open"), South: ptr("open")},
		"B": {Name: "B", ID: 1, West: ptr("ab"), East: ptr("bc"), North: ptr("open"), South: ptr("open")},
		"C": {Name: "C", ID: 2, West: ptr("bc"), East: ptr("none"), North: ptr("open"), South: ptr("open")},
	}
	cat := &catalog.Catalog{TilesByName: tiles}
	weights := map[string]float64{"A": 1, "B": 1, "C": 1}

	for seed := int64(0); seed < 10; seed++ {
		s := New(cat, []string{"A", "B", "C"}, weights, 4, 3, true, seed)
		cells, _, err := s.Solve(2000)
		if err != nil {
			t.Fatalf("seed %d: Solve failed: %v", seed, err)
		}
		for i := 0; i < s.H; i++ {
			for j := 0; j < s.W; j++ {
				cur := cells[i*s.W+j]
				if len(cur.Options) != 1 {
					t.Fatalf("seed %d: cell (%d,%d) not collapsed: %+v", seed, i, j, cur)
				}
				curTile := tiles[cur.Options[0]]
				if j+1 < s.W {
					east := cells[i*s.W+j+1]
					eastTile := tiles[east.Options[0]]
					ce, _ := curTile.Edge(catalog.East)
					ew, _ := eastTile.Edge(catalog.West)
					if ce != ew {
						t.Errorf("seed %d: (%d,%d).east=%q != (%d,%d).west=%q", seed, i, j, ce, i, j+1, ew)
					}
				}
			}
		}
	}
}

// Property 10: option monotonicity — across one runOnce pass, the
// collected history of a cell's option-set size never increases as a
// result of propagation.
func TestOptionMonotonicity(t *testing.T) {
	tiles := map[string]*catalog.Tile{
		"A": {Name: "A", ID: 0, East: ptr("ab"), West: ptr("none"), North: ptr("open"), South: ptr("open")},
		"B": {Name: "B", ID: 1, West: ptr("ab"), East: ptr("none"), North: ptr("open"), South: ptr("open")},
	}
	cat := &catalog.Catalog{TilesByName: tiles}
	weights := map[string]float64{"A": 1, "B": 1}
	s := New(cat, []string{"A", "B"}, weights, 3, 3, false, 7)

	cells := s.newGrid()
	sizes := make([]int, len(cells))
	for i := range cells {
		sizes[i] = len(cells[i].Options)
	}

	s.runOnce(cells)

	for i := range cells {
		// We only have before/after snapshots here (not every
		// intermediate step), but monotonicity across the whole pass
		// implies the final size is <= the initial size for every cell.
		if len(cells[i].Options) > sizes[i] {
			t.Errorf("cell %d options grew from %d to %d", i, sizes[i], len(cells[i].Options))
		}
	}
}

// Property 11: entropy decrease — shrinking options to 1 must zero the
// entropy, and shrinking to >=2 options must strictly lower it (information
// entropy with equal weights: log2(3), then 1, then 0).
func TestEntropyDecreaseOnShrink(t *testing.T) {
	tiles := map[string]*catalog.Tile{
		"A": {Name: "A", ID: 0},
		"B": {Name: "B", ID: 1},
		"C": {Name: "C", ID: 2},
	}
	cat := &catalog.Catalog{TilesByName: tiles}
	weights := map[string]float64{"A": 1, "B": 1, "C": 1}
	s := New(cat, []string{"A", "B", "C"}, weights, 1, 1, true, 1)

	before := s.entropyOf([]string{"A", "B", "C"})
	afterShrink := s.entropyOf([]string{"A", "B"})
	afterCollapse := s.entropyOf([]string{"A"})

	if !(afterShrink < before) {
		t.Errorf("entropy did not decrease on shrink: before=%v after=%v", before, afterShrink)
	}
	if afterCollapse != 0 {
		t.Errorf("entropy of a single-option cell = %v, want 0", afterCollapse)
	}
}
