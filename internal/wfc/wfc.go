// Package wfc implements the Wave Function Collapse Solver (§4.9): given a
// subset of the tile catalog, a weight map, and grid dimensions, it
// collapses every cell to a single tile consistent with its neighbors'
// edges, restarting from scratch on contradiction. Grounded on
// original_source/demo/python/wave_function_collapse.py (entropy formula,
// collapse/propagate loop, TILE_SUBSET weighting) with Go structure and
// naming drawn from other_examples' wfc-solver.go (Solver type, package-
// level sentinel errors, per-cell Entropy()).
package wfc

import (
	"errors"
	"math"
	"math/rand"

	"punyworld/internal/catalog"
)

// ErrContradiction is returned by Solve when every retry is exhausted
// without reaching a fully collapsed grid.
var ErrContradiction = errors.New("wfc: exceeded retry cap without a consistent solution")

// Cell is one grid position during solving (§4.9 State per cell).
type Cell struct {
	I, J        int
	Options     []string
	IsCollapsed bool
	Entropy     float64
}

// Solver runs Wave Function Collapse over a W x H grid using a subset of
// catalog tiles and their weights.
type Solver struct {
	W, H        int
	cat         *catalog.Catalog
	tileset     []string // T, in insertion order
	tileIndex   map[string]*catalog.Tile
	weights     map[string]float64
	totalWeight float64
	useEntropy  bool
	rng         *rand.Rand
}

// New builds a Solver over tiles (a subset of cat's tiles, by name) with
// the given per-tile weights. Tiles present in weights but absent from
// tiles are ignored; tiles present in tiles but absent from weights get a
// weight of 1. useInformationEntropy selects the Shannon-entropy
// initialization (§4.9 Initialization) over plain option-count entropy.
func New(cat *catalog.Catalog, tiles []string, weights map[string]float64, w, h int, useInformationEntropy bool, seed int64) *Solver {
	s := &Solver{
		W:          w,
		H:          h,
		cat:        cat,
		tileset:    append([]string(nil), tiles...),
		tileIndex:  make(map[string]*catalog.Tile, len(tiles)),
		weights:    make(map[string]float64, len(tiles)),
		useEntropy: useInformationEntropy,
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, name := range tiles {
		weight := 1.0
		if wv, ok := weights[name]; ok {
			weight = wv
		}
		s.weights[name] = weight
		s.totalWeight += weight
		if t, ok := cat.TilesByName[name]; ok {
			s.tileIndex[name] = t
		}
	}
	return s
}

func (s *Solver) entropyOf(options []string) float64 {
	if !s.useEntropy {
		return float64(len(options))
	}
	if len(options) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range options {
		sum += s.weights[o]
	}
	if sum == 0 {
		return 0
	}
	h := 0.0
	for _, o := range options {
		p := s.weights[o] / sum
		if p <= 0 {
			continue
		}
		h -= p * math.Log2(p)
	}
	return h
}

func (s *Solver) newGrid() []Cell {
	cells := make([]Cell, s.W*s.H)
	for i := 0; i < s.H; i++ {
		for j := 0; j < s.W; j++ {
			options := append([]string(nil), s.tileset...)
			cells[i*s.W+j] = Cell{
				I:       i,
				J:       j,
				Options: options,
				Entropy: s.entropyOf(options),
			}
		}
	}
	return cells
}

// Solve runs the main loop (§4.9) until every cell is collapsed or the
// configured retry cap is exhausted. retryCap <= 0 means unbounded.
func (s *Solver) Solve(retryCap int) ([]Cell, int, error) {
	retries := 0
	for {
		retries++
		cells := s.newGrid()
		ok := s.runOnce(cells)
		if ok {
			return cells, retries, nil
		}
		if retryCap > 0 && retries >= retryCap {
			return nil, retries, ErrContradiction
		}
	}
}

// runOnce attempts one full collapse pass; it returns false on
// contradiction (§4.9 Contradiction handling: restart from scratch).
func (s *Solver) runOnce(cells []Cell) bool {
	for {
		idx, found := s.pickMinEntropyCell(cells)
		if !found {
			return true
		}

		stack := []int{idx}
		s.collapse(cells, idx)

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ci, cj := cells[cur].I, cells[cur].J

			for _, nb := range s.neighbors(ci, cj) {
				ni, nj, dir := nb.i, nb.j, nb.dir
				nIdx := ni*s.W + nj
				if cells[nIdx].Entropy == 0 {
					continue
				}

				connectors := s.connectorSet(cells[cur].Options, dir)
				filtered := filterByEdge(s.tileIndex, cells[nIdx].Options, dir.Opposite(), connectors)

				if len(filtered) == len(cells[nIdx].Options) {
					continue
				}
				cells[nIdx].Options = filtered
				cells[nIdx].Entropy = s.entropyOf(filtered)
				if len(filtered) == 0 {
					return false
				}
				stack = append(stack, nIdx)
			}
		}
	}
}

// collapse picks one option from cells[idx].Options with probability
// weight/totalWeight, restricted to the remaining options (§4.9 step 3).
func (s *Solver) collapse(cells []Cell, idx int) {
	c := &cells[idx]
	if len(c.Options) > 0 {
		sum := 0.0
		for _, o := range c.Options {
			sum += s.weights[o]
		}
		r := s.rng.Float64() * sum
		chosen := c.Options[len(c.Options)-1]
		acc := 0.0
		for _, o := range c.Options {
			acc += s.weights[o]
			if r <= acc {
				chosen = o
				break
			}
		}
		c.Options = []string{chosen}
	}
	c.IsCollapsed = true
	c.Entropy = 0
}

// pickMinEntropyCell implements §4.9 steps 1-2: among non-collapsed cells,
// find the minimum entropy and break ties uniformly at random.
func (s *Solver) pickMinEntropyCell(cells []Cell) (int, bool) {
	minEntropy := math.Inf(1)
	var candidates []int
	for i := range cells {
		if cells[i].IsCollapsed {
			continue
		}
		if cells[i].Entropy < minEntropy {
			minEntropy = cells[i].Entropy
			candidates = candidates[:0]
			candidates = append(candidates, i)
		} else if cells[i].Entropy == minEntropy {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

type neighborRef struct {
	i, j int
	dir  catalog.Direction
}

// neighbors returns the in-bounds four neighbors of (i, j) with the
// direction from (i, j) toward each.
func (s *Solver) neighbors(i, j int) []neighborRef {
	candidates := []neighborRef{
		{i - 1, j, catalog.North},
		{i + 1, j, catalog.South},
		{i, j - 1, catalog.West},
		{i, j + 1, catalog.East},
	}
	out := candidates[:0]
	for _, c := range candidates {
		if c.i >= 0 && c.i < s.H && c.j >= 0 && c.j < s.W {
			out = append(out, c)
		}
	}
	return out
}

// connectorSet is { tile.edge(D) | tile in options } (§4.9 step 4).
func (s *Solver) connectorSet(options []string, dir catalog.Direction) map[string]struct{} {
	set := make(map[string]struct{}, len(options))
	for _, name := range options {
		t, ok := s.tileIndex[name]
		if !ok {
			continue
		}
		if edge, defined := t.Edge(dir); defined {
			set[edge] = struct{}{}
		}
	}
	return set
}

// filterByEdge keeps only the options whose edge(dir) is in connectors.
func filterByEdge(tileIndex map[string]*catalog.Tile, options []string, dir catalog.Direction, connectors map[string]struct{}) []string {
	kept := make([]string, 0, len(options))
	for _, name := range options {
		t, ok := tileIndex[name]
		if !ok {
			continue
		}
		edge, defined := t.Edge(dir)
		if !defined {
			continue
		}
		if _, allowed := connectors[edge]; allowed {
			kept = append(kept, name)
		}
	}
	return kept
}
