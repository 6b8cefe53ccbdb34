package terrain

import (
	"math/rand"

	"punyworld/internal/landtype"
)

func maskIndex(mask [9]bool) int {
	idx := 0
	for _, b := range mask {
		idx <<= 1
		if b {
			idx |= 1
		}
	}
	return idx
}

var forestTable [512][]string

func init() {
	for key, candidates := range forestTilemapSource {
		if len(key) != 9 {
			panic("terrain: forest tilemap key must be 9 characters: " + key)
		}
		idx := 0
		for i := 0; i < 9; i++ {
			idx <<= 1
			if key[i] == '1' {
				idx |= 1
			}
		}
		forestTable[idx] = candidates
	}
}

// ForestResult is the Forest Stamper's output for one cell (§4.6).
type ForestResult struct {
	Foreground string
	Stamped    bool
	Miss       bool // true if the mask was absent from the forest tilemap
}

// QuadLandType classifies the land types at the four corners of the cell
// whose NW corner is the terrain sample at (a, b), matching the quad
// shape the Corner Classifier itself uses.
type QuadLandType func(a, b int) (nw, ne, sw, se landtype.LandType)

// BiomeSample returns the biome-noise value at grid point (a, b).
type BiomeSample func(a, b int) float64

// StampForest implements §4.6: for each of the 9 positions in the 3x3
// neighborhood centered at (i, j), the bit is 1 iff the biome noise
// clears forestThreshold and the quad rooted there is a uniform GRASS or
// ROCK block. If the center bit is 0 the foreground is left unchanged.
// Otherwise the row-major mask (NW, N, NE, W, C, E, SW, S, SE) is looked
// up in the forest tilemap and a candidate chosen uniformly at random via
// rng (caller-seeded per (seed, chunk_coord, cell_index), same as the
// Corner Classifier).
func StampForest(i, j int, forestThreshold float64, quad QuadLandType, biome BiomeSample, rng *rand.Rand) ForestResult {
	offsets := [9][2]int{
		{i - 1, j - 1}, {i - 1, j}, {i - 1, j + 1},
		{i, j - 1}, {i, j}, {i, j + 1},
		{i + 1, j - 1}, {i + 1, j}, {i + 1, j + 1},
	}

	var mask [9]bool
	for k, off := range offsets {
		a, b := off[0], off[1]
		nw, ne, sw, se := quad(a, b)
		uniform := nw == ne && ne == sw && sw == se
		valid := nw == landtype.Grass || nw == landtype.Rock
		mask[k] = biome(a, b) > forestThreshold && uniform && valid
	}

	if !mask[4] {
		return ForestResult{}
	}

	candidates := forestTable[maskIndex(mask)]
	if len(candidates) == 0 {
		return ForestResult{Foreground: SpellRed, Stamped: true, Miss: true}
	}
	return ForestResult{Foreground: candidates[rng.Intn(len(candidates))], Stamped: true}
}
