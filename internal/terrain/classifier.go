// Package terrain implements the Corner Classifier (§4.5) and Forest
// Stamper (§4.6): the literal lookup tables that turn land-type corner
// codes and 3x3 neighborhood masks into tile names. Grounded on
// original_source/demo/python/perlin.py's TILEMAP/FOREST_TILEMAP and
// generate_chunk.
package terrain

import (
	"math/rand"

	"punyworld/internal/landtype"
)

// digit maps a LandType's single-character code to a base-3 digit, per
// §9's packing suggestion (a 4-code packs into a base-3 byte, up to 81
// entries addressable by array instead of map).
func digit(l landtype.LandType) int {
	switch l {
	case landtype.Rock:
		return 0
	case landtype.Grass:
		return 1
	case landtype.Water:
		return 2
	default:
		return 0
	}
}

func cornerIndex(nw, ne, sw, se landtype.LandType) int {
	return digit(nw)*27 + digit(ne)*9 + digit(sw)*3 + digit(se)
}

var cornerTable [81][]Candidate

func init() {
	for key, candidates := range cornerTilemapSource {
		nw := codeToLandType(key[0])
		ne := codeToLandType(key[1])
		sw := codeToLandType(key[2])
		se := codeToLandType(key[3])
		cornerTable[cornerIndex(nw, ne, sw, se)] = candidates
	}
}

func codeToLandType(b byte) landtype.LandType {
	switch b {
	case 'r':
		return landtype.Rock
	case 'g':
		return landtype.Grass
	case 'w':
		return landtype.Water
	default:
		return landtype.Rock
	}
}

// cornerCode rebuilds the 4-character string key (nw+ne+sw+se) for
// diagnostics and test parity with the source's string-keyed table —
// semantic identity is preserved even though lookups go through the
// packed array (§9).
func cornerCode(nw, ne, sw, se landtype.LandType) string {
	return string([]byte{nw.Code(), ne.Code(), sw.Code(), se.Code()})
}

// SpellRed is the reserved fallback marker used when a corner code or
// forest mask is absent from its tilemap (§4.5, §4.6, §7).
const SpellRed = "spell_red"

// ClassifyResult is the Corner Classifier's output for one cell (§4.5).
type ClassifyResult struct {
	Background string
	Foreground string // empty means no foreground
	Miss       bool   // true if the corner code was absent from the tilemap
	Code       string // the 4-character corner code, for diagnostics
}

// ClassifyCorners implements §4.5: maps four corner samples through
// LandHeights, builds the corner code, and chooses uniformly at random
// among the tilemap's candidates. rng must be derived from
// (seed, chunk_coord, cell_index) by the caller for seam determinism
// (§4.7, §9) rather than shared global state.
func ClassifyCorners(nwSample, neSample, swSample, seSample float64, heights landtype.Heights, rng *rand.Rand) ClassifyResult {
	nw := landtype.Classify(nwSample, heights)
	ne := landtype.Classify(neSample, heights)
	sw := landtype.Classify(swSample, heights)
	se := landtype.Classify(seSample, heights)

	candidates := cornerTable[cornerIndex(nw, ne, sw, se)]
	if len(candidates) == 0 {
		return ClassifyResult{Background: SpellRed, Miss: true, Code: cornerCode(nw, ne, sw, se)}
	}
	chosen := candidates[rng.Intn(len(candidates))]
	return ClassifyResult{Background: chosen.Background, Foreground: chosen.Foreground, Code: cornerCode(nw, ne, sw, se)}
}

// ClassifyLandTypes exposes the four corner land types for callers (the
// Forest Stamper) without re-sampling.
func ClassifyLandTypes(nwSample, neSample, swSample, seSample float64, heights landtype.Heights) (nw, ne, sw, se landtype.LandType) {
	return landtype.Classify(nwSample, heights),
		landtype.Classify(neSample, heights),
		landtype.Classify(swSample, heights),
		landtype.Classify(seSample, heights)
}
