// Package chunkgen implements the Chunk Generator (§4.7): it materializes
// an NxN chunk of cells from a terrain noise stack, a biome noise stack,
// the Corner Classifier, and the Forest Stamper, with seam-safe sampling
// and per-cell deterministic randomness. Grounded on
// original_source/demo/python/perlin.py's generate_chunk and the
// teacher's internal/world/generator.go structuring (a small struct
// wrapping noise parameters with a PopulateChunk-shaped entry point).
package chunkgen

import (
	"math/rand"

	"punyworld/internal/catalog"
	"punyworld/internal/landtype"
	"punyworld/internal/noise"
	"punyworld/internal/profiling"
	"punyworld/internal/terrain"
)

// ChunkSize is CHUNK_SIZE from §3: the default edge length of a chunk.
const ChunkSize = 8

// Cell is one generated grid position within a chunk (§3).
type Cell struct {
	I, J       int
	Background *catalog.Tile
	Foreground *catalog.Tile // nil means no foreground
}

// Chunk is the materialized result of GenerateChunk: a position in chunk
// coordinates and its cells, plus the incomplete-chunk diagnostic from
// §4.5 (a non-fatal marker set when any corner code in the chunk missed
// the corner tilemap). A forest-mask miss stamps spell_red but does not
// set the marker.
type Chunk struct {
	CI, CJ     int
	Cells      []Cell
	Incomplete bool
	BadCode    string // the first missing corner code encountered, if any
}

// Generator holds the immutable inputs shared across every chunk: the two
// noise stacks, the land-height thresholds, the forest gate, the world
// seed (for per-cell RNG derivation), and the tile catalog cells are
// resolved against.
type Generator struct {
	TerrainNoise    *noise.Stack
	BiomeNoise      *noise.Stack
	ForestThreshold float64
	Heights         landtype.Heights
	Seed            int64
	Catalog         *catalog.Catalog
}

// cellRNG derives a seeded RNG from (seed, chunk_coord, cell_index),
// replacing the source's global PRNG so that repeated generation of the
// same chunk — and of the shared boundary between adjacent chunks — is
// byte-identical (§4.7 Seam guarantee, §9 "Global random state").
func cellRNG(seed int64, ci, cj, i, j int) *rand.Rand {
	// A simple avalanching combine; any deterministic mixing would do,
	// but this keeps cells at different (ci,cj,i,j) well separated even
	// for small seeds.
	h := uint64(seed)
	h = h*1000003 + uint64(int64(ci))
	h = h*1000003 + uint64(int64(cj))
	h = h*1000003 + uint64(int64(i))
	h = h*1000003 + uint64(int64(j))
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return rand.New(rand.NewSource(int64(h)))
}

// GenerateChunk implements §4.7. z lets callers sample a third noise axis
// (used for, e.g., animated or layered terrain variants); it defaults to
// 0 in the common case.
func (g *Generator) GenerateChunk(ci, cj int, z float64) Chunk {
	defer profiling.Track("chunkgen.GenerateChunk")()

	originI := ci * ChunkSize
	originJ := cj * ChunkSize

	terrainSize := ChunkSize + 3
	biomeSize := ChunkSize + 2

	terrainVals := make([][]float64, terrainSize)
	for ii := 0; ii < terrainSize; ii++ {
		row := make([]float64, terrainSize)
		y := float64(originI+ii) / ChunkSize
		for jj := 0; jj < terrainSize; jj++ {
			x := float64(originJ+jj) / ChunkSize
			row[jj] = g.TerrainNoise.Sample(y, x, z)
		}
		terrainVals[ii] = row
	}

	biomeVals := make([][]float64, biomeSize)
	for ii := 0; ii < biomeSize; ii++ {
		row := make([]float64, biomeSize)
		y := float64(originI+ii) / ChunkSize
		for jj := 0; jj < biomeSize; jj++ {
			x := float64(originJ+jj) / ChunkSize
			row[jj] = g.BiomeNoise.Sample(y, x, z)
		}
		biomeVals[ii] = row
	}

	quad := func(a, b int) (nw, ne, sw, se landtype.LandType) {
		return terrain.ClassifyLandTypes(terrainVals[a][b], terrainVals[a][b+1], terrainVals[a+1][b], terrainVals[a+1][b+1], g.Heights)
	}
	biome := func(a, b int) float64 { return biomeVals[a][b] }

	cells := make([]Cell, 0, ChunkSize*ChunkSize)
	chunk := Chunk{CI: ci, CJ: cj}

	for i := 1; i <= ChunkSize; i++ {
		for j := 1; j <= ChunkSize; j++ {
			rng := cellRNG(g.Seed, ci, cj, i, j)

			classified := terrain.ClassifyCorners(terrainVals[i][j], terrainVals[i][j+1], terrainVals[i+1][j], terrainVals[i+1][j+1], g.Heights, rng)
			if classified.Miss && !chunk.Incomplete {
				chunk.Incomplete = true
				chunk.BadCode = classified.Code
			}

			fg := classified.Foreground
			forestRes := terrain.StampForest(i, j, g.ForestThreshold, quad, biome, rng)
			if forestRes.Stamped {
				fg = forestRes.Foreground
			}

			cell := Cell{I: i - 1, J: j - 1}
			if bgTile, ok := g.Catalog.TilesByName[classified.Background]; ok {
				cell.Background = bgTile
			}
			if fg != "" {
				if fgTile, ok := g.Catalog.TilesByName[fg]; ok {
					cell.Foreground = fgTile
				}
			}
			cells = append(cells, cell)
		}
	}

	chunk.Cells = cells
	return chunk
}
