// Package chunkcache implements the Chunk Cache & Loader (§4.8): a mapping
// from chunk coordinate to generated cells, plus a FIFO queue of pending
// coordinates drained one-per-step so generation work is amortized across
// render frames. Grounded on the teacher's internal/world/chunk_store.go
// (RWMutex-guarded coordinate map, never-regenerate invariant) and
// internal/world/chunk_streamer.go (pending-set dedup, request/step shape).
// Cache is mutex-guarded so it can be shared across goroutines; async.go
// adds a worker-pool loader on top of it.
package chunkcache

import (
	"sync"

	"punyworld/internal/chunkgen"
	"punyworld/internal/profiling"
)

// Coord is a chunk coordinate (ci, cj).
type Coord struct {
	CI, CJ int
}

// Cache tracks generated chunks and a FIFO queue of coordinates awaiting
// generation (§4.8 State). It is safe for concurrent use: Lookups never
// block on generation (§4.8 Invariants), and Request/Step are internally
// synchronized so a renderer goroutine and a loader goroutine can share one
// Cache.
type Cache struct {
	gen *chunkgen.Generator

	mu     sync.RWMutex
	chunks map[Coord]chunkgen.Chunk
	queue  []Coord
	queued map[Coord]struct{} // membership test for "already queued"
}

// New creates a Cache backed by gen for on-demand chunk generation.
func New(gen *chunkgen.Generator) *Cache {
	return &Cache{
		gen:    gen,
		chunks: make(map[Coord]chunkgen.Chunk),
		queued: make(map[Coord]struct{}),
	}
}

// ChunksAround implements chunks_around: every coordinate within a
// (2*hChunks+1) x (2*wChunks+1) window centered at the chunk containing
// worldPos, in row-major (ci, then cj) order.
func ChunksAround(worldPos Coord, hChunks, wChunks int) []Coord {
	out := make([]Coord, 0, (2*hChunks+1)*(2*wChunks+1))
	for di := -hChunks; di <= hChunks; di++ {
		for dj := -wChunks; dj <= wChunks; dj++ {
			out = append(out, Coord{CI: worldPos.CI + di, CJ: worldPos.CJ + dj})
		}
	}
	return out
}

// Get returns the cached chunk at coord, if generated. It never blocks on
// generation; a miss means the caller should Request it and render it as
// empty in the meantime (§4.8 Invariants).
func (c *Cache) Get(coord Coord) (chunkgen.Chunk, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ch, ok := c.chunks[coord]
	return ch, ok
}

// Request appends coord to the pending queue unless it is already cached or
// already queued (§4.8 Invariants: a chunk appears in the queue at most
// once; once generated, a chunk is never regenerated).
func (c *Cache) Request(coord Coord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, cached := c.chunks[coord]; cached {
		return
	}
	if _, queued := c.queued[coord]; queued {
		return
	}
	c.queued[coord] = struct{}{}
	c.queue = append(c.queue, coord)
}

// Step pops one coordinate from the queue, generates it, and inserts it
// into the cache, returning the generated coordinate. It reports false if
// the queue was empty. One call per render frame amortizes generation cost
// (§4.8 step()).
func (c *Cache) Step(z float64) (Coord, bool) {
	defer profiling.Track("chunkcache.Step")()

	c.mu.Lock()
	if len(c.queue) == 0 {
		c.mu.Unlock()
		return Coord{}, false
	}
	coord := c.queue[0]
	c.queue = c.queue[1:]
	delete(c.queued, coord)
	c.mu.Unlock()

	// Generation itself runs outside the lock: it only reads the
	// immutable Generator inputs, and holding the lock here would block
	// concurrent Gets for the duration of noise sampling.
	chunk := c.gen.GenerateChunk(coord.CI, coord.CJ, z)

	c.mu.Lock()
	if _, already := c.chunks[coord]; !already {
		c.chunks[coord] = chunk
	}
	c.mu.Unlock()

	return coord, true
}

// QueueLen reports the number of coordinates currently pending.
func (c *Cache) QueueLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.queue)
}

// Len reports the number of generated chunks currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.chunks)
}
