package chunkcache

import (
	"runtime"
	"sync"

	"punyworld/internal/profiling"
)

// AsyncLoader drains a Cache from a worker pool instead of one Step() per
// frame; cmd/punyworld-demo uses it so chunks around a moving viewer
// materialize without the render loop waiting on noise sampling. Grounded
// on the teacher's internal/world/chunk_streamer.go (job channel sized
// ahead of the pending set, one goroutine per CPU, pending-set membership
// to avoid double-enqueueing a coordinate already in flight).
type AsyncLoader struct {
	cache *Cache
	z     float64

	jobs    chan Coord
	pending map[Coord]struct{}
	mu      sync.Mutex

	wg sync.WaitGroup
}

// NewAsyncLoader starts a worker per CPU pulling coordinates off jobs and
// generating them against cache at depth z. Callers still use cache.Get
// for lookups; AsyncLoader only changes how the queue drains.
func NewAsyncLoader(cache *Cache, z float64) *AsyncLoader {
	al := &AsyncLoader{
		cache:   cache,
		z:       z,
		jobs:    make(chan Coord, 4096),
		pending: make(map[Coord]struct{}),
	}

	workers := max(runtime.NumCPU(), 1)
	al.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go al.worker()
	}
	return al
}

// Close stops accepting new work and waits for in-flight generation to
// finish.
func (al *AsyncLoader) Close() {
	close(al.jobs)
	al.wg.Wait()
}

func (al *AsyncLoader) worker() {
	defer al.wg.Done()
	for coord := range al.jobs {
		al.generate(coord)
		al.mu.Lock()
		delete(al.pending, coord)
		al.mu.Unlock()
	}
}

func (al *AsyncLoader) generate(coord Coord) {
	defer profiling.Track("chunkcache.AsyncLoader.generate")()
	if _, ok := al.cache.Get(coord); ok {
		return
	}
	chunk := al.cache.gen.GenerateChunk(coord.CI, coord.CJ, al.z)

	al.cache.mu.Lock()
	if _, already := al.cache.chunks[coord]; !already {
		al.cache.chunks[coord] = chunk
	}
	al.cache.mu.Unlock()
}

// RequestAsync enqueues coord for background generation unless it is
// already cached or already in flight, mirroring Cache.Request's
// at-most-once queue membership invariant.
func (al *AsyncLoader) RequestAsync(coord Coord) bool {
	if _, cached := al.cache.Get(coord); cached {
		return false
	}

	al.mu.Lock()
	if _, inFlight := al.pending[coord]; inFlight {
		al.mu.Unlock()
		return false
	}
	al.pending[coord] = struct{}{}
	al.mu.Unlock()

	select {
	case al.jobs <- coord:
		return true
	default:
		al.mu.Lock()
		delete(al.pending, coord)
		al.mu.Unlock()
		return false
	}
}

// RequestAreaAsync enqueues every coordinate in coords, returning how many
// were newly accepted.
func (al *AsyncLoader) RequestAreaAsync(coords []Coord) int {
	n := 0
	for _, c := range coords {
		if al.RequestAsync(c) {
			n++
		}
	}
	return n
}

// Pending reports how many coordinates are currently in flight (enqueued
// or being generated by a worker).
func (al *AsyncLoader) Pending() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return len(al.pending)
}
