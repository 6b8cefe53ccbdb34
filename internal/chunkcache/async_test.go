package chunkcache

import (
	"testing"
	"time"
)

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestAsyncLoaderGeneratesRequestedChunk(t *testing.T) {
	c := New(testGenerator())
	al := NewAsyncLoader(c, 0)
	defer al.Close()

	coord := Coord{CI: 3, CJ: -1}
	if !al.RequestAsync(coord) {
		t.Fatal("RequestAsync should accept a coordinate not yet cached or in flight")
	}

	waitUntil(t, time.Second, func() bool {
		_, ok := c.Get(coord)
		return ok
	})

	got, ok := c.Get(coord)
	if !ok || got.CI != coord.CI || got.CJ != coord.CJ {
		t.Fatalf("Get(%+v) = %+v, %v", coord, got, ok)
	}
}

func TestAsyncLoaderDedupesInFlightRequests(t *testing.T) {
	c := New(testGenerator())
	al := NewAsyncLoader(c, 0)
	defer al.Close()

	coord := Coord{CI: 0, CJ: 0}
	al.RequestAsync(coord)
	if al.RequestAsync(coord) {
		t.Error("a second RequestAsync for the same in-flight coordinate should be rejected")
	}

	waitUntil(t, time.Second, func() bool {
		_, ok := c.Get(coord)
		return ok
	})
}

func TestAsyncLoaderIgnoresAlreadyCached(t *testing.T) {
	c := New(testGenerator())
	coord := Coord{CI: 5, CJ: 5}
	c.Request(coord)
	c.Step(0)

	al := NewAsyncLoader(c, 0)
	defer al.Close()

	if al.RequestAsync(coord) {
		t.Error("RequestAsync should reject a coordinate already cached")
	}
	if al.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", al.Pending())
	}
}

func TestRequestAreaAsyncCountsNewlyAccepted(t *testing.T) {
	c := New(testGenerator())
	al := NewAsyncLoader(c, 0)
	defer al.Close()

	coords := ChunksAround(Coord{}, 1, 1)
	n := al.RequestAreaAsync(coords)
	if n != len(coords) {
		t.Fatalf("RequestAreaAsync accepted %d, want %d", n, len(coords))
	}

	waitUntil(t, 2*time.Second, func() bool { return c.Len() == len(coords) })
}
