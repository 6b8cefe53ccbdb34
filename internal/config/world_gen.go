package config

import "sync"

// WorldGenSettings holds terrain and WFC generation configuration.
type WorldGenSettings struct {
	mu                sync.RWMutex
	useAuthenticNoise bool
	forestThreshold   float64
	wfcRetryCap       int // 0 means unbounded
}

var globalWorldGenSettings = &WorldGenSettings{
	useAuthenticNoise: true, // prefer the seeded 3D Perlin generator over the hash fallback
	forestThreshold:   0.0,
	wfcRetryCap:       0,
}

// GetUseAuthenticNoise returns whether the seeded 3D Perlin noise stack is
// used in place of the deterministic hash-based fallback.
func GetUseAuthenticNoise() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.useAuthenticNoise
}

// SetUseAuthenticNoise toggles the noise implementation.
func SetUseAuthenticNoise(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.useAuthenticNoise = enabled
}

// GetForestThreshold returns the default biome-noise gate for forest stamping.
func GetForestThreshold() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.forestThreshold
}

// SetForestThreshold sets the default forest stamping threshold.
func SetForestThreshold(threshold float64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.forestThreshold = threshold
}

// GetWFCRetryCap returns the configured retry cap for WFC contradictions.
// 0 means unbounded; callers that need a hard stop should wrap generation
// in their own wall-clock budget instead.
func GetWFCRetryCap() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.wfcRetryCap
}

// SetWFCRetryCap sets the retry cap; 0 disables the cap.
func SetWFCRetryCap(cap int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if cap < 0 {
		cap = 0
	}
	globalWorldGenSettings.wfcRetryCap = cap
}
