package config

import "sync"

// RenderSettings holds the viewer-facing chunk streaming and frame-rate
// configuration. Follows the teacher's mutex-guarded global settings
// pattern rather than threading a config object through every call.
type RenderSettings struct {
	mu             sync.RWMutex
	viewDistance   int // radius in chunks kept loaded around the viewer
	fpsLimit       int // 0 means uncapped
	debugOverlay   bool
	showAverageTile bool // average-color placeholder for non-collapsed WFC cells
}

var globalRenderSettings = &RenderSettings{
	viewDistance:    6,
	fpsLimit:        60,
	debugOverlay:    false,
	showAverageTile: false,
}

// GetViewDistance returns the current chunk streaming radius.
func GetViewDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.viewDistance
}

// SetViewDistance sets the chunk streaming radius, clamped to a sane range.
func SetViewDistance(radius int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if radius < 1 {
		radius = 1
	}
	if radius > 32 {
		radius = 32
	}
	globalRenderSettings.viewDistance = radius
}

// GetFPSLimit returns the configured frame-rate cap (0 means uncapped).
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame-rate cap; 0 disables it.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}
	globalRenderSettings.fpsLimit = limit
}

// GetDebugOverlay returns whether the FPS/chunk-count debug panel is shown.
func GetDebugOverlay() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.debugOverlay
}

// ToggleDebugOverlay flips the debug panel visibility.
func ToggleDebugOverlay() {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.debugOverlay = !globalRenderSettings.debugOverlay
}

// GetShowAverageTile returns whether non-collapsed WFC cells render as the
// averaged color of their remaining options instead of an entropy label.
func GetShowAverageTile() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showAverageTile
}

// SetShowAverageTile sets the average-tile preview mode.
func SetShowAverageTile(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showAverageTile = enabled
}
