// Command punyworld-demo is the runnable terrain-path demo: it loads a
// tileset manifest, builds a noise-backed chunk generator, streams chunks
// around a viewer through the chunk cache, and draws the visible window
// with the GLFW renderer. Grounded on the teacher's cmd/mini-mc/main.go
// (runtime.LockOSThread in init, glfw.Init/Terminate bracketing a window
// setup call and a game loop call).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"punyworld/internal/asset"
	"punyworld/internal/catalog"
	"punyworld/internal/chunkcache"
	"punyworld/internal/chunkgen"
	"punyworld/internal/config"
	"punyworld/internal/landtype"
	"punyworld/internal/noise"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	manifestPath := flag.String("manifest", "punyworld.json", "path to the tileset manifest")
	seed := flag.Int64("seed", 1, "world seed")
	flag.Parse()

	cat, err := catalog.Load(*manifestPath, asset.SheetCutter{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "punyworld-demo:", err)
		os.Exit(1)
	}

	gen := &chunkgen.Generator{
		TerrainNoise: noise.NewStack([]noise.Layer{
			{Amplitude: 1.0, Octaves: 4, Seed: *seed},
			{Amplitude: 0.3, Octaves: 2, Seed: *seed + 1},
		}, config.GetUseAuthenticNoise()),
		BiomeNoise: noise.NewStack([]noise.Layer{
			{Amplitude: 1.0, Octaves: 3, Seed: *seed + 100},
		}, config.GetUseAuthenticNoise()),
		ForestThreshold: config.GetForestThreshold(),
		Heights:         landtype.DefaultHeights,
		Seed:            *seed,
		Catalog:         cat,
	}
	cache := chunkcache.New(gen)

	if err := glfw.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "punyworld-demo:", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		fmt.Fprintln(os.Stderr, "punyworld-demo:", err)
		os.Exit(1)
	}

	runDemo(window, cache, cat)
}
