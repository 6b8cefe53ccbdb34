package main

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"punyworld/internal/catalog"
	"punyworld/internal/chunkcache"
	"punyworld/internal/chunkgen"
	"punyworld/internal/config"
	"punyworld/internal/profiling"
	"punyworld/internal/render"
)

// runDemo is the main game loop: one tick reads input, advances the
// viewer, keeps the chunk loader fed, and draws the visible window.
// Grounded on the teacher's cmd/mini-mc/main.go runGameLoop (per-frame
// profiling.ResetFrame, an FPS counter sampled once a second, swap + poll
// at the end of the frame), with chunk generation handed to a
// chunkcache.AsyncLoader worker pool instead of the teacher's async mesh
// pipeline so a fast-moving viewer doesn't stall the render loop on noise
// sampling.
func runDemo(window *glfw.Window, cache *chunkcache.Cache, cat *catalog.Catalog) {
	if err := gl.Init(); err != nil {
		fmt.Println("punyworld-demo: gl.Init:", err)
		return
	}
	gl.ClearColor(0, 0, 0, 1)

	loader := chunkcache.NewAsyncLoader(cache, 0)
	defer loader.Close()

	fbW, fbH := window.GetFramebufferSize()
	viewport := render.Viewport{ScreenWidth: fbW, ScreenHeight: fbH, TileSize: 32, ChunkSize: chunkgen.ChunkSize}

	renderer, err := render.NewGLFWRenderer(fbW, fbH, func() error {
		window.SwapBuffers()
		glfw.PollEvents()
		return nil
	})
	if err != nil {
		fmt.Println("punyworld-demo: renderer init:", err)
		return
	}
	defer renderer.Close()

	input := render.NewGLFWInput(window)

	frames := 0
	lastFPSCheck := time.Now()
	tick := 0

	for !window.ShouldClose() {
		profiling.ResetFrame()

		for {
			ev, ok := input.ReadInput()
			if !ok {
				break
			}
			switch ev.Kind {
			case render.EventQuit:
				window.SetShouldClose(true)
			case render.EventMove:
				applyMove(&viewport, ev.Direction)
			case render.EventToggleDebug:
				config.ToggleDebugOverlay()
			case render.EventScreenshot:
				name := fmt.Sprintf("screenshot-%d.png", time.Now().UnixNano())
				if err := render.SaveScreenshot(viewport.ScreenWidth, viewport.ScreenHeight, name); err != nil {
					fmt.Println("punyworld-demo: screenshot:", err)
				} else {
					fmt.Println("punyworld-demo: saved", name)
				}
			case render.EventResize:
				viewport.Resize(ev.Width, ev.Height)
				renderer.Resize(ev.Width, ev.Height)
			}
		}

		viewerChunk := chunkcache.Coord{
			CI: int(viewport.ViewerY) / (viewport.TileSize * viewport.ChunkSize),
			CJ: int(viewport.ViewerX) / (viewport.TileSize * viewport.ChunkSize),
		}
		loader.RequestAreaAsync(chunkcache.ChunksAround(viewerChunk, config.GetViewDistance(), config.GetViewDistance()))

		gl.Clear(gl.COLOR_BUFFER_BIT)
		drawVisibleChunks(renderer, cache, cat, viewport, viewerChunk, config.GetViewDistance(), tick)

		renderer.PresentFrame()

		tick++
		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			if config.GetDebugOverlay() {
				fmt.Println("punyworld-demo: FPS", frames, "| chunks cached", cache.Len(), "| pending", loader.Pending(), "|", profiling.TopN(3))
			}
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}

func applyMove(v *render.Viewport, dir catalog.Direction) {
	switch dir {
	case catalog.North:
		v.Move(-1, 0)
	case catalog.South:
		v.Move(1, 0)
	case catalog.East:
		v.Move(0, 1)
	case catalog.West:
		v.Move(0, -1)
	}
}

func drawVisibleChunks(r *render.GLFWRenderer, cache *chunkcache.Cache, cat *catalog.Catalog, v render.Viewport, center chunkcache.Coord, radius, tick int) {
	for _, coord := range chunkcache.ChunksAround(center, radius, radius) {
		chunk, ok := cache.Get(coord)
		if !ok {
			continue // missing chunks render as empty
		}
		for _, cell := range chunk.Cells {
			x, y := v.CellScreenPos(coord.CI, coord.CJ, cell.I, cell.J)
			if cell.Background != nil {
				_ = r.DrawSprite(spriteAt(cat, cell.Background, tick), int(x), int(y), v.TileSize, v.TileSize)
			}
			if cell.Foreground != nil {
				_ = r.DrawSprite(spriteAt(cat, cell.Foreground, tick), int(x), int(y), v.TileSize, v.TileSize)
			}
		}
	}
}

// spriteAt resolves the sprite to draw for tile at the given tick,
// restoring the tile's current animation frame (catalog.Animation.StepAt)
// for animated tiles instead of always drawing their base sprite.
func spriteAt(cat *catalog.Catalog, tile *catalog.Tile, tick int) catalog.Sprite {
	if !tile.Animated {
		return tile.Sprite
	}
	steps, err := cat.GetAnimationSteps(tile.ID)
	if err != nil {
		return tile.Sprite
	}
	anim := catalog.Animation{Steps: steps}
	return anim.StepAt(tick).Sprite
}
