// Package render implements the renderer contract (§6) and the screen-
// space geometry a caller needs to place generated cells: a Viewport that
// converts chunk-relative cell coordinates to pixel positions, an Event
// stream read from GLFW input, and a GLFWRenderer that draws catalog
// sprites as textured quads. Grounded on the teacher's
// internal/graphics/camera.go (a small struct holding projection
// parameters, no global state) and internal/graphics/shader.go (shader
// compilation and uniform setters), adapted from the teacher's 3D
// perspective camera to the 2D screen-space placement
// original_source/demo/python/perlin.py's blit function performs.
package render

// Viewport converts chunk/cell coordinates into screen pixel positions,
// centered on the viewer's world position (in pixels) at the screen's
// midpoint — the same placement original_source/demo/python/perlin.py's
// blit uses: screen_mid + (chunk*CHUNK_SIZE + local)*tileSize - viewerPos.
type Viewport struct {
	ScreenWidth, ScreenHeight int
	TileSize                  int
	ChunkSize                 int
	ViewerX, ViewerY          float64 // viewer position, in pixels
}

// CellScreenPos returns the top-left pixel position at which the cell
// (cellI, cellJ) of chunk (chunkI, chunkJ) should be drawn.
func (v Viewport) CellScreenPos(chunkI, chunkJ, cellI, cellJ int) (x, y float64) {
	x = float64(v.ScreenWidth)/2 + float64(chunkJ*v.ChunkSize+cellJ)*float64(v.TileSize) - v.ViewerX
	y = float64(v.ScreenHeight)/2 + float64(chunkI*v.ChunkSize+cellI)*float64(v.TileSize) - v.ViewerY
	return x, y
}

// Resize updates the viewport's screen dimensions (the resize control in
// the renderer contract's Event stream).
func (v *Viewport) Resize(width, height int) {
	v.ScreenWidth = width
	v.ScreenHeight = height
}

// Move translates the viewer position by (dCellI, dCellJ) cells, matching
// the h/j/k/l step-by-one-cell controls.
func (v *Viewport) Move(dCellI, dCellJ int) {
	v.ViewerX += float64(dCellJ * v.TileSize)
	v.ViewerY += float64(dCellI * v.TileSize)
}
