// Package asset decodes sprite-sheet images and cuts them into the
// per-tile and per-animation-step sprites the catalog loader asks for.
// Grounded on the teacher's internal/graphics/texture_util.go (decode via
// the standard image package, convert to a draw-friendly RGBA buffer) and
// texture_manager.go (RWMutex-guarded decode cache keyed by source path),
// extended with WebP decoding via gen2brain/webp alongside the stdlib PNG
// decoder, since the catalog manifest's "image.source" may name either.
package asset

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"sync"

	_ "github.com/gen2brain/webp"
)

// Sheet is a decoded sprite sheet ready to be cut into tile-sized
// sub-images.
type Sheet struct {
	img *image.RGBA
}

// Bounds returns the sheet's pixel bounds.
func (s *Sheet) Bounds() image.Rectangle { return s.img.Bounds() }

// Tile returns the sub-image at (row, col) for a grid of tileWidth x
// tileHeight cells, row-major with the given column count.
func (s *Sheet) Tile(row, col, tileWidth, tileHeight int) image.Image {
	origin := s.img.Bounds().Min
	rect := image.Rect(
		origin.X+col*tileWidth, origin.Y+row*tileHeight,
		origin.X+(col+1)*tileWidth, origin.Y+(row+1)*tileHeight,
	)
	return s.img.SubImage(rect)
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Sheet)
)

// Load decodes the sheet at path, converting it to a straight RGBA buffer
// so sub-images can be cut cheaply. Decoded sheets are cached by path.
func Load(path string) (*Sheet, error) {
	cacheMu.RLock()
	if sh, ok := cache[path]; ok {
		cacheMu.RUnlock()
		return sh, nil
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if sh, ok := cache[path]; ok {
		return sh, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to open sprite sheet %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to decode sprite sheet %q: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	sh := &Sheet{img: rgba}
	cache[path] = sh
	return sh, nil
}
