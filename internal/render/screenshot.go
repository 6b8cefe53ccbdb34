package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// SaveScreenshot reads the current framebuffer's pixels and writes them
// as a PNG to path, mirroring original_source/demo/python/perlin.py's
// take_screenshot (read the screen surface, save it, flash a border) —
// the border flash is a presentation detail left to the caller.
func SaveScreenshot(width, height int, path string) error {
	pix := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// OpenGL's origin is bottom-left; flip rows into image.Image's
	// top-left-origin convention.
	stride := width * 4
	for y := 0; y < height; y++ {
		srcRow := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*stride:(y+1)*stride], srcRow)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: failed to create screenshot file %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: failed to encode screenshot: %w", err)
	}
	return nil
}
