package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestSheet writes a tileWidth*columns x tileHeight*rows PNG where
// tile (row, col) is filled with a distinct solid color, so cut sub-images
// can be checked for their expected color.
func writeTestSheet(t *testing.T, tileWidth, tileHeight, columns, rows int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, tileWidth*columns, tileHeight*rows))
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			c := color.RGBA{R: uint8(row * 40), G: uint8(col * 40), B: 200, A: 255}
			rect := image.Rect(col*tileWidth, row*tileHeight, (col+1)*tileWidth, (row+1)*tileHeight)
			for y := rect.Min.Y; y < rect.Max.Y; y++ {
				for x := rect.Min.X; x < rect.Max.X; x++ {
					img.Set(x, y, c)
				}
			}
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestSheetCutterExtractsCorrectTile(t *testing.T) {
	path := writeTestSheet(t, 4, 4, 3, 2)
	cutter := SheetCutter{}

	// id 4 in a 3-column sheet is row 1, col 1.
	sprite, err := cutter.Cut(path, 4, 4, 4, 3)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	img, ok := sprite.(image.Image)
	if !ok {
		t.Fatalf("sprite is not an image.Image: %T", sprite)
	}
	r, g, b, _ := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	wantR, wantG, wantB := uint32(40*257), uint32(40*257), uint32(200*257)
	if r != wantR || g != wantG || b != wantB {
		t.Errorf("tile color = (%d,%d,%d), want (%d,%d,%d)", r, g, b, wantR, wantG, wantB)
	}
}

func TestSheetCutterRejectsOutOfRangeRow(t *testing.T) {
	path := writeTestSheet(t, 4, 4, 3, 2)
	cutter := SheetCutter{}
	if _, err := cutter.Cut(path, 100, 4, 4, 3); err == nil {
		t.Error("expected an error for a tile id beyond the sheet's rows")
	}
}

func TestSheetCutterRejectsZeroColumns(t *testing.T) {
	cutter := SheetCutter{}
	if _, err := cutter.Cut("unused.png", 0, 4, 4, 0); err == nil {
		t.Error("expected an error for columns <= 0")
	}
}

func TestLoadCachesBySourcePath(t *testing.T) {
	path := writeTestSheet(t, 2, 2, 1, 1)
	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a != b {
		t.Error("Load should return the cached *Sheet on repeated calls for the same path")
	}
}
