package asset

import (
	"fmt"

	"punyworld/internal/catalog"
)

// SheetCutter implements catalog.Cutter by decoding (and caching) the
// named sprite sheet and returning the sub-image for the requested tile
// id, as a row-major grid of tileWidth x tileHeight cells with columns
// per row.
type SheetCutter struct{}

// Cut loads source (cached across calls) and returns the sub-image at
// (id / columns, id % columns).
func (SheetCutter) Cut(source string, id, tileWidth, tileHeight, columns int) (catalog.Sprite, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("asset: columns must be positive, got %d", columns)
	}
	sh, err := Load(source)
	if err != nil {
		return nil, err
	}

	row := id / columns
	col := id % columns

	maxRow := sh.Bounds().Dy() / tileHeight
	if row >= maxRow {
		return nil, fmt.Errorf("asset: tile id %d (row %d) exceeds sheet %q's %d rows", id, row, source, maxRow)
	}

	sprite := sh.Tile(row, col, tileWidth, tileHeight)
	return sprite, nil
}
