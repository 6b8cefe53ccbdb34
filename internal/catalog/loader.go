package catalog

import (
	"bytes"
	"encoding/json"
	"os"
)

// Cutter is the asset loader collaborator (out of scope per spec §1,
// specified here only as the interface the catalog needs): given a sheet
// path, a tile id, tile dimensions, and the sheet's column count, it
// returns the sub-image at row id/cols, column id mod cols.
type Cutter interface {
	Cut(source string, id, tileWidth, tileHeight, columns int) (Sprite, error)
}

type imageSpec struct {
	Source     string `json:"source"`
	TileWidth  int    `json:"tile_width"`
	TileHeight int    `json:"tile_height"`
	Columns    int    `json:"columns"`
}

type tileSpec struct {
	ID          int     `json:"id"`
	N           *string `json:"n"`
	E           *string `json:"e"`
	S           *string `json:"s"`
	W           *string `json:"w"`
	X           *string `json:"x"`
	Transparent bool    `json:"transparent"`
	Animation   bool    `json:"animation"`
}

type animationStepSpec struct {
	ID       int `json:"id"`
	Duration int `json:"duration"`
}

type animationSpec struct {
	ID        int                 `json:"id"`
	Animation []animationStepSpec `json:"animation"`
}

type overworldSection struct {
	Image      imageSpec             `json:"image"`
	Tiles      map[string]tileSpec   `json:"tiles"`
	Animations []animationSpec       `json:"animations"`
}

type characterSection struct {
	Image      imageSpec         `json:"image"`
	Animations map[string][]int `json:"animations"`
}

type manifestDoc struct {
	Overworld  *overworldSection           `json:"overworld"`
	Characters map[string]characterSection `json:"characters"`
}

// Load parses a tileset manifest (§6) and builds the immutable catalog,
// following pkg/blockmodel/loader.go's read-then-unmarshal-then-resolve
// shape from the teacher repo. Unknown manifest keys are rejected per
// §4.1's "Fails ... on unknown keys".
func Load(manifestPath string, cutter Cutter) (*Catalog, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, malformed("reading manifest %q: %v", manifestPath, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var doc manifestDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed("parsing manifest %q: %v", manifestPath, err)
	}
	if doc.Overworld == nil {
		return nil, malformed("manifest %q: missing \"overworld\" section", manifestPath)
	}

	img := doc.Overworld.Image
	if img.Source == "" || img.TileWidth <= 0 || img.TileHeight <= 0 || img.Columns <= 0 {
		return nil, malformed("manifest %q: inconsistent or missing sheet dimensions", manifestPath)
	}
	if len(doc.Overworld.Tiles) == 0 {
		return nil, malformed("manifest %q: no tiles defined", manifestPath)
	}

	tilesByName := make(map[string]*Tile, len(doc.Overworld.Tiles))
	seenIDs := make(map[int]string, len(doc.Overworld.Tiles))
	for name, spec := range doc.Overworld.Tiles {
		if other, dup := seenIDs[spec.ID]; dup {
			return nil, malformed("manifest %q: tile id %d used by both %q and %q", manifestPath, spec.ID, other, name)
		}
		seenIDs[spec.ID] = name

		hasFourEdge := spec.N != nil || spec.E != nil || spec.S != nil || spec.W != nil
		hasEightPoint := spec.X != nil
		if !hasFourEdge && !hasEightPoint {
			return nil, malformed("manifest %q: tile %q has neither four-edge nor eight-point edges", manifestPath, name)
		}
		if hasEightPoint && len(*spec.X) != 8 {
			return nil, malformed("manifest %q: tile %q has an x field of length %d, want 8", manifestPath, name, len(*spec.X))
		}

		sprite, err := cutter.Cut(img.Source, spec.ID, img.TileWidth, img.TileHeight, img.Columns)
		if err != nil {
			return nil, malformed("manifest %q: cutting sprite for tile %q: %v", manifestPath, name, err)
		}

		t := &Tile{
			Name:        name,
			ID:          spec.ID,
			Sprite:      sprite,
			North:       spec.N,
			East:        spec.E,
			South:       spec.S,
			West:        spec.W,
			Transparent: spec.Transparent,
			Animated:    spec.Animation,
		}
		if hasEightPoint {
			t.X = *spec.X
		}
		tilesByName[name] = t
	}

	animations := make([]Animation, 0, len(doc.Overworld.Animations))
	for _, a := range doc.Overworld.Animations {
		if len(a.Animation) == 0 {
			return nil, malformed("manifest %q: animation id %d has an empty step sequence", manifestPath, a.ID)
		}
		steps := make([]AnimationStep, 0, len(a.Animation))
		for _, s := range a.Animation {
			sprite, err := cutter.Cut(img.Source, s.ID, img.TileWidth, img.TileHeight, img.Columns)
			if err != nil {
				return nil, malformed("manifest %q: cutting sprite for animation step id %d: %v", manifestPath, s.ID, err)
			}
			steps = append(steps, AnimationStep{ID: s.ID, DurationMS: s.Duration, Sprite: sprite})
		}
		animations = append(animations, Animation{ID: a.ID, Steps: steps})
	}
	for _, a := range animations {
		if _, ok := findTileByID(tilesByName, a.ID); !ok {
			return nil, malformed("manifest %q: animation id %d matches no tile", manifestPath, a.ID)
		}
	}

	characters := make(map[string]Character, len(doc.Characters))
	for name, spec := range doc.Characters {
		cimg := spec.Image
		if cimg.Source == "" || cimg.TileWidth <= 0 || cimg.TileHeight <= 0 || cimg.Columns <= 0 {
			return nil, malformed("manifest %q: character %q has inconsistent sheet dimensions", manifestPath, name)
		}
		char := make(Character, len(spec.Animations))
		for action, frameIDs := range spec.Animations {
			frames := make([]Sprite, 0, len(frameIDs))
			for _, id := range frameIDs {
				sprite, err := cutter.Cut(cimg.Source, id, cimg.TileWidth, cimg.TileHeight, cimg.Columns)
				if err != nil {
					return nil, malformed("manifest %q: character %q action %q: %v", manifestPath, name, action, err)
				}
				frames = append(frames, sprite)
			}
			char[action] = frames
		}
		characters[name] = char
	}

	return &Catalog{TilesByName: tilesByName, Animations: animations, Characters: characters}, nil
}

func findTileByID(tiles map[string]*Tile, id int) (*Tile, bool) {
	for _, t := range tiles {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
