package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

type fakeCutter struct{ calls int }

func (f *fakeCutter) Cut(source string, id, tileWidth, tileHeight, columns int) (Sprite, error) {
	f.calls++
	return id, nil // sprite handle is just the id for test purposes
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const wellFormedManifest = `{
  "overworld": {
    "image": {"source": "overworld.png", "tile_width": 16, "tile_height": 16, "columns": 10},
    "tiles": {
      "grass_1": {"id": 1, "n": "aaa", "e": "aaa", "s": "aaa", "w": "aaa", "transparent": false, "animation": false},
      "water":   {"id": 2, "x": "wwwwwwww", "transparent": false, "animation": true}
    },
    "animations": [
      {"id": 2, "animation": [{"id": 2, "duration": 100}, {"id": 3, "duration": 100}]}
    ]
  },
  "characters": {
    "hero": {
      "image": {"source": "hero.png", "tile_width": 16, "tile_height": 16, "columns": 4},
      "animations": {"idle_s": [0, 1, 2]}
    }
  }
}`

func TestLoadRoundTrip(t *testing.T) {
	path := writeManifest(t, wellFormedManifest)
	cat, err := Load(path, &fakeCutter{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Property 1: catalog load round-trip.
	for _, tile := range cat.TilesByName {
		got, err := cat.GetTileByID(tile.ID)
		if err != nil {
			t.Fatalf("GetTileByID(%d): %v", tile.ID, err)
		}
		if got.Name != tile.Name {
			t.Errorf("GetTileByID(%d).Name = %q, want %q", tile.ID, got.Name, tile.Name)
		}
	}

	if len(cat.Animations) != 1 || cat.Animations[0].ID != 2 {
		t.Fatalf("animations = %+v, want one entry with id 2", cat.Animations)
	}
	if _, ok := cat.Characters["hero"]; !ok {
		t.Fatalf("characters missing hero")
	}
	if len(cat.Characters["hero"]["idle_s"]) != 3 {
		t.Fatalf("hero idle_s frames = %d, want 3", len(cat.Characters["hero"]["idle_s"]))
	}
}

func TestGetTileByIDMissing(t *testing.T) {
	path := writeManifest(t, wellFormedManifest)
	cat, err := Load(path, &fakeCutter{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cat.GetTileByID(999); err == nil {
		t.Fatal("expected AmbiguousOrMissing error for unknown id")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	body := `{
  "overworld": {
    "image": {"source": "overworld.png", "tile_width": 16, "tile_height": 16, "columns": 10},
    "tiles": {
      "a": {"id": 1, "n": "aaa", "e": null, "s": null, "w": null, "transparent": false, "animation": false},
      "b": {"id": 1, "n": "bbb", "e": null, "s": null, "w": null, "transparent": false, "animation": false}
    },
    "animations": []
  }
}`
	path := writeManifest(t, body)
	if _, err := Load(path, &fakeCutter{}); err == nil {
		t.Fatal("expected a Malformed error for duplicate tile ids")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	body := `{
  "overworld": {
    "image": {"source": "overworld.png", "tile_width": 16, "tile_height": 16, "columns": 10},
    "tiles": {
      "a": {"id": 1, "n": "aaa", "e": null, "s": null, "w": null, "transparent": false, "animation": false}
    },
    "animations": [],
    "unexpected_field": true
  }
}`
	path := writeManifest(t, body)
	if _, err := Load(path, &fakeCutter{}); err == nil {
		t.Fatal("expected a Malformed error for an unknown manifest key")
	}
}

func TestLoadRejectsOrphanAnimation(t *testing.T) {
	body := `{
  "overworld": {
    "image": {"source": "overworld.png", "tile_width": 16, "tile_height": 16, "columns": 10},
    "tiles": {
      "a": {"id": 1, "n": "aaa", "e": null, "s": null, "w": null, "transparent": false, "animation": false}
    },
    "animations": [
      {"id": 42, "animation": [{"id": 42, "duration": 100}]}
    ]
  }
}`
	path := writeManifest(t, body)
	if _, err := Load(path, &fakeCutter{}); err == nil {
		t.Fatal("expected a Malformed error for an animation id with no matching tile")
	}
}

func TestTileEdgeEightPointAuthoritative(t *testing.T) {
	x := "aaabbbbb" // 8 chars
	tile := &Tile{X: x}
	edge, ok := tile.Edge(North)
	if !ok || edge != "aaa" {
		t.Fatalf("North edge = %q, %v; want \"aaa\", true", edge, ok)
	}
}

func TestAnimationStepAt(t *testing.T) {
	anim := Animation{ID: 1, Steps: []AnimationStep{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}}
	if got := anim.StepAt(0); got.ID != 1 {
		t.Errorf("StepAt(0).ID = %d, want 1", got.ID)
	}
	if got := anim.StepAt(AnimationInvSpeed); got.ID != 2 {
		t.Errorf("StepAt(%d).ID = %d, want 2", AnimationInvSpeed, got.ID)
	}
}
