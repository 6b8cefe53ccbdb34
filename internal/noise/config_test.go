package noise

import "testing"

func TestParseLayersValid(t *testing.T) {
	layers, err := ParseLayers([]byte(`[{"amplitude":1.0,"octaves":3},{"amplitude":0.5,"octaves":2}]`), 100)
	if err != nil {
		t.Fatalf("ParseLayers: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("len = %d, want 2", len(layers))
	}
	if layers[0].Seed != 100 || layers[1].Seed != 101 {
		t.Errorf("seeds = %d, %d, want 100, 101", layers[0].Seed, layers[1].Seed)
	}
	if layers[0].Octaves != 3 || layers[1].Octaves != 2 {
		t.Errorf("octaves = %d, %d, want 3, 2", layers[0].Octaves, layers[1].Octaves)
	}
}

func TestParseLayersRejectsEmpty(t *testing.T) {
	if _, err := ParseLayers([]byte(`[]`), 0); err == nil {
		t.Error("expected an error for an empty layer list")
	}
}

func TestParseLayersRejectsMissingField(t *testing.T) {
	if _, err := ParseLayers([]byte(`[{"amplitude":1.0}]`), 0); err == nil {
		t.Error("expected an error for a layer missing octaves")
	}
}

func TestParseLayersRejectsUnknownField(t *testing.T) {
	if _, err := ParseLayers([]byte(`[{"amplitude":1.0,"octaves":2,"extra":true}]`), 0); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestParseLayersRejectsNonIntegerOctaves(t *testing.T) {
	if _, err := ParseLayers([]byte(`[{"amplitude":1.0,"octaves":2.5}]`), 0); err == nil {
		t.Error("expected an error for non-integer octaves")
	}
}
