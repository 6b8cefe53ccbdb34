package landtype

import (
	"math"
	"testing"
)

func TestParseHeightsValid(t *testing.T) {
	h, err := ParseHeights([]byte(`{"ROCK":0.1,"GRASS":0.0,"WATER":-1e308}`))
	if err != nil {
		t.Fatalf("ParseHeights: %v", err)
	}
	if h.Rock != 0.1 || h.Grass != 0.0 || h.Water != -1e308 {
		t.Errorf("ParseHeights = %+v", h)
	}
}

func TestParseHeightsAcceptsMostNegativeFinite(t *testing.T) {
	// JSON has no infinity literal; callers representing WATER: -Inf
	// must pre-encode it as the largest finite negative double or a
	// custom sentinel before reaching this parser. This test documents
	// that a very large finite negative value round-trips unchanged.
	h, err := ParseHeights([]byte(`{"ROCK":0.1,"GRASS":0.0,"WATER":-1.7976931348623157e308}`))
	if err != nil {
		t.Fatalf("ParseHeights: %v", err)
	}
	if !math.IsInf(h.Water, -1) && h.Water > -1e300 {
		t.Errorf("Water = %v, want a very large negative finite value", h.Water)
	}
}

func TestParseHeightsRejectsMissingKey(t *testing.T) {
	if _, err := ParseHeights([]byte(`{"ROCK":0.1,"GRASS":0.0}`)); err == nil {
		t.Error("expected an error for a missing WATER key")
	}
}

func TestParseHeightsRejectsUnknownKey(t *testing.T) {
	if _, err := ParseHeights([]byte(`{"ROCK":0.1,"GRASS":0.0,"WATER":-1,"LAVA":0.9}`)); err == nil {
		t.Error("expected an error for an unknown key")
	}
}
