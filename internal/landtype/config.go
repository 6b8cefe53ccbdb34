package landtype

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// heightsSpec mirrors the land-heights argument's wire shape (§6): an
// object with exactly the keys ROCK, GRASS, WATER.
type heightsSpec struct {
	Rock  *float64 `json:"ROCK"`
	Grass *float64 `json:"GRASS"`
	Water *float64 `json:"WATER"`
}

// ParseHeights validates and decodes a land-heights argument (§6).
func ParseHeights(data []byte) (Heights, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var spec heightsSpec
	if err := dec.Decode(&spec); err != nil {
		return Heights{}, fmt.Errorf("landtype: invalid land-heights object: %w", err)
	}
	if spec.Rock == nil || spec.Grass == nil || spec.Water == nil {
		return Heights{}, fmt.Errorf("landtype: land-heights object must set ROCK, GRASS, and WATER")
	}
	return Heights{Rock: *spec.Rock, Grass: *spec.Grass, Water: *spec.Water}, nil
}
