package noise

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// layerSpec mirrors the noise argument's wire shape (§6): a non-empty
// list of {amplitude, octaves} pairs. Grounded on the catalog loader's
// encoding/json + DisallowUnknownFields validation idiom.
type layerSpec struct {
	Amplitude *float64 `json:"amplitude"`
	Octaves   *float64 `json:"octaves"`
}

// ParseLayers validates and decodes a noise argument (§6): a non-empty
// JSON array of {amplitude, octaves} objects. seed is assigned per layer
// in order, offset from baseSeed so distinct layers (e.g. terrain vs.
// biome stacks) don't share identical octave permutations.
func ParseLayers(data []byte, baseSeed int64) ([]Layer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var specs []layerSpec
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("noise: invalid layer list: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("noise: layer list must be non-empty")
	}

	layers := make([]Layer, len(specs))
	for i, spec := range specs {
		if spec.Amplitude == nil {
			return nil, fmt.Errorf("noise: layer %d missing amplitude", i)
		}
		if spec.Octaves == nil {
			return nil, fmt.Errorf("noise: layer %d missing octaves", i)
		}
		octaves := int(*spec.Octaves)
		if octaves <= 0 || float64(octaves) != *spec.Octaves {
			return nil, fmt.Errorf("noise: layer %d octaves must be a positive integer, got %v", i, *spec.Octaves)
		}
		layers[i] = Layer{
			Amplitude: *spec.Amplitude,
			Octaves:   octaves,
			Seed:      baseSeed + int64(i),
		}
	}
	return layers, nil
}
