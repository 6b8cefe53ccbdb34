// Package noise implements the Noise Stack (§4.4): an ordered list of
// (amplitude, octaves, seed) layers, each a seeded 3D Perlin variant,
// summed at a sample point into a single scalar field. Grounded on the
// teacher's internal/world/noise_authentic.go (the authentic path, in
// authentic.go) and internal/world/noise.go (the hash-based fallback, in
// hash.go).
package noise

// Layer is one (amplitude, octaves, seed) triple from §4.4.
type Layer struct {
	Amplitude float64
	Octaves   int
	Seed      int64
}

type layerSampler interface {
	sample(y, x, z float64) float64
}

type authenticLayer struct{ o *octaves }

func (a authenticLayer) sample(y, x, z float64) float64 { return a.o.sample(y, x, z) }

type hashLayer struct {
	seed    int64
	octaves int
}

func (h hashLayer) sample(y, x, z float64) float64 {
	return octaveNoise3D(x, y, z, h.seed, h.octaves)
}

// Stack is a built noise stack, ready to sample. It is built once from a
// seed and never mutated thereafter (§3 Lifecycle).
type Stack struct {
	amplitudes []float64
	samplers   []layerSampler
}

// NewStack builds a stack from its layer descriptors. useAuthentic selects
// the seeded-Perlin path over the hash-based fallback for every layer;
// callers typically pass config.GetUseAuthenticNoise() once at
// construction rather than re-reading it per sample.
func NewStack(layers []Layer, useAuthentic bool) *Stack {
	s := &Stack{
		amplitudes: make([]float64, len(layers)),
		samplers:   make([]layerSampler, len(layers)),
	}
	for i, l := range layers {
		octaveCount := l.Octaves
		if octaveCount < 1 {
			octaveCount = 1
		}
		s.amplitudes[i] = l.Amplitude
		if useAuthentic {
			s.samplers[i] = authenticLayer{o: newOctaves(l.Seed, octaveCount)}
		} else {
			s.samplers[i] = hashLayer{seed: l.Seed, octaves: octaveCount}
		}
	}
	return s
}

// Sample evaluates Σ amplitude_k · perlin_k(y, x, z) across all layers
// (§4.4). Coordinates are not scaled here — the caller is responsible for
// any grid-to-noise-space division.
func (s *Stack) Sample(y, x, z float64) float64 {
	total := 0.0
	for i, sampler := range s.samplers {
		total += s.amplitudes[i] * sampler.sample(y, x, z)
	}
	return total
}
