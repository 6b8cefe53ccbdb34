package noise

// Deterministic hash-based value noise, extended to 3D from the teacher's
// 2D value-noise fallback (internal/world/noise.go) — no external deps,
// integer hashing for lattice values. Used when a layer opts out of the
// authentic Perlin path (config.GetUseAuthenticNoise() == false).

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x) + uint64(y)*0xA24BAED4963EE407 + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue3(x, y, z, seed int64) float64 {
	h := hash3(x, y, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := floorF(x), floorF(y), floorF(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)

	c000 := latticeValue3(int64(x0), int64(y0), int64(z0), seed)
	c100 := latticeValue3(int64(x1), int64(y0), int64(z0), seed)
	c010 := latticeValue3(int64(x0), int64(y1), int64(z0), seed)
	c110 := latticeValue3(int64(x1), int64(y1), int64(z0), seed)
	c001 := latticeValue3(int64(x0), int64(y0), int64(z1), seed)
	c101 := latticeValue3(int64(x1), int64(y0), int64(z1), seed)
	c011 := latticeValue3(int64(x0), int64(y1), int64(z1), seed)
	c111 := latticeValue3(int64(x1), int64(y1), int64(z1), seed)

	x00 := lerp(c000, c100, fx)
	x10 := lerp(c010, c110, fx)
	x01 := lerp(c001, c101, fx)
	x11 := lerp(c011, c111, fx)

	y0i := lerp(x00, x10, fy)
	y1i := lerp(x01, x11, fy)

	return lerp(y0i, y1i, fz) // [0,1]
}

func floorF(v float64) float64 {
	i := int64(v)
	if v < float64(i) {
		i--
	}
	return float64(i)
}

func octaveNoise3D(x, y, z float64, seed int64, octaveCount int) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	const persistence, lacunarity = 0.5, 2.0
	for i := 0; i < octaveCount; i++ {
		v := valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131))
		sum += v * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}
