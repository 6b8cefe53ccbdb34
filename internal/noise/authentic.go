package noise

import (
	"math"
	"math/rand"
)

// Gradient lookup tables, carried over from the teacher's MC 1.8.9
// NoiseGeneratorImproved.java port.
var (
	gradX = [16]float64{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0, 1, 0, -1, 0}
	gradY = [16]float64{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1}
	gradZ = [16]float64{0, 0, 0, 0, 1, 1, -1, -1, 1, 1, -1, -1, 0, 1, 0, -1}
)

// improved is a single seeded 3D Perlin generator — the teacher's
// AuthenticNoiseGeneratorImproved, unexported here since the stack always
// wraps it in octaves.
type improved struct {
	permutations [512]int
	xCoord       float64
	yCoord       float64
	zCoord       float64
}

func newImproved(rnd *rand.Rand) *improved {
	n := &improved{
		xCoord: rnd.Float64() * 256.0,
		yCoord: rnd.Float64() * 256.0,
		zCoord: rnd.Float64() * 256.0,
	}
	for i := 0; i < 256; i++ {
		n.permutations[i] = i
	}
	for i := 0; i < 256; i++ {
		j := rnd.Intn(256-i) + i
		n.permutations[i], n.permutations[j] = n.permutations[j], n.permutations[i]
		n.permutations[i+256] = n.permutations[i]
	}
	return n
}

func lerpN(t, a, b float64) float64 { return a + t*(b-a) }

func (n *improved) grad3d(hash int, x, y, z float64) float64 {
	i := hash & 15
	return gradX[i]*x + gradY[i]*y + gradZ[i]*z
}

func floorToInt(d float64) int {
	i := int(d)
	if d < float64(i) {
		i--
	}
	return i
}

func fadeCurve(t float64) float64 { return t * t * t * (t*(t*6.0-15.0) + 10.0) }

// sample3D evaluates this generator at a single point (y, x, z) — a
// one-point specialization of the teacher's PopulateNoiseArray 3D branch,
// since the Noise Stack samples points one at a time rather than filling
// a dense array.
func (n *improved) sample3D(y, x, z float64) float64 {
	fx := x + n.xCoord
	flx := floorToInt(fx)
	permX := flx & 255
	fx -= float64(flx)
	fadeX := fadeCurve(fx)

	fz := z + n.zCoord
	flz := floorToInt(fz)
	permZ := flz & 255
	fz -= float64(flz)
	fadeZ := fadeCurve(fz)

	fy := y + n.yCoord
	fly := floorToInt(fy)
	permY := fly & 255
	fy -= float64(fly)
	fadeY := fadeCurve(fy)

	l := n.permutations[permX] + permY
	i1 := n.permutations[l] + permZ
	j1 := n.permutations[l+1] + permZ
	k1 := n.permutations[permX+1] + permY
	l1 := n.permutations[k1] + permZ
	i2 := n.permutations[k1+1] + permZ

	d1 := lerpN(fadeX,
		n.grad3d(n.permutations[i1], fx, fy, fz),
		n.grad3d(n.permutations[l1], fx-1.0, fy, fz))
	d2 := lerpN(fadeX,
		n.grad3d(n.permutations[j1], fx, fy-1.0, fz),
		n.grad3d(n.permutations[i2], fx-1.0, fy-1.0, fz))
	d3 := lerpN(fadeX,
		n.grad3d(n.permutations[i1+1], fx, fy, fz-1.0),
		n.grad3d(n.permutations[l1+1], fx-1.0, fy, fz-1.0))
	d4 := lerpN(fadeX,
		n.grad3d(n.permutations[j1+1], fx, fy-1.0, fz-1.0),
		n.grad3d(n.permutations[i2+1], fx-1.0, fy-1.0, fz-1.0))

	d11 := lerpN(fadeY, d1, d2)
	d12 := lerpN(fadeY, d3, d4)
	return lerpN(fadeZ, d11, d12)
}

// octaves wraps several seeded generators — the teacher's
// AuthenticNoiseGeneratorOctaves — summing their contributions, each
// successive generator sampled at half the previous coordinate scale and
// weighted at twice the previous amplitude.
type octaves struct {
	generators []*improved
}

func newOctaves(seed int64, count int) *octaves {
	rnd := rand.New(rand.NewSource(seed))
	o := &octaves{generators: make([]*improved, count)}
	for i := range o.generators {
		o.generators[i] = newImproved(rnd)
	}
	return o
}

// sample evaluates the full octave stack at one point, applying the same
// 16777216-wrap the teacher carries over from MC's float-precision
// workaround for large world coordinates.
func (o *octaves) sample(y, x, z float64) float64 {
	d3 := 1.0
	total := 0.0
	for _, g := range o.generators {
		sx := x * d3
		sz := z * d3
		sy := y * d3

		kx := int64(math.Floor(sx))
		kz := int64(math.Floor(sz))
		sx -= float64(kx)
		sz -= float64(kz)
		kx %= 16777216
		kz %= 16777216
		sx += float64(kx)
		sz += float64(kz)

		total += g.sample3D(sy, sx, sz) / d3
		d3 /= 2.0
	}
	return total
}
