package core

import "math"

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
}

// Default xorshift seed words
const (
	seedX uint32 = 123456789
	seedY uint32 = 362436069
	seedZ uint32 = 521288629
	seedW uint32 = 88675123
)

const (
	xorShiftRange      = 1 << 29
	xorShiftRangeFloat = float64(xorShiftRange)
)

// XorShift is a four word xorshift generator. It is not safe for concurrent use;
// parallel renders give every unit of work its own instance.
type XorShift struct {
	x, y, z, w uint32
}

// NewXorShift creates a generator seeded with the fixed benchmark constants
func NewXorShift() *XorShift {
	return &XorShift{x: seedX, y: seedY, z: seedZ, w: seedW}
}

// NewXorShiftSeeded creates a generator whose state is expanded from a 64-bit seed
func NewXorShiftSeeded(seed uint64) *XorShift {
	a := splitMix64(&seed)
	b := splitMix64(&seed)

	rng := &XorShift{
		x: uint32(a),
		y: uint32(a >> 32),
		z: uint32(b),
		w: uint32(b >> 32),
	}
	if rng.x|rng.y|rng.z|rng.w == 0 {
		return NewXorShift()
	}
	return rng
}

// Float64 advances the state and returns a value in [0, 1)
func (r *XorShift) Float64() float64 {
	t := r.x ^ ((r.x & 0xfffff) << 11)
	r.x = r.y
	r.y = r.z
	r.z = r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return float64(r.w%xorShiftRange) / xorShiftRangeFloat
}

// Get1D implements Sampler
func (r *XorShift) Get1D() float64 {
	return r.Float64()
}

func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// CosineHemisphere returns a cosine-weighted direction in the local frame where +Z is the normal.
// r is a uniform sample in [0, 1), phi the azimuth in radians.
func CosineHemisphere(r, phi float64) Vec3 {
	s := math.Sqrt(1.0 - r)
	return Vec3{
		X: math.Cos(phi) * s,
		Y: math.Sin(phi) * s,
		Z: math.Sqrt(r),
	}
}
