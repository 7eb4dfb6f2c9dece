package catwalk

import "math"

// SeededRandom returns a deterministic pseudo-random generator. Each call
// advances internal state and yields a value in [0, 1). The same seed
// produces the same infinite sequence on every platform, which the scene
// generator relies on for reproducible backgrounds.
//
// The generator is a mulberry32-style 32-bit mix function iterated over its
// own state. Not cryptographic, and not meant to be.
func SeededRandom(seed int64) func() float64 {
	state := uint32(seed)
	return func() float64 {
		state += 0x6d2b79f5
		z := state
		z = (z ^ (z >> 15)) * (z | 1)
		z ^= z + (z^(z>>7))*(z|61)
		z ^= z >> 14
		return float64(z) / (1 << 32)
	}
}

// Noise2 is a stateless pseudo-random smooth-ish function of two coordinates
// with values in [0, 1). It is a simple trigonometric mix rather than true
// gradient noise; the scene only needs cheap deterministic perturbation for
// canopy outlines and grass placement.
func Noise2(x, y float64) float64 {
	s := math.Sin(x*12.9898+y*78.233) * 43758.5453
	return s - math.Floor(s)
}
