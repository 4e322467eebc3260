// Package geometry - fillers and RNG policy used by Geometry.Allocate.
//
// Goals:
//   - Determinism: same seed ⇒ identical buffers across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Filler builds its own stream
//     at call time, so one Filler value may be reused across goroutines.
package geometry

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Filler initialises a freshly allocated, zeroed buffer in place.
type Filler func(data []float64)

// Zero leaves the buffer zero-filled.
var Zero Filler = func([]float64) {}

// Constant fills every element with v.
func Constant(v float64) Filler {
	return func(data []float64) {
		for i := range data {
			data[i] = v
		}
	}
}

// Uniform fills the buffer with samples from U[0, 1) drawn from a stream
// seeded with seed (seed==0 ⇒ DefaultSeed).
//
// Complexity: O(n).
func Uniform(seed int64) Filler {
	return func(data []float64) {
		r := NewRand(seed)
		for i := range data {
			data[i] = r.Float64()
		}
	}
}

// UniformInt fills the buffer with integers drawn uniformly from [0, max),
// stored as float64. max ≤ 0 falls back to 100.
func UniformInt(seed int64, max int) Filler {
	if max <= 0 {
		max = 100
	}
	return func(data []float64) {
		r := NewRand(seed)
		for i := range data {
			data[i] = float64(r.Intn(max))
		}
	}
}

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}
