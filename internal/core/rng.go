package core

import "math/rand"

// RNG draws construction parameters from inclusive ranges.
// It wraps a seeded math/rand source so a fixed seed reproduces the same board.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniformly distributed integer in [min, max].
// If max < min, min is returned.
func (g *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// FloatRange returns a uniformly distributed float in [min, max).
func (g *RNG) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.r.Float64()*(max-min)
}

// Intn returns a non-negative integer in [0, n).
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}
