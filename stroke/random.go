package stroke

import "math/rand/v2"

// Random is the source of randomness for stroke generation.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewSeeded creates a deterministic random source.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform draws from [a,b).
func uniform(r Random, a, b float64) float64 {
	return a + r.Float64()*(b-a)
}
