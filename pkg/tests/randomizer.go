package tests

import "math/rand/v2"

type Randomizer struct {
	IntN func(n int) int
}

// NewSeededRandomizer returns a randomizer that repeats the same sequence for
// the same seed. It is not safe for concurrent use.
func NewSeededRandomizer(seed uint64) Randomizer {
	random := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // for tests

	return Randomizer{
		IntN: random.IntN,
	}
}
