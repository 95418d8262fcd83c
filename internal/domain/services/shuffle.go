package services

import (
	"math/rand/v2"

	"github.com/ersonp/pairgen/internal/domain/ports"
)

// NewRandom returns a PCG-backed random source. A zero seed draws a fresh
// seed from the runtime, so runs differ; any other seed is reproducible.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Shuffle permutes s in place with the Fisher–Yates algorithm, so every
// permutation is equally likely given a uniform IntN.
func Shuffle[T any](rng ports.Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
