// Package ports defines the interfaces the domain depends on.
package ports

// Random is the randomness source used by pairing. *rand.Rand from
// math/rand/v2 satisfies it; tests inject a seeded or scripted source.
type Random interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}
