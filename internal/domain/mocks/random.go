// Package mocks provides mock implementations for testing.
package mocks

// Random is a mock implementation of ports.Random.
//
// With no Picks configured IntN returns n-1, which makes a Fisher–Yates
// shuffle leave its input in place. Float64 always returns Jitter.
type Random struct {
	Picks  []int // Values returned by successive IntN calls (taken modulo n)
	Jitter float64

	IntNCallCount    int
	Float64CallCount int
}

// IntN returns the next scripted pick, or n-1 when the script is exhausted.
func (m *Random) IntN(n int) int {
	m.IntNCallCount++
	if len(m.Picks) == 0 {
		return n - 1
	}
	v := m.Picks[0]
	m.Picks = m.Picks[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the configured jitter.
func (m *Random) Float64() float64 {
	m.Float64CallCount++
	return m.Jitter
}
