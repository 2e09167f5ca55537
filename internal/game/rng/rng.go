// Package rng provides the deterministic pseudo-random source used by
// the simulator. Every game owns exactly one Source; the sequence it
// produces for a given seed is a reproducibility contract shared with
// other implementations of this simulator, so the mixing function must
// not change.
package rng

// Source is a mulberry32 generator over 32-bit state.
type Source struct {
	state uint32
}

// New creates a Source from a 32-bit seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 returns the next value in [0, 1).
//
// All arithmetic is unsigned 32-bit with wraparound; the two imul-based
// xor-shift rounds match the reference formula bit for bit.
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns a value in [0, n) by scaling the next draw.
func (s *Source) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// Shuffle permutes n elements in place via Fisher-Yates, consuming one
// draw per swap, iterating from the last index down to 1.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}
