// Package randtest provides deterministic random sources for tests.
package randtest

import "math/rand/v2"

// Scripted returns queued values first and falls back to a seeded PCG
// once a queue is exhausted.
type Scripted struct {
	Floats   []float64
	Ints     []int
	fallback *rand.Rand
}

// NewScripted creates a Scripted source.
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{
		Floats:   floats,
		Ints:     ints,
		fallback: rand.New(rand.NewPCG(1, 2)),
	}
}

// Float64 returns the next queued float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return s.fallback.Float64()
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN returns the next queued int, capped to n-1.
func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 {
		return s.fallback.IntN(n)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

// Fixed always returns the same values. Fixed{F: 0.99} never triggers
// low-probability rolls.
type Fixed struct {
	F float64
	I int
}

// Float64 returns F.
func (f Fixed) Float64() float64 { return f.F }

// IntN returns I capped to n-1.
func (f Fixed) IntN(n int) int {
	if f.I >= n {
		return n - 1
	}
	return f.I
}
