package utils

import (
	"math"
	"math/rand/v2"
	"time"
)

// Rand is the subset of *rand.Rand the simulation draws from.
// Tests substitute scripted sequences.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed generator. A zero seed is replaced by the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(rng Rand, min, max int) int {
	if min >= max {
		return min
	}
	return rng.IntN(max-min+1) + min
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
