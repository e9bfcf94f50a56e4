package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below range", -3.5, 0},
		{"inside range", 42.25, 42.25},
		{"above range", 101.8, 100},
		{"at lower bound", 0, 0},
		{"at upper bound", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Clamp(tt.value, 0, 100), 1e-12)
		})
	}
}

func TestRoundTo(t *testing.T) {
	drifted := 10.0
	for i := 0; i < 100; i++ {
		drifted -= 0.1
	}
	assert.Equal(t, 0.0, RoundTo(drifted, 6))

	assert.Equal(t, -2.0, RoundTo(-2.0000000000000004, 6))
	assert.InDelta(t, 1.235, RoundTo(1.23456, 3), 1e-12)
}

func TestRandomInt(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := RandomInt(rng, 50, 89)
		assert.GreaterOrEqual(t, v, 50)
		assert.LessOrEqual(t, v, 89)
	}
	assert.Equal(t, 5, RandomInt(rng, 5, 5))
	assert.Equal(t, 9, RandomInt(rng, 9, 3), "min wins when range is inverted")
}

func TestPick(t *testing.T) {
	rng := NewRand(11)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[Pick(rng, items)] = true
	}
	assert.Len(t, seen, 3)
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
