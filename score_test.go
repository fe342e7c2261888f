package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOrdering(t *testing.T) {
	const prioMask = 0b11 // tripods 1 and 2 are high-priority

	t.Run("priority count decides first", func(t *testing.T) {
		a := Score{Tripods: 0b0001, Cost: 50} // one priority tripod
		b := Score{Tripods: 0b1100, Cost: 0}  // two tripods, neither priority
		assert.True(t, a.BetterThan(b, prioMask))
		assert.False(t, b.BetterThan(a, prioMask))
	})

	t.Run("total count breaks priority ties", func(t *testing.T) {
		a := Score{Tripods: 0b0111, Cost: 9}
		b := Score{Tripods: 0b0011, Cost: 0}
		assert.True(t, a.BetterThan(b, prioMask))
		assert.False(t, b.BetterThan(a, prioMask))
	})

	t.Run("lower cost breaks coverage ties", func(t *testing.T) {
		a := Score{Tripods: 0b0101, Cost: 3}
		b := Score{Tripods: 0b0101, Cost: 5}
		assert.True(t, a.BetterThan(b, prioMask))
		assert.False(t, b.BetterThan(a, prioMask))
	})

	t.Run("equal scores rank equal", func(t *testing.T) {
		a := Score{Tripods: 0b0110, Cost: 7}
		assert.False(t, a.BetterThan(a, prioMask))
	})

	t.Run("ordering is strict", func(t *testing.T) {
		// Different masks with identical counts and costs tie.
		a := Score{Tripods: 0b0101, Cost: 2}
		b := Score{Tripods: 0b0110, Cost: 2}
		assert.False(t, a.BetterThan(b, prioMask))
		assert.False(t, b.BetterThan(a, prioMask))
	})
}

func TestScoreCounts(t *testing.T) {
	s := Score{Tripods: 0b101101}
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, 2, s.Count(0b000111))
	assert.Equal(t, 0, s.Count(0b010010))
}
