package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCandidates(t *testing.T) {
	items := []Item{
		{Row: RowHelmet, Tripods: [MaxItemTripods]int{1, 3, 0}},
		{Row: RowWeapon, Tripods: [MaxItemTripods]int{3, 0, 0}},
		{Row: RowChest},
		{Row: RowGloves, Tripods: [MaxItemTripods]int{3, 1, 0}},
	}

	c := BuildCandidates(items, 4)
	require.Len(t, c, 4)

	// Catalog order within each list; multi-tripod items in every list they
	// belong to; tripods nothing grants stay empty.
	assert.Equal(t, []int{0, 3}, c[0])
	assert.Empty(t, c[1])
	assert.Equal(t, []int{0, 1, 3}, c[2])
	assert.Empty(t, c[3])
}

func TestBuildCandidatesEmptyCatalog(t *testing.T) {
	c := BuildCandidates(nil, 0)
	assert.Empty(t, c)
}
