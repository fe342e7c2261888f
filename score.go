package main

import "math/bits"

// Score is the cumulative result of the currently-selected items: the set of
// obtained tripods and the total gold cost. Selecting an item ORs in every
// tripod it grants, not just the one its search frame targets.
type Score struct {
	Tripods uint64 // bit t-1 set = tripod t obtained
	Cost    int
}

// Count returns how many obtained tripods fall within mask.
func (s Score) Count(mask uint64) int {
	return bits.OnesCount64(s.Tripods & mask)
}

// Total returns how many tripods are obtained overall.
func (s Score) Total() int {
	return bits.OnesCount64(s.Tripods)
}

// BetterThan reports whether s ranks strictly above other: more priority
// tripods first, then more tripods overall, then lower cost.
func (s Score) BetterThan(other Score, prioMask uint64) bool {
	if a, b := s.Count(prioMask), other.Count(prioMask); a != b {
		return a > b
	}
	if a, b := s.Total(), other.Total(); a != b {
		return a > b
	}
	return s.Cost < other.Cost
}
