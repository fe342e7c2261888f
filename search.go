package main

// ── Searcher ────────────────────────────────────────────────────────

// Searcher enumerates item assignments under the per-row slot limits and
// tracks the best score seen. One Searcher owns all mutable search state
// (the selection bitset, the remaining capacities, the frame stack); the
// catalog it reads is never modified, so independent searches can run from
// separate Searchers over the same catalog.
type Searcher struct {
	items      []Item
	candidates [][]int
	capacity   Capacity
	prioCount  int
	prioMask   uint64
	cfg        Config

	selected []bool
}

// Solution is one improving assignment: the score it achieves and the
// selected item indices in catalog order.
type Solution struct {
	Score    Score
	Priority int   // obtained high-priority tripods
	Total    int   // obtained tripods overall
	Items    []int // selected catalog item indices, ascending
}

// NewSearcher prepares a search over the catalog. The config may override
// the catalog's priority count; the effective count is clamped to the valid
// tripod id range so the priority mask never exceeds it.
func NewSearcher(cat *Catalog, cfg Config) *Searcher {
	prio := cat.PriorityTripods
	if cfg.PriorityTripods >= 0 {
		prio = cfg.PriorityTripods
	}
	prio = clamp(prio, 0, cat.NumTripods)

	var prioMask uint64
	if prio >= 64 {
		prioMask = ^uint64(0)
	} else {
		prioMask = uint64(1)<<uint(prio) - 1
	}

	return &Searcher{
		items:      cat.Items,
		candidates: BuildCandidates(cat.Items, cat.NumTripods),
		capacity:   cat.Capacity,
		prioCount:  prio,
		prioMask:   prioMask,
		cfg:        cfg,
		selected:   make([]bool, len(cat.Items)),
	}
}

// frame holds the backtracking state for one tripod: the candidate currently
// tried for it and the cumulative score of every decision up to and
// including this frame.
type frame struct {
	cursor int // index into the tripod's candidate list, -1 = none tried yet
	score  Score
}

// Run explores the whole search space depth-first and calls emit for every
// assignment that improves on the best seen so far, in discovery order; the
// last emission is the global optimum modulo the active prunes. It returns
// the final best solution; ok is false when nothing was emitted, which under
// the priority cutoff does not prove that no assignment exists.
func (s *Searcher) Run(emit func(Solution)) (sol Solution, ok bool) {
	numTripods := len(s.candidates)
	if numTripods == 0 {
		return Solution{}, false
	}

	var best Score
	record := func(sc Score) {
		// sc is always the score of the currently-selected item set.
		if !sc.BetterThan(best, s.prioMask) {
			return
		}
		best = sc
		sol = Solution{
			Score:    sc,
			Priority: sc.Count(s.prioMask),
			Total:    sc.Total(),
			Items:    s.selection(),
		}
		ok = true
		if emit != nil {
			emit(sol)
		}
	}

	// The stack holds one frame per tripod id, deepest last. It starts at
	// full height with nothing tried; selecting at depth k re-extends it
	// back to full height with the new score seeded into the fresh frames.
	frames := make([]frame, numTripods)
	for i := range frames {
		frames[i].cursor = -1
	}

	for len(frames) > 0 {
		k := len(frames) // 1-based tripod id being decided
		f := &frames[k-1]
		cand := s.candidates[k-1]

		var prev Score
		if k > 1 {
			prev = frames[k-2].score
		}

		if f.cursor >= 0 {
			// Re-entry after a deeper frame unwound: undo the current pick
			// before advancing to the next candidate.
			item := cand[f.cursor]
			s.selected[item] = false
			s.capacity[s.items[item].Row]++
		} else if s.pruned(k, prev) {
			if k == numTripods {
				record(prev)
			}
			frames = frames[:k-1]
			continue
		}

		for f.cursor++; f.cursor < len(cand); f.cursor++ {
			i := cand[f.cursor]
			if !s.selected[i] && s.capacity[s.items[i].Row] > 0 {
				break
			}
		}
		if f.cursor == len(cand) {
			// Exhausted. A popping deepest frame still represents a complete
			// assignment that leaves its tripod unassigned, so rank the
			// inherited score before unwinding.
			if k == numTripods {
				record(prev)
			}
			frames = frames[:k-1]
			continue
		}

		item := cand[f.cursor]
		s.selected[item] = true
		s.capacity[s.items[item].Row]--
		f.score = Score{Tripods: prev.Tripods, Cost: prev.Cost + s.items[item].Cost}
		for _, t := range s.items[item].Tripods {
			if t != 0 {
				f.score.Tripods |= uint64(1) << uint(t-1)
			}
		}

		if k < numTripods {
			seed := f.score
			for len(frames) < numTripods {
				frames = append(frames, frame{cursor: -1, score: seed})
			}
			continue
		}
		record(f.score)
	}
	return sol, ok
}

// pruned decides whether the first visit to the frame for tripod k should
// give up before trying any candidate.
func (s *Searcher) pruned(k int, prev Score) bool {
	// Redundancy skip: some earlier pick already grants this tripod as a
	// side effect, so dedicating an item to it cannot improve coverage.
	if !s.cfg.DisableRedundancySkip && prev.Tripods&(uint64(1)<<uint(k-1)) != 0 {
		return true
	}
	// Priority cutoff: past the priority region without full priority
	// coverage. Sound only while some assignment obtains every priority
	// tripod; see Config.DisablePriorityCutoff.
	if !s.cfg.DisablePriorityCutoff && k > s.prioCount && prev.Tripods&s.prioMask != s.prioMask {
		return true
	}
	return false
}

// selection snapshots the currently-selected item indices in catalog order.
func (s *Searcher) selection() []int {
	sel := make([]int, 0, 8)
	for i, used := range s.selected {
		if used {
			sel = append(sel, i)
		}
	}
	return sel
}
