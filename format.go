package main

import (
	"fmt"
	"strings"
)

// FormatSolution renders one assignment the way the search reports it: a
// summary line with the priority/total/cost triple and the raw tripod mask,
// followed by the selected items with the tripods each one grants.
func FormatSolution(cat *Catalog, sol Solution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==[ assignment %d/%d/%d %064b ]==\n",
		sol.Priority, sol.Total, sol.Score.Cost, sol.Score.Tripods)
	for _, idx := range sol.Items {
		it := cat.Items[idx]
		fmt.Fprintf(&b, "  #%02d %-9s cost=%-5d %s\n",
			idx, it.Row, it.Cost, itemTripodNames(cat, it))
	}
	return b.String()
}

func itemTripodNames(cat *Catalog, it Item) string {
	var names []string
	for _, t := range it.Tripods {
		if t != 0 {
			names = append(names, cat.TripodName(t))
		}
	}
	return strings.Join(names, ", ")
}

// FormatCatalogSummary reports catalog statistics without searching: slot
// capacities, item counts per row, and any tripod no item can grant.
func FormatCatalogSummary(cat *Catalog) string {
	perRow := make([]int, NumRows)
	for _, it := range cat.Items {
		perRow[it.Row]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d items, %d tripods (%d high-priority)\n",
		len(cat.Items), cat.NumTripods, cat.PriorityTripods)
	fmt.Fprintf(&b, "%-10s %6s %6s\n", "Row", "Slots", "Items")
	for r := Row(0); r < NumRows; r++ {
		fmt.Fprintf(&b, "%-10s %6d %6d\n", r, cat.Capacity[r], perRow[r])
	}

	candidates := BuildCandidates(cat.Items, cat.NumTripods)
	var unobtainable []string
	for t := 1; t <= cat.NumTripods; t++ {
		if len(candidates[t-1]) == 0 {
			unobtainable = append(unobtainable, cat.TripodName(t))
		}
	}
	if len(unobtainable) > 0 {
		fmt.Fprintf(&b, "unobtainable tripods: %s\n", strings.Join(unobtainable, ", "))
	}
	return b.String()
}
