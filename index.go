package main

// BuildCandidates groups catalog items by the tripods they grant. The result
// is indexed by tripod id minus one: candidates[t-1] lists, in catalog order,
// the index of every item granting tripod t. An item granting k distinct
// tripods appears in k lists. A tripod no item grants gets an empty list and
// can never be obtained.
func BuildCandidates(items []Item, numTripods int) [][]int {
	candidates := make([][]int, numTripods)
	for i := range items {
		for _, t := range items[i].Tripods {
			if t == 0 {
				continue
			}
			candidates[t-1] = append(candidates[t-1], i)
		}
	}
	return candidates
}
