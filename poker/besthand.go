package poker

import "sort"

// BestHand selects the strongest five-card hand from the given cards
// (typically two hole cards plus up to five community cards). With five or
// fewer cards the hand is evaluated directly; with more, every five-card
// subset is evaluated (21 subsets for the full seven) and the maximum by
// category then tie-break key is kept. Ties keep the earliest subset.
//
// The returned hand is sorted descending by rank and never aliases the input.
func BestHand(cards []Card) ([]Card, HandValue) {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	if len(sorted) <= 5 {
		return sorted, Evaluate(sorted)
	}

	var (
		best      []Card
		bestValue HandValue
		combo     = make([]Card, 0, 5)
	)

	var combine func(start, remaining int)
	combine = func(start, remaining int) {
		if remaining == 0 {
			value := Evaluate(combo)
			if best == nil || value.Compare(bestValue) > 0 {
				best = append(best[:0:0], combo...)
				bestValue = value
			}
			return
		}
		for i := start; i <= len(sorted)-remaining; i++ {
			combo = append(combo, sorted[i])
			combine(i+1, remaining-1)
			combo = combo[:len(combo)-1]
		}
	}
	combine(0, 5)

	return best, bestValue
}
