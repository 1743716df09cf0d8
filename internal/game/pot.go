package game

import "sort"

// collectPots folds every seat's street commitment into the ordered pot
// layers and returns the extended layer list. Layer k is funded only by
// players whose commitment reaches its cumulative threshold, so a short
// all-in opens a new layer sized to the marginal difference. Each player's
// PotIndex is set to the highest layer they are eligible to win.
//
// All seats participate: a folded player's dead chips still fund the layers
// they reach, but folded players never appear in showdown tie groups. This
// runs once per street, so by showdown the list reflects the full
// multi-street side-pot structure.
func collectPots(pots []int, players []*Player) []int {
	if len(players) == 0 {
		return pots
	}

	ascending := make([]*Player, len(players))
	copy(ascending, players)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].ChipsOnTable < ascending[j].ChipsOnTable
	})

	last := len(pots) - 1
	perLayer := []int{ascending[0].ChipsOnTable}
	pots[last] += ascending[0].ChipsOnTable
	ascending[0].PotIndex = last

	for i := 1; i < len(ascending); i++ {
		if ascending[i].ChipsOnTable > ascending[i-1].ChipsOnTable {
			pots = append(pots, 0)
			perLayer = append(perLayer, ascending[i].ChipsOnTable-ascending[i-1].ChipsOnTable)
		}
		for j, amount := range perLayer {
			pots[last+j] += amount
		}
		ascending[i].PotIndex = len(pots) - 1
	}

	for _, p := range players {
		p.ChipsOnTable = 0
	}

	return pots
}

func potTotal(pots []int) int {
	total := 0
	for _, amount := range pots {
		total += amount
	}
	return total
}
