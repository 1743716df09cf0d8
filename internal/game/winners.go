package game

import "github.com/cardroom/holdem/poker"

// tierList orders contending players into tie groups, best hand first.
// Players within a group hold hands of identical category and tie-break key
// and split any layer the group wins.
type tierList struct {
	groups []tier
}

type tier struct {
	players []*Player
	value   poker.HandValue
}

// resolveWinners computes each card-holding player's best hand and inserts it
// into the ordered tier list. Insertion preserves seat order within a group,
// so the earliest-seated tied player is always first.
func resolveWinners(players []*Player, community []poker.Card) tierList {
	var tl tierList
	for _, p := range players {
		if !p.HasCards() {
			continue
		}
		best, value := poker.BestHand(append(append([]poker.Card{}, p.Cards...), community...))
		p.BestHand = best
		p.Category = value.Category
		tl.insert(p, value)
	}
	return tl
}

func (tl *tierList) insert(p *Player, value poker.HandValue) {
	for i := range tl.groups {
		cmp := value.Compare(tl.groups[i].value)
		if cmp > 0 {
			tl.groups = append(tl.groups, tier{})
			copy(tl.groups[i+1:], tl.groups[i:])
			tl.groups[i] = tier{players: []*Player{p}, value: value}
			return
		}
		if cmp == 0 {
			tl.groups[i].players = append(tl.groups[i].players, p)
			return
		}
	}
	tl.groups = append(tl.groups, tier{players: []*Player{p}, value: value})
}

// payout distributes every pot layer. Layers are processed from the main pot
// outward; each goes to the best tier containing at least one player whose
// PotIndex covers the layer, split evenly among those players. An uneven
// split leaves the remainder with the earliest-seated tied player.
func (tl tierList) payout(pots []int) {
	for layer, amount := range pots {
		for _, group := range tl.groups {
			var eligible []*Player
			for _, p := range group.players {
				if p.PotIndex >= layer {
					eligible = append(eligible, p)
				}
			}
			if len(eligible) == 0 {
				continue
			}
			share := amount / len(eligible)
			for _, p := range eligible {
				p.win(share)
			}
			eligible[0].win(amount % len(eligible))
			break
		}
	}
}

// ids returns the tie groups as player id lists for snapshots.
func (tl tierList) ids() [][]string {
	if len(tl.groups) == 0 {
		return nil
	}
	out := make([][]string, len(tl.groups))
	for i, group := range tl.groups {
		ids := make([]string, len(group.players))
		for j, p := range group.players {
			ids[j] = p.ID
		}
		out[i] = ids
	}
	return out
}
