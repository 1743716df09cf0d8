package poker

import (
	"strconv"
	"strings"
)

// Category classifies a hand, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryLabels = [...]string{
	HighCard:      "highCard",
	OnePair:       "onePair",
	TwoPair:       "twoPair",
	ThreeOfAKind:  "threeOfAKind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "fullHouse",
	FourOfAKind:   "fourOfAKind",
	StraightFlush: "straightFlush",
	RoyalFlush:    "royalFlush",
}

// String returns the wire label for the category, e.g. "fullHouse".
func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return "unknown"
	}
	return categoryLabels[c]
}

// HandValue is the strength of an evaluated hand. Key is comparable only
// between hands of the same Category; larger is stronger.
type HandValue struct {
	Category Category
	Key      int
}

// Compare returns >0 if v is stronger than o, <0 if weaker, 0 on an exact tie.
func (v HandValue) Compare(o HandValue) int {
	if v.Category != o.Category {
		return int(v.Category) - int(o.Category)
	}
	return v.Key - o.Key
}

// Evaluate classifies a hand of up to five cards sorted descending by rank.
// Hands shorter than five cards (pre-flop display ranking) can only produce
// highCard or onePair.
//
// Tie-break keys are built by decimal concatenation of the matched ranks
// followed by the kicker ranks in descending order; straights, flushes and
// high cards key on the top card alone, with the wheel keyed by its five.
func Evaluate(hand []Card) HandValue {
	flush := isFlush(hand)
	straight := isStraight(hand)

	if flush {
		if straight {
			// The steel wheel also has an ace on top, so the royal flush
			// needs the king confirmed too.
			if hand[0].Rank == Ace && hand[1].Rank == King {
				return HandValue{RoyalFlush, int(hand[0].Rank)}
			}
			return HandValue{StraightFlush, straightKey(hand)}
		}
		return HandValue{Flush, int(hand[0].Rank)}
	}
	if straight {
		return HandValue{Straight, straightKey(hand)}
	}

	if key, ok := fourOfAKindKey(hand); ok {
		return HandValue{FourOfAKind, key}
	}
	if key, ok := fullHouseKey(hand); ok {
		return HandValue{FullHouse, key}
	}
	if key, ok := threeOfAKindKey(hand); ok {
		return HandValue{ThreeOfAKind, key}
	}
	if key, ok := twoPairKey(hand); ok {
		return HandValue{TwoPair, key}
	}
	if key, ok := onePairKey(hand); ok {
		return HandValue{OnePair, key}
	}
	return HandValue{HighCard, int(hand[0].Rank)}
}

// isStraight reports five consecutive descending ranks. The ace-to-five wheel
// is recognized by allowing the 14->2 transition at the top of the hand.
func isStraight(hand []Card) bool {
	if len(hand) < 5 {
		return false
	}
	for i := 0; i < len(hand)-1; i++ {
		if i == 0 && hand[i].Rank == Ace && hand[i+1].Rank == Five {
			continue
		}
		if hand[i].Rank != hand[i+1].Rank+1 {
			return false
		}
	}
	return true
}

// straightKey keys a straight by its effective top card. The wheel's ace
// plays low, so the five keys it and every other straight outranks it.
func straightKey(hand []Card) int {
	if hand[0].Rank == Ace && hand[1].Rank == Five {
		return int(Five)
	}
	return int(hand[0].Rank)
}

func isFlush(hand []Card) bool {
	if len(hand) < 5 {
		return false
	}
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Suit != hand[i+1].Suit {
			return false
		}
	}
	return true
}

func fourOfAKindKey(hand []Card) (int, bool) {
	for i := 0; i+3 < len(hand); i++ {
		if hand[i].Rank == hand[i+3].Rank {
			kicker := hand[4]
			if i > 0 {
				kicker = hand[0]
			}
			return concatRanks(hand[i].Rank, kicker.Rank), true
		}
	}
	return 0, false
}

func fullHouseKey(hand []Card) (int, bool) {
	if len(hand) < 5 {
		return 0, false
	}
	// Trips on top: X X X Y Y
	if hand[0].Rank == hand[2].Rank && hand[3].Rank == hand[4].Rank {
		return concatRanks(hand[0].Rank, hand[3].Rank), true
	}
	// Pair on top: Y Y X X X
	if hand[0].Rank == hand[1].Rank && hand[2].Rank == hand[4].Rank {
		return concatRanks(hand[2].Rank, hand[0].Rank), true
	}
	return 0, false
}

func threeOfAKindKey(hand []Card) (int, bool) {
	for i := 0; i+2 < len(hand); i++ {
		if hand[i].Rank == hand[i+2].Rank {
			ranks := []Rank{hand[i].Rank}
			for _, c := range hand[:i] {
				ranks = append(ranks, c.Rank)
			}
			for _, c := range hand[i+3:] {
				ranks = append(ranks, c.Rank)
			}
			return concatRanks(ranks...), true
		}
	}
	return 0, false
}

func twoPairKey(hand []Card) (int, bool) {
	highPair := Rank(0)
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Rank != hand[i+1].Rank {
			continue
		}
		if highPair == 0 {
			highPair = hand[i].Rank
			i++ // skip the second card of the pair
			continue
		}
		lowPair := hand[i].Rank
		ranks := []Rank{highPair, lowPair}
		for _, c := range hand {
			if c.Rank != highPair && c.Rank != lowPair {
				ranks = append(ranks, c.Rank)
			}
		}
		return concatRanks(ranks...), true
	}
	return 0, false
}

func onePairKey(hand []Card) (int, bool) {
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Rank == hand[i+1].Rank {
			ranks := []Rank{hand[i].Rank}
			for j, c := range hand {
				if j != i && j != i+1 {
					ranks = append(ranks, c.Rank)
				}
			}
			return concatRanks(ranks...), true
		}
	}
	return 0, false
}

// concatRanks builds a tie-break key by concatenating rank values as decimal
// digits, e.g. (14, 13, 2) -> 14132.
func concatRanks(ranks ...Rank) int {
	var b strings.Builder
	for _, r := range ranks {
		b.WriteString(strconv.Itoa(int(r)))
	}
	key, err := strconv.Atoi(b.String())
	if err != nil {
		// Only reachable with an empty hand, which callers never pass.
		return 0
	}
	return key
}
