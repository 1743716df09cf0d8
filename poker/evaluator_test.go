package poker

import (
	"strings"
	"testing"
)

// mustCards parses space-separated rank+suit pairs, e.g. "AS KD TH".
func mustCards(t *testing.T, s string) []Card {
	t.Helper()

	ranks := map[byte]Rank{
		'2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven,
		'8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
	}

	var cards []Card
	for _, token := range strings.Fields(s) {
		if len(token) != 2 {
			t.Fatalf("bad card token %q", token)
		}
		rank, ok := ranks[token[0]]
		if !ok {
			t.Fatalf("bad rank in %q", token)
		}
		suit := Suit(token[1:])
		switch suit {
		case Spades, Diamonds, Clubs, Hearts:
		default:
			t.Fatalf("bad suit in %q", token)
		}
		cards = append(cards, Card{Rank: rank, Suit: suit})
	}
	return cards
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cards    string // already sorted descending by rank
		category Category
		key      int
	}{
		{"royal flush", "AS KS QS JS TS", RoyalFlush, 14},
		{"straight flush", "KD QD JD TD 9D", StraightFlush, 13},
		{"steel wheel is a five-high straight flush", "AH 5H 4H 3H 2H", StraightFlush, 5},
		{"four of a kind with higher kicker", "AS KD KC KH KS", FourOfAKind, 1314},
		{"four of a kind on top", "KS KD KC KH 9S", FourOfAKind, 139},
		{"full house trips on top", "QS QD QC 8S 8D", FullHouse, 128},
		{"full house pair on top", "KS KD 7S 7D 7C", FullHouse, 713},
		{"flush keys on top card", "AC JC 9C 6C 3C", Flush, 14},
		{"straight keys on top card", "9S 8D 7C 6H 5S", Straight, 9},
		{"wheel is a five-high straight", "AS 5D 4C 3H 2S", Straight, 5},
		{"three of a kind", "AS 7D 7C 7H 2D", ThreeOfAKind, 7142},
		{"two pair", "JS JD 9S 4C 4H", TwoPair, 1149},
		{"one pair", "QS QD 9C 5H 2S", OnePair, 12952},
		{"high card", "AS JD 9C 6H 3S", HighCard, 14},
		{"two card pair", "AS AD", OnePair, 14},
		{"two card high", "KS 9D", HighCard, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(mustCards(t, tt.cards))
			want := HandValue{Category: tt.category, Key: tt.key}
			if got != want {
				t.Errorf("Evaluate() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestHandValueCompare(t *testing.T) {
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"straight flush beats four of a kind", "KD QD JD TD 9D", "AS AD AC AH KS"},
		{"flush beats straight", "AC JC 9C 6C 3C", "9S 8D 7C 6H 5S"},
		{"higher kicker wins the pair", "AS AD KC 5H 2S", "AC AH QC 5D 2D"},
		{"higher low pair wins two pair", "JS JD 9S 9C 4H", "JC JH 8S 8C 4D"},
		{"higher straight wins", "TS 9D 8C 7H 6S", "9S 8D 7C 6H 5C"},
		{"broadway beats the wheel", "AS KD QC JH TS", "AC 5D 4C 3H 2S"},
		{"six-high straight beats the wheel", "6S 5D 4C 3H 2S", "AC 5H 4D 3C 2D"},
		{"king-high straight flush beats the steel wheel", "KD QD JD TD 9D", "AH 5H 4H 3H 2H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stronger := Evaluate(mustCards(t, tt.stronger))
			weaker := Evaluate(mustCards(t, tt.weaker))
			if stronger.Compare(weaker) <= 0 {
				t.Errorf("Compare(%+v, %+v) = %d, want > 0",
					stronger, weaker, stronger.Compare(weaker))
			}
			if weaker.Compare(stronger) >= 0 {
				t.Errorf("reverse Compare = %d, want < 0", weaker.Compare(stronger))
			}
		})
	}
}

func TestHandValueCompareTie(t *testing.T) {
	a := Evaluate(mustCards(t, "AS KD QC JH 9S"))
	b := Evaluate(mustCards(t, "AC KH QD JS 9D"))
	if a.Compare(b) != 0 {
		t.Errorf("Compare of identical ranks = %d, want 0", a.Compare(b))
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{HighCard, "highCard"},
		{TwoPair, "twoPair"},
		{FullHouse, "fullHouse"},
		{RoyalFlush, "royalFlush"},
		{Category(0), "unknown"},
		{Category(11), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
