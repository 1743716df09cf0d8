package poker

import rand "math/rand/v2"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is a shrinking pool of the 52 distinct cards. Every draw removes a
// uniformly random remaining card, which is statistically equivalent to
// dealing from a shuffled deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full deck drawing from the provided RNG.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Draw removes and returns one uniformly random remaining card. The second
// return is false only when the deck is exhausted, which given the deck-size
// versus table-size bounds indicates a broken invariant in the caller.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	i := d.rng.IntN(len(d.cards))
	card := d.cards[i]
	d.cards[i] = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the deck to the full 52 cards.
func (d *Deck) Reset() {
	d.fill()
}
