// Package poker provides the card primitives and hand evaluation used by the
// table engine: immutable rank+suit values, a randomly drawn deck, a 5-card
// hand classifier and best-hand selection over hole+community cards.
package poker

import "fmt"

// Suit is the single-letter suit code carried on the wire.
type Suit string

const (
	Spades   Suit = "S"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Hearts   Suit = "H"
)

// Suits lists all four suits in deck-build order.
var Suits = [4]Suit{Spades, Diamonds, Clubs, Hearts}

// Rank is a card rank with aces normalized high (2..14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the short rank symbol.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable rank+suit value. The zero Card is the face-down
// placeholder used when another player's hole cards are redacted from a view.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a card. A rank of 1 is normalized to an ace-high 14.
func NewCard(rank Rank, suit Suit) Card {
	if rank == 1 {
		rank = Ace
	}
	return Card{Rank: rank, Suit: suit}
}

// Known reports whether the card carries a real value, as opposed to the
// face-down placeholder.
func (c Card) Known() bool {
	return c.Rank >= Two && c.Rank <= Ace
}

// String returns the card as rank+suit, e.g. "AS" or "TD".
func (c Card) String() string {
	if !c.Known() {
		return "??"
	}
	return c.Rank.String() + string(c.Suit)
}
