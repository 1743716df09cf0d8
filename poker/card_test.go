package poker

import "testing"

func TestNewCardNormalizesAce(t *testing.T) {
	card := NewCard(1, Spades)
	if card.Rank != Ace {
		t.Errorf("NewCard(1, Spades).Rank = %d, want %d", card.Rank, Ace)
	}
}

func TestCardKnown(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"zero card is face down", Card{}, false},
		{"deuce", Card{Rank: Two, Suit: Clubs}, true},
		{"ace", Card{Rank: Ace, Suit: Hearts}, true},
		{"rank out of range", Card{Rank: 15, Suit: Spades}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Known(); got != tt.want {
				t.Errorf("Known() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: Ace, Suit: Spades}, "AS"},
		{Card{Rank: Ten, Suit: Diamonds}, "TD"},
		{Card{Rank: Two, Suit: Hearts}, "2H"},
		{Card{Rank: King, Suit: Clubs}, "KC"},
		{Card{}, "??"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.card, got, tt.want)
		}
	}
}
