package game

import "github.com/cardroom/holdem/poker"

// Position is a seat's role for the current hand.
type Position string

const (
	NoPosition Position = ""
	Dealer     Position = "dealer"
	SmallBlind Position = "sb"
	BigBlind   Position = "bb"
)

// Action is the label of a player's last action this street.
type Action string

const (
	NoAction Action = "none"
	Fold     Action = "fold"
	Check    Action = "check"
	Call     Action = "call"
	Raise    Action = "raise"
)

// Player is the mutable per-seat state. Identity and chip stack persist
// across hands; cards, commitments, flags and the pot index are hand-scoped.
type Player struct {
	ID   string
	Name string

	Cards []poker.Card
	Chips int

	Ready        bool
	Position     Position
	ChipsOnTable int // committed this street, moves into the pots on street end
	Action       Action
	OnTurn       bool
	Acted        bool

	// Cached for live display, refreshed on every street.
	BestHand []poker.Card
	Category poker.Category

	// Highest pot layer this player is eligible to win, assigned during
	// pot collection.
	PotIndex int
}

// NewPlayer seats a player with the starting stack. The connection id doubles
// as the default display name until the player submits a ready action.
func NewPlayer(id string, chips int) *Player {
	return &Player{
		ID:       id,
		Name:     id,
		Chips:    chips,
		Action:   NoAction,
		Category: poker.HighCard,
	}
}

// bet moves amount from the stack to this street's commitment, capped at the
// remaining stack. Going all-in is implicit when the cap applies.
func (p *Player) bet(amount int) {
	if amount > p.Chips {
		amount = p.Chips
	}
	if amount < 0 {
		amount = 0
	}
	p.Chips -= amount
	p.ChipsOnTable += amount
}

// win credits a pot share to the stack.
func (p *Player) win(amount int) {
	p.Chips += amount
}

// HasCards reports whether the player is still in the hand. A folded or
// freshly seated player holds no cards and is excluded from turn order.
func (p *Player) HasCards() bool {
	return len(p.Cards) > 0
}

// AllIn reports whether the player has no chips behind.
func (p *Player) AllIn() bool {
	return p.Chips == 0
}

func (p *Player) fold() {
	p.Cards = nil
	p.Action = Fold
	p.Acted = true
	p.OnTurn = false
}

func (p *Player) check() {
	p.Action = Check
	p.Acted = true
	p.OnTurn = false
}

// call matches the street's required commitment, capped at the stack.
func (p *Player) call(required int) {
	p.bet(required - p.ChipsOnTable)
	p.Action = Call
	p.Acted = true
	p.OnTurn = false
}

// raise commits amount on top of this street's existing commitment.
func (p *Player) raise(amount int) {
	p.bet(amount)
	p.Action = Raise
	p.Acted = true
	p.OnTurn = false
}

func (p *Player) postSmallBlind(amount int) {
	p.bet(amount)
	p.Position = SmallBlind
}

func (p *Player) postBigBlind(amount int) {
	p.bet(amount)
	p.Position = BigBlind
}

func (p *Player) takeTurn() {
	p.OnTurn = true
}

// resetActed clears the acted flag for a new matching round. Players who are
// folded or all-in cannot act again and stay marked as acted.
func (p *Player) resetActed() {
	if p.Chips == 0 || !p.HasCards() {
		p.Acted = true
		return
	}
	p.Acted = false
}

func (p *Player) resetAction() {
	p.Action = NoAction
}

// resetHand clears all hand-scoped state once a hand completes.
func (p *Player) resetHand() {
	p.Cards = nil
	p.ChipsOnTable = 0
	p.Position = NoPosition
	p.Action = NoAction
	p.OnTurn = false
	p.Acted = false
	p.BestHand = nil
	p.Category = poker.HighCard
	p.PotIndex = 0
}
