// Package game implements the rules engine for a single Texas Hold'em table:
// betting streets, turn order, button rotation, side-pot accounting and
// winner resolution. The engine performs no I/O; a Broadcaster injected by
// the transport layer is invoked after every committed mutation.
package game

import (
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardroom/holdem/poker"
)

// Street is a betting round.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Config holds the table parameters. The small blind is half the big blind.
type Config struct {
	BigBlind      int
	StartingChips int
	ShowdownPause time.Duration
}

// DefaultConfig returns the stakes the table runs with unless configured
// otherwise.
func DefaultConfig() Config {
	return Config{
		BigBlind:      20,
		StartingChips: 2000,
		ShowdownPause: 5 * time.Second,
	}
}

// Broadcaster receives per-viewer snapshots after each committed mutation.
// Implementations must not call back into the table from BroadcastState.
type Broadcaster interface {
	BroadcastState(views map[string]*Snapshot)
}

// Table is the state machine for one table. All mutations are serialized
// behind a single mutex; during the showdown pause the state is frozen until
// the payout timer fires.
type Table struct {
	mu          sync.Mutex
	logger      *log.Logger
	clock       quartz.Clock
	cfg         Config
	broadcaster Broadcaster

	players      []*Player
	community    []poker.Card
	pots         []int
	deck         *poker.Deck
	street       Street
	requiredCall int
	handCounter  int
	started      bool
	winners      tierList
}

// NewTable creates a table. The RNG drives the deck; pass a fixed-seed RNG in
// tests and randutil.NewUnpredictable() in production.
func NewTable(cfg Config, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) *Table {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Table{
		logger: logger.WithPrefix("table"),
		clock:  clock,
		cfg:    cfg,
		deck:   poker.NewDeck(rng),
		pots:   []int{0},
		street: Preflop,
	}
}

// SetBroadcaster attaches the transport observer.
func (t *Table) SetBroadcaster(b Broadcaster) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.broadcaster = b
}

// AddPlayer seats a new player with the starting stack. Seats keep their
// join order for the table's lifetime.
func (t *Table) AddPlayer(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.playerIndex(id) != -1 {
		return
	}
	t.players = append(t.players, NewPlayer(id, t.cfg.StartingChips))
	t.logger.Info("player seated", "player", id, "seats", len(t.players))
	t.notify()
}

// RemovePlayer folds the player if a hand is active, then removes the seat.
// During the showdown pause only the cards are cleared; payout recipients
// were captured at showdown entry, so a departing winner is still paid
// before the seat disappears.
func (t *Table) RemovePlayer(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.playerIndex(id)
	if idx == -1 {
		return
	}
	p := t.players[idx]
	// A departing player must not count toward the next hand's readiness.
	p.Ready = false

	if t.started && p.HasCards() {
		if t.street == Showdown {
			p.fold()
		} else {
			p.fold()
			t.afterAction(idx)
		}
	}

	idx = t.playerIndex(id)
	t.players = append(t.players[:idx], t.players[idx+1:]...)
	t.logger.Info("player removed", "player", id, "seats", len(t.players))
	t.startIfReady()
	t.notify()
}

// SubmitReady marks a player ready and sets their display name. When every
// seated player (at least two) is ready, a hand starts. A duplicate ready is
// dropped without any state change.
func (t *Table) SubmitReady(id, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.playerIndex(id)
	if idx == -1 {
		return
	}
	p := t.players[idx]
	if p.Ready {
		return
	}
	p.Ready = true
	if name != "" {
		p.Name = name
	}

	t.startIfReady()
	t.notify()
}

// SubmitAction applies a betting action for the player. Actions from a
// player not on turn, and unknown action labels, are dropped without any
// state change. Call and raise amounts are capped at the player's stack; the
// engine performs no raise-sizing validation beyond that cap.
func (t *Table) SubmitAction(id string, action Action, amount int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.playerIndex(id)
	if idx == -1 {
		return
	}
	p := t.players[idx]
	if !p.OnTurn {
		return
	}

	switch action {
	case Fold:
		p.fold()
	case Check:
		p.check()
	case Call:
		p.call(t.requiredCall)
	case Raise:
		// A raise reopens the action: everyone else must match again.
		t.resetActedAll()
		p.raise(amount)
		t.requiredCall = p.ChipsOnTable
	default:
		return
	}

	t.logger.Debug("action", "player", p.Name, "action", action, "amount", amount, "street", t.street)
	t.afterAction(idx)
	t.notify()
}

// startHand deals a fresh hand: full deck, two cards per seat, blinds, and
// the button advanced one seat from the previous hand.
func (t *Table) startHand() {
	t.started = true
	t.handCounter++
	t.deck.Reset()

	for _, p := range t.players {
		p.Cards = []poker.Card{t.draw(), t.draw()}
	}
	t.recomputeBestHands()

	for _, p := range t.players {
		p.Ready = false
		p.Position = NoPosition
	}
	t.resetActedAll()
	t.resetActionsAll()

	n := len(t.players)
	dealer := t.handCounter % n
	sb := (t.handCounter + 1) % n
	bb := (t.handCounter + 2) % n
	utg := (t.handCounter + 3) % n

	t.players[dealer].Position = Dealer
	t.players[sb].postSmallBlind(t.cfg.BigBlind / 2)
	t.players[bb].postBigBlind(t.cfg.BigBlind)
	t.takeTurn(utg)
	t.requiredCall = t.cfg.BigBlind

	t.logger.Info("hand started", "hand", t.handCounter, "dealer", t.players[dealer].Name, "players", n)
}

// afterAction advances the turn after the seat at idx acted. If only one
// seat still holds cards the hand ends immediately and that seat collects
// the entire pot; if the next seat already acted the street is complete.
func (t *Table) afterAction(idx int) {
	next := t.nextActive(idx)
	if next == -1 {
		return
	}

	if t.nextActive(next) == -1 {
		t.collectStreet()
		winner := t.players[next]
		total := potTotal(t.pots)
		winner.win(total)
		t.logger.Info("hand won uncontested", "player", winner.Name, "pot", total)
		t.resetHand()
		t.startIfReady()
		return
	}

	if t.players[next].Acted {
		t.advanceStreet()
	} else {
		t.takeTurn(next)
	}
}

// advanceStreet collects the street's commitments into the pot layers, deals
// the next community cards and resumes the turn order at the small blind.
// When all but at most one live player are folded or all-in, remaining
// streets cascade automatically until showdown.
func (t *Table) advanceStreet() {
	t.resetActedAll()
	t.resetActionsAll()
	t.collectStreet()

	sbIdx := t.positionIndex(SmallBlind)

	switch t.street {
	case Preflop:
		t.street = Flop
		t.community = append(t.community, t.draw(), t.draw(), t.draw())
	case Flop:
		t.street = Turn
		t.community = append(t.community, t.draw())
	case Turn:
		t.street = River
		t.community = append(t.community, t.draw())
	case River:
		t.street = Showdown
		t.winners = resolveWinners(t.players, t.community)
		t.logger.Info("showdown", "hand", t.handCounter, "tiers", len(t.winners.groups), "pots", len(t.pots))
		t.clock.AfterFunc(t.cfg.ShowdownPause, t.finishShowdown)
		return
	default:
		return
	}

	t.logger.Debug("street", "street", t.street, "community", t.community, "pots", t.pots)
	t.recomputeBestHands()

	if t.countNotActed() <= 1 {
		t.advanceStreet()
		return
	}
	t.takeTurn(sbIdx)
}

// finishShowdown runs when the showdown pause elapses: pay each pot layer to
// its winning tier, then fully reset the hand.
func (t *Table) finishShowdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.street != Showdown {
		return
	}
	t.winners.payout(t.pots)
	t.logger.Info("hand paid out", "hand", t.handCounter, "pot", potTotal(t.pots))
	t.resetHand()

	// Players may have readied up during the pause; those readies arrived
	// mid-hand, so the next hand starts here rather than in SubmitReady.
	t.startIfReady()
	t.notify()
}

// startIfReady begins a hand once every seat (at least two) is ready. Ready
// flags submitted mid-hand survive the reset, so this runs after every hand
// end as well as after each ready message.
func (t *Table) startIfReady() {
	if !t.started && len(t.players) >= 2 && t.allReady() {
		t.startHand()
	}
}

// resetHand clears all hand-scoped state; stacks carry over.
func (t *Table) resetHand() {
	for _, p := range t.players {
		p.resetHand()
	}
	t.community = nil
	t.pots = []int{0}
	t.street = Preflop
	t.requiredCall = 0
	t.started = false
	t.winners = tierList{}
}

func (t *Table) collectStreet() {
	t.pots = collectPots(t.pots, t.players)
	t.requiredCall = 0
}

// nextActive scans forward cyclically from the given seat for the next seat
// holding cards. It returns -1 only when no other seat holds cards, which is
// the hand-ending condition rather than an error.
func (t *Table) nextActive(from int) int {
	n := len(t.players)
	if n == 0 {
		return -1
	}
	for i := 1; i <= n; i++ {
		idx := ((from+i)%n + n) % n
		if idx == from {
			continue
		}
		if t.players[idx].HasCards() {
			return idx
		}
	}
	return -1
}

// takeTurn gives the turn to the seat at idx, or to the next card-holding
// seat when idx is vacant or out of the hand.
func (t *Table) takeTurn(idx int) {
	if idx < 0 || idx >= len(t.players) || !t.players[idx].HasCards() {
		idx = t.nextActive(idx)
		if idx == -1 {
			return
		}
	}
	t.players[idx].takeTurn()
}

func (t *Table) draw() poker.Card {
	card, ok := t.deck.Draw()
	if !ok {
		// Deck size against table size bounds makes this unreachable in
		// normal play.
		panic("game: draw from empty deck")
	}
	return card
}

// recomputeBestHands refreshes the cached best hand and category for every
// player still holding cards, for live display.
func (t *Table) recomputeBestHands() {
	for _, p := range t.players {
		if !p.HasCards() {
			continue
		}
		best, value := poker.BestHand(append(append([]poker.Card{}, p.Cards...), t.community...))
		p.BestHand = best
		p.Category = value.Category
	}
}

func (t *Table) resetActedAll() {
	for _, p := range t.players {
		p.resetActed()
	}
}

func (t *Table) resetActionsAll() {
	for _, p := range t.players {
		p.resetAction()
	}
}

func (t *Table) countNotActed() int {
	count := 0
	for _, p := range t.players {
		if !p.Acted {
			count++
		}
	}
	return count
}

func (t *Table) allReady() bool {
	for _, p := range t.players {
		if !p.Ready {
			return false
		}
	}
	return true
}

func (t *Table) playerIndex(id string) int {
	for i, p := range t.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (t *Table) positionIndex(pos Position) int {
	for i, p := range t.players {
		if p.Position == pos {
			return i
		}
	}
	return -1
}

// notify hands the transport a complete set of per-viewer snapshots. Called
// with the table lock held; the broadcaster only queues the payloads.
func (t *Table) notify() {
	if t.broadcaster == nil || len(t.players) == 0 {
		return
	}
	t.broadcaster.BroadcastState(t.viewsLocked())
}
