package game

import "github.com/cardroom/holdem/poker"

// PlayerSnapshot is the wire representation of a seat.
type PlayerSnapshot struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Chips        int          `json:"chips"`
	Cards        []poker.Card `json:"cards"`
	Ready        bool         `json:"ready"`
	Position     Position     `json:"position"`
	ChipsOnTable int          `json:"chipsOnTable"`
	Action       Action       `json:"actionThisTurn"`
	OnTurn       bool         `json:"onTurn"`
	Acted        bool         `json:"acted"`
	CardRank     string       `json:"cardRank"`
	BestHand     []poker.Card `json:"bestHand"`
	PotIndex     int          `json:"potIndex"`
}

// Snapshot is a read-only projection of the table state. It never aliases
// the engine's internal containers, so holding one across mutations is safe.
type Snapshot struct {
	Players        []PlayerSnapshot `json:"players"`
	CommunityCards []poker.Card     `json:"communityCards"`
	Pots           []int            `json:"pot"`
	Started        bool             `json:"started"`
	Street         string           `json:"stage"`
	RequiredCall   int              `json:"maxChipsOnTable"`
	HandCounter    int              `json:"gameIndex"`
	Winners        [][]string       `json:"winners,omitempty"`
}

// CurrentView returns an unfiltered snapshot of the table.
func (t *Table) CurrentView() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot("", false)
}

// FilteredView returns the snapshot as the given viewer may see it: every
// other card-holding player's hole cards become face-down placeholders, and
// their cached hand category and best hand read as unknown. At showdown the
// view is unfiltered for all viewers.
func (t *Table) FilteredView(viewerID string) *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot(viewerID, t.street != Showdown)
}

// viewsLocked builds the per-viewer snapshots for a broadcast. Callers hold
// the table lock.
func (t *Table) viewsLocked() map[string]*Snapshot {
	views := make(map[string]*Snapshot, len(t.players))
	if t.street == Showdown {
		// Showdown reveals every live hand to every viewer.
		shared := t.snapshot("", false)
		for _, p := range t.players {
			views[p.ID] = shared
		}
		return views
	}
	for _, p := range t.players {
		views[p.ID] = t.snapshot(p.ID, true)
	}
	return views
}

func (t *Table) snapshot(viewerID string, filtered bool) *Snapshot {
	players := make([]PlayerSnapshot, len(t.players))
	for i, p := range t.players {
		ps := PlayerSnapshot{
			ID:           p.ID,
			Name:         p.Name,
			Chips:        p.Chips,
			Cards:        append([]poker.Card{}, p.Cards...),
			Ready:        p.Ready,
			Position:     p.Position,
			ChipsOnTable: p.ChipsOnTable,
			Action:       p.Action,
			OnTurn:       p.OnTurn,
			Acted:        p.Acted,
			CardRank:     p.Category.String(),
			BestHand:     append([]poker.Card{}, p.BestHand...),
			PotIndex:     p.PotIndex,
		}
		if filtered && p.ID != viewerID && p.HasCards() {
			ps.Cards = []poker.Card{{}, {}}
			ps.CardRank = "unknown"
			ps.BestHand = nil
		}
		players[i] = ps
	}

	return &Snapshot{
		Players:        players,
		CommunityCards: append([]poker.Card{}, t.community...),
		Pots:           append([]int{}, t.pots...),
		Started:        t.started,
		Street:         t.street.String(),
		RequiredCall:   t.requiredCall,
		HandCounter:    t.handCounter,
		Winners:        t.winners.ids(),
	}
}
