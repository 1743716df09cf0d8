package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cardroom/holdem/poker"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	turnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))

	redSuit   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	blackSuit = lipgloss.NewStyle()
)

func init() {
	// On light terminals the default foreground reads better than faint grey.
	if !termenv.HasDarkBackground() {
		faintStyle = lipgloss.NewStyle()
	}
}

var suitSymbols = map[poker.Suit]string{
	poker.Spades:   "♠",
	poker.Hearts:   "♥",
	poker.Diamonds: "♦",
	poker.Clubs:    "♣",
}

// renderCard formats one card, red for hearts and diamonds, "??" face down.
func renderCard(c poker.Card) string {
	if !c.Known() {
		return faintStyle.Render("??")
	}
	text := c.Rank.String() + suitSymbols[c.Suit]
	if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
		return redSuit.Render(text)
	}
	return blackSuit.Render(text)
}

func renderCards(cards []poker.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += renderCard(c)
	}
	return out
}
