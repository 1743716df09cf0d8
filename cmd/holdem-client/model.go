package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"

	"github.com/cardroom/holdem/internal/game"
	"github.com/cardroom/holdem/internal/server"
)

type welcomeMsg struct{ playerID string }
type stateMsg struct{ snapshot *game.Snapshot }
type disconnectedMsg struct{ err error }

type model struct {
	conn *websocket.Conn
	name string

	input    textinput.Model
	playerID string
	snap     *game.Snapshot
	status   string
	width    int
	quitting bool
}

func newModel(conn *websocket.Conn, name string) model {
	ti := textinput.New()
	ti.Placeholder = "ready <name> | fold | check | call | raise <amount>"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return model{
		conn:   conn,
		name:   name,
		input:  ti,
		status: "connecting...",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case welcomeMsg:
		m.playerID = msg.playerID
		m.status = "connected, type 'ready' to play"
		return m, nil

	case stateMsg:
		m.snap = msg.snapshot
		return m, nil

	case disconnectedMsg:
		m.status = errorStyle.Render(fmt.Sprintf("disconnected: %v", msg.err))
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.status = m.submit(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses a typed command and sends it as a player action.
func (m model) submit(line string) string {
	if line == "" {
		return m.status
	}
	fields := strings.Fields(line)
	action := server.PlayerAction{Type: fields[0]}

	switch fields[0] {
	case server.ActionReady:
		action.Name = m.name
		if len(fields) > 1 {
			action.Name = strings.Join(fields[1:], " ")
		}
	case server.ActionFold, server.ActionCheck, server.ActionCall:
	case server.ActionRaise:
		if len(fields) < 2 {
			return errorStyle.Render("usage: raise <amount>")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil || amount <= 0 {
			return errorStyle.Render("raise amount must be a positive number")
		}
		action.Amount = amount
	default:
		return errorStyle.Render("unknown command: " + fields[0])
	}

	env, err := server.NewEnvelope(server.TypePlayerAction, action)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	if err := m.conn.WriteJSON(env); err != nil {
		return errorStyle.Render("send failed: " + err.Error())
	}
	return "sent " + fields[0]
}

func (m model) View() string {
	if m.quitting {
		return m.status + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("holdem") + "\n\n")

	if m.snap == nil {
		b.WriteString(faintStyle.Render("waiting for table state...") + "\n")
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(faintStyle.Render(m.status) + "\n")
	return b.String()
}

func (m model) renderTable() string {
	snap := m.snap
	var b strings.Builder

	header := fmt.Sprintf("hand #%d  %s  pot %d  to call %d",
		snap.HandCounter, snap.Street, sum(snap.Pots), snap.RequiredCall)
	b.WriteString(faintStyle.Render(header) + "\n")

	if len(snap.CommunityCards) > 0 {
		b.WriteString("board: " + renderCards(snap.CommunityCards) + "\n")
	}
	b.WriteString("\n")

	for _, p := range snap.Players {
		line := fmt.Sprintf("%-12s %6d chips  %4d in  %-5s %s",
			p.Name, p.Chips, p.ChipsOnTable, p.Action, renderCards(p.Cards))
		if len(p.Cards) > 0 && p.Cards[0].Known() {
			line += faintStyle.Render("  (" + p.CardRank + ")")
		}
		switch {
		case p.OnTurn:
			line = turnStyle.Render("→ ") + line
		case p.ID == m.playerID:
			line = lipgloss.NewStyle().Bold(true).Render("• ") + line
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if len(snap.Winners) > 0 {
		b.WriteString("\n" + winnerStyle.Render("showdown: "+m.describeWinners()) + "\n")
	}
	return b.String()
}

func (m model) describeWinners() string {
	names := make(map[string]string, len(m.snap.Players))
	for _, p := range m.snap.Players {
		names[p.ID] = p.Name
	}
	var tiers []string
	for _, tier := range m.snap.Winners {
		var members []string
		for _, id := range tier {
			members = append(members, names[id])
		}
		tiers = append(tiers, strings.Join(members, " = "))
	}
	return strings.Join(tiers, " > ")
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
