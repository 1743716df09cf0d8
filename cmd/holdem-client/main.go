// Command holdem-client is a terminal client for the holdem server. It
// renders the per-viewer snapshot the server broadcasts and submits ready,
// fold, check, call and raise actions typed at a prompt.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"github.com/cardroom/holdem/internal/game"
	"github.com/cardroom/holdem/internal/server"
)

var CLI struct {
	URL  string `short:"u" default:"ws://localhost:5000/ws" help:"Server websocket URL"`
	Name string `short:"n" help:"Display name to send with the ready action"`
}

func main() {
	kctx := kong.Parse(&CLI)

	conn, _, err := websocket.DefaultDialer.Dial(CLI.URL, nil)
	if err != nil {
		fmt.Printf("Error connecting to %s: %v\n", CLI.URL, err)
		kctx.Exit(1)
	}
	defer conn.Close()

	program := tea.NewProgram(newModel(conn, CLI.Name), tea.WithAltScreen())

	// Server messages arrive on their own goroutine and feed the UI loop.
	go func() {
		for {
			var env server.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				program.Send(disconnectedMsg{err: err})
				return
			}
			switch env.Type {
			case server.TypeWelcome:
				var welcome server.WelcomeData
				if json.Unmarshal(env.Data, &welcome) == nil {
					program.Send(welcomeMsg{playerID: welcome.PlayerID})
				}
			case server.TypeGameState:
				var snap game.Snapshot
				if json.Unmarshal(env.Data, &snap) == nil {
					program.Send(stateMsg{snapshot: &snap})
				}
			}
		}
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		kctx.Exit(1)
	}
}
