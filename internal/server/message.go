package server

import (
	"encoding/json"
	"time"
)

// Envelope is the framing for every WebSocket message in both directions.
type Envelope struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope wraps a payload with its type and the current timestamp.
func NewEnvelope(msgType string, data any) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Type:      msgType,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}

// Message types.
const (
	// Client to server.
	TypePlayerAction = "playerAction"

	// Server to client.
	TypeWelcome   = "welcome"
	TypeGameState = "gameState"
)

// WelcomeData tells a freshly connected client the identity its seat was
// registered under.
type WelcomeData struct {
	PlayerID string `json:"playerId"`
}

// PlayerAction is the single inbound payload: ready (with a display name),
// fold, check, call, or raise (with an amount).
type PlayerAction struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

// Action type labels accepted from clients.
const (
	ActionReady = "ready"
	ActionFold  = "fold"
	ActionCheck = "check"
	ActionCall  = "call"
	ActionRaise = "raise"
)
