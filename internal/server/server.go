// Package server is the WebSocket transport for the table engine. It assigns
// connection identities, relays player actions into the engine, and fans the
// engine's per-viewer snapshots back out to clients. All game rules live in
// internal/game; this package performs no game logic of its own.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/cardroom/holdem/internal/game"
)

// Server accepts WebSocket clients and bridges them to a single table.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *log.Logger
	table    *game.Table

	mu    sync.RWMutex
	conns map[string]*Connection

	httpServer *http.Server
}

// New creates a server for the given table and registers itself as the
// table's broadcast observer.
func New(addr string, table *game.Table, logger *log.Logger) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The browser client is served from a separate origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.WithPrefix("server"),
		table:  table,
		conns:  make(map[string]*Connection),
	}
	table.SetBroadcaster(s)
	return s
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		s.closeAll()
		return s.httpServer.Shutdown(context.Background())
	})
	return g.Wait()
}

// BroadcastState implements game.Broadcaster. Each viewer receives their own
// filtered snapshot; delivery is queued so this never blocks the engine.
func (s *Server) BroadcastState(views map[string]*game.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, view := range views {
		conn, ok := s.conns[id]
		if !ok {
			continue
		}
		msg, err := NewEnvelope(TypeGameState, view)
		if err != nil {
			s.logger.Error("encoding snapshot", "error", err, "player", id)
			continue
		}
		conn.Send(msg)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	playerID := newPlayerID()
	conn := newConnection(playerID, ws, s.logger)

	s.mu.Lock()
	s.conns[playerID] = conn
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("client connected", "player", playerID, "total", total)

	go conn.writePump()

	if msg, err := NewEnvelope(TypeWelcome, WelcomeData{PlayerID: playerID}); err == nil {
		conn.Send(msg)
	}

	// Seating the player triggers a broadcast, so the welcome is queued first.
	s.table.AddPlayer(playerID)

	conn.readLoop(func(action PlayerAction) {
		s.dispatch(playerID, action)
	})

	// readLoop returned: the peer is gone. Folding is implicit in removal.
	s.mu.Lock()
	delete(s.conns, playerID)
	total = len(s.conns)
	s.mu.Unlock()
	s.table.RemovePlayer(playerID)
	s.logger.Info("client disconnected", "player", playerID, "total", total)
}

// dispatch relays a decoded action into the engine. Unknown labels are
// dropped here so the engine only ever sees well-formed actions.
func (s *Server) dispatch(playerID string, action PlayerAction) {
	switch action.Type {
	case ActionReady:
		s.table.SubmitReady(playerID, action.Name)
	case ActionFold:
		s.table.SubmitAction(playerID, game.Fold, 0)
	case ActionCheck:
		s.table.SubmitAction(playerID, game.Check, 0)
	case ActionCall:
		s.table.SubmitAction(playerID, game.Call, 0)
	case ActionRaise:
		s.table.SubmitAction(playerID, game.Raise, action.Amount)
	default:
		s.logger.Debug("unknown action", "player", playerID, "type", action.Type)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		conn.Close()
	}
}

// newPlayerID generates the opaque connection identity that doubles as the
// player's stable id at the table.
func newPlayerID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("server: reading entropy: " + err.Error())
	}
	return hex.EncodeToString(buf[:])
}
