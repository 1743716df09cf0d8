package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 8192
)

// Connection wraps a client WebSocket with a buffered outbound queue so that
// broadcasts never block the table's lock on a slow peer.
type Connection struct {
	playerID  string
	conn      *websocket.Conn
	send      chan *Envelope
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newConnection(playerID string, conn *websocket.Conn, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		playerID: playerID,
		conn:     conn,
		send:     make(chan *Envelope, 64),
		logger:   logger.WithPrefix("conn").With("player", playerID),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Send queues a message for delivery. A full buffer drops the connection;
// the client is expected to resynchronize from the next broadcast anyway.
func (c *Connection) Send(msg *Envelope) {
	select {
	case <-c.ctx.Done():
	case c.send <- msg:
	default:
		c.logger.Warn("send buffer full, dropping connection")
		c.Close()
	}
}

// Close shuts the connection down once.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		_ = c.conn.Close()
	})
}

// writePump serializes all writes to the peer and keeps it alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

// readLoop decodes inbound envelopes and hands them to the dispatcher until
// the peer goes away.
func (c *Connection) readLoop(dispatch func(PlayerAction)) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("read failed", "error", err)
			}
			return
		}
		if env.Type != TypePlayerAction {
			c.logger.Debug("ignoring message", "type", env.Type)
			continue
		}
		var action PlayerAction
		if err := json.Unmarshal(env.Data, &action); err != nil {
			c.logger.Debug("bad action payload", "error", err)
			continue
		}
		dispatch(action)
	}
}
