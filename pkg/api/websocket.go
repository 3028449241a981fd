package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/google/uuid"
)

// firehoseChannel receives every workflow event regardless of workflow id.
const firehoseChannel = "workflows"

// heartbeatInterval is how often the hub pings idle connections.
const heartbeatInterval = 30 * time.Second

// ClientMessage is the inbound WebSocket protocol: subscribe/unsubscribe
// to a workflow id (or the "workflows" firehose), plus ping.
type ClientMessage struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// Hub fans workflow events out to WebSocket subscribers. It implements
// the orchestrator's event sink; Publish never blocks the caller.
type Hub struct {
	logger       *slog.Logger
	writeTimeout time.Duration

	mu          sync.RWMutex
	connections map[string]*wsConn

	channelMu sync.RWMutex
	channels  map[string]map[string]bool
}

// wsConn is a single WebSocket client. subscriptions is only touched by
// the connection's own read loop and its deferred cleanup.
type wsConn struct {
	id            string
	conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewHub creates a hub with the given per-send write timeout.
func NewHub(writeTimeout time.Duration, logger *slog.Logger) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Hub{
		logger:       logger.With("component", "ws_hub"),
		writeTimeout: writeTimeout,
		connections:  make(map[string]*wsConn),
		channels:     make(map[string]map[string]bool),
	}
}

var _ orchestrator.EventSink = (*Hub)(nil)

// Publish forwards one workflow event to subscribers of its workflow id
// and of the firehose channel. Sends happen off the caller's goroutine.
func (h *Hub) Publish(event orchestrator.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("Failed to marshal event", "type", event.Type, "error", err)
		return
	}
	go func() {
		h.broadcast(event.WorkflowID, data)
		h.broadcast(firehoseChannel, data)
	}()
}

func (h *Hub) broadcast(channel string, data []byte) {
	h.channelMu.RLock()
	subs, ok := h.channels[channel]
	if !ok {
		h.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	h.channelMu.RUnlock()

	// Snapshot connection pointers so slow writes never hold the lock.
	h.mu.RLock()
	conns := make([]*wsConn, 0, len(ids))
	for _, id := range ids {
		if c, exists := h.connections[id]; exists {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := h.sendRaw(c, data); err != nil {
			h.logger.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "error", err)
		}
	}
}

// HandleConnection owns one upgraded connection: registration, the read
// loop for subscribe/unsubscribe, and a heartbeat pinger. Blocks until
// the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsConn{
		id:            uuid.NewString(),
		conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	h.register(c)
	defer h.unregister(c)

	h.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	go h.heartbeat(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("Invalid WebSocket message",
				"connection_id", c.id, "error", err)
			continue
		}
		h.handleClientMessage(c, &msg)
	}
}

// heartbeat pings the client on a fixed interval so dead connections are
// detected even when no events flow.
func (h *Hub) heartbeat(c *wsConn) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				c.cancel()
				return
			}
		}
	}
}

func (h *Hub) handleClientMessage(c *wsConn, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		h.subscribe(c, msg.Channel)
		h.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
	case "unsubscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		h.unsubscribe(c, msg.Channel)
	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

func (h *Hub) subscribe(c *wsConn, channel string) {
	h.channelMu.Lock()
	if _, ok := h.channels[channel]; !ok {
		h.channels[channel] = make(map[string]bool)
	}
	h.channels[channel][c.id] = true
	h.channelMu.Unlock()
	c.subscriptions[channel] = true
}

func (h *Hub) unsubscribe(c *wsConn, channel string) {
	h.channelMu.Lock()
	if subs, ok := h.channels[channel]; ok {
		delete(subs, c.id)
		if len(subs) == 0 {
			delete(h.channels, channel)
		}
	}
	h.channelMu.Unlock()
	delete(c.subscriptions, channel)
}

func (h *Hub) register(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.id] = c
}

func (h *Hub) unregister(c *wsConn) {
	for ch := range c.subscriptions {
		h.unsubscribe(c, ch)
	}
	h.mu.Lock()
	delete(h.connections, c.id)
	h.mu.Unlock()
	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

// ActiveConnections returns the count of live WebSocket connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) subscriberCount(channel string) int {
	h.channelMu.RLock()
	defer h.channelMu.RUnlock()
	return len(h.channels[channel])
}

func (h *Hub) sendJSON(c *wsConn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("Failed to marshal WebSocket message",
			"connection_id", c.id, "error", err)
		return
	}
	if err := h.sendRaw(c, data); err != nil {
		h.logger.Warn("Failed to send WebSocket message",
			"connection_id", c.id, "error", err)
	}
}

func (h *Hub) sendRaw(c *wsConn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
