// Package bus implements in-process message routing between workers:
// bounded per-agent inbound queues, a single-writer dispatch loop, and
// request/response correlation.
//
// Delivery is best-effort within the process lifetime. For any single
// sender→recipient pair delivery is FIFO; across senders there is no
// ordering guarantee.
package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/google/uuid"
)

// Sentinel errors.
var (
	ErrQueueFull        = errors.New("queue full")
	ErrRecipientUnknown = errors.New("recipient unknown")
	ErrTimeout          = errors.New("response timeout")
	ErrCancelled        = errors.New("cancelled")
	ErrClosed           = errors.New("bus closed")
)

// Handler consumes inbound messages for one agent. Handlers run on the
// agent's consumer goroutine, one message at a time, preserving FIFO
// order. Panics are recovered and logged, never propagated.
type Handler func(msg models.Message)

type agentQueue struct {
	inbound chan models.Message
	stop    chan struct{}

	mu      sync.Mutex
	handler Handler
	running bool
}

// Waiter is the handle returned by Send for requires_response messages.
type Waiter struct {
	bus     *Bus
	id      string
	ch      chan models.Message
	timeout time.Duration
}

// Wait blocks until the correlated response arrives, the timeout elapses,
// or ctx is cancelled. A timed-out or cancelled waiter is deregistered so
// abandoned requests do not accumulate.
func (w *Waiter) Wait(ctx context.Context) (models.Message, error) {
	timer := time.NewTimer(w.timeout)
	defer timer.Stop()
	select {
	case msg, ok := <-w.ch:
		if !ok {
			return models.Message{}, ErrCancelled
		}
		return msg, nil
	case <-timer.C:
		w.bus.removeWaiter(w.id)
		return models.Message{}, ErrTimeout
	case <-ctx.Done():
		w.bus.removeWaiter(w.id)
		return models.Message{}, ctx.Err()
	}
}

// Bus routes messages between registered agents.
type Bus struct {
	cfg    config.BusConfig
	logger *slog.Logger

	mu     sync.RWMutex
	agents map[string]*agentQueue
	closed bool

	waiterMu sync.Mutex
	waiters  map[string]chan models.Message

	global chan models.Message
	done   chan struct{}
	wg     sync.WaitGroup
}

// New builds a bus; call Start before sending.
func New(cfg config.BusConfig, logger *slog.Logger) *Bus {
	if cfg.AgentQueueSize <= 0 {
		cfg = config.DefaultBus()
	}
	return &Bus{
		cfg:     cfg,
		logger:  logger.With("component", "bus"),
		agents:  make(map[string]*agentQueue),
		waiters: make(map[string]chan models.Message),
		global:  make(chan models.Message, cfg.GlobalQueueSize),
		done:    make(chan struct{}),
	}
}

// Start launches the dispatch loop.
func (b *Bus) Start() {
	b.wg.Add(1)
	go b.dispatchLoop()
}

// Stop shuts the dispatcher down and releases all pending waiters with
// ErrCancelled.
func (b *Bus) Stop() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.done)
	b.wg.Wait()
	b.ReleaseAll()

	b.mu.Lock()
	for id, q := range b.agents {
		close(q.stop)
		delete(b.agents, id)
	}
	b.mu.Unlock()
}

// dispatchLoop is the single writer to recipient queues. A panic restarts
// the loop; queued messages are preserved.
func (b *Bus) dispatchLoop() {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Dispatcher panicked, restarting", "panic", r)
			go b.dispatchLoop()
			return
		}
		b.wg.Done()
	}()

	for {
		select {
		case <-b.done:
			return
		case msg := <-b.global:
			b.route(msg)
		}
	}
}

func (b *Bus) route(msg models.Message) {
	if msg.Expired(time.Now()) {
		b.logger.Info("Dropping expired message",
			"message_id", msg.ID, "sender", msg.Sender, "ttl_seconds", msg.TTLSeconds)
		return
	}

	// Correlated responses complete the pending waiter instead of being
	// queued for the recipient. A response whose waiter is gone (already
	// answered, timed out, or released) is dropped, never broadcast.
	if msg.CorrelationID != "" && (msg.Type == models.MessageResponse || msg.Type == models.MessageResult) {
		if !b.completeWaiter(msg.CorrelationID, msg) {
			b.logger.Debug("Dropping response with no pending waiter",
				"message_id", msg.ID, "correlation_id", msg.CorrelationID, "sender", msg.Sender)
		}
		return
	}

	if msg.Recipient == "" || msg.Type == models.MessageBroadcast {
		b.mu.RLock()
		recipients := make([]string, 0, len(b.agents))
		for id := range b.agents {
			if id != msg.Sender {
				recipients = append(recipients, id)
			}
		}
		b.mu.RUnlock()
		for _, id := range recipients {
			b.deliver(id, msg)
		}
		return
	}

	b.deliver(msg.Recipient, msg)
}

func (b *Bus) deliver(agentID string, msg models.Message) {
	b.mu.RLock()
	q, ok := b.agents[agentID]
	b.mu.RUnlock()
	if !ok {
		b.logger.Warn("Dropping message for unknown recipient",
			"message_id", msg.ID, "recipient", agentID, "sender", msg.Sender)
		return
	}

	select {
	case q.inbound <- msg:
		if msg.Priority == models.PriorityCritical || msg.Priority == models.PriorityHigh {
			b.logger.Debug("Delivered priority message",
				"message_id", msg.ID, "recipient", agentID, "priority", msg.Priority)
		}
	default:
		// Never block the dispatcher on a slow consumer. requires_response
		// senders will time out.
		b.logger.Warn("Dropping message, recipient queue full",
			"message_id", msg.ID, "recipient", agentID, "sender", msg.Sender,
			"capacity", b.cfg.AgentQueueSize)
	}
}

// Register creates the agent's inbound queue. Idempotent.
func (b *Bus) Register(agentID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if _, exists := b.agents[agentID]; exists {
		return
	}
	b.agents[agentID] = &agentQueue{
		inbound: make(chan models.Message, b.cfg.AgentQueueSize),
		stop:    make(chan struct{}),
	}
	b.logger.Debug("Agent registered", "agent_id", agentID)
}

// Unregister drops the agent's queue along with any pending messages.
// Idempotent.
func (b *Bus) Unregister(agentID string) {
	b.mu.Lock()
	q, ok := b.agents[agentID]
	if ok {
		delete(b.agents, agentID)
	}
	b.mu.Unlock()
	if !ok {
		return
	}
	close(q.stop)
	dropped := len(q.inbound)
	if dropped > 0 {
		b.logger.Info("Dropped pending messages on unregister",
			"agent_id", agentID, "count", dropped)
	}
}

// Registered reports whether the agent currently has a queue.
func (b *Bus) Registered(agentID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.agents[agentID]
	return ok
}

// SetHandler installs the agent's message callback and starts its consumer
// goroutine. Messages are handed to the callback one at a time in FIFO
// order. Do not combine with Receive for the same agent.
func (b *Bus) SetHandler(agentID string, handler Handler) error {
	b.mu.RLock()
	q, ok := b.agents[agentID]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrRecipientUnknown, agentID)
	}

	q.mu.Lock()
	q.handler = handler
	alreadyRunning := q.running
	q.running = true
	q.mu.Unlock()

	if alreadyRunning {
		return nil
	}
	go b.consume(agentID, q)
	return nil
}

func (b *Bus) consume(agentID string, q *agentQueue) {
	for {
		select {
		case <-q.stop:
			return
		case msg := <-q.inbound:
			q.mu.Lock()
			handler := q.handler
			q.mu.Unlock()
			if handler == nil {
				continue
			}
			func() {
				defer func() {
					if r := recover(); r != nil {
						b.logger.Error("Message handler panicked",
							"agent_id", agentID, "message_id", msg.ID, "panic", r)
					}
				}()
				handler(msg)
			}()
		}
	}
}

// Receive blocks for the agent's next inbound message. Intended for
// agents without a handler callback.
func (b *Bus) Receive(ctx context.Context, agentID string) (models.Message, error) {
	b.mu.RLock()
	q, ok := b.agents[agentID]
	b.mu.RUnlock()
	if !ok {
		return models.Message{}, fmt.Errorf("%w: %s", ErrRecipientUnknown, agentID)
	}
	select {
	case msg := <-q.inbound:
		return msg, nil
	case <-q.stop:
		return models.Message{}, ErrClosed
	case <-ctx.Done():
		return models.Message{}, ctx.Err()
	}
}

// Send enqueues the message for dispatch and returns immediately. When
// msg.RequiresResponse is set, the returned waiter completes with the
// correlated Response/Result or fails with ErrTimeout.
func (b *Bus) Send(msg models.Message) (*Waiter, error) {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	var waiter *Waiter
	if msg.RequiresResponse {
		waiter = &Waiter{
			bus:     b,
			id:      msg.ID,
			ch:      make(chan models.Message, 1),
			timeout: b.cfg.ResponseTimeout,
		}
		b.waiterMu.Lock()
		b.waiters[msg.ID] = waiter.ch
		b.waiterMu.Unlock()
	}

	select {
	case b.global <- msg:
	default:
		if waiter != nil {
			b.removeWaiter(msg.ID)
		}
		b.logger.Warn("Dropping message, global queue full",
			"message_id", msg.ID, "sender", msg.Sender)
		return nil, ErrQueueFull
	}
	return waiter, nil
}

// Broadcast clears the recipient and fans the message out to every
// registered agent except the sender.
func (b *Bus) Broadcast(msg models.Message) error {
	msg.Recipient = ""
	msg.Type = models.MessageBroadcast
	msg.RequiresResponse = false
	_, err := b.Send(msg)
	return err
}

// RespondTo satisfies the waiter for the original message, if any.
// Idempotent: a second response to the same id is a no-op.
func (b *Bus) RespondTo(originalID string, response models.Message) error {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	response.CorrelationID = originalID
	if response.Type == "" {
		response.Type = models.MessageResponse
	}
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now()
	}
	_, err := b.Send(response)
	return err
}

func (b *Bus) completeWaiter(correlationID string, msg models.Message) bool {
	b.waiterMu.Lock()
	ch, ok := b.waiters[correlationID]
	if ok {
		delete(b.waiters, correlationID)
	}
	b.waiterMu.Unlock()
	if !ok {
		return false
	}
	ch <- msg
	return true
}

func (b *Bus) removeWaiter(id string) {
	b.waiterMu.Lock()
	delete(b.waiters, id)
	b.waiterMu.Unlock()
}

func (b *Bus) pendingWaiters() int {
	b.waiterMu.Lock()
	defer b.waiterMu.Unlock()
	return len(b.waiters)
}

// ReleaseAll fails every pending waiter with ErrCancelled. Called on
// workflow cancel and bus shutdown.
func (b *Bus) ReleaseAll() {
	b.waiterMu.Lock()
	for id, ch := range b.waiters {
		close(ch)
		delete(b.waiters, id)
	}
	b.waiterMu.Unlock()
}

// QueueDepth reports the current inbound queue length for an agent.
func (b *Bus) QueueDepth(agentID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if q, ok := b.agents[agentID]; ok {
		return len(q.inbound)
	}
	return 0
}
