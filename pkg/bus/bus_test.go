package bus

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T, cfg config.BusConfig) *Bus {
	t.Helper()
	b := New(cfg, slog.Default())
	b.Start()
	t.Cleanup(b.Stop)
	return b
}

func TestDirectDeliveryFIFO(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("a")
	b.Register("b")

	for i := 0; i < 50; i++ {
		msg := models.NewMessage("a", "b", models.MessageEvent, map[string]any{"seq": i})
		_, err := b.Send(msg)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < 50; i++ {
		msg, err := b.Receive(ctx, "b")
		require.NoError(t, err)
		assert.EqualValues(t, i, msg.Payload["seq"], "messages must arrive in send order")
	}
}

func TestQueueFullDropsWithoutStall(t *testing.T) {
	cfg := config.DefaultBus()
	cfg.AgentQueueSize = 100
	b := newTestBus(t, cfg)
	b.Register("a")
	b.Register("b")
	b.Register("c")
	b.Register("d")

	// Scenario: 200 rapid messages into a capacity-100 queue.
	for i := 0; i < 200; i++ {
		_, err := b.Send(models.NewMessage("a", "b", models.MessageEvent, map[string]any{"seq": i}))
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return b.QueueDepth("b") == 100
	}, 5*time.Second, 10*time.Millisecond, "queue should fill to capacity, rest dropped")

	// Dispatcher must not be stalled: other pairs still deliver.
	_, err := b.Send(models.NewMessage("c", "d", models.MessageEvent, nil))
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := b.Receive(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "c", msg.Sender)

	// The survivors are the first 100, in FIFO order.
	for i := 0; i < 100; i++ {
		msg, err := b.Receive(ctx, "b")
		require.NoError(t, err)
		assert.EqualValues(t, i, msg.Payload["seq"])
	}
}

func TestBroadcastExcludesSender(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	for _, id := range []string{"a", "b", "c"} {
		b.Register(id)
	}

	require.NoError(t, b.Broadcast(models.NewMessage("a", "", models.MessageBroadcast, map[string]any{"hello": true})))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, id := range []string{"b", "c"} {
		msg, err := b.Receive(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "a", msg.Sender)
	}
	require.Eventually(t, func() bool { return b.QueueDepth("a") == 0 }, time.Second, 10*time.Millisecond)
}

func TestRequestResponseCorrelation(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("asker")
	b.Register("answerer")

	require.NoError(t, b.SetHandler("answerer", func(msg models.Message) {
		if msg.RequiresResponse {
			_ = b.RespondTo(msg.ID, models.Message{
				Sender:    "answerer",
				Recipient: msg.Sender,
				Type:      models.MessageResponse,
				Payload:   map[string]any{"answer": 42},
			})
		}
	}))

	req := models.NewMessage("asker", "answerer", models.MessageRequest, map[string]any{"question": "?"})
	req.RequiresResponse = true
	waiter, err := b.Send(req)
	require.NoError(t, err)
	require.NotNil(t, waiter)

	resp, err := waiter.Wait(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 42, resp.Payload["answer"])
	assert.Equal(t, req.ID, resp.CorrelationID)
}

func TestResponseTimeout(t *testing.T) {
	cfg := config.DefaultBus()
	cfg.ResponseTimeout = 50 * time.Millisecond
	b := newTestBus(t, cfg)
	b.Register("asker")
	b.Register("silent")

	req := models.NewMessage("asker", "silent", models.MessageRequest, nil)
	req.RequiresResponse = true
	waiter, err := b.Send(req)
	require.NoError(t, err)

	_, err = waiter.Wait(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestTimedOutWaitersAreDeregistered(t *testing.T) {
	cfg := config.DefaultBus()
	cfg.ResponseTimeout = 20 * time.Millisecond
	b := newTestBus(t, cfg)
	b.Register("asker")
	b.Register("silent")

	for i := 0; i < 25; i++ {
		req := models.NewMessage("asker", "silent", models.MessageRequest, nil)
		req.RequiresResponse = true
		waiter, err := b.Send(req)
		require.NoError(t, err)
		_, err = waiter.Wait(context.Background())
		require.ErrorIs(t, err, ErrTimeout)
	}

	assert.Zero(t, b.pendingWaiters(), "timed-out waiters must not accumulate")
}

func TestCancelledWaiterIsDeregistered(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("asker")
	b.Register("silent")

	req := models.NewMessage("asker", "silent", models.MessageRequest, nil)
	req.RequiresResponse = true
	waiter, err := b.Send(req)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = waiter.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Zero(t, b.pendingWaiters())
}

func TestDuplicateResponseIsDroppedNotBroadcast(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("asker")
	b.Register("answerer")
	b.Register("bystander")

	req := models.NewMessage("asker", "answerer", models.MessageRequest, nil)
	req.RequiresResponse = true
	waiter, err := b.Send(req)
	require.NoError(t, err)

	require.NoError(t, b.RespondTo(req.ID, models.Message{
		Sender:  "answerer",
		Payload: map[string]any{"answer": "first"},
	}))
	resp, err := waiter.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Payload["answer"])

	// The second response finds no waiter and must vanish, not fan out
	// to uninvolved agents.
	require.NoError(t, b.RespondTo(req.ID, models.Message{
		Sender:  "answerer",
		Payload: map[string]any{"answer": "second"},
	}))

	// The dispatcher is a single FIFO loop, so a marker sent afterwards
	// arriving first proves the duplicate was dropped.
	_, err = b.Send(models.NewMessage("asker", "bystander", models.MessageEvent, map[string]any{"marker": true}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := b.Receive(ctx, "bystander")
	require.NoError(t, err)
	assert.Equal(t, true, got.Payload["marker"], "bystander must only see the marker")
}

func TestReleaseAllCancelsWaiters(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("asker")
	b.Register("silent")

	req := models.NewMessage("asker", "silent", models.MessageRequest, nil)
	req.RequiresResponse = true
	waiter, err := b.Send(req)
	require.NoError(t, err)

	b.ReleaseAll()

	_, err = waiter.Wait(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestUnregisterDropsPending(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("a")
	b.Register("b")

	_, err := b.Send(models.NewMessage("a", "b", models.MessageEvent, nil))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return b.QueueDepth("b") == 1 }, time.Second, 10*time.Millisecond)

	b.Unregister("b")
	assert.False(t, b.Registered("b"))

	// Subsequent sends to the unknown recipient are dropped, not errors.
	_, err = b.Send(models.NewMessage("a", "b", models.MessageEvent, nil))
	require.NoError(t, err)
}

func TestExpiredMessageDropped(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("a")
	b.Register("b")

	msg := models.NewMessage("a", "b", models.MessageEvent, nil)
	msg.TTLSeconds = 1
	msg.Timestamp = time.Now().Add(-2 * time.Second)
	_, err := b.Send(msg)
	require.NoError(t, err)

	fresh := models.NewMessage("a", "b", models.MessageEvent, map[string]any{"fresh": true})
	_, err = b.Send(fresh)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := b.Receive(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, true, got.Payload["fresh"], "expired message must have been dropped")
}

func TestHandlerPanicDoesNotKillConsumer(t *testing.T) {
	b := newTestBus(t, config.DefaultBus())
	b.Register("a")
	b.Register("b")

	received := make(chan models.Message, 2)
	require.NoError(t, b.SetHandler("b", func(msg models.Message) {
		if v, _ := msg.Payload["boom"].(bool); v {
			panic("handler exploded")
		}
		received <- msg
	}))

	_, err := b.Send(models.NewMessage("a", "b", models.MessageEvent, map[string]any{"boom": true}))
	require.NoError(t, err)
	_, err = b.Send(models.NewMessage("a", "b", models.MessageEvent, map[string]any{"seq": fmt.Sprint(1)}))
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "1", msg.Payload["seq"])
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not survive handler panic")
	}
}
