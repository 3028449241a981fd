package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, ctx context.Context, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, ctx context.Context, conn *websocket.Conn) map[string]any {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func writeJSON(t *testing.T, ctx context.Context, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func waitForSubscribers(t *testing.T, hub *Hub, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.subscriberCount(channel) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("channel %s never reached %d subscribers", channel, want)
}

func TestHubSubscribeAndPublish(t *testing.T) {
	hub, url := newHubServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, url)
	established := readJSON(t, ctx, conn)
	assert.Equal(t, "connection.established", established["type"])

	writeJSON(t, ctx, conn, ClientMessage{Action: "subscribe", Channel: "wf-1"})
	confirmed := readJSON(t, ctx, conn)
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
	assert.Equal(t, "wf-1", confirmed["channel"])

	hub.Publish(orchestrator.Event{
		UpdateID:   "u-1",
		WorkflowID: "wf-1",
		Type:       orchestrator.EventStepCompleted,
		Message:    "Step go_backend completed",
		Timestamp:  time.Now(),
	})

	event := readJSON(t, ctx, conn)
	assert.Equal(t, string(orchestrator.EventStepCompleted), event["type"])
	assert.Equal(t, "wf-1", event["workflow_id"])
}

func TestHubSubscriptionIsolation(t *testing.T) {
	hub, url := newHubServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, url)
	readJSON(t, ctx, conn) // connection.established
	writeJSON(t, ctx, conn, ClientMessage{Action: "subscribe", Channel: "wf-other"})
	readJSON(t, ctx, conn) // subscription.confirmed
	waitForSubscribers(t, hub, "wf-other", 1)

	// An event for a different workflow is not delivered.
	hub.Publish(orchestrator.Event{WorkflowID: "wf-1", Type: orchestrator.EventStepStarted})

	writeJSON(t, ctx, conn, ClientMessage{Action: "ping"})
	reply := readJSON(t, ctx, conn)
	assert.Equal(t, "pong", reply["type"])
}

func TestHubFirehoseReceivesEverything(t *testing.T) {
	hub, url := newHubServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, url)
	readJSON(t, ctx, conn)
	writeJSON(t, ctx, conn, ClientMessage{Action: "subscribe", Channel: firehoseChannel})
	readJSON(t, ctx, conn)
	waitForSubscribers(t, hub, firehoseChannel, 1)

	hub.Publish(orchestrator.Event{WorkflowID: "wf-42", Type: orchestrator.EventPhaseStarted})
	event := readJSON(t, ctx, conn)
	assert.Equal(t, "wf-42", event["workflow_id"])
}

func TestHubUnregisterOnClose(t *testing.T) {
	hub, url := newHubServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, url)
	readJSON(t, ctx, conn)
	writeJSON(t, ctx, conn, ClientMessage{Action: "subscribe", Channel: "wf-1"})
	readJSON(t, ctx, conn)
	waitForSubscribers(t, hub, "wf-1", 1)
	require.Equal(t, 1, hub.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	waitForSubscribers(t, hub, "wf-1", 0)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && hub.ActiveConnections() > 0 {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 0, hub.ActiveConnections())
}
