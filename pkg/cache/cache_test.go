package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/devex-platform/crewd/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewFromRedis(rdb, config.DefaultCacheTTL()), mr
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestClient(t)

	var out map[string]any
	err := c.Get(context.Background(), "absent", &out)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestAgentResultTTL(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetAgentResult(ctx, "agent-1", "hash", map[string]any{"ok": true}))

	var out map[string]any
	require.NoError(t, c.GetAgentResult(ctx, "agent-1", "hash", &out))
	assert.Equal(t, true, out["ok"])

	// Result cache entries expire after 5 minutes.
	mr.FastForward(5*time.Minute + time.Second)
	err := c.GetAgentResult(ctx, "agent-1", "hash", &out)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSessionHelpers(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetSession(ctx, "s1", map[string]any{"workflow": "w1"}))
	ttl := mr.TTL("session:s1")
	assert.Equal(t, 24*time.Hour, ttl)

	require.NoError(t, c.Delete(ctx, "session:s1"))
	var out map[string]any
	assert.ErrorIs(t, c.GetSession(ctx, "s1", &out), ErrMiss)
}
