// Package cache provides typed Redis helpers with per-category TTLs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get helpers when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Client wraps go-redis with JSON encoding and the service's TTL policy.
type Client struct {
	rdb *redis.Client
	ttl config.CacheTTLConfig
}

// New connects to Redis using a redis:// URL and verifies the connection.
func New(ctx context.Context, url string, ttl config.CacheTTLConfig) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache ping failed: %w", err)
	}
	return &Client{rdb: rdb, ttl: ttl}, nil
}

// NewFromRedis wraps an existing redis client (useful for testing).
func NewFromRedis(rdb *redis.Client, ttl config.CacheTTLConfig) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping checks connectivity for health reporting.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Set stores a JSON-encoded value under key with an explicit TTL.
// ttl <= 0 falls back to the generic TTL.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl.Generic
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value for %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Get decodes the value under key into out. Returns ErrMiss when absent.
func (c *Client) Get(ctx context.Context, key string, out any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode cache value for %s: %w", key, err)
	}
	return nil
}

// Delete removes a key; missing keys are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// SetSession stores session-scoped data (24 h TTL).
func (c *Client) SetSession(ctx context.Context, sessionID string, value any) error {
	return c.Set(ctx, "session:"+sessionID, value, c.ttl.Session)
}

// GetSession loads session-scoped data.
func (c *Client) GetSession(ctx context.Context, sessionID string, out any) error {
	return c.Get(ctx, "session:"+sessionID, out)
}

// SetAgentResult caches a worker execution result keyed by template and
// input hash (5 min TTL). Template-keyed so identical requests hit across
// workflows; agent ids are fresh per pool and would never repeat.
func (c *Client) SetAgentResult(ctx context.Context, templateID, inputHash string, value any) error {
	return c.Set(ctx, agentResultKey(templateID, inputHash), value, c.ttl.AgentResult)
}

// GetAgentResult loads a cached worker execution result.
func (c *Client) GetAgentResult(ctx context.Context, templateID, inputHash string, out any) error {
	return c.Get(ctx, agentResultKey(templateID, inputHash), out)
}

// SetUserData stores user-scoped data (2 h TTL).
func (c *Client) SetUserData(ctx context.Context, userID string, value any) error {
	return c.Set(ctx, "user:"+userID, value, c.ttl.UserData)
}

// GetUserData loads user-scoped data.
func (c *Client) GetUserData(ctx context.Context, userID string, out any) error {
	return c.Get(ctx, "user:"+userID, out)
}

// SetAgentState mirrors a lifecycle state row for fast recovery reads
// (generic 1 h TTL).
func (c *Client) SetAgentState(ctx context.Context, agentID string, value any) error {
	return c.Set(ctx, "agent_state:"+agentID, value, c.ttl.Generic)
}

// GetAgentState loads a mirrored lifecycle state row.
func (c *Client) GetAgentState(ctx context.Context, agentID string, out any) error {
	return c.Get(ctx, "agent_state:"+agentID, out)
}

func agentResultKey(templateID, inputHash string) string {
	return "agent_result:" + templateID + ":" + inputHash
}
