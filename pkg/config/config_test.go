package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServicePort)
	assert.Equal(t, 10, cfg.Limiter.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Limiter.MaxExecutionTime)
	assert.Equal(t, 512, cfg.Limiter.MaxMemoryMB)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.Breaker.RecoveryTimeout)
	assert.Equal(t, 100, cfg.Bus.AgentQueueSize)
	assert.Equal(t, 1000, cfg.Bus.GlobalQueueSize)
	assert.Equal(t, 30*time.Second, cfg.Bus.ResponseTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL.Session)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL.AgentResult)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_PORT", "9090")
	t.Setenv("LLM_MODEL", "claude-haiku-test")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "1024")
	t.Setenv("LLM_TIMEOUT_SECONDS", "15")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServicePort)
	assert.Equal(t, "claude-haiku-test", cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "warm")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_TEMPERATURE")
}
