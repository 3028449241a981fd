package evolution

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(slog.Default())
}

func feed(e *Engine, agentID string, count int, ok bool, elapsed float64) *Mutation {
	var last *Mutation
	for i := 0; i < count; i++ {
		last = e.Record(agentID, Sample{OK: ok, ElapsedSeconds: elapsed, HadError: !ok}, "base prompt")
	}
	return last
}

func TestMediocrePerformanceProposesMutation(t *testing.T) {
	e := newTestEngine()

	// 20 samples, success rate 0.5, 10 s average response time.
	var last *Mutation
	for i := 0; i < 20; i++ {
		last = e.Record("a1", Sample{OK: i%2 == 0, ElapsedSeconds: 10, HadError: i%2 != 0}, "base prompt")
	}

	score := e.Score("a1")
	assert.Less(t, score, 0.5)
	assert.GreaterOrEqual(t, score, 0.3)
	require.NotNil(t, last)
	assert.Equal(t, StrategyMutation, last.Strategy)
	assert.Equal(t, RiskMedium, last.Risk)
	assert.Equal(t, "base prompt", last.CurrentPrompt)
	assert.NotEqual(t, last.CurrentPrompt, last.ProposedPrompt)
}

func TestGoodPerformanceProposesNothing(t *testing.T) {
	e := newTestEngine()

	// Predominantly successful, fast executions push the score past 0.7.
	var last *Mutation
	for i := 0; i < 30; i++ {
		last = e.Record("a1", Sample{OK: i%10 != 9, ElapsedSeconds: 8, HadError: i%10 == 9}, "p")
	}
	// Settle the error-rate EMA with a run of clean samples.
	for i := 0; i < 20; i++ {
		last = e.Record("a1", Sample{OK: true, ElapsedSeconds: 8}, "p")
	}

	assert.GreaterOrEqual(t, e.Score("a1"), 0.7)
	assert.Nil(t, last)
}

func TestElevatedErrorRateProposesReinforcement(t *testing.T) {
	e := newTestEngine()

	// Build a high score first.
	feed(e, "a1", 60, true, 5)
	require.GreaterOrEqual(t, e.Score("a1"), 0.7)

	// A burst of errors lifts the error-rate EMA above 0.2 while the
	// windowed completion rate stays high.
	var last *Mutation
	for i := 0; i < 3; i++ {
		last = e.Record("a1", Sample{OK: false, ElapsedSeconds: 5, HadError: true}, "p")
	}

	metrics := e.MetricsFor("a1")
	require.Greater(t, metrics.ErrorRate, 0.2)
	if metrics.OverallScore >= 0.7 {
		require.NotNil(t, last)
		assert.Equal(t, StrategyReinforcement, last.Strategy)
		assert.Equal(t, RiskLow, last.Risk)
	}
}

func TestHopelessPerformanceProposesExpansion(t *testing.T) {
	e := newTestEngine()
	last := feed(e, "a1", 20, false, 10)

	assert.Less(t, e.Score("a1"), 0.3)
	require.NotNil(t, last)
	assert.Equal(t, StrategyExpansion, last.Strategy)
	assert.Equal(t, RiskHigh, last.Risk)
}

func TestSampleWindowBounded(t *testing.T) {
	e := newTestEngine()
	feed(e, "a1", 150, true, 1)

	metrics := e.MetricsFor("a1")
	assert.Equal(t, 100, metrics.SampleCount)
}

func TestAnalyzeTrend(t *testing.T) {
	e := newTestEngine()

	// Ten failures, then ten successes: improving.
	feed(e, "up", 10, false, 5)
	feed(e, "up", 10, true, 5)
	assert.Equal(t, TrendImproving, e.AnalyzeTrend("up"))

	feed(e, "down", 10, true, 5)
	feed(e, "down", 10, false, 5)
	assert.Equal(t, TrendDeclining, e.AnalyzeTrend("down"))

	feed(e, "flat", 20, true, 5)
	assert.Equal(t, TrendStable, e.AnalyzeTrend("flat"))

	// Too few samples: stable by definition.
	feed(e, "new", 5, true, 5)
	assert.Equal(t, TrendStable, e.AnalyzeTrend("new"))
}

func TestPromptVersionBookkeeping(t *testing.T) {
	e := newTestEngine()

	m := &Mutation{AgentID: "a1", CurrentPrompt: "old", ProposedPrompt: "new", Strategy: StrategyMutation}
	v1 := e.ApplyMutation(m)
	require.NotEmpty(t, v1.VersionID)

	// Five fast successes give v1 a trustworthy score.
	for i := 0; i < 5; i++ {
		e.UpdatePromptPerformance("a1", v1.VersionID, true, 6*time.Second)
	}
	versions := e.PromptVersions("a1")
	require.Len(t, versions, 1)
	assert.Equal(t, 5, versions[0].UsageCount)
	assert.InDelta(t, 1.0, versions[0].SuccessRate, 1e-9)
	assert.InDelta(t, 0.7+0.3*(1-0.1), versions[0].PerformanceScore, 1e-9)

	// A newer, unproven version is not picked over a proven one.
	v2 := e.ApplyMutation(&Mutation{AgentID: "a1", ProposedPrompt: "newer", Strategy: StrategyPruning})
	best := e.BestPromptVersion("a1")
	assert.Equal(t, v1.VersionID, best.VersionID)

	// With no version past the usage floor, the most recent wins.
	e.Clear("a1")
	v3 := e.ApplyMutation(&Mutation{AgentID: "a1", ProposedPrompt: "fresh", Strategy: StrategyMutation})
	_ = v2
	best = e.BestPromptVersion("a1")
	assert.Equal(t, v3.VersionID, best.VersionID)
}

func TestBestPromptVersionNilWithoutHistory(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.BestPromptVersion("ghost"))
}
