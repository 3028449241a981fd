// Package evolution records per-worker execution outcomes, computes
// rolling performance scores, and proposes configuration mutations when
// scores fall below threshold. It only proposes; application is the
// orchestrator's call.
package evolution

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Strategy names a proposed mutation approach.
type Strategy string

const (
	StrategyExpansion     Strategy = "expansion"
	StrategyMutation      Strategy = "mutation"
	StrategyPruning       Strategy = "pruning"
	StrategyReinforcement Strategy = "reinforcement"
	StrategyCrossover     Strategy = "crossover"
)

// Risk grades a strategy's blast radius.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

var strategyRisk = map[Strategy]Risk{
	StrategyExpansion:     RiskHigh,
	StrategyCrossover:     RiskHigh,
	StrategyMutation:      RiskMedium,
	StrategyPruning:       RiskLow,
	StrategyReinforcement: RiskLow,
}

// Mutation is a proposed prompt/configuration change for one agent.
type Mutation struct {
	AgentID             string   `json:"agent_id"`
	CurrentPrompt       string   `json:"current_prompt"`
	ProposedPrompt      string   `json:"proposed_prompt"`
	Strategy            Strategy `json:"strategy"`
	ExpectedImprovement float64  `json:"expected_improvement"`
	Risk                Risk     `json:"risk"`
}

// Sample is one execution outcome in the rolling window.
type Sample struct {
	OK             bool
	ElapsedSeconds float64
	HadError       bool
}

// Trend classifies recent performance movement.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// sampleWindow bounds the per-agent rolling window.
const sampleWindow = 100

// emaAlpha is the smoothing factor for response time and error rate.
const emaAlpha = 0.1

// scoreThreshold is the overall score above which no mutation is
// proposed (unless the error rate is elevated).
const scoreThreshold = 0.7

// errorRateCeiling triggers reinforcement even for high-scoring agents.
const errorRateCeiling = 0.2

type agentRecord struct {
	samples    []Sample
	emaAvgTime float64
	emaErrRate float64
	hasSamples bool
	score      float64
}

// Metrics exposes an agent's derived performance numbers.
type Metrics struct {
	AgentID        string  `json:"agent_id"`
	SampleCount    int     `json:"sample_count"`
	CompletionRate float64 `json:"completion_rate"`
	AvgResponseSec float64 `json:"avg_response_seconds"`
	ErrorRate      float64 `json:"error_rate"`
	OverallScore   float64 `json:"overall_score"`
	Trend          Trend   `json:"trend"`
}

// Engine is the canonical evolution manager. The step-completion path is
// the single writer per agent record.
type Engine struct {
	logger *slog.Logger

	mu      sync.Mutex
	records map[string]*agentRecord
	prompts map[string][]*PromptVersion
}

// NewEngine builds an empty engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger:  logger.With("component", "evolution"),
		records: make(map[string]*agentRecord),
		prompts: make(map[string][]*PromptVersion),
	}
}

// Record appends an execution outcome, refreshes the agent's EMAs and
// overall score, and returns a proposed mutation when thresholds trigger,
// else nil.
func (e *Engine) Record(agentID string, sample Sample, currentPrompt string) *Mutation {
	e.mu.Lock()
	rec, ok := e.records[agentID]
	if !ok {
		rec = &agentRecord{}
		e.records[agentID] = rec
	}

	rec.samples = append(rec.samples, sample)
	if n := len(rec.samples); n > sampleWindow {
		rec.samples = rec.samples[n-sampleWindow:]
	}

	errVal := 0.0
	if sample.HadError {
		errVal = 1.0
	}
	if !rec.hasSamples {
		rec.emaAvgTime = sample.ElapsedSeconds
		rec.emaErrRate = errVal
		rec.hasSamples = true
	} else {
		rec.emaAvgTime = (1-emaAlpha)*rec.emaAvgTime + emaAlpha*sample.ElapsedSeconds
		rec.emaErrRate = (1-emaAlpha)*rec.emaErrRate + emaAlpha*errVal
	}

	score := overallScore(rec)
	rec.score = score
	errRate := rec.emaErrRate
	e.mu.Unlock()

	strategy, trigger := selectStrategy(score, errRate)
	if !trigger {
		return nil
	}

	improvement := scoreThreshold - score
	if improvement < 0.05 {
		improvement = 0.05
	}
	mutation := &Mutation{
		AgentID:             agentID,
		CurrentPrompt:       currentPrompt,
		ProposedPrompt:      proposePrompt(currentPrompt, strategy),
		Strategy:            strategy,
		ExpectedImprovement: improvement,
		Risk:                strategyRisk[strategy],
	}
	e.logger.Info("Mutation proposed",
		"agent_id", agentID, "strategy", strategy, "score", score, "error_rate", errRate)
	return mutation
}

// overallScore computes the weighted [0,1] score. quality_score,
// user_satisfaction, and resource_usage are derived approximations when
// not supplied externally.
func overallScore(rec *agentRecord) float64 {
	if len(rec.samples) == 0 {
		return 0
	}
	okCount := 0
	for _, s := range rec.samples {
		if s.OK {
			okCount++
		}
	}
	completion := float64(okCount) / float64(len(rec.samples))
	speed := 1 - rec.emaAvgTime/60
	if speed < 0 {
		speed = 0
	}
	quality := completion * (1 - rec.emaErrRate)
	satisfaction := quality
	const resourceUsage = 0.3

	return 0.30*completion + 0.25*quality + 0.15*speed + 0.20*satisfaction + 0.10*(1-resourceUsage)
}

// selectStrategy is the deterministic score-bucket table.
func selectStrategy(score, errRate float64) (Strategy, bool) {
	switch {
	case score < 0.30:
		return StrategyExpansion, true
	case score < 0.50:
		return StrategyMutation, true
	case score < scoreThreshold:
		return StrategyPruning, true
	case errRate > errorRateCeiling:
		return StrategyReinforcement, true
	default:
		return "", false
	}
}

func proposePrompt(current string, strategy Strategy) string {
	directive := map[Strategy]string{
		StrategyExpansion:     "Broaden your approach: consider alternative solutions before committing to one.",
		StrategyMutation:      "Adjust your approach: be more explicit about intermediate steps and verify each.",
		StrategyPruning:       "Tighten your approach: remove digressions and focus on the core deliverable.",
		StrategyReinforcement: "Double-check outputs for errors before finishing; prefer correctness over speed.",
	}[strategy]
	if current == "" {
		return directive
	}
	return current + "\n\n" + directive
}

// Score returns the agent's current overall score.
func (e *Engine) Score(agentID string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rec, ok := e.records[agentID]; ok {
		return rec.score
	}
	return 0
}

// AnalyzeTrend compares the last ten samples against the previous ten.
func (e *Engine) AnalyzeTrend(agentID string) Trend {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.records[agentID]
	if !ok || len(rec.samples) < 20 {
		return TrendStable
	}
	n := len(rec.samples)
	recent := successRate(rec.samples[n-10:])
	previous := successRate(rec.samples[n-20 : n-10])
	switch {
	case recent > previous+0.05:
		return TrendImproving
	case recent < previous-0.05:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func successRate(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	ok := 0
	for _, s := range samples {
		if s.OK {
			ok++
		}
	}
	return float64(ok) / float64(len(samples))
}

// Report snapshots metrics for every tracked agent.
func (e *Engine) Report() []Metrics {
	e.mu.Lock()
	ids := make([]string, 0, len(e.records))
	for id := range e.records {
		ids = append(ids, id)
	}
	e.mu.Unlock()

	out := make([]Metrics, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.MetricsFor(id))
	}
	return out
}

// MetricsFor snapshots one agent's derived numbers.
func (e *Engine) MetricsFor(agentID string) Metrics {
	trend := e.AnalyzeTrend(agentID)
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.records[agentID]
	if !ok {
		return Metrics{AgentID: agentID, Trend: TrendStable}
	}
	return Metrics{
		AgentID:        agentID,
		SampleCount:    len(rec.samples),
		CompletionRate: successRate(rec.samples),
		AvgResponseSec: rec.emaAvgTime,
		ErrorRate:      rec.emaErrRate,
		OverallScore:   rec.score,
		Trend:          trend,
	}
}

// Clear drops an agent's samples and prompt versions when its worker is
// torn down.
func (e *Engine) Clear(agentID string) {
	e.mu.Lock()
	delete(e.records, agentID)
	delete(e.prompts, agentID)
	e.mu.Unlock()
}

// SampleFromResult converts a worker result into a sample.
func SampleFromResult(ok bool, elapsed time.Duration, errText string) Sample {
	return Sample{
		OK:             ok,
		ElapsedSeconds: elapsed.Seconds(),
		HadError:       errText != "" || !ok,
	}
}

// String implements fmt.Stringer for logging.
func (m *Mutation) String() string {
	return fmt.Sprintf("%s(%s, risk=%s)", m.Strategy, m.AgentID, m.Risk)
}
