package evolution

import (
	"time"

	"github.com/google/uuid"
)

// PromptVersion is one entry in an agent's ordered prompt history.
type PromptVersion struct {
	VersionID        string    `json:"version_id"`
	AgentID          string    `json:"agent_id"`
	TemplateText     string    `json:"template_text"`
	UsageCount       int       `json:"usage_count"`
	SuccessRate      float64   `json:"success_rate"`
	AvgTime          float64   `json:"avg_time"`
	PerformanceScore float64   `json:"performance_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// minUsageForBest is the usage floor before a version's score is trusted.
const minUsageForBest = 5

// ApplyMutation records the applied mutation as a new prompt version and
// returns it. The caller is responsible for actually swapping the
// worker's prompt.
func (e *Engine) ApplyMutation(m *Mutation) *PromptVersion {
	version := &PromptVersion{
		VersionID:    uuid.NewString(),
		AgentID:      m.AgentID,
		TemplateText: m.ProposedPrompt,
		CreatedAt:    time.Now(),
	}
	e.mu.Lock()
	e.prompts[m.AgentID] = append(e.prompts[m.AgentID], version)
	e.mu.Unlock()
	e.logger.Info("Prompt version created",
		"agent_id", m.AgentID, "version_id", version.VersionID, "strategy", m.Strategy)
	return version
}

// UpdatePromptPerformance folds one outcome into the version's running
// averages and recomputes its performance score.
func (e *Engine) UpdatePromptPerformance(agentID, versionID string, ok bool, elapsed time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range e.prompts[agentID] {
		if v.VersionID != versionID {
			continue
		}
		n := float64(v.UsageCount)
		okVal := 0.0
		if ok {
			okVal = 1.0
		}
		v.SuccessRate = (v.SuccessRate*n + okVal) / (n + 1)
		v.AvgTime = (v.AvgTime*n + elapsed.Seconds()) / (n + 1)
		v.UsageCount++

		timePenalty := v.AvgTime / 60
		if timePenalty > 1 {
			timePenalty = 1
		}
		v.PerformanceScore = 0.7*v.SuccessRate + 0.3*(1-timePenalty)
		return
	}
}

// BestPromptVersion returns the highest-scoring version with enough
// usage, falling back to the most recent one. Nil when the agent has no
// versions.
func (e *Engine) BestPromptVersion(agentID string) *PromptVersion {
	e.mu.Lock()
	defer e.mu.Unlock()
	versions := e.prompts[agentID]
	if len(versions) == 0 {
		return nil
	}
	var best *PromptVersion
	for _, v := range versions {
		if v.UsageCount < minUsageForBest {
			continue
		}
		if best == nil || v.PerformanceScore > best.PerformanceScore {
			best = v
		}
	}
	if best != nil {
		return best
	}
	return versions[len(versions)-1]
}

// PromptVersions returns the agent's version history, oldest first.
func (e *Engine) PromptVersions(agentID string) []*PromptVersion {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*PromptVersion, len(e.prompts[agentID]))
	copy(out, e.prompts[agentID])
	return out
}
