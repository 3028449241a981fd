package pool

import (
	"fmt"
	"sort"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/models"
)

// phaseDef fixes the plan pipeline: name, kind, and membership test.
type phaseDef struct {
	name    string
	kind    models.PhaseKind
	matches func(templateID string) bool
}

var planPipeline = []phaseDef{
	{
		name: "Setup & Infrastructure",
		kind: models.PhaseParallel,
		matches: func(id string) bool {
			return id == agent.TemplateDatabaseEngineer || id == agent.TemplateDevOpsEngineer
		},
	},
	{
		name:    "Backend Development",
		kind:    models.PhaseSequential,
		matches: func(id string) bool { return backendTemplates[id] },
	},
	{
		name:    "Frontend Development",
		kind:    models.PhaseSequential,
		matches: func(id string) bool { return frontendTemplates[id] },
	},
	{
		name: "Testing & Documentation",
		kind: models.PhaseParallel,
		matches: func(id string) bool {
			return id == agent.TemplateQAEngineer || id == agent.TemplateTechnicalWriter
		},
	},
}

// BuildPlan produces the fixed four-phase pipeline over the specs,
// omitting empty phases. Intra-phase order is template_id then agent_id,
// so plans are deterministic for a given spec set.
func BuildPlan(specs []models.AgentSpecification) []models.Phase {
	var phases []models.Phase
	for i, def := range planPipeline {
		var members []models.AgentSpecification
		for _, spec := range specs {
			if def.matches(spec.TemplateID) {
				members = append(members, spec)
			}
		}
		if len(members) == 0 {
			continue
		}
		sort.Slice(members, func(a, b int) bool {
			if members[a].TemplateID != members[b].TemplateID {
				return members[a].TemplateID < members[b].TemplateID
			}
			return members[a].AgentID < members[b].AgentID
		})

		phaseID := fmt.Sprintf("phase-%d", i+1)
		steps := make([]models.Step, 0, len(members))
		for j, member := range members {
			steps = append(steps, models.Step{
				StepID:  fmt.Sprintf("%s-step-%d", phaseID, j+1),
				AgentID: member.AgentID,
				PhaseID: phaseID,
				Name:    member.TemplateID,
				Status:  models.StepPending,
			})
		}
		phases = append(phases, models.Phase{
			PhaseID: phaseID,
			Name:    def.name,
			Kind:    def.kind,
			Steps:   steps,
			Status:  models.PhasePending,
		})
	}
	return phases
}

// ValidatePlan checks the pool maker's structural invariants: the
// dependency graph is acyclic and every planned agent has a worker.
func ValidatePlan(p *Pool) error {
	deps := make(map[string][]string, len(p.Specs))
	for _, spec := range p.Specs {
		deps[spec.AgentID] = spec.Dependencies
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(deps))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("dependency cycle through agent %s", id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, dep := range deps[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for id := range deps {
		if err := visit(id); err != nil {
			return err
		}
	}

	for _, phase := range p.Plan {
		for _, step := range phase.Steps {
			if _, ok := p.Workers[step.AgentID]; !ok {
				return fmt.Errorf("plan references agent %s with no worker", step.AgentID)
			}
		}
	}
	return nil
}
