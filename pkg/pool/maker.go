package pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/google/uuid"
)

// ErrPoolInstantiationFailed rejects the whole pool when any worker fails
// to instantiate. Pool creation is atomic.
var ErrPoolInstantiationFailed = errors.New("pool instantiation failed")

// technologyTemplates is the static technology → template table used by
// DetermineRequiredTemplates.
var technologyTemplates = map[models.Technology][]string{
	models.TechPythonFastAPI: {agent.TemplatePythonBackend},
	models.TechPythonDjango:  {agent.TemplatePythonBackend},
	models.TechPythonFlask:   {agent.TemplatePythonBackend},
	models.TechNodeExpress:   {agent.TemplateNodeBackend},
	models.TechNodeNestJS:    {agent.TemplateNodeBackend},
	models.TechGolang:        {agent.TemplateGoBackend},
	models.TechRust:          {agent.TemplateRustBackend},
	models.TechVue:           {agent.TemplateFrontendVue},
	models.TechReact:         {agent.TemplateFrontendReact},
	models.TechAngular:       {agent.TemplateFrontendAngular},
	models.TechPostgres:      {agent.TemplateDatabaseEngineer},
	models.TechMongoDB:       {agent.TemplateDatabaseEngineer},
	models.TechRedis:         {agent.TemplateDatabaseEngineer},
	models.TechDocker:        {agent.TemplateDevOpsEngineer},
	models.TechKubernetes:    {agent.TemplateDevOpsEngineer},
	models.TechAWS:           {agent.TemplateDevOpsEngineer},
	models.TechGCP:           {agent.TemplateDevOpsEngineer},
	models.TechAzure:         {agent.TemplateDevOpsEngineer},
}

// Template role sets used by dependency wiring and plan construction.
var (
	backendTemplates = map[string]bool{
		agent.TemplatePythonBackend: true,
		agent.TemplateNodeBackend:   true,
		agent.TemplateGoBackend:     true,
		agent.TemplateRustBackend:   true,
	}
	frontendTemplates = map[string]bool{
		agent.TemplateFrontendVue:     true,
		agent.TemplateFrontendReact:   true,
		agent.TemplateFrontendAngular: true,
	}
)

// Pool is the result of a successful instantiation: specifications, live
// workers, and the phased plan over them.
type Pool struct {
	Specs   []models.AgentSpecification
	Workers map[string]agent.Worker
	Plan    []models.Phase
}

// Maker builds worker pools. The id generator is injectable so plans are
// reproducible in tests.
type Maker struct {
	analyzer Analyzer
	factory  *agent.Factory
	logger   *slog.Logger
	idgen    func() string
}

// NewMaker wires a pool maker.
func NewMaker(analyzer Analyzer, factory *agent.Factory, logger *slog.Logger) *Maker {
	return &Maker{
		analyzer: analyzer,
		factory:  factory,
		logger:   logger.With("component", "pool_maker"),
		idgen:    uuid.NewString,
	}
}

// SetIDGenerator overrides agent id generation (tests only).
func (m *Maker) SetIDGenerator(gen func() string) {
	m.idgen = gen
}

// Template exposes the factory's template catalog.
func (m *Maker) Template(templateID string) (models.AgentTemplate, error) {
	return m.factory.Template(templateID)
}

// AnalyzeRequirements delegates to the analyzer and never fails for
// free-form text: analyzer errors fall back to the default record, and
// the result is normalized with warnings logged.
func (m *Maker) AnalyzeRequirements(ctx context.Context, userText string, reqContext map[string]any) models.Requirements {
	req, err := m.analyzer.Analyze(ctx, userText, reqContext)
	if err != nil {
		m.logger.Warn("Requirement analysis failed, using defaults", "error", err)
		req = models.DefaultRequirements()
	}
	for _, warning := range req.Normalize() {
		m.logger.Warn("Requirements normalized", "warning", warning)
	}
	return req
}

// DetermineRequiredTemplates maps requirements to the template set.
// Pure, deterministic, and idempotent: technologies map through the
// static table, the writer is always included, qa and devops follow
// their flags.
func DetermineRequiredTemplates(req models.Requirements) map[string]bool {
	templates := make(map[string]bool)
	for _, tech := range req.Technologies {
		for _, id := range technologyTemplates[tech] {
			templates[id] = true
		}
	}
	templates[agent.TemplateTechnicalWriter] = true
	if req.Flags.HasTesting {
		templates[agent.TemplateQAEngineer] = true
	}
	if req.Flags.HasDeployment {
		templates[agent.TemplateDevOpsEngineer] = true
	}
	return templates
}

// InstantiatePool builds specifications, wires dependencies, constructs
// the plan, and instantiates every worker. Any factory failure rejects
// the whole pool.
func (m *Maker) InstantiatePool(ctx context.Context, req models.Requirements) (*Pool, error) {
	templates := DetermineRequiredTemplates(req)

	// Deterministic spec order: sorted template ids, fresh agent ids.
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	specs := make([]models.AgentSpecification, 0, len(ids))
	for _, templateID := range ids {
		specs = append(specs, models.AgentSpecification{
			AgentID:    m.idgen(),
			TemplateID: templateID,
		})
	}

	wireDependencies(specs)
	plan := BuildPlan(specs)

	workers := make(map[string]agent.Worker, len(specs))
	var failures []string
	for _, spec := range specs {
		worker, err := m.factory.Build(spec)
		if err != nil {
			m.logger.Error("Worker instantiation failed",
				"template_id", spec.TemplateID, "agent_id", spec.AgentID, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", spec.TemplateID, err))
			continue
		}
		workers[spec.AgentID] = worker
	}
	if len(failures) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrPoolInstantiationFailed, failures)
	}

	m.logger.Info("Pool instantiated",
		"agents", len(specs), "phases", len(plan), "project_type", req.ProjectType)
	return &Pool{Specs: specs, Workers: workers, Plan: plan}, nil
}

// wireDependencies applies the layered dependency rules in order:
// frontends on backends, backends on databases, every non-writer on the
// writer. The rule set is layered and cannot introduce a cycle.
func wireDependencies(specs []models.AgentSpecification) {
	var backends, frontends, databases, writers []int
	for i, spec := range specs {
		switch {
		case backendTemplates[spec.TemplateID]:
			backends = append(backends, i)
		case frontendTemplates[spec.TemplateID]:
			frontends = append(frontends, i)
		case spec.TemplateID == agent.TemplateDatabaseEngineer:
			databases = append(databases, i)
		case spec.TemplateID == agent.TemplateTechnicalWriter:
			writers = append(writers, i)
		}
	}

	addDeps := func(from, to []int) {
		for _, f := range from {
			for _, t := range to {
				specs[f].Dependencies = append(specs[f].Dependencies, specs[t].AgentID)
			}
		}
	}

	addDeps(frontends, backends)
	addDeps(backends, databases)

	// The writer establishes shared vocabulary before anyone else starts.
	for i := range specs {
		if specs[i].TemplateID == agent.TemplateTechnicalWriter {
			continue
		}
		for _, w := range writers {
			specs[i].Dependencies = append(specs[i].Dependencies, specs[w].AgentID)
		}
	}
}

// EstimateCompletionTime derives a rough duration from complexity, pool
// size, and flags.
func EstimateCompletionTime(req models.Requirements, agentCount int) time.Duration {
	base := map[models.Complexity]time.Duration{
		models.ComplexitySimple:     30 * time.Minute,
		models.ComplexityMedium:     60 * time.Minute,
		models.ComplexityComplex:    120 * time.Minute,
		models.ComplexityEnterprise: 240 * time.Minute,
	}[req.Complexity]
	if base == 0 {
		base = 60 * time.Minute
	}
	estimate := base + time.Duration(agentCount)*15*time.Minute
	if req.Flags.HasTesting {
		estimate += estimate / 5
	}
	if req.Flags.HasDocumentation {
		estimate += estimate / 10
	}
	return estimate
}
