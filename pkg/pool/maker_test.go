package pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	req models.Requirements
	err error
}

func (s stubAnalyzer) Analyze(context.Context, string, map[string]any) (models.Requirements, error) {
	return s.req, s.err
}

func newTestMaker(t *testing.T, analyzer Analyzer) *Maker {
	t.Helper()
	registry := agent.NewRegistry()
	require.NoError(t, agent.RegisterBuiltins(registry))
	factory := agent.NewFactory(registry, &llm.MockClient{Response: "ok"}, slog.Default())
	m := NewMaker(analyzer, factory, slog.Default())

	seq := 0
	m.SetIDGenerator(func() string {
		seq++
		return fmt.Sprintf("agent-%03d", seq)
	})
	return m
}

func ecommerceRequirements() models.Requirements {
	return models.Requirements{
		ProjectType: models.ProjectWebApp,
		Technologies: []models.Technology{
			models.TechPythonFastAPI, models.TechVue, models.TechPostgres, models.TechDocker,
		},
		Complexity: models.ComplexityComplex,
		Flags: models.Flags{
			HasAuth:          true,
			HasDatabase:      true,
			HasDeployment:    true,
			HasTesting:       true,
			HasDocumentation: true,
		},
	}
}

func TestEcommercePoolPlan(t *testing.T) {
	m := newTestMaker(t, stubAnalyzer{req: ecommerceRequirements()})
	req := m.AnalyzeRequirements(context.Background(), "Build an e-commerce site with auth, PostgreSQL and deployment", nil)

	pool, err := m.InstantiatePool(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, ValidatePlan(pool))

	// python_backend, frontend_vue, database_engineer, devops_engineer,
	// technical_writer, qa_engineer
	assert.Len(t, pool.Specs, 6)
	assert.Len(t, pool.Workers, 6)

	require.Len(t, pool.Plan, 4)
	assert.Equal(t, "Setup & Infrastructure", pool.Plan[0].Name)
	assert.Equal(t, models.PhaseParallel, pool.Plan[0].Kind)
	assert.Len(t, pool.Plan[0].Steps, 2)
	assert.Equal(t, "Backend Development", pool.Plan[1].Name)
	assert.Equal(t, models.PhaseSequential, pool.Plan[1].Kind)
	assert.Equal(t, "Frontend Development", pool.Plan[2].Name)
	assert.Equal(t, models.PhaseSequential, pool.Plan[2].Kind)
	assert.Equal(t, "Testing & Documentation", pool.Plan[3].Name)
	assert.Equal(t, models.PhaseParallel, pool.Plan[3].Kind)
	assert.Len(t, pool.Plan[3].Steps, 2)
}

func TestDocumentationOnlyPlan(t *testing.T) {
	// No technologies, only the default flags: the plan collapses to a
	// single Testing & Documentation phase.
	req := models.DefaultRequirements()
	m := newTestMaker(t, stubAnalyzer{req: req})

	pool, err := m.InstantiatePool(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, pool.Plan, 1)
	assert.Equal(t, "Testing & Documentation", pool.Plan[0].Name)

	names := []string{pool.Plan[0].Steps[0].Name, pool.Plan[0].Steps[1].Name}
	assert.ElementsMatch(t, []string{agent.TemplateQAEngineer, agent.TemplateTechnicalWriter}, names)
}

func TestWriterOnlyPlan(t *testing.T) {
	req := models.Requirements{
		ProjectType: models.ProjectDocumentation,
		Complexity:  models.ComplexitySimple,
	}
	m := newTestMaker(t, stubAnalyzer{req: req})

	pool, err := m.InstantiatePool(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, pool.Plan, 1)
	require.Len(t, pool.Plan[0].Steps, 1)
	assert.Equal(t, agent.TemplateTechnicalWriter, pool.Plan[0].Steps[0].Name)
}

func TestDetermineRequiredTemplatesDeterministic(t *testing.T) {
	req := ecommerceRequirements()
	first := DetermineRequiredTemplates(req)
	second := DetermineRequiredTemplates(req)
	assert.Equal(t, first, second)

	assert.True(t, first[agent.TemplateTechnicalWriter], "writer is unconditional")
	assert.True(t, first[agent.TemplateQAEngineer])
	assert.True(t, first[agent.TemplateDevOpsEngineer])
}

func TestPlanDeterministicWithFixedIDs(t *testing.T) {
	req := ecommerceRequirements()

	build := func() *Pool {
		m := newTestMaker(t, stubAnalyzer{req: req})
		p, err := m.InstantiatePool(context.Background(), req)
		require.NoError(t, err)
		return p
	}
	a, b := build(), build()

	require.Equal(t, len(a.Plan), len(b.Plan))
	for i := range a.Plan {
		assert.Equal(t, a.Plan[i].Name, b.Plan[i].Name)
		assert.Equal(t, a.Plan[i].Kind, b.Plan[i].Kind)
		require.Equal(t, len(a.Plan[i].Steps), len(b.Plan[i].Steps))
		for j := range a.Plan[i].Steps {
			assert.Equal(t, a.Plan[i].Steps[j].AgentID, b.Plan[i].Steps[j].AgentID)
		}
	}
}

func TestDependencyWiring(t *testing.T) {
	req := ecommerceRequirements()
	m := newTestMaker(t, stubAnalyzer{req: req})
	pool, err := m.InstantiatePool(context.Background(), req)
	require.NoError(t, err)

	byTemplate := make(map[string]models.AgentSpecification)
	byID := make(map[string]models.AgentSpecification)
	for _, spec := range pool.Specs {
		byTemplate[spec.TemplateID] = spec
		byID[spec.AgentID] = spec
	}

	dependsOn := func(spec models.AgentSpecification, templateID string) bool {
		for _, dep := range spec.Dependencies {
			if byID[dep].TemplateID == templateID {
				return true
			}
		}
		return false
	}

	frontend := byTemplate[agent.TemplateFrontendVue]
	backend := byTemplate[agent.TemplatePythonBackend]
	writer := byTemplate[agent.TemplateTechnicalWriter]

	assert.True(t, dependsOn(frontend, agent.TemplatePythonBackend), "frontend depends on backend")
	assert.True(t, dependsOn(backend, agent.TemplateDatabaseEngineer), "backend depends on database")
	assert.True(t, dependsOn(backend, agent.TemplateTechnicalWriter), "non-writer depends on writer")
	assert.True(t, dependsOn(frontend, agent.TemplateTechnicalWriter))
	assert.Empty(t, writer.Dependencies, "writer depends on nobody")
}

func TestAnalyzeFallsBackToDefaults(t *testing.T) {
	m := newTestMaker(t, stubAnalyzer{err: errors.New("unknown technology \"cobol\"")})

	req := m.AnalyzeRequirements(context.Background(), "anything", nil)
	assert.Equal(t, models.ProjectWebApp, req.ProjectType)
	assert.Equal(t, models.ComplexityMedium, req.Complexity)
	assert.True(t, req.Flags.HasTesting)
	assert.True(t, req.Flags.HasDocumentation)
}

func TestInstantiatePoolAtomic(t *testing.T) {
	registry := agent.NewRegistry()
	require.NoError(t, agent.RegisterBuiltins(registry))
	// A nil LLM client makes every builtin factory fail.
	factory := agent.NewFactory(registry, nil, slog.Default())
	m := NewMaker(stubAnalyzer{}, factory, slog.Default())

	_, err := m.InstantiatePool(context.Background(), models.DefaultRequirements())
	assert.ErrorIs(t, err, ErrPoolInstantiationFailed)
}

func TestParseRequirementsRejectsUnknownEnums(t *testing.T) {
	_, err := ParseRequirements([]byte(`{"project_type":"spaceship"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spaceship")

	_, err = ParseRequirements([]byte(`{"technologies":["fortran"]}`))
	require.Error(t, err)

	req, err := ParseRequirements([]byte(`{"technologies":["vue"],"flags":{"has_testing":true}}`))
	require.NoError(t, err)
	assert.Equal(t, models.ProjectWebApp, req.ProjectType, "missing fields get defaults")
	assert.Equal(t, []models.Technology{models.TechVue}, req.Technologies)
}

func TestNormalizeInvariants(t *testing.T) {
	req := models.Requirements{
		ProjectType:  models.ProjectWebApp,
		Technologies: []models.Technology{models.TechVue},
		Complexity:   models.ComplexityComplex,
		Flags:        models.Flags{HasDeployment: true},
	}
	warnings := req.Normalize()

	assert.True(t, req.HasTechnology(models.TechDocker), "deployment implies docker")
	assert.Equal(t, models.ComplexitySimple, req.Complexity, "frontend without backend downgrades complexity")
	assert.Len(t, warnings, 2)
}

func TestEstimateCompletionTime(t *testing.T) {
	simple := EstimateCompletionTime(models.Requirements{Complexity: models.ComplexitySimple}, 2)
	complexReq := ecommerceRequirements()
	complex := EstimateCompletionTime(complexReq, 6)

	assert.Greater(t, complex, simple)
	assert.Positive(t, simple)
}
