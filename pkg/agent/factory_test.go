package agent

import (
	"context"
	"log/slog"
	"testing"

	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestRegistryAppendOnly(t *testing.T) {
	registry := NewRegistry()
	reg := Registration{
		Template: models.AgentTemplate{TemplateID: "t1", Kind: models.KindCode},
		Factory: func(cfg map[string]any, client llm.Client) (Worker, error) {
			return nil, nil
		},
	}
	require.NoError(t, registry.Register(reg))
	assert.Error(t, registry.Register(reg), "re-registering a template must fail")
	assert.True(t, registry.Has("t1"))
}

func TestRegisterBuiltins(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, RegisterBuiltins(registry))

	for _, id := range []string{
		TemplatePythonBackend, TemplateFrontendVue, TemplateDatabaseEngineer,
		TemplateDevOpsEngineer, TemplateTechnicalWriter, TemplateQAEngineer,
	} {
		assert.True(t, registry.Has(id), "missing builtin %s", id)
	}
}

func TestFactoryBuildUnknownTemplate(t *testing.T) {
	factory := NewFactory(NewRegistry(), &llm.MockClient{}, testLogger())

	_, err := factory.Build(models.AgentSpecification{
		AgentID:    "a1",
		TemplateID: "nope",
	})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestFactoryRecoversPanic(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Registration{
		Template: models.AgentTemplate{TemplateID: "boom", Kind: models.KindCode},
		Factory: func(cfg map[string]any, client llm.Client) (Worker, error) {
			panic("factory exploded")
		},
	}))
	factory := NewFactory(registry, &llm.MockClient{}, testLogger())

	_, err := factory.Build(models.AgentSpecification{AgentID: "a1", TemplateID: "boom"})
	assert.ErrorIs(t, err, ErrFactoryFailed)
}

func TestEffectiveConfigOverlay(t *testing.T) {
	template := models.AgentTemplate{
		TemplateID:    "t",
		DefaultConfig: map[string]any{"language": "python", "framework": "fastapi"},
	}
	cfg := EffectiveConfig(template, map[string]any{"framework": "django", "extra": 1})

	assert.Equal(t, "python", cfg["language"])
	assert.Equal(t, "django", cfg["framework"])
	assert.Equal(t, 1, cfg["extra"])
}

func TestLLMWorkerExecute(t *testing.T) {
	templates := BuiltinTemplates()
	mock := &llm.MockClient{Response: "generated backend code"}
	worker, err := NewLLMWorker(templates[0], nil, mock)
	require.NoError(t, err)

	result, err := worker.Execute(context.Background(),
		map[string]any{"task": "build the API"},
		ExecutionContext{WorkflowID: "w1", SharedContext: map[string]any{"writer_output": "vocab"}},
	)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "generated backend code", result.Output["content"])
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0], "build the API")
	assert.Contains(t, mock.Calls[0], "writer_output")
}

func TestExecutionContextPreviousAgentsBounded(t *testing.T) {
	var ec ExecutionContext
	for i := 0; i < 30; i++ {
		ec.AppendPreviousAgent("agent")
	}
	assert.Len(t, ec.PreviousAgents, 20)
}
