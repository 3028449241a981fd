package agent

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
)

// Sentinel errors surfaced by the factory.
var (
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrConfigValidation = errors.New("config validation failed")
	ErrFactoryFailed    = errors.New("factory failed")
)

// Factory instantiates workers from specifications using the registry and
// a shared LLM client.
type Factory struct {
	registry  *Registry
	llmClient llm.Client
	logger    *slog.Logger
}

// NewFactory wires a factory. llmClient may be nil for template sets that
// do not require generation.
func NewFactory(registry *Registry, llmClient llm.Client, logger *slog.Logger) *Factory {
	return &Factory{
		registry:  registry,
		llmClient: llmClient,
		logger:    logger.With("component", "agent_factory"),
	}
}

// EffectiveConfig overlays spec overrides onto the template defaults.
func EffectiveConfig(template models.AgentTemplate, overrides map[string]any) map[string]any {
	cfg := make(map[string]any, len(template.DefaultConfig)+len(overrides))
	maps.Copy(cfg, template.DefaultConfig)
	maps.Copy(cfg, overrides)
	return cfg
}

// Build resolves the specification's template and invokes its factory
// function. Factory panics are recovered and surfaced as ErrFactoryFailed
// so a misbehaving template cannot take down pool instantiation.
func (f *Factory) Build(spec models.AgentSpecification) (worker Worker, err error) {
	reg, ok := f.registry.Get(spec.TemplateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, spec.TemplateID)
	}

	cfg := EffectiveConfig(reg.Template, spec.EffectiveConfig)

	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("Worker factory panicked",
				"template_id", spec.TemplateID, "agent_id", spec.AgentID, "panic", r)
			worker = nil
			err = fmt.Errorf("%w: template %s panicked: %v", ErrFactoryFailed, spec.TemplateID, r)
		}
	}()

	worker, err = reg.Factory(cfg, f.llmClient)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", ErrFactoryFailed, spec.TemplateID, err)
	}
	return worker, nil
}

// Template returns the immutable template for a spec's template_id.
func (f *Factory) Template(templateID string) (models.AgentTemplate, error) {
	reg, ok := f.registry.Get(templateID)
	if !ok {
		return models.AgentTemplate{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}
	return reg.Template, nil
}
