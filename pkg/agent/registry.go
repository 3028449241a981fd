package agent

import (
	"fmt"
	"sort"
	"sync"

	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
)

// FactoryFunc builds a worker from an effective config and the shared LLM
// client handle.
type FactoryFunc func(cfg map[string]any, llmClient llm.Client) (Worker, error)

// Registration pairs an immutable template with its factory function.
type Registration struct {
	Template models.AgentTemplate
	Factory  FactoryFunc
}

// Registry maps template_id to registrations. Registration is append-only;
// reads are concurrent-safe and lock-light.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Registration)}
}

// Register installs a template. Registering an existing template_id is an
// error: templates are immutable for the process lifetime.
func (r *Registry) Register(reg Registration) error {
	if reg.Template.TemplateID == "" {
		return fmt.Errorf("template_id is required")
	}
	if reg.Factory == nil {
		return fmt.Errorf("factory is required for template %s", reg.Template.TemplateID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[reg.Template.TemplateID]; exists {
		return fmt.Errorf("template %s already registered", reg.Template.TemplateID)
	}
	r.entries[reg.Template.TemplateID] = reg
	return nil
}

// Get looks up a registration by template_id.
func (r *Registry) Get(templateID string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[templateID]
	return reg, ok
}

// Has reports whether a template is registered.
func (r *Registry) Has(templateID string) bool {
	_, ok := r.Get(templateID)
	return ok
}

// TemplateIDs returns all registered ids, sorted for determinism.
func (r *Registry) TemplateIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
