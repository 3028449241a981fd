package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentState holds the schema definition for the AgentState entity.
// One row per worker for the process lifetime; the lifecycle manager is
// the single writer.
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("template_id").
			Immutable(),
		field.Enum("kind").
			Values("code", "documentation", "analysis", "meta", "creative", "workflow"),
		field.Enum("lifecycle").
			Values("created", "initializing", "ready", "running", "paused",
				"suspended", "terminating", "terminated", "error").
			Default("created"),
		field.Int("execution_count").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.JSON("context_snapshot", map[string]any{}).
			Optional(),
		field.JSON("dependencies", []string{}).
			Optional(),
		field.JSON("checkpoints", []map[string]any{}).
			Optional().
			Comment("Bounded ring, capacity 10, newest last"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Immutable(),
		field.Time("last_updated"),
	}
}

// Edges of the AgentState.
func (AgentState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", AgentExecution.Type),
		edge.To("prompt_versions", PromptVersion.Type),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id"),
		index.Fields("is_active"),
		index.Fields("template_id"),
	}
}
