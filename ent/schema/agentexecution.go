package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity.
// One append-only audit row per attempted worker execute.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable().
			Comment("Denormalized for per-session queries"),
		field.String("workflow_id").
			Optional().
			Immutable(),
		field.JSON("input", map[string]any{}).
			Optional(),
		field.JSON("output", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("completed", "failed", "cancelled", "timed_out"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Default(0),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", AgentState.Type).
			Ref("executions").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id"),
		index.Fields("agent_id", "started_at"),
		index.Fields("workflow_id"),
	}
}
