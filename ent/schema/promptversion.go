package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptVersion holds the schema definition for the PromptVersion entity.
// Created when an evolution mutation is applied; performance fields are
// running averages updated per execute.
type PromptVersion struct {
	ent.Schema
}

// Fields of the PromptVersion.
func (PromptVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Text("template_text"),
		field.Int("usage_count").
			Default(0),
		field.Float("success_rate").
			Default(0),
		field.Float("avg_time").
			Default(0).
			Comment("Seconds"),
		field.Float("performance_score").
			Default(0),
		field.Time("created_at").
			Immutable(),
	}
}

// Edges of the PromptVersion.
func (PromptVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", AgentState.Type).
			Ref("prompt_versions").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptVersion.
func (PromptVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id"),
		index.Fields("agent_id", "created_at"),
	}
}
