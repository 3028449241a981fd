package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity. Phases and
// steps are stored denormalized as JSON; the orchestrator owns their shape
// and rewrites the row on every status change.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional(),
		field.String("project_type"),
		field.String("owner_user_id").
			Optional(),
		field.String("session_id").
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("phases", []map[string]any{}).
			Optional(),
		field.JSON("shared_context", map[string]any{}).
			Optional(),
		field.JSON("options", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("id"),
		index.Fields("owner_user_id", "status"),
		index.Fields("session_id"),
	}
}
