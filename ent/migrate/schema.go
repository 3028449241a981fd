// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed", "cancelled", "timed_out"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_agent_states_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[11]},
				RefColumns: []*schema.Column{AgentStatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[0]},
			},
			{
				Name:    "agentexecution_agent_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[11], AgentExecutionsColumns[8]},
			},
			{
				Name:    "agentexecution_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[2]},
			},
		},
	}
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"code", "documentation", "analysis", "meta", "creative", "workflow"}},
		{Name: "lifecycle", Type: field.TypeEnum, Enums: []string{"created", "initializing", "ready", "running", "paused", "suspended", "terminating", "terminated", "error"}, Default: "created"},
		{Name: "execution_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "context_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "checkpoints", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[0]},
			},
			{
				Name:    "agentstate_is_active",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[9]},
			},
			{
				Name:    "agentstate_template_id",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[1]},
			},
		},
	}
	// PromptVersionsColumns holds the columns for the "prompt_versions" table.
	PromptVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "template_text", Type: field.TypeString, Size: 2147483647},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_time", Type: field.TypeFloat64, Default: 0},
		{Name: "performance_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// PromptVersionsTable holds the schema information for the "prompt_versions" table.
	PromptVersionsTable = &schema.Table{
		Name:       "prompt_versions",
		Columns:    PromptVersionsColumns,
		PrimaryKey: []*schema.Column{PromptVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_versions_agent_states_prompt_versions",
				Columns:    []*schema.Column{PromptVersionsColumns[7]},
				RefColumns: []*schema.Column{AgentStatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptversion_version_id",
				Unique:  false,
				Columns: []*schema.Column{PromptVersionsColumns[0]},
			},
			{
				Name:    "promptversion_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptVersionsColumns[7], PromptVersionsColumns[6]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "project_type", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "phases", Type: field.TypeJSON, Nullable: true},
		{Name: "shared_context", Type: field.TypeJSON, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[0]},
			},
			{
				Name:    "workflow_owner_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[4], WorkflowsColumns[6]},
			},
			{
				Name:    "workflow_session_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		AgentStatesTable,
		PromptVersionsTable,
		WorkflowsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = AgentStatesTable
	PromptVersionsTable.ForeignKeys[0].RefTable = AgentStatesTable
}
