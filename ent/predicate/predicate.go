// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// PromptVersion is the predicate function for promptversion builders.
type PromptVersion func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
