// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentstate type in the database.
	Label = "agent_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldLifecycle holds the string denoting the lifecycle field in the database.
	FieldLifecycle = "lifecycle"
	// FieldExecutionCount holds the string denoting the execution_count field in the database.
	FieldExecutionCount = "execution_count"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldContextSnapshot holds the string denoting the context_snapshot field in the database.
	FieldContextSnapshot = "context_snapshot"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldCheckpoints holds the string denoting the checkpoints field in the database.
	FieldCheckpoints = "checkpoints"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgePromptVersions holds the string denoting the prompt_versions edge name in mutations.
	EdgePromptVersions = "prompt_versions"
	// AgentExecutionFieldID holds the string denoting the ID field of the AgentExecution.
	AgentExecutionFieldID = "execution_id"
	// PromptVersionFieldID holds the string denoting the ID field of the PromptVersion.
	PromptVersionFieldID = "version_id"
	// Table holds the table name of the agentstate in the database.
	Table = "agent_states"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "agent_executions"
	// ExecutionsInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	ExecutionsInverseTable = "agent_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "agent_id"
	// PromptVersionsTable is the table that holds the prompt_versions relation/edge.
	PromptVersionsTable = "prompt_versions"
	// PromptVersionsInverseTable is the table name for the PromptVersion entity.
	// It exists in this package in order to avoid circular dependency with the "promptversion" package.
	PromptVersionsInverseTable = "prompt_versions"
	// PromptVersionsColumn is the table column denoting the prompt_versions relation/edge.
	PromptVersionsColumn = "agent_id"
)

// Columns holds all SQL columns for agentstate fields.
var Columns = []string{
	FieldID,
	FieldTemplateID,
	FieldKind,
	FieldLifecycle,
	FieldExecutionCount,
	FieldErrorCount,
	FieldContextSnapshot,
	FieldDependencies,
	FieldCheckpoints,
	FieldIsActive,
	FieldCreatedAt,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExecutionCount holds the default value on creation for the "execution_count" field.
	DefaultExecutionCount int
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindCode          Kind = "code"
	KindDocumentation Kind = "documentation"
	KindAnalysis      Kind = "analysis"
	KindMeta          Kind = "meta"
	KindCreative      Kind = "creative"
	KindWorkflow      Kind = "workflow"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindCode, KindDocumentation, KindAnalysis, KindMeta, KindCreative, KindWorkflow:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for kind field: %q", k)
	}
}

// Lifecycle defines the type for the "lifecycle" enum field.
type Lifecycle string

// LifecycleCreated is the default value of the Lifecycle enum.
const DefaultLifecycle = LifecycleCreated

// Lifecycle values.
const (
	LifecycleCreated      Lifecycle = "created"
	LifecycleInitializing Lifecycle = "initializing"
	LifecycleReady        Lifecycle = "ready"
	LifecycleRunning      Lifecycle = "running"
	LifecyclePaused       Lifecycle = "paused"
	LifecycleSuspended    Lifecycle = "suspended"
	LifecycleTerminating  Lifecycle = "terminating"
	LifecycleTerminated   Lifecycle = "terminated"
	LifecycleError        Lifecycle = "error"
)

func (l Lifecycle) String() string {
	return string(l)
}

// LifecycleValidator is a validator for the "lifecycle" field enum values. It is called by the builders before save.
func LifecycleValidator(l Lifecycle) error {
	switch l {
	case LifecycleCreated, LifecycleInitializing, LifecycleReady, LifecycleRunning, LifecyclePaused, LifecycleSuspended, LifecycleTerminating, LifecycleTerminated, LifecycleError:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for lifecycle field: %q", l)
	}
}

// OrderOption defines the ordering options for the AgentState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByLifecycle orders the results by the lifecycle field.
func ByLifecycle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLifecycle, opts...).ToFunc()
}

// ByExecutionCount orders the results by the execution_count field.
func ByExecutionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionCount, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptVersionsCount orders the results by prompt_versions count.
func ByPromptVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptVersionsStep(), opts...)
	}
}

// ByPromptVersions orders the results by prompt_versions terms.
func ByPromptVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, AgentExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newPromptVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptVersionsInverseTable, PromptVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromptVersionsTable, PromptVersionsColumn),
	)
}
