// Code generated by ent, DO NOT EDIT.

package promptversion

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptversion type in the database.
	Label = "prompt_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTemplateText holds the string denoting the template_text field in the database.
	FieldTemplateText = "template_text"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldSuccessRate holds the string denoting the success_rate field in the database.
	FieldSuccessRate = "success_rate"
	// FieldAvgTime holds the string denoting the avg_time field in the database.
	FieldAvgTime = "avg_time"
	// FieldPerformanceScore holds the string denoting the performance_score field in the database.
	FieldPerformanceScore = "performance_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// AgentStateFieldID holds the string denoting the ID field of the AgentState.
	AgentStateFieldID = "agent_id"
	// Table holds the table name of the promptversion in the database.
	Table = "prompt_versions"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "prompt_versions"
	// AgentInverseTable is the table name for the AgentState entity.
	// It exists in this package in order to avoid circular dependency with the "agentstate" package.
	AgentInverseTable = "agent_states"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for promptversion fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTemplateText,
	FieldUsageCount,
	FieldSuccessRate,
	FieldAvgTime,
	FieldPerformanceScore,
	FieldCreatedAt,
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
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// DefaultSuccessRate holds the default value on creation for the "success_rate" field.
	DefaultSuccessRate float64
	// DefaultAvgTime holds the default value on creation for the "avg_time" field.
	DefaultAvgTime float64
	// DefaultPerformanceScore holds the default value on creation for the "performance_score" field.
	DefaultPerformanceScore float64
)

// OrderOption defines the ordering options for the PromptVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTemplateText orders the results by the template_text field.
func ByTemplateText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateText, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// BySuccessRate orders the results by the success_rate field.
func BySuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRate, opts...).ToFunc()
}

// ByAvgTime orders the results by the avg_time field.
func ByAvgTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTime, opts...).ToFunc()
}

// ByPerformanceScore orders the results by the performance_score field.
func ByPerformanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentStateFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
