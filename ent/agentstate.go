// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devex-platform/crewd/ent/agentstate"
)

// AgentState is the model entity for the AgentState schema.
type AgentState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind agentstate.Kind `json:"kind,omitempty"`
	// Lifecycle holds the value of the "lifecycle" field.
	Lifecycle agentstate.Lifecycle `json:"lifecycle,omitempty"`
	// ExecutionCount holds the value of the "execution_count" field.
	ExecutionCount int `json:"execution_count,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// ContextSnapshot holds the value of the "context_snapshot" field.
	ContextSnapshot map[string]interface{} `json:"context_snapshot,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies []string `json:"dependencies,omitempty"`
	// Bounded ring, capacity 10, newest last
	Checkpoints []map[string]interface{} `json:"checkpoints,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentStateQuery when eager-loading is set.
	Edges        AgentStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentStateEdges holds the relations/edges for other nodes in the graph.
type AgentStateEdges struct {
	// Executions holds the value of the executions edge.
	Executions []*AgentExecution `json:"executions,omitempty"`
	// PromptVersions holds the value of the prompt_versions edge.
	PromptVersions []*PromptVersion `json:"prompt_versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentStateEdges) ExecutionsOrErr() ([]*AgentExecution, error) {
	if e.loadedTypes[0] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// PromptVersionsOrErr returns the PromptVersions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentStateEdges) PromptVersionsOrErr() ([]*PromptVersion, error) {
	if e.loadedTypes[1] {
		return e.PromptVersions, nil
	}
	return nil, &NotLoadedError{edge: "prompt_versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldContextSnapshot, agentstate.FieldDependencies, agentstate.FieldCheckpoints:
			values[i] = new([]byte)
		case agentstate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case agentstate.FieldExecutionCount, agentstate.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case agentstate.FieldID, agentstate.FieldTemplateID, agentstate.FieldKind, agentstate.FieldLifecycle:
			values[i] = new(sql.NullString)
		case agentstate.FieldCreatedAt, agentstate.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentState fields.
func (_m *AgentState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstate.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case agentstate.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = agentstate.Kind(value.String)
			}
		case agentstate.FieldLifecycle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lifecycle", values[i])
			} else if value.Valid {
				_m.Lifecycle = agentstate.Lifecycle(value.String)
			}
		case agentstate.FieldExecutionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_count", values[i])
			} else if value.Valid {
				_m.ExecutionCount = int(value.Int64)
			}
		case agentstate.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case agentstate.FieldContextSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextSnapshot); err != nil {
					return fmt.Errorf("unmarshal field context_snapshot: %w", err)
				}
			}
		case agentstate.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case agentstate.FieldCheckpoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checkpoints); err != nil {
					return fmt.Errorf("unmarshal field checkpoints: %w", err)
				}
			}
		case agentstate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case agentstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentstate.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentState.
// This includes values selected through modifiers, order, etc.
func (_m *AgentState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutions queries the "executions" edge of the AgentState entity.
func (_m *AgentState) QueryExecutions() *AgentExecutionQuery {
	return NewAgentStateClient(_m.config).QueryExecutions(_m)
}

// QueryPromptVersions queries the "prompt_versions" edge of the AgentState entity.
func (_m *AgentState) QueryPromptVersions() *PromptVersionQuery {
	return NewAgentStateClient(_m.config).QueryPromptVersions(_m)
}

// Update returns a builder for updating this AgentState.
// Note that you need to call AgentState.Unwrap() before calling this method if this AgentState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentState) Update() *AgentStateUpdateOne {
	return NewAgentStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentState) Unwrap() *AgentState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentState) String() string {
	var builder strings.Builder
	builder.WriteString("AgentState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("lifecycle=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lifecycle))
	builder.WriteString(", ")
	builder.WriteString("execution_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("context_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextSnapshot))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("checkpoints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checkpoints))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentStates is a parsable slice of AgentState.
type AgentStates []*AgentState
