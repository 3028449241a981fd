// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// PromptVersion is the model entity for the PromptVersion schema.
type PromptVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// TemplateText holds the value of the "template_text" field.
	TemplateText string `json:"template_text,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float64 `json:"success_rate,omitempty"`
	// Seconds
	AvgTime float64 `json:"avg_time,omitempty"`
	// PerformanceScore holds the value of the "performance_score" field.
	PerformanceScore float64 `json:"performance_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptVersionQuery when eager-loading is set.
	Edges        PromptVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptVersionEdges holds the relations/edges for other nodes in the graph.
type PromptVersionEdges struct {
	// Agent holds the value of the agent edge.
	Agent *AgentState `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromptVersionEdges) AgentOrErr() (*AgentState, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentstate.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldSuccessRate, promptversion.FieldAvgTime, promptversion.FieldPerformanceScore:
			values[i] = new(sql.NullFloat64)
		case promptversion.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case promptversion.FieldID, promptversion.FieldAgentID, promptversion.FieldTemplateText:
			values[i] = new(sql.NullString)
		case promptversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptVersion fields.
func (_m *PromptVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptversion.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case promptversion.FieldTemplateText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_text", values[i])
			} else if value.Valid {
				_m.TemplateText = value.String
			}
		case promptversion.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case promptversion.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = value.Float64
			}
		case promptversion.FieldAvgTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_time", values[i])
			} else if value.Valid {
				_m.AvgTime = value.Float64
			}
		case promptversion.FieldPerformanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field performance_score", values[i])
			} else if value.Valid {
				_m.PerformanceScore = value.Float64
			}
		case promptversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptVersion.
// This includes values selected through modifiers, order, etc.
func (_m *PromptVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the PromptVersion entity.
func (_m *PromptVersion) QueryAgent() *AgentStateQuery {
	return NewPromptVersionClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this PromptVersion.
// Note that you need to call PromptVersion.Unwrap() before calling this method if this PromptVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptVersion) Update() *PromptVersionUpdateOne {
	return NewPromptVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptVersion) Unwrap() *PromptVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptVersion) String() string {
	var builder strings.Builder
	builder.WriteString("PromptVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("template_text=")
	builder.WriteString(_m.TemplateText)
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteString(", ")
	builder.WriteString("avg_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTime))
	builder.WriteString(", ")
	builder.WriteString("performance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerformanceScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptVersions is a parsable slice of PromptVersion.
type PromptVersions []*PromptVersion
