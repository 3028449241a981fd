// Code generated by ent, DO NOT EDIT.

package promptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/devex-platform/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldAgentID, v))
}

// TemplateText applies equality check predicate on the "template_text" field. It's identical to TemplateTextEQ.
func TemplateText(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldTemplateText, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldUsageCount, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldSuccessRate, v))
}

// AvgTime applies equality check predicate on the "avg_time" field. It's identical to AvgTimeEQ.
func AvgTime(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldAvgTime, v))
}

// PerformanceScore applies equality check predicate on the "performance_score" field. It's identical to PerformanceScoreEQ.
func PerformanceScore(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldPerformanceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldAgentID, v))
}

// TemplateTextEQ applies the EQ predicate on the "template_text" field.
func TemplateTextEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldTemplateText, v))
}

// TemplateTextNEQ applies the NEQ predicate on the "template_text" field.
func TemplateTextNEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldTemplateText, v))
}

// TemplateTextIn applies the In predicate on the "template_text" field.
func TemplateTextIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldTemplateText, vs...))
}

// TemplateTextNotIn applies the NotIn predicate on the "template_text" field.
func TemplateTextNotIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldTemplateText, vs...))
}

// TemplateTextGT applies the GT predicate on the "template_text" field.
func TemplateTextGT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldTemplateText, v))
}

// TemplateTextGTE applies the GTE predicate on the "template_text" field.
func TemplateTextGTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldTemplateText, v))
}

// TemplateTextLT applies the LT predicate on the "template_text" field.
func TemplateTextLT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldTemplateText, v))
}

// TemplateTextLTE applies the LTE predicate on the "template_text" field.
func TemplateTextLTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldTemplateText, v))
}

// TemplateTextContains applies the Contains predicate on the "template_text" field.
func TemplateTextContains(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContains(FieldTemplateText, v))
}

// TemplateTextHasPrefix applies the HasPrefix predicate on the "template_text" field.
func TemplateTextHasPrefix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasPrefix(FieldTemplateText, v))
}

// TemplateTextHasSuffix applies the HasSuffix predicate on the "template_text" field.
func TemplateTextHasSuffix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasSuffix(FieldTemplateText, v))
}

// TemplateTextEqualFold applies the EqualFold predicate on the "template_text" field.
func TemplateTextEqualFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldTemplateText, v))
}

// TemplateTextContainsFold applies the ContainsFold predicate on the "template_text" field.
func TemplateTextContainsFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldTemplateText, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldUsageCount, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldSuccessRate, v))
}

// AvgTimeEQ applies the EQ predicate on the "avg_time" field.
func AvgTimeEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldAvgTime, v))
}

// AvgTimeNEQ applies the NEQ predicate on the "avg_time" field.
func AvgTimeNEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldAvgTime, v))
}

// AvgTimeIn applies the In predicate on the "avg_time" field.
func AvgTimeIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldAvgTime, vs...))
}

// AvgTimeNotIn applies the NotIn predicate on the "avg_time" field.
func AvgTimeNotIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldAvgTime, vs...))
}

// AvgTimeGT applies the GT predicate on the "avg_time" field.
func AvgTimeGT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldAvgTime, v))
}

// AvgTimeGTE applies the GTE predicate on the "avg_time" field.
func AvgTimeGTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldAvgTime, v))
}

// AvgTimeLT applies the LT predicate on the "avg_time" field.
func AvgTimeLT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldAvgTime, v))
}

// AvgTimeLTE applies the LTE predicate on the "avg_time" field.
func AvgTimeLTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldAvgTime, v))
}

// PerformanceScoreEQ applies the EQ predicate on the "performance_score" field.
func PerformanceScoreEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldPerformanceScore, v))
}

// PerformanceScoreNEQ applies the NEQ predicate on the "performance_score" field.
func PerformanceScoreNEQ(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldPerformanceScore, v))
}

// PerformanceScoreIn applies the In predicate on the "performance_score" field.
func PerformanceScoreIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreNotIn applies the NotIn predicate on the "performance_score" field.
func PerformanceScoreNotIn(vs ...float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreGT applies the GT predicate on the "performance_score" field.
func PerformanceScoreGT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldPerformanceScore, v))
}

// PerformanceScoreGTE applies the GTE predicate on the "performance_score" field.
func PerformanceScoreGTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldPerformanceScore, v))
}

// PerformanceScoreLT applies the LT predicate on the "performance_score" field.
func PerformanceScoreLT(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldPerformanceScore, v))
}

// PerformanceScoreLTE applies the LTE predicate on the "performance_score" field.
func PerformanceScoreLTE(v float64) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldPerformanceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.PromptVersion {
	return predicate.PromptVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.AgentState) predicate.PromptVersion {
	return predicate.PromptVersion(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.NotPredicates(p))
}
