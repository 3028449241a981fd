// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/devex-platform/crewd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldID, id))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTemplateID, v))
}

// ExecutionCount applies equality check predicate on the "execution_count" field. It's identical to ExecutionCountEQ.
func ExecutionCount(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldExecutionCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldErrorCount, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastUpdated, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldTemplateID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldKind, vs...))
}

// LifecycleEQ applies the EQ predicate on the "lifecycle" field.
func LifecycleEQ(v Lifecycle) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLifecycle, v))
}

// LifecycleNEQ applies the NEQ predicate on the "lifecycle" field.
func LifecycleNEQ(v Lifecycle) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldLifecycle, v))
}

// LifecycleIn applies the In predicate on the "lifecycle" field.
func LifecycleIn(vs ...Lifecycle) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldLifecycle, vs...))
}

// LifecycleNotIn applies the NotIn predicate on the "lifecycle" field.
func LifecycleNotIn(vs ...Lifecycle) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldLifecycle, vs...))
}

// ExecutionCountEQ applies the EQ predicate on the "execution_count" field.
func ExecutionCountEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldExecutionCount, v))
}

// ExecutionCountNEQ applies the NEQ predicate on the "execution_count" field.
func ExecutionCountNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldExecutionCount, v))
}

// ExecutionCountIn applies the In predicate on the "execution_count" field.
func ExecutionCountIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldExecutionCount, vs...))
}

// ExecutionCountNotIn applies the NotIn predicate on the "execution_count" field.
func ExecutionCountNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldExecutionCount, vs...))
}

// ExecutionCountGT applies the GT predicate on the "execution_count" field.
func ExecutionCountGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldExecutionCount, v))
}

// ExecutionCountGTE applies the GTE predicate on the "execution_count" field.
func ExecutionCountGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldExecutionCount, v))
}

// ExecutionCountLT applies the LT predicate on the "execution_count" field.
func ExecutionCountLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldExecutionCount, v))
}

// ExecutionCountLTE applies the LTE predicate on the "execution_count" field.
func ExecutionCountLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldExecutionCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldErrorCount, v))
}

// ContextSnapshotIsNil applies the IsNil predicate on the "context_snapshot" field.
func ContextSnapshotIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldContextSnapshot))
}

// ContextSnapshotNotNil applies the NotNil predicate on the "context_snapshot" field.
func ContextSnapshotNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldContextSnapshot))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldDependencies))
}

// CheckpointsIsNil applies the IsNil predicate on the "checkpoints" field.
func CheckpointsIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldCheckpoints))
}

// CheckpointsNotNil applies the NotNil predicate on the "checkpoints" field.
func CheckpointsNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldCheckpoints))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCreatedAt, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldLastUpdated, v))
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.AgentExecution) predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptVersions applies the HasEdge predicate on the "prompt_versions" edge.
func HasPromptVersions() predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptVersionsTable, PromptVersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptVersionsWith applies the HasEdge predicate on the "prompt_versions" edge with a given conditions (other predicates).
func HasPromptVersionsWith(preds ...predicate.PromptVersion) predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := newPromptVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.NotPredicates(p))
}
