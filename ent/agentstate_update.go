// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/predicate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AgentStateUpdate) SetKind(v agentstate.Kind) *AgentStateUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableKind(v *agentstate.Kind) *AgentStateUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLifecycle sets the "lifecycle" field.
func (_u *AgentStateUpdate) SetLifecycle(v agentstate.Lifecycle) *AgentStateUpdate {
	_u.mutation.SetLifecycle(v)
	return _u
}

// SetNillableLifecycle sets the "lifecycle" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLifecycle(v *agentstate.Lifecycle) *AgentStateUpdate {
	if v != nil {
		_u.SetLifecycle(*v)
	}
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *AgentStateUpdate) SetExecutionCount(v int) *AgentStateUpdate {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableExecutionCount(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *AgentStateUpdate) AddExecutionCount(v int) *AgentStateUpdate {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *AgentStateUpdate) SetErrorCount(v int) *AgentStateUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableErrorCount(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *AgentStateUpdate) AddErrorCount(v int) *AgentStateUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_u *AgentStateUpdate) SetContextSnapshot(v map[string]interface{}) *AgentStateUpdate {
	_u.mutation.SetContextSnapshot(v)
	return _u
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (_u *AgentStateUpdate) ClearContextSnapshot() *AgentStateUpdate {
	_u.mutation.ClearContextSnapshot()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentStateUpdate) SetDependencies(v []string) *AgentStateUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentStateUpdate) AppendDependencies(v []string) *AgentStateUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentStateUpdate) ClearDependencies() *AgentStateUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetCheckpoints sets the "checkpoints" field.
func (_u *AgentStateUpdate) SetCheckpoints(v []map[string]interface{}) *AgentStateUpdate {
	_u.mutation.SetCheckpoints(v)
	return _u
}

// AppendCheckpoints appends value to the "checkpoints" field.
func (_u *AgentStateUpdate) AppendCheckpoints(v []map[string]interface{}) *AgentStateUpdate {
	_u.mutation.AppendCheckpoints(v)
	return _u
}

// ClearCheckpoints clears the value of the "checkpoints" field.
func (_u *AgentStateUpdate) ClearCheckpoints() *AgentStateUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentStateUpdate) SetIsActive(v bool) *AgentStateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableIsActive(v *bool) *AgentStateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentStateUpdate) SetLastUpdated(v time.Time) *AgentStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLastUpdated(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by IDs.
func (_u *AgentStateUpdate) AddExecutionIDs(ids ...string) *AgentStateUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the AgentExecution entity.
func (_u *AgentStateUpdate) AddExecutions(v ...*AgentExecution) *AgentStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the PromptVersion entity by IDs.
func (_u *AgentStateUpdate) AddPromptVersionIDs(ids ...string) *AgentStateUpdate {
	_u.mutation.AddPromptVersionIDs(ids...)
	return _u
}

// AddPromptVersions adds the "prompt_versions" edges to the PromptVersion entity.
func (_u *AgentStateUpdate) AddPromptVersions(v ...*PromptVersion) *AgentStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptVersionIDs(ids...)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the AgentExecution entity.
func (_u *AgentStateUpdate) ClearExecutions() *AgentStateUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to AgentExecution entities by IDs.
func (_u *AgentStateUpdate) RemoveExecutionIDs(ids ...string) *AgentStateUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to AgentExecution entities.
func (_u *AgentStateUpdate) RemoveExecutions(v ...*AgentExecution) *AgentStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearPromptVersions clears all "prompt_versions" edges to the PromptVersion entity.
func (_u *AgentStateUpdate) ClearPromptVersions() *AgentStateUpdate {
	_u.mutation.ClearPromptVersions()
	return _u
}

// RemovePromptVersionIDs removes the "prompt_versions" edge to PromptVersion entities by IDs.
func (_u *AgentStateUpdate) RemovePromptVersionIDs(ids ...string) *AgentStateUpdate {
	_u.mutation.RemovePromptVersionIDs(ids...)
	return _u
}

// RemovePromptVersions removes "prompt_versions" edges to PromptVersion entities.
func (_u *AgentStateUpdate) RemovePromptVersions(v ...*PromptVersion) *AgentStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := agentstate.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentState.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lifecycle(); ok {
		if err := agentstate.LifecycleValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle", err: fmt.Errorf(`ent: validator failed for field "AgentState.lifecycle": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(agentstate.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lifecycle(); ok {
		_spec.SetField(agentstate.FieldLifecycle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(agentstate.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(agentstate.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContextSnapshot(); ok {
		_spec.SetField(agentstate.FieldContextSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ContextSnapshotCleared() {
		_spec.ClearField(agentstate.FieldContextSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentstate.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentstate.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoints(); ok {
		_spec.SetField(agentstate.FieldCheckpoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheckpoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldCheckpoints, value)
		})
	}
	if _u.mutation.CheckpointsCleared() {
		_spec.ClearField(agentstate.FieldCheckpoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agentstate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptVersionsIDs(); len(nodes) > 0 && !_u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetKind sets the "kind" field.
func (_u *AgentStateUpdateOne) SetKind(v agentstate.Kind) *AgentStateUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableKind(v *agentstate.Kind) *AgentStateUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLifecycle sets the "lifecycle" field.
func (_u *AgentStateUpdateOne) SetLifecycle(v agentstate.Lifecycle) *AgentStateUpdateOne {
	_u.mutation.SetLifecycle(v)
	return _u
}

// SetNillableLifecycle sets the "lifecycle" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLifecycle(v *agentstate.Lifecycle) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLifecycle(*v)
	}
	return _u
}

// SetExecutionCount sets the "execution_count" field.
func (_u *AgentStateUpdateOne) SetExecutionCount(v int) *AgentStateUpdateOne {
	_u.mutation.ResetExecutionCount()
	_u.mutation.SetExecutionCount(v)
	return _u
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableExecutionCount(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetExecutionCount(*v)
	}
	return _u
}

// AddExecutionCount adds value to the "execution_count" field.
func (_u *AgentStateUpdateOne) AddExecutionCount(v int) *AgentStateUpdateOne {
	_u.mutation.AddExecutionCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *AgentStateUpdateOne) SetErrorCount(v int) *AgentStateUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableErrorCount(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *AgentStateUpdateOne) AddErrorCount(v int) *AgentStateUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_u *AgentStateUpdateOne) SetContextSnapshot(v map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.SetContextSnapshot(v)
	return _u
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (_u *AgentStateUpdateOne) ClearContextSnapshot() *AgentStateUpdateOne {
	_u.mutation.ClearContextSnapshot()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentStateUpdateOne) SetDependencies(v []string) *AgentStateUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentStateUpdateOne) AppendDependencies(v []string) *AgentStateUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentStateUpdateOne) ClearDependencies() *AgentStateUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetCheckpoints sets the "checkpoints" field.
func (_u *AgentStateUpdateOne) SetCheckpoints(v []map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.SetCheckpoints(v)
	return _u
}

// AppendCheckpoints appends value to the "checkpoints" field.
func (_u *AgentStateUpdateOne) AppendCheckpoints(v []map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.AppendCheckpoints(v)
	return _u
}

// ClearCheckpoints clears the value of the "checkpoints" field.
func (_u *AgentStateUpdateOne) ClearCheckpoints() *AgentStateUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentStateUpdateOne) SetIsActive(v bool) *AgentStateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableIsActive(v *bool) *AgentStateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *AgentStateUpdateOne) SetLastUpdated(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLastUpdated(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by IDs.
func (_u *AgentStateUpdateOne) AddExecutionIDs(ids ...string) *AgentStateUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the AgentExecution entity.
func (_u *AgentStateUpdateOne) AddExecutions(v ...*AgentExecution) *AgentStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the PromptVersion entity by IDs.
func (_u *AgentStateUpdateOne) AddPromptVersionIDs(ids ...string) *AgentStateUpdateOne {
	_u.mutation.AddPromptVersionIDs(ids...)
	return _u
}

// AddPromptVersions adds the "prompt_versions" edges to the PromptVersion entity.
func (_u *AgentStateUpdateOne) AddPromptVersions(v ...*PromptVersion) *AgentStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptVersionIDs(ids...)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the AgentExecution entity.
func (_u *AgentStateUpdateOne) ClearExecutions() *AgentStateUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to AgentExecution entities by IDs.
func (_u *AgentStateUpdateOne) RemoveExecutionIDs(ids ...string) *AgentStateUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to AgentExecution entities.
func (_u *AgentStateUpdateOne) RemoveExecutions(v ...*AgentExecution) *AgentStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearPromptVersions clears all "prompt_versions" edges to the PromptVersion entity.
func (_u *AgentStateUpdateOne) ClearPromptVersions() *AgentStateUpdateOne {
	_u.mutation.ClearPromptVersions()
	return _u
}

// RemovePromptVersionIDs removes the "prompt_versions" edge to PromptVersion entities by IDs.
func (_u *AgentStateUpdateOne) RemovePromptVersionIDs(ids ...string) *AgentStateUpdateOne {
	_u.mutation.RemovePromptVersionIDs(ids...)
	return _u
}

// RemovePromptVersions removes "prompt_versions" edges to PromptVersion entities.
func (_u *AgentStateUpdateOne) RemovePromptVersions(v ...*PromptVersion) *AgentStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptVersionIDs(ids...)
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := agentstate.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentState.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lifecycle(); ok {
		if err := agentstate.LifecycleValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle", err: fmt.Errorf(`ent: validator failed for field "AgentState.lifecycle": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(agentstate.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lifecycle(); ok {
		_spec.SetField(agentstate.FieldLifecycle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionCount(); ok {
		_spec.SetField(agentstate.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutionCount(); ok {
		_spec.AddField(agentstate.FieldExecutionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(agentstate.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContextSnapshot(); ok {
		_spec.SetField(agentstate.FieldContextSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ContextSnapshotCleared() {
		_spec.ClearField(agentstate.FieldContextSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentstate.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentstate.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoints(); ok {
		_spec.SetField(agentstate.FieldCheckpoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheckpoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldCheckpoints, value)
		})
	}
	if _u.mutation.CheckpointsCleared() {
		_spec.ClearField(agentstate.FieldCheckpoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agentstate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.ExecutionsTable,
			Columns: []string{agentstate.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptVersionsIDs(); len(nodes) > 0 && !_u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstate.PromptVersionsTable,
			Columns: []string{agentstate.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
