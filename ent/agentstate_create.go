// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
}

// SetTemplateID sets the "template_id" field.
func (_c *AgentStateCreate) SetTemplateID(v string) *AgentStateCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentStateCreate) SetKind(v agentstate.Kind) *AgentStateCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLifecycle sets the "lifecycle" field.
func (_c *AgentStateCreate) SetLifecycle(v agentstate.Lifecycle) *AgentStateCreate {
	_c.mutation.SetLifecycle(v)
	return _c
}

// SetNillableLifecycle sets the "lifecycle" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLifecycle(v *agentstate.Lifecycle) *AgentStateCreate {
	if v != nil {
		_c.SetLifecycle(*v)
	}
	return _c
}

// SetExecutionCount sets the "execution_count" field.
func (_c *AgentStateCreate) SetExecutionCount(v int) *AgentStateCreate {
	_c.mutation.SetExecutionCount(v)
	return _c
}

// SetNillableExecutionCount sets the "execution_count" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableExecutionCount(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetExecutionCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *AgentStateCreate) SetErrorCount(v int) *AgentStateCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableErrorCount(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_c *AgentStateCreate) SetContextSnapshot(v map[string]interface{}) *AgentStateCreate {
	_c.mutation.SetContextSnapshot(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *AgentStateCreate) SetDependencies(v []string) *AgentStateCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetCheckpoints sets the "checkpoints" field.
func (_c *AgentStateCreate) SetCheckpoints(v []map[string]interface{}) *AgentStateCreate {
	_c.mutation.SetCheckpoints(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AgentStateCreate) SetIsActive(v bool) *AgentStateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableIsActive(v *bool) *AgentStateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStateCreate) SetCreatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *AgentStateCreate) SetLastUpdated(v time.Time) *AgentStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by IDs.
func (_c *AgentStateCreate) AddExecutionIDs(ids ...string) *AgentStateCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the AgentExecution entity.
func (_c *AgentStateCreate) AddExecutions(v ...*AgentExecution) *AgentStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the PromptVersion entity by IDs.
func (_c *AgentStateCreate) AddPromptVersionIDs(ids ...string) *AgentStateCreate {
	_c.mutation.AddPromptVersionIDs(ids...)
	return _c
}

// AddPromptVersions adds the "prompt_versions" edges to the PromptVersion entity.
func (_c *AgentStateCreate) AddPromptVersions(v ...*PromptVersion) *AgentStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptVersionIDs(ids...)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.Lifecycle(); !ok {
		v := agentstate.DefaultLifecycle
		_c.mutation.SetLifecycle(v)
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		v := agentstate.DefaultExecutionCount
		_c.mutation.SetExecutionCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := agentstate.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := agentstate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "AgentState.template_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentState.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := agentstate.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentState.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lifecycle(); !ok {
		return &ValidationError{Name: "lifecycle", err: errors.New(`ent: missing required field "AgentState.lifecycle"`)}
	}
	if v, ok := _c.mutation.Lifecycle(); ok {
		if err := agentstate.LifecycleValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle", err: fmt.Errorf(`ent: validator failed for field "AgentState.lifecycle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionCount(); !ok {
		return &ValidationError{Name: "execution_count", err: errors.New(`ent: missing required field "AgentState.execution_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "AgentState.error_count"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AgentState.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentState.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "AgentState.last_updated"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(agentstate.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentstate.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Lifecycle(); ok {
		_spec.SetField(agentstate.FieldLifecycle, field.TypeEnum, value)
		_node.Lifecycle = value
	}
	if value, ok := _c.mutation.ExecutionCount(); ok {
		_spec.SetField(agentstate.FieldExecutionCount, field.TypeInt, value)
		_node.ExecutionCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(agentstate.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.ContextSnapshot(); ok {
		_spec.SetField(agentstate.FieldContextSnapshot, field.TypeJSON, value)
		_node.ContextSnapshot = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(agentstate.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Checkpoints(); ok {
		_spec.SetField(agentstate.FieldCheckpoints, field.TypeJSON, value)
		_node.Checkpoints = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(agentstate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(agentstate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptVersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
