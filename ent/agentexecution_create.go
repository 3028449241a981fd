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
)

// AgentExecutionCreate is the builder for creating a AgentExecution entity.
type AgentExecutionCreate struct {
	config
	mutation *AgentExecutionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentExecutionCreate) SetAgentID(v string) *AgentExecutionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AgentExecutionCreate) SetSessionID(v string) *AgentExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableSessionID(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *AgentExecutionCreate) SetWorkflowID(v string) *AgentExecutionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableWorkflowID(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *AgentExecutionCreate) SetInput(v map[string]interface{}) *AgentExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentExecutionCreate) SetOutput(v map[string]interface{}) *AgentExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentExecutionCreate) SetStatus(v agentexecution.Status) *AgentExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentExecutionCreate) SetErrorMessage(v string) *AgentExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableErrorMessage(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AgentExecutionCreate) SetTokensUsed(v int) *AgentExecutionCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableTokensUsed(v *int) *AgentExecutionCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentExecutionCreate) SetStartedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentExecutionCreate) SetCompletedAt(v time.Time) *AgentExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCompletedAt(v *time.Time) *AgentExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentExecutionCreate) SetMetadata(v map[string]interface{}) *AgentExecutionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentExecutionCreate) SetID(v string) *AgentExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the AgentState entity.
func (_c *AgentExecutionCreate) SetAgent(v *AgentState) *AgentExecutionCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_c *AgentExecutionCreate) Mutation() *AgentExecutionMutation {
	return _c.mutation
}

// Save creates the AgentExecution in the database.
func (_c *AgentExecutionCreate) Save(ctx context.Context) (*AgentExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentExecutionCreate) SaveX(ctx context.Context) *AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentExecutionCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := agentexecution.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentExecutionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentExecution.agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "AgentExecution.tokens_used"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentExecution.started_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentExecution.agent"`)}
	}
	return nil
}

func (_c *AgentExecutionCreate) sqlSave(ctx context.Context) (*AgentExecution, error) {
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
			return nil, fmt.Errorf("unexpected AgentExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentExecutionCreate) createSpec() (*AgentExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentexecution.Table, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(agentexecution.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(agentexecution.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(agentexecution.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentexecution.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.AgentTable,
			Columns: []string{agentexecution.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentExecutionCreateBulk is the builder for creating many AgentExecution entities in bulk.
type AgentExecutionCreateBulk struct {
	config
	err      error
	builders []*AgentExecutionCreate
}

// Save creates the AgentExecution entities in the database.
func (_c *AgentExecutionCreateBulk) Save(ctx context.Context) ([]*AgentExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentExecutionMutation)
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
func (_c *AgentExecutionCreateBulk) SaveX(ctx context.Context) []*AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
