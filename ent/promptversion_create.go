// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// PromptVersionCreate is the builder for creating a PromptVersion entity.
type PromptVersionCreate struct {
	config
	mutation *PromptVersionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *PromptVersionCreate) SetAgentID(v string) *PromptVersionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTemplateText sets the "template_text" field.
func (_c *PromptVersionCreate) SetTemplateText(v string) *PromptVersionCreate {
	_c.mutation.SetTemplateText(v)
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *PromptVersionCreate) SetUsageCount(v int) *PromptVersionCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableUsageCount(v *int) *PromptVersionCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *PromptVersionCreate) SetSuccessRate(v float64) *PromptVersionCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableSuccessRate(v *float64) *PromptVersionCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetAvgTime sets the "avg_time" field.
func (_c *PromptVersionCreate) SetAvgTime(v float64) *PromptVersionCreate {
	_c.mutation.SetAvgTime(v)
	return _c
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableAvgTime(v *float64) *PromptVersionCreate {
	if v != nil {
		_c.SetAvgTime(*v)
	}
	return _c
}

// SetPerformanceScore sets the "performance_score" field.
func (_c *PromptVersionCreate) SetPerformanceScore(v float64) *PromptVersionCreate {
	_c.mutation.SetPerformanceScore(v)
	return _c
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillablePerformanceScore(v *float64) *PromptVersionCreate {
	if v != nil {
		_c.SetPerformanceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptVersionCreate) SetCreatedAt(v time.Time) *PromptVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PromptVersionCreate) SetID(v string) *PromptVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the AgentState entity.
func (_c *PromptVersionCreate) SetAgent(v *AgentState) *PromptVersionCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_c *PromptVersionCreate) Mutation() *PromptVersionMutation {
	return _c.mutation
}

// Save creates the PromptVersion in the database.
func (_c *PromptVersionCreate) Save(ctx context.Context) (*PromptVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptVersionCreate) SaveX(ctx context.Context) *PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptVersionCreate) defaults() {
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := promptversion.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := promptversion.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.AvgTime(); !ok {
		v := promptversion.DefaultAvgTime
		_c.mutation.SetAvgTime(v)
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		v := promptversion.DefaultPerformanceScore
		_c.mutation.SetPerformanceScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptVersionCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "PromptVersion.agent_id"`)}
	}
	if _, ok := _c.mutation.TemplateText(); !ok {
		return &ValidationError{Name: "template_text", err: errors.New(`ent: missing required field "PromptVersion.template_text"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "PromptVersion.usage_count"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "PromptVersion.success_rate"`)}
	}
	if _, ok := _c.mutation.AvgTime(); !ok {
		return &ValidationError{Name: "avg_time", err: errors.New(`ent: missing required field "PromptVersion.avg_time"`)}
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		return &ValidationError{Name: "performance_score", err: errors.New(`ent: missing required field "PromptVersion.performance_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptVersion.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "PromptVersion.agent"`)}
	}
	return nil
}

func (_c *PromptVersionCreate) sqlSave(ctx context.Context) (*PromptVersion, error) {
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
			return nil, fmt.Errorf("unexpected PromptVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptVersionCreate) createSpec() (*PromptVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptversion.Table, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateText(); ok {
		_spec.SetField(promptversion.FieldTemplateText, field.TypeString, value)
		_node.TemplateText = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(promptversion.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(promptversion.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.AvgTime(); ok {
		_spec.SetField(promptversion.FieldAvgTime, field.TypeFloat64, value)
		_node.AvgTime = value
	}
	if value, ok := _c.mutation.PerformanceScore(); ok {
		_spec.SetField(promptversion.FieldPerformanceScore, field.TypeFloat64, value)
		_node.PerformanceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptversion.AgentTable,
			Columns: []string{promptversion.AgentColumn},
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

// PromptVersionCreateBulk is the builder for creating many PromptVersion entities in bulk.
type PromptVersionCreateBulk struct {
	config
	err      error
	builders []*PromptVersionCreate
}

// Save creates the PromptVersion entities in the database.
func (_c *PromptVersionCreateBulk) Save(ctx context.Context) ([]*PromptVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptVersionMutation)
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
func (_c *PromptVersionCreateBulk) SaveX(ctx context.Context) []*PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
