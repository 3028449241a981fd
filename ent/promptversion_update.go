// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/predicate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// PromptVersionUpdate is the builder for updating PromptVersion entities.
type PromptVersionUpdate struct {
	config
	hooks    []Hook
	mutation *PromptVersionMutation
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdate) Where(ps ...predicate.PromptVersion) *PromptVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateText sets the "template_text" field.
func (_u *PromptVersionUpdate) SetTemplateText(v string) *PromptVersionUpdate {
	_u.mutation.SetTemplateText(v)
	return _u
}

// SetNillableTemplateText sets the "template_text" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableTemplateText(v *string) *PromptVersionUpdate {
	if v != nil {
		_u.SetTemplateText(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *PromptVersionUpdate) SetUsageCount(v int) *PromptVersionUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableUsageCount(v *int) *PromptVersionUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *PromptVersionUpdate) AddUsageCount(v int) *PromptVersionUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *PromptVersionUpdate) SetSuccessRate(v float64) *PromptVersionUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableSuccessRate(v *float64) *PromptVersionUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *PromptVersionUpdate) AddSuccessRate(v float64) *PromptVersionUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *PromptVersionUpdate) SetAvgTime(v float64) *PromptVersionUpdate {
	_u.mutation.ResetAvgTime()
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableAvgTime(v *float64) *PromptVersionUpdate {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// AddAvgTime adds value to the "avg_time" field.
func (_u *PromptVersionUpdate) AddAvgTime(v float64) *PromptVersionUpdate {
	_u.mutation.AddAvgTime(v)
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PromptVersionUpdate) SetPerformanceScore(v float64) *PromptVersionUpdate {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillablePerformanceScore(v *float64) *PromptVersionUpdate {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PromptVersionUpdate) AddPerformanceScore(v float64) *PromptVersionUpdate {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdate) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptVersionUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptVersion.agent"`)
	}
	return nil
}

func (_u *PromptVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateText(); ok {
		_spec.SetField(promptversion.FieldTemplateText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(promptversion.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(promptversion.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(promptversion.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(promptversion.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(promptversion.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTime(); ok {
		_spec.AddField(promptversion.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(promptversion.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(promptversion.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptVersionUpdateOne is the builder for updating a single PromptVersion entity.
type PromptVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptVersionMutation
}

// SetTemplateText sets the "template_text" field.
func (_u *PromptVersionUpdateOne) SetTemplateText(v string) *PromptVersionUpdateOne {
	_u.mutation.SetTemplateText(v)
	return _u
}

// SetNillableTemplateText sets the "template_text" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableTemplateText(v *string) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetTemplateText(*v)
	}
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *PromptVersionUpdateOne) SetUsageCount(v int) *PromptVersionUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableUsageCount(v *int) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *PromptVersionUpdateOne) AddUsageCount(v int) *PromptVersionUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *PromptVersionUpdateOne) SetSuccessRate(v float64) *PromptVersionUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableSuccessRate(v *float64) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *PromptVersionUpdateOne) AddSuccessRate(v float64) *PromptVersionUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *PromptVersionUpdateOne) SetAvgTime(v float64) *PromptVersionUpdateOne {
	_u.mutation.ResetAvgTime()
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableAvgTime(v *float64) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// AddAvgTime adds value to the "avg_time" field.
func (_u *PromptVersionUpdateOne) AddAvgTime(v float64) *PromptVersionUpdateOne {
	_u.mutation.AddAvgTime(v)
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *PromptVersionUpdateOne) SetPerformanceScore(v float64) *PromptVersionUpdateOne {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillablePerformanceScore(v *float64) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *PromptVersionUpdateOne) AddPerformanceScore(v float64) *PromptVersionUpdateOne {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdateOne) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdateOne) Where(ps ...predicate.PromptVersion) *PromptVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptVersionUpdateOne) Select(field string, fields ...string) *PromptVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptVersion entity.
func (_u *PromptVersionUpdateOne) Save(ctx context.Context) (*PromptVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) SaveX(ctx context.Context) *PromptVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptVersionUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptVersion.agent"`)
	}
	return nil
}

func (_u *PromptVersionUpdateOne) sqlSave(ctx context.Context) (_node *PromptVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptversion.FieldID)
		for _, f := range fields {
			if !promptversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptversion.FieldID {
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
	if value, ok := _u.mutation.TemplateText(); ok {
		_spec.SetField(promptversion.FieldTemplateText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(promptversion.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(promptversion.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(promptversion.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(promptversion.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(promptversion.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTime(); ok {
		_spec.AddField(promptversion.FieldAvgTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(promptversion.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(promptversion.FieldPerformanceScore, field.TypeFloat64, value)
	}
	_node = &PromptVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
