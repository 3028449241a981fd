// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/predicate"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdate) SetInput(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentExecutionUpdate) ClearInput() *AgentExecutionUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdate) SetOutput(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdate) ClearOutput() *AgentExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdate) SetStatus(v agentexecution.Status) *AgentExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdate) SetErrorMessage(v string) *AgentExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableErrorMessage(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdate) ClearErrorMessage() *AgentExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentExecutionUpdate) SetTokensUsed(v int) *AgentExecutionUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableTokensUsed(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentExecutionUpdate) AddTokensUsed(v int) *AgentExecutionUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdate) SetStartedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdate) SetCompletedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdate) ClearCompletedAt() *AgentExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentExecutionUpdate) SetMetadata(v map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentExecutionUpdate) ClearMetadata() *AgentExecutionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.agent"`)
	}
	return nil
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(agentexecution.FieldSessionID, field.TypeString)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(agentexecution.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentexecution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentexecution.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdateOne) SetInput(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *AgentExecutionUpdateOne) ClearInput() *AgentExecutionUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdateOne) SetOutput(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdateOne) ClearOutput() *AgentExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdateOne) SetStatus(v agentexecution.Status) *AgentExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdateOne) SetErrorMessage(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableErrorMessage(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdateOne) ClearErrorMessage() *AgentExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentExecutionUpdateOne) SetTokensUsed(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableTokensUsed(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentExecutionUpdateOne) AddTokensUsed(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdateOne) SetStartedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdateOne) SetCompletedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdateOne) ClearCompletedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentExecutionUpdateOne) SetMetadata(v map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentExecutionUpdateOne) ClearMetadata() *AgentExecutionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.agent"`)
	}
	return nil
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(agentexecution.FieldSessionID, field.TypeString)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(agentexecution.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(agentexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentexecution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentexecution.FieldMetadata, field.TypeJSON)
	}
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
