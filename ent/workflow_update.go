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
	"github.com/devex-platform/crewd/ent/predicate"
	"github.com/devex-platform/crewd/ent/workflow"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowUpdate) SetName(v string) *WorkflowUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableName(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkflowUpdate) SetDescription(v string) *WorkflowUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableDescription(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkflowUpdate) ClearDescription() *WorkflowUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProjectType sets the "project_type" field.
func (_u *WorkflowUpdate) SetProjectType(v string) *WorkflowUpdate {
	_u.mutation.SetProjectType(v)
	return _u
}

// SetNillableProjectType sets the "project_type" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableProjectType(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetProjectType(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *WorkflowUpdate) SetOwnerUserID(v string) *WorkflowUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableOwnerUserID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *WorkflowUpdate) ClearOwnerUserID() *WorkflowUpdate {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WorkflowUpdate) SetSessionID(v string) *WorkflowUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableSessionID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WorkflowUpdate) ClearSessionID() *WorkflowUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhases sets the "phases" field.
func (_u *WorkflowUpdate) SetPhases(v []map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetPhases(v)
	return _u
}

// AppendPhases appends value to the "phases" field.
func (_u *WorkflowUpdate) AppendPhases(v []map[string]interface{}) *WorkflowUpdate {
	_u.mutation.AppendPhases(v)
	return _u
}

// ClearPhases clears the value of the "phases" field.
func (_u *WorkflowUpdate) ClearPhases() *WorkflowUpdate {
	_u.mutation.ClearPhases()
	return _u
}

// SetSharedContext sets the "shared_context" field.
func (_u *WorkflowUpdate) SetSharedContext(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetSharedContext(v)
	return _u
}

// ClearSharedContext clears the value of the "shared_context" field.
func (_u *WorkflowUpdate) ClearSharedContext() *WorkflowUpdate {
	_u.mutation.ClearSharedContext()
	return _u
}

// SetOptions sets the "options" field.
func (_u *WorkflowUpdate) SetOptions(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *WorkflowUpdate) ClearOptions() *WorkflowUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableUpdatedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workflow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workflow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectType(); ok {
		_spec.SetField(workflow.FieldProjectType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(workflow.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(workflow.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(workflow.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(workflow.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phases(); ok {
		_spec.SetField(workflow.FieldPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflow.FieldPhases, value)
		})
	}
	if _u.mutation.PhasesCleared() {
		_spec.ClearField(workflow.FieldPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.SharedContext(); ok {
		_spec.SetField(workflow.FieldSharedContext, field.TypeJSON, value)
	}
	if _u.mutation.SharedContextCleared() {
		_spec.ClearField(workflow.FieldSharedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(workflow.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(workflow.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetName sets the "name" field.
func (_u *WorkflowUpdateOne) SetName(v string) *WorkflowUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableName(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkflowUpdateOne) SetDescription(v string) *WorkflowUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableDescription(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkflowUpdateOne) ClearDescription() *WorkflowUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProjectType sets the "project_type" field.
func (_u *WorkflowUpdateOne) SetProjectType(v string) *WorkflowUpdateOne {
	_u.mutation.SetProjectType(v)
	return _u
}

// SetNillableProjectType sets the "project_type" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableProjectType(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetProjectType(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *WorkflowUpdateOne) SetOwnerUserID(v string) *WorkflowUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableOwnerUserID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *WorkflowUpdateOne) ClearOwnerUserID() *WorkflowUpdateOne {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WorkflowUpdateOne) SetSessionID(v string) *WorkflowUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableSessionID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WorkflowUpdateOne) ClearSessionID() *WorkflowUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhases sets the "phases" field.
func (_u *WorkflowUpdateOne) SetPhases(v []map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetPhases(v)
	return _u
}

// AppendPhases appends value to the "phases" field.
func (_u *WorkflowUpdateOne) AppendPhases(v []map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.AppendPhases(v)
	return _u
}

// ClearPhases clears the value of the "phases" field.
func (_u *WorkflowUpdateOne) ClearPhases() *WorkflowUpdateOne {
	_u.mutation.ClearPhases()
	return _u
}

// SetSharedContext sets the "shared_context" field.
func (_u *WorkflowUpdateOne) SetSharedContext(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetSharedContext(v)
	return _u
}

// ClearSharedContext clears the value of the "shared_context" field.
func (_u *WorkflowUpdateOne) ClearSharedContext() *WorkflowUpdateOne {
	_u.mutation.ClearSharedContext()
	return _u
}

// SetOptions sets the "options" field.
func (_u *WorkflowUpdateOne) SetOptions(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *WorkflowUpdateOne) ClearOptions() *WorkflowUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableUpdatedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workflow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workflow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectType(); ok {
		_spec.SetField(workflow.FieldProjectType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(workflow.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(workflow.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(workflow.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(workflow.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phases(); ok {
		_spec.SetField(workflow.FieldPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflow.FieldPhases, value)
		})
	}
	if _u.mutation.PhasesCleared() {
		_spec.ClearField(workflow.FieldPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.SharedContext(); ok {
		_spec.SetField(workflow.FieldSharedContext, field.TypeJSON, value)
	}
	if _u.mutation.SharedContextCleared() {
		_spec.ClearField(workflow.FieldSharedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(workflow.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(workflow.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
