// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/predicate"
	"github.com/devex-platform/crewd/ent/promptversion"
	"github.com/devex-platform/crewd/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution = "AgentExecution"
	TypeAgentState     = "AgentState"
	TypePromptVersion  = "PromptVersion"
	TypeWorkflow       = "Workflow"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	workflow_id    *string
	input          *map[string]interface{}
	output         *map[string]interface{}
	status         *agentexecution.Status
	error_message  *string
	tokens_used    *int
	addtokens_used *int
	started_at     *time.Time
	completed_at   *time.Time
	metadata       *map[string]interface{}
	clearedFields  map[string]struct{}
	agent          *string
	clearedagent   bool
	done           bool
	oldValue       func(context.Context) (*AgentExecution, error)
	predicates     []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentExecutionMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentExecutionMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentExecutionMutation) ResetAgentID() {
	m.agent = nil
}

// SetSessionID sets the "session_id" field.
func (m *AgentExecutionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *AgentExecutionMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[agentexecution.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentExecutionMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, agentexecution.FieldSessionID)
}

// SetWorkflowID sets the "workflow_id" field.
func (m *AgentExecutionMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *AgentExecutionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *AgentExecutionMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[agentexecution.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *AgentExecutionMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, agentexecution.FieldWorkflowID)
}

// SetInput sets the "input" field.
func (m *AgentExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *AgentExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *AgentExecutionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[agentexecution.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *AgentExecutionMutation) InputCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *AgentExecutionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, agentexecution.FieldInput)
}

// SetOutput sets the "output" field.
func (m *AgentExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentexecution.FieldOutput)
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AgentExecutionMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AgentExecutionMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AgentExecutionMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AgentExecutionMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AgentExecutionMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetMetadata sets the "metadata" field.
func (m *AgentExecutionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentExecutionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentExecutionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentexecution.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentExecutionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentExecutionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentexecution.FieldMetadata)
}

// ClearAgent clears the "agent" edge to the AgentState entity.
func (m *AgentExecutionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentexecution.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the AgentState entity was cleared.
func (m *AgentExecutionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentExecutionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent != nil {
		fields = append(fields, agentexecution.FieldAgentID)
	}
	if m.session_id != nil {
		fields = append(fields, agentexecution.FieldSessionID)
	}
	if m.workflow_id != nil {
		fields = append(fields, agentexecution.FieldWorkflowID)
	}
	if m.input != nil {
		fields = append(fields, agentexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.tokens_used != nil {
		fields = append(fields, agentexecution.FieldTokensUsed)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.metadata != nil {
		fields = append(fields, agentexecution.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldAgentID:
		return m.AgentID()
	case agentexecution.FieldSessionID:
		return m.SessionID()
	case agentexecution.FieldWorkflowID:
		return m.WorkflowID()
	case agentexecution.FieldInput:
		return m.Input()
	case agentexecution.FieldOutput:
		return m.Output()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case agentexecution.FieldTokensUsed:
		return m.TokensUsed()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentexecution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case agentexecution.FieldInput:
		return m.OldInput(ctx)
	case agentexecution.FieldOutput:
		return m.OldOutput(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentexecution.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentexecution.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case agentexecution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case agentexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, agentexecution.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldSessionID) {
		fields = append(fields, agentexecution.FieldSessionID)
	}
	if m.FieldCleared(agentexecution.FieldWorkflowID) {
		fields = append(fields, agentexecution.FieldWorkflowID)
	}
	if m.FieldCleared(agentexecution.FieldInput) {
		fields = append(fields, agentexecution.FieldInput)
	}
	if m.FieldCleared(agentexecution.FieldOutput) {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.FieldCleared(agentexecution.FieldMetadata) {
		fields = append(fields, agentexecution.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldSessionID:
		m.ClearSessionID()
		return nil
	case agentexecution.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case agentexecution.FieldInput:
		m.ClearInput()
		return nil
	case agentexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentexecution.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentexecution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case agentexecution.FieldInput:
		m.ResetInput()
		return nil
	case agentexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentexecution.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, agentexecution.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, agentexecution.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// AgentStateMutation represents an operation that mutates the AgentState nodes in the graph.
type AgentStateMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	template_id            *string
	kind                   *agentstate.Kind
	lifecycle              *agentstate.Lifecycle
	execution_count        *int
	addexecution_count     *int
	error_count            *int
	adderror_count         *int
	context_snapshot       *map[string]interface{}
	dependencies           *[]string
	appenddependencies     []string
	checkpoints            *[]map[string]interface{}
	appendcheckpoints      []map[string]interface{}
	is_active              *bool
	created_at             *time.Time
	last_updated           *time.Time
	clearedFields          map[string]struct{}
	executions             map[string]struct{}
	removedexecutions      map[string]struct{}
	clearedexecutions      bool
	prompt_versions        map[string]struct{}
	removedprompt_versions map[string]struct{}
	clearedprompt_versions bool
	done                   bool
	oldValue               func(context.Context) (*AgentState, error)
	predicates             []predicate.AgentState
}

var _ ent.Mutation = (*AgentStateMutation)(nil)

// agentstateOption allows management of the mutation configuration using functional options.
type agentstateOption func(*AgentStateMutation)

// newAgentStateMutation creates new mutation for the AgentState entity.
func newAgentStateMutation(c config, op Op, opts ...agentstateOption) *AgentStateMutation {
	m := &AgentStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStateID sets the ID field of the mutation.
func withAgentStateID(id string) agentstateOption {
	return func(m *AgentStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentState
		)
		m.oldValue = func(ctx context.Context) (*AgentState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentState sets the old AgentState of the mutation.
func withAgentState(node *AgentState) agentstateOption {
	return func(m *AgentStateMutation) {
		m.oldValue = func(context.Context) (*AgentState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentState entities.
func (m *AgentStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateID sets the "template_id" field.
func (m *AgentStateMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *AgentStateMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *AgentStateMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetKind sets the "kind" field.
func (m *AgentStateMutation) SetKind(a agentstate.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentStateMutation) Kind() (r agentstate.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldKind(ctx context.Context) (v agentstate.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentStateMutation) ResetKind() {
	m.kind = nil
}

// SetLifecycle sets the "lifecycle" field.
func (m *AgentStateMutation) SetLifecycle(a agentstate.Lifecycle) {
	m.lifecycle = &a
}

// Lifecycle returns the value of the "lifecycle" field in the mutation.
func (m *AgentStateMutation) Lifecycle() (r agentstate.Lifecycle, exists bool) {
	v := m.lifecycle
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycle returns the old "lifecycle" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLifecycle(ctx context.Context) (v agentstate.Lifecycle, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycle: %w", err)
	}
	return oldValue.Lifecycle, nil
}

// ResetLifecycle resets all changes to the "lifecycle" field.
func (m *AgentStateMutation) ResetLifecycle() {
	m.lifecycle = nil
}

// SetExecutionCount sets the "execution_count" field.
func (m *AgentStateMutation) SetExecutionCount(i int) {
	m.execution_count = &i
	m.addexecution_count = nil
}

// ExecutionCount returns the value of the "execution_count" field in the mutation.
func (m *AgentStateMutation) ExecutionCount() (r int, exists bool) {
	v := m.execution_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionCount returns the old "execution_count" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldExecutionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionCount: %w", err)
	}
	return oldValue.ExecutionCount, nil
}

// AddExecutionCount adds i to the "execution_count" field.
func (m *AgentStateMutation) AddExecutionCount(i int) {
	if m.addexecution_count != nil {
		*m.addexecution_count += i
	} else {
		m.addexecution_count = &i
	}
}

// AddedExecutionCount returns the value that was added to the "execution_count" field in this mutation.
func (m *AgentStateMutation) AddedExecutionCount() (r int, exists bool) {
	v := m.addexecution_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionCount resets all changes to the "execution_count" field.
func (m *AgentStateMutation) ResetExecutionCount() {
	m.execution_count = nil
	m.addexecution_count = nil
}

// SetErrorCount sets the "error_count" field.
func (m *AgentStateMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *AgentStateMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *AgentStateMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *AgentStateMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *AgentStateMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetContextSnapshot sets the "context_snapshot" field.
func (m *AgentStateMutation) SetContextSnapshot(value map[string]interface{}) {
	m.context_snapshot = &value
}

// ContextSnapshot returns the value of the "context_snapshot" field in the mutation.
func (m *AgentStateMutation) ContextSnapshot() (r map[string]interface{}, exists bool) {
	v := m.context_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSnapshot returns the old "context_snapshot" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldContextSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSnapshot: %w", err)
	}
	return oldValue.ContextSnapshot, nil
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (m *AgentStateMutation) ClearContextSnapshot() {
	m.context_snapshot = nil
	m.clearedFields[agentstate.FieldContextSnapshot] = struct{}{}
}

// ContextSnapshotCleared returns if the "context_snapshot" field was cleared in this mutation.
func (m *AgentStateMutation) ContextSnapshotCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldContextSnapshot]
	return ok
}

// ResetContextSnapshot resets all changes to the "context_snapshot" field.
func (m *AgentStateMutation) ResetContextSnapshot() {
	m.context_snapshot = nil
	delete(m.clearedFields, agentstate.FieldContextSnapshot)
}

// SetDependencies sets the "dependencies" field.
func (m *AgentStateMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *AgentStateMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *AgentStateMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *AgentStateMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *AgentStateMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[agentstate.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *AgentStateMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *AgentStateMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, agentstate.FieldDependencies)
}

// SetCheckpoints sets the "checkpoints" field.
func (m *AgentStateMutation) SetCheckpoints(value []map[string]interface{}) {
	m.checkpoints = &value
	m.appendcheckpoints = nil
}

// Checkpoints returns the value of the "checkpoints" field in the mutation.
func (m *AgentStateMutation) Checkpoints() (r []map[string]interface{}, exists bool) {
	v := m.checkpoints
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoints returns the old "checkpoints" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCheckpoints(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoints: %w", err)
	}
	return oldValue.Checkpoints, nil
}

// AppendCheckpoints adds value to the "checkpoints" field.
func (m *AgentStateMutation) AppendCheckpoints(value []map[string]interface{}) {
	m.appendcheckpoints = append(m.appendcheckpoints, value...)
}

// AppendedCheckpoints returns the list of values that were appended to the "checkpoints" field in this mutation.
func (m *AgentStateMutation) AppendedCheckpoints() ([]map[string]interface{}, bool) {
	if len(m.appendcheckpoints) == 0 {
		return nil, false
	}
	return m.appendcheckpoints, true
}

// ClearCheckpoints clears the value of the "checkpoints" field.
func (m *AgentStateMutation) ClearCheckpoints() {
	m.checkpoints = nil
	m.appendcheckpoints = nil
	m.clearedFields[agentstate.FieldCheckpoints] = struct{}{}
}

// CheckpointsCleared returns if the "checkpoints" field was cleared in this mutation.
func (m *AgentStateMutation) CheckpointsCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldCheckpoints]
	return ok
}

// ResetCheckpoints resets all changes to the "checkpoints" field.
func (m *AgentStateMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.appendcheckpoints = nil
	delete(m.clearedFields, agentstate.FieldCheckpoints)
}

// SetIsActive sets the "is_active" field.
func (m *AgentStateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AgentStateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AgentStateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *AgentStateMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *AgentStateMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *AgentStateMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by ids.
func (m *AgentStateMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the AgentExecution entity.
func (m *AgentStateMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the AgentExecution entity was cleared.
func (m *AgentStateMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the AgentExecution entity by IDs.
func (m *AgentStateMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the AgentExecution entity.
func (m *AgentStateMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *AgentStateMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *AgentStateMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the PromptVersion entity by ids.
func (m *AgentStateMutation) AddPromptVersionIDs(ids ...string) {
	if m.prompt_versions == nil {
		m.prompt_versions = make(map[string]struct{})
	}
	for i := range ids {
		m.prompt_versions[ids[i]] = struct{}{}
	}
}

// ClearPromptVersions clears the "prompt_versions" edge to the PromptVersion entity.
func (m *AgentStateMutation) ClearPromptVersions() {
	m.clearedprompt_versions = true
}

// PromptVersionsCleared reports if the "prompt_versions" edge to the PromptVersion entity was cleared.
func (m *AgentStateMutation) PromptVersionsCleared() bool {
	return m.clearedprompt_versions
}

// RemovePromptVersionIDs removes the "prompt_versions" edge to the PromptVersion entity by IDs.
func (m *AgentStateMutation) RemovePromptVersionIDs(ids ...string) {
	if m.removedprompt_versions == nil {
		m.removedprompt_versions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prompt_versions, ids[i])
		m.removedprompt_versions[ids[i]] = struct{}{}
	}
}

// RemovedPromptVersions returns the removed IDs of the "prompt_versions" edge to the PromptVersion entity.
func (m *AgentStateMutation) RemovedPromptVersionsIDs() (ids []string) {
	for id := range m.removedprompt_versions {
		ids = append(ids, id)
	}
	return
}

// PromptVersionsIDs returns the "prompt_versions" edge IDs in the mutation.
func (m *AgentStateMutation) PromptVersionsIDs() (ids []string) {
	for id := range m.prompt_versions {
		ids = append(ids, id)
	}
	return
}

// ResetPromptVersions resets all changes to the "prompt_versions" edge.
func (m *AgentStateMutation) ResetPromptVersions() {
	m.prompt_versions = nil
	m.clearedprompt_versions = false
	m.removedprompt_versions = nil
}

// Where appends a list predicates to the AgentStateMutation builder.
func (m *AgentStateMutation) Where(ps ...predicate.AgentState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentState).
func (m *AgentStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.template_id != nil {
		fields = append(fields, agentstate.FieldTemplateID)
	}
	if m.kind != nil {
		fields = append(fields, agentstate.FieldKind)
	}
	if m.lifecycle != nil {
		fields = append(fields, agentstate.FieldLifecycle)
	}
	if m.execution_count != nil {
		fields = append(fields, agentstate.FieldExecutionCount)
	}
	if m.error_count != nil {
		fields = append(fields, agentstate.FieldErrorCount)
	}
	if m.context_snapshot != nil {
		fields = append(fields, agentstate.FieldContextSnapshot)
	}
	if m.dependencies != nil {
		fields = append(fields, agentstate.FieldDependencies)
	}
	if m.checkpoints != nil {
		fields = append(fields, agentstate.FieldCheckpoints)
	}
	if m.is_active != nil {
		fields = append(fields, agentstate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, agentstate.FieldCreatedAt)
	}
	if m.last_updated != nil {
		fields = append(fields, agentstate.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldTemplateID:
		return m.TemplateID()
	case agentstate.FieldKind:
		return m.Kind()
	case agentstate.FieldLifecycle:
		return m.Lifecycle()
	case agentstate.FieldExecutionCount:
		return m.ExecutionCount()
	case agentstate.FieldErrorCount:
		return m.ErrorCount()
	case agentstate.FieldContextSnapshot:
		return m.ContextSnapshot()
	case agentstate.FieldDependencies:
		return m.Dependencies()
	case agentstate.FieldCheckpoints:
		return m.Checkpoints()
	case agentstate.FieldIsActive:
		return m.IsActive()
	case agentstate.FieldCreatedAt:
		return m.CreatedAt()
	case agentstate.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstate.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case agentstate.FieldKind:
		return m.OldKind(ctx)
	case agentstate.FieldLifecycle:
		return m.OldLifecycle(ctx)
	case agentstate.FieldExecutionCount:
		return m.OldExecutionCount(ctx)
	case agentstate.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case agentstate.FieldContextSnapshot:
		return m.OldContextSnapshot(ctx)
	case agentstate.FieldDependencies:
		return m.OldDependencies(ctx)
	case agentstate.FieldCheckpoints:
		return m.OldCheckpoints(ctx)
	case agentstate.FieldIsActive:
		return m.OldIsActive(ctx)
	case agentstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentstate.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown AgentState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case agentstate.FieldKind:
		v, ok := value.(agentstate.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentstate.FieldLifecycle:
		v, ok := value.(agentstate.Lifecycle)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycle(v)
		return nil
	case agentstate.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionCount(v)
		return nil
	case agentstate.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case agentstate.FieldContextSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSnapshot(v)
		return nil
	case agentstate.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case agentstate.FieldCheckpoints:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoints(v)
		return nil
	case agentstate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case agentstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentstate.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStateMutation) AddedFields() []string {
	var fields []string
	if m.addexecution_count != nil {
		fields = append(fields, agentstate.FieldExecutionCount)
	}
	if m.adderror_count != nil {
		fields = append(fields, agentstate.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldExecutionCount:
		return m.AddedExecutionCount()
	case agentstate.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionCount(v)
		return nil
	case agentstate.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstate.FieldContextSnapshot) {
		fields = append(fields, agentstate.FieldContextSnapshot)
	}
	if m.FieldCleared(agentstate.FieldDependencies) {
		fields = append(fields, agentstate.FieldDependencies)
	}
	if m.FieldCleared(agentstate.FieldCheckpoints) {
		fields = append(fields, agentstate.FieldCheckpoints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStateMutation) ClearField(name string) error {
	switch name {
	case agentstate.FieldContextSnapshot:
		m.ClearContextSnapshot()
		return nil
	case agentstate.FieldDependencies:
		m.ClearDependencies()
		return nil
	case agentstate.FieldCheckpoints:
		m.ClearCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown AgentState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStateMutation) ResetField(name string) error {
	switch name {
	case agentstate.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case agentstate.FieldKind:
		m.ResetKind()
		return nil
	case agentstate.FieldLifecycle:
		m.ResetLifecycle()
		return nil
	case agentstate.FieldExecutionCount:
		m.ResetExecutionCount()
		return nil
	case agentstate.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case agentstate.FieldContextSnapshot:
		m.ResetContextSnapshot()
		return nil
	case agentstate.FieldDependencies:
		m.ResetDependencies()
		return nil
	case agentstate.FieldCheckpoints:
		m.ResetCheckpoints()
		return nil
	case agentstate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case agentstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentstate.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.executions != nil {
		edges = append(edges, agentstate.EdgeExecutions)
	}
	if m.prompt_versions != nil {
		edges = append(edges, agentstate.EdgePromptVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstate.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case agentstate.EdgePromptVersions:
		ids := make([]ent.Value, 0, len(m.prompt_versions))
		for id := range m.prompt_versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, agentstate.EdgeExecutions)
	}
	if m.removedprompt_versions != nil {
		edges = append(edges, agentstate.EdgePromptVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentstate.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case agentstate.EdgePromptVersions:
		ids := make([]ent.Value, 0, len(m.removedprompt_versions))
		for id := range m.removedprompt_versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecutions {
		edges = append(edges, agentstate.EdgeExecutions)
	}
	if m.clearedprompt_versions {
		edges = append(edges, agentstate.EdgePromptVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStateMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstate.EdgeExecutions:
		return m.clearedexecutions
	case agentstate.EdgePromptVersions:
		return m.clearedprompt_versions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStateMutation) ResetEdge(name string) error {
	switch name {
	case agentstate.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case agentstate.EdgePromptVersions:
		m.ResetPromptVersions()
		return nil
	}
	return fmt.Errorf("unknown AgentState edge %s", name)
}

// PromptVersionMutation represents an operation that mutates the PromptVersion nodes in the graph.
type PromptVersionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	template_text        *string
	usage_count          *int
	addusage_count       *int
	success_rate         *float64
	addsuccess_rate      *float64
	avg_time             *float64
	addavg_time          *float64
	performance_score    *float64
	addperformance_score *float64
	created_at           *time.Time
	clearedFields        map[string]struct{}
	agent                *string
	clearedagent         bool
	done                 bool
	oldValue             func(context.Context) (*PromptVersion, error)
	predicates           []predicate.PromptVersion
}

var _ ent.Mutation = (*PromptVersionMutation)(nil)

// promptversionOption allows management of the mutation configuration using functional options.
type promptversionOption func(*PromptVersionMutation)

// newPromptVersionMutation creates new mutation for the PromptVersion entity.
func newPromptVersionMutation(c config, op Op, opts ...promptversionOption) *PromptVersionMutation {
	m := &PromptVersionMutation{
		config:        c,
		op:            op,
		typ:           TypePromptVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptVersionID sets the ID field of the mutation.
func withPromptVersionID(id string) promptversionOption {
	return func(m *PromptVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptVersion
		)
		m.oldValue = func(ctx context.Context) (*PromptVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptVersion sets the old PromptVersion of the mutation.
func withPromptVersion(node *PromptVersion) promptversionOption {
	return func(m *PromptVersionMutation) {
		m.oldValue = func(context.Context) (*PromptVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptVersion entities.
func (m *PromptVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *PromptVersionMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PromptVersionMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PromptVersionMutation) ResetAgentID() {
	m.agent = nil
}

// SetTemplateText sets the "template_text" field.
func (m *PromptVersionMutation) SetTemplateText(s string) {
	m.template_text = &s
}

// TemplateText returns the value of the "template_text" field in the mutation.
func (m *PromptVersionMutation) TemplateText() (r string, exists bool) {
	v := m.template_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateText returns the old "template_text" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldTemplateText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateText: %w", err)
	}
	return oldValue.TemplateText, nil
}

// ResetTemplateText resets all changes to the "template_text" field.
func (m *PromptVersionMutation) ResetTemplateText() {
	m.template_text = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *PromptVersionMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *PromptVersionMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *PromptVersionMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *PromptVersionMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *PromptVersionMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetSuccessRate sets the "success_rate" field.
func (m *PromptVersionMutation) SetSuccessRate(f float64) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *PromptVersionMutation) SuccessRate() (r float64, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldSuccessRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRate: %w", err)
	}
	return oldValue.SuccessRate, nil
}

// AddSuccessRate adds f to the "success_rate" field.
func (m *PromptVersionMutation) AddSuccessRate(f float64) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *PromptVersionMutation) AddedSuccessRate() (r float64, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *PromptVersionMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
}

// SetAvgTime sets the "avg_time" field.
func (m *PromptVersionMutation) SetAvgTime(f float64) {
	m.avg_time = &f
	m.addavg_time = nil
}

// AvgTime returns the value of the "avg_time" field in the mutation.
func (m *PromptVersionMutation) AvgTime() (r float64, exists bool) {
	v := m.avg_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTime returns the old "avg_time" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldAvgTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTime: %w", err)
	}
	return oldValue.AvgTime, nil
}

// AddAvgTime adds f to the "avg_time" field.
func (m *PromptVersionMutation) AddAvgTime(f float64) {
	if m.addavg_time != nil {
		*m.addavg_time += f
	} else {
		m.addavg_time = &f
	}
}

// AddedAvgTime returns the value that was added to the "avg_time" field in this mutation.
func (m *PromptVersionMutation) AddedAvgTime() (r float64, exists bool) {
	v := m.addavg_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTime resets all changes to the "avg_time" field.
func (m *PromptVersionMutation) ResetAvgTime() {
	m.avg_time = nil
	m.addavg_time = nil
}

// SetPerformanceScore sets the "performance_score" field.
func (m *PromptVersionMutation) SetPerformanceScore(f float64) {
	m.performance_score = &f
	m.addperformance_score = nil
}

// PerformanceScore returns the value of the "performance_score" field in the mutation.
func (m *PromptVersionMutation) PerformanceScore() (r float64, exists bool) {
	v := m.performance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceScore returns the old "performance_score" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldPerformanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceScore: %w", err)
	}
	return oldValue.PerformanceScore, nil
}

// AddPerformanceScore adds f to the "performance_score" field.
func (m *PromptVersionMutation) AddPerformanceScore(f float64) {
	if m.addperformance_score != nil {
		*m.addperformance_score += f
	} else {
		m.addperformance_score = &f
	}
}

// AddedPerformanceScore returns the value that was added to the "performance_score" field in this mutation.
func (m *PromptVersionMutation) AddedPerformanceScore() (r float64, exists bool) {
	v := m.addperformance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPerformanceScore resets all changes to the "performance_score" field.
func (m *PromptVersionMutation) ResetPerformanceScore() {
	m.performance_score = nil
	m.addperformance_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the AgentState entity.
func (m *PromptVersionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[promptversion.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the AgentState entity was cleared.
func (m *PromptVersionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *PromptVersionMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *PromptVersionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the PromptVersionMutation builder.
func (m *PromptVersionMutation) Where(ps ...predicate.PromptVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptVersion).
func (m *PromptVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptVersionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.agent != nil {
		fields = append(fields, promptversion.FieldAgentID)
	}
	if m.template_text != nil {
		fields = append(fields, promptversion.FieldTemplateText)
	}
	if m.usage_count != nil {
		fields = append(fields, promptversion.FieldUsageCount)
	}
	if m.success_rate != nil {
		fields = append(fields, promptversion.FieldSuccessRate)
	}
	if m.avg_time != nil {
		fields = append(fields, promptversion.FieldAvgTime)
	}
	if m.performance_score != nil {
		fields = append(fields, promptversion.FieldPerformanceScore)
	}
	if m.created_at != nil {
		fields = append(fields, promptversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptversion.FieldAgentID:
		return m.AgentID()
	case promptversion.FieldTemplateText:
		return m.TemplateText()
	case promptversion.FieldUsageCount:
		return m.UsageCount()
	case promptversion.FieldSuccessRate:
		return m.SuccessRate()
	case promptversion.FieldAvgTime:
		return m.AvgTime()
	case promptversion.FieldPerformanceScore:
		return m.PerformanceScore()
	case promptversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptversion.FieldAgentID:
		return m.OldAgentID(ctx)
	case promptversion.FieldTemplateText:
		return m.OldTemplateText(ctx)
	case promptversion.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case promptversion.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	case promptversion.FieldAvgTime:
		return m.OldAvgTime(ctx)
	case promptversion.FieldPerformanceScore:
		return m.OldPerformanceScore(ctx)
	case promptversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptversion.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case promptversion.FieldTemplateText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateText(v)
		return nil
	case promptversion.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case promptversion.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	case promptversion.FieldAvgTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTime(v)
		return nil
	case promptversion.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceScore(v)
		return nil
	case promptversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptVersionMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, promptversion.FieldUsageCount)
	}
	if m.addsuccess_rate != nil {
		fields = append(fields, promptversion.FieldSuccessRate)
	}
	if m.addavg_time != nil {
		fields = append(fields, promptversion.FieldAvgTime)
	}
	if m.addperformance_score != nil {
		fields = append(fields, promptversion.FieldPerformanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptversion.FieldUsageCount:
		return m.AddedUsageCount()
	case promptversion.FieldSuccessRate:
		return m.AddedSuccessRate()
	case promptversion.FieldAvgTime:
		return m.AddedAvgTime()
	case promptversion.FieldPerformanceScore:
		return m.AddedPerformanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptversion.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	case promptversion.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	case promptversion.FieldAvgTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTime(v)
		return nil
	case promptversion.FieldPerformanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPerformanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown PromptVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PromptVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptVersionMutation) ResetField(name string) error {
	switch name {
	case promptversion.FieldAgentID:
		m.ResetAgentID()
		return nil
	case promptversion.FieldTemplateText:
		m.ResetTemplateText()
		return nil
	case promptversion.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case promptversion.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	case promptversion.FieldAvgTime:
		m.ResetAvgTime()
		return nil
	case promptversion.FieldPerformanceScore:
		m.ResetPerformanceScore()
		return nil
	case promptversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, promptversion.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptversion.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, promptversion.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case promptversion.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptVersionMutation) ClearEdge(name string) error {
	switch name {
	case promptversion.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown PromptVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptVersionMutation) ResetEdge(name string) error {
	switch name {
	case promptversion.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown PromptVersion edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	description    *string
	project_type   *string
	owner_user_id  *string
	session_id     *string
	status         *workflow.Status
	phases         *[]map[string]interface{}
	appendphases   []map[string]interface{}
	shared_context *map[string]interface{}
	options        *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Workflow, error)
	predicates     []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkflowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkflowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkflowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workflow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkflowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkflowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workflow.FieldDescription)
}

// SetProjectType sets the "project_type" field.
func (m *WorkflowMutation) SetProjectType(s string) {
	m.project_type = &s
}

// ProjectType returns the value of the "project_type" field in the mutation.
func (m *WorkflowMutation) ProjectType() (r string, exists bool) {
	v := m.project_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectType returns the old "project_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldProjectType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectType: %w", err)
	}
	return oldValue.ProjectType, nil
}

// ResetProjectType resets all changes to the "project_type" field.
func (m *WorkflowMutation) ResetProjectType() {
	m.project_type = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *WorkflowMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *WorkflowMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *WorkflowMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[workflow.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *WorkflowMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *WorkflowMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, workflow.FieldOwnerUserID)
}

// SetSessionID sets the "session_id" field.
func (m *WorkflowMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WorkflowMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *WorkflowMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[workflow.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *WorkflowMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WorkflowMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, workflow.FieldSessionID)
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetPhases sets the "phases" field.
func (m *WorkflowMutation) SetPhases(value []map[string]interface{}) {
	m.phases = &value
	m.appendphases = nil
}

// Phases returns the value of the "phases" field in the mutation.
func (m *WorkflowMutation) Phases() (r []map[string]interface{}, exists bool) {
	v := m.phases
	if v == nil {
		return
	}
	return *v, true
}

// OldPhases returns the old "phases" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPhases(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhases: %w", err)
	}
	return oldValue.Phases, nil
}

// AppendPhases adds value to the "phases" field.
func (m *WorkflowMutation) AppendPhases(value []map[string]interface{}) {
	m.appendphases = append(m.appendphases, value...)
}

// AppendedPhases returns the list of values that were appended to the "phases" field in this mutation.
func (m *WorkflowMutation) AppendedPhases() ([]map[string]interface{}, bool) {
	if len(m.appendphases) == 0 {
		return nil, false
	}
	return m.appendphases, true
}

// ClearPhases clears the value of the "phases" field.
func (m *WorkflowMutation) ClearPhases() {
	m.phases = nil
	m.appendphases = nil
	m.clearedFields[workflow.FieldPhases] = struct{}{}
}

// PhasesCleared returns if the "phases" field was cleared in this mutation.
func (m *WorkflowMutation) PhasesCleared() bool {
	_, ok := m.clearedFields[workflow.FieldPhases]
	return ok
}

// ResetPhases resets all changes to the "phases" field.
func (m *WorkflowMutation) ResetPhases() {
	m.phases = nil
	m.appendphases = nil
	delete(m.clearedFields, workflow.FieldPhases)
}

// SetSharedContext sets the "shared_context" field.
func (m *WorkflowMutation) SetSharedContext(value map[string]interface{}) {
	m.shared_context = &value
}

// SharedContext returns the value of the "shared_context" field in the mutation.
func (m *WorkflowMutation) SharedContext() (r map[string]interface{}, exists bool) {
	v := m.shared_context
	if v == nil {
		return
	}
	return *v, true
}

// OldSharedContext returns the old "shared_context" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldSharedContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSharedContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSharedContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSharedContext: %w", err)
	}
	return oldValue.SharedContext, nil
}

// ClearSharedContext clears the value of the "shared_context" field.
func (m *WorkflowMutation) ClearSharedContext() {
	m.shared_context = nil
	m.clearedFields[workflow.FieldSharedContext] = struct{}{}
}

// SharedContextCleared returns if the "shared_context" field was cleared in this mutation.
func (m *WorkflowMutation) SharedContextCleared() bool {
	_, ok := m.clearedFields[workflow.FieldSharedContext]
	return ok
}

// ResetSharedContext resets all changes to the "shared_context" field.
func (m *WorkflowMutation) ResetSharedContext() {
	m.shared_context = nil
	delete(m.clearedFields, workflow.FieldSharedContext)
}

// SetOptions sets the "options" field.
func (m *WorkflowMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *WorkflowMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *WorkflowMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[workflow.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *WorkflowMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[workflow.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *WorkflowMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, workflow.FieldOptions)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.project_type != nil {
		fields = append(fields, workflow.FieldProjectType)
	}
	if m.owner_user_id != nil {
		fields = append(fields, workflow.FieldOwnerUserID)
	}
	if m.session_id != nil {
		fields = append(fields, workflow.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.phases != nil {
		fields = append(fields, workflow.FieldPhases)
	}
	if m.shared_context != nil {
		fields = append(fields, workflow.FieldSharedContext)
	}
	if m.options != nil {
		fields = append(fields, workflow.FieldOptions)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDescription:
		return m.Description()
	case workflow.FieldProjectType:
		return m.ProjectType()
	case workflow.FieldOwnerUserID:
		return m.OwnerUserID()
	case workflow.FieldSessionID:
		return m.SessionID()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldPhases:
		return m.Phases()
	case workflow.FieldSharedContext:
		return m.SharedContext()
	case workflow.FieldOptions:
		return m.Options()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDescription:
		return m.OldDescription(ctx)
	case workflow.FieldProjectType:
		return m.OldProjectType(ctx)
	case workflow.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case workflow.FieldSessionID:
		return m.OldSessionID(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldPhases:
		return m.OldPhases(ctx)
	case workflow.FieldSharedContext:
		return m.OldSharedContext(ctx)
	case workflow.FieldOptions:
		return m.OldOptions(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workflow.FieldProjectType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectType(v)
		return nil
	case workflow.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case workflow.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldPhases:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhases(v)
		return nil
	case workflow.FieldSharedContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSharedContext(v)
		return nil
	case workflow.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldDescription) {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.FieldCleared(workflow.FieldOwnerUserID) {
		fields = append(fields, workflow.FieldOwnerUserID)
	}
	if m.FieldCleared(workflow.FieldSessionID) {
		fields = append(fields, workflow.FieldSessionID)
	}
	if m.FieldCleared(workflow.FieldPhases) {
		fields = append(fields, workflow.FieldPhases)
	}
	if m.FieldCleared(workflow.FieldSharedContext) {
		fields = append(fields, workflow.FieldSharedContext)
	}
	if m.FieldCleared(workflow.FieldOptions) {
		fields = append(fields, workflow.FieldOptions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldDescription:
		m.ClearDescription()
		return nil
	case workflow.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	case workflow.FieldSessionID:
		m.ClearSessionID()
		return nil
	case workflow.FieldPhases:
		m.ClearPhases()
		return nil
	case workflow.FieldSharedContext:
		m.ClearSharedContext()
		return nil
	case workflow.FieldOptions:
		m.ClearOptions()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDescription:
		m.ResetDescription()
		return nil
	case workflow.FieldProjectType:
		m.ResetProjectType()
		return nil
	case workflow.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case workflow.FieldSessionID:
		m.ResetSessionID()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldPhases:
		m.ResetPhases()
		return nil
	case workflow.FieldSharedContext:
		m.ResetSharedContext()
		return nil
	case workflow.FieldOptions:
		m.ResetOptions()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Workflow edge %s", name)
}
