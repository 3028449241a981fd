// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/devex-platform/crewd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/promptversion"
	"github.com/devex-platform/crewd/ent/workflow"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// AgentState is the client for interacting with the AgentState builders.
	AgentState *AgentStateClient
	// PromptVersion is the client for interacting with the PromptVersion builders.
	PromptVersion *PromptVersionClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.AgentState = NewAgentStateClient(c.config)
	c.PromptVersion = NewPromptVersionClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		AgentState:     NewAgentStateClient(cfg),
		PromptVersion:  NewPromptVersionClient(cfg),
		Workflow:       NewWorkflowClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		AgentState:     NewAgentStateClient(cfg),
		PromptVersion:  NewPromptVersionClient(cfg),
		Workflow:       NewWorkflowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AgentExecution.Use(hooks...)
	c.AgentState.Use(hooks...)
	c.PromptVersion.Use(hooks...)
	c.Workflow.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentExecution.Intercept(interceptors...)
	c.AgentState.Intercept(interceptors...)
	c.PromptVersion.Intercept(interceptors...)
	c.Workflow.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *AgentStateMutation:
		return c.AgentState.mutate(ctx, m)
	case *PromptVersionMutation:
		return c.PromptVersion.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentExecution.
func (c *AgentExecutionClient) QueryAgent(_m *AgentExecution) *AgentStateQuery {
	query := (&AgentStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(agentstate.Table, agentstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.AgentTable, agentexecution.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// AgentStateClient is a client for the AgentState schema.
type AgentStateClient struct {
	config
}

// NewAgentStateClient returns a client for the AgentState from the given config.
func NewAgentStateClient(c config) *AgentStateClient {
	return &AgentStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstate.Hooks(f(g(h())))`.
func (c *AgentStateClient) Use(hooks ...Hook) {
	c.hooks.AgentState = append(c.hooks.AgentState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstate.Intercept(f(g(h())))`.
func (c *AgentStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentState = append(c.inters.AgentState, interceptors...)
}

// Create returns a builder for creating a AgentState entity.
func (c *AgentStateClient) Create() *AgentStateCreate {
	mutation := newAgentStateMutation(c.config, OpCreate)
	return &AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentState entities.
func (c *AgentStateClient) CreateBulk(builders ...*AgentStateCreate) *AgentStateCreateBulk {
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStateClient) MapCreateBulk(slice any, setFunc func(*AgentStateCreate, int)) *AgentStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStateCreateBulk{err: fmt.Errorf("calling to AgentStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentState.
func (c *AgentStateClient) Update() *AgentStateUpdate {
	mutation := newAgentStateMutation(c.config, OpUpdate)
	return &AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStateClient) UpdateOne(_m *AgentState) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentState(_m))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStateClient) UpdateOneID(id string) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentStateID(id))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentState.
func (c *AgentStateClient) Delete() *AgentStateDelete {
	mutation := newAgentStateMutation(c.config, OpDelete)
	return &AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStateClient) DeleteOne(_m *AgentState) *AgentStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStateClient) DeleteOneID(id string) *AgentStateDeleteOne {
	builder := c.Delete().Where(agentstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStateDeleteOne{builder}
}

// Query returns a query builder for AgentState.
func (c *AgentStateClient) Query() *AgentStateQuery {
	return &AgentStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentState},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentState entity by its id.
func (c *AgentStateClient) Get(ctx context.Context, id string) (*AgentState, error) {
	return c.Query().Where(agentstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStateClient) GetX(ctx context.Context, id string) *AgentState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a AgentState.
func (c *AgentStateClient) QueryExecutions(_m *AgentState) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstate.Table, agentstate.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentstate.ExecutionsTable, agentstate.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptVersions queries the prompt_versions edge of a AgentState.
func (c *AgentStateClient) QueryPromptVersions(_m *AgentState) *PromptVersionQuery {
	query := (&PromptVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstate.Table, agentstate.FieldID, id),
			sqlgraph.To(promptversion.Table, promptversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentstate.PromptVersionsTable, agentstate.PromptVersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStateClient) Hooks() []Hook {
	return c.hooks.AgentState
}

// Interceptors returns the client interceptors.
func (c *AgentStateClient) Interceptors() []Interceptor {
	return c.inters.AgentState
}

func (c *AgentStateClient) mutate(ctx context.Context, m *AgentStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentState mutation op: %q", m.Op())
	}
}

// PromptVersionClient is a client for the PromptVersion schema.
type PromptVersionClient struct {
	config
}

// NewPromptVersionClient returns a client for the PromptVersion from the given config.
func NewPromptVersionClient(c config) *PromptVersionClient {
	return &PromptVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptversion.Hooks(f(g(h())))`.
func (c *PromptVersionClient) Use(hooks ...Hook) {
	c.hooks.PromptVersion = append(c.hooks.PromptVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptversion.Intercept(f(g(h())))`.
func (c *PromptVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptVersion = append(c.inters.PromptVersion, interceptors...)
}

// Create returns a builder for creating a PromptVersion entity.
func (c *PromptVersionClient) Create() *PromptVersionCreate {
	mutation := newPromptVersionMutation(c.config, OpCreate)
	return &PromptVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptVersion entities.
func (c *PromptVersionClient) CreateBulk(builders ...*PromptVersionCreate) *PromptVersionCreateBulk {
	return &PromptVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptVersionClient) MapCreateBulk(slice any, setFunc func(*PromptVersionCreate, int)) *PromptVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptVersionCreateBulk{err: fmt.Errorf("calling to PromptVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptVersion.
func (c *PromptVersionClient) Update() *PromptVersionUpdate {
	mutation := newPromptVersionMutation(c.config, OpUpdate)
	return &PromptVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptVersionClient) UpdateOne(_m *PromptVersion) *PromptVersionUpdateOne {
	mutation := newPromptVersionMutation(c.config, OpUpdateOne, withPromptVersion(_m))
	return &PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptVersionClient) UpdateOneID(id string) *PromptVersionUpdateOne {
	mutation := newPromptVersionMutation(c.config, OpUpdateOne, withPromptVersionID(id))
	return &PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptVersion.
func (c *PromptVersionClient) Delete() *PromptVersionDelete {
	mutation := newPromptVersionMutation(c.config, OpDelete)
	return &PromptVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptVersionClient) DeleteOne(_m *PromptVersion) *PromptVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptVersionClient) DeleteOneID(id string) *PromptVersionDeleteOne {
	builder := c.Delete().Where(promptversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptVersionDeleteOne{builder}
}

// Query returns a query builder for PromptVersion.
func (c *PromptVersionClient) Query() *PromptVersionQuery {
	return &PromptVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptVersion entity by its id.
func (c *PromptVersionClient) Get(ctx context.Context, id string) (*PromptVersion, error) {
	return c.Query().Where(promptversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptVersionClient) GetX(ctx context.Context, id string) *PromptVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a PromptVersion.
func (c *PromptVersionClient) QueryAgent(_m *PromptVersion) *AgentStateQuery {
	query := (&AgentStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptversion.Table, promptversion.FieldID, id),
			sqlgraph.To(agentstate.Table, agentstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptversion.AgentTable, promptversion.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptVersionClient) Hooks() []Hook {
	return c.hooks.PromptVersion
}

// Interceptors returns the client interceptors.
func (c *PromptVersionClient) Interceptors() []Interceptor {
	return c.inters.PromptVersion
}

func (c *PromptVersionClient) mutate(ctx context.Context, m *PromptVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptVersion mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, AgentState, PromptVersion, Workflow []ent.Hook
	}
	inters struct {
		AgentExecution, AgentState, PromptVersion, Workflow []ent.Interceptor
	}
)
