// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devex-platform/crewd/ent/agentexecution"
	"github.com/devex-platform/crewd/ent/agentstate"
	"github.com/devex-platform/crewd/ent/predicate"
	"github.com/devex-platform/crewd/ent/promptversion"
)

// AgentStateQuery is the builder for querying AgentState entities.
type AgentStateQuery struct {
	config
	ctx                *QueryContext
	order              []agentstate.OrderOption
	inters             []Interceptor
	predicates         []predicate.AgentState
	withExecutions     *AgentExecutionQuery
	withPromptVersions *PromptVersionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentStateQuery builder.
func (_q *AgentStateQuery) Where(ps ...predicate.AgentState) *AgentStateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentStateQuery) Limit(limit int) *AgentStateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentStateQuery) Offset(offset int) *AgentStateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentStateQuery) Unique(unique bool) *AgentStateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentStateQuery) Order(o ...agentstate.OrderOption) *AgentStateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExecutions chains the current query on the "executions" edge.
func (_q *AgentStateQuery) QueryExecutions() *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstate.Table, agentstate.FieldID, selector),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentstate.ExecutionsTable, agentstate.ExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPromptVersions chains the current query on the "prompt_versions" edge.
func (_q *AgentStateQuery) QueryPromptVersions() *PromptVersionQuery {
	query := (&PromptVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstate.Table, agentstate.FieldID, selector),
			sqlgraph.To(promptversion.Table, promptversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentstate.PromptVersionsTable, agentstate.PromptVersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentState entity from the query.
// Returns a *NotFoundError when no AgentState was found.
func (_q *AgentStateQuery) First(ctx context.Context) (*AgentState, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentstate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentStateQuery) FirstX(ctx context.Context) *AgentState {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentState ID from the query.
// Returns a *NotFoundError when no AgentState ID was found.
func (_q *AgentStateQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentstate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentStateQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentState entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentState entity is found.
// Returns a *NotFoundError when no AgentState entities are found.
func (_q *AgentStateQuery) Only(ctx context.Context) (*AgentState, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentstate.Label}
	default:
		return nil, &NotSingularError{agentstate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentStateQuery) OnlyX(ctx context.Context) *AgentState {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentState ID in the query.
// Returns a *NotSingularError when more than one AgentState ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentStateQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentstate.Label}
	default:
		err = &NotSingularError{agentstate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentStateQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentStates.
func (_q *AgentStateQuery) All(ctx context.Context) ([]*AgentState, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentState, *AgentStateQuery]()
	return withInterceptors[[]*AgentState](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentStateQuery) AllX(ctx context.Context) []*AgentState {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentState IDs.
func (_q *AgentStateQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentstate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentStateQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentStateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentStateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentStateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentStateQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentStateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentStateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentStateQuery) Clone() *AgentStateQuery {
	if _q == nil {
		return nil
	}
	return &AgentStateQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]agentstate.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.AgentState{}, _q.predicates...),
		withExecutions:     _q.withExecutions.Clone(),
		withPromptVersions: _q.withPromptVersions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExecutions tells the query-builder to eager-load the nodes that are connected to
// the "executions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentStateQuery) WithExecutions(opts ...func(*AgentExecutionQuery)) *AgentStateQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecutions = query
	return _q
}

// WithPromptVersions tells the query-builder to eager-load the nodes that are connected to
// the "prompt_versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentStateQuery) WithPromptVersions(opts ...func(*PromptVersionQuery)) *AgentStateQuery {
	query := (&PromptVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPromptVersions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TemplateID string `json:"template_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentState.Query().
//		GroupBy(agentstate.FieldTemplateID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentStateQuery) GroupBy(field string, fields ...string) *AgentStateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentStateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentstate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TemplateID string `json:"template_id,omitempty"`
//	}
//
//	client.AgentState.Query().
//		Select(agentstate.FieldTemplateID).
//		Scan(ctx, &v)
func (_q *AgentStateQuery) Select(fields ...string) *AgentStateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentStateSelect{AgentStateQuery: _q}
	sbuild.label = agentstate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentStateSelect configured with the given aggregations.
func (_q *AgentStateQuery) Aggregate(fns ...AggregateFunc) *AgentStateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentStateQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentstate.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentStateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentState, error) {
	var (
		nodes       = []*AgentState{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExecutions != nil,
			_q.withPromptVersions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentState).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentState{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withExecutions; query != nil {
		if err := _q.loadExecutions(ctx, query, nodes,
			func(n *AgentState) { n.Edges.Executions = []*AgentExecution{} },
			func(n *AgentState, e *AgentExecution) { n.Edges.Executions = append(n.Edges.Executions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPromptVersions; query != nil {
		if err := _q.loadPromptVersions(ctx, query, nodes,
			func(n *AgentState) { n.Edges.PromptVersions = []*PromptVersion{} },
			func(n *AgentState, e *PromptVersion) { n.Edges.PromptVersions = append(n.Edges.PromptVersions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentStateQuery) loadExecutions(ctx context.Context, query *AgentExecutionQuery, nodes []*AgentState, init func(*AgentState), assign func(*AgentState, *AgentExecution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentexecution.FieldAgentID)
	}
	query.Where(predicate.AgentExecution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentstate.ExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AgentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "agent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentStateQuery) loadPromptVersions(ctx context.Context, query *PromptVersionQuery, nodes []*AgentState, init func(*AgentState), assign func(*AgentState, *PromptVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(promptversion.FieldAgentID)
	}
	query.Where(predicate.PromptVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentstate.PromptVersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AgentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "agent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentStateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentStateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for i := range fields {
			if fields[i] != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentStateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentstate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentstate.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgentStateGroupBy is the group-by builder for AgentState entities.
type AgentStateGroupBy struct {
	selector
	build *AgentStateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentStateGroupBy) Aggregate(fns ...AggregateFunc) *AgentStateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentStateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentStateQuery, *AgentStateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentStateGroupBy) sqlScan(ctx context.Context, root *AgentStateQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentStateSelect is the builder for selecting fields of AgentState entities.
type AgentStateSelect struct {
	*AgentStateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentStateSelect) Aggregate(fns ...AggregateFunc) *AgentStateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentStateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentStateQuery, *AgentStateSelect](ctx, _s.AgentStateQuery, _s, _s.inters, v)
}

func (_s *AgentStateSelect) sqlScan(ctx context.Context, root *AgentStateQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
