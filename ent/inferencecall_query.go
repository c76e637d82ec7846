// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/project"
	"github.com/headspace-sh/headspace/ent/turn"
)

// InferenceCallQuery is the builder for querying InferenceCall entities.
type InferenceCallQuery struct {
	config
	ctx         *QueryContext
	order       []inferencecall.OrderOption
	inters      []Interceptor
	predicates  []predicate.InferenceCall
	withProject *ProjectQuery
	withAgent   *AgentQuery
	withCommand *CommandQuery
	withTurn    *TurnQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InferenceCallQuery builder.
func (_q *InferenceCallQuery) Where(ps ...predicate.InferenceCall) *InferenceCallQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InferenceCallQuery) Limit(limit int) *InferenceCallQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InferenceCallQuery) Offset(offset int) *InferenceCallQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InferenceCallQuery) Unique(unique bool) *InferenceCallQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InferenceCallQuery) Order(o ...inferencecall.OrderOption) *InferenceCallQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *InferenceCallQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.ProjectTable, inferencecall.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *InferenceCallQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.AgentTable, inferencecall.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCommand chains the current query on the "command" edge.
func (_q *InferenceCallQuery) QueryCommand() *CommandQuery {
	query := (&CommandClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, selector),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.CommandTable, inferencecall.CommandColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTurn chains the current query on the "turn" edge.
func (_q *InferenceCallQuery) QueryTurn() *TurnQuery {
	query := (&TurnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(inferencecall.Table, inferencecall.FieldID, selector),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inferencecall.TurnTable, inferencecall.TurnColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InferenceCall entity from the query.
// Returns a *NotFoundError when no InferenceCall was found.
func (_q *InferenceCallQuery) First(ctx context.Context) (*InferenceCall, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{inferencecall.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InferenceCallQuery) FirstX(ctx context.Context) *InferenceCall {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InferenceCall ID from the query.
// Returns a *NotFoundError when no InferenceCall ID was found.
func (_q *InferenceCallQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{inferencecall.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InferenceCallQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InferenceCall entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InferenceCall entity is found.
// Returns a *NotFoundError when no InferenceCall entities are found.
func (_q *InferenceCallQuery) Only(ctx context.Context) (*InferenceCall, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{inferencecall.Label}
	default:
		return nil, &NotSingularError{inferencecall.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InferenceCallQuery) OnlyX(ctx context.Context) *InferenceCall {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InferenceCall ID in the query.
// Returns a *NotSingularError when more than one InferenceCall ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InferenceCallQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{inferencecall.Label}
	default:
		err = &NotSingularError{inferencecall.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InferenceCallQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InferenceCalls.
func (_q *InferenceCallQuery) All(ctx context.Context) ([]*InferenceCall, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InferenceCall, *InferenceCallQuery]()
	return withInterceptors[[]*InferenceCall](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InferenceCallQuery) AllX(ctx context.Context) []*InferenceCall {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InferenceCall IDs.
func (_q *InferenceCallQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(inferencecall.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InferenceCallQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InferenceCallQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InferenceCallQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InferenceCallQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InferenceCallQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InferenceCallQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InferenceCallQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InferenceCallQuery) Clone() *InferenceCallQuery {
	if _q == nil {
		return nil
	}
	return &InferenceCallQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]inferencecall.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.InferenceCall{}, _q.predicates...),
		withProject: _q.withProject.Clone(),
		withAgent:   _q.withAgent.Clone(),
		withCommand: _q.withCommand.Clone(),
		withTurn:    _q.withTurn.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InferenceCallQuery) WithProject(opts ...func(*ProjectQuery)) *InferenceCallQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InferenceCallQuery) WithAgent(opts ...func(*AgentQuery)) *InferenceCallQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithCommand tells the query-builder to eager-load the nodes that are connected to
// the "command" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InferenceCallQuery) WithCommand(opts ...func(*CommandQuery)) *InferenceCallQuery {
	query := (&CommandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommand = query
	return _q
}

// WithTurn tells the query-builder to eager-load the nodes that are connected to
// the "turn" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InferenceCallQuery) WithTurn(opts ...func(*TurnQuery)) *InferenceCallQuery {
	query := (&TurnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTurn = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Level inferencecall.Level `json:"level,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InferenceCall.Query().
//		GroupBy(inferencecall.FieldLevel).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InferenceCallQuery) GroupBy(field string, fields ...string) *InferenceCallGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InferenceCallGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = inferencecall.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Level inferencecall.Level `json:"level,omitempty"`
//	}
//
//	client.InferenceCall.Query().
//		Select(inferencecall.FieldLevel).
//		Scan(ctx, &v)
func (_q *InferenceCallQuery) Select(fields ...string) *InferenceCallSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InferenceCallSelect{InferenceCallQuery: _q}
	sbuild.label = inferencecall.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InferenceCallSelect configured with the given aggregations.
func (_q *InferenceCallQuery) Aggregate(fns ...AggregateFunc) *InferenceCallSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InferenceCallQuery) prepareQuery(ctx context.Context) error {
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
		if !inferencecall.ValidColumn(f) {
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

func (_q *InferenceCallQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InferenceCall, error) {
	var (
		nodes       = []*InferenceCall{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withProject != nil,
			_q.withAgent != nil,
			_q.withCommand != nil,
			_q.withTurn != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InferenceCall).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InferenceCall{config: _q.config}
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
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *InferenceCall, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgent; query != nil {
		if err := _q.loadAgent(ctx, query, nodes, nil,
			func(n *InferenceCall, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCommand; query != nil {
		if err := _q.loadCommand(ctx, query, nodes, nil,
			func(n *InferenceCall, e *Command) { n.Edges.Command = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTurn; query != nil {
		if err := _q.loadTurn(ctx, query, nodes, nil,
			func(n *InferenceCall, e *Turn) { n.Edges.Turn = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InferenceCallQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*InferenceCall, init func(*InferenceCall), assign func(*InferenceCall, *Project)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InferenceCall)
	for i := range nodes {
		if nodes[i].ProjectID == nil {
			continue
		}
		fk := *nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InferenceCallQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*InferenceCall, init func(*InferenceCall), assign func(*InferenceCall, *Agent)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InferenceCall)
	for i := range nodes {
		if nodes[i].AgentID == nil {
			continue
		}
		fk := *nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InferenceCallQuery) loadCommand(ctx context.Context, query *CommandQuery, nodes []*InferenceCall, init func(*InferenceCall), assign func(*InferenceCall, *Command)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InferenceCall)
	for i := range nodes {
		if nodes[i].CommandID == nil {
			continue
		}
		fk := *nodes[i].CommandID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(command.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "command_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InferenceCallQuery) loadTurn(ctx context.Context, query *TurnQuery, nodes []*InferenceCall, init func(*InferenceCall), assign func(*InferenceCall, *Turn)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InferenceCall)
	for i := range nodes {
		if nodes[i].TurnID == nil {
			continue
		}
		fk := *nodes[i].TurnID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(turn.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "turn_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *InferenceCallQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InferenceCallQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(inferencecall.Table, inferencecall.Columns, sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inferencecall.FieldID)
		for i := range fields {
			if fields[i] != inferencecall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(inferencecall.FieldProjectID)
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(inferencecall.FieldAgentID)
		}
		if _q.withCommand != nil {
			_spec.Node.AddColumnOnce(inferencecall.FieldCommandID)
		}
		if _q.withTurn != nil {
			_spec.Node.AddColumnOnce(inferencecall.FieldTurnID)
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

func (_q *InferenceCallQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(inferencecall.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = inferencecall.Columns
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

// InferenceCallGroupBy is the group-by builder for InferenceCall entities.
type InferenceCallGroupBy struct {
	selector
	build *InferenceCallQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InferenceCallGroupBy) Aggregate(fns ...AggregateFunc) *InferenceCallGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InferenceCallGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InferenceCallQuery, *InferenceCallGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InferenceCallGroupBy) sqlScan(ctx context.Context, root *InferenceCallQuery, v any) error {
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

// InferenceCallSelect is the builder for selecting fields of InferenceCall entities.
type InferenceCallSelect struct {
	*InferenceCallQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InferenceCallSelect) Aggregate(fns ...AggregateFunc) *InferenceCallSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InferenceCallSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InferenceCallQuery, *InferenceCallSelect](ctx, _s.InferenceCallQuery, _s, _s.inters, v)
}

func (_s *InferenceCallSelect) sqlScan(ctx context.Context, root *InferenceCallQuery, v any) error {
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
