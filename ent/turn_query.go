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
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/turn"
)

// TurnQuery is the builder for querying Turn entities.
type TurnQuery struct {
	config
	ctx                *QueryContext
	order              []turn.OrderOption
	inters             []Interceptor
	predicates         []predicate.Turn
	withCommand        *CommandQuery
	withAnsweredBy     *TurnQuery
	withAnswers        *TurnQuery
	withEvents         *EventQuery
	withInferenceCalls *InferenceCallQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TurnQuery builder.
func (_q *TurnQuery) Where(ps ...predicate.Turn) *TurnQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TurnQuery) Limit(limit int) *TurnQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TurnQuery) Offset(offset int) *TurnQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TurnQuery) Unique(unique bool) *TurnQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TurnQuery) Order(o ...turn.OrderOption) *TurnQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCommand chains the current query on the "command" edge.
func (_q *TurnQuery) QueryCommand() *CommandQuery {
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
			sqlgraph.From(turn.Table, turn.FieldID, selector),
			sqlgraph.To(command.Table, command.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turn.CommandTable, turn.CommandColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnsweredBy chains the current query on the "answered_by" edge.
func (_q *TurnQuery) QueryAnsweredBy() *TurnQuery {
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
			sqlgraph.From(turn.Table, turn.FieldID, selector),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, turn.AnsweredByTable, turn.AnsweredByColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnswers chains the current query on the "answers" edge.
func (_q *TurnQuery) QueryAnswers() *TurnQuery {
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
			sqlgraph.From(turn.Table, turn.FieldID, selector),
			sqlgraph.To(turn.Table, turn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.AnswersTable, turn.AnswersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *TurnQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.EventsTable, turn.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInferenceCalls chains the current query on the "inference_calls" edge.
func (_q *TurnQuery) QueryInferenceCalls() *InferenceCallQuery {
	query := (&InferenceCallClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(turn.Table, turn.FieldID, selector),
			sqlgraph.To(inferencecall.Table, inferencecall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, turn.InferenceCallsTable, turn.InferenceCallsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Turn entity from the query.
// Returns a *NotFoundError when no Turn was found.
func (_q *TurnQuery) First(ctx context.Context) (*Turn, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{turn.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TurnQuery) FirstX(ctx context.Context) *Turn {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Turn ID from the query.
// Returns a *NotFoundError when no Turn ID was found.
func (_q *TurnQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{turn.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TurnQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Turn entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Turn entity is found.
// Returns a *NotFoundError when no Turn entities are found.
func (_q *TurnQuery) Only(ctx context.Context) (*Turn, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{turn.Label}
	default:
		return nil, &NotSingularError{turn.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TurnQuery) OnlyX(ctx context.Context) *Turn {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Turn ID in the query.
// Returns a *NotSingularError when more than one Turn ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TurnQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{turn.Label}
	default:
		err = &NotSingularError{turn.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TurnQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Turns.
func (_q *TurnQuery) All(ctx context.Context) ([]*Turn, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Turn, *TurnQuery]()
	return withInterceptors[[]*Turn](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TurnQuery) AllX(ctx context.Context) []*Turn {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Turn IDs.
func (_q *TurnQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(turn.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TurnQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TurnQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TurnQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TurnQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TurnQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TurnQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TurnQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TurnQuery) Clone() *TurnQuery {
	if _q == nil {
		return nil
	}
	return &TurnQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]turn.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.Turn{}, _q.predicates...),
		withCommand:        _q.withCommand.Clone(),
		withAnsweredBy:     _q.withAnsweredBy.Clone(),
		withAnswers:        _q.withAnswers.Clone(),
		withEvents:         _q.withEvents.Clone(),
		withInferenceCalls: _q.withInferenceCalls.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCommand tells the query-builder to eager-load the nodes that are connected to
// the "command" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TurnQuery) WithCommand(opts ...func(*CommandQuery)) *TurnQuery {
	query := (&CommandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommand = query
	return _q
}

// WithAnsweredBy tells the query-builder to eager-load the nodes that are connected to
// the "answered_by" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TurnQuery) WithAnsweredBy(opts ...func(*TurnQuery)) *TurnQuery {
	query := (&TurnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnsweredBy = query
	return _q
}

// WithAnswers tells the query-builder to eager-load the nodes that are connected to
// the "answers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TurnQuery) WithAnswers(opts ...func(*TurnQuery)) *TurnQuery {
	query := (&TurnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnswers = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TurnQuery) WithEvents(opts ...func(*EventQuery)) *TurnQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithInferenceCalls tells the query-builder to eager-load the nodes that are connected to
// the "inference_calls" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TurnQuery) WithInferenceCalls(opts ...func(*InferenceCallQuery)) *TurnQuery {
	query := (&InferenceCallClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInferenceCalls = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CommandID int `json:"command_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Turn.Query().
//		GroupBy(turn.FieldCommandID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TurnQuery) GroupBy(field string, fields ...string) *TurnGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TurnGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = turn.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CommandID int `json:"command_id,omitempty"`
//	}
//
//	client.Turn.Query().
//		Select(turn.FieldCommandID).
//		Scan(ctx, &v)
func (_q *TurnQuery) Select(fields ...string) *TurnSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TurnSelect{TurnQuery: _q}
	sbuild.label = turn.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TurnSelect configured with the given aggregations.
func (_q *TurnQuery) Aggregate(fns ...AggregateFunc) *TurnSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TurnQuery) prepareQuery(ctx context.Context) error {
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
		if !turn.ValidColumn(f) {
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

func (_q *TurnQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Turn, error) {
	var (
		nodes       = []*Turn{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withCommand != nil,
			_q.withAnsweredBy != nil,
			_q.withAnswers != nil,
			_q.withEvents != nil,
			_q.withInferenceCalls != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Turn).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Turn{config: _q.config}
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
	if query := _q.withCommand; query != nil {
		if err := _q.loadCommand(ctx, query, nodes, nil,
			func(n *Turn, e *Command) { n.Edges.Command = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnsweredBy; query != nil {
		if err := _q.loadAnsweredBy(ctx, query, nodes, nil,
			func(n *Turn, e *Turn) { n.Edges.AnsweredBy = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnswers; query != nil {
		if err := _q.loadAnswers(ctx, query, nodes,
			func(n *Turn) { n.Edges.Answers = []*Turn{} },
			func(n *Turn, e *Turn) { n.Edges.Answers = append(n.Edges.Answers, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Turn) { n.Edges.Events = []*Event{} },
			func(n *Turn, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInferenceCalls; query != nil {
		if err := _q.loadInferenceCalls(ctx, query, nodes,
			func(n *Turn) { n.Edges.InferenceCalls = []*InferenceCall{} },
			func(n *Turn, e *InferenceCall) { n.Edges.InferenceCalls = append(n.Edges.InferenceCalls, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TurnQuery) loadCommand(ctx context.Context, query *CommandQuery, nodes []*Turn, init func(*Turn), assign func(*Turn, *Command)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Turn)
	for i := range nodes {
		fk := nodes[i].CommandID
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
func (_q *TurnQuery) loadAnsweredBy(ctx context.Context, query *TurnQuery, nodes []*Turn, init func(*Turn), assign func(*Turn, *Turn)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Turn)
	for i := range nodes {
		if nodes[i].AnsweredByTurnID == nil {
			continue
		}
		fk := *nodes[i].AnsweredByTurnID
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
			return fmt.Errorf(`unexpected foreign-key "answered_by_turn_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TurnQuery) loadAnswers(ctx context.Context, query *TurnQuery, nodes []*Turn, init func(*Turn), assign func(*Turn, *Turn)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Turn)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(turn.FieldAnsweredByTurnID)
	}
	query.Where(predicate.Turn(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(turn.AnswersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnsweredByTurnID
		if fk == nil {
			return fmt.Errorf(`foreign-key "answered_by_turn_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "answered_by_turn_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TurnQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Turn, init func(*Turn), assign func(*Turn, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Turn)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldTurnID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(turn.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TurnID
		if fk == nil {
			return fmt.Errorf(`foreign-key "turn_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "turn_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TurnQuery) loadInferenceCalls(ctx context.Context, query *InferenceCallQuery, nodes []*Turn, init func(*Turn), assign func(*Turn, *InferenceCall)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Turn)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(inferencecall.FieldTurnID)
	}
	query.Where(predicate.InferenceCall(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(turn.InferenceCallsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TurnID
		if fk == nil {
			return fmt.Errorf(`foreign-key "turn_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "turn_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TurnQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TurnQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turn.FieldID)
		for i := range fields {
			if fields[i] != turn.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCommand != nil {
			_spec.Node.AddColumnOnce(turn.FieldCommandID)
		}
		if _q.withAnsweredBy != nil {
			_spec.Node.AddColumnOnce(turn.FieldAnsweredByTurnID)
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

func (_q *TurnQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(turn.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = turn.Columns
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

// TurnGroupBy is the group-by builder for Turn entities.
type TurnGroupBy struct {
	selector
	build *TurnQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TurnGroupBy) Aggregate(fns ...AggregateFunc) *TurnGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TurnGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TurnQuery, *TurnGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TurnGroupBy) sqlScan(ctx context.Context, root *TurnQuery, v any) error {
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

// TurnSelect is the builder for selecting fields of Turn entities.
type TurnSelect struct {
	*TurnQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TurnSelect) Aggregate(fns ...AggregateFunc) *TurnSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TurnSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TurnQuery, *TurnSelect](ctx, _s.TurnQuery, _s, _s.inters, v)
}

func (_s *TurnSelect) sqlScan(ctx context.Context, root *TurnQuery, v any) error {
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
