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
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/turn"
)

// TurnUpdate is the builder for updating Turn entities.
type TurnUpdate struct {
	config
	hooks    []Hook
	mutation *TurnMutation
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdate) Where(ps ...predicate.Turn) *TurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnsweredByTurnID sets the "answered_by_turn_id" field.
func (_u *TurnUpdate) SetAnsweredByTurnID(v int) *TurnUpdate {
	_u.mutation.SetAnsweredByTurnID(v)
	return _u
}

// SetNillableAnsweredByTurnID sets the "answered_by_turn_id" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableAnsweredByTurnID(v *int) *TurnUpdate {
	if v != nil {
		_u.SetAnsweredByTurnID(*v)
	}
	return _u
}

// ClearAnsweredByTurnID clears the value of the "answered_by_turn_id" field.
func (_u *TurnUpdate) ClearAnsweredByTurnID() *TurnUpdate {
	_u.mutation.ClearAnsweredByTurnID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TurnUpdate) SetSummary(v string) *TurnUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableSummary(v *string) *TurnUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TurnUpdate) ClearSummary() *TurnUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryGeneratedAt sets the "summary_generated_at" field.
func (_u *TurnUpdate) SetSummaryGeneratedAt(v time.Time) *TurnUpdate {
	_u.mutation.SetSummaryGeneratedAt(v)
	return _u
}

// SetNillableSummaryGeneratedAt sets the "summary_generated_at" field if the given value is not nil.
func (_u *TurnUpdate) SetNillableSummaryGeneratedAt(v *time.Time) *TurnUpdate {
	if v != nil {
		_u.SetSummaryGeneratedAt(*v)
	}
	return _u
}

// ClearSummaryGeneratedAt clears the value of the "summary_generated_at" field.
func (_u *TurnUpdate) ClearSummaryGeneratedAt() *TurnUpdate {
	_u.mutation.ClearSummaryGeneratedAt()
	return _u
}

// SetAnsweredByID sets the "answered_by" edge to the Turn entity by ID.
func (_u *TurnUpdate) SetAnsweredByID(id int) *TurnUpdate {
	_u.mutation.SetAnsweredByID(id)
	return _u
}

// SetNillableAnsweredByID sets the "answered_by" edge to the Turn entity by ID if the given value is not nil.
func (_u *TurnUpdate) SetNillableAnsweredByID(id *int) *TurnUpdate {
	if id != nil {
		_u = _u.SetAnsweredByID(*id)
	}
	return _u
}

// SetAnsweredBy sets the "answered_by" edge to the Turn entity.
func (_u *TurnUpdate) SetAnsweredBy(v *Turn) *TurnUpdate {
	return _u.SetAnsweredByID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Turn entity by IDs.
func (_u *TurnUpdate) AddAnswerIDs(ids ...int) *TurnUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Turn entity.
func (_u *TurnUpdate) AddAnswers(v ...*Turn) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TurnUpdate) AddEventIDs(ids ...int) *TurnUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TurnUpdate) AddEvents(v ...*Event) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *TurnUpdate) AddInferenceCallIDs(ids ...int) *TurnUpdate {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *TurnUpdate) AddInferenceCalls(v ...*InferenceCall) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdate) Mutation() *TurnMutation {
	return _u.mutation
}

// ClearAnsweredBy clears the "answered_by" edge to the Turn entity.
func (_u *TurnUpdate) ClearAnsweredBy() *TurnUpdate {
	_u.mutation.ClearAnsweredBy()
	return _u
}

// ClearAnswers clears all "answers" edges to the Turn entity.
func (_u *TurnUpdate) ClearAnswers() *TurnUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Turn entities by IDs.
func (_u *TurnUpdate) RemoveAnswerIDs(ids ...int) *TurnUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Turn entities.
func (_u *TurnUpdate) RemoveAnswers(v ...*Turn) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TurnUpdate) ClearEvents() *TurnUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TurnUpdate) RemoveEventIDs(ids ...int) *TurnUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TurnUpdate) RemoveEvents(v ...*Event) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *TurnUpdate) ClearInferenceCalls() *TurnUpdate {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *TurnUpdate) RemoveInferenceCallIDs(ids ...int) *TurnUpdate {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *TurnUpdate) RemoveInferenceCalls(v ...*InferenceCall) *TurnUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdate) check() error {
	if _u.mutation.CommandCleared() && len(_u.mutation.CommandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Turn.command"`)
	}
	return nil
}

func (_u *TurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.JsonlEntryHashCleared() {
		_spec.ClearField(turn.FieldJsonlEntryHash, field.TypeString)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(turn.FieldToolInput, field.TypeJSON)
	}
	if _u.mutation.FileMetadataCleared() {
		_spec.ClearField(turn.FieldFileMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(turn.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(turn.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryGeneratedAt(); ok {
		_spec.SetField(turn.FieldSummaryGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryGeneratedAtCleared() {
		_spec.ClearField(turn.FieldSummaryGeneratedAt, field.TypeTime)
	}
	if _u.mutation.AnsweredByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.AnsweredByTable,
			Columns: []string{turn.AnsweredByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnsweredByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.AnsweredByTable,
			Columns: []string{turn.AnsweredByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnUpdateOne is the builder for updating a single Turn entity.
type TurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnMutation
}

// SetAnsweredByTurnID sets the "answered_by_turn_id" field.
func (_u *TurnUpdateOne) SetAnsweredByTurnID(v int) *TurnUpdateOne {
	_u.mutation.SetAnsweredByTurnID(v)
	return _u
}

// SetNillableAnsweredByTurnID sets the "answered_by_turn_id" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableAnsweredByTurnID(v *int) *TurnUpdateOne {
	if v != nil {
		_u.SetAnsweredByTurnID(*v)
	}
	return _u
}

// ClearAnsweredByTurnID clears the value of the "answered_by_turn_id" field.
func (_u *TurnUpdateOne) ClearAnsweredByTurnID() *TurnUpdateOne {
	_u.mutation.ClearAnsweredByTurnID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TurnUpdateOne) SetSummary(v string) *TurnUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableSummary(v *string) *TurnUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TurnUpdateOne) ClearSummary() *TurnUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryGeneratedAt sets the "summary_generated_at" field.
func (_u *TurnUpdateOne) SetSummaryGeneratedAt(v time.Time) *TurnUpdateOne {
	_u.mutation.SetSummaryGeneratedAt(v)
	return _u
}

// SetNillableSummaryGeneratedAt sets the "summary_generated_at" field if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableSummaryGeneratedAt(v *time.Time) *TurnUpdateOne {
	if v != nil {
		_u.SetSummaryGeneratedAt(*v)
	}
	return _u
}

// ClearSummaryGeneratedAt clears the value of the "summary_generated_at" field.
func (_u *TurnUpdateOne) ClearSummaryGeneratedAt() *TurnUpdateOne {
	_u.mutation.ClearSummaryGeneratedAt()
	return _u
}

// SetAnsweredByID sets the "answered_by" edge to the Turn entity by ID.
func (_u *TurnUpdateOne) SetAnsweredByID(id int) *TurnUpdateOne {
	_u.mutation.SetAnsweredByID(id)
	return _u
}

// SetNillableAnsweredByID sets the "answered_by" edge to the Turn entity by ID if the given value is not nil.
func (_u *TurnUpdateOne) SetNillableAnsweredByID(id *int) *TurnUpdateOne {
	if id != nil {
		_u = _u.SetAnsweredByID(*id)
	}
	return _u
}

// SetAnsweredBy sets the "answered_by" edge to the Turn entity.
func (_u *TurnUpdateOne) SetAnsweredBy(v *Turn) *TurnUpdateOne {
	return _u.SetAnsweredByID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Turn entity by IDs.
func (_u *TurnUpdateOne) AddAnswerIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Turn entity.
func (_u *TurnUpdateOne) AddAnswers(v ...*Turn) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TurnUpdateOne) AddEventIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TurnUpdateOne) AddEvents(v ...*Event) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *TurnUpdateOne) AddInferenceCallIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *TurnUpdateOne) AddInferenceCalls(v ...*InferenceCall) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the TurnMutation object of the builder.
func (_u *TurnUpdateOne) Mutation() *TurnMutation {
	return _u.mutation
}

// ClearAnsweredBy clears the "answered_by" edge to the Turn entity.
func (_u *TurnUpdateOne) ClearAnsweredBy() *TurnUpdateOne {
	_u.mutation.ClearAnsweredBy()
	return _u
}

// ClearAnswers clears all "answers" edges to the Turn entity.
func (_u *TurnUpdateOne) ClearAnswers() *TurnUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Turn entities by IDs.
func (_u *TurnUpdateOne) RemoveAnswerIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Turn entities.
func (_u *TurnUpdateOne) RemoveAnswers(v ...*Turn) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TurnUpdateOne) ClearEvents() *TurnUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TurnUpdateOne) RemoveEventIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TurnUpdateOne) RemoveEvents(v ...*Event) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *TurnUpdateOne) ClearInferenceCalls() *TurnUpdateOne {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *TurnUpdateOne) RemoveInferenceCallIDs(ids ...int) *TurnUpdateOne {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *TurnUpdateOne) RemoveInferenceCalls(v ...*InferenceCall) *TurnUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Where appends a list predicates to the TurnUpdate builder.
func (_u *TurnUpdateOne) Where(ps ...predicate.Turn) *TurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnUpdateOne) Select(field string, fields ...string) *TurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Turn entity.
func (_u *TurnUpdateOne) Save(ctx context.Context) (*Turn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnUpdateOne) SaveX(ctx context.Context) *Turn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnUpdateOne) check() error {
	if _u.mutation.CommandCleared() && len(_u.mutation.CommandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Turn.command"`)
	}
	return nil
}

func (_u *TurnUpdateOne) sqlSave(ctx context.Context) (_node *Turn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turn.Table, turn.Columns, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Turn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turn.FieldID)
		for _, f := range fields {
			if !turn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turn.FieldID {
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
	if _u.mutation.JsonlEntryHashCleared() {
		_spec.ClearField(turn.FieldJsonlEntryHash, field.TypeString)
	}
	if _u.mutation.ToolInputCleared() {
		_spec.ClearField(turn.FieldToolInput, field.TypeJSON)
	}
	if _u.mutation.FileMetadataCleared() {
		_spec.ClearField(turn.FieldFileMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(turn.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(turn.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryGeneratedAt(); ok {
		_spec.SetField(turn.FieldSummaryGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryGeneratedAtCleared() {
		_spec.ClearField(turn.FieldSummaryGeneratedAt, field.TypeTime)
	}
	if _u.mutation.AnsweredByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.AnsweredByTable,
			Columns: []string{turn.AnsweredByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnsweredByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.AnsweredByTable,
			Columns: []string{turn.AnsweredByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.AnswersTable,
			Columns: []string{turn.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.EventsTable,
			Columns: []string{turn.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   turn.InferenceCallsTable,
			Columns: []string{turn.InferenceCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Turn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
