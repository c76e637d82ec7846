// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/turn"
)

// TurnCreate is the builder for creating a Turn entity.
type TurnCreate struct {
	config
	mutation *TurnMutation
	hooks    []Hook
}

// SetCommandID sets the "command_id" field.
func (_c *TurnCreate) SetCommandID(v int) *TurnCreate {
	_c.mutation.SetCommandID(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *TurnCreate) SetActor(v turn.Actor) *TurnCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *TurnCreate) SetIntent(v turn.Intent) *TurnCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TurnCreate) SetText(v string) *TurnCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnCreate) SetTimestamp(v time.Time) *TurnCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTimestampSource sets the "timestamp_source" field.
func (_c *TurnCreate) SetTimestampSource(v turn.TimestampSource) *TurnCreate {
	_c.mutation.SetTimestampSource(v)
	return _c
}

// SetJsonlEntryHash sets the "jsonl_entry_hash" field.
func (_c *TurnCreate) SetJsonlEntryHash(v string) *TurnCreate {
	_c.mutation.SetJsonlEntryHash(v)
	return _c
}

// SetNillableJsonlEntryHash sets the "jsonl_entry_hash" field if the given value is not nil.
func (_c *TurnCreate) SetNillableJsonlEntryHash(v *string) *TurnCreate {
	if v != nil {
		_c.SetJsonlEntryHash(*v)
	}
	return _c
}

// SetIsInternal sets the "is_internal" field.
func (_c *TurnCreate) SetIsInternal(v bool) *TurnCreate {
	_c.mutation.SetIsInternal(v)
	return _c
}

// SetNillableIsInternal sets the "is_internal" field if the given value is not nil.
func (_c *TurnCreate) SetNillableIsInternal(v *bool) *TurnCreate {
	if v != nil {
		_c.SetIsInternal(*v)
	}
	return _c
}

// SetToolInput sets the "tool_input" field.
func (_c *TurnCreate) SetToolInput(v map[string]interface{}) *TurnCreate {
	_c.mutation.SetToolInput(v)
	return _c
}

// SetFileMetadata sets the "file_metadata" field.
func (_c *TurnCreate) SetFileMetadata(v map[string]interface{}) *TurnCreate {
	_c.mutation.SetFileMetadata(v)
	return _c
}

// SetAnsweredByTurnID sets the "answered_by_turn_id" field.
func (_c *TurnCreate) SetAnsweredByTurnID(v int) *TurnCreate {
	_c.mutation.SetAnsweredByTurnID(v)
	return _c
}

// SetNillableAnsweredByTurnID sets the "answered_by_turn_id" field if the given value is not nil.
func (_c *TurnCreate) SetNillableAnsweredByTurnID(v *int) *TurnCreate {
	if v != nil {
		_c.SetAnsweredByTurnID(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TurnCreate) SetSummary(v string) *TurnCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *TurnCreate) SetNillableSummary(v *string) *TurnCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSummaryGeneratedAt sets the "summary_generated_at" field.
func (_c *TurnCreate) SetSummaryGeneratedAt(v time.Time) *TurnCreate {
	_c.mutation.SetSummaryGeneratedAt(v)
	return _c
}

// SetNillableSummaryGeneratedAt sets the "summary_generated_at" field if the given value is not nil.
func (_c *TurnCreate) SetNillableSummaryGeneratedAt(v *time.Time) *TurnCreate {
	if v != nil {
		_c.SetSummaryGeneratedAt(*v)
	}
	return _c
}

// SetCommand sets the "command" edge to the Command entity.
func (_c *TurnCreate) SetCommand(v *Command) *TurnCreate {
	return _c.SetCommandID(v.ID)
}

// SetAnsweredByID sets the "answered_by" edge to the Turn entity by ID.
func (_c *TurnCreate) SetAnsweredByID(id int) *TurnCreate {
	_c.mutation.SetAnsweredByID(id)
	return _c
}

// SetNillableAnsweredByID sets the "answered_by" edge to the Turn entity by ID if the given value is not nil.
func (_c *TurnCreate) SetNillableAnsweredByID(id *int) *TurnCreate {
	if id != nil {
		_c = _c.SetAnsweredByID(*id)
	}
	return _c
}

// SetAnsweredBy sets the "answered_by" edge to the Turn entity.
func (_c *TurnCreate) SetAnsweredBy(v *Turn) *TurnCreate {
	return _c.SetAnsweredByID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Turn entity by IDs.
func (_c *TurnCreate) AddAnswerIDs(ids ...int) *TurnCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Turn entity.
func (_c *TurnCreate) AddAnswers(v ...*Turn) *TurnCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *TurnCreate) AddEventIDs(ids ...int) *TurnCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *TurnCreate) AddEvents(v ...*Event) *TurnCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_c *TurnCreate) AddInferenceCallIDs(ids ...int) *TurnCreate {
	_c.mutation.AddInferenceCallIDs(ids...)
	return _c
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_c *TurnCreate) AddInferenceCalls(v ...*InferenceCall) *TurnCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInferenceCallIDs(ids...)
}

// Mutation returns the TurnMutation object of the builder.
func (_c *TurnCreate) Mutation() *TurnMutation {
	return _c.mutation
}

// Save creates the Turn in the database.
func (_c *TurnCreate) Save(ctx context.Context) (*Turn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnCreate) SaveX(ctx context.Context) *Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnCreate) defaults() {
	if _, ok := _c.mutation.IsInternal(); !ok {
		v := turn.DefaultIsInternal
		_c.mutation.SetIsInternal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnCreate) check() error {
	if _, ok := _c.mutation.CommandID(); !ok {
		return &ValidationError{Name: "command_id", err: errors.New(`ent: missing required field "Turn.command_id"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "Turn.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := turn.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "Turn.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "Turn.intent"`)}
	}
	if v, ok := _c.mutation.Intent(); ok {
		if err := turn.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`ent: validator failed for field "Turn.intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Turn.text"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Turn.timestamp"`)}
	}
	if _, ok := _c.mutation.TimestampSource(); !ok {
		return &ValidationError{Name: "timestamp_source", err: errors.New(`ent: missing required field "Turn.timestamp_source"`)}
	}
	if v, ok := _c.mutation.TimestampSource(); ok {
		if err := turn.TimestampSourceValidator(v); err != nil {
			return &ValidationError{Name: "timestamp_source", err: fmt.Errorf(`ent: validator failed for field "Turn.timestamp_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsInternal(); !ok {
		return &ValidationError{Name: "is_internal", err: errors.New(`ent: missing required field "Turn.is_internal"`)}
	}
	if len(_c.mutation.CommandIDs()) == 0 {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required edge "Turn.command"`)}
	}
	return nil
}

func (_c *TurnCreate) sqlSave(ctx context.Context) (*Turn, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnCreate) createSpec() (*Turn, *sqlgraph.CreateSpec) {
	var (
		_node = &Turn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turn.Table, sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(turn.FieldActor, field.TypeEnum, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(turn.FieldIntent, field.TypeEnum, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(turn.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turn.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TimestampSource(); ok {
		_spec.SetField(turn.FieldTimestampSource, field.TypeEnum, value)
		_node.TimestampSource = value
	}
	if value, ok := _c.mutation.JsonlEntryHash(); ok {
		_spec.SetField(turn.FieldJsonlEntryHash, field.TypeString, value)
		_node.JsonlEntryHash = &value
	}
	if value, ok := _c.mutation.IsInternal(); ok {
		_spec.SetField(turn.FieldIsInternal, field.TypeBool, value)
		_node.IsInternal = value
	}
	if value, ok := _c.mutation.ToolInput(); ok {
		_spec.SetField(turn.FieldToolInput, field.TypeJSON, value)
		_node.ToolInput = value
	}
	if value, ok := _c.mutation.FileMetadata(); ok {
		_spec.SetField(turn.FieldFileMetadata, field.TypeJSON, value)
		_node.FileMetadata = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(turn.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.SummaryGeneratedAt(); ok {
		_spec.SetField(turn.FieldSummaryGeneratedAt, field.TypeTime, value)
		_node.SummaryGeneratedAt = &value
	}
	if nodes := _c.mutation.CommandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   turn.CommandTable,
			Columns: []string{turn.CommandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommandID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnsweredByIDs(); len(nodes) > 0 {
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
		_node.AnsweredByTurnID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InferenceCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TurnCreateBulk is the builder for creating many Turn entities in bulk.
type TurnCreateBulk struct {
	config
	err      error
	builders []*TurnCreate
}

// Save creates the Turn entities in the database.
func (_c *TurnCreateBulk) Save(ctx context.Context) ([]*Turn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Turn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TurnCreateBulk) SaveX(ctx context.Context) []*Turn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
