// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/turn"
)

// CommandCreate is the builder for creating a Command entity.
type CommandCreate struct {
	config
	mutation *CommandMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *CommandCreate) SetAgentID(v int) *CommandCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CommandCreate) SetState(v command.State) *CommandCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CommandCreate) SetNillableState(v *command.State) *CommandCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CommandCreate) SetStartedAt(v time.Time) *CommandCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CommandCreate) SetNillableStartedAt(v *time.Time) *CommandCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CommandCreate) SetCompletedAt(v time.Time) *CommandCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CommandCreate) SetNillableCompletedAt(v *time.Time) *CommandCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetInstruction sets the "instruction" field.
func (_c *CommandCreate) SetInstruction(v string) *CommandCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_c *CommandCreate) SetNillableInstruction(v *string) *CommandCreate {
	if v != nil {
		_c.SetInstruction(*v)
	}
	return _c
}

// SetCompletionSummary sets the "completion_summary" field.
func (_c *CommandCreate) SetCompletionSummary(v string) *CommandCreate {
	_c.mutation.SetCompletionSummary(v)
	return _c
}

// SetNillableCompletionSummary sets the "completion_summary" field if the given value is not nil.
func (_c *CommandCreate) SetNillableCompletionSummary(v *string) *CommandCreate {
	if v != nil {
		_c.SetCompletionSummary(*v)
	}
	return _c
}

// SetFullCommand sets the "full_command" field.
func (_c *CommandCreate) SetFullCommand(v string) *CommandCreate {
	_c.mutation.SetFullCommand(v)
	return _c
}

// SetNillableFullCommand sets the "full_command" field if the given value is not nil.
func (_c *CommandCreate) SetNillableFullCommand(v *string) *CommandCreate {
	if v != nil {
		_c.SetFullCommand(*v)
	}
	return _c
}

// SetFullOutput sets the "full_output" field.
func (_c *CommandCreate) SetFullOutput(v string) *CommandCreate {
	_c.mutation.SetFullOutput(v)
	return _c
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_c *CommandCreate) SetNillableFullOutput(v *string) *CommandCreate {
	if v != nil {
		_c.SetFullOutput(*v)
	}
	return _c
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_c *CommandCreate) SetPlanFilePath(v string) *CommandCreate {
	_c.mutation.SetPlanFilePath(v)
	return _c
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_c *CommandCreate) SetNillablePlanFilePath(v *string) *CommandCreate {
	if v != nil {
		_c.SetPlanFilePath(*v)
	}
	return _c
}

// SetPlanContent sets the "plan_content" field.
func (_c *CommandCreate) SetPlanContent(v string) *CommandCreate {
	_c.mutation.SetPlanContent(v)
	return _c
}

// SetNillablePlanContent sets the "plan_content" field if the given value is not nil.
func (_c *CommandCreate) SetNillablePlanContent(v *string) *CommandCreate {
	if v != nil {
		_c.SetPlanContent(*v)
	}
	return _c
}

// SetPlanApprovedAt sets the "plan_approved_at" field.
func (_c *CommandCreate) SetPlanApprovedAt(v time.Time) *CommandCreate {
	_c.mutation.SetPlanApprovedAt(v)
	return _c
}

// SetNillablePlanApprovedAt sets the "plan_approved_at" field if the given value is not nil.
func (_c *CommandCreate) SetNillablePlanApprovedAt(v *time.Time) *CommandCreate {
	if v != nil {
		_c.SetPlanApprovedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *CommandCreate) SetAgent(v *Agent) *CommandCreate {
	return _c.SetAgentID(v.ID)
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_c *CommandCreate) AddTurnIDs(ids ...int) *CommandCreate {
	_c.mutation.AddTurnIDs(ids...)
	return _c
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_c *CommandCreate) AddTurns(v ...*Turn) *CommandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTurnIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *CommandCreate) AddEventIDs(ids ...int) *CommandCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *CommandCreate) AddEvents(v ...*Event) *CommandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_c *CommandCreate) AddInferenceCallIDs(ids ...int) *CommandCreate {
	_c.mutation.AddInferenceCallIDs(ids...)
	return _c
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_c *CommandCreate) AddInferenceCalls(v ...*InferenceCall) *CommandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInferenceCallIDs(ids...)
}

// Mutation returns the CommandMutation object of the builder.
func (_c *CommandCreate) Mutation() *CommandMutation {
	return _c.mutation
}

// Save creates the Command in the database.
func (_c *CommandCreate) Save(ctx context.Context) (*Command, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommandCreate) SaveX(ctx context.Context) *Command {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommandCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := command.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := command.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommandCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Command.agent_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Command.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := command.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Command.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Command.started_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Command.agent"`)}
	}
	return nil
}

func (_c *CommandCreate) sqlSave(ctx context.Context) (*Command, error) {
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

func (_c *CommandCreate) createSpec() (*Command, *sqlgraph.CreateSpec) {
	var (
		_node = &Command{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(command.Table, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(command.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(command.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(command.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(command.FieldInstruction, field.TypeString, value)
		_node.Instruction = &value
	}
	if value, ok := _c.mutation.CompletionSummary(); ok {
		_spec.SetField(command.FieldCompletionSummary, field.TypeString, value)
		_node.CompletionSummary = &value
	}
	if value, ok := _c.mutation.FullCommand(); ok {
		_spec.SetField(command.FieldFullCommand, field.TypeString, value)
		_node.FullCommand = &value
	}
	if value, ok := _c.mutation.FullOutput(); ok {
		_spec.SetField(command.FieldFullOutput, field.TypeString, value)
		_node.FullOutput = &value
	}
	if value, ok := _c.mutation.PlanFilePath(); ok {
		_spec.SetField(command.FieldPlanFilePath, field.TypeString, value)
		_node.PlanFilePath = &value
	}
	if value, ok := _c.mutation.PlanContent(); ok {
		_spec.SetField(command.FieldPlanContent, field.TypeString, value)
		_node.PlanContent = &value
	}
	if value, ok := _c.mutation.PlanApprovedAt(); ok {
		_spec.SetField(command.FieldPlanApprovedAt, field.TypeTime, value)
		_node.PlanApprovedAt = &value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   command.AgentTable,
			Columns: []string{command.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   command.TurnsTable,
			Columns: []string{command.TurnsColumn},
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
			Table:   command.EventsTable,
			Columns: []string{command.EventsColumn},
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
			Table:   command.InferenceCallsTable,
			Columns: []string{command.InferenceCallsColumn},
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

// CommandCreateBulk is the builder for creating many Command entities in bulk.
type CommandCreateBulk struct {
	config
	err      error
	builders []*CommandCreate
}

// Save creates the Command entities in the database.
func (_c *CommandCreateBulk) Save(ctx context.Context) ([]*Command, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Command, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommandMutation)
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
func (_c *CommandCreateBulk) SaveX(ctx context.Context) []*Command {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
