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
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/turn"
)

// CommandUpdate is the builder for updating Command entities.
type CommandUpdate struct {
	config
	hooks    []Hook
	mutation *CommandMutation
}

// Where appends a list predicates to the CommandUpdate builder.
func (_u *CommandUpdate) Where(ps ...predicate.Command) *CommandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CommandUpdate) SetAgentID(v int) *CommandUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableAgentID(v *int) *CommandUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CommandUpdate) SetState(v command.State) *CommandUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableState(v *command.State) *CommandUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CommandUpdate) SetCompletedAt(v time.Time) *CommandUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableCompletedAt(v *time.Time) *CommandUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CommandUpdate) ClearCompletedAt() *CommandUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *CommandUpdate) SetInstruction(v string) *CommandUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableInstruction(v *string) *CommandUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// ClearInstruction clears the value of the "instruction" field.
func (_u *CommandUpdate) ClearInstruction() *CommandUpdate {
	_u.mutation.ClearInstruction()
	return _u
}

// SetCompletionSummary sets the "completion_summary" field.
func (_u *CommandUpdate) SetCompletionSummary(v string) *CommandUpdate {
	_u.mutation.SetCompletionSummary(v)
	return _u
}

// SetNillableCompletionSummary sets the "completion_summary" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableCompletionSummary(v *string) *CommandUpdate {
	if v != nil {
		_u.SetCompletionSummary(*v)
	}
	return _u
}

// ClearCompletionSummary clears the value of the "completion_summary" field.
func (_u *CommandUpdate) ClearCompletionSummary() *CommandUpdate {
	_u.mutation.ClearCompletionSummary()
	return _u
}

// SetFullCommand sets the "full_command" field.
func (_u *CommandUpdate) SetFullCommand(v string) *CommandUpdate {
	_u.mutation.SetFullCommand(v)
	return _u
}

// SetNillableFullCommand sets the "full_command" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableFullCommand(v *string) *CommandUpdate {
	if v != nil {
		_u.SetFullCommand(*v)
	}
	return _u
}

// ClearFullCommand clears the value of the "full_command" field.
func (_u *CommandUpdate) ClearFullCommand() *CommandUpdate {
	_u.mutation.ClearFullCommand()
	return _u
}

// SetFullOutput sets the "full_output" field.
func (_u *CommandUpdate) SetFullOutput(v string) *CommandUpdate {
	_u.mutation.SetFullOutput(v)
	return _u
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableFullOutput(v *string) *CommandUpdate {
	if v != nil {
		_u.SetFullOutput(*v)
	}
	return _u
}

// ClearFullOutput clears the value of the "full_output" field.
func (_u *CommandUpdate) ClearFullOutput() *CommandUpdate {
	_u.mutation.ClearFullOutput()
	return _u
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_u *CommandUpdate) SetPlanFilePath(v string) *CommandUpdate {
	_u.mutation.SetPlanFilePath(v)
	return _u
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_u *CommandUpdate) SetNillablePlanFilePath(v *string) *CommandUpdate {
	if v != nil {
		_u.SetPlanFilePath(*v)
	}
	return _u
}

// ClearPlanFilePath clears the value of the "plan_file_path" field.
func (_u *CommandUpdate) ClearPlanFilePath() *CommandUpdate {
	_u.mutation.ClearPlanFilePath()
	return _u
}

// SetPlanContent sets the "plan_content" field.
func (_u *CommandUpdate) SetPlanContent(v string) *CommandUpdate {
	_u.mutation.SetPlanContent(v)
	return _u
}

// SetNillablePlanContent sets the "plan_content" field if the given value is not nil.
func (_u *CommandUpdate) SetNillablePlanContent(v *string) *CommandUpdate {
	if v != nil {
		_u.SetPlanContent(*v)
	}
	return _u
}

// ClearPlanContent clears the value of the "plan_content" field.
func (_u *CommandUpdate) ClearPlanContent() *CommandUpdate {
	_u.mutation.ClearPlanContent()
	return _u
}

// SetPlanApprovedAt sets the "plan_approved_at" field.
func (_u *CommandUpdate) SetPlanApprovedAt(v time.Time) *CommandUpdate {
	_u.mutation.SetPlanApprovedAt(v)
	return _u
}

// SetNillablePlanApprovedAt sets the "plan_approved_at" field if the given value is not nil.
func (_u *CommandUpdate) SetNillablePlanApprovedAt(v *time.Time) *CommandUpdate {
	if v != nil {
		_u.SetPlanApprovedAt(*v)
	}
	return _u
}

// ClearPlanApprovedAt clears the value of the "plan_approved_at" field.
func (_u *CommandUpdate) ClearPlanApprovedAt() *CommandUpdate {
	_u.mutation.ClearPlanApprovedAt()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *CommandUpdate) SetAgent(v *Agent) *CommandUpdate {
	return _u.SetAgentID(v.ID)
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_u *CommandUpdate) AddTurnIDs(ids ...int) *CommandUpdate {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_u *CommandUpdate) AddTurns(v ...*Turn) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CommandUpdate) AddEventIDs(ids ...int) *CommandUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CommandUpdate) AddEvents(v ...*Event) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *CommandUpdate) AddInferenceCallIDs(ids ...int) *CommandUpdate {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *CommandUpdate) AddInferenceCalls(v ...*InferenceCall) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the CommandMutation object of the builder.
func (_u *CommandUpdate) Mutation() *CommandMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *CommandUpdate) ClearAgent() *CommandUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTurns clears all "turns" edges to the Turn entity.
func (_u *CommandUpdate) ClearTurns() *CommandUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to Turn entities by IDs.
func (_u *CommandUpdate) RemoveTurnIDs(ids ...int) *CommandUpdate {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to Turn entities.
func (_u *CommandUpdate) RemoveTurns(v ...*Turn) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CommandUpdate) ClearEvents() *CommandUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CommandUpdate) RemoveEventIDs(ids ...int) *CommandUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CommandUpdate) RemoveEvents(v ...*Event) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *CommandUpdate) ClearInferenceCalls() *CommandUpdate {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *CommandUpdate) RemoveInferenceCallIDs(ids ...int) *CommandUpdate {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *CommandUpdate) RemoveInferenceCalls(v ...*InferenceCall) *CommandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommandUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommandUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := command.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Command.state": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Command.agent"`)
	}
	return nil
}

func (_u *CommandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(command.Table, command.Columns, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(command.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(command.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(command.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(command.FieldInstruction, field.TypeString, value)
	}
	if _u.mutation.InstructionCleared() {
		_spec.ClearField(command.FieldInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionSummary(); ok {
		_spec.SetField(command.FieldCompletionSummary, field.TypeString, value)
	}
	if _u.mutation.CompletionSummaryCleared() {
		_spec.ClearField(command.FieldCompletionSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FullCommand(); ok {
		_spec.SetField(command.FieldFullCommand, field.TypeString, value)
	}
	if _u.mutation.FullCommandCleared() {
		_spec.ClearField(command.FieldFullCommand, field.TypeString)
	}
	if value, ok := _u.mutation.FullOutput(); ok {
		_spec.SetField(command.FieldFullOutput, field.TypeString, value)
	}
	if _u.mutation.FullOutputCleared() {
		_spec.ClearField(command.FieldFullOutput, field.TypeString)
	}
	if value, ok := _u.mutation.PlanFilePath(); ok {
		_spec.SetField(command.FieldPlanFilePath, field.TypeString, value)
	}
	if _u.mutation.PlanFilePathCleared() {
		_spec.ClearField(command.FieldPlanFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.PlanContent(); ok {
		_spec.SetField(command.FieldPlanContent, field.TypeString, value)
	}
	if _u.mutation.PlanContentCleared() {
		_spec.ClearField(command.FieldPlanContent, field.TypeString)
	}
	if value, ok := _u.mutation.PlanApprovedAt(); ok {
		_spec.SetField(command.FieldPlanApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanApprovedAtCleared() {
		_spec.ClearField(command.FieldPlanApprovedAt, field.TypeTime)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{command.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommandUpdateOne is the builder for updating a single Command entity.
type CommandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommandMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *CommandUpdateOne) SetAgentID(v int) *CommandUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableAgentID(v *int) *CommandUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CommandUpdateOne) SetState(v command.State) *CommandUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableState(v *command.State) *CommandUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CommandUpdateOne) SetCompletedAt(v time.Time) *CommandUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableCompletedAt(v *time.Time) *CommandUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CommandUpdateOne) ClearCompletedAt() *CommandUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *CommandUpdateOne) SetInstruction(v string) *CommandUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableInstruction(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// ClearInstruction clears the value of the "instruction" field.
func (_u *CommandUpdateOne) ClearInstruction() *CommandUpdateOne {
	_u.mutation.ClearInstruction()
	return _u
}

// SetCompletionSummary sets the "completion_summary" field.
func (_u *CommandUpdateOne) SetCompletionSummary(v string) *CommandUpdateOne {
	_u.mutation.SetCompletionSummary(v)
	return _u
}

// SetNillableCompletionSummary sets the "completion_summary" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableCompletionSummary(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetCompletionSummary(*v)
	}
	return _u
}

// ClearCompletionSummary clears the value of the "completion_summary" field.
func (_u *CommandUpdateOne) ClearCompletionSummary() *CommandUpdateOne {
	_u.mutation.ClearCompletionSummary()
	return _u
}

// SetFullCommand sets the "full_command" field.
func (_u *CommandUpdateOne) SetFullCommand(v string) *CommandUpdateOne {
	_u.mutation.SetFullCommand(v)
	return _u
}

// SetNillableFullCommand sets the "full_command" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableFullCommand(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetFullCommand(*v)
	}
	return _u
}

// ClearFullCommand clears the value of the "full_command" field.
func (_u *CommandUpdateOne) ClearFullCommand() *CommandUpdateOne {
	_u.mutation.ClearFullCommand()
	return _u
}

// SetFullOutput sets the "full_output" field.
func (_u *CommandUpdateOne) SetFullOutput(v string) *CommandUpdateOne {
	_u.mutation.SetFullOutput(v)
	return _u
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableFullOutput(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetFullOutput(*v)
	}
	return _u
}

// ClearFullOutput clears the value of the "full_output" field.
func (_u *CommandUpdateOne) ClearFullOutput() *CommandUpdateOne {
	_u.mutation.ClearFullOutput()
	return _u
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_u *CommandUpdateOne) SetPlanFilePath(v string) *CommandUpdateOne {
	_u.mutation.SetPlanFilePath(v)
	return _u
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillablePlanFilePath(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetPlanFilePath(*v)
	}
	return _u
}

// ClearPlanFilePath clears the value of the "plan_file_path" field.
func (_u *CommandUpdateOne) ClearPlanFilePath() *CommandUpdateOne {
	_u.mutation.ClearPlanFilePath()
	return _u
}

// SetPlanContent sets the "plan_content" field.
func (_u *CommandUpdateOne) SetPlanContent(v string) *CommandUpdateOne {
	_u.mutation.SetPlanContent(v)
	return _u
}

// SetNillablePlanContent sets the "plan_content" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillablePlanContent(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetPlanContent(*v)
	}
	return _u
}

// ClearPlanContent clears the value of the "plan_content" field.
func (_u *CommandUpdateOne) ClearPlanContent() *CommandUpdateOne {
	_u.mutation.ClearPlanContent()
	return _u
}

// SetPlanApprovedAt sets the "plan_approved_at" field.
func (_u *CommandUpdateOne) SetPlanApprovedAt(v time.Time) *CommandUpdateOne {
	_u.mutation.SetPlanApprovedAt(v)
	return _u
}

// SetNillablePlanApprovedAt sets the "plan_approved_at" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillablePlanApprovedAt(v *time.Time) *CommandUpdateOne {
	if v != nil {
		_u.SetPlanApprovedAt(*v)
	}
	return _u
}

// ClearPlanApprovedAt clears the value of the "plan_approved_at" field.
func (_u *CommandUpdateOne) ClearPlanApprovedAt() *CommandUpdateOne {
	_u.mutation.ClearPlanApprovedAt()
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *CommandUpdateOne) SetAgent(v *Agent) *CommandUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddTurnIDs adds the "turns" edge to the Turn entity by IDs.
func (_u *CommandUpdateOne) AddTurnIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the Turn entity.
func (_u *CommandUpdateOne) AddTurns(v ...*Turn) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CommandUpdateOne) AddEventIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CommandUpdateOne) AddEvents(v ...*Event) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *CommandUpdateOne) AddInferenceCallIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *CommandUpdateOne) AddInferenceCalls(v ...*InferenceCall) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the CommandMutation object of the builder.
func (_u *CommandUpdateOne) Mutation() *CommandMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *CommandUpdateOne) ClearAgent() *CommandUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTurns clears all "turns" edges to the Turn entity.
func (_u *CommandUpdateOne) ClearTurns() *CommandUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to Turn entities by IDs.
func (_u *CommandUpdateOne) RemoveTurnIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to Turn entities.
func (_u *CommandUpdateOne) RemoveTurns(v ...*Turn) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CommandUpdateOne) ClearEvents() *CommandUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CommandUpdateOne) RemoveEventIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CommandUpdateOne) RemoveEvents(v ...*Event) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *CommandUpdateOne) ClearInferenceCalls() *CommandUpdateOne {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *CommandUpdateOne) RemoveInferenceCallIDs(ids ...int) *CommandUpdateOne {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *CommandUpdateOne) RemoveInferenceCalls(v ...*InferenceCall) *CommandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Where appends a list predicates to the CommandUpdate builder.
func (_u *CommandUpdateOne) Where(ps ...predicate.Command) *CommandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommandUpdateOne) Select(field string, fields ...string) *CommandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Command entity.
func (_u *CommandUpdateOne) Save(ctx context.Context) (*Command, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandUpdateOne) SaveX(ctx context.Context) *Command {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommandUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := command.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Command.state": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Command.agent"`)
	}
	return nil
}

func (_u *CommandUpdateOne) sqlSave(ctx context.Context) (_node *Command, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(command.Table, command.Columns, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Command.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, command.FieldID)
		for _, f := range fields {
			if !command.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != command.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(command.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(command.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(command.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(command.FieldInstruction, field.TypeString, value)
	}
	if _u.mutation.InstructionCleared() {
		_spec.ClearField(command.FieldInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.CompletionSummary(); ok {
		_spec.SetField(command.FieldCompletionSummary, field.TypeString, value)
	}
	if _u.mutation.CompletionSummaryCleared() {
		_spec.ClearField(command.FieldCompletionSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FullCommand(); ok {
		_spec.SetField(command.FieldFullCommand, field.TypeString, value)
	}
	if _u.mutation.FullCommandCleared() {
		_spec.ClearField(command.FieldFullCommand, field.TypeString)
	}
	if value, ok := _u.mutation.FullOutput(); ok {
		_spec.SetField(command.FieldFullOutput, field.TypeString, value)
	}
	if _u.mutation.FullOutputCleared() {
		_spec.ClearField(command.FieldFullOutput, field.TypeString)
	}
	if value, ok := _u.mutation.PlanFilePath(); ok {
		_spec.SetField(command.FieldPlanFilePath, field.TypeString, value)
	}
	if _u.mutation.PlanFilePathCleared() {
		_spec.ClearField(command.FieldPlanFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.PlanContent(); ok {
		_spec.SetField(command.FieldPlanContent, field.TypeString, value)
	}
	if _u.mutation.PlanContentCleared() {
		_spec.ClearField(command.FieldPlanContent, field.TypeString)
	}
	if value, ok := _u.mutation.PlanApprovedAt(); ok {
		_spec.SetField(command.FieldPlanApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanApprovedAtCleared() {
		_spec.ClearField(command.FieldPlanApprovedAt, field.TypeTime)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Command{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{command.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
