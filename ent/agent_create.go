// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/handoff"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/project"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetSessionUUID sets the "session_uuid" field.
func (_c *AgentCreate) SetSessionUUID(v uuid.UUID) *AgentCreate {
	_c.mutation.SetSessionUUID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentCreate) SetProjectID(v int) *AgentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *AgentCreate) SetPersonaID(v int) *AgentCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePersonaID(v *int) *AgentCreate {
	if v != nil {
		_c.SetPersonaID(*v)
	}
	return _c
}

// SetPositionID sets the "position_id" field.
func (_c *AgentCreate) SetPositionID(v int) *AgentCreate {
	_c.mutation.SetPositionID(v)
	return _c
}

// SetNillablePositionID sets the "position_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePositionID(v *int) *AgentCreate {
	if v != nil {
		_c.SetPositionID(*v)
	}
	return _c
}

// SetPreviousAgentID sets the "previous_agent_id" field.
func (_c *AgentCreate) SetPreviousAgentID(v int) *AgentCreate {
	_c.mutation.SetPreviousAgentID(v)
	return _c
}

// SetNillablePreviousAgentID sets the "previous_agent_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePreviousAgentID(v *int) *AgentCreate {
	if v != nil {
		_c.SetPreviousAgentID(*v)
	}
	return _c
}

// SetTmuxSessionName sets the "tmux_session_name" field.
func (_c *AgentCreate) SetTmuxSessionName(v string) *AgentCreate {
	_c.mutation.SetTmuxSessionName(v)
	return _c
}

// SetNillableTmuxSessionName sets the "tmux_session_name" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTmuxSessionName(v *string) *AgentCreate {
	if v != nil {
		_c.SetTmuxSessionName(*v)
	}
	return _c
}

// SetTmuxPaneID sets the "tmux_pane_id" field.
func (_c *AgentCreate) SetTmuxPaneID(v string) *AgentCreate {
	_c.mutation.SetTmuxPaneID(v)
	return _c
}

// SetNillableTmuxPaneID sets the "tmux_pane_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTmuxPaneID(v *string) *AgentCreate {
	if v != nil {
		_c.SetTmuxPaneID(*v)
	}
	return _c
}

// SetLegacyWindowID sets the "legacy_window_id" field.
func (_c *AgentCreate) SetLegacyWindowID(v string) *AgentCreate {
	_c.mutation.SetLegacyWindowID(v)
	return _c
}

// SetNillableLegacyWindowID sets the "legacy_window_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLegacyWindowID(v *string) *AgentCreate {
	if v != nil {
		_c.SetLegacyWindowID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentCreate) SetStartedAt(v time.Time) *AgentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStartedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AgentCreate) SetLastSeenAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastSeenAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentCreate) SetEndedAt(v time.Time) *AgentCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEndedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetPromptInjectedAt sets the "prompt_injected_at" field.
func (_c *AgentCreate) SetPromptInjectedAt(v time.Time) *AgentCreate {
	_c.mutation.SetPromptInjectedAt(v)
	return _c
}

// SetNillablePromptInjectedAt sets the "prompt_injected_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePromptInjectedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetPromptInjectedAt(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *AgentCreate) SetPriorityScore(v int) *AgentCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePriorityScore(v *int) *AgentCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetPriorityReason sets the "priority_reason" field.
func (_c *AgentCreate) SetPriorityReason(v string) *AgentCreate {
	_c.mutation.SetPriorityReason(v)
	return _c
}

// SetNillablePriorityReason sets the "priority_reason" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePriorityReason(v *string) *AgentCreate {
	if v != nil {
		_c.SetPriorityReason(*v)
	}
	return _c
}

// SetPriorityUpdatedAt sets the "priority_updated_at" field.
func (_c *AgentCreate) SetPriorityUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetPriorityUpdatedAt(v)
	return _c
}

// SetNillablePriorityUpdatedAt sets the "priority_updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePriorityUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetPriorityUpdatedAt(*v)
	}
	return _c
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (_c *AgentCreate) SetContextPercentUsed(v int) *AgentCreate {
	_c.mutation.SetContextPercentUsed(v)
	return _c
}

// SetNillableContextPercentUsed sets the "context_percent_used" field if the given value is not nil.
func (_c *AgentCreate) SetNillableContextPercentUsed(v *int) *AgentCreate {
	if v != nil {
		_c.SetContextPercentUsed(*v)
	}
	return _c
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (_c *AgentCreate) SetContextRemainingTokens(v string) *AgentCreate {
	_c.mutation.SetContextRemainingTokens(v)
	return _c
}

// SetNillableContextRemainingTokens sets the "context_remaining_tokens" field if the given value is not nil.
func (_c *AgentCreate) SetNillableContextRemainingTokens(v *string) *AgentCreate {
	if v != nil {
		_c.SetContextRemainingTokens(*v)
	}
	return _c
}

// SetContextUpdatedAt sets the "context_updated_at" field.
func (_c *AgentCreate) SetContextUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetContextUpdatedAt(v)
	return _c
}

// SetNillableContextUpdatedAt sets the "context_updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableContextUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetContextUpdatedAt(*v)
	}
	return _c
}

// SetGuardrailsVersionHash sets the "guardrails_version_hash" field.
func (_c *AgentCreate) SetGuardrailsVersionHash(v string) *AgentCreate {
	_c.mutation.SetGuardrailsVersionHash(v)
	return _c
}

// SetNillableGuardrailsVersionHash sets the "guardrails_version_hash" field if the given value is not nil.
func (_c *AgentCreate) SetNillableGuardrailsVersionHash(v *string) *AgentCreate {
	if v != nil {
		_c.SetGuardrailsVersionHash(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentCreate) SetProject(v *Project) *AgentCreate {
	return _c.SetProjectID(v.ID)
}

// SetPersona sets the "persona" edge to the Persona entity.
func (_c *AgentCreate) SetPersona(v *Persona) *AgentCreate {
	return _c.SetPersonaID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_c *AgentCreate) SetPosition(v *Position) *AgentCreate {
	return _c.SetPositionID(v.ID)
}

// SetPreviousAgent sets the "previous_agent" edge to the Agent entity.
func (_c *AgentCreate) SetPreviousAgent(v *Agent) *AgentCreate {
	return _c.SetPreviousAgentID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the Agent entity by IDs.
func (_c *AgentCreate) AddSuccessorIDs(ids ...int) *AgentCreate {
	_c.mutation.AddSuccessorIDs(ids...)
	return _c
}

// AddSuccessors adds the "successors" edges to the Agent entity.
func (_c *AgentCreate) AddSuccessors(v ...*Agent) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuccessorIDs(ids...)
}

// AddCommandIDs adds the "commands" edge to the Command entity by IDs.
func (_c *AgentCreate) AddCommandIDs(ids ...int) *AgentCreate {
	_c.mutation.AddCommandIDs(ids...)
	return _c
}

// AddCommands adds the "commands" edges to the Command entity.
func (_c *AgentCreate) AddCommands(v ...*Command) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommandIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AgentCreate) AddEventIDs(ids ...int) *AgentCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AgentCreate) AddEvents(v ...*Event) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetHandoffID sets the "handoff" edge to the Handoff entity by ID.
func (_c *AgentCreate) SetHandoffID(id int) *AgentCreate {
	_c.mutation.SetHandoffID(id)
	return _c
}

// SetNillableHandoffID sets the "handoff" edge to the Handoff entity by ID if the given value is not nil.
func (_c *AgentCreate) SetNillableHandoffID(id *int) *AgentCreate {
	if id != nil {
		_c = _c.SetHandoffID(*id)
	}
	return _c
}

// SetHandoff sets the "handoff" edge to the Handoff entity.
func (_c *AgentCreate) SetHandoff(v *Handoff) *AgentCreate {
	return _c.SetHandoffID(v.ID)
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (_c *AgentCreate) AddActivityMetricIDs(ids ...int) *AgentCreate {
	_c.mutation.AddActivityMetricIDs(ids...)
	return _c
}

// AddActivityMetrics adds the "activity_metrics" edges to the ActivityMetric entity.
func (_c *AgentCreate) AddActivityMetrics(v ...*ActivityMetric) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityMetricIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the HeadspaceSnapshot entity by IDs.
func (_c *AgentCreate) AddSnapshotIDs(ids ...int) *AgentCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the HeadspaceSnapshot entity.
func (_c *AgentCreate) AddSnapshots(v ...*HeadspaceSnapshot) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_c *AgentCreate) AddInferenceCallIDs(ids ...int) *AgentCreate {
	_c.mutation.AddInferenceCallIDs(ids...)
	return _c
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_c *AgentCreate) AddInferenceCalls(v ...*InferenceCall) *AgentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInferenceCallIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agent.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := agent.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.SessionUUID(); !ok {
		return &ValidationError{Name: "session_uuid", err: errors.New(`ent: missing required field "Agent.session_uuid"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Agent.project_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Agent.started_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Agent.last_seen_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Agent.project"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionUUID(); ok {
		_spec.SetField(agent.FieldSessionUUID, field.TypeUUID, value)
		_node.SessionUUID = value
	}
	if value, ok := _c.mutation.TmuxSessionName(); ok {
		_spec.SetField(agent.FieldTmuxSessionName, field.TypeString, value)
		_node.TmuxSessionName = &value
	}
	if value, ok := _c.mutation.TmuxPaneID(); ok {
		_spec.SetField(agent.FieldTmuxPaneID, field.TypeString, value)
		_node.TmuxPaneID = &value
	}
	if value, ok := _c.mutation.LegacyWindowID(); ok {
		_spec.SetField(agent.FieldLegacyWindowID, field.TypeString, value)
		_node.LegacyWindowID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agent.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agent.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.PromptInjectedAt(); ok {
		_spec.SetField(agent.FieldPromptInjectedAt, field.TypeTime, value)
		_node.PromptInjectedAt = &value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(agent.FieldPriorityScore, field.TypeInt, value)
		_node.PriorityScore = &value
	}
	if value, ok := _c.mutation.PriorityReason(); ok {
		_spec.SetField(agent.FieldPriorityReason, field.TypeString, value)
		_node.PriorityReason = &value
	}
	if value, ok := _c.mutation.PriorityUpdatedAt(); ok {
		_spec.SetField(agent.FieldPriorityUpdatedAt, field.TypeTime, value)
		_node.PriorityUpdatedAt = &value
	}
	if value, ok := _c.mutation.ContextPercentUsed(); ok {
		_spec.SetField(agent.FieldContextPercentUsed, field.TypeInt, value)
		_node.ContextPercentUsed = &value
	}
	if value, ok := _c.mutation.ContextRemainingTokens(); ok {
		_spec.SetField(agent.FieldContextRemainingTokens, field.TypeString, value)
		_node.ContextRemainingTokens = &value
	}
	if value, ok := _c.mutation.ContextUpdatedAt(); ok {
		_spec.SetField(agent.FieldContextUpdatedAt, field.TypeTime, value)
		_node.ContextUpdatedAt = &value
	}
	if value, ok := _c.mutation.GuardrailsVersionHash(); ok {
		_spec.SetField(agent.FieldGuardrailsVersionHash, field.TypeString, value)
		_node.GuardrailsVersionHash = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.ProjectTable,
			Columns: []string{agent.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PersonaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.PersonaTable,
			Columns: []string{agent.PersonaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(persona.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PersonaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PositionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.PositionTable,
			Columns: []string{agent.PositionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PositionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PreviousAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.PreviousAgentTable,
			Columns: []string{agent.PreviousAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PreviousAgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuccessorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SuccessorsTable,
			Columns: []string{agent.SuccessorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CommandsTable,
			Columns: []string{agent.CommandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt),
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
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
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
	if nodes := _c.mutation.HandoffIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.HandoffTable,
			Columns: []string{agent.HandoffColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(handoff.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivityMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ActivityMetricsTable,
			Columns: []string{agent.ActivityMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activitymetric.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SnapshotsTable,
			Columns: []string{agent.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(headspacesnapshot.FieldID, field.TypeInt),
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
			Table:   agent.InferenceCallsTable,
			Columns: []string{agent.InferenceCallsColumn},
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

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
