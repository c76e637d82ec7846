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
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/handoff"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/project"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentUpdate) SetProjectID(v int) *AgentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProjectID(v *int) *AgentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPersonaID sets the "persona_id" field.
func (_u *AgentUpdate) SetPersonaID(v int) *AgentUpdate {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePersonaID(v *int) *AgentUpdate {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *AgentUpdate) ClearPersonaID() *AgentUpdate {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetPositionID sets the "position_id" field.
func (_u *AgentUpdate) SetPositionID(v int) *AgentUpdate {
	_u.mutation.SetPositionID(v)
	return _u
}

// SetNillablePositionID sets the "position_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePositionID(v *int) *AgentUpdate {
	if v != nil {
		_u.SetPositionID(*v)
	}
	return _u
}

// ClearPositionID clears the value of the "position_id" field.
func (_u *AgentUpdate) ClearPositionID() *AgentUpdate {
	_u.mutation.ClearPositionID()
	return _u
}

// SetPreviousAgentID sets the "previous_agent_id" field.
func (_u *AgentUpdate) SetPreviousAgentID(v int) *AgentUpdate {
	_u.mutation.SetPreviousAgentID(v)
	return _u
}

// SetNillablePreviousAgentID sets the "previous_agent_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePreviousAgentID(v *int) *AgentUpdate {
	if v != nil {
		_u.SetPreviousAgentID(*v)
	}
	return _u
}

// ClearPreviousAgentID clears the value of the "previous_agent_id" field.
func (_u *AgentUpdate) ClearPreviousAgentID() *AgentUpdate {
	_u.mutation.ClearPreviousAgentID()
	return _u
}

// SetTmuxSessionName sets the "tmux_session_name" field.
func (_u *AgentUpdate) SetTmuxSessionName(v string) *AgentUpdate {
	_u.mutation.SetTmuxSessionName(v)
	return _u
}

// SetNillableTmuxSessionName sets the "tmux_session_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTmuxSessionName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTmuxSessionName(*v)
	}
	return _u
}

// ClearTmuxSessionName clears the value of the "tmux_session_name" field.
func (_u *AgentUpdate) ClearTmuxSessionName() *AgentUpdate {
	_u.mutation.ClearTmuxSessionName()
	return _u
}

// SetTmuxPaneID sets the "tmux_pane_id" field.
func (_u *AgentUpdate) SetTmuxPaneID(v string) *AgentUpdate {
	_u.mutation.SetTmuxPaneID(v)
	return _u
}

// SetNillableTmuxPaneID sets the "tmux_pane_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTmuxPaneID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTmuxPaneID(*v)
	}
	return _u
}

// ClearTmuxPaneID clears the value of the "tmux_pane_id" field.
func (_u *AgentUpdate) ClearTmuxPaneID() *AgentUpdate {
	_u.mutation.ClearTmuxPaneID()
	return _u
}

// SetLegacyWindowID sets the "legacy_window_id" field.
func (_u *AgentUpdate) SetLegacyWindowID(v string) *AgentUpdate {
	_u.mutation.SetLegacyWindowID(v)
	return _u
}

// SetNillableLegacyWindowID sets the "legacy_window_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLegacyWindowID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetLegacyWindowID(*v)
	}
	return _u
}

// ClearLegacyWindowID clears the value of the "legacy_window_id" field.
func (_u *AgentUpdate) ClearLegacyWindowID() *AgentUpdate {
	_u.mutation.ClearLegacyWindowID()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdate) SetLastSeenAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastSeenAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentUpdate) SetEndedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEndedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentUpdate) ClearEndedAt() *AgentUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPromptInjectedAt sets the "prompt_injected_at" field.
func (_u *AgentUpdate) SetPromptInjectedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetPromptInjectedAt(v)
	return _u
}

// SetNillablePromptInjectedAt sets the "prompt_injected_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePromptInjectedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetPromptInjectedAt(*v)
	}
	return _u
}

// ClearPromptInjectedAt clears the value of the "prompt_injected_at" field.
func (_u *AgentUpdate) ClearPromptInjectedAt() *AgentUpdate {
	_u.mutation.ClearPromptInjectedAt()
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *AgentUpdate) SetPriorityScore(v int) *AgentUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePriorityScore(v *int) *AgentUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *AgentUpdate) AddPriorityScore(v int) *AgentUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// ClearPriorityScore clears the value of the "priority_score" field.
func (_u *AgentUpdate) ClearPriorityScore() *AgentUpdate {
	_u.mutation.ClearPriorityScore()
	return _u
}

// SetPriorityReason sets the "priority_reason" field.
func (_u *AgentUpdate) SetPriorityReason(v string) *AgentUpdate {
	_u.mutation.SetPriorityReason(v)
	return _u
}

// SetNillablePriorityReason sets the "priority_reason" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePriorityReason(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPriorityReason(*v)
	}
	return _u
}

// ClearPriorityReason clears the value of the "priority_reason" field.
func (_u *AgentUpdate) ClearPriorityReason() *AgentUpdate {
	_u.mutation.ClearPriorityReason()
	return _u
}

// SetPriorityUpdatedAt sets the "priority_updated_at" field.
func (_u *AgentUpdate) SetPriorityUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetPriorityUpdatedAt(v)
	return _u
}

// SetNillablePriorityUpdatedAt sets the "priority_updated_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePriorityUpdatedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetPriorityUpdatedAt(*v)
	}
	return _u
}

// ClearPriorityUpdatedAt clears the value of the "priority_updated_at" field.
func (_u *AgentUpdate) ClearPriorityUpdatedAt() *AgentUpdate {
	_u.mutation.ClearPriorityUpdatedAt()
	return _u
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (_u *AgentUpdate) SetContextPercentUsed(v int) *AgentUpdate {
	_u.mutation.ResetContextPercentUsed()
	_u.mutation.SetContextPercentUsed(v)
	return _u
}

// SetNillableContextPercentUsed sets the "context_percent_used" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableContextPercentUsed(v *int) *AgentUpdate {
	if v != nil {
		_u.SetContextPercentUsed(*v)
	}
	return _u
}

// AddContextPercentUsed adds value to the "context_percent_used" field.
func (_u *AgentUpdate) AddContextPercentUsed(v int) *AgentUpdate {
	_u.mutation.AddContextPercentUsed(v)
	return _u
}

// ClearContextPercentUsed clears the value of the "context_percent_used" field.
func (_u *AgentUpdate) ClearContextPercentUsed() *AgentUpdate {
	_u.mutation.ClearContextPercentUsed()
	return _u
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (_u *AgentUpdate) SetContextRemainingTokens(v string) *AgentUpdate {
	_u.mutation.SetContextRemainingTokens(v)
	return _u
}

// SetNillableContextRemainingTokens sets the "context_remaining_tokens" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableContextRemainingTokens(v *string) *AgentUpdate {
	if v != nil {
		_u.SetContextRemainingTokens(*v)
	}
	return _u
}

// ClearContextRemainingTokens clears the value of the "context_remaining_tokens" field.
func (_u *AgentUpdate) ClearContextRemainingTokens() *AgentUpdate {
	_u.mutation.ClearContextRemainingTokens()
	return _u
}

// SetContextUpdatedAt sets the "context_updated_at" field.
func (_u *AgentUpdate) SetContextUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetContextUpdatedAt(v)
	return _u
}

// SetNillableContextUpdatedAt sets the "context_updated_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableContextUpdatedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetContextUpdatedAt(*v)
	}
	return _u
}

// ClearContextUpdatedAt clears the value of the "context_updated_at" field.
func (_u *AgentUpdate) ClearContextUpdatedAt() *AgentUpdate {
	_u.mutation.ClearContextUpdatedAt()
	return _u
}

// SetGuardrailsVersionHash sets the "guardrails_version_hash" field.
func (_u *AgentUpdate) SetGuardrailsVersionHash(v string) *AgentUpdate {
	_u.mutation.SetGuardrailsVersionHash(v)
	return _u
}

// SetNillableGuardrailsVersionHash sets the "guardrails_version_hash" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableGuardrailsVersionHash(v *string) *AgentUpdate {
	if v != nil {
		_u.SetGuardrailsVersionHash(*v)
	}
	return _u
}

// ClearGuardrailsVersionHash clears the value of the "guardrails_version_hash" field.
func (_u *AgentUpdate) ClearGuardrailsVersionHash() *AgentUpdate {
	_u.mutation.ClearGuardrailsVersionHash()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentUpdate) SetProject(v *Project) *AgentUpdate {
	return _u.SetProjectID(v.ID)
}

// SetPersona sets the "persona" edge to the Persona entity.
func (_u *AgentUpdate) SetPersona(v *Persona) *AgentUpdate {
	return _u.SetPersonaID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_u *AgentUpdate) SetPosition(v *Position) *AgentUpdate {
	return _u.SetPositionID(v.ID)
}

// SetPreviousAgent sets the "previous_agent" edge to the Agent entity.
func (_u *AgentUpdate) SetPreviousAgent(v *Agent) *AgentUpdate {
	return _u.SetPreviousAgentID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the Agent entity by IDs.
func (_u *AgentUpdate) AddSuccessorIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddSuccessorIDs(ids...)
	return _u
}

// AddSuccessors adds the "successors" edges to the Agent entity.
func (_u *AgentUpdate) AddSuccessors(v ...*Agent) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuccessorIDs(ids...)
}

// AddCommandIDs adds the "commands" edge to the Command entity by IDs.
func (_u *AgentUpdate) AddCommandIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddCommandIDs(ids...)
	return _u
}

// AddCommands adds the "commands" edges to the Command entity.
func (_u *AgentUpdate) AddCommands(v ...*Command) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentUpdate) AddEventIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentUpdate) AddEvents(v ...*Event) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetHandoffID sets the "handoff" edge to the Handoff entity by ID.
func (_u *AgentUpdate) SetHandoffID(id int) *AgentUpdate {
	_u.mutation.SetHandoffID(id)
	return _u
}

// SetNillableHandoffID sets the "handoff" edge to the Handoff entity by ID if the given value is not nil.
func (_u *AgentUpdate) SetNillableHandoffID(id *int) *AgentUpdate {
	if id != nil {
		_u = _u.SetHandoffID(*id)
	}
	return _u
}

// SetHandoff sets the "handoff" edge to the Handoff entity.
func (_u *AgentUpdate) SetHandoff(v *Handoff) *AgentUpdate {
	return _u.SetHandoffID(v.ID)
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (_u *AgentUpdate) AddActivityMetricIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddActivityMetricIDs(ids...)
	return _u
}

// AddActivityMetrics adds the "activity_metrics" edges to the ActivityMetric entity.
func (_u *AgentUpdate) AddActivityMetrics(v ...*ActivityMetric) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityMetricIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the HeadspaceSnapshot entity by IDs.
func (_u *AgentUpdate) AddSnapshotIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the HeadspaceSnapshot entity.
func (_u *AgentUpdate) AddSnapshots(v ...*HeadspaceSnapshot) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *AgentUpdate) AddInferenceCallIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *AgentUpdate) AddInferenceCalls(v ...*InferenceCall) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentUpdate) ClearProject() *AgentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearPersona clears the "persona" edge to the Persona entity.
func (_u *AgentUpdate) ClearPersona() *AgentUpdate {
	_u.mutation.ClearPersona()
	return _u
}

// ClearPosition clears the "position" edge to the Position entity.
func (_u *AgentUpdate) ClearPosition() *AgentUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// ClearPreviousAgent clears the "previous_agent" edge to the Agent entity.
func (_u *AgentUpdate) ClearPreviousAgent() *AgentUpdate {
	_u.mutation.ClearPreviousAgent()
	return _u
}

// ClearSuccessors clears all "successors" edges to the Agent entity.
func (_u *AgentUpdate) ClearSuccessors() *AgentUpdate {
	_u.mutation.ClearSuccessors()
	return _u
}

// RemoveSuccessorIDs removes the "successors" edge to Agent entities by IDs.
func (_u *AgentUpdate) RemoveSuccessorIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveSuccessorIDs(ids...)
	return _u
}

// RemoveSuccessors removes "successors" edges to Agent entities.
func (_u *AgentUpdate) RemoveSuccessors(v ...*Agent) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuccessorIDs(ids...)
}

// ClearCommands clears all "commands" edges to the Command entity.
func (_u *AgentUpdate) ClearCommands() *AgentUpdate {
	_u.mutation.ClearCommands()
	return _u
}

// RemoveCommandIDs removes the "commands" edge to Command entities by IDs.
func (_u *AgentUpdate) RemoveCommandIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveCommandIDs(ids...)
	return _u
}

// RemoveCommands removes "commands" edges to Command entities.
func (_u *AgentUpdate) RemoveCommands(v ...*Command) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentUpdate) ClearEvents() *AgentUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentUpdate) RemoveEventIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentUpdate) RemoveEvents(v ...*Event) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearHandoff clears the "handoff" edge to the Handoff entity.
func (_u *AgentUpdate) ClearHandoff() *AgentUpdate {
	_u.mutation.ClearHandoff()
	return _u
}

// ClearActivityMetrics clears all "activity_metrics" edges to the ActivityMetric entity.
func (_u *AgentUpdate) ClearActivityMetrics() *AgentUpdate {
	_u.mutation.ClearActivityMetrics()
	return _u
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to ActivityMetric entities by IDs.
func (_u *AgentUpdate) RemoveActivityMetricIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveActivityMetricIDs(ids...)
	return _u
}

// RemoveActivityMetrics removes "activity_metrics" edges to ActivityMetric entities.
func (_u *AgentUpdate) RemoveActivityMetrics(v ...*ActivityMetric) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityMetricIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the HeadspaceSnapshot entity.
func (_u *AgentUpdate) ClearSnapshots() *AgentUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to HeadspaceSnapshot entities by IDs.
func (_u *AgentUpdate) RemoveSnapshotIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to HeadspaceSnapshot entities.
func (_u *AgentUpdate) RemoveSnapshots(v ...*HeadspaceSnapshot) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *AgentUpdate) ClearInferenceCalls() *AgentUpdate {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *AgentUpdate) RemoveInferenceCallIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *AgentUpdate) RemoveInferenceCalls(v ...*InferenceCall) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TmuxSessionName(); ok {
		_spec.SetField(agent.FieldTmuxSessionName, field.TypeString, value)
	}
	if _u.mutation.TmuxSessionNameCleared() {
		_spec.ClearField(agent.FieldTmuxSessionName, field.TypeString)
	}
	if value, ok := _u.mutation.TmuxPaneID(); ok {
		_spec.SetField(agent.FieldTmuxPaneID, field.TypeString, value)
	}
	if _u.mutation.TmuxPaneIDCleared() {
		_spec.ClearField(agent.FieldTmuxPaneID, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyWindowID(); ok {
		_spec.SetField(agent.FieldLegacyWindowID, field.TypeString, value)
	}
	if _u.mutation.LegacyWindowIDCleared() {
		_spec.ClearField(agent.FieldLegacyWindowID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agent.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agent.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptInjectedAt(); ok {
		_spec.SetField(agent.FieldPromptInjectedAt, field.TypeTime, value)
	}
	if _u.mutation.PromptInjectedAtCleared() {
		_spec.ClearField(agent.FieldPromptInjectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(agent.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(agent.FieldPriorityScore, field.TypeInt, value)
	}
	if _u.mutation.PriorityScoreCleared() {
		_spec.ClearField(agent.FieldPriorityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorityReason(); ok {
		_spec.SetField(agent.FieldPriorityReason, field.TypeString, value)
	}
	if _u.mutation.PriorityReasonCleared() {
		_spec.ClearField(agent.FieldPriorityReason, field.TypeString)
	}
	if value, ok := _u.mutation.PriorityUpdatedAt(); ok {
		_spec.SetField(agent.FieldPriorityUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PriorityUpdatedAtCleared() {
		_spec.ClearField(agent.FieldPriorityUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContextPercentUsed(); ok {
		_spec.SetField(agent.FieldContextPercentUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextPercentUsed(); ok {
		_spec.AddField(agent.FieldContextPercentUsed, field.TypeInt, value)
	}
	if _u.mutation.ContextPercentUsedCleared() {
		_spec.ClearField(agent.FieldContextPercentUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextRemainingTokens(); ok {
		_spec.SetField(agent.FieldContextRemainingTokens, field.TypeString, value)
	}
	if _u.mutation.ContextRemainingTokensCleared() {
		_spec.ClearField(agent.FieldContextRemainingTokens, field.TypeString)
	}
	if value, ok := _u.mutation.ContextUpdatedAt(); ok {
		_spec.SetField(agent.FieldContextUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContextUpdatedAtCleared() {
		_spec.ClearField(agent.FieldContextUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GuardrailsVersionHash(); ok {
		_spec.SetField(agent.FieldGuardrailsVersionHash, field.TypeString, value)
	}
	if _u.mutation.GuardrailsVersionHashCleared() {
		_spec.ClearField(agent.FieldGuardrailsVersionHash, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PreviousAgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PreviousAgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuccessorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuccessorsIDs(); len(nodes) > 0 && !_u.mutation.SuccessorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuccessorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandsIDs(); len(nodes) > 0 && !_u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HandoffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HandoffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivityMetricsIDs(); len(nodes) > 0 && !_u.mutation.ActivityMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *AgentUpdateOne) SetProjectID(v int) *AgentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProjectID(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPersonaID sets the "persona_id" field.
func (_u *AgentUpdateOne) SetPersonaID(v int) *AgentUpdateOne {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePersonaID(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *AgentUpdateOne) ClearPersonaID() *AgentUpdateOne {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetPositionID sets the "position_id" field.
func (_u *AgentUpdateOne) SetPositionID(v int) *AgentUpdateOne {
	_u.mutation.SetPositionID(v)
	return _u
}

// SetNillablePositionID sets the "position_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePositionID(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetPositionID(*v)
	}
	return _u
}

// ClearPositionID clears the value of the "position_id" field.
func (_u *AgentUpdateOne) ClearPositionID() *AgentUpdateOne {
	_u.mutation.ClearPositionID()
	return _u
}

// SetPreviousAgentID sets the "previous_agent_id" field.
func (_u *AgentUpdateOne) SetPreviousAgentID(v int) *AgentUpdateOne {
	_u.mutation.SetPreviousAgentID(v)
	return _u
}

// SetNillablePreviousAgentID sets the "previous_agent_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePreviousAgentID(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetPreviousAgentID(*v)
	}
	return _u
}

// ClearPreviousAgentID clears the value of the "previous_agent_id" field.
func (_u *AgentUpdateOne) ClearPreviousAgentID() *AgentUpdateOne {
	_u.mutation.ClearPreviousAgentID()
	return _u
}

// SetTmuxSessionName sets the "tmux_session_name" field.
func (_u *AgentUpdateOne) SetTmuxSessionName(v string) *AgentUpdateOne {
	_u.mutation.SetTmuxSessionName(v)
	return _u
}

// SetNillableTmuxSessionName sets the "tmux_session_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTmuxSessionName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTmuxSessionName(*v)
	}
	return _u
}

// ClearTmuxSessionName clears the value of the "tmux_session_name" field.
func (_u *AgentUpdateOne) ClearTmuxSessionName() *AgentUpdateOne {
	_u.mutation.ClearTmuxSessionName()
	return _u
}

// SetTmuxPaneID sets the "tmux_pane_id" field.
func (_u *AgentUpdateOne) SetTmuxPaneID(v string) *AgentUpdateOne {
	_u.mutation.SetTmuxPaneID(v)
	return _u
}

// SetNillableTmuxPaneID sets the "tmux_pane_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTmuxPaneID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTmuxPaneID(*v)
	}
	return _u
}

// ClearTmuxPaneID clears the value of the "tmux_pane_id" field.
func (_u *AgentUpdateOne) ClearTmuxPaneID() *AgentUpdateOne {
	_u.mutation.ClearTmuxPaneID()
	return _u
}

// SetLegacyWindowID sets the "legacy_window_id" field.
func (_u *AgentUpdateOne) SetLegacyWindowID(v string) *AgentUpdateOne {
	_u.mutation.SetLegacyWindowID(v)
	return _u
}

// SetNillableLegacyWindowID sets the "legacy_window_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLegacyWindowID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetLegacyWindowID(*v)
	}
	return _u
}

// ClearLegacyWindowID clears the value of the "legacy_window_id" field.
func (_u *AgentUpdateOne) ClearLegacyWindowID() *AgentUpdateOne {
	_u.mutation.ClearLegacyWindowID()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdateOne) SetLastSeenAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastSeenAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentUpdateOne) SetEndedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEndedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentUpdateOne) ClearEndedAt() *AgentUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetPromptInjectedAt sets the "prompt_injected_at" field.
func (_u *AgentUpdateOne) SetPromptInjectedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetPromptInjectedAt(v)
	return _u
}

// SetNillablePromptInjectedAt sets the "prompt_injected_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePromptInjectedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetPromptInjectedAt(*v)
	}
	return _u
}

// ClearPromptInjectedAt clears the value of the "prompt_injected_at" field.
func (_u *AgentUpdateOne) ClearPromptInjectedAt() *AgentUpdateOne {
	_u.mutation.ClearPromptInjectedAt()
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *AgentUpdateOne) SetPriorityScore(v int) *AgentUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePriorityScore(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *AgentUpdateOne) AddPriorityScore(v int) *AgentUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// ClearPriorityScore clears the value of the "priority_score" field.
func (_u *AgentUpdateOne) ClearPriorityScore() *AgentUpdateOne {
	_u.mutation.ClearPriorityScore()
	return _u
}

// SetPriorityReason sets the "priority_reason" field.
func (_u *AgentUpdateOne) SetPriorityReason(v string) *AgentUpdateOne {
	_u.mutation.SetPriorityReason(v)
	return _u
}

// SetNillablePriorityReason sets the "priority_reason" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePriorityReason(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPriorityReason(*v)
	}
	return _u
}

// ClearPriorityReason clears the value of the "priority_reason" field.
func (_u *AgentUpdateOne) ClearPriorityReason() *AgentUpdateOne {
	_u.mutation.ClearPriorityReason()
	return _u
}

// SetPriorityUpdatedAt sets the "priority_updated_at" field.
func (_u *AgentUpdateOne) SetPriorityUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetPriorityUpdatedAt(v)
	return _u
}

// SetNillablePriorityUpdatedAt sets the "priority_updated_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePriorityUpdatedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetPriorityUpdatedAt(*v)
	}
	return _u
}

// ClearPriorityUpdatedAt clears the value of the "priority_updated_at" field.
func (_u *AgentUpdateOne) ClearPriorityUpdatedAt() *AgentUpdateOne {
	_u.mutation.ClearPriorityUpdatedAt()
	return _u
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (_u *AgentUpdateOne) SetContextPercentUsed(v int) *AgentUpdateOne {
	_u.mutation.ResetContextPercentUsed()
	_u.mutation.SetContextPercentUsed(v)
	return _u
}

// SetNillableContextPercentUsed sets the "context_percent_used" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableContextPercentUsed(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetContextPercentUsed(*v)
	}
	return _u
}

// AddContextPercentUsed adds value to the "context_percent_used" field.
func (_u *AgentUpdateOne) AddContextPercentUsed(v int) *AgentUpdateOne {
	_u.mutation.AddContextPercentUsed(v)
	return _u
}

// ClearContextPercentUsed clears the value of the "context_percent_used" field.
func (_u *AgentUpdateOne) ClearContextPercentUsed() *AgentUpdateOne {
	_u.mutation.ClearContextPercentUsed()
	return _u
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (_u *AgentUpdateOne) SetContextRemainingTokens(v string) *AgentUpdateOne {
	_u.mutation.SetContextRemainingTokens(v)
	return _u
}

// SetNillableContextRemainingTokens sets the "context_remaining_tokens" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableContextRemainingTokens(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetContextRemainingTokens(*v)
	}
	return _u
}

// ClearContextRemainingTokens clears the value of the "context_remaining_tokens" field.
func (_u *AgentUpdateOne) ClearContextRemainingTokens() *AgentUpdateOne {
	_u.mutation.ClearContextRemainingTokens()
	return _u
}

// SetContextUpdatedAt sets the "context_updated_at" field.
func (_u *AgentUpdateOne) SetContextUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetContextUpdatedAt(v)
	return _u
}

// SetNillableContextUpdatedAt sets the "context_updated_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableContextUpdatedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetContextUpdatedAt(*v)
	}
	return _u
}

// ClearContextUpdatedAt clears the value of the "context_updated_at" field.
func (_u *AgentUpdateOne) ClearContextUpdatedAt() *AgentUpdateOne {
	_u.mutation.ClearContextUpdatedAt()
	return _u
}

// SetGuardrailsVersionHash sets the "guardrails_version_hash" field.
func (_u *AgentUpdateOne) SetGuardrailsVersionHash(v string) *AgentUpdateOne {
	_u.mutation.SetGuardrailsVersionHash(v)
	return _u
}

// SetNillableGuardrailsVersionHash sets the "guardrails_version_hash" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableGuardrailsVersionHash(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetGuardrailsVersionHash(*v)
	}
	return _u
}

// ClearGuardrailsVersionHash clears the value of the "guardrails_version_hash" field.
func (_u *AgentUpdateOne) ClearGuardrailsVersionHash() *AgentUpdateOne {
	_u.mutation.ClearGuardrailsVersionHash()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentUpdateOne) SetProject(v *Project) *AgentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetPersona sets the "persona" edge to the Persona entity.
func (_u *AgentUpdateOne) SetPersona(v *Persona) *AgentUpdateOne {
	return _u.SetPersonaID(v.ID)
}

// SetPosition sets the "position" edge to the Position entity.
func (_u *AgentUpdateOne) SetPosition(v *Position) *AgentUpdateOne {
	return _u.SetPositionID(v.ID)
}

// SetPreviousAgent sets the "previous_agent" edge to the Agent entity.
func (_u *AgentUpdateOne) SetPreviousAgent(v *Agent) *AgentUpdateOne {
	return _u.SetPreviousAgentID(v.ID)
}

// AddSuccessorIDs adds the "successors" edge to the Agent entity by IDs.
func (_u *AgentUpdateOne) AddSuccessorIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddSuccessorIDs(ids...)
	return _u
}

// AddSuccessors adds the "successors" edges to the Agent entity.
func (_u *AgentUpdateOne) AddSuccessors(v ...*Agent) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuccessorIDs(ids...)
}

// AddCommandIDs adds the "commands" edge to the Command entity by IDs.
func (_u *AgentUpdateOne) AddCommandIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddCommandIDs(ids...)
	return _u
}

// AddCommands adds the "commands" edges to the Command entity.
func (_u *AgentUpdateOne) AddCommands(v ...*Command) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommandIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentUpdateOne) AddEventIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentUpdateOne) AddEvents(v ...*Event) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetHandoffID sets the "handoff" edge to the Handoff entity by ID.
func (_u *AgentUpdateOne) SetHandoffID(id int) *AgentUpdateOne {
	_u.mutation.SetHandoffID(id)
	return _u
}

// SetNillableHandoffID sets the "handoff" edge to the Handoff entity by ID if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableHandoffID(id *int) *AgentUpdateOne {
	if id != nil {
		_u = _u.SetHandoffID(*id)
	}
	return _u
}

// SetHandoff sets the "handoff" edge to the Handoff entity.
func (_u *AgentUpdateOne) SetHandoff(v *Handoff) *AgentUpdateOne {
	return _u.SetHandoffID(v.ID)
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (_u *AgentUpdateOne) AddActivityMetricIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddActivityMetricIDs(ids...)
	return _u
}

// AddActivityMetrics adds the "activity_metrics" edges to the ActivityMetric entity.
func (_u *AgentUpdateOne) AddActivityMetrics(v ...*ActivityMetric) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityMetricIDs(ids...)
}

// AddSnapshotIDs adds the "snapshots" edge to the HeadspaceSnapshot entity by IDs.
func (_u *AgentUpdateOne) AddSnapshotIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the HeadspaceSnapshot entity.
func (_u *AgentUpdateOne) AddSnapshots(v ...*HeadspaceSnapshot) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *AgentUpdateOne) AddInferenceCallIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *AgentUpdateOne) AddInferenceCalls(v ...*InferenceCall) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentUpdateOne) ClearProject() *AgentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearPersona clears the "persona" edge to the Persona entity.
func (_u *AgentUpdateOne) ClearPersona() *AgentUpdateOne {
	_u.mutation.ClearPersona()
	return _u
}

// ClearPosition clears the "position" edge to the Position entity.
func (_u *AgentUpdateOne) ClearPosition() *AgentUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// ClearPreviousAgent clears the "previous_agent" edge to the Agent entity.
func (_u *AgentUpdateOne) ClearPreviousAgent() *AgentUpdateOne {
	_u.mutation.ClearPreviousAgent()
	return _u
}

// ClearSuccessors clears all "successors" edges to the Agent entity.
func (_u *AgentUpdateOne) ClearSuccessors() *AgentUpdateOne {
	_u.mutation.ClearSuccessors()
	return _u
}

// RemoveSuccessorIDs removes the "successors" edge to Agent entities by IDs.
func (_u *AgentUpdateOne) RemoveSuccessorIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveSuccessorIDs(ids...)
	return _u
}

// RemoveSuccessors removes "successors" edges to Agent entities.
func (_u *AgentUpdateOne) RemoveSuccessors(v ...*Agent) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuccessorIDs(ids...)
}

// ClearCommands clears all "commands" edges to the Command entity.
func (_u *AgentUpdateOne) ClearCommands() *AgentUpdateOne {
	_u.mutation.ClearCommands()
	return _u
}

// RemoveCommandIDs removes the "commands" edge to Command entities by IDs.
func (_u *AgentUpdateOne) RemoveCommandIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveCommandIDs(ids...)
	return _u
}

// RemoveCommands removes "commands" edges to Command entities.
func (_u *AgentUpdateOne) RemoveCommands(v ...*Command) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommandIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentUpdateOne) ClearEvents() *AgentUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentUpdateOne) RemoveEventIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentUpdateOne) RemoveEvents(v ...*Event) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearHandoff clears the "handoff" edge to the Handoff entity.
func (_u *AgentUpdateOne) ClearHandoff() *AgentUpdateOne {
	_u.mutation.ClearHandoff()
	return _u
}

// ClearActivityMetrics clears all "activity_metrics" edges to the ActivityMetric entity.
func (_u *AgentUpdateOne) ClearActivityMetrics() *AgentUpdateOne {
	_u.mutation.ClearActivityMetrics()
	return _u
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to ActivityMetric entities by IDs.
func (_u *AgentUpdateOne) RemoveActivityMetricIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveActivityMetricIDs(ids...)
	return _u
}

// RemoveActivityMetrics removes "activity_metrics" edges to ActivityMetric entities.
func (_u *AgentUpdateOne) RemoveActivityMetrics(v ...*ActivityMetric) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityMetricIDs(ids...)
}

// ClearSnapshots clears all "snapshots" edges to the HeadspaceSnapshot entity.
func (_u *AgentUpdateOne) ClearSnapshots() *AgentUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to HeadspaceSnapshot entities by IDs.
func (_u *AgentUpdateOne) RemoveSnapshotIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to HeadspaceSnapshot entities.
func (_u *AgentUpdateOne) RemoveSnapshots(v ...*HeadspaceSnapshot) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *AgentUpdateOne) ClearInferenceCalls() *AgentUpdateOne {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *AgentUpdateOne) RemoveInferenceCallIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *AgentUpdateOne) RemoveInferenceCalls(v ...*InferenceCall) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.TmuxSessionName(); ok {
		_spec.SetField(agent.FieldTmuxSessionName, field.TypeString, value)
	}
	if _u.mutation.TmuxSessionNameCleared() {
		_spec.ClearField(agent.FieldTmuxSessionName, field.TypeString)
	}
	if value, ok := _u.mutation.TmuxPaneID(); ok {
		_spec.SetField(agent.FieldTmuxPaneID, field.TypeString, value)
	}
	if _u.mutation.TmuxPaneIDCleared() {
		_spec.ClearField(agent.FieldTmuxPaneID, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyWindowID(); ok {
		_spec.SetField(agent.FieldLegacyWindowID, field.TypeString, value)
	}
	if _u.mutation.LegacyWindowIDCleared() {
		_spec.ClearField(agent.FieldLegacyWindowID, field.TypeString)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agent.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agent.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptInjectedAt(); ok {
		_spec.SetField(agent.FieldPromptInjectedAt, field.TypeTime, value)
	}
	if _u.mutation.PromptInjectedAtCleared() {
		_spec.ClearField(agent.FieldPromptInjectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(agent.FieldPriorityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(agent.FieldPriorityScore, field.TypeInt, value)
	}
	if _u.mutation.PriorityScoreCleared() {
		_spec.ClearField(agent.FieldPriorityScore, field.TypeInt)
	}
	if value, ok := _u.mutation.PriorityReason(); ok {
		_spec.SetField(agent.FieldPriorityReason, field.TypeString, value)
	}
	if _u.mutation.PriorityReasonCleared() {
		_spec.ClearField(agent.FieldPriorityReason, field.TypeString)
	}
	if value, ok := _u.mutation.PriorityUpdatedAt(); ok {
		_spec.SetField(agent.FieldPriorityUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PriorityUpdatedAtCleared() {
		_spec.ClearField(agent.FieldPriorityUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContextPercentUsed(); ok {
		_spec.SetField(agent.FieldContextPercentUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextPercentUsed(); ok {
		_spec.AddField(agent.FieldContextPercentUsed, field.TypeInt, value)
	}
	if _u.mutation.ContextPercentUsedCleared() {
		_spec.ClearField(agent.FieldContextPercentUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextRemainingTokens(); ok {
		_spec.SetField(agent.FieldContextRemainingTokens, field.TypeString, value)
	}
	if _u.mutation.ContextRemainingTokensCleared() {
		_spec.ClearField(agent.FieldContextRemainingTokens, field.TypeString)
	}
	if value, ok := _u.mutation.ContextUpdatedAt(); ok {
		_spec.SetField(agent.FieldContextUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContextUpdatedAtCleared() {
		_spec.ClearField(agent.FieldContextUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GuardrailsVersionHash(); ok {
		_spec.SetField(agent.FieldGuardrailsVersionHash, field.TypeString, value)
	}
	if _u.mutation.GuardrailsVersionHashCleared() {
		_spec.ClearField(agent.FieldGuardrailsVersionHash, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PositionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PositionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PreviousAgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PreviousAgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuccessorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuccessorsIDs(); len(nodes) > 0 && !_u.mutation.SuccessorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuccessorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommandsIDs(); len(nodes) > 0 && !_u.mutation.CommandsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommandsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HandoffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HandoffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivityMetricsIDs(); len(nodes) > 0 && !_u.mutation.ActivityMetricsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityMetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInferenceCallsIDs(); len(nodes) > 0 && !_u.mutation.InferenceCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InferenceCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
