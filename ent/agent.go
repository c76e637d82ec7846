// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/handoff"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/project"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Host-side conversation identifier shared with hooks and JSONL
	SessionUUID uuid.UUID `json:"session_uuid,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// PersonaID holds the value of the "persona_id" field.
	PersonaID *int `json:"persona_id,omitempty"`
	// PositionID holds the value of the "position_id" field.
	PositionID *int `json:"position_id,omitempty"`
	// Predecessor for revival and handoff chains
	PreviousAgentID *int `json:"previous_agent_id,omitempty"`
	// TmuxSessionName holds the value of the "tmux_session_name" field.
	TmuxSessionName *string `json:"tmux_session_name,omitempty"`
	// TmuxPaneID holds the value of the "tmux_pane_id" field.
	TmuxPaneID *string `json:"tmux_pane_id,omitempty"`
	// Pane identifier for the legacy windowing system
	LegacyWindowID *string `json:"legacy_window_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Set when persona injection completed — full readiness marker
	PromptInjectedAt *time.Time `json:"prompt_injected_at,omitempty"`
	// PriorityScore holds the value of the "priority_score" field.
	PriorityScore *int `json:"priority_score,omitempty"`
	// PriorityReason holds the value of the "priority_reason" field.
	PriorityReason *string `json:"priority_reason,omitempty"`
	// PriorityUpdatedAt holds the value of the "priority_updated_at" field.
	PriorityUpdatedAt *time.Time `json:"priority_updated_at,omitempty"`
	// ContextPercentUsed holds the value of the "context_percent_used" field.
	ContextPercentUsed *int `json:"context_percent_used,omitempty"`
	// String with SI suffix, e.g. "83k"
	ContextRemainingTokens *string `json:"context_remaining_tokens,omitempty"`
	// ContextUpdatedAt holds the value of the "context_updated_at" field.
	ContextUpdatedAt *time.Time `json:"context_updated_at,omitempty"`
	// SHA-256 of the guardrail document injected into this agent
	GuardrailsVersionHash *string `json:"guardrails_version_hash,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Persona holds the value of the persona edge.
	Persona *Persona `json:"persona,omitempty"`
	// Position holds the value of the position edge.
	Position *Position `json:"position,omitempty"`
	// PreviousAgent holds the value of the previous_agent edge.
	PreviousAgent *Agent `json:"previous_agent,omitempty"`
	// Successors holds the value of the successors edge.
	Successors []*Agent `json:"successors,omitempty"`
	// Commands holds the value of the commands edge.
	Commands []*Command `json:"commands,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Handoff holds the value of the handoff edge.
	Handoff *Handoff `json:"handoff,omitempty"`
	// ActivityMetrics holds the value of the activity_metrics edge.
	ActivityMetrics []*ActivityMetric `json:"activity_metrics,omitempty"`
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*HeadspaceSnapshot `json:"snapshots,omitempty"`
	// InferenceCalls holds the value of the inference_calls edge.
	InferenceCalls []*InferenceCall `json:"inference_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [11]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// PersonaOrErr returns the Persona value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) PersonaOrErr() (*Persona, error) {
	if e.Persona != nil {
		return e.Persona, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: persona.Label}
	}
	return nil, &NotLoadedError{edge: "persona"}
}

// PositionOrErr returns the Position value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) PositionOrErr() (*Position, error) {
	if e.Position != nil {
		return e.Position, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: position.Label}
	}
	return nil, &NotLoadedError{edge: "position"}
}

// PreviousAgentOrErr returns the PreviousAgent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) PreviousAgentOrErr() (*Agent, error) {
	if e.PreviousAgent != nil {
		return e.PreviousAgent, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "previous_agent"}
}

// SuccessorsOrErr returns the Successors value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) SuccessorsOrErr() ([]*Agent, error) {
	if e.loadedTypes[4] {
		return e.Successors, nil
	}
	return nil, &NotLoadedError{edge: "successors"}
}

// CommandsOrErr returns the Commands value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CommandsOrErr() ([]*Command, error) {
	if e.loadedTypes[5] {
		return e.Commands, nil
	}
	return nil, &NotLoadedError{edge: "commands"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[6] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// HandoffOrErr returns the Handoff value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) HandoffOrErr() (*Handoff, error) {
	if e.Handoff != nil {
		return e.Handoff, nil
	} else if e.loadedTypes[7] {
		return nil, &NotFoundError{label: handoff.Label}
	}
	return nil, &NotLoadedError{edge: "handoff"}
}

// ActivityMetricsOrErr returns the ActivityMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ActivityMetricsOrErr() ([]*ActivityMetric, error) {
	if e.loadedTypes[8] {
		return e.ActivityMetrics, nil
	}
	return nil, &NotLoadedError{edge: "activity_metrics"}
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) SnapshotsOrErr() ([]*HeadspaceSnapshot, error) {
	if e.loadedTypes[9] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// InferenceCallsOrErr returns the InferenceCalls value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) InferenceCallsOrErr() ([]*InferenceCall, error) {
	if e.loadedTypes[10] {
		return e.InferenceCalls, nil
	}
	return nil, &NotLoadedError{edge: "inference_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldID, agent.FieldProjectID, agent.FieldPersonaID, agent.FieldPositionID, agent.FieldPreviousAgentID, agent.FieldPriorityScore, agent.FieldContextPercentUsed:
			values[i] = new(sql.NullInt64)
		case agent.FieldTmuxSessionName, agent.FieldTmuxPaneID, agent.FieldLegacyWindowID, agent.FieldPriorityReason, agent.FieldContextRemainingTokens, agent.FieldGuardrailsVersionHash:
			values[i] = new(sql.NullString)
		case agent.FieldStartedAt, agent.FieldLastSeenAt, agent.FieldEndedAt, agent.FieldPromptInjectedAt, agent.FieldPriorityUpdatedAt, agent.FieldContextUpdatedAt:
			values[i] = new(sql.NullTime)
		case agent.FieldSessionUUID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agent.FieldSessionUUID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_uuid", values[i])
			} else if value != nil {
				_m.SessionUUID = *value
			}
		case agent.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case agent.FieldPersonaID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field persona_id", values[i])
			} else if value.Valid {
				_m.PersonaID = new(int)
				*_m.PersonaID = int(value.Int64)
			}
		case agent.FieldPositionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position_id", values[i])
			} else if value.Valid {
				_m.PositionID = new(int)
				*_m.PositionID = int(value.Int64)
			}
		case agent.FieldPreviousAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field previous_agent_id", values[i])
			} else if value.Valid {
				_m.PreviousAgentID = new(int)
				*_m.PreviousAgentID = int(value.Int64)
			}
		case agent.FieldTmuxSessionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tmux_session_name", values[i])
			} else if value.Valid {
				_m.TmuxSessionName = new(string)
				*_m.TmuxSessionName = value.String
			}
		case agent.FieldTmuxPaneID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tmux_pane_id", values[i])
			} else if value.Valid {
				_m.TmuxPaneID = new(string)
				*_m.TmuxPaneID = value.String
			}
		case agent.FieldLegacyWindowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_window_id", values[i])
			} else if value.Valid {
				_m.LegacyWindowID = new(string)
				*_m.LegacyWindowID = value.String
			}
		case agent.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agent.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case agent.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case agent.FieldPromptInjectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_injected_at", values[i])
			} else if value.Valid {
				_m.PromptInjectedAt = new(time.Time)
				*_m.PromptInjectedAt = value.Time
			}
		case agent.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = new(int)
				*_m.PriorityScore = int(value.Int64)
			}
		case agent.FieldPriorityReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority_reason", values[i])
			} else if value.Valid {
				_m.PriorityReason = new(string)
				*_m.PriorityReason = value.String
			}
		case agent.FieldPriorityUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field priority_updated_at", values[i])
			} else if value.Valid {
				_m.PriorityUpdatedAt = new(time.Time)
				*_m.PriorityUpdatedAt = value.Time
			}
		case agent.FieldContextPercentUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field context_percent_used", values[i])
			} else if value.Valid {
				_m.ContextPercentUsed = new(int)
				*_m.ContextPercentUsed = int(value.Int64)
			}
		case agent.FieldContextRemainingTokens:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_remaining_tokens", values[i])
			} else if value.Valid {
				_m.ContextRemainingTokens = new(string)
				*_m.ContextRemainingTokens = value.String
			}
		case agent.FieldContextUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field context_updated_at", values[i])
			} else if value.Valid {
				_m.ContextUpdatedAt = new(time.Time)
				*_m.ContextUpdatedAt = value.Time
			}
		case agent.FieldGuardrailsVersionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guardrails_version_hash", values[i])
			} else if value.Valid {
				_m.GuardrailsVersionHash = new(string)
				*_m.GuardrailsVersionHash = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Agent entity.
func (_m *Agent) QueryProject() *ProjectQuery {
	return NewAgentClient(_m.config).QueryProject(_m)
}

// QueryPersona queries the "persona" edge of the Agent entity.
func (_m *Agent) QueryPersona() *PersonaQuery {
	return NewAgentClient(_m.config).QueryPersona(_m)
}

// QueryPosition queries the "position" edge of the Agent entity.
func (_m *Agent) QueryPosition() *PositionQuery {
	return NewAgentClient(_m.config).QueryPosition(_m)
}

// QueryPreviousAgent queries the "previous_agent" edge of the Agent entity.
func (_m *Agent) QueryPreviousAgent() *AgentQuery {
	return NewAgentClient(_m.config).QueryPreviousAgent(_m)
}

// QuerySuccessors queries the "successors" edge of the Agent entity.
func (_m *Agent) QuerySuccessors() *AgentQuery {
	return NewAgentClient(_m.config).QuerySuccessors(_m)
}

// QueryCommands queries the "commands" edge of the Agent entity.
func (_m *Agent) QueryCommands() *CommandQuery {
	return NewAgentClient(_m.config).QueryCommands(_m)
}

// QueryEvents queries the "events" edge of the Agent entity.
func (_m *Agent) QueryEvents() *EventQuery {
	return NewAgentClient(_m.config).QueryEvents(_m)
}

// QueryHandoff queries the "handoff" edge of the Agent entity.
func (_m *Agent) QueryHandoff() *HandoffQuery {
	return NewAgentClient(_m.config).QueryHandoff(_m)
}

// QueryActivityMetrics queries the "activity_metrics" edge of the Agent entity.
func (_m *Agent) QueryActivityMetrics() *ActivityMetricQuery {
	return NewAgentClient(_m.config).QueryActivityMetrics(_m)
}

// QuerySnapshots queries the "snapshots" edge of the Agent entity.
func (_m *Agent) QuerySnapshots() *HeadspaceSnapshotQuery {
	return NewAgentClient(_m.config).QuerySnapshots(_m)
}

// QueryInferenceCalls queries the "inference_calls" edge of the Agent entity.
func (_m *Agent) QueryInferenceCalls() *InferenceCallQuery {
	return NewAgentClient(_m.config).QueryInferenceCalls(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_uuid=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionUUID))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	if v := _m.PersonaID; v != nil {
		builder.WriteString("persona_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PositionID; v != nil {
		builder.WriteString("position_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PreviousAgentID; v != nil {
		builder.WriteString("previous_agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TmuxSessionName; v != nil {
		builder.WriteString("tmux_session_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TmuxPaneID; v != nil {
		builder.WriteString("tmux_pane_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LegacyWindowID; v != nil {
		builder.WriteString("legacy_window_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PromptInjectedAt; v != nil {
		builder.WriteString("prompt_injected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PriorityScore; v != nil {
		builder.WriteString("priority_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriorityReason; v != nil {
		builder.WriteString("priority_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PriorityUpdatedAt; v != nil {
		builder.WriteString("priority_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ContextPercentUsed; v != nil {
		builder.WriteString("context_percent_used=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ContextRemainingTokens; v != nil {
		builder.WriteString("context_remaining_tokens=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContextUpdatedAt; v != nil {
		builder.WriteString("context_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.GuardrailsVersionHash; v != nil {
		builder.WriteString("guardrails_version_hash=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
