// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/project"
	"github.com/headspace-sh/headspace/ent/turn"
)

// InferenceCall is the model entity for the InferenceCall schema.
type InferenceCall struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Level holds the value of the "level" field.
	Level inferencecall.Level `json:"level,omitempty"`
	// SHA-256 of the prompt — idempotent-cache key
	InputHash string `json:"input_hash,omitempty"`
	// Cached holds the value of the "cached" field.
	Cached bool `json:"cached,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *int `json:"project_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *int `json:"agent_id,omitempty"`
	// CommandID holds the value of the "command_id" field.
	CommandID *int `json:"command_id,omitempty"`
	// TurnID holds the value of the "turn_id" field.
	TurnID *int `json:"turn_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InferenceCallQuery when eager-loading is set.
	Edges        InferenceCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InferenceCallEdges holds the relations/edges for other nodes in the graph.
type InferenceCallEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Command holds the value of the command edge.
	Command *Command `json:"command,omitempty"`
	// Turn holds the value of the turn edge.
	Turn *Turn `json:"turn,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InferenceCallEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InferenceCallEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// CommandOrErr returns the Command value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InferenceCallEdges) CommandOrErr() (*Command, error) {
	if e.Command != nil {
		return e.Command, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: command.Label}
	}
	return nil, &NotLoadedError{edge: "command"}
}

// TurnOrErr returns the Turn value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InferenceCallEdges) TurnOrErr() (*Turn, error) {
	if e.Turn != nil {
		return e.Turn, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: turn.Label}
	}
	return nil, &NotLoadedError{edge: "turn"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InferenceCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inferencecall.FieldCached:
			values[i] = new(sql.NullBool)
		case inferencecall.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case inferencecall.FieldID, inferencecall.FieldPromptTokens, inferencecall.FieldCompletionTokens, inferencecall.FieldLatencyMs, inferencecall.FieldProjectID, inferencecall.FieldAgentID, inferencecall.FieldCommandID, inferencecall.FieldTurnID:
			values[i] = new(sql.NullInt64)
		case inferencecall.FieldLevel, inferencecall.FieldInputHash:
			values[i] = new(sql.NullString)
		case inferencecall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InferenceCall fields.
func (_m *InferenceCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inferencecall.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case inferencecall.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = inferencecall.Level(value.String)
			}
		case inferencecall.FieldInputHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_hash", values[i])
			} else if value.Valid {
				_m.InputHash = value.String
			}
		case inferencecall.FieldCached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cached", values[i])
			} else if value.Valid {
				_m.Cached = value.Bool
			}
		case inferencecall.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case inferencecall.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case inferencecall.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case inferencecall.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case inferencecall.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inferencecall.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(int)
				*_m.ProjectID = int(value.Int64)
			}
		case inferencecall.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case inferencecall.FieldCommandID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field command_id", values[i])
			} else if value.Valid {
				_m.CommandID = new(int)
				*_m.CommandID = int(value.Int64)
			}
		case inferencecall.FieldTurnID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = new(int)
				*_m.TurnID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InferenceCall.
// This includes values selected through modifiers, order, etc.
func (_m *InferenceCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the InferenceCall entity.
func (_m *InferenceCall) QueryProject() *ProjectQuery {
	return NewInferenceCallClient(_m.config).QueryProject(_m)
}

// QueryAgent queries the "agent" edge of the InferenceCall entity.
func (_m *InferenceCall) QueryAgent() *AgentQuery {
	return NewInferenceCallClient(_m.config).QueryAgent(_m)
}

// QueryCommand queries the "command" edge of the InferenceCall entity.
func (_m *InferenceCall) QueryCommand() *CommandQuery {
	return NewInferenceCallClient(_m.config).QueryCommand(_m)
}

// QueryTurn queries the "turn" edge of the InferenceCall entity.
func (_m *InferenceCall) QueryTurn() *TurnQuery {
	return NewInferenceCallClient(_m.config).QueryTurn(_m)
}

// Update returns a builder for updating this InferenceCall.
// Note that you need to call InferenceCall.Unwrap() before calling this method if this InferenceCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InferenceCall) Update() *InferenceCallUpdateOne {
	return NewInferenceCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InferenceCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InferenceCall) Unwrap() *InferenceCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InferenceCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InferenceCall) String() string {
	var builder strings.Builder
	builder.WriteString("InferenceCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("input_hash=")
	builder.WriteString(_m.InputHash)
	builder.WriteString(", ")
	builder.WriteString("cached=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cached))
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CommandID; v != nil {
		builder.WriteString("command_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TurnID; v != nil {
		builder.WriteString("turn_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// InferenceCalls is a parsable slice of InferenceCall.
type InferenceCalls []*InferenceCall
