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
)

// Command is the model entity for the Command schema.
type Command struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// State holds the value of the "state" field.
	State command.State `json:"state,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CHECK completed_at >= started_at enforced in database.CreateConstraints
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Oracle summary of the user's request
	Instruction *string `json:"instruction,omitempty"`
	// Oracle summary of the agent's outcome
	CompletionSummary *string `json:"completion_summary,omitempty"`
	// Verbatim initial request
	FullCommand *string `json:"full_command,omitempty"`
	// Verbatim final response
	FullOutput *string `json:"full_output,omitempty"`
	// PlanFilePath holds the value of the "plan_file_path" field.
	PlanFilePath *string `json:"plan_file_path,omitempty"`
	// PlanContent holds the value of the "plan_content" field.
	PlanContent *string `json:"plan_content,omitempty"`
	// PlanApprovedAt holds the value of the "plan_approved_at" field.
	PlanApprovedAt *time.Time `json:"plan_approved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommandQuery when eager-loading is set.
	Edges        CommandEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommandEdges holds the relations/edges for other nodes in the graph.
type CommandEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Turns holds the value of the turns edge.
	Turns []*Turn `json:"turns,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// InferenceCalls holds the value of the inference_calls edge.
	InferenceCalls []*InferenceCall `json:"inference_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommandEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// TurnsOrErr returns the Turns value or an error if the edge
// was not loaded in eager-loading.
func (e CommandEdges) TurnsOrErr() ([]*Turn, error) {
	if e.loadedTypes[1] {
		return e.Turns, nil
	}
	return nil, &NotLoadedError{edge: "turns"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e CommandEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// InferenceCallsOrErr returns the InferenceCalls value or an error if the edge
// was not loaded in eager-loading.
func (e CommandEdges) InferenceCallsOrErr() ([]*InferenceCall, error) {
	if e.loadedTypes[3] {
		return e.InferenceCalls, nil
	}
	return nil, &NotLoadedError{edge: "inference_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Command) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case command.FieldID, command.FieldAgentID:
			values[i] = new(sql.NullInt64)
		case command.FieldState, command.FieldInstruction, command.FieldCompletionSummary, command.FieldFullCommand, command.FieldFullOutput, command.FieldPlanFilePath, command.FieldPlanContent:
			values[i] = new(sql.NullString)
		case command.FieldStartedAt, command.FieldCompletedAt, command.FieldPlanApprovedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Command fields.
func (_m *Command) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case command.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case command.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case command.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = command.State(value.String)
			}
		case command.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case command.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case command.FieldInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instruction", values[i])
			} else if value.Valid {
				_m.Instruction = new(string)
				*_m.Instruction = value.String
			}
		case command.FieldCompletionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_summary", values[i])
			} else if value.Valid {
				_m.CompletionSummary = new(string)
				*_m.CompletionSummary = value.String
			}
		case command.FieldFullCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_command", values[i])
			} else if value.Valid {
				_m.FullCommand = new(string)
				*_m.FullCommand = value.String
			}
		case command.FieldFullOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_output", values[i])
			} else if value.Valid {
				_m.FullOutput = new(string)
				*_m.FullOutput = value.String
			}
		case command.FieldPlanFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_file_path", values[i])
			} else if value.Valid {
				_m.PlanFilePath = new(string)
				*_m.PlanFilePath = value.String
			}
		case command.FieldPlanContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_content", values[i])
			} else if value.Valid {
				_m.PlanContent = new(string)
				*_m.PlanContent = value.String
			}
		case command.FieldPlanApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field plan_approved_at", values[i])
			} else if value.Valid {
				_m.PlanApprovedAt = new(time.Time)
				*_m.PlanApprovedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Command.
// This includes values selected through modifiers, order, etc.
func (_m *Command) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the Command entity.
func (_m *Command) QueryAgent() *AgentQuery {
	return NewCommandClient(_m.config).QueryAgent(_m)
}

// QueryTurns queries the "turns" edge of the Command entity.
func (_m *Command) QueryTurns() *TurnQuery {
	return NewCommandClient(_m.config).QueryTurns(_m)
}

// QueryEvents queries the "events" edge of the Command entity.
func (_m *Command) QueryEvents() *EventQuery {
	return NewCommandClient(_m.config).QueryEvents(_m)
}

// QueryInferenceCalls queries the "inference_calls" edge of the Command entity.
func (_m *Command) QueryInferenceCalls() *InferenceCallQuery {
	return NewCommandClient(_m.config).QueryInferenceCalls(_m)
}

// Update returns a builder for updating this Command.
// Note that you need to call Command.Unwrap() before calling this method if this Command
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Command) Update() *CommandUpdateOne {
	return NewCommandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Command entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Command) Unwrap() *Command {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Command is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Command) String() string {
	var builder strings.Builder
	builder.WriteString("Command(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Instruction; v != nil {
		builder.WriteString("instruction=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletionSummary; v != nil {
		builder.WriteString("completion_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullCommand; v != nil {
		builder.WriteString("full_command=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullOutput; v != nil {
		builder.WriteString("full_output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanFilePath; v != nil {
		builder.WriteString("plan_file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanContent; v != nil {
		builder.WriteString("plan_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanApprovedAt; v != nil {
		builder.WriteString("plan_approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Commands is a parsable slice of Command.
type Commands []*Command
