// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/turn"
)

// Turn is the model entity for the Turn schema.
type Turn struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CommandID holds the value of the "command_id" field.
	CommandID int `json:"command_id,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor turn.Actor `json:"actor,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent turn.Intent `json:"intent,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// TimestampSource holds the value of the "timestamp_source" field.
	TimestampSource turn.TimestampSource `json:"timestamp_source,omitempty"`
	// SHA-256 content hash of the source JSONL entry; NULL for hook-born turns
	JsonlEntryHash *string `json:"jsonl_entry_hash,omitempty"`
	// Coordinator-to-sub-agent protocol message
	IsInternal bool `json:"is_internal,omitempty"`
	// ToolInput holds the value of the "tool_input" field.
	ToolInput map[string]interface{} `json:"tool_input,omitempty"`
	// FileMetadata holds the value of the "file_metadata" field.
	FileMetadata map[string]interface{} `json:"file_metadata,omitempty"`
	// AnsweredByTurnID holds the value of the "answered_by_turn_id" field.
	AnsweredByTurnID *int `json:"answered_by_turn_id,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// SummaryGeneratedAt holds the value of the "summary_generated_at" field.
	SummaryGeneratedAt *time.Time `json:"summary_generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TurnQuery when eager-loading is set.
	Edges        TurnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TurnEdges holds the relations/edges for other nodes in the graph.
type TurnEdges struct {
	// Command holds the value of the command edge.
	Command *Command `json:"command,omitempty"`
	// AnsweredBy holds the value of the answered_by edge.
	AnsweredBy *Turn `json:"answered_by,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Turn `json:"answers,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// InferenceCalls holds the value of the inference_calls edge.
	InferenceCalls []*InferenceCall `json:"inference_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CommandOrErr returns the Command value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnEdges) CommandOrErr() (*Command, error) {
	if e.Command != nil {
		return e.Command, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: command.Label}
	}
	return nil, &NotLoadedError{edge: "command"}
}

// AnsweredByOrErr returns the AnsweredBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TurnEdges) AnsweredByOrErr() (*Turn, error) {
	if e.AnsweredBy != nil {
		return e.AnsweredBy, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: turn.Label}
	}
	return nil, &NotLoadedError{edge: "answered_by"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e TurnEdges) AnswersOrErr() ([]*Turn, error) {
	if e.loadedTypes[2] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e TurnEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// InferenceCallsOrErr returns the InferenceCalls value or an error if the edge
// was not loaded in eager-loading.
func (e TurnEdges) InferenceCallsOrErr() ([]*InferenceCall, error) {
	if e.loadedTypes[4] {
		return e.InferenceCalls, nil
	}
	return nil, &NotLoadedError{edge: "inference_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Turn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turn.FieldToolInput, turn.FieldFileMetadata:
			values[i] = new([]byte)
		case turn.FieldIsInternal:
			values[i] = new(sql.NullBool)
		case turn.FieldID, turn.FieldCommandID, turn.FieldAnsweredByTurnID:
			values[i] = new(sql.NullInt64)
		case turn.FieldActor, turn.FieldIntent, turn.FieldText, turn.FieldTimestampSource, turn.FieldJsonlEntryHash, turn.FieldSummary:
			values[i] = new(sql.NullString)
		case turn.FieldTimestamp, turn.FieldSummaryGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Turn fields.
func (_m *Turn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turn.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turn.FieldCommandID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field command_id", values[i])
			} else if value.Valid {
				_m.CommandID = int(value.Int64)
			}
		case turn.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = turn.Actor(value.String)
			}
		case turn.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = turn.Intent(value.String)
			}
		case turn.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case turn.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turn.FieldTimestampSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_source", values[i])
			} else if value.Valid {
				_m.TimestampSource = turn.TimestampSource(value.String)
			}
		case turn.FieldJsonlEntryHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jsonl_entry_hash", values[i])
			} else if value.Valid {
				_m.JsonlEntryHash = new(string)
				*_m.JsonlEntryHash = value.String
			}
		case turn.FieldIsInternal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_internal", values[i])
			} else if value.Valid {
				_m.IsInternal = value.Bool
			}
		case turn.FieldToolInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolInput); err != nil {
					return fmt.Errorf("unmarshal field tool_input: %w", err)
				}
			}
		case turn.FieldFileMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FileMetadata); err != nil {
					return fmt.Errorf("unmarshal field file_metadata: %w", err)
				}
			}
		case turn.FieldAnsweredByTurnID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered_by_turn_id", values[i])
			} else if value.Valid {
				_m.AnsweredByTurnID = new(int)
				*_m.AnsweredByTurnID = int(value.Int64)
			}
		case turn.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case turn.FieldSummaryGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field summary_generated_at", values[i])
			} else if value.Valid {
				_m.SummaryGeneratedAt = new(time.Time)
				*_m.SummaryGeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Turn.
// This includes values selected through modifiers, order, etc.
func (_m *Turn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCommand queries the "command" edge of the Turn entity.
func (_m *Turn) QueryCommand() *CommandQuery {
	return NewTurnClient(_m.config).QueryCommand(_m)
}

// QueryAnsweredBy queries the "answered_by" edge of the Turn entity.
func (_m *Turn) QueryAnsweredBy() *TurnQuery {
	return NewTurnClient(_m.config).QueryAnsweredBy(_m)
}

// QueryAnswers queries the "answers" edge of the Turn entity.
func (_m *Turn) QueryAnswers() *TurnQuery {
	return NewTurnClient(_m.config).QueryAnswers(_m)
}

// QueryEvents queries the "events" edge of the Turn entity.
func (_m *Turn) QueryEvents() *EventQuery {
	return NewTurnClient(_m.config).QueryEvents(_m)
}

// QueryInferenceCalls queries the "inference_calls" edge of the Turn entity.
func (_m *Turn) QueryInferenceCalls() *InferenceCallQuery {
	return NewTurnClient(_m.config).QueryInferenceCalls(_m)
}

// Update returns a builder for updating this Turn.
// Note that you need to call Turn.Unwrap() before calling this method if this Turn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Turn) Update() *TurnUpdateOne {
	return NewTurnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Turn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Turn) Unwrap() *Turn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Turn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Turn) String() string {
	var builder strings.Builder
	builder.WriteString("Turn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("command_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandID))
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actor))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intent))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("timestamp_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimestampSource))
	builder.WriteString(", ")
	if v := _m.JsonlEntryHash; v != nil {
		builder.WriteString("jsonl_entry_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_internal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsInternal))
	builder.WriteString(", ")
	builder.WriteString("tool_input=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolInput))
	builder.WriteString(", ")
	builder.WriteString("file_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileMetadata))
	builder.WriteString(", ")
	if v := _m.AnsweredByTurnID; v != nil {
		builder.WriteString("answered_by_turn_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SummaryGeneratedAt; v != nil {
		builder.WriteString("summary_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Turns is a parsable slice of Turn.
type Turns []*Turn
