// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
)

// HeadspaceSnapshot is the model entity for the HeadspaceSnapshot schema.
type HeadspaceSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID int `json:"agent_id,omitempty"`
	// CapturedAt holds the value of the "captured_at" field.
	CapturedAt time.Time `json:"captured_at,omitempty"`
	// ContextPercentUsed holds the value of the "context_percent_used" field.
	ContextPercentUsed int `json:"context_percent_used,omitempty"`
	// ContextRemainingTokens holds the value of the "context_remaining_tokens" field.
	ContextRemainingTokens string `json:"context_remaining_tokens,omitempty"`
	// Status line exactly as rendered in the pane
	Raw string `json:"raw,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HeadspaceSnapshotQuery when eager-loading is set.
	Edges        HeadspaceSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HeadspaceSnapshotEdges holds the relations/edges for other nodes in the graph.
type HeadspaceSnapshotEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HeadspaceSnapshotEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HeadspaceSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case headspacesnapshot.FieldID, headspacesnapshot.FieldAgentID, headspacesnapshot.FieldContextPercentUsed:
			values[i] = new(sql.NullInt64)
		case headspacesnapshot.FieldContextRemainingTokens, headspacesnapshot.FieldRaw:
			values[i] = new(sql.NullString)
		case headspacesnapshot.FieldCapturedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HeadspaceSnapshot fields.
func (_m *HeadspaceSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case headspacesnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case headspacesnapshot.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = int(value.Int64)
			}
		case headspacesnapshot.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		case headspacesnapshot.FieldContextPercentUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field context_percent_used", values[i])
			} else if value.Valid {
				_m.ContextPercentUsed = int(value.Int64)
			}
		case headspacesnapshot.FieldContextRemainingTokens:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_remaining_tokens", values[i])
			} else if value.Valid {
				_m.ContextRemainingTokens = value.String
			}
		case headspacesnapshot.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HeadspaceSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *HeadspaceSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the HeadspaceSnapshot entity.
func (_m *HeadspaceSnapshot) QueryAgent() *AgentQuery {
	return NewHeadspaceSnapshotClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this HeadspaceSnapshot.
// Note that you need to call HeadspaceSnapshot.Unwrap() before calling this method if this HeadspaceSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HeadspaceSnapshot) Update() *HeadspaceSnapshotUpdateOne {
	return NewHeadspaceSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HeadspaceSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HeadspaceSnapshot) Unwrap() *HeadspaceSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HeadspaceSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HeadspaceSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("HeadspaceSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentID))
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("context_percent_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextPercentUsed))
	builder.WriteString(", ")
	builder.WriteString("context_remaining_tokens=")
	builder.WriteString(_m.ContextRemainingTokens)
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteByte(')')
	return builder.String()
}

// HeadspaceSnapshots is a parsable slice of HeadspaceSnapshot.
type HeadspaceSnapshots []*HeadspaceSnapshot
