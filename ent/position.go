// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/role"
)

// Position is the model entity for the Position schema.
type Position struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ReportsToID holds the value of the "reports_to_id" field.
	ReportsToID *int `json:"reports_to_id,omitempty"`
	// EscalatesToID holds the value of the "escalates_to_id" field.
	EscalatesToID *int `json:"escalates_to_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PositionQuery when eager-loading is set.
	Edges          PositionEdges `json:"edges"`
	role_positions *int
	selectValues   sql.SelectValues
}

// PositionEdges holds the relations/edges for other nodes in the graph.
type PositionEdges struct {
	// Role holds the value of the role edge.
	Role *Role `json:"role,omitempty"`
	// ReportsTo holds the value of the reports_to edge.
	ReportsTo *Position `json:"reports_to,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*Position `json:"reports,omitempty"`
	// EscalatesTo holds the value of the escalates_to edge.
	EscalatesTo *Position `json:"escalates_to,omitempty"`
	// Escalations holds the value of the escalations edge.
	Escalations []*Position `json:"escalations,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// RoleOrErr returns the Role value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PositionEdges) RoleOrErr() (*Role, error) {
	if e.Role != nil {
		return e.Role, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: role.Label}
	}
	return nil, &NotLoadedError{edge: "role"}
}

// ReportsToOrErr returns the ReportsTo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PositionEdges) ReportsToOrErr() (*Position, error) {
	if e.ReportsTo != nil {
		return e.ReportsTo, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: position.Label}
	}
	return nil, &NotLoadedError{edge: "reports_to"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e PositionEdges) ReportsOrErr() ([]*Position, error) {
	if e.loadedTypes[2] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// EscalatesToOrErr returns the EscalatesTo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PositionEdges) EscalatesToOrErr() (*Position, error) {
	if e.EscalatesTo != nil {
		return e.EscalatesTo, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: position.Label}
	}
	return nil, &NotLoadedError{edge: "escalates_to"}
}

// EscalationsOrErr returns the Escalations value or an error if the edge
// was not loaded in eager-loading.
func (e PositionEdges) EscalationsOrErr() ([]*Position, error) {
	if e.loadedTypes[4] {
		return e.Escalations, nil
	}
	return nil, &NotLoadedError{edge: "escalations"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e PositionEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[5] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Position) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case position.FieldID, position.FieldReportsToID, position.FieldEscalatesToID:
			values[i] = new(sql.NullInt64)
		case position.FieldTitle:
			values[i] = new(sql.NullString)
		case position.ForeignKeys[0]: // role_positions
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Position fields.
func (_m *Position) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case position.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case position.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case position.FieldReportsToID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reports_to_id", values[i])
			} else if value.Valid {
				_m.ReportsToID = new(int)
				*_m.ReportsToID = int(value.Int64)
			}
		case position.FieldEscalatesToID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field escalates_to_id", values[i])
			} else if value.Valid {
				_m.EscalatesToID = new(int)
				*_m.EscalatesToID = int(value.Int64)
			}
		case position.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field role_positions", value)
			} else if value.Valid {
				_m.role_positions = new(int)
				*_m.role_positions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Position.
// This includes values selected through modifiers, order, etc.
func (_m *Position) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRole queries the "role" edge of the Position entity.
func (_m *Position) QueryRole() *RoleQuery {
	return NewPositionClient(_m.config).QueryRole(_m)
}

// QueryReportsTo queries the "reports_to" edge of the Position entity.
func (_m *Position) QueryReportsTo() *PositionQuery {
	return NewPositionClient(_m.config).QueryReportsTo(_m)
}

// QueryReports queries the "reports" edge of the Position entity.
func (_m *Position) QueryReports() *PositionQuery {
	return NewPositionClient(_m.config).QueryReports(_m)
}

// QueryEscalatesTo queries the "escalates_to" edge of the Position entity.
func (_m *Position) QueryEscalatesTo() *PositionQuery {
	return NewPositionClient(_m.config).QueryEscalatesTo(_m)
}

// QueryEscalations queries the "escalations" edge of the Position entity.
func (_m *Position) QueryEscalations() *PositionQuery {
	return NewPositionClient(_m.config).QueryEscalations(_m)
}

// QueryAgents queries the "agents" edge of the Position entity.
func (_m *Position) QueryAgents() *AgentQuery {
	return NewPositionClient(_m.config).QueryAgents(_m)
}

// Update returns a builder for updating this Position.
// Note that you need to call Position.Unwrap() before calling this method if this Position
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Position) Update() *PositionUpdateOne {
	return NewPositionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Position entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Position) Unwrap() *Position {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Position is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Position) String() string {
	var builder strings.Builder
	builder.WriteString("Position(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.ReportsToID; v != nil {
		builder.WriteString("reports_to_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EscalatesToID; v != nil {
		builder.WriteString("escalates_to_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Positions is a parsable slice of Position.
type Positions []*Position
