// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/objective"
)

// Objective is the model entity for the Objective schema.
type Objective struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// PriorityEnabled holds the value of the "priority_enabled" field.
	PriorityEnabled bool `json:"priority_enabled,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Objective) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case objective.FieldPriorityEnabled:
			values[i] = new(sql.NullBool)
		case objective.FieldID:
			values[i] = new(sql.NullInt64)
		case objective.FieldText:
			values[i] = new(sql.NullString)
		case objective.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Objective fields.
func (_m *Objective) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case objective.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case objective.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case objective.FieldPriorityEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field priority_enabled", values[i])
			} else if value.Valid {
				_m.PriorityEnabled = value.Bool
			}
		case objective.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Objective.
// This includes values selected through modifiers, order, etc.
func (_m *Objective) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Objective.
// Note that you need to call Objective.Unwrap() before calling this method if this Objective
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Objective) Update() *ObjectiveUpdateOne {
	return NewObjectiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Objective entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Objective) Unwrap() *Objective {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Objective is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Objective) String() string {
	var builder strings.Builder
	builder.WriteString("Objective(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("priority_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityEnabled))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Objectives is a parsable slice of Objective.
type Objectives []*Objective
