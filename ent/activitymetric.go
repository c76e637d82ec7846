// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/project"
)

// ActivityMetric is the model entity for the ActivityMetric schema.
type ActivityMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BucketStart holds the value of the "bucket_start" field.
	BucketStart time.Time `json:"bucket_start,omitempty"`
	// IsOverall holds the value of the "is_overall" field.
	IsOverall bool `json:"is_overall,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *int `json:"agent_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *int `json:"project_id,omitempty"`
	// TurnCount holds the value of the "turn_count" field.
	TurnCount int `json:"turn_count,omitempty"`
	// CommandCount holds the value of the "command_count" field.
	CommandCount int `json:"command_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActivityMetricQuery when eager-loading is set.
	Edges        ActivityMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActivityMetricEdges holds the relations/edges for other nodes in the graph.
type ActivityMetricEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActivityMetricEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActivityMetricEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activitymetric.FieldIsOverall:
			values[i] = new(sql.NullBool)
		case activitymetric.FieldID, activitymetric.FieldAgentID, activitymetric.FieldProjectID, activitymetric.FieldTurnCount, activitymetric.FieldCommandCount:
			values[i] = new(sql.NullInt64)
		case activitymetric.FieldBucketStart:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityMetric fields.
func (_m *ActivityMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activitymetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activitymetric.FieldBucketStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bucket_start", values[i])
			} else if value.Valid {
				_m.BucketStart = value.Time
			}
		case activitymetric.FieldIsOverall:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_overall", values[i])
			} else if value.Valid {
				_m.IsOverall = value.Bool
			}
		case activitymetric.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case activitymetric.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(int)
				*_m.ProjectID = int(value.Int64)
			}
		case activitymetric.FieldTurnCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_count", values[i])
			} else if value.Valid {
				_m.TurnCount = int(value.Int64)
			}
		case activitymetric.FieldCommandCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field command_count", values[i])
			} else if value.Valid {
				_m.CommandCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityMetric.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the ActivityMetric entity.
func (_m *ActivityMetric) QueryAgent() *AgentQuery {
	return NewActivityMetricClient(_m.config).QueryAgent(_m)
}

// QueryProject queries the "project" edge of the ActivityMetric entity.
func (_m *ActivityMetric) QueryProject() *ProjectQuery {
	return NewActivityMetricClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ActivityMetric.
// Note that you need to call ActivityMetric.Unwrap() before calling this method if this ActivityMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityMetric) Update() *ActivityMetricUpdateOne {
	return NewActivityMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityMetric) Unwrap() *ActivityMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityMetric) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bucket_start=")
	builder.WriteString(_m.BucketStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_overall=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOverall))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("turn_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnCount))
	builder.WriteString(", ")
	builder.WriteString("command_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandCount))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityMetrics is a parsable slice of ActivityMetric.
type ActivityMetrics []*ActivityMetric
