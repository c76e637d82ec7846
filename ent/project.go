// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/headspace-sh/headspace/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// URL-safe identifier
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Absolute filesystem path (unique per host)
	Path string `json:"path,omitempty"`
	// GitOriginURL holds the value of the "git_origin_url" field.
	GitOriginURL *string `json:"git_origin_url,omitempty"`
	// GitBranch holds the value of the "git_branch" field.
	GitBranch *string `json:"git_branch,omitempty"`
	// When true no oracle calls are issued for this project
	InferencePaused bool `json:"inference_paused,omitempty"`
	// InferencePausedReason holds the value of the "inference_paused_reason" field.
	InferencePausedReason *string `json:"inference_paused_reason,omitempty"`
	// InferencePausedAt holds the value of the "inference_paused_at" field.
	InferencePausedAt *time.Time `json:"inference_paused_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// ActivityMetrics holds the value of the activity_metrics edge.
	ActivityMetrics []*ActivityMetric `json:"activity_metrics,omitempty"`
	// InferenceCalls holds the value of the inference_calls edge.
	InferenceCalls []*InferenceCall `json:"inference_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[0] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ActivityMetricsOrErr returns the ActivityMetrics value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ActivityMetricsOrErr() ([]*ActivityMetric, error) {
	if e.loadedTypes[2] {
		return e.ActivityMetrics, nil
	}
	return nil, &NotLoadedError{edge: "activity_metrics"}
}

// InferenceCallsOrErr returns the InferenceCalls value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) InferenceCallsOrErr() ([]*InferenceCall, error) {
	if e.loadedTypes[3] {
		return e.InferenceCalls, nil
	}
	return nil, &NotLoadedError{edge: "inference_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldInferencePaused:
			values[i] = new(sql.NullBool)
		case project.FieldID:
			values[i] = new(sql.NullInt64)
		case project.FieldSlug, project.FieldName, project.FieldPath, project.FieldGitOriginURL, project.FieldGitBranch, project.FieldInferencePausedReason:
			values[i] = new(sql.NullString)
		case project.FieldInferencePausedAt, project.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case project.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case project.FieldGitOriginURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_origin_url", values[i])
			} else if value.Valid {
				_m.GitOriginURL = new(string)
				*_m.GitOriginURL = value.String
			}
		case project.FieldGitBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_branch", values[i])
			} else if value.Valid {
				_m.GitBranch = new(string)
				*_m.GitBranch = value.String
			}
		case project.FieldInferencePaused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field inference_paused", values[i])
			} else if value.Valid {
				_m.InferencePaused = value.Bool
			}
		case project.FieldInferencePausedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inference_paused_reason", values[i])
			} else if value.Valid {
				_m.InferencePausedReason = new(string)
				*_m.InferencePausedReason = value.String
			}
		case project.FieldInferencePausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field inference_paused_at", values[i])
			} else if value.Valid {
				_m.InferencePausedAt = new(time.Time)
				*_m.InferencePausedAt = value.Time
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgents queries the "agents" edge of the Project entity.
func (_m *Project) QueryAgents() *AgentQuery {
	return NewProjectClient(_m.config).QueryAgents(_m)
}

// QueryEvents queries the "events" edge of the Project entity.
func (_m *Project) QueryEvents() *EventQuery {
	return NewProjectClient(_m.config).QueryEvents(_m)
}

// QueryActivityMetrics queries the "activity_metrics" edge of the Project entity.
func (_m *Project) QueryActivityMetrics() *ActivityMetricQuery {
	return NewProjectClient(_m.config).QueryActivityMetrics(_m)
}

// QueryInferenceCalls queries the "inference_calls" edge of the Project entity.
func (_m *Project) QueryInferenceCalls() *InferenceCallQuery {
	return NewProjectClient(_m.config).QueryInferenceCalls(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	if v := _m.GitOriginURL; v != nil {
		builder.WriteString("git_origin_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GitBranch; v != nil {
		builder.WriteString("git_branch=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("inference_paused=")
	builder.WriteString(fmt.Sprintf("%v", _m.InferencePaused))
	builder.WriteString(", ")
	if v := _m.InferencePausedReason; v != nil {
		builder.WriteString("inference_paused_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InferencePausedAt; v != nil {
		builder.WriteString("inference_paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
