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
	"github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/project"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ProjectUpdate) SetSlug(v string) *ProjectUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSlug(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ProjectUpdate) SetPath(v string) *ProjectUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePath(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetGitOriginURL sets the "git_origin_url" field.
func (_u *ProjectUpdate) SetGitOriginURL(v string) *ProjectUpdate {
	_u.mutation.SetGitOriginURL(v)
	return _u
}

// SetNillableGitOriginURL sets the "git_origin_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGitOriginURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetGitOriginURL(*v)
	}
	return _u
}

// ClearGitOriginURL clears the value of the "git_origin_url" field.
func (_u *ProjectUpdate) ClearGitOriginURL() *ProjectUpdate {
	_u.mutation.ClearGitOriginURL()
	return _u
}

// SetGitBranch sets the "git_branch" field.
func (_u *ProjectUpdate) SetGitBranch(v string) *ProjectUpdate {
	_u.mutation.SetGitBranch(v)
	return _u
}

// SetNillableGitBranch sets the "git_branch" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGitBranch(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetGitBranch(*v)
	}
	return _u
}

// ClearGitBranch clears the value of the "git_branch" field.
func (_u *ProjectUpdate) ClearGitBranch() *ProjectUpdate {
	_u.mutation.ClearGitBranch()
	return _u
}

// SetInferencePaused sets the "inference_paused" field.
func (_u *ProjectUpdate) SetInferencePaused(v bool) *ProjectUpdate {
	_u.mutation.SetInferencePaused(v)
	return _u
}

// SetNillableInferencePaused sets the "inference_paused" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableInferencePaused(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetInferencePaused(*v)
	}
	return _u
}

// SetInferencePausedReason sets the "inference_paused_reason" field.
func (_u *ProjectUpdate) SetInferencePausedReason(v string) *ProjectUpdate {
	_u.mutation.SetInferencePausedReason(v)
	return _u
}

// SetNillableInferencePausedReason sets the "inference_paused_reason" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableInferencePausedReason(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetInferencePausedReason(*v)
	}
	return _u
}

// ClearInferencePausedReason clears the value of the "inference_paused_reason" field.
func (_u *ProjectUpdate) ClearInferencePausedReason() *ProjectUpdate {
	_u.mutation.ClearInferencePausedReason()
	return _u
}

// SetInferencePausedAt sets the "inference_paused_at" field.
func (_u *ProjectUpdate) SetInferencePausedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetInferencePausedAt(v)
	return _u
}

// SetNillableInferencePausedAt sets the "inference_paused_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableInferencePausedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetInferencePausedAt(*v)
	}
	return _u
}

// ClearInferencePausedAt clears the value of the "inference_paused_at" field.
func (_u *ProjectUpdate) ClearInferencePausedAt() *ProjectUpdate {
	_u.mutation.ClearInferencePausedAt()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *ProjectUpdate) AddAgentIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *ProjectUpdate) AddAgents(v ...*Agent) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ProjectUpdate) AddEventIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ProjectUpdate) AddEvents(v ...*Event) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (_u *ProjectUpdate) AddActivityMetricIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddActivityMetricIDs(ids...)
	return _u
}

// AddActivityMetrics adds the "activity_metrics" edges to the ActivityMetric entity.
func (_u *ProjectUpdate) AddActivityMetrics(v ...*ActivityMetric) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityMetricIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *ProjectUpdate) AddInferenceCallIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *ProjectUpdate) AddInferenceCalls(v ...*InferenceCall) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *ProjectUpdate) ClearAgents() *ProjectUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *ProjectUpdate) RemoveAgentIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *ProjectUpdate) RemoveAgents(v ...*Agent) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ProjectUpdate) ClearEvents() *ProjectUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ProjectUpdate) RemoveEventIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ProjectUpdate) RemoveEvents(v ...*Event) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearActivityMetrics clears all "activity_metrics" edges to the ActivityMetric entity.
func (_u *ProjectUpdate) ClearActivityMetrics() *ProjectUpdate {
	_u.mutation.ClearActivityMetrics()
	return _u
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to ActivityMetric entities by IDs.
func (_u *ProjectUpdate) RemoveActivityMetricIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveActivityMetricIDs(ids...)
	return _u
}

// RemoveActivityMetrics removes "activity_metrics" edges to ActivityMetric entities.
func (_u *ProjectUpdate) RemoveActivityMetrics(v ...*ActivityMetric) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityMetricIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *ProjectUpdate) ClearInferenceCalls() *ProjectUpdate {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *ProjectUpdate) RemoveInferenceCallIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *ProjectUpdate) RemoveInferenceCalls(v ...*InferenceCall) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := project.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Project.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := project.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Project.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(project.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(project.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GitOriginURL(); ok {
		_spec.SetField(project.FieldGitOriginURL, field.TypeString, value)
	}
	if _u.mutation.GitOriginURLCleared() {
		_spec.ClearField(project.FieldGitOriginURL, field.TypeString)
	}
	if value, ok := _u.mutation.GitBranch(); ok {
		_spec.SetField(project.FieldGitBranch, field.TypeString, value)
	}
	if _u.mutation.GitBranchCleared() {
		_spec.ClearField(project.FieldGitBranch, field.TypeString)
	}
	if value, ok := _u.mutation.InferencePaused(); ok {
		_spec.SetField(project.FieldInferencePaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InferencePausedReason(); ok {
		_spec.SetField(project.FieldInferencePausedReason, field.TypeString, value)
	}
	if _u.mutation.InferencePausedReasonCleared() {
		_spec.ClearField(project.FieldInferencePausedReason, field.TypeString)
	}
	if value, ok := _u.mutation.InferencePausedAt(); ok {
		_spec.SetField(project.FieldInferencePausedAt, field.TypeTime, value)
	}
	if _u.mutation.InferencePausedAtCleared() {
		_spec.ClearField(project.FieldInferencePausedAt, field.TypeTime)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
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
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
	if _u.mutation.ActivityMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
	if _u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetSlug sets the "slug" field.
func (_u *ProjectUpdateOne) SetSlug(v string) *ProjectUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSlug(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ProjectUpdateOne) SetPath(v string) *ProjectUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePath(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetGitOriginURL sets the "git_origin_url" field.
func (_u *ProjectUpdateOne) SetGitOriginURL(v string) *ProjectUpdateOne {
	_u.mutation.SetGitOriginURL(v)
	return _u
}

// SetNillableGitOriginURL sets the "git_origin_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGitOriginURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetGitOriginURL(*v)
	}
	return _u
}

// ClearGitOriginURL clears the value of the "git_origin_url" field.
func (_u *ProjectUpdateOne) ClearGitOriginURL() *ProjectUpdateOne {
	_u.mutation.ClearGitOriginURL()
	return _u
}

// SetGitBranch sets the "git_branch" field.
func (_u *ProjectUpdateOne) SetGitBranch(v string) *ProjectUpdateOne {
	_u.mutation.SetGitBranch(v)
	return _u
}

// SetNillableGitBranch sets the "git_branch" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGitBranch(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetGitBranch(*v)
	}
	return _u
}

// ClearGitBranch clears the value of the "git_branch" field.
func (_u *ProjectUpdateOne) ClearGitBranch() *ProjectUpdateOne {
	_u.mutation.ClearGitBranch()
	return _u
}

// SetInferencePaused sets the "inference_paused" field.
func (_u *ProjectUpdateOne) SetInferencePaused(v bool) *ProjectUpdateOne {
	_u.mutation.SetInferencePaused(v)
	return _u
}

// SetNillableInferencePaused sets the "inference_paused" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableInferencePaused(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetInferencePaused(*v)
	}
	return _u
}

// SetInferencePausedReason sets the "inference_paused_reason" field.
func (_u *ProjectUpdateOne) SetInferencePausedReason(v string) *ProjectUpdateOne {
	_u.mutation.SetInferencePausedReason(v)
	return _u
}

// SetNillableInferencePausedReason sets the "inference_paused_reason" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableInferencePausedReason(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetInferencePausedReason(*v)
	}
	return _u
}

// ClearInferencePausedReason clears the value of the "inference_paused_reason" field.
func (_u *ProjectUpdateOne) ClearInferencePausedReason() *ProjectUpdateOne {
	_u.mutation.ClearInferencePausedReason()
	return _u
}

// SetInferencePausedAt sets the "inference_paused_at" field.
func (_u *ProjectUpdateOne) SetInferencePausedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetInferencePausedAt(v)
	return _u
}

// SetNillableInferencePausedAt sets the "inference_paused_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableInferencePausedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetInferencePausedAt(*v)
	}
	return _u
}

// ClearInferencePausedAt clears the value of the "inference_paused_at" field.
func (_u *ProjectUpdateOne) ClearInferencePausedAt() *ProjectUpdateOne {
	_u.mutation.ClearInferencePausedAt()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *ProjectUpdateOne) AddAgentIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *ProjectUpdateOne) AddAgents(v ...*Agent) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ProjectUpdateOne) AddEventIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ProjectUpdateOne) AddEvents(v ...*Event) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddActivityMetricIDs adds the "activity_metrics" edge to the ActivityMetric entity by IDs.
func (_u *ProjectUpdateOne) AddActivityMetricIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddActivityMetricIDs(ids...)
	return _u
}

// AddActivityMetrics adds the "activity_metrics" edges to the ActivityMetric entity.
func (_u *ProjectUpdateOne) AddActivityMetrics(v ...*ActivityMetric) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityMetricIDs(ids...)
}

// AddInferenceCallIDs adds the "inference_calls" edge to the InferenceCall entity by IDs.
func (_u *ProjectUpdateOne) AddInferenceCallIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddInferenceCallIDs(ids...)
	return _u
}

// AddInferenceCalls adds the "inference_calls" edges to the InferenceCall entity.
func (_u *ProjectUpdateOne) AddInferenceCalls(v ...*InferenceCall) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInferenceCallIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *ProjectUpdateOne) ClearAgents() *ProjectUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *ProjectUpdateOne) RemoveAgentIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *ProjectUpdateOne) RemoveAgents(v ...*Agent) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ProjectUpdateOne) ClearEvents() *ProjectUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ProjectUpdateOne) RemoveEventIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ProjectUpdateOne) RemoveEvents(v ...*Event) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearActivityMetrics clears all "activity_metrics" edges to the ActivityMetric entity.
func (_u *ProjectUpdateOne) ClearActivityMetrics() *ProjectUpdateOne {
	_u.mutation.ClearActivityMetrics()
	return _u
}

// RemoveActivityMetricIDs removes the "activity_metrics" edge to ActivityMetric entities by IDs.
func (_u *ProjectUpdateOne) RemoveActivityMetricIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveActivityMetricIDs(ids...)
	return _u
}

// RemoveActivityMetrics removes "activity_metrics" edges to ActivityMetric entities.
func (_u *ProjectUpdateOne) RemoveActivityMetrics(v ...*ActivityMetric) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityMetricIDs(ids...)
}

// ClearInferenceCalls clears all "inference_calls" edges to the InferenceCall entity.
func (_u *ProjectUpdateOne) ClearInferenceCalls() *ProjectUpdateOne {
	_u.mutation.ClearInferenceCalls()
	return _u
}

// RemoveInferenceCallIDs removes the "inference_calls" edge to InferenceCall entities by IDs.
func (_u *ProjectUpdateOne) RemoveInferenceCallIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveInferenceCallIDs(ids...)
	return _u
}

// RemoveInferenceCalls removes "inference_calls" edges to InferenceCall entities.
func (_u *ProjectUpdateOne) RemoveInferenceCalls(v ...*InferenceCall) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInferenceCallIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := project.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Project.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := project.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Project.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(project.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(project.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.GitOriginURL(); ok {
		_spec.SetField(project.FieldGitOriginURL, field.TypeString, value)
	}
	if _u.mutation.GitOriginURLCleared() {
		_spec.ClearField(project.FieldGitOriginURL, field.TypeString)
	}
	if value, ok := _u.mutation.GitBranch(); ok {
		_spec.SetField(project.FieldGitBranch, field.TypeString, value)
	}
	if _u.mutation.GitBranchCleared() {
		_spec.ClearField(project.FieldGitBranch, field.TypeString)
	}
	if value, ok := _u.mutation.InferencePaused(); ok {
		_spec.SetField(project.FieldInferencePaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InferencePausedReason(); ok {
		_spec.SetField(project.FieldInferencePausedReason, field.TypeString, value)
	}
	if _u.mutation.InferencePausedReasonCleared() {
		_spec.ClearField(project.FieldInferencePausedReason, field.TypeString)
	}
	if value, ok := _u.mutation.InferencePausedAt(); ok {
		_spec.SetField(project.FieldInferencePausedAt, field.TypeTime, value)
	}
	if _u.mutation.InferencePausedAtCleared() {
		_spec.ClearField(project.FieldInferencePausedAt, field.TypeTime)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
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
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentsTable,
			Columns: []string{project.AgentsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
			Table:   project.EventsTable,
			Columns: []string{project.EventsColumn},
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
	if _u.mutation.ActivityMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
			Table:   project.ActivityMetricsTable,
			Columns: []string{project.ActivityMetricsColumn},
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
	if _u.mutation.InferenceCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
			Table:   project.InferenceCallsTable,
			Columns: []string{project.InferenceCallsColumn},
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
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
