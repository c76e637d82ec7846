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
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/project"
)

// ActivityMetricUpdate is the builder for updating ActivityMetric entities.
type ActivityMetricUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMetricMutation
}

// Where appends a list predicates to the ActivityMetricUpdate builder.
func (_u *ActivityMetricUpdate) Where(ps ...predicate.ActivityMetric) *ActivityMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBucketStart sets the "bucket_start" field.
func (_u *ActivityMetricUpdate) SetBucketStart(v time.Time) *ActivityMetricUpdate {
	_u.mutation.SetBucketStart(v)
	return _u
}

// SetNillableBucketStart sets the "bucket_start" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableBucketStart(v *time.Time) *ActivityMetricUpdate {
	if v != nil {
		_u.SetBucketStart(*v)
	}
	return _u
}

// SetIsOverall sets the "is_overall" field.
func (_u *ActivityMetricUpdate) SetIsOverall(v bool) *ActivityMetricUpdate {
	_u.mutation.SetIsOverall(v)
	return _u
}

// SetNillableIsOverall sets the "is_overall" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableIsOverall(v *bool) *ActivityMetricUpdate {
	if v != nil {
		_u.SetIsOverall(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ActivityMetricUpdate) SetAgentID(v int) *ActivityMetricUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableAgentID(v *int) *ActivityMetricUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ActivityMetricUpdate) ClearAgentID() *ActivityMetricUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ActivityMetricUpdate) SetProjectID(v int) *ActivityMetricUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableProjectID(v *int) *ActivityMetricUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ActivityMetricUpdate) ClearProjectID() *ActivityMetricUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ActivityMetricUpdate) SetTurnCount(v int) *ActivityMetricUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableTurnCount(v *int) *ActivityMetricUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ActivityMetricUpdate) AddTurnCount(v int) *ActivityMetricUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetCommandCount sets the "command_count" field.
func (_u *ActivityMetricUpdate) SetCommandCount(v int) *ActivityMetricUpdate {
	_u.mutation.ResetCommandCount()
	_u.mutation.SetCommandCount(v)
	return _u
}

// SetNillableCommandCount sets the "command_count" field if the given value is not nil.
func (_u *ActivityMetricUpdate) SetNillableCommandCount(v *int) *ActivityMetricUpdate {
	if v != nil {
		_u.SetCommandCount(*v)
	}
	return _u
}

// AddCommandCount adds value to the "command_count" field.
func (_u *ActivityMetricUpdate) AddCommandCount(v int) *ActivityMetricUpdate {
	_u.mutation.AddCommandCount(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ActivityMetricUpdate) SetAgent(v *Agent) *ActivityMetricUpdate {
	return _u.SetAgentID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ActivityMetricUpdate) SetProject(v *Project) *ActivityMetricUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ActivityMetricMutation object of the builder.
func (_u *ActivityMetricUpdate) Mutation() *ActivityMetricMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ActivityMetricUpdate) ClearAgent() *ActivityMetricUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ActivityMetricUpdate) ClearProject() *ActivityMetricUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activitymetric.Table, activitymetric.Columns, sqlgraph.NewFieldSpec(activitymetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BucketStart(); ok {
		_spec.SetField(activitymetric.FieldBucketStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsOverall(); ok {
		_spec.SetField(activitymetric.FieldIsOverall, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(activitymetric.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(activitymetric.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandCount(); ok {
		_spec.SetField(activitymetric.FieldCommandCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandCount(); ok {
		_spec.AddField(activitymetric.FieldCommandCount, field.TypeInt, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.AgentTable,
			Columns: []string{activitymetric.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.AgentTable,
			Columns: []string{activitymetric.AgentColumn},
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
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.ProjectTable,
			Columns: []string{activitymetric.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.ProjectTable,
			Columns: []string{activitymetric.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitymetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityMetricUpdateOne is the builder for updating a single ActivityMetric entity.
type ActivityMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMetricMutation
}

// SetBucketStart sets the "bucket_start" field.
func (_u *ActivityMetricUpdateOne) SetBucketStart(v time.Time) *ActivityMetricUpdateOne {
	_u.mutation.SetBucketStart(v)
	return _u
}

// SetNillableBucketStart sets the "bucket_start" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableBucketStart(v *time.Time) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetBucketStart(*v)
	}
	return _u
}

// SetIsOverall sets the "is_overall" field.
func (_u *ActivityMetricUpdateOne) SetIsOverall(v bool) *ActivityMetricUpdateOne {
	_u.mutation.SetIsOverall(v)
	return _u
}

// SetNillableIsOverall sets the "is_overall" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableIsOverall(v *bool) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetIsOverall(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ActivityMetricUpdateOne) SetAgentID(v int) *ActivityMetricUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableAgentID(v *int) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ActivityMetricUpdateOne) ClearAgentID() *ActivityMetricUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ActivityMetricUpdateOne) SetProjectID(v int) *ActivityMetricUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableProjectID(v *int) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ActivityMetricUpdateOne) ClearProjectID() *ActivityMetricUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ActivityMetricUpdateOne) SetTurnCount(v int) *ActivityMetricUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableTurnCount(v *int) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ActivityMetricUpdateOne) AddTurnCount(v int) *ActivityMetricUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetCommandCount sets the "command_count" field.
func (_u *ActivityMetricUpdateOne) SetCommandCount(v int) *ActivityMetricUpdateOne {
	_u.mutation.ResetCommandCount()
	_u.mutation.SetCommandCount(v)
	return _u
}

// SetNillableCommandCount sets the "command_count" field if the given value is not nil.
func (_u *ActivityMetricUpdateOne) SetNillableCommandCount(v *int) *ActivityMetricUpdateOne {
	if v != nil {
		_u.SetCommandCount(*v)
	}
	return _u
}

// AddCommandCount adds value to the "command_count" field.
func (_u *ActivityMetricUpdateOne) AddCommandCount(v int) *ActivityMetricUpdateOne {
	_u.mutation.AddCommandCount(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *ActivityMetricUpdateOne) SetAgent(v *Agent) *ActivityMetricUpdateOne {
	return _u.SetAgentID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ActivityMetricUpdateOne) SetProject(v *Project) *ActivityMetricUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ActivityMetricMutation object of the builder.
func (_u *ActivityMetricUpdateOne) Mutation() *ActivityMetricMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *ActivityMetricUpdateOne) ClearAgent() *ActivityMetricUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ActivityMetricUpdateOne) ClearProject() *ActivityMetricUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ActivityMetricUpdate builder.
func (_u *ActivityMetricUpdateOne) Where(ps ...predicate.ActivityMetric) *ActivityMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityMetricUpdateOne) Select(field string, fields ...string) *ActivityMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityMetric entity.
func (_u *ActivityMetricUpdateOne) Save(ctx context.Context) (*ActivityMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityMetricUpdateOne) SaveX(ctx context.Context) *ActivityMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityMetricUpdateOne) sqlSave(ctx context.Context) (_node *ActivityMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(activitymetric.Table, activitymetric.Columns, sqlgraph.NewFieldSpec(activitymetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitymetric.FieldID)
		for _, f := range fields {
			if !activitymetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activitymetric.FieldID {
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
	if value, ok := _u.mutation.BucketStart(); ok {
		_spec.SetField(activitymetric.FieldBucketStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsOverall(); ok {
		_spec.SetField(activitymetric.FieldIsOverall, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(activitymetric.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(activitymetric.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CommandCount(); ok {
		_spec.SetField(activitymetric.FieldCommandCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommandCount(); ok {
		_spec.AddField(activitymetric.FieldCommandCount, field.TypeInt, value)
	}
	if _u.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.AgentTable,
			Columns: []string{activitymetric.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.AgentTable,
			Columns: []string{activitymetric.AgentColumn},
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
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.ProjectTable,
			Columns: []string{activitymetric.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activitymetric.ProjectTable,
			Columns: []string{activitymetric.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActivityMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitymetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
