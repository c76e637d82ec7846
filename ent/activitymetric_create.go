// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/activitymetric"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/project"
)

// ActivityMetricCreate is the builder for creating a ActivityMetric entity.
type ActivityMetricCreate struct {
	config
	mutation *ActivityMetricMutation
	hooks    []Hook
}

// SetBucketStart sets the "bucket_start" field.
func (_c *ActivityMetricCreate) SetBucketStart(v time.Time) *ActivityMetricCreate {
	_c.mutation.SetBucketStart(v)
	return _c
}

// SetIsOverall sets the "is_overall" field.
func (_c *ActivityMetricCreate) SetIsOverall(v bool) *ActivityMetricCreate {
	_c.mutation.SetIsOverall(v)
	return _c
}

// SetNillableIsOverall sets the "is_overall" field if the given value is not nil.
func (_c *ActivityMetricCreate) SetNillableIsOverall(v *bool) *ActivityMetricCreate {
	if v != nil {
		_c.SetIsOverall(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ActivityMetricCreate) SetAgentID(v int) *ActivityMetricCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ActivityMetricCreate) SetNillableAgentID(v *int) *ActivityMetricCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ActivityMetricCreate) SetProjectID(v int) *ActivityMetricCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *ActivityMetricCreate) SetNillableProjectID(v *int) *ActivityMetricCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *ActivityMetricCreate) SetTurnCount(v int) *ActivityMetricCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *ActivityMetricCreate) SetNillableTurnCount(v *int) *ActivityMetricCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetCommandCount sets the "command_count" field.
func (_c *ActivityMetricCreate) SetCommandCount(v int) *ActivityMetricCreate {
	_c.mutation.SetCommandCount(v)
	return _c
}

// SetNillableCommandCount sets the "command_count" field if the given value is not nil.
func (_c *ActivityMetricCreate) SetNillableCommandCount(v *int) *ActivityMetricCreate {
	if v != nil {
		_c.SetCommandCount(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *ActivityMetricCreate) SetAgent(v *Agent) *ActivityMetricCreate {
	return _c.SetAgentID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ActivityMetricCreate) SetProject(v *Project) *ActivityMetricCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ActivityMetricMutation object of the builder.
func (_c *ActivityMetricCreate) Mutation() *ActivityMetricMutation {
	return _c.mutation
}

// Save creates the ActivityMetric in the database.
func (_c *ActivityMetricCreate) Save(ctx context.Context) (*ActivityMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityMetricCreate) SaveX(ctx context.Context) *ActivityMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityMetricCreate) defaults() {
	if _, ok := _c.mutation.IsOverall(); !ok {
		v := activitymetric.DefaultIsOverall
		_c.mutation.SetIsOverall(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := activitymetric.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.CommandCount(); !ok {
		v := activitymetric.DefaultCommandCount
		_c.mutation.SetCommandCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityMetricCreate) check() error {
	if _, ok := _c.mutation.BucketStart(); !ok {
		return &ValidationError{Name: "bucket_start", err: errors.New(`ent: missing required field "ActivityMetric.bucket_start"`)}
	}
	if _, ok := _c.mutation.IsOverall(); !ok {
		return &ValidationError{Name: "is_overall", err: errors.New(`ent: missing required field "ActivityMetric.is_overall"`)}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "ActivityMetric.turn_count"`)}
	}
	if _, ok := _c.mutation.CommandCount(); !ok {
		return &ValidationError{Name: "command_count", err: errors.New(`ent: missing required field "ActivityMetric.command_count"`)}
	}
	return nil
}

func (_c *ActivityMetricCreate) sqlSave(ctx context.Context) (*ActivityMetric, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityMetricCreate) createSpec() (*ActivityMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activitymetric.Table, sqlgraph.NewFieldSpec(activitymetric.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BucketStart(); ok {
		_spec.SetField(activitymetric.FieldBucketStart, field.TypeTime, value)
		_node.BucketStart = value
	}
	if value, ok := _c.mutation.IsOverall(); ok {
		_spec.SetField(activitymetric.FieldIsOverall, field.TypeBool, value)
		_node.IsOverall = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(activitymetric.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.CommandCount(); ok {
		_spec.SetField(activitymetric.FieldCommandCount, field.TypeInt, value)
		_node.CommandCount = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
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
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActivityMetricCreateBulk is the builder for creating many ActivityMetric entities in bulk.
type ActivityMetricCreateBulk struct {
	config
	err      error
	builders []*ActivityMetricCreate
}

// Save creates the ActivityMetric entities in the database.
func (_c *ActivityMetricCreateBulk) Save(ctx context.Context) ([]*ActivityMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityMetricMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivityMetricCreateBulk) SaveX(ctx context.Context) []*ActivityMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
