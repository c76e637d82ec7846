// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
)

// HeadspaceSnapshotCreate is the builder for creating a HeadspaceSnapshot entity.
type HeadspaceSnapshotCreate struct {
	config
	mutation *HeadspaceSnapshotMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *HeadspaceSnapshotCreate) SetAgentID(v int) *HeadspaceSnapshotCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *HeadspaceSnapshotCreate) SetCapturedAt(v time.Time) *HeadspaceSnapshotCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *HeadspaceSnapshotCreate) SetNillableCapturedAt(v *time.Time) *HeadspaceSnapshotCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetContextPercentUsed sets the "context_percent_used" field.
func (_c *HeadspaceSnapshotCreate) SetContextPercentUsed(v int) *HeadspaceSnapshotCreate {
	_c.mutation.SetContextPercentUsed(v)
	return _c
}

// SetContextRemainingTokens sets the "context_remaining_tokens" field.
func (_c *HeadspaceSnapshotCreate) SetContextRemainingTokens(v string) *HeadspaceSnapshotCreate {
	_c.mutation.SetContextRemainingTokens(v)
	return _c
}

// SetRaw sets the "raw" field.
func (_c *HeadspaceSnapshotCreate) SetRaw(v string) *HeadspaceSnapshotCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *HeadspaceSnapshotCreate) SetAgent(v *Agent) *HeadspaceSnapshotCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the HeadspaceSnapshotMutation object of the builder.
func (_c *HeadspaceSnapshotCreate) Mutation() *HeadspaceSnapshotMutation {
	return _c.mutation
}

// Save creates the HeadspaceSnapshot in the database.
func (_c *HeadspaceSnapshotCreate) Save(ctx context.Context) (*HeadspaceSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeadspaceSnapshotCreate) SaveX(ctx context.Context) *HeadspaceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeadspaceSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeadspaceSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeadspaceSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := headspacesnapshot.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeadspaceSnapshotCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "HeadspaceSnapshot.agent_id"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "HeadspaceSnapshot.captured_at"`)}
	}
	if _, ok := _c.mutation.ContextPercentUsed(); !ok {
		return &ValidationError{Name: "context_percent_used", err: errors.New(`ent: missing required field "HeadspaceSnapshot.context_percent_used"`)}
	}
	if _, ok := _c.mutation.ContextRemainingTokens(); !ok {
		return &ValidationError{Name: "context_remaining_tokens", err: errors.New(`ent: missing required field "HeadspaceSnapshot.context_remaining_tokens"`)}
	}
	if _, ok := _c.mutation.Raw(); !ok {
		return &ValidationError{Name: "raw", err: errors.New(`ent: missing required field "HeadspaceSnapshot.raw"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "HeadspaceSnapshot.agent"`)}
	}
	return nil
}

func (_c *HeadspaceSnapshotCreate) sqlSave(ctx context.Context) (*HeadspaceSnapshot, error) {
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

func (_c *HeadspaceSnapshotCreate) createSpec() (*HeadspaceSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &HeadspaceSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(headspacesnapshot.Table, sqlgraph.NewFieldSpec(headspacesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(headspacesnapshot.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	if value, ok := _c.mutation.ContextPercentUsed(); ok {
		_spec.SetField(headspacesnapshot.FieldContextPercentUsed, field.TypeInt, value)
		_node.ContextPercentUsed = value
	}
	if value, ok := _c.mutation.ContextRemainingTokens(); ok {
		_spec.SetField(headspacesnapshot.FieldContextRemainingTokens, field.TypeString, value)
		_node.ContextRemainingTokens = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(headspacesnapshot.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   headspacesnapshot.AgentTable,
			Columns: []string{headspacesnapshot.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HeadspaceSnapshotCreateBulk is the builder for creating many HeadspaceSnapshot entities in bulk.
type HeadspaceSnapshotCreateBulk struct {
	config
	err      error
	builders []*HeadspaceSnapshotCreate
}

// Save creates the HeadspaceSnapshot entities in the database.
func (_c *HeadspaceSnapshotCreateBulk) Save(ctx context.Context) ([]*HeadspaceSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HeadspaceSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeadspaceSnapshotMutation)
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
func (_c *HeadspaceSnapshotCreateBulk) SaveX(ctx context.Context) []*HeadspaceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeadspaceSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeadspaceSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
