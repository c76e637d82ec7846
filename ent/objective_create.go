// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/objective"
)

// ObjectiveCreate is the builder for creating a Objective entity.
type ObjectiveCreate struct {
	config
	mutation *ObjectiveMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *ObjectiveCreate) SetText(v string) *ObjectiveCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetPriorityEnabled sets the "priority_enabled" field.
func (_c *ObjectiveCreate) SetPriorityEnabled(v bool) *ObjectiveCreate {
	_c.mutation.SetPriorityEnabled(v)
	return _c
}

// SetNillablePriorityEnabled sets the "priority_enabled" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillablePriorityEnabled(v *bool) *ObjectiveCreate {
	if v != nil {
		_c.SetPriorityEnabled(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ObjectiveCreate) SetUpdatedAt(v time.Time) *ObjectiveCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ObjectiveCreate) SetNillableUpdatedAt(v *time.Time) *ObjectiveCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_c *ObjectiveCreate) Mutation() *ObjectiveMutation {
	return _c.mutation
}

// Save creates the Objective in the database.
func (_c *ObjectiveCreate) Save(ctx context.Context) (*Objective, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObjectiveCreate) SaveX(ctx context.Context) *Objective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjectiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjectiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObjectiveCreate) defaults() {
	if _, ok := _c.mutation.PriorityEnabled(); !ok {
		v := objective.DefaultPriorityEnabled
		_c.mutation.SetPriorityEnabled(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := objective.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObjectiveCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Objective.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := objective.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Objective.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorityEnabled(); !ok {
		return &ValidationError{Name: "priority_enabled", err: errors.New(`ent: missing required field "Objective.priority_enabled"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Objective.updated_at"`)}
	}
	return nil
}

func (_c *ObjectiveCreate) sqlSave(ctx context.Context) (*Objective, error) {
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

func (_c *ObjectiveCreate) createSpec() (*Objective, *sqlgraph.CreateSpec) {
	var (
		_node = &Objective{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(objective.Table, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(objective.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.PriorityEnabled(); ok {
		_spec.SetField(objective.FieldPriorityEnabled, field.TypeBool, value)
		_node.PriorityEnabled = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ObjectiveCreateBulk is the builder for creating many Objective entities in bulk.
type ObjectiveCreateBulk struct {
	config
	err      error
	builders []*ObjectiveCreate
}

// Save creates the Objective entities in the database.
func (_c *ObjectiveCreateBulk) Save(ctx context.Context) ([]*Objective, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Objective, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObjectiveMutation)
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
func (_c *ObjectiveCreateBulk) SaveX(ctx context.Context) []*Objective {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObjectiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObjectiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
