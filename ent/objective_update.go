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
	"github.com/headspace-sh/headspace/ent/objective"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ObjectiveUpdate is the builder for updating Objective entities.
type ObjectiveUpdate struct {
	config
	hooks    []Hook
	mutation *ObjectiveMutation
}

// Where appends a list predicates to the ObjectiveUpdate builder.
func (_u *ObjectiveUpdate) Where(ps ...predicate.Objective) *ObjectiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *ObjectiveUpdate) SetText(v string) *ObjectiveUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillableText(v *string) *ObjectiveUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPriorityEnabled sets the "priority_enabled" field.
func (_u *ObjectiveUpdate) SetPriorityEnabled(v bool) *ObjectiveUpdate {
	_u.mutation.SetPriorityEnabled(v)
	return _u
}

// SetNillablePriorityEnabled sets the "priority_enabled" field if the given value is not nil.
func (_u *ObjectiveUpdate) SetNillablePriorityEnabled(v *bool) *ObjectiveUpdate {
	if v != nil {
		_u.SetPriorityEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectiveUpdate) SetUpdatedAt(v time.Time) *ObjectiveUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_u *ObjectiveUpdate) Mutation() *ObjectiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObjectiveUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObjectiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectiveUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjectiveUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := objective.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Objective.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ObjectiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objective.Table, objective.Columns, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(objective.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityEnabled(); ok {
		_spec.SetField(objective.FieldPriorityEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{objective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObjectiveUpdateOne is the builder for updating a single Objective entity.
type ObjectiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObjectiveMutation
}

// SetText sets the "text" field.
func (_u *ObjectiveUpdateOne) SetText(v string) *ObjectiveUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillableText(v *string) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPriorityEnabled sets the "priority_enabled" field.
func (_u *ObjectiveUpdateOne) SetPriorityEnabled(v bool) *ObjectiveUpdateOne {
	_u.mutation.SetPriorityEnabled(v)
	return _u
}

// SetNillablePriorityEnabled sets the "priority_enabled" field if the given value is not nil.
func (_u *ObjectiveUpdateOne) SetNillablePriorityEnabled(v *bool) *ObjectiveUpdateOne {
	if v != nil {
		_u.SetPriorityEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ObjectiveUpdateOne) SetUpdatedAt(v time.Time) *ObjectiveUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ObjectiveMutation object of the builder.
func (_u *ObjectiveUpdateOne) Mutation() *ObjectiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObjectiveUpdate builder.
func (_u *ObjectiveUpdateOne) Where(ps ...predicate.Objective) *ObjectiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObjectiveUpdateOne) Select(field string, fields ...string) *ObjectiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Objective entity.
func (_u *ObjectiveUpdateOne) Save(ctx context.Context) (*Objective, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObjectiveUpdateOne) SaveX(ctx context.Context) *Objective {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObjectiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObjectiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ObjectiveUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := objective.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObjectiveUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := objective.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Objective.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ObjectiveUpdateOne) sqlSave(ctx context.Context) (_node *Objective, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(objective.Table, objective.Columns, sqlgraph.NewFieldSpec(objective.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Objective.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, objective.FieldID)
		for _, f := range fields {
			if !objective.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != objective.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(objective.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityEnabled(); ok {
		_spec.SetField(objective.FieldPriorityEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(objective.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Objective{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{objective.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
