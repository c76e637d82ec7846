// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// HeadspaceSnapshotUpdate is the builder for updating HeadspaceSnapshot entities.
type HeadspaceSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *HeadspaceSnapshotMutation
}

// Where appends a list predicates to the HeadspaceSnapshotUpdate builder.
func (_u *HeadspaceSnapshotUpdate) Where(ps ...predicate.HeadspaceSnapshot) *HeadspaceSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the HeadspaceSnapshotMutation object of the builder.
func (_u *HeadspaceSnapshotUpdate) Mutation() *HeadspaceSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeadspaceSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeadspaceSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeadspaceSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeadspaceSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeadspaceSnapshotUpdate) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HeadspaceSnapshot.agent"`)
	}
	return nil
}

func (_u *HeadspaceSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(headspacesnapshot.Table, headspacesnapshot.Columns, sqlgraph.NewFieldSpec(headspacesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{headspacesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeadspaceSnapshotUpdateOne is the builder for updating a single HeadspaceSnapshot entity.
type HeadspaceSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeadspaceSnapshotMutation
}

// Mutation returns the HeadspaceSnapshotMutation object of the builder.
func (_u *HeadspaceSnapshotUpdateOne) Mutation() *HeadspaceSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the HeadspaceSnapshotUpdate builder.
func (_u *HeadspaceSnapshotUpdateOne) Where(ps ...predicate.HeadspaceSnapshot) *HeadspaceSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeadspaceSnapshotUpdateOne) Select(field string, fields ...string) *HeadspaceSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HeadspaceSnapshot entity.
func (_u *HeadspaceSnapshotUpdateOne) Save(ctx context.Context) (*HeadspaceSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeadspaceSnapshotUpdateOne) SaveX(ctx context.Context) *HeadspaceSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeadspaceSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeadspaceSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeadspaceSnapshotUpdateOne) check() error {
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HeadspaceSnapshot.agent"`)
	}
	return nil
}

func (_u *HeadspaceSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *HeadspaceSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(headspacesnapshot.Table, headspacesnapshot.Columns, sqlgraph.NewFieldSpec(headspacesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HeadspaceSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, headspacesnapshot.FieldID)
		for _, f := range fields {
			if !headspacesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != headspacesnapshot.FieldID {
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
	_node = &HeadspaceSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{headspacesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
