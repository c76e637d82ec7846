// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/headspacesnapshot"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// HeadspaceSnapshotDelete is the builder for deleting a HeadspaceSnapshot entity.
type HeadspaceSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *HeadspaceSnapshotMutation
}

// Where appends a list predicates to the HeadspaceSnapshotDelete builder.
func (_d *HeadspaceSnapshotDelete) Where(ps ...predicate.HeadspaceSnapshot) *HeadspaceSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HeadspaceSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HeadspaceSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HeadspaceSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(headspacesnapshot.Table, sqlgraph.NewFieldSpec(headspacesnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// HeadspaceSnapshotDeleteOne is the builder for deleting a single HeadspaceSnapshot entity.
type HeadspaceSnapshotDeleteOne struct {
	_d *HeadspaceSnapshotDelete
}

// Where appends a list predicates to the HeadspaceSnapshotDelete builder.
func (_d *HeadspaceSnapshotDeleteOne) Where(ps ...predicate.HeadspaceSnapshot) *HeadspaceSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HeadspaceSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{headspacesnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HeadspaceSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
