// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/apicalllog"
)

// ApiCallLogCreate is the builder for creating a ApiCallLog entity.
type ApiCallLogCreate struct {
	config
	mutation *ApiCallLogMutation
	hooks    []Hook
}

// SetMethod sets the "method" field.
func (_c *ApiCallLogCreate) SetMethod(v string) *ApiCallLogCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *ApiCallLogCreate) SetPath(v string) *ApiCallLogCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApiCallLogCreate) SetStatus(v int) *ApiCallLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ApiCallLogCreate) SetLatencyMs(v int) *ApiCallLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetAuthenticated sets the "authenticated" field.
func (_c *ApiCallLogCreate) SetAuthenticated(v bool) *ApiCallLogCreate {
	_c.mutation.SetAuthenticated(v)
	return _c
}

// SetNillableAuthenticated sets the "authenticated" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableAuthenticated(v *bool) *ApiCallLogCreate {
	if v != nil {
		_c.SetAuthenticated(*v)
	}
	return _c
}

// SetRequestHeaders sets the "request_headers" field.
func (_c *ApiCallLogCreate) SetRequestHeaders(v map[string]string) *ApiCallLogCreate {
	_c.mutation.SetRequestHeaders(v)
	return _c
}

// SetRequestBody sets the "request_body" field.
func (_c *ApiCallLogCreate) SetRequestBody(v string) *ApiCallLogCreate {
	_c.mutation.SetRequestBody(v)
	return _c
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableRequestBody(v *string) *ApiCallLogCreate {
	if v != nil {
		_c.SetRequestBody(*v)
	}
	return _c
}

// SetResponseBody sets the "response_body" field.
func (_c *ApiCallLogCreate) SetResponseBody(v string) *ApiCallLogCreate {
	_c.mutation.SetResponseBody(v)
	return _c
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableResponseBody(v *string) *ApiCallLogCreate {
	if v != nil {
		_c.SetResponseBody(*v)
	}
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *ApiCallLogCreate) SetTruncated(v bool) *ApiCallLogCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableTruncated(v *bool) *ApiCallLogCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApiCallLogCreate) SetCreatedAt(v time.Time) *ApiCallLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApiCallLogCreate) SetNillableCreatedAt(v *time.Time) *ApiCallLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ApiCallLogMutation object of the builder.
func (_c *ApiCallLogCreate) Mutation() *ApiCallLogMutation {
	return _c.mutation
}

// Save creates the ApiCallLog in the database.
func (_c *ApiCallLogCreate) Save(ctx context.Context) (*ApiCallLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiCallLogCreate) SaveX(ctx context.Context) *ApiCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiCallLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiCallLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApiCallLogCreate) defaults() {
	if _, ok := _c.mutation.Authenticated(); !ok {
		v := apicalllog.DefaultAuthenticated
		_c.mutation.SetAuthenticated(v)
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		v := apicalllog.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := apicalllog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiCallLogCreate) check() error {
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ApiCallLog.method"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "ApiCallLog.path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApiCallLog.status"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ApiCallLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.Authenticated(); !ok {
		return &ValidationError{Name: "authenticated", err: errors.New(`ent: missing required field "ApiCallLog.authenticated"`)}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "ApiCallLog.truncated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApiCallLog.created_at"`)}
	}
	return nil
}

func (_c *ApiCallLogCreate) sqlSave(ctx context.Context) (*ApiCallLog, error) {
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

func (_c *ApiCallLogCreate) createSpec() (*ApiCallLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiCallLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apicalllog.Table, sqlgraph.NewFieldSpec(apicalllog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(apicalllog.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(apicalllog.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(apicalllog.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(apicalllog.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Authenticated(); ok {
		_spec.SetField(apicalllog.FieldAuthenticated, field.TypeBool, value)
		_node.Authenticated = value
	}
	if value, ok := _c.mutation.RequestHeaders(); ok {
		_spec.SetField(apicalllog.FieldRequestHeaders, field.TypeJSON, value)
		_node.RequestHeaders = value
	}
	if value, ok := _c.mutation.RequestBody(); ok {
		_spec.SetField(apicalllog.FieldRequestBody, field.TypeString, value)
		_node.RequestBody = value
	}
	if value, ok := _c.mutation.ResponseBody(); ok {
		_spec.SetField(apicalllog.FieldResponseBody, field.TypeString, value)
		_node.ResponseBody = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(apicalllog.FieldTruncated, field.TypeBool, value)
		_node.Truncated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(apicalllog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ApiCallLogCreateBulk is the builder for creating many ApiCallLog entities in bulk.
type ApiCallLogCreateBulk struct {
	config
	err      error
	builders []*ApiCallLogCreate
}

// Save creates the ApiCallLog entities in the database.
func (_c *ApiCallLogCreateBulk) Save(ctx context.Context) ([]*ApiCallLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiCallLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiCallLogMutation)
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
func (_c *ApiCallLogCreateBulk) SaveX(ctx context.Context) []*ApiCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiCallLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiCallLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
