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
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/ent/project"
	"github.com/headspace-sh/headspace/ent/turn"
)

// InferenceCallCreate is the builder for creating a InferenceCall entity.
type InferenceCallCreate struct {
	config
	mutation *InferenceCallMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *InferenceCallCreate) SetLevel(v inferencecall.Level) *InferenceCallCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetInputHash sets the "input_hash" field.
func (_c *InferenceCallCreate) SetInputHash(v string) *InferenceCallCreate {
	_c.mutation.SetInputHash(v)
	return _c
}

// SetCached sets the "cached" field.
func (_c *InferenceCallCreate) SetCached(v bool) *InferenceCallCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableCached(v *bool) *InferenceCallCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *InferenceCallCreate) SetPromptTokens(v int) *InferenceCallCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillablePromptTokens(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *InferenceCallCreate) SetCompletionTokens(v int) *InferenceCallCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableCompletionTokens(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *InferenceCallCreate) SetCostUsd(v float64) *InferenceCallCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableCostUsd(v *float64) *InferenceCallCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *InferenceCallCreate) SetLatencyMs(v int) *InferenceCallCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableLatencyMs(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InferenceCallCreate) SetCreatedAt(v time.Time) *InferenceCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableCreatedAt(v *time.Time) *InferenceCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *InferenceCallCreate) SetProjectID(v int) *InferenceCallCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableProjectID(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *InferenceCallCreate) SetAgentID(v int) *InferenceCallCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableAgentID(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetCommandID sets the "command_id" field.
func (_c *InferenceCallCreate) SetCommandID(v int) *InferenceCallCreate {
	_c.mutation.SetCommandID(v)
	return _c
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableCommandID(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetCommandID(*v)
	}
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *InferenceCallCreate) SetTurnID(v int) *InferenceCallCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_c *InferenceCallCreate) SetNillableTurnID(v *int) *InferenceCallCreate {
	if v != nil {
		_c.SetTurnID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *InferenceCallCreate) SetProject(v *Project) *InferenceCallCreate {
	return _c.SetProjectID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *InferenceCallCreate) SetAgent(v *Agent) *InferenceCallCreate {
	return _c.SetAgentID(v.ID)
}

// SetCommand sets the "command" edge to the Command entity.
func (_c *InferenceCallCreate) SetCommand(v *Command) *InferenceCallCreate {
	return _c.SetCommandID(v.ID)
}

// SetTurn sets the "turn" edge to the Turn entity.
func (_c *InferenceCallCreate) SetTurn(v *Turn) *InferenceCallCreate {
	return _c.SetTurnID(v.ID)
}

// Mutation returns the InferenceCallMutation object of the builder.
func (_c *InferenceCallCreate) Mutation() *InferenceCallMutation {
	return _c.mutation
}

// Save creates the InferenceCall in the database.
func (_c *InferenceCallCreate) Save(ctx context.Context) (*InferenceCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InferenceCallCreate) SaveX(ctx context.Context) *InferenceCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InferenceCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InferenceCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InferenceCallCreate) defaults() {
	if _, ok := _c.mutation.Cached(); !ok {
		v := inferencecall.DefaultCached
		_c.mutation.SetCached(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := inferencecall.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := inferencecall.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := inferencecall.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := inferencecall.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inferencecall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InferenceCallCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "InferenceCall.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := inferencecall.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InferenceCall.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputHash(); !ok {
		return &ValidationError{Name: "input_hash", err: errors.New(`ent: missing required field "InferenceCall.input_hash"`)}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "InferenceCall.cached"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "InferenceCall.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "InferenceCall.completion_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "InferenceCall.cost_usd"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "InferenceCall.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InferenceCall.created_at"`)}
	}
	return nil
}

func (_c *InferenceCallCreate) sqlSave(ctx context.Context) (*InferenceCall, error) {
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

func (_c *InferenceCallCreate) createSpec() (*InferenceCall, *sqlgraph.CreateSpec) {
	var (
		_node = &InferenceCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inferencecall.Table, sqlgraph.NewFieldSpec(inferencecall.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(inferencecall.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.InputHash(); ok {
		_spec.SetField(inferencecall.FieldInputHash, field.TypeString, value)
		_node.InputHash = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(inferencecall.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(inferencecall.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(inferencecall.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(inferencecall.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(inferencecall.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inferencecall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inferencecall.ProjectTable,
			Columns: []string{inferencecall.ProjectColumn},
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
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inferencecall.AgentTable,
			Columns: []string{inferencecall.AgentColumn},
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
	if nodes := _c.mutation.CommandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inferencecall.CommandTable,
			Columns: []string{inferencecall.CommandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommandID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TurnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inferencecall.TurnTable,
			Columns: []string{inferencecall.TurnColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(turn.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TurnID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InferenceCallCreateBulk is the builder for creating many InferenceCall entities in bulk.
type InferenceCallCreateBulk struct {
	config
	err      error
	builders []*InferenceCallCreate
}

// Save creates the InferenceCall entities in the database.
func (_c *InferenceCallCreateBulk) Save(ctx context.Context) ([]*InferenceCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InferenceCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InferenceCallMutation)
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
func (_c *InferenceCallCreateBulk) SaveX(ctx context.Context) []*InferenceCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InferenceCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InferenceCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
