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
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/role"
)

// PersonaCreate is the builder for creating a Persona entity.
type PersonaCreate struct {
	config
	mutation *PersonaMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *PersonaCreate) SetSlug(v string) *PersonaCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PersonaCreate) SetName(v string) *PersonaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PersonaCreate) SetDescription(v string) *PersonaCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableDescription(v *string) *PersonaCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PersonaCreate) SetStatus(v persona.Status) *PersonaCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableStatus(v *persona.Status) *PersonaCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkillPath sets the "skill_path" field.
func (_c *PersonaCreate) SetSkillPath(v string) *PersonaCreate {
	_c.mutation.SetSkillPath(v)
	return _c
}

// SetNillableSkillPath sets the "skill_path" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableSkillPath(v *string) *PersonaCreate {
	if v != nil {
		_c.SetSkillPath(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonaCreate) SetCreatedAt(v time.Time) *PersonaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableCreatedAt(v *time.Time) *PersonaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *PersonaCreate) SetArchivedAt(v time.Time) *PersonaCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableArchivedAt(v *time.Time) *PersonaCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetRoleID sets the "role" edge to the Role entity by ID.
func (_c *PersonaCreate) SetRoleID(id int) *PersonaCreate {
	_c.mutation.SetRoleID(id)
	return _c
}

// SetNillableRoleID sets the "role" edge to the Role entity by ID if the given value is not nil.
func (_c *PersonaCreate) SetNillableRoleID(id *int) *PersonaCreate {
	if id != nil {
		_c = _c.SetRoleID(*id)
	}
	return _c
}

// SetRole sets the "role" edge to the Role entity.
func (_c *PersonaCreate) SetRole(v *Role) *PersonaCreate {
	return _c.SetRoleID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *PersonaCreate) AddAgentIDs(ids ...int) *PersonaCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *PersonaCreate) AddAgents(v ...*Agent) *PersonaCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_c *PersonaCreate) Mutation() *PersonaMutation {
	return _c.mutation
}

// Save creates the Persona in the database.
func (_c *PersonaCreate) Save(ctx context.Context) (*Persona, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonaCreate) SaveX(ctx context.Context) *Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonaCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := persona.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := persona.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonaCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Persona.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := persona.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Persona.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Persona.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Persona.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := persona.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Persona.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Persona.created_at"`)}
	}
	return nil
}

func (_c *PersonaCreate) sqlSave(ctx context.Context) (*Persona, error) {
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

func (_c *PersonaCreate) createSpec() (*Persona, *sqlgraph.CreateSpec) {
	var (
		_node = &Persona{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(persona.Table, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(persona.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(persona.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(persona.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkillPath(); ok {
		_spec.SetField(persona.FieldSkillPath, field.TypeString, value)
		_node.SkillPath = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(persona.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(persona.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if nodes := _c.mutation.RoleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   persona.RoleTable,
			Columns: []string{persona.RoleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(role.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.role_personas = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   persona.AgentsTable,
			Columns: []string{persona.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PersonaCreateBulk is the builder for creating many Persona entities in bulk.
type PersonaCreateBulk struct {
	config
	err      error
	builders []*PersonaCreate
}

// Save creates the Persona entities in the database.
func (_c *PersonaCreateBulk) Save(ctx context.Context) ([]*Persona, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Persona, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonaMutation)
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
func (_c *PersonaCreateBulk) SaveX(ctx context.Context) []*Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
