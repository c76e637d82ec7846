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
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/role"
)

// PersonaUpdate is the builder for updating Persona entities.
type PersonaUpdate struct {
	config
	hooks    []Hook
	mutation *PersonaMutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdate) Where(ps ...predicate.Persona) *PersonaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PersonaUpdate) SetSlug(v string) *PersonaUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableSlug(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PersonaUpdate) SetName(v string) *PersonaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableName(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PersonaUpdate) SetDescription(v string) *PersonaUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableDescription(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PersonaUpdate) ClearDescription() *PersonaUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PersonaUpdate) SetStatus(v persona.Status) *PersonaUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableStatus(v *persona.Status) *PersonaUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkillPath sets the "skill_path" field.
func (_u *PersonaUpdate) SetSkillPath(v string) *PersonaUpdate {
	_u.mutation.SetSkillPath(v)
	return _u
}

// SetNillableSkillPath sets the "skill_path" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableSkillPath(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetSkillPath(*v)
	}
	return _u
}

// ClearSkillPath clears the value of the "skill_path" field.
func (_u *PersonaUpdate) ClearSkillPath() *PersonaUpdate {
	_u.mutation.ClearSkillPath()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *PersonaUpdate) SetArchivedAt(v time.Time) *PersonaUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableArchivedAt(v *time.Time) *PersonaUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *PersonaUpdate) ClearArchivedAt() *PersonaUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetRoleID sets the "role" edge to the Role entity by ID.
func (_u *PersonaUpdate) SetRoleID(id int) *PersonaUpdate {
	_u.mutation.SetRoleID(id)
	return _u
}

// SetNillableRoleID sets the "role" edge to the Role entity by ID if the given value is not nil.
func (_u *PersonaUpdate) SetNillableRoleID(id *int) *PersonaUpdate {
	if id != nil {
		_u = _u.SetRoleID(*id)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *PersonaUpdate) SetRole(v *Role) *PersonaUpdate {
	return _u.SetRoleID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *PersonaUpdate) AddAgentIDs(ids ...int) *PersonaUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *PersonaUpdate) AddAgents(v ...*Agent) *PersonaUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdate) Mutation() *PersonaMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *PersonaUpdate) ClearRole() *PersonaUpdate {
	_u.mutation.ClearRole()
	return _u
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *PersonaUpdate) ClearAgents() *PersonaUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *PersonaUpdate) RemoveAgentIDs(ids ...int) *PersonaUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *PersonaUpdate) RemoveAgents(v ...*Agent) *PersonaUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonaUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := persona.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Persona.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := persona.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Persona.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(persona.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(persona.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(persona.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(persona.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkillPath(); ok {
		_spec.SetField(persona.FieldSkillPath, field.TypeString, value)
	}
	if _u.mutation.SkillPathCleared() {
		_spec.ClearField(persona.FieldSkillPath, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(persona.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(persona.FieldArchivedAt, field.TypeTime)
	}
	if _u.mutation.RoleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonaUpdateOne is the builder for updating a single Persona entity.
type PersonaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonaMutation
}

// SetSlug sets the "slug" field.
func (_u *PersonaUpdateOne) SetSlug(v string) *PersonaUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableSlug(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PersonaUpdateOne) SetName(v string) *PersonaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableName(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PersonaUpdateOne) SetDescription(v string) *PersonaUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableDescription(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PersonaUpdateOne) ClearDescription() *PersonaUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PersonaUpdateOne) SetStatus(v persona.Status) *PersonaUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableStatus(v *persona.Status) *PersonaUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkillPath sets the "skill_path" field.
func (_u *PersonaUpdateOne) SetSkillPath(v string) *PersonaUpdateOne {
	_u.mutation.SetSkillPath(v)
	return _u
}

// SetNillableSkillPath sets the "skill_path" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableSkillPath(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetSkillPath(*v)
	}
	return _u
}

// ClearSkillPath clears the value of the "skill_path" field.
func (_u *PersonaUpdateOne) ClearSkillPath() *PersonaUpdateOne {
	_u.mutation.ClearSkillPath()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *PersonaUpdateOne) SetArchivedAt(v time.Time) *PersonaUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableArchivedAt(v *time.Time) *PersonaUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *PersonaUpdateOne) ClearArchivedAt() *PersonaUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetRoleID sets the "role" edge to the Role entity by ID.
func (_u *PersonaUpdateOne) SetRoleID(id int) *PersonaUpdateOne {
	_u.mutation.SetRoleID(id)
	return _u
}

// SetNillableRoleID sets the "role" edge to the Role entity by ID if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableRoleID(id *int) *PersonaUpdateOne {
	if id != nil {
		_u = _u.SetRoleID(*id)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *PersonaUpdateOne) SetRole(v *Role) *PersonaUpdateOne {
	return _u.SetRoleID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *PersonaUpdateOne) AddAgentIDs(ids ...int) *PersonaUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *PersonaUpdateOne) AddAgents(v ...*Agent) *PersonaUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdateOne) Mutation() *PersonaMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *PersonaUpdateOne) ClearRole() *PersonaUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *PersonaUpdateOne) ClearAgents() *PersonaUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *PersonaUpdateOne) RemoveAgentIDs(ids ...int) *PersonaUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *PersonaUpdateOne) RemoveAgents(v ...*Agent) *PersonaUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdateOne) Where(ps ...predicate.Persona) *PersonaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonaUpdateOne) Select(field string, fields ...string) *PersonaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Persona entity.
func (_u *PersonaUpdateOne) Save(ctx context.Context) (*Persona, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdateOne) SaveX(ctx context.Context) *Persona {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonaUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := persona.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Persona.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := persona.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Persona.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonaUpdateOne) sqlSave(ctx context.Context) (_node *Persona, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Persona.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, persona.FieldID)
		for _, f := range fields {
			if !persona.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != persona.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(persona.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(persona.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(persona.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(persona.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkillPath(); ok {
		_spec.SetField(persona.FieldSkillPath, field.TypeString, value)
	}
	if _u.mutation.SkillPathCleared() {
		_spec.ClearField(persona.FieldSkillPath, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(persona.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(persona.FieldArchivedAt, field.TypeTime)
	}
	if _u.mutation.RoleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Persona{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
