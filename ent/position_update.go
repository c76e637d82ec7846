// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/headspace-sh/headspace/ent/agent"
	"github.com/headspace-sh/headspace/ent/position"
	"github.com/headspace-sh/headspace/ent/predicate"
	"github.com/headspace-sh/headspace/ent/role"
)

// PositionUpdate is the builder for updating Position entities.
type PositionUpdate struct {
	config
	hooks    []Hook
	mutation *PositionMutation
}

// Where appends a list predicates to the PositionUpdate builder.
func (_u *PositionUpdate) Where(ps ...predicate.Position) *PositionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PositionUpdate) SetTitle(v string) *PositionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableTitle(v *string) *PositionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetReportsToID sets the "reports_to_id" field.
func (_u *PositionUpdate) SetReportsToID(v int) *PositionUpdate {
	_u.mutation.SetReportsToID(v)
	return _u
}

// SetNillableReportsToID sets the "reports_to_id" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableReportsToID(v *int) *PositionUpdate {
	if v != nil {
		_u.SetReportsToID(*v)
	}
	return _u
}

// ClearReportsToID clears the value of the "reports_to_id" field.
func (_u *PositionUpdate) ClearReportsToID() *PositionUpdate {
	_u.mutation.ClearReportsToID()
	return _u
}

// SetEscalatesToID sets the "escalates_to_id" field.
func (_u *PositionUpdate) SetEscalatesToID(v int) *PositionUpdate {
	_u.mutation.SetEscalatesToID(v)
	return _u
}

// SetNillableEscalatesToID sets the "escalates_to_id" field if the given value is not nil.
func (_u *PositionUpdate) SetNillableEscalatesToID(v *int) *PositionUpdate {
	if v != nil {
		_u.SetEscalatesToID(*v)
	}
	return _u
}

// ClearEscalatesToID clears the value of the "escalates_to_id" field.
func (_u *PositionUpdate) ClearEscalatesToID() *PositionUpdate {
	_u.mutation.ClearEscalatesToID()
	return _u
}

// SetRoleID sets the "role" edge to the Role entity by ID.
func (_u *PositionUpdate) SetRoleID(id int) *PositionUpdate {
	_u.mutation.SetRoleID(id)
	return _u
}

// SetNillableRoleID sets the "role" edge to the Role entity by ID if the given value is not nil.
func (_u *PositionUpdate) SetNillableRoleID(id *int) *PositionUpdate {
	if id != nil {
		_u = _u.SetRoleID(*id)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *PositionUpdate) SetRole(v *Role) *PositionUpdate {
	return _u.SetRoleID(v.ID)
}

// SetReportsTo sets the "reports_to" edge to the Position entity.
func (_u *PositionUpdate) SetReportsTo(v *Position) *PositionUpdate {
	return _u.SetReportsToID(v.ID)
}

// AddReportIDs adds the "reports" edge to the Position entity by IDs.
func (_u *PositionUpdate) AddReportIDs(ids ...int) *PositionUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Position entity.
func (_u *PositionUpdate) AddReports(v ...*Position) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// SetEscalatesTo sets the "escalates_to" edge to the Position entity.
func (_u *PositionUpdate) SetEscalatesTo(v *Position) *PositionUpdate {
	return _u.SetEscalatesToID(v.ID)
}

// AddEscalationIDs adds the "escalations" edge to the Position entity by IDs.
func (_u *PositionUpdate) AddEscalationIDs(ids ...int) *PositionUpdate {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the Position entity.
func (_u *PositionUpdate) AddEscalations(v ...*Position) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *PositionUpdate) AddAgentIDs(ids ...int) *PositionUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *PositionUpdate) AddAgents(v ...*Agent) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the PositionMutation object of the builder.
func (_u *PositionUpdate) Mutation() *PositionMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *PositionUpdate) ClearRole() *PositionUpdate {
	_u.mutation.ClearRole()
	return _u
}

// ClearReportsTo clears the "reports_to" edge to the Position entity.
func (_u *PositionUpdate) ClearReportsTo() *PositionUpdate {
	_u.mutation.ClearReportsTo()
	return _u
}

// ClearReports clears all "reports" edges to the Position entity.
func (_u *PositionUpdate) ClearReports() *PositionUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Position entities by IDs.
func (_u *PositionUpdate) RemoveReportIDs(ids ...int) *PositionUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Position entities.
func (_u *PositionUpdate) RemoveReports(v ...*Position) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEscalatesTo clears the "escalates_to" edge to the Position entity.
func (_u *PositionUpdate) ClearEscalatesTo() *PositionUpdate {
	_u.mutation.ClearEscalatesTo()
	return _u
}

// ClearEscalations clears all "escalations" edges to the Position entity.
func (_u *PositionUpdate) ClearEscalations() *PositionUpdate {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to Position entities by IDs.
func (_u *PositionUpdate) RemoveEscalationIDs(ids ...int) *PositionUpdate {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to Position entities.
func (_u *PositionUpdate) RemoveEscalations(v ...*Position) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *PositionUpdate) ClearAgents() *PositionUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *PositionUpdate) RemoveAgentIDs(ids ...int) *PositionUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *PositionUpdate) RemoveAgents(v ...*Agent) *PositionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PositionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PositionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PositionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PositionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PositionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := position.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Position.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PositionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(position.Table, position.Columns, sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(position.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.RoleTable,
			Columns: []string{position.RoleColumn},
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
			Table:   position.RoleTable,
			Columns: []string{position.RoleColumn},
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
	if _u.mutation.ReportsToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.ReportsToTable,
			Columns: []string{position.ReportsToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.ReportsToTable,
			Columns: []string{position.ReportsToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalatesToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.EscalatesToTable,
			Columns: []string{position.EscalatesToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalatesToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.EscalatesToTable,
			Columns: []string{position.EscalatesToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
			err = &NotFoundError{position.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PositionUpdateOne is the builder for updating a single Position entity.
type PositionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PositionMutation
}

// SetTitle sets the "title" field.
func (_u *PositionUpdateOne) SetTitle(v string) *PositionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableTitle(v *string) *PositionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetReportsToID sets the "reports_to_id" field.
func (_u *PositionUpdateOne) SetReportsToID(v int) *PositionUpdateOne {
	_u.mutation.SetReportsToID(v)
	return _u
}

// SetNillableReportsToID sets the "reports_to_id" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableReportsToID(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetReportsToID(*v)
	}
	return _u
}

// ClearReportsToID clears the value of the "reports_to_id" field.
func (_u *PositionUpdateOne) ClearReportsToID() *PositionUpdateOne {
	_u.mutation.ClearReportsToID()
	return _u
}

// SetEscalatesToID sets the "escalates_to_id" field.
func (_u *PositionUpdateOne) SetEscalatesToID(v int) *PositionUpdateOne {
	_u.mutation.SetEscalatesToID(v)
	return _u
}

// SetNillableEscalatesToID sets the "escalates_to_id" field if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableEscalatesToID(v *int) *PositionUpdateOne {
	if v != nil {
		_u.SetEscalatesToID(*v)
	}
	return _u
}

// ClearEscalatesToID clears the value of the "escalates_to_id" field.
func (_u *PositionUpdateOne) ClearEscalatesToID() *PositionUpdateOne {
	_u.mutation.ClearEscalatesToID()
	return _u
}

// SetRoleID sets the "role" edge to the Role entity by ID.
func (_u *PositionUpdateOne) SetRoleID(id int) *PositionUpdateOne {
	_u.mutation.SetRoleID(id)
	return _u
}

// SetNillableRoleID sets the "role" edge to the Role entity by ID if the given value is not nil.
func (_u *PositionUpdateOne) SetNillableRoleID(id *int) *PositionUpdateOne {
	if id != nil {
		_u = _u.SetRoleID(*id)
	}
	return _u
}

// SetRole sets the "role" edge to the Role entity.
func (_u *PositionUpdateOne) SetRole(v *Role) *PositionUpdateOne {
	return _u.SetRoleID(v.ID)
}

// SetReportsTo sets the "reports_to" edge to the Position entity.
func (_u *PositionUpdateOne) SetReportsTo(v *Position) *PositionUpdateOne {
	return _u.SetReportsToID(v.ID)
}

// AddReportIDs adds the "reports" edge to the Position entity by IDs.
func (_u *PositionUpdateOne) AddReportIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Position entity.
func (_u *PositionUpdateOne) AddReports(v ...*Position) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// SetEscalatesTo sets the "escalates_to" edge to the Position entity.
func (_u *PositionUpdateOne) SetEscalatesTo(v *Position) *PositionUpdateOne {
	return _u.SetEscalatesToID(v.ID)
}

// AddEscalationIDs adds the "escalations" edge to the Position entity by IDs.
func (_u *PositionUpdateOne) AddEscalationIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the Position entity.
func (_u *PositionUpdateOne) AddEscalations(v ...*Position) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *PositionUpdateOne) AddAgentIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *PositionUpdateOne) AddAgents(v ...*Agent) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// Mutation returns the PositionMutation object of the builder.
func (_u *PositionUpdateOne) Mutation() *PositionMutation {
	return _u.mutation
}

// ClearRole clears the "role" edge to the Role entity.
func (_u *PositionUpdateOne) ClearRole() *PositionUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// ClearReportsTo clears the "reports_to" edge to the Position entity.
func (_u *PositionUpdateOne) ClearReportsTo() *PositionUpdateOne {
	_u.mutation.ClearReportsTo()
	return _u
}

// ClearReports clears all "reports" edges to the Position entity.
func (_u *PositionUpdateOne) ClearReports() *PositionUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Position entities by IDs.
func (_u *PositionUpdateOne) RemoveReportIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Position entities.
func (_u *PositionUpdateOne) RemoveReports(v ...*Position) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearEscalatesTo clears the "escalates_to" edge to the Position entity.
func (_u *PositionUpdateOne) ClearEscalatesTo() *PositionUpdateOne {
	_u.mutation.ClearEscalatesTo()
	return _u
}

// ClearEscalations clears all "escalations" edges to the Position entity.
func (_u *PositionUpdateOne) ClearEscalations() *PositionUpdateOne {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to Position entities by IDs.
func (_u *PositionUpdateOne) RemoveEscalationIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to Position entities.
func (_u *PositionUpdateOne) RemoveEscalations(v ...*Position) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *PositionUpdateOne) ClearAgents() *PositionUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *PositionUpdateOne) RemoveAgentIDs(ids ...int) *PositionUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *PositionUpdateOne) RemoveAgents(v ...*Agent) *PositionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// Where appends a list predicates to the PositionUpdate builder.
func (_u *PositionUpdateOne) Where(ps ...predicate.Position) *PositionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PositionUpdateOne) Select(field string, fields ...string) *PositionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Position entity.
func (_u *PositionUpdateOne) Save(ctx context.Context) (*Position, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PositionUpdateOne) SaveX(ctx context.Context) *Position {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PositionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PositionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PositionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := position.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Position.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PositionUpdateOne) sqlSave(ctx context.Context) (_node *Position, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(position.Table, position.Columns, sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Position.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, position.FieldID)
		for _, f := range fields {
			if !position.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != position.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(position.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.RoleTable,
			Columns: []string{position.RoleColumn},
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
			Table:   position.RoleTable,
			Columns: []string{position.RoleColumn},
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
	if _u.mutation.ReportsToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.ReportsToTable,
			Columns: []string{position.ReportsToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.ReportsToTable,
			Columns: []string{position.ReportsToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.ReportsTable,
			Columns: []string{position.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalatesToCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.EscalatesToTable,
			Columns: []string{position.EscalatesToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalatesToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   position.EscalatesToTable,
			Columns: []string{position.EscalatesToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   position.EscalationsTable,
			Columns: []string{position.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(position.FieldID, field.TypeInt),
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
			Table:   position.AgentsTable,
			Columns: []string{position.AgentsColumn},
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
	_node = &Position{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{position.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
