// Code generated by ent, DO NOT EDIT.

package position

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldTitle, v))
}

// ReportsToID applies equality check predicate on the "reports_to_id" field. It's identical to ReportsToIDEQ.
func ReportsToID(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldReportsToID, v))
}

// EscalatesToID applies equality check predicate on the "escalates_to_id" field. It's identical to EscalatesToIDEQ.
func EscalatesToID(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldEscalatesToID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Position {
	return predicate.Position(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Position {
	return predicate.Position(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Position {
	return predicate.Position(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Position {
	return predicate.Position(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Position {
	return predicate.Position(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Position {
	return predicate.Position(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Position {
	return predicate.Position(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Position {
	return predicate.Position(sql.FieldContainsFold(FieldTitle, v))
}

// ReportsToIDEQ applies the EQ predicate on the "reports_to_id" field.
func ReportsToIDEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldReportsToID, v))
}

// ReportsToIDNEQ applies the NEQ predicate on the "reports_to_id" field.
func ReportsToIDNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldReportsToID, v))
}

// ReportsToIDIn applies the In predicate on the "reports_to_id" field.
func ReportsToIDIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldReportsToID, vs...))
}

// ReportsToIDNotIn applies the NotIn predicate on the "reports_to_id" field.
func ReportsToIDNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldReportsToID, vs...))
}

// ReportsToIDIsNil applies the IsNil predicate on the "reports_to_id" field.
func ReportsToIDIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldReportsToID))
}

// ReportsToIDNotNil applies the NotNil predicate on the "reports_to_id" field.
func ReportsToIDNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldReportsToID))
}

// EscalatesToIDEQ applies the EQ predicate on the "escalates_to_id" field.
func EscalatesToIDEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldEQ(FieldEscalatesToID, v))
}

// EscalatesToIDNEQ applies the NEQ predicate on the "escalates_to_id" field.
func EscalatesToIDNEQ(v int) predicate.Position {
	return predicate.Position(sql.FieldNEQ(FieldEscalatesToID, v))
}

// EscalatesToIDIn applies the In predicate on the "escalates_to_id" field.
func EscalatesToIDIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldIn(FieldEscalatesToID, vs...))
}

// EscalatesToIDNotIn applies the NotIn predicate on the "escalates_to_id" field.
func EscalatesToIDNotIn(vs ...int) predicate.Position {
	return predicate.Position(sql.FieldNotIn(FieldEscalatesToID, vs...))
}

// EscalatesToIDIsNil applies the IsNil predicate on the "escalates_to_id" field.
func EscalatesToIDIsNil() predicate.Position {
	return predicate.Position(sql.FieldIsNull(FieldEscalatesToID))
}

// EscalatesToIDNotNil applies the NotNil predicate on the "escalates_to_id" field.
func EscalatesToIDNotNil() predicate.Position {
	return predicate.Position(sql.FieldNotNull(FieldEscalatesToID))
}

// HasRole applies the HasEdge predicate on the "role" edge.
func HasRole() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoleTable, RoleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoleWith applies the HasEdge predicate on the "role" edge with a given conditions (other predicates).
func HasRoleWith(preds ...predicate.Role) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newRoleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReportsTo applies the HasEdge predicate on the "reports_to" edge.
func HasReportsTo() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportsToTable, ReportsToColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsToWith applies the HasEdge predicate on the "reports_to" edge with a given conditions (other predicates).
func HasReportsToWith(preds ...predicate.Position) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newReportsToStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.Position) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEscalatesTo applies the HasEdge predicate on the "escalates_to" edge.
func HasEscalatesTo() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EscalatesToTable, EscalatesToColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEscalatesToWith applies the HasEdge predicate on the "escalates_to" edge with a given conditions (other predicates).
func HasEscalatesToWith(preds ...predicate.Position) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newEscalatesToStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEscalations applies the HasEdge predicate on the "escalations" edge.
func HasEscalations() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EscalationsTable, EscalationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEscalationsWith applies the HasEdge predicate on the "escalations" edge with a given conditions (other predicates).
func HasEscalationsWith(preds ...predicate.Position) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newEscalationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Position {
	return predicate.Position(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Position) predicate.Position {
	return predicate.Position(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Position) predicate.Position {
	return predicate.Position(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Position) predicate.Position {
	return predicate.Position(sql.NotPredicates(p))
}
