// Code generated by ent, DO NOT EDIT.

package activitymetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLTE(FieldID, id))
}

// BucketStart applies equality check predicate on the "bucket_start" field. It's identical to BucketStartEQ.
func BucketStart(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldBucketStart, v))
}

// IsOverall applies equality check predicate on the "is_overall" field. It's identical to IsOverallEQ.
func IsOverall(v bool) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldIsOverall, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldAgentID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldProjectID, v))
}

// TurnCount applies equality check predicate on the "turn_count" field. It's identical to TurnCountEQ.
func TurnCount(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldTurnCount, v))
}

// CommandCount applies equality check predicate on the "command_count" field. It's identical to CommandCountEQ.
func CommandCount(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldCommandCount, v))
}

// BucketStartEQ applies the EQ predicate on the "bucket_start" field.
func BucketStartEQ(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldBucketStart, v))
}

// BucketStartNEQ applies the NEQ predicate on the "bucket_start" field.
func BucketStartNEQ(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldBucketStart, v))
}

// BucketStartIn applies the In predicate on the "bucket_start" field.
func BucketStartIn(vs ...time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldBucketStart, vs...))
}

// BucketStartNotIn applies the NotIn predicate on the "bucket_start" field.
func BucketStartNotIn(vs ...time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldBucketStart, vs...))
}

// BucketStartGT applies the GT predicate on the "bucket_start" field.
func BucketStartGT(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGT(FieldBucketStart, v))
}

// BucketStartGTE applies the GTE predicate on the "bucket_start" field.
func BucketStartGTE(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGTE(FieldBucketStart, v))
}

// BucketStartLT applies the LT predicate on the "bucket_start" field.
func BucketStartLT(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLT(FieldBucketStart, v))
}

// BucketStartLTE applies the LTE predicate on the "bucket_start" field.
func BucketStartLTE(v time.Time) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLTE(FieldBucketStart, v))
}

// IsOverallEQ applies the EQ predicate on the "is_overall" field.
func IsOverallEQ(v bool) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldIsOverall, v))
}

// IsOverallNEQ applies the NEQ predicate on the "is_overall" field.
func IsOverallNEQ(v bool) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldIsOverall, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotNull(FieldAgentID))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotNull(FieldProjectID))
}

// TurnCountEQ applies the EQ predicate on the "turn_count" field.
func TurnCountEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldTurnCount, v))
}

// TurnCountNEQ applies the NEQ predicate on the "turn_count" field.
func TurnCountNEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldTurnCount, v))
}

// TurnCountIn applies the In predicate on the "turn_count" field.
func TurnCountIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldTurnCount, vs...))
}

// TurnCountNotIn applies the NotIn predicate on the "turn_count" field.
func TurnCountNotIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldTurnCount, vs...))
}

// TurnCountGT applies the GT predicate on the "turn_count" field.
func TurnCountGT(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGT(FieldTurnCount, v))
}

// TurnCountGTE applies the GTE predicate on the "turn_count" field.
func TurnCountGTE(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGTE(FieldTurnCount, v))
}

// TurnCountLT applies the LT predicate on the "turn_count" field.
func TurnCountLT(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLT(FieldTurnCount, v))
}

// TurnCountLTE applies the LTE predicate on the "turn_count" field.
func TurnCountLTE(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLTE(FieldTurnCount, v))
}

// CommandCountEQ applies the EQ predicate on the "command_count" field.
func CommandCountEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldEQ(FieldCommandCount, v))
}

// CommandCountNEQ applies the NEQ predicate on the "command_count" field.
func CommandCountNEQ(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNEQ(FieldCommandCount, v))
}

// CommandCountIn applies the In predicate on the "command_count" field.
func CommandCountIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldIn(FieldCommandCount, vs...))
}

// CommandCountNotIn applies the NotIn predicate on the "command_count" field.
func CommandCountNotIn(vs ...int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldNotIn(FieldCommandCount, vs...))
}

// CommandCountGT applies the GT predicate on the "command_count" field.
func CommandCountGT(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGT(FieldCommandCount, v))
}

// CommandCountGTE applies the GTE predicate on the "command_count" field.
func CommandCountGTE(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldGTE(FieldCommandCount, v))
}

// CommandCountLT applies the LT predicate on the "command_count" field.
func CommandCountLT(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLT(FieldCommandCount, v))
}

// CommandCountLTE applies the LTE predicate on the "command_count" field.
func CommandCountLTE(v int) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.FieldLTE(FieldCommandCount, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.ActivityMetric {
	return predicate.ActivityMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.ActivityMetric {
	return predicate.ActivityMetric(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ActivityMetric {
	return predicate.ActivityMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ActivityMetric {
	return predicate.ActivityMetric(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityMetric) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityMetric) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityMetric) predicate.ActivityMetric {
	return predicate.ActivityMetric(sql.NotPredicates(p))
}
