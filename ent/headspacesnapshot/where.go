// Code generated by ent, DO NOT EDIT.

package headspacesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldAgentID, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// ContextPercentUsed applies equality check predicate on the "context_percent_used" field. It's identical to ContextPercentUsedEQ.
func ContextPercentUsed(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldContextPercentUsed, v))
}

// ContextRemainingTokens applies equality check predicate on the "context_remaining_tokens" field. It's identical to ContextRemainingTokensEQ.
func ContextRemainingTokens(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldContextRemainingTokens, v))
}

// Raw applies equality check predicate on the "raw" field. It's identical to RawEQ.
func Raw(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldRaw, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldAgentID, vs...))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLTE(FieldCapturedAt, v))
}

// ContextPercentUsedEQ applies the EQ predicate on the "context_percent_used" field.
func ContextPercentUsedEQ(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldContextPercentUsed, v))
}

// ContextPercentUsedNEQ applies the NEQ predicate on the "context_percent_used" field.
func ContextPercentUsedNEQ(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldContextPercentUsed, v))
}

// ContextPercentUsedIn applies the In predicate on the "context_percent_used" field.
func ContextPercentUsedIn(vs ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldContextPercentUsed, vs...))
}

// ContextPercentUsedNotIn applies the NotIn predicate on the "context_percent_used" field.
func ContextPercentUsedNotIn(vs ...int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldContextPercentUsed, vs...))
}

// ContextPercentUsedGT applies the GT predicate on the "context_percent_used" field.
func ContextPercentUsedGT(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGT(FieldContextPercentUsed, v))
}

// ContextPercentUsedGTE applies the GTE predicate on the "context_percent_used" field.
func ContextPercentUsedGTE(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGTE(FieldContextPercentUsed, v))
}

// ContextPercentUsedLT applies the LT predicate on the "context_percent_used" field.
func ContextPercentUsedLT(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLT(FieldContextPercentUsed, v))
}

// ContextPercentUsedLTE applies the LTE predicate on the "context_percent_used" field.
func ContextPercentUsedLTE(v int) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLTE(FieldContextPercentUsed, v))
}

// ContextRemainingTokensEQ applies the EQ predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensEQ(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensNEQ applies the NEQ predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensNEQ(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensIn applies the In predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensIn(vs ...string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldContextRemainingTokens, vs...))
}

// ContextRemainingTokensNotIn applies the NotIn predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensNotIn(vs ...string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldContextRemainingTokens, vs...))
}

// ContextRemainingTokensGT applies the GT predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensGT(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGT(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensGTE applies the GTE predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensGTE(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGTE(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensLT applies the LT predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensLT(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLT(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensLTE applies the LTE predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensLTE(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLTE(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensContains applies the Contains predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensContains(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldContains(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensHasPrefix applies the HasPrefix predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensHasPrefix(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldHasPrefix(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensHasSuffix applies the HasSuffix predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensHasSuffix(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldHasSuffix(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensEqualFold applies the EqualFold predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensEqualFold(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEqualFold(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensContainsFold applies the ContainsFold predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensContainsFold(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldContainsFold(FieldContextRemainingTokens, v))
}

// RawEQ applies the EQ predicate on the "raw" field.
func RawEQ(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEQ(FieldRaw, v))
}

// RawNEQ applies the NEQ predicate on the "raw" field.
func RawNEQ(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNEQ(FieldRaw, v))
}

// RawIn applies the In predicate on the "raw" field.
func RawIn(vs ...string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldIn(FieldRaw, vs...))
}

// RawNotIn applies the NotIn predicate on the "raw" field.
func RawNotIn(vs ...string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldNotIn(FieldRaw, vs...))
}

// RawGT applies the GT predicate on the "raw" field.
func RawGT(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGT(FieldRaw, v))
}

// RawGTE applies the GTE predicate on the "raw" field.
func RawGTE(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldGTE(FieldRaw, v))
}

// RawLT applies the LT predicate on the "raw" field.
func RawLT(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLT(FieldRaw, v))
}

// RawLTE applies the LTE predicate on the "raw" field.
func RawLTE(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldLTE(FieldRaw, v))
}

// RawContains applies the Contains predicate on the "raw" field.
func RawContains(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldContains(FieldRaw, v))
}

// RawHasPrefix applies the HasPrefix predicate on the "raw" field.
func RawHasPrefix(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldHasPrefix(FieldRaw, v))
}

// RawHasSuffix applies the HasSuffix predicate on the "raw" field.
func RawHasSuffix(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldHasSuffix(FieldRaw, v))
}

// RawEqualFold applies the EqualFold predicate on the "raw" field.
func RawEqualFold(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldEqualFold(FieldRaw, v))
}

// RawContainsFold applies the ContainsFold predicate on the "raw" field.
func RawContainsFold(v string) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.FieldContainsFold(FieldRaw, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HeadspaceSnapshot) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HeadspaceSnapshot) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HeadspaceSnapshot) predicate.HeadspaceSnapshot {
	return predicate.HeadspaceSnapshot(sql.NotPredicates(p))
}
