// Code generated by ent, DO NOT EDIT.

package inferencecall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldID, id))
}

// InputHash applies equality check predicate on the "input_hash" field. It's identical to InputHashEQ.
func InputHash(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldInputHash, v))
}

// Cached applies equality check predicate on the "cached" field. It's identical to CachedEQ.
func Cached(v bool) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCached, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCostUsd, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldLatencyMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldProjectID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldAgentID, v))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCommandID, v))
}

// TurnID applies equality check predicate on the "turn_id" field. It's identical to TurnIDEQ.
func TurnID(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldTurnID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldLevel, vs...))
}

// InputHashEQ applies the EQ predicate on the "input_hash" field.
func InputHashEQ(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldInputHash, v))
}

// InputHashNEQ applies the NEQ predicate on the "input_hash" field.
func InputHashNEQ(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldInputHash, v))
}

// InputHashIn applies the In predicate on the "input_hash" field.
func InputHashIn(vs ...string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldInputHash, vs...))
}

// InputHashNotIn applies the NotIn predicate on the "input_hash" field.
func InputHashNotIn(vs ...string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldInputHash, vs...))
}

// InputHashGT applies the GT predicate on the "input_hash" field.
func InputHashGT(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldInputHash, v))
}

// InputHashGTE applies the GTE predicate on the "input_hash" field.
func InputHashGTE(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldInputHash, v))
}

// InputHashLT applies the LT predicate on the "input_hash" field.
func InputHashLT(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldInputHash, v))
}

// InputHashLTE applies the LTE predicate on the "input_hash" field.
func InputHashLTE(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldInputHash, v))
}

// InputHashContains applies the Contains predicate on the "input_hash" field.
func InputHashContains(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldContains(FieldInputHash, v))
}

// InputHashHasPrefix applies the HasPrefix predicate on the "input_hash" field.
func InputHashHasPrefix(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldHasPrefix(FieldInputHash, v))
}

// InputHashHasSuffix applies the HasSuffix predicate on the "input_hash" field.
func InputHashHasSuffix(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldHasSuffix(FieldInputHash, v))
}

// InputHashEqualFold applies the EqualFold predicate on the "input_hash" field.
func InputHashEqualFold(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEqualFold(FieldInputHash, v))
}

// InputHashContainsFold applies the ContainsFold predicate on the "input_hash" field.
func InputHashContainsFold(v string) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldContainsFold(FieldInputHash, v))
}

// CachedEQ applies the EQ predicate on the "cached" field.
func CachedEQ(v bool) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCached, v))
}

// CachedNEQ applies the NEQ predicate on the "cached" field.
func CachedNEQ(v bool) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldCached, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldCompletionTokens, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldCostUsd, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldLatencyMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldLTE(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotNull(FieldProjectID))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotNull(FieldAgentID))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldCommandID, vs...))
}

// CommandIDIsNil applies the IsNil predicate on the "command_id" field.
func CommandIDIsNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIsNull(FieldCommandID))
}

// CommandIDNotNil applies the NotNil predicate on the "command_id" field.
func CommandIDNotNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotNull(FieldCommandID))
}

// TurnIDEQ applies the EQ predicate on the "turn_id" field.
func TurnIDEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldEQ(FieldTurnID, v))
}

// TurnIDNEQ applies the NEQ predicate on the "turn_id" field.
func TurnIDNEQ(v int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNEQ(FieldTurnID, v))
}

// TurnIDIn applies the In predicate on the "turn_id" field.
func TurnIDIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIn(FieldTurnID, vs...))
}

// TurnIDNotIn applies the NotIn predicate on the "turn_id" field.
func TurnIDNotIn(vs ...int) predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotIn(FieldTurnID, vs...))
}

// TurnIDIsNil applies the IsNil predicate on the "turn_id" field.
func TurnIDIsNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldIsNull(FieldTurnID))
}

// TurnIDNotNil applies the NotNil predicate on the "turn_id" field.
func TurnIDNotNil() predicate.InferenceCall {
	return predicate.InferenceCall(sql.FieldNotNull(FieldTurnID))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommand applies the HasEdge predicate on the "command" edge.
func HasCommand() predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommandTable, CommandColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommandWith applies the HasEdge predicate on the "command" edge with a given conditions (other predicates).
func HasCommandWith(preds ...predicate.Command) predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := newCommandStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTurn applies the HasEdge predicate on the "turn" edge.
func HasTurn() predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TurnTable, TurnColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTurnWith applies the HasEdge predicate on the "turn" edge with a given conditions (other predicates).
func HasTurnWith(preds ...predicate.Turn) predicate.InferenceCall {
	return predicate.InferenceCall(func(s *sql.Selector) {
		step := newTurnStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InferenceCall) predicate.InferenceCall {
	return predicate.InferenceCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InferenceCall) predicate.InferenceCall {
	return predicate.InferenceCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InferenceCall) predicate.InferenceCall {
	return predicate.InferenceCall(sql.NotPredicates(p))
}
