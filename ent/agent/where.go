// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// SessionUUID applies equality check predicate on the "session_uuid" field. It's identical to SessionUUIDEQ.
func SessionUUID(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSessionUUID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// PersonaID applies equality check predicate on the "persona_id" field. It's identical to PersonaIDEQ.
func PersonaID(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersonaID, v))
}

// PositionID applies equality check predicate on the "position_id" field. It's identical to PositionIDEQ.
func PositionID(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionID, v))
}

// PreviousAgentID applies equality check predicate on the "previous_agent_id" field. It's identical to PreviousAgentIDEQ.
func PreviousAgentID(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPreviousAgentID, v))
}

// TmuxSessionName applies equality check predicate on the "tmux_session_name" field. It's identical to TmuxSessionNameEQ.
func TmuxSessionName(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTmuxSessionName, v))
}

// TmuxPaneID applies equality check predicate on the "tmux_pane_id" field. It's identical to TmuxPaneIDEQ.
func TmuxPaneID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTmuxPaneID, v))
}

// LegacyWindowID applies equality check predicate on the "legacy_window_id" field. It's identical to LegacyWindowIDEQ.
func LegacyWindowID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLegacyWindowID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStartedAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEndedAt, v))
}

// PromptInjectedAt applies equality check predicate on the "prompt_injected_at" field. It's identical to PromptInjectedAtEQ.
func PromptInjectedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPromptInjectedAt, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityReason applies equality check predicate on the "priority_reason" field. It's identical to PriorityReasonEQ.
func PriorityReason(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityReason, v))
}

// PriorityUpdatedAt applies equality check predicate on the "priority_updated_at" field. It's identical to PriorityUpdatedAtEQ.
func PriorityUpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityUpdatedAt, v))
}

// ContextPercentUsed applies equality check predicate on the "context_percent_used" field. It's identical to ContextPercentUsedEQ.
func ContextPercentUsed(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextPercentUsed, v))
}

// ContextRemainingTokens applies equality check predicate on the "context_remaining_tokens" field. It's identical to ContextRemainingTokensEQ.
func ContextRemainingTokens(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextRemainingTokens, v))
}

// ContextUpdatedAt applies equality check predicate on the "context_updated_at" field. It's identical to ContextUpdatedAtEQ.
func ContextUpdatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextUpdatedAt, v))
}

// GuardrailsVersionHash applies equality check predicate on the "guardrails_version_hash" field. It's identical to GuardrailsVersionHashEQ.
func GuardrailsVersionHash(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGuardrailsVersionHash, v))
}

// SessionUUIDEQ applies the EQ predicate on the "session_uuid" field.
func SessionUUIDEQ(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSessionUUID, v))
}

// SessionUUIDNEQ applies the NEQ predicate on the "session_uuid" field.
func SessionUUIDNEQ(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSessionUUID, v))
}

// SessionUUIDIn applies the In predicate on the "session_uuid" field.
func SessionUUIDIn(vs ...uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSessionUUID, vs...))
}

// SessionUUIDNotIn applies the NotIn predicate on the "session_uuid" field.
func SessionUUIDNotIn(vs ...uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSessionUUID, vs...))
}

// SessionUUIDGT applies the GT predicate on the "session_uuid" field.
func SessionUUIDGT(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSessionUUID, v))
}

// SessionUUIDGTE applies the GTE predicate on the "session_uuid" field.
func SessionUUIDGTE(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSessionUUID, v))
}

// SessionUUIDLT applies the LT predicate on the "session_uuid" field.
func SessionUUIDLT(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSessionUUID, v))
}

// SessionUUIDLTE applies the LTE predicate on the "session_uuid" field.
func SessionUUIDLTE(v uuid.UUID) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSessionUUID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProjectID, vs...))
}

// PersonaIDEQ applies the EQ predicate on the "persona_id" field.
func PersonaIDEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersonaID, v))
}

// PersonaIDNEQ applies the NEQ predicate on the "persona_id" field.
func PersonaIDNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPersonaID, v))
}

// PersonaIDIn applies the In predicate on the "persona_id" field.
func PersonaIDIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPersonaID, vs...))
}

// PersonaIDNotIn applies the NotIn predicate on the "persona_id" field.
func PersonaIDNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPersonaID, vs...))
}

// PersonaIDIsNil applies the IsNil predicate on the "persona_id" field.
func PersonaIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPersonaID))
}

// PersonaIDNotNil applies the NotNil predicate on the "persona_id" field.
func PersonaIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPersonaID))
}

// PositionIDEQ applies the EQ predicate on the "position_id" field.
func PositionIDEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionID, v))
}

// PositionIDNEQ applies the NEQ predicate on the "position_id" field.
func PositionIDNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPositionID, v))
}

// PositionIDIn applies the In predicate on the "position_id" field.
func PositionIDIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPositionID, vs...))
}

// PositionIDNotIn applies the NotIn predicate on the "position_id" field.
func PositionIDNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPositionID, vs...))
}

// PositionIDIsNil applies the IsNil predicate on the "position_id" field.
func PositionIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPositionID))
}

// PositionIDNotNil applies the NotNil predicate on the "position_id" field.
func PositionIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPositionID))
}

// PreviousAgentIDEQ applies the EQ predicate on the "previous_agent_id" field.
func PreviousAgentIDEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPreviousAgentID, v))
}

// PreviousAgentIDNEQ applies the NEQ predicate on the "previous_agent_id" field.
func PreviousAgentIDNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPreviousAgentID, v))
}

// PreviousAgentIDIn applies the In predicate on the "previous_agent_id" field.
func PreviousAgentIDIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPreviousAgentID, vs...))
}

// PreviousAgentIDNotIn applies the NotIn predicate on the "previous_agent_id" field.
func PreviousAgentIDNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPreviousAgentID, vs...))
}

// PreviousAgentIDIsNil applies the IsNil predicate on the "previous_agent_id" field.
func PreviousAgentIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPreviousAgentID))
}

// PreviousAgentIDNotNil applies the NotNil predicate on the "previous_agent_id" field.
func PreviousAgentIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPreviousAgentID))
}

// TmuxSessionNameEQ applies the EQ predicate on the "tmux_session_name" field.
func TmuxSessionNameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTmuxSessionName, v))
}

// TmuxSessionNameNEQ applies the NEQ predicate on the "tmux_session_name" field.
func TmuxSessionNameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTmuxSessionName, v))
}

// TmuxSessionNameIn applies the In predicate on the "tmux_session_name" field.
func TmuxSessionNameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTmuxSessionName, vs...))
}

// TmuxSessionNameNotIn applies the NotIn predicate on the "tmux_session_name" field.
func TmuxSessionNameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTmuxSessionName, vs...))
}

// TmuxSessionNameGT applies the GT predicate on the "tmux_session_name" field.
func TmuxSessionNameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTmuxSessionName, v))
}

// TmuxSessionNameGTE applies the GTE predicate on the "tmux_session_name" field.
func TmuxSessionNameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTmuxSessionName, v))
}

// TmuxSessionNameLT applies the LT predicate on the "tmux_session_name" field.
func TmuxSessionNameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTmuxSessionName, v))
}

// TmuxSessionNameLTE applies the LTE predicate on the "tmux_session_name" field.
func TmuxSessionNameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTmuxSessionName, v))
}

// TmuxSessionNameContains applies the Contains predicate on the "tmux_session_name" field.
func TmuxSessionNameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTmuxSessionName, v))
}

// TmuxSessionNameHasPrefix applies the HasPrefix predicate on the "tmux_session_name" field.
func TmuxSessionNameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTmuxSessionName, v))
}

// TmuxSessionNameHasSuffix applies the HasSuffix predicate on the "tmux_session_name" field.
func TmuxSessionNameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTmuxSessionName, v))
}

// TmuxSessionNameIsNil applies the IsNil predicate on the "tmux_session_name" field.
func TmuxSessionNameIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTmuxSessionName))
}

// TmuxSessionNameNotNil applies the NotNil predicate on the "tmux_session_name" field.
func TmuxSessionNameNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTmuxSessionName))
}

// TmuxSessionNameEqualFold applies the EqualFold predicate on the "tmux_session_name" field.
func TmuxSessionNameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTmuxSessionName, v))
}

// TmuxSessionNameContainsFold applies the ContainsFold predicate on the "tmux_session_name" field.
func TmuxSessionNameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTmuxSessionName, v))
}

// TmuxPaneIDEQ applies the EQ predicate on the "tmux_pane_id" field.
func TmuxPaneIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTmuxPaneID, v))
}

// TmuxPaneIDNEQ applies the NEQ predicate on the "tmux_pane_id" field.
func TmuxPaneIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTmuxPaneID, v))
}

// TmuxPaneIDIn applies the In predicate on the "tmux_pane_id" field.
func TmuxPaneIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTmuxPaneID, vs...))
}

// TmuxPaneIDNotIn applies the NotIn predicate on the "tmux_pane_id" field.
func TmuxPaneIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTmuxPaneID, vs...))
}

// TmuxPaneIDGT applies the GT predicate on the "tmux_pane_id" field.
func TmuxPaneIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTmuxPaneID, v))
}

// TmuxPaneIDGTE applies the GTE predicate on the "tmux_pane_id" field.
func TmuxPaneIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTmuxPaneID, v))
}

// TmuxPaneIDLT applies the LT predicate on the "tmux_pane_id" field.
func TmuxPaneIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTmuxPaneID, v))
}

// TmuxPaneIDLTE applies the LTE predicate on the "tmux_pane_id" field.
func TmuxPaneIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTmuxPaneID, v))
}

// TmuxPaneIDContains applies the Contains predicate on the "tmux_pane_id" field.
func TmuxPaneIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTmuxPaneID, v))
}

// TmuxPaneIDHasPrefix applies the HasPrefix predicate on the "tmux_pane_id" field.
func TmuxPaneIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTmuxPaneID, v))
}

// TmuxPaneIDHasSuffix applies the HasSuffix predicate on the "tmux_pane_id" field.
func TmuxPaneIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTmuxPaneID, v))
}

// TmuxPaneIDIsNil applies the IsNil predicate on the "tmux_pane_id" field.
func TmuxPaneIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTmuxPaneID))
}

// TmuxPaneIDNotNil applies the NotNil predicate on the "tmux_pane_id" field.
func TmuxPaneIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTmuxPaneID))
}

// TmuxPaneIDEqualFold applies the EqualFold predicate on the "tmux_pane_id" field.
func TmuxPaneIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTmuxPaneID, v))
}

// TmuxPaneIDContainsFold applies the ContainsFold predicate on the "tmux_pane_id" field.
func TmuxPaneIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTmuxPaneID, v))
}

// LegacyWindowIDEQ applies the EQ predicate on the "legacy_window_id" field.
func LegacyWindowIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLegacyWindowID, v))
}

// LegacyWindowIDNEQ applies the NEQ predicate on the "legacy_window_id" field.
func LegacyWindowIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLegacyWindowID, v))
}

// LegacyWindowIDIn applies the In predicate on the "legacy_window_id" field.
func LegacyWindowIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLegacyWindowID, vs...))
}

// LegacyWindowIDNotIn applies the NotIn predicate on the "legacy_window_id" field.
func LegacyWindowIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLegacyWindowID, vs...))
}

// LegacyWindowIDGT applies the GT predicate on the "legacy_window_id" field.
func LegacyWindowIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLegacyWindowID, v))
}

// LegacyWindowIDGTE applies the GTE predicate on the "legacy_window_id" field.
func LegacyWindowIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLegacyWindowID, v))
}

// LegacyWindowIDLT applies the LT predicate on the "legacy_window_id" field.
func LegacyWindowIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLegacyWindowID, v))
}

// LegacyWindowIDLTE applies the LTE predicate on the "legacy_window_id" field.
func LegacyWindowIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLegacyWindowID, v))
}

// LegacyWindowIDContains applies the Contains predicate on the "legacy_window_id" field.
func LegacyWindowIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldLegacyWindowID, v))
}

// LegacyWindowIDHasPrefix applies the HasPrefix predicate on the "legacy_window_id" field.
func LegacyWindowIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldLegacyWindowID, v))
}

// LegacyWindowIDHasSuffix applies the HasSuffix predicate on the "legacy_window_id" field.
func LegacyWindowIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldLegacyWindowID, v))
}

// LegacyWindowIDIsNil applies the IsNil predicate on the "legacy_window_id" field.
func LegacyWindowIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLegacyWindowID))
}

// LegacyWindowIDNotNil applies the NotNil predicate on the "legacy_window_id" field.
func LegacyWindowIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLegacyWindowID))
}

// LegacyWindowIDEqualFold applies the EqualFold predicate on the "legacy_window_id" field.
func LegacyWindowIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldLegacyWindowID, v))
}

// LegacyWindowIDContainsFold applies the ContainsFold predicate on the "legacy_window_id" field.
func LegacyWindowIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldLegacyWindowID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldStartedAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastSeenAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldEndedAt))
}

// PromptInjectedAtEQ applies the EQ predicate on the "prompt_injected_at" field.
func PromptInjectedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPromptInjectedAt, v))
}

// PromptInjectedAtNEQ applies the NEQ predicate on the "prompt_injected_at" field.
func PromptInjectedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPromptInjectedAt, v))
}

// PromptInjectedAtIn applies the In predicate on the "prompt_injected_at" field.
func PromptInjectedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPromptInjectedAt, vs...))
}

// PromptInjectedAtNotIn applies the NotIn predicate on the "prompt_injected_at" field.
func PromptInjectedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPromptInjectedAt, vs...))
}

// PromptInjectedAtGT applies the GT predicate on the "prompt_injected_at" field.
func PromptInjectedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPromptInjectedAt, v))
}

// PromptInjectedAtGTE applies the GTE predicate on the "prompt_injected_at" field.
func PromptInjectedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPromptInjectedAt, v))
}

// PromptInjectedAtLT applies the LT predicate on the "prompt_injected_at" field.
func PromptInjectedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPromptInjectedAt, v))
}

// PromptInjectedAtLTE applies the LTE predicate on the "prompt_injected_at" field.
func PromptInjectedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPromptInjectedAt, v))
}

// PromptInjectedAtIsNil applies the IsNil predicate on the "prompt_injected_at" field.
func PromptInjectedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPromptInjectedAt))
}

// PromptInjectedAtNotNil applies the NotNil predicate on the "prompt_injected_at" field.
func PromptInjectedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPromptInjectedAt))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPriorityScore, v))
}

// PriorityScoreIsNil applies the IsNil predicate on the "priority_score" field.
func PriorityScoreIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPriorityScore))
}

// PriorityScoreNotNil applies the NotNil predicate on the "priority_score" field.
func PriorityScoreNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPriorityScore))
}

// PriorityReasonEQ applies the EQ predicate on the "priority_reason" field.
func PriorityReasonEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityReason, v))
}

// PriorityReasonNEQ applies the NEQ predicate on the "priority_reason" field.
func PriorityReasonNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPriorityReason, v))
}

// PriorityReasonIn applies the In predicate on the "priority_reason" field.
func PriorityReasonIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPriorityReason, vs...))
}

// PriorityReasonNotIn applies the NotIn predicate on the "priority_reason" field.
func PriorityReasonNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPriorityReason, vs...))
}

// PriorityReasonGT applies the GT predicate on the "priority_reason" field.
func PriorityReasonGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPriorityReason, v))
}

// PriorityReasonGTE applies the GTE predicate on the "priority_reason" field.
func PriorityReasonGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPriorityReason, v))
}

// PriorityReasonLT applies the LT predicate on the "priority_reason" field.
func PriorityReasonLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPriorityReason, v))
}

// PriorityReasonLTE applies the LTE predicate on the "priority_reason" field.
func PriorityReasonLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPriorityReason, v))
}

// PriorityReasonContains applies the Contains predicate on the "priority_reason" field.
func PriorityReasonContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldPriorityReason, v))
}

// PriorityReasonHasPrefix applies the HasPrefix predicate on the "priority_reason" field.
func PriorityReasonHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldPriorityReason, v))
}

// PriorityReasonHasSuffix applies the HasSuffix predicate on the "priority_reason" field.
func PriorityReasonHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldPriorityReason, v))
}

// PriorityReasonIsNil applies the IsNil predicate on the "priority_reason" field.
func PriorityReasonIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPriorityReason))
}

// PriorityReasonNotNil applies the NotNil predicate on the "priority_reason" field.
func PriorityReasonNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPriorityReason))
}

// PriorityReasonEqualFold applies the EqualFold predicate on the "priority_reason" field.
func PriorityReasonEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldPriorityReason, v))
}

// PriorityReasonContainsFold applies the ContainsFold predicate on the "priority_reason" field.
func PriorityReasonContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldPriorityReason, v))
}

// PriorityUpdatedAtEQ applies the EQ predicate on the "priority_updated_at" field.
func PriorityUpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtNEQ applies the NEQ predicate on the "priority_updated_at" field.
func PriorityUpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtIn applies the In predicate on the "priority_updated_at" field.
func PriorityUpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPriorityUpdatedAt, vs...))
}

// PriorityUpdatedAtNotIn applies the NotIn predicate on the "priority_updated_at" field.
func PriorityUpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPriorityUpdatedAt, vs...))
}

// PriorityUpdatedAtGT applies the GT predicate on the "priority_updated_at" field.
func PriorityUpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtGTE applies the GTE predicate on the "priority_updated_at" field.
func PriorityUpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtLT applies the LT predicate on the "priority_updated_at" field.
func PriorityUpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtLTE applies the LTE predicate on the "priority_updated_at" field.
func PriorityUpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPriorityUpdatedAt, v))
}

// PriorityUpdatedAtIsNil applies the IsNil predicate on the "priority_updated_at" field.
func PriorityUpdatedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPriorityUpdatedAt))
}

// PriorityUpdatedAtNotNil applies the NotNil predicate on the "priority_updated_at" field.
func PriorityUpdatedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPriorityUpdatedAt))
}

// ContextPercentUsedEQ applies the EQ predicate on the "context_percent_used" field.
func ContextPercentUsedEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextPercentUsed, v))
}

// ContextPercentUsedNEQ applies the NEQ predicate on the "context_percent_used" field.
func ContextPercentUsedNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldContextPercentUsed, v))
}

// ContextPercentUsedIn applies the In predicate on the "context_percent_used" field.
func ContextPercentUsedIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldContextPercentUsed, vs...))
}

// ContextPercentUsedNotIn applies the NotIn predicate on the "context_percent_used" field.
func ContextPercentUsedNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldContextPercentUsed, vs...))
}

// ContextPercentUsedGT applies the GT predicate on the "context_percent_used" field.
func ContextPercentUsedGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldContextPercentUsed, v))
}

// ContextPercentUsedGTE applies the GTE predicate on the "context_percent_used" field.
func ContextPercentUsedGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldContextPercentUsed, v))
}

// ContextPercentUsedLT applies the LT predicate on the "context_percent_used" field.
func ContextPercentUsedLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldContextPercentUsed, v))
}

// ContextPercentUsedLTE applies the LTE predicate on the "context_percent_used" field.
func ContextPercentUsedLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldContextPercentUsed, v))
}

// ContextPercentUsedIsNil applies the IsNil predicate on the "context_percent_used" field.
func ContextPercentUsedIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldContextPercentUsed))
}

// ContextPercentUsedNotNil applies the NotNil predicate on the "context_percent_used" field.
func ContextPercentUsedNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldContextPercentUsed))
}

// ContextRemainingTokensEQ applies the EQ predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensNEQ applies the NEQ predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensIn applies the In predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldContextRemainingTokens, vs...))
}

// ContextRemainingTokensNotIn applies the NotIn predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldContextRemainingTokens, vs...))
}

// ContextRemainingTokensGT applies the GT predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensGTE applies the GTE predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensLT applies the LT predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensLTE applies the LTE predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensContains applies the Contains predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensHasPrefix applies the HasPrefix predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensHasSuffix applies the HasSuffix predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensIsNil applies the IsNil predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldContextRemainingTokens))
}

// ContextRemainingTokensNotNil applies the NotNil predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldContextRemainingTokens))
}

// ContextRemainingTokensEqualFold applies the EqualFold predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldContextRemainingTokens, v))
}

// ContextRemainingTokensContainsFold applies the ContainsFold predicate on the "context_remaining_tokens" field.
func ContextRemainingTokensContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldContextRemainingTokens, v))
}

// ContextUpdatedAtEQ applies the EQ predicate on the "context_updated_at" field.
func ContextUpdatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtNEQ applies the NEQ predicate on the "context_updated_at" field.
func ContextUpdatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtIn applies the In predicate on the "context_updated_at" field.
func ContextUpdatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldContextUpdatedAt, vs...))
}

// ContextUpdatedAtNotIn applies the NotIn predicate on the "context_updated_at" field.
func ContextUpdatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldContextUpdatedAt, vs...))
}

// ContextUpdatedAtGT applies the GT predicate on the "context_updated_at" field.
func ContextUpdatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtGTE applies the GTE predicate on the "context_updated_at" field.
func ContextUpdatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtLT applies the LT predicate on the "context_updated_at" field.
func ContextUpdatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtLTE applies the LTE predicate on the "context_updated_at" field.
func ContextUpdatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldContextUpdatedAt, v))
}

// ContextUpdatedAtIsNil applies the IsNil predicate on the "context_updated_at" field.
func ContextUpdatedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldContextUpdatedAt))
}

// ContextUpdatedAtNotNil applies the NotNil predicate on the "context_updated_at" field.
func ContextUpdatedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldContextUpdatedAt))
}

// GuardrailsVersionHashEQ applies the EQ predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashNEQ applies the NEQ predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashIn applies the In predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldGuardrailsVersionHash, vs...))
}

// GuardrailsVersionHashNotIn applies the NotIn predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldGuardrailsVersionHash, vs...))
}

// GuardrailsVersionHashGT applies the GT predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashGTE applies the GTE predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashLT applies the LT predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashLTE applies the LTE predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashContains applies the Contains predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashHasPrefix applies the HasPrefix predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashHasSuffix applies the HasSuffix predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashIsNil applies the IsNil predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldGuardrailsVersionHash))
}

// GuardrailsVersionHashNotNil applies the NotNil predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldGuardrailsVersionHash))
}

// GuardrailsVersionHashEqualFold applies the EqualFold predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldGuardrailsVersionHash, v))
}

// GuardrailsVersionHashContainsFold applies the ContainsFold predicate on the "guardrails_version_hash" field.
func GuardrailsVersionHashContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldGuardrailsVersionHash, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPersona applies the HasEdge predicate on the "persona" edge.
func HasPersona() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonaTable, PersonaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonaWith applies the HasEdge predicate on the "persona" edge with a given conditions (other predicates).
func HasPersonaWith(preds ...predicate.Persona) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newPersonaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPosition applies the HasEdge predicate on the "position" edge.
func HasPosition() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PositionTable, PositionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPositionWith applies the HasEdge predicate on the "position" edge with a given conditions (other predicates).
func HasPositionWith(preds ...predicate.Position) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newPositionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPreviousAgent applies the HasEdge predicate on the "previous_agent" edge.
func HasPreviousAgent() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PreviousAgentTable, PreviousAgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPreviousAgentWith applies the HasEdge predicate on the "previous_agent" edge with a given conditions (other predicates).
func HasPreviousAgentWith(preds ...predicate.Agent) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newPreviousAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuccessors applies the HasEdge predicate on the "successors" edge.
func HasSuccessors() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuccessorsTable, SuccessorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuccessorsWith applies the HasEdge predicate on the "successors" edge with a given conditions (other predicates).
func HasSuccessorsWith(preds ...predicate.Agent) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newSuccessorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommands applies the HasEdge predicate on the "commands" edge.
func HasCommands() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommandsTable, CommandsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommandsWith applies the HasEdge predicate on the "commands" edge with a given conditions (other predicates).
func HasCommandsWith(preds ...predicate.Command) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newCommandsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHandoff applies the HasEdge predicate on the "handoff" edge.
func HasHandoff() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, HandoffTable, HandoffColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHandoffWith applies the HasEdge predicate on the "handoff" edge with a given conditions (other predicates).
func HasHandoffWith(preds ...predicate.Handoff) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newHandoffStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivityMetrics applies the HasEdge predicate on the "activity_metrics" edge.
func HasActivityMetrics() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivityMetricsTable, ActivityMetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivityMetricsWith applies the HasEdge predicate on the "activity_metrics" edge with a given conditions (other predicates).
func HasActivityMetricsWith(preds ...predicate.ActivityMetric) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newActivityMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.HeadspaceSnapshot) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInferenceCalls applies the HasEdge predicate on the "inference_calls" edge.
func HasInferenceCalls() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInferenceCallsWith applies the HasEdge predicate on the "inference_calls" edge with a given conditions (other predicates).
func HasInferenceCallsWith(preds ...predicate.InferenceCall) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newInferenceCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
