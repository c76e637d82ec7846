// Code generated by ent, DO NOT EDIT.

package turn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/headspace-sh/headspace/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldID, id))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldCommandID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldText, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldTimestamp, v))
}

// JsonlEntryHash applies equality check predicate on the "jsonl_entry_hash" field. It's identical to JsonlEntryHashEQ.
func JsonlEntryHash(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldJsonlEntryHash, v))
}

// IsInternal applies equality check predicate on the "is_internal" field. It's identical to IsInternalEQ.
func IsInternal(v bool) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldIsInternal, v))
}

// AnsweredByTurnID applies equality check predicate on the "answered_by_turn_id" field. It's identical to AnsweredByTurnIDEQ.
func AnsweredByTurnID(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldAnsweredByTurnID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldSummary, v))
}

// SummaryGeneratedAt applies equality check predicate on the "summary_generated_at" field. It's identical to SummaryGeneratedAtEQ.
func SummaryGeneratedAt(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldSummaryGeneratedAt, v))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldCommandID, vs...))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v Actor) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v Actor) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...Actor) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...Actor) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldActor, vs...))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v Intent) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v Intent) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...Intent) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...Intent) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldIntent, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldText, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldTimestamp, v))
}

// TimestampSourceEQ applies the EQ predicate on the "timestamp_source" field.
func TimestampSourceEQ(v TimestampSource) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldTimestampSource, v))
}

// TimestampSourceNEQ applies the NEQ predicate on the "timestamp_source" field.
func TimestampSourceNEQ(v TimestampSource) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldTimestampSource, v))
}

// TimestampSourceIn applies the In predicate on the "timestamp_source" field.
func TimestampSourceIn(vs ...TimestampSource) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldTimestampSource, vs...))
}

// TimestampSourceNotIn applies the NotIn predicate on the "timestamp_source" field.
func TimestampSourceNotIn(vs ...TimestampSource) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldTimestampSource, vs...))
}

// JsonlEntryHashEQ applies the EQ predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldJsonlEntryHash, v))
}

// JsonlEntryHashNEQ applies the NEQ predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldJsonlEntryHash, v))
}

// JsonlEntryHashIn applies the In predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldJsonlEntryHash, vs...))
}

// JsonlEntryHashNotIn applies the NotIn predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldJsonlEntryHash, vs...))
}

// JsonlEntryHashGT applies the GT predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldJsonlEntryHash, v))
}

// JsonlEntryHashGTE applies the GTE predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldJsonlEntryHash, v))
}

// JsonlEntryHashLT applies the LT predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldJsonlEntryHash, v))
}

// JsonlEntryHashLTE applies the LTE predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldJsonlEntryHash, v))
}

// JsonlEntryHashContains applies the Contains predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldJsonlEntryHash, v))
}

// JsonlEntryHashHasPrefix applies the HasPrefix predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldJsonlEntryHash, v))
}

// JsonlEntryHashHasSuffix applies the HasSuffix predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldJsonlEntryHash, v))
}

// JsonlEntryHashIsNil applies the IsNil predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldJsonlEntryHash))
}

// JsonlEntryHashNotNil applies the NotNil predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldJsonlEntryHash))
}

// JsonlEntryHashEqualFold applies the EqualFold predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldJsonlEntryHash, v))
}

// JsonlEntryHashContainsFold applies the ContainsFold predicate on the "jsonl_entry_hash" field.
func JsonlEntryHashContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldJsonlEntryHash, v))
}

// IsInternalEQ applies the EQ predicate on the "is_internal" field.
func IsInternalEQ(v bool) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldIsInternal, v))
}

// IsInternalNEQ applies the NEQ predicate on the "is_internal" field.
func IsInternalNEQ(v bool) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldIsInternal, v))
}

// ToolInputIsNil applies the IsNil predicate on the "tool_input" field.
func ToolInputIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldToolInput))
}

// ToolInputNotNil applies the NotNil predicate on the "tool_input" field.
func ToolInputNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldToolInput))
}

// FileMetadataIsNil applies the IsNil predicate on the "file_metadata" field.
func FileMetadataIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldFileMetadata))
}

// FileMetadataNotNil applies the NotNil predicate on the "file_metadata" field.
func FileMetadataNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldFileMetadata))
}

// AnsweredByTurnIDEQ applies the EQ predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldAnsweredByTurnID, v))
}

// AnsweredByTurnIDNEQ applies the NEQ predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDNEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldAnsweredByTurnID, v))
}

// AnsweredByTurnIDIn applies the In predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldAnsweredByTurnID, vs...))
}

// AnsweredByTurnIDNotIn applies the NotIn predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDNotIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldAnsweredByTurnID, vs...))
}

// AnsweredByTurnIDIsNil applies the IsNil predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldAnsweredByTurnID))
}

// AnsweredByTurnIDNotNil applies the NotNil predicate on the "answered_by_turn_id" field.
func AnsweredByTurnIDNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldAnsweredByTurnID))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldSummary, v))
}

// SummaryGeneratedAtEQ applies the EQ predicate on the "summary_generated_at" field.
func SummaryGeneratedAtEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtNEQ applies the NEQ predicate on the "summary_generated_at" field.
func SummaryGeneratedAtNEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtIn applies the In predicate on the "summary_generated_at" field.
func SummaryGeneratedAtIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldSummaryGeneratedAt, vs...))
}

// SummaryGeneratedAtNotIn applies the NotIn predicate on the "summary_generated_at" field.
func SummaryGeneratedAtNotIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldSummaryGeneratedAt, vs...))
}

// SummaryGeneratedAtGT applies the GT predicate on the "summary_generated_at" field.
func SummaryGeneratedAtGT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtGTE applies the GTE predicate on the "summary_generated_at" field.
func SummaryGeneratedAtGTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtLT applies the LT predicate on the "summary_generated_at" field.
func SummaryGeneratedAtLT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtLTE applies the LTE predicate on the "summary_generated_at" field.
func SummaryGeneratedAtLTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldSummaryGeneratedAt, v))
}

// SummaryGeneratedAtIsNil applies the IsNil predicate on the "summary_generated_at" field.
func SummaryGeneratedAtIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldSummaryGeneratedAt))
}

// SummaryGeneratedAtNotNil applies the NotNil predicate on the "summary_generated_at" field.
func SummaryGeneratedAtNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldSummaryGeneratedAt))
}

// HasCommand applies the HasEdge predicate on the "command" edge.
func HasCommand() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommandTable, CommandColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommandWith applies the HasEdge predicate on the "command" edge with a given conditions (other predicates).
func HasCommandWith(preds ...predicate.Command) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newCommandStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnsweredBy applies the HasEdge predicate on the "answered_by" edge.
func HasAnsweredBy() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnsweredByTable, AnsweredByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnsweredByWith applies the HasEdge predicate on the "answered_by" edge with a given conditions (other predicates).
func HasAnsweredByWith(preds ...predicate.Turn) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newAnsweredByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Turn) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInferenceCalls applies the HasEdge predicate on the "inference_calls" edge.
func HasInferenceCalls() predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInferenceCallsWith applies the HasEdge predicate on the "inference_calls" edge with a given conditions (other predicates).
func HasInferenceCallsWith(preds ...predicate.InferenceCall) predicate.Turn {
	return predicate.Turn(func(s *sql.Selector) {
		step := newInferenceCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.NotPredicates(p))
}
