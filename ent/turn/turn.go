// Code generated by ent, DO NOT EDIT.

package turn

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the turn type in the database.
	Label = "turn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommandID holds the string denoting the command_id field in the database.
	FieldCommandID = "command_id"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTimestampSource holds the string denoting the timestamp_source field in the database.
	FieldTimestampSource = "timestamp_source"
	// FieldJsonlEntryHash holds the string denoting the jsonl_entry_hash field in the database.
	FieldJsonlEntryHash = "jsonl_entry_hash"
	// FieldIsInternal holds the string denoting the is_internal field in the database.
	FieldIsInternal = "is_internal"
	// FieldToolInput holds the string denoting the tool_input field in the database.
	FieldToolInput = "tool_input"
	// FieldFileMetadata holds the string denoting the file_metadata field in the database.
	FieldFileMetadata = "file_metadata"
	// FieldAnsweredByTurnID holds the string denoting the answered_by_turn_id field in the database.
	FieldAnsweredByTurnID = "answered_by_turn_id"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldSummaryGeneratedAt holds the string denoting the summary_generated_at field in the database.
	FieldSummaryGeneratedAt = "summary_generated_at"
	// EdgeCommand holds the string denoting the command edge name in mutations.
	EdgeCommand = "command"
	// EdgeAnsweredBy holds the string denoting the answered_by edge name in mutations.
	EdgeAnsweredBy = "answered_by"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeInferenceCalls holds the string denoting the inference_calls edge name in mutations.
	EdgeInferenceCalls = "inference_calls"
	// Table holds the table name of the turn in the database.
	Table = "turns"
	// CommandTable is the table that holds the command relation/edge.
	CommandTable = "turns"
	// CommandInverseTable is the table name for the Command entity.
	// It exists in this package in order to avoid circular dependency with the "command" package.
	CommandInverseTable = "commands"
	// CommandColumn is the table column denoting the command relation/edge.
	CommandColumn = "command_id"
	// AnsweredByTable is the table that holds the answered_by relation/edge.
	AnsweredByTable = "turns"
	// AnsweredByColumn is the table column denoting the answered_by relation/edge.
	AnsweredByColumn = "answered_by_turn_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "turns"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "answered_by_turn_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "turn_id"
	// InferenceCallsTable is the table that holds the inference_calls relation/edge.
	InferenceCallsTable = "inference_calls"
	// InferenceCallsInverseTable is the table name for the InferenceCall entity.
	// It exists in this package in order to avoid circular dependency with the "inferencecall" package.
	InferenceCallsInverseTable = "inference_calls"
	// InferenceCallsColumn is the table column denoting the inference_calls relation/edge.
	InferenceCallsColumn = "turn_id"
)

// Columns holds all SQL columns for turn fields.
var Columns = []string{
	FieldID,
	FieldCommandID,
	FieldActor,
	FieldIntent,
	FieldText,
	FieldTimestamp,
	FieldTimestampSource,
	FieldJsonlEntryHash,
	FieldIsInternal,
	FieldToolInput,
	FieldFileMetadata,
	FieldAnsweredByTurnID,
	FieldSummary,
	FieldSummaryGeneratedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsInternal holds the default value on creation for the "is_internal" field.
	DefaultIsInternal bool
)

// Actor defines the type for the "actor" enum field.
type Actor string

// Actor values.
const (
	ActorUser  Actor = "user"
	ActorAgent Actor = "agent"
)

func (a Actor) String() string {
	return string(a)
}

// ActorValidator is a validator for the "actor" field enum values. It is called by the builders before save.
func ActorValidator(a Actor) error {
	switch a {
	case ActorUser, ActorAgent:
		return nil
	default:
		return fmt.Errorf("turn: invalid enum value for actor field: %q", a)
	}
}

// Intent defines the type for the "intent" enum field.
type Intent string

// Intent values.
const (
	IntentCommand      Intent = "command"
	IntentAnswer       Intent = "answer"
	IntentQuestion     Intent = "question"
	IntentCompletion   Intent = "completion"
	IntentProgress     Intent = "progress"
	IntentEndOfCommand Intent = "end_of_command"
)

func (i Intent) String() string {
	return string(i)
}

// IntentValidator is a validator for the "intent" field enum values. It is called by the builders before save.
func IntentValidator(i Intent) error {
	switch i {
	case IntentCommand, IntentAnswer, IntentQuestion, IntentCompletion, IntentProgress, IntentEndOfCommand:
		return nil
	default:
		return fmt.Errorf("turn: invalid enum value for intent field: %q", i)
	}
}

// TimestampSource defines the type for the "timestamp_source" enum field.
type TimestampSource string

// TimestampSource values.
const (
	TimestampSourceHook     TimestampSource = "hook"
	TimestampSourceJsonl    TimestampSource = "jsonl"
	TimestampSourceInferred TimestampSource = "inferred"
)

func (ts TimestampSource) String() string {
	return string(ts)
}

// TimestampSourceValidator is a validator for the "timestamp_source" field enum values. It is called by the builders before save.
func TimestampSourceValidator(ts TimestampSource) error {
	switch ts {
	case TimestampSourceHook, TimestampSourceJsonl, TimestampSourceInferred:
		return nil
	default:
		return fmt.Errorf("turn: invalid enum value for timestamp_source field: %q", ts)
	}
}

// OrderOption defines the ordering options for the Turn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommandID orders the results by the command_id field.
func ByCommandID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTimestampSource orders the results by the timestamp_source field.
func ByTimestampSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestampSource, opts...).ToFunc()
}

// ByJsonlEntryHash orders the results by the jsonl_entry_hash field.
func ByJsonlEntryHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJsonlEntryHash, opts...).ToFunc()
}

// ByIsInternal orders the results by the is_internal field.
func ByIsInternal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsInternal, opts...).ToFunc()
}

// ByAnsweredByTurnID orders the results by the answered_by_turn_id field.
func ByAnsweredByTurnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredByTurnID, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// BySummaryGeneratedAt orders the results by the summary_generated_at field.
func BySummaryGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryGeneratedAt, opts...).ToFunc()
}

// ByCommandField orders the results by command field.
func ByCommandField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommandStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnsweredByField orders the results by answered_by field.
func ByAnsweredByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnsweredByStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInferenceCallsCount orders the results by inference_calls count.
func ByInferenceCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInferenceCallsStep(), opts...)
	}
}

// ByInferenceCalls orders the results by inference_calls terms.
func ByInferenceCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInferenceCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCommandStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommandInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CommandTable, CommandColumn),
	)
}
func newAnsweredByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnsweredByTable, AnsweredByColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newInferenceCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InferenceCallsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
	)
}
