// Code generated by ent, DO NOT EDIT.

package command

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the command type in the database.
	Label = "command"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldInstruction holds the string denoting the instruction field in the database.
	FieldInstruction = "instruction"
	// FieldCompletionSummary holds the string denoting the completion_summary field in the database.
	FieldCompletionSummary = "completion_summary"
	// FieldFullCommand holds the string denoting the full_command field in the database.
	FieldFullCommand = "full_command"
	// FieldFullOutput holds the string denoting the full_output field in the database.
	FieldFullOutput = "full_output"
	// FieldPlanFilePath holds the string denoting the plan_file_path field in the database.
	FieldPlanFilePath = "plan_file_path"
	// FieldPlanContent holds the string denoting the plan_content field in the database.
	FieldPlanContent = "plan_content"
	// FieldPlanApprovedAt holds the string denoting the plan_approved_at field in the database.
	FieldPlanApprovedAt = "plan_approved_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeTurns holds the string denoting the turns edge name in mutations.
	EdgeTurns = "turns"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeInferenceCalls holds the string denoting the inference_calls edge name in mutations.
	EdgeInferenceCalls = "inference_calls"
	// Table holds the table name of the command in the database.
	Table = "commands"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "commands"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// TurnsTable is the table that holds the turns relation/edge.
	TurnsTable = "turns"
	// TurnsInverseTable is the table name for the Turn entity.
	// It exists in this package in order to avoid circular dependency with the "turn" package.
	TurnsInverseTable = "turns"
	// TurnsColumn is the table column denoting the turns relation/edge.
	TurnsColumn = "command_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "command_id"
	// InferenceCallsTable is the table that holds the inference_calls relation/edge.
	InferenceCallsTable = "inference_calls"
	// InferenceCallsInverseTable is the table name for the InferenceCall entity.
	// It exists in this package in order to avoid circular dependency with the "inferencecall" package.
	InferenceCallsInverseTable = "inference_calls"
	// InferenceCallsColumn is the table column denoting the inference_calls relation/edge.
	InferenceCallsColumn = "command_id"
)

// Columns holds all SQL columns for command fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldState,
	FieldStartedAt,
	FieldCompletedAt,
	FieldInstruction,
	FieldCompletionSummary,
	FieldFullCommand,
	FieldFullOutput,
	FieldPlanFilePath,
	FieldPlanContent,
	FieldPlanApprovedAt,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateCommanded is the default value of the State enum.
const DefaultState = StateCommanded

// State values.
const (
	StateIdle          State = "idle"
	StateCommanded     State = "commanded"
	StateProcessing    State = "processing"
	StateAwaitingInput State = "awaiting_input"
	StateComplete      State = "complete"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateIdle, StateCommanded, StateProcessing, StateAwaitingInput, StateComplete:
		return nil
	default:
		return fmt.Errorf("command: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Command queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByInstruction orders the results by the instruction field.
func ByInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstruction, opts...).ToFunc()
}

// ByCompletionSummary orders the results by the completion_summary field.
func ByCompletionSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionSummary, opts...).ToFunc()
}

// ByFullCommand orders the results by the full_command field.
func ByFullCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullCommand, opts...).ToFunc()
}

// ByFullOutput orders the results by the full_output field.
func ByFullOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullOutput, opts...).ToFunc()
}

// ByPlanFilePath orders the results by the plan_file_path field.
func ByPlanFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanFilePath, opts...).ToFunc()
}

// ByPlanContent orders the results by the plan_content field.
func ByPlanContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanContent, opts...).ToFunc()
}

// ByPlanApprovedAt orders the results by the plan_approved_at field.
func ByPlanApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanApprovedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByTurnsCount orders the results by turns count.
func ByTurnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTurnsStep(), opts...)
	}
}

// ByTurns orders the results by turns terms.
func ByTurns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTurnsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newTurnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TurnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
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
