// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionUUID holds the string denoting the session_uuid field in the database.
	FieldSessionUUID = "session_uuid"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldPersonaID holds the string denoting the persona_id field in the database.
	FieldPersonaID = "persona_id"
	// FieldPositionID holds the string denoting the position_id field in the database.
	FieldPositionID = "position_id"
	// FieldPreviousAgentID holds the string denoting the previous_agent_id field in the database.
	FieldPreviousAgentID = "previous_agent_id"
	// FieldTmuxSessionName holds the string denoting the tmux_session_name field in the database.
	FieldTmuxSessionName = "tmux_session_name"
	// FieldTmuxPaneID holds the string denoting the tmux_pane_id field in the database.
	FieldTmuxPaneID = "tmux_pane_id"
	// FieldLegacyWindowID holds the string denoting the legacy_window_id field in the database.
	FieldLegacyWindowID = "legacy_window_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldPromptInjectedAt holds the string denoting the prompt_injected_at field in the database.
	FieldPromptInjectedAt = "prompt_injected_at"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldPriorityReason holds the string denoting the priority_reason field in the database.
	FieldPriorityReason = "priority_reason"
	// FieldPriorityUpdatedAt holds the string denoting the priority_updated_at field in the database.
	FieldPriorityUpdatedAt = "priority_updated_at"
	// FieldContextPercentUsed holds the string denoting the context_percent_used field in the database.
	FieldContextPercentUsed = "context_percent_used"
	// FieldContextRemainingTokens holds the string denoting the context_remaining_tokens field in the database.
	FieldContextRemainingTokens = "context_remaining_tokens"
	// FieldContextUpdatedAt holds the string denoting the context_updated_at field in the database.
	FieldContextUpdatedAt = "context_updated_at"
	// FieldGuardrailsVersionHash holds the string denoting the guardrails_version_hash field in the database.
	FieldGuardrailsVersionHash = "guardrails_version_hash"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgePersona holds the string denoting the persona edge name in mutations.
	EdgePersona = "persona"
	// EdgePosition holds the string denoting the position edge name in mutations.
	EdgePosition = "position"
	// EdgePreviousAgent holds the string denoting the previous_agent edge name in mutations.
	EdgePreviousAgent = "previous_agent"
	// EdgeSuccessors holds the string denoting the successors edge name in mutations.
	EdgeSuccessors = "successors"
	// EdgeCommands holds the string denoting the commands edge name in mutations.
	EdgeCommands = "commands"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeHandoff holds the string denoting the handoff edge name in mutations.
	EdgeHandoff = "handoff"
	// EdgeActivityMetrics holds the string denoting the activity_metrics edge name in mutations.
	EdgeActivityMetrics = "activity_metrics"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgeInferenceCalls holds the string denoting the inference_calls edge name in mutations.
	EdgeInferenceCalls = "inference_calls"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agents"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// PersonaTable is the table that holds the persona relation/edge.
	PersonaTable = "agents"
	// PersonaInverseTable is the table name for the Persona entity.
	// It exists in this package in order to avoid circular dependency with the "persona" package.
	PersonaInverseTable = "personas"
	// PersonaColumn is the table column denoting the persona relation/edge.
	PersonaColumn = "persona_id"
	// PositionTable is the table that holds the position relation/edge.
	PositionTable = "agents"
	// PositionInverseTable is the table name for the Position entity.
	// It exists in this package in order to avoid circular dependency with the "position" package.
	PositionInverseTable = "positions"
	// PositionColumn is the table column denoting the position relation/edge.
	PositionColumn = "position_id"
	// PreviousAgentTable is the table that holds the previous_agent relation/edge.
	PreviousAgentTable = "agents"
	// PreviousAgentColumn is the table column denoting the previous_agent relation/edge.
	PreviousAgentColumn = "previous_agent_id"
	// SuccessorsTable is the table that holds the successors relation/edge.
	SuccessorsTable = "agents"
	// SuccessorsColumn is the table column denoting the successors relation/edge.
	SuccessorsColumn = "previous_agent_id"
	// CommandsTable is the table that holds the commands relation/edge.
	CommandsTable = "commands"
	// CommandsInverseTable is the table name for the Command entity.
	// It exists in this package in order to avoid circular dependency with the "command" package.
	CommandsInverseTable = "commands"
	// CommandsColumn is the table column denoting the commands relation/edge.
	CommandsColumn = "agent_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "agent_id"
	// HandoffTable is the table that holds the handoff relation/edge.
	HandoffTable = "handoffs"
	// HandoffInverseTable is the table name for the Handoff entity.
	// It exists in this package in order to avoid circular dependency with the "handoff" package.
	HandoffInverseTable = "handoffs"
	// HandoffColumn is the table column denoting the handoff relation/edge.
	HandoffColumn = "agent_id"
	// ActivityMetricsTable is the table that holds the activity_metrics relation/edge.
	ActivityMetricsTable = "activity_metrics"
	// ActivityMetricsInverseTable is the table name for the ActivityMetric entity.
	// It exists in this package in order to avoid circular dependency with the "activitymetric" package.
	ActivityMetricsInverseTable = "activity_metrics"
	// ActivityMetricsColumn is the table column denoting the activity_metrics relation/edge.
	ActivityMetricsColumn = "agent_id"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "headspace_snapshots"
	// SnapshotsInverseTable is the table name for the HeadspaceSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "headspacesnapshot" package.
	SnapshotsInverseTable = "headspace_snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "agent_id"
	// InferenceCallsTable is the table that holds the inference_calls relation/edge.
	InferenceCallsTable = "inference_calls"
	// InferenceCallsInverseTable is the table name for the InferenceCall entity.
	// It exists in this package in order to avoid circular dependency with the "inferencecall" package.
	InferenceCallsInverseTable = "inference_calls"
	// InferenceCallsColumn is the table column denoting the inference_calls relation/edge.
	InferenceCallsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldSessionUUID,
	FieldProjectID,
	FieldPersonaID,
	FieldPositionID,
	FieldPreviousAgentID,
	FieldTmuxSessionName,
	FieldTmuxPaneID,
	FieldLegacyWindowID,
	FieldStartedAt,
	FieldLastSeenAt,
	FieldEndedAt,
	FieldPromptInjectedAt,
	FieldPriorityScore,
	FieldPriorityReason,
	FieldPriorityUpdatedAt,
	FieldContextPercentUsed,
	FieldContextRemainingTokens,
	FieldContextUpdatedAt,
	FieldGuardrailsVersionHash,
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
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
)

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionUUID orders the results by the session_uuid field.
func BySessionUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionUUID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByPersonaID orders the results by the persona_id field.
func ByPersonaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaID, opts...).ToFunc()
}

// ByPositionID orders the results by the position_id field.
func ByPositionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionID, opts...).ToFunc()
}

// ByPreviousAgentID orders the results by the previous_agent_id field.
func ByPreviousAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousAgentID, opts...).ToFunc()
}

// ByTmuxSessionName orders the results by the tmux_session_name field.
func ByTmuxSessionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmuxSessionName, opts...).ToFunc()
}

// ByTmuxPaneID orders the results by the tmux_pane_id field.
func ByTmuxPaneID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmuxPaneID, opts...).ToFunc()
}

// ByLegacyWindowID orders the results by the legacy_window_id field.
func ByLegacyWindowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyWindowID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByPromptInjectedAt orders the results by the prompt_injected_at field.
func ByPromptInjectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptInjectedAt, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByPriorityReason orders the results by the priority_reason field.
func ByPriorityReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityReason, opts...).ToFunc()
}

// ByPriorityUpdatedAt orders the results by the priority_updated_at field.
func ByPriorityUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityUpdatedAt, opts...).ToFunc()
}

// ByContextPercentUsed orders the results by the context_percent_used field.
func ByContextPercentUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextPercentUsed, opts...).ToFunc()
}

// ByContextRemainingTokens orders the results by the context_remaining_tokens field.
func ByContextRemainingTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextRemainingTokens, opts...).ToFunc()
}

// ByContextUpdatedAt orders the results by the context_updated_at field.
func ByContextUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextUpdatedAt, opts...).ToFunc()
}

// ByGuardrailsVersionHash orders the results by the guardrails_version_hash field.
func ByGuardrailsVersionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardrailsVersionHash, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByPersonaField orders the results by persona field.
func ByPersonaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPersonaStep(), sql.OrderByField(field, opts...))
	}
}

// ByPositionField orders the results by position field.
func ByPositionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPositionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPreviousAgentField orders the results by previous_agent field.
func ByPreviousAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPreviousAgentStep(), sql.OrderByField(field, opts...))
	}
}

// BySuccessorsCount orders the results by successors count.
func BySuccessorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSuccessorsStep(), opts...)
	}
}

// BySuccessors orders the results by successors terms.
func BySuccessors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuccessorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCommandsCount orders the results by commands count.
func ByCommandsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommandsStep(), opts...)
	}
}

// ByCommands orders the results by commands terms.
func ByCommands(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommandsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByHandoffField orders the results by handoff field.
func ByHandoffField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHandoffStep(), sql.OrderByField(field, opts...))
	}
}

// ByActivityMetricsCount orders the results by activity_metrics count.
func ByActivityMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivityMetricsStep(), opts...)
	}
}

// ByActivityMetrics orders the results by activity_metrics terms.
func ByActivityMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivityMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newPersonaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PersonaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PersonaTable, PersonaColumn),
	)
}
func newPositionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PositionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PositionTable, PositionColumn),
	)
}
func newPreviousAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PreviousAgentTable, PreviousAgentColumn),
	)
}
func newSuccessorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SuccessorsTable, SuccessorsColumn),
	)
}
func newCommandsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommandsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommandsTable, CommandsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newHandoffStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HandoffInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, HandoffTable, HandoffColumn),
	)
}
func newActivityMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityMetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivityMetricsTable, ActivityMetricsColumn),
	)
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newInferenceCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InferenceCallsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
	)
}
