// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldGitOriginURL holds the string denoting the git_origin_url field in the database.
	FieldGitOriginURL = "git_origin_url"
	// FieldGitBranch holds the string denoting the git_branch field in the database.
	FieldGitBranch = "git_branch"
	// FieldInferencePaused holds the string denoting the inference_paused field in the database.
	FieldInferencePaused = "inference_paused"
	// FieldInferencePausedReason holds the string denoting the inference_paused_reason field in the database.
	FieldInferencePausedReason = "inference_paused_reason"
	// FieldInferencePausedAt holds the string denoting the inference_paused_at field in the database.
	FieldInferencePausedAt = "inference_paused_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeActivityMetrics holds the string denoting the activity_metrics edge name in mutations.
	EdgeActivityMetrics = "activity_metrics"
	// EdgeInferenceCalls holds the string denoting the inference_calls edge name in mutations.
	EdgeInferenceCalls = "inference_calls"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "agents"
	// AgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentsInverseTable = "agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "project_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "project_id"
	// ActivityMetricsTable is the table that holds the activity_metrics relation/edge.
	ActivityMetricsTable = "activity_metrics"
	// ActivityMetricsInverseTable is the table name for the ActivityMetric entity.
	// It exists in this package in order to avoid circular dependency with the "activitymetric" package.
	ActivityMetricsInverseTable = "activity_metrics"
	// ActivityMetricsColumn is the table column denoting the activity_metrics relation/edge.
	ActivityMetricsColumn = "project_id"
	// InferenceCallsTable is the table that holds the inference_calls relation/edge.
	InferenceCallsTable = "inference_calls"
	// InferenceCallsInverseTable is the table name for the InferenceCall entity.
	// It exists in this package in order to avoid circular dependency with the "inferencecall" package.
	InferenceCallsInverseTable = "inference_calls"
	// InferenceCallsColumn is the table column denoting the inference_calls relation/edge.
	InferenceCallsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldName,
	FieldPath,
	FieldGitOriginURL,
	FieldGitBranch,
	FieldInferencePaused,
	FieldInferencePausedReason,
	FieldInferencePausedAt,
	FieldCreatedAt,
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
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// DefaultInferencePaused holds the default value on creation for the "inference_paused" field.
	DefaultInferencePaused bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByGitOriginURL orders the results by the git_origin_url field.
func ByGitOriginURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitOriginURL, opts...).ToFunc()
}

// ByGitBranch orders the results by the git_branch field.
func ByGitBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitBranch, opts...).ToFunc()
}

// ByInferencePaused orders the results by the inference_paused field.
func ByInferencePaused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInferencePaused, opts...).ToFunc()
}

// ByInferencePausedReason orders the results by the inference_paused_reason field.
func ByInferencePausedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInferencePausedReason, opts...).ToFunc()
}

// ByInferencePausedAt orders the results by the inference_paused_at field.
func ByInferencePausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInferencePausedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newActivityMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityMetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivityMetricsTable, ActivityMetricsColumn),
	)
}
func newInferenceCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InferenceCallsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InferenceCallsTable, InferenceCallsColumn),
	)
}
