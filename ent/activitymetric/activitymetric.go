// Code generated by ent, DO NOT EDIT.

package activitymetric

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the activitymetric type in the database.
	Label = "activity_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBucketStart holds the string denoting the bucket_start field in the database.
	FieldBucketStart = "bucket_start"
	// FieldIsOverall holds the string denoting the is_overall field in the database.
	FieldIsOverall = "is_overall"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTurnCount holds the string denoting the turn_count field in the database.
	FieldTurnCount = "turn_count"
	// FieldCommandCount holds the string denoting the command_count field in the database.
	FieldCommandCount = "command_count"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the activitymetric in the database.
	Table = "activity_metrics"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "activity_metrics"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "activity_metrics"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for activitymetric fields.
var Columns = []string{
	FieldID,
	FieldBucketStart,
	FieldIsOverall,
	FieldAgentID,
	FieldProjectID,
	FieldTurnCount,
	FieldCommandCount,
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
	// DefaultIsOverall holds the default value on creation for the "is_overall" field.
	DefaultIsOverall bool
	// DefaultTurnCount holds the default value on creation for the "turn_count" field.
	DefaultTurnCount int
	// DefaultCommandCount holds the default value on creation for the "command_count" field.
	DefaultCommandCount int
)

// OrderOption defines the ordering options for the ActivityMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBucketStart orders the results by the bucket_start field.
func ByBucketStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBucketStart, opts...).ToFunc()
}

// ByIsOverall orders the results by the is_overall field.
func ByIsOverall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOverall, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByTurnCount orders the results by the turn_count field.
func ByTurnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnCount, opts...).ToFunc()
}

// ByCommandCount orders the results by the command_count field.
func ByCommandCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandCount, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
