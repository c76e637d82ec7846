// Code generated by ent, DO NOT EDIT.

package headspacesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the headspacesnapshot type in the database.
	Label = "headspace_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldCapturedAt holds the string denoting the captured_at field in the database.
	FieldCapturedAt = "captured_at"
	// FieldContextPercentUsed holds the string denoting the context_percent_used field in the database.
	FieldContextPercentUsed = "context_percent_used"
	// FieldContextRemainingTokens holds the string denoting the context_remaining_tokens field in the database.
	FieldContextRemainingTokens = "context_remaining_tokens"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// Table holds the table name of the headspacesnapshot in the database.
	Table = "headspace_snapshots"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "headspace_snapshots"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for headspacesnapshot fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldCapturedAt,
	FieldContextPercentUsed,
	FieldContextRemainingTokens,
	FieldRaw,
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
	// DefaultCapturedAt holds the default value on creation for the "captured_at" field.
	DefaultCapturedAt func() time.Time
)

// OrderOption defines the ordering options for the HeadspaceSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByCapturedAt orders the results by the captured_at field.
func ByCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapturedAt, opts...).ToFunc()
}

// ByContextPercentUsed orders the results by the context_percent_used field.
func ByContextPercentUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextPercentUsed, opts...).ToFunc()
}

// ByContextRemainingTokens orders the results by the context_remaining_tokens field.
func ByContextRemainingTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextRemainingTokens, opts...).ToFunc()
}

// ByRaw orders the results by the raw field.
func ByRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaw, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
