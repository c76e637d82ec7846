package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityMetric holds the schema definition for the ActivityMetric entity.
// Pre-aggregated per-bucket activity counts. Exactly one of the overall,
// per-agent, or per-project shapes holds per row (CHECK in
// database.CreateConstraints); uniqueness per bucket is enforced by a
// functional index over COALESCE'd foreign keys.
type ActivityMetric struct {
	ent.Schema
}

// Fields of the ActivityMetric.
func (ActivityMetric) Fields() []ent.Field {
	return []ent.Field{
		field.Time("bucket_start"),
		field.Bool("is_overall").
			Default(false),
		field.Int("agent_id").
			Optional().
			Nillable(),
		field.Int("project_id").
			Optional().
			Nillable(),
		field.Int("turn_count").
			Default(0),
		field.Int("command_count").
			Default(0),
	}
}

// Edges of the ActivityMetric.
func (ActivityMetric) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("activity_metrics").
			Field("agent_id").
			Unique(),
		edge.From("project", Project.Type).
			Ref("activity_metrics").
			Field("project_id").
			Unique(),
	}
}

// Indexes of the ActivityMetric.
func (ActivityMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bucket_start"),
	}
}
