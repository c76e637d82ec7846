package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project is one developer workspace on this host.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("URL-safe identifier"),
		field.String("name").
			NotEmpty(),
		field.String("path").
			Unique().
			NotEmpty().
			Comment("Absolute filesystem path (unique per host)"),
		field.String("git_origin_url").
			Optional().
			Nillable(),
		field.String("git_branch").
			Optional().
			Nillable(),
		field.Bool("inference_paused").
			Default(false).
			Comment("When true no oracle calls are issued for this project"),
		field.String("inference_paused_reason").
			Optional().
			Nillable(),
		field.Time("inference_paused_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type),
		edge.To("activity_metrics", ActivityMetric.Type),
		edge.To("inference_calls", InferenceCall.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("inference_paused"),
	}
}
