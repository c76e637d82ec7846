package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InferenceCall holds the schema definition for the InferenceCall entity.
// One row per oracle invocation, cached or not. At least one parent
// foreign key must be set (CHECK in database.CreateConstraints).
type InferenceCall struct {
	ent.Schema
}

// Fields of the InferenceCall.
func (InferenceCall) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("level").
			Values("turn", "command", "project", "priority").
			Immutable(),
		field.String("input_hash").
			Immutable().
			Comment("SHA-256 of the prompt — idempotent-cache key"),
		field.Bool("cached").
			Default(false).
			Immutable(),
		field.Int("prompt_tokens").
			Default(0).
			Immutable(),
		field.Int("completion_tokens").
			Default(0).
			Immutable(),
		field.Float("cost_usd").
			Default(0).
			Immutable(),
		field.Int("latency_ms").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("project_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("command_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("turn_id").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Edges of the InferenceCall.
func (InferenceCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("inference_calls").
			Field("project_id").
			Unique().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("inference_calls").
			Field("agent_id").
			Unique().
			Immutable(),
		edge.From("command", Command.Type).
			Ref("inference_calls").
			Field("command_id").
			Unique().
			Immutable(),
		edge.From("turn", Turn.Type).
			Ref("inference_calls").
			Field("turn_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the InferenceCall.
func (InferenceCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("input_hash"),
		index.Fields("level", "created_at"),
	}
}
