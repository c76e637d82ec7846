package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Agent holds the schema definition for the Agent entity.
// One row per running conversational process instance. The agent's
// externally visible state is derived from its commands, never stored.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_uuid", uuid.UUID{}).
			Unique().
			Immutable().
			Comment("Host-side conversation identifier shared with hooks and JSONL"),
		field.Int("project_id"),
		field.Int("persona_id").
			Optional().
			Nillable(),
		field.Int("position_id").
			Optional().
			Nillable(),
		field.Int("previous_agent_id").
			Optional().
			Nillable().
			Comment("Predecessor for revival and handoff chains"),
		field.String("tmux_session_name").
			Optional().
			Nillable(),
		field.String("tmux_pane_id").
			Optional().
			Nillable(),
		field.String("legacy_window_id").
			Optional().
			Nillable().
			Comment("Pane identifier for the legacy windowing system"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("prompt_injected_at").
			Optional().
			Nillable().
			Comment("Set when persona injection completed — full readiness marker"),

		// Priority triplet — all-null or all-non-null (CHECK enforced in
		// database.CreateConstraints).
		field.Int("priority_score").
			Optional().
			Nillable(),
		field.String("priority_reason").
			Optional().
			Nillable(),
		field.Time("priority_updated_at").
			Optional().
			Nillable(),

		// Context-usage triplet from the tmux status line.
		field.Int("context_percent_used").
			Optional().
			Nillable(),
		field.String("context_remaining_tokens").
			Optional().
			Nillable().
			Comment("String with SI suffix, e.g. \"83k\""),
		field.Time("context_updated_at").
			Optional().
			Nillable(),

		field.String("guardrails_version_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the guardrail document injected into this agent"),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("agents").
			Field("project_id").
			Unique().
			Required(),
		edge.From("persona", Persona.Type).
			Ref("agents").
			Field("persona_id").
			Unique(),
		edge.From("position", Position.Type).
			Ref("agents").
			Field("position_id").
			Unique(),
		edge.To("successors", Agent.Type).
			From("previous_agent").
			Field("previous_agent_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("commands", Command.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type),
		edge.To("handoff", Handoff.Type).
			Unique(),
		edge.To("activity_metrics", ActivityMetric.Type),
		edge.To("snapshots", HeadspaceSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("inference_calls", InferenceCall.Type),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("last_seen_at"),
		// Live-agent scans (reaper, scorer, card listing)
		index.Fields("ended_at").
			Annotations(entsql.IndexWhere("ended_at IS NULL")),
	}
}
