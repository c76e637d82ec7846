package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Append-only audit log of everything the system observes and decides.
// Rows also drive the SSE broadcaster via NOTIFY.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("event_type").
			Values(
				"session_registered",
				"session_ended",
				"turn_detected",
				"state_transition",
				"state_transition_rejected",
				"hook_received",
				"hook_session_start",
				"hook_session_end",
				"hook_user_prompt",
				"hook_stop",
				"hook_notification",
				"hook_post_tool_use",
				"question_detected",
				"reconnection_ambiguous",
			).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
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

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("events").
			Field("project_id").
			Unique().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("events").
			Field("agent_id").
			Unique().
			Immutable(),
		edge.From("command", Command.Type).
			Ref("events").
			Field("command_id").
			Unique().
			Immutable(),
		edge.From("turn", Turn.Type).
			Ref("events").
			Field("turn_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
		index.Fields("agent_id", "created_at"),
		index.Fields("created_at"),
	}
}
