package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HeadspaceSnapshot holds the schema definition for the HeadspaceSnapshot
// entity: rolling context-usage samples captured from the agent's pane.
type HeadspaceSnapshot struct {
	ent.Schema
}

// Fields of the HeadspaceSnapshot.
func (HeadspaceSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Immutable(),
		field.Time("captured_at").
			Default(time.Now).
			Immutable(),
		field.Int("context_percent_used").
			Immutable(),
		field.String("context_remaining_tokens").
			Immutable(),
		field.String("raw").
			Immutable().
			Comment("Status line exactly as rendered in the pane"),
	}
}

// Edges of the HeadspaceSnapshot.
func (HeadspaceSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("snapshots").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HeadspaceSnapshot.
func (HeadspaceSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "captured_at"),
	}
}
