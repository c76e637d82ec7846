package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Handoff holds the schema definition for the Handoff entity.
// A Handoff row for agent N means N's successor was a planned handoff;
// absence of a row makes any successor a bare revival.
type Handoff struct {
	ent.Schema
}

// Fields of the Handoff.
func (Handoff) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Unique(),
		field.Text("reason").
			Comment("Operator-supplied handoff instruction delivered to the successor"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Handoff.
func (Handoff) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("handoff").
			Field("agent_id").
			Unique().
			Required(),
	}
}
