package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Position holds the schema definition for the Position entity.
// Positions self-reference for reports-to and escalates-to chains.
// NULL is a valid terminal in the hierarchy, so both self-references
// use ON DELETE SET NULL.
type Position struct {
	ent.Schema
}

// Fields of the Position.
func (Position) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Int("reports_to_id").
			Optional().
			Nillable(),
		field.Int("escalates_to_id").
			Optional().
			Nillable(),
	}
}

// Edges of the Position.
func (Position) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", Role.Type).
			Ref("positions").
			Unique(),
		edge.To("reports", Position.Type).
			From("reports_to").
			Field("reports_to_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("escalations", Position.Type).
			From("escalates_to").
			Field("escalates_to_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("agents", Agent.Type),
	}
}
