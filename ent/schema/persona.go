package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Persona holds the schema definition for the Persona entity.
// Personas are created by registration and archived by operators;
// they are never deleted.
type Persona struct {
	ent.Schema
}

// Fields of the Persona.
func (Persona) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("active", "archived").
			Default("active"),
		field.String("skill_path").
			Optional().
			Nillable().
			Comment("Location of the persona's skill document on disk"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("archived_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Persona.
func (Persona) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("role", Role.Type).
			Ref("personas").
			Unique(),
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Persona.
func (Persona) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
