package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Objective holds the schema definition for the Objective entity.
// The single live objective the priority scorer ranks agents against.
type Objective struct {
	ent.Schema
}

// Fields of the Objective.
func (Objective) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty(),
		field.Bool("priority_enabled").
			Default(true),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
