package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Command holds the schema definition for the Command entity.
// A command is one unit of work opened by a user prompt. COMPLETE is
// terminal: a completed command is never mutated again.
type Command struct {
	ent.Schema
}

// Fields of the Command.
func (Command) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id"),
		field.Enum("state").
			Values("idle", "commanded", "processing", "awaiting_input", "complete").
			Default("commanded"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("CHECK completed_at >= started_at enforced in database.CreateConstraints"),
		field.String("instruction").
			Optional().
			Nillable().
			Comment("Oracle summary of the user's request"),
		field.String("completion_summary").
			Optional().
			Nillable().
			Comment("Oracle summary of the agent's outcome"),
		field.Text("full_command").
			Optional().
			Nillable().
			Comment("Verbatim initial request"),
		field.Text("full_output").
			Optional().
			Nillable().
			Comment("Verbatim final response"),
		field.String("plan_file_path").
			Optional().
			Nillable(),
		field.Text("plan_content").
			Optional().
			Nillable(),
		field.Time("plan_approved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Command.
func (Command) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("commands").
			Field("agent_id").
			Unique().
			Required(),
		edge.To("turns", Turn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type),
		edge.To("inference_calls", InferenceCall.Type),
	}
}

// Indexes of the Command.
func (Command) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "started_at"),
		index.Fields("state"),
		// Open-command lookup on the hot hook path
		index.Fields("agent_id").
			Annotations(entsql.IndexWhere("state != 'complete'")),
	}
}
