package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Turn holds the schema definition for the Turn entity.
// One conversational utterance inside a command. Immutable once
// committed — only summary and summary_generated_at may be set later.
type Turn struct {
	ent.Schema
}

// Fields of the Turn.
func (Turn) Fields() []ent.Field {
	return []ent.Field{
		field.Int("command_id").
			Immutable(),
		field.Enum("actor").
			Values("user", "agent").
			Immutable(),
		field.Enum("intent").
			Values("command", "answer", "question", "completion", "progress", "end_of_command").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.Time("timestamp").
			Immutable(),
		field.Enum("timestamp_source").
			Values("hook", "jsonl", "inferred").
			Immutable(),
		field.String("jsonl_entry_hash").
			Optional().
			Nillable().
			Immutable().
			Comment("SHA-256 content hash of the source JSONL entry; NULL for hook-born turns"),
		field.Bool("is_internal").
			Default(false).
			Immutable().
			Comment("Coordinator-to-sub-agent protocol message"),
		field.JSON("tool_input", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("file_metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int("answered_by_turn_id").
			Optional().
			Nillable(),
		field.String("summary").
			Optional().
			Nillable(),
		field.Time("summary_generated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Turn.
func (Turn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("command", Command.Type).
			Ref("turns").
			Field("command_id").
			Unique().
			Required().
			Immutable(),
		edge.To("answers", Turn.Type).
			From("answered_by").
			Field("answered_by_turn_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("events", Event.Type),
		edge.To("inference_calls", InferenceCall.Type),
	}
}

// Indexes of the Turn.
func (Turn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("command_id", "timestamp"),
		// Storage-level dedup: multiple NULL hashes coexist, non-NULL
		// hashes are unique per command.
		index.Fields("command_id", "jsonl_entry_hash").
			Unique().
			Annotations(entsql.IndexWhere("jsonl_entry_hash IS NOT NULL")),
	}
}
