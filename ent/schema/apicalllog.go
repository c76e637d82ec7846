package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiCallLog holds the schema definition for the ApiCallLog entity.
// Captured HTTP transactions on the declared prefix list. Bodies are
// redacted and truncated at 1 MiB before they reach this table.
type ApiCallLog struct {
	ent.Schema
}

// Fields of the ApiCallLog.
func (ApiCallLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("method").
			Immutable(),
		field.String("path").
			Immutable(),
		field.Int("status").
			Immutable(),
		field.Int("latency_ms").
			Immutable(),
		field.Bool("authenticated").
			Default(false).
			Immutable(),
		field.JSON("request_headers", map[string]string{}).
			Optional().
			Immutable().
			Comment("Redacted — authorization values replaced before storage"),
		field.Text("request_body").
			Optional().
			Immutable(),
		field.Text("response_body").
			Optional().
			Immutable(),
		field.Bool("truncated").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApiCallLog.
func (ApiCallLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path", "created_at"),
	}
}
