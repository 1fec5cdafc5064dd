package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only; exactly one record per logical mutation, written in the
// same transaction as the mutation itself. Never updated or deleted.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("action"),
		field.String("entity_type"),
		field.Int("entity_id"),
		field.JSON("before", map[string]interface{}{}).
			Optional(),
		field.JSON("after", map[string]interface{}{}).
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("timestamp"),
	}
}
