package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// A session is a durable record of a multi-turn interaction: a pending
// risky action awaiting confirmation, or an in-flight wizard.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable().
			Comment("Opaque UUID, generated server-side"),
		field.Int("user_id").
			Comment("Owner of the pending interaction"),
		field.JSON("pending_action", map[string]interface{}{}).
			Comment("Serialised snapshot: action, verified ids, consequences, wizard state"),
		field.Enum("status").
			Values("pending", "confirmed", "done", "cancelled", "expired").
			Default("pending"),
		field.JSON("user_response", map[string]interface{}{}).
			Optional(),
		field.JSON("execution_result", map[string]interface{}{}).
			Optional().
			Comment("Set on done, or on cancelled when a rollback ran"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Comment("Default created_at + session TTL; reaped by the expiry collaborator"),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("expires_at"),
		index.Fields("status", "expires_at"),
	}
}
