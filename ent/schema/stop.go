package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Stop holds the schema definition for the Stop entity.
type Stop struct {
	ent.Schema
}

// Fields of the Stop.
func (Stop) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Float("latitude").
			Optional(),
		field.Float("longitude").
			Optional(),
	}
}

// Edges of the Stop.
func (Stop) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("path_stops", PathStop.Type),
	}
}
