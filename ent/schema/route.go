package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Route holds the schema definition for the Route entity.
// A route is a path traversed in a direction at a shift time.
type Route struct {
	ent.Schema
}

// Fields of the Route.
func (Route) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Int("path_id"),
		field.Enum("direction").
			Values("up", "down"),
		field.String("shift_time").
			Comment("HH:MM 24h"),
	}
}

// Edges of the Route.
func (Route) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("path", Path.Type).
			Ref("routes").
			Unique().
			Required().
			Field("path_id"),
		edge.To("trips", Trip.Type),
	}
}

// Indexes of the Route.
func (Route) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
	}
}
