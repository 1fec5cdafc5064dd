package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Path holds the schema definition for the Path entity.
// A path is an ordered sequence of stops; routes reference a path.
type Path struct {
	ent.Schema
}

// Fields of the Path.
func (Path) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
	}
}

// Edges of the Path.
func (Path) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("path_stops", PathStop.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("routes", Route.Type),
	}
}
