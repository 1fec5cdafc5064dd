package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathStop holds the schema definition for the PathStop entity.
// Ordered membership of a stop in a path.
type PathStop struct {
	ent.Schema
}

// Fields of the PathStop.
func (PathStop) Fields() []ent.Field {
	return []ent.Field{
		field.Int("path_id"),
		field.Int("stop_id"),
		field.Int("sequence").
			NonNegative(),
	}
}

// Edges of the PathStop.
func (PathStop) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("path", Path.Type).
			Ref("path_stops").
			Unique().
			Required().
			Field("path_id"),
		edge.From("stop", Stop.Type).
			Ref("path_stops").
			Unique().
			Required().
			Field("stop_id"),
	}
}

// Indexes of the PathStop.
func (PathStop) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id", "sequence").
			Unique(),
	}
}
