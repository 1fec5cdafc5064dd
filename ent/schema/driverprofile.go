package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DriverProfile holds the schema definition for a fleet driver. The
// entity cannot be called Driver: ent reserves that identifier for the
// generated dialect option. The table keeps the natural name.
type DriverProfile struct {
	ent.Schema
}

// Annotations of the DriverProfile.
func (DriverProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "drivers"},
	}
}

// Fields of the DriverProfile.
func (DriverProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.String("phone").
			Optional(),
		field.Enum("status").
			Values("available", "on_trip", "off_duty").
			Default("available"),
	}
}

// Edges of the DriverProfile.
func (DriverProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deployments", Deployment.Type),
	}
}

// Indexes of the DriverProfile.
func (DriverProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
