package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deployment holds the schema definition for the Deployment entity.
// A deployment binds a vehicle and/or a driver to a trip. At most one
// deployment exists per trip; the unique trip_id enforces it at the
// schema level and row locks preserve it under concurrency.
type Deployment struct {
	ent.Schema
}

// Fields of the Deployment.
func (Deployment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("trip_id").
			Unique(),
		field.Int("vehicle_id").
			Optional().
			Nillable(),
		field.Int("driver_id").
			Optional().
			Nillable(),
		field.Time("deployed_at").
			Default(time.Now),
	}
}

// Edges of the Deployment.
func (Deployment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("trip", Trip.Type).
			Ref("deployment").
			Unique().
			Required().
			Field("trip_id"),
		edge.From("vehicle", Vehicle.Type).
			Ref("deployments").
			Unique().
			Field("vehicle_id"),
		edge.From("driver", DriverProfile.Type).
			Ref("deployments").
			Unique().
			Field("driver_id"),
	}
}

// Indexes of the Deployment.
func (Deployment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vehicle_id"),
		index.Fields("driver_id"),
	}
}
