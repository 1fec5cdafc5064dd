package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trip holds the schema definition for the Trip entity.
// A trip is a scheduled instance of a route on a date.
type Trip struct {
	ent.Schema
}

// Fields of the Trip.
func (Trip) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_name").
			Comment("Human label shown in the UI, e.g. 'Path-3 - 07:30'"),
		field.Time("trip_date").
			Comment("Calendar date of the trip (time component ignored)"),
		field.String("scheduled_time").
			Comment("Departure time, HH:MM 24h"),
		field.Int("route_id").
			Optional(),
		field.Enum("live_status").
			Values("SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED").
			Default("SCHEDULED"),
	}
}

// Edges of the Trip.
func (Trip) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("route", Route.Type).
			Ref("trips").
			Unique().
			Field("route_id"),
		edge.To("deployment", Deployment.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bookings", Booking.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Trip.
func (Trip) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trip_date"),
		index.Fields("live_status"),
		index.Fields("trip_date", "scheduled_time"),
		index.Fields("display_name"),
	}
}
