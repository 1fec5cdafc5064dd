package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Booking holds the schema definition for the Booking entity.
type Booking struct {
	ent.Schema
}

// Fields of the Booking.
func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.Int("trip_id"),
		field.String("passenger_name").
			Optional(),
		field.Enum("status").
			Values("CONFIRMED", "CANCELLED").
			Default("CONFIRMED"),
		field.Time("booked_at").
			Default(time.Now),
	}
}

// Edges of the Booking.
func (Booking) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("trip", Trip.Type).
			Ref("bookings").
			Unique().
			Required().
			Field("trip_id"),
	}
}

// Indexes of the Booking.
func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trip_id", "status"),
	}
}
