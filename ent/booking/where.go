// Code generated by ent, DO NOT EDIT.

package booking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetops/dispatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldID, id))
}

// TripID applies equality check predicate on the "trip_id" field. It's identical to TripIDEQ.
func TripID(v int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTripID, v))
}

// PassengerName applies equality check predicate on the "passenger_name" field. It's identical to PassengerNameEQ.
func PassengerName(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPassengerName, v))
}

// BookedAt applies equality check predicate on the "booked_at" field. It's identical to BookedAtEQ.
func BookedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldBookedAt, v))
}

// TripIDEQ applies the EQ predicate on the "trip_id" field.
func TripIDEQ(v int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTripID, v))
}

// TripIDNEQ applies the NEQ predicate on the "trip_id" field.
func TripIDNEQ(v int) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldTripID, v))
}

// TripIDIn applies the In predicate on the "trip_id" field.
func TripIDIn(vs ...int) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldTripID, vs...))
}

// TripIDNotIn applies the NotIn predicate on the "trip_id" field.
func TripIDNotIn(vs ...int) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldTripID, vs...))
}

// PassengerNameEQ applies the EQ predicate on the "passenger_name" field.
func PassengerNameEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPassengerName, v))
}

// PassengerNameNEQ applies the NEQ predicate on the "passenger_name" field.
func PassengerNameNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPassengerName, v))
}

// PassengerNameIn applies the In predicate on the "passenger_name" field.
func PassengerNameIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPassengerName, vs...))
}

// PassengerNameNotIn applies the NotIn predicate on the "passenger_name" field.
func PassengerNameNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPassengerName, vs...))
}

// PassengerNameGT applies the GT predicate on the "passenger_name" field.
func PassengerNameGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPassengerName, v))
}

// PassengerNameGTE applies the GTE predicate on the "passenger_name" field.
func PassengerNameGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPassengerName, v))
}

// PassengerNameLT applies the LT predicate on the "passenger_name" field.
func PassengerNameLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPassengerName, v))
}

// PassengerNameLTE applies the LTE predicate on the "passenger_name" field.
func PassengerNameLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPassengerName, v))
}

// PassengerNameContains applies the Contains predicate on the "passenger_name" field.
func PassengerNameContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldPassengerName, v))
}

// PassengerNameHasPrefix applies the HasPrefix predicate on the "passenger_name" field.
func PassengerNameHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldPassengerName, v))
}

// PassengerNameHasSuffix applies the HasSuffix predicate on the "passenger_name" field.
func PassengerNameHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldPassengerName, v))
}

// PassengerNameIsNil applies the IsNil predicate on the "passenger_name" field.
func PassengerNameIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldPassengerName))
}

// PassengerNameNotNil applies the NotNil predicate on the "passenger_name" field.
func PassengerNameNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldPassengerName))
}

// PassengerNameEqualFold applies the EqualFold predicate on the "passenger_name" field.
func PassengerNameEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldPassengerName, v))
}

// PassengerNameContainsFold applies the ContainsFold predicate on the "passenger_name" field.
func PassengerNameContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldPassengerName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStatus, vs...))
}

// BookedAtEQ applies the EQ predicate on the "booked_at" field.
func BookedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldBookedAt, v))
}

// BookedAtNEQ applies the NEQ predicate on the "booked_at" field.
func BookedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldBookedAt, v))
}

// BookedAtIn applies the In predicate on the "booked_at" field.
func BookedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldBookedAt, vs...))
}

// BookedAtNotIn applies the NotIn predicate on the "booked_at" field.
func BookedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldBookedAt, vs...))
}

// BookedAtGT applies the GT predicate on the "booked_at" field.
func BookedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldBookedAt, v))
}

// BookedAtGTE applies the GTE predicate on the "booked_at" field.
func BookedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldBookedAt, v))
}

// BookedAtLT applies the LT predicate on the "booked_at" field.
func BookedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldBookedAt, v))
}

// BookedAtLTE applies the LTE predicate on the "booked_at" field.
func BookedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldBookedAt, v))
}

// HasTrip applies the HasEdge predicate on the "trip" edge.
func HasTrip() predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TripTable, TripColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTripWith applies the HasEdge predicate on the "trip" edge with a given conditions (other predicates).
func HasTripWith(preds ...predicate.Trip) predicate.Booking {
	return predicate.Booking(func(s *sql.Selector) {
		step := newTripStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.NotPredicates(p))
}
