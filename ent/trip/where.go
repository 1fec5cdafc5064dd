// Code generated by ent, DO NOT EDIT.

package trip

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetops/dispatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldID, id))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDisplayName, v))
}

// TripDate applies equality check predicate on the "trip_date" field. It's identical to TripDateEQ.
func TripDate(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTripDate, v))
}

// ScheduledTime applies equality check predicate on the "scheduled_time" field. It's identical to ScheduledTimeEQ.
func ScheduledTime(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldScheduledTime, v))
}

// RouteID applies equality check predicate on the "route_id" field. It's identical to RouteIDEQ.
func RouteID(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldRouteID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldDisplayName, v))
}

// TripDateEQ applies the EQ predicate on the "trip_date" field.
func TripDateEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTripDate, v))
}

// TripDateNEQ applies the NEQ predicate on the "trip_date" field.
func TripDateNEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldTripDate, v))
}

// TripDateIn applies the In predicate on the "trip_date" field.
func TripDateIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldTripDate, vs...))
}

// TripDateNotIn applies the NotIn predicate on the "trip_date" field.
func TripDateNotIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldTripDate, vs...))
}

// TripDateGT applies the GT predicate on the "trip_date" field.
func TripDateGT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldTripDate, v))
}

// TripDateGTE applies the GTE predicate on the "trip_date" field.
func TripDateGTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldTripDate, v))
}

// TripDateLT applies the LT predicate on the "trip_date" field.
func TripDateLT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldTripDate, v))
}

// TripDateLTE applies the LTE predicate on the "trip_date" field.
func TripDateLTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldTripDate, v))
}

// ScheduledTimeEQ applies the EQ predicate on the "scheduled_time" field.
func ScheduledTimeEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldScheduledTime, v))
}

// ScheduledTimeNEQ applies the NEQ predicate on the "scheduled_time" field.
func ScheduledTimeNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldScheduledTime, v))
}

// ScheduledTimeIn applies the In predicate on the "scheduled_time" field.
func ScheduledTimeIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldScheduledTime, vs...))
}

// ScheduledTimeNotIn applies the NotIn predicate on the "scheduled_time" field.
func ScheduledTimeNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldScheduledTime, vs...))
}

// ScheduledTimeGT applies the GT predicate on the "scheduled_time" field.
func ScheduledTimeGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldScheduledTime, v))
}

// ScheduledTimeGTE applies the GTE predicate on the "scheduled_time" field.
func ScheduledTimeGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldScheduledTime, v))
}

// ScheduledTimeLT applies the LT predicate on the "scheduled_time" field.
func ScheduledTimeLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldScheduledTime, v))
}

// ScheduledTimeLTE applies the LTE predicate on the "scheduled_time" field.
func ScheduledTimeLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldScheduledTime, v))
}

// ScheduledTimeContains applies the Contains predicate on the "scheduled_time" field.
func ScheduledTimeContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldScheduledTime, v))
}

// ScheduledTimeHasPrefix applies the HasPrefix predicate on the "scheduled_time" field.
func ScheduledTimeHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldScheduledTime, v))
}

// ScheduledTimeHasSuffix applies the HasSuffix predicate on the "scheduled_time" field.
func ScheduledTimeHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldScheduledTime, v))
}

// ScheduledTimeEqualFold applies the EqualFold predicate on the "scheduled_time" field.
func ScheduledTimeEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldScheduledTime, v))
}

// ScheduledTimeContainsFold applies the ContainsFold predicate on the "scheduled_time" field.
func ScheduledTimeContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldScheduledTime, v))
}

// RouteIDEQ applies the EQ predicate on the "route_id" field.
func RouteIDEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldRouteID, v))
}

// RouteIDNEQ applies the NEQ predicate on the "route_id" field.
func RouteIDNEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldRouteID, v))
}

// RouteIDIn applies the In predicate on the "route_id" field.
func RouteIDIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldRouteID, vs...))
}

// RouteIDNotIn applies the NotIn predicate on the "route_id" field.
func RouteIDNotIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldRouteID, vs...))
}

// RouteIDIsNil applies the IsNil predicate on the "route_id" field.
func RouteIDIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldRouteID))
}

// RouteIDNotNil applies the NotNil predicate on the "route_id" field.
func RouteIDNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldRouteID))
}

// LiveStatusEQ applies the EQ predicate on the "live_status" field.
func LiveStatusEQ(v LiveStatus) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldLiveStatus, v))
}

// LiveStatusNEQ applies the NEQ predicate on the "live_status" field.
func LiveStatusNEQ(v LiveStatus) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldLiveStatus, v))
}

// LiveStatusIn applies the In predicate on the "live_status" field.
func LiveStatusIn(vs ...LiveStatus) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldLiveStatus, vs...))
}

// LiveStatusNotIn applies the NotIn predicate on the "live_status" field.
func LiveStatusNotIn(vs ...LiveStatus) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldLiveStatus, vs...))
}

// HasRoute applies the HasEdge predicate on the "route" edge.
func HasRoute() predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RouteTable, RouteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRouteWith applies the HasEdge predicate on the "route" edge with a given conditions (other predicates).
func HasRouteWith(preds ...predicate.Route) predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := newRouteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeployment applies the HasEdge predicate on the "deployment" edge.
func HasDeployment() predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DeploymentTable, DeploymentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeploymentWith applies the HasEdge predicate on the "deployment" edge with a given conditions (other predicates).
func HasDeploymentWith(preds ...predicate.Deployment) predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := newDeploymentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBookings applies the HasEdge predicate on the "bookings" edge.
func HasBookings() predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BookingsTable, BookingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookingsWith applies the HasEdge predicate on the "bookings" edge with a given conditions (other predicates).
func HasBookingsWith(preds ...predicate.Booking) predicate.Trip {
	return predicate.Trip(func(s *sql.Selector) {
		step := newBookingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.NotPredicates(p))
}
