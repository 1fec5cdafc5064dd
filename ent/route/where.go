// Code generated by ent, DO NOT EDIT.

package route

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetops/dispatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Route {
	return predicate.Route(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Route {
	return predicate.Route(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Route {
	return predicate.Route(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Route {
	return predicate.Route(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Route {
	return predicate.Route(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Route {
	return predicate.Route(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Route {
	return predicate.Route(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldName, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v int) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldPathID, v))
}

// ShiftTime applies equality check predicate on the "shift_time" field. It's identical to ShiftTimeEQ.
func ShiftTime(v string) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldShiftTime, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Route {
	return predicate.Route(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Route {
	return predicate.Route(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Route {
	return predicate.Route(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Route {
	return predicate.Route(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Route {
	return predicate.Route(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Route {
	return predicate.Route(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Route {
	return predicate.Route(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Route {
	return predicate.Route(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Route {
	return predicate.Route(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Route {
	return predicate.Route(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Route {
	return predicate.Route(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Route {
	return predicate.Route(sql.FieldContainsFold(FieldName, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v int) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v int) predicate.Route {
	return predicate.Route(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...int) predicate.Route {
	return predicate.Route(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...int) predicate.Route {
	return predicate.Route(sql.FieldNotIn(FieldPathID, vs...))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.Route {
	return predicate.Route(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.Route {
	return predicate.Route(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.Route {
	return predicate.Route(sql.FieldNotIn(FieldDirection, vs...))
}

// ShiftTimeEQ applies the EQ predicate on the "shift_time" field.
func ShiftTimeEQ(v string) predicate.Route {
	return predicate.Route(sql.FieldEQ(FieldShiftTime, v))
}

// ShiftTimeNEQ applies the NEQ predicate on the "shift_time" field.
func ShiftTimeNEQ(v string) predicate.Route {
	return predicate.Route(sql.FieldNEQ(FieldShiftTime, v))
}

// ShiftTimeIn applies the In predicate on the "shift_time" field.
func ShiftTimeIn(vs ...string) predicate.Route {
	return predicate.Route(sql.FieldIn(FieldShiftTime, vs...))
}

// ShiftTimeNotIn applies the NotIn predicate on the "shift_time" field.
func ShiftTimeNotIn(vs ...string) predicate.Route {
	return predicate.Route(sql.FieldNotIn(FieldShiftTime, vs...))
}

// ShiftTimeGT applies the GT predicate on the "shift_time" field.
func ShiftTimeGT(v string) predicate.Route {
	return predicate.Route(sql.FieldGT(FieldShiftTime, v))
}

// ShiftTimeGTE applies the GTE predicate on the "shift_time" field.
func ShiftTimeGTE(v string) predicate.Route {
	return predicate.Route(sql.FieldGTE(FieldShiftTime, v))
}

// ShiftTimeLT applies the LT predicate on the "shift_time" field.
func ShiftTimeLT(v string) predicate.Route {
	return predicate.Route(sql.FieldLT(FieldShiftTime, v))
}

// ShiftTimeLTE applies the LTE predicate on the "shift_time" field.
func ShiftTimeLTE(v string) predicate.Route {
	return predicate.Route(sql.FieldLTE(FieldShiftTime, v))
}

// ShiftTimeContains applies the Contains predicate on the "shift_time" field.
func ShiftTimeContains(v string) predicate.Route {
	return predicate.Route(sql.FieldContains(FieldShiftTime, v))
}

// ShiftTimeHasPrefix applies the HasPrefix predicate on the "shift_time" field.
func ShiftTimeHasPrefix(v string) predicate.Route {
	return predicate.Route(sql.FieldHasPrefix(FieldShiftTime, v))
}

// ShiftTimeHasSuffix applies the HasSuffix predicate on the "shift_time" field.
func ShiftTimeHasSuffix(v string) predicate.Route {
	return predicate.Route(sql.FieldHasSuffix(FieldShiftTime, v))
}

// ShiftTimeEqualFold applies the EqualFold predicate on the "shift_time" field.
func ShiftTimeEqualFold(v string) predicate.Route {
	return predicate.Route(sql.FieldEqualFold(FieldShiftTime, v))
}

// ShiftTimeContainsFold applies the ContainsFold predicate on the "shift_time" field.
func ShiftTimeContainsFold(v string) predicate.Route {
	return predicate.Route(sql.FieldContainsFold(FieldShiftTime, v))
}

// HasPath applies the HasEdge predicate on the "path" edge.
func HasPath() predicate.Route {
	return predicate.Route(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PathTable, PathColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPathWith applies the HasEdge predicate on the "path" edge with a given conditions (other predicates).
func HasPathWith(preds ...predicate.Path) predicate.Route {
	return predicate.Route(func(s *sql.Selector) {
		step := newPathStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrips applies the HasEdge predicate on the "trips" edge.
func HasTrips() predicate.Route {
	return predicate.Route(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TripsTable, TripsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTripsWith applies the HasEdge predicate on the "trips" edge with a given conditions (other predicates).
func HasTripsWith(preds ...predicate.Trip) predicate.Route {
	return predicate.Route(func(s *sql.Selector) {
		step := newTripsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Route) predicate.Route {
	return predicate.Route(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Route) predicate.Route {
	return predicate.Route(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Route) predicate.Route {
	return predicate.Route(sql.NotPredicates(p))
}
