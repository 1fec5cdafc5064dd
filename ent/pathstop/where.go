// Code generated by ent, DO NOT EDIT.

package pathstop

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetops/dispatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathStop {
	return predicate.PathStop(sql.FieldLTE(FieldID, id))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldPathID, v))
}

// StopID applies equality check predicate on the "stop_id" field. It's identical to StopIDEQ.
func StopID(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldStopID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldSequence, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNotIn(FieldPathID, vs...))
}

// StopIDEQ applies the EQ predicate on the "stop_id" field.
func StopIDEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldStopID, v))
}

// StopIDNEQ applies the NEQ predicate on the "stop_id" field.
func StopIDNEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNEQ(FieldStopID, v))
}

// StopIDIn applies the In predicate on the "stop_id" field.
func StopIDIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldIn(FieldStopID, vs...))
}

// StopIDNotIn applies the NotIn predicate on the "stop_id" field.
func StopIDNotIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNotIn(FieldStopID, vs...))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.PathStop {
	return predicate.PathStop(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.PathStop {
	return predicate.PathStop(sql.FieldLTE(FieldSequence, v))
}

// HasPath applies the HasEdge predicate on the "path" edge.
func HasPath() predicate.PathStop {
	return predicate.PathStop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PathTable, PathColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPathWith applies the HasEdge predicate on the "path" edge with a given conditions (other predicates).
func HasPathWith(preds ...predicate.Path) predicate.PathStop {
	return predicate.PathStop(func(s *sql.Selector) {
		step := newPathStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStop applies the HasEdge predicate on the "stop" edge.
func HasStop() predicate.PathStop {
	return predicate.PathStop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StopTable, StopColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStopWith applies the HasEdge predicate on the "stop" edge with a given conditions (other predicates).
func HasStopWith(preds ...predicate.Stop) predicate.PathStop {
	return predicate.PathStop(func(s *sql.Selector) {
		step := newStopStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathStop) predicate.PathStop {
	return predicate.PathStop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathStop) predicate.PathStop {
	return predicate.PathStop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathStop) predicate.PathStop {
	return predicate.PathStop(sql.NotPredicates(p))
}
