// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetops/dispatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldID, id))
}

// RegistrationNumber applies equality check predicate on the "registration_number" field. It's identical to RegistrationNumberEQ.
func RegistrationNumber(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldRegistrationNumber, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCapacity, v))
}

// RegistrationNumberEQ applies the EQ predicate on the "registration_number" field.
func RegistrationNumberEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldRegistrationNumber, v))
}

// RegistrationNumberNEQ applies the NEQ predicate on the "registration_number" field.
func RegistrationNumberNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldRegistrationNumber, v))
}

// RegistrationNumberIn applies the In predicate on the "registration_number" field.
func RegistrationNumberIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldRegistrationNumber, vs...))
}

// RegistrationNumberNotIn applies the NotIn predicate on the "registration_number" field.
func RegistrationNumberNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldRegistrationNumber, vs...))
}

// RegistrationNumberGT applies the GT predicate on the "registration_number" field.
func RegistrationNumberGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldRegistrationNumber, v))
}

// RegistrationNumberGTE applies the GTE predicate on the "registration_number" field.
func RegistrationNumberGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldRegistrationNumber, v))
}

// RegistrationNumberLT applies the LT predicate on the "registration_number" field.
func RegistrationNumberLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldRegistrationNumber, v))
}

// RegistrationNumberLTE applies the LTE predicate on the "registration_number" field.
func RegistrationNumberLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldRegistrationNumber, v))
}

// RegistrationNumberContains applies the Contains predicate on the "registration_number" field.
func RegistrationNumberContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldRegistrationNumber, v))
}

// RegistrationNumberHasPrefix applies the HasPrefix predicate on the "registration_number" field.
func RegistrationNumberHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldRegistrationNumber, v))
}

// RegistrationNumberHasSuffix applies the HasSuffix predicate on the "registration_number" field.
func RegistrationNumberHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldRegistrationNumber, v))
}

// RegistrationNumberEqualFold applies the EqualFold predicate on the "registration_number" field.
func RegistrationNumberEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldRegistrationNumber, v))
}

// RegistrationNumberContainsFold applies the ContainsFold predicate on the "registration_number" field.
func RegistrationNumberContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldRegistrationNumber, v))
}

// VehicleTypeEQ applies the EQ predicate on the "vehicle_type" field.
func VehicleTypeEQ(v VehicleType) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldVehicleType, v))
}

// VehicleTypeNEQ applies the NEQ predicate on the "vehicle_type" field.
func VehicleTypeNEQ(v VehicleType) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldVehicleType, v))
}

// VehicleTypeIn applies the In predicate on the "vehicle_type" field.
func VehicleTypeIn(vs ...VehicleType) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldVehicleType, vs...))
}

// VehicleTypeNotIn applies the NotIn predicate on the "vehicle_type" field.
func VehicleTypeNotIn(vs ...VehicleType) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldVehicleType, vs...))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCapacity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldStatus, vs...))
}

// HasDeployments applies the HasEdge predicate on the "deployments" edge.
func HasDeployments() predicate.Vehicle {
	return predicate.Vehicle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeploymentsTable, DeploymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeploymentsWith applies the HasEdge predicate on the "deployments" edge with a given conditions (other predicates).
func HasDeploymentsWith(preds ...predicate.Deployment) predicate.Vehicle {
	return predicate.Vehicle(func(s *sql.Selector) {
		step := newDeploymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.NotPredicates(p))
}
