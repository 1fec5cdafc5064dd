// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vehicle type in the database.
	Label = "vehicle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRegistrationNumber holds the string denoting the registration_number field in the database.
	FieldRegistrationNumber = "registration_number"
	// FieldVehicleType holds the string denoting the vehicle_type field in the database.
	FieldVehicleType = "vehicle_type"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeDeployments holds the string denoting the deployments edge name in mutations.
	EdgeDeployments = "deployments"
	// Table holds the table name of the vehicle in the database.
	Table = "vehicles"
	// DeploymentsTable is the table that holds the deployments relation/edge.
	DeploymentsTable = "deployments"
	// DeploymentsInverseTable is the table name for the Deployment entity.
	// It exists in this package in order to avoid circular dependency with the "deployment" package.
	DeploymentsInverseTable = "deployments"
	// DeploymentsColumn is the table column denoting the deployments relation/edge.
	DeploymentsColumn = "vehicle_id"
)

// Columns holds all SQL columns for vehicle fields.
var Columns = []string{
	FieldID,
	FieldRegistrationNumber,
	FieldVehicleType,
	FieldCapacity,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	CapacityValidator func(int) error
)

// VehicleType defines the type for the "vehicle_type" enum field.
type VehicleType string

// VehicleType values.
const (
	VehicleTypeBus VehicleType = "Bus"
	VehicleTypeCab VehicleType = "Cab"
)

func (vt VehicleType) String() string {
	return string(vt)
}

// VehicleTypeValidator is a validator for the "vehicle_type" field enum values. It is called by the builders before save.
func VehicleTypeValidator(vt VehicleType) error {
	switch vt {
	case VehicleTypeBus, VehicleTypeCab:
		return nil
	default:
		return fmt.Errorf("vehicle: invalid enum value for vehicle_type field: %q", vt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusAvailable is the default value of the Status enum.
const DefaultStatus = StatusAvailable

// Status values.
const (
	StatusAvailable   Status = "available"
	StatusDeployed    Status = "deployed"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAvailable, StatusDeployed, StatusMaintenance:
		return nil
	default:
		return fmt.Errorf("vehicle: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Vehicle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRegistrationNumber orders the results by the registration_number field.
func ByRegistrationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegistrationNumber, opts...).ToFunc()
}

// ByVehicleType orders the results by the vehicle_type field.
func ByVehicleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleType, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDeploymentsCount orders the results by deployments count.
func ByDeploymentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeploymentsStep(), opts...)
	}
}

// ByDeployments orders the results by deployments terms.
func ByDeployments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeploymentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDeploymentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeploymentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeploymentsTable, DeploymentsColumn),
	)
}
