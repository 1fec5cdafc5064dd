// Code generated by ent, DO NOT EDIT.

package trip

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trip type in the database.
	Label = "trip"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldTripDate holds the string denoting the trip_date field in the database.
	FieldTripDate = "trip_date"
	// FieldScheduledTime holds the string denoting the scheduled_time field in the database.
	FieldScheduledTime = "scheduled_time"
	// FieldRouteID holds the string denoting the route_id field in the database.
	FieldRouteID = "route_id"
	// FieldLiveStatus holds the string denoting the live_status field in the database.
	FieldLiveStatus = "live_status"
	// EdgeRoute holds the string denoting the route edge name in mutations.
	EdgeRoute = "route"
	// EdgeDeployment holds the string denoting the deployment edge name in mutations.
	EdgeDeployment = "deployment"
	// EdgeBookings holds the string denoting the bookings edge name in mutations.
	EdgeBookings = "bookings"
	// Table holds the table name of the trip in the database.
	Table = "trips"
	// RouteTable is the table that holds the route relation/edge.
	RouteTable = "trips"
	// RouteInverseTable is the table name for the Route entity.
	// It exists in this package in order to avoid circular dependency with the "route" package.
	RouteInverseTable = "routes"
	// RouteColumn is the table column denoting the route relation/edge.
	RouteColumn = "route_id"
	// DeploymentTable is the table that holds the deployment relation/edge.
	DeploymentTable = "deployments"
	// DeploymentInverseTable is the table name for the Deployment entity.
	// It exists in this package in order to avoid circular dependency with the "deployment" package.
	DeploymentInverseTable = "deployments"
	// DeploymentColumn is the table column denoting the deployment relation/edge.
	DeploymentColumn = "trip_id"
	// BookingsTable is the table that holds the bookings relation/edge.
	BookingsTable = "bookings"
	// BookingsInverseTable is the table name for the Booking entity.
	// It exists in this package in order to avoid circular dependency with the "booking" package.
	BookingsInverseTable = "bookings"
	// BookingsColumn is the table column denoting the bookings relation/edge.
	BookingsColumn = "trip_id"
)

// Columns holds all SQL columns for trip fields.
var Columns = []string{
	FieldID,
	FieldDisplayName,
	FieldTripDate,
	FieldScheduledTime,
	FieldRouteID,
	FieldLiveStatus,
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

// LiveStatus defines the type for the "live_status" enum field.
type LiveStatus string

// LiveStatusSCHEDULED is the default value of the LiveStatus enum.
const DefaultLiveStatus = LiveStatusSCHEDULED

// LiveStatus values.
const (
	LiveStatusSCHEDULED   LiveStatus = "SCHEDULED"
	LiveStatusIN_PROGRESS LiveStatus = "IN_PROGRESS"
	LiveStatusCOMPLETED   LiveStatus = "COMPLETED"
	LiveStatusCANCELLED   LiveStatus = "CANCELLED"
)

func (ls LiveStatus) String() string {
	return string(ls)
}

// LiveStatusValidator is a validator for the "live_status" field enum values. It is called by the builders before save.
func LiveStatusValidator(ls LiveStatus) error {
	switch ls {
	case LiveStatusSCHEDULED, LiveStatusIN_PROGRESS, LiveStatusCOMPLETED, LiveStatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("trip: invalid enum value for live_status field: %q", ls)
	}
}

// OrderOption defines the ordering options for the Trip queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByTripDate orders the results by the trip_date field.
func ByTripDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTripDate, opts...).ToFunc()
}

// ByScheduledTime orders the results by the scheduled_time field.
func ByScheduledTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledTime, opts...).ToFunc()
}

// ByRouteID orders the results by the route_id field.
func ByRouteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRouteID, opts...).ToFunc()
}

// ByLiveStatus orders the results by the live_status field.
func ByLiveStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLiveStatus, opts...).ToFunc()
}

// ByRouteField orders the results by route field.
func ByRouteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRouteStep(), sql.OrderByField(field, opts...))
	}
}

// ByDeploymentField orders the results by deployment field.
func ByDeploymentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeploymentStep(), sql.OrderByField(field, opts...))
	}
}

// ByBookingsCount orders the results by bookings count.
func ByBookingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBookingsStep(), opts...)
	}
}

// ByBookings orders the results by bookings terms.
func ByBookings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBookingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRouteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RouteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RouteTable, RouteColumn),
	)
}
func newDeploymentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeploymentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DeploymentTable, DeploymentColumn),
	)
}
func newBookingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BookingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BookingsTable, BookingsColumn),
	)
}
