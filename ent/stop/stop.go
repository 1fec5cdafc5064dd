// Code generated by ent, DO NOT EDIT.

package stop

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stop type in the database.
	Label = "stop"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// EdgePathStops holds the string denoting the path_stops edge name in mutations.
	EdgePathStops = "path_stops"
	// Table holds the table name of the stop in the database.
	Table = "stops"
	// PathStopsTable is the table that holds the path_stops relation/edge.
	PathStopsTable = "path_stops"
	// PathStopsInverseTable is the table name for the PathStop entity.
	// It exists in this package in order to avoid circular dependency with the "pathstop" package.
	PathStopsInverseTable = "path_stops"
	// PathStopsColumn is the table column denoting the path_stops relation/edge.
	PathStopsColumn = "stop_id"
)

// Columns holds all SQL columns for stop fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldLatitude,
	FieldLongitude,
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

// OrderOption defines the ordering options for the Stop queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByPathStopsCount orders the results by path_stops count.
func ByPathStopsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPathStopsStep(), opts...)
	}
}

// ByPathStops orders the results by path_stops terms.
func ByPathStops(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPathStopsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPathStopsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PathStopsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PathStopsTable, PathStopsColumn),
	)
}
