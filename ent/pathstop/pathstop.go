// Code generated by ent, DO NOT EDIT.

package pathstop

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pathstop type in the database.
	Label = "path_stop"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldStopID holds the string denoting the stop_id field in the database.
	FieldStopID = "stop_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// EdgePath holds the string denoting the path edge name in mutations.
	EdgePath = "path"
	// EdgeStop holds the string denoting the stop edge name in mutations.
	EdgeStop = "stop"
	// Table holds the table name of the pathstop in the database.
	Table = "path_stops"
	// PathTable is the table that holds the path relation/edge.
	PathTable = "path_stops"
	// PathInverseTable is the table name for the Path entity.
	// It exists in this package in order to avoid circular dependency with the "path" package.
	PathInverseTable = "paths"
	// PathColumn is the table column denoting the path relation/edge.
	PathColumn = "path_id"
	// StopTable is the table that holds the stop relation/edge.
	StopTable = "path_stops"
	// StopInverseTable is the table name for the Stop entity.
	// It exists in this package in order to avoid circular dependency with the "stop" package.
	StopInverseTable = "stops"
	// StopColumn is the table column denoting the stop relation/edge.
	StopColumn = "stop_id"
)

// Columns holds all SQL columns for pathstop fields.
var Columns = []string{
	FieldID,
	FieldPathID,
	FieldStopID,
	FieldSequence,
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
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int) error
)

// OrderOption defines the ordering options for the PathStop queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByStopID orders the results by the stop_id field.
func ByStopID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByPathField orders the results by path field.
func ByPathField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPathStep(), sql.OrderByField(field, opts...))
	}
}

// ByStopField orders the results by stop field.
func ByStopField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStopStep(), sql.OrderByField(field, opts...))
	}
}
func newPathStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PathInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PathTable, PathColumn),
	)
}
func newStopStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StopInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StopTable, StopColumn),
	)
}
