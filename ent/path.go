// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/path"
)

// Path is the model entity for the Path schema.
type Path struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PathQuery when eager-loading is set.
	Edges        PathEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PathEdges holds the relations/edges for other nodes in the graph.
type PathEdges struct {
	// PathStops holds the value of the path_stops edge.
	PathStops []*PathStop `json:"path_stops,omitempty"`
	// Routes holds the value of the routes edge.
	Routes []*Route `json:"routes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PathStopsOrErr returns the PathStops value or an error if the edge
// was not loaded in eager-loading.
func (e PathEdges) PathStopsOrErr() ([]*PathStop, error) {
	if e.loadedTypes[0] {
		return e.PathStops, nil
	}
	return nil, &NotLoadedError{edge: "path_stops"}
}

// RoutesOrErr returns the Routes value or an error if the edge
// was not loaded in eager-loading.
func (e PathEdges) RoutesOrErr() ([]*Route, error) {
	if e.loadedTypes[1] {
		return e.Routes, nil
	}
	return nil, &NotLoadedError{edge: "routes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Path) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case path.FieldID:
			values[i] = new(sql.NullInt64)
		case path.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Path fields.
func (_m *Path) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case path.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case path.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Path.
// This includes values selected through modifiers, order, etc.
func (_m *Path) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPathStops queries the "path_stops" edge of the Path entity.
func (_m *Path) QueryPathStops() *PathStopQuery {
	return NewPathClient(_m.config).QueryPathStops(_m)
}

// QueryRoutes queries the "routes" edge of the Path entity.
func (_m *Path) QueryRoutes() *RouteQuery {
	return NewPathClient(_m.config).QueryRoutes(_m)
}

// Update returns a builder for updating this Path.
// Note that you need to call Path.Unwrap() before calling this method if this Path
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Path) Update() *PathUpdateOne {
	return NewPathClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Path entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Path) Unwrap() *Path {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Path is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Path) String() string {
	var builder strings.Builder
	builder.WriteString("Path(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Paths is a parsable slice of Path.
type Paths []*Path
