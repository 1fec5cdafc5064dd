// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/route"
)

// Route is the model entity for the Route schema.
type Route struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PathID holds the value of the "path_id" field.
	PathID int `json:"path_id,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction route.Direction `json:"direction,omitempty"`
	// HH:MM 24h
	ShiftTime string `json:"shift_time,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RouteQuery when eager-loading is set.
	Edges        RouteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RouteEdges holds the relations/edges for other nodes in the graph.
type RouteEdges struct {
	// Path holds the value of the path edge.
	Path *Path `json:"path,omitempty"`
	// Trips holds the value of the trips edge.
	Trips []*Trip `json:"trips,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PathOrErr returns the Path value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RouteEdges) PathOrErr() (*Path, error) {
	if e.Path != nil {
		return e.Path, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: path.Label}
	}
	return nil, &NotLoadedError{edge: "path"}
}

// TripsOrErr returns the Trips value or an error if the edge
// was not loaded in eager-loading.
func (e RouteEdges) TripsOrErr() ([]*Trip, error) {
	if e.loadedTypes[1] {
		return e.Trips, nil
	}
	return nil, &NotLoadedError{edge: "trips"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Route) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case route.FieldID, route.FieldPathID:
			values[i] = new(sql.NullInt64)
		case route.FieldName, route.FieldDirection, route.FieldShiftTime:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Route fields.
func (_m *Route) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case route.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case route.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case route.FieldPathID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = int(value.Int64)
			}
		case route.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = route.Direction(value.String)
			}
		case route.FieldShiftTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shift_time", values[i])
			} else if value.Valid {
				_m.ShiftTime = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Route.
// This includes values selected through modifiers, order, etc.
func (_m *Route) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPath queries the "path" edge of the Route entity.
func (_m *Route) QueryPath() *PathQuery {
	return NewRouteClient(_m.config).QueryPath(_m)
}

// QueryTrips queries the "trips" edge of the Route entity.
func (_m *Route) QueryTrips() *TripQuery {
	return NewRouteClient(_m.config).QueryTrips(_m)
}

// Update returns a builder for updating this Route.
// Note that you need to call Route.Unwrap() before calling this method if this Route
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Route) Update() *RouteUpdateOne {
	return NewRouteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Route entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Route) Unwrap() *Route {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Route is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Route) String() string {
	var builder strings.Builder
	builder.WriteString("Route(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PathID))
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("shift_time=")
	builder.WriteString(_m.ShiftTime)
	builder.WriteByte(')')
	return builder.String()
}

// Routes is a parsable slice of Route.
type Routes []*Route
