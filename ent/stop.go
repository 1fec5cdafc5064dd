// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/stop"
)

// Stop is the model entity for the Stop schema.
type Stop struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StopQuery when eager-loading is set.
	Edges        StopEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StopEdges holds the relations/edges for other nodes in the graph.
type StopEdges struct {
	// PathStops holds the value of the path_stops edge.
	PathStops []*PathStop `json:"path_stops,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PathStopsOrErr returns the PathStops value or an error if the edge
// was not loaded in eager-loading.
func (e StopEdges) PathStopsOrErr() ([]*PathStop, error) {
	if e.loadedTypes[0] {
		return e.PathStops, nil
	}
	return nil, &NotLoadedError{edge: "path_stops"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stop) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stop.FieldLatitude, stop.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case stop.FieldID:
			values[i] = new(sql.NullInt64)
		case stop.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stop fields.
func (_m *Stop) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stop.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stop.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case stop.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case stop.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stop.
// This includes values selected through modifiers, order, etc.
func (_m *Stop) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPathStops queries the "path_stops" edge of the Stop entity.
func (_m *Stop) QueryPathStops() *PathStopQuery {
	return NewStopClient(_m.config).QueryPathStops(_m)
}

// Update returns a builder for updating this Stop.
// Note that you need to call Stop.Unwrap() before calling this method if this Stop
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stop) Update() *StopUpdateOne {
	return NewStopClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stop entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stop) Unwrap() *Stop {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stop is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stop) String() string {
	var builder strings.Builder
	builder.WriteString("Stop(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteByte(')')
	return builder.String()
}

// Stops is a parsable slice of Stop.
type Stops []*Stop
