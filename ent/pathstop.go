// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/stop"
)

// PathStop is the model entity for the PathStop schema.
type PathStop struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PathID holds the value of the "path_id" field.
	PathID int `json:"path_id,omitempty"`
	// StopID holds the value of the "stop_id" field.
	StopID int `json:"stop_id,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PathStopQuery when eager-loading is set.
	Edges        PathStopEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PathStopEdges holds the relations/edges for other nodes in the graph.
type PathStopEdges struct {
	// Path holds the value of the path edge.
	Path *Path `json:"path,omitempty"`
	// Stop holds the value of the stop edge.
	Stop *Stop `json:"stop,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PathOrErr returns the Path value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathStopEdges) PathOrErr() (*Path, error) {
	if e.Path != nil {
		return e.Path, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: path.Label}
	}
	return nil, &NotLoadedError{edge: "path"}
}

// StopOrErr returns the Stop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PathStopEdges) StopOrErr() (*Stop, error) {
	if e.Stop != nil {
		return e.Stop, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stop.Label}
	}
	return nil, &NotLoadedError{edge: "stop"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathStop) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathstop.FieldID, pathstop.FieldPathID, pathstop.FieldStopID, pathstop.FieldSequence:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathStop fields.
func (_m *PathStop) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathstop.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathstop.FieldPathID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = int(value.Int64)
			}
		case pathstop.FieldStopID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stop_id", values[i])
			} else if value.Valid {
				_m.StopID = int(value.Int64)
			}
		case pathstop.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathStop.
// This includes values selected through modifiers, order, etc.
func (_m *PathStop) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPath queries the "path" edge of the PathStop entity.
func (_m *PathStop) QueryPath() *PathQuery {
	return NewPathStopClient(_m.config).QueryPath(_m)
}

// QueryStop queries the "stop" edge of the PathStop entity.
func (_m *PathStop) QueryStop() *StopQuery {
	return NewPathStopClient(_m.config).QueryStop(_m)
}

// Update returns a builder for updating this PathStop.
// Note that you need to call PathStop.Unwrap() before calling this method if this PathStop
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathStop) Update() *PathStopUpdateOne {
	return NewPathStopClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathStop entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathStop) Unwrap() *PathStop {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathStop is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathStop) String() string {
	var builder strings.Builder
	builder.WriteString("PathStop(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("path_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PathID))
	builder.WriteString(", ")
	builder.WriteString("stop_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopID))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteByte(')')
	return builder.String()
}

// PathStops is a parsable slice of PathStop.
type PathStops []*PathStop
