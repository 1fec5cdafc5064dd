// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/trip"
)

// Trip is the model entity for the Trip schema.
type Trip struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Human label shown in the UI, e.g. 'Path-3 - 07:30'
	DisplayName string `json:"display_name,omitempty"`
	// Calendar date of the trip (time component ignored)
	TripDate time.Time `json:"trip_date,omitempty"`
	// Departure time, HH:MM 24h
	ScheduledTime string `json:"scheduled_time,omitempty"`
	// RouteID holds the value of the "route_id" field.
	RouteID int `json:"route_id,omitempty"`
	// LiveStatus holds the value of the "live_status" field.
	LiveStatus trip.LiveStatus `json:"live_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TripQuery when eager-loading is set.
	Edges        TripEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TripEdges holds the relations/edges for other nodes in the graph.
type TripEdges struct {
	// Route holds the value of the route edge.
	Route *Route `json:"route,omitempty"`
	// Deployment holds the value of the deployment edge.
	Deployment *Deployment `json:"deployment,omitempty"`
	// Bookings holds the value of the bookings edge.
	Bookings []*Booking `json:"bookings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RouteOrErr returns the Route value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TripEdges) RouteOrErr() (*Route, error) {
	if e.Route != nil {
		return e.Route, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: route.Label}
	}
	return nil, &NotLoadedError{edge: "route"}
}

// DeploymentOrErr returns the Deployment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TripEdges) DeploymentOrErr() (*Deployment, error) {
	if e.Deployment != nil {
		return e.Deployment, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: deployment.Label}
	}
	return nil, &NotLoadedError{edge: "deployment"}
}

// BookingsOrErr returns the Bookings value or an error if the edge
// was not loaded in eager-loading.
func (e TripEdges) BookingsOrErr() ([]*Booking, error) {
	if e.loadedTypes[2] {
		return e.Bookings, nil
	}
	return nil, &NotLoadedError{edge: "bookings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trip) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trip.FieldID, trip.FieldRouteID:
			values[i] = new(sql.NullInt64)
		case trip.FieldDisplayName, trip.FieldScheduledTime, trip.FieldLiveStatus:
			values[i] = new(sql.NullString)
		case trip.FieldTripDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trip fields.
func (_m *Trip) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trip.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trip.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case trip.FieldTripDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trip_date", values[i])
			} else if value.Valid {
				_m.TripDate = value.Time
			}
		case trip.FieldScheduledTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_time", values[i])
			} else if value.Valid {
				_m.ScheduledTime = value.String
			}
		case trip.FieldRouteID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field route_id", values[i])
			} else if value.Valid {
				_m.RouteID = int(value.Int64)
			}
		case trip.FieldLiveStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field live_status", values[i])
			} else if value.Valid {
				_m.LiveStatus = trip.LiveStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trip.
// This includes values selected through modifiers, order, etc.
func (_m *Trip) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRoute queries the "route" edge of the Trip entity.
func (_m *Trip) QueryRoute() *RouteQuery {
	return NewTripClient(_m.config).QueryRoute(_m)
}

// QueryDeployment queries the "deployment" edge of the Trip entity.
func (_m *Trip) QueryDeployment() *DeploymentQuery {
	return NewTripClient(_m.config).QueryDeployment(_m)
}

// QueryBookings queries the "bookings" edge of the Trip entity.
func (_m *Trip) QueryBookings() *BookingQuery {
	return NewTripClient(_m.config).QueryBookings(_m)
}

// Update returns a builder for updating this Trip.
// Note that you need to call Trip.Unwrap() before calling this method if this Trip
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trip) Update() *TripUpdateOne {
	return NewTripClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trip entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trip) Unwrap() *Trip {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trip is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trip) String() string {
	var builder strings.Builder
	builder.WriteString("Trip(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("trip_date=")
	builder.WriteString(_m.TripDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("scheduled_time=")
	builder.WriteString(_m.ScheduledTime)
	builder.WriteString(", ")
	builder.WriteString("route_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RouteID))
	builder.WriteString(", ")
	builder.WriteString("live_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.LiveStatus))
	builder.WriteByte(')')
	return builder.String()
}

// Trips is a parsable slice of Trip.
type Trips []*Trip
