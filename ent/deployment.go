// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// Deployment is the model entity for the Deployment schema.
type Deployment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TripID holds the value of the "trip_id" field.
	TripID int `json:"trip_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID *int `json:"vehicle_id,omitempty"`
	// DriverID holds the value of the "driver_id" field.
	DriverID *int `json:"driver_id,omitempty"`
	// DeployedAt holds the value of the "deployed_at" field.
	DeployedAt time.Time `json:"deployed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeploymentQuery when eager-loading is set.
	Edges        DeploymentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeploymentEdges holds the relations/edges for other nodes in the graph.
type DeploymentEdges struct {
	// Trip holds the value of the trip edge.
	Trip *Trip `json:"trip,omitempty"`
	// Vehicle holds the value of the vehicle edge.
	Vehicle *Vehicle `json:"vehicle,omitempty"`
	// Driver holds the value of the driver edge.
	Driver *DriverProfile `json:"driver,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TripOrErr returns the Trip value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeploymentEdges) TripOrErr() (*Trip, error) {
	if e.Trip != nil {
		return e.Trip, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trip.Label}
	}
	return nil, &NotLoadedError{edge: "trip"}
}

// VehicleOrErr returns the Vehicle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeploymentEdges) VehicleOrErr() (*Vehicle, error) {
	if e.Vehicle != nil {
		return e.Vehicle, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: vehicle.Label}
	}
	return nil, &NotLoadedError{edge: "vehicle"}
}

// DriverOrErr returns the Driver value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeploymentEdges) DriverOrErr() (*DriverProfile, error) {
	if e.Driver != nil {
		return e.Driver, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: driverprofile.Label}
	}
	return nil, &NotLoadedError{edge: "driver"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deployment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deployment.FieldID, deployment.FieldTripID, deployment.FieldVehicleID, deployment.FieldDriverID:
			values[i] = new(sql.NullInt64)
		case deployment.FieldDeployedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deployment fields.
func (_m *Deployment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deployment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deployment.FieldTripID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trip_id", values[i])
			} else if value.Valid {
				_m.TripID = int(value.Int64)
			}
		case deployment.FieldVehicleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = new(int)
				*_m.VehicleID = int(value.Int64)
			}
		case deployment.FieldDriverID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field driver_id", values[i])
			} else if value.Valid {
				_m.DriverID = new(int)
				*_m.DriverID = int(value.Int64)
			}
		case deployment.FieldDeployedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deployed_at", values[i])
			} else if value.Valid {
				_m.DeployedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deployment.
// This includes values selected through modifiers, order, etc.
func (_m *Deployment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrip queries the "trip" edge of the Deployment entity.
func (_m *Deployment) QueryTrip() *TripQuery {
	return NewDeploymentClient(_m.config).QueryTrip(_m)
}

// QueryVehicle queries the "vehicle" edge of the Deployment entity.
func (_m *Deployment) QueryVehicle() *VehicleQuery {
	return NewDeploymentClient(_m.config).QueryVehicle(_m)
}

// QueryDriver queries the "driver" edge of the Deployment entity.
func (_m *Deployment) QueryDriver() *DriverProfileQuery {
	return NewDeploymentClient(_m.config).QueryDriver(_m)
}

// Update returns a builder for updating this Deployment.
// Note that you need to call Deployment.Unwrap() before calling this method if this Deployment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deployment) Update() *DeploymentUpdateOne {
	return NewDeploymentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deployment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deployment) Unwrap() *Deployment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deployment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deployment) String() string {
	var builder strings.Builder
	builder.WriteString("Deployment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trip_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TripID))
	builder.WriteString(", ")
	if v := _m.VehicleID; v != nil {
		builder.WriteString("vehicle_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DriverID; v != nil {
		builder.WriteString("driver_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deployed_at=")
	builder.WriteString(_m.DeployedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Deployments is a parsable slice of Deployment.
type Deployments []*Deployment
