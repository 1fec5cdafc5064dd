// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/driverprofile"
)

// DriverProfile is the model entity for the DriverProfile schema.
type DriverProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Status holds the value of the "status" field.
	Status driverprofile.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DriverProfileQuery when eager-loading is set.
	Edges        DriverProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DriverProfileEdges holds the relations/edges for other nodes in the graph.
type DriverProfileEdges struct {
	// Deployments holds the value of the deployments edge.
	Deployments []*Deployment `json:"deployments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeploymentsOrErr returns the Deployments value or an error if the edge
// was not loaded in eager-loading.
func (e DriverProfileEdges) DeploymentsOrErr() ([]*Deployment, error) {
	if e.loadedTypes[0] {
		return e.Deployments, nil
	}
	return nil, &NotLoadedError{edge: "deployments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DriverProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case driverprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case driverprofile.FieldName, driverprofile.FieldPhone, driverprofile.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DriverProfile fields.
func (_m *DriverProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case driverprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case driverprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case driverprofile.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case driverprofile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = driverprofile.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DriverProfile.
// This includes values selected through modifiers, order, etc.
func (_m *DriverProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeployments queries the "deployments" edge of the DriverProfile entity.
func (_m *DriverProfile) QueryDeployments() *DeploymentQuery {
	return NewDriverProfileClient(_m.config).QueryDeployments(_m)
}

// Update returns a builder for updating this DriverProfile.
// Note that you need to call DriverProfile.Unwrap() before calling this method if this DriverProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DriverProfile) Update() *DriverProfileUpdateOne {
	return NewDriverProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DriverProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DriverProfile) Unwrap() *DriverProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DriverProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DriverProfile) String() string {
	var builder strings.Builder
	builder.WriteString("DriverProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// DriverProfiles is a parsable slice of DriverProfile.
type DriverProfiles []*DriverProfile
