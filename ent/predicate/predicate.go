// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Deployment is the predicate function for deployment builders.
type Deployment func(*sql.Selector)

// DriverProfile is the predicate function for driverprofile builders.
type DriverProfile func(*sql.Selector)

// Path is the predicate function for path builders.
type Path func(*sql.Selector)

// PathStop is the predicate function for pathstop builders.
type PathStop func(*sql.Selector)

// Route is the predicate function for route builders.
type Route func(*sql.Selector)

// Stop is the predicate function for stop builders.
type Stop func(*sql.Selector)

// Trip is the predicate function for trip builders.
type Trip func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)
