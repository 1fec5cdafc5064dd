// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/schema"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[6].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	// agentsessionDescUpdatedAt is the schema descriptor for updated_at field.
	agentsessionDescUpdatedAt := agentsessionFields[7].Descriptor()
	// agentsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentsession.DefaultUpdatedAt = agentsessionDescUpdatedAt.Default.(func() time.Time)
	// agentsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentsession.UpdateDefaultUpdatedAt = agentsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTimestamp is the schema descriptor for timestamp field.
	auditlogDescTimestamp := auditlogFields[6].Descriptor()
	// auditlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditlog.DefaultTimestamp = auditlogDescTimestamp.Default.(func() time.Time)
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescBookedAt is the schema descriptor for booked_at field.
	bookingDescBookedAt := bookingFields[3].Descriptor()
	// booking.DefaultBookedAt holds the default value on creation for the booked_at field.
	booking.DefaultBookedAt = bookingDescBookedAt.Default.(func() time.Time)
	deploymentFields := schema.Deployment{}.Fields()
	_ = deploymentFields
	// deploymentDescDeployedAt is the schema descriptor for deployed_at field.
	deploymentDescDeployedAt := deploymentFields[3].Descriptor()
	// deployment.DefaultDeployedAt holds the default value on creation for the deployed_at field.
	deployment.DefaultDeployedAt = deploymentDescDeployedAt.Default.(func() time.Time)
	driverprofileFields := schema.DriverProfile{}.Fields()
	_ = driverprofileFields
	pathstopFields := schema.PathStop{}.Fields()
	_ = pathstopFields
	// pathstopDescSequence is the schema descriptor for sequence field.
	pathstopDescSequence := pathstopFields[2].Descriptor()
	// pathstop.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	pathstop.SequenceValidator = pathstopDescSequence.Validators[0].(func(int) error)
	tripFields := schema.Trip{}.Fields()
	_ = tripFields
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescCapacity is the schema descriptor for capacity field.
	vehicleDescCapacity := vehicleFields[2].Descriptor()
	// vehicle.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	vehicle.CapacityValidator = vehicleDescCapacity.Validators[0].(func(int) error)
}
