package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
	testdb "github.com/fleetops/dispatch/test/database"
)

const testUserID = 42

func newTestRegistry(t *testing.T) (*database.Client, *Registry) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.AgentConfig{
		MaxIterations:      20,
		SessionTTL:         time.Hour,
		DefaultCapacity:    40,
		AvailabilityWindow: time.Hour,
	}
	return client, New(client, cfg)
}

func seedTrip(t *testing.T, client *database.Client, name, scheduledTime string) *ent.Trip {
	t.Helper()
	tr, err := client.Trip.Create().
		SetDisplayName(name).
		SetTripDate(time.Now().Add(24 * time.Hour)).
		SetScheduledTime(scheduledTime).
		SetLiveStatus(trip.LiveStatusSCHEDULED).
		Save(context.Background())
	require.NoError(t, err)
	return tr
}

func seedVehicle(t *testing.T, client *database.Client, registration string) *ent.Vehicle {
	t.Helper()
	veh, err := client.Vehicle.Create().
		SetRegistrationNumber(registration).
		SetVehicleType(vehicle.VehicleTypeBus).
		SetCapacity(40).
		SetStatus(vehicle.StatusAvailable).
		Save(context.Background())
	require.NoError(t, err)
	return veh
}

func seedDriver(t *testing.T, client *database.Client, name string) *ent.DriverProfile {
	t.Helper()
	drv, err := client.DriverProfile.Create().
		SetName(name).
		SetStatus(driverprofile.StatusAvailable).
		Save(context.Background())
	require.NoError(t, err)
	return drv
}

func auditRowsForTrip(t *testing.T, client *database.Client, tripID int) []*ent.AuditLog {
	t.Helper()
	rows, err := client.AuditLog.Query().
		Where(auditlog.EntityTypeEQ("trip"), auditlog.EntityIDEQ(tripID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestAssignVehicleAndDriver_BindsBothWithOneAuditRecord(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	tr := seedTrip(t, client, "Path-3 - 07:30", "07:30")
	veh := seedVehicle(t, client, "KA-01-AB-1234")
	drv := seedDriver(t, client, "Asha")

	res := reg.AssignVehicleAndDriver(ctx, tr.ID, veh.ID, drv.ID, false, testUserID)
	require.True(t, res.OK, res.Message)

	dep, err := client.Deployment.Query().
		Where(deployment.TripIDEQ(tr.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, dep.VehicleID)
	require.NotNil(t, dep.DriverID)
	assert.Equal(t, veh.ID, *dep.VehicleID)
	assert.Equal(t, drv.ID, *dep.DriverID)

	assert.Equal(t, vehicle.StatusDeployed, client.Vehicle.GetX(ctx, veh.ID).Status)
	assert.Equal(t, driverprofile.StatusOnTrip, client.DriverProfile.GetX(ctx, drv.ID).Status)

	rows := auditRowsForTrip(t, client, tr.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, "assign_vehicle_and_driver", rows[0].Action)
	assert.Equal(t, testUserID, rows[0].UserID)
	assert.EqualValues(t, veh.ID, rows[0].After["vehicle_id"])
	assert.EqualValues(t, drv.ID, rows[0].After["driver_id"])
}

func TestAssignVehicleAndDriver_DriverConflictRollsBackVehicleHalf(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	tr := seedTrip(t, client, "Path-3 - 07:30", "07:30")
	other := seedTrip(t, client, "Path-5 - 07:45", "07:45")
	veh := seedVehicle(t, client, "KA-01-AB-1234")
	drv := seedDriver(t, client, "Asha")

	// The driver already works an overlapping trip, so the driver half
	// of the compound must fail.
	res := reg.AssignDriver(ctx, other.ID, drv.ID, false, testUserID)
	require.True(t, res.OK, res.Message)

	res = reg.AssignVehicleAndDriver(ctx, tr.ID, veh.ID, drv.ID, false, testUserID)
	require.False(t, res.OK)
	assert.Equal(t, ErrKindDriverUnavailable, res.Error)

	// The vehicle half must not have survived the rollback.
	n, err := client.Deployment.Query().
		Where(deployment.TripIDEQ(tr.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, vehicle.StatusAvailable, client.Vehicle.GetX(ctx, veh.ID).Status)

	assert.Empty(t, auditRowsForTrip(t, client, tr.ID))
}

func TestAssignVehicleAndDriver_ReplayIsIdempotent(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	tr := seedTrip(t, client, "Path-3 - 07:30", "07:30")
	veh := seedVehicle(t, client, "KA-01-AB-1234")
	drv := seedDriver(t, client, "Asha")

	res := reg.AssignVehicleAndDriver(ctx, tr.ID, veh.ID, drv.ID, false, testUserID)
	require.True(t, res.OK, res.Message)

	res = reg.AssignVehicleAndDriver(ctx, tr.ID, veh.ID, drv.ID, false, testUserID)
	require.True(t, res.OK, res.Message)

	// The repeat is a no-op: still one deployment, still one audit row.
	n, err := client.Deployment.Query().
		Where(deployment.TripIDEQ(tr.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, auditRowsForTrip(t, client, tr.ID), 1)
}
