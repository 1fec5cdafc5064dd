package tools

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// vehicleBinding is the outcome of binding a vehicle inside a tx.
type vehicleBinding struct {
	veh     *ent.Vehicle
	prev    *int
	already bool
}

// driverBinding mirrors vehicleBinding for drivers.
type driverBinding struct {
	drv     *ent.DriverProfile
	prev    *int
	already bool
}

// lockDeployment fetches the trip's deployment row FOR UPDATE so
// concurrent assigns serialize. A trip without a deployment returns nil.
func lockDeployment(ctx context.Context, tx *ent.Tx, tripID int) (*ent.Deployment, error) {
	dep, err := tx.Deployment.Query().
		Where(deployment.TripIDEQ(tripID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return dep, nil
}

// bindVehicle performs the vehicle half of an assignment inside the
// caller's tx: eligibility, override rules, overlap check, deployment
// upsert and vehicle status. The caller writes the audit and commits.
func (r *Registry) bindVehicle(ctx context.Context, tx *ent.Tx, tr *ent.Trip, dep *ent.Deployment, vehicleID int, override bool) (*ent.Deployment, *vehicleBinding, *Result) {
	veh, err := tx.Vehicle.Get(ctx, vehicleID)
	if err != nil {
		if ent.IsNotFound(err) {
			res := fail(ErrKindTargetNotFound, fmt.Sprintf("No vehicle with id %d exists.", vehicleID))
			return dep, nil, &res
		}
		slog.Error("vehicle load failed", "vehicle_id", vehicleID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the vehicle right now.")
		return dep, nil, &res
	}
	if veh.Status == vehicle.StatusMaintenance {
		res := fail(ErrKindVehicleUnavailable,
			fmt.Sprintf("%s is in maintenance and cannot be deployed.", veh.RegistrationNumber))
		return dep, nil, &res
	}

	b := &vehicleBinding{veh: veh}
	if dep != nil && dep.VehicleID != nil {
		b.prev = dep.VehicleID
		if *dep.VehicleID == vehicleID {
			b.already = true
			return dep, b, nil
		}
		if !override {
			res := fail(ErrKindAlreadyDeployed,
				fmt.Sprintf("%s already has a vehicle assigned. Confirm to replace it.", tr.DisplayName))
			return dep, nil, &res
		}
	}

	if conflict, cres := r.vehicleConflict(ctx, tx, veh, tr); cres != nil {
		return dep, nil, cres
	} else if conflict != "" && !override {
		res := fail(ErrKindVehicleUnavailable,
			fmt.Sprintf("%s is already deployed on %s at an overlapping time.", veh.RegistrationNumber, conflict))
		return dep, nil, &res
	}

	if dep == nil {
		dep, err = tx.Deployment.Create().
			SetTripID(tr.ID).
			SetVehicleID(vehicleID).
			Save(ctx)
	} else {
		dep, err = tx.Deployment.UpdateOneID(dep.ID).
			SetVehicleID(vehicleID).
			Save(ctx)
	}
	if err != nil {
		slog.Error("vehicle binding upsert failed", "trip_id", tr.ID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the vehicle right now.")
		return dep, nil, &res
	}

	if err := tx.Vehicle.UpdateOneID(vehicleID).
		SetStatus(vehicle.StatusDeployed).
		Exec(ctx); err != nil {
		slog.Error("vehicle status update failed", "vehicle_id", vehicleID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the vehicle right now.")
		return dep, nil, &res
	}
	return dep, b, nil
}

// bindDriver performs the driver half of an assignment inside the
// caller's tx. Same contract as bindVehicle.
func (r *Registry) bindDriver(ctx context.Context, tx *ent.Tx, tr *ent.Trip, dep *ent.Deployment, driverID int, override bool) (*ent.Deployment, *driverBinding, *Result) {
	drv, err := tx.DriverProfile.Get(ctx, driverID)
	if err != nil {
		if ent.IsNotFound(err) {
			res := fail(ErrKindTargetNotFound, fmt.Sprintf("No driver with id %d exists.", driverID))
			return dep, nil, &res
		}
		slog.Error("driver load failed", "driver_id", driverID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the driver right now.")
		return dep, nil, &res
	}
	if drv.Status == driverprofile.StatusOffDuty {
		res := fail(ErrKindDriverUnavailable, fmt.Sprintf("%s is off duty.", drv.Name))
		return dep, nil, &res
	}

	b := &driverBinding{drv: drv}
	if dep != nil && dep.DriverID != nil {
		b.prev = dep.DriverID
		if *dep.DriverID == driverID {
			b.already = true
			return dep, b, nil
		}
	}

	if conflict, cres := r.driverConflict(ctx, tx, drv, tr); cres != nil {
		return dep, nil, cres
	} else if conflict != "" && !override {
		res := fail(ErrKindDriverUnavailable,
			fmt.Sprintf("%s is already driving %s at an overlapping time.", drv.Name, conflict))
		return dep, nil, &res
	}

	if dep == nil {
		dep, err = tx.Deployment.Create().
			SetTripID(tr.ID).
			SetDriverID(driverID).
			Save(ctx)
	} else {
		dep, err = tx.Deployment.UpdateOneID(dep.ID).
			SetDriverID(driverID).
			Save(ctx)
	}
	if err != nil {
		slog.Error("driver binding upsert failed", "trip_id", tr.ID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the driver right now.")
		return dep, nil, &res
	}

	if err := tx.DriverProfile.UpdateOneID(driverID).
		SetStatus(driverprofile.StatusOnTrip).
		Exec(ctx); err != nil {
		slog.Error("driver status update failed", "driver_id", driverID, "error", err)
		res := fail(ErrKindInternal, "Could not assign the driver right now.")
		return dep, nil, &res
	}
	return dep, b, nil
}

// AssignVehicle binds a vehicle to a trip. Without override the call
// fails when the trip already has a vehicle or when the vehicle's
// schedule overlaps another trip the same day.
func (r *Registry) AssignVehicle(ctx context.Context, tripID, vehicleID int, override bool, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("AssignVehicle tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, res := loadEligibleTrip(ctx, tx, tripID)
	if res != nil {
		return *res
	}
	dep, err := lockDeployment(ctx, tx, tripID)
	if err != nil {
		slog.Error("AssignVehicle deployment lock failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle right now.")
	}

	dep, vb, fres := r.bindVehicle(ctx, tx, tr, dep, vehicleID, override)
	if fres != nil {
		return *fres
	}
	if vb.already {
		return ok(fmt.Sprintf("%s is already assigned to %s.", vb.veh.RegistrationNumber, tr.DisplayName),
			map[string]any{"trip_id": tripID, "vehicle_id": vehicleID})
	}

	if err := writeAudit(ctx, tx, userID, "assign_vehicle", "trip", tripID,
		map[string]any{"vehicle_id": intOrNil(vb.prev)},
		map[string]any{"vehicle_id": vehicleID},
	); err != nil {
		slog.Error("AssignVehicle audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("AssignVehicle commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle right now.")
	}

	return ok(fmt.Sprintf("Assigned %s to %s.", vb.veh.RegistrationNumber, tr.DisplayName),
		map[string]any{"trip_id": tripID, "vehicle_id": vehicleID, "deployment_id": dep.ID})
}

// AssignDriver binds a driver to a trip. Driver assignment needs no
// confirmation, but overlap with the driver's other trips still blocks.
func (r *Registry) AssignDriver(ctx context.Context, tripID, driverID int, override bool, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("AssignDriver tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the driver right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, res := loadEligibleTrip(ctx, tx, tripID)
	if res != nil {
		return *res
	}
	dep, err := lockDeployment(ctx, tx, tripID)
	if err != nil {
		slog.Error("AssignDriver deployment lock failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the driver right now.")
	}

	dep, db, fres := r.bindDriver(ctx, tx, tr, dep, driverID, override)
	if fres != nil {
		return *fres
	}
	if db.already {
		return ok(fmt.Sprintf("%s is already assigned to %s.", db.drv.Name, tr.DisplayName),
			map[string]any{"trip_id": tripID, "driver_id": driverID})
	}

	if err := writeAudit(ctx, tx, userID, "assign_driver", "trip", tripID,
		map[string]any{"driver_id": intOrNil(db.prev)},
		map[string]any{"driver_id": driverID},
	); err != nil {
		slog.Error("AssignDriver audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the driver right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("AssignDriver commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the driver right now.")
	}

	return ok(fmt.Sprintf("Assigned %s to %s.", db.drv.Name, tr.DisplayName),
		map[string]any{"trip_id": tripID, "driver_id": driverID, "deployment_id": dep.ID})
}

// AssignVehicleAndDriver performs both bindings in one transaction with
// one audit record. Either half failing rolls back the whole compound,
// so no reader ever observes a half-assigned trip.
func (r *Registry) AssignVehicleAndDriver(ctx context.Context, tripID, vehicleID, driverID int, override bool, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("AssignVehicleAndDriver tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle and driver right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, res := loadEligibleTrip(ctx, tx, tripID)
	if res != nil {
		return *res
	}
	dep, err := lockDeployment(ctx, tx, tripID)
	if err != nil {
		slog.Error("AssignVehicleAndDriver deployment lock failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle and driver right now.")
	}

	dep, vb, fres := r.bindVehicle(ctx, tx, tr, dep, vehicleID, override)
	if fres != nil {
		return *fres
	}
	_, db, fres := r.bindDriver(ctx, tx, tr, dep, driverID, override)
	if fres != nil {
		return *fres
	}

	if vb.already && db.already {
		return ok(fmt.Sprintf("%s and %s are already assigned to %s.",
			vb.veh.RegistrationNumber, db.drv.Name, tr.DisplayName),
			map[string]any{"trip_id": tripID, "vehicle_id": vehicleID, "driver_id": driverID})
	}

	if err := writeAudit(ctx, tx, userID, "assign_vehicle_and_driver", "trip", tripID,
		map[string]any{"vehicle_id": intOrNil(vb.prev), "driver_id": intOrNil(db.prev)},
		map[string]any{"vehicle_id": vehicleID, "driver_id": driverID},
	); err != nil {
		slog.Error("AssignVehicleAndDriver audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle and driver right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("AssignVehicleAndDriver commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not assign the vehicle and driver right now.")
	}

	return ok(fmt.Sprintf("Assigned %s and %s to %s.", vb.veh.RegistrationNumber, db.drv.Name, tr.DisplayName),
		map[string]any{"trip_id": tripID, "vehicle_id": vehicleID, "driver_id": driverID})
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// RemoveVehicle unbinds the trip's vehicle.
func (r *Registry) RemoveVehicle(ctx context.Context, tripID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("RemoveVehicle tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}
	defer func() { _ = tx.Rollback() }()

	dep, err := tx.Deployment.Query().
		Where(deployment.TripIDEQ(tripID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindNoDeployment, fmt.Sprintf("Trip %d has no deployment.", tripID))
		}
		slog.Error("RemoveVehicle lock failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}
	if dep.VehicleID == nil {
		return fail(ErrKindNoDeployment, fmt.Sprintf("Trip %d has no vehicle assigned.", tripID))
	}

	removedID := *dep.VehicleID
	if err := tx.Deployment.UpdateOneID(dep.ID).
		ClearVehicleID().
		Exec(ctx); err != nil {
		slog.Error("RemoveVehicle update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}

	if err := r.releaseVehicle(ctx, tx, removedID); err != nil {
		slog.Error("RemoveVehicle release failed", "vehicle_id", removedID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}

	if err := writeAudit(ctx, tx, userID, "remove_vehicle", "trip", tripID,
		map[string]any{"vehicle_id": removedID},
		map[string]any{"vehicle_id": nil},
	); err != nil {
		slog.Error("RemoveVehicle audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("RemoveVehicle commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the vehicle right now.")
	}

	return ok(fmt.Sprintf("Removed the vehicle from trip %d.", tripID),
		map[string]any{"trip_id": tripID, "vehicle_id": removedID})
}

// RemoveDriver unbinds the trip's driver.
func (r *Registry) RemoveDriver(ctx context.Context, tripID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("RemoveDriver tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}
	defer func() { _ = tx.Rollback() }()

	dep, err := tx.Deployment.Query().
		Where(deployment.TripIDEQ(tripID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindNoDeployment, fmt.Sprintf("Trip %d has no deployment.", tripID))
		}
		slog.Error("RemoveDriver lock failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}
	if dep.DriverID == nil {
		return fail(ErrKindNoDeployment, fmt.Sprintf("Trip %d has no driver assigned.", tripID))
	}

	removedID := *dep.DriverID
	if err := tx.Deployment.UpdateOneID(dep.ID).
		ClearDriverID().
		Exec(ctx); err != nil {
		slog.Error("RemoveDriver update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}

	if err := r.releaseDriver(ctx, tx, removedID); err != nil {
		slog.Error("RemoveDriver release failed", "driver_id", removedID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}

	if err := writeAudit(ctx, tx, userID, "remove_driver", "trip", tripID,
		map[string]any{"driver_id": removedID},
		map[string]any{"driver_id": nil},
	); err != nil {
		slog.Error("RemoveDriver audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("RemoveDriver commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not remove the driver right now.")
	}

	return ok(fmt.Sprintf("Removed the driver from trip %d.", tripID),
		map[string]any{"trip_id": tripID, "driver_id": removedID})
}

// loadEligibleTrip fetches a trip inside a mutation tx and rejects
// cancelled or past trips.
func loadEligibleTrip(ctx context.Context, tx *ent.Tx, tripID int) (*ent.Trip, *Result) {
	tr, err := tx.Trip.Get(ctx, tripID)
	if err != nil {
		if ent.IsNotFound(err) {
			res := fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
			return nil, &res
		}
		slog.Error("trip load failed", "trip_id", tripID, "error", err)
		res := fail(ErrKindInternal, "Could not load the trip right now.")
		return nil, &res
	}
	if tr.LiveStatus == trip.LiveStatusCANCELLED {
		res := fail(ErrKindTripCancelled, fmt.Sprintf("%s is cancelled.", tr.DisplayName))
		return nil, &res
	}
	if tr.TripDate.Before(startOfToday()) {
		res := fail(ErrKindTripPast,
			fmt.Sprintf("%s ran on %s and can no longer be changed.", tr.DisplayName, tr.TripDate.Format(dateLayout)))
		return nil, &res
	}
	return tr, nil
}

// vehicleConflict returns the display name of another trip the vehicle
// overlaps on the same date, or "" when free.
func (r *Registry) vehicleConflict(ctx context.Context, tx *ent.Tx, veh *ent.Vehicle, tr *ent.Trip) (string, *Result) {
	deps, err := tx.Deployment.Query().
		Where(deployment.VehicleIDEQ(veh.ID), deployment.TripIDNEQ(tr.ID)).
		All(ctx)
	if err != nil {
		slog.Error("vehicle conflict query failed", "vehicle_id", veh.ID, "error", err)
		res := fail(ErrKindInternal, "Could not check vehicle availability right now.")
		return "", &res
	}
	return r.overlapConflict(ctx, tx, deps, tr)
}

// driverConflict mirrors vehicleConflict for drivers.
func (r *Registry) driverConflict(ctx context.Context, tx *ent.Tx, drv *ent.DriverProfile, tr *ent.Trip) (string, *Result) {
	deps, err := tx.Deployment.Query().
		Where(deployment.DriverIDEQ(drv.ID), deployment.TripIDNEQ(tr.ID)).
		All(ctx)
	if err != nil {
		slog.Error("driver conflict query failed", "driver_id", drv.ID, "error", err)
		res := fail(ErrKindInternal, "Could not check driver availability right now.")
		return "", &res
	}
	return r.overlapConflict(ctx, tx, deps, tr)
}

func (r *Registry) overlapConflict(ctx context.Context, tx *ent.Tx, deps []*ent.Deployment, tr *ent.Trip) (string, *Result) {
	window := r.cfg.AvailabilityWindow
	start, end, err := TripWindow(tr.TripDate, tr.ScheduledTime, window)
	if err != nil {
		res := fail(ErrKindInvalidRequest, fmt.Sprintf("Trip %d has an invalid scheduled time.", tr.ID))
		return "", &res
	}

	for _, dep := range deps {
		other, err := tx.Trip.Get(ctx, dep.TripID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			slog.Error("conflict trip load failed", "trip_id", dep.TripID, "error", err)
			res := fail(ErrKindInternal, "Could not check availability right now.")
			return "", &res
		}
		if other.LiveStatus == trip.LiveStatusCANCELLED || other.LiveStatus == trip.LiveStatusCOMPLETED {
			continue
		}
		if !sameDate(other.TripDate, tr.TripDate) {
			continue
		}
		oStart, oEnd, err := TripWindow(other.TripDate, other.ScheduledTime, window)
		if err != nil {
			continue
		}
		if Overlaps(start, end, oStart, oEnd) {
			return other.DisplayName, nil
		}
	}
	return "", nil
}

// releaseVehicle flips the vehicle back to available when no other
// active trip holds it.
func (r *Registry) releaseVehicle(ctx context.Context, tx *ent.Tx, vehicleID int) error {
	n, err := tx.Deployment.Query().
		Where(deployment.VehicleIDEQ(vehicleID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count deployments: %w", err)
	}
	if n > 0 {
		return nil
	}
	return tx.Vehicle.UpdateOneID(vehicleID).
		SetStatus(vehicle.StatusAvailable).
		Exec(ctx)
}

func (r *Registry) releaseDriver(ctx context.Context, tx *ent.Tx, driverID int) error {
	n, err := tx.Deployment.Query().
		Where(deployment.DriverIDEQ(driverID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count deployments: %w", err)
	}
	if n > 0 {
		return nil
	}
	return tx.DriverProfile.UpdateOneID(driverID).
		SetStatus(driverprofile.StatusAvailable).
		Exec(ctx)
}
