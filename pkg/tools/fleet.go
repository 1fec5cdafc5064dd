package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// AddVehicle registers a vehicle in the fleet.
func (r *Registry) AddVehicle(ctx context.Context, registration, vehicleType string, capacity, userID int) Result {
	if registration == "" {
		return fail(ErrKindInvalidRequest, "A vehicle needs a registration number.")
	}
	vt := NormalizeVehicleType(vehicleType)
	if vt == "" {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a known vehicle type, expected Bus or Cab.", vehicleType))
	}
	if capacity <= 0 {
		return fail(ErrKindInvalidRequest, "Capacity must be a positive number.")
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("AddVehicle tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not add the vehicle right now.")
	}
	defer func() { _ = tx.Rollback() }()

	created, err := tx.Vehicle.Create().
		SetRegistrationNumber(registration).
		SetVehicleType(vehicle.VehicleType(vt)).
		SetCapacity(capacity).
		SetStatus(vehicle.StatusAvailable).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fail(ErrKindInvalidRequest, fmt.Sprintf("A vehicle with registration %s already exists.", registration))
		}
		slog.Error("AddVehicle insert failed", "error", err)
		return fail(ErrKindInternal, "Could not add the vehicle right now.")
	}

	if err := writeAudit(ctx, tx, userID, "add_vehicle", "vehicle", created.ID,
		nil,
		map[string]any{"registration_number": registration, "vehicle_type": vt, "capacity": capacity},
	); err != nil {
		slog.Error("AddVehicle audit failed", "error", err)
		return fail(ErrKindInternal, "Could not add the vehicle right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("AddVehicle commit failed", "error", err)
		return fail(ErrKindInternal, "Could not add the vehicle right now.")
	}

	return ok(fmt.Sprintf("Added %s %s with capacity %d.", vt, registration, capacity),
		map[string]any{"vehicle_id": created.ID})
}

// AddDriver registers a driverprofile.
func (r *Registry) AddDriver(ctx context.Context, name, phone string, userID int) Result {
	if name == "" {
		return fail(ErrKindInvalidRequest, "A driver needs a name.")
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("AddDriver tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not add the driver right now.")
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.DriverProfile.Create().
		SetName(name).
		SetStatus(driverprofile.StatusAvailable)
	if phone != "" {
		builder.SetPhone(phone)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		slog.Error("AddDriver insert failed", "error", err)
		return fail(ErrKindInternal, "Could not add the driver right now.")
	}

	if err := writeAudit(ctx, tx, userID, "add_driver", "driver", created.ID,
		nil,
		map[string]any{"name": name, "phone": phone},
	); err != nil {
		slog.Error("AddDriver audit failed", "error", err)
		return fail(ErrKindInternal, "Could not add the driver right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("AddDriver commit failed", "error", err)
		return fail(ErrKindInternal, "Could not add the driver right now.")
	}

	return ok(fmt.Sprintf("Added driver %s.", name), map[string]any{"driver_id": created.ID})
}

// ListVehicles returns the full fleet.
func (r *Registry) ListVehicles(ctx context.Context) Result {
	rows, err := r.db.Vehicle.Query().
		Order(ent.Asc(vehicle.FieldRegistrationNumber)).
		All(ctx)
	if err != nil {
		slog.Error("ListVehicles query failed", "error", err)
		return fail(ErrKindInternal, "Could not list vehicles right now.")
	}
	return ok(fmt.Sprintf("%d vehicles in the fleet.", len(rows)), vehicleRows(rows))
}

// ListDrivers returns every registered driverprofile.
func (r *Registry) ListDrivers(ctx context.Context) Result {
	rows, err := r.db.DriverProfile.Query().
		Order(ent.Asc(driverprofile.FieldName)).
		All(ctx)
	if err != nil {
		slog.Error("ListDrivers query failed", "error", err)
		return fail(ErrKindInternal, "Could not list drivers right now.")
	}
	return ok(fmt.Sprintf("%d drivers registered.", len(rows)), driverRows(rows))
}

// ListAvailableVehicles returns vehicles with no overlapping deployment
// for the trip's window. Availability is true interval overlap against
// the trip's date and time, never a proximity guess.
func (r *Registry) ListAvailableVehicles(ctx context.Context, tripID int) Result {
	tr, res := r.availabilityTrip(ctx, tripID)
	if res != nil {
		return *res
	}

	rows, err := r.db.Vehicle.Query().
		Where(vehicle.StatusNEQ(vehicle.StatusMaintenance)).
		Order(ent.Asc(vehicle.FieldRegistrationNumber)).
		All(ctx)
	if err != nil {
		slog.Error("ListAvailableVehicles query failed", "error", err)
		return fail(ErrKindInternal, "Could not list available vehicles right now.")
	}

	free := make([]*ent.Vehicle, 0, len(rows))
	for _, v := range rows {
		busy, err := r.entityBusy(ctx, tr, deployment.VehicleIDEQ(v.ID))
		if err != nil {
			slog.Error("ListAvailableVehicles overlap check failed", "vehicle_id", v.ID, "error", err)
			return fail(ErrKindInternal, "Could not list available vehicles right now.")
		}
		if !busy {
			free = append(free, v)
		}
	}
	return ok(fmt.Sprintf("%d vehicles are free for %s.", len(free), tr.DisplayName), vehicleRows(free))
}

// ListAvailableDrivers mirrors ListAvailableVehicles for drivers.
func (r *Registry) ListAvailableDrivers(ctx context.Context, tripID int) Result {
	tr, res := r.availabilityTrip(ctx, tripID)
	if res != nil {
		return *res
	}

	rows, err := r.db.DriverProfile.Query().
		Where(driverprofile.StatusNEQ(driverprofile.StatusOffDuty)).
		Order(ent.Asc(driverprofile.FieldName)).
		All(ctx)
	if err != nil {
		slog.Error("ListAvailableDrivers query failed", "error", err)
		return fail(ErrKindInternal, "Could not list available drivers right now.")
	}

	free := make([]*ent.DriverProfile, 0, len(rows))
	for _, d := range rows {
		busy, err := r.entityBusy(ctx, tr, deployment.DriverIDEQ(d.ID))
		if err != nil {
			slog.Error("ListAvailableDrivers overlap check failed", "driver_id", d.ID, "error", err)
			return fail(ErrKindInternal, "Could not list available drivers right now.")
		}
		if !busy {
			free = append(free, d)
		}
	}
	return ok(fmt.Sprintf("%d drivers are free for %s.", len(free), tr.DisplayName), driverRows(free))
}

func (r *Registry) availabilityTrip(ctx context.Context, tripID int) (*ent.Trip, *Result) {
	tr, err := r.GetTrip(ctx, tripID)
	if err != nil {
		slog.Error("availability trip load failed", "trip_id", tripID, "error", err)
		res := fail(ErrKindInternal, "Could not load the trip right now.")
		return nil, &res
	}
	if tr == nil {
		res := fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
		return nil, &res
	}
	return tr, nil
}

// entityBusy reports whether any deployment matching pred belongs to a
// trip overlapping tr's window on the same date.
func (r *Registry) entityBusy(ctx context.Context, tr *ent.Trip, pred predicate.Deployment) (bool, error) {
	window := r.cfg.AvailabilityWindow
	start, end, err := TripWindow(tr.TripDate, tr.ScheduledTime, window)
	if err != nil {
		return false, err
	}

	deps, err := r.db.Deployment.Query().
		Where(pred, deployment.TripIDNEQ(tr.ID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query deployments: %w", err)
	}

	for _, dep := range deps {
		other, err := r.db.Trip.Get(ctx, dep.TripID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return false, fmt.Errorf("failed to load trip %d: %w", dep.TripID, err)
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
			return true, nil
		}
	}
	return false, nil
}

func vehicleRows(rows []*ent.Vehicle) []VehicleRow {
	out := make([]VehicleRow, 0, len(rows))
	for _, v := range rows {
		out = append(out, VehicleRow{
			VehicleID:          v.ID,
			RegistrationNumber: v.RegistrationNumber,
			VehicleType:        string(v.VehicleType),
			Capacity:           v.Capacity,
			Status:             string(v.Status),
		})
	}
	return out
}

func driverRows(rows []*ent.DriverProfile) []DriverRow {
	out := make([]DriverRow, 0, len(rows))
	for _, d := range rows {
		out = append(out, DriverRow{
			DriverID: d.ID,
			Name:     d.Name,
			Status:   string(d.Status),
		})
	}
	return out
}
