package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// GetTrip returns the trip row, or nil when the id is unknown. Used by
// the resolver for cheap existence checks.
func (r *Registry) GetTrip(ctx context.Context, tripID int) (*ent.Trip, error) {
	tr, err := r.db.Trip.Get(ctx, tripID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load trip %d: %w", tripID, err)
	}
	return tr, nil
}

// GetTripStatus returns trip attributes, the current deployment summary
// and the confirmed booking count.
func (r *Registry) GetTripStatus(ctx context.Context, tripID int) Result {
	tr, err := r.GetTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetTripStatus query failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not load the trip right now.")
	}
	if tr == nil {
		return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
	}

	summary, err := r.tripSummary(ctx, tr)
	if err != nil {
		slog.Error("GetTripStatus summary failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not load the trip right now.")
	}

	return ok(fmt.Sprintf("%s is %s with %d confirmed bookings.",
		tr.DisplayName, tr.LiveStatus, summary.BookingCount), summary)
}

// tripSummary assembles the single-trip read shape.
func (r *Registry) tripSummary(ctx context.Context, tr *ent.Trip) (*TripSummary, error) {
	count, err := r.db.Booking.Query().
		Where(booking.TripIDEQ(tr.ID), booking.StatusEQ(booking.StatusCONFIRMED)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	summary := &TripSummary{
		TripID:        tr.ID,
		DisplayName:   tr.DisplayName,
		TripDate:      tr.TripDate.Format(dateLayout),
		ScheduledTime: tr.ScheduledTime,
		LiveStatus:    string(tr.LiveStatus),
		RouteID:       tr.RouteID,
		BookingCount:  count,
	}

	dep, err := r.db.Deployment.Query().
		Where(deployment.TripIDEQ(tr.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return summary, nil
		}
		return nil, fmt.Errorf("failed to load deployment: %w", err)
	}

	ds := &DeploymentSummary{DeploymentID: dep.ID}
	if dep.VehicleID != nil {
		ds.VehicleID = *dep.VehicleID
		if v, err := r.db.Vehicle.Query().Where(vehicle.IDEQ(*dep.VehicleID)).Only(ctx); err == nil {
			ds.VehicleName = v.RegistrationNumber
		}
	}
	if dep.DriverID != nil {
		ds.DriverID = *dep.DriverID
		if d, err := r.db.DriverProfile.Query().Where(driverprofile.IDEQ(*dep.DriverID)).Only(ctx); err == nil {
			ds.DriverName = d.Name
		}
	}
	summary.Deployment = ds
	return summary, nil
}

// GetBookings returns the CONFIRMED bookings for a trip.
func (r *Registry) GetBookings(ctx context.Context, tripID int) Result {
	tr, err := r.GetTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetBookings query failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not load bookings right now.")
	}
	if tr == nil {
		return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
	}

	rows, err := r.db.Booking.Query().
		Where(booking.TripIDEQ(tripID), booking.StatusEQ(booking.StatusCONFIRMED)).
		Order(ent.Asc(booking.FieldID)).
		All(ctx)
	if err != nil {
		slog.Error("GetBookings query failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not load bookings right now.")
	}

	out := make([]BookingRow, 0, len(rows))
	for _, b := range rows {
		out = append(out, BookingRow{
			BookingID:     b.ID,
			PassengerName: b.PassengerName,
			Status:        string(b.Status),
		})
	}
	return ok(fmt.Sprintf("%s has %d confirmed bookings.", tr.DisplayName, len(out)), out)
}

// GetConsequences computes the impact summary for a risky action on a
// trip: confirmed bookings, occupancy against the deployed vehicle's
// capacity (configured default when none), deployment presence, live
// status.
func (r *Registry) GetConsequences(ctx context.Context, tripID int) (*Consequences, error) {
	tr, err := r.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, fmt.Errorf("trip %d not found", tripID)
	}

	count, err := r.db.Booking.Query().
		Where(booking.TripIDEQ(tripID), booking.StatusEQ(booking.StatusCONFIRMED)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	capacity := r.cfg.DefaultCapacity
	hasDeployment := false
	dep, err := r.db.Deployment.Query().
		Where(deployment.TripIDEQ(tripID)).
		Only(ctx)
	switch {
	case err == nil:
		hasDeployment = true
		if dep.VehicleID != nil {
			if v, verr := r.db.Vehicle.Query().Where(vehicle.IDEQ(*dep.VehicleID)).Only(ctx); verr == nil {
				capacity = v.Capacity
			}
		}
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to load deployment: %w", err)
	}

	pct := 0.0
	if capacity > 0 {
		pct = float64(count) / float64(capacity)
	}

	return &Consequences{
		BookingCount:      count,
		BookingPercentage: pct,
		HasDeployment:     hasDeployment,
		LiveStatus:        string(tr.LiveStatus),
	}, nil
}

// CancelTrip transitions the trip to CANCELLED and cancels every
// CONFIRMED booking in the same transaction.
func (r *Registry) CancelTrip(ctx context.Context, tripID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CancelTrip tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.Trip.Get(ctx, tripID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
		}
		slog.Error("CancelTrip load failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}
	if tr.LiveStatus == trip.LiveStatusCANCELLED {
		return fail(ErrKindTripCancelled, fmt.Sprintf("%s is already cancelled.", tr.DisplayName))
	}

	cancelled, err := tx.Booking.Update().
		Where(booking.TripIDEQ(tripID), booking.StatusEQ(booking.StatusCONFIRMED)).
		SetStatus(booking.StatusCANCELLED).
		Save(ctx)
	if err != nil {
		slog.Error("CancelTrip booking update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}

	if err := tx.Trip.UpdateOneID(tripID).
		SetLiveStatus(trip.LiveStatusCANCELLED).
		Exec(ctx); err != nil {
		slog.Error("CancelTrip status update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}

	if err := writeAudit(ctx, tx, userID, "cancel_trip", "trip", tripID,
		map[string]any{"live_status": string(tr.LiveStatus), "confirmed_bookings": cancelled},
		map[string]any{"live_status": "CANCELLED", "confirmed_bookings": 0},
	); err != nil {
		slog.Error("CancelTrip audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CancelTrip commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel the trip right now.")
	}

	return ok(fmt.Sprintf("Cancelled %s and %d bookings.", tr.DisplayName, cancelled),
		map[string]any{"trip_id": tripID, "bookings_cancelled": cancelled})
}

// CancelAllBookings cancels every CONFIRMED booking on the trip but
// leaves the trip scheduled.
func (r *Registry) CancelAllBookings(ctx context.Context, tripID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CancelAllBookings tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel bookings right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.Trip.Get(ctx, tripID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
		}
		slog.Error("CancelAllBookings load failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel bookings right now.")
	}

	cancelled, err := tx.Booking.Update().
		Where(booking.TripIDEQ(tripID), booking.StatusEQ(booking.StatusCONFIRMED)).
		SetStatus(booking.StatusCANCELLED).
		Save(ctx)
	if err != nil {
		slog.Error("CancelAllBookings update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel bookings right now.")
	}

	if err := writeAudit(ctx, tx, userID, "cancel_all_bookings", "trip", tripID,
		map[string]any{"confirmed_bookings": cancelled},
		map[string]any{"confirmed_bookings": 0},
	); err != nil {
		slog.Error("CancelAllBookings audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel bookings right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CancelAllBookings commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not cancel bookings right now.")
	}

	return ok(fmt.Sprintf("Cancelled %d bookings on %s.", cancelled, tr.DisplayName),
		map[string]any{"trip_id": tripID, "bookings_cancelled": cancelled})
}

// UpdateTripTime moves the trip's departure. Past timestamps are
// rejected for trips running today or earlier.
func (r *Registry) UpdateTripTime(ctx context.Context, tripID int, newTime string, userID int) Result {
	hour, minute, err := ParseHHMM(newTime)
	if err != nil {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid HH:MM time.", newTime))
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("UpdateTripTime tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not update the trip time right now.")
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.Trip.Get(ctx, tripID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
		}
		slog.Error("UpdateTripTime load failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not update the trip time right now.")
	}
	if tr.LiveStatus == trip.LiveStatusCANCELLED {
		return fail(ErrKindTripCancelled, fmt.Sprintf("%s is cancelled and cannot be rescheduled.", tr.DisplayName))
	}

	y, m, d := tr.TripDate.Date()
	newStart := time.Date(y, m, d, hour, minute, 0, 0, tr.TripDate.Location())
	if newStart.Before(time.Now()) {
		return fail(ErrKindInvalidRequest,
			fmt.Sprintf("%s on %s is in the past.", newTime, tr.TripDate.Format(dateLayout)))
	}

	oldTime := tr.ScheduledTime
	updated, err := tx.Trip.UpdateOneID(tripID).
		SetScheduledTime(newTime).
		Save(ctx)
	if err != nil {
		slog.Error("UpdateTripTime update failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not update the trip time right now.")
	}

	if err := writeAudit(ctx, tx, userID, "update_trip_time", "trip", tripID,
		map[string]any{"scheduled_time": oldTime},
		map[string]any{"scheduled_time": newTime},
	); err != nil {
		slog.Error("UpdateTripTime audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not update the trip time right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("UpdateTripTime commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not update the trip time right now.")
	}

	return ok(fmt.Sprintf("Moved %s from %s to %s.", updated.DisplayName, oldTime, newTime),
		map[string]any{"trip_id": tripID, "scheduled_time": newTime})
}

// CreateTripParams are the fields a created trip needs.
type CreateTripParams struct {
	DisplayName   string
	TripDate      string // YYYY-MM-DD
	ScheduledTime string // HH:MM
	RouteID       int
}

// CreateTrip inserts a new scheduled trip.
func (r *Registry) CreateTrip(ctx context.Context, p CreateTripParams, userID int) Result {
	if p.DisplayName == "" {
		return fail(ErrKindInvalidRequest, "A trip needs a display name.")
	}
	date, err := time.Parse(dateLayout, p.TripDate)
	if err != nil {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD.", p.TripDate))
	}
	if _, _, err := ParseHHMM(p.ScheduledTime); err != nil {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid HH:MM time.", p.ScheduledTime))
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CreateTrip tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not create the trip right now.")
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Trip.Create().
		SetDisplayName(p.DisplayName).
		SetTripDate(date).
		SetScheduledTime(p.ScheduledTime).
		SetLiveStatus(trip.LiveStatusSCHEDULED)
	if p.RouteID > 0 {
		builder.SetRouteID(p.RouteID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		slog.Error("CreateTrip insert failed", "error", err)
		return fail(ErrKindInternal, "Could not create the trip right now.")
	}

	if err := writeAudit(ctx, tx, userID, "create_trip", "trip", created.ID,
		nil,
		map[string]any{
			"display_name":   p.DisplayName,
			"trip_date":      p.TripDate,
			"scheduled_time": p.ScheduledTime,
			"route_id":       p.RouteID,
		},
	); err != nil {
		slog.Error("CreateTrip audit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the trip right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CreateTrip commit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the trip right now.")
	}

	return ok(fmt.Sprintf("Created trip %s on %s at %s.", p.DisplayName, p.TripDate, p.ScheduledTime),
		map[string]any{"trip_id": created.ID})
}

// DuplicateTrip copies a trip to a new date (same date when empty),
// without its deployment or bookings. The audit record carries the
// source trip id so the copy is traceable.
func (r *Registry) DuplicateTrip(ctx context.Context, tripID int, newDate string, userID int) Result {
	src, err := r.GetTrip(ctx, tripID)
	if err != nil {
		slog.Error("DuplicateTrip load failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not duplicate the trip right now.")
	}
	if src == nil {
		return fail(ErrKindTargetNotFound, fmt.Sprintf("No trip with id %d exists.", tripID))
	}

	date := src.TripDate.Format(dateLayout)
	if newDate != "" {
		if _, err := time.Parse(dateLayout, newDate); err != nil {
			return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD.", newDate))
		}
		date = newDate
	}
	parsedDate, _ := time.Parse(dateLayout, date)

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("DuplicateTrip tx begin failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not duplicate the trip right now.")
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Trip.Create().
		SetDisplayName(src.DisplayName).
		SetTripDate(parsedDate).
		SetScheduledTime(src.ScheduledTime).
		SetLiveStatus(trip.LiveStatusSCHEDULED)
	if src.RouteID > 0 {
		builder.SetRouteID(src.RouteID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		slog.Error("DuplicateTrip insert failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not duplicate the trip right now.")
	}

	if err := writeAudit(ctx, tx, userID, "duplicate_trip", "trip", created.ID,
		map[string]any{"source_trip_id": tripID},
		map[string]any{
			"display_name":   src.DisplayName,
			"trip_date":      date,
			"scheduled_time": src.ScheduledTime,
			"route_id":       src.RouteID,
		},
	); err != nil {
		slog.Error("DuplicateTrip audit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not duplicate the trip right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("DuplicateTrip commit failed", "trip_id", tripID, "error", err)
		return fail(ErrKindInternal, "Could not duplicate the trip right now.")
	}

	return ok(fmt.Sprintf("Duplicated %s to %s.", src.DisplayName, date),
		map[string]any{"trip_id": created.ID, "source_trip_id": tripID})
}

// ListTrips returns active trips (today or later), soonest first.
func (r *Registry) ListTrips(ctx context.Context) Result {
	rows, err := r.db.Trip.Query().
		Where(trip.TripDateGTE(startOfToday())).
		Order(ent.Asc(trip.FieldTripDate), ent.Asc(trip.FieldScheduledTime)).
		All(ctx)
	if err != nil {
		slog.Error("ListTrips query failed", "error", err)
		return fail(ErrKindInternal, "Could not list trips right now.")
	}

	out := make([]TripMatch, 0, len(rows))
	for _, tr := range rows {
		out = append(out, TripMatch{
			TripID:      tr.ID,
			DisplayName: tr.DisplayName,
			TripDate:    tr.TripDate.Format(dateLayout),
			Time:        tr.ScheduledTime,
		})
	}
	return ok(fmt.Sprintf("%d upcoming trips.", len(out)), out)
}

// GetUnassignedTrips returns active trips with no vehicle bound.
func (r *Registry) GetUnassignedTrips(ctx context.Context) Result {
	rows, err := r.db.Trip.Query().
		Where(
			trip.TripDateGTE(startOfToday()),
			trip.LiveStatusEQ(trip.LiveStatusSCHEDULED),
		).
		Order(ent.Asc(trip.FieldTripDate), ent.Asc(trip.FieldScheduledTime)).
		All(ctx)
	if err != nil {
		slog.Error("GetUnassignedTrips query failed", "error", err)
		return fail(ErrKindInternal, "Could not list unassigned trips right now.")
	}

	out := make([]TripMatch, 0, len(rows))
	for _, tr := range rows {
		dep, err := r.db.Deployment.Query().
			Where(deployment.TripIDEQ(tr.ID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			slog.Error("GetUnassignedTrips deployment query failed", "trip_id", tr.ID, "error", err)
			return fail(ErrKindInternal, "Could not list unassigned trips right now.")
		}
		if err == nil && dep.VehicleID != nil {
			continue
		}
		out = append(out, TripMatch{
			TripID:      tr.ID,
			DisplayName: tr.DisplayName,
			TripDate:    tr.TripDate.Format(dateLayout),
			Time:        tr.ScheduledTime,
		})
	}
	return ok(fmt.Sprintf("%d trips without a vehicle.", len(out)), out)
}
