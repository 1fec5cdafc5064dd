package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/stop"
	"github.com/fleetops/dispatch/ent/trip"
)

// CreateStop registers a named stop, optionally with coordinates.
func (r *Registry) CreateStop(ctx context.Context, name string, lat, lng float64, userID int) Result {
	if name == "" {
		return fail(ErrKindInvalidRequest, "A stop needs a name.")
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CreateStop tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not create the stop right now.")
	}
	defer func() { _ = tx.Rollback() }()

	created, err := tx.Stop.Create().
		SetName(name).
		SetLatitude(lat).
		SetLongitude(lng).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fail(ErrKindInvalidRequest, fmt.Sprintf("A stop named %q already exists.", name))
		}
		slog.Error("CreateStop insert failed", "error", err)
		return fail(ErrKindInternal, "Could not create the stop right now.")
	}

	if err := writeAudit(ctx, tx, userID, "create_stop", "stop", created.ID,
		nil, map[string]any{"name": name, "latitude": lat, "longitude": lng},
	); err != nil {
		slog.Error("CreateStop audit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the stop right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CreateStop commit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the stop right now.")
	}

	return ok(fmt.Sprintf("Created stop %s.", name), map[string]any{"stop_id": created.ID})
}

// CreatePath creates a named path and its ordered stop sequence in one
// transaction. Either the whole path lands or none of it does.
func (r *Registry) CreatePath(ctx context.Context, name string, stopIDs []int, userID int) Result {
	if name == "" {
		return fail(ErrKindInvalidRequest, "A path needs a name.")
	}
	if len(stopIDs) < 2 {
		return fail(ErrKindInvalidRequest, "A path needs at least two stops.")
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CreatePath tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not create the path right now.")
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range stopIDs {
		if _, err := tx.Stop.Get(ctx, id); err != nil {
			if ent.IsNotFound(err) {
				return fail(ErrKindTargetNotFound, fmt.Sprintf("No stop with id %d exists.", id))
			}
			slog.Error("CreatePath stop load failed", "stop_id", id, "error", err)
			return fail(ErrKindInternal, "Could not create the path right now.")
		}
	}

	created, err := tx.Path.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fail(ErrKindInvalidRequest, fmt.Sprintf("A path named %q already exists.", name))
		}
		slog.Error("CreatePath insert failed", "error", err)
		return fail(ErrKindInternal, "Could not create the path right now.")
	}

	for seq, stopID := range stopIDs {
		if _, err := tx.PathStop.Create().
			SetPathID(created.ID).
			SetStopID(stopID).
			SetSequence(seq + 1).
			Save(ctx); err != nil {
			slog.Error("CreatePath sequence insert failed", "path_id", created.ID, "error", err)
			return fail(ErrKindInternal, "Could not create the path right now.")
		}
	}

	if err := writeAudit(ctx, tx, userID, "create_path", "path", created.ID,
		nil, map[string]any{"name": name, "stop_ids": stopIDs},
	); err != nil {
		slog.Error("CreatePath audit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the path right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CreatePath commit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the path right now.")
	}

	return ok(fmt.Sprintf("Created path %s with %d stops.", name, len(stopIDs)),
		map[string]any{"path_id": created.ID})
}

// CreateRoute creates a route over an existing path.
func (r *Registry) CreateRoute(ctx context.Context, name string, pathID int, direction, shiftTime string, userID int) Result {
	if name == "" {
		return fail(ErrKindInvalidRequest, "A route needs a name.")
	}
	dir := NormalizeDirection(direction)
	if dir == "" {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid direction, expected up or down.", direction))
	}
	if _, _, err := ParseHHMM(shiftTime); err != nil {
		return fail(ErrKindInvalidRequest, fmt.Sprintf("%q is not a valid HH:MM shift time.", shiftTime))
	}

	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("CreateRoute tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not create the route right now.")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Path.Get(ctx, pathID); err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No path with id %d exists.", pathID))
		}
		slog.Error("CreateRoute path load failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not create the route right now.")
	}

	created, err := tx.Route.Create().
		SetName(name).
		SetPathID(pathID).
		SetDirection(route.Direction(dir)).
		SetShiftTime(shiftTime).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fail(ErrKindInvalidRequest, fmt.Sprintf("A route named %q already exists.", name))
		}
		slog.Error("CreateRoute insert failed", "error", err)
		return fail(ErrKindInternal, "Could not create the route right now.")
	}

	if err := writeAudit(ctx, tx, userID, "create_route", "route", created.ID,
		nil, map[string]any{"name": name, "path_id": pathID, "direction": dir, "shift_time": shiftTime},
	); err != nil {
		slog.Error("CreateRoute audit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the route right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("CreateRoute commit failed", "error", err)
		return fail(ErrKindInternal, "Could not create the route right now.")
	}

	return ok(fmt.Sprintf("Created route %s (%s) at %s.", name, dir, shiftTime),
		map[string]any{"route_id": created.ID})
}

// DeleteStop removes a stop unless a path still references it.
func (r *Registry) DeleteStop(ctx context.Context, stopID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("DeleteStop tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}
	defer func() { _ = tx.Rollback() }()

	st, err := tx.Stop.Get(ctx, stopID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No stop with id %d exists.", stopID))
		}
		slog.Error("DeleteStop load failed", "stop_id", stopID, "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}

	n, err := tx.PathStop.Query().Where(pathstop.StopIDEQ(stopID)).Count(ctx)
	if err != nil {
		slog.Error("DeleteStop reference check failed", "stop_id", stopID, "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}
	if n > 0 {
		return fail(ErrKindInvalidRequest,
			fmt.Sprintf("%s is used by %d paths and cannot be deleted.", st.Name, n))
	}

	if err := tx.Stop.DeleteOneID(stopID).Exec(ctx); err != nil {
		slog.Error("DeleteStop delete failed", "stop_id", stopID, "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}

	if err := writeAudit(ctx, tx, userID, "delete_stop", "stop", stopID,
		map[string]any{"name": st.Name}, nil,
	); err != nil {
		slog.Error("DeleteStop audit failed", "stop_id", stopID, "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("DeleteStop commit failed", "stop_id", stopID, "error", err)
		return fail(ErrKindInternal, "Could not delete the stop right now.")
	}

	return ok(fmt.Sprintf("Deleted stop %s.", st.Name), map[string]any{"stop_id": stopID})
}

// DeletePath removes a path and its stop sequence unless a route still
// uses it.
func (r *Registry) DeletePath(ctx context.Context, pathID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("DeletePath tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Path.Get(ctx, pathID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No path with id %d exists.", pathID))
		}
		slog.Error("DeletePath load failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}

	n, err := tx.Route.Query().Where(route.PathIDEQ(pathID)).Count(ctx)
	if err != nil {
		slog.Error("DeletePath reference check failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}
	if n > 0 {
		return fail(ErrKindInvalidRequest,
			fmt.Sprintf("%s is used by %d routes and cannot be deleted.", p.Name, n))
	}

	if _, err := tx.PathStop.Delete().Where(pathstop.PathIDEQ(pathID)).Exec(ctx); err != nil {
		slog.Error("DeletePath sequence delete failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}
	if err := tx.Path.DeleteOneID(pathID).Exec(ctx); err != nil {
		slog.Error("DeletePath delete failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}

	if err := writeAudit(ctx, tx, userID, "delete_path", "path", pathID,
		map[string]any{"name": p.Name}, nil,
	); err != nil {
		slog.Error("DeletePath audit failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("DeletePath commit failed", "path_id", pathID, "error", err)
		return fail(ErrKindInternal, "Could not delete the path right now.")
	}

	return ok(fmt.Sprintf("Deleted path %s.", p.Name), map[string]any{"path_id": pathID})
}

// DeleteRoute removes a route unless an active trip still references it.
func (r *Registry) DeleteRoute(ctx context.Context, routeID, userID int) Result {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		slog.Error("DeleteRoute tx begin failed", "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}
	defer func() { _ = tx.Rollback() }()

	rt, err := tx.Route.Get(ctx, routeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fail(ErrKindTargetNotFound, fmt.Sprintf("No route with id %d exists.", routeID))
		}
		slog.Error("DeleteRoute load failed", "route_id", routeID, "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}

	n, err := tx.Trip.Query().
		Where(trip.RouteIDEQ(routeID), trip.TripDateGTE(startOfToday())).
		Count(ctx)
	if err != nil {
		slog.Error("DeleteRoute reference check failed", "route_id", routeID, "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}
	if n > 0 {
		return fail(ErrKindInvalidRequest,
			fmt.Sprintf("%s has %d upcoming trips and cannot be deleted.", rt.Name, n))
	}

	if err := tx.Route.DeleteOneID(routeID).Exec(ctx); err != nil {
		slog.Error("DeleteRoute delete failed", "route_id", routeID, "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}

	if err := writeAudit(ctx, tx, userID, "delete_route", "route", routeID,
		map[string]any{"name": rt.Name}, nil,
	); err != nil {
		slog.Error("DeleteRoute audit failed", "route_id", routeID, "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("DeleteRoute commit failed", "route_id", routeID, "error", err)
		return fail(ErrKindInternal, "Could not delete the route right now.")
	}

	return ok(fmt.Sprintf("Deleted route %s.", rt.Name), map[string]any{"route_id": routeID})
}

// ListStops returns every stop alphabetically.
func (r *Registry) ListStops(ctx context.Context) Result {
	rows, err := r.db.Stop.Query().
		Order(ent.Asc(stop.FieldName)).
		All(ctx)
	if err != nil {
		slog.Error("ListStops query failed", "error", err)
		return fail(ErrKindInternal, "Could not list stops right now.")
	}

	out := make([]StopRow, 0, len(rows))
	for _, s := range rows {
		out = append(out, StopRow{
			StopID:    s.ID,
			Name:      s.Name,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		})
	}
	return ok(fmt.Sprintf("%d stops.", len(out)), out)
}

// ListPaths returns every path with its stop names in sequence order.
func (r *Registry) ListPaths(ctx context.Context) Result {
	rows, err := r.db.Path.Query().
		Order(ent.Asc(path.FieldName)).
		All(ctx)
	if err != nil {
		slog.Error("ListPaths query failed", "error", err)
		return fail(ErrKindInternal, "Could not list paths right now.")
	}

	out := make([]PathRow, 0, len(rows))
	for _, p := range rows {
		seq, err := r.db.PathStop.Query().
			Where(pathstop.PathIDEQ(p.ID)).
			Order(ent.Asc(pathstop.FieldSequence)).
			All(ctx)
		if err != nil {
			slog.Error("ListPaths sequence query failed", "path_id", p.ID, "error", err)
			return fail(ErrKindInternal, "Could not list paths right now.")
		}
		names := make([]string, 0, len(seq))
		for _, ps := range seq {
			if s, err := r.db.Stop.Get(ctx, ps.StopID); err == nil {
				names = append(names, s.Name)
			}
		}
		out = append(out, PathRow{PathID: p.ID, Name: p.Name, Stops: names})
	}
	return ok(fmt.Sprintf("%d paths.", len(out)), out)
}

// ListRoutes returns every route alphabetically.
func (r *Registry) ListRoutes(ctx context.Context) Result {
	rows, err := r.db.Route.Query().
		Order(ent.Asc(route.FieldName)).
		All(ctx)
	if err != nil {
		slog.Error("ListRoutes query failed", "error", err)
		return fail(ErrKindInternal, "Could not list routes right now.")
	}

	out := make([]RouteRow, 0, len(rows))
	for _, rt := range rows {
		out = append(out, RouteRow{
			RouteID:   rt.ID,
			Name:      rt.Name,
			PathID:    rt.PathID,
			Direction: string(rt.Direction),
			ShiftTime: rt.ShiftTime,
		})
	}
	return ok(fmt.Sprintf("%d routes.", len(out)), out)
}
