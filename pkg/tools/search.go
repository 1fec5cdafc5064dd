package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/trip"
)

const maxMatches = 5

// IdentifyTripFromLabel resolves a free-text label against active trips
// (today or later). Prefix matches win outright; only when none exist
// does the search widen to substring matches. Results are bounded so a
// clarification prompt stays readable.
func (r *Registry) IdentifyTripFromLabel(ctx context.Context, label string) ([]TripMatch, error) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return nil, nil
	}

	rows, err := r.db.Trip.Query().
		Where(
			trip.TripDateGTE(startOfToday()),
			trip.LiveStatusNEQ(trip.LiveStatusCANCELLED),
		).
		Order(ent.Asc(trip.FieldTripDate), ent.Asc(trip.FieldScheduledTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}

	var prefix, contains []TripMatch
	for _, tr := range rows {
		name := strings.ToLower(tr.DisplayName)
		m := TripMatch{
			TripID:      tr.ID,
			DisplayName: tr.DisplayName,
			TripDate:    tr.TripDate.Format(dateLayout),
			Time:        tr.ScheduledTime,
		}
		switch {
		case strings.HasPrefix(name, needle):
			prefix = append(prefix, m)
		case strings.Contains(name, needle):
			contains = append(contains, m)
		}
	}

	matches := prefix
	if len(matches) == 0 {
		matches = contains
	}
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches, nil
}

// SearchTripsByTime resolves an HH:MM departure against active trips.
func (r *Registry) SearchTripsByTime(ctx context.Context, hhmm string) ([]TripMatch, error) {
	if _, _, err := ParseHHMM(hhmm); err != nil {
		return nil, err
	}

	rows, err := r.db.Trip.Query().
		Where(
			trip.TripDateGTE(startOfToday()),
			trip.LiveStatusNEQ(trip.LiveStatusCANCELLED),
			trip.ScheduledTimeEQ(hhmm),
		).
		Order(ent.Asc(trip.FieldTripDate)).
		Limit(maxMatches).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
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
	return out, nil
}

// TripExists is the resolver's guard against model-invented ids: an id
// offered by the language model counts only if the row is really there.
func (r *Registry) TripExists(ctx context.Context, tripID int) (bool, error) {
	n, err := r.db.Trip.Query().
		Where(trip.IDEQ(tripID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check trip %d: %w", tripID, err)
	}
	return n > 0, nil
}
