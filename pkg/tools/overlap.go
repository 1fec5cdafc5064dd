package tools

import (
	"fmt"
	"time"
)

// Overlaps reports whether two half-open windows intersect:
// not (a.end <= b.start or a.start >= b.end). True interval overlap is
// mandatory here; proximity heuristics ("within 90 minutes") produce
// false negatives and must not be reintroduced.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !aStart.Before(bEnd))
}

// ParseHHMM validates and splits an HH:MM 24h time string.
func ParseHHMM(s string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	fmt.Sscanf(s, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// TripWindow builds the [start, end) window of a trip from its date and
// HH:MM departure. When no explicit end time exists, a fixed window
// applies (configured, default 60 minutes).
func TripWindow(tripDate time.Time, scheduledTime string, window time.Duration) (time.Time, time.Time, error) {
	hour, minute, err := ParseHHMM(scheduledTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := tripDate.Date()
	start := time.Date(y, m, d, hour, minute, 0, 0, tripDate.Location())
	return start, start.Add(window), nil
}

// sameDate compares calendar dates ignoring the time component.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfToday returns midnight of the current day.
func startOfToday() time.Time {
	now := time.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
