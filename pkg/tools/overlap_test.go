package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hhmm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", "2026-03-10 "+hhmm)
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   string
		aEnd     string
		bStart   string
		bEnd     string
		expected bool
	}{
		{"identical windows", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained window", "09:00", "12:00", "10:00", "11:00", true},
		{"touching endpoints do not overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint windows", "09:00", "10:00", "11:00", "12:00", false},
		{"reversed disjoint", "11:00", "12:00", "09:00", "10:00", false},
		{"one minute of overlap", "09:00", "10:01", "10:00", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseHHMM(t *testing.T) {
	hour, minute, err := ParseHHMM("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 45, minute)

	_, _, err = ParseHHMM("7:45pm")
	assert.Error(t, err)

	_, _, err = ParseHHMM("25:00")
	assert.Error(t, err)

	_, _, err = ParseHHMM("")
	assert.Error(t, err)
}

func TestTripWindow(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	start, end, err := TripWindow(date, "08:30", 60*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), end)

	_, _, err = TripWindow(date, "bogus", 60*time.Minute)
	assert.Error(t, err)
}

func TestTripWindowAdjacencyIsNotConflict(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	window := 60 * time.Minute

	aStart, aEnd, err := TripWindow(date, "08:00", window)
	require.NoError(t, err)
	bStart, bEnd, err := TripWindow(date, "09:00", window)
	require.NoError(t, err)

	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))

	cStart, cEnd, err := TripWindow(date, "08:59", window)
	require.NoError(t, err)
	assert.True(t, Overlaps(aStart, aEnd, cStart, cEnd))
}
