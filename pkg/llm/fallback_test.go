package llm

import (
	"testing"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFallback(t *testing.T) {
	tests := []struct {
		text   string
		action string
	}{
		{"Remove vehicle from Path-3 - 07:30", actions.RemoveVehicle},
		{"assign a bus to trip 42", actions.AssignVehicle},
		{"assign driver to trip 7", actions.AssignDriver},
		{"cancel the trip", actions.CancelTrip},
		{"cancel all bookings on trip 3", actions.CancelAllBookings},
		{"list all stops", actions.ListAllStops},
		{"show trips", actions.ListAllTrips},
		{"create a new trip", actions.CreateTripFromScratch},
		{"what can you do", actions.Help},
		{"fly me to the moon", actions.Unknown},
	}

	for _, tt := range tests {
		intent := ParseFallback(tt.text)
		require.NotNil(t, intent)
		assert.Equal(t, tt.action, intent.Action, "text=%q", tt.text)
		if tt.action == actions.Unknown {
			assert.Zero(t, intent.Confidence)
		} else {
			assert.Equal(t, fallbackConfidence, intent.Confidence)
		}
	}
}

func TestParseFallbackExtractsTripID(t *testing.T) {
	intent := ParseFallback("assign a bus to trip 42")
	require.NotNil(t, intent.TargetEntityID)
	assert.Equal(t, 42, *intent.TargetEntityID)

	intent = ParseFallback("cancel trip #7")
	require.NotNil(t, intent.TargetEntityID)
	assert.Equal(t, 7, *intent.TargetEntityID)

	intent = ParseFallback("cancel the trip")
	assert.Nil(t, intent.TargetEntityID)
}

func TestParseFallbackExtractsTime(t *testing.T) {
	intent := ParseFallback("remove vehicle from the 7:30 trip")
	assert.Equal(t, "07:30", intent.TargetTime)

	intent = ParseFallback("remove vehicle from the 17:45 departure")
	assert.Equal(t, "17:45", intent.TargetTime)
}

// The fallback must never emit parameters beyond ids and times.
func TestParseFallbackEmitsNoFreeParameters(t *testing.T) {
	intent := ParseFallback("assign vehicle KA-01-1234 to trip 42 with driver Ramesh")
	assert.Empty(t, intent.Parameters)
}

func TestExtractTripID(t *testing.T) {
	id, ok := ExtractTripID("trip id 15 please")
	assert.True(t, ok)
	assert.Equal(t, 15, id)

	_, ok = ExtractTripID("the morning trip")
	assert.False(t, ok)
}
