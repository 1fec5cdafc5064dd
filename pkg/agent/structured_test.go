package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/pkg/actions"
)

func TestParseStructuredCommand(t *testing.T) {
	t.Run("action with trip id", func(t *testing.T) {
		cmd, ok := ParseStructuredCommand("STRUCTURED_CMD:cancel_trip|trip_id:42")
		require.True(t, ok)
		assert.Equal(t, actions.CancelTrip, cmd.Action)
		assert.Equal(t, 42, cmd.Params["trip_id"])
		assert.False(t, cmd.FromSelectionUI)
	})

	t.Run("selection ui context", func(t *testing.T) {
		cmd, ok := ParseStructuredCommand("STRUCTURED_CMD:assign_vehicle|trip_id:7|vehicle_id:3|context:selection_ui")
		require.True(t, ok)
		assert.Equal(t, actions.AssignVehicle, cmd.Action)
		assert.Equal(t, 7, cmd.Params["trip_id"])
		assert.Equal(t, 3, cmd.Params["vehicle_id"])
		assert.True(t, cmd.FromSelectionUI)
	})

	t.Run("non-id values stay strings", func(t *testing.T) {
		cmd, ok := ParseStructuredCommand("STRUCTURED_CMD:update_trip_time|trip_id:9|new_time:08:30")
		require.True(t, ok)
		assert.Equal(t, 9, cmd.Params["trip_id"])
		assert.Equal(t, "08:30", cmd.Params["new_time"])
	})

	t.Run("plain text is not a command", func(t *testing.T) {
		_, ok := ParseStructuredCommand("cancel trip 42")
		assert.False(t, ok)
	})

	t.Run("unregistered action rejected", func(t *testing.T) {
		_, ok := ParseStructuredCommand("STRUCTURED_CMD:drop_database|trip_id:1")
		assert.False(t, ok)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		_, ok := ParseStructuredCommand("STRUCTURED_CMD:cancel_trip|trip_id:abc")
		assert.False(t, ok)
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, ok := ParseStructuredCommand("STRUCTURED_CMD:cancel_trip|trip_id:0")
		assert.False(t, ok)
	})

	t.Run("malformed fields skipped", func(t *testing.T) {
		cmd, ok := ParseStructuredCommand("STRUCTURED_CMD:get_trip_status|trip_id:5|garbage")
		require.True(t, ok)
		assert.Equal(t, 5, cmd.Params["trip_id"])
	})
}

func TestFormatStructuredCommandRoundTrip(t *testing.T) {
	text := FormatStructuredCommand(actions.AssignVehicle, map[string]any{
		"trip_id":      12,
		"vehicle_id":   4,
		"vehicle_name": "KA-01-AB-1234",
	}, true)

	cmd, ok := ParseStructuredCommand(text)
	require.True(t, ok)
	assert.Equal(t, actions.AssignVehicle, cmd.Action)
	assert.Equal(t, 12, cmd.Params["trip_id"])
	assert.Equal(t, 4, cmd.Params["vehicle_id"])
	assert.Equal(t, "KA-01-AB-1234", cmd.Params["vehicle_name"])
	assert.True(t, cmd.FromSelectionUI)
}

func TestFormatStructuredCommandDeterministic(t *testing.T) {
	params := map[string]any{"vehicle_id": 2, "trip_id": 1}
	first := FormatStructuredCommand(actions.AssignVehicle, params, false)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, FormatStructuredCommand(actions.AssignVehicle, params, false))
	}
	assert.Equal(t, "STRUCTURED_CMD:assign_vehicle|trip_id:1|vehicle_id:2", first)
}
