package llm

import (
	"testing"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain", `{"action": "help"}`, `{"action": "help"}`, true},
		{"fenced", "```json\n{\"action\": \"help\"}\n```", `{"action": "help"}`, true},
		{"prose around", `Sure! Here you go: {"action": "help"} Hope that helps.`, `{"action": "help"}`, true},
		{"trailing comma", `{"action": "help",}`, `{"action": "help"}`, true},
		{"nested trailing commas", `{"a": {"b": 1,}, "c": [1, 2,],}`, `{"a": {"b": 1}, "c": [1, 2]}`, true},
		{"brace inside string", `{"message": "use { and } freely"}`, `{"message": "use { and } freely"}`, true},
		{"no object", "I cannot help with that.", "", false},
		{"unbalanced", `{"action": "help"`, "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeResponse(t *testing.T) {
	t.Run("valid intent", func(t *testing.T) {
		intent := NormalizeResponse(`{"action": "assign_vehicle", "target_entity_id": 42, "confidence": 0.9}`)
		assert.Equal(t, actions.AssignVehicle, intent.Action)
		require.NotNil(t, intent.TargetEntityID)
		assert.Equal(t, 42, *intent.TargetEntityID)
		assert.InDelta(t, 0.9, intent.Confidence, 1e-9)
	})

	t.Run("synonym action", func(t *testing.T) {
		intent := NormalizeResponse(`{"action": "remove_bus", "confidence": 0.8}`)
		assert.Equal(t, actions.RemoveVehicle, intent.Action)
	})

	t.Run("unregistered action becomes unknown", func(t *testing.T) {
		intent := NormalizeResponse(`{"action": "launch_rocket", "confidence": 0.99}`)
		assert.Equal(t, actions.Unknown, intent.Action)
		assert.Zero(t, intent.Confidence)
	})

	t.Run("confidence clamped", func(t *testing.T) {
		intent := NormalizeResponse(`{"action": "help", "confidence": 3.5}`)
		assert.Equal(t, 1.0, intent.Confidence)

		intent = NormalizeResponse(`{"action": "help", "confidence": -1}`)
		assert.Equal(t, 0.0, intent.Confidence)
	})

	t.Run("prose is a parse failure", func(t *testing.T) {
		intent := NormalizeResponse("I think you want to cancel the trip.")
		assert.Equal(t, actions.Unknown, intent.Action)
		assert.Zero(t, intent.Confidence)
	})
}

// Random malformed provider output must never panic or produce a nil
// intent.
func TestNormalizeResponseNeverPanics(t *testing.T) {
	inputs := []string{
		"", "{", "}", "{{{{", `{"action":`, "\x00\xff", "null", "[]",
		`{"action": 42}`, `{"confidence": "high"}`,
		"```json\n{\n```",
	}
	for _, in := range inputs {
		intent := NormalizeResponse(in)
		require.NotNil(t, intent, "input %q", in)
		assert.Equal(t, actions.Unknown, intent.Action, "input %q", in)
	}
}
