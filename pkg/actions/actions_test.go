package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw      string
		want     string
		accepted bool
	}{
		{"assign_vehicle", AssignVehicle, true},
		{"Assign Vehicle", AssignVehicle, true},
		{"asign_vehicle", AssignVehicle, true},
		{"cancel_trips", CancelTrip, true},
		{"remove-bus", RemoveVehicle, true},
		{"list_stops", ListAllStops, true},
		{"create_trip", CreateTripFromScratch, true},
		{"get_trip_statuses", GetTripStatus, true},
		{"make_coffee", Unknown, false},
		{"", Unknown, false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.accepted, ok, "raw=%q", tt.raw)
	}
}

func TestSynonymsResolveToRegisteredActions(t *testing.T) {
	for variant, canonical := range synonyms {
		assert.True(t, Known(canonical), "synonym %q maps to unregistered action %q", variant, canonical)
	}
}

func TestClassificationIsClosed(t *testing.T) {
	for action := range safe {
		assert.True(t, Known(action), "safe set contains unregistered %q", action)
	}
	for action := range alwaysConfirm {
		assert.True(t, Known(action), "always-confirm set contains unregistered %q", action)
		assert.False(t, IsSafe(action), "%q cannot be both safe and always-confirm", action)
	}
	for action := range tripOps {
		assert.True(t, Known(action))
		assert.False(t, configOps[action], "%q in both page sets", action)
	}
}

func TestAllowedOnPage(t *testing.T) {
	assert.True(t, AllowedOnPage(AssignVehicle, PageTripOps))
	assert.False(t, AllowedOnPage(AssignVehicle, PageConfig))
	assert.False(t, AllowedOnPage(CreateStop, PageTripOps))
	assert.True(t, AllowedOnPage(CreateStop, PageConfig))
	// Listings are allowed anywhere
	assert.True(t, AllowedOnPage(ListAllStops, PageTripOps))
	assert.True(t, AllowedOnPage(ListAllStops, PageConfig))
	// No page context means no page policing
	assert.True(t, AllowedOnPage(AssignVehicle, ""))
}

func TestNeedsTarget(t *testing.T) {
	assert.True(t, NeedsTarget(AssignVehicle))
	assert.True(t, NeedsTarget(GetTripStatus))
	assert.False(t, NeedsTarget(ListAllStops))
	assert.False(t, NeedsTarget(CreateTripFromScratch))
	assert.False(t, NeedsTarget(Unknown))
	assert.False(t, NeedsTarget("not_an_action"))
}

func TestWizardType(t *testing.T) {
	assert.Equal(t, "create_trip", WizardType(CreateTripFromScratch))
	assert.Equal(t, "", WizardType(AssignVehicle))
}

func TestSelectionKind(t *testing.T) {
	assert.Equal(t, "vehicle", SelectionKind(AssignVehicle))
	assert.Equal(t, "vehicle", SelectionKind(AssignVehicleAndDriver))
	assert.Equal(t, "driver", SelectionKind(AssignDriver))
	assert.Equal(t, "", SelectionKind(CancelTrip))
}
