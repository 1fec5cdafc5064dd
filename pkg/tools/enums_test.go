package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVehicleType(t *testing.T) {
	assert.Equal(t, "Bus", NormalizeVehicleType("bus"))
	assert.Equal(t, "Bus", NormalizeVehicleType(" BUS "))
	assert.Equal(t, "Cab", NormalizeVehicleType("cab"))
	assert.Equal(t, "Cab", NormalizeVehicleType("Taxi"))
	assert.Equal(t, "", NormalizeVehicleType("truck"))
	assert.Equal(t, "", NormalizeVehicleType(""))
}

func TestNormalizeDirection(t *testing.T) {
	assert.Equal(t, "up", NormalizeDirection("UP"))
	assert.Equal(t, "down", NormalizeDirection(" down "))
	assert.Equal(t, "", NormalizeDirection("sideways"))
}

func TestNormalizeTripStatus(t *testing.T) {
	assert.Equal(t, "SCHEDULED", NormalizeTripStatus("scheduled"))
	assert.Equal(t, "IN_PROGRESS", NormalizeTripStatus("in progress"))
	assert.Equal(t, "CANCELLED", NormalizeTripStatus("canceled"))
	assert.Equal(t, "COMPLETED", NormalizeTripStatus("Completed"))
	assert.Equal(t, "", NormalizeTripStatus("running"))
}
