package tools

import "strings"

// Enum-valued input arrives in whatever casing the operator typed; the
// stored row always carries the canonical casing.

// NormalizeVehicleType maps input to the canonical vehicle type, or ""
// when unrecognised.
func NormalizeVehicleType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bus":
		return "Bus"
	case "cab", "taxi":
		return "Cab"
	}
	return ""
}

// NormalizeDirection maps input to "up" or "down", or "".
func NormalizeDirection(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return "up"
	case "down":
		return "down"
	}
	return ""
}

// NormalizeTripStatus maps input to the canonical live status, or "".
func NormalizeTripStatus(s string) string {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")) {
	case "SCHEDULED":
		return "SCHEDULED"
	case "IN_PROGRESS":
		return "IN_PROGRESS"
	case "COMPLETED":
		return "COMPLETED"
	case "CANCELLED", "CANCELED":
		return "CANCELLED"
	}
	return ""
}
