package tools

import "time"

// TripSummary is the single-trip read shape.
type TripSummary struct {
	TripID        int                `json:"trip_id"`
	DisplayName   string             `json:"display_name"`
	TripDate      string             `json:"trip_date"`
	ScheduledTime string             `json:"scheduled_time"`
	LiveStatus    string             `json:"live_status"`
	RouteID       int                `json:"route_id,omitempty"`
	Deployment    *DeploymentSummary `json:"deployment,omitempty"`
	BookingCount  int                `json:"booking_count"`
}

// DeploymentSummary describes the current vehicle/driver binding.
type DeploymentSummary struct {
	DeploymentID int    `json:"deployment_id"`
	VehicleID    int    `json:"vehicle_id,omitempty"`
	VehicleName  string `json:"vehicle_name,omitempty"`
	DriverID     int    `json:"driver_id,omitempty"`
	DriverName   string `json:"driver_name,omitempty"`
}

// BookingRow is one booking in a listing.
type BookingRow struct {
	BookingID     int    `json:"booking_id"`
	PassengerName string `json:"passenger_name,omitempty"`
	Status        string `json:"status"`
}

// VehicleRow is one vehicle in a listing or selection.
type VehicleRow struct {
	VehicleID          int    `json:"vehicle_id"`
	RegistrationNumber string `json:"registration_number"`
	VehicleType        string `json:"vehicle_type"`
	Capacity           int    `json:"capacity"`
	Status             string `json:"status"`
}

// DriverRow is one driver in a listing or selection.
type DriverRow struct {
	DriverID int    `json:"driver_id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
}

// StopRow, PathRow and RouteRow are network listings.
type StopRow struct {
	StopID    int     `json:"stop_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type PathRow struct {
	PathID int      `json:"path_id"`
	Name   string   `json:"name"`
	Stops  []string `json:"stops,omitempty"`
}

type RouteRow struct {
	RouteID   int    `json:"route_id"`
	Name      string `json:"name"`
	PathID    int    `json:"path_id"`
	Direction string `json:"direction"`
	ShiftTime string `json:"shift_time"`
}

// TripMatch is a resolution candidate with its display label.
type TripMatch struct {
	TripID      int    `json:"trip_id"`
	DisplayName string `json:"display_name"`
	TripDate    string `json:"trip_date"`
	Time        string `json:"scheduled_time"`
}

// Consequences is the impact summary the confirmation flow shows the
// operator. Capacity comes from the deployed vehicle, falling back to
// the configured default.
type Consequences struct {
	BookingCount      int     `json:"booking_count"`
	BookingPercentage float64 `json:"booking_percentage"`
	HasDeployment     bool    `json:"has_deployment"`
	LiveStatus        string  `json:"live_status"`
}

// AuditRow is one append-only audit record.
type AuditRow struct {
	UserID     int            `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   int            `json:"entity_id"`
	Before     map[string]any `json:"before,omitempty"`
	After      map[string]any `json:"after,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

const dateLayout = "2006-01-02"
