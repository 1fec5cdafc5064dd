// Package actions defines the closed Action Registry and the policy sets
// derived from it: safe/risky classification, page-context permissions,
// target requirements and wizard entries. Both the LLM client and the
// regex fallback consult this package, so the set of accepted action
// names is defined exactly once.
package actions

// Canonical action names. The executor's dispatch table is validated
// against this registry at construction time so declared and handled
// actions cannot drift.
const (
	// Reads and listings
	GetTripStatus         = "get_trip_status"
	GetBookings           = "get_bookings"
	ListAllTrips          = "list_all_trips"
	ListAllStops          = "list_all_stops"
	ListAllPaths          = "list_all_paths"
	ListAllRoutes         = "list_all_routes"
	ListAllVehicles       = "list_all_vehicles"
	ListAllDrivers        = "list_all_drivers"
	GetUnassignedTrips    = "get_unassigned_trips"
	ListAvailableVehicles = "list_available_vehicles"
	ListAvailableDrivers  = "list_available_drivers"
	Help                  = "help"

	// Static entity creation
	CreateStop  = "create_stop"
	CreatePath  = "create_path"
	CreateRoute = "create_route"
	AddVehicle  = "add_vehicle"
	AddDriver   = "add_driver"

	// Trip mutations
	AssignVehicle          = "assign_vehicle"
	AssignDriver           = "assign_driver"
	AssignVehicleAndDriver = "assign_vehicle_and_driver"
	RemoveVehicle          = "remove_vehicle"
	RemoveDriver           = "remove_driver"
	CancelTrip             = "cancel_trip"
	CancelAllBookings      = "cancel_all_bookings"
	UpdateTripTime         = "update_trip_time"
	DuplicateTrip          = "duplicate_trip"

	// Configuration deletions
	DeleteStop  = "delete_stop"
	DeletePath  = "delete_path"
	DeleteRoute = "delete_route"

	// Wizard entries (multi-step guided creation)
	CreateTripFromScratch  = "create_trip_from_scratch"
	CreateRouteFromScratch = "create_route_from_scratch"
	CreatePathFromScratch  = "create_path_from_scratch"
	CreateStopFromScratch  = "create_stop_from_scratch"

	// Internal
	WizardStepInput = "wizard_step_input"
	SuggestActions  = "suggest_actions"
	Unknown         = "unknown"
)

// registry is the complete closed set of valid actions.
var registry = map[string]bool{
	GetTripStatus: true, GetBookings: true,
	ListAllTrips: true, ListAllStops: true, ListAllPaths: true,
	ListAllRoutes: true, ListAllVehicles: true, ListAllDrivers: true,
	GetUnassignedTrips: true, ListAvailableVehicles: true,
	ListAvailableDrivers: true, Help: true,
	CreateStop: true, CreatePath: true, CreateRoute: true,
	AddVehicle: true, AddDriver: true,
	AssignVehicle: true, AssignDriver: true, AssignVehicleAndDriver: true,
	RemoveVehicle: true, RemoveDriver: true,
	CancelTrip: true, CancelAllBookings: true,
	UpdateTripTime: true, DuplicateTrip: true,
	DeleteStop: true, DeletePath: true, DeleteRoute: true,
	CreateTripFromScratch: true, CreateRouteFromScratch: true,
	CreatePathFromScratch: true, CreateStopFromScratch: true,
	WizardStepInput: true, SuggestActions: true, Unknown: true,
}

// Known reports whether name is a registered action.
func Known(name string) bool {
	return registry[name]
}

// All returns every registered action name. Order is unspecified.
func All() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// safe actions execute without a confirmation gate. Reads, listings,
// static entity creation, and driver-only assignment (no passenger
// impact of its own; confirmation still arises when the trip is
// in progress, via the consequence analyser).
var safe = map[string]bool{
	GetTripStatus: true, GetBookings: true,
	ListAllTrips: true, ListAllStops: true, ListAllPaths: true,
	ListAllRoutes: true, ListAllVehicles: true, ListAllDrivers: true,
	GetUnassignedTrips: true, ListAvailableVehicles: true,
	ListAvailableDrivers: true, Help: true,
	CreateStop: true, CreatePath: true, CreateRoute: true,
	AddVehicle: true, AddDriver: true,
	DuplicateTrip: true,
	AssignDriver:  true,
}

// IsSafe reports whether action executes without confirmation analysis.
func IsSafe(action string) bool {
	return safe[action]
}

// alwaysConfirm actions require confirmation regardless of computed
// consequences: cancellations, deletions and mass operations.
var alwaysConfirm = map[string]bool{
	CancelTrip: true, CancelAllBookings: true,
	DeleteStop: true, DeletePath: true, DeleteRoute: true,
}

// AlwaysConfirm reports whether action is in the always-confirm set.
func AlwaysConfirm(action string) bool {
	return alwaysConfirm[action]
}

// noTarget actions operate without a target trip; the resolver skips
// them entirely. Configuration deletions address their entity through an
// explicit id parameter, not trip resolution.
var noTarget = map[string]bool{
	ListAllTrips: true, ListAllStops: true, ListAllPaths: true,
	ListAllRoutes: true, ListAllVehicles: true, ListAllDrivers: true,
	GetUnassignedTrips: true, Help: true,
	CreateStop: true, CreatePath: true, CreateRoute: true,
	AddVehicle: true, AddDriver: true,
	DeleteStop: true, DeletePath: true, DeleteRoute: true,
	CreateTripFromScratch: true, CreateRouteFromScratch: true,
	CreatePathFromScratch: true, CreateStopFromScratch: true,
	WizardStepInput: true, SuggestActions: true, Unknown: true,
}

// NeedsTarget reports whether the resolver must produce a verified id
// before action can proceed.
func NeedsTarget(action string) bool {
	return Known(action) && !noTarget[action]
}

// tripOps actions are permitted only from the trip-operations page;
// configOps only from the configuration page. Actions in neither set are
// permitted anywhere.
var tripOps = map[string]bool{
	AssignVehicle: true, AssignDriver: true, AssignVehicleAndDriver: true,
	RemoveVehicle: true, RemoveDriver: true,
	CancelTrip: true, CancelAllBookings: true,
	UpdateTripTime: true, DuplicateTrip: true,
	GetTripStatus: true, GetBookings: true,
	ListAvailableVehicles: true, ListAvailableDrivers: true,
	GetUnassignedTrips: true, CreateTripFromScratch: true,
}

var configOps = map[string]bool{
	CreateStop: true, CreatePath: true, CreateRoute: true,
	DeleteStop: true, DeletePath: true, DeleteRoute: true,
	CreateRouteFromScratch: true, CreatePathFromScratch: true,
	CreateStopFromScratch: true,
}

// Page names the UI reports in current_page.
const (
	PageTripOps = "trip_ops"
	PageConfig  = "config"
)

// AllowedOnPage reports whether action may be invoked from page. An
// empty page (API clients without a UI context) permits everything;
// defence-in-depth applies only when the UI declares where it is.
func AllowedOnPage(action, page string) bool {
	if page == "" {
		return true
	}
	if tripOps[action] {
		return page == PageTripOps
	}
	if configOps[action] {
		return page == PageConfig
	}
	return true
}

// wizardEntry maps a wizard entry action to its wizard type.
var wizardEntry = map[string]string{
	CreateTripFromScratch:  "create_trip",
	CreateRouteFromScratch: "create_route",
	CreatePathFromScratch:  "create_path",
	CreateStopFromScratch:  "create_stop",
}

// WizardType returns the wizard type started by action, or "".
func WizardType(action string) string {
	return wizardEntry[action]
}

// SelectionKind returns which entity picker an action needs when invoked
// without the corresponding id: "vehicle", "driver", or "".
func SelectionKind(action string) string {
	switch action {
	case AssignVehicle, AssignVehicleAndDriver:
		return "vehicle"
	case AssignDriver:
		return "driver"
	}
	return ""
}
