package actions

import "strings"

// synonyms maps accepted variants (plurals, common typos, looser
// phrasings the model tends to emit) to canonical action names.
var synonyms = map[string]string{
	"cancel_trips":          CancelTrip,
	"cancel":                CancelTrip,
	"trip_cancel":           CancelTrip,
	"asign_vehicle":         AssignVehicle,
	"assign_bus":            AssignVehicle,
	"assign_cab":            AssignVehicle,
	"deploy_vehicle":        AssignVehicle,
	"asign_driver":          AssignDriver,
	"remove_bus":            RemoveVehicle,
	"remove_cab":            RemoveVehicle,
	"unassign_vehicle":      RemoveVehicle,
	"undeploy_vehicle":      RemoveVehicle,
	"unassign_driver":       RemoveDriver,
	"update_time":           UpdateTripTime,
	"change_trip_time":      UpdateTripTime,
	"change_time":           UpdateTripTime,
	"reschedule_trip":       UpdateTripTime,
	"trip_status":           GetTripStatus,
	"get_status":            GetTripStatus,
	"show_trip":             GetTripStatus,
	"show_bookings":         GetBookings,
	"list_bookings":         GetBookings,
	"list_trips":            ListAllTrips,
	"list_stops":            ListAllStops,
	"list_paths":            ListAllPaths,
	"list_routes":           ListAllRoutes,
	"list_vehicles":         ListAllVehicles,
	"list_drivers":          ListAllDrivers,
	"unassigned_trips":      GetUnassignedTrips,
	"available_vehicles":    ListAvailableVehicles,
	"available_drivers":     ListAvailableDrivers,
	"new_trip":              CreateTripFromScratch,
	"create_trip":           CreateTripFromScratch,
	"create_new_trip":       CreateTripFromScratch,
	"new_route":             CreateRouteFromScratch,
	"new_path":              CreatePathFromScratch,
	"new_stop":              CreateStopFromScratch,
	"add_stop":              CreateStop,
	"add_path":              CreatePath,
	"add_route":             CreateRoute,
	"new_vehicle":           AddVehicle,
	"new_driver":            AddDriver,
	"copy_trip":             DuplicateTrip,
	"clone_trip":            DuplicateTrip,
	"cancel_bookings":       CancelAllBookings,
	"cancel_all_booking":    CancelAllBookings,
	"remove_stop":           DeleteStop,
	"remove_path":           DeletePath,
	"remove_route":          DeleteRoute,
	"suggest":               SuggestActions,
	"suggestions":           SuggestActions,
	"assign_vehicle_driver": AssignVehicleAndDriver,
}

// Normalize maps a raw action name to its canonical form. It lowercases,
// collapses separators, applies the synonym table and tries a singular
// form before giving up. Unknown names normalise to Unknown.
func Normalize(raw string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}

	if Known(name) {
		return name, true
	}
	if canonical, ok := synonyms[name]; ok {
		return canonical, true
	}
	// Plural tolerance: "cancel_trips" -> "cancel_trip" and
	// "get_trip_statuses" -> "get_trip_status".
	for _, suffix := range []string{"s", "es"} {
		singular := strings.TrimSuffix(name, suffix)
		if singular == name {
			continue
		}
		if Known(singular) {
			return singular, true
		}
		if canonical, ok := synonyms[singular]; ok {
			return canonical, true
		}
	}
	return Unknown, false
}
