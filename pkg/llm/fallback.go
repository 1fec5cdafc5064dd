package llm

import (
	"regexp"
	"strings"

	"github.com/fleetops/dispatch/pkg/actions"
)

// fallbackConfidence is emitted for every keyword match. The fallback is
// deliberately coarse; it exists so the common command surface keeps
// working while both providers are down.
const fallbackConfidence = 0.8

// fallbackPatterns maps actions to keyword phrases matched against the
// normalised text. Order matters: more specific actions first, so
// "remove the vehicle" never classifies as cancel_trip via "remove".
var fallbackPatterns = []struct {
	action   string
	keywords []string
}{
	{actions.RemoveVehicle, []string{"remove vehicle", "remove the vehicle", "remove bus", "unassign vehicle", "undeploy"}},
	{actions.RemoveDriver, []string{"remove driver", "remove the driver", "unassign driver"}},
	{actions.AssignVehicleAndDriver, []string{"assign vehicle and driver", "assign bus and driver"}},
	{actions.AssignVehicle, []string{"assign vehicle", "assign a vehicle", "assign bus", "assign a bus", "deploy vehicle", "deploy a bus"}},
	{actions.AssignDriver, []string{"assign driver", "assign a driver"}},
	{actions.UpdateTripTime, []string{"change time", "change the time", "update time", "reschedule", "move the trip", "new time"}},
	{actions.CancelAllBookings, []string{"cancel all bookings", "cancel bookings"}},
	{actions.CancelTrip, []string{"cancel trip", "cancel the trip", "cancel this trip"}},
	{actions.GetBookings, []string{"show bookings", "list bookings", "bookings for"}},
	{actions.GetTripStatus, []string{"trip status", "status of", "show trip", "trip details"}},
	{actions.GetUnassignedTrips, []string{"unassigned trips", "trips without"}},
	{actions.ListAvailableVehicles, []string{"available vehicles", "available buses", "free vehicles"}},
	{actions.ListAvailableDrivers, []string{"available drivers", "free drivers"}},
	{actions.ListAllTrips, []string{"list trips", "list all trips", "show trips", "all trips"}},
	{actions.ListAllStops, []string{"list stops", "list all stops", "show stops", "all stops"}},
	{actions.ListAllPaths, []string{"list paths", "list all paths", "show paths", "all paths"}},
	{actions.ListAllRoutes, []string{"list routes", "list all routes", "show routes", "all routes"}},
	{actions.ListAllVehicles, []string{"list vehicles", "list all vehicles", "show vehicles", "all vehicles"}},
	{actions.ListAllDrivers, []string{"list drivers", "list all drivers", "show drivers", "all drivers"}},
	{actions.CreateTripFromScratch, []string{"create a trip", "create trip", "create a new trip", "new trip"}},
	{actions.CreateRouteFromScratch, []string{"create a route", "create route", "new route"}},
	{actions.CreatePathFromScratch, []string{"create a path", "create path", "new path"}},
	{actions.CreateStopFromScratch, []string{"create a stop", "create stop", "new stop"}},
	{actions.DuplicateTrip, []string{"duplicate trip", "copy trip", "clone trip"}},
	{actions.Help, []string{"help", "what can you do"}},
}

// fallbackMatchers holds one compiled matcher per pattern row. Keywords
// match on word boundaries, so "show trips" reaches the list_all_trips
// row instead of matching "show trip" as a substring.
var fallbackMatchers = func() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(fallbackPatterns))
	for i, fp := range fallbackPatterns {
		quoted := make([]string, len(fp.keywords))
		for j, kw := range fp.keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		matchers[i] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return matchers
}()

// tripIDPatterns pull an explicit numeric trip id out of the raw text:
// "trip 42", "#42", "trip id 42".
var tripIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btrip\s+id\s+(\d+)\b`),
	regexp.MustCompile(`\btrip\s+#?(\d+)\b`),
	regexp.MustCompile(`#(\d+)\b`),
}

// timePattern pulls a HH:MM mention.
var timePattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

// ParseFallback classifies text with the closed keyword table. It only
// ever extracts numeric ids and times, never free parameters. Unmatched
// text yields unknown with confidence 0.
func ParseFallback(text string) *Intent {
	normalised := strings.ToLower(strings.TrimSpace(text))

	for i, fp := range fallbackPatterns {
		if !fallbackMatchers[i].MatchString(normalised) {
			continue
		}
		intent := &Intent{
			Action:     fp.action,
			Confidence: fallbackConfidence,
		}
		if id, ok := ExtractTripID(normalised); ok {
			intent.TargetEntityID = &id
		}
		if m := timePattern.FindStringSubmatch(normalised); m != nil {
			hh := m[1]
			if len(hh) == 1 {
				hh = "0" + hh
			}
			intent.TargetTime = hh + ":" + m[2]
		}
		return intent
	}

	return &Intent{Action: actions.Unknown, Confidence: 0}
}

// ExtractTripID returns the first explicit numeric trip id in text.
func ExtractTripID(text string) (int, bool) {
	for _, p := range tripIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			id := 0
			for _, ch := range m[1] {
				id = id*10 + int(ch-'0')
			}
			return id, true
		}
	}
	return 0, false
}
