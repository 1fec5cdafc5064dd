package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/tools"
)

// Output shape tags on final_output.type.
const (
	OutputTable  = "table"
	OutputList   = "list"
	OutputObject = "object"
	OutputHelp   = "help"
)

// handler executes one action and tags the shape of its data.
type handler struct {
	run        func(ctx context.Context, s graph.State) tools.Result
	outputType string
}

// notDispatched are registry actions handled by dedicated nodes rather
// than the executor table.
var notDispatched = map[string]bool{
	actions.CreateTripFromScratch:  true,
	actions.CreateRouteFromScratch: true,
	actions.CreatePathFromScratch:  true,
	actions.CreateStopFromScratch:  true,
	actions.WizardStepInput:        true,
	actions.SuggestActions:         true,
	actions.Unknown:                true,
}

// buildDispatchTable wires every executable action to its tool call.
// The table is validated against the action registry both ways, so a
// declared-but-unhandled or handled-but-undeclared action fails at
// startup instead of at request time.
func (a *Agent) buildDispatchTable() error {
	a.handlers = map[string]handler{
		actions.GetTripStatus: {a.withTrip(a.tools.GetTripStatus), OutputObject},
		actions.GetBookings:   {a.withTrip(a.tools.GetBookings), OutputTable},

		actions.ListAllTrips:       {a.noArgs(a.tools.ListTrips), OutputTable},
		actions.ListAllStops:       {a.noArgs(a.tools.ListStops), OutputTable},
		actions.ListAllPaths:       {a.noArgs(a.tools.ListPaths), OutputTable},
		actions.ListAllRoutes:      {a.noArgs(a.tools.ListRoutes), OutputTable},
		actions.ListAllVehicles:    {a.noArgs(a.tools.ListVehicles), OutputTable},
		actions.ListAllDrivers:     {a.noArgs(a.tools.ListDrivers), OutputTable},
		actions.GetUnassignedTrips: {a.noArgs(a.tools.GetUnassignedTrips), OutputTable},

		actions.ListAvailableVehicles: {a.withTrip(a.tools.ListAvailableVehicles), OutputTable},
		actions.ListAvailableDrivers:  {a.withTrip(a.tools.ListAvailableDrivers), OutputTable},

		actions.Help: {a.helpHandler, OutputHelp},

		actions.CreateStop:  {a.createStopHandler, OutputObject},
		actions.CreatePath:  {a.createPathHandler, OutputObject},
		actions.CreateRoute: {a.createRouteHandler, OutputObject},
		actions.AddVehicle:  {a.addVehicleHandler, OutputObject},
		actions.AddDriver:   {a.addDriverHandler, OutputObject},

		actions.AssignVehicle:          {a.assignVehicleHandler, OutputObject},
		actions.AssignDriver:           {a.assignDriverHandler, OutputObject},
		actions.AssignVehicleAndDriver: {a.assignBothHandler, OutputObject},
		actions.RemoveVehicle:          {a.withTripUser(a.tools.RemoveVehicle), OutputObject},
		actions.RemoveDriver:           {a.withTripUser(a.tools.RemoveDriver), OutputObject},
		actions.CancelTrip:             {a.withTripUser(a.tools.CancelTrip), OutputObject},
		actions.CancelAllBookings:      {a.withTripUser(a.tools.CancelAllBookings), OutputObject},
		actions.UpdateTripTime:         {a.updateTripTimeHandler, OutputObject},
		actions.DuplicateTrip:          {a.duplicateTripHandler, OutputObject},

		actions.DeleteStop:  {a.deleteHandler("stop_id", a.tools.DeleteStop), OutputObject},
		actions.DeletePath:  {a.deleteHandler("path_id", a.tools.DeletePath), OutputObject},
		actions.DeleteRoute: {a.deleteHandler("route_id", a.tools.DeleteRoute), OutputObject},
	}

	for _, name := range actions.All() {
		if notDispatched[name] {
			continue
		}
		if _, ok := a.handlers[name]; !ok {
			return fmt.Errorf("action %q is registered but has no executor handler", name)
		}
	}
	for name := range a.handlers {
		if !actions.Known(name) {
			return fmt.Errorf("executor handles unregistered action %q", name)
		}
	}
	return nil
}

// executeAction runs the dispatch table entry for the current action.
func (a *Agent) executeAction(ctx context.Context, s graph.State) error {
	action := s.GetString(KeyAction)
	h, ok := a.handlers[action]
	if !ok {
		return fmt.Errorf("no handler for action %q", action)
	}

	result := h.run(ctx, s)

	s[KeyOutputType] = h.outputType
	s[KeyExecutionResult] = map[string]any{
		"ok":      result.OK,
		"data":    result.Data,
		"message": result.Message,
		"error":   result.Error,
	}
	if result.OK {
		s[KeyStatus] = StatusExecuted
		s[graph.KeyMessage] = result.Message
		s[KeyData] = result.Data
	} else {
		s[KeyStatus] = StatusFailed
		s[graph.KeyError] = result.Error
		s[graph.KeyMessage] = result.Message
	}
	return nil
}

// --- handler adapters ---

func (a *Agent) noArgs(fn func(context.Context) tools.Result) func(context.Context, graph.State) tools.Result {
	return func(ctx context.Context, s graph.State) tools.Result {
		return fn(ctx)
	}
}

func (a *Agent) withTrip(fn func(context.Context, int) tools.Result) func(context.Context, graph.State) tools.Result {
	return func(ctx context.Context, s graph.State) tools.Result {
		tripID, ok := s.GetInt(KeyTripID)
		if !ok {
			return missingTarget()
		}
		return fn(ctx, tripID)
	}
}

func (a *Agent) withTripUser(fn func(context.Context, int, int) tools.Result) func(context.Context, graph.State) tools.Result {
	return func(ctx context.Context, s graph.State) tools.Result {
		tripID, ok := s.GetInt(KeyTripID)
		if !ok {
			return missingTarget()
		}
		userID, _ := s.GetInt(KeyUserID)
		return fn(ctx, tripID, userID)
	}
}

func (a *Agent) assignVehicleHandler(ctx context.Context, s graph.State) tools.Result {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return missingTarget()
	}
	params := s.GetMap(KeyParsedParams)
	vehicleID, ok := paramInt(params, "vehicle_id")
	if !ok {
		return invalidParam("a vehicle id")
	}
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.AssignVehicle(ctx, tripID, vehicleID, s.GetBool(KeyFromConfirmation), userID)
}

func (a *Agent) assignDriverHandler(ctx context.Context, s graph.State) tools.Result {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return missingTarget()
	}
	params := s.GetMap(KeyParsedParams)
	driverID, ok := paramInt(params, "driver_id")
	if !ok {
		return invalidParam("a driver id")
	}
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.AssignDriver(ctx, tripID, driverID, s.GetBool(KeyFromConfirmation), userID)
}

// assignBothHandler performs the compound binding in one tool call, so
// a failing half never leaves the other applied.
func (a *Agent) assignBothHandler(ctx context.Context, s graph.State) tools.Result {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return missingTarget()
	}
	params := s.GetMap(KeyParsedParams)
	vehicleID, vok := paramInt(params, "vehicle_id")
	driverID, dok := paramInt(params, "driver_id")
	if !vok || !dok {
		return invalidParam("both a vehicle id and a driver id")
	}
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.AssignVehicleAndDriver(ctx, tripID, vehicleID, driverID, s.GetBool(KeyFromConfirmation), userID)
}

func (a *Agent) updateTripTimeHandler(ctx context.Context, s graph.State) tools.Result {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return missingTarget()
	}
	params := s.GetMap(KeyParsedParams)
	newTime, ok := paramString(params, "new_time")
	if !ok {
		newTime = s.GetString(KeyTargetTime)
	}
	if newTime == "" {
		return invalidParam("the new departure time (HH:MM)")
	}
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.UpdateTripTime(ctx, tripID, newTime, userID)
}

func (a *Agent) duplicateTripHandler(ctx context.Context, s graph.State) tools.Result {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return missingTarget()
	}
	params := s.GetMap(KeyParsedParams)
	newDate, _ := paramString(params, "new_date")
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.DuplicateTrip(ctx, tripID, newDate, userID)
}

func (a *Agent) createStopHandler(ctx context.Context, s graph.State) tools.Result {
	params := s.GetMap(KeyParsedParams)
	name, ok := paramString(params, "name")
	if !ok {
		return invalidParam("a stop name")
	}
	lat, _ := paramFloat(params, "latitude")
	lng, _ := paramFloat(params, "longitude")
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.CreateStop(ctx, name, lat, lng, userID)
}

func (a *Agent) createPathHandler(ctx context.Context, s graph.State) tools.Result {
	params := s.GetMap(KeyParsedParams)
	name, ok := paramString(params, "name")
	if !ok {
		return invalidParam("a path name")
	}
	stopIDs, ok := paramIntSlice(params, "stop_ids")
	if !ok {
		return invalidParam("an ordered list of stop ids")
	}
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.CreatePath(ctx, name, stopIDs, userID)
}

func (a *Agent) createRouteHandler(ctx context.Context, s graph.State) tools.Result {
	params := s.GetMap(KeyParsedParams)
	name, ok := paramString(params, "name")
	if !ok {
		return invalidParam("a route name")
	}
	pathID, ok := paramInt(params, "path_id")
	if !ok {
		return invalidParam("a path id")
	}
	direction, _ := paramString(params, "direction")
	shiftTime, _ := paramString(params, "shift_time")
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.CreateRoute(ctx, name, pathID, direction, shiftTime, userID)
}

func (a *Agent) addVehicleHandler(ctx context.Context, s graph.State) tools.Result {
	params := s.GetMap(KeyParsedParams)
	registration, ok := paramString(params, "registration_number")
	if !ok {
		if registration, ok = paramString(params, "vehicle_name"); !ok {
			return invalidParam("a registration number")
		}
	}
	vehicleType, _ := paramString(params, "vehicle_type")
	capacity, _ := paramInt(params, "capacity")
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.AddVehicle(ctx, registration, vehicleType, capacity, userID)
}

func (a *Agent) addDriverHandler(ctx context.Context, s graph.State) tools.Result {
	params := s.GetMap(KeyParsedParams)
	name, ok := paramString(params, "name")
	if !ok {
		if name, ok = paramString(params, "driver_name"); !ok {
			return invalidParam("a driver name")
		}
	}
	phone, _ := paramString(params, "phone")
	userID, _ := s.GetInt(KeyUserID)
	return a.tools.AddDriver(ctx, name, phone, userID)
}

func (a *Agent) deleteHandler(idKey string, fn func(context.Context, int, int) tools.Result) func(context.Context, graph.State) tools.Result {
	return func(ctx context.Context, s graph.State) tools.Result {
		params := s.GetMap(KeyParsedParams)
		id, ok := paramInt(params, idKey)
		if !ok {
			return invalidParam("the " + strings.ReplaceAll(idKey, "_", " "))
		}
		userID, _ := s.GetInt(KeyUserID)
		return fn(ctx, id, userID)
	}
}

func (a *Agent) helpHandler(ctx context.Context, s graph.State) tools.Result {
	names := actions.All()
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, n := range names {
		if notDispatched[n] && n != actions.CreateTripFromScratch {
			continue
		}
		lines = append(lines, humanAction(n))
	}
	return tools.Result{
		OK:      true,
		Message: "Here is what I can do. Ask in plain language, or tap a button.",
		Data:    lines,
	}
}

// --- param helpers ---

func paramInt(params map[string]any, key string) (int, bool) {
	if params == nil {
		return 0, false
	}
	switch v := params[key].(type) {
	case int:
		return v, v > 0
	case int64:
		return int(v), v > 0
	case float64:
		return int(v), v > 0
	}
	return 0, false
}

func paramString(params map[string]any, key string) (string, bool) {
	if params == nil {
		return "", false
	}
	v, ok := params[key].(string)
	return v, ok && v != ""
}

func paramFloat(params map[string]any, key string) (float64, bool) {
	if params == nil {
		return 0, false
	}
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func paramIntSlice(params map[string]any, key string) ([]int, bool) {
	if params == nil {
		return nil, false
	}
	switch v := params[key].(type) {
	case []int:
		return v, len(v) > 0
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			default:
				return nil, false
			}
		}
		return out, len(out) > 0
	}
	return nil, false
}

func missingTarget() tools.Result {
	return tools.Result{
		OK:      false,
		Error:   tools.ErrKindTargetNotFound,
		Message: "I could not work out which trip you meant.",
	}
}

func invalidParam(what string) tools.Result {
	return tools.Result{
		OK:      false,
		Error:   tools.ErrKindInvalidRequest,
		Message: fmt.Sprintf("I need %s for that.", what),
	}
}

// humanAction renders an action name as a sentence fragment.
func humanAction(action string) string {
	words := strings.ReplaceAll(action, "_", " ")
	if words == "" {
		return words
	}
	r := []rune(words)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
