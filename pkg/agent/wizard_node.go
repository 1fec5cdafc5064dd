package agent

import (
	"context"
	"fmt"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/tools"
	"github.com/fleetops/dispatch/pkg/wizard"
)

// wizardNode runs one turn of a guided creation flow: entry when no
// wizard is active, advance (or cancel) otherwise. On the final step it
// executes the creation tool with the collected answers and clears the
// wizard state.
func (a *Agent) wizardNode(ctx context.Context, s graph.State) error {
	if !s.GetBool(KeyWizardActive) {
		return a.wizardEntry(ctx, s)
	}
	return a.wizardAdvance(ctx, s)
}

func (a *Agent) wizardEntry(ctx context.Context, s graph.State) error {
	flowType := actions.WizardType(s.GetString(KeyAction))
	if flowType == "" {
		return fmt.Errorf("action %q does not start a wizard", s.GetString(KeyAction))
	}

	ws, out, err := a.wizards.Start(flowType)
	if err != nil {
		return err
	}

	s[KeyWizardActive] = true
	s[KeyWizardType] = ws.FlowType
	s[KeyWizardStep] = ws.Step
	s[KeyWizardStepsTotal] = a.wizards.StepsTotal(flowType)
	s[KeyWizardData] = ws.Answers
	s[KeyWizardQuestion] = out.Prompt
	s[KeyWizardHint] = out.Hint
	s[KeyStatus] = StatusWizard
	s[graph.KeyMessage] = out.Message
	a.attachStepOptions(ctx, s, out.OptionsProvider)
	return nil
}

func (a *Agent) wizardAdvance(ctx context.Context, s graph.State) error {
	step, _ := s.GetInt(KeyWizardStep)
	ws := wizard.State{
		FlowType: s.GetString(KeyWizardType),
		Step:     step,
		Answers:  s.GetMap(KeyWizardData),
	}

	ws, out, err := a.wizards.Advance(ws, s.GetString(KeyText))
	if err != nil {
		return err
	}

	switch out.Status {
	case wizard.StatusCancelled:
		s[KeyWizardActive] = false
		s[KeyWizardCancelled] = true
		s[KeyStatus] = StatusCancelled
		s[graph.KeyMessage] = out.Message

	case wizard.StatusInvalid:
		s[KeyWizardStep] = ws.Step
		s[KeyWizardQuestion] = out.Prompt
		s[KeyWizardHint] = out.Hint
		s[KeyStatus] = StatusWizard
		s[graph.KeyMessage] = out.Message
		a.attachStepOptions(ctx, s, out.OptionsProvider)

	case wizard.StatusContinue:
		s[KeyWizardStep] = ws.Step
		s[KeyWizardData] = ws.Answers
		s[KeyWizardQuestion] = out.Prompt
		s[KeyWizardHint] = out.Hint
		s[KeyStatus] = StatusWizard
		s[graph.KeyMessage] = out.Prompt
		a.attachStepOptions(ctx, s, out.OptionsProvider)

	case wizard.StatusComplete:
		s[KeyWizardActive] = false
		s[KeyWizardCompleted] = true
		s[KeyWizardData] = ws.Answers
		a.completeWizard(ctx, s, ws.FlowType, out.Answers)
	}
	return nil
}

// attachStepOptions fetches the selection list a step advertises.
func (a *Agent) attachStepOptions(ctx context.Context, s graph.State, provider string) {
	if provider == "" {
		return
	}
	var result tools.Result
	switch provider {
	case "vehicles":
		result = a.tools.ListVehicles(ctx)
	case "drivers":
		result = a.tools.ListDrivers(ctx)
	case "routes":
		result = a.tools.ListRoutes(ctx)
	case "paths":
		result = a.tools.ListPaths(ctx)
	case "stops":
		result = a.tools.ListStops(ctx)
	default:
		return
	}
	if result.OK {
		s[KeyOptions] = result.Data
	}
}

// completeWizard runs the creation tool for the finished flow.
func (a *Agent) completeWizard(ctx context.Context, s graph.State, flowType string, answers map[string]any) {
	userID, _ := s.GetInt(KeyUserID)

	if confirmed, present := answers["confirmed"]; present {
		if ok, _ := confirmed.(bool); !ok {
			s[KeyWizardCompleted] = false
			s[KeyWizardCancelled] = true
			s[KeyStatus] = StatusCancelled
			s[graph.KeyMessage] = "Understood, nothing was created."
			return
		}
	}

	var result tools.Result
	switch flowType {
	case wizard.FlowCreateTrip:
		result = a.completeTripWizard(ctx, answers, userID)
	case wizard.FlowCreateRoute:
		name, _ := paramString(answers, "name")
		pathID, _ := paramInt(answers, "path_id")
		direction, _ := paramString(answers, "direction")
		shiftTime, _ := paramString(answers, "shift_time")
		result = a.tools.CreateRoute(ctx, name, pathID, direction, shiftTime, userID)
	case wizard.FlowCreatePath:
		name, _ := paramString(answers, "name")
		stopIDs, _ := paramIntSlice(answers, "stop_ids")
		result = a.tools.CreatePath(ctx, name, stopIDs, userID)
	case wizard.FlowCreateStop:
		name, _ := paramString(answers, "name")
		lat, _ := paramFloat(answers, "latitude")
		lng, _ := paramFloat(answers, "longitude")
		result = a.tools.CreateStop(ctx, name, lat, lng, userID)
	default:
		result = tools.Result{OK: false, Error: tools.ErrKindInternal, Message: "Unknown wizard flow."}
	}

	s[KeyExecutionResult] = map[string]any{
		"ok":      result.OK,
		"data":    result.Data,
		"message": result.Message,
		"error":   result.Error,
	}
	if result.OK {
		s[KeyStatus] = StatusExecuted
		s[KeyOutputType] = OutputObject
		s[KeyData] = result.Data
		s[graph.KeyMessage] = result.Message
	} else {
		s[KeyStatus] = StatusFailed
		s[graph.KeyError] = result.Error
		s[graph.KeyMessage] = result.Message
	}
}

// completeTripWizard creates the trip and then applies the optional
// vehicle and driver picks from the flow.
func (a *Agent) completeTripWizard(ctx context.Context, answers map[string]any, userID int) tools.Result {
	name, _ := paramString(answers, "display_name")
	date, _ := paramString(answers, "trip_date")
	timeStr, _ := paramString(answers, "scheduled_time")
	routeID, _ := paramInt(answers, "route_id")

	result := a.tools.CreateTrip(ctx, tools.CreateTripParams{
		DisplayName:   name,
		TripDate:      date,
		ScheduledTime: timeStr,
		RouteID:       routeID,
	}, userID)
	if !result.OK {
		return result
	}

	tripID := 0
	if data, ok := result.Data.(map[string]any); ok {
		tripID, _ = paramInt(data, "trip_id")
	}
	if tripID == 0 {
		return result
	}

	if vehicleID, ok := paramInt(answers, "vehicle_id"); ok {
		if r := a.tools.AssignVehicle(ctx, tripID, vehicleID, false, userID); !r.OK {
			result.Message += " " + r.Message
		}
	}
	if driverID, ok := paramInt(answers, "driver_id"); ok {
		if r := a.tools.AssignDriver(ctx, tripID, driverID, false, userID); !r.OK {
			result.Message += " " + r.Message
		}
	}
	return result
}
