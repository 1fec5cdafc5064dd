package agent

import (
	"context"
	"fmt"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/tools"
)

// suggestion is one contextual next action the UI renders as a button.
type suggestion struct {
	Action  string `json:"action"`
	Label   string `json:"label"`
	Command string `json:"command"`
	Warning bool   `json:"warning,omitempty"`
}

// suggestNode emits contextual next actions for a trip recognised from
// an image. The list is ordered by usefulness given the trip's current
// state and each entry carries the structured command its button sends.
func (a *Agent) suggestNode(ctx context.Context, s graph.State) error {
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return fmt.Errorf("suggestions requested without a resolved trip")
	}

	tr, err := a.tools.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if tr == nil {
		s[graph.KeyError] = tools.ErrKindTargetNotFound
		s[graph.KeyMessage] = "That trip no longer exists."
		return nil
	}
	c, err := a.tools.GetConsequences(ctx, tripID)
	if err != nil {
		return err
	}

	cmd := func(action string) string {
		return FormatStructuredCommand(action, map[string]any{"trip_id": tripID}, true)
	}

	var out []suggestion
	out = append(out, suggestion{
		Action: actions.GetTripStatus, Label: "Show status", Command: cmd(actions.GetTripStatus),
	})
	if c.HasDeployment {
		out = append(out,
			suggestion{Action: actions.RemoveVehicle, Label: "Remove vehicle", Command: cmd(actions.RemoveVehicle)},
			suggestion{Action: actions.AssignDriver, Label: "Change driver", Command: cmd(actions.AssignDriver)},
		)
	} else {
		out = append(out,
			suggestion{Action: actions.AssignVehicle, Label: "Assign a vehicle", Command: cmd(actions.AssignVehicle)},
			suggestion{Action: actions.AssignDriver, Label: "Assign a driver", Command: cmd(actions.AssignDriver)},
		)
	}
	if c.BookingCount > 0 {
		out = append(out, suggestion{
			Action: actions.GetBookings, Label: fmt.Sprintf("Show %d bookings", c.BookingCount), Command: cmd(actions.GetBookings),
		})
	}
	out = append(out,
		suggestion{Action: actions.UpdateTripTime, Label: "Change departure time", Command: cmd(actions.UpdateTripTime)},
		suggestion{
			Action:  actions.CancelTrip,
			Label:   "Cancel this trip",
			Command: cmd(actions.CancelTrip),
			Warning: c.BookingCount > 0,
		},
	)

	rows := make([]map[string]any, 0, len(out))
	for _, sg := range out {
		rows = append(rows, map[string]any{
			"action":  sg.Action,
			"label":   sg.Label,
			"command": sg.Command,
			"warning": sg.Warning,
		})
	}
	s[KeyOptions] = rows
	s[KeyOutputType] = OutputList
	s[KeyStatus] = StatusExecuted
	s[graph.KeyMessage] = fmt.Sprintf("Found %s on %s at %s. What would you like to do?",
		tr.DisplayName, tr.TripDate.Format("2006-01-02"), tr.ScheduledTime)
	return nil
}

// selectionNode answers an assignment request that arrived without the
// entity id: it lists the currently available vehicles or drivers for
// the trip's window, each as a structured-command button.
func (a *Agent) selectionNode(ctx context.Context, s graph.State) error {
	action := s.GetString(KeyAction)
	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return fmt.Errorf("selection requested without a resolved trip")
	}

	kind := actions.SelectionKind(action)
	var result tools.Result
	if kind == "vehicle" {
		result = a.tools.ListAvailableVehicles(ctx, tripID)
	} else {
		result = a.tools.ListAvailableDrivers(ctx, tripID)
	}
	if !result.OK {
		s[KeyStatus] = StatusFailed
		s[graph.KeyError] = result.Error
		s[graph.KeyMessage] = result.Message
		return nil
	}

	var rows []map[string]any
	switch kind {
	case "vehicle":
		vehicles, _ := result.Data.([]tools.VehicleRow)
		for _, v := range vehicles {
			rows = append(rows, map[string]any{
				"label": fmt.Sprintf("%s (%s, %d seats)", v.RegistrationNumber, v.VehicleType, v.Capacity),
				"command": FormatStructuredCommand(action, map[string]any{
					"trip_id":      tripID,
					"vehicle_id":   v.VehicleID,
					"vehicle_name": v.RegistrationNumber,
				}, true),
			})
		}
		s[graph.KeyMessage] = fmt.Sprintf("%d vehicles are free for this trip. Pick one.", len(rows))
	case "driver":
		drivers, _ := result.Data.([]tools.DriverRow)
		for _, d := range drivers {
			rows = append(rows, map[string]any{
				"label": d.Name,
				"command": FormatStructuredCommand(action, map[string]any{
					"trip_id":     tripID,
					"driver_id":   d.DriverID,
					"driver_name": d.Name,
				}, true),
			})
		}
		s[graph.KeyMessage] = fmt.Sprintf("%d drivers are free for this trip. Pick one.", len(rows))
	}

	if len(rows) == 0 {
		s[KeyStatus] = StatusFailed
		if kind == "vehicle" {
			s[graph.KeyError] = tools.ErrKindVehicleUnavailable
			s[graph.KeyMessage] = "No vehicles are free for this trip's time window."
		} else {
			s[graph.KeyError] = tools.ErrKindDriverUnavailable
			s[graph.KeyMessage] = "No drivers are free for this trip's time window."
		}
		return nil
	}

	s[KeyOptions] = rows
	s[KeyOutputType] = OutputList
	s[KeyStatus] = StatusClarification
	return nil
}

// offerCreationNode handles an image whose text matched no trip: offer
// to start the creation wizard.
func (a *Agent) offerCreationNode(ctx context.Context, s graph.State) error {
	s[KeyOptions] = []map[string]any{
		{
			"label":   "Create this trip",
			"command": StructuredPrefix + actions.CreateTripFromScratch,
		},
	}
	s[KeyOutputType] = OutputList
	s[KeyStatus] = StatusClarification
	if s.GetString(graph.KeyMessage) == "" {
		s[graph.KeyMessage] = "I could not match that image to an existing trip. Want to create it?"
	}
	return nil
}
