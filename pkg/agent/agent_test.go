package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/tools"
)

func upcomingTrip(id int, name string) *ent.Trip {
	return &ent.Trip{
		ID:            id,
		DisplayName:   name,
		TripDate:      time.Now().AddDate(0, 0, 1),
		ScheduledTime: "07:30",
		LiveStatus:    trip.LiveStatusSCHEDULED,
	}
}

func intPtr(n int) *int { return &n }

func TestNewValidatesDispatchTable(t *testing.T) {
	_, err := newTestAgent(newFakeToolset(), &fakeParser{}, newFakeSessions())
	require.NoError(t, err)
}

func TestHandleMessageStructuredListing(t *testing.T) {
	ts := newFakeToolset()
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:   "STRUCTURED_CMD:list_all_trips",
		UserID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, actions.ListAllTrips, out["action"])
	assert.Equal(t, OutputTable, out["type"])
	assert.Equal(t, 1, ts.called("ListTrips"))
}

func TestHandleMessageStructuredWithTrip(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:   "STRUCTURED_CMD:get_trip_status|trip_id:7",
		UserID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("GetTripStatus"))
}

func TestPageContextBlocksConfigActionOnTripOps(t *testing.T) {
	ts := newFakeToolset()
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:        "STRUCTURED_CMD:delete_stop|stop_id:3",
		UserID:      1,
		CurrentPage: actions.PageTripOps,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindPageMismatch, out["error"])
	assert.Equal(t, 0, ts.called("DeleteStop"))
}

func TestDeleteNeedsConfirmationWithoutTrip(t *testing.T) {
	ts := newFakeToolset()
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:        "STRUCTURED_CMD:delete_stop|stop_id:3",
		UserID:      1,
		CurrentPage: actions.PageConfig,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAwaitingConfirmation, out["status"])
	assert.Equal(t, true, out["needs_confirmation"])
	assert.NotEmpty(t, out["session_id"])
	assert.Equal(t, 0, ts.called("DeleteStop"))
}

func TestAmbiguousLabelBecomesClarification(t *testing.T) {
	ts := newFakeToolset()
	ts.byLabel["morning"] = []tools.TripMatch{
		{TripID: 1, DisplayName: "Morning A", TripDate: "2026-09-01", Time: "07:00"},
		{TripID: 2, DisplayName: "Morning B", TripDate: "2026-09-01", Time: "08:00"},
	}
	parser := &fakeParser{intent: &llm.Intent{
		Action:      actions.CancelTrip,
		TargetLabel: "morning",
		Confidence:  0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "cancel the morning trip", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusClarification, out["status"])
	assert.Equal(t, tools.ErrKindAmbiguousTarget, out["error"])
	options, ok := out["options"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, options, 2)
	assert.Equal(t, 0, ts.called("CancelTrip"))
}

func TestNumericIDBeatsLabel(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.byLabel["path-3"] = []tools.TripMatch{{TripID: 99, DisplayName: "Wrong"}}
	parser := &fakeParser{intent: &llm.Intent{
		Action:         actions.GetTripStatus,
		TargetEntityID: intPtr(7),
		TargetLabel:    "path-3",
		Confidence:     0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "status of trip 7", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 0, ts.called("IdentifyTripFromLabel"))
}

func TestHallucinatedIDFallsThroughToLabel(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.byLabel["path-3"] = []tools.TripMatch{
		{TripID: 7, DisplayName: "Path-3 - 07:30", TripDate: "2026-09-01", Time: "07:30"},
	}
	parser := &fakeParser{intent: &llm.Intent{
		Action:         actions.GetTripStatus,
		TargetEntityID: intPtr(999),
		TargetLabel:    "path-3",
		Confidence:     0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "status of path-3", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("IdentifyTripFromLabel"))
	assert.Equal(t, 1, ts.called("GetTripStatus"))
}

func TestUnresolvedTargetReported(t *testing.T) {
	ts := newFakeToolset()
	parser := &fakeParser{intent: &llm.Intent{
		Action:      actions.CancelTrip,
		TargetLabel: "ghost",
		Confidence:  0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "cancel the ghost trip", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindTargetNotFound, out["error"])
}

func TestRiskyActionGetsConfirmationGate(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.consequences[7] = &tools.Consequences{
		BookingCount:      5,
		BookingPercentage: 0.25,
		HasDeployment:     true,
		LiveStatus:        "SCHEDULED",
	}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:   "STRUCTURED_CMD:cancel_trip|trip_id:7",
		UserID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAwaitingConfirmation, out["status"])
	assert.Equal(t, true, out["needs_confirmation"])
	assert.Contains(t, out["message"], "5 confirmed bookings")
	assert.Contains(t, out["message"], "cannot be undone")
	assert.Equal(t, 0, ts.called("CancelTrip"))

	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)
	session, err := sessions.GetSession(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, actions.CancelTrip, session.PendingAction["action"])
}

func TestSafeAssignDriverExecutesDirectly(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	parser := &fakeParser{intent: &llm.Intent{
		Action:         actions.AssignDriver,
		TargetEntityID: intPtr(7),
		Parameters:     map[string]any{"driver_id": 3},
		Confidence:     0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "assign driver 3 to trip 7", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("AssignDriver"))
	assert.Equal(t, 0, ts.called("GetConsequences"))
}

func TestAssignVehicleWithoutIDShowsPicker(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.vehiclesFree = []tools.VehicleRow{
		{VehicleID: 1, RegistrationNumber: "KA-01-AB-1234", VehicleType: "bus", Capacity: 40},
		{VehicleID: 2, RegistrationNumber: "KA-01-CD-5678", VehicleType: "bus", Capacity: 32},
	}
	parser := &fakeParser{intent: &llm.Intent{
		Action:         actions.AssignVehicle,
		TargetEntityID: intPtr(7),
		Confidence:     0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "assign a vehicle to trip 7", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusClarification, out["status"])
	options, ok := out["options"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, options, 2)
	cmd, _ := options[0]["command"].(string)
	parsed, ok := ParseStructuredCommand(cmd)
	require.True(t, ok)
	assert.Equal(t, actions.AssignVehicle, parsed.Action)
	assert.Equal(t, 7, parsed.Params["trip_id"])
	assert.True(t, parsed.FromSelectionUI)
	assert.Equal(t, 0, ts.called("AssignVehicle"))
}

func TestNoFreeVehiclesReported(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	parser := &fakeParser{intent: &llm.Intent{
		Action:         actions.AssignVehicle,
		TargetEntityID: intPtr(7),
		Confidence:     0.9,
	}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "assign a vehicle to trip 7", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindVehicleUnavailable, out["error"])
}

func TestImageMatchGetsSuggestions(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.consequences[7] = &tools.Consequences{BookingCount: 3, HasDeployment: true, LiveStatus: "SCHEDULED"}
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:             "Path-3 - 07:30",
		UserID:           1,
		SelectedEntityID: intPtr(7),
		FromImage:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Contains(t, out["message"], "Path-3 - 07:30")
	options, ok := out["options"].([]map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, options)

	var sawCancel, sawRemove bool
	for _, opt := range options {
		switch opt["action"] {
		case actions.CancelTrip:
			sawCancel = true
			assert.Equal(t, true, opt["warning"])
		case actions.RemoveVehicle:
			sawRemove = true
		}
	}
	assert.True(t, sawCancel)
	assert.True(t, sawRemove)
}

func TestImageTextMatchWithoutSelection(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.byLabel["Path-3 - 07:30"] = []tools.TripMatch{
		{TripID: 7, DisplayName: "Path-3 - 07:30", TripDate: "2026-09-01", Time: "07:30"},
	}
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:      "Path-3 - 07:30",
		UserID:    1,
		FromImage: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Contains(t, out["message"], "Path-3 - 07:30")
}

func TestImageMissOffersCreation(t *testing.T) {
	ts := newFakeToolset()
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:      "Unknown Route 99",
		UserID:    1,
		FromImage: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusClarification, out["status"])
	options, ok := out["options"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, options, 1)
	assert.Equal(t, StructuredPrefix+actions.CreateTripFromScratch, options[0]["command"])
}

func TestImageCancelledTripDistinguished(t *testing.T) {
	ts := newFakeToolset()
	cancelled := upcomingTrip(7, "Path-3 - 07:30")
	cancelled.LiveStatus = trip.LiveStatusCANCELLED
	ts.trips[7] = cancelled
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:             "Path-3 - 07:30",
		UserID:           1,
		SelectedEntityID: intPtr(7),
		FromImage:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, tools.ErrKindTripCancelled, out["error"])
}

func TestImageTurnStructuredCommandWins(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	// Tapping a suggestion button after an image turn sends a structured
	// command while from_image is still set. The command's target decides;
	// the text is never re-matched against trip labels.
	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:      "STRUCTURED_CMD:get_trip_status|trip_id:7",
		UserID:    1,
		FromImage: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("GetTripStatus"))
	assert.Equal(t, 0, ts.called("IdentifyTripFromLabel"))
}

func TestUnknownActionReported(t *testing.T) {
	a, err := newTestAgent(newFakeToolset(), &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "fly me to the moon", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindUnknownAction, out["error"])
}

func TestToolFailureHitsCrashBarrier(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.errs["GetConsequences"] = errors.New("connection refused")
	a, err := newTestAgent(ts, &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:   "STRUCTURED_CMD:cancel_trip|trip_id:7",
		UserID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, "internal_error", out["error"])
	assert.NotContains(t, out["message"], "connection refused")
	assert.Equal(t, 0, ts.called("CancelTrip"))
}

func TestContextShortcutSkipsLLM(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.consequences[7] = &tools.Consequences{LiveStatus: "SCHEDULED"}
	parser := &fakeParser{intent: &llm.Intent{Action: "unknown"}}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, parser, sessions)
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{
		Text:             "cancel this trip",
		UserID:           1,
		SelectedEntityID: intPtr(7),
	})
	require.NoError(t, err)

	// Shortcut classification plus empty consequences: the always-confirm
	// rule still gates the cancellation.
	assert.Equal(t, StatusAwaitingConfirmation, out["status"])
	assert.Equal(t, actions.CancelTrip, out["action"])
}

func TestDegradedParseSurfaced(t *testing.T) {
	ts := newFakeToolset()
	parser := &fakeParser{intent: &llm.Intent{Action: actions.ListAllTrips, Confidence: 0.8, Degraded: true}}
	a, err := newTestAgent(ts, parser, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleMessage(context.Background(), MessageRequest{Text: "list trips", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, true, out["degraded"])
}

func TestWizardFullConversation(t *testing.T) {
	ts := newFakeToolset()
	ts.results["CreateStop"] = tools.Result{
		OK:      true,
		Data:    map[string]any{"stop_id": 11, "name": "Central Depot"},
		Message: "Created stop Central Depot.",
	}
	parser := &fakeParser{intent: &llm.Intent{Action: actions.CreateStopFromScratch, Confidence: 0.9}}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, parser, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	out, err := a.HandleMessage(ctx, MessageRequest{Text: "create a stop", UserID: 1})
	require.NoError(t, err)
	wiz, ok := out["wizard"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, wiz["active"])
	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)

	answers := []string{"Central Depot", "12.9716", "77.5946", "yes"}
	for i, answer := range answers {
		out, err = a.HandleMessage(ctx, MessageRequest{Text: answer, UserID: 1, SessionID: sid})
		require.NoError(t, err, "answer %d", i)
	}

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("CreateStop"))
	wiz, ok = out["wizard"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, wiz["completed"])

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "done", string(session.Status))
}

func TestWizardCancellation(t *testing.T) {
	ts := newFakeToolset()
	parser := &fakeParser{intent: &llm.Intent{Action: actions.CreateStopFromScratch, Confidence: 0.9}}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, parser, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	out, err := a.HandleMessage(ctx, MessageRequest{Text: "create a stop", UserID: 1})
	require.NoError(t, err)
	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)

	out, err = a.HandleMessage(ctx, MessageRequest{Text: "cancel", UserID: 1, SessionID: sid})
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, out["status"])
	assert.Equal(t, 0, ts.called("CreateStop"))

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", string(session.Status))
}

func TestWizardInvalidAnswerRepeatsStep(t *testing.T) {
	ts := newFakeToolset()
	parser := &fakeParser{intent: &llm.Intent{Action: actions.CreateStopFromScratch, Confidence: 0.9}}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, parser, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	out, err := a.HandleMessage(ctx, MessageRequest{Text: "create a stop", UserID: 1})
	require.NoError(t, err)
	sid, _ := out["session_id"].(string)

	_, err = a.HandleMessage(ctx, MessageRequest{Text: "Central Depot", UserID: 1, SessionID: sid})
	require.NoError(t, err)

	out, err = a.HandleMessage(ctx, MessageRequest{Text: "not-a-number", UserID: 1, SessionID: sid})
	require.NoError(t, err)

	wiz, ok := out["wizard"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, wiz["active"])
	assert.Equal(t, 1, wiz["step"])
}
