// Package e2e exercises the full confirmation flow against a real
// PostgreSQL instance: message in, pending session out, confirm,
// execute, audit.
package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/pkg/agent"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/services"
	"github.com/fleetops/dispatch/pkg/tools"
	testdb "github.com/fleetops/dispatch/test/database"
)

const operatorID = 42

// scriptedParser returns canned intents keyed by message text, so the
// pipeline under test is everything after classification.
type scriptedParser struct {
	intents map[string]*llm.Intent
}

func (p *scriptedParser) Parse(_ context.Context, text string, _ llm.Context) *llm.Intent {
	if intent, ok := p.intents[text]; ok {
		return intent
	}
	return &llm.Intent{Action: "unknown", Confidence: 0}
}

func agentConfig() *config.AgentConfig {
	return &config.AgentConfig{
		MaxIterations:      20,
		SessionTTL:         time.Hour,
		DefaultCapacity:    40,
		AvailabilityWindow: time.Hour,
	}
}

func newAgent(t *testing.T, client *database.Client, parser *scriptedParser) (*agent.Agent, *services.SessionService) {
	t.Helper()
	cfg := agentConfig()
	sessions := services.NewSessionService(client.Client)
	ag, err := agent.New(tools.New(client, cfg), parser, sessions, cfg)
	require.NoError(t, err)
	return ag, sessions
}

func seedTripWithBookings(t *testing.T, client *database.Client, name string, bookings int) *ent.Trip {
	t.Helper()
	ctx := context.Background()
	tr, err := client.Trip.Create().
		SetDisplayName(name).
		SetTripDate(time.Now().Add(24 * time.Hour)).
		SetScheduledTime("07:30").
		SetLiveStatus(trip.LiveStatusSCHEDULED).
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < bookings; i++ {
		_, err := client.Booking.Create().
			SetTripID(tr.ID).
			SetPassengerName(fmt.Sprintf("Passenger %d", i+1)).
			SetStatus(booking.StatusCONFIRMED).
			Save(ctx)
		require.NoError(t, err)
	}
	return tr
}

func TestCancelTripConfirmationFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tr := seedTripWithBookings(t, client, "Path-3 - 07:30", 3)
	parser := &scriptedParser{intents: map[string]*llm.Intent{
		"cancel the morning shuttle": {
			Action:         "cancel_trip",
			TargetEntityID: &tr.ID,
			Confidence:     0.95,
		},
	}}
	ag, sessions := newAgent(t, client, parser)

	// Turn 1: the risky action stops at the confirmation gate.
	out, err := ag.HandleMessage(ctx, agent.MessageRequest{
		Text:   "cancel the morning shuttle",
		UserID: operatorID,
	})
	require.NoError(t, err)
	require.Equal(t, agent.StatusAwaitingConfirmation, out["status"])

	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusPending, session.Status)
	assert.Equal(t, "cancel_trip", session.PendingAction["action"])

	// Nothing executed yet.
	reloaded := client.Trip.GetX(ctx, tr.ID)
	assert.Equal(t, trip.LiveStatusSCHEDULED, reloaded.LiveStatus)

	// Turn 2: confirm and execute.
	out, err = ag.HandleConfirm(ctx, sid, true, operatorID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusExecuted, out["status"])

	reloaded = client.Trip.GetX(ctx, tr.ID)
	assert.Equal(t, trip.LiveStatusCANCELLED, reloaded.LiveStatus)

	confirmed, err := client.Booking.Query().
		Where(booking.TripIDEQ(tr.ID), booking.StatusEQ(booking.StatusCONFIRMED)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, confirmed)

	session, err = sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusDone, session.Status)

	audits, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ("cancel_trip"), auditlog.EntityIDEQ(tr.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestConfirmReplayReturnsStoredOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tr := seedTripWithBookings(t, client, "Route-9 - 18:00", 1)
	parser := &scriptedParser{intents: map[string]*llm.Intent{
		"cancel route nine": {
			Action:         "cancel_trip",
			TargetEntityID: &tr.ID,
			Confidence:     0.9,
		},
	}}
	ag, _ := newAgent(t, client, parser)

	out, err := ag.HandleMessage(ctx, agent.MessageRequest{Text: "cancel route nine", UserID: operatorID})
	require.NoError(t, err)
	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)

	first, err := ag.HandleConfirm(ctx, sid, true, operatorID)
	require.NoError(t, err)
	require.Equal(t, agent.StatusExecuted, first["status"])

	replay, err := ag.HandleConfirm(ctx, sid, true, operatorID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusExecuted, replay["status"])

	// The replay surfaced the stored outcome; the action ran once.
	audits, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ("cancel_trip"), auditlog.EntityIDEQ(tr.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestConfirmRejectionLeavesTripUntouched(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tr := seedTripWithBookings(t, client, "Path-1 - 06:00", 2)
	parser := &scriptedParser{intents: map[string]*llm.Intent{
		"cancel the early run": {
			Action:         "cancel_trip",
			TargetEntityID: &tr.ID,
			Confidence:     0.9,
		},
	}}
	ag, sessions := newAgent(t, client, parser)

	out, err := ag.HandleMessage(ctx, agent.MessageRequest{Text: "cancel the early run", UserID: operatorID})
	require.NoError(t, err)
	sid, _ := out["session_id"].(string)
	require.NotEmpty(t, sid)

	out, err = ag.HandleConfirm(ctx, sid, false, operatorID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCancelled, out["status"])

	reloaded := client.Trip.GetX(ctx, tr.ID)
	assert.Equal(t, trip.LiveStatusSCHEDULED, reloaded.LiveStatus)

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusCancelled, session.Status)
}

func TestSafeReadExecutesWithoutSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tr := seedTripWithBookings(t, client, "Path-7 - 09:15", 0)
	ag, _ := newAgent(t, client, &scriptedParser{})

	out, err := ag.HandleMessage(ctx, agent.MessageRequest{
		Text:   fmt.Sprintf("STRUCTURED_CMD:get_trip_status|trip_id:%d", tr.ID),
		UserID: operatorID,
	})
	require.NoError(t, err)
	assert.Equal(t, agent.StatusExecuted, out["status"])
	assert.Nil(t, out["session_id"])

	count, err := client.AgentSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLabelResolutionAgainstDatabase(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	tr := seedTripWithBookings(t, client, "Airport Express - 05:45", 0)
	parser := &scriptedParser{intents: map[string]*llm.Intent{
		"when does the airport express leave": {
			Action:      "get_trip_status",
			TargetLabel: "Airport Express",
			Confidence:  0.9,
		},
	}}
	ag, _ := newAgent(t, client, parser)

	out, err := ag.HandleMessage(ctx, agent.MessageRequest{
		Text:   "when does the airport express leave",
		UserID: operatorID,
	})
	require.NoError(t, err)
	require.Equal(t, agent.StatusExecuted, out["status"])

	result, _ := out["execution_result"].(map[string]any)
	require.NotNil(t, result)
	summary, ok := result["data"].(*tools.TripSummary)
	require.True(t, ok)
	assert.Equal(t, tr.ID, summary.TripID)
}
