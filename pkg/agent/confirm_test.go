package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/tools"
)

func pendingCancelSession(t *testing.T, sessions *fakeSessions, tripID int) string {
	t.Helper()
	session, err := sessions.CreateSession(context.Background(), 1, map[string]any{
		"action":  actions.CancelTrip,
		"trip_id": tripID,
	}, time.Hour)
	require.NoError(t, err)
	return session.ID
}

func TestHandleConfirmExecutes(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.results["CancelTrip"] = tools.Result{OK: true, Message: "Cancelled Path-3 - 07:30 and its 5 bookings."}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	sid := pendingCancelSession(t, sessions, 7)

	out, err := a.HandleConfirm(ctx, sid, true, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, actions.CancelTrip, out["action"])
	assert.Contains(t, out["message"], "Cancelled")
	assert.Equal(t, sid, out["session_id"])
	assert.Equal(t, 1, ts.called("CancelTrip"))

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "done", string(session.Status))
	assert.Equal(t, true, session.ExecutionResult["ok"])
}

func TestHandleConfirmReplayDoesNotReExecute(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	ts.results["CancelTrip"] = tools.Result{OK: true, Message: "Cancelled."}
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	sid := pendingCancelSession(t, sessions, 7)

	first, err := a.HandleConfirm(ctx, sid, true, 1)
	require.NoError(t, err)
	second, err := a.HandleConfirm(ctx, sid, true, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, ts.called("CancelTrip"))
	assert.Equal(t, StatusExecuted, second["status"])
	assert.Equal(t, first["execution_result"], second["execution_result"])
}

func TestHandleConfirmRejection(t *testing.T) {
	ts := newFakeToolset()
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	sid := pendingCancelSession(t, sessions, 7)

	out, err := a.HandleConfirm(ctx, sid, false, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, out["status"])
	assert.Contains(t, out["message"], "no changes")
	assert.Equal(t, 0, ts.called("CancelTrip"))

	session, err := sessions.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", string(session.Status))

	// Repeating the rejection stays cancelled without error.
	out, err = a.HandleConfirm(ctx, sid, false, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, out["status"])
}

func TestHandleConfirmAfterRejectionReplaysCancellation(t *testing.T) {
	ts := newFakeToolset()
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	sid := pendingCancelSession(t, sessions, 7)

	_, err = a.HandleConfirm(ctx, sid, false, 1)
	require.NoError(t, err)

	out, err := a.HandleConfirm(ctx, sid, true, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, out["status"])
	assert.Equal(t, 0, ts.called("CancelTrip"))
}

func TestHandleConfirmUnknownSession(t *testing.T) {
	a, err := newTestAgent(newFakeToolset(), &fakeParser{}, newFakeSessions())
	require.NoError(t, err)

	out, err := a.HandleConfirm(context.Background(), "no-such-session", true, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindSessionNotFound, out["error"])
}

func TestHandleConfirmExpiredSession(t *testing.T) {
	ts := newFakeToolset()
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, 1, map[string]any{
		"action":  actions.CancelTrip,
		"trip_id": 7,
	}, -time.Minute)
	require.NoError(t, err)

	out, err := a.HandleConfirm(ctx, session.ID, true, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, out["status"])
	assert.Equal(t, tools.ErrKindSessionNotPending, out["error"])
	assert.Equal(t, 0, ts.called("CancelTrip"))
}

func TestHandleConfirmCarriesParams(t *testing.T) {
	ts := newFakeToolset()
	ts.trips[7] = upcomingTrip(7, "Path-3 - 07:30")
	sessions := newFakeSessions()
	a, err := newTestAgent(ts, &fakeParser{}, sessions)
	require.NoError(t, err)
	ctx := context.Background()

	session, err := sessions.CreateSession(ctx, 1, map[string]any{
		"action":  actions.AssignVehicle,
		"trip_id": 7,
		"params":  map[string]any{"vehicle_id": 3},
	}, time.Hour)
	require.NoError(t, err)

	out, err := a.HandleConfirm(ctx, session.ID, true, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusExecuted, out["status"])
	assert.Equal(t, 1, ts.called("AssignVehicle"))
}
