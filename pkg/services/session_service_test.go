package services

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/dispatch/ent/agentsession"
	testdb "github.com/fleetops/dispatch/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) *SessionService {
	client := testdb.NewTestClient(t)
	return NewSessionService(client.Client)
}

func pendingAction() map[string]any {
	return map[string]any{
		"action":  "cancel_trip",
		"trip_id": 7,
		"consequences": map[string]any{
			"booking_count": 12,
		},
	}
}

func TestCreateSession(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, agentsession.StatusPending, session.Status)
	assert.Equal(t, 1, session.UserID)
	assert.Equal(t, "cancel_trip", session.PendingAction["action"])
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestCreateSessionValidation(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, 1, nil, time.Hour)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSession(ctx, 1, pendingAction(), 0)
	assert.True(t, IsValidationError(err))
}

func TestCreateSessionNormalizesDates(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	action := pendingAction()
	action["trip_date"] = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	session, err := svc.CreateSession(ctx, 1, action, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", session.PendingAction["trip_date"])
}

func TestConfirmSession(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	confirmed, replayed, err := svc.ConfirmSession(ctx, session.ID, map[string]any{"answer": "yes"})
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, agentsession.StatusConfirmed, confirmed.Status)
	assert.Equal(t, "yes", confirmed.UserResponse["answer"])
}

func TestConfirmSessionReplayReturnsStoredOutcome(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	_, replayed, err := svc.ConfirmSession(ctx, session.ID, nil)
	require.NoError(t, err)
	require.False(t, replayed)

	done, err := svc.CompleteSession(ctx, session.ID, map[string]any{"bookings_cancelled": 12})
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusDone, done.Status)

	// Second confirm must not re-run anything: it reports replay with
	// the stored result.
	again, replayed, err := svc.ConfirmSession(ctx, session.ID, nil)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, agentsession.StatusDone, again.Status)
	assert.EqualValues(t, 12, again.ExecutionResult["bookings_cancelled"])
}

func TestConfirmSessionNotFound(t *testing.T) {
	svc := newTestSessionService(t)

	_, _, err := svc.ConfirmSession(context.Background(), "missing-id", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmExpiredSession(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	expired, _, err := svc.ConfirmSession(ctx, session.ID, nil)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, agentsession.StatusExpired, expired.Status)
}

func TestCancelSession(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	cancelled, replayed, err := svc.CancelSession(ctx, session.ID, map[string]any{"answer": "no"})
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, agentsession.StatusCancelled, cancelled.Status)

	// Cancelling again is a harmless replay.
	again, replayed, err := svc.CancelSession(ctx, session.ID, nil)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, agentsession.StatusCancelled, again.Status)
}

func TestCancelBeatsConfirm(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	_, _, err = svc.CancelSession(ctx, session.ID, nil)
	require.NoError(t, err)

	// A late confirm sees the cancelled state as a replay; the action
	// never executes.
	got, replayed, err := svc.ConfirmSession(ctx, session.ID, nil)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, agentsession.StatusCancelled, got.Status)
}

func TestSaveWizardState(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, map[string]any{"wizard": "create_trip", "step": 1}, time.Hour)
	require.NoError(t, err)

	err = svc.SaveWizardState(ctx, session.ID, map[string]any{"wizard": "create_trip", "step": 2, "display_name": "Morning Express"})
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.PendingAction["step"])
	assert.Equal(t, "Morning Express", got.PendingAction["display_name"])
}

func TestSaveWizardStateNotPending(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)
	_, _, err = svc.CancelSession(ctx, session.ID, nil)
	require.NoError(t, err)

	err = svc.SaveWizardState(ctx, session.ID, map[string]any{"step": 2})
	assert.ErrorIs(t, err, ErrSessionNotPending)
}

func TestLatestPendingForUser(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	none, err := svc.LatestPendingForUser(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	got, err := svc.LatestPendingForUser(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.ID, got.ID)

	// Other users never see it.
	other, err := svc.LatestPendingForUser(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestListSessions(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
		require.NoError(t, err)
	}
	s, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)
	_, _, err = svc.CancelSession(ctx, s.ID, nil)
	require.NoError(t, err)

	all, total, err := svc.ListSessions(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)

	pending, total, err := svc.ListSessions(ctx, "pending", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, pending, 3)

	page, total, err := svc.ListSessions(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, page, 2)
}

func TestSweepExpired(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, 1, pendingAction(), time.Millisecond)
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, 1, pendingAction(), time.Millisecond)
	require.NoError(t, err)
	keeper, err := svc.CreateSession(ctx, 1, pendingAction(), time.Hour)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := svc.GetSession(ctx, keeper.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusPending, got.Status)

	// A second sweep finds nothing new.
	n, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
