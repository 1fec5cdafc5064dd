package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
	"github.com/fleetops/dispatch/pkg/services"
	testdb "github.com/fleetops/dispatch/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 30,
		AuditRetentionDays:   365,
		CleanupInterval:      time.Hour,
	}
}

func setup(t *testing.T) (*database.Client, *services.SessionService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessionService := services.NewSessionService(client.Client)
	svc := NewService(retentionConfig(), sessionService, client.Client)
	return client, sessionService, svc
}

func createSession(t *testing.T, sessions *services.SessionService, ttl time.Duration) *ent.AgentSession {
	t.Helper()
	session, err := sessions.CreateSession(context.Background(), 1,
		map[string]any{"action": "cancel_trip", "trip_id": 7}, ttl)
	require.NoError(t, err)
	return session
}

func TestService_ExpiresOverdueSessions(t *testing.T) {
	client, sessions, svc := setup(t)
	ctx := context.Background()

	session := createSession(t, sessions, time.Hour)
	err := client.AgentSession.UpdateOneID(session.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	updated, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusExpired, updated.Status)
}

func TestService_PurgesOldSettledSessions(t *testing.T) {
	client, sessions, svc := setup(t)
	ctx := context.Background()

	session := createSession(t, sessions, time.Hour)
	err := client.AgentSession.UpdateOneID(session.ID).
		SetStatus(agentsession.StatusCancelled).
		SetUpdatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = sessions.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndPendingSessions(t *testing.T) {
	client, sessions, svc := setup(t)
	ctx := context.Background()

	pending := createSession(t, sessions, time.Hour)

	settled := createSession(t, sessions, time.Hour)
	err := client.AgentSession.UpdateOneID(settled.ID).
		SetStatus(agentsession.StatusDone).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	kept, err := sessions.GetSession(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusPending, kept.Status)

	kept, err = sessions.GetSession(ctx, settled.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusDone, kept.Status)
}

func TestService_PrunesOldAuditRecords(t *testing.T) {
	client, _, svc := setup(t)
	ctx := context.Background()

	_, err := client.AuditLog.Create().
		SetUserID(1).
		SetAction("cancel_trip").
		SetEntityType("trip").
		SetEntityID(7).
		SetTimestamp(time.Now().Add(-400 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditLog.Create().
		SetUserID(1).
		SetAction("assign_vehicle").
		SetEntityType("trip").
		SetEntityID(8).
		SetTimestamp(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.AuditLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "assign_vehicle", remaining[0].Action)

	count, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ("cancel_trip")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_StartStop(t *testing.T) {
	_, _, svc := setup(t)

	svc.Start(context.Background())
	svc.Stop()
}
