package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/ent/trip"
)

func TestDuplicateTrip_WritesDuplicateAuditWithSource(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	src := seedTrip(t, client, "Path-3 - 07:30", "07:30")

	res := reg.DuplicateTrip(ctx, src.ID, "", testUserID)
	require.True(t, res.OK, res.Message)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	newID, ok := data["trip_id"].(int)
	require.True(t, ok)
	require.NotEqual(t, src.ID, newID)

	copied := client.Trip.GetX(ctx, newID)
	assert.Equal(t, src.DisplayName, copied.DisplayName)
	assert.Equal(t, src.ScheduledTime, copied.ScheduledTime)
	assert.Equal(t, trip.LiveStatusSCHEDULED, copied.LiveStatus)

	rows := auditRowsForTrip(t, client, newID)
	require.Len(t, rows, 1)
	assert.Equal(t, "duplicate_trip", rows[0].Action)
	assert.EqualValues(t, src.ID, rows[0].Before["source_trip_id"])

	// The copy is audited as a duplication, not as a plain creation.
	count, err := client.AuditLog.Query().
		Where(
			auditlog.EntityTypeEQ("trip"),
			auditlog.EntityIDEQ(newID),
			auditlog.ActionEQ("create_trip"),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDuplicateTrip_MovesToNewDate(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	src := seedTrip(t, client, "Path-3 - 07:30", "07:30")
	target := time.Now().Add(72 * time.Hour).Format(dateLayout)

	res := reg.DuplicateTrip(ctx, src.ID, target, testUserID)
	require.True(t, res.OK, res.Message)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	newID := data["trip_id"].(int)

	copied := client.Trip.GetX(ctx, newID)
	assert.Equal(t, target, copied.TripDate.Format(dateLayout))
}

func TestDuplicateTrip_RejectsBadDate(t *testing.T) {
	client, reg := newTestRegistry(t)
	ctx := context.Background()

	src := seedTrip(t, client, "Path-3 - 07:30", "07:30")

	res := reg.DuplicateTrip(ctx, src.ID, "next tuesday", testUserID)
	require.False(t, res.OK)
	assert.Equal(t, ErrKindInvalidRequest, res.Error)
}
