package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/auditlog"
)

// writeAudit appends the audit record for one logical mutation. It runs
// inside the mutation's own transaction so the record and the mutation
// commit or roll back together.
func writeAudit(ctx context.Context, tx *ent.Tx, userID int, action, entityType string, entityID int, before, after map[string]any) error {
	builder := tx.AuditLog.Create().
		SetUserID(userID).
		SetAction(action).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetTimestamp(time.Now())
	if before != nil {
		builder.SetBefore(before)
	}
	if after != nil {
		builder.SetAfter(after)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// ListAuditForEntity returns the audit trail for one entity, newest
// first. Reads never audit.
func (r *Registry) ListAuditForEntity(ctx context.Context, entityType string, entityID int) ([]AuditRow, error) {
	rows, err := r.db.AuditLog.Query().
		Where(
			auditlog.EntityTypeEQ(entityType),
			auditlog.EntityIDEQ(entityID),
		).
		Order(ent.Desc(auditlog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}

	out := make([]AuditRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, AuditRow{
			UserID:     row.UserID,
			Action:     row.Action,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Before:     row.Before,
			After:      row.After,
			Timestamp:  row.Timestamp,
		})
	}
	return out, nil
}
