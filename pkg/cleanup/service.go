// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/services"
)

// Service periodically enforces retention policies:
//   - Flips pending confirmation sessions past their TTL to expired
//   - Hard-deletes settled sessions older than the retention window
//   - Prunes audit records past their retention window
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	db             *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, sessionService *services.SessionService, db *ent.Client) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		db:             db,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"audit_retention_days", s.config.AuditRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepExpiredSessions(ctx)
	s.purgeSettledSessions(ctx)
	s.pruneAuditRecords(ctx)
}

func (s *Service) sweepExpiredSessions(ctx context.Context) {
	count, err := s.sessionService.SweepExpired(ctx)
	if err != nil {
		slog.Error("Retention: session expiry sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired pending sessions", "count", count)
	}
}

func (s *Service) purgeSettledSessions(ctx context.Context) {
	retention := time.Duration(s.config.SessionRetentionDays) * 24 * time.Hour
	count, err := s.sessionService.PurgeSettled(ctx, retention)
	if err != nil {
		slog.Error("Retention: settled session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged settled sessions", "count", count)
	}
}

func (s *Service) pruneAuditRecords(_ context.Context) {
	count, err := s.PruneAuditRecords(context.Background(), s.config.AuditRetentionDays)
	if err != nil {
		slog.Error("Retention: audit prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned audit records", "count", count)
	}
}

// PruneAuditRecords deletes audit rows older than retentionDays and
// returns how many rows were removed.
func (s *Service) PruneAuditRecords(httpCtx context.Context, retentionDays int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	count, err := s.db.AuditLog.Delete().
		Where(auditlog.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit records: %w", err)
	}
	return count, nil
}
