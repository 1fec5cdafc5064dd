package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/google/uuid"
)

// SessionService manages the confirmation session lifecycle. A session
// is created when a risky action awaits operator confirmation and moves
// through pending -> confirmed -> done, or terminates as cancelled or
// expired. Terminal states never transition again; a replayed confirm
// or cancel returns the stored outcome instead of re-running anything.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession stores a pending action snapshot and returns the new
// session. The snapshot passes through NormalizeForStorage so the
// insert cannot fail on a value JSON does not know.
func (s *SessionService) CreateSession(httpCtx context.Context, userID int, pendingAction map[string]any, ttl time.Duration) (*ent.AgentSession, error) {
	if len(pendingAction) == 0 {
		return nil, NewValidationError("pending_action", "required")
	}
	if ttl <= 0 {
		return nil, NewValidationError("ttl", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	session, err := s.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetPendingAction(NormalizeMap(pendingAction)).
		SetStatus(agentsession.StatusPending).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		SetExpiresAt(now.Add(ttl)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ConfirmSession transitions pending -> confirmed. The transition is a
// conditional update so two concurrent confirms cannot both win. The
// returned replayed flag is true when the session had already left
// pending: the caller must surface the stored outcome, not execute again.
func (s *SessionService) ConfirmSession(httpCtx context.Context, sessionID string, userResponse map[string]any) (session *ent.AgentSession, replayed bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusEQ(agentsession.StatusPending),
			agentsession.ExpiresAtGT(now),
		).
		SetStatus(agentsession.StatusConfirmed).
		SetUpdatedAt(now)
	if userResponse != nil {
		update.SetUserResponse(NormalizeMap(userResponse))
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to confirm session: %w", err)
	}

	session, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if count > 0 {
		return session, false, nil
	}

	// The conditional update matched nothing: expired, or already past
	// pending.
	if session.Status == agentsession.StatusPending {
		if session, err = s.markExpired(ctx, sessionID); err != nil {
			return nil, false, err
		}
		return session, false, ErrSessionExpired
	}
	return session, true, nil
}

// CancelSession transitions pending -> cancelled. A replayed cancel of
// an already-cancelled session is a no-op, not an error.
func (s *SessionService) CancelSession(httpCtx context.Context, sessionID string, userResponse map[string]any) (session *ent.AgentSession, replayed bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	update := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusEQ(agentsession.StatusPending),
		).
		SetStatus(agentsession.StatusCancelled).
		SetUpdatedAt(now)
	if userResponse != nil {
		update.SetUserResponse(NormalizeMap(userResponse))
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to cancel session: %w", err)
	}

	session, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	return session, count == 0, nil
}

// CompleteSession transitions confirmed -> done and stores the execution
// result so later replays can return it.
func (s *SessionService) CompleteSession(httpCtx context.Context, sessionID string, executionResult map[string]any) (*ent.AgentSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusEQ(agentsession.StatusConfirmed),
		).
		SetStatus(agentsession.StatusDone).
		SetExecutionResult(NormalizeMap(executionResult)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	if count == 0 {
		session, gerr := s.GetSession(ctx, sessionID)
		if gerr != nil {
			return nil, gerr
		}
		if session.Status == agentsession.StatusDone {
			return session, nil
		}
		return nil, ErrSessionNotPending
	}

	return s.GetSession(ctx, sessionID)
}

// SaveWizardState replaces the pending action snapshot of a pending
// session. Wizard sessions keep their collected answers here between
// turns.
func (s *SessionService) SaveWizardState(httpCtx context.Context, sessionID string, state map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusEQ(agentsession.StatusPending),
		).
		SetPendingAction(NormalizeMap(state)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save wizard state: %w", err)
	}
	if count == 0 {
		if _, gerr := s.GetSession(ctx, sessionID); gerr != nil {
			return gerr
		}
		return ErrSessionNotPending
	}
	return nil
}

// LatestPendingForUser returns the user's most recent pending,
// unexpired session, or nil when none exists. The agent uses this to
// pick up an in-flight wizard or confirmation on the next message.
func (s *SessionService) LatestPendingForUser(ctx context.Context, userID int) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(
			agentsession.UserIDEQ(userID),
			agentsession.StatusEQ(agentsession.StatusPending),
			agentsession.ExpiresAtGT(time.Now()),
		).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions newest-first with optional status filter
// and pagination.
func (s *SessionService) ListSessions(ctx context.Context, status string, limit, offset int) ([]*ent.AgentSession, int, error) {
	query := s.client.AgentSession.Query()
	if status != "" {
		query = query.Where(agentsession.StatusEQ(agentsession.Status(status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, totalCount, nil
}

// SweepExpired flips every pending session past its TTL to expired and
// returns how many rows changed. Run periodically; also safe to call
// from tests.
func (s *SessionService) SweepExpired(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.StatusEQ(agentsession.StatusPending),
			agentsession.ExpiresAtLTE(now),
		).
		SetStatus(agentsession.StatusExpired).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}
	return count, nil
}

// PurgeSettled hard-deletes terminal sessions whose last update is older
// than the retention window. Pending and confirmed sessions are never
// touched.
func (s *SessionService) PurgeSettled(httpCtx context.Context, olderThan time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-olderThan)
	count, err := s.client.AgentSession.Delete().
		Where(
			agentsession.StatusIn(
				agentsession.StatusDone,
				agentsession.StatusCancelled,
				agentsession.StatusExpired,
			),
			agentsession.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge settled sessions: %w", err)
	}
	return count, nil
}

func (s *SessionService) markExpired(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	now := time.Now()
	_, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusEQ(agentsession.StatusPending),
		).
		SetStatus(agentsession.StatusExpired).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire session: %w", err)
	}
	return s.GetSession(ctx, sessionID)
}
