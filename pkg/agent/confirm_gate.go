package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/services"
)

// confirmationGate snapshots the pending action into the session store
// and asks the operator to confirm. The snapshot passes through the
// recursive normaliser before insert: a date that cannot serialise must
// fail here loudly, never by silently losing the session id.
func (a *Agent) confirmationGate(ctx context.Context, s graph.State) error {
	action := s.GetString(KeyAction)
	userID, _ := s.GetInt(KeyUserID)

	snapshot := map[string]any{
		KeyAction: action,
	}
	if tripID, ok := s.GetInt(KeyTripID); ok {
		snapshot[KeyTripID] = tripID
	}
	if params := s.GetMap(KeyParsedParams); params != nil {
		snapshot["params"] = params
	}
	if c := s.GetMap(KeyConsequences); c != nil {
		snapshot[KeyConsequences] = c
	}

	session, err := a.sessions.CreateSession(ctx, userID, services.NormalizeMap(snapshot), a.cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to store pending action: %w", err)
	}

	s[KeySessionID] = session.ID
	s[KeyNeedsConfirmation] = true
	s[KeyStatus] = StatusAwaitingConfirmation
	s[graph.KeyMessage] = confirmationMessage(s)
	return nil
}

func confirmationMessage(s graph.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are about to %s.", strings.ToLower(humanAction(s.GetString(KeyAction))))
	if warnings, ok := s[KeyWarnings].([]string); ok {
		for _, w := range warnings {
			b.WriteString(" ")
			b.WriteString(w)
		}
	}
	b.WriteString(" Confirm to proceed.")
	return b.String()
}
