package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/services"
	"github.com/fleetops/dispatch/pkg/tools"
)

// HandleConfirm resolves a pending confirmation session. Both branches
// are idempotent: replaying the call on a settled session returns the
// stored outcome and never re-executes the mutation.
func (a *Agent) HandleConfirm(ctx context.Context, sessionID string, confirmed bool, userID int) (map[string]any, error) {
	response := map[string]any{"confirmed": confirmed}

	if !confirmed {
		session, replayed, err := a.sessions.CancelSession(ctx, sessionID, response)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return sessionErrorOutput(sessionID, tools.ErrKindSessionNotFound,
					"No session with that id exists."), nil
			}
			return nil, err
		}
		if replayed && session.Status != agentsession.StatusCancelled {
			return a.settledOutput(session), nil
		}
		return map[string]any{
			"action":             sessionAction(session),
			"status":             StatusCancelled,
			"message":            "Understood, no changes were made.",
			"needs_confirmation": false,
			"session_id":         session.ID,
		}, nil
	}

	session, replayed, err := a.sessions.ConfirmSession(ctx, sessionID, response)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return sessionErrorOutput(sessionID, tools.ErrKindSessionNotFound,
			"No session with that id exists."), nil
	case errors.Is(err, services.ErrSessionExpired):
		return sessionErrorOutput(sessionID, tools.ErrKindSessionNotPending,
			"That confirmation has expired. Please start over."), nil
	case err != nil:
		return nil, err
	}
	if replayed {
		return a.settledOutput(session), nil
	}

	output, execResult := a.executePending(ctx, session, userID)
	if _, err := a.sessions.CompleteSession(ctx, session.ID, execResult); err != nil {
		return nil, fmt.Errorf("failed to finalise session %s: %w", session.ID, err)
	}
	output["session_id"] = session.ID
	return output, nil
}

// executePending reconstructs the executor state from the stored
// snapshot and runs the dispatch table directly, outside the graph.
func (a *Agent) executePending(ctx context.Context, session *ent.AgentSession, userID int) (map[string]any, map[string]any) {
	pending := session.PendingAction

	state := graph.NewState(map[string]any{
		KeyAction:           pending[KeyAction],
		KeyUserID:           userID,
		KeyFromConfirmation: true,
	})
	if tripID, ok := paramInt(pending, KeyTripID); ok {
		state[KeyTripID] = tripID
	}
	if params, ok := pending["params"].(map[string]any); ok {
		state[KeyParsedParams] = params
	}

	if err := a.executeAction(ctx, state); err != nil {
		state[KeyStatus] = StatusFailed
		state[graph.KeyError] = tools.ErrKindInternal
		state[graph.KeyMessage] = "The confirmed action could not be executed."
		state[KeyExecutionResult] = map[string]any{"ok": false, "error": tools.ErrKindInternal}
	}

	_ = a.reportResult(ctx, state)
	output := state.GetMap(graph.KeyFinalOutput)
	execResult := state.GetMap(KeyExecutionResult)
	if execResult == nil {
		execResult = map[string]any{"ok": false}
	}
	return output, execResult
}

// settledOutput rebuilds the response for a session that already
// reached a terminal state.
func (a *Agent) settledOutput(session *ent.AgentSession) map[string]any {
	out := map[string]any{
		"action":             sessionAction(session),
		"needs_confirmation": false,
		"session_id":         session.ID,
	}
	switch session.Status {
	case agentsession.StatusDone:
		out["status"] = StatusExecuted
		out["execution_result"] = session.ExecutionResult
		if msg, ok := session.ExecutionResult["message"].(string); ok {
			out["message"] = msg
		} else {
			out["message"] = "This action was already executed."
		}
	case agentsession.StatusCancelled:
		out["status"] = StatusCancelled
		out["message"] = "This action was already cancelled. No changes were made."
	case agentsession.StatusExpired:
		out["status"] = StatusFailed
		out["error"] = tools.ErrKindSessionNotPending
		out["message"] = "That confirmation has expired. Please start over."
	default:
		out["status"] = StatusFailed
		out["error"] = tools.ErrKindSessionNotPending
		out["message"] = "This session is already being processed."
	}
	return out
}

func sessionAction(session *ent.AgentSession) string {
	if action, ok := session.PendingAction[KeyAction].(string); ok {
		return action
	}
	return ""
}

func sessionErrorOutput(sessionID, kind, message string) map[string]any {
	return map[string]any{
		"status":             StatusFailed,
		"error":              kind,
		"message":            message,
		"needs_confirmation": false,
		"session_id":         sessionID,
	}
}
