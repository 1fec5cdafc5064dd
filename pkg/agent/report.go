package agent

import (
	"context"

	"github.com/fleetops/dispatch/pkg/graph"
)

// reportResult is the success-path terminal: it folds the state the
// nodes produced into the structured final output the API returns.
func (a *Agent) reportResult(ctx context.Context, s graph.State) error {
	status := s.GetString(KeyStatus)
	if status == "" {
		if s.GetString(graph.KeyError) != "" {
			status = StatusFailed
		} else {
			status = StatusExecuted
		}
	}

	out := map[string]any{
		"action":             s.GetString(KeyAction),
		"status":             status,
		"message":            s.GetString(graph.KeyMessage),
		"needs_confirmation": s.GetBool(KeyNeedsConfirmation),
	}
	if e := s.GetString(graph.KeyError); e != "" {
		out["error"] = e
	}
	if t := s.GetString(KeyOutputType); t != "" {
		out["type"] = t
	}
	if s.Has(KeyData) {
		out["data"] = s[KeyData]
	}
	if s.Has(KeyOptions) {
		out["options"] = s[KeyOptions]
	}
	if s.Has(KeyMatches) {
		out["options"] = s[KeyMatches]
	}
	if c := s.GetMap(KeyConsequences); c != nil {
		out["consequences"] = c
	}
	if sid := s.GetString(KeySessionID); sid != "" {
		out["session_id"] = sid
	}
	if er := s.GetMap(KeyExecutionResult); er != nil {
		out["execution_result"] = er
	}
	if s.GetBool(KeyLLMDegraded) {
		out["degraded"] = true
	}

	if s.GetBool(KeyWizardActive) || s.GetBool(KeyWizardCompleted) || s.GetBool(KeyWizardCancelled) {
		wiz := map[string]any{
			"active":    s.GetBool(KeyWizardActive),
			"completed": s.GetBool(KeyWizardCompleted),
			"cancelled": s.GetBool(KeyWizardCancelled),
		}
		if s.GetBool(KeyWizardActive) {
			step, _ := s.GetInt(KeyWizardStep)
			total, _ := s.GetInt(KeyWizardStepsTotal)
			wiz["type"] = s.GetString(KeyWizardType)
			wiz["step"] = step
			wiz["steps_total"] = total
			wiz["question"] = s.GetString(KeyWizardQuestion)
			if h := s.GetString(KeyWizardHint); h != "" {
				wiz["hint"] = h
			}
		}
		out["wizard"] = wiz
	}

	s[graph.KeyFinalOutput] = out
	return nil
}

// fallbackNode is the crash-barrier terminal: whatever went wrong, the
// caller still receives a well-formed output with a safe message.
func (a *Agent) fallbackNode(ctx context.Context, s graph.State) error {
	errKind := s.GetString(graph.KeyError)
	if errKind == "" {
		errKind = "internal_error"
	}
	message := s.GetString(graph.KeyMessage)
	if message == "" {
		message = "Something went wrong while handling your request."
	}

	s[graph.KeyFinalOutput] = map[string]any{
		"action":             s.GetString(KeyAction),
		"status":             StatusFailed,
		"error":              errKind,
		"message":            message,
		"needs_confirmation": false,
	}
	return nil
}
