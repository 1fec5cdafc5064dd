package agent

import (
	"context"
	"fmt"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/tools"
)

// routeDecision is the single point of policy. Checks run in a fixed
// order; the first that fires decides next_node.
func (a *Agent) routeDecision(ctx context.Context, s graph.State) error {
	action := s.GetString(KeyAction)
	page := s.GetString(KeyCurrentPage)

	// 1. Page context. Defence in depth against UIs that fail to hide
	// buttons.
	if !actions.AllowedOnPage(action, page) {
		s[graph.KeyError] = tools.ErrKindPageMismatch
		s[graph.KeyMessage] = pageMismatchMessage(action, page)
		s[graph.KeyNextNode] = NodeReportResult
		return nil
	}

	// 2. Wizard in flight.
	if s.GetBool(KeyWizardActive) {
		s[graph.KeyNextNode] = NodeWizard
		return nil
	}

	// 3. Wizard entry.
	if actions.WizardType(action) != "" {
		s[graph.KeyNextNode] = NodeWizard
		return nil
	}

	// 4/5. OCR triage: a match gets contextual suggestions, a miss gets
	// the offer to create the trip.
	if s.GetBool(KeyFromImage) {
		switch s.GetString(KeyResolveResult) {
		case ResolveFound:
			s[graph.KeyNextNode] = NodeSuggest
			return nil
		case ResolveNone:
			s[graph.KeyNextNode] = NodeOfferCreation
			return nil
		}
	}

	// 6. Ambiguity becomes a clarification answer.
	if s.GetString(KeyResolveResult) == ResolveMultiple {
		s[KeyStatus] = StatusClarification
		s[graph.KeyError] = tools.ErrKindAmbiguousTarget
		s[graph.KeyMessage] = "I found several matching trips. Which one did you mean?"
		s[graph.KeyNextNode] = NodeReportResult
		return nil
	}

	// Unresolved target for an action that needs one.
	if actions.NeedsTarget(action) && s.GetString(KeyResolveResult) != ResolveFound {
		if s.GetString(graph.KeyError) == "" {
			s[graph.KeyError] = tools.ErrKindTargetNotFound
			s[graph.KeyMessage] = "I could not find a matching trip. Try the trip id or its exact name."
		}
		s[graph.KeyNextNode] = NodeReportResult
		return nil
	}

	if action == actions.Unknown {
		s[graph.KeyError] = tools.ErrKindUnknownAction
		s[graph.KeyMessage] = "I did not understand that. Try rephrasing, or say help for what I can do."
		s[graph.KeyNextNode] = NodeReportResult
		return nil
	}

	// 7. Assignment without the entity id goes to the picker.
	if kind := actions.SelectionKind(action); kind != "" && !a.hasSelectionID(s, action) {
		s[graph.KeyNextNode] = NodeSelection
		return nil
	}

	// 8. Safe actions execute directly.
	if actions.IsSafe(action) {
		s[graph.KeyNextNode] = NodeExecute
		return nil
	}

	// 9. Everything else is risky and gets its consequences computed.
	s[graph.KeyNextNode] = NodeAnalyzeConsequences
	return nil
}

// hasSelectionID reports whether the params already carry the id the
// assignment needs.
func (a *Agent) hasSelectionID(s graph.State, action string) bool {
	params := s.GetMap(KeyParsedParams)
	has := func(key string) bool {
		if params == nil {
			return false
		}
		switch v := params[key].(type) {
		case int:
			return v > 0
		case float64:
			return v > 0
		}
		return false
	}
	switch actions.SelectionKind(action) {
	case "vehicle":
		if action == actions.AssignVehicleAndDriver {
			return has("vehicle_id") && has("driver_id")
		}
		return has("vehicle_id")
	case "driver":
		return has("driver_id")
	}
	return true
}

func pageMismatchMessage(action, page string) string {
	if page == actions.PageConfig {
		return fmt.Sprintf("%s is a trip operation. Switch to the trip operations page to do that.", humanAction(action))
	}
	return fmt.Sprintf("%s is a configuration change. Switch to the configuration page to do that.", humanAction(action))
}
