package agent

import (
	"context"
	"strings"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/llm"
)

// contextualRefs are phrases that point at the UI's selected entity.
var contextualRefs = []string{"this trip", "this one", "it", "here", "the selected"}

// parseIntent classifies the turn. Four paths in fixed order: wizard
// continuation, structured command, context shortcut, LLM parse. After
// this node the action key is always set, possibly to unknown.
func (a *Agent) parseIntent(ctx context.Context, s graph.State) error {
	text := s.GetString(KeyText)

	// 1. Wizard continuation: the whole turn is the answer to the
	// current wizard step.
	if s.GetBool(KeyWizardActive) {
		s[KeyAction] = actions.WizardStepInput
		s[KeySource] = SourceWizard
		s[graph.KeyNextNode] = NodeWizard
		return nil
	}

	// 2. Structured command from a UI button: trusted, bypasses the LLM.
	if cmd, ok := ParseStructuredCommand(text); ok {
		s[KeyAction] = cmd.Action
		s[KeySource] = SourceStructured
		s[KeyParsedParams] = cmd.Params
		s[KeyFromSelectionUI] = cmd.FromSelectionUI
		s[KeyConfidence] = 1.0
		if id, ok := cmd.Params["trip_id"].(int); ok {
			s[KeyTargetEntityID] = id
		}
		return nil
	}

	// 3. Context shortcut: selected entity plus a contextual reference
	// and a recognisable action keyword skips the LLM round trip.
	if selected, ok := s.GetInt(KeySelectedEntityID); ok {
		if hasContextualRef(text) {
			if intent := llm.ParseFallback(text); intent.Action != actions.Unknown {
				s[KeyAction] = intent.Action
				s[KeySource] = SourceShortcut
				s[KeyTargetEntityID] = selected
				s[KeyConfidence] = 0.95
				if intent.TargetTime != "" {
					s[KeyTargetTime] = intent.TargetTime
				}
				return nil
			}
		}
	}

	// 4. LLM parse.
	pctx := llm.Context{CurrentPage: s.GetString(KeyCurrentPage)}
	if selected, ok := s.GetInt(KeySelectedEntityID); ok {
		pctx.SelectedEntityID = &selected
	}
	intent := a.llm.Parse(ctx, text, pctx)

	s[KeyAction] = intent.Action
	s[KeySource] = SourceLLM
	s[KeyConfidence] = intent.Confidence
	if intent.TargetLabel != "" {
		s[KeyTargetLabel] = intent.TargetLabel
	}
	if intent.TargetTime != "" {
		s[KeyTargetTime] = intent.TargetTime
	}
	if intent.Parameters != nil {
		s[KeyParsedParams] = intent.Parameters
	}
	if intent.Clarify {
		s[KeyNeedsClarification] = true
		s[KeyClarifyOptions] = intent.ClarifyOptions
	}
	if intent.Degraded {
		s[KeyLLMDegraded] = true
	}

	// The UI selection is always more reliable than a model-suggested id.
	if selected, ok := s.GetInt(KeySelectedEntityID); ok {
		s[KeyTargetEntityID] = selected
	} else if intent.TargetEntityID != nil {
		s[KeyTargetEntityID] = *intent.TargetEntityID
	}
	return nil
}

func hasContextualRef(text string) bool {
	lower := strings.ToLower(text)
	for _, ref := range contextualRefs {
		if ref == "it" {
			// Match "it" only as a whole word.
			for _, w := range strings.Fields(lower) {
				if strings.Trim(w, ".,!?") == "it" {
					return true
				}
			}
			continue
		}
		if strings.Contains(lower, ref) {
			return true
		}
	}
	return false
}
