package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fleetops/dispatch/pkg/actions"
)

// systemPrompt instructs the model to answer with a single JSON object
// matching the Intent shape, choosing the action from the closed
// registry. Built once at init from the registry so prompt and code
// cannot drift.
var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	names := actions.All()
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(`You translate transport-operations commands into a single JSON object:
{"action": "...", "target_label": "...", "target_entity_id": null, "target_time": "...", "parameters": {}, "confidence": 0.0, "clarify": false, "clarify_options": [], "explanation": "..."}

Rules:
- "action" MUST be one of the allowed actions listed below. Use "unknown" if none fits.
- "confidence" is between 0 and 1. Below 0.6, set "clarify": true and give concrete "clarify_options".
- NEVER invent entity ids. Leave "target_entity_id" null unless the user states a numeric id.
- "target_time" is a HH:MM time mentioned as the trip's time, if any.
- "target_label" is the trip name or label the user referred to, if any.
- Answer with the JSON object only. No prose, no markdown.

Allowed actions:
`)
	for _, name := range names {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteByte('\n')
	}

	b.WriteString(`
Examples:
User: remove the vehicle from Path-3 - 07:30
{"action": "remove_vehicle", "target_label": "Path-3 - 07:30", "confidence": 0.92}

User: assign a bus to trip 42
{"action": "assign_vehicle", "target_entity_id": 42, "confidence": 0.9}

User: move the 7:30 trip to 8:15
{"action": "update_trip_time", "target_time": "07:30", "parameters": {"new_time": "08:15"}, "confidence": 0.85}

User: what can you do
{"action": "help", "confidence": 0.95}
`)
	return b.String()
}

// buildUserPrompt folds the page and selection context into the user
// message. Compact recent history gives the model continuity for
// follow-up phrasing ("do the same for the next one").
func buildUserPrompt(text string, pctx Context) string {
	var b strings.Builder
	if pctx.CurrentPage != "" {
		fmt.Fprintf(&b, "Current page: %s\n", pctx.CurrentPage)
	}
	if pctx.SelectedEntityID != nil {
		fmt.Fprintf(&b, "Selected trip id: %d\n", *pctx.SelectedEntityID)
	}
	if len(pctx.RecentHistory) > 0 {
		b.WriteString("Recent messages:\n")
		for _, h := range pctx.RecentHistory {
			fmt.Fprintf(&b, "  %s\n", h)
		}
	}
	fmt.Fprintf(&b, "User: %s", text)
	return b.String()
}
