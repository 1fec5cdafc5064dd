package agent

import (
	"context"
	"fmt"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
)

// analyzeConsequences computes the impact of a risky action and decides
// whether a confirmation gate is required. Every warning corresponds to
// a computed fact; nothing is fabricated.
func (a *Agent) analyzeConsequences(ctx context.Context, s graph.State) error {
	action := s.GetString(KeyAction)

	// Deletions and other targetless risky actions have no trip to
	// inspect; only the always-confirm rule applies.
	if !actions.NeedsTarget(action) {
		needs := actions.AlwaysConfirm(action)
		if needs {
			s[KeyWarnings] = []string{fmt.Sprintf("%s cannot be undone.", humanAction(action))}
		}
		s[KeyNeedsConfirmation] = needs
		return nil
	}

	tripID, ok := s.GetInt(KeyTripID)
	if !ok {
		return fmt.Errorf("consequence analysis without a resolved trip for %q", action)
	}

	c, err := a.tools.GetConsequences(ctx, tripID)
	if err != nil {
		return err
	}

	s[KeyConsequences] = map[string]any{
		"booking_count":      c.BookingCount,
		"booking_percentage": c.BookingPercentage,
		"has_deployment":     c.HasDeployment,
		"live_status":        c.LiveStatus,
	}

	var warnings []string
	needs := false

	if c.BookingCount > 0 {
		needs = true
		warnings = append(warnings, fmt.Sprintf("This trip has %d confirmed bookings (%.0f%% of capacity).",
			c.BookingCount, c.BookingPercentage*100))
	}
	if c.LiveStatus == "IN_PROGRESS" {
		needs = true
		warnings = append(warnings, "This trip is currently in progress.")
	}
	if action == actions.AssignVehicle && c.HasDeployment {
		needs = true
		warnings = append(warnings, "This trip already has a vehicle assigned; confirming will replace it.")
	}
	if actions.AlwaysConfirm(action) {
		needs = true
		warnings = append(warnings, fmt.Sprintf("%s cannot be undone.", humanAction(action)))
	}

	s[KeyWarnings] = warnings
	s[KeyNeedsConfirmation] = needs
	return nil
}
