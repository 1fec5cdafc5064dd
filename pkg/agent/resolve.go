package agent

import (
	"context"
	"time"

	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/tools"
)

// resolveTarget turns whatever target signals the parser produced into
// one verified trip id. Priorities are strict: the first signal that
// verifies wins and everything below is skipped.
func (a *Agent) resolveTarget(ctx context.Context, s graph.State) error {
	// OCR path, unless the text classified as a structured command: an
	// explicit command outranks the image origin. A pre-matched
	// selected_entity_id is checked for eligibility with distinguished
	// errors so the router can say why, not just "not found"; otherwise
	// the recognised text itself is matched against trip labels.
	if s.GetBool(KeyFromImage) && s.GetString(KeySource) != SourceStructured {
		if id, ok := s.GetInt(KeySelectedEntityID); ok {
			tr, err := a.tools.GetTrip(ctx, id)
			if err != nil {
				return err
			}
			if tr != nil {
				if tr.LiveStatus == trip.LiveStatusCANCELLED {
					s[KeyResolveResult] = ResolveNone
					s[graph.KeyError] = tools.ErrKindTripCancelled
					s[graph.KeyMessage] = "That trip has been cancelled."
					return nil
				}
				if tr.TripDate.Before(todayMidnight()) {
					s[KeyResolveResult] = ResolveNone
					s[graph.KeyError] = tools.ErrKindTripPast
					s[graph.KeyMessage] = "That trip has already run."
					return nil
				}
				s[KeyTripID] = id
				s[KeyResolveResult] = ResolveFound
				return nil
			}
		}
		if text := s.GetString(KeyText); text != "" {
			matches, err := a.tools.IdentifyTripFromLabel(ctx, text)
			if err != nil {
				return err
			}
			if a.collapseMatches(s, matches) {
				return nil
			}
			if id, ok := llm.ExtractTripID(text); ok {
				exists, err := a.tools.TripExists(ctx, id)
				if err != nil {
					return err
				}
				if exists {
					s[KeyTripID] = id
					s[KeyResolveResult] = ResolveFound
					return nil
				}
			}
		}
		s[KeyResolveResult] = ResolveNone
		return nil
	}

	action := s.GetString(KeyAction)
	if !actions.NeedsTarget(action) {
		s[KeyResolveResult] = ResolveSkipped
		return nil
	}

	// 1. Structured command: authoritative, cheap existence check only.
	if s.GetString(KeySource) == SourceStructured {
		if id, ok := s.GetInt(KeyTargetEntityID); ok {
			exists, err := a.tools.TripExists(ctx, id)
			if err != nil {
				return err
			}
			if exists {
				s[KeyTripID] = id
				s[KeyResolveResult] = ResolveFound
				return nil
			}
		}
		s[KeyResolveResult] = ResolveNone
		return nil
	}

	// 2. Numeric id from the parser. A hallucinated id falls through to
	// the lower priorities instead of surfacing as an error.
	if id, ok := s.GetInt(KeyTargetEntityID); ok {
		exists, err := a.tools.TripExists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			s[KeyTripID] = id
			s[KeyResolveResult] = ResolveFound
			return nil
		}
	}

	// 3. Departure time.
	if tt := s.GetString(KeyTargetTime); tt != "" {
		matches, err := a.tools.SearchTripsByTime(ctx, tt)
		if err == nil && a.collapseMatches(s, matches) {
			return nil
		}
	}

	// 4. Display label.
	if label := s.GetString(KeyTargetLabel); label != "" {
		matches, err := a.tools.IdentifyTripFromLabel(ctx, label)
		if err != nil {
			return err
		}
		if a.collapseMatches(s, matches) {
			return nil
		}
	}

	// 5. Regex over the raw text as a last resort.
	if id, ok := llm.ExtractTripID(s.GetString(KeyText)); ok {
		exists, err := a.tools.TripExists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			s[KeyTripID] = id
			s[KeyResolveResult] = ResolveFound
			return nil
		}
	}

	s[KeyResolveResult] = ResolveNone
	return nil
}

func todayMidnight() time.Time {
	now := time.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// collapseMatches applies the shared collapse rules: one match wins,
// several become a clarification, zero means keep looking.
func (a *Agent) collapseMatches(s graph.State, matches []tools.TripMatch) bool {
	switch len(matches) {
	case 0:
		return false
	case 1:
		s[KeyTripID] = matches[0].TripID
		s[KeyResolveResult] = ResolveFound
		return true
	default:
		rows := make([]map[string]any, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, map[string]any{
				"trip_id":        m.TripID,
				"display_name":   m.DisplayName,
				"trip_date":      m.TripDate,
				"scheduled_time": m.Time,
			})
		}
		s[KeyMatches] = rows
		s[KeyResolveResult] = ResolveMultiple
		return true
	}
}
