// Package agent wires the processing nodes into the request graph and
// exposes the two entry points the HTTP layer calls: HandleMessage for
// conversational turns and HandleConfirm for the confirmation endpoint.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/graph"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/services"
	"github.com/fleetops/dispatch/pkg/tools"
	"github.com/fleetops/dispatch/pkg/wizard"
)

// Toolset is the tool layer surface the nodes consume. *tools.Registry
// implements it; tests substitute fakes.
type Toolset interface {
	GetTrip(ctx context.Context, tripID int) (*ent.Trip, error)
	GetTripStatus(ctx context.Context, tripID int) tools.Result
	GetBookings(ctx context.Context, tripID int) tools.Result
	GetConsequences(ctx context.Context, tripID int) (*tools.Consequences, error)
	CancelTrip(ctx context.Context, tripID, userID int) tools.Result
	CancelAllBookings(ctx context.Context, tripID, userID int) tools.Result
	UpdateTripTime(ctx context.Context, tripID int, newTime string, userID int) tools.Result
	CreateTrip(ctx context.Context, p tools.CreateTripParams, userID int) tools.Result
	DuplicateTrip(ctx context.Context, tripID int, newDate string, userID int) tools.Result
	ListTrips(ctx context.Context) tools.Result
	GetUnassignedTrips(ctx context.Context) tools.Result
	AssignVehicle(ctx context.Context, tripID, vehicleID int, override bool, userID int) tools.Result
	AssignDriver(ctx context.Context, tripID, driverID int, override bool, userID int) tools.Result
	AssignVehicleAndDriver(ctx context.Context, tripID, vehicleID, driverID int, override bool, userID int) tools.Result
	RemoveVehicle(ctx context.Context, tripID, userID int) tools.Result
	RemoveDriver(ctx context.Context, tripID, userID int) tools.Result
	AddVehicle(ctx context.Context, registration, vehicleType string, capacity, userID int) tools.Result
	AddDriver(ctx context.Context, name, phone string, userID int) tools.Result
	ListVehicles(ctx context.Context) tools.Result
	ListDrivers(ctx context.Context) tools.Result
	ListAvailableVehicles(ctx context.Context, tripID int) tools.Result
	ListAvailableDrivers(ctx context.Context, tripID int) tools.Result
	CreateStop(ctx context.Context, name string, lat, lng float64, userID int) tools.Result
	CreatePath(ctx context.Context, name string, stopIDs []int, userID int) tools.Result
	CreateRoute(ctx context.Context, name string, pathID int, direction, shiftTime string, userID int) tools.Result
	DeleteStop(ctx context.Context, stopID, userID int) tools.Result
	DeletePath(ctx context.Context, pathID, userID int) tools.Result
	DeleteRoute(ctx context.Context, routeID, userID int) tools.Result
	ListStops(ctx context.Context) tools.Result
	ListPaths(ctx context.Context) tools.Result
	ListRoutes(ctx context.Context) tools.Result
	IdentifyTripFromLabel(ctx context.Context, label string) ([]tools.TripMatch, error)
	SearchTripsByTime(ctx context.Context, hhmm string) ([]tools.TripMatch, error)
	TripExists(ctx context.Context, tripID int) (bool, error)
}

// IntentParser is the LLM client surface.
type IntentParser interface {
	Parse(ctx context.Context, text string, pctx llm.Context) *llm.Intent
}

// SessionStore is the session service surface.
type SessionStore interface {
	CreateSession(ctx context.Context, userID int, pendingAction map[string]any, ttl time.Duration) (*ent.AgentSession, error)
	GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error)
	ConfirmSession(ctx context.Context, sessionID string, userResponse map[string]any) (*ent.AgentSession, bool, error)
	CancelSession(ctx context.Context, sessionID string, userResponse map[string]any) (*ent.AgentSession, bool, error)
	CompleteSession(ctx context.Context, sessionID string, executionResult map[string]any) (*ent.AgentSession, error)
	SaveWizardState(ctx context.Context, sessionID string, state map[string]any) error
}

// Agent owns the request graph and its collaborators.
type Agent struct {
	graph    *graph.Graph
	tools    Toolset
	llm      IntentParser
	sessions SessionStore
	wizards  *wizard.Engine
	handlers map[string]handler
	cfg      *config.AgentConfig
}

// New builds the agent and its graph. It fails when the executor's
// dispatch table and the action registry have drifted apart.
func New(ts Toolset, parser IntentParser, sessions SessionStore, cfg *config.AgentConfig) (*Agent, error) {
	a := &Agent{
		tools:    ts,
		llm:      parser,
		sessions: sessions,
		wizards:  wizard.NewEngine(),
		cfg:      cfg,
	}

	if err := a.buildDispatchTable(); err != nil {
		return nil, err
	}

	goesTo := func(node string) func(graph.State) bool {
		return func(s graph.State) bool { return s.GetString(graph.KeyNextNode) == node }
	}

	g := graph.New(NodeParseIntent, cfg.MaxIterations).
		AddNode(NodeParseIntent, a.parseIntent).
		AddNode(NodeResolveTarget, a.resolveTarget).
		AddNode(NodeRouteDecision, a.routeDecision).
		AddNode(NodeAnalyzeConsequences, a.analyzeConsequences).
		AddNode(NodeConfirmationGate, a.confirmationGate).
		AddNode(NodeWizard, a.wizardNode).
		AddNode(NodeExecute, a.executeAction).
		AddNode(NodeSuggest, a.suggestNode).
		AddNode(NodeSelection, a.selectionNode).
		AddNode(NodeOfferCreation, a.offerCreationNode).
		AddTerminal(NodeReportResult, a.reportResult).
		AddTerminal(NodeFallback, a.fallbackNode).
		SetFallback(NodeFallback).
		AddEdge(NodeParseIntent, NodeWizard, goesTo(NodeWizard)).
		AddEdge(NodeParseIntent, NodeResolveTarget, nil).
		AddEdge(NodeResolveTarget, NodeRouteDecision, nil).
		AddEdge(NodeRouteDecision, NodeWizard, goesTo(NodeWizard)).
		AddEdge(NodeRouteDecision, NodeSuggest, goesTo(NodeSuggest)).
		AddEdge(NodeRouteDecision, NodeSelection, goesTo(NodeSelection)).
		AddEdge(NodeRouteDecision, NodeOfferCreation, goesTo(NodeOfferCreation)).
		AddEdge(NodeRouteDecision, NodeExecute, goesTo(NodeExecute)).
		AddEdge(NodeRouteDecision, NodeAnalyzeConsequences, goesTo(NodeAnalyzeConsequences)).
		AddEdge(NodeRouteDecision, NodeReportResult, nil).
		AddEdge(NodeAnalyzeConsequences, NodeConfirmationGate, func(s graph.State) bool {
			return s.GetBool(KeyNeedsConfirmation)
		}).
		AddEdge(NodeAnalyzeConsequences, NodeExecute, nil).
		AddEdge(NodeConfirmationGate, NodeReportResult, nil).
		AddEdge(NodeWizard, NodeReportResult, nil).
		AddEdge(NodeExecute, NodeReportResult, nil).
		AddEdge(NodeSuggest, NodeReportResult, nil).
		AddEdge(NodeSelection, NodeReportResult, nil).
		AddEdge(NodeOfferCreation, NodeReportResult, nil)

	built, err := g.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build agent graph: %w", err)
	}
	a.graph = built
	return a, nil
}

// MessageRequest is one conversational turn.
type MessageRequest struct {
	Text             string
	UserID           int
	SessionID        string
	SelectedEntityID *int
	CurrentPage      string
	FromImage        bool
}

// HandleMessage runs one turn through the graph and persists wizard
// state across requests.
func (a *Agent) HandleMessage(ctx context.Context, req MessageRequest) (map[string]any, error) {
	input := map[string]any{
		KeyText:        req.Text,
		KeyUserID:      req.UserID,
		KeyCurrentPage: req.CurrentPage,
		KeyFromImage:   req.FromImage,
	}
	if req.SelectedEntityID != nil {
		input[KeySelectedEntityID] = *req.SelectedEntityID
	}
	if req.SessionID != "" {
		input[KeySessionID] = req.SessionID
		if err := a.loadWizardSession(ctx, req.SessionID, input); err != nil {
			return nil, err
		}
	}

	state := a.graph.Run(ctx, input)
	if err := a.persistWizardState(ctx, req, state); err != nil {
		slog.Error("Failed to persist wizard state", "error", err)
	}

	output := state.GetMap(graph.KeyFinalOutput)
	if output == nil {
		// The runtime guarantees a final output; this is belt and braces.
		output = map[string]any{
			KeyStatus: StatusFailed,
			"error":   "internal_error",
			"message": "The request could not be completed.",
		}
	}
	if sid := state.GetString(KeySessionID); sid != "" {
		output[KeySessionID] = sid
	}
	return output, nil
}

// loadWizardSession copies persisted wizard state into the request
// input when the referenced session carries one.
func (a *Agent) loadWizardSession(ctx context.Context, sessionID string, input map[string]any) error {
	session, err := a.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if session.Status != agentsession.StatusPending {
		return nil
	}
	ws, ok := wizard.StateFromMap(session.PendingAction)
	if !ok {
		return nil
	}
	input[KeyWizardActive] = true
	input[KeyWizardType] = ws.FlowType
	input[KeyWizardStep] = ws.Step
	input[KeyWizardData] = ws.Answers
	return nil
}

// persistWizardState stores wizard progress at end of turn, creating
// the session row on the wizard's first step.
func (a *Agent) persistWizardState(ctx context.Context, req MessageRequest, state graph.State) error {
	if !state.GetBool(KeyWizardActive) {
		return a.settleWizardSession(ctx, req.SessionID, state)
	}

	step, _ := state.GetInt(KeyWizardStep)
	ws := wizard.State{
		FlowType: state.GetString(KeyWizardType),
		Step:     step,
		Answers:  state.GetMap(KeyWizardData),
	}
	if ws.FlowType == "" {
		return nil
	}

	if req.SessionID != "" {
		if err := a.sessions.SaveWizardState(ctx, req.SessionID, ws.ToMap()); err == nil {
			state[KeySessionID] = req.SessionID
			return nil
		} else if !errors.Is(err, services.ErrNotFound) && !errors.Is(err, services.ErrSessionNotPending) {
			return err
		}
	}

	session, err := a.sessions.CreateSession(ctx, req.UserID, ws.ToMap(), a.cfg.SessionTTL)
	if err != nil {
		return err
	}
	state[KeySessionID] = session.ID
	return nil
}

// settleWizardSession closes the backing session of a wizard that just
// completed or was cancelled.
func (a *Agent) settleWizardSession(ctx context.Context, sessionID string, state graph.State) error {
	if sessionID == "" {
		return nil
	}
	switch {
	case state.GetBool(KeyWizardCancelled):
		_, _, err := a.sessions.CancelSession(ctx, sessionID, map[string]any{"wizard_cancelled": true})
		return err
	case state.GetBool(KeyWizardCompleted):
		if _, _, err := a.sessions.ConfirmSession(ctx, sessionID, map[string]any{"wizard_completed": true}); err != nil {
			return err
		}
		_, err := a.sessions.CompleteSession(ctx, sessionID, state.GetMap(KeyExecutionResult))
		return err
	}
	return nil
}
