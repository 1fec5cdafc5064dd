package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/dispatch/ent"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/services"
	"github.com/fleetops/dispatch/pkg/tools"
)

// fakeToolset is an in-memory Toolset. Canned results are keyed by
// method name; unset methods succeed with an empty result. Every call is
// recorded so tests can assert on dispatch order and short-circuits.
type fakeToolset struct {
	trips        map[int]*ent.Trip
	consequences map[int]*tools.Consequences
	byLabel      map[string][]tools.TripMatch
	byTime       map[string][]tools.TripMatch
	vehiclesFree []tools.VehicleRow
	driversFree  []tools.DriverRow
	results      map[string]tools.Result
	errs         map[string]error
	calls        []string
}

func newFakeToolset() *fakeToolset {
	return &fakeToolset{
		trips:        map[int]*ent.Trip{},
		consequences: map[int]*tools.Consequences{},
		byLabel:      map[string][]tools.TripMatch{},
		byTime:       map[string][]tools.TripMatch{},
		results:      map[string]tools.Result{},
		errs:         map[string]error{},
	}
}

func (f *fakeToolset) called(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeToolset) canned(name string) tools.Result {
	f.calls = append(f.calls, name)
	if r, ok := f.results[name]; ok {
		return r
	}
	return tools.Result{OK: true, Message: name + " done"}
}

func (f *fakeToolset) GetTrip(ctx context.Context, tripID int) (*ent.Trip, error) {
	f.calls = append(f.calls, "GetTrip")
	if err := f.errs["GetTrip"]; err != nil {
		return nil, err
	}
	return f.trips[tripID], nil
}

func (f *fakeToolset) GetConsequences(ctx context.Context, tripID int) (*tools.Consequences, error) {
	f.calls = append(f.calls, "GetConsequences")
	if err := f.errs["GetConsequences"]; err != nil {
		return nil, err
	}
	if c, ok := f.consequences[tripID]; ok {
		return c, nil
	}
	return &tools.Consequences{LiveStatus: "SCHEDULED"}, nil
}

func (f *fakeToolset) TripExists(ctx context.Context, tripID int) (bool, error) {
	f.calls = append(f.calls, "TripExists")
	_, ok := f.trips[tripID]
	return ok, nil
}

func (f *fakeToolset) IdentifyTripFromLabel(ctx context.Context, label string) ([]tools.TripMatch, error) {
	f.calls = append(f.calls, "IdentifyTripFromLabel")
	return f.byLabel[label], nil
}

func (f *fakeToolset) SearchTripsByTime(ctx context.Context, hhmm string) ([]tools.TripMatch, error) {
	f.calls = append(f.calls, "SearchTripsByTime")
	return f.byTime[hhmm], nil
}

func (f *fakeToolset) ListAvailableVehicles(ctx context.Context, tripID int) tools.Result {
	f.calls = append(f.calls, "ListAvailableVehicles")
	if r, ok := f.results["ListAvailableVehicles"]; ok {
		return r
	}
	return tools.Result{OK: true, Data: f.vehiclesFree}
}

func (f *fakeToolset) ListAvailableDrivers(ctx context.Context, tripID int) tools.Result {
	f.calls = append(f.calls, "ListAvailableDrivers")
	if r, ok := f.results["ListAvailableDrivers"]; ok {
		return r
	}
	return tools.Result{OK: true, Data: f.driversFree}
}

func (f *fakeToolset) GetTripStatus(ctx context.Context, tripID int) tools.Result {
	return f.canned("GetTripStatus")
}

func (f *fakeToolset) GetBookings(ctx context.Context, tripID int) tools.Result {
	return f.canned("GetBookings")
}

func (f *fakeToolset) CancelTrip(ctx context.Context, tripID, userID int) tools.Result {
	return f.canned("CancelTrip")
}

func (f *fakeToolset) CancelAllBookings(ctx context.Context, tripID, userID int) tools.Result {
	return f.canned("CancelAllBookings")
}

func (f *fakeToolset) UpdateTripTime(ctx context.Context, tripID int, newTime string, userID int) tools.Result {
	return f.canned("UpdateTripTime")
}

func (f *fakeToolset) CreateTrip(ctx context.Context, p tools.CreateTripParams, userID int) tools.Result {
	return f.canned("CreateTrip")
}

func (f *fakeToolset) DuplicateTrip(ctx context.Context, tripID int, newDate string, userID int) tools.Result {
	return f.canned("DuplicateTrip")
}

func (f *fakeToolset) ListTrips(ctx context.Context) tools.Result {
	return f.canned("ListTrips")
}

func (f *fakeToolset) GetUnassignedTrips(ctx context.Context) tools.Result {
	return f.canned("GetUnassignedTrips")
}

func (f *fakeToolset) AssignVehicle(ctx context.Context, tripID, vehicleID int, override bool, userID int) tools.Result {
	return f.canned("AssignVehicle")
}

func (f *fakeToolset) AssignDriver(ctx context.Context, tripID, driverID int, override bool, userID int) tools.Result {
	return f.canned("AssignDriver")
}

func (f *fakeToolset) AssignVehicleAndDriver(ctx context.Context, tripID, vehicleID, driverID int, override bool, userID int) tools.Result {
	return f.canned("AssignVehicleAndDriver")
}

func (f *fakeToolset) RemoveVehicle(ctx context.Context, tripID, userID int) tools.Result {
	return f.canned("RemoveVehicle")
}

func (f *fakeToolset) RemoveDriver(ctx context.Context, tripID, userID int) tools.Result {
	return f.canned("RemoveDriver")
}

func (f *fakeToolset) AddVehicle(ctx context.Context, registration, vehicleType string, capacity, userID int) tools.Result {
	return f.canned("AddVehicle")
}

func (f *fakeToolset) AddDriver(ctx context.Context, name, phone string, userID int) tools.Result {
	return f.canned("AddDriver")
}

func (f *fakeToolset) ListVehicles(ctx context.Context) tools.Result {
	return f.canned("ListVehicles")
}

func (f *fakeToolset) ListDrivers(ctx context.Context) tools.Result {
	return f.canned("ListDrivers")
}

func (f *fakeToolset) CreateStop(ctx context.Context, name string, lat, lng float64, userID int) tools.Result {
	return f.canned("CreateStop")
}

func (f *fakeToolset) CreatePath(ctx context.Context, name string, stopIDs []int, userID int) tools.Result {
	return f.canned("CreatePath")
}

func (f *fakeToolset) CreateRoute(ctx context.Context, name string, pathID int, direction, shiftTime string, userID int) tools.Result {
	return f.canned("CreateRoute")
}

func (f *fakeToolset) DeleteStop(ctx context.Context, stopID, userID int) tools.Result {
	return f.canned("DeleteStop")
}

func (f *fakeToolset) DeletePath(ctx context.Context, pathID, userID int) tools.Result {
	return f.canned("DeletePath")
}

func (f *fakeToolset) DeleteRoute(ctx context.Context, routeID, userID int) tools.Result {
	return f.canned("DeleteRoute")
}

func (f *fakeToolset) ListStops(ctx context.Context) tools.Result {
	return f.canned("ListStops")
}

func (f *fakeToolset) ListPaths(ctx context.Context) tools.Result {
	return f.canned("ListPaths")
}

func (f *fakeToolset) ListRoutes(ctx context.Context) tools.Result {
	return f.canned("ListRoutes")
}

// fakeParser returns a fixed intent, or the unknown intent when unset.
type fakeParser struct {
	intent *llm.Intent
}

func (p *fakeParser) Parse(ctx context.Context, text string, pctx llm.Context) *llm.Intent {
	if p.intent != nil {
		return p.intent
	}
	return &llm.Intent{Action: "unknown"}
}

// fakeSessions is an in-memory SessionStore with the same replay and
// expiry semantics as the durable one.
type fakeSessions struct {
	rows map[string]*ent.AgentSession
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]*ent.AgentSession{}}
}

func (s *fakeSessions) CreateSession(ctx context.Context, userID int, pendingAction map[string]any, ttl time.Duration) (*ent.AgentSession, error) {
	now := time.Now()
	session := &ent.AgentSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		PendingAction: pendingAction,
		Status:        agentsession.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}
	s.rows[session.ID] = session
	return session, nil
}

func (s *fakeSessions) GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, ok := s.rows[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return session, nil
}

func (s *fakeSessions) ConfirmSession(ctx context.Context, sessionID string, userResponse map[string]any) (*ent.AgentSession, bool, error) {
	session, ok := s.rows[sessionID]
	if !ok {
		return nil, false, services.ErrNotFound
	}
	if session.Status != agentsession.StatusPending {
		return session, true, nil
	}
	if session.ExpiresAt.Before(time.Now()) {
		session.Status = agentsession.StatusExpired
		return nil, false, services.ErrSessionExpired
	}
	session.Status = agentsession.StatusConfirmed
	session.UserResponse = userResponse
	return session, false, nil
}

func (s *fakeSessions) CancelSession(ctx context.Context, sessionID string, userResponse map[string]any) (*ent.AgentSession, bool, error) {
	session, ok := s.rows[sessionID]
	if !ok {
		return nil, false, services.ErrNotFound
	}
	if session.Status != agentsession.StatusPending {
		return session, true, nil
	}
	session.Status = agentsession.StatusCancelled
	session.UserResponse = userResponse
	return session, false, nil
}

func (s *fakeSessions) CompleteSession(ctx context.Context, sessionID string, executionResult map[string]any) (*ent.AgentSession, error) {
	session, ok := s.rows[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	session.Status = agentsession.StatusDone
	session.ExecutionResult = executionResult
	return session, nil
}

func (s *fakeSessions) SaveWizardState(ctx context.Context, sessionID string, state map[string]any) error {
	session, ok := s.rows[sessionID]
	if !ok {
		return services.ErrNotFound
	}
	if session.Status != agentsession.StatusPending {
		return services.ErrSessionNotPending
	}
	session.PendingAction = state
	return nil
}

func testConfig() *config.AgentConfig {
	return &config.AgentConfig{
		MaxIterations: 20,
		SessionTTL:    time.Hour,
	}
}

func newTestAgent(ts Toolset, parser IntentParser, sessions SessionStore) (*Agent, error) {
	return New(ts, parser, sessions, testConfig())
}
