// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetops/dispatch/ent/agentsession"
	"github.com/fleetops/dispatch/ent/auditlog"
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/stop"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession  = "AgentSession"
	TypeAuditLog      = "AuditLog"
	TypeBooking       = "Booking"
	TypeDeployment    = "Deployment"
	TypeDriverProfile = "DriverProfile"
	TypePath          = "Path"
	TypePathStop      = "PathStop"
	TypeRoute         = "Route"
	TypeStop          = "Stop"
	TypeTrip          = "Trip"
	TypeVehicle       = "Vehicle"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *int
	adduser_id       *int
	pending_action   *map[string]interface{}
	status           *agentsession.Status
	user_response    *map[string]interface{}
	execution_result *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	expires_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AgentSession, error)
	predicates       []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AgentSessionMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentSessionMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AgentSessionMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AgentSessionMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetPendingAction sets the "pending_action" field.
func (m *AgentSessionMutation) SetPendingAction(value map[string]interface{}) {
	m.pending_action = &value
}

// PendingAction returns the value of the "pending_action" field in the mutation.
func (m *AgentSessionMutation) PendingAction() (r map[string]interface{}, exists bool) {
	v := m.pending_action
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingAction returns the old "pending_action" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldPendingAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingAction: %w", err)
	}
	return oldValue.PendingAction, nil
}

// ResetPendingAction resets all changes to the "pending_action" field.
func (m *AgentSessionMutation) ResetPendingAction() {
	m.pending_action = nil
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetUserResponse sets the "user_response" field.
func (m *AgentSessionMutation) SetUserResponse(value map[string]interface{}) {
	m.user_response = &value
}

// UserResponse returns the value of the "user_response" field in the mutation.
func (m *AgentSessionMutation) UserResponse() (r map[string]interface{}, exists bool) {
	v := m.user_response
	if v == nil {
		return
	}
	return *v, true
}

// OldUserResponse returns the old "user_response" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUserResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserResponse: %w", err)
	}
	return oldValue.UserResponse, nil
}

// ClearUserResponse clears the value of the "user_response" field.
func (m *AgentSessionMutation) ClearUserResponse() {
	m.user_response = nil
	m.clearedFields[agentsession.FieldUserResponse] = struct{}{}
}

// UserResponseCleared returns if the "user_response" field was cleared in this mutation.
func (m *AgentSessionMutation) UserResponseCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldUserResponse]
	return ok
}

// ResetUserResponse resets all changes to the "user_response" field.
func (m *AgentSessionMutation) ResetUserResponse() {
	m.user_response = nil
	delete(m.clearedFields, agentsession.FieldUserResponse)
}

// SetExecutionResult sets the "execution_result" field.
func (m *AgentSessionMutation) SetExecutionResult(value map[string]interface{}) {
	m.execution_result = &value
}

// ExecutionResult returns the value of the "execution_result" field in the mutation.
func (m *AgentSessionMutation) ExecutionResult() (r map[string]interface{}, exists bool) {
	v := m.execution_result
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionResult returns the old "execution_result" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldExecutionResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionResult: %w", err)
	}
	return oldValue.ExecutionResult, nil
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (m *AgentSessionMutation) ClearExecutionResult() {
	m.execution_result = nil
	m.clearedFields[agentsession.FieldExecutionResult] = struct{}{}
}

// ExecutionResultCleared returns if the "execution_result" field was cleared in this mutation.
func (m *AgentSessionMutation) ExecutionResultCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldExecutionResult]
	return ok
}

// ResetExecutionResult resets all changes to the "execution_result" field.
func (m *AgentSessionMutation) ResetExecutionResult() {
	m.execution_result = nil
	delete(m.clearedFields, agentsession.FieldExecutionResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AgentSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AgentSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AgentSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, agentsession.FieldUserID)
	}
	if m.pending_action != nil {
		fields = append(fields, agentsession.FieldPendingAction)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.user_response != nil {
		fields = append(fields, agentsession.FieldUserResponse)
	}
	if m.execution_result != nil {
		fields = append(fields, agentsession.FieldExecutionResult)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentsession.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, agentsession.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldUserID:
		return m.UserID()
	case agentsession.FieldPendingAction:
		return m.PendingAction()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldUserResponse:
		return m.UserResponse()
	case agentsession.FieldExecutionResult:
		return m.ExecutionResult()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case agentsession.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldUserID:
		return m.OldUserID(ctx)
	case agentsession.FieldPendingAction:
		return m.OldPendingAction(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldUserResponse:
		return m.OldUserResponse(ctx)
	case agentsession.FieldExecutionResult:
		return m.OldExecutionResult(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agentsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentsession.FieldPendingAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingAction(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldUserResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserResponse(v)
		return nil
	case agentsession.FieldExecutionResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionResult(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agentsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, agentsession.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldUserResponse) {
		fields = append(fields, agentsession.FieldUserResponse)
	}
	if m.FieldCleared(agentsession.FieldExecutionResult) {
		fields = append(fields, agentsession.FieldExecutionResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldUserResponse:
		m.ClearUserResponse()
		return nil
	case agentsession.FieldExecutionResult:
		m.ClearExecutionResult()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldUserID:
		m.ResetUserID()
		return nil
	case agentsession.FieldPendingAction:
		m.ResetPendingAction()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldUserResponse:
		m.ResetUserResponse()
		return nil
	case agentsession.FieldExecutionResult:
		m.ResetExecutionResult()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agentsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	action        *string
	entity_type   *string
	entity_id     *int
	addentity_id  *int
	before        *map[string]interface{}
	after         *map[string]interface{}
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AuditLogMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AuditLogMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(i int) {
	m.entity_id = &i
	m.addentity_id = nil
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r int, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// AddEntityID adds i to the "entity_id" field.
func (m *AuditLogMutation) AddEntityID(i int) {
	if m.addentity_id != nil {
		*m.addentity_id += i
	} else {
		m.addentity_id = &i
	}
}

// AddedEntityID returns the value that was added to the "entity_id" field in this mutation.
func (m *AuditLogMutation) AddedEntityID() (r int, exists bool) {
	v := m.addentity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
	m.addentity_id = nil
}

// SetBefore sets the "before" field.
func (m *AuditLogMutation) SetBefore(value map[string]interface{}) {
	m.before = &value
}

// Before returns the value of the "before" field in the mutation.
func (m *AuditLogMutation) Before() (r map[string]interface{}, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldBefore(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *AuditLogMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[auditlog.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *AuditLogMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *AuditLogMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, auditlog.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *AuditLogMutation) SetAfter(value map[string]interface{}) {
	m.after = &value
}

// After returns the value of the "after" field in the mutation.
func (m *AuditLogMutation) After() (r map[string]interface{}, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAfter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *AuditLogMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[auditlog.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *AuditLogMutation) AfterCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *AuditLogMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, auditlog.FieldAfter)
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.before != nil {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, auditlog.FieldAfter)
	}
	if m.timestamp != nil {
		fields = append(fields, auditlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldBefore:
		return m.Before()
	case auditlog.FieldAfter:
		return m.After()
	case auditlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldBefore:
		return m.OldBefore(ctx)
	case auditlog.FieldAfter:
		return m.OldAfter(ctx)
	case auditlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldBefore:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case auditlog.FieldAfter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case auditlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.addentity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldUserID:
		return m.AddedUserID()
	case auditlog.FieldEntityID:
		return m.AddedEntityID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityID(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldBefore) {
		fields = append(fields, auditlog.FieldBefore)
	}
	if m.FieldCleared(auditlog.FieldAfter) {
		fields = append(fields, auditlog.FieldAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldBefore:
		m.ClearBefore()
		return nil
	case auditlog.FieldAfter:
		m.ClearAfter()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldBefore:
		m.ResetBefore()
		return nil
	case auditlog.FieldAfter:
		m.ResetAfter()
		return nil
	case auditlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BookingMutation represents an operation that mutates the Booking nodes in the graph.
type BookingMutation struct {
	config
	op             Op
	typ            string
	id             *int
	passenger_name *string
	status         *booking.Status
	booked_at      *time.Time
	clearedFields  map[string]struct{}
	trip           *int
	clearedtrip    bool
	done           bool
	oldValue       func(context.Context) (*Booking, error)
	predicates     []predicate.Booking
}

var _ ent.Mutation = (*BookingMutation)(nil)

// bookingOption allows management of the mutation configuration using functional options.
type bookingOption func(*BookingMutation)

// newBookingMutation creates new mutation for the Booking entity.
func newBookingMutation(c config, op Op, opts ...bookingOption) *BookingMutation {
	m := &BookingMutation{
		config:        c,
		op:            op,
		typ:           TypeBooking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookingID sets the ID field of the mutation.
func withBookingID(id int) bookingOption {
	return func(m *BookingMutation) {
		var (
			err   error
			once  sync.Once
			value *Booking
		)
		m.oldValue = func(ctx context.Context) (*Booking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Booking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooking sets the old Booking of the mutation.
func withBooking(node *Booking) bookingOption {
	return func(m *BookingMutation) {
		m.oldValue = func(context.Context) (*Booking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Booking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTripID sets the "trip_id" field.
func (m *BookingMutation) SetTripID(i int) {
	m.trip = &i
}

// TripID returns the value of the "trip_id" field in the mutation.
func (m *BookingMutation) TripID() (r int, exists bool) {
	v := m.trip
	if v == nil {
		return
	}
	return *v, true
}

// OldTripID returns the old "trip_id" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldTripID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTripID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTripID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTripID: %w", err)
	}
	return oldValue.TripID, nil
}

// ResetTripID resets all changes to the "trip_id" field.
func (m *BookingMutation) ResetTripID() {
	m.trip = nil
}

// SetPassengerName sets the "passenger_name" field.
func (m *BookingMutation) SetPassengerName(s string) {
	m.passenger_name = &s
}

// PassengerName returns the value of the "passenger_name" field in the mutation.
func (m *BookingMutation) PassengerName() (r string, exists bool) {
	v := m.passenger_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPassengerName returns the old "passenger_name" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldPassengerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassengerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassengerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassengerName: %w", err)
	}
	return oldValue.PassengerName, nil
}

// ClearPassengerName clears the value of the "passenger_name" field.
func (m *BookingMutation) ClearPassengerName() {
	m.passenger_name = nil
	m.clearedFields[booking.FieldPassengerName] = struct{}{}
}

// PassengerNameCleared returns if the "passenger_name" field was cleared in this mutation.
func (m *BookingMutation) PassengerNameCleared() bool {
	_, ok := m.clearedFields[booking.FieldPassengerName]
	return ok
}

// ResetPassengerName resets all changes to the "passenger_name" field.
func (m *BookingMutation) ResetPassengerName() {
	m.passenger_name = nil
	delete(m.clearedFields, booking.FieldPassengerName)
}

// SetStatus sets the "status" field.
func (m *BookingMutation) SetStatus(b booking.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BookingMutation) Status() (r booking.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldStatus(ctx context.Context) (v booking.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BookingMutation) ResetStatus() {
	m.status = nil
}

// SetBookedAt sets the "booked_at" field.
func (m *BookingMutation) SetBookedAt(t time.Time) {
	m.booked_at = &t
}

// BookedAt returns the value of the "booked_at" field in the mutation.
func (m *BookingMutation) BookedAt() (r time.Time, exists bool) {
	v := m.booked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBookedAt returns the old "booked_at" field's value of the Booking entity.
// If the Booking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookingMutation) OldBookedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookedAt: %w", err)
	}
	return oldValue.BookedAt, nil
}

// ResetBookedAt resets all changes to the "booked_at" field.
func (m *BookingMutation) ResetBookedAt() {
	m.booked_at = nil
}

// ClearTrip clears the "trip" edge to the Trip entity.
func (m *BookingMutation) ClearTrip() {
	m.clearedtrip = true
	m.clearedFields[booking.FieldTripID] = struct{}{}
}

// TripCleared reports if the "trip" edge to the Trip entity was cleared.
func (m *BookingMutation) TripCleared() bool {
	return m.clearedtrip
}

// TripIDs returns the "trip" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TripID instead. It exists only for internal usage by the builders.
func (m *BookingMutation) TripIDs() (ids []int) {
	if id := m.trip; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrip resets all changes to the "trip" edge.
func (m *BookingMutation) ResetTrip() {
	m.trip = nil
	m.clearedtrip = false
}

// Where appends a list predicates to the BookingMutation builder.
func (m *BookingMutation) Where(ps ...predicate.Booking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Booking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Booking).
func (m *BookingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.trip != nil {
		fields = append(fields, booking.FieldTripID)
	}
	if m.passenger_name != nil {
		fields = append(fields, booking.FieldPassengerName)
	}
	if m.status != nil {
		fields = append(fields, booking.FieldStatus)
	}
	if m.booked_at != nil {
		fields = append(fields, booking.FieldBookedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booking.FieldTripID:
		return m.TripID()
	case booking.FieldPassengerName:
		return m.PassengerName()
	case booking.FieldStatus:
		return m.Status()
	case booking.FieldBookedAt:
		return m.BookedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booking.FieldTripID:
		return m.OldTripID(ctx)
	case booking.FieldPassengerName:
		return m.OldPassengerName(ctx)
	case booking.FieldStatus:
		return m.OldStatus(ctx)
	case booking.FieldBookedAt:
		return m.OldBookedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Booking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booking.FieldTripID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTripID(v)
		return nil
	case booking.FieldPassengerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassengerName(v)
		return nil
	case booking.FieldStatus:
		v, ok := value.(booking.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case booking.FieldBookedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookingMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Booking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(booking.FieldPassengerName) {
		fields = append(fields, booking.FieldPassengerName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookingMutation) ClearField(name string) error {
	switch name {
	case booking.FieldPassengerName:
		m.ClearPassengerName()
		return nil
	}
	return fmt.Errorf("unknown Booking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookingMutation) ResetField(name string) error {
	switch name {
	case booking.FieldTripID:
		m.ResetTripID()
		return nil
	case booking.FieldPassengerName:
		m.ResetPassengerName()
		return nil
	case booking.FieldStatus:
		m.ResetStatus()
		return nil
	case booking.FieldBookedAt:
		m.ResetBookedAt()
		return nil
	}
	return fmt.Errorf("unknown Booking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.trip != nil {
		edges = append(edges, booking.EdgeTrip)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case booking.EdgeTrip:
		if id := m.trip; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtrip {
		edges = append(edges, booking.EdgeTrip)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookingMutation) EdgeCleared(name string) bool {
	switch name {
	case booking.EdgeTrip:
		return m.clearedtrip
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookingMutation) ClearEdge(name string) error {
	switch name {
	case booking.EdgeTrip:
		m.ClearTrip()
		return nil
	}
	return fmt.Errorf("unknown Booking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookingMutation) ResetEdge(name string) error {
	switch name {
	case booking.EdgeTrip:
		m.ResetTrip()
		return nil
	}
	return fmt.Errorf("unknown Booking edge %s", name)
}

// DeploymentMutation represents an operation that mutates the Deployment nodes in the graph.
type DeploymentMutation struct {
	config
	op             Op
	typ            string
	id             *int
	deployed_at    *time.Time
	clearedFields  map[string]struct{}
	trip           *int
	clearedtrip    bool
	vehicle        *int
	clearedvehicle bool
	_driver        *int
	cleared_driver bool
	done           bool
	oldValue       func(context.Context) (*Deployment, error)
	predicates     []predicate.Deployment
}

var _ ent.Mutation = (*DeploymentMutation)(nil)

// deploymentOption allows management of the mutation configuration using functional options.
type deploymentOption func(*DeploymentMutation)

// newDeploymentMutation creates new mutation for the Deployment entity.
func newDeploymentMutation(c config, op Op, opts ...deploymentOption) *DeploymentMutation {
	m := &DeploymentMutation{
		config:        c,
		op:            op,
		typ:           TypeDeployment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeploymentID sets the ID field of the mutation.
func withDeploymentID(id int) deploymentOption {
	return func(m *DeploymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Deployment
		)
		m.oldValue = func(ctx context.Context) (*Deployment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deployment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeployment sets the old Deployment of the mutation.
func withDeployment(node *Deployment) deploymentOption {
	return func(m *DeploymentMutation) {
		m.oldValue = func(context.Context) (*Deployment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeploymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeploymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeploymentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeploymentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deployment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTripID sets the "trip_id" field.
func (m *DeploymentMutation) SetTripID(i int) {
	m.trip = &i
}

// TripID returns the value of the "trip_id" field in the mutation.
func (m *DeploymentMutation) TripID() (r int, exists bool) {
	v := m.trip
	if v == nil {
		return
	}
	return *v, true
}

// OldTripID returns the old "trip_id" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldTripID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTripID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTripID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTripID: %w", err)
	}
	return oldValue.TripID, nil
}

// ResetTripID resets all changes to the "trip_id" field.
func (m *DeploymentMutation) ResetTripID() {
	m.trip = nil
}

// SetVehicleID sets the "vehicle_id" field.
func (m *DeploymentMutation) SetVehicleID(i int) {
	m.vehicle = &i
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *DeploymentMutation) VehicleID() (r int, exists bool) {
	v := m.vehicle
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldVehicleID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (m *DeploymentMutation) ClearVehicleID() {
	m.vehicle = nil
	m.clearedFields[deployment.FieldVehicleID] = struct{}{}
}

// VehicleIDCleared returns if the "vehicle_id" field was cleared in this mutation.
func (m *DeploymentMutation) VehicleIDCleared() bool {
	_, ok := m.clearedFields[deployment.FieldVehicleID]
	return ok
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *DeploymentMutation) ResetVehicleID() {
	m.vehicle = nil
	delete(m.clearedFields, deployment.FieldVehicleID)
}

// SetDriverID sets the "driver_id" field.
func (m *DeploymentMutation) SetDriverID(i int) {
	m._driver = &i
}

// DriverID returns the value of the "driver_id" field in the mutation.
func (m *DeploymentMutation) DriverID() (r int, exists bool) {
	v := m._driver
	if v == nil {
		return
	}
	return *v, true
}

// OldDriverID returns the old "driver_id" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldDriverID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriverID: %w", err)
	}
	return oldValue.DriverID, nil
}

// ClearDriverID clears the value of the "driver_id" field.
func (m *DeploymentMutation) ClearDriverID() {
	m._driver = nil
	m.clearedFields[deployment.FieldDriverID] = struct{}{}
}

// DriverIDCleared returns if the "driver_id" field was cleared in this mutation.
func (m *DeploymentMutation) DriverIDCleared() bool {
	_, ok := m.clearedFields[deployment.FieldDriverID]
	return ok
}

// ResetDriverID resets all changes to the "driver_id" field.
func (m *DeploymentMutation) ResetDriverID() {
	m._driver = nil
	delete(m.clearedFields, deployment.FieldDriverID)
}

// SetDeployedAt sets the "deployed_at" field.
func (m *DeploymentMutation) SetDeployedAt(t time.Time) {
	m.deployed_at = &t
}

// DeployedAt returns the value of the "deployed_at" field in the mutation.
func (m *DeploymentMutation) DeployedAt() (r time.Time, exists bool) {
	v := m.deployed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployedAt returns the old "deployed_at" field's value of the Deployment entity.
// If the Deployment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeploymentMutation) OldDeployedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployedAt: %w", err)
	}
	return oldValue.DeployedAt, nil
}

// ResetDeployedAt resets all changes to the "deployed_at" field.
func (m *DeploymentMutation) ResetDeployedAt() {
	m.deployed_at = nil
}

// ClearTrip clears the "trip" edge to the Trip entity.
func (m *DeploymentMutation) ClearTrip() {
	m.clearedtrip = true
	m.clearedFields[deployment.FieldTripID] = struct{}{}
}

// TripCleared reports if the "trip" edge to the Trip entity was cleared.
func (m *DeploymentMutation) TripCleared() bool {
	return m.clearedtrip
}

// TripIDs returns the "trip" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TripID instead. It exists only for internal usage by the builders.
func (m *DeploymentMutation) TripIDs() (ids []int) {
	if id := m.trip; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrip resets all changes to the "trip" edge.
func (m *DeploymentMutation) ResetTrip() {
	m.trip = nil
	m.clearedtrip = false
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (m *DeploymentMutation) ClearVehicle() {
	m.clearedvehicle = true
	m.clearedFields[deployment.FieldVehicleID] = struct{}{}
}

// VehicleCleared reports if the "vehicle" edge to the Vehicle entity was cleared.
func (m *DeploymentMutation) VehicleCleared() bool {
	return m.VehicleIDCleared() || m.clearedvehicle
}

// VehicleIDs returns the "vehicle" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VehicleID instead. It exists only for internal usage by the builders.
func (m *DeploymentMutation) VehicleIDs() (ids []int) {
	if id := m.vehicle; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVehicle resets all changes to the "vehicle" edge.
func (m *DeploymentMutation) ResetVehicle() {
	m.vehicle = nil
	m.clearedvehicle = false
}

// ClearDriver clears the "driver" edge to the DriverProfile entity.
func (m *DeploymentMutation) ClearDriver() {
	m.cleared_driver = true
	m.clearedFields[deployment.FieldDriverID] = struct{}{}
}

// DriverCleared reports if the "driver" edge to the DriverProfile entity was cleared.
func (m *DeploymentMutation) DriverCleared() bool {
	return m.DriverIDCleared() || m.cleared_driver
}

// DriverIDs returns the "driver" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DriverID instead. It exists only for internal usage by the builders.
func (m *DeploymentMutation) DriverIDs() (ids []int) {
	if id := m._driver; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDriver resets all changes to the "driver" edge.
func (m *DeploymentMutation) ResetDriver() {
	m._driver = nil
	m.cleared_driver = false
}

// Where appends a list predicates to the DeploymentMutation builder.
func (m *DeploymentMutation) Where(ps ...predicate.Deployment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeploymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeploymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deployment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeploymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeploymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deployment).
func (m *DeploymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeploymentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.trip != nil {
		fields = append(fields, deployment.FieldTripID)
	}
	if m.vehicle != nil {
		fields = append(fields, deployment.FieldVehicleID)
	}
	if m._driver != nil {
		fields = append(fields, deployment.FieldDriverID)
	}
	if m.deployed_at != nil {
		fields = append(fields, deployment.FieldDeployedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeploymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deployment.FieldTripID:
		return m.TripID()
	case deployment.FieldVehicleID:
		return m.VehicleID()
	case deployment.FieldDriverID:
		return m.DriverID()
	case deployment.FieldDeployedAt:
		return m.DeployedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeploymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deployment.FieldTripID:
		return m.OldTripID(ctx)
	case deployment.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case deployment.FieldDriverID:
		return m.OldDriverID(ctx)
	case deployment.FieldDeployedAt:
		return m.OldDeployedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deployment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deployment.FieldTripID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTripID(v)
		return nil
	case deployment.FieldVehicleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case deployment.FieldDriverID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriverID(v)
		return nil
	case deployment.FieldDeployedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeploymentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeploymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeploymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Deployment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeploymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deployment.FieldVehicleID) {
		fields = append(fields, deployment.FieldVehicleID)
	}
	if m.FieldCleared(deployment.FieldDriverID) {
		fields = append(fields, deployment.FieldDriverID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeploymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeploymentMutation) ClearField(name string) error {
	switch name {
	case deployment.FieldVehicleID:
		m.ClearVehicleID()
		return nil
	case deployment.FieldDriverID:
		m.ClearDriverID()
		return nil
	}
	return fmt.Errorf("unknown Deployment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeploymentMutation) ResetField(name string) error {
	switch name {
	case deployment.FieldTripID:
		m.ResetTripID()
		return nil
	case deployment.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case deployment.FieldDriverID:
		m.ResetDriverID()
		return nil
	case deployment.FieldDeployedAt:
		m.ResetDeployedAt()
		return nil
	}
	return fmt.Errorf("unknown Deployment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeploymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.trip != nil {
		edges = append(edges, deployment.EdgeTrip)
	}
	if m.vehicle != nil {
		edges = append(edges, deployment.EdgeVehicle)
	}
	if m._driver != nil {
		edges = append(edges, deployment.EdgeDriver)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeploymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deployment.EdgeTrip:
		if id := m.trip; id != nil {
			return []ent.Value{*id}
		}
	case deployment.EdgeVehicle:
		if id := m.vehicle; id != nil {
			return []ent.Value{*id}
		}
	case deployment.EdgeDriver:
		if id := m._driver; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeploymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeploymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeploymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtrip {
		edges = append(edges, deployment.EdgeTrip)
	}
	if m.clearedvehicle {
		edges = append(edges, deployment.EdgeVehicle)
	}
	if m.cleared_driver {
		edges = append(edges, deployment.EdgeDriver)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeploymentMutation) EdgeCleared(name string) bool {
	switch name {
	case deployment.EdgeTrip:
		return m.clearedtrip
	case deployment.EdgeVehicle:
		return m.clearedvehicle
	case deployment.EdgeDriver:
		return m.cleared_driver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeploymentMutation) ClearEdge(name string) error {
	switch name {
	case deployment.EdgeTrip:
		m.ClearTrip()
		return nil
	case deployment.EdgeVehicle:
		m.ClearVehicle()
		return nil
	case deployment.EdgeDriver:
		m.ClearDriver()
		return nil
	}
	return fmt.Errorf("unknown Deployment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeploymentMutation) ResetEdge(name string) error {
	switch name {
	case deployment.EdgeTrip:
		m.ResetTrip()
		return nil
	case deployment.EdgeVehicle:
		m.ResetVehicle()
		return nil
	case deployment.EdgeDriver:
		m.ResetDriver()
		return nil
	}
	return fmt.Errorf("unknown Deployment edge %s", name)
}

// DriverProfileMutation represents an operation that mutates the DriverProfile nodes in the graph.
type DriverProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	phone              *string
	status             *driverprofile.Status
	clearedFields      map[string]struct{}
	deployments        map[int]struct{}
	removeddeployments map[int]struct{}
	cleareddeployments bool
	done               bool
	oldValue           func(context.Context) (*DriverProfile, error)
	predicates         []predicate.DriverProfile
}

var _ ent.Mutation = (*DriverProfileMutation)(nil)

// driverprofileOption allows management of the mutation configuration using functional options.
type driverprofileOption func(*DriverProfileMutation)

// newDriverProfileMutation creates new mutation for the DriverProfile entity.
func newDriverProfileMutation(c config, op Op, opts ...driverprofileOption) *DriverProfileMutation {
	m := &DriverProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeDriverProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDriverProfileID sets the ID field of the mutation.
func withDriverProfileID(id int) driverprofileOption {
	return func(m *DriverProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *DriverProfile
		)
		m.oldValue = func(ctx context.Context) (*DriverProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DriverProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDriverProfile sets the old DriverProfile of the mutation.
func withDriverProfile(node *DriverProfile) driverprofileOption {
	return func(m *DriverProfileMutation) {
		m.oldValue = func(context.Context) (*DriverProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DriverProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DriverProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DriverProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DriverProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DriverProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DriverProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DriverProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DriverProfile entity.
// If the DriverProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DriverProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DriverProfileMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *DriverProfileMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *DriverProfileMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the DriverProfile entity.
// If the DriverProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DriverProfileMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *DriverProfileMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[driverprofile.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *DriverProfileMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[driverprofile.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *DriverProfileMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, driverprofile.FieldPhone)
}

// SetStatus sets the "status" field.
func (m *DriverProfileMutation) SetStatus(d driverprofile.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DriverProfileMutation) Status() (r driverprofile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DriverProfile entity.
// If the DriverProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DriverProfileMutation) OldStatus(ctx context.Context) (v driverprofile.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DriverProfileMutation) ResetStatus() {
	m.status = nil
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by ids.
func (m *DriverProfileMutation) AddDeploymentIDs(ids ...int) {
	if m.deployments == nil {
		m.deployments = make(map[int]struct{})
	}
	for i := range ids {
		m.deployments[ids[i]] = struct{}{}
	}
}

// ClearDeployments clears the "deployments" edge to the Deployment entity.
func (m *DriverProfileMutation) ClearDeployments() {
	m.cleareddeployments = true
}

// DeploymentsCleared reports if the "deployments" edge to the Deployment entity was cleared.
func (m *DriverProfileMutation) DeploymentsCleared() bool {
	return m.cleareddeployments
}

// RemoveDeploymentIDs removes the "deployments" edge to the Deployment entity by IDs.
func (m *DriverProfileMutation) RemoveDeploymentIDs(ids ...int) {
	if m.removeddeployments == nil {
		m.removeddeployments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deployments, ids[i])
		m.removeddeployments[ids[i]] = struct{}{}
	}
}

// RemovedDeployments returns the removed IDs of the "deployments" edge to the Deployment entity.
func (m *DriverProfileMutation) RemovedDeploymentsIDs() (ids []int) {
	for id := range m.removeddeployments {
		ids = append(ids, id)
	}
	return
}

// DeploymentsIDs returns the "deployments" edge IDs in the mutation.
func (m *DriverProfileMutation) DeploymentsIDs() (ids []int) {
	for id := range m.deployments {
		ids = append(ids, id)
	}
	return
}

// ResetDeployments resets all changes to the "deployments" edge.
func (m *DriverProfileMutation) ResetDeployments() {
	m.deployments = nil
	m.cleareddeployments = false
	m.removeddeployments = nil
}

// Where appends a list predicates to the DriverProfileMutation builder.
func (m *DriverProfileMutation) Where(ps ...predicate.DriverProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DriverProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DriverProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DriverProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DriverProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DriverProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DriverProfile).
func (m *DriverProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DriverProfileMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, driverprofile.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, driverprofile.FieldPhone)
	}
	if m.status != nil {
		fields = append(fields, driverprofile.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DriverProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case driverprofile.FieldName:
		return m.Name()
	case driverprofile.FieldPhone:
		return m.Phone()
	case driverprofile.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DriverProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case driverprofile.FieldName:
		return m.OldName(ctx)
	case driverprofile.FieldPhone:
		return m.OldPhone(ctx)
	case driverprofile.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown DriverProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DriverProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case driverprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case driverprofile.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case driverprofile.FieldStatus:
		v, ok := value.(driverprofile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown DriverProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DriverProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DriverProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DriverProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DriverProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DriverProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(driverprofile.FieldPhone) {
		fields = append(fields, driverprofile.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DriverProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DriverProfileMutation) ClearField(name string) error {
	switch name {
	case driverprofile.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown DriverProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DriverProfileMutation) ResetField(name string) error {
	switch name {
	case driverprofile.FieldName:
		m.ResetName()
		return nil
	case driverprofile.FieldPhone:
		m.ResetPhone()
		return nil
	case driverprofile.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown DriverProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DriverProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deployments != nil {
		edges = append(edges, driverprofile.EdgeDeployments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DriverProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case driverprofile.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.deployments))
		for id := range m.deployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DriverProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeployments != nil {
		edges = append(edges, driverprofile.EdgeDeployments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DriverProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case driverprofile.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.removeddeployments))
		for id := range m.removeddeployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DriverProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeployments {
		edges = append(edges, driverprofile.EdgeDeployments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DriverProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case driverprofile.EdgeDeployments:
		return m.cleareddeployments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DriverProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DriverProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DriverProfileMutation) ResetEdge(name string) error {
	switch name {
	case driverprofile.EdgeDeployments:
		m.ResetDeployments()
		return nil
	}
	return fmt.Errorf("unknown DriverProfile edge %s", name)
}

// PathMutation represents an operation that mutates the Path nodes in the graph.
type PathMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	clearedFields     map[string]struct{}
	path_stops        map[int]struct{}
	removedpath_stops map[int]struct{}
	clearedpath_stops bool
	routes            map[int]struct{}
	removedroutes     map[int]struct{}
	clearedroutes     bool
	done              bool
	oldValue          func(context.Context) (*Path, error)
	predicates        []predicate.Path
}

var _ ent.Mutation = (*PathMutation)(nil)

// pathOption allows management of the mutation configuration using functional options.
type pathOption func(*PathMutation)

// newPathMutation creates new mutation for the Path entity.
func newPathMutation(c config, op Op, opts ...pathOption) *PathMutation {
	m := &PathMutation{
		config:        c,
		op:            op,
		typ:           TypePath,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathID sets the ID field of the mutation.
func withPathID(id int) pathOption {
	return func(m *PathMutation) {
		var (
			err   error
			once  sync.Once
			value *Path
		)
		m.oldValue = func(ctx context.Context) (*Path, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Path.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPath sets the old Path of the mutation.
func withPath(node *Path) pathOption {
	return func(m *PathMutation) {
		m.oldValue = func(context.Context) (*Path, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Path.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PathMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PathMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Path entity.
// If the Path object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PathMutation) ResetName() {
	m.name = nil
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by ids.
func (m *PathMutation) AddPathStopIDs(ids ...int) {
	if m.path_stops == nil {
		m.path_stops = make(map[int]struct{})
	}
	for i := range ids {
		m.path_stops[ids[i]] = struct{}{}
	}
}

// ClearPathStops clears the "path_stops" edge to the PathStop entity.
func (m *PathMutation) ClearPathStops() {
	m.clearedpath_stops = true
}

// PathStopsCleared reports if the "path_stops" edge to the PathStop entity was cleared.
func (m *PathMutation) PathStopsCleared() bool {
	return m.clearedpath_stops
}

// RemovePathStopIDs removes the "path_stops" edge to the PathStop entity by IDs.
func (m *PathMutation) RemovePathStopIDs(ids ...int) {
	if m.removedpath_stops == nil {
		m.removedpath_stops = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.path_stops, ids[i])
		m.removedpath_stops[ids[i]] = struct{}{}
	}
}

// RemovedPathStops returns the removed IDs of the "path_stops" edge to the PathStop entity.
func (m *PathMutation) RemovedPathStopsIDs() (ids []int) {
	for id := range m.removedpath_stops {
		ids = append(ids, id)
	}
	return
}

// PathStopsIDs returns the "path_stops" edge IDs in the mutation.
func (m *PathMutation) PathStopsIDs() (ids []int) {
	for id := range m.path_stops {
		ids = append(ids, id)
	}
	return
}

// ResetPathStops resets all changes to the "path_stops" edge.
func (m *PathMutation) ResetPathStops() {
	m.path_stops = nil
	m.clearedpath_stops = false
	m.removedpath_stops = nil
}

// AddRouteIDs adds the "routes" edge to the Route entity by ids.
func (m *PathMutation) AddRouteIDs(ids ...int) {
	if m.routes == nil {
		m.routes = make(map[int]struct{})
	}
	for i := range ids {
		m.routes[ids[i]] = struct{}{}
	}
}

// ClearRoutes clears the "routes" edge to the Route entity.
func (m *PathMutation) ClearRoutes() {
	m.clearedroutes = true
}

// RoutesCleared reports if the "routes" edge to the Route entity was cleared.
func (m *PathMutation) RoutesCleared() bool {
	return m.clearedroutes
}

// RemoveRouteIDs removes the "routes" edge to the Route entity by IDs.
func (m *PathMutation) RemoveRouteIDs(ids ...int) {
	if m.removedroutes == nil {
		m.removedroutes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.routes, ids[i])
		m.removedroutes[ids[i]] = struct{}{}
	}
}

// RemovedRoutes returns the removed IDs of the "routes" edge to the Route entity.
func (m *PathMutation) RemovedRoutesIDs() (ids []int) {
	for id := range m.removedroutes {
		ids = append(ids, id)
	}
	return
}

// RoutesIDs returns the "routes" edge IDs in the mutation.
func (m *PathMutation) RoutesIDs() (ids []int) {
	for id := range m.routes {
		ids = append(ids, id)
	}
	return
}

// ResetRoutes resets all changes to the "routes" edge.
func (m *PathMutation) ResetRoutes() {
	m.routes = nil
	m.clearedroutes = false
	m.removedroutes = nil
}

// Where appends a list predicates to the PathMutation builder.
func (m *PathMutation) Where(ps ...predicate.Path) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Path, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Path).
func (m *PathMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, path.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case path.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case path.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Path field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathMutation) SetField(name string, value ent.Value) error {
	switch name {
	case path.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Path field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Path numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Path nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathMutation) ResetField(name string) error {
	switch name {
	case path.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Path field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.path_stops != nil {
		edges = append(edges, path.EdgePathStops)
	}
	if m.routes != nil {
		edges = append(edges, path.EdgeRoutes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case path.EdgePathStops:
		ids := make([]ent.Value, 0, len(m.path_stops))
		for id := range m.path_stops {
			ids = append(ids, id)
		}
		return ids
	case path.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.routes))
		for id := range m.routes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpath_stops != nil {
		edges = append(edges, path.EdgePathStops)
	}
	if m.removedroutes != nil {
		edges = append(edges, path.EdgeRoutes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case path.EdgePathStops:
		ids := make([]ent.Value, 0, len(m.removedpath_stops))
		for id := range m.removedpath_stops {
			ids = append(ids, id)
		}
		return ids
	case path.EdgeRoutes:
		ids := make([]ent.Value, 0, len(m.removedroutes))
		for id := range m.removedroutes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpath_stops {
		edges = append(edges, path.EdgePathStops)
	}
	if m.clearedroutes {
		edges = append(edges, path.EdgeRoutes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathMutation) EdgeCleared(name string) bool {
	switch name {
	case path.EdgePathStops:
		return m.clearedpath_stops
	case path.EdgeRoutes:
		return m.clearedroutes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Path unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathMutation) ResetEdge(name string) error {
	switch name {
	case path.EdgePathStops:
		m.ResetPathStops()
		return nil
	case path.EdgeRoutes:
		m.ResetRoutes()
		return nil
	}
	return fmt.Errorf("unknown Path edge %s", name)
}

// PathStopMutation represents an operation that mutates the PathStop nodes in the graph.
type PathStopMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int
	addsequence   *int
	clearedFields map[string]struct{}
	_path         *int
	cleared_path  bool
	stop          *int
	clearedstop   bool
	done          bool
	oldValue      func(context.Context) (*PathStop, error)
	predicates    []predicate.PathStop
}

var _ ent.Mutation = (*PathStopMutation)(nil)

// pathstopOption allows management of the mutation configuration using functional options.
type pathstopOption func(*PathStopMutation)

// newPathStopMutation creates new mutation for the PathStop entity.
func newPathStopMutation(c config, op Op, opts ...pathstopOption) *PathStopMutation {
	m := &PathStopMutation{
		config:        c,
		op:            op,
		typ:           TypePathStop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPathStopID sets the ID field of the mutation.
func withPathStopID(id int) pathstopOption {
	return func(m *PathStopMutation) {
		var (
			err   error
			once  sync.Once
			value *PathStop
		)
		m.oldValue = func(ctx context.Context) (*PathStop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PathStop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPathStop sets the old PathStop of the mutation.
func withPathStop(node *PathStop) pathstopOption {
	return func(m *PathStopMutation) {
		m.oldValue = func(context.Context) (*PathStop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PathStopMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PathStopMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PathStopMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PathStopMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PathStop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPathID sets the "path_id" field.
func (m *PathStopMutation) SetPathID(i int) {
	m._path = &i
}

// PathID returns the value of the "path_id" field in the mutation.
func (m *PathStopMutation) PathID() (r int, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPathID returns the old "path_id" field's value of the PathStop entity.
// If the PathStop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStopMutation) OldPathID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathID: %w", err)
	}
	return oldValue.PathID, nil
}

// ResetPathID resets all changes to the "path_id" field.
func (m *PathStopMutation) ResetPathID() {
	m._path = nil
}

// SetStopID sets the "stop_id" field.
func (m *PathStopMutation) SetStopID(i int) {
	m.stop = &i
}

// StopID returns the value of the "stop_id" field in the mutation.
func (m *PathStopMutation) StopID() (r int, exists bool) {
	v := m.stop
	if v == nil {
		return
	}
	return *v, true
}

// OldStopID returns the old "stop_id" field's value of the PathStop entity.
// If the PathStop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStopMutation) OldStopID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopID: %w", err)
	}
	return oldValue.StopID, nil
}

// ResetStopID resets all changes to the "stop_id" field.
func (m *PathStopMutation) ResetStopID() {
	m.stop = nil
}

// SetSequence sets the "sequence" field.
func (m *PathStopMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PathStopMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PathStop entity.
// If the PathStop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PathStopMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PathStopMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PathStopMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PathStopMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// ClearPath clears the "path" edge to the Path entity.
func (m *PathStopMutation) ClearPath() {
	m.cleared_path = true
	m.clearedFields[pathstop.FieldPathID] = struct{}{}
}

// PathCleared reports if the "path" edge to the Path entity was cleared.
func (m *PathStopMutation) PathCleared() bool {
	return m.cleared_path
}

// PathIDs returns the "path" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PathID instead. It exists only for internal usage by the builders.
func (m *PathStopMutation) PathIDs() (ids []int) {
	if id := m._path; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPath resets all changes to the "path" edge.
func (m *PathStopMutation) ResetPath() {
	m._path = nil
	m.cleared_path = false
}

// ClearStop clears the "stop" edge to the Stop entity.
func (m *PathStopMutation) ClearStop() {
	m.clearedstop = true
	m.clearedFields[pathstop.FieldStopID] = struct{}{}
}

// StopCleared reports if the "stop" edge to the Stop entity was cleared.
func (m *PathStopMutation) StopCleared() bool {
	return m.clearedstop
}

// StopIDs returns the "stop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StopID instead. It exists only for internal usage by the builders.
func (m *PathStopMutation) StopIDs() (ids []int) {
	if id := m.stop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStop resets all changes to the "stop" edge.
func (m *PathStopMutation) ResetStop() {
	m.stop = nil
	m.clearedstop = false
}

// Where appends a list predicates to the PathStopMutation builder.
func (m *PathStopMutation) Where(ps ...predicate.PathStop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PathStopMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PathStopMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PathStop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PathStopMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PathStopMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PathStop).
func (m *PathStopMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PathStopMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m._path != nil {
		fields = append(fields, pathstop.FieldPathID)
	}
	if m.stop != nil {
		fields = append(fields, pathstop.FieldStopID)
	}
	if m.sequence != nil {
		fields = append(fields, pathstop.FieldSequence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PathStopMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pathstop.FieldPathID:
		return m.PathID()
	case pathstop.FieldStopID:
		return m.StopID()
	case pathstop.FieldSequence:
		return m.Sequence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PathStopMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pathstop.FieldPathID:
		return m.OldPathID(ctx)
	case pathstop.FieldStopID:
		return m.OldStopID(ctx)
	case pathstop.FieldSequence:
		return m.OldSequence(ctx)
	}
	return nil, fmt.Errorf("unknown PathStop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathStopMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pathstop.FieldPathID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathID(v)
		return nil
	case pathstop.FieldStopID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopID(v)
		return nil
	case pathstop.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PathStop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PathStopMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, pathstop.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PathStopMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pathstop.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PathStopMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pathstop.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PathStop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PathStopMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PathStopMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PathStopMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PathStop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PathStopMutation) ResetField(name string) error {
	switch name {
	case pathstop.FieldPathID:
		m.ResetPathID()
		return nil
	case pathstop.FieldStopID:
		m.ResetStopID()
		return nil
	case pathstop.FieldSequence:
		m.ResetSequence()
		return nil
	}
	return fmt.Errorf("unknown PathStop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PathStopMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._path != nil {
		edges = append(edges, pathstop.EdgePath)
	}
	if m.stop != nil {
		edges = append(edges, pathstop.EdgeStop)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PathStopMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pathstop.EdgePath:
		if id := m._path; id != nil {
			return []ent.Value{*id}
		}
	case pathstop.EdgeStop:
		if id := m.stop; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PathStopMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PathStopMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PathStopMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_path {
		edges = append(edges, pathstop.EdgePath)
	}
	if m.clearedstop {
		edges = append(edges, pathstop.EdgeStop)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PathStopMutation) EdgeCleared(name string) bool {
	switch name {
	case pathstop.EdgePath:
		return m.cleared_path
	case pathstop.EdgeStop:
		return m.clearedstop
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PathStopMutation) ClearEdge(name string) error {
	switch name {
	case pathstop.EdgePath:
		m.ClearPath()
		return nil
	case pathstop.EdgeStop:
		m.ClearStop()
		return nil
	}
	return fmt.Errorf("unknown PathStop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PathStopMutation) ResetEdge(name string) error {
	switch name {
	case pathstop.EdgePath:
		m.ResetPath()
		return nil
	case pathstop.EdgeStop:
		m.ResetStop()
		return nil
	}
	return fmt.Errorf("unknown PathStop edge %s", name)
}

// RouteMutation represents an operation that mutates the Route nodes in the graph.
type RouteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	direction     *route.Direction
	shift_time    *string
	clearedFields map[string]struct{}
	_path         *int
	cleared_path  bool
	trips         map[int]struct{}
	removedtrips  map[int]struct{}
	clearedtrips  bool
	done          bool
	oldValue      func(context.Context) (*Route, error)
	predicates    []predicate.Route
}

var _ ent.Mutation = (*RouteMutation)(nil)

// routeOption allows management of the mutation configuration using functional options.
type routeOption func(*RouteMutation)

// newRouteMutation creates new mutation for the Route entity.
func newRouteMutation(c config, op Op, opts ...routeOption) *RouteMutation {
	m := &RouteMutation{
		config:        c,
		op:            op,
		typ:           TypeRoute,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRouteID sets the ID field of the mutation.
func withRouteID(id int) routeOption {
	return func(m *RouteMutation) {
		var (
			err   error
			once  sync.Once
			value *Route
		)
		m.oldValue = func(ctx context.Context) (*Route, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Route.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoute sets the old Route of the mutation.
func withRoute(node *Route) routeOption {
	return func(m *RouteMutation) {
		m.oldValue = func(context.Context) (*Route, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RouteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RouteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RouteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RouteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Route.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RouteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RouteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RouteMutation) ResetName() {
	m.name = nil
}

// SetPathID sets the "path_id" field.
func (m *RouteMutation) SetPathID(i int) {
	m._path = &i
}

// PathID returns the value of the "path_id" field in the mutation.
func (m *RouteMutation) PathID() (r int, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPathID returns the old "path_id" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldPathID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPathID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPathID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPathID: %w", err)
	}
	return oldValue.PathID, nil
}

// ResetPathID resets all changes to the "path_id" field.
func (m *RouteMutation) ResetPathID() {
	m._path = nil
}

// SetDirection sets the "direction" field.
func (m *RouteMutation) SetDirection(r route.Direction) {
	m.direction = &r
}

// Direction returns the value of the "direction" field in the mutation.
func (m *RouteMutation) Direction() (r route.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldDirection(ctx context.Context) (v route.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *RouteMutation) ResetDirection() {
	m.direction = nil
}

// SetShiftTime sets the "shift_time" field.
func (m *RouteMutation) SetShiftTime(s string) {
	m.shift_time = &s
}

// ShiftTime returns the value of the "shift_time" field in the mutation.
func (m *RouteMutation) ShiftTime() (r string, exists bool) {
	v := m.shift_time
	if v == nil {
		return
	}
	return *v, true
}

// OldShiftTime returns the old "shift_time" field's value of the Route entity.
// If the Route object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RouteMutation) OldShiftTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShiftTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShiftTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShiftTime: %w", err)
	}
	return oldValue.ShiftTime, nil
}

// ResetShiftTime resets all changes to the "shift_time" field.
func (m *RouteMutation) ResetShiftTime() {
	m.shift_time = nil
}

// ClearPath clears the "path" edge to the Path entity.
func (m *RouteMutation) ClearPath() {
	m.cleared_path = true
	m.clearedFields[route.FieldPathID] = struct{}{}
}

// PathCleared reports if the "path" edge to the Path entity was cleared.
func (m *RouteMutation) PathCleared() bool {
	return m.cleared_path
}

// PathIDs returns the "path" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PathID instead. It exists only for internal usage by the builders.
func (m *RouteMutation) PathIDs() (ids []int) {
	if id := m._path; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPath resets all changes to the "path" edge.
func (m *RouteMutation) ResetPath() {
	m._path = nil
	m.cleared_path = false
}

// AddTripIDs adds the "trips" edge to the Trip entity by ids.
func (m *RouteMutation) AddTripIDs(ids ...int) {
	if m.trips == nil {
		m.trips = make(map[int]struct{})
	}
	for i := range ids {
		m.trips[ids[i]] = struct{}{}
	}
}

// ClearTrips clears the "trips" edge to the Trip entity.
func (m *RouteMutation) ClearTrips() {
	m.clearedtrips = true
}

// TripsCleared reports if the "trips" edge to the Trip entity was cleared.
func (m *RouteMutation) TripsCleared() bool {
	return m.clearedtrips
}

// RemoveTripIDs removes the "trips" edge to the Trip entity by IDs.
func (m *RouteMutation) RemoveTripIDs(ids ...int) {
	if m.removedtrips == nil {
		m.removedtrips = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.trips, ids[i])
		m.removedtrips[ids[i]] = struct{}{}
	}
}

// RemovedTrips returns the removed IDs of the "trips" edge to the Trip entity.
func (m *RouteMutation) RemovedTripsIDs() (ids []int) {
	for id := range m.removedtrips {
		ids = append(ids, id)
	}
	return
}

// TripsIDs returns the "trips" edge IDs in the mutation.
func (m *RouteMutation) TripsIDs() (ids []int) {
	for id := range m.trips {
		ids = append(ids, id)
	}
	return
}

// ResetTrips resets all changes to the "trips" edge.
func (m *RouteMutation) ResetTrips() {
	m.trips = nil
	m.clearedtrips = false
	m.removedtrips = nil
}

// Where appends a list predicates to the RouteMutation builder.
func (m *RouteMutation) Where(ps ...predicate.Route) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RouteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RouteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Route, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RouteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RouteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Route).
func (m *RouteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RouteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, route.FieldName)
	}
	if m._path != nil {
		fields = append(fields, route.FieldPathID)
	}
	if m.direction != nil {
		fields = append(fields, route.FieldDirection)
	}
	if m.shift_time != nil {
		fields = append(fields, route.FieldShiftTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RouteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case route.FieldName:
		return m.Name()
	case route.FieldPathID:
		return m.PathID()
	case route.FieldDirection:
		return m.Direction()
	case route.FieldShiftTime:
		return m.ShiftTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RouteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case route.FieldName:
		return m.OldName(ctx)
	case route.FieldPathID:
		return m.OldPathID(ctx)
	case route.FieldDirection:
		return m.OldDirection(ctx)
	case route.FieldShiftTime:
		return m.OldShiftTime(ctx)
	}
	return nil, fmt.Errorf("unknown Route field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RouteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case route.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case route.FieldPathID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPathID(v)
		return nil
	case route.FieldDirection:
		v, ok := value.(route.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case route.FieldShiftTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShiftTime(v)
		return nil
	}
	return fmt.Errorf("unknown Route field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RouteMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RouteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RouteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Route numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RouteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RouteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RouteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Route nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RouteMutation) ResetField(name string) error {
	switch name {
	case route.FieldName:
		m.ResetName()
		return nil
	case route.FieldPathID:
		m.ResetPathID()
		return nil
	case route.FieldDirection:
		m.ResetDirection()
		return nil
	case route.FieldShiftTime:
		m.ResetShiftTime()
		return nil
	}
	return fmt.Errorf("unknown Route field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RouteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._path != nil {
		edges = append(edges, route.EdgePath)
	}
	if m.trips != nil {
		edges = append(edges, route.EdgeTrips)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RouteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case route.EdgePath:
		if id := m._path; id != nil {
			return []ent.Value{*id}
		}
	case route.EdgeTrips:
		ids := make([]ent.Value, 0, len(m.trips))
		for id := range m.trips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RouteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtrips != nil {
		edges = append(edges, route.EdgeTrips)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RouteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case route.EdgeTrips:
		ids := make([]ent.Value, 0, len(m.removedtrips))
		for id := range m.removedtrips {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RouteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_path {
		edges = append(edges, route.EdgePath)
	}
	if m.clearedtrips {
		edges = append(edges, route.EdgeTrips)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RouteMutation) EdgeCleared(name string) bool {
	switch name {
	case route.EdgePath:
		return m.cleared_path
	case route.EdgeTrips:
		return m.clearedtrips
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RouteMutation) ClearEdge(name string) error {
	switch name {
	case route.EdgePath:
		m.ClearPath()
		return nil
	}
	return fmt.Errorf("unknown Route unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RouteMutation) ResetEdge(name string) error {
	switch name {
	case route.EdgePath:
		m.ResetPath()
		return nil
	case route.EdgeTrips:
		m.ResetTrips()
		return nil
	}
	return fmt.Errorf("unknown Route edge %s", name)
}

// StopMutation represents an operation that mutates the Stop nodes in the graph.
type StopMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	latitude          *float64
	addlatitude       *float64
	longitude         *float64
	addlongitude      *float64
	clearedFields     map[string]struct{}
	path_stops        map[int]struct{}
	removedpath_stops map[int]struct{}
	clearedpath_stops bool
	done              bool
	oldValue          func(context.Context) (*Stop, error)
	predicates        []predicate.Stop
}

var _ ent.Mutation = (*StopMutation)(nil)

// stopOption allows management of the mutation configuration using functional options.
type stopOption func(*StopMutation)

// newStopMutation creates new mutation for the Stop entity.
func newStopMutation(c config, op Op, opts ...stopOption) *StopMutation {
	m := &StopMutation{
		config:        c,
		op:            op,
		typ:           TypeStop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStopID sets the ID field of the mutation.
func withStopID(id int) stopOption {
	return func(m *StopMutation) {
		var (
			err   error
			once  sync.Once
			value *Stop
		)
		m.oldValue = func(ctx context.Context) (*Stop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStop sets the old Stop of the mutation.
func withStop(node *Stop) stopOption {
	return func(m *StopMutation) {
		m.oldValue = func(context.Context) (*Stop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StopMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StopMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StopMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StopMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StopMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StopMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Stop entity.
// If the Stop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StopMutation) ResetName() {
	m.name = nil
}

// SetLatitude sets the "latitude" field.
func (m *StopMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *StopMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Stop entity.
// If the Stop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *StopMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *StopMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *StopMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[stop.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *StopMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[stop.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *StopMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, stop.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *StopMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *StopMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Stop entity.
// If the Stop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *StopMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *StopMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *StopMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[stop.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *StopMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[stop.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *StopMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, stop.FieldLongitude)
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by ids.
func (m *StopMutation) AddPathStopIDs(ids ...int) {
	if m.path_stops == nil {
		m.path_stops = make(map[int]struct{})
	}
	for i := range ids {
		m.path_stops[ids[i]] = struct{}{}
	}
}

// ClearPathStops clears the "path_stops" edge to the PathStop entity.
func (m *StopMutation) ClearPathStops() {
	m.clearedpath_stops = true
}

// PathStopsCleared reports if the "path_stops" edge to the PathStop entity was cleared.
func (m *StopMutation) PathStopsCleared() bool {
	return m.clearedpath_stops
}

// RemovePathStopIDs removes the "path_stops" edge to the PathStop entity by IDs.
func (m *StopMutation) RemovePathStopIDs(ids ...int) {
	if m.removedpath_stops == nil {
		m.removedpath_stops = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.path_stops, ids[i])
		m.removedpath_stops[ids[i]] = struct{}{}
	}
}

// RemovedPathStops returns the removed IDs of the "path_stops" edge to the PathStop entity.
func (m *StopMutation) RemovedPathStopsIDs() (ids []int) {
	for id := range m.removedpath_stops {
		ids = append(ids, id)
	}
	return
}

// PathStopsIDs returns the "path_stops" edge IDs in the mutation.
func (m *StopMutation) PathStopsIDs() (ids []int) {
	for id := range m.path_stops {
		ids = append(ids, id)
	}
	return
}

// ResetPathStops resets all changes to the "path_stops" edge.
func (m *StopMutation) ResetPathStops() {
	m.path_stops = nil
	m.clearedpath_stops = false
	m.removedpath_stops = nil
}

// Where appends a list predicates to the StopMutation builder.
func (m *StopMutation) Where(ps ...predicate.Stop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StopMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StopMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StopMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StopMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stop).
func (m *StopMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StopMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, stop.FieldName)
	}
	if m.latitude != nil {
		fields = append(fields, stop.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, stop.FieldLongitude)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StopMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stop.FieldName:
		return m.Name()
	case stop.FieldLatitude:
		return m.Latitude()
	case stop.FieldLongitude:
		return m.Longitude()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StopMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stop.FieldName:
		return m.OldName(ctx)
	case stop.FieldLatitude:
		return m.OldLatitude(ctx)
	case stop.FieldLongitude:
		return m.OldLongitude(ctx)
	}
	return nil, fmt.Errorf("unknown Stop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StopMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stop.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case stop.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case stop.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Stop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StopMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, stop.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, stop.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StopMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stop.FieldLatitude:
		return m.AddedLatitude()
	case stop.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StopMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stop.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case stop.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Stop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StopMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stop.FieldLatitude) {
		fields = append(fields, stop.FieldLatitude)
	}
	if m.FieldCleared(stop.FieldLongitude) {
		fields = append(fields, stop.FieldLongitude)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StopMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StopMutation) ClearField(name string) error {
	switch name {
	case stop.FieldLatitude:
		m.ClearLatitude()
		return nil
	case stop.FieldLongitude:
		m.ClearLongitude()
		return nil
	}
	return fmt.Errorf("unknown Stop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StopMutation) ResetField(name string) error {
	switch name {
	case stop.FieldName:
		m.ResetName()
		return nil
	case stop.FieldLatitude:
		m.ResetLatitude()
		return nil
	case stop.FieldLongitude:
		m.ResetLongitude()
		return nil
	}
	return fmt.Errorf("unknown Stop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StopMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.path_stops != nil {
		edges = append(edges, stop.EdgePathStops)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StopMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stop.EdgePathStops:
		ids := make([]ent.Value, 0, len(m.path_stops))
		for id := range m.path_stops {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StopMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpath_stops != nil {
		edges = append(edges, stop.EdgePathStops)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StopMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stop.EdgePathStops:
		ids := make([]ent.Value, 0, len(m.removedpath_stops))
		for id := range m.removedpath_stops {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StopMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpath_stops {
		edges = append(edges, stop.EdgePathStops)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StopMutation) EdgeCleared(name string) bool {
	switch name {
	case stop.EdgePathStops:
		return m.clearedpath_stops
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StopMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Stop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StopMutation) ResetEdge(name string) error {
	switch name {
	case stop.EdgePathStops:
		m.ResetPathStops()
		return nil
	}
	return fmt.Errorf("unknown Stop edge %s", name)
}

// TripMutation represents an operation that mutates the Trip nodes in the graph.
type TripMutation struct {
	config
	op                Op
	typ               string
	id                *int
	display_name      *string
	trip_date         *time.Time
	scheduled_time    *string
	live_status       *trip.LiveStatus
	clearedFields     map[string]struct{}
	route             *int
	clearedroute      bool
	deployment        *int
	cleareddeployment bool
	bookings          map[int]struct{}
	removedbookings   map[int]struct{}
	clearedbookings   bool
	done              bool
	oldValue          func(context.Context) (*Trip, error)
	predicates        []predicate.Trip
}

var _ ent.Mutation = (*TripMutation)(nil)

// tripOption allows management of the mutation configuration using functional options.
type tripOption func(*TripMutation)

// newTripMutation creates new mutation for the Trip entity.
func newTripMutation(c config, op Op, opts ...tripOption) *TripMutation {
	m := &TripMutation{
		config:        c,
		op:            op,
		typ:           TypeTrip,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTripID sets the ID field of the mutation.
func withTripID(id int) tripOption {
	return func(m *TripMutation) {
		var (
			err   error
			once  sync.Once
			value *Trip
		)
		m.oldValue = func(ctx context.Context) (*Trip, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trip.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrip sets the old Trip of the mutation.
func withTrip(node *Trip) tripOption {
	return func(m *TripMutation) {
		m.oldValue = func(context.Context) (*Trip, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TripMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TripMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TripMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TripMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trip.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *TripMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *TripMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *TripMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetTripDate sets the "trip_date" field.
func (m *TripMutation) SetTripDate(t time.Time) {
	m.trip_date = &t
}

// TripDate returns the value of the "trip_date" field in the mutation.
func (m *TripMutation) TripDate() (r time.Time, exists bool) {
	v := m.trip_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTripDate returns the old "trip_date" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldTripDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTripDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTripDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTripDate: %w", err)
	}
	return oldValue.TripDate, nil
}

// ResetTripDate resets all changes to the "trip_date" field.
func (m *TripMutation) ResetTripDate() {
	m.trip_date = nil
}

// SetScheduledTime sets the "scheduled_time" field.
func (m *TripMutation) SetScheduledTime(s string) {
	m.scheduled_time = &s
}

// ScheduledTime returns the value of the "scheduled_time" field in the mutation.
func (m *TripMutation) ScheduledTime() (r string, exists bool) {
	v := m.scheduled_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTime returns the old "scheduled_time" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldScheduledTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTime: %w", err)
	}
	return oldValue.ScheduledTime, nil
}

// ResetScheduledTime resets all changes to the "scheduled_time" field.
func (m *TripMutation) ResetScheduledTime() {
	m.scheduled_time = nil
}

// SetRouteID sets the "route_id" field.
func (m *TripMutation) SetRouteID(i int) {
	m.route = &i
}

// RouteID returns the value of the "route_id" field in the mutation.
func (m *TripMutation) RouteID() (r int, exists bool) {
	v := m.route
	if v == nil {
		return
	}
	return *v, true
}

// OldRouteID returns the old "route_id" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldRouteID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRouteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRouteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRouteID: %w", err)
	}
	return oldValue.RouteID, nil
}

// ClearRouteID clears the value of the "route_id" field.
func (m *TripMutation) ClearRouteID() {
	m.route = nil
	m.clearedFields[trip.FieldRouteID] = struct{}{}
}

// RouteIDCleared returns if the "route_id" field was cleared in this mutation.
func (m *TripMutation) RouteIDCleared() bool {
	_, ok := m.clearedFields[trip.FieldRouteID]
	return ok
}

// ResetRouteID resets all changes to the "route_id" field.
func (m *TripMutation) ResetRouteID() {
	m.route = nil
	delete(m.clearedFields, trip.FieldRouteID)
}

// SetLiveStatus sets the "live_status" field.
func (m *TripMutation) SetLiveStatus(ts trip.LiveStatus) {
	m.live_status = &ts
}

// LiveStatus returns the value of the "live_status" field in the mutation.
func (m *TripMutation) LiveStatus() (r trip.LiveStatus, exists bool) {
	v := m.live_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLiveStatus returns the old "live_status" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldLiveStatus(ctx context.Context) (v trip.LiveStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLiveStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLiveStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLiveStatus: %w", err)
	}
	return oldValue.LiveStatus, nil
}

// ResetLiveStatus resets all changes to the "live_status" field.
func (m *TripMutation) ResetLiveStatus() {
	m.live_status = nil
}

// ClearRoute clears the "route" edge to the Route entity.
func (m *TripMutation) ClearRoute() {
	m.clearedroute = true
	m.clearedFields[trip.FieldRouteID] = struct{}{}
}

// RouteCleared reports if the "route" edge to the Route entity was cleared.
func (m *TripMutation) RouteCleared() bool {
	return m.RouteIDCleared() || m.clearedroute
}

// RouteIDs returns the "route" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RouteID instead. It exists only for internal usage by the builders.
func (m *TripMutation) RouteIDs() (ids []int) {
	if id := m.route; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoute resets all changes to the "route" edge.
func (m *TripMutation) ResetRoute() {
	m.route = nil
	m.clearedroute = false
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by id.
func (m *TripMutation) SetDeploymentID(id int) {
	m.deployment = &id
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (m *TripMutation) ClearDeployment() {
	m.cleareddeployment = true
}

// DeploymentCleared reports if the "deployment" edge to the Deployment entity was cleared.
func (m *TripMutation) DeploymentCleared() bool {
	return m.cleareddeployment
}

// DeploymentID returns the "deployment" edge ID in the mutation.
func (m *TripMutation) DeploymentID() (id int, exists bool) {
	if m.deployment != nil {
		return *m.deployment, true
	}
	return
}

// DeploymentIDs returns the "deployment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeploymentID instead. It exists only for internal usage by the builders.
func (m *TripMutation) DeploymentIDs() (ids []int) {
	if id := m.deployment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeployment resets all changes to the "deployment" edge.
func (m *TripMutation) ResetDeployment() {
	m.deployment = nil
	m.cleareddeployment = false
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by ids.
func (m *TripMutation) AddBookingIDs(ids ...int) {
	if m.bookings == nil {
		m.bookings = make(map[int]struct{})
	}
	for i := range ids {
		m.bookings[ids[i]] = struct{}{}
	}
}

// ClearBookings clears the "bookings" edge to the Booking entity.
func (m *TripMutation) ClearBookings() {
	m.clearedbookings = true
}

// BookingsCleared reports if the "bookings" edge to the Booking entity was cleared.
func (m *TripMutation) BookingsCleared() bool {
	return m.clearedbookings
}

// RemoveBookingIDs removes the "bookings" edge to the Booking entity by IDs.
func (m *TripMutation) RemoveBookingIDs(ids ...int) {
	if m.removedbookings == nil {
		m.removedbookings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.bookings, ids[i])
		m.removedbookings[ids[i]] = struct{}{}
	}
}

// RemovedBookings returns the removed IDs of the "bookings" edge to the Booking entity.
func (m *TripMutation) RemovedBookingsIDs() (ids []int) {
	for id := range m.removedbookings {
		ids = append(ids, id)
	}
	return
}

// BookingsIDs returns the "bookings" edge IDs in the mutation.
func (m *TripMutation) BookingsIDs() (ids []int) {
	for id := range m.bookings {
		ids = append(ids, id)
	}
	return
}

// ResetBookings resets all changes to the "bookings" edge.
func (m *TripMutation) ResetBookings() {
	m.bookings = nil
	m.clearedbookings = false
	m.removedbookings = nil
}

// Where appends a list predicates to the TripMutation builder.
func (m *TripMutation) Where(ps ...predicate.Trip) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TripMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TripMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trip, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TripMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TripMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trip).
func (m *TripMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TripMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.display_name != nil {
		fields = append(fields, trip.FieldDisplayName)
	}
	if m.trip_date != nil {
		fields = append(fields, trip.FieldTripDate)
	}
	if m.scheduled_time != nil {
		fields = append(fields, trip.FieldScheduledTime)
	}
	if m.route != nil {
		fields = append(fields, trip.FieldRouteID)
	}
	if m.live_status != nil {
		fields = append(fields, trip.FieldLiveStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TripMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trip.FieldDisplayName:
		return m.DisplayName()
	case trip.FieldTripDate:
		return m.TripDate()
	case trip.FieldScheduledTime:
		return m.ScheduledTime()
	case trip.FieldRouteID:
		return m.RouteID()
	case trip.FieldLiveStatus:
		return m.LiveStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TripMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trip.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case trip.FieldTripDate:
		return m.OldTripDate(ctx)
	case trip.FieldScheduledTime:
		return m.OldScheduledTime(ctx)
	case trip.FieldRouteID:
		return m.OldRouteID(ctx)
	case trip.FieldLiveStatus:
		return m.OldLiveStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Trip field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trip.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case trip.FieldTripDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTripDate(v)
		return nil
	case trip.FieldScheduledTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTime(v)
		return nil
	case trip.FieldRouteID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRouteID(v)
		return nil
	case trip.FieldLiveStatus:
		v, ok := value.(trip.LiveStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLiveStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Trip field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TripMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TripMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Trip numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TripMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trip.FieldRouteID) {
		fields = append(fields, trip.FieldRouteID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TripMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TripMutation) ClearField(name string) error {
	switch name {
	case trip.FieldRouteID:
		m.ClearRouteID()
		return nil
	}
	return fmt.Errorf("unknown Trip nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TripMutation) ResetField(name string) error {
	switch name {
	case trip.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case trip.FieldTripDate:
		m.ResetTripDate()
		return nil
	case trip.FieldScheduledTime:
		m.ResetScheduledTime()
		return nil
	case trip.FieldRouteID:
		m.ResetRouteID()
		return nil
	case trip.FieldLiveStatus:
		m.ResetLiveStatus()
		return nil
	}
	return fmt.Errorf("unknown Trip field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TripMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.route != nil {
		edges = append(edges, trip.EdgeRoute)
	}
	if m.deployment != nil {
		edges = append(edges, trip.EdgeDeployment)
	}
	if m.bookings != nil {
		edges = append(edges, trip.EdgeBookings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TripMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trip.EdgeRoute:
		if id := m.route; id != nil {
			return []ent.Value{*id}
		}
	case trip.EdgeDeployment:
		if id := m.deployment; id != nil {
			return []ent.Value{*id}
		}
	case trip.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.bookings))
		for id := range m.bookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TripMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedbookings != nil {
		edges = append(edges, trip.EdgeBookings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TripMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case trip.EdgeBookings:
		ids := make([]ent.Value, 0, len(m.removedbookings))
		for id := range m.removedbookings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TripMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedroute {
		edges = append(edges, trip.EdgeRoute)
	}
	if m.cleareddeployment {
		edges = append(edges, trip.EdgeDeployment)
	}
	if m.clearedbookings {
		edges = append(edges, trip.EdgeBookings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TripMutation) EdgeCleared(name string) bool {
	switch name {
	case trip.EdgeRoute:
		return m.clearedroute
	case trip.EdgeDeployment:
		return m.cleareddeployment
	case trip.EdgeBookings:
		return m.clearedbookings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TripMutation) ClearEdge(name string) error {
	switch name {
	case trip.EdgeRoute:
		m.ClearRoute()
		return nil
	case trip.EdgeDeployment:
		m.ClearDeployment()
		return nil
	}
	return fmt.Errorf("unknown Trip unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TripMutation) ResetEdge(name string) error {
	switch name {
	case trip.EdgeRoute:
		m.ResetRoute()
		return nil
	case trip.EdgeDeployment:
		m.ResetDeployment()
		return nil
	case trip.EdgeBookings:
		m.ResetBookings()
		return nil
	}
	return fmt.Errorf("unknown Trip edge %s", name)
}

// VehicleMutation represents an operation that mutates the Vehicle nodes in the graph.
type VehicleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	registration_number *string
	vehicle_type        *vehicle.VehicleType
	capacity            *int
	addcapacity         *int
	status              *vehicle.Status
	clearedFields       map[string]struct{}
	deployments         map[int]struct{}
	removeddeployments  map[int]struct{}
	cleareddeployments  bool
	done                bool
	oldValue            func(context.Context) (*Vehicle, error)
	predicates          []predicate.Vehicle
}

var _ ent.Mutation = (*VehicleMutation)(nil)

// vehicleOption allows management of the mutation configuration using functional options.
type vehicleOption func(*VehicleMutation)

// newVehicleMutation creates new mutation for the Vehicle entity.
func newVehicleMutation(c config, op Op, opts ...vehicleOption) *VehicleMutation {
	m := &VehicleMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleID sets the ID field of the mutation.
func withVehicleID(id int) vehicleOption {
	return func(m *VehicleMutation) {
		var (
			err   error
			once  sync.Once
			value *Vehicle
		)
		m.oldValue = func(ctx context.Context) (*Vehicle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vehicle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicle sets the old Vehicle of the mutation.
func withVehicle(node *Vehicle) vehicleOption {
	return func(m *VehicleMutation) {
		m.oldValue = func(context.Context) (*Vehicle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vehicle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRegistrationNumber sets the "registration_number" field.
func (m *VehicleMutation) SetRegistrationNumber(s string) {
	m.registration_number = &s
}

// RegistrationNumber returns the value of the "registration_number" field in the mutation.
func (m *VehicleMutation) RegistrationNumber() (r string, exists bool) {
	v := m.registration_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationNumber returns the old "registration_number" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldRegistrationNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationNumber: %w", err)
	}
	return oldValue.RegistrationNumber, nil
}

// ResetRegistrationNumber resets all changes to the "registration_number" field.
func (m *VehicleMutation) ResetRegistrationNumber() {
	m.registration_number = nil
}

// SetVehicleType sets the "vehicle_type" field.
func (m *VehicleMutation) SetVehicleType(vt vehicle.VehicleType) {
	m.vehicle_type = &vt
}

// VehicleType returns the value of the "vehicle_type" field in the mutation.
func (m *VehicleMutation) VehicleType() (r vehicle.VehicleType, exists bool) {
	v := m.vehicle_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleType returns the old "vehicle_type" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldVehicleType(ctx context.Context) (v vehicle.VehicleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleType: %w", err)
	}
	return oldValue.VehicleType, nil
}

// ResetVehicleType resets all changes to the "vehicle_type" field.
func (m *VehicleMutation) ResetVehicleType() {
	m.vehicle_type = nil
}

// SetCapacity sets the "capacity" field.
func (m *VehicleMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *VehicleMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *VehicleMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *VehicleMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *VehicleMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetStatus sets the "status" field.
func (m *VehicleMutation) SetStatus(v vehicle.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VehicleMutation) Status() (r vehicle.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldStatus(ctx context.Context) (v vehicle.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VehicleMutation) ResetStatus() {
	m.status = nil
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by ids.
func (m *VehicleMutation) AddDeploymentIDs(ids ...int) {
	if m.deployments == nil {
		m.deployments = make(map[int]struct{})
	}
	for i := range ids {
		m.deployments[ids[i]] = struct{}{}
	}
}

// ClearDeployments clears the "deployments" edge to the Deployment entity.
func (m *VehicleMutation) ClearDeployments() {
	m.cleareddeployments = true
}

// DeploymentsCleared reports if the "deployments" edge to the Deployment entity was cleared.
func (m *VehicleMutation) DeploymentsCleared() bool {
	return m.cleareddeployments
}

// RemoveDeploymentIDs removes the "deployments" edge to the Deployment entity by IDs.
func (m *VehicleMutation) RemoveDeploymentIDs(ids ...int) {
	if m.removeddeployments == nil {
		m.removeddeployments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deployments, ids[i])
		m.removeddeployments[ids[i]] = struct{}{}
	}
}

// RemovedDeployments returns the removed IDs of the "deployments" edge to the Deployment entity.
func (m *VehicleMutation) RemovedDeploymentsIDs() (ids []int) {
	for id := range m.removeddeployments {
		ids = append(ids, id)
	}
	return
}

// DeploymentsIDs returns the "deployments" edge IDs in the mutation.
func (m *VehicleMutation) DeploymentsIDs() (ids []int) {
	for id := range m.deployments {
		ids = append(ids, id)
	}
	return
}

// ResetDeployments resets all changes to the "deployments" edge.
func (m *VehicleMutation) ResetDeployments() {
	m.deployments = nil
	m.cleareddeployments = false
	m.removeddeployments = nil
}

// Where appends a list predicates to the VehicleMutation builder.
func (m *VehicleMutation) Where(ps ...predicate.Vehicle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vehicle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vehicle).
func (m *VehicleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.registration_number != nil {
		fields = append(fields, vehicle.FieldRegistrationNumber)
	}
	if m.vehicle_type != nil {
		fields = append(fields, vehicle.FieldVehicleType)
	}
	if m.capacity != nil {
		fields = append(fields, vehicle.FieldCapacity)
	}
	if m.status != nil {
		fields = append(fields, vehicle.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldRegistrationNumber:
		return m.RegistrationNumber()
	case vehicle.FieldVehicleType:
		return m.VehicleType()
	case vehicle.FieldCapacity:
		return m.Capacity()
	case vehicle.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicle.FieldRegistrationNumber:
		return m.OldRegistrationNumber(ctx)
	case vehicle.FieldVehicleType:
		return m.OldVehicleType(ctx)
	case vehicle.FieldCapacity:
		return m.OldCapacity(ctx)
	case vehicle.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Vehicle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldRegistrationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationNumber(v)
		return nil
	case vehicle.FieldVehicleType:
		v, ok := value.(vehicle.VehicleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleType(v)
		return nil
	case vehicle.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case vehicle.FieldStatus:
		v, ok := value.(vehicle.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, vehicle.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Vehicle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMutation) ResetField(name string) error {
	switch name {
	case vehicle.FieldRegistrationNumber:
		m.ResetRegistrationNumber()
		return nil
	case vehicle.FieldVehicleType:
		m.ResetVehicleType()
		return nil
	case vehicle.FieldCapacity:
		m.ResetCapacity()
		return nil
	case vehicle.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deployments != nil {
		edges = append(edges, vehicle.EdgeDeployments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vehicle.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.deployments))
		for id := range m.deployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddeployments != nil {
		edges = append(edges, vehicle.EdgeDeployments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vehicle.EdgeDeployments:
		ids := make([]ent.Value, 0, len(m.removeddeployments))
		for id := range m.removeddeployments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeployments {
		edges = append(edges, vehicle.EdgeDeployments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMutation) EdgeCleared(name string) bool {
	switch name {
	case vehicle.EdgeDeployments:
		return m.cleareddeployments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vehicle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMutation) ResetEdge(name string) error {
	switch name {
	case vehicle.EdgeDeployments:
		m.ResetDeployments()
		return nil
	}
	return fmt.Errorf("unknown Vehicle edge %s", name)
}
