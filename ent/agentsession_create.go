// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/agentsession"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AgentSessionCreate) SetUserID(v int) *AgentSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPendingAction sets the "pending_action" field.
func (_c *AgentSessionCreate) SetPendingAction(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetPendingAction(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUserResponse sets the "user_response" field.
func (_c *AgentSessionCreate) SetUserResponse(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetUserResponse(v)
	return _c
}

// SetExecutionResult sets the "execution_result" field.
func (_c *AgentSessionCreate) SetExecutionResult(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetExecutionResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentSessionCreate) SetUpdatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableUpdatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AgentSessionCreate) SetExpiresAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AgentSession.user_id"`)}
	}
	if _, ok := _c.mutation.PendingAction(); !ok {
		return &ValidationError{Name: "pending_action", err: errors.New(`ent: missing required field "AgentSession.pending_action"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentSession.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "AgentSession.expires_at"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(agentsession.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PendingAction(); ok {
		_spec.SetField(agentsession.FieldPendingAction, field.TypeJSON, value)
		_node.PendingAction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserResponse(); ok {
		_spec.SetField(agentsession.FieldUserResponse, field.TypeJSON, value)
		_node.UserResponse = value
	}
	if value, ok := _c.mutation.ExecutionResult(); ok {
		_spec.SetField(agentsession.FieldExecutionResult, field.TypeJSON, value)
		_node.ExecutionResult = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(agentsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertOne {
	_c.conflict = opts
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreate) OnConflictColumns(columns ...string) *AgentSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertOne{
		create: _c,
	}
}

type (
	// AgentSessionUpsertOne is the builder for "upsert"-ing
	//  one AgentSession node.
	AgentSessionUpsertOne struct {
		create *AgentSessionCreate
	}

	// AgentSessionUpsert is the "OnConflict" setter.
	AgentSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AgentSessionUpsert) SetUserID(v int) *AgentSessionUpsert {
	u.Set(agentsession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateUserID() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *AgentSessionUpsert) AddUserID(v int) *AgentSessionUpsert {
	u.Add(agentsession.FieldUserID, v)
	return u
}

// SetPendingAction sets the "pending_action" field.
func (u *AgentSessionUpsert) SetPendingAction(v map[string]interface{}) *AgentSessionUpsert {
	u.Set(agentsession.FieldPendingAction, v)
	return u
}

// UpdatePendingAction sets the "pending_action" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdatePendingAction() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldPendingAction)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentSessionUpsert) SetStatus(v agentsession.Status) *AgentSessionUpsert {
	u.Set(agentsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateStatus() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldStatus)
	return u
}

// SetUserResponse sets the "user_response" field.
func (u *AgentSessionUpsert) SetUserResponse(v map[string]interface{}) *AgentSessionUpsert {
	u.Set(agentsession.FieldUserResponse, v)
	return u
}

// UpdateUserResponse sets the "user_response" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateUserResponse() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldUserResponse)
	return u
}

// ClearUserResponse clears the value of the "user_response" field.
func (u *AgentSessionUpsert) ClearUserResponse() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldUserResponse)
	return u
}

// SetExecutionResult sets the "execution_result" field.
func (u *AgentSessionUpsert) SetExecutionResult(v map[string]interface{}) *AgentSessionUpsert {
	u.Set(agentsession.FieldExecutionResult, v)
	return u
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateExecutionResult() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldExecutionResult)
	return u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *AgentSessionUpsert) ClearExecutionResult() *AgentSessionUpsert {
	u.SetNull(agentsession.FieldExecutionResult)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentSessionUpsert) SetUpdatedAt(v time.Time) *AgentSessionUpsert {
	u.Set(agentsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateUpdatedAt() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldUpdatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *AgentSessionUpsert) SetExpiresAt(v time.Time) *AgentSessionUpsert {
	u.Set(agentsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AgentSessionUpsert) UpdateExpiresAt() *AgentSessionUpsert {
	u.SetExcluded(agentsession.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertOne) UpdateNewValues() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentSessionUpsertOne) Ignore() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertOne) DoNothing() *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreate.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertOne) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AgentSessionUpsertOne) SetUserID(v int) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AgentSessionUpsertOne) AddUserID(v int) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateUserID() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetPendingAction sets the "pending_action" field.
func (u *AgentSessionUpsertOne) SetPendingAction(v map[string]interface{}) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetPendingAction(v)
	})
}

// UpdatePendingAction sets the "pending_action" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdatePendingAction() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdatePendingAction()
	})
}

// SetStatus sets the "status" field.
func (u *AgentSessionUpsertOne) SetStatus(v agentsession.Status) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateStatus() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetUserResponse sets the "user_response" field.
func (u *AgentSessionUpsertOne) SetUserResponse(v map[string]interface{}) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUserResponse(v)
	})
}

// UpdateUserResponse sets the "user_response" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateUserResponse() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUserResponse()
	})
}

// ClearUserResponse clears the value of the "user_response" field.
func (u *AgentSessionUpsertOne) ClearUserResponse() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearUserResponse()
	})
}

// SetExecutionResult sets the "execution_result" field.
func (u *AgentSessionUpsertOne) SetExecutionResult(v map[string]interface{}) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetExecutionResult(v)
	})
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateExecutionResult() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateExecutionResult()
	})
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *AgentSessionUpsertOne) ClearExecutionResult() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearExecutionResult()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentSessionUpsertOne) SetUpdatedAt(v time.Time) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateUpdatedAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AgentSessionUpsertOne) SetExpiresAt(v time.Time) *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AgentSessionUpsertOne) UpdateExpiresAt() *AgentSessionUpsertOne {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentSessionUpsertOne.ID is not supported by MySQL driver. Use AgentSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentSessionUpsertBulk {
	_c.conflict = opts
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentSessionCreateBulk) OnConflictColumns(columns ...string) *AgentSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentSessionUpsertBulk{
		create: _c,
	}
}

// AgentSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentSession nodes.
type AgentSessionUpsertBulk struct {
	create *AgentSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) UpdateNewValues() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentSessionUpsertBulk) Ignore() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentSessionUpsertBulk) DoNothing() *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AgentSessionUpsertBulk) Update(set func(*AgentSessionUpsert)) *AgentSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AgentSessionUpsertBulk) SetUserID(v int) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AgentSessionUpsertBulk) AddUserID(v int) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateUserID() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetPendingAction sets the "pending_action" field.
func (u *AgentSessionUpsertBulk) SetPendingAction(v map[string]interface{}) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetPendingAction(v)
	})
}

// UpdatePendingAction sets the "pending_action" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdatePendingAction() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdatePendingAction()
	})
}

// SetStatus sets the "status" field.
func (u *AgentSessionUpsertBulk) SetStatus(v agentsession.Status) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateStatus() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetUserResponse sets the "user_response" field.
func (u *AgentSessionUpsertBulk) SetUserResponse(v map[string]interface{}) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUserResponse(v)
	})
}

// UpdateUserResponse sets the "user_response" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateUserResponse() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUserResponse()
	})
}

// ClearUserResponse clears the value of the "user_response" field.
func (u *AgentSessionUpsertBulk) ClearUserResponse() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearUserResponse()
	})
}

// SetExecutionResult sets the "execution_result" field.
func (u *AgentSessionUpsertBulk) SetExecutionResult(v map[string]interface{}) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetExecutionResult(v)
	})
}

// UpdateExecutionResult sets the "execution_result" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateExecutionResult() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateExecutionResult()
	})
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (u *AgentSessionUpsertBulk) ClearExecutionResult() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.ClearExecutionResult()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentSessionUpsertBulk) SetUpdatedAt(v time.Time) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateUpdatedAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AgentSessionUpsertBulk) SetExpiresAt(v time.Time) *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AgentSessionUpsertBulk) UpdateExpiresAt() *AgentSessionUpsertBulk {
	return u.Update(func(s *AgentSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *AgentSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
