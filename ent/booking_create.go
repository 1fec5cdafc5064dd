// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/trip"
)

// BookingCreate is the builder for creating a Booking entity.
type BookingCreate struct {
	config
	mutation *BookingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTripID sets the "trip_id" field.
func (_c *BookingCreate) SetTripID(v int) *BookingCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetPassengerName sets the "passenger_name" field.
func (_c *BookingCreate) SetPassengerName(v string) *BookingCreate {
	_c.mutation.SetPassengerName(v)
	return _c
}

// SetNillablePassengerName sets the "passenger_name" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePassengerName(v *string) *BookingCreate {
	if v != nil {
		_c.SetPassengerName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookingCreate) SetStatus(v booking.Status) *BookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableStatus(v *booking.Status) *BookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBookedAt sets the "booked_at" field.
func (_c *BookingCreate) SetBookedAt(v time.Time) *BookingCreate {
	_c.mutation.SetBookedAt(v)
	return _c
}

// SetNillableBookedAt sets the "booked_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableBookedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetBookedAt(*v)
	}
	return _c
}

// SetTrip sets the "trip" edge to the Trip entity.
func (_c *BookingCreate) SetTrip(v *Trip) *BookingCreate {
	return _c.SetTripID(v.ID)
}

// Mutation returns the BookingMutation object of the builder.
func (_c *BookingCreate) Mutation() *BookingMutation {
	return _c.mutation
}

// Save creates the Booking in the database.
func (_c *BookingCreate) Save(ctx context.Context) (*Booking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingCreate) SaveX(ctx context.Context) *Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := booking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BookedAt(); !ok {
		v := booking.DefaultBookedAt()
		_c.mutation.SetBookedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingCreate) check() error {
	if _, ok := _c.mutation.TripID(); !ok {
		return &ValidationError{Name: "trip_id", err: errors.New(`ent: missing required field "Booking.trip_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Booking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BookedAt(); !ok {
		return &ValidationError{Name: "booked_at", err: errors.New(`ent: missing required field "Booking.booked_at"`)}
	}
	if len(_c.mutation.TripIDs()) == 0 {
		return &ValidationError{Name: "trip", err: errors.New(`ent: missing required edge "Booking.trip"`)}
	}
	return nil
}

func (_c *BookingCreate) sqlSave(ctx context.Context) (*Booking, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookingCreate) createSpec() (*Booking, *sqlgraph.CreateSpec) {
	var (
		_node = &Booking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booking.Table, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PassengerName(); ok {
		_spec.SetField(booking.FieldPassengerName, field.TypeString, value)
		_node.PassengerName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BookedAt(); ok {
		_spec.SetField(booking.FieldBookedAt, field.TypeTime, value)
		_node.BookedAt = value
	}
	if nodes := _c.mutation.TripIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   booking.TripTable,
			Columns: []string{booking.TripColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trip.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TripID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.Create().
//		SetTripID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetTripID(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreate) OnConflict(opts ...sql.ConflictOption) *BookingUpsertOne {
	_c.conflict = opts
	return &BookingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreate) OnConflictColumns(columns ...string) *BookingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertOne{
		create: _c,
	}
}

type (
	// BookingUpsertOne is the builder for "upsert"-ing
	//  one Booking node.
	BookingUpsertOne struct {
		create *BookingCreate
	}

	// BookingUpsert is the "OnConflict" setter.
	BookingUpsert struct {
		*sql.UpdateSet
	}
)

// SetTripID sets the "trip_id" field.
func (u *BookingUpsert) SetTripID(v int) *BookingUpsert {
	u.Set(booking.FieldTripID, v)
	return u
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateTripID() *BookingUpsert {
	u.SetExcluded(booking.FieldTripID)
	return u
}

// SetPassengerName sets the "passenger_name" field.
func (u *BookingUpsert) SetPassengerName(v string) *BookingUpsert {
	u.Set(booking.FieldPassengerName, v)
	return u
}

// UpdatePassengerName sets the "passenger_name" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePassengerName() *BookingUpsert {
	u.SetExcluded(booking.FieldPassengerName)
	return u
}

// ClearPassengerName clears the value of the "passenger_name" field.
func (u *BookingUpsert) ClearPassengerName() *BookingUpsert {
	u.SetNull(booking.FieldPassengerName)
	return u
}

// SetStatus sets the "status" field.
func (u *BookingUpsert) SetStatus(v booking.Status) *BookingUpsert {
	u.Set(booking.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsert) UpdateStatus() *BookingUpsert {
	u.SetExcluded(booking.FieldStatus)
	return u
}

// SetBookedAt sets the "booked_at" field.
func (u *BookingUpsert) SetBookedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldBookedAt, v)
	return u
}

// UpdateBookedAt sets the "booked_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateBookedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldBookedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BookingUpsertOne) UpdateNewValues() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BookingUpsertOne) Ignore() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertOne) DoNothing() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreate.OnConflict
// documentation for more info.
func (u *BookingUpsertOne) Update(set func(*BookingUpsert)) *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetTripID sets the "trip_id" field.
func (u *BookingUpsertOne) SetTripID(v int) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetTripID(v)
	})
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateTripID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTripID()
	})
}

// SetPassengerName sets the "passenger_name" field.
func (u *BookingUpsertOne) SetPassengerName(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPassengerName(v)
	})
}

// UpdatePassengerName sets the "passenger_name" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePassengerName() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePassengerName()
	})
}

// ClearPassengerName clears the value of the "passenger_name" field.
func (u *BookingUpsertOne) ClearPassengerName() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPassengerName()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertOne) SetStatus(v booking.Status) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateStatus() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetBookedAt sets the "booked_at" field.
func (u *BookingUpsertOne) SetBookedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetBookedAt(v)
	})
}

// UpdateBookedAt sets the "booked_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateBookedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateBookedAt()
	})
}

// Exec executes the query.
func (u *BookingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BookingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BookingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BookingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BookingCreateBulk is the builder for creating many Booking entities in bulk.
type BookingCreateBulk struct {
	config
	err      error
	builders []*BookingCreate
	conflict []sql.ConflictOption
}

// Save creates the Booking entities in the database.
func (_c *BookingCreateBulk) Save(ctx context.Context) ([]*Booking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Booking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BookingCreateBulk) SaveX(ctx context.Context) []*Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetTripID(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BookingUpsertBulk {
	_c.conflict = opts
	return &BookingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflictColumns(columns ...string) *BookingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertBulk{
		create: _c,
	}
}

// BookingUpsertBulk is the builder for "upsert"-ing
// a bulk of Booking nodes.
type BookingUpsertBulk struct {
	create *BookingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BookingUpsertBulk) UpdateNewValues() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BookingUpsertBulk) Ignore() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertBulk) DoNothing() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreateBulk.OnConflict
// documentation for more info.
func (u *BookingUpsertBulk) Update(set func(*BookingUpsert)) *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetTripID sets the "trip_id" field.
func (u *BookingUpsertBulk) SetTripID(v int) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetTripID(v)
	})
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateTripID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTripID()
	})
}

// SetPassengerName sets the "passenger_name" field.
func (u *BookingUpsertBulk) SetPassengerName(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPassengerName(v)
	})
}

// UpdatePassengerName sets the "passenger_name" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePassengerName() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePassengerName()
	})
}

// ClearPassengerName clears the value of the "passenger_name" field.
func (u *BookingUpsertBulk) ClearPassengerName() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearPassengerName()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertBulk) SetStatus(v booking.Status) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateStatus() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetBookedAt sets the "booked_at" field.
func (u *BookingUpsertBulk) SetBookedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetBookedAt(v)
	})
}

// UpdateBookedAt sets the "booked_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateBookedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateBookedAt()
	})
}

// Exec executes the query.
func (u *BookingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BookingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BookingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
