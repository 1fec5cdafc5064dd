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
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/trip"
)

// TripCreate is the builder for creating a Trip entity.
type TripCreate struct {
	config
	mutation *TripMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDisplayName sets the "display_name" field.
func (_c *TripCreate) SetDisplayName(v string) *TripCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetTripDate sets the "trip_date" field.
func (_c *TripCreate) SetTripDate(v time.Time) *TripCreate {
	_c.mutation.SetTripDate(v)
	return _c
}

// SetScheduledTime sets the "scheduled_time" field.
func (_c *TripCreate) SetScheduledTime(v string) *TripCreate {
	_c.mutation.SetScheduledTime(v)
	return _c
}

// SetRouteID sets the "route_id" field.
func (_c *TripCreate) SetRouteID(v int) *TripCreate {
	_c.mutation.SetRouteID(v)
	return _c
}

// SetNillableRouteID sets the "route_id" field if the given value is not nil.
func (_c *TripCreate) SetNillableRouteID(v *int) *TripCreate {
	if v != nil {
		_c.SetRouteID(*v)
	}
	return _c
}

// SetLiveStatus sets the "live_status" field.
func (_c *TripCreate) SetLiveStatus(v trip.LiveStatus) *TripCreate {
	_c.mutation.SetLiveStatus(v)
	return _c
}

// SetNillableLiveStatus sets the "live_status" field if the given value is not nil.
func (_c *TripCreate) SetNillableLiveStatus(v *trip.LiveStatus) *TripCreate {
	if v != nil {
		_c.SetLiveStatus(*v)
	}
	return _c
}

// SetRoute sets the "route" edge to the Route entity.
func (_c *TripCreate) SetRoute(v *Route) *TripCreate {
	return _c.SetRouteID(v.ID)
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_c *TripCreate) SetDeploymentID(id int) *TripCreate {
	_c.mutation.SetDeploymentID(id)
	return _c
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_c *TripCreate) SetNillableDeploymentID(id *int) *TripCreate {
	if id != nil {
		_c = _c.SetDeploymentID(*id)
	}
	return _c
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_c *TripCreate) SetDeployment(v *Deployment) *TripCreate {
	return _c.SetDeploymentID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_c *TripCreate) AddBookingIDs(ids ...int) *TripCreate {
	_c.mutation.AddBookingIDs(ids...)
	return _c
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_c *TripCreate) AddBookings(v ...*Booking) *TripCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBookingIDs(ids...)
}

// Mutation returns the TripMutation object of the builder.
func (_c *TripCreate) Mutation() *TripMutation {
	return _c.mutation
}

// Save creates the Trip in the database.
func (_c *TripCreate) Save(ctx context.Context) (*Trip, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TripCreate) SaveX(ctx context.Context) *Trip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TripCreate) defaults() {
	if _, ok := _c.mutation.LiveStatus(); !ok {
		v := trip.DefaultLiveStatus
		_c.mutation.SetLiveStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TripCreate) check() error {
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Trip.display_name"`)}
	}
	if _, ok := _c.mutation.TripDate(); !ok {
		return &ValidationError{Name: "trip_date", err: errors.New(`ent: missing required field "Trip.trip_date"`)}
	}
	if _, ok := _c.mutation.ScheduledTime(); !ok {
		return &ValidationError{Name: "scheduled_time", err: errors.New(`ent: missing required field "Trip.scheduled_time"`)}
	}
	if _, ok := _c.mutation.LiveStatus(); !ok {
		return &ValidationError{Name: "live_status", err: errors.New(`ent: missing required field "Trip.live_status"`)}
	}
	if v, ok := _c.mutation.LiveStatus(); ok {
		if err := trip.LiveStatusValidator(v); err != nil {
			return &ValidationError{Name: "live_status", err: fmt.Errorf(`ent: validator failed for field "Trip.live_status": %w`, err)}
		}
	}
	return nil
}

func (_c *TripCreate) sqlSave(ctx context.Context) (*Trip, error) {
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

func (_c *TripCreate) createSpec() (*Trip, *sqlgraph.CreateSpec) {
	var (
		_node = &Trip{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trip.Table, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(trip.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.TripDate(); ok {
		_spec.SetField(trip.FieldTripDate, field.TypeTime, value)
		_node.TripDate = value
	}
	if value, ok := _c.mutation.ScheduledTime(); ok {
		_spec.SetField(trip.FieldScheduledTime, field.TypeString, value)
		_node.ScheduledTime = value
	}
	if value, ok := _c.mutation.LiveStatus(); ok {
		_spec.SetField(trip.FieldLiveStatus, field.TypeEnum, value)
		_node.LiveStatus = value
	}
	if nodes := _c.mutation.RouteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trip.RouteTable,
			Columns: []string{trip.RouteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RouteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeploymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   trip.DeploymentTable,
			Columns: []string{trip.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trip.Create().
//		SetDisplayName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TripUpsert) {
//			SetDisplayName(v+v).
//		}).
//		Exec(ctx)
func (_c *TripCreate) OnConflict(opts ...sql.ConflictOption) *TripUpsertOne {
	_c.conflict = opts
	return &TripUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trip.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TripCreate) OnConflictColumns(columns ...string) *TripUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TripUpsertOne{
		create: _c,
	}
}

type (
	// TripUpsertOne is the builder for "upsert"-ing
	//  one Trip node.
	TripUpsertOne struct {
		create *TripCreate
	}

	// TripUpsert is the "OnConflict" setter.
	TripUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *TripUpsert) SetDisplayName(v string) *TripUpsert {
	u.Set(trip.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TripUpsert) UpdateDisplayName() *TripUpsert {
	u.SetExcluded(trip.FieldDisplayName)
	return u
}

// SetTripDate sets the "trip_date" field.
func (u *TripUpsert) SetTripDate(v time.Time) *TripUpsert {
	u.Set(trip.FieldTripDate, v)
	return u
}

// UpdateTripDate sets the "trip_date" field to the value that was provided on create.
func (u *TripUpsert) UpdateTripDate() *TripUpsert {
	u.SetExcluded(trip.FieldTripDate)
	return u
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TripUpsert) SetScheduledTime(v string) *TripUpsert {
	u.Set(trip.FieldScheduledTime, v)
	return u
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TripUpsert) UpdateScheduledTime() *TripUpsert {
	u.SetExcluded(trip.FieldScheduledTime)
	return u
}

// SetRouteID sets the "route_id" field.
func (u *TripUpsert) SetRouteID(v int) *TripUpsert {
	u.Set(trip.FieldRouteID, v)
	return u
}

// UpdateRouteID sets the "route_id" field to the value that was provided on create.
func (u *TripUpsert) UpdateRouteID() *TripUpsert {
	u.SetExcluded(trip.FieldRouteID)
	return u
}

// ClearRouteID clears the value of the "route_id" field.
func (u *TripUpsert) ClearRouteID() *TripUpsert {
	u.SetNull(trip.FieldRouteID)
	return u
}

// SetLiveStatus sets the "live_status" field.
func (u *TripUpsert) SetLiveStatus(v trip.LiveStatus) *TripUpsert {
	u.Set(trip.FieldLiveStatus, v)
	return u
}

// UpdateLiveStatus sets the "live_status" field to the value that was provided on create.
func (u *TripUpsert) UpdateLiveStatus() *TripUpsert {
	u.SetExcluded(trip.FieldLiveStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Trip.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TripUpsertOne) UpdateNewValues() *TripUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trip.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TripUpsertOne) Ignore() *TripUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TripUpsertOne) DoNothing() *TripUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TripCreate.OnConflict
// documentation for more info.
func (u *TripUpsertOne) Update(set func(*TripUpsert)) *TripUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TripUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *TripUpsertOne) SetDisplayName(v string) *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TripUpsertOne) UpdateDisplayName() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.UpdateDisplayName()
	})
}

// SetTripDate sets the "trip_date" field.
func (u *TripUpsertOne) SetTripDate(v time.Time) *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.SetTripDate(v)
	})
}

// UpdateTripDate sets the "trip_date" field to the value that was provided on create.
func (u *TripUpsertOne) UpdateTripDate() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.UpdateTripDate()
	})
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TripUpsertOne) SetScheduledTime(v string) *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.SetScheduledTime(v)
	})
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TripUpsertOne) UpdateScheduledTime() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.UpdateScheduledTime()
	})
}

// SetRouteID sets the "route_id" field.
func (u *TripUpsertOne) SetRouteID(v int) *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.SetRouteID(v)
	})
}

// UpdateRouteID sets the "route_id" field to the value that was provided on create.
func (u *TripUpsertOne) UpdateRouteID() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.UpdateRouteID()
	})
}

// ClearRouteID clears the value of the "route_id" field.
func (u *TripUpsertOne) ClearRouteID() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.ClearRouteID()
	})
}

// SetLiveStatus sets the "live_status" field.
func (u *TripUpsertOne) SetLiveStatus(v trip.LiveStatus) *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.SetLiveStatus(v)
	})
}

// UpdateLiveStatus sets the "live_status" field to the value that was provided on create.
func (u *TripUpsertOne) UpdateLiveStatus() *TripUpsertOne {
	return u.Update(func(s *TripUpsert) {
		s.UpdateLiveStatus()
	})
}

// Exec executes the query.
func (u *TripUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TripCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TripUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TripUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TripUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TripCreateBulk is the builder for creating many Trip entities in bulk.
type TripCreateBulk struct {
	config
	err      error
	builders []*TripCreate
	conflict []sql.ConflictOption
}

// Save creates the Trip entities in the database.
func (_c *TripCreateBulk) Save(ctx context.Context) ([]*Trip, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trip, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TripMutation)
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
func (_c *TripCreateBulk) SaveX(ctx context.Context) []*Trip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trip.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TripUpsert) {
//			SetDisplayName(v+v).
//		}).
//		Exec(ctx)
func (_c *TripCreateBulk) OnConflict(opts ...sql.ConflictOption) *TripUpsertBulk {
	_c.conflict = opts
	return &TripUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trip.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TripCreateBulk) OnConflictColumns(columns ...string) *TripUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TripUpsertBulk{
		create: _c,
	}
}

// TripUpsertBulk is the builder for "upsert"-ing
// a bulk of Trip nodes.
type TripUpsertBulk struct {
	create *TripCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Trip.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TripUpsertBulk) UpdateNewValues() *TripUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trip.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TripUpsertBulk) Ignore() *TripUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TripUpsertBulk) DoNothing() *TripUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TripCreateBulk.OnConflict
// documentation for more info.
func (u *TripUpsertBulk) Update(set func(*TripUpsert)) *TripUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TripUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *TripUpsertBulk) SetDisplayName(v string) *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TripUpsertBulk) UpdateDisplayName() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.UpdateDisplayName()
	})
}

// SetTripDate sets the "trip_date" field.
func (u *TripUpsertBulk) SetTripDate(v time.Time) *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.SetTripDate(v)
	})
}

// UpdateTripDate sets the "trip_date" field to the value that was provided on create.
func (u *TripUpsertBulk) UpdateTripDate() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.UpdateTripDate()
	})
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TripUpsertBulk) SetScheduledTime(v string) *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.SetScheduledTime(v)
	})
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TripUpsertBulk) UpdateScheduledTime() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.UpdateScheduledTime()
	})
}

// SetRouteID sets the "route_id" field.
func (u *TripUpsertBulk) SetRouteID(v int) *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.SetRouteID(v)
	})
}

// UpdateRouteID sets the "route_id" field to the value that was provided on create.
func (u *TripUpsertBulk) UpdateRouteID() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.UpdateRouteID()
	})
}

// ClearRouteID clears the value of the "route_id" field.
func (u *TripUpsertBulk) ClearRouteID() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.ClearRouteID()
	})
}

// SetLiveStatus sets the "live_status" field.
func (u *TripUpsertBulk) SetLiveStatus(v trip.LiveStatus) *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.SetLiveStatus(v)
	})
}

// UpdateLiveStatus sets the "live_status" field to the value that was provided on create.
func (u *TripUpsertBulk) UpdateLiveStatus() *TripUpsertBulk {
	return u.Update(func(s *TripUpsert) {
		s.UpdateLiveStatus()
	})
}

// Exec executes the query.
func (u *TripUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TripCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TripCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TripUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
