// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/trip"
)

// RouteCreate is the builder for creating a Route entity.
type RouteCreate struct {
	config
	mutation *RouteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *RouteCreate) SetName(v string) *RouteCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *RouteCreate) SetPathID(v int) *RouteCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *RouteCreate) SetDirection(v route.Direction) *RouteCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetShiftTime sets the "shift_time" field.
func (_c *RouteCreate) SetShiftTime(v string) *RouteCreate {
	_c.mutation.SetShiftTime(v)
	return _c
}

// SetPath sets the "path" edge to the Path entity.
func (_c *RouteCreate) SetPath(v *Path) *RouteCreate {
	return _c.SetPathID(v.ID)
}

// AddTripIDs adds the "trips" edge to the Trip entity by IDs.
func (_c *RouteCreate) AddTripIDs(ids ...int) *RouteCreate {
	_c.mutation.AddTripIDs(ids...)
	return _c
}

// AddTrips adds the "trips" edges to the Trip entity.
func (_c *RouteCreate) AddTrips(v ...*Trip) *RouteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTripIDs(ids...)
}

// Mutation returns the RouteMutation object of the builder.
func (_c *RouteCreate) Mutation() *RouteMutation {
	return _c.mutation
}

// Save creates the Route in the database.
func (_c *RouteCreate) Save(ctx context.Context) (*Route, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RouteCreate) SaveX(ctx context.Context) *Route {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RouteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RouteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RouteCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Route.name"`)}
	}
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "Route.path_id"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Route.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := route.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Route.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShiftTime(); !ok {
		return &ValidationError{Name: "shift_time", err: errors.New(`ent: missing required field "Route.shift_time"`)}
	}
	if len(_c.mutation.PathIDs()) == 0 {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required edge "Route.path"`)}
	}
	return nil
}

func (_c *RouteCreate) sqlSave(ctx context.Context) (*Route, error) {
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

func (_c *RouteCreate) createSpec() (*Route, *sqlgraph.CreateSpec) {
	var (
		_node = &Route{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(route.Table, sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(route.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(route.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.ShiftTime(); ok {
		_spec.SetField(route.FieldShiftTime, field.TypeString, value)
		_node.ShiftTime = value
	}
	if nodes := _c.mutation.PathIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   route.PathTable,
			Columns: []string{route.PathColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(path.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PathID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TripsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   route.TripsTable,
			Columns: []string{route.TripsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trip.FieldID, field.TypeInt),
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
//	client.Route.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RouteUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RouteCreate) OnConflict(opts ...sql.ConflictOption) *RouteUpsertOne {
	_c.conflict = opts
	return &RouteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Route.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RouteCreate) OnConflictColumns(columns ...string) *RouteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RouteUpsertOne{
		create: _c,
	}
}

type (
	// RouteUpsertOne is the builder for "upsert"-ing
	//  one Route node.
	RouteUpsertOne struct {
		create *RouteCreate
	}

	// RouteUpsert is the "OnConflict" setter.
	RouteUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *RouteUpsert) SetName(v string) *RouteUpsert {
	u.Set(route.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RouteUpsert) UpdateName() *RouteUpsert {
	u.SetExcluded(route.FieldName)
	return u
}

// SetPathID sets the "path_id" field.
func (u *RouteUpsert) SetPathID(v int) *RouteUpsert {
	u.Set(route.FieldPathID, v)
	return u
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *RouteUpsert) UpdatePathID() *RouteUpsert {
	u.SetExcluded(route.FieldPathID)
	return u
}

// SetDirection sets the "direction" field.
func (u *RouteUpsert) SetDirection(v route.Direction) *RouteUpsert {
	u.Set(route.FieldDirection, v)
	return u
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *RouteUpsert) UpdateDirection() *RouteUpsert {
	u.SetExcluded(route.FieldDirection)
	return u
}

// SetShiftTime sets the "shift_time" field.
func (u *RouteUpsert) SetShiftTime(v string) *RouteUpsert {
	u.Set(route.FieldShiftTime, v)
	return u
}

// UpdateShiftTime sets the "shift_time" field to the value that was provided on create.
func (u *RouteUpsert) UpdateShiftTime() *RouteUpsert {
	u.SetExcluded(route.FieldShiftTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Route.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RouteUpsertOne) UpdateNewValues() *RouteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Route.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RouteUpsertOne) Ignore() *RouteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RouteUpsertOne) DoNothing() *RouteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RouteCreate.OnConflict
// documentation for more info.
func (u *RouteUpsertOne) Update(set func(*RouteUpsert)) *RouteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RouteUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RouteUpsertOne) SetName(v string) *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RouteUpsertOne) UpdateName() *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateName()
	})
}

// SetPathID sets the "path_id" field.
func (u *RouteUpsertOne) SetPathID(v int) *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *RouteUpsertOne) UpdatePathID() *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.UpdatePathID()
	})
}

// SetDirection sets the "direction" field.
func (u *RouteUpsertOne) SetDirection(v route.Direction) *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.SetDirection(v)
	})
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *RouteUpsertOne) UpdateDirection() *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateDirection()
	})
}

// SetShiftTime sets the "shift_time" field.
func (u *RouteUpsertOne) SetShiftTime(v string) *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.SetShiftTime(v)
	})
}

// UpdateShiftTime sets the "shift_time" field to the value that was provided on create.
func (u *RouteUpsertOne) UpdateShiftTime() *RouteUpsertOne {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateShiftTime()
	})
}

// Exec executes the query.
func (u *RouteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RouteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RouteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RouteUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RouteUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RouteCreateBulk is the builder for creating many Route entities in bulk.
type RouteCreateBulk struct {
	config
	err      error
	builders []*RouteCreate
	conflict []sql.ConflictOption
}

// Save creates the Route entities in the database.
func (_c *RouteCreateBulk) Save(ctx context.Context) ([]*Route, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Route, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RouteMutation)
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
func (_c *RouteCreateBulk) SaveX(ctx context.Context) []*Route {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RouteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RouteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Route.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RouteUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *RouteCreateBulk) OnConflict(opts ...sql.ConflictOption) *RouteUpsertBulk {
	_c.conflict = opts
	return &RouteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Route.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RouteCreateBulk) OnConflictColumns(columns ...string) *RouteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RouteUpsertBulk{
		create: _c,
	}
}

// RouteUpsertBulk is the builder for "upsert"-ing
// a bulk of Route nodes.
type RouteUpsertBulk struct {
	create *RouteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Route.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RouteUpsertBulk) UpdateNewValues() *RouteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Route.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RouteUpsertBulk) Ignore() *RouteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RouteUpsertBulk) DoNothing() *RouteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RouteCreateBulk.OnConflict
// documentation for more info.
func (u *RouteUpsertBulk) Update(set func(*RouteUpsert)) *RouteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RouteUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *RouteUpsertBulk) SetName(v string) *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RouteUpsertBulk) UpdateName() *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateName()
	})
}

// SetPathID sets the "path_id" field.
func (u *RouteUpsertBulk) SetPathID(v int) *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *RouteUpsertBulk) UpdatePathID() *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.UpdatePathID()
	})
}

// SetDirection sets the "direction" field.
func (u *RouteUpsertBulk) SetDirection(v route.Direction) *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.SetDirection(v)
	})
}

// UpdateDirection sets the "direction" field to the value that was provided on create.
func (u *RouteUpsertBulk) UpdateDirection() *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateDirection()
	})
}

// SetShiftTime sets the "shift_time" field.
func (u *RouteUpsertBulk) SetShiftTime(v string) *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.SetShiftTime(v)
	})
}

// UpdateShiftTime sets the "shift_time" field to the value that was provided on create.
func (u *RouteUpsertBulk) UpdateShiftTime() *RouteUpsertBulk {
	return u.Update(func(s *RouteUpsert) {
		s.UpdateShiftTime()
	})
}

// Exec executes the query.
func (u *RouteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RouteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RouteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RouteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
