// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/stop"
)

// StopCreate is the builder for creating a Stop entity.
type StopCreate struct {
	config
	mutation *StopMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *StopCreate) SetName(v string) *StopCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *StopCreate) SetLatitude(v float64) *StopCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *StopCreate) SetNillableLatitude(v *float64) *StopCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *StopCreate) SetLongitude(v float64) *StopCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *StopCreate) SetNillableLongitude(v *float64) *StopCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by IDs.
func (_c *StopCreate) AddPathStopIDs(ids ...int) *StopCreate {
	_c.mutation.AddPathStopIDs(ids...)
	return _c
}

// AddPathStops adds the "path_stops" edges to the PathStop entity.
func (_c *StopCreate) AddPathStops(v ...*PathStop) *StopCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPathStopIDs(ids...)
}

// Mutation returns the StopMutation object of the builder.
func (_c *StopCreate) Mutation() *StopMutation {
	return _c.mutation
}

// Save creates the Stop in the database.
func (_c *StopCreate) Save(ctx context.Context) (*Stop, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StopCreate) SaveX(ctx context.Context) *Stop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StopCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StopCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StopCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Stop.name"`)}
	}
	return nil
}

func (_c *StopCreate) sqlSave(ctx context.Context) (*Stop, error) {
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

func (_c *StopCreate) createSpec() (*Stop, *sqlgraph.CreateSpec) {
	var (
		_node = &Stop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stop.Table, sqlgraph.NewFieldSpec(stop.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(stop.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(stop.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(stop.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if nodes := _c.mutation.PathStopsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stop.PathStopsTable,
			Columns: []string{stop.PathStopsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pathstop.FieldID, field.TypeInt),
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
//	client.Stop.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StopUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StopCreate) OnConflict(opts ...sql.ConflictOption) *StopUpsertOne {
	_c.conflict = opts
	return &StopUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StopCreate) OnConflictColumns(columns ...string) *StopUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StopUpsertOne{
		create: _c,
	}
}

type (
	// StopUpsertOne is the builder for "upsert"-ing
	//  one Stop node.
	StopUpsertOne struct {
		create *StopCreate
	}

	// StopUpsert is the "OnConflict" setter.
	StopUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *StopUpsert) SetName(v string) *StopUpsert {
	u.Set(stop.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StopUpsert) UpdateName() *StopUpsert {
	u.SetExcluded(stop.FieldName)
	return u
}

// SetLatitude sets the "latitude" field.
func (u *StopUpsert) SetLatitude(v float64) *StopUpsert {
	u.Set(stop.FieldLatitude, v)
	return u
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *StopUpsert) UpdateLatitude() *StopUpsert {
	u.SetExcluded(stop.FieldLatitude)
	return u
}

// AddLatitude adds v to the "latitude" field.
func (u *StopUpsert) AddLatitude(v float64) *StopUpsert {
	u.Add(stop.FieldLatitude, v)
	return u
}

// ClearLatitude clears the value of the "latitude" field.
func (u *StopUpsert) ClearLatitude() *StopUpsert {
	u.SetNull(stop.FieldLatitude)
	return u
}

// SetLongitude sets the "longitude" field.
func (u *StopUpsert) SetLongitude(v float64) *StopUpsert {
	u.Set(stop.FieldLongitude, v)
	return u
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *StopUpsert) UpdateLongitude() *StopUpsert {
	u.SetExcluded(stop.FieldLongitude)
	return u
}

// AddLongitude adds v to the "longitude" field.
func (u *StopUpsert) AddLongitude(v float64) *StopUpsert {
	u.Add(stop.FieldLongitude, v)
	return u
}

// ClearLongitude clears the value of the "longitude" field.
func (u *StopUpsert) ClearLongitude() *StopUpsert {
	u.SetNull(stop.FieldLongitude)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Stop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StopUpsertOne) UpdateNewValues() *StopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stop.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StopUpsertOne) Ignore() *StopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StopUpsertOne) DoNothing() *StopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StopCreate.OnConflict
// documentation for more info.
func (u *StopUpsertOne) Update(set func(*StopUpsert)) *StopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StopUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StopUpsertOne) SetName(v string) *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StopUpsertOne) UpdateName() *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.UpdateName()
	})
}

// SetLatitude sets the "latitude" field.
func (u *StopUpsertOne) SetLatitude(v float64) *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *StopUpsertOne) AddLatitude(v float64) *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *StopUpsertOne) UpdateLatitude() *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *StopUpsertOne) ClearLatitude() *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *StopUpsertOne) SetLongitude(v float64) *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *StopUpsertOne) AddLongitude(v float64) *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *StopUpsertOne) UpdateLongitude() *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *StopUpsertOne) ClearLongitude() *StopUpsertOne {
	return u.Update(func(s *StopUpsert) {
		s.ClearLongitude()
	})
}

// Exec executes the query.
func (u *StopUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StopCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StopUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StopUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StopUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StopCreateBulk is the builder for creating many Stop entities in bulk.
type StopCreateBulk struct {
	config
	err      error
	builders []*StopCreate
	conflict []sql.ConflictOption
}

// Save creates the Stop entities in the database.
func (_c *StopCreateBulk) Save(ctx context.Context) ([]*Stop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StopMutation)
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
func (_c *StopCreateBulk) SaveX(ctx context.Context) []*Stop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StopCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StopCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stop.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StopUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *StopCreateBulk) OnConflict(opts ...sql.ConflictOption) *StopUpsertBulk {
	_c.conflict = opts
	return &StopUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StopCreateBulk) OnConflictColumns(columns ...string) *StopUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StopUpsertBulk{
		create: _c,
	}
}

// StopUpsertBulk is the builder for "upsert"-ing
// a bulk of Stop nodes.
type StopUpsertBulk struct {
	create *StopCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Stop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StopUpsertBulk) UpdateNewValues() *StopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stop.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StopUpsertBulk) Ignore() *StopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StopUpsertBulk) DoNothing() *StopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StopCreateBulk.OnConflict
// documentation for more info.
func (u *StopUpsertBulk) Update(set func(*StopUpsert)) *StopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StopUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *StopUpsertBulk) SetName(v string) *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *StopUpsertBulk) UpdateName() *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.UpdateName()
	})
}

// SetLatitude sets the "latitude" field.
func (u *StopUpsertBulk) SetLatitude(v float64) *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.SetLatitude(v)
	})
}

// AddLatitude adds v to the "latitude" field.
func (u *StopUpsertBulk) AddLatitude(v float64) *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.AddLatitude(v)
	})
}

// UpdateLatitude sets the "latitude" field to the value that was provided on create.
func (u *StopUpsertBulk) UpdateLatitude() *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.UpdateLatitude()
	})
}

// ClearLatitude clears the value of the "latitude" field.
func (u *StopUpsertBulk) ClearLatitude() *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.ClearLatitude()
	})
}

// SetLongitude sets the "longitude" field.
func (u *StopUpsertBulk) SetLongitude(v float64) *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.SetLongitude(v)
	})
}

// AddLongitude adds v to the "longitude" field.
func (u *StopUpsertBulk) AddLongitude(v float64) *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.AddLongitude(v)
	})
}

// UpdateLongitude sets the "longitude" field to the value that was provided on create.
func (u *StopUpsertBulk) UpdateLongitude() *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.UpdateLongitude()
	})
}

// ClearLongitude clears the value of the "longitude" field.
func (u *StopUpsertBulk) ClearLongitude() *StopUpsertBulk {
	return u.Update(func(s *StopUpsert) {
		s.ClearLongitude()
	})
}

// Exec executes the query.
func (u *StopUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StopCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StopCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StopUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
