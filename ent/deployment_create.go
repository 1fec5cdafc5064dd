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
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// DeploymentCreate is the builder for creating a Deployment entity.
type DeploymentCreate struct {
	config
	mutation *DeploymentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTripID sets the "trip_id" field.
func (_c *DeploymentCreate) SetTripID(v int) *DeploymentCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *DeploymentCreate) SetVehicleID(v int) *DeploymentCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableVehicleID(v *int) *DeploymentCreate {
	if v != nil {
		_c.SetVehicleID(*v)
	}
	return _c
}

// SetDriverID sets the "driver_id" field.
func (_c *DeploymentCreate) SetDriverID(v int) *DeploymentCreate {
	_c.mutation.SetDriverID(v)
	return _c
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableDriverID(v *int) *DeploymentCreate {
	if v != nil {
		_c.SetDriverID(*v)
	}
	return _c
}

// SetDeployedAt sets the "deployed_at" field.
func (_c *DeploymentCreate) SetDeployedAt(v time.Time) *DeploymentCreate {
	_c.mutation.SetDeployedAt(v)
	return _c
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_c *DeploymentCreate) SetNillableDeployedAt(v *time.Time) *DeploymentCreate {
	if v != nil {
		_c.SetDeployedAt(*v)
	}
	return _c
}

// SetTrip sets the "trip" edge to the Trip entity.
func (_c *DeploymentCreate) SetTrip(v *Trip) *DeploymentCreate {
	return _c.SetTripID(v.ID)
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_c *DeploymentCreate) SetVehicle(v *Vehicle) *DeploymentCreate {
	return _c.SetVehicleID(v.ID)
}

// SetDriver sets the "driver" edge to the DriverProfile entity.
func (_c *DeploymentCreate) SetDriver(v *DriverProfile) *DeploymentCreate {
	return _c.SetDriverID(v.ID)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_c *DeploymentCreate) Mutation() *DeploymentMutation {
	return _c.mutation
}

// Save creates the Deployment in the database.
func (_c *DeploymentCreate) Save(ctx context.Context) (*Deployment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeploymentCreate) SaveX(ctx context.Context) *Deployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeploymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeploymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeploymentCreate) defaults() {
	if _, ok := _c.mutation.DeployedAt(); !ok {
		v := deployment.DefaultDeployedAt()
		_c.mutation.SetDeployedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeploymentCreate) check() error {
	if _, ok := _c.mutation.TripID(); !ok {
		return &ValidationError{Name: "trip_id", err: errors.New(`ent: missing required field "Deployment.trip_id"`)}
	}
	if _, ok := _c.mutation.DeployedAt(); !ok {
		return &ValidationError{Name: "deployed_at", err: errors.New(`ent: missing required field "Deployment.deployed_at"`)}
	}
	if len(_c.mutation.TripIDs()) == 0 {
		return &ValidationError{Name: "trip", err: errors.New(`ent: missing required edge "Deployment.trip"`)}
	}
	return nil
}

func (_c *DeploymentCreate) sqlSave(ctx context.Context) (*Deployment, error) {
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

func (_c *DeploymentCreate) createSpec() (*Deployment, *sqlgraph.CreateSpec) {
	var (
		_node = &Deployment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deployment.Table, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.DeployedAt(); ok {
		_spec.SetField(deployment.FieldDeployedAt, field.TypeTime, value)
		_node.DeployedAt = value
	}
	if nodes := _c.mutation.TripIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   deployment.TripTable,
			Columns: []string{deployment.TripColumn},
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
	if nodes := _c.mutation.VehicleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deployment.VehicleTable,
			Columns: []string{deployment.VehicleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VehicleID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DriverIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deployment.DriverTable,
			Columns: []string{deployment.DriverColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(driverprofile.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DriverID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Deployment.Create().
//		SetTripID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeploymentUpsert) {
//			SetTripID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeploymentCreate) OnConflict(opts ...sql.ConflictOption) *DeploymentUpsertOne {
	_c.conflict = opts
	return &DeploymentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeploymentCreate) OnConflictColumns(columns ...string) *DeploymentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeploymentUpsertOne{
		create: _c,
	}
}

type (
	// DeploymentUpsertOne is the builder for "upsert"-ing
	//  one Deployment node.
	DeploymentUpsertOne struct {
		create *DeploymentCreate
	}

	// DeploymentUpsert is the "OnConflict" setter.
	DeploymentUpsert struct {
		*sql.UpdateSet
	}
)

// SetTripID sets the "trip_id" field.
func (u *DeploymentUpsert) SetTripID(v int) *DeploymentUpsert {
	u.Set(deployment.FieldTripID, v)
	return u
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateTripID() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldTripID)
	return u
}

// SetVehicleID sets the "vehicle_id" field.
func (u *DeploymentUpsert) SetVehicleID(v int) *DeploymentUpsert {
	u.Set(deployment.FieldVehicleID, v)
	return u
}

// UpdateVehicleID sets the "vehicle_id" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateVehicleID() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldVehicleID)
	return u
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (u *DeploymentUpsert) ClearVehicleID() *DeploymentUpsert {
	u.SetNull(deployment.FieldVehicleID)
	return u
}

// SetDriverID sets the "driver_id" field.
func (u *DeploymentUpsert) SetDriverID(v int) *DeploymentUpsert {
	u.Set(deployment.FieldDriverID, v)
	return u
}

// UpdateDriverID sets the "driver_id" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateDriverID() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldDriverID)
	return u
}

// ClearDriverID clears the value of the "driver_id" field.
func (u *DeploymentUpsert) ClearDriverID() *DeploymentUpsert {
	u.SetNull(deployment.FieldDriverID)
	return u
}

// SetDeployedAt sets the "deployed_at" field.
func (u *DeploymentUpsert) SetDeployedAt(v time.Time) *DeploymentUpsert {
	u.Set(deployment.FieldDeployedAt, v)
	return u
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *DeploymentUpsert) UpdateDeployedAt() *DeploymentUpsert {
	u.SetExcluded(deployment.FieldDeployedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeploymentUpsertOne) UpdateNewValues() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeploymentUpsertOne) Ignore() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeploymentUpsertOne) DoNothing() *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeploymentCreate.OnConflict
// documentation for more info.
func (u *DeploymentUpsertOne) Update(set func(*DeploymentUpsert)) *DeploymentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeploymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTripID sets the "trip_id" field.
func (u *DeploymentUpsertOne) SetTripID(v int) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetTripID(v)
	})
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateTripID() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateTripID()
	})
}

// SetVehicleID sets the "vehicle_id" field.
func (u *DeploymentUpsertOne) SetVehicleID(v int) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetVehicleID(v)
	})
}

// UpdateVehicleID sets the "vehicle_id" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateVehicleID() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateVehicleID()
	})
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (u *DeploymentUpsertOne) ClearVehicleID() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearVehicleID()
	})
}

// SetDriverID sets the "driver_id" field.
func (u *DeploymentUpsertOne) SetDriverID(v int) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDriverID(v)
	})
}

// UpdateDriverID sets the "driver_id" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateDriverID() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDriverID()
	})
}

// ClearDriverID clears the value of the "driver_id" field.
func (u *DeploymentUpsertOne) ClearDriverID() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearDriverID()
	})
}

// SetDeployedAt sets the "deployed_at" field.
func (u *DeploymentUpsertOne) SetDeployedAt(v time.Time) *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDeployedAt(v)
	})
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *DeploymentUpsertOne) UpdateDeployedAt() *DeploymentUpsertOne {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDeployedAt()
	})
}

// Exec executes the query.
func (u *DeploymentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeploymentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeploymentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeploymentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeploymentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeploymentCreateBulk is the builder for creating many Deployment entities in bulk.
type DeploymentCreateBulk struct {
	config
	err      error
	builders []*DeploymentCreate
	conflict []sql.ConflictOption
}

// Save creates the Deployment entities in the database.
func (_c *DeploymentCreateBulk) Save(ctx context.Context) ([]*Deployment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deployment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeploymentMutation)
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
func (_c *DeploymentCreateBulk) SaveX(ctx context.Context) []*Deployment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeploymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeploymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Deployment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeploymentUpsert) {
//			SetTripID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeploymentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeploymentUpsertBulk {
	_c.conflict = opts
	return &DeploymentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeploymentCreateBulk) OnConflictColumns(columns ...string) *DeploymentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeploymentUpsertBulk{
		create: _c,
	}
}

// DeploymentUpsertBulk is the builder for "upsert"-ing
// a bulk of Deployment nodes.
type DeploymentUpsertBulk struct {
	create *DeploymentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeploymentUpsertBulk) UpdateNewValues() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Deployment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeploymentUpsertBulk) Ignore() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeploymentUpsertBulk) DoNothing() *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeploymentCreateBulk.OnConflict
// documentation for more info.
func (u *DeploymentUpsertBulk) Update(set func(*DeploymentUpsert)) *DeploymentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeploymentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTripID sets the "trip_id" field.
func (u *DeploymentUpsertBulk) SetTripID(v int) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetTripID(v)
	})
}

// UpdateTripID sets the "trip_id" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateTripID() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateTripID()
	})
}

// SetVehicleID sets the "vehicle_id" field.
func (u *DeploymentUpsertBulk) SetVehicleID(v int) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetVehicleID(v)
	})
}

// UpdateVehicleID sets the "vehicle_id" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateVehicleID() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateVehicleID()
	})
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (u *DeploymentUpsertBulk) ClearVehicleID() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearVehicleID()
	})
}

// SetDriverID sets the "driver_id" field.
func (u *DeploymentUpsertBulk) SetDriverID(v int) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDriverID(v)
	})
}

// UpdateDriverID sets the "driver_id" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateDriverID() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDriverID()
	})
}

// ClearDriverID clears the value of the "driver_id" field.
func (u *DeploymentUpsertBulk) ClearDriverID() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.ClearDriverID()
	})
}

// SetDeployedAt sets the "deployed_at" field.
func (u *DeploymentUpsertBulk) SetDeployedAt(v time.Time) *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.SetDeployedAt(v)
	})
}

// UpdateDeployedAt sets the "deployed_at" field to the value that was provided on create.
func (u *DeploymentUpsertBulk) UpdateDeployedAt() *DeploymentUpsertBulk {
	return u.Update(func(s *DeploymentUpsert) {
		s.UpdateDeployedAt()
	})
}

// Exec executes the query.
func (u *DeploymentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeploymentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeploymentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeploymentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
