// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// VehicleCreate is the builder for creating a Vehicle entity.
type VehicleCreate struct {
	config
	mutation *VehicleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRegistrationNumber sets the "registration_number" field.
func (_c *VehicleCreate) SetRegistrationNumber(v string) *VehicleCreate {
	_c.mutation.SetRegistrationNumber(v)
	return _c
}

// SetVehicleType sets the "vehicle_type" field.
func (_c *VehicleCreate) SetVehicleType(v vehicle.VehicleType) *VehicleCreate {
	_c.mutation.SetVehicleType(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *VehicleCreate) SetCapacity(v int) *VehicleCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VehicleCreate) SetStatus(v vehicle.Status) *VehicleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VehicleCreate) SetNillableStatus(v *vehicle.Status) *VehicleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_c *VehicleCreate) AddDeploymentIDs(ids ...int) *VehicleCreate {
	_c.mutation.AddDeploymentIDs(ids...)
	return _c
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_c *VehicleCreate) AddDeployments(v ...*Deployment) *VehicleCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeploymentIDs(ids...)
}

// Mutation returns the VehicleMutation object of the builder.
func (_c *VehicleCreate) Mutation() *VehicleMutation {
	return _c.mutation
}

// Save creates the Vehicle in the database.
func (_c *VehicleCreate) Save(ctx context.Context) (*Vehicle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleCreate) SaveX(ctx context.Context) *Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := vehicle.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleCreate) check() error {
	if _, ok := _c.mutation.RegistrationNumber(); !ok {
		return &ValidationError{Name: "registration_number", err: errors.New(`ent: missing required field "Vehicle.registration_number"`)}
	}
	if _, ok := _c.mutation.VehicleType(); !ok {
		return &ValidationError{Name: "vehicle_type", err: errors.New(`ent: missing required field "Vehicle.vehicle_type"`)}
	}
	if v, ok := _c.mutation.VehicleType(); ok {
		if err := vehicle.VehicleTypeValidator(v); err != nil {
			return &ValidationError{Name: "vehicle_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.vehicle_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`ent: missing required field "Vehicle.capacity"`)}
	}
	if v, ok := _c.mutation.Capacity(); ok {
		if err := vehicle.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Vehicle.capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Vehicle.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	return nil
}

func (_c *VehicleCreate) sqlSave(ctx context.Context) (*Vehicle, error) {
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

func (_c *VehicleCreate) createSpec() (*Vehicle, *sqlgraph.CreateSpec) {
	var (
		_node = &Vehicle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehicle.Table, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.RegistrationNumber(); ok {
		_spec.SetField(vehicle.FieldRegistrationNumber, field.TypeString, value)
		_node.RegistrationNumber = value
	}
	if value, ok := _c.mutation.VehicleType(); ok {
		_spec.SetField(vehicle.FieldVehicleType, field.TypeEnum, value)
		_node.VehicleType = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(vehicle.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.DeploymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vehicle.DeploymentsTable,
			Columns: []string{vehicle.DeploymentsColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vehicle.Create().
//		SetRegistrationNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VehicleUpsert) {
//			SetRegistrationNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *VehicleCreate) OnConflict(opts ...sql.ConflictOption) *VehicleUpsertOne {
	_c.conflict = opts
	return &VehicleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VehicleCreate) OnConflictColumns(columns ...string) *VehicleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VehicleUpsertOne{
		create: _c,
	}
}

type (
	// VehicleUpsertOne is the builder for "upsert"-ing
	//  one Vehicle node.
	VehicleUpsertOne struct {
		create *VehicleCreate
	}

	// VehicleUpsert is the "OnConflict" setter.
	VehicleUpsert struct {
		*sql.UpdateSet
	}
)

// SetRegistrationNumber sets the "registration_number" field.
func (u *VehicleUpsert) SetRegistrationNumber(v string) *VehicleUpsert {
	u.Set(vehicle.FieldRegistrationNumber, v)
	return u
}

// UpdateRegistrationNumber sets the "registration_number" field to the value that was provided on create.
func (u *VehicleUpsert) UpdateRegistrationNumber() *VehicleUpsert {
	u.SetExcluded(vehicle.FieldRegistrationNumber)
	return u
}

// SetVehicleType sets the "vehicle_type" field.
func (u *VehicleUpsert) SetVehicleType(v vehicle.VehicleType) *VehicleUpsert {
	u.Set(vehicle.FieldVehicleType, v)
	return u
}

// UpdateVehicleType sets the "vehicle_type" field to the value that was provided on create.
func (u *VehicleUpsert) UpdateVehicleType() *VehicleUpsert {
	u.SetExcluded(vehicle.FieldVehicleType)
	return u
}

// SetCapacity sets the "capacity" field.
func (u *VehicleUpsert) SetCapacity(v int) *VehicleUpsert {
	u.Set(vehicle.FieldCapacity, v)
	return u
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *VehicleUpsert) UpdateCapacity() *VehicleUpsert {
	u.SetExcluded(vehicle.FieldCapacity)
	return u
}

// AddCapacity adds v to the "capacity" field.
func (u *VehicleUpsert) AddCapacity(v int) *VehicleUpsert {
	u.Add(vehicle.FieldCapacity, v)
	return u
}

// SetStatus sets the "status" field.
func (u *VehicleUpsert) SetStatus(v vehicle.Status) *VehicleUpsert {
	u.Set(vehicle.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VehicleUpsert) UpdateStatus() *VehicleUpsert {
	u.SetExcluded(vehicle.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VehicleUpsertOne) UpdateNewValues() *VehicleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VehicleUpsertOne) Ignore() *VehicleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VehicleUpsertOne) DoNothing() *VehicleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VehicleCreate.OnConflict
// documentation for more info.
func (u *VehicleUpsertOne) Update(set func(*VehicleUpsert)) *VehicleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VehicleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRegistrationNumber sets the "registration_number" field.
func (u *VehicleUpsertOne) SetRegistrationNumber(v string) *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.SetRegistrationNumber(v)
	})
}

// UpdateRegistrationNumber sets the "registration_number" field to the value that was provided on create.
func (u *VehicleUpsertOne) UpdateRegistrationNumber() *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateRegistrationNumber()
	})
}

// SetVehicleType sets the "vehicle_type" field.
func (u *VehicleUpsertOne) SetVehicleType(v vehicle.VehicleType) *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.SetVehicleType(v)
	})
}

// UpdateVehicleType sets the "vehicle_type" field to the value that was provided on create.
func (u *VehicleUpsertOne) UpdateVehicleType() *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateVehicleType()
	})
}

// SetCapacity sets the "capacity" field.
func (u *VehicleUpsertOne) SetCapacity(v int) *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *VehicleUpsertOne) AddCapacity(v int) *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *VehicleUpsertOne) UpdateCapacity() *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateCapacity()
	})
}

// SetStatus sets the "status" field.
func (u *VehicleUpsertOne) SetStatus(v vehicle.Status) *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VehicleUpsertOne) UpdateStatus() *VehicleUpsertOne {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *VehicleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VehicleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VehicleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VehicleUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VehicleUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VehicleCreateBulk is the builder for creating many Vehicle entities in bulk.
type VehicleCreateBulk struct {
	config
	err      error
	builders []*VehicleCreate
	conflict []sql.ConflictOption
}

// Save creates the Vehicle entities in the database.
func (_c *VehicleCreateBulk) Save(ctx context.Context) ([]*Vehicle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vehicle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleMutation)
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
func (_c *VehicleCreateBulk) SaveX(ctx context.Context) []*Vehicle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vehicle.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VehicleUpsert) {
//			SetRegistrationNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *VehicleCreateBulk) OnConflict(opts ...sql.ConflictOption) *VehicleUpsertBulk {
	_c.conflict = opts
	return &VehicleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VehicleCreateBulk) OnConflictColumns(columns ...string) *VehicleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VehicleUpsertBulk{
		create: _c,
	}
}

// VehicleUpsertBulk is the builder for "upsert"-ing
// a bulk of Vehicle nodes.
type VehicleUpsertBulk struct {
	create *VehicleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VehicleUpsertBulk) UpdateNewValues() *VehicleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vehicle.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VehicleUpsertBulk) Ignore() *VehicleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VehicleUpsertBulk) DoNothing() *VehicleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VehicleCreateBulk.OnConflict
// documentation for more info.
func (u *VehicleUpsertBulk) Update(set func(*VehicleUpsert)) *VehicleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VehicleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRegistrationNumber sets the "registration_number" field.
func (u *VehicleUpsertBulk) SetRegistrationNumber(v string) *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.SetRegistrationNumber(v)
	})
}

// UpdateRegistrationNumber sets the "registration_number" field to the value that was provided on create.
func (u *VehicleUpsertBulk) UpdateRegistrationNumber() *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateRegistrationNumber()
	})
}

// SetVehicleType sets the "vehicle_type" field.
func (u *VehicleUpsertBulk) SetVehicleType(v vehicle.VehicleType) *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.SetVehicleType(v)
	})
}

// UpdateVehicleType sets the "vehicle_type" field to the value that was provided on create.
func (u *VehicleUpsertBulk) UpdateVehicleType() *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateVehicleType()
	})
}

// SetCapacity sets the "capacity" field.
func (u *VehicleUpsertBulk) SetCapacity(v int) *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *VehicleUpsertBulk) AddCapacity(v int) *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *VehicleUpsertBulk) UpdateCapacity() *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateCapacity()
	})
}

// SetStatus sets the "status" field.
func (u *VehicleUpsertBulk) SetStatus(v vehicle.Status) *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VehicleUpsertBulk) UpdateStatus() *VehicleUpsertBulk {
	return u.Update(func(s *VehicleUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *VehicleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VehicleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VehicleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VehicleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
