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
	"github.com/fleetops/dispatch/ent/driverprofile"
)

// DriverProfileCreate is the builder for creating a DriverProfile entity.
type DriverProfileCreate struct {
	config
	mutation *DriverProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *DriverProfileCreate) SetName(v string) *DriverProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *DriverProfileCreate) SetPhone(v string) *DriverProfileCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *DriverProfileCreate) SetNillablePhone(v *string) *DriverProfileCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DriverProfileCreate) SetStatus(v driverprofile.Status) *DriverProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DriverProfileCreate) SetNillableStatus(v *driverprofile.Status) *DriverProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_c *DriverProfileCreate) AddDeploymentIDs(ids ...int) *DriverProfileCreate {
	_c.mutation.AddDeploymentIDs(ids...)
	return _c
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_c *DriverProfileCreate) AddDeployments(v ...*Deployment) *DriverProfileCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeploymentIDs(ids...)
}

// Mutation returns the DriverProfileMutation object of the builder.
func (_c *DriverProfileCreate) Mutation() *DriverProfileMutation {
	return _c.mutation
}

// Save creates the DriverProfile in the database.
func (_c *DriverProfileCreate) Save(ctx context.Context) (*DriverProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DriverProfileCreate) SaveX(ctx context.Context) *DriverProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DriverProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DriverProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DriverProfileCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := driverprofile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DriverProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DriverProfile.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DriverProfile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := driverprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DriverProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_c *DriverProfileCreate) sqlSave(ctx context.Context) (*DriverProfile, error) {
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

func (_c *DriverProfileCreate) createSpec() (*DriverProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &DriverProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(driverprofile.Table, sqlgraph.NewFieldSpec(driverprofile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(driverprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(driverprofile.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(driverprofile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.DeploymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   driverprofile.DeploymentsTable,
			Columns: []string{driverprofile.DeploymentsColumn},
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
//	client.DriverProfile.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DriverProfileUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DriverProfileCreate) OnConflict(opts ...sql.ConflictOption) *DriverProfileUpsertOne {
	_c.conflict = opts
	return &DriverProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DriverProfileCreate) OnConflictColumns(columns ...string) *DriverProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DriverProfileUpsertOne{
		create: _c,
	}
}

type (
	// DriverProfileUpsertOne is the builder for "upsert"-ing
	//  one DriverProfile node.
	DriverProfileUpsertOne struct {
		create *DriverProfileCreate
	}

	// DriverProfileUpsert is the "OnConflict" setter.
	DriverProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *DriverProfileUpsert) SetName(v string) *DriverProfileUpsert {
	u.Set(driverprofile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DriverProfileUpsert) UpdateName() *DriverProfileUpsert {
	u.SetExcluded(driverprofile.FieldName)
	return u
}

// SetPhone sets the "phone" field.
func (u *DriverProfileUpsert) SetPhone(v string) *DriverProfileUpsert {
	u.Set(driverprofile.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DriverProfileUpsert) UpdatePhone() *DriverProfileUpsert {
	u.SetExcluded(driverprofile.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *DriverProfileUpsert) ClearPhone() *DriverProfileUpsert {
	u.SetNull(driverprofile.FieldPhone)
	return u
}

// SetStatus sets the "status" field.
func (u *DriverProfileUpsert) SetStatus(v driverprofile.Status) *DriverProfileUpsert {
	u.Set(driverprofile.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DriverProfileUpsert) UpdateStatus() *DriverProfileUpsert {
	u.SetExcluded(driverprofile.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DriverProfileUpsertOne) UpdateNewValues() *DriverProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DriverProfileUpsertOne) Ignore() *DriverProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DriverProfileUpsertOne) DoNothing() *DriverProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DriverProfileCreate.OnConflict
// documentation for more info.
func (u *DriverProfileUpsertOne) Update(set func(*DriverProfileUpsert)) *DriverProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DriverProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *DriverProfileUpsertOne) SetName(v string) *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DriverProfileUpsertOne) UpdateName() *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *DriverProfileUpsertOne) SetPhone(v string) *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DriverProfileUpsertOne) UpdatePhone() *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *DriverProfileUpsertOne) ClearPhone() *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.ClearPhone()
	})
}

// SetStatus sets the "status" field.
func (u *DriverProfileUpsertOne) SetStatus(v driverprofile.Status) *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DriverProfileUpsertOne) UpdateStatus() *DriverProfileUpsertOne {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *DriverProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DriverProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DriverProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DriverProfileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DriverProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DriverProfileCreateBulk is the builder for creating many DriverProfile entities in bulk.
type DriverProfileCreateBulk struct {
	config
	err      error
	builders []*DriverProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the DriverProfile entities in the database.
func (_c *DriverProfileCreateBulk) Save(ctx context.Context) ([]*DriverProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DriverProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DriverProfileMutation)
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
func (_c *DriverProfileCreateBulk) SaveX(ctx context.Context) []*DriverProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DriverProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DriverProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DriverProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DriverProfileUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DriverProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *DriverProfileUpsertBulk {
	_c.conflict = opts
	return &DriverProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DriverProfileCreateBulk) OnConflictColumns(columns ...string) *DriverProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DriverProfileUpsertBulk{
		create: _c,
	}
}

// DriverProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of DriverProfile nodes.
type DriverProfileUpsertBulk struct {
	create *DriverProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DriverProfileUpsertBulk) UpdateNewValues() *DriverProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DriverProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DriverProfileUpsertBulk) Ignore() *DriverProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DriverProfileUpsertBulk) DoNothing() *DriverProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DriverProfileCreateBulk.OnConflict
// documentation for more info.
func (u *DriverProfileUpsertBulk) Update(set func(*DriverProfileUpsert)) *DriverProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DriverProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *DriverProfileUpsertBulk) SetName(v string) *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DriverProfileUpsertBulk) UpdateName() *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *DriverProfileUpsertBulk) SetPhone(v string) *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DriverProfileUpsertBulk) UpdatePhone() *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *DriverProfileUpsertBulk) ClearPhone() *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.ClearPhone()
	})
}

// SetStatus sets the "status" field.
func (u *DriverProfileUpsertBulk) SetStatus(v driverprofile.Status) *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DriverProfileUpsertBulk) UpdateStatus() *DriverProfileUpsertBulk {
	return u.Update(func(s *DriverProfileUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *DriverProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DriverProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DriverProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DriverProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
