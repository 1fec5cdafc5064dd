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
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/stop"
)

// PathStopCreate is the builder for creating a PathStop entity.
type PathStopCreate struct {
	config
	mutation *PathStopMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPathID sets the "path_id" field.
func (_c *PathStopCreate) SetPathID(v int) *PathStopCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetStopID sets the "stop_id" field.
func (_c *PathStopCreate) SetStopID(v int) *PathStopCreate {
	_c.mutation.SetStopID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *PathStopCreate) SetSequence(v int) *PathStopCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetPath sets the "path" edge to the Path entity.
func (_c *PathStopCreate) SetPath(v *Path) *PathStopCreate {
	return _c.SetPathID(v.ID)
}

// SetStop sets the "stop" edge to the Stop entity.
func (_c *PathStopCreate) SetStop(v *Stop) *PathStopCreate {
	return _c.SetStopID(v.ID)
}

// Mutation returns the PathStopMutation object of the builder.
func (_c *PathStopCreate) Mutation() *PathStopMutation {
	return _c.mutation
}

// Save creates the PathStop in the database.
func (_c *PathStopCreate) Save(ctx context.Context) (*PathStop, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathStopCreate) SaveX(ctx context.Context) *PathStop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathStopCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathStopCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathStopCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathStop.path_id"`)}
	}
	if _, ok := _c.mutation.StopID(); !ok {
		return &ValidationError{Name: "stop_id", err: errors.New(`ent: missing required field "PathStop.stop_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PathStop.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := pathstop.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "PathStop.sequence": %w`, err)}
		}
	}
	if len(_c.mutation.PathIDs()) == 0 {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required edge "PathStop.path"`)}
	}
	if len(_c.mutation.StopIDs()) == 0 {
		return &ValidationError{Name: "stop", err: errors.New(`ent: missing required edge "PathStop.stop"`)}
	}
	return nil
}

func (_c *PathStopCreate) sqlSave(ctx context.Context) (*PathStop, error) {
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

func (_c *PathStopCreate) createSpec() (*PathStop, *sqlgraph.CreateSpec) {
	var (
		_node = &PathStop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathstop.Table, sqlgraph.NewFieldSpec(pathstop.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pathstop.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if nodes := _c.mutation.PathIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pathstop.PathTable,
			Columns: []string{pathstop.PathColumn},
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
	if nodes := _c.mutation.StopIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pathstop.StopTable,
			Columns: []string{pathstop.StopColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stop.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StopID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PathStop.Create().
//		SetPathID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PathStopUpsert) {
//			SetPathID(v+v).
//		}).
//		Exec(ctx)
func (_c *PathStopCreate) OnConflict(opts ...sql.ConflictOption) *PathStopUpsertOne {
	_c.conflict = opts
	return &PathStopUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PathStop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PathStopCreate) OnConflictColumns(columns ...string) *PathStopUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PathStopUpsertOne{
		create: _c,
	}
}

type (
	// PathStopUpsertOne is the builder for "upsert"-ing
	//  one PathStop node.
	PathStopUpsertOne struct {
		create *PathStopCreate
	}

	// PathStopUpsert is the "OnConflict" setter.
	PathStopUpsert struct {
		*sql.UpdateSet
	}
)

// SetPathID sets the "path_id" field.
func (u *PathStopUpsert) SetPathID(v int) *PathStopUpsert {
	u.Set(pathstop.FieldPathID, v)
	return u
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *PathStopUpsert) UpdatePathID() *PathStopUpsert {
	u.SetExcluded(pathstop.FieldPathID)
	return u
}

// SetStopID sets the "stop_id" field.
func (u *PathStopUpsert) SetStopID(v int) *PathStopUpsert {
	u.Set(pathstop.FieldStopID, v)
	return u
}

// UpdateStopID sets the "stop_id" field to the value that was provided on create.
func (u *PathStopUpsert) UpdateStopID() *PathStopUpsert {
	u.SetExcluded(pathstop.FieldStopID)
	return u
}

// SetSequence sets the "sequence" field.
func (u *PathStopUpsert) SetSequence(v int) *PathStopUpsert {
	u.Set(pathstop.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PathStopUpsert) UpdateSequence() *PathStopUpsert {
	u.SetExcluded(pathstop.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *PathStopUpsert) AddSequence(v int) *PathStopUpsert {
	u.Add(pathstop.FieldSequence, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PathStop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PathStopUpsertOne) UpdateNewValues() *PathStopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PathStop.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PathStopUpsertOne) Ignore() *PathStopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PathStopUpsertOne) DoNothing() *PathStopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PathStopCreate.OnConflict
// documentation for more info.
func (u *PathStopUpsertOne) Update(set func(*PathStopUpsert)) *PathStopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PathStopUpsert{UpdateSet: update})
	}))
	return u
}

// SetPathID sets the "path_id" field.
func (u *PathStopUpsertOne) SetPathID(v int) *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *PathStopUpsertOne) UpdatePathID() *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdatePathID()
	})
}

// SetStopID sets the "stop_id" field.
func (u *PathStopUpsertOne) SetStopID(v int) *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.SetStopID(v)
	})
}

// UpdateStopID sets the "stop_id" field to the value that was provided on create.
func (u *PathStopUpsertOne) UpdateStopID() *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdateStopID()
	})
}

// SetSequence sets the "sequence" field.
func (u *PathStopUpsertOne) SetSequence(v int) *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *PathStopUpsertOne) AddSequence(v int) *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PathStopUpsertOne) UpdateSequence() *PathStopUpsertOne {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdateSequence()
	})
}

// Exec executes the query.
func (u *PathStopUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PathStopCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PathStopUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PathStopUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PathStopUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PathStopCreateBulk is the builder for creating many PathStop entities in bulk.
type PathStopCreateBulk struct {
	config
	err      error
	builders []*PathStopCreate
	conflict []sql.ConflictOption
}

// Save creates the PathStop entities in the database.
func (_c *PathStopCreateBulk) Save(ctx context.Context) ([]*PathStop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathStop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathStopMutation)
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
func (_c *PathStopCreateBulk) SaveX(ctx context.Context) []*PathStop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathStopCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathStopCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PathStop.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PathStopUpsert) {
//			SetPathID(v+v).
//		}).
//		Exec(ctx)
func (_c *PathStopCreateBulk) OnConflict(opts ...sql.ConflictOption) *PathStopUpsertBulk {
	_c.conflict = opts
	return &PathStopUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PathStop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PathStopCreateBulk) OnConflictColumns(columns ...string) *PathStopUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PathStopUpsertBulk{
		create: _c,
	}
}

// PathStopUpsertBulk is the builder for "upsert"-ing
// a bulk of PathStop nodes.
type PathStopUpsertBulk struct {
	create *PathStopCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PathStop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PathStopUpsertBulk) UpdateNewValues() *PathStopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PathStop.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PathStopUpsertBulk) Ignore() *PathStopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PathStopUpsertBulk) DoNothing() *PathStopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PathStopCreateBulk.OnConflict
// documentation for more info.
func (u *PathStopUpsertBulk) Update(set func(*PathStopUpsert)) *PathStopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PathStopUpsert{UpdateSet: update})
	}))
	return u
}

// SetPathID sets the "path_id" field.
func (u *PathStopUpsertBulk) SetPathID(v int) *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.SetPathID(v)
	})
}

// UpdatePathID sets the "path_id" field to the value that was provided on create.
func (u *PathStopUpsertBulk) UpdatePathID() *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdatePathID()
	})
}

// SetStopID sets the "stop_id" field.
func (u *PathStopUpsertBulk) SetStopID(v int) *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.SetStopID(v)
	})
}

// UpdateStopID sets the "stop_id" field to the value that was provided on create.
func (u *PathStopUpsertBulk) UpdateStopID() *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdateStopID()
	})
}

// SetSequence sets the "sequence" field.
func (u *PathStopUpsertBulk) SetSequence(v int) *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *PathStopUpsertBulk) AddSequence(v int) *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *PathStopUpsertBulk) UpdateSequence() *PathStopUpsertBulk {
	return u.Update(func(s *PathStopUpsert) {
		s.UpdateSequence()
	})
}

// Exec executes the query.
func (u *PathStopUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PathStopCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PathStopCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PathStopUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
