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
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/stop"
)

// PathStopUpdate is the builder for updating PathStop entities.
type PathStopUpdate struct {
	config
	hooks    []Hook
	mutation *PathStopMutation
}

// Where appends a list predicates to the PathStopUpdate builder.
func (_u *PathStopUpdate) Where(ps ...predicate.PathStop) *PathStopUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *PathStopUpdate) SetPathID(v int) *PathStopUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathStopUpdate) SetNillablePathID(v *int) *PathStopUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetStopID sets the "stop_id" field.
func (_u *PathStopUpdate) SetStopID(v int) *PathStopUpdate {
	_u.mutation.SetStopID(v)
	return _u
}

// SetNillableStopID sets the "stop_id" field if the given value is not nil.
func (_u *PathStopUpdate) SetNillableStopID(v *int) *PathStopUpdate {
	if v != nil {
		_u.SetStopID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PathStopUpdate) SetSequence(v int) *PathStopUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PathStopUpdate) SetNillableSequence(v *int) *PathStopUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PathStopUpdate) AddSequence(v int) *PathStopUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPath sets the "path" edge to the Path entity.
func (_u *PathStopUpdate) SetPath(v *Path) *PathStopUpdate {
	return _u.SetPathID(v.ID)
}

// SetStop sets the "stop" edge to the Stop entity.
func (_u *PathStopUpdate) SetStop(v *Stop) *PathStopUpdate {
	return _u.SetStopID(v.ID)
}

// Mutation returns the PathStopMutation object of the builder.
func (_u *PathStopUpdate) Mutation() *PathStopMutation {
	return _u.mutation
}

// ClearPath clears the "path" edge to the Path entity.
func (_u *PathStopUpdate) ClearPath() *PathStopUpdate {
	_u.mutation.ClearPath()
	return _u
}

// ClearStop clears the "stop" edge to the Stop entity.
func (_u *PathStopUpdate) ClearStop() *PathStopUpdate {
	_u.mutation.ClearStop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathStopUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathStopUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathStopUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathStopUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathStopUpdate) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := pathstop.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "PathStop.sequence": %w`, err)}
		}
	}
	if _u.mutation.PathCleared() && len(_u.mutation.PathIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStop.path"`)
	}
	if _u.mutation.StopCleared() && len(_u.mutation.StopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStop.stop"`)
	}
	return nil
}

func (_u *PathStopUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathstop.Table, pathstop.Columns, sqlgraph.NewFieldSpec(pathstop.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(pathstop.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(pathstop.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.PathCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathstop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathStopUpdateOne is the builder for updating a single PathStop entity.
type PathStopUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathStopMutation
}

// SetPathID sets the "path_id" field.
func (_u *PathStopUpdateOne) SetPathID(v int) *PathStopUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathStopUpdateOne) SetNillablePathID(v *int) *PathStopUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetStopID sets the "stop_id" field.
func (_u *PathStopUpdateOne) SetStopID(v int) *PathStopUpdateOne {
	_u.mutation.SetStopID(v)
	return _u
}

// SetNillableStopID sets the "stop_id" field if the given value is not nil.
func (_u *PathStopUpdateOne) SetNillableStopID(v *int) *PathStopUpdateOne {
	if v != nil {
		_u.SetStopID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PathStopUpdateOne) SetSequence(v int) *PathStopUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PathStopUpdateOne) SetNillableSequence(v *int) *PathStopUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PathStopUpdateOne) AddSequence(v int) *PathStopUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPath sets the "path" edge to the Path entity.
func (_u *PathStopUpdateOne) SetPath(v *Path) *PathStopUpdateOne {
	return _u.SetPathID(v.ID)
}

// SetStop sets the "stop" edge to the Stop entity.
func (_u *PathStopUpdateOne) SetStop(v *Stop) *PathStopUpdateOne {
	return _u.SetStopID(v.ID)
}

// Mutation returns the PathStopMutation object of the builder.
func (_u *PathStopUpdateOne) Mutation() *PathStopMutation {
	return _u.mutation
}

// ClearPath clears the "path" edge to the Path entity.
func (_u *PathStopUpdateOne) ClearPath() *PathStopUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// ClearStop clears the "stop" edge to the Stop entity.
func (_u *PathStopUpdateOne) ClearStop() *PathStopUpdateOne {
	_u.mutation.ClearStop()
	return _u
}

// Where appends a list predicates to the PathStopUpdate builder.
func (_u *PathStopUpdateOne) Where(ps ...predicate.PathStop) *PathStopUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathStopUpdateOne) Select(field string, fields ...string) *PathStopUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathStop entity.
func (_u *PathStopUpdateOne) Save(ctx context.Context) (*PathStop, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathStopUpdateOne) SaveX(ctx context.Context) *PathStop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathStopUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathStopUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathStopUpdateOne) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := pathstop.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "PathStop.sequence": %w`, err)}
		}
	}
	if _u.mutation.PathCleared() && len(_u.mutation.PathIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStop.path"`)
	}
	if _u.mutation.StopCleared() && len(_u.mutation.StopIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PathStop.stop"`)
	}
	return nil
}

func (_u *PathStopUpdateOne) sqlSave(ctx context.Context) (_node *PathStop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathstop.Table, pathstop.Columns, sqlgraph.NewFieldSpec(pathstop.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathStop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathstop.FieldID)
		for _, f := range fields {
			if !pathstop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathstop.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(pathstop.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(pathstop.FieldSequence, field.TypeInt, value)
	}
	if _u.mutation.PathCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StopCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StopIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PathStop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathstop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
