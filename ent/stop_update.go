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
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/stop"
)

// StopUpdate is the builder for updating Stop entities.
type StopUpdate struct {
	config
	hooks    []Hook
	mutation *StopMutation
}

// Where appends a list predicates to the StopUpdate builder.
func (_u *StopUpdate) Where(ps ...predicate.Stop) *StopUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StopUpdate) SetName(v string) *StopUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StopUpdate) SetNillableName(v *string) *StopUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *StopUpdate) SetLatitude(v float64) *StopUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *StopUpdate) SetNillableLatitude(v *float64) *StopUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *StopUpdate) AddLatitude(v float64) *StopUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *StopUpdate) ClearLatitude() *StopUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *StopUpdate) SetLongitude(v float64) *StopUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *StopUpdate) SetNillableLongitude(v *float64) *StopUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *StopUpdate) AddLongitude(v float64) *StopUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *StopUpdate) ClearLongitude() *StopUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by IDs.
func (_u *StopUpdate) AddPathStopIDs(ids ...int) *StopUpdate {
	_u.mutation.AddPathStopIDs(ids...)
	return _u
}

// AddPathStops adds the "path_stops" edges to the PathStop entity.
func (_u *StopUpdate) AddPathStops(v ...*PathStop) *StopUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPathStopIDs(ids...)
}

// Mutation returns the StopMutation object of the builder.
func (_u *StopUpdate) Mutation() *StopMutation {
	return _u.mutation
}

// ClearPathStops clears all "path_stops" edges to the PathStop entity.
func (_u *StopUpdate) ClearPathStops() *StopUpdate {
	_u.mutation.ClearPathStops()
	return _u
}

// RemovePathStopIDs removes the "path_stops" edge to PathStop entities by IDs.
func (_u *StopUpdate) RemovePathStopIDs(ids ...int) *StopUpdate {
	_u.mutation.RemovePathStopIDs(ids...)
	return _u
}

// RemovePathStops removes "path_stops" edges to PathStop entities.
func (_u *StopUpdate) RemovePathStops(v ...*PathStop) *StopUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePathStopIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StopUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StopUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StopUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StopUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StopUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stop.Table, stop.Columns, sqlgraph.NewFieldSpec(stop.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(stop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(stop.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(stop.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(stop.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(stop.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(stop.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(stop.FieldLongitude, field.TypeFloat64)
	}
	if _u.mutation.PathStopsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPathStopsIDs(); len(nodes) > 0 && !_u.mutation.PathStopsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathStopsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StopUpdateOne is the builder for updating a single Stop entity.
type StopUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StopMutation
}

// SetName sets the "name" field.
func (_u *StopUpdateOne) SetName(v string) *StopUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StopUpdateOne) SetNillableName(v *string) *StopUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *StopUpdateOne) SetLatitude(v float64) *StopUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *StopUpdateOne) SetNillableLatitude(v *float64) *StopUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *StopUpdateOne) AddLatitude(v float64) *StopUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *StopUpdateOne) ClearLatitude() *StopUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *StopUpdateOne) SetLongitude(v float64) *StopUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *StopUpdateOne) SetNillableLongitude(v *float64) *StopUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *StopUpdateOne) AddLongitude(v float64) *StopUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *StopUpdateOne) ClearLongitude() *StopUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by IDs.
func (_u *StopUpdateOne) AddPathStopIDs(ids ...int) *StopUpdateOne {
	_u.mutation.AddPathStopIDs(ids...)
	return _u
}

// AddPathStops adds the "path_stops" edges to the PathStop entity.
func (_u *StopUpdateOne) AddPathStops(v ...*PathStop) *StopUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPathStopIDs(ids...)
}

// Mutation returns the StopMutation object of the builder.
func (_u *StopUpdateOne) Mutation() *StopMutation {
	return _u.mutation
}

// ClearPathStops clears all "path_stops" edges to the PathStop entity.
func (_u *StopUpdateOne) ClearPathStops() *StopUpdateOne {
	_u.mutation.ClearPathStops()
	return _u
}

// RemovePathStopIDs removes the "path_stops" edge to PathStop entities by IDs.
func (_u *StopUpdateOne) RemovePathStopIDs(ids ...int) *StopUpdateOne {
	_u.mutation.RemovePathStopIDs(ids...)
	return _u
}

// RemovePathStops removes "path_stops" edges to PathStop entities.
func (_u *StopUpdateOne) RemovePathStops(v ...*PathStop) *StopUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePathStopIDs(ids...)
}

// Where appends a list predicates to the StopUpdate builder.
func (_u *StopUpdateOne) Where(ps ...predicate.Stop) *StopUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StopUpdateOne) Select(field string, fields ...string) *StopUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stop entity.
func (_u *StopUpdateOne) Save(ctx context.Context) (*Stop, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StopUpdateOne) SaveX(ctx context.Context) *Stop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StopUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StopUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StopUpdateOne) sqlSave(ctx context.Context) (_node *Stop, err error) {
	_spec := sqlgraph.NewUpdateSpec(stop.Table, stop.Columns, sqlgraph.NewFieldSpec(stop.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stop.FieldID)
		for _, f := range fields {
			if !stop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stop.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(stop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(stop.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(stop.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(stop.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(stop.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(stop.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(stop.FieldLongitude, field.TypeFloat64)
	}
	if _u.mutation.PathStopsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPathStopsIDs(); len(nodes) > 0 && !_u.mutation.PathStopsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathStopsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
