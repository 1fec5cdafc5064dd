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
	"github.com/fleetops/dispatch/ent/route"
)

// PathUpdate is the builder for updating Path entities.
type PathUpdate struct {
	config
	hooks    []Hook
	mutation *PathMutation
}

// Where appends a list predicates to the PathUpdate builder.
func (_u *PathUpdate) Where(ps ...predicate.Path) *PathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PathUpdate) SetName(v string) *PathUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PathUpdate) SetNillableName(v *string) *PathUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by IDs.
func (_u *PathUpdate) AddPathStopIDs(ids ...int) *PathUpdate {
	_u.mutation.AddPathStopIDs(ids...)
	return _u
}

// AddPathStops adds the "path_stops" edges to the PathStop entity.
func (_u *PathUpdate) AddPathStops(v ...*PathStop) *PathUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPathStopIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *PathUpdate) AddRouteIDs(ids ...int) *PathUpdate {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *PathUpdate) AddRoutes(v ...*Route) *PathUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// Mutation returns the PathMutation object of the builder.
func (_u *PathUpdate) Mutation() *PathMutation {
	return _u.mutation
}

// ClearPathStops clears all "path_stops" edges to the PathStop entity.
func (_u *PathUpdate) ClearPathStops() *PathUpdate {
	_u.mutation.ClearPathStops()
	return _u
}

// RemovePathStopIDs removes the "path_stops" edge to PathStop entities by IDs.
func (_u *PathUpdate) RemovePathStopIDs(ids ...int) *PathUpdate {
	_u.mutation.RemovePathStopIDs(ids...)
	return _u
}

// RemovePathStops removes "path_stops" edges to PathStop entities.
func (_u *PathUpdate) RemovePathStops(v ...*PathStop) *PathUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePathStopIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *PathUpdate) ClearRoutes() *PathUpdate {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *PathUpdate) RemoveRouteIDs(ids ...int) *PathUpdate {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *PathUpdate) RemoveRoutes(v ...*Route) *PathUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(path.Table, path.Columns, sqlgraph.NewFieldSpec(path.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(path.FieldName, field.TypeString, value)
	}
	if _u.mutation.PathStopsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{path.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathUpdateOne is the builder for updating a single Path entity.
type PathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathMutation
}

// SetName sets the "name" field.
func (_u *PathUpdateOne) SetName(v string) *PathUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PathUpdateOne) SetNillableName(v *string) *PathUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddPathStopIDs adds the "path_stops" edge to the PathStop entity by IDs.
func (_u *PathUpdateOne) AddPathStopIDs(ids ...int) *PathUpdateOne {
	_u.mutation.AddPathStopIDs(ids...)
	return _u
}

// AddPathStops adds the "path_stops" edges to the PathStop entity.
func (_u *PathUpdateOne) AddPathStops(v ...*PathStop) *PathUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPathStopIDs(ids...)
}

// AddRouteIDs adds the "routes" edge to the Route entity by IDs.
func (_u *PathUpdateOne) AddRouteIDs(ids ...int) *PathUpdateOne {
	_u.mutation.AddRouteIDs(ids...)
	return _u
}

// AddRoutes adds the "routes" edges to the Route entity.
func (_u *PathUpdateOne) AddRoutes(v ...*Route) *PathUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRouteIDs(ids...)
}

// Mutation returns the PathMutation object of the builder.
func (_u *PathUpdateOne) Mutation() *PathMutation {
	return _u.mutation
}

// ClearPathStops clears all "path_stops" edges to the PathStop entity.
func (_u *PathUpdateOne) ClearPathStops() *PathUpdateOne {
	_u.mutation.ClearPathStops()
	return _u
}

// RemovePathStopIDs removes the "path_stops" edge to PathStop entities by IDs.
func (_u *PathUpdateOne) RemovePathStopIDs(ids ...int) *PathUpdateOne {
	_u.mutation.RemovePathStopIDs(ids...)
	return _u
}

// RemovePathStops removes "path_stops" edges to PathStop entities.
func (_u *PathUpdateOne) RemovePathStops(v ...*PathStop) *PathUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePathStopIDs(ids...)
}

// ClearRoutes clears all "routes" edges to the Route entity.
func (_u *PathUpdateOne) ClearRoutes() *PathUpdateOne {
	_u.mutation.ClearRoutes()
	return _u
}

// RemoveRouteIDs removes the "routes" edge to Route entities by IDs.
func (_u *PathUpdateOne) RemoveRouteIDs(ids ...int) *PathUpdateOne {
	_u.mutation.RemoveRouteIDs(ids...)
	return _u
}

// RemoveRoutes removes "routes" edges to Route entities.
func (_u *PathUpdateOne) RemoveRoutes(v ...*Route) *PathUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRouteIDs(ids...)
}

// Where appends a list predicates to the PathUpdate builder.
func (_u *PathUpdateOne) Where(ps ...predicate.Path) *PathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathUpdateOne) Select(field string, fields ...string) *PathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Path entity.
func (_u *PathUpdateOne) Save(ctx context.Context) (*Path, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathUpdateOne) SaveX(ctx context.Context) *Path {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PathUpdateOne) sqlSave(ctx context.Context) (_node *Path, err error) {
	_spec := sqlgraph.NewUpdateSpec(path.Table, path.Columns, sqlgraph.NewFieldSpec(path.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Path.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, path.FieldID)
		for _, f := range fields {
			if !path.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != path.FieldID {
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
		_spec.SetField(path.FieldName, field.TypeString, value)
	}
	if _u.mutation.PathStopsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
			Table:   path.PathStopsTable,
			Columns: []string{path.PathStopsColumn},
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
	if _u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutesIDs(); len(nodes) > 0 && !_u.mutation.RoutesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   path.RoutesTable,
			Columns: []string{path.RoutesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Path{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{path.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
