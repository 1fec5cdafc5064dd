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
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/trip"
)

// RouteUpdate is the builder for updating Route entities.
type RouteUpdate struct {
	config
	hooks    []Hook
	mutation *RouteMutation
}

// Where appends a list predicates to the RouteUpdate builder.
func (_u *RouteUpdate) Where(ps ...predicate.Route) *RouteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RouteUpdate) SetName(v string) *RouteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableName(v *string) *RouteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *RouteUpdate) SetPathID(v int) *RouteUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *RouteUpdate) SetNillablePathID(v *int) *RouteUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *RouteUpdate) SetDirection(v route.Direction) *RouteUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableDirection(v *route.Direction) *RouteUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetShiftTime sets the "shift_time" field.
func (_u *RouteUpdate) SetShiftTime(v string) *RouteUpdate {
	_u.mutation.SetShiftTime(v)
	return _u
}

// SetNillableShiftTime sets the "shift_time" field if the given value is not nil.
func (_u *RouteUpdate) SetNillableShiftTime(v *string) *RouteUpdate {
	if v != nil {
		_u.SetShiftTime(*v)
	}
	return _u
}

// SetPath sets the "path" edge to the Path entity.
func (_u *RouteUpdate) SetPath(v *Path) *RouteUpdate {
	return _u.SetPathID(v.ID)
}

// AddTripIDs adds the "trips" edge to the Trip entity by IDs.
func (_u *RouteUpdate) AddTripIDs(ids ...int) *RouteUpdate {
	_u.mutation.AddTripIDs(ids...)
	return _u
}

// AddTrips adds the "trips" edges to the Trip entity.
func (_u *RouteUpdate) AddTrips(v ...*Trip) *RouteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripIDs(ids...)
}

// Mutation returns the RouteMutation object of the builder.
func (_u *RouteUpdate) Mutation() *RouteMutation {
	return _u.mutation
}

// ClearPath clears the "path" edge to the Path entity.
func (_u *RouteUpdate) ClearPath() *RouteUpdate {
	_u.mutation.ClearPath()
	return _u
}

// ClearTrips clears all "trips" edges to the Trip entity.
func (_u *RouteUpdate) ClearTrips() *RouteUpdate {
	_u.mutation.ClearTrips()
	return _u
}

// RemoveTripIDs removes the "trips" edge to Trip entities by IDs.
func (_u *RouteUpdate) RemoveTripIDs(ids ...int) *RouteUpdate {
	_u.mutation.RemoveTripIDs(ids...)
	return _u
}

// RemoveTrips removes "trips" edges to Trip entities.
func (_u *RouteUpdate) RemoveTrips(v ...*Trip) *RouteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RouteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RouteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RouteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RouteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RouteUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := route.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Route.direction": %w`, err)}
		}
	}
	if _u.mutation.PathCleared() && len(_u.mutation.PathIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Route.path"`)
	}
	return nil
}

func (_u *RouteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(route.Table, route.Columns, sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(route.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(route.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShiftTime(); ok {
		_spec.SetField(route.FieldShiftTime, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TripsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTripsIDs(); len(nodes) > 0 && !_u.mutation.TripsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TripsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{route.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RouteUpdateOne is the builder for updating a single Route entity.
type RouteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RouteMutation
}

// SetName sets the "name" field.
func (_u *RouteUpdateOne) SetName(v string) *RouteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableName(v *string) *RouteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *RouteUpdateOne) SetPathID(v int) *RouteUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillablePathID(v *int) *RouteUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *RouteUpdateOne) SetDirection(v route.Direction) *RouteUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableDirection(v *route.Direction) *RouteUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetShiftTime sets the "shift_time" field.
func (_u *RouteUpdateOne) SetShiftTime(v string) *RouteUpdateOne {
	_u.mutation.SetShiftTime(v)
	return _u
}

// SetNillableShiftTime sets the "shift_time" field if the given value is not nil.
func (_u *RouteUpdateOne) SetNillableShiftTime(v *string) *RouteUpdateOne {
	if v != nil {
		_u.SetShiftTime(*v)
	}
	return _u
}

// SetPath sets the "path" edge to the Path entity.
func (_u *RouteUpdateOne) SetPath(v *Path) *RouteUpdateOne {
	return _u.SetPathID(v.ID)
}

// AddTripIDs adds the "trips" edge to the Trip entity by IDs.
func (_u *RouteUpdateOne) AddTripIDs(ids ...int) *RouteUpdateOne {
	_u.mutation.AddTripIDs(ids...)
	return _u
}

// AddTrips adds the "trips" edges to the Trip entity.
func (_u *RouteUpdateOne) AddTrips(v ...*Trip) *RouteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTripIDs(ids...)
}

// Mutation returns the RouteMutation object of the builder.
func (_u *RouteUpdateOne) Mutation() *RouteMutation {
	return _u.mutation
}

// ClearPath clears the "path" edge to the Path entity.
func (_u *RouteUpdateOne) ClearPath() *RouteUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// ClearTrips clears all "trips" edges to the Trip entity.
func (_u *RouteUpdateOne) ClearTrips() *RouteUpdateOne {
	_u.mutation.ClearTrips()
	return _u
}

// RemoveTripIDs removes the "trips" edge to Trip entities by IDs.
func (_u *RouteUpdateOne) RemoveTripIDs(ids ...int) *RouteUpdateOne {
	_u.mutation.RemoveTripIDs(ids...)
	return _u
}

// RemoveTrips removes "trips" edges to Trip entities.
func (_u *RouteUpdateOne) RemoveTrips(v ...*Trip) *RouteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTripIDs(ids...)
}

// Where appends a list predicates to the RouteUpdate builder.
func (_u *RouteUpdateOne) Where(ps ...predicate.Route) *RouteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RouteUpdateOne) Select(field string, fields ...string) *RouteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Route entity.
func (_u *RouteUpdateOne) Save(ctx context.Context) (*Route, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RouteUpdateOne) SaveX(ctx context.Context) *Route {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RouteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RouteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RouteUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := route.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Route.direction": %w`, err)}
		}
	}
	if _u.mutation.PathCleared() && len(_u.mutation.PathIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Route.path"`)
	}
	return nil
}

func (_u *RouteUpdateOne) sqlSave(ctx context.Context) (_node *Route, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(route.Table, route.Columns, sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Route.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, route.FieldID)
		for _, f := range fields {
			if !route.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != route.FieldID {
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
		_spec.SetField(route.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(route.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShiftTime(); ok {
		_spec.SetField(route.FieldShiftTime, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PathIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TripsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTripsIDs(); len(nodes) > 0 && !_u.mutation.TripsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TripsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Route{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{route.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
