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
	"github.com/fleetops/dispatch/ent/booking"
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/route"
	"github.com/fleetops/dispatch/ent/trip"
)

// TripUpdate is the builder for updating Trip entities.
type TripUpdate struct {
	config
	hooks    []Hook
	mutation *TripMutation
}

// Where appends a list predicates to the TripUpdate builder.
func (_u *TripUpdate) Where(ps ...predicate.Trip) *TripUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TripUpdate) SetDisplayName(v string) *TripUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TripUpdate) SetNillableDisplayName(v *string) *TripUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTripDate sets the "trip_date" field.
func (_u *TripUpdate) SetTripDate(v time.Time) *TripUpdate {
	_u.mutation.SetTripDate(v)
	return _u
}

// SetNillableTripDate sets the "trip_date" field if the given value is not nil.
func (_u *TripUpdate) SetNillableTripDate(v *time.Time) *TripUpdate {
	if v != nil {
		_u.SetTripDate(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TripUpdate) SetScheduledTime(v string) *TripUpdate {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TripUpdate) SetNillableScheduledTime(v *string) *TripUpdate {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetRouteID sets the "route_id" field.
func (_u *TripUpdate) SetRouteID(v int) *TripUpdate {
	_u.mutation.SetRouteID(v)
	return _u
}

// SetNillableRouteID sets the "route_id" field if the given value is not nil.
func (_u *TripUpdate) SetNillableRouteID(v *int) *TripUpdate {
	if v != nil {
		_u.SetRouteID(*v)
	}
	return _u
}

// ClearRouteID clears the value of the "route_id" field.
func (_u *TripUpdate) ClearRouteID() *TripUpdate {
	_u.mutation.ClearRouteID()
	return _u
}

// SetLiveStatus sets the "live_status" field.
func (_u *TripUpdate) SetLiveStatus(v trip.LiveStatus) *TripUpdate {
	_u.mutation.SetLiveStatus(v)
	return _u
}

// SetNillableLiveStatus sets the "live_status" field if the given value is not nil.
func (_u *TripUpdate) SetNillableLiveStatus(v *trip.LiveStatus) *TripUpdate {
	if v != nil {
		_u.SetLiveStatus(*v)
	}
	return _u
}

// SetRoute sets the "route" edge to the Route entity.
func (_u *TripUpdate) SetRoute(v *Route) *TripUpdate {
	return _u.SetRouteID(v.ID)
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_u *TripUpdate) SetDeploymentID(id int) *TripUpdate {
	_u.mutation.SetDeploymentID(id)
	return _u
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_u *TripUpdate) SetNillableDeploymentID(id *int) *TripUpdate {
	if id != nil {
		_u = _u.SetDeploymentID(*id)
	}
	return _u
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_u *TripUpdate) SetDeployment(v *Deployment) *TripUpdate {
	return _u.SetDeploymentID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *TripUpdate) AddBookingIDs(ids ...int) *TripUpdate {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *TripUpdate) AddBookings(v ...*Booking) *TripUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the TripMutation object of the builder.
func (_u *TripUpdate) Mutation() *TripMutation {
	return _u.mutation
}

// ClearRoute clears the "route" edge to the Route entity.
func (_u *TripUpdate) ClearRoute() *TripUpdate {
	_u.mutation.ClearRoute()
	return _u
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (_u *TripUpdate) ClearDeployment() *TripUpdate {
	_u.mutation.ClearDeployment()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *TripUpdate) ClearBookings() *TripUpdate {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *TripUpdate) RemoveBookingIDs(ids ...int) *TripUpdate {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *TripUpdate) RemoveBookings(v ...*Booking) *TripUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TripUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TripUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripUpdate) check() error {
	if v, ok := _u.mutation.LiveStatus(); ok {
		if err := trip.LiveStatusValidator(v); err != nil {
			return &ValidationError{Name: "live_status", err: fmt.Errorf(`ent: validator failed for field "Trip.live_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TripUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trip.Table, trip.Columns, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(trip.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TripDate(); ok {
		_spec.SetField(trip.FieldTripDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(trip.FieldScheduledTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.LiveStatus(); ok {
		_spec.SetField(trip.FieldLiveStatus, field.TypeEnum, value)
	}
	if _u.mutation.RouteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trip.RouteTable,
			Columns: []string{trip.RouteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RouteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trip.RouteTable,
			Columns: []string{trip.RouteColumn},
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
	if _u.mutation.DeploymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   trip.DeploymentTable,
			Columns: []string{trip.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   trip.DeploymentTable,
			Columns: []string{trip.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TripUpdateOne is the builder for updating a single Trip entity.
type TripUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TripMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *TripUpdateOne) SetDisplayName(v string) *TripUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableDisplayName(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetTripDate sets the "trip_date" field.
func (_u *TripUpdateOne) SetTripDate(v time.Time) *TripUpdateOne {
	_u.mutation.SetTripDate(v)
	return _u
}

// SetNillableTripDate sets the "trip_date" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableTripDate(v *time.Time) *TripUpdateOne {
	if v != nil {
		_u.SetTripDate(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TripUpdateOne) SetScheduledTime(v string) *TripUpdateOne {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableScheduledTime(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetRouteID sets the "route_id" field.
func (_u *TripUpdateOne) SetRouteID(v int) *TripUpdateOne {
	_u.mutation.SetRouteID(v)
	return _u
}

// SetNillableRouteID sets the "route_id" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableRouteID(v *int) *TripUpdateOne {
	if v != nil {
		_u.SetRouteID(*v)
	}
	return _u
}

// ClearRouteID clears the value of the "route_id" field.
func (_u *TripUpdateOne) ClearRouteID() *TripUpdateOne {
	_u.mutation.ClearRouteID()
	return _u
}

// SetLiveStatus sets the "live_status" field.
func (_u *TripUpdateOne) SetLiveStatus(v trip.LiveStatus) *TripUpdateOne {
	_u.mutation.SetLiveStatus(v)
	return _u
}

// SetNillableLiveStatus sets the "live_status" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableLiveStatus(v *trip.LiveStatus) *TripUpdateOne {
	if v != nil {
		_u.SetLiveStatus(*v)
	}
	return _u
}

// SetRoute sets the "route" edge to the Route entity.
func (_u *TripUpdateOne) SetRoute(v *Route) *TripUpdateOne {
	return _u.SetRouteID(v.ID)
}

// SetDeploymentID sets the "deployment" edge to the Deployment entity by ID.
func (_u *TripUpdateOne) SetDeploymentID(id int) *TripUpdateOne {
	_u.mutation.SetDeploymentID(id)
	return _u
}

// SetNillableDeploymentID sets the "deployment" edge to the Deployment entity by ID if the given value is not nil.
func (_u *TripUpdateOne) SetNillableDeploymentID(id *int) *TripUpdateOne {
	if id != nil {
		_u = _u.SetDeploymentID(*id)
	}
	return _u
}

// SetDeployment sets the "deployment" edge to the Deployment entity.
func (_u *TripUpdateOne) SetDeployment(v *Deployment) *TripUpdateOne {
	return _u.SetDeploymentID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *TripUpdateOne) AddBookingIDs(ids ...int) *TripUpdateOne {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *TripUpdateOne) AddBookings(v ...*Booking) *TripUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the TripMutation object of the builder.
func (_u *TripUpdateOne) Mutation() *TripMutation {
	return _u.mutation
}

// ClearRoute clears the "route" edge to the Route entity.
func (_u *TripUpdateOne) ClearRoute() *TripUpdateOne {
	_u.mutation.ClearRoute()
	return _u
}

// ClearDeployment clears the "deployment" edge to the Deployment entity.
func (_u *TripUpdateOne) ClearDeployment() *TripUpdateOne {
	_u.mutation.ClearDeployment()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *TripUpdateOne) ClearBookings() *TripUpdateOne {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *TripUpdateOne) RemoveBookingIDs(ids ...int) *TripUpdateOne {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *TripUpdateOne) RemoveBookings(v ...*Booking) *TripUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Where appends a list predicates to the TripUpdate builder.
func (_u *TripUpdateOne) Where(ps ...predicate.Trip) *TripUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TripUpdateOne) Select(field string, fields ...string) *TripUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trip entity.
func (_u *TripUpdateOne) Save(ctx context.Context) (*Trip, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripUpdateOne) SaveX(ctx context.Context) *Trip {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TripUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripUpdateOne) check() error {
	if v, ok := _u.mutation.LiveStatus(); ok {
		if err := trip.LiveStatusValidator(v); err != nil {
			return &ValidationError{Name: "live_status", err: fmt.Errorf(`ent: validator failed for field "Trip.live_status": %w`, err)}
		}
	}
	return nil
}

func (_u *TripUpdateOne) sqlSave(ctx context.Context) (_node *Trip, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trip.Table, trip.Columns, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trip.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trip.FieldID)
		for _, f := range fields {
			if !trip.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trip.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(trip.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TripDate(); ok {
		_spec.SetField(trip.FieldTripDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(trip.FieldScheduledTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.LiveStatus(); ok {
		_spec.SetField(trip.FieldLiveStatus, field.TypeEnum, value)
	}
	if _u.mutation.RouteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trip.RouteTable,
			Columns: []string{trip.RouteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(route.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RouteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trip.RouteTable,
			Columns: []string{trip.RouteColumn},
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
	if _u.mutation.DeploymentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   trip.DeploymentTable,
			Columns: []string{trip.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   trip.DeploymentTable,
			Columns: []string{trip.DeploymentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   trip.BookingsTable,
			Columns: []string{trip.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Trip{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
