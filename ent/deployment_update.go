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
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// DeploymentUpdate is the builder for updating Deployment entities.
type DeploymentUpdate struct {
	config
	hooks    []Hook
	mutation *DeploymentMutation
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdate) Where(ps ...predicate.Deployment) *DeploymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *DeploymentUpdate) SetTripID(v int) *DeploymentUpdate {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableTripID(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *DeploymentUpdate) SetVehicleID(v int) *DeploymentUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableVehicleID(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (_u *DeploymentUpdate) ClearVehicleID() *DeploymentUpdate {
	_u.mutation.ClearVehicleID()
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *DeploymentUpdate) SetDriverID(v int) *DeploymentUpdate {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableDriverID(v *int) *DeploymentUpdate {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// ClearDriverID clears the value of the "driver_id" field.
func (_u *DeploymentUpdate) ClearDriverID() *DeploymentUpdate {
	_u.mutation.ClearDriverID()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *DeploymentUpdate) SetDeployedAt(v time.Time) *DeploymentUpdate {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *DeploymentUpdate) SetNillableDeployedAt(v *time.Time) *DeploymentUpdate {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// SetTrip sets the "trip" edge to the Trip entity.
func (_u *DeploymentUpdate) SetTrip(v *Trip) *DeploymentUpdate {
	return _u.SetTripID(v.ID)
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *DeploymentUpdate) SetVehicle(v *Vehicle) *DeploymentUpdate {
	return _u.SetVehicleID(v.ID)
}

// SetDriver sets the "driver" edge to the DriverProfile entity.
func (_u *DeploymentUpdate) SetDriver(v *DriverProfile) *DeploymentUpdate {
	return _u.SetDriverID(v.ID)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdate) Mutation() *DeploymentMutation {
	return _u.mutation
}

// ClearTrip clears the "trip" edge to the Trip entity.
func (_u *DeploymentUpdate) ClearTrip() *DeploymentUpdate {
	_u.mutation.ClearTrip()
	return _u
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *DeploymentUpdate) ClearVehicle() *DeploymentUpdate {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearDriver clears the "driver" edge to the DriverProfile entity.
func (_u *DeploymentUpdate) ClearDriver() *DeploymentUpdate {
	_u.mutation.ClearDriver()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeploymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeploymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdate) check() error {
	if _u.mutation.TripCleared() && len(_u.mutation.TripIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deployment.trip"`)
	}
	return nil
}

func (_u *DeploymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(deployment.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.TripCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TripIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DriverCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DriverIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeploymentUpdateOne is the builder for updating a single Deployment entity.
type DeploymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeploymentMutation
}

// SetTripID sets the "trip_id" field.
func (_u *DeploymentUpdateOne) SetTripID(v int) *DeploymentUpdateOne {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableTripID(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *DeploymentUpdateOne) SetVehicleID(v int) *DeploymentUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableVehicleID(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// ClearVehicleID clears the value of the "vehicle_id" field.
func (_u *DeploymentUpdateOne) ClearVehicleID() *DeploymentUpdateOne {
	_u.mutation.ClearVehicleID()
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *DeploymentUpdateOne) SetDriverID(v int) *DeploymentUpdateOne {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableDriverID(v *int) *DeploymentUpdateOne {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// ClearDriverID clears the value of the "driver_id" field.
func (_u *DeploymentUpdateOne) ClearDriverID() *DeploymentUpdateOne {
	_u.mutation.ClearDriverID()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *DeploymentUpdateOne) SetDeployedAt(v time.Time) *DeploymentUpdateOne {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *DeploymentUpdateOne) SetNillableDeployedAt(v *time.Time) *DeploymentUpdateOne {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// SetTrip sets the "trip" edge to the Trip entity.
func (_u *DeploymentUpdateOne) SetTrip(v *Trip) *DeploymentUpdateOne {
	return _u.SetTripID(v.ID)
}

// SetVehicle sets the "vehicle" edge to the Vehicle entity.
func (_u *DeploymentUpdateOne) SetVehicle(v *Vehicle) *DeploymentUpdateOne {
	return _u.SetVehicleID(v.ID)
}

// SetDriver sets the "driver" edge to the DriverProfile entity.
func (_u *DeploymentUpdateOne) SetDriver(v *DriverProfile) *DeploymentUpdateOne {
	return _u.SetDriverID(v.ID)
}

// Mutation returns the DeploymentMutation object of the builder.
func (_u *DeploymentUpdateOne) Mutation() *DeploymentMutation {
	return _u.mutation
}

// ClearTrip clears the "trip" edge to the Trip entity.
func (_u *DeploymentUpdateOne) ClearTrip() *DeploymentUpdateOne {
	_u.mutation.ClearTrip()
	return _u
}

// ClearVehicle clears the "vehicle" edge to the Vehicle entity.
func (_u *DeploymentUpdateOne) ClearVehicle() *DeploymentUpdateOne {
	_u.mutation.ClearVehicle()
	return _u
}

// ClearDriver clears the "driver" edge to the DriverProfile entity.
func (_u *DeploymentUpdateOne) ClearDriver() *DeploymentUpdateOne {
	_u.mutation.ClearDriver()
	return _u
}

// Where appends a list predicates to the DeploymentUpdate builder.
func (_u *DeploymentUpdateOne) Where(ps ...predicate.Deployment) *DeploymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeploymentUpdateOne) Select(field string, fields ...string) *DeploymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deployment entity.
func (_u *DeploymentUpdateOne) Save(ctx context.Context) (*Deployment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeploymentUpdateOne) SaveX(ctx context.Context) *Deployment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeploymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeploymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeploymentUpdateOne) check() error {
	if _u.mutation.TripCleared() && len(_u.mutation.TripIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deployment.trip"`)
	}
	return nil
}

func (_u *DeploymentUpdateOne) sqlSave(ctx context.Context) (_node *Deployment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deployment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deployment.FieldID)
		for _, f := range fields {
			if !deployment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deployment.FieldID {
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
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(deployment.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.TripCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TripIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VehicleCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VehicleIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DriverCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DriverIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deployment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
