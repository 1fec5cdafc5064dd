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
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRegistrationNumber sets the "registration_number" field.
func (_u *VehicleUpdate) SetRegistrationNumber(v string) *VehicleUpdate {
	_u.mutation.SetRegistrationNumber(v)
	return _u
}

// SetNillableRegistrationNumber sets the "registration_number" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableRegistrationNumber(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetRegistrationNumber(*v)
	}
	return _u
}

// SetVehicleType sets the "vehicle_type" field.
func (_u *VehicleUpdate) SetVehicleType(v vehicle.VehicleType) *VehicleUpdate {
	_u.mutation.SetVehicleType(v)
	return _u
}

// SetNillableVehicleType sets the "vehicle_type" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableVehicleType(v *vehicle.VehicleType) *VehicleUpdate {
	if v != nil {
		_u.SetVehicleType(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *VehicleUpdate) SetCapacity(v int) *VehicleUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableCapacity(v *int) *VehicleUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *VehicleUpdate) AddCapacity(v int) *VehicleUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VehicleUpdate) SetStatus(v vehicle.Status) *VehicleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableStatus(v *vehicle.Status) *VehicleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *VehicleUpdate) AddDeploymentIDs(ids ...int) *VehicleUpdate {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *VehicleUpdate) AddDeployments(v ...*Deployment) *VehicleUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdate) Mutation() *VehicleMutation {
	return _u.mutation
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *VehicleUpdate) ClearDeployments() *VehicleUpdate {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *VehicleUpdate) RemoveDeploymentIDs(ids ...int) *VehicleUpdate {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *VehicleUpdate) RemoveDeployments(v ...*Deployment) *VehicleUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdate) check() error {
	if v, ok := _u.mutation.VehicleType(); ok {
		if err := vehicle.VehicleTypeValidator(v); err != nil {
			return &ValidationError{Name: "vehicle_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.vehicle_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := vehicle.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Vehicle.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VehicleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RegistrationNumber(); ok {
		_spec.SetField(vehicle.FieldRegistrationNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleType(); ok {
		_spec.SetField(vehicle.FieldVehicleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(vehicle.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(vehicle.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetRegistrationNumber sets the "registration_number" field.
func (_u *VehicleUpdateOne) SetRegistrationNumber(v string) *VehicleUpdateOne {
	_u.mutation.SetRegistrationNumber(v)
	return _u
}

// SetNillableRegistrationNumber sets the "registration_number" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableRegistrationNumber(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetRegistrationNumber(*v)
	}
	return _u
}

// SetVehicleType sets the "vehicle_type" field.
func (_u *VehicleUpdateOne) SetVehicleType(v vehicle.VehicleType) *VehicleUpdateOne {
	_u.mutation.SetVehicleType(v)
	return _u
}

// SetNillableVehicleType sets the "vehicle_type" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableVehicleType(v *vehicle.VehicleType) *VehicleUpdateOne {
	if v != nil {
		_u.SetVehicleType(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *VehicleUpdateOne) SetCapacity(v int) *VehicleUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableCapacity(v *int) *VehicleUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *VehicleUpdateOne) AddCapacity(v int) *VehicleUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VehicleUpdateOne) SetStatus(v vehicle.Status) *VehicleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableStatus(v *vehicle.Status) *VehicleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *VehicleUpdateOne) AddDeploymentIDs(ids ...int) *VehicleUpdateOne {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *VehicleUpdateOne) AddDeployments(v ...*Deployment) *VehicleUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdateOne) Mutation() *VehicleMutation {
	return _u.mutation
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *VehicleUpdateOne) ClearDeployments() *VehicleUpdateOne {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *VehicleUpdateOne) RemoveDeploymentIDs(ids ...int) *VehicleUpdateOne {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *VehicleUpdateOne) RemoveDeployments(v ...*Deployment) *VehicleUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vehicle entity.
func (_u *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VehicleUpdateOne) check() error {
	if v, ok := _u.mutation.VehicleType(); ok {
		if err := vehicle.VehicleTypeValidator(v); err != nil {
			return &ValidationError{Name: "vehicle_type", err: fmt.Errorf(`ent: validator failed for field "Vehicle.vehicle_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := vehicle.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Vehicle.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := vehicle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Vehicle.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
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
	if value, ok := _u.mutation.RegistrationNumber(); ok {
		_spec.SetField(vehicle.FieldRegistrationNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VehicleType(); ok {
		_spec.SetField(vehicle.FieldVehicleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(vehicle.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(vehicle.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vehicle.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vehicle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
