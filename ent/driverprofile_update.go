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
	"github.com/fleetops/dispatch/ent/predicate"
)

// DriverProfileUpdate is the builder for updating DriverProfile entities.
type DriverProfileUpdate struct {
	config
	hooks    []Hook
	mutation *DriverProfileMutation
}

// Where appends a list predicates to the DriverProfileUpdate builder.
func (_u *DriverProfileUpdate) Where(ps ...predicate.DriverProfile) *DriverProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DriverProfileUpdate) SetName(v string) *DriverProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DriverProfileUpdate) SetNillableName(v *string) *DriverProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DriverProfileUpdate) SetPhone(v string) *DriverProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DriverProfileUpdate) SetNillablePhone(v *string) *DriverProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DriverProfileUpdate) ClearPhone() *DriverProfileUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DriverProfileUpdate) SetStatus(v driverprofile.Status) *DriverProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DriverProfileUpdate) SetNillableStatus(v *driverprofile.Status) *DriverProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *DriverProfileUpdate) AddDeploymentIDs(ids ...int) *DriverProfileUpdate {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *DriverProfileUpdate) AddDeployments(v ...*Deployment) *DriverProfileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the DriverProfileMutation object of the builder.
func (_u *DriverProfileUpdate) Mutation() *DriverProfileMutation {
	return _u.mutation
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *DriverProfileUpdate) ClearDeployments() *DriverProfileUpdate {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *DriverProfileUpdate) RemoveDeploymentIDs(ids ...int) *DriverProfileUpdate {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *DriverProfileUpdate) RemoveDeployments(v ...*Deployment) *DriverProfileUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DriverProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DriverProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DriverProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DriverProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DriverProfileUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := driverprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DriverProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DriverProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(driverprofile.Table, driverprofile.Columns, sqlgraph.NewFieldSpec(driverprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(driverprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(driverprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(driverprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(driverprofile.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{driverprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DriverProfileUpdateOne is the builder for updating a single DriverProfile entity.
type DriverProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DriverProfileMutation
}

// SetName sets the "name" field.
func (_u *DriverProfileUpdateOne) SetName(v string) *DriverProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DriverProfileUpdateOne) SetNillableName(v *string) *DriverProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DriverProfileUpdateOne) SetPhone(v string) *DriverProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DriverProfileUpdateOne) SetNillablePhone(v *string) *DriverProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DriverProfileUpdateOne) ClearPhone() *DriverProfileUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DriverProfileUpdateOne) SetStatus(v driverprofile.Status) *DriverProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DriverProfileUpdateOne) SetNillableStatus(v *driverprofile.Status) *DriverProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddDeploymentIDs adds the "deployments" edge to the Deployment entity by IDs.
func (_u *DriverProfileUpdateOne) AddDeploymentIDs(ids ...int) *DriverProfileUpdateOne {
	_u.mutation.AddDeploymentIDs(ids...)
	return _u
}

// AddDeployments adds the "deployments" edges to the Deployment entity.
func (_u *DriverProfileUpdateOne) AddDeployments(v ...*Deployment) *DriverProfileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeploymentIDs(ids...)
}

// Mutation returns the DriverProfileMutation object of the builder.
func (_u *DriverProfileUpdateOne) Mutation() *DriverProfileMutation {
	return _u.mutation
}

// ClearDeployments clears all "deployments" edges to the Deployment entity.
func (_u *DriverProfileUpdateOne) ClearDeployments() *DriverProfileUpdateOne {
	_u.mutation.ClearDeployments()
	return _u
}

// RemoveDeploymentIDs removes the "deployments" edge to Deployment entities by IDs.
func (_u *DriverProfileUpdateOne) RemoveDeploymentIDs(ids ...int) *DriverProfileUpdateOne {
	_u.mutation.RemoveDeploymentIDs(ids...)
	return _u
}

// RemoveDeployments removes "deployments" edges to Deployment entities.
func (_u *DriverProfileUpdateOne) RemoveDeployments(v ...*Deployment) *DriverProfileUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeploymentIDs(ids...)
}

// Where appends a list predicates to the DriverProfileUpdate builder.
func (_u *DriverProfileUpdateOne) Where(ps ...predicate.DriverProfile) *DriverProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DriverProfileUpdateOne) Select(field string, fields ...string) *DriverProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DriverProfile entity.
func (_u *DriverProfileUpdateOne) Save(ctx context.Context) (*DriverProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DriverProfileUpdateOne) SaveX(ctx context.Context) *DriverProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DriverProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DriverProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DriverProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := driverprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DriverProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DriverProfileUpdateOne) sqlSave(ctx context.Context) (_node *DriverProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(driverprofile.Table, driverprofile.Columns, sqlgraph.NewFieldSpec(driverprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DriverProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, driverprofile.FieldID)
		for _, f := range fields {
			if !driverprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != driverprofile.FieldID {
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
		_spec.SetField(driverprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(driverprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(driverprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(driverprofile.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploymentsIDs(); len(nodes) > 0 && !_u.mutation.DeploymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DriverProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{driverprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
